// Package lists persists List rows. A list belongs to exactly one board and
// has no owner of its own; BoardOwnerOf is the single-hop resolution from a
// list up to the owning user.
package lists

import (
	"context"

	"github.com/avoronov/boardkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, list *models.List) (*models.List, error)
	ListByBoard(ctx context.Context, boardID int64) ([]models.List, error)

	// ListByOwner returns every list under every board the user owns, for
	// assembling the nested board listing in one query per level.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.List, error)

	// BoardOwnerOf joins the list to its board and returns the board owner's
	// user id. An unknown list id yields common.ErrorNotFound.
	BoardOwnerOf(ctx context.Context, listID int64) (int64, error)
}
