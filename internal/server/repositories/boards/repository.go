// Package boards persists Board rows, the root of the containment tree.
// Ownership of everything below a board is derived from its owner_id.
package boards

import (
	"context"

	"github.com/avoronov/boardkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, board *models.Board) (*models.Board, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Board, error)

	// GetOwned returns the board only when it exists AND belongs to ownerID.
	// Both "absent" and "owned by someone else" come back as
	// common.ErrorNotFound, so callers cannot distinguish the two.
	GetOwned(ctx context.Context, boardID, ownerID int64) (*models.Board, error)

	// OwnerOf resolves a board id to its owner's user id.
	OwnerOf(ctx context.Context, boardID int64) (int64, error)
}
