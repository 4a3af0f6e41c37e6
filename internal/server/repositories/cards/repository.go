// Package cards persists Card rows, the leaves of the containment tree.
package cards

import (
	"context"

	"github.com/avoronov/boardkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, card *models.Card) (*models.Card, error)

	// ListByBoard returns every card under the board, across all of its
	// lists, in one query. Used to assemble the eager board subtree without
	// a per-list round trip.
	ListByBoard(ctx context.Context, boardID int64) ([]models.Card, error)

	// ListByOwner returns every card under every board the user owns,
	// joined two hops up the containment chain.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Card, error)
}
