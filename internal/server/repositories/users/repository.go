// Package users persists User accounts. Email uniqueness is enforced by the
// store; duplicate registrations surface as common.ErrorAlreadyExists.
package users

import (
	"context"

	"github.com/avoronov/boardkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
