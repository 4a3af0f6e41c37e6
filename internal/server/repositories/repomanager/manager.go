// Package repomanager builds per-entity repositories over a shared database
// handle. Services ask the manager for repositories bound either to the pool
// (*sql.DB) or to a transaction (*sql.Tx), both via dbx.DBTX.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/avoronov/boardkeeper/internal/dbx"
	"github.com/avoronov/boardkeeper/internal/server/repositories/boards"
	"github.com/avoronov/boardkeeper/internal/server/repositories/cards"
	"github.com/avoronov/boardkeeper/internal/server/repositories/lists"
	"github.com/avoronov/boardkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Boards(db dbx.DBTX) boards.Repository
	Lists(db dbx.DBTX) lists.Repository
	Cards(db dbx.DBTX) cards.Repository
}
