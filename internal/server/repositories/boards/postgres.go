package boards

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronov/boardkeeper/internal/common"
	"github.com/avoronov/boardkeeper/internal/dbx"
	"github.com/avoronov/boardkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, board *models.Board) (*models.Board, error) {

	query :=
		`INSERT INTO boards (title, owner_id)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		board.Title, board.OwnerID).Scan(&board.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return board, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Board, error) {
	query :=
		`SELECT id, title, owner_id FROM boards
		 WHERE owner_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Board{}
	for rows.Next() {
		b := models.Board{Lists: []models.List{}}
		if err := rows.Scan(&b.ID, &b.Title, &b.OwnerID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetOwned(ctx context.Context, boardID, ownerID int64) (*models.Board, error) {
	query :=
		`SELECT id, title, owner_id FROM boards
		 WHERE id = $1 AND owner_id = $2
		 `

	b := &models.Board{Lists: []models.List{}}
	err := r.db.QueryRowContext(ctx, query, boardID, ownerID).Scan(&b.ID, &b.Title, &b.OwnerID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

func (r *PostgresRepository) OwnerOf(ctx context.Context, boardID int64) (int64, error) {
	query :=
		`SELECT owner_id FROM boards
		 WHERE id = $1
		 `

	var ownerID int64
	err := r.db.QueryRowContext(ctx, query, boardID).Scan(&ownerID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return ownerID, nil
}
