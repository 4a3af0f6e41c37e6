package lists

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

func (r *PostgresRepository) Create(ctx context.Context, list *models.List) (*models.List, error) {

	query :=
		`INSERT INTO lists (title, board_id)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		list.Title, list.BoardID).Scan(&list.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) ListByBoard(ctx context.Context, boardID int64) ([]models.List, error) {
	query :=
		`SELECT id, title, board_id FROM lists
		 WHERE board_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.List{}
	for rows.Next() {
		l := models.List{Cards: []models.Card{}}
		if err := rows.Scan(&l.ID, &l.Title, &l.BoardID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.List, error) {
	query :=
		`SELECT l.id, l.title, l.board_id
		 FROM lists l
		 JOIN boards b ON b.id = l.board_id
		 WHERE b.owner_id = $1
		 ORDER BY l.id
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.List{}
	for rows.Next() {
		l := models.List{Cards: []models.Card{}}
		if err := rows.Scan(&l.ID, &l.Title, &l.BoardID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) BoardOwnerOf(ctx context.Context, listID int64) (int64, error) {
	query :=
		`SELECT b.owner_id
		 FROM lists l
		 JOIN boards b ON b.id = l.board_id
		 WHERE l.id = $1
		 `

	var ownerID int64
	err := r.db.QueryRowContext(ctx, query, listID).Scan(&ownerID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return ownerID, nil
}
