package cards

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avoronov/boardkeeper/internal/dbx"
	"github.com/avoronov/boardkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, card *models.Card) (*models.Card, error) {

	query :=
		`INSERT INTO cards (title, description, list_id)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	// description is nullable in the schema; an empty string is stored as NULL
	// so "no description" round-trips as the zero value.
	var desc sql.NullString
	if card.Description != "" {
		desc = sql.NullString{String: card.Description, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		card.Title, desc, card.ListID).Scan(&card.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return card, nil
}

func (r *PostgresRepository) ListByBoard(ctx context.Context, boardID int64) ([]models.Card, error) {
	query :=
		`SELECT c.id, c.title, COALESCE(c.description, ''), c.list_id
		 FROM cards c
		 JOIN lists l ON l.id = c.list_id
		 WHERE l.board_id = $1
		 ORDER BY c.id
		 `

	rows, err := r.db.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Card{}
	for rows.Next() {
		var c models.Card
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.ListID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Card, error) {
	query :=
		`SELECT c.id, c.title, COALESCE(c.description, ''), c.list_id
		 FROM cards c
		 JOIN lists l ON l.id = c.list_id
		 JOIN boards b ON b.id = l.board_id
		 WHERE b.owner_id = $1
		 ORDER BY c.id
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Card{}
	for rows.Next() {
		var c models.Card
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.ListID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
