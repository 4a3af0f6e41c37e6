// This file implements BoardService, the ownership-scoped access layer for
// the Board → List → Card containment tree. Every operation that targets an
// existing resource first resolves the owning board's owner_id and compares
// it to the caller; a failed check is reported as common.ErrorNotFound, the
// same as a missing resource, so callers never learn whether a foreign
// resource exists.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronov/boardkeeper/internal/common"
	"github.com/avoronov/boardkeeper/internal/dbx"
	"github.com/avoronov/boardkeeper/internal/server/models"
	"github.com/avoronov/boardkeeper/internal/server/repositories/repomanager"
)

type BoardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBoardService(db *sql.DB, m repomanager.RepositoryManager) *BoardService {
	return &BoardService{db: db, repomanager: m}
}

// CreateBoard creates a board owned by ownerID. The caller is always the
// owner; there is no way to create a board for somebody else.
func (s *BoardService) CreateBoard(ctx context.Context, ownerID int64, title string) (*models.Board, error) {
	board := &models.Board{Title: title, OwnerID: ownerID, Lists: []models.List{}}
	repo := s.repomanager.Boards(s.db)

	b, err := repo.Create(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("error creating board: %w", err)
	}
	return b, nil
}

// ListBoards returns the caller's boards, each with its full List and Card
// subtree, loaded with one query per level across all owned boards and
// assembled in memory.
func (s *BoardService) ListBoards(ctx context.Context, ownerID int64) ([]models.Board, error) {
	boards, err := s.repomanager.Boards(s.db).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing boards: %w", err)
	}

	lists, err := s.repomanager.Lists(s.db).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error loading lists: %w", err)
	}

	cards, err := s.repomanager.Cards(s.db).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error loading cards: %w", err)
	}

	lists = attachCards(lists, cards)

	byBoard := make(map[int64]int, len(boards))
	for i := range boards {
		byBoard[boards[i].ID] = i
	}
	for _, l := range lists {
		if i, ok := byBoard[l.BoardID]; ok {
			boards[i].Lists = append(boards[i].Lists, l)
		}
	}

	return boards, nil
}

// attachCards groups cards into their lists, preserving the per-level query
// ordering.
func attachCards(lists []models.List, cards []models.Card) []models.List {
	byList := make(map[int64]int, len(lists))
	for i := range lists {
		byList[lists[i].ID] = i
	}
	for _, c := range cards {
		if i, ok := byList[c.ListID]; ok {
			lists[i].Cards = append(lists[i].Cards, c)
		}
	}
	return lists
}

// GetBoard returns the board with its full List and Card subtree, eagerly
// loaded with one query per level (board, lists, cards-joined-to-lists) and
// assembled in memory. An absent or foreign board yields
// common.ErrorNotFound.
func (s *BoardService) GetBoard(ctx context.Context, ownerID, boardID int64) (*models.Board, error) {
	board, err := s.repomanager.Boards(s.db).GetOwned(ctx, boardID, ownerID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading board: %w", err)
	}

	lists, err := s.repomanager.Lists(s.db).ListByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("error loading lists: %w", err)
	}

	cards, err := s.repomanager.Cards(s.db).ListByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("error loading cards: %w", err)
	}

	board.Lists = attachCards(lists, cards)
	return board, nil
}

// CreateList creates a list under boardID after verifying that the caller
// owns the board. The ownership read and the insert run in one transaction.
func (s *BoardService) CreateList(ctx context.Context, ownerID, boardID int64, title string) (*models.List, error) {
	list := &models.List{Title: title, BoardID: boardID, Cards: []models.Card{}}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		owner, err := s.repomanager.Boards(tx).OwnerOf(ctx, boardID)
		if err != nil {
			return err
		}
		if owner != ownerID {
			return common.ErrorNotFound
		}

		_, err = s.repomanager.Lists(tx).Create(ctx, list)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error creating list: %w", err)
	}

	return list, nil
}

// CreateCard creates a card under listID after resolving the list's board
// owner through the lists→boards join, two hops up the containment chain.
func (s *BoardService) CreateCard(ctx context.Context, ownerID, listID int64, title, description string) (*models.Card, error) {
	card := &models.Card{Title: title, Description: description, ListID: listID}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		owner, err := s.repomanager.Lists(tx).BoardOwnerOf(ctx, listID)
		if err != nil {
			return err
		}
		if owner != ownerID {
			return common.ErrorNotFound
		}

		_, err = s.repomanager.Cards(tx).Create(ctx, card)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error creating card: %w", err)
	}

	return card, nil
}
