package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/avoronov/boardkeeper/internal/common"
)

// ListBoards prints the caller's boards, one per line.
func (a *App) ListBoards(ctx context.Context) error {
	boards, err := a.api.Boards(ctx)
	if err != nil {
		return err
	}

	if len(boards) == 0 {
		fmt.Fprintln(a.out, "No boards yet. Use 'addboard' to create one.")
		return nil
	}

	for _, b := range boards {
		fmt.Fprintf(a.out, "[%d] %s\n", b.ID, b.Title)
	}
	return nil
}

// ShowBoard fetches a single board with its full list/card tree and prints it
// as an indented outline.
func (a *App) ShowBoard(ctx context.Context, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: open <board-id>")
		return nil
	}

	board, err := a.api.Board(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "Board not found.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "[%d] %s\n", board.ID, board.Title)
	for _, l := range board.Lists {
		fmt.Fprintf(a.out, "  [%d] %s\n", l.ID, l.Title)
		for _, c := range l.Cards {
			if c.Description != "" {
				fmt.Fprintf(a.out, "    [%d] %s - %s\n", c.ID, c.Title, c.Description)
			} else {
				fmt.Fprintf(a.out, "    [%d] %s\n", c.ID, c.Title)
			}
		}
	}
	return nil
}

// AddBoard prompts for a title and creates a board.
func (a *App) AddBoard(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Board title", a.out)
	if err != nil {
		return err
	}

	board, err := a.api.CreateBoard(ctx, title)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created board [%d] %s\n", board.ID, board.Title)
	return nil
}

// AddList prompts for a title and creates a list under the given board.
func (a *App) AddList(ctx context.Context, rawBoardID string) error {
	boardID, err := strconv.ParseInt(rawBoardID, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: addlist <board-id>")
		return nil
	}

	title, err := getSimpleText(a.reader, "List title", a.out)
	if err != nil {
		return err
	}

	list, err := a.api.CreateList(ctx, boardID, title)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "Board not found.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Created list [%d] %s\n", list.ID, list.Title)
	return nil
}

// AddCard prompts for a title and optional description and creates a card
// under the given list.
func (a *App) AddCard(ctx context.Context, rawListID string) error {
	listID, err := strconv.ParseInt(rawListID, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: addcard <list-id>")
		return nil
	}

	title, err := getSimpleText(a.reader, "Card title", a.out)
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	card, err := a.api.CreateCard(ctx, listID, title, description)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "List not found.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Created card [%d] %s\n", card.ID, card.Title)
	return nil
}
