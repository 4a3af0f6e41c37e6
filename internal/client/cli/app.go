// Package cli implements the interactive boardctl shell: a small REPL over
// the HTTP API with register/login and board/list/card commands.
package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/avoronov/boardkeeper/internal/server/models"
)

// BoardAPI is the slice of the HTTP client the shell consumes.
type BoardAPI interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) error
	IsLoggedIn() bool
	CreateBoard(ctx context.Context, title string) (*models.Board, error)
	Boards(ctx context.Context) ([]models.Board, error)
	Board(ctx context.Context, id int64) (*models.Board, error)
	CreateList(ctx context.Context, boardID int64, title string) (*models.List, error)
	CreateCard(ctx context.Context, listID int64, title, description string) (*models.Card, error)
}

type App struct {
	api    BoardAPI
	reader *bufio.Reader
	out    io.Writer
	email  string
}

func NewApp(api BoardAPI, in io.Reader, out io.Writer) *App {
	return &App{
		api:    api,
		reader: bufio.NewReader(in),
		out:    out,
	}
}
