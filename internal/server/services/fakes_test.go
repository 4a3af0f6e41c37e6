package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/avoronov/boardkeeper/internal/dbx"
	"github.com/avoronov/boardkeeper/internal/server/models"
	boardsrepo "github.com/avoronov/boardkeeper/internal/server/repositories/boards"
	cardsrepo "github.com/avoronov/boardkeeper/internal/server/repositories/cards"
	listsrepo "github.com/avoronov/boardkeeper/internal/server/repositories/lists"
	usersrepo "github.com/avoronov/boardkeeper/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// --- fake repositories ---

type fakeUsersRepo struct {
	createIn  *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createIn = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeBoardsRepo struct {
	createErr error

	listOut []models.Board
	listErr error

	getOwnedOut *models.Board
	getOwnedErr error

	ownerOut int64
	ownerErr error
}

func (f *fakeBoardsRepo) Create(ctx context.Context, b *models.Board) (*models.Board, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = 3
	return b, nil
}

func (f *fakeBoardsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]models.Board, error) {
	return f.listOut, f.listErr
}

func (f *fakeBoardsRepo) GetOwned(ctx context.Context, boardID, ownerID int64) (*models.Board, error) {
	if f.getOwnedErr != nil {
		return nil, f.getOwnedErr
	}
	return f.getOwnedOut, nil
}

func (f *fakeBoardsRepo) OwnerOf(ctx context.Context, boardID int64) (int64, error) {
	return f.ownerOut, f.ownerErr
}

type fakeListsRepo struct {
	createIn  *models.List
	createErr error

	listOut []models.List
	listErr error

	byOwnerOut []models.List
	byOwnerErr error

	boardOwnerOut int64
	boardOwnerErr error
}

func (f *fakeListsRepo) Create(ctx context.Context, l *models.List) (*models.List, error) {
	f.createIn = l
	if f.createErr != nil {
		return nil, f.createErr
	}
	l.ID = 11
	return l, nil
}

func (f *fakeListsRepo) ListByBoard(ctx context.Context, boardID int64) ([]models.List, error) {
	return f.listOut, f.listErr
}

func (f *fakeListsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]models.List, error) {
	return f.byOwnerOut, f.byOwnerErr
}

func (f *fakeListsRepo) BoardOwnerOf(ctx context.Context, listID int64) (int64, error) {
	return f.boardOwnerOut, f.boardOwnerErr
}

type fakeCardsRepo struct {
	createIn  *models.Card
	createErr error

	listOut []models.Card
	listErr error

	byOwnerOut []models.Card
	byOwnerErr error
}

func (f *fakeCardsRepo) Create(ctx context.Context, c *models.Card) (*models.Card, error) {
	f.createIn = c
	if f.createErr != nil {
		return nil, f.createErr
	}
	c.ID = 21
	return c, nil
}

func (f *fakeCardsRepo) ListByBoard(ctx context.Context, boardID int64) ([]models.Card, error) {
	return f.listOut, f.listErr
}

func (f *fakeCardsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]models.Card, error) {
	return f.byOwnerOut, f.byOwnerErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	b *fakeBoardsRepo
	l *fakeListsRepo
	c *fakeCardsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) Boards(db dbx.DBTX) boardsrepo.Repository    { return m.b }
func (m *fakeRepoManager) Lists(db dbx.DBTX) listsrepo.Repository      { return m.l }
func (m *fakeRepoManager) Cards(db dbx.DBTX) cardsrepo.Repository      { return m.c }
