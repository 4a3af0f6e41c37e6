package lists

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/avoronov/boardkeeper/internal/common"
	"github.com/avoronov/boardkeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+lists\s*\(title,\s*board_id\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+id\s*$`

	mock.ExpectQuery(q).
		WithArgs("Todo", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	got, err := repo.Create(context.Background(), &models.List{Title: "Todo", BoardID: 3})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 11 || got.BoardID != 3 {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestListByBoard(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*title,\s*board_id\s+FROM\s+lists\s+WHERE\s+board_id\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`

	rows := sqlmock.NewRows([]string{"id", "title", "board_id"}).
		AddRow(int64(11), "Todo", int64(3)).
		AddRow(int64(12), "Done", int64(3))
	mock.ExpectQuery(q).WithArgs(int64(3)).WillReturnRows(rows)

	got, err := repo.ListByBoard(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListByBoard error: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Todo" || got[1].Title != "Done" {
		t.Fatalf("unexpected lists: %+v", got)
	}
	if got[0].Cards == nil {
		t.Fatalf("cards must be an empty slice, not nil")
	}
}

func TestListByOwner_JoinedAcrossBoards(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+l\.id,\s*l\.title,\s*l\.board_id\s+FROM\s+lists\s+l\s+JOIN\s+boards\s+b\s+ON\s+b\.id\s*=\s*l\.board_id\s+WHERE\s+b\.owner_id\s*=\s*\$1\s+ORDER\s+BY\s+l\.id\s*$`

	rows := sqlmock.NewRows([]string{"id", "title", "board_id"}).
		AddRow(int64(11), "Todo", int64(3)).
		AddRow(int64(12), "Ideas", int64(4))
	mock.ExpectQuery(q).WithArgs(int64(7)).WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 || got[0].BoardID != 3 || got[1].BoardID != 4 {
		t.Fatalf("unexpected lists: %+v", got)
	}
	if got[0].Cards == nil {
		t.Fatalf("cards must be an empty slice, not nil")
	}
}

func TestBoardOwnerOf_Joined(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+b\.owner_id\s+FROM\s+lists\s+l\s+JOIN\s+boards\s+b\s+ON\s+b\.id\s*=\s*l\.board_id\s+WHERE\s+l\.id\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow(int64(7)))

	owner, err := repo.BoardOwnerOf(context.Background(), 11)
	if err != nil {
		t.Fatalf("BoardOwnerOf error: %v", err)
	}
	if owner != 7 {
		t.Fatalf("owner mismatch: got %d want 7", owner)
	}
}

func TestBoardOwnerOf_UnknownList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+b\.owner_id`

	mock.ExpectQuery(q).WithArgs(int64(404)).WillReturnError(sql.ErrNoRows)

	_, err := repo.BoardOwnerOf(context.Background(), 404)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
