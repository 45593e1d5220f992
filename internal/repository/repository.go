package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stemsi/trivia-backend/internal/model"
)

// ErrNotFound is returned when a record addressed by id does not exist.
var ErrNotFound = errors.New("record not found")

// CategoryStore is read access to the category table.
type CategoryStore interface {
	List(ctx context.Context) ([]model.Category, error)
	Exists(ctx context.Context, id int) (bool, error)
}

// QuestionStore persists questions. Every list method returns records
// ordered by ascending id. Create assigns q.ID.
type QuestionStore interface {
	Create(ctx context.Context, q *model.Question) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]model.Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]model.Question, error)
	Search(ctx context.Context, term string) ([]model.Question, error)
	Count(ctx context.Context) (int, error)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term safe to embed in a LIKE pattern so it matches literally.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// querier is the statement surface shared by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
