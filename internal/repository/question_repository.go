package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/trivia-backend/internal/model"
)

const questionColumns = `id, question, answer, category, difficulty`

// QuestionRepository handles question data access.
type QuestionRepository struct {
	db querier
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: pool}
}

// WithTx returns a copy of the repository that runs its statements in tx.
func (r *QuestionRepository) WithTx(tx pgx.Tx) *QuestionRepository {
	return &QuestionRepository{db: tx}
}

// Create inserts a new question. The id comes from the table's sequence,
// so deleted ids are never handed out again.
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO questions (question, answer, category, difficulty)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		q.Text, q.Answer, q.CategoryID, q.Difficulty,
	).Scan(&q.ID)
}

// Delete removes a question permanently.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List retrieves every question ordered by id.
func (r *QuestionRepository) List(ctx context.Context) ([]model.Question, error) {
	return r.query(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY id`)
}

// ListByCategory retrieves the questions of one category ordered by id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]model.Question, error) {
	return r.query(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE category = $1 ORDER BY id`,
		categoryID,
	)
}

// Search retrieves questions whose text contains term, ignoring case.
// An empty term matches every question.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]model.Question, error) {
	return r.query(ctx,
		`SELECT `+questionColumns+` FROM questions
		 WHERE question ILIKE '%' || $1 || '%' ESCAPE '\'
		 ORDER BY id`,
		escapeLike(term),
	)
}

// Count returns the number of stored questions.
func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n)
	return n, err
}

func (r *QuestionRepository) query(ctx context.Context, sql string, args ...any) ([]model.Question, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanQuestion)
}

func scanQuestion(row pgx.CollectableRow) (model.Question, error) {
	var q model.Question
	err := row.Scan(&q.ID, &q.Text, &q.Answer, &q.CategoryID, &q.Difficulty)
	return q, err
}
