package service

import (
	"context"

	"github.com/stemsi/trivia-backend/internal/model"
)

// questionPool is the part of QuestionCatalog the selector reads.
type questionPool interface {
	List(ctx context.Context) ([]model.Question, error)
	FilterByCategory(ctx context.Context, categoryID int) ([]model.Question, error)
}

// QuizSelector serves random, non-repeating quiz questions.
//
// It keeps no per-quiz state: the caller passes the ids it has already
// seen on every call, and each call recomputes from the current catalog.
type QuizSelector struct {
	pool questionPool
	rand RandomSource
}

// NewQuizSelector creates a QuizSelector. A nil rnd uses NewRandomSource.
func NewQuizSelector(pool questionPool, rnd RandomSource) *QuizSelector {
	if rnd == nil {
		rnd = NewRandomSource()
	}
	return &QuizSelector{pool: pool, rand: rnd}
}

// Next draws one question of categoryID (or any category for
// model.AnyCategory) whose id is not in excluded. excluded is not modified.
func (s *QuizSelector) Next(ctx context.Context, categoryID int, excluded []int) (*model.QuizResult, error) {
	var (
		candidates []model.Question
		err        error
	)
	if categoryID == model.AnyCategory {
		candidates, err = s.pool.List(ctx)
	} else {
		candidates, err = s.pool.FilterByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(excluded))
	for _, id := range excluded {
		seen[id] = struct{}{}
	}

	remaining := make([]model.Question, 0, len(candidates))
	for _, q := range candidates {
		if _, ok := seen[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}

	if len(remaining) == 0 {
		return &model.QuizResult{QuestionsLeft: 0}, nil
	}

	picked := remaining[s.rand.Intn(len(remaining))]
	return &model.QuizResult{
		Question:      &picked,
		QuestionsLeft: len(remaining) - 1,
	}, nil
}
