package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/stemsi/trivia-backend/internal/model"
)

// Compile-time checks that the in-memory stores satisfy the store interfaces.
var (
	_ CategoryStore = (*MemoryCategoryRepository)(nil)
	_ QuestionStore = (*MemoryQuestionRepository)(nil)
	_ CategoryStore = (*CategoryRepository)(nil)
	_ QuestionStore = (*QuestionRepository)(nil)
)

// MemoryCategoryRepository is an in-memory CategoryStore for tests and
// ephemeral deployments.
type MemoryCategoryRepository struct {
	categories []model.Category
}

// NewMemoryCategoryRepository creates a store holding the given categories.
func NewMemoryCategoryRepository(categories ...model.Category) *MemoryCategoryRepository {
	sorted := slices.Clone(categories)
	slices.SortFunc(sorted, func(a, b model.Category) int { return a.ID - b.ID })
	return &MemoryCategoryRepository{categories: sorted}
}

// List returns a copy of all categories ordered by id.
func (r *MemoryCategoryRepository) List(_ context.Context) ([]model.Category, error) {
	return slices.Clone(r.categories), nil
}

// Exists reports whether a category with the given id exists.
func (r *MemoryCategoryRepository) Exists(_ context.Context, id int) (bool, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// MemoryQuestionRepository is an in-memory QuestionStore.
//
// Mutations replace the backing slice instead of editing it in place, so a
// slice returned to a reader is never modified afterwards.
type MemoryQuestionRepository struct {
	mu        sync.RWMutex
	lastID    int
	questions []model.Question
}

// NewMemoryQuestionRepository creates an empty question store.
func NewMemoryQuestionRepository() *MemoryQuestionRepository {
	return &MemoryQuestionRepository{}
}

// Create stores q and assigns the next id.
func (r *MemoryQuestionRepository) Create(ctx context.Context, q *model.Question) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	q.ID = r.lastID

	next := make([]model.Question, len(r.questions), len(r.questions)+1)
	copy(next, r.questions)
	r.questions = append(next, *q)
	return nil
}

// Delete removes the question with the given id.
func (r *MemoryQuestionRepository) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx, found := slices.BinarySearchFunc(r.questions, id, func(q model.Question, id int) int {
		return q.ID - id
	})
	if !found {
		return ErrNotFound
	}

	r.questions = slices.Concat(r.questions[:idx], r.questions[idx+1:])
	return nil
}

// List returns every question ordered by id.
func (r *MemoryQuestionRepository) List(_ context.Context) ([]model.Question, error) {
	return r.filter(func(model.Question) bool { return true }), nil
}

// ListByCategory returns the questions of one category ordered by id.
func (r *MemoryQuestionRepository) ListByCategory(_ context.Context, categoryID int) ([]model.Question, error) {
	return r.filter(func(q model.Question) bool { return q.CategoryID == categoryID }), nil
}

// Search returns questions whose text contains term, ignoring case.
func (r *MemoryQuestionRepository) Search(_ context.Context, term string) ([]model.Question, error) {
	needle := strings.ToLower(term)
	return r.filter(func(q model.Question) bool {
		return strings.Contains(strings.ToLower(q.Text), needle)
	}), nil
}

// Count returns the number of stored questions.
func (r *MemoryQuestionRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.questions), nil
}

func (r *MemoryQuestionRepository) filter(keep func(model.Question) bool) []model.Question {
	r.mu.RLock()
	snapshot := r.questions
	r.mu.RUnlock()

	out := make([]model.Question, 0, len(snapshot))
	for _, q := range snapshot {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}
