package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-backend/internal/model"
	"github.com/stemsi/trivia-backend/internal/repository"
	"github.com/stretchr/testify/require"
)

var testCategories = []model.Category{
	{ID: 1, Label: "Science"},
	{ID: 2, Label: "Art"},
	{ID: 3, Label: "Geography"},
	{ID: 4, Label: "History"},
	{ID: 5, Label: "Entertainment"},
	{ID: 6, Label: "Sports"},
}

// newTestCatalog builds a catalog of 18 questions; category 6 holds exactly
// two of them and question 3 is the only one containing "Title".
func newTestCatalog(t *testing.T, opts CatalogOptions) (*QuestionCatalog, *CategoryRegistry) {
	t.Helper()

	registry := NewCategoryRegistry(repository.NewMemoryCategoryRepository(testCategories...), nil, 0, zerolog.Nop())
	catalog := NewQuestionCatalog(repository.NewMemoryQuestionRepository(), registry, opts, zerolog.Nop())

	categoryFor := []int{1, 2, 4, 3, 4, 5, 1, 2, 3, 4, 5, 6, 1, 2, 3, 4, 5, 6}
	for i, cat := range categoryFor {
		text := fmt.Sprintf("Question number %d?", i+1)
		if i == 2 {
			text = "What was the Title of the novel?"
		}
		_, err := catalog.Insert(context.Background(), newQuestion(text, "answer", cat, 1+i%5))
		require.NoError(t, err)
	}
	return catalog, registry
}

func newQuestion(text, answer string, category, difficulty int) model.NewQuestion {
	return model.NewQuestion{
		Text:       text,
		Answer:     answer,
		CategoryID: &category,
		Difficulty: &difficulty,
	}
}

// scriptedRandom returns picks in order, modulo n, and records each n.
type scriptedRandom struct {
	picks []int
	sizes []int
}

func (r *scriptedRandom) Intn(n int) int {
	r.sizes = append(r.sizes, n)
	if len(r.picks) == 0 {
		return 0
	}
	p := r.picks[0]
	r.picks = r.picks[1:]
	return p % n
}

var errStoreDown = errors.New("store down")

// failingPool fails every read.
type failingPool struct{}

func (failingPool) List(context.Context) ([]model.Question, error) { return nil, errStoreDown }
func (failingPool) FilterByCategory(context.Context, int) ([]model.Question, error) {
	return nil, errStoreDown
}

// failingQuestionStore fails every operation.
type failingQuestionStore struct{}

func (failingQuestionStore) Create(context.Context, *model.Question) error { return errStoreDown }
func (failingQuestionStore) Delete(context.Context, int) error             { return errStoreDown }
func (failingQuestionStore) List(context.Context) ([]model.Question, error) {
	return nil, errStoreDown
}
func (failingQuestionStore) ListByCategory(context.Context, int) ([]model.Question, error) {
	return nil, errStoreDown
}
func (failingQuestionStore) Search(context.Context, string) ([]model.Question, error) {
	return nil, errStoreDown
}
func (failingQuestionStore) Count(context.Context) (int, error) { return 0, errStoreDown }

func questionIDs(qs []model.Question) []int {
	out := make([]int, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}
