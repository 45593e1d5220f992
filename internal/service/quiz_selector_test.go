package service

import (
	"context"
	"testing"

	"github.com/stemsi/trivia-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizSelector_ExhaustsCategory(t *testing.T) {
	ctx := context.Background()
	catalog, _ := newTestCatalog(t, CatalogOptions{})
	selector := NewQuizSelector(catalog, NewSeededRandom(7))

	var previous []int

	first, err := selector.Next(ctx, 6, previous)
	require.NoError(t, err)
	require.NotNil(t, first.Question)
	assert.Equal(t, 6, first.Question.CategoryID)
	assert.Equal(t, 1, first.QuestionsLeft)
	previous = append(previous, first.Question.ID)

	second, err := selector.Next(ctx, 6, previous)
	require.NoError(t, err)
	require.NotNil(t, second.Question)
	assert.NotEqual(t, first.Question.ID, second.Question.ID)
	assert.Equal(t, 0, second.QuestionsLeft)
	previous = append(previous, second.Question.ID)

	done, err := selector.Next(ctx, 6, previous)
	require.NoError(t, err)
	assert.Nil(t, done.Question)
	assert.Equal(t, 0, done.QuestionsLeft)
}

func TestQuizSelector_AnyCategoryNeverRepeats(t *testing.T) {
	ctx := context.Background()
	catalog, _ := newTestCatalog(t, CatalogOptions{})
	selector := NewQuizSelector(catalog, NewSeededRandom(42))

	var previous []int
	seen := make(map[int]bool)
	for i := 0; i < 18; i++ {
		res, err := selector.Next(ctx, model.AnyCategory, previous)
		require.NoError(t, err)
		require.NotNil(t, res.Question, "draw %d", i)
		assert.False(t, seen[res.Question.ID], "question %d repeated", res.Question.ID)
		assert.Equal(t, 18-len(previous)-1, res.QuestionsLeft)

		seen[res.Question.ID] = true
		previous = append(previous, res.Question.ID)
	}

	res, err := selector.Next(ctx, model.AnyCategory, previous)
	require.NoError(t, err)
	assert.Nil(t, res.Question)
	assert.Equal(t, 0, res.QuestionsLeft)
}

func TestQuizSelector_UsesInjectedSourceOverRemainingPool(t *testing.T) {
	ctx := context.Background()
	catalog, _ := newTestCatalog(t, CatalogOptions{})
	sports, err := catalog.FilterByCategory(ctx, 6)
	require.NoError(t, err)
	require.Len(t, sports, 2)

	rnd := &scriptedRandom{picks: []int{1}}
	selector := NewQuizSelector(catalog, rnd)

	res, err := selector.Next(ctx, 6, nil)
	require.NoError(t, err)
	assert.Equal(t, sports[1].ID, res.Question.ID)
	assert.Equal(t, []int{2}, rnd.sizes)

	rnd.picks = []int{0}
	res, err = selector.Next(ctx, 6, []int{sports[0].ID})
	require.NoError(t, err)
	assert.Equal(t, sports[1].ID, res.Question.ID)
	assert.Equal(t, []int{2, 1}, rnd.sizes, "excluded ids are removed before drawing")
}

func TestQuizSelector_DoesNotTouchExcludedSlice(t *testing.T) {
	catalog, _ := newTestCatalog(t, CatalogOptions{})
	selector := NewQuizSelector(catalog, NewSeededRandom(1))

	excluded := []int{1, 2, 3}
	_, err := selector.Next(context.Background(), model.AnyCategory, excluded)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, excluded)
}

func TestQuizSelector_DrawIsUniform(t *testing.T) {
	ctx := context.Background()
	catalog, _ := newTestCatalog(t, CatalogOptions{})
	selector := NewQuizSelector(catalog, NewSeededRandom(2024))

	// Category 1 has three questions.
	const draws = 6000
	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		res, err := selector.Next(ctx, 1, nil)
		require.NoError(t, err)
		counts[res.Question.ID]++
	}

	require.Len(t, counts, 3)
	for id, n := range counts {
		assert.InDelta(t, draws/3, n, 250, "question %d drawn %d times", id, n)
	}
}

func TestQuizSelector_UnknownCategoryIsExhausted(t *testing.T) {
	catalog, _ := newTestCatalog(t, CatalogOptions{})
	selector := NewQuizSelector(catalog, nil)

	res, err := selector.Next(context.Background(), 99, nil)
	require.NoError(t, err)
	assert.Nil(t, res.Question)
	assert.Equal(t, 0, res.QuestionsLeft)
}

func TestQuizSelector_PropagatesStoreErrors(t *testing.T) {
	selector := NewQuizSelector(failingPool{}, nil)

	_, err := selector.Next(context.Background(), model.AnyCategory, nil)
	assert.ErrorIs(t, err, errStoreDown)
	_, err = selector.Next(context.Background(), 3, nil)
	assert.ErrorIs(t, err, errStoreDown)
}
