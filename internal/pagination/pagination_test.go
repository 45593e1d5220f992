package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPage_EighteenItemsPageSizeTen(t *testing.T) {
	items := make([]int, 18)
	for i := range items {
		items[i] = i + 1
	}

	page1, w1, err := Paginate(items, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page1, 10)
	assert.Equal(t, 2, w1.TotalPages)
	assert.Equal(t, 1, page1[0])

	page2, w2, err := Paginate(items, 2, 10)
	require.NoError(t, err)
	assert.Len(t, page2, 8)
	assert.Equal(t, 10, w2.Start)
	assert.Equal(t, 20, w2.End)
	assert.Equal(t, 11, page2[0])

	_, _, err = Paginate(items, 3, 10)
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestGetPage_EmptyCollectionHasNoPages(t *testing.T) {
	_, err := GetPage(0, 1, 10)
	assert.ErrorIs(t, err, ErrPageNotFound)
	assert.Equal(t, 0, PageCount(0, 10))
}

func TestGetPage_RejectsPagesBelowOne(t *testing.T) {
	for _, page := range []int{0, -1, -100} {
		_, err := GetPage(5, page, 10)
		assert.ErrorIs(t, err, ErrPageNotFound, "page %d", page)
	}
}

func TestGetPage_WindowExistsIffPageInRange(t *testing.T) {
	for total := 0; total <= 35; total++ {
		for size := 1; size <= 12; size++ {
			want := (total + size - 1) / size
			assert.Equal(t, want, PageCount(total, size), "total=%d size=%d", total, size)

			for page := -1; page <= want+2; page++ {
				w, err := GetPage(total, page, size)
				if page >= 1 && page <= want {
					require.NoError(t, err)
					assert.Equal(t, (page-1)*size, w.Start)
					assert.Equal(t, w.Start+size, w.End)
				} else {
					assert.ErrorIs(t, err, ErrPageNotFound, "total=%d size=%d page=%d", total, size, page)
				}
			}
		}
	}
}

func TestSlice_ClampsToLength(t *testing.T) {
	items := []string{"a", "b", "c"}
	got := Slice(items, Window{Start: 2, End: 12})
	assert.Equal(t, []string{"c"}, got)
	assert.Empty(t, Slice(items, Window{Start: 5, End: 10}))
}
