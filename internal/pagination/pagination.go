// Package pagination computes page windows over ordered collections.
package pagination

import "errors"

// ErrPageNotFound is returned when the requested page is outside [1, pageCount].
var ErrPageNotFound = errors.New("page not found")

// Window is the half-open index range [Start, End) of one page.
// End may exceed the collection length; Slice clamps it.
type Window struct {
	Start      int
	End        int
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// PageCount returns ceil(total / size), or 0 for an empty collection.
func PageCount(total, size int) int {
	if total <= 0 || size < 1 {
		return 0
	}
	if total%size == 0 {
		return total / size
	}
	return total/size + 1
}

// GetPage returns the window for page (1-based) of the given size.
// An empty collection has no pages, so every request against it fails.
func GetPage(total, page, size int) (Window, error) {
	pages := PageCount(total, size)
	if page < 1 || page > pages {
		return Window{}, ErrPageNotFound
	}

	start := (page - 1) * size
	return Window{
		Start:      start,
		End:        start + size,
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: pages,
	}, nil
}

// Slice returns the part of items covered by w, clamped to len(items).
func Slice[T any](items []T, w Window) []T {
	if w.Start >= len(items) {
		return []T{}
	}
	end := w.End
	if end > len(items) {
		end = len(items)
	}
	return items[w.Start:end]
}

// Paginate combines GetPage and Slice.
func Paginate[T any](items []T, page, size int) ([]T, Window, error) {
	w, err := GetPage(len(items), page, size)
	if err != nil {
		return nil, Window{}, err
	}
	return Slice(items, w), w, nil
}
