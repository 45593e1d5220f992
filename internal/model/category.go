package model

// AnyCategory is the quiz category id that selects from the whole catalog.
const AnyCategory = 0

// Category is a question category. Categories are immutable once created.
type Category struct {
	ID    int    `json:"id"`
	Label string `json:"type"`
}
