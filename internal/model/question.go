package model

// Question represents a single trivia question.
type Question struct {
	ID         int    `json:"id"`
	Text       string `json:"question"`
	Answer     string `json:"answer"`
	CategoryID int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestion carries the fields required to insert a question.
// Nil pointers mean the field was not supplied.
type NewQuestion struct {
	Text       string
	Answer     string
	CategoryID *int
	Difficulty *int
}

// CreateQuestionRequest is the payload for adding a question to the catalog.
type CreateQuestionRequest struct {
	Question   string   `json:"question" binding:"required"`
	Answer     string   `json:"answer" binding:"required"`
	Category   *FlexInt `json:"category" binding:"required"`
	Difficulty *FlexInt `json:"difficulty" binding:"required"`
}

// ToNewQuestion converts the request into catalog input.
func (r *CreateQuestionRequest) ToNewQuestion() NewQuestion {
	return NewQuestion{
		Text:       r.Question,
		Answer:     r.Answer,
		CategoryID: r.Category.IntPtr(),
		Difficulty: r.Difficulty.IntPtr(),
	}
}

// SearchQuestionsRequest is the payload for a substring search.
// An empty search term is valid and matches every question.
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm" binding:"required"`
}
