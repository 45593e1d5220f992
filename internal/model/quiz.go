package model

// QuizCategory identifies the category a quiz draws from.
// ID 0 (AnyCategory) draws from every category.
type QuizCategory struct {
	ID   *FlexInt `json:"id" binding:"required"`
	Type string   `json:"type"`
}

// QuizRequest is the payload for drawing the next quiz question.
// The caller resends the full history on every request.
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
	PreviousQuestions []int         `json:"previous_questions" binding:"required"`
}

// CategoryID returns the requested category id.
func (r *QuizRequest) CategoryID() int {
	return r.QuizCategory.ID.Int()
}

// QuizResult is the outcome of a single draw. Question is nil once the
// candidate pool is exhausted.
type QuizResult struct {
	Question      *Question `json:"question,omitempty"`
	QuestionsLeft int       `json:"questions_left"`
}
