package websocket

import "github.com/stemsi/trivia-backend/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionNext Action = "next"
	ActionPing Action = "ping"
)

// QuizFrame is a client frame. A "next" frame carries the same fields as
// the HTTP quiz payload; the server keeps nothing between frames.
type QuizFrame struct {
	Action            Action              `json:"action"`
	QuizCategory      *model.QuizCategory `json:"quiz_category"`
	PreviousQuestions []int               `json:"previous_questions"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventQuestion Event = "question"
	EventError    Event = "error"
	EventPong     Event = "pong"
)

// QuestionResponse answers a "next" frame. Question is omitted once the
// pool is exhausted.
type QuestionResponse struct {
	Event         Event           `json:"event"`
	Question      *model.Question `json:"question,omitempty"`
	QuestionsLeft int             `json:"questions_left"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
