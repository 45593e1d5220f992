package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-backend/internal/model"
	"github.com/stemsi/trivia-backend/internal/response"
	"github.com/stemsi/trivia-backend/internal/service"
	"github.com/stemsi/trivia-backend/internal/validator"
)

// QuizHandler serves quiz draws over HTTP.
type QuizHandler struct {
	selector *service.QuizSelector
	log      zerolog.Logger
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(selector *service.QuizSelector, log zerolog.Logger) *QuizHandler {
	return &QuizHandler{
		selector: selector,
		log:      log.With().Str("component", "quiz_handler").Logger(),
	}
}

// NextQuestion godoc
// POST /api/v1/quizzes
// Draws a random question outside previous_questions. Category id 0 draws
// from every category. No session state is kept between calls.
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req model.QuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrBadRequest, fields)
		return
	}

	result, err := h.selector.Next(c.Request.Context(), req.CategoryID(), req.PreviousQuestions)
	if err != nil {
		failFromError(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
