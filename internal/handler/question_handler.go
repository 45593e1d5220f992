package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-backend/internal/model"
	"github.com/stemsi/trivia-backend/internal/pagination"
	"github.com/stemsi/trivia-backend/internal/response"
	"github.com/stemsi/trivia-backend/internal/service"
	"github.com/stemsi/trivia-backend/internal/validator"
)

// QuestionHandler handles question catalog endpoints.
type QuestionHandler struct {
	catalog    *service.QuestionCatalog
	categories *service.CategoryRegistry
	pageSize   int
	log        zerolog.Logger
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(catalog *service.QuestionCatalog, categories *service.CategoryRegistry, pageSize int, log zerolog.Logger) *QuestionHandler {
	return &QuestionHandler{
		catalog:    catalog,
		categories: categories,
		pageSize:   pageSize,
		log:        log.With().Str("component", "question_handler").Logger(),
	}
}

// ListQuestions godoc
// GET /api/v1/questions?page=
// Returns one page of the whole catalog plus the category mapping.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	questions, err := h.catalog.List(ctx)
	if err != nil {
		failFromError(c, h.log, err)
		return
	}

	page, window, err := pagination.Paginate(questions, pageParam(c), h.pageSize)
	if err != nil {
		failFromError(c, h.log, err)
		return
	}

	mapping, err := h.categories.AsMapping(ctx)
	if err != nil {
		failFromError(c, h.log, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{
		"questions":        page,
		"categories":       mapping,
		"total_questions":  len(questions),
		"current_category": nil,
	}, toPagination(window))
}

// DeleteQuestion godoc
// DELETE /api/v1/questions/:id
// Removes a question and returns the remaining catalog.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	ctx := c.Request.Context()
	if err := h.catalog.Delete(ctx, id); err != nil {
		failFromError(c, h.log, err)
		return
	}

	remaining, err := h.catalog.List(ctx)
	if err != nil {
		failFromError(c, h.log, err)
		return
	}

	h.log.Info().Int("question_id", id).Msg("Question deleted")

	response.Success(c, http.StatusOK, gin.H{
		"deleted":         id,
		"questions":       remaining,
		"total_questions": len(remaining),
	})
}

// CreateQuestion godoc
// POST /api/v1/questions
// Adds a question. Missing fields yield 422; an unreadable body yields 400.
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req model.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validator.IsMalformed(err) {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, validator.TranslateErrors(err))
			return
		}
		response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrValidation, validator.TranslateErrors(err))
		return
	}

	ctx := c.Request.Context()
	created, err := h.catalog.Insert(ctx, req.ToNewQuestion())
	if err != nil {
		failFromError(c, h.log, err)
		return
	}

	total, err := h.catalog.Count(ctx)
	if err != nil {
		failFromError(c, h.log, err)
		return
	}

	h.log.Info().Int("question_id", created.ID).Int("category", created.CategoryID).Msg("Question created")

	response.Success(c, http.StatusOK, gin.H{
		"created":         created.ID,
		"total_questions": total,
	})
}

// SearchQuestions godoc
// POST /api/v1/questions/search
// Case-insensitive substring search. An empty searchTerm matches everything.
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req model.SearchQuestionsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrBadRequest, fields)
		return
	}

	questions, err := h.catalog.Search(c.Request.Context(), *req.SearchTerm)
	if err != nil {
		failFromError(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"questions":       questions,
		"total_questions": len(questions),
	})
}
