package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-backend/internal/pagination"
	"github.com/stemsi/trivia-backend/internal/response"
	"github.com/stemsi/trivia-backend/internal/service"
)

// CategoryHandler serves category listings.
type CategoryHandler struct {
	categories *service.CategoryRegistry
	catalog    *service.QuestionCatalog
	pageSize   int
	log        zerolog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories *service.CategoryRegistry, catalog *service.QuestionCatalog, pageSize int, log zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		catalog:    catalog,
		pageSize:   pageSize,
		log:        log.With().Str("component", "category_handler").Logger(),
	}
}

// ListCategories godoc
// GET /api/v1/categories
// Returns the id → label mapping of every category.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	mapping, err := h.categories.AsMapping(c.Request.Context())
	if err != nil {
		failFromError(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"categories":       mapping,
		"total_categories": len(mapping),
	})
}

// ListCategoryQuestions godoc
// GET /api/v1/categories/:id/questions?page=
// Returns one page of a category's questions. total_questions counts the
// category only.
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	ctx := c.Request.Context()
	questions, err := h.catalog.FilterByCategory(ctx, categoryID)
	if err != nil {
		failFromError(c, h.log, err)
		return
	}

	page, window, err := pagination.Paginate(questions, pageParam(c), h.pageSize)
	if err != nil {
		failFromError(c, h.log, err)
		return
	}

	var current *string
	label, ok, err := h.categories.Label(ctx, categoryID)
	if err != nil {
		failFromError(c, h.log, err)
		return
	}
	if ok {
		current = &label
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{
		"questions":        page,
		"total_questions":  len(questions),
		"current_category": current,
	}, toPagination(window))
}
