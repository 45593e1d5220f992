package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-backend/internal/pagination"
	"github.com/stemsi/trivia-backend/internal/response"
	"github.com/stemsi/trivia-backend/internal/service"
)

// failFromError maps a service error onto the response envelope.
// Anything unrecognised is logged and reported as a 500.
func failFromError(c *gin.Context, log zerolog.Logger, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrValidation, ve.Fields)
	case errors.Is(err, service.ErrQuestionNotFound), errors.Is(err, pagination.ErrPageNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		_ = c.Error(err)
		log.Error().Err(err).
			Str("request_id", response.RequestID(c)).
			Str("path", c.FullPath()).
			Msg("Request failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// pageParam reads ?page=, falling back to 1 when it is absent or not an integer.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

func toPagination(w pagination.Window) *response.Pagination {
	return &response.Pagination{
		Page:       w.Page,
		PerPage:    w.PageSize,
		TotalItems: w.TotalItems,
		TotalPages: w.TotalPages,
	}
}
