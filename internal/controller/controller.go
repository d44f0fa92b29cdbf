package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/service"
	"github.com/rs/zerolog/log"
)

// ParseID reads a positive numeric path parameter. On failure it writes a 400 and returns false.
func ParseID(ctx *gin.Context, param, label string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil || val == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + label + " ID format"})
		return 0, false
	}
	return uint(val), true
}

// BindError writes a 400 for a request body that failed to bind or validate.
func BindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

// RespondError maps service errors to HTTP statuses. Unexpected errors become a 500
// whose details are hidden in release mode.
func RespondError(ctx *gin.Context, err error, fallbackMsg string) {
	var (
		notFound  *service.NotFoundError
		duplicate *service.DuplicateSubmissionError
		config    *service.ConfigurationError
		invalid   *service.ValidationError
	)
	switch {
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: capitalize(notFound.Error())})
	case errors.As(err, &duplicate):
		resp := dto.ErrorResponse{Message: "You have already submitted this test"}
		if duplicate.SubmissionID != 0 {
			id := duplicate.SubmissionID
			resp.SubmissionID = &id
		}
		ctx.JSON(http.StatusBadRequest, resp)
	case errors.As(err, &invalid):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: invalid.Error()})
	case errors.As(err, &config):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: config.Error()})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(fallbackMsg)
		resp := dto.ErrorResponse{Message: fallbackMsg}
		if gin.Mode() != gin.ReleaseMode {
			resp.Details = []string{err.Error()}
		}
		ctx.JSON(http.StatusInternalServerError, resp)
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
