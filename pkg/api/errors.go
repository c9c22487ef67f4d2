package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agent-tracker/pkg/services"
)

// abortWithServiceError maps service-layer errors to HTTP error responses.
func abortWithServiceError(c *gin.Context, err error) {
	status, body := mapServiceError(err)
	c.AbortWithStatusJSON(status, body)
}

func mapServiceError(err error) (int, ErrorResponse) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: validErr.Errors,
		}
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, ErrorResponse{Error: "resource not found"}
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

// abortBadRequest rejects malformed bodies and query parameters.
func abortBadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}
