package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/agent-tracker/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectCode    int
		expectMsg     string
		expectDetails int
	}{
		{
			name:          "validation error maps to 422 with details",
			err:           services.NewValidationError("task_description", "can't be blank"),
			expectCode:    http.StatusUnprocessableEntity,
			expectMsg:     "validation failed",
			expectDetails: 1,
		},
		{
			name: "wrapped validation error keeps every field",
			err: fmt.Errorf("failed to create: %w", &services.ValidationError{Errors: []services.FieldError{
				{Field: "severity", Message: "must be between 1 and 5"},
				{Field: "agent_id", Message: "can't be blank"},
			}}),
			expectCode:    http.StatusUnprocessableEntity,
			expectMsg:     "validation failed",
			expectDetails: 2,
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := mapServiceError(tt.err)
			assert.Equal(t, tt.expectCode, code)
			assert.Equal(t, tt.expectMsg, body.Error)
			assert.Len(t, body.Details, tt.expectDetails)
		})
	}
}
