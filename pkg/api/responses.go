package api

import (
	"github.com/codeready-toolchain/agent-tracker/pkg/services"
)

// ErrorResponse is the body of every non-2xx response except the bulk and
// metrics endpoints, which keep their own contracts.
type ErrorResponse struct {
	Error   string                `json:"error"`
	Details []services.FieldError `json:"details,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// HealthCheck is the state of one component.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// MetricsErrorResponse is returned when the metrics snapshot cannot be built.
type MetricsErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
