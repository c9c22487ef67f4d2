package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAggregation wraps failures while computing a dashboard or metrics section
	ErrAggregation = errors.New("aggregation failed")
)

// FieldError is one violated rule on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FullMessage renders the error the way it is shown to users, e.g.
// "Satisfaction rating must be between 1 and 5".
func (f FieldError) FullMessage() string {
	return models.Humanize(f.Field) + " " + f.Message
}

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation error on field '%s': %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return "validation failed: " + strings.Join(e.FullMessages(), "; ")
}

// FullMessages returns every violation as a human-readable sentence.
func (e *ValidationError) FullMessages() []string {
	msgs := make([]string, len(e.Errors))
	for i, f := range e.Errors {
		msgs[i] = f.FullMessage()
	}
	return msgs
}

// Add records another violation.
func (e *ValidationError) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

// OrNil returns e when it holds at least one violation.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AgentReferenceError is returned when an agent number has no catalog entry.
type AgentReferenceError struct {
	AgentNumber int
}

func (e *AgentReferenceError) Error() string {
	return fmt.Sprintf("Agent not found with agent_number: %d", e.AgentNumber)
}

var (
	// ErrEmptyBatch is returned when a bulk request carries no records
	ErrEmptyBatch = errors.New("invocations must be a non-empty array")

	// ErrBatchTooLarge is returned when a bulk request exceeds the configured maximum
	ErrBatchTooLarge = errors.New("too many invocations in one batch")
)

// BulkError reports every rejected record of a rolled-back batch.
type BulkError struct {
	Records []models.BulkRecordError
}

func (e *BulkError) Error() string {
	return fmt.Sprintf("bulk ingestion rejected: %d record(s) failed", len(e.Records))
}
