package models

import "encoding/json"

// BulkInvocationRecord is one invocation in a bulk ingestion request.
// Timestamps are ISO-8601 strings so parse failures can be reported per record.
// DurationMinutes is accepted for compatibility but always recomputed.
type BulkInvocationRecord struct {
	AgentNumber        *int    `json:"agent_number"`
	TaskDescription    string  `json:"task_description"`
	InvocationMode     string  `json:"invocation_mode,omitempty"`
	ContextNotes       *string `json:"context_notes,omitempty"`
	StartedAt          string  `json:"started_at"`
	CompletedAt        *string `json:"completed_at,omitempty"`
	DurationMinutes    *int    `json:"duration_minutes,omitempty"`
	Success            *bool   `json:"success,omitempty"`
	SatisfactionRating *int    `json:"satisfaction_rating,omitempty"`
	OutcomeNotes       *string `json:"outcome_notes,omitempty"`
	TokensInput        *int    `json:"tokens_input,omitempty"`
	TokensOutput       *int    `json:"tokens_output,omitempty"`
	TokensTotal        *int    `json:"tokens_total,omitempty"`
}

// BulkCreateRequest is the body of POST /api/agent_invocations/bulk_create.
// Records stay undecoded so each one can be rejected at its own index.
type BulkCreateRequest struct {
	Invocations []json.RawMessage `json:"invocations"`
}

// BulkCreatedInvocation identifies one persisted invocation.
type BulkCreatedInvocation struct {
	ID              int    `json:"id"`
	TaskDescription string `json:"task_description"`
}

// BulkCreateResponse is returned when the whole batch was committed.
type BulkCreateResponse struct {
	Success      bool                    `json:"success"`
	CreatedCount int                     `json:"created_count"`
	Invocations  []BulkCreatedInvocation `json:"invocations"`
}

// BulkRecordError describes why the record at Index was rejected. Error is
// set for resolution or parse failures, Errors for validation failures.
type BulkRecordError struct {
	Index  int      `json:"index"`
	Error  string   `json:"error,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// BulkErrorResponse is returned when the batch was rolled back.
type BulkErrorResponse struct {
	Success bool              `json:"success"`
	Errors  []BulkRecordError `json:"errors"`
}
