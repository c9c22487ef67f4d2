package models

import "time"

// CreateAgentRequest adds an agent to the catalog.
type CreateAgentRequest struct {
	AgentNumber int         `json:"agent_number" validate:"required,gt=0"`
	Name        string      `json:"name" validate:"required,notblank"`
	Category    Category    `json:"category" validate:"required,enum"`
	Tier        int         `json:"tier" validate:"required,level"`
	Status      AgentStatus `json:"status" validate:"omitempty,enum"`
}

// UpdateAgentRequest changes catalog attributes. Nil fields are left untouched.
type UpdateAgentRequest struct {
	Name     *string      `json:"name" validate:"omitnil,notblank"`
	Category *Category    `json:"category" validate:"omitnil,enum"`
	Tier     *int         `json:"tier" validate:"omitnil,level"`
	Status   *AgentStatus `json:"status" validate:"omitnil,enum"`
}

// CreateInvocationRequest records one invocation. StartedAt defaults to now.
type CreateInvocationRequest struct {
	AgentID            int            `json:"agent_id" validate:"required"`
	TaskDescription    string         `json:"task_description" validate:"required,notblank"`
	InvocationMode     InvocationMode `json:"invocation_mode" validate:"omitempty,enum"`
	ContextNotes       *string        `json:"context_notes"`
	StartedAt          *time.Time     `json:"started_at"`
	CompletedAt        *time.Time     `json:"completed_at"`
	Success            *bool          `json:"success"`
	SatisfactionRating *int           `json:"satisfaction_rating" validate:"omitnil,level"`
	OutcomeNotes       *string        `json:"outcome_notes"`
	TokensInput        *int           `json:"tokens_input" validate:"omitnil,gte=0"`
	TokensOutput       *int           `json:"tokens_output" validate:"omitnil,gte=0"`
	TokensTotal        *int           `json:"tokens_total" validate:"omitnil,gte=0"`
}

// UpdateInvocationRequest amends an invocation, typically to mark completion.
type UpdateInvocationRequest struct {
	TaskDescription    *string         `json:"task_description" validate:"omitnil,notblank"`
	InvocationMode     *InvocationMode `json:"invocation_mode" validate:"omitnil,enum"`
	ContextNotes       *string         `json:"context_notes"`
	StartedAt          *time.Time      `json:"started_at"`
	CompletedAt        *time.Time      `json:"completed_at"`
	Success            *bool           `json:"success"`
	SatisfactionRating *int            `json:"satisfaction_rating" validate:"omitnil,level"`
	OutcomeNotes       *string         `json:"outcome_notes"`
	TokensInput        *int            `json:"tokens_input" validate:"omitnil,gte=0"`
	TokensOutput       *int            `json:"tokens_output" validate:"omitnil,gte=0"`
	TokensTotal        *int            `json:"tokens_total" validate:"omitnil,gte=0"`
}

// CreateIssueRequest reports a problem with an agent.
type CreateIssueRequest struct {
	AgentID           int         `json:"agent_id" validate:"required"`
	AgentInvocationID *int        `json:"agent_invocation_id"`
	IssueDescription  string      `json:"issue_description" validate:"required,notblank"`
	Severity          int         `json:"severity" validate:"required,level"`
	Status            IssueStatus `json:"status" validate:"omitempty,enum"`
	ResolutionNotes   *string     `json:"resolution_notes"`
}

// UpdateIssueRequest amends an issue. Any status transition is accepted.
type UpdateIssueRequest struct {
	IssueDescription *string      `json:"issue_description" validate:"omitnil,notblank"`
	Severity         *int         `json:"severity" validate:"omitnil,level"`
	Status           *IssueStatus `json:"status" validate:"omitnil,enum"`
	ResolutionNotes  *string      `json:"resolution_notes"`
}

// CreateImprovementRequest proposes an improvement to an agent.
type CreateImprovementRequest struct {
	AgentID                int               `json:"agent_id" validate:"required"`
	ImprovementDescription string            `json:"improvement_description" validate:"required,notblank"`
	Priority               int               `json:"priority" validate:"required,level"`
	Status                 ImprovementStatus `json:"status" validate:"omitempty,enum"`
}

// UpdateImprovementRequest amends an improvement. Any status transition is accepted.
type UpdateImprovementRequest struct {
	ImprovementDescription *string            `json:"improvement_description" validate:"omitnil,notblank"`
	Priority               *int               `json:"priority" validate:"omitnil,level"`
	Status                 *ImprovementStatus `json:"status" validate:"omitnil,enum"`
}

// CreateChangeRequest appends an entry to an agent's change log.
type CreateChangeRequest struct {
	AgentID            int         `json:"agent_id" validate:"required"`
	ChangeType         ChangeType  `json:"change_type" validate:"required,enum"`
	ChangeDescription  string      `json:"change_description" validate:"required,notblank"`
	BeforeValue        *string     `json:"before_value"`
	AfterValue         *string     `json:"after_value"`
	TriggeredBy        TriggeredBy `json:"triggered_by" validate:"required,enum"`
	AgentInvocationID  *int        `json:"agent_invocation_id"`
	AgentIssueID       *int        `json:"agent_issue_id"`
	AgentImprovementID *int        `json:"agent_improvement_id"`
}
