package models

import "time"

// AgentRef is the compact agent reference embedded in other views.
type AgentRef struct {
	ID          int    `json:"id"`
	AgentNumber int    `json:"agent_number"`
	Name        string `json:"name"`
}

// AgentView is the read model of a catalog agent.
type AgentView struct {
	ID               int         `json:"id"`
	AgentNumber      int         `json:"agent_number"`
	Name             string      `json:"name"`
	Category         Category    `json:"category"`
	CategoryLabel    string      `json:"category_label"`
	Tier             int         `json:"tier"`
	TierBadgeColor   string      `json:"tier_badge_color"`
	Status           AgentStatus `json:"status"`
	StatusBadgeColor string      `json:"status_badge_color"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// AgentStats holds per-agent derived metrics.
type AgentStats struct {
	TotalInvocations    int      `json:"total_invocations"`
	SuccessRate         float64  `json:"success_rate"`
	AverageSatisfaction *float64 `json:"average_satisfaction"`
	OpenIssues          int      `json:"open_issues"`
	PendingImprovements int      `json:"pending_improvements"`
}

// AgentDetail is an agent together with its recent activity and stats.
type AgentDetail struct {
	AgentView
	Stats              AgentStats        `json:"stats"`
	RecentInvocations  []InvocationView  `json:"recent_invocations"`
	RecentIssues       []IssueView       `json:"recent_issues"`
	RecentImprovements []ImprovementView `json:"recent_improvements"`
	RecentChanges      []ChangeView      `json:"recent_changes"`
}

// InvocationView is the read model of an invocation.
type InvocationView struct {
	ID                 int            `json:"id"`
	AgentID            int            `json:"agent_id"`
	Agent              *AgentRef      `json:"agent,omitempty"`
	TaskDescription    string         `json:"task_description"`
	InvocationMode     InvocationMode `json:"invocation_mode"`
	ModeBadgeColor     string         `json:"mode_badge_color"`
	ContextNotes       *string        `json:"context_notes"`
	StartedAt          time.Time      `json:"started_at"`
	CompletedAt        *time.Time     `json:"completed_at"`
	DurationMinutes    *int           `json:"duration_minutes"`
	DurationDisplay    string         `json:"duration_display"`
	InProgress         bool           `json:"in_progress"`
	Success            *bool          `json:"success"`
	SuccessLabel       string         `json:"success_label"`
	SuccessBadgeColor  string         `json:"success_badge_color"`
	SatisfactionRating *int           `json:"satisfaction_rating"`
	RatingStars        string         `json:"rating_stars"`
	OutcomeNotes       *string        `json:"outcome_notes"`
	TokensInput        *int           `json:"tokens_input"`
	TokensOutput       *int           `json:"tokens_output"`
	TokensTotal        *int           `json:"tokens_total"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// InvocationDetail is an invocation with the issues and changes it triggered.
type InvocationDetail struct {
	InvocationView
	Issues  []IssueView  `json:"issues"`
	Changes []ChangeView `json:"changes"`
}

// IssueView is the read model of an issue.
type IssueView struct {
	ID                 int         `json:"id"`
	AgentID            int         `json:"agent_id"`
	Agent              *AgentRef   `json:"agent,omitempty"`
	InvocationID       *int        `json:"agent_invocation_id"`
	IssueDescription   string      `json:"issue_description"`
	Severity           int         `json:"severity"`
	SeverityLabel      string      `json:"severity_label"`
	SeverityBadgeColor string      `json:"severity_badge_color"`
	Status             IssueStatus `json:"status"`
	StatusBadgeColor   string      `json:"status_badge_color"`
	ResolutionNotes    *string     `json:"resolution_notes"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// ImprovementView is the read model of an improvement proposal.
type ImprovementView struct {
	ID                     int               `json:"id"`
	AgentID                int               `json:"agent_id"`
	Agent                  *AgentRef         `json:"agent,omitempty"`
	ImprovementDescription string            `json:"improvement_description"`
	Priority               int               `json:"priority"`
	PriorityLabel          string            `json:"priority_label"`
	PriorityBadgeColor     string            `json:"priority_badge_color"`
	Status                 ImprovementStatus `json:"status"`
	StatusBadgeColor       string            `json:"status_badge_color"`
	ImplementedAt          *time.Time        `json:"implemented_at"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
}

// ChangeView is the read model of a change-log entry.
type ChangeView struct {
	ID                    int         `json:"id"`
	AgentID               int         `json:"agent_id"`
	Agent                 *AgentRef   `json:"agent,omitempty"`
	ChangeType            ChangeType  `json:"change_type"`
	ChangeTypeLabel       string      `json:"change_type_label"`
	ChangeTypeBadgeColor  string      `json:"change_type_badge_color"`
	ChangeDescription     string      `json:"change_description"`
	BeforeValue           *string     `json:"before_value"`
	AfterValue            *string     `json:"after_value"`
	TriggeredBy           TriggeredBy `json:"triggered_by"`
	TriggeredByLabel      string      `json:"triggered_by_label"`
	TriggeredByBadgeColor string      `json:"triggered_by_badge_color"`
	InvocationID          *int        `json:"agent_invocation_id"`
	IssueID               *int        `json:"agent_issue_id"`
	ImprovementID         *int        `json:"agent_improvement_id"`
	CreatedAt             time.Time   `json:"created_at"`
}

// InvocationFormDefaults pre-fills the manual-entry form.
type InvocationFormDefaults struct {
	StartedAt      time.Time      `json:"started_at"`
	InvocationMode InvocationMode `json:"invocation_mode"`
	Agents         []AgentRef     `json:"agents"`
	Modes          []string       `json:"modes"`
}
