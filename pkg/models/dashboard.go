package models

import "time"

// AgentUsage is an agent ranked by invocation count.
type AgentUsage struct {
	AgentRef
	Category        Category `json:"category"`
	Tier            int      `json:"tier"`
	InvocationCount int      `json:"invocation_count"`
}

// Dashboard is the point-in-time overview shown on the landing page.
type Dashboard struct {
	TotalAgents              int              `json:"total_agents"`
	ActiveAgents             int              `json:"active_agents"`
	TotalInvocations         int              `json:"total_invocations"`
	RecentInvocations        []InvocationView `json:"recent_invocations"`
	SuccessRate              float64          `json:"success_rate"`
	AverageSatisfaction      *float64         `json:"average_satisfaction"`
	MostUsedAgents           []AgentUsage     `json:"most_used_agents"`
	OpenIssuesCount          int              `json:"open_issues_count"`
	HighSeverityIssues       []IssueView      `json:"high_severity_issues"`
	PendingImprovementsCount int              `json:"pending_improvements_count"`
	AgentsByCategory         map[Category]int `json:"agents_by_category"`
	RecentChanges            []ChangeView     `json:"recent_changes"`
	GeneratedAt              time.Time        `json:"generated_at"`
}

// MetricsSnapshot is the payload served to external monitoring.
// Sections that failed to compute are nil and listed in Errors.
type MetricsSnapshot struct {
	AppName     string             `json:"app_name"`
	Environment string             `json:"environment"`
	Timestamp   string             `json:"timestamp"`
	Version     string             `json:"version"`
	Revenue     any                `json:"revenue"`
	Users       any                `json:"users"`
	Engagement  *EngagementMetrics `json:"engagement"`
	Health      HealthMetrics      `json:"health"`
	Custom      CustomMetrics      `json:"custom"`
	Errors      []SectionError     `json:"errors,omitempty"`
}

// EngagementMetrics counts invocations over recent windows.
type EngagementMetrics struct {
	MetricName  string            `json:"metric_name"`
	MetricValue int               `json:"metric_value"`
	MetricUnit  string            `json:"metric_unit"`
	Details     EngagementDetails `json:"details"`
}

// EngagementDetails breaks engagement down by window.
type EngagementDetails struct {
	Today     int `json:"today"`
	ThisWeek  int `json:"this_week"`
	ThisMonth int `json:"this_month"`
}

// HealthMetrics reports subsystem reachability. Nil means the subsystem
// does not exist in this deployment.
type HealthMetrics struct {
	Database bool  `json:"database"`
	Cache    *bool `json:"cache"`
	Jobs     *bool `json:"jobs"`
	Storage  *bool `json:"storage"`
}

// CustomMetrics holds the agent-tracking sections.
type CustomMetrics struct {
	Agents       *AgentMetrics       `json:"agents"`
	Invocations  *InvocationMetrics  `json:"invocations"`
	Performance  *PerformanceMetrics `json:"performance"`
	Issues       *IssueMetrics       `json:"issues"`
	Improvements *ImprovementMetrics `json:"improvements"`
	Activity     *ActivityMetrics    `json:"activity"`
}

// AgentMetrics summarizes catalog usage.
type AgentMetrics struct {
	Total    int    `json:"total"`
	Active7d int    `json:"active_7d"`
	MostUsed string `json:"most_used"`
}

// InvocationMetrics summarizes invocation outcomes.
type InvocationMetrics struct {
	Total       int     `json:"total"`
	Completed   int     `json:"completed"`
	InProgress  int     `json:"in_progress"`
	Successful  int     `json:"successful"`
	Failed      int     `json:"failed"`
	SuccessRate float64 `json:"success_rate"`
}

// PerformanceMetrics aggregates durations, ratings and token usage.
type PerformanceMetrics struct {
	AvgDurationMinutes    *float64 `json:"avg_duration_minutes"`
	AvgSatisfactionRating *float64 `json:"avg_satisfaction_rating"`
	TotalTokensUsed       int      `json:"total_tokens_used"`
}

// IssueMetrics summarizes issue resolution.
type IssueMetrics struct {
	Total      int `json:"total"`
	Unresolved int `json:"unresolved"`
	Resolved7d int `json:"resolved_7d"`
}

// ImprovementMetrics summarizes improvement proposals.
type ImprovementMetrics struct {
	Total    int `json:"total"`
	ThisWeek int `json:"this_week"`
}

// ActivityMetrics reports invocation throughput.
type ActivityMetrics struct {
	InvocationsToday     int     `json:"invocations_today"`
	Invocations7d        int     `json:"invocations_7d"`
	AvgInvocationsPerDay float64 `json:"avg_invocations_per_day"`
}

// SectionError names a metrics section that could not be computed.
type SectionError struct {
	Section string `json:"section"`
	Message string `json:"message"`
}
