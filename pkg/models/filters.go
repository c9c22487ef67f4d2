package models

// Page size bounds for list queries.
const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// ListParams carries pagination for list queries. Page is 1-based.
type ListParams struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize clamps the parameters into range, using defaultSize when unset.
func (p ListParams) Normalize(defaultSize int) ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the number of rows to skip.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ListResult is a page of items plus the total number of matches.
type ListResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
}

// AgentFilters narrows agent listings. Results are ordered by agent number.
type AgentFilters struct {
	ListParams
	Category *Category
	Tier     *int
	Status   *AgentStatus
}

// InvocationFilters narrows invocation listings. Newest first.
type InvocationFilters struct {
	ListParams
	AgentID *int
	Mode    *InvocationMode
	Success *bool
}

// IssueFilters narrows issue listings. Newest first.
type IssueFilters struct {
	ListParams
	AgentID  *int
	Severity *int
	Status   *IssueStatus
}

// ImprovementFilters narrows improvement listings. Newest first.
type ImprovementFilters struct {
	ListParams
	AgentID  *int
	Priority *int
	Status   *ImprovementStatus
}

// ChangeFilters narrows change-log listings. Newest first.
type ChangeFilters struct {
	ListParams
	AgentID     *int
	ChangeType  *ChangeType
	TriggeredBy *TriggeredBy
}
