package models

import "slices"

// Category classifies an agent by the kind of work it performs.
type Category string

// Agent categories.
const (
	CategoryResearch       Category = "research"
	CategoryPlanning       Category = "planning"
	CategoryWriting        Category = "writing"
	CategoryCoding         Category = "coding"
	CategoryDebugging      Category = "debugging"
	CategoryDeployment     Category = "deployment"
	CategoryDatabase       Category = "database"
	CategoryTesting        Category = "testing"
	CategoryMonitoring     Category = "monitoring"
	CategoryAnalysis       Category = "analysis"
	CategoryOptimization   Category = "optimization"
	CategorySecurity       Category = "security"
	CategoryInfrastructure Category = "infrastructure"
	CategoryDocumentation  Category = "documentation"
	CategoryDesign         Category = "design"
	CategoryMarketing      Category = "marketing"
	CategoryFinance        Category = "finance"
	CategoryOperations     Category = "operations"
)

var categories = []Category{
	CategoryResearch, CategoryPlanning, CategoryWriting, CategoryCoding,
	CategoryDebugging, CategoryDeployment, CategoryDatabase, CategoryTesting,
	CategoryMonitoring, CategoryAnalysis, CategoryOptimization, CategorySecurity,
	CategoryInfrastructure, CategoryDocumentation, CategoryDesign, CategoryMarketing,
	CategoryFinance, CategoryOperations,
}

// Values implements ent's EnumValues interface.
func (Category) Values() []string { return stringValues(categories) }

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool { return slices.Contains(categories, c) }

// Label returns the human-readable category name.
func (c Category) Label() string { return Humanize(string(c)) }

// AgentStatus is the lifecycle status of a catalog agent.
type AgentStatus string

// Agent statuses.
const (
	AgentStatusActive     AgentStatus = "active"
	AgentStatusInactive   AgentStatus = "inactive"
	AgentStatusDeprecated AgentStatus = "deprecated"
	AgentStatusArchived   AgentStatus = "archived"
)

var agentStatuses = []AgentStatus{
	AgentStatusActive, AgentStatusInactive, AgentStatusDeprecated, AgentStatusArchived,
}

// Values implements ent's EnumValues interface.
func (AgentStatus) Values() []string { return stringValues(agentStatuses) }

// IsValid reports whether s is a known agent status.
func (s AgentStatus) IsValid() bool { return slices.Contains(agentStatuses, s) }

// BadgeColor returns the badge colour for the status. Unknown values render gray.
func (s AgentStatus) BadgeColor() string {
	switch s {
	case AgentStatusActive:
		return ColorGreen
	case AgentStatusInactive:
		return ColorGray
	case AgentStatusDeprecated:
		return ColorYellow
	case AgentStatusArchived:
		return ColorRed
	default:
		return ColorGray
	}
}

// InvocationMode records how an agent was invoked.
type InvocationMode string

// Invocation modes.
const (
	InvocationModeSubagent InvocationMode = "subagent"
	InvocationModeManual   InvocationMode = "manual"
)

var invocationModes = []InvocationMode{InvocationModeSubagent, InvocationModeManual}

// Values implements ent's EnumValues interface.
func (InvocationMode) Values() []string { return stringValues(invocationModes) }

// IsValid reports whether m is a known invocation mode.
func (m InvocationMode) IsValid() bool { return slices.Contains(invocationModes, m) }

// BadgeColor returns the badge colour for the mode.
func (m InvocationMode) BadgeColor() string {
	switch m {
	case InvocationModeSubagent:
		return ColorPurple
	case InvocationModeManual:
		return ColorBlue
	default:
		return ColorGray
	}
}

// IssueStatus tracks an issue from report to resolution. Any transition is allowed.
type IssueStatus string

// Issue statuses.
const (
	IssueStatusOpen          IssueStatus = "open"
	IssueStatusInvestigating IssueStatus = "investigating"
	IssueStatusResolved      IssueStatus = "resolved"
)

var issueStatuses = []IssueStatus{IssueStatusOpen, IssueStatusInvestigating, IssueStatusResolved}

// Values implements ent's EnumValues interface.
func (IssueStatus) Values() []string { return stringValues(issueStatuses) }

// IsValid reports whether s is a known issue status.
func (s IssueStatus) IsValid() bool { return slices.Contains(issueStatuses, s) }

// BadgeColor returns the badge colour for the status.
func (s IssueStatus) BadgeColor() string {
	switch s {
	case IssueStatusOpen:
		return ColorRed
	case IssueStatusInvestigating:
		return ColorYellow
	case IssueStatusResolved:
		return ColorGreen
	default:
		return ColorGray
	}
}

// ImprovementStatus tracks an improvement proposal. Any transition is allowed.
type ImprovementStatus string

// Improvement statuses.
const (
	ImprovementStatusProposed    ImprovementStatus = "proposed"
	ImprovementStatusApproved    ImprovementStatus = "approved"
	ImprovementStatusImplemented ImprovementStatus = "implemented"
	ImprovementStatusRejected    ImprovementStatus = "rejected"
)

var improvementStatuses = []ImprovementStatus{
	ImprovementStatusProposed, ImprovementStatusApproved,
	ImprovementStatusImplemented, ImprovementStatusRejected,
}

// PendingImprovementStatuses are the statuses counted as "pending".
var PendingImprovementStatuses = []ImprovementStatus{ImprovementStatusProposed, ImprovementStatusApproved}

// Values implements ent's EnumValues interface.
func (ImprovementStatus) Values() []string { return stringValues(improvementStatuses) }

// IsValid reports whether s is a known improvement status.
func (s ImprovementStatus) IsValid() bool { return slices.Contains(improvementStatuses, s) }

// IsPending reports whether the improvement still awaits implementation.
func (s ImprovementStatus) IsPending() bool { return slices.Contains(PendingImprovementStatuses, s) }

// BadgeColor returns the badge colour for the status.
func (s ImprovementStatus) BadgeColor() string {
	switch s {
	case ImprovementStatusProposed:
		return ColorBlue
	case ImprovementStatusApproved:
		return ColorYellow
	case ImprovementStatusImplemented:
		return ColorGreen
	case ImprovementStatusRejected:
		return ColorRed
	default:
		return ColorGray
	}
}

// ChangeType describes what kind of modification a change-log entry records.
type ChangeType string

// Change types.
const (
	ChangeTypeSpecUpdate          ChangeType = "spec_update"
	ChangeTypeContextUpdate       ChangeType = "context_update"
	ChangeTypeExampleAdded        ChangeType = "example_added"
	ChangeTypeStatusChange        ChangeType = "status_change"
	ChangeTypeSubagentIntegration ChangeType = "subagent_integration"
	ChangeTypeBugFix              ChangeType = "bug_fix"
	ChangeTypeCapabilityAdded     ChangeType = "capability_added"
	ChangeTypeCapabilityRemoved   ChangeType = "capability_removed"
)

var changeTypes = []ChangeType{
	ChangeTypeSpecUpdate, ChangeTypeContextUpdate, ChangeTypeExampleAdded,
	ChangeTypeStatusChange, ChangeTypeSubagentIntegration, ChangeTypeBugFix,
	ChangeTypeCapabilityAdded, ChangeTypeCapabilityRemoved,
}

// Values implements ent's EnumValues interface.
func (ChangeType) Values() []string { return stringValues(changeTypes) }

// IsValid reports whether t is a known change type.
func (t ChangeType) IsValid() bool { return slices.Contains(changeTypes, t) }

// Label returns the human-readable change type.
func (t ChangeType) Label() string { return Humanize(string(t)) }

// BadgeColor returns the badge colour for the change type.
func (t ChangeType) BadgeColor() string {
	switch t {
	case ChangeTypeSpecUpdate, ChangeTypeContextUpdate:
		return ColorBlue
	case ChangeTypeExampleAdded, ChangeTypeCapabilityAdded:
		return ColorGreen
	case ChangeTypeStatusChange:
		return ColorYellow
	case ChangeTypeBugFix:
		return ColorRed
	case ChangeTypeCapabilityRemoved:
		return ColorOrange
	case ChangeTypeSubagentIntegration:
		return ColorPurple
	default:
		return ColorGray
	}
}

// TriggeredBy records what prompted a change.
type TriggeredBy string

// Change triggers.
const (
	TriggeredByInvocationIssue TriggeredBy = "invocation_issue"
	TriggeredByUserRequest     TriggeredBy = "user_request"
	TriggeredByImprovement     TriggeredBy = "improvement"
	TriggeredByRefactor        TriggeredBy = "refactor"
	TriggeredByInitialCreation TriggeredBy = "initial_creation"
)

var triggers = []TriggeredBy{
	TriggeredByInvocationIssue, TriggeredByUserRequest, TriggeredByImprovement,
	TriggeredByRefactor, TriggeredByInitialCreation,
}

// Values implements ent's EnumValues interface.
func (TriggeredBy) Values() []string { return stringValues(triggers) }

// IsValid reports whether t is a known trigger.
func (t TriggeredBy) IsValid() bool { return slices.Contains(triggers, t) }

// Label returns the human-readable trigger.
func (t TriggeredBy) Label() string { return Humanize(string(t)) }

// BadgeColor returns the badge colour for the trigger.
func (t TriggeredBy) BadgeColor() string {
	switch t {
	case TriggeredByInvocationIssue:
		return ColorRed
	case TriggeredByUserRequest:
		return ColorBlue
	case TriggeredByImprovement:
		return ColorGreen
	case TriggeredByRefactor:
		return ColorYellow
	case TriggeredByInitialCreation:
		return ColorPurple
	default:
		return ColorGray
	}
}

func stringValues[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
