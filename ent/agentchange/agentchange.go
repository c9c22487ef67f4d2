// Code generated by ent, DO NOT EDIT.

package agentchange

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

const (
	// Label holds the string label denoting the agentchange type in the database.
	Label = "agent_change"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldChangeType holds the string denoting the change_type field in the database.
	FieldChangeType = "change_type"
	// FieldChangeDescription holds the string denoting the change_description field in the database.
	FieldChangeDescription = "change_description"
	// FieldBeforeValue holds the string denoting the before_value field in the database.
	FieldBeforeValue = "before_value"
	// FieldAfterValue holds the string denoting the after_value field in the database.
	FieldAfterValue = "after_value"
	// FieldTriggeredBy holds the string denoting the triggered_by field in the database.
	FieldTriggeredBy = "triggered_by"
	// FieldAgentInvocationID holds the string denoting the agent_invocation_id field in the database.
	FieldAgentInvocationID = "agent_invocation_id"
	// FieldAgentIssueID holds the string denoting the agent_issue_id field in the database.
	FieldAgentIssueID = "agent_issue_id"
	// FieldAgentImprovementID holds the string denoting the agent_improvement_id field in the database.
	FieldAgentImprovementID = "agent_improvement_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// EdgeInvocation holds the string denoting the invocation edge name in mutations.
	EdgeInvocation = "invocation"
	// EdgeIssue holds the string denoting the issue edge name in mutations.
	EdgeIssue = "issue"
	// EdgeImprovement holds the string denoting the improvement edge name in mutations.
	EdgeImprovement = "improvement"
	// Table holds the table name of the agentchange in the database.
	Table = "agent_changes"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "agent_changes"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
	// InvocationTable is the table that holds the invocation relation/edge.
	InvocationTable = "agent_changes"
	// InvocationInverseTable is the table name for the AgentInvocation entity.
	// It exists in this package in order to avoid circular dependency with the "agentinvocation" package.
	InvocationInverseTable = "agent_invocations"
	// InvocationColumn is the table column denoting the invocation relation/edge.
	InvocationColumn = "agent_invocation_id"
	// IssueTable is the table that holds the issue relation/edge.
	IssueTable = "agent_changes"
	// IssueInverseTable is the table name for the AgentIssue entity.
	// It exists in this package in order to avoid circular dependency with the "agentissue" package.
	IssueInverseTable = "agent_issues"
	// IssueColumn is the table column denoting the issue relation/edge.
	IssueColumn = "agent_issue_id"
	// ImprovementTable is the table that holds the improvement relation/edge.
	ImprovementTable = "agent_changes"
	// ImprovementInverseTable is the table name for the AgentImprovement entity.
	// It exists in this package in order to avoid circular dependency with the "agentimprovement" package.
	ImprovementInverseTable = "agent_improvements"
	// ImprovementColumn is the table column denoting the improvement relation/edge.
	ImprovementColumn = "agent_improvement_id"
)

// Columns holds all SQL columns for agentchange fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldChangeType,
	FieldChangeDescription,
	FieldBeforeValue,
	FieldAfterValue,
	FieldTriggeredBy,
	FieldAgentInvocationID,
	FieldAgentIssueID,
	FieldAgentImprovementID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ChangeDescriptionValidator is a validator for the "change_description" field. It is called by the builders before save.
	ChangeDescriptionValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ChangeTypeValidator is a validator for the "change_type" field enum values. It is called by the builders before save.
func ChangeTypeValidator(ct models.ChangeType) error {
	switch ct {
	case "spec_update", "context_update", "example_added", "status_change", "subagent_integration", "bug_fix", "capability_added", "capability_removed":
		return nil
	default:
		return fmt.Errorf("agentchange: invalid enum value for change_type field: %q", ct)
	}
}

// TriggeredByValidator is a validator for the "triggered_by" field enum values. It is called by the builders before save.
func TriggeredByValidator(tb models.TriggeredBy) error {
	switch tb {
	case "invocation_issue", "user_request", "improvement", "refactor", "initial_creation":
		return nil
	default:
		return fmt.Errorf("agentchange: invalid enum value for triggered_by field: %q", tb)
	}
}

// OrderOption defines the ordering options for the AgentChange queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByChangeType orders the results by the change_type field.
func ByChangeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangeType, opts...).ToFunc()
}

// ByChangeDescription orders the results by the change_description field.
func ByChangeDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangeDescription, opts...).ToFunc()
}

// ByBeforeValue orders the results by the before_value field.
func ByBeforeValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeforeValue, opts...).ToFunc()
}

// ByAfterValue orders the results by the after_value field.
func ByAfterValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAfterValue, opts...).ToFunc()
}

// ByTriggeredBy orders the results by the triggered_by field.
func ByTriggeredBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggeredBy, opts...).ToFunc()
}

// ByAgentInvocationID orders the results by the agent_invocation_id field.
func ByAgentInvocationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentInvocationID, opts...).ToFunc()
}

// ByAgentIssueID orders the results by the agent_issue_id field.
func ByAgentIssueID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentIssueID, opts...).ToFunc()
}

// ByAgentImprovementID orders the results by the agent_improvement_id field.
func ByAgentImprovementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentImprovementID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAgentField orders the results by agent field.
func ByAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStep(), sql.OrderByField(field, opts...))
	}
}

// ByInvocationField orders the results by invocation field.
func ByInvocationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInvocationStep(), sql.OrderByField(field, opts...))
	}
}

// ByIssueField orders the results by issue field.
func ByIssueField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIssueStep(), sql.OrderByField(field, opts...))
	}
}

// ByImprovementField orders the results by improvement field.
func ByImprovementField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImprovementStep(), sql.OrderByField(field, opts...))
	}
}
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
	)
}
func newInvocationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InvocationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InvocationTable, InvocationColumn),
	)
}
func newIssueStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IssueInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, IssueTable, IssueColumn),
	)
}
func newImprovementStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImprovementInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ImprovementTable, ImprovementColumn),
	)
}
