// Code generated by ent, DO NOT EDIT.

package agentissue

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

const (
	// Label holds the string label denoting the agentissue type in the database.
	Label = "agent_issue"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldAgentInvocationID holds the string denoting the agent_invocation_id field in the database.
	FieldAgentInvocationID = "agent_invocation_id"
	// FieldIssueDescription holds the string denoting the issue_description field in the database.
	FieldIssueDescription = "issue_description"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResolutionNotes holds the string denoting the resolution_notes field in the database.
	FieldResolutionNotes = "resolution_notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// EdgeInvocation holds the string denoting the invocation edge name in mutations.
	EdgeInvocation = "invocation"
	// EdgeChanges holds the string denoting the changes edge name in mutations.
	EdgeChanges = "changes"
	// Table holds the table name of the agentissue in the database.
	Table = "agent_issues"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "agent_issues"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
	// InvocationTable is the table that holds the invocation relation/edge.
	InvocationTable = "agent_issues"
	// InvocationInverseTable is the table name for the AgentInvocation entity.
	// It exists in this package in order to avoid circular dependency with the "agentinvocation" package.
	InvocationInverseTable = "agent_invocations"
	// InvocationColumn is the table column denoting the invocation relation/edge.
	InvocationColumn = "agent_invocation_id"
	// ChangesTable is the table that holds the changes relation/edge.
	ChangesTable = "agent_changes"
	// ChangesInverseTable is the table name for the AgentChange entity.
	// It exists in this package in order to avoid circular dependency with the "agentchange" package.
	ChangesInverseTable = "agent_changes"
	// ChangesColumn is the table column denoting the changes relation/edge.
	ChangesColumn = "agent_issue_id"
)

// Columns holds all SQL columns for agentissue fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldAgentInvocationID,
	FieldIssueDescription,
	FieldSeverity,
	FieldStatus,
	FieldResolutionNotes,
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
	// IssueDescriptionValidator is a validator for the "issue_description" field. It is called by the builders before save.
	IssueDescriptionValidator func(string) error
	// SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	SeverityValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

const DefaultStatus models.IssueStatus = "open"

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s models.IssueStatus) error {
	switch s {
	case "open", "investigating", "resolved":
		return nil
	default:
		return fmt.Errorf("agentissue: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentIssue queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByAgentInvocationID orders the results by the agent_invocation_id field.
func ByAgentInvocationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentInvocationID, opts...).ToFunc()
}

// ByIssueDescription orders the results by the issue_description field.
func ByIssueDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueDescription, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByResolutionNotes orders the results by the resolution_notes field.
func ByResolutionNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolutionNotes, opts...).ToFunc()
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

// ByChangesCount orders the results by changes count.
func ByChangesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChangesStep(), opts...)
	}
}

// ByChanges orders the results by changes terms.
func ByChanges(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChangesStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newChangesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChangesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChangesTable, ChangesColumn),
	)
}
