// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAgentNumber holds the string denoting the agent_number field in the database.
	FieldAgentNumber = "agent_number"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeInvocations holds the string denoting the invocations edge name in mutations.
	EdgeInvocations = "invocations"
	// EdgeIssues holds the string denoting the issues edge name in mutations.
	EdgeIssues = "issues"
	// EdgeImprovements holds the string denoting the improvements edge name in mutations.
	EdgeImprovements = "improvements"
	// EdgeChanges holds the string denoting the changes edge name in mutations.
	EdgeChanges = "changes"
	// Table holds the table name of the agent in the database.
	Table = "agents"
	// InvocationsTable is the table that holds the invocations relation/edge.
	InvocationsTable = "agent_invocations"
	// InvocationsInverseTable is the table name for the AgentInvocation entity.
	// It exists in this package in order to avoid circular dependency with the "agentinvocation" package.
	InvocationsInverseTable = "agent_invocations"
	// InvocationsColumn is the table column denoting the invocations relation/edge.
	InvocationsColumn = "agent_id"
	// IssuesTable is the table that holds the issues relation/edge.
	IssuesTable = "agent_issues"
	// IssuesInverseTable is the table name for the AgentIssue entity.
	// It exists in this package in order to avoid circular dependency with the "agentissue" package.
	IssuesInverseTable = "agent_issues"
	// IssuesColumn is the table column denoting the issues relation/edge.
	IssuesColumn = "agent_id"
	// ImprovementsTable is the table that holds the improvements relation/edge.
	ImprovementsTable = "agent_improvements"
	// ImprovementsInverseTable is the table name for the AgentImprovement entity.
	// It exists in this package in order to avoid circular dependency with the "agentimprovement" package.
	ImprovementsInverseTable = "agent_improvements"
	// ImprovementsColumn is the table column denoting the improvements relation/edge.
	ImprovementsColumn = "agent_id"
	// ChangesTable is the table that holds the changes relation/edge.
	ChangesTable = "agent_changes"
	// ChangesInverseTable is the table name for the AgentChange entity.
	// It exists in this package in order to avoid circular dependency with the "agentchange" package.
	ChangesInverseTable = "agent_changes"
	// ChangesColumn is the table column denoting the changes relation/edge.
	ChangesColumn = "agent_id"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldAgentNumber,
	FieldName,
	FieldCategory,
	FieldTier,
	FieldStatus,
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
	// AgentNumberValidator is a validator for the "agent_number" field. It is called by the builders before save.
	AgentNumberValidator func(int) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// TierValidator is a validator for the "tier" field. It is called by the builders before save.
	TierValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c models.Category) error {
	switch c {
	case "research", "planning", "writing", "coding", "debugging", "deployment", "database", "testing", "monitoring", "analysis", "optimization", "security", "infrastructure", "documentation", "design", "marketing", "finance", "operations":
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for category field: %q", c)
	}
}

const DefaultStatus models.AgentStatus = "active"

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s models.AgentStatus) error {
	switch s {
	case "active", "inactive", "deprecated", "archived":
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentNumber orders the results by the agent_number field.
func ByAgentNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentNumber, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByInvocationsCount orders the results by invocations count.
func ByInvocationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInvocationsStep(), opts...)
	}
}

// ByInvocations orders the results by invocations terms.
func ByInvocations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInvocationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByIssuesCount orders the results by issues count.
func ByIssuesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newIssuesStep(), opts...)
	}
}

// ByIssues orders the results by issues terms.
func ByIssues(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIssuesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByImprovementsCount orders the results by improvements count.
func ByImprovementsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newImprovementsStep(), opts...)
	}
}

// ByImprovements orders the results by improvements terms.
func ByImprovements(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImprovementsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newInvocationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InvocationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InvocationsTable, InvocationsColumn),
	)
}
func newIssuesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IssuesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, IssuesTable, IssuesColumn),
	)
}
func newImprovementsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImprovementsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ImprovementsTable, ImprovementsColumn),
	)
}
func newChangesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChangesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChangesTable, ChangesColumn),
	)
}
