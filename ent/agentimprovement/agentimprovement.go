// Code generated by ent, DO NOT EDIT.

package agentimprovement

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

const (
	// Label holds the string label denoting the agentimprovement type in the database.
	Label = "agent_improvement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldImprovementDescription holds the string denoting the improvement_description field in the database.
	FieldImprovementDescription = "improvement_description"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldImplementedAt holds the string denoting the implemented_at field in the database.
	FieldImplementedAt = "implemented_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// EdgeChanges holds the string denoting the changes edge name in mutations.
	EdgeChanges = "changes"
	// Table holds the table name of the agentimprovement in the database.
	Table = "agent_improvements"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "agent_improvements"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
	// ChangesTable is the table that holds the changes relation/edge.
	ChangesTable = "agent_changes"
	// ChangesInverseTable is the table name for the AgentChange entity.
	// It exists in this package in order to avoid circular dependency with the "agentchange" package.
	ChangesInverseTable = "agent_changes"
	// ChangesColumn is the table column denoting the changes relation/edge.
	ChangesColumn = "agent_improvement_id"
)

// Columns holds all SQL columns for agentimprovement fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldImprovementDescription,
	FieldPriority,
	FieldStatus,
	FieldImplementedAt,
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
	// ImprovementDescriptionValidator is a validator for the "improvement_description" field. It is called by the builders before save.
	ImprovementDescriptionValidator func(string) error
	// PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	PriorityValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

const DefaultStatus models.ImprovementStatus = "proposed"

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s models.ImprovementStatus) error {
	switch s {
	case "proposed", "approved", "implemented", "rejected":
		return nil
	default:
		return fmt.Errorf("agentimprovement: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentImprovement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByImprovementDescription orders the results by the improvement_description field.
func ByImprovementDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImprovementDescription, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByImplementedAt orders the results by the implemented_at field.
func ByImplementedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImplementedAt, opts...).ToFunc()
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
func newChangesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChangesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChangesTable, ChangesColumn),
	)
}
