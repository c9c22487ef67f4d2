// Code generated by ent, DO NOT EDIT.

package agentinvocation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

const (
	// Label holds the string label denoting the agentinvocation type in the database.
	Label = "agent_invocation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldTaskDescription holds the string denoting the task_description field in the database.
	FieldTaskDescription = "task_description"
	// FieldInvocationMode holds the string denoting the invocation_mode field in the database.
	FieldInvocationMode = "invocation_mode"
	// FieldContextNotes holds the string denoting the context_notes field in the database.
	FieldContextNotes = "context_notes"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldSatisfactionRating holds the string denoting the satisfaction_rating field in the database.
	FieldSatisfactionRating = "satisfaction_rating"
	// FieldOutcomeNotes holds the string denoting the outcome_notes field in the database.
	FieldOutcomeNotes = "outcome_notes"
	// FieldTokensInput holds the string denoting the tokens_input field in the database.
	FieldTokensInput = "tokens_input"
	// FieldTokensOutput holds the string denoting the tokens_output field in the database.
	FieldTokensOutput = "tokens_output"
	// FieldTokensTotal holds the string denoting the tokens_total field in the database.
	FieldTokensTotal = "tokens_total"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// EdgeIssues holds the string denoting the issues edge name in mutations.
	EdgeIssues = "issues"
	// EdgeChanges holds the string denoting the changes edge name in mutations.
	EdgeChanges = "changes"
	// Table holds the table name of the agentinvocation in the database.
	Table = "agent_invocations"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "agent_invocations"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
	// IssuesTable is the table that holds the issues relation/edge.
	IssuesTable = "agent_issues"
	// IssuesInverseTable is the table name for the AgentIssue entity.
	// It exists in this package in order to avoid circular dependency with the "agentissue" package.
	IssuesInverseTable = "agent_issues"
	// IssuesColumn is the table column denoting the issues relation/edge.
	IssuesColumn = "agent_invocation_id"
	// ChangesTable is the table that holds the changes relation/edge.
	ChangesTable = "agent_changes"
	// ChangesInverseTable is the table name for the AgentChange entity.
	// It exists in this package in order to avoid circular dependency with the "agentchange" package.
	ChangesInverseTable = "agent_changes"
	// ChangesColumn is the table column denoting the changes relation/edge.
	ChangesColumn = "agent_invocation_id"
)

// Columns holds all SQL columns for agentinvocation fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldTaskDescription,
	FieldInvocationMode,
	FieldContextNotes,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationMinutes,
	FieldSuccess,
	FieldSatisfactionRating,
	FieldOutcomeNotes,
	FieldTokensInput,
	FieldTokensOutput,
	FieldTokensTotal,
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
	// TaskDescriptionValidator is a validator for the "task_description" field. It is called by the builders before save.
	TaskDescriptionValidator func(string) error
	// SatisfactionRatingValidator is a validator for the "satisfaction_rating" field. It is called by the builders before save.
	SatisfactionRatingValidator func(int) error
	// TokensInputValidator is a validator for the "tokens_input" field. It is called by the builders before save.
	TokensInputValidator func(int) error
	// TokensOutputValidator is a validator for the "tokens_output" field. It is called by the builders before save.
	TokensOutputValidator func(int) error
	// TokensTotalValidator is a validator for the "tokens_total" field. It is called by the builders before save.
	TokensTotalValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

const DefaultInvocationMode models.InvocationMode = "subagent"

// InvocationModeValidator is a validator for the "invocation_mode" field enum values. It is called by the builders before save.
func InvocationModeValidator(im models.InvocationMode) error {
	switch im {
	case "subagent", "manual":
		return nil
	default:
		return fmt.Errorf("agentinvocation: invalid enum value for invocation_mode field: %q", im)
	}
}

// OrderOption defines the ordering options for the AgentInvocation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByTaskDescription orders the results by the task_description field.
func ByTaskDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskDescription, opts...).ToFunc()
}

// ByInvocationMode orders the results by the invocation_mode field.
func ByInvocationMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvocationMode, opts...).ToFunc()
}

// ByContextNotes orders the results by the context_notes field.
func ByContextNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextNotes, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// BySatisfactionRating orders the results by the satisfaction_rating field.
func BySatisfactionRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSatisfactionRating, opts...).ToFunc()
}

// ByOutcomeNotes orders the results by the outcome_notes field.
func ByOutcomeNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcomeNotes, opts...).ToFunc()
}

// ByTokensInput orders the results by the tokens_input field.
func ByTokensInput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensInput, opts...).ToFunc()
}

// ByTokensOutput orders the results by the tokens_output field.
func ByTokensOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensOutput, opts...).ToFunc()
}

// ByTokensTotal orders the results by the tokens_total field.
func ByTokensTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensTotal, opts...).ToFunc()
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
func newIssuesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IssuesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, IssuesTable, IssuesColumn),
	)
}
func newChangesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChangesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChangesTable, ChangesColumn),
	)
}
