// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// AgentInvocation is the model entity for the AgentInvocation schema.
type AgentInvocation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID int `json:"agent_id,omitempty"`
	// TaskDescription holds the value of the "task_description" field.
	TaskDescription string `json:"task_description,omitempty"`
	// InvocationMode holds the value of the "invocation_mode" field.
	InvocationMode models.InvocationMode `json:"invocation_mode,omitempty"`
	// ContextNotes holds the value of the "context_notes" field.
	ContextNotes *string `json:"context_notes,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// Nil while the invocation is in progress
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Derived from started_at/completed_at on every save
	DurationMinutes *int `json:"duration_minutes,omitempty"`
	// Success holds the value of the "success" field.
	Success *bool `json:"success,omitempty"`
	// SatisfactionRating holds the value of the "satisfaction_rating" field.
	SatisfactionRating *int `json:"satisfaction_rating,omitempty"`
	// OutcomeNotes holds the value of the "outcome_notes" field.
	OutcomeNotes *string `json:"outcome_notes,omitempty"`
	// TokensInput holds the value of the "tokens_input" field.
	TokensInput *int `json:"tokens_input,omitempty"`
	// TokensOutput holds the value of the "tokens_output" field.
	TokensOutput *int `json:"tokens_output,omitempty"`
	// TokensTotal holds the value of the "tokens_total" field.
	TokensTotal *int `json:"tokens_total,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentInvocationQuery when eager-loading is set.
	Edges        AgentInvocationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentInvocationEdges holds the relations/edges for other nodes in the graph.
type AgentInvocationEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// Issues holds the value of the issues edge.
	Issues []*AgentIssue `json:"issues,omitempty"`
	// Changes holds the value of the changes edge.
	Changes []*AgentChange `json:"changes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentInvocationEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// IssuesOrErr returns the Issues value or an error if the edge
// was not loaded in eager-loading.
func (e AgentInvocationEdges) IssuesOrErr() ([]*AgentIssue, error) {
	if e.loadedTypes[1] {
		return e.Issues, nil
	}
	return nil, &NotLoadedError{edge: "issues"}
}

// ChangesOrErr returns the Changes value or an error if the edge
// was not loaded in eager-loading.
func (e AgentInvocationEdges) ChangesOrErr() ([]*AgentChange, error) {
	if e.loadedTypes[2] {
		return e.Changes, nil
	}
	return nil, &NotLoadedError{edge: "changes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentInvocation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentinvocation.FieldSuccess:
			values[i] = new(sql.NullBool)
		case agentinvocation.FieldID, agentinvocation.FieldAgentID, agentinvocation.FieldDurationMinutes, agentinvocation.FieldSatisfactionRating, agentinvocation.FieldTokensInput, agentinvocation.FieldTokensOutput, agentinvocation.FieldTokensTotal:
			values[i] = new(sql.NullInt64)
		case agentinvocation.FieldTaskDescription, agentinvocation.FieldInvocationMode, agentinvocation.FieldContextNotes, agentinvocation.FieldOutcomeNotes:
			values[i] = new(sql.NullString)
		case agentinvocation.FieldStartedAt, agentinvocation.FieldCompletedAt, agentinvocation.FieldCreatedAt, agentinvocation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentInvocation fields.
func (_m *AgentInvocation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentinvocation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agentinvocation.FieldAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = int(value.Int64)
			}
		case agentinvocation.FieldTaskDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_description", values[i])
			} else if value.Valid {
				_m.TaskDescription = value.String
			}
		case agentinvocation.FieldInvocationMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invocation_mode", values[i])
			} else if value.Valid {
				_m.InvocationMode = models.InvocationMode(value.String)
			}
		case agentinvocation.FieldContextNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context_notes", values[i])
			} else if value.Valid {
				_m.ContextNotes = new(string)
				*_m.ContextNotes = value.String
			}
		case agentinvocation.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case agentinvocation.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case agentinvocation.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = new(int)
				*_m.DurationMinutes = int(value.Int64)
			}
		case agentinvocation.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = new(bool)
				*_m.Success = value.Bool
			}
		case agentinvocation.FieldSatisfactionRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field satisfaction_rating", values[i])
			} else if value.Valid {
				_m.SatisfactionRating = new(int)
				*_m.SatisfactionRating = int(value.Int64)
			}
		case agentinvocation.FieldOutcomeNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome_notes", values[i])
			} else if value.Valid {
				_m.OutcomeNotes = new(string)
				*_m.OutcomeNotes = value.String
			}
		case agentinvocation.FieldTokensInput:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_input", values[i])
			} else if value.Valid {
				_m.TokensInput = new(int)
				*_m.TokensInput = int(value.Int64)
			}
		case agentinvocation.FieldTokensOutput:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_output", values[i])
			} else if value.Valid {
				_m.TokensOutput = new(int)
				*_m.TokensOutput = int(value.Int64)
			}
		case agentinvocation.FieldTokensTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_total", values[i])
			} else if value.Valid {
				_m.TokensTotal = new(int)
				*_m.TokensTotal = int(value.Int64)
			}
		case agentinvocation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentinvocation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentInvocation.
// This includes values selected through modifiers, order, etc.
func (_m *AgentInvocation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the AgentInvocation entity.
func (_m *AgentInvocation) QueryAgent() *AgentQuery {
	return NewAgentInvocationClient(_m.config).QueryAgent(_m)
}

// QueryIssues queries the "issues" edge of the AgentInvocation entity.
func (_m *AgentInvocation) QueryIssues() *AgentIssueQuery {
	return NewAgentInvocationClient(_m.config).QueryIssues(_m)
}

// QueryChanges queries the "changes" edge of the AgentInvocation entity.
func (_m *AgentInvocation) QueryChanges() *AgentChangeQuery {
	return NewAgentInvocationClient(_m.config).QueryChanges(_m)
}

// Update returns a builder for updating this AgentInvocation.
// Note that you need to call AgentInvocation.Unwrap() before calling this method if this AgentInvocation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentInvocation) Update() *AgentInvocationUpdateOne {
	return NewAgentInvocationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentInvocation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentInvocation) Unwrap() *AgentInvocation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentInvocation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentInvocation) String() string {
	var builder strings.Builder
	builder.WriteString("AgentInvocation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentID))
	builder.WriteString(", ")
	builder.WriteString("task_description=")
	builder.WriteString(_m.TaskDescription)
	builder.WriteString(", ")
	builder.WriteString("invocation_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.InvocationMode))
	builder.WriteString(", ")
	if v := _m.ContextNotes; v != nil {
		builder.WriteString("context_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationMinutes; v != nil {
		builder.WriteString("duration_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Success; v != nil {
		builder.WriteString("success=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SatisfactionRating; v != nil {
		builder.WriteString("satisfaction_rating=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OutcomeNotes; v != nil {
		builder.WriteString("outcome_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TokensInput; v != nil {
		builder.WriteString("tokens_input=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TokensOutput; v != nil {
		builder.WriteString("tokens_output=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TokensTotal; v != nil {
		builder.WriteString("tokens_total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentInvocations is a parsable slice of AgentInvocation.
type AgentInvocations []*AgentInvocation
