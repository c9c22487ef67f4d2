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
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// AgentIssue is the model entity for the AgentIssue schema.
type AgentIssue struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID int `json:"agent_id,omitempty"`
	// AgentInvocationID holds the value of the "agent_invocation_id" field.
	AgentInvocationID *int `json:"agent_invocation_id,omitempty"`
	// IssueDescription holds the value of the "issue_description" field.
	IssueDescription string `json:"issue_description,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity int `json:"severity,omitempty"`
	// Status holds the value of the "status" field.
	Status models.IssueStatus `json:"status,omitempty"`
	// ResolutionNotes holds the value of the "resolution_notes" field.
	ResolutionNotes *string `json:"resolution_notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentIssueQuery when eager-loading is set.
	Edges        AgentIssueEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentIssueEdges holds the relations/edges for other nodes in the graph.
type AgentIssueEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// Invocation holds the value of the invocation edge.
	Invocation *AgentInvocation `json:"invocation,omitempty"`
	// Changes holds the value of the changes edge.
	Changes []*AgentChange `json:"changes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentIssueEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// InvocationOrErr returns the Invocation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentIssueEdges) InvocationOrErr() (*AgentInvocation, error) {
	if e.Invocation != nil {
		return e.Invocation, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: agentinvocation.Label}
	}
	return nil, &NotLoadedError{edge: "invocation"}
}

// ChangesOrErr returns the Changes value or an error if the edge
// was not loaded in eager-loading.
func (e AgentIssueEdges) ChangesOrErr() ([]*AgentChange, error) {
	if e.loadedTypes[2] {
		return e.Changes, nil
	}
	return nil, &NotLoadedError{edge: "changes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentIssue) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentissue.FieldID, agentissue.FieldAgentID, agentissue.FieldAgentInvocationID, agentissue.FieldSeverity:
			values[i] = new(sql.NullInt64)
		case agentissue.FieldIssueDescription, agentissue.FieldStatus, agentissue.FieldResolutionNotes:
			values[i] = new(sql.NullString)
		case agentissue.FieldCreatedAt, agentissue.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentIssue fields.
func (_m *AgentIssue) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentissue.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agentissue.FieldAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = int(value.Int64)
			}
		case agentissue.FieldAgentInvocationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_invocation_id", values[i])
			} else if value.Valid {
				_m.AgentInvocationID = new(int)
				*_m.AgentInvocationID = int(value.Int64)
			}
		case agentissue.FieldIssueDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue_description", values[i])
			} else if value.Valid {
				_m.IssueDescription = value.String
			}
		case agentissue.FieldSeverity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = int(value.Int64)
			}
		case agentissue.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = models.IssueStatus(value.String)
			}
		case agentissue.FieldResolutionNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution_notes", values[i])
			} else if value.Valid {
				_m.ResolutionNotes = new(string)
				*_m.ResolutionNotes = value.String
			}
		case agentissue.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentissue.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentIssue.
// This includes values selected through modifiers, order, etc.
func (_m *AgentIssue) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the AgentIssue entity.
func (_m *AgentIssue) QueryAgent() *AgentQuery {
	return NewAgentIssueClient(_m.config).QueryAgent(_m)
}

// QueryInvocation queries the "invocation" edge of the AgentIssue entity.
func (_m *AgentIssue) QueryInvocation() *AgentInvocationQuery {
	return NewAgentIssueClient(_m.config).QueryInvocation(_m)
}

// QueryChanges queries the "changes" edge of the AgentIssue entity.
func (_m *AgentIssue) QueryChanges() *AgentChangeQuery {
	return NewAgentIssueClient(_m.config).QueryChanges(_m)
}

// Update returns a builder for updating this AgentIssue.
// Note that you need to call AgentIssue.Unwrap() before calling this method if this AgentIssue
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentIssue) Update() *AgentIssueUpdateOne {
	return NewAgentIssueClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentIssue entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentIssue) Unwrap() *AgentIssue {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentIssue is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentIssue) String() string {
	var builder strings.Builder
	builder.WriteString("AgentIssue(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentID))
	builder.WriteString(", ")
	if v := _m.AgentInvocationID; v != nil {
		builder.WriteString("agent_invocation_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("issue_description=")
	builder.WriteString(_m.IssueDescription)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ResolutionNotes; v != nil {
		builder.WriteString("resolution_notes=")
		builder.WriteString(*v)
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

// AgentIssues is a parsable slice of AgentIssue.
type AgentIssues []*AgentIssue
