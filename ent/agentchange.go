// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentchange"
	"github.com/codeready-toolchain/agent-tracker/ent/agentimprovement"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// AgentChange is the model entity for the AgentChange schema.
type AgentChange struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID int `json:"agent_id,omitempty"`
	// ChangeType holds the value of the "change_type" field.
	ChangeType models.ChangeType `json:"change_type,omitempty"`
	// ChangeDescription holds the value of the "change_description" field.
	ChangeDescription string `json:"change_description,omitempty"`
	// BeforeValue holds the value of the "before_value" field.
	BeforeValue *string `json:"before_value,omitempty"`
	// AfterValue holds the value of the "after_value" field.
	AfterValue *string `json:"after_value,omitempty"`
	// TriggeredBy holds the value of the "triggered_by" field.
	TriggeredBy models.TriggeredBy `json:"triggered_by,omitempty"`
	// AgentInvocationID holds the value of the "agent_invocation_id" field.
	AgentInvocationID *int `json:"agent_invocation_id,omitempty"`
	// AgentIssueID holds the value of the "agent_issue_id" field.
	AgentIssueID *int `json:"agent_issue_id,omitempty"`
	// AgentImprovementID holds the value of the "agent_improvement_id" field.
	AgentImprovementID *int `json:"agent_improvement_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentChangeQuery when eager-loading is set.
	Edges        AgentChangeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentChangeEdges holds the relations/edges for other nodes in the graph.
type AgentChangeEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// Invocation holds the value of the invocation edge.
	Invocation *AgentInvocation `json:"invocation,omitempty"`
	// Issue holds the value of the issue edge.
	Issue *AgentIssue `json:"issue,omitempty"`
	// Improvement holds the value of the improvement edge.
	Improvement *AgentImprovement `json:"improvement,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentChangeEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// InvocationOrErr returns the Invocation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentChangeEdges) InvocationOrErr() (*AgentInvocation, error) {
	if e.Invocation != nil {
		return e.Invocation, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: agentinvocation.Label}
	}
	return nil, &NotLoadedError{edge: "invocation"}
}

// IssueOrErr returns the Issue value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentChangeEdges) IssueOrErr() (*AgentIssue, error) {
	if e.Issue != nil {
		return e.Issue, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: agentissue.Label}
	}
	return nil, &NotLoadedError{edge: "issue"}
}

// ImprovementOrErr returns the Improvement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentChangeEdges) ImprovementOrErr() (*AgentImprovement, error) {
	if e.Improvement != nil {
		return e.Improvement, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: agentimprovement.Label}
	}
	return nil, &NotLoadedError{edge: "improvement"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentChange) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentchange.FieldID, agentchange.FieldAgentID, agentchange.FieldAgentInvocationID, agentchange.FieldAgentIssueID, agentchange.FieldAgentImprovementID:
			values[i] = new(sql.NullInt64)
		case agentchange.FieldChangeType, agentchange.FieldChangeDescription, agentchange.FieldBeforeValue, agentchange.FieldAfterValue, agentchange.FieldTriggeredBy:
			values[i] = new(sql.NullString)
		case agentchange.FieldCreatedAt, agentchange.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentChange fields.
func (_m *AgentChange) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentchange.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agentchange.FieldAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = int(value.Int64)
			}
		case agentchange.FieldChangeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field change_type", values[i])
			} else if value.Valid {
				_m.ChangeType = models.ChangeType(value.String)
			}
		case agentchange.FieldChangeDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field change_description", values[i])
			} else if value.Valid {
				_m.ChangeDescription = value.String
			}
		case agentchange.FieldBeforeValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field before_value", values[i])
			} else if value.Valid {
				_m.BeforeValue = new(string)
				*_m.BeforeValue = value.String
			}
		case agentchange.FieldAfterValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field after_value", values[i])
			} else if value.Valid {
				_m.AfterValue = new(string)
				*_m.AfterValue = value.String
			}
		case agentchange.FieldTriggeredBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_by", values[i])
			} else if value.Valid {
				_m.TriggeredBy = models.TriggeredBy(value.String)
			}
		case agentchange.FieldAgentInvocationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_invocation_id", values[i])
			} else if value.Valid {
				_m.AgentInvocationID = new(int)
				*_m.AgentInvocationID = int(value.Int64)
			}
		case agentchange.FieldAgentIssueID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_issue_id", values[i])
			} else if value.Valid {
				_m.AgentIssueID = new(int)
				*_m.AgentIssueID = int(value.Int64)
			}
		case agentchange.FieldAgentImprovementID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_improvement_id", values[i])
			} else if value.Valid {
				_m.AgentImprovementID = new(int)
				*_m.AgentImprovementID = int(value.Int64)
			}
		case agentchange.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentchange.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentChange.
// This includes values selected through modifiers, order, etc.
func (_m *AgentChange) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the AgentChange entity.
func (_m *AgentChange) QueryAgent() *AgentQuery {
	return NewAgentChangeClient(_m.config).QueryAgent(_m)
}

// QueryInvocation queries the "invocation" edge of the AgentChange entity.
func (_m *AgentChange) QueryInvocation() *AgentInvocationQuery {
	return NewAgentChangeClient(_m.config).QueryInvocation(_m)
}

// QueryIssue queries the "issue" edge of the AgentChange entity.
func (_m *AgentChange) QueryIssue() *AgentIssueQuery {
	return NewAgentChangeClient(_m.config).QueryIssue(_m)
}

// QueryImprovement queries the "improvement" edge of the AgentChange entity.
func (_m *AgentChange) QueryImprovement() *AgentImprovementQuery {
	return NewAgentChangeClient(_m.config).QueryImprovement(_m)
}

// Update returns a builder for updating this AgentChange.
// Note that you need to call AgentChange.Unwrap() before calling this method if this AgentChange
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentChange) Update() *AgentChangeUpdateOne {
	return NewAgentChangeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentChange entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentChange) Unwrap() *AgentChange {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentChange is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentChange) String() string {
	var builder strings.Builder
	builder.WriteString("AgentChange(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentID))
	builder.WriteString(", ")
	builder.WriteString("change_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChangeType))
	builder.WriteString(", ")
	builder.WriteString("change_description=")
	builder.WriteString(_m.ChangeDescription)
	builder.WriteString(", ")
	if v := _m.BeforeValue; v != nil {
		builder.WriteString("before_value=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AfterValue; v != nil {
		builder.WriteString("after_value=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("triggered_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggeredBy))
	builder.WriteString(", ")
	if v := _m.AgentInvocationID; v != nil {
		builder.WriteString("agent_invocation_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AgentIssueID; v != nil {
		builder.WriteString("agent_issue_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AgentImprovementID; v != nil {
		builder.WriteString("agent_improvement_id=")
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

// AgentChanges is a parsable slice of AgentChange.
type AgentChanges []*AgentChange
