// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentimprovement"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// AgentImprovement is the model entity for the AgentImprovement schema.
type AgentImprovement struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID int `json:"agent_id,omitempty"`
	// ImprovementDescription holds the value of the "improvement_description" field.
	ImprovementDescription string `json:"improvement_description,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// Status holds the value of the "status" field.
	Status models.ImprovementStatus `json:"status,omitempty"`
	// Stamped the first time status becomes implemented; never overwritten
	ImplementedAt *time.Time `json:"implemented_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentImprovementQuery when eager-loading is set.
	Edges        AgentImprovementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentImprovementEdges holds the relations/edges for other nodes in the graph.
type AgentImprovementEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// Changes holds the value of the changes edge.
	Changes []*AgentChange `json:"changes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentImprovementEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// ChangesOrErr returns the Changes value or an error if the edge
// was not loaded in eager-loading.
func (e AgentImprovementEdges) ChangesOrErr() ([]*AgentChange, error) {
	if e.loadedTypes[1] {
		return e.Changes, nil
	}
	return nil, &NotLoadedError{edge: "changes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentImprovement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentimprovement.FieldID, agentimprovement.FieldAgentID, agentimprovement.FieldPriority:
			values[i] = new(sql.NullInt64)
		case agentimprovement.FieldImprovementDescription, agentimprovement.FieldStatus:
			values[i] = new(sql.NullString)
		case agentimprovement.FieldImplementedAt, agentimprovement.FieldCreatedAt, agentimprovement.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentImprovement fields.
func (_m *AgentImprovement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentimprovement.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agentimprovement.FieldAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = int(value.Int64)
			}
		case agentimprovement.FieldImprovementDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field improvement_description", values[i])
			} else if value.Valid {
				_m.ImprovementDescription = value.String
			}
		case agentimprovement.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case agentimprovement.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = models.ImprovementStatus(value.String)
			}
		case agentimprovement.FieldImplementedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field implemented_at", values[i])
			} else if value.Valid {
				_m.ImplementedAt = new(time.Time)
				*_m.ImplementedAt = value.Time
			}
		case agentimprovement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentimprovement.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentImprovement.
// This includes values selected through modifiers, order, etc.
func (_m *AgentImprovement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the AgentImprovement entity.
func (_m *AgentImprovement) QueryAgent() *AgentQuery {
	return NewAgentImprovementClient(_m.config).QueryAgent(_m)
}

// QueryChanges queries the "changes" edge of the AgentImprovement entity.
func (_m *AgentImprovement) QueryChanges() *AgentChangeQuery {
	return NewAgentImprovementClient(_m.config).QueryChanges(_m)
}

// Update returns a builder for updating this AgentImprovement.
// Note that you need to call AgentImprovement.Unwrap() before calling this method if this AgentImprovement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentImprovement) Update() *AgentImprovementUpdateOne {
	return NewAgentImprovementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentImprovement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentImprovement) Unwrap() *AgentImprovement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentImprovement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentImprovement) String() string {
	var builder strings.Builder
	builder.WriteString("AgentImprovement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentID))
	builder.WriteString(", ")
	builder.WriteString("improvement_description=")
	builder.WriteString(_m.ImprovementDescription)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ImplementedAt; v != nil {
		builder.WriteString("implemented_at=")
		builder.WriteString(v.Format(time.ANSIC))
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

// AgentImprovements is a parsable slice of AgentImprovement.
type AgentImprovements []*AgentImprovement
