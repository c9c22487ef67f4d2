// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// Agent is the model entity for the Agent schema.
type Agent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable external identifier used by ingestion
	AgentNumber int `json:"agent_number,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Category holds the value of the "category" field.
	Category models.Category `json:"category,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier int `json:"tier,omitempty"`
	// Status holds the value of the "status" field.
	Status models.AgentStatus `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentQuery when eager-loading is set.
	Edges        AgentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentEdges holds the relations/edges for other nodes in the graph.
type AgentEdges struct {
	// Invocations holds the value of the invocations edge.
	Invocations []*AgentInvocation `json:"invocations,omitempty"`
	// Issues holds the value of the issues edge.
	Issues []*AgentIssue `json:"issues,omitempty"`
	// Improvements holds the value of the improvements edge.
	Improvements []*AgentImprovement `json:"improvements,omitempty"`
	// Changes holds the value of the changes edge.
	Changes []*AgentChange `json:"changes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// InvocationsOrErr returns the Invocations value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) InvocationsOrErr() ([]*AgentInvocation, error) {
	if e.loadedTypes[0] {
		return e.Invocations, nil
	}
	return nil, &NotLoadedError{edge: "invocations"}
}

// IssuesOrErr returns the Issues value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) IssuesOrErr() ([]*AgentIssue, error) {
	if e.loadedTypes[1] {
		return e.Issues, nil
	}
	return nil, &NotLoadedError{edge: "issues"}
}

// ImprovementsOrErr returns the Improvements value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) ImprovementsOrErr() ([]*AgentImprovement, error) {
	if e.loadedTypes[2] {
		return e.Improvements, nil
	}
	return nil, &NotLoadedError{edge: "improvements"}
}

// ChangesOrErr returns the Changes value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) ChangesOrErr() ([]*AgentChange, error) {
	if e.loadedTypes[3] {
		return e.Changes, nil
	}
	return nil, &NotLoadedError{edge: "changes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Agent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agent.FieldID, agent.FieldAgentNumber, agent.FieldTier:
			values[i] = new(sql.NullInt64)
		case agent.FieldName, agent.FieldCategory, agent.FieldStatus:
			values[i] = new(sql.NullString)
		case agent.FieldCreatedAt, agent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Agent fields.
func (_m *Agent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agent.FieldAgentNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_number", values[i])
			} else if value.Valid {
				_m.AgentNumber = int(value.Int64)
			}
		case agent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case agent.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = models.Category(value.String)
			}
		case agent.FieldTier:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = int(value.Int64)
			}
		case agent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = models.AgentStatus(value.String)
			}
		case agent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agent.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Agent.
// This includes values selected through modifiers, order, etc.
func (_m *Agent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInvocations queries the "invocations" edge of the Agent entity.
func (_m *Agent) QueryInvocations() *AgentInvocationQuery {
	return NewAgentClient(_m.config).QueryInvocations(_m)
}

// QueryIssues queries the "issues" edge of the Agent entity.
func (_m *Agent) QueryIssues() *AgentIssueQuery {
	return NewAgentClient(_m.config).QueryIssues(_m)
}

// QueryImprovements queries the "improvements" edge of the Agent entity.
func (_m *Agent) QueryImprovements() *AgentImprovementQuery {
	return NewAgentClient(_m.config).QueryImprovements(_m)
}

// QueryChanges queries the "changes" edge of the Agent entity.
func (_m *Agent) QueryChanges() *AgentChangeQuery {
	return NewAgentClient(_m.config).QueryChanges(_m)
}

// Update returns a builder for updating this Agent.
// Note that you need to call Agent.Unwrap() before calling this method if this Agent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Agent) Update() *AgentUpdateOne {
	return NewAgentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Agent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Agent) Unwrap() *Agent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Agent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Agent) String() string {
	var builder strings.Builder
	builder.WriteString("Agent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentNumber))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Agents is a parsable slice of Agent.
type Agents []*Agent
