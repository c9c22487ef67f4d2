package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// AgentInvocation holds the schema definition for the AgentInvocation entity.
// One recorded run of an agent against a task.
type AgentInvocation struct {
	ent.Schema
}

// Fields of the AgentInvocation.
func (AgentInvocation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("agent_id"),
		field.Text("task_description").
			NotEmpty(),
		field.Enum("invocation_mode").
			GoType(models.InvocationMode("")).
			Default(string(models.InvocationModeSubagent)),
		field.Text("context_notes").
			Optional().
			Nillable(),
		field.Time("started_at"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Nil while the invocation is in progress"),
		field.Int("duration_minutes").
			Optional().
			Nillable().
			Comment("Derived from started_at/completed_at on every save"),
		field.Bool("success").
			Optional().
			Nillable(),
		field.Int("satisfaction_rating").
			Optional().
			Nillable().
			Range(models.MinLevel, models.MaxLevel),
		field.Text("outcome_notes").
			Optional().
			Nillable(),
		field.Int("tokens_input").
			Optional().
			Nillable().
			NonNegative(),
		field.Int("tokens_output").
			Optional().
			Nillable().
			NonNegative(),
		field.Int("tokens_total").
			Optional().
			Nillable().
			NonNegative(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AgentInvocation. Issues and changes outlive the invocation.
func (AgentInvocation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("invocations").
			Field("agent_id").
			Unique().
			Required(),
		edge.To("issues", AgentIssue.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("changes", AgentChange.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the AgentInvocation.
func (AgentInvocation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "started_at"),
		index.Fields("started_at"),
		index.Fields("invocation_mode"),
		index.Fields("success"),
	}
}
