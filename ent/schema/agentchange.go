package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// AgentChange holds the schema definition for the AgentChange entity.
// Append-only audit log of modifications made to an agent.
type AgentChange struct {
	ent.Schema
}

// Fields of the AgentChange.
func (AgentChange) Fields() []ent.Field {
	return []ent.Field{
		field.Int("agent_id").
			Immutable(),
		field.Enum("change_type").
			GoType(models.ChangeType("")).
			Immutable(),
		field.Text("change_description").
			NotEmpty().
			Immutable(),
		field.Text("before_value").
			Optional().
			Nillable().
			Immutable(),
		field.Text("after_value").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("triggered_by").
			GoType(models.TriggeredBy("")).
			Immutable(),
		field.Int("agent_invocation_id").
			Optional().
			Nillable(),
		field.Int("agent_issue_id").
			Optional().
			Nillable(),
		field.Int("agent_improvement_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AgentChange. The weak references are nulled by the database
// when their target is deleted, so they stay mutable.
func (AgentChange) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("changes").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
		edge.From("invocation", AgentInvocation.Type).
			Ref("changes").
			Field("agent_invocation_id").
			Unique(),
		edge.From("issue", AgentIssue.Type).
			Ref("changes").
			Field("agent_issue_id").
			Unique(),
		edge.From("improvement", AgentImprovement.Type).
			Ref("changes").
			Field("agent_improvement_id").
			Unique(),
	}
}

// Indexes of the AgentChange.
func (AgentChange) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "created_at"),
		index.Fields("change_type"),
		index.Fields("triggered_by"),
		index.Fields("agent_invocation_id"),
		index.Fields("agent_issue_id"),
		index.Fields("agent_improvement_id"),
	}
}
