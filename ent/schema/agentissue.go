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

// AgentIssue holds the schema definition for the AgentIssue entity.
type AgentIssue struct {
	ent.Schema
}

// Fields of the AgentIssue.
func (AgentIssue) Fields() []ent.Field {
	return []ent.Field{
		field.Int("agent_id"),
		field.Int("agent_invocation_id").
			Optional().
			Nillable(),
		field.Text("issue_description").
			NotEmpty(),
		field.Int("severity").
			Range(models.MinLevel, models.MaxLevel),
		field.Enum("status").
			GoType(models.IssueStatus("")).
			Default(string(models.IssueStatusOpen)),
		field.Text("resolution_notes").
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

// Edges of the AgentIssue.
func (AgentIssue) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("issues").
			Field("agent_id").
			Unique().
			Required(),
		edge.From("invocation", AgentInvocation.Type).
			Ref("issues").
			Field("agent_invocation_id").
			Unique(),
		edge.To("changes", AgentChange.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the AgentIssue.
func (AgentIssue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "status"),
		index.Fields("agent_invocation_id"),
		index.Fields("severity"),
		index.Fields("status"),
	}
}
