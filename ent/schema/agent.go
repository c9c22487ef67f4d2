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

// Agent holds the schema definition for the Agent entity.
// One entry in the seeded agent catalog.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("agent_number").
			Positive().
			Unique().
			Comment("Stable external identifier used by ingestion"),
		field.String("name").
			NotEmpty(),
		field.Enum("category").
			GoType(models.Category("")),
		field.Int("tier").
			Range(models.MinLevel, models.MaxLevel),
		field.Enum("status").
			GoType(models.AgentStatus("")).
			Default(string(models.AgentStatusActive)),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Agent. Deleting an agent removes everything it owns.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("invocations", AgentInvocation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("issues", AgentIssue.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("improvements", AgentImprovement.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("changes", AgentChange.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
		index.Fields("status"),
		index.Fields("tier"),
	}
}
