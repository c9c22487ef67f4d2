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

// AgentImprovement holds the schema definition for the AgentImprovement entity.
type AgentImprovement struct {
	ent.Schema
}

// Fields of the AgentImprovement.
func (AgentImprovement) Fields() []ent.Field {
	return []ent.Field{
		field.Int("agent_id"),
		field.Text("improvement_description").
			NotEmpty(),
		field.Int("priority").
			Range(models.MinLevel, models.MaxLevel),
		field.Enum("status").
			GoType(models.ImprovementStatus("")).
			Default(string(models.ImprovementStatusProposed)),
		field.Time("implemented_at").
			Optional().
			Nillable().
			Comment("Stamped the first time status becomes implemented; never overwritten"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AgentImprovement.
func (AgentImprovement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("improvements").
			Field("agent_id").
			Unique().
			Required(),
		edge.To("changes", AgentChange.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the AgentImprovement.
func (AgentImprovement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "status"),
		index.Fields("priority"),
		index.Fields("status"),
	}
}
