// Code generated by ent, DO NOT EDIT.

package agentimprovement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/agent-tracker/ent/predicate"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldLTE(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldEQ(FieldAgentID, v))
}

// ImprovementDescription applies equality check predicate on the "improvement_description" field. It's identical to ImprovementDescriptionEQ.
func ImprovementDescription(v string) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldEQ(FieldImprovementDescription, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldEQ(FieldPriority, v))
}

// ImplementedAt applies equality check predicate on the "implemented_at" field. It's identical to ImplementedAtEQ.
func ImplementedAt(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldEQ(FieldImplementedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldNotIn(FieldAgentID, vs...))
}

// ImprovementDescriptionEQ applies the EQ predicate on the "improvement_description" field.
func ImprovementDescriptionEQ(v string) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldEQ(FieldImprovementDescription, v))
}

// ImprovementDescriptionNEQ applies the NEQ predicate on the "improvement_description" field.
func ImprovementDescriptionNEQ(v string) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldNEQ(FieldImprovementDescription, v))
}

// ImprovementDescriptionIn applies the In predicate on the "improvement_description" field.
func ImprovementDescriptionIn(vs ...string) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldIn(FieldImprovementDescription, vs...))
}

// ImprovementDescriptionNotIn applies the NotIn predicate on the "improvement_description" field.
func ImprovementDescriptionNotIn(vs ...string) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldNotIn(FieldImprovementDescription, vs...))
}

// ImprovementDescriptionGT applies the GT predicate on the "improvement_description" field.
func ImprovementDescriptionGT(v string) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldGT(FieldImprovementDescription, v))
}

// ImprovementDescriptionGTE applies the GTE predicate on the "improvement_description" field.
func ImprovementDescriptionGTE(v string) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldGTE(FieldImprovementDescription, v))
}

// ImprovementDescriptionLT applies the LT predicate on the "improvement_description" field.
func ImprovementDescriptionLT(v string) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldLT(FieldImprovementDescription, v))
}

// ImprovementDescriptionLTE applies the LTE predicate on the "improvement_description" field.
func ImprovementDescriptionLTE(v string) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldLTE(FieldImprovementDescription, v))
}

// ImprovementDescriptionContains applies the Contains predicate on the "improvement_description" field.
func ImprovementDescriptionContains(v string) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldContains(FieldImprovementDescription, v))
}

// ImprovementDescriptionHasPrefix applies the HasPrefix predicate on the "improvement_description" field.
func ImprovementDescriptionHasPrefix(v string) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldHasPrefix(FieldImprovementDescription, v))
}

// ImprovementDescriptionHasSuffix applies the HasSuffix predicate on the "improvement_description" field.
func ImprovementDescriptionHasSuffix(v string) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldHasSuffix(FieldImprovementDescription, v))
}

// ImprovementDescriptionEqualFold applies the EqualFold predicate on the "improvement_description" field.
func ImprovementDescriptionEqualFold(v string) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldEqualFold(FieldImprovementDescription, v))
}

// ImprovementDescriptionContainsFold applies the ContainsFold predicate on the "improvement_description" field.
func ImprovementDescriptionContainsFold(v string) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldContainsFold(FieldImprovementDescription, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldLTE(FieldPriority, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v models.ImprovementStatus) predicate.AgentImprovement {
	vc := v
	return predicate.AgentImprovement(sql.FieldEQ(FieldStatus, vc))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v models.ImprovementStatus) predicate.AgentImprovement {
	vc := v
	return predicate.AgentImprovement(sql.FieldNEQ(FieldStatus, vc))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...models.ImprovementStatus) predicate.AgentImprovement {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.AgentImprovement(sql.FieldIn(FieldStatus, v...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...models.ImprovementStatus) predicate.AgentImprovement {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.AgentImprovement(sql.FieldNotIn(FieldStatus, v...))
}

// ImplementedAtEQ applies the EQ predicate on the "implemented_at" field.
func ImplementedAtEQ(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldEQ(FieldImplementedAt, v))
}

// ImplementedAtNEQ applies the NEQ predicate on the "implemented_at" field.
func ImplementedAtNEQ(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldNEQ(FieldImplementedAt, v))
}

// ImplementedAtIn applies the In predicate on the "implemented_at" field.
func ImplementedAtIn(vs ...time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldIn(FieldImplementedAt, vs...))
}

// ImplementedAtNotIn applies the NotIn predicate on the "implemented_at" field.
func ImplementedAtNotIn(vs ...time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldNotIn(FieldImplementedAt, vs...))
}

// ImplementedAtGT applies the GT predicate on the "implemented_at" field.
func ImplementedAtGT(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldGT(FieldImplementedAt, v))
}

// ImplementedAtGTE applies the GTE predicate on the "implemented_at" field.
func ImplementedAtGTE(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldGTE(FieldImplementedAt, v))
}

// ImplementedAtLT applies the LT predicate on the "implemented_at" field.
func ImplementedAtLT(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldLT(FieldImplementedAt, v))
}

// ImplementedAtLTE applies the LTE predicate on the "implemented_at" field.
func ImplementedAtLTE(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldLTE(FieldImplementedAt, v))
}

// ImplementedAtIsNil applies the IsNil predicate on the "implemented_at" field.
func ImplementedAtIsNil() predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldIsNull(FieldImplementedAt))
}

// ImplementedAtNotNil applies the NotNil predicate on the "implemented_at" field.
func ImplementedAtNotNil() predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldNotNull(FieldImplementedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.AgentImprovement {
	return predicate.AgentImprovement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.AgentImprovement {
	return predicate.AgentImprovement(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChanges applies the HasEdge predicate on the "changes" edge.
func HasChanges() predicate.AgentImprovement {
	return predicate.AgentImprovement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChangesTable, ChangesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChangesWith applies the HasEdge predicate on the "changes" edge with a given conditions (other predicates).
func HasChangesWith(preds ...predicate.AgentChange) predicate.AgentImprovement {
	return predicate.AgentImprovement(func(s *sql.Selector) {
		step := newChangesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentImprovement) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentImprovement) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentImprovement) predicate.AgentImprovement {
	return predicate.AgentImprovement(sql.NotPredicates(p))
}
