// Code generated by ent, DO NOT EDIT.

package agentchange

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/agent-tracker/ent/predicate"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldLTE(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldAgentID, v))
}

// ChangeDescription applies equality check predicate on the "change_description" field. It's identical to ChangeDescriptionEQ.
func ChangeDescription(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldChangeDescription, v))
}

// BeforeValue applies equality check predicate on the "before_value" field. It's identical to BeforeValueEQ.
func BeforeValue(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldBeforeValue, v))
}

// AfterValue applies equality check predicate on the "after_value" field. It's identical to AfterValueEQ.
func AfterValue(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldAfterValue, v))
}

// AgentInvocationID applies equality check predicate on the "agent_invocation_id" field. It's identical to AgentInvocationIDEQ.
func AgentInvocationID(v int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldAgentInvocationID, v))
}

// AgentIssueID applies equality check predicate on the "agent_issue_id" field. It's identical to AgentIssueIDEQ.
func AgentIssueID(v int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldAgentIssueID, v))
}

// AgentImprovementID applies equality check predicate on the "agent_improvement_id" field. It's identical to AgentImprovementIDEQ.
func AgentImprovementID(v int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldAgentImprovementID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNotIn(FieldAgentID, vs...))
}

// ChangeTypeEQ applies the EQ predicate on the "change_type" field.
func ChangeTypeEQ(v models.ChangeType) predicate.AgentChange {
	vc := v
	return predicate.AgentChange(sql.FieldEQ(FieldChangeType, vc))
}

// ChangeTypeNEQ applies the NEQ predicate on the "change_type" field.
func ChangeTypeNEQ(v models.ChangeType) predicate.AgentChange {
	vc := v
	return predicate.AgentChange(sql.FieldNEQ(FieldChangeType, vc))
}

// ChangeTypeIn applies the In predicate on the "change_type" field.
func ChangeTypeIn(vs ...models.ChangeType) predicate.AgentChange {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.AgentChange(sql.FieldIn(FieldChangeType, v...))
}

// ChangeTypeNotIn applies the NotIn predicate on the "change_type" field.
func ChangeTypeNotIn(vs ...models.ChangeType) predicate.AgentChange {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.AgentChange(sql.FieldNotIn(FieldChangeType, v...))
}

// ChangeDescriptionEQ applies the EQ predicate on the "change_description" field.
func ChangeDescriptionEQ(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldChangeDescription, v))
}

// ChangeDescriptionNEQ applies the NEQ predicate on the "change_description" field.
func ChangeDescriptionNEQ(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNEQ(FieldChangeDescription, v))
}

// ChangeDescriptionIn applies the In predicate on the "change_description" field.
func ChangeDescriptionIn(vs ...string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldIn(FieldChangeDescription, vs...))
}

// ChangeDescriptionNotIn applies the NotIn predicate on the "change_description" field.
func ChangeDescriptionNotIn(vs ...string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNotIn(FieldChangeDescription, vs...))
}

// ChangeDescriptionGT applies the GT predicate on the "change_description" field.
func ChangeDescriptionGT(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldGT(FieldChangeDescription, v))
}

// ChangeDescriptionGTE applies the GTE predicate on the "change_description" field.
func ChangeDescriptionGTE(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldGTE(FieldChangeDescription, v))
}

// ChangeDescriptionLT applies the LT predicate on the "change_description" field.
func ChangeDescriptionLT(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldLT(FieldChangeDescription, v))
}

// ChangeDescriptionLTE applies the LTE predicate on the "change_description" field.
func ChangeDescriptionLTE(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldLTE(FieldChangeDescription, v))
}

// ChangeDescriptionContains applies the Contains predicate on the "change_description" field.
func ChangeDescriptionContains(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldContains(FieldChangeDescription, v))
}

// ChangeDescriptionHasPrefix applies the HasPrefix predicate on the "change_description" field.
func ChangeDescriptionHasPrefix(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldHasPrefix(FieldChangeDescription, v))
}

// ChangeDescriptionHasSuffix applies the HasSuffix predicate on the "change_description" field.
func ChangeDescriptionHasSuffix(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldHasSuffix(FieldChangeDescription, v))
}

// ChangeDescriptionEqualFold applies the EqualFold predicate on the "change_description" field.
func ChangeDescriptionEqualFold(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEqualFold(FieldChangeDescription, v))
}

// ChangeDescriptionContainsFold applies the ContainsFold predicate on the "change_description" field.
func ChangeDescriptionContainsFold(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldContainsFold(FieldChangeDescription, v))
}

// BeforeValueEQ applies the EQ predicate on the "before_value" field.
func BeforeValueEQ(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldBeforeValue, v))
}

// BeforeValueNEQ applies the NEQ predicate on the "before_value" field.
func BeforeValueNEQ(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNEQ(FieldBeforeValue, v))
}

// BeforeValueIn applies the In predicate on the "before_value" field.
func BeforeValueIn(vs ...string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldIn(FieldBeforeValue, vs...))
}

// BeforeValueNotIn applies the NotIn predicate on the "before_value" field.
func BeforeValueNotIn(vs ...string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNotIn(FieldBeforeValue, vs...))
}

// BeforeValueGT applies the GT predicate on the "before_value" field.
func BeforeValueGT(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldGT(FieldBeforeValue, v))
}

// BeforeValueGTE applies the GTE predicate on the "before_value" field.
func BeforeValueGTE(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldGTE(FieldBeforeValue, v))
}

// BeforeValueLT applies the LT predicate on the "before_value" field.
func BeforeValueLT(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldLT(FieldBeforeValue, v))
}

// BeforeValueLTE applies the LTE predicate on the "before_value" field.
func BeforeValueLTE(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldLTE(FieldBeforeValue, v))
}

// BeforeValueContains applies the Contains predicate on the "before_value" field.
func BeforeValueContains(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldContains(FieldBeforeValue, v))
}

// BeforeValueHasPrefix applies the HasPrefix predicate on the "before_value" field.
func BeforeValueHasPrefix(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldHasPrefix(FieldBeforeValue, v))
}

// BeforeValueHasSuffix applies the HasSuffix predicate on the "before_value" field.
func BeforeValueHasSuffix(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldHasSuffix(FieldBeforeValue, v))
}

// BeforeValueIsNil applies the IsNil predicate on the "before_value" field.
func BeforeValueIsNil() predicate.AgentChange {
	return predicate.AgentChange(sql.FieldIsNull(FieldBeforeValue))
}

// BeforeValueNotNil applies the NotNil predicate on the "before_value" field.
func BeforeValueNotNil() predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNotNull(FieldBeforeValue))
}

// BeforeValueEqualFold applies the EqualFold predicate on the "before_value" field.
func BeforeValueEqualFold(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEqualFold(FieldBeforeValue, v))
}

// BeforeValueContainsFold applies the ContainsFold predicate on the "before_value" field.
func BeforeValueContainsFold(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldContainsFold(FieldBeforeValue, v))
}

// AfterValueEQ applies the EQ predicate on the "after_value" field.
func AfterValueEQ(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldAfterValue, v))
}

// AfterValueNEQ applies the NEQ predicate on the "after_value" field.
func AfterValueNEQ(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNEQ(FieldAfterValue, v))
}

// AfterValueIn applies the In predicate on the "after_value" field.
func AfterValueIn(vs ...string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldIn(FieldAfterValue, vs...))
}

// AfterValueNotIn applies the NotIn predicate on the "after_value" field.
func AfterValueNotIn(vs ...string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNotIn(FieldAfterValue, vs...))
}

// AfterValueGT applies the GT predicate on the "after_value" field.
func AfterValueGT(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldGT(FieldAfterValue, v))
}

// AfterValueGTE applies the GTE predicate on the "after_value" field.
func AfterValueGTE(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldGTE(FieldAfterValue, v))
}

// AfterValueLT applies the LT predicate on the "after_value" field.
func AfterValueLT(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldLT(FieldAfterValue, v))
}

// AfterValueLTE applies the LTE predicate on the "after_value" field.
func AfterValueLTE(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldLTE(FieldAfterValue, v))
}

// AfterValueContains applies the Contains predicate on the "after_value" field.
func AfterValueContains(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldContains(FieldAfterValue, v))
}

// AfterValueHasPrefix applies the HasPrefix predicate on the "after_value" field.
func AfterValueHasPrefix(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldHasPrefix(FieldAfterValue, v))
}

// AfterValueHasSuffix applies the HasSuffix predicate on the "after_value" field.
func AfterValueHasSuffix(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldHasSuffix(FieldAfterValue, v))
}

// AfterValueIsNil applies the IsNil predicate on the "after_value" field.
func AfterValueIsNil() predicate.AgentChange {
	return predicate.AgentChange(sql.FieldIsNull(FieldAfterValue))
}

// AfterValueNotNil applies the NotNil predicate on the "after_value" field.
func AfterValueNotNil() predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNotNull(FieldAfterValue))
}

// AfterValueEqualFold applies the EqualFold predicate on the "after_value" field.
func AfterValueEqualFold(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEqualFold(FieldAfterValue, v))
}

// AfterValueContainsFold applies the ContainsFold predicate on the "after_value" field.
func AfterValueContainsFold(v string) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldContainsFold(FieldAfterValue, v))
}

// TriggeredByEQ applies the EQ predicate on the "triggered_by" field.
func TriggeredByEQ(v models.TriggeredBy) predicate.AgentChange {
	vc := v
	return predicate.AgentChange(sql.FieldEQ(FieldTriggeredBy, vc))
}

// TriggeredByNEQ applies the NEQ predicate on the "triggered_by" field.
func TriggeredByNEQ(v models.TriggeredBy) predicate.AgentChange {
	vc := v
	return predicate.AgentChange(sql.FieldNEQ(FieldTriggeredBy, vc))
}

// TriggeredByIn applies the In predicate on the "triggered_by" field.
func TriggeredByIn(vs ...models.TriggeredBy) predicate.AgentChange {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.AgentChange(sql.FieldIn(FieldTriggeredBy, v...))
}

// TriggeredByNotIn applies the NotIn predicate on the "triggered_by" field.
func TriggeredByNotIn(vs ...models.TriggeredBy) predicate.AgentChange {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.AgentChange(sql.FieldNotIn(FieldTriggeredBy, v...))
}

// AgentInvocationIDEQ applies the EQ predicate on the "agent_invocation_id" field.
func AgentInvocationIDEQ(v int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldAgentInvocationID, v))
}

// AgentInvocationIDNEQ applies the NEQ predicate on the "agent_invocation_id" field.
func AgentInvocationIDNEQ(v int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNEQ(FieldAgentInvocationID, v))
}

// AgentInvocationIDIn applies the In predicate on the "agent_invocation_id" field.
func AgentInvocationIDIn(vs ...int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldIn(FieldAgentInvocationID, vs...))
}

// AgentInvocationIDNotIn applies the NotIn predicate on the "agent_invocation_id" field.
func AgentInvocationIDNotIn(vs ...int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNotIn(FieldAgentInvocationID, vs...))
}

// AgentInvocationIDIsNil applies the IsNil predicate on the "agent_invocation_id" field.
func AgentInvocationIDIsNil() predicate.AgentChange {
	return predicate.AgentChange(sql.FieldIsNull(FieldAgentInvocationID))
}

// AgentInvocationIDNotNil applies the NotNil predicate on the "agent_invocation_id" field.
func AgentInvocationIDNotNil() predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNotNull(FieldAgentInvocationID))
}

// AgentIssueIDEQ applies the EQ predicate on the "agent_issue_id" field.
func AgentIssueIDEQ(v int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldAgentIssueID, v))
}

// AgentIssueIDNEQ applies the NEQ predicate on the "agent_issue_id" field.
func AgentIssueIDNEQ(v int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNEQ(FieldAgentIssueID, v))
}

// AgentIssueIDIn applies the In predicate on the "agent_issue_id" field.
func AgentIssueIDIn(vs ...int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldIn(FieldAgentIssueID, vs...))
}

// AgentIssueIDNotIn applies the NotIn predicate on the "agent_issue_id" field.
func AgentIssueIDNotIn(vs ...int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNotIn(FieldAgentIssueID, vs...))
}

// AgentIssueIDIsNil applies the IsNil predicate on the "agent_issue_id" field.
func AgentIssueIDIsNil() predicate.AgentChange {
	return predicate.AgentChange(sql.FieldIsNull(FieldAgentIssueID))
}

// AgentIssueIDNotNil applies the NotNil predicate on the "agent_issue_id" field.
func AgentIssueIDNotNil() predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNotNull(FieldAgentIssueID))
}

// AgentImprovementIDEQ applies the EQ predicate on the "agent_improvement_id" field.
func AgentImprovementIDEQ(v int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldAgentImprovementID, v))
}

// AgentImprovementIDNEQ applies the NEQ predicate on the "agent_improvement_id" field.
func AgentImprovementIDNEQ(v int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNEQ(FieldAgentImprovementID, v))
}

// AgentImprovementIDIn applies the In predicate on the "agent_improvement_id" field.
func AgentImprovementIDIn(vs ...int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldIn(FieldAgentImprovementID, vs...))
}

// AgentImprovementIDNotIn applies the NotIn predicate on the "agent_improvement_id" field.
func AgentImprovementIDNotIn(vs ...int) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNotIn(FieldAgentImprovementID, vs...))
}

// AgentImprovementIDIsNil applies the IsNil predicate on the "agent_improvement_id" field.
func AgentImprovementIDIsNil() predicate.AgentChange {
	return predicate.AgentChange(sql.FieldIsNull(FieldAgentImprovementID))
}

// AgentImprovementIDNotNil applies the NotNil predicate on the "agent_improvement_id" field.
func AgentImprovementIDNotNil() predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNotNull(FieldAgentImprovementID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentChange {
	return predicate.AgentChange(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.AgentChange {
	return predicate.AgentChange(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.AgentChange {
	return predicate.AgentChange(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInvocation applies the HasEdge predicate on the "invocation" edge.
func HasInvocation() predicate.AgentChange {
	return predicate.AgentChange(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InvocationTable, InvocationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvocationWith applies the HasEdge predicate on the "invocation" edge with a given conditions (other predicates).
func HasInvocationWith(preds ...predicate.AgentInvocation) predicate.AgentChange {
	return predicate.AgentChange(func(s *sql.Selector) {
		step := newInvocationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasIssue applies the HasEdge predicate on the "issue" edge.
func HasIssue() predicate.AgentChange {
	return predicate.AgentChange(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IssueTable, IssueColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIssueWith applies the HasEdge predicate on the "issue" edge with a given conditions (other predicates).
func HasIssueWith(preds ...predicate.AgentIssue) predicate.AgentChange {
	return predicate.AgentChange(func(s *sql.Selector) {
		step := newIssueStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasImprovement applies the HasEdge predicate on the "improvement" edge.
func HasImprovement() predicate.AgentChange {
	return predicate.AgentChange(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ImprovementTable, ImprovementColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImprovementWith applies the HasEdge predicate on the "improvement" edge with a given conditions (other predicates).
func HasImprovementWith(preds ...predicate.AgentImprovement) predicate.AgentChange {
	return predicate.AgentChange(func(s *sql.Selector) {
		step := newImprovementStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentChange) predicate.AgentChange {
	return predicate.AgentChange(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentChange) predicate.AgentChange {
	return predicate.AgentChange(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentChange) predicate.AgentChange {
	return predicate.AgentChange(sql.NotPredicates(p))
}
