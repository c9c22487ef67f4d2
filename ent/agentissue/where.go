// Code generated by ent, DO NOT EDIT.

package agentissue

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/agent-tracker/ent/predicate"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldLTE(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEQ(FieldAgentID, v))
}

// AgentInvocationID applies equality check predicate on the "agent_invocation_id" field. It's identical to AgentInvocationIDEQ.
func AgentInvocationID(v int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEQ(FieldAgentInvocationID, v))
}

// IssueDescription applies equality check predicate on the "issue_description" field. It's identical to IssueDescriptionEQ.
func IssueDescription(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEQ(FieldIssueDescription, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEQ(FieldSeverity, v))
}

// ResolutionNotes applies equality check predicate on the "resolution_notes" field. It's identical to ResolutionNotesEQ.
func ResolutionNotes(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEQ(FieldResolutionNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentInvocationIDEQ applies the EQ predicate on the "agent_invocation_id" field.
func AgentInvocationIDEQ(v int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEQ(FieldAgentInvocationID, v))
}

// AgentInvocationIDNEQ applies the NEQ predicate on the "agent_invocation_id" field.
func AgentInvocationIDNEQ(v int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNEQ(FieldAgentInvocationID, v))
}

// AgentInvocationIDIn applies the In predicate on the "agent_invocation_id" field.
func AgentInvocationIDIn(vs ...int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldIn(FieldAgentInvocationID, vs...))
}

// AgentInvocationIDNotIn applies the NotIn predicate on the "agent_invocation_id" field.
func AgentInvocationIDNotIn(vs ...int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNotIn(FieldAgentInvocationID, vs...))
}

// AgentInvocationIDIsNil applies the IsNil predicate on the "agent_invocation_id" field.
func AgentInvocationIDIsNil() predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldIsNull(FieldAgentInvocationID))
}

// AgentInvocationIDNotNil applies the NotNil predicate on the "agent_invocation_id" field.
func AgentInvocationIDNotNil() predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNotNull(FieldAgentInvocationID))
}

// IssueDescriptionEQ applies the EQ predicate on the "issue_description" field.
func IssueDescriptionEQ(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEQ(FieldIssueDescription, v))
}

// IssueDescriptionNEQ applies the NEQ predicate on the "issue_description" field.
func IssueDescriptionNEQ(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNEQ(FieldIssueDescription, v))
}

// IssueDescriptionIn applies the In predicate on the "issue_description" field.
func IssueDescriptionIn(vs ...string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldIn(FieldIssueDescription, vs...))
}

// IssueDescriptionNotIn applies the NotIn predicate on the "issue_description" field.
func IssueDescriptionNotIn(vs ...string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNotIn(FieldIssueDescription, vs...))
}

// IssueDescriptionGT applies the GT predicate on the "issue_description" field.
func IssueDescriptionGT(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldGT(FieldIssueDescription, v))
}

// IssueDescriptionGTE applies the GTE predicate on the "issue_description" field.
func IssueDescriptionGTE(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldGTE(FieldIssueDescription, v))
}

// IssueDescriptionLT applies the LT predicate on the "issue_description" field.
func IssueDescriptionLT(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldLT(FieldIssueDescription, v))
}

// IssueDescriptionLTE applies the LTE predicate on the "issue_description" field.
func IssueDescriptionLTE(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldLTE(FieldIssueDescription, v))
}

// IssueDescriptionContains applies the Contains predicate on the "issue_description" field.
func IssueDescriptionContains(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldContains(FieldIssueDescription, v))
}

// IssueDescriptionHasPrefix applies the HasPrefix predicate on the "issue_description" field.
func IssueDescriptionHasPrefix(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldHasPrefix(FieldIssueDescription, v))
}

// IssueDescriptionHasSuffix applies the HasSuffix predicate on the "issue_description" field.
func IssueDescriptionHasSuffix(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldHasSuffix(FieldIssueDescription, v))
}

// IssueDescriptionEqualFold applies the EqualFold predicate on the "issue_description" field.
func IssueDescriptionEqualFold(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEqualFold(FieldIssueDescription, v))
}

// IssueDescriptionContainsFold applies the ContainsFold predicate on the "issue_description" field.
func IssueDescriptionContainsFold(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldContainsFold(FieldIssueDescription, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v int) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldLTE(FieldSeverity, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v models.IssueStatus) predicate.AgentIssue {
	vc := v
	return predicate.AgentIssue(sql.FieldEQ(FieldStatus, vc))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v models.IssueStatus) predicate.AgentIssue {
	vc := v
	return predicate.AgentIssue(sql.FieldNEQ(FieldStatus, vc))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...models.IssueStatus) predicate.AgentIssue {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.AgentIssue(sql.FieldIn(FieldStatus, v...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...models.IssueStatus) predicate.AgentIssue {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.AgentIssue(sql.FieldNotIn(FieldStatus, v...))
}

// ResolutionNotesEQ applies the EQ predicate on the "resolution_notes" field.
func ResolutionNotesEQ(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEQ(FieldResolutionNotes, v))
}

// ResolutionNotesNEQ applies the NEQ predicate on the "resolution_notes" field.
func ResolutionNotesNEQ(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNEQ(FieldResolutionNotes, v))
}

// ResolutionNotesIn applies the In predicate on the "resolution_notes" field.
func ResolutionNotesIn(vs ...string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldIn(FieldResolutionNotes, vs...))
}

// ResolutionNotesNotIn applies the NotIn predicate on the "resolution_notes" field.
func ResolutionNotesNotIn(vs ...string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNotIn(FieldResolutionNotes, vs...))
}

// ResolutionNotesGT applies the GT predicate on the "resolution_notes" field.
func ResolutionNotesGT(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldGT(FieldResolutionNotes, v))
}

// ResolutionNotesGTE applies the GTE predicate on the "resolution_notes" field.
func ResolutionNotesGTE(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldGTE(FieldResolutionNotes, v))
}

// ResolutionNotesLT applies the LT predicate on the "resolution_notes" field.
func ResolutionNotesLT(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldLT(FieldResolutionNotes, v))
}

// ResolutionNotesLTE applies the LTE predicate on the "resolution_notes" field.
func ResolutionNotesLTE(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldLTE(FieldResolutionNotes, v))
}

// ResolutionNotesContains applies the Contains predicate on the "resolution_notes" field.
func ResolutionNotesContains(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldContains(FieldResolutionNotes, v))
}

// ResolutionNotesHasPrefix applies the HasPrefix predicate on the "resolution_notes" field.
func ResolutionNotesHasPrefix(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldHasPrefix(FieldResolutionNotes, v))
}

// ResolutionNotesHasSuffix applies the HasSuffix predicate on the "resolution_notes" field.
func ResolutionNotesHasSuffix(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldHasSuffix(FieldResolutionNotes, v))
}

// ResolutionNotesIsNil applies the IsNil predicate on the "resolution_notes" field.
func ResolutionNotesIsNil() predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldIsNull(FieldResolutionNotes))
}

// ResolutionNotesNotNil applies the NotNil predicate on the "resolution_notes" field.
func ResolutionNotesNotNil() predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNotNull(FieldResolutionNotes))
}

// ResolutionNotesEqualFold applies the EqualFold predicate on the "resolution_notes" field.
func ResolutionNotesEqualFold(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEqualFold(FieldResolutionNotes, v))
}

// ResolutionNotesContainsFold applies the ContainsFold predicate on the "resolution_notes" field.
func ResolutionNotesContainsFold(v string) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldContainsFold(FieldResolutionNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentIssue {
	return predicate.AgentIssue(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.AgentIssue {
	return predicate.AgentIssue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.AgentIssue {
	return predicate.AgentIssue(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInvocation applies the HasEdge predicate on the "invocation" edge.
func HasInvocation() predicate.AgentIssue {
	return predicate.AgentIssue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InvocationTable, InvocationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvocationWith applies the HasEdge predicate on the "invocation" edge with a given conditions (other predicates).
func HasInvocationWith(preds ...predicate.AgentInvocation) predicate.AgentIssue {
	return predicate.AgentIssue(func(s *sql.Selector) {
		step := newInvocationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChanges applies the HasEdge predicate on the "changes" edge.
func HasChanges() predicate.AgentIssue {
	return predicate.AgentIssue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChangesTable, ChangesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChangesWith applies the HasEdge predicate on the "changes" edge with a given conditions (other predicates).
func HasChangesWith(preds ...predicate.AgentChange) predicate.AgentIssue {
	return predicate.AgentIssue(func(s *sql.Selector) {
		step := newChangesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentIssue) predicate.AgentIssue {
	return predicate.AgentIssue(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentIssue) predicate.AgentIssue {
	return predicate.AgentIssue(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentIssue) predicate.AgentIssue {
	return predicate.AgentIssue(sql.NotPredicates(p))
}
