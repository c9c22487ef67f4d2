// Code generated by ent, DO NOT EDIT.

package agentinvocation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/agent-tracker/ent/predicate"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldAgentID, v))
}

// TaskDescription applies equality check predicate on the "task_description" field. It's identical to TaskDescriptionEQ.
func TaskDescription(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldTaskDescription, v))
}

// ContextNotes applies equality check predicate on the "context_notes" field. It's identical to ContextNotesEQ.
func ContextNotes(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldContextNotes, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldDurationMinutes, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldSuccess, v))
}

// SatisfactionRating applies equality check predicate on the "satisfaction_rating" field. It's identical to SatisfactionRatingEQ.
func SatisfactionRating(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldSatisfactionRating, v))
}

// OutcomeNotes applies equality check predicate on the "outcome_notes" field. It's identical to OutcomeNotesEQ.
func OutcomeNotes(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldOutcomeNotes, v))
}

// TokensInput applies equality check predicate on the "tokens_input" field. It's identical to TokensInputEQ.
func TokensInput(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldTokensInput, v))
}

// TokensOutput applies equality check predicate on the "tokens_output" field. It's identical to TokensOutputEQ.
func TokensOutput(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldTokensOutput, v))
}

// TokensTotal applies equality check predicate on the "tokens_total" field. It's identical to TokensTotalEQ.
func TokensTotal(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldTokensTotal, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldAgentID, vs...))
}

// TaskDescriptionEQ applies the EQ predicate on the "task_description" field.
func TaskDescriptionEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldTaskDescription, v))
}

// TaskDescriptionNEQ applies the NEQ predicate on the "task_description" field.
func TaskDescriptionNEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldTaskDescription, v))
}

// TaskDescriptionIn applies the In predicate on the "task_description" field.
func TaskDescriptionIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldTaskDescription, vs...))
}

// TaskDescriptionNotIn applies the NotIn predicate on the "task_description" field.
func TaskDescriptionNotIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldTaskDescription, vs...))
}

// TaskDescriptionGT applies the GT predicate on the "task_description" field.
func TaskDescriptionGT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldTaskDescription, v))
}

// TaskDescriptionGTE applies the GTE predicate on the "task_description" field.
func TaskDescriptionGTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldTaskDescription, v))
}

// TaskDescriptionLT applies the LT predicate on the "task_description" field.
func TaskDescriptionLT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldTaskDescription, v))
}

// TaskDescriptionLTE applies the LTE predicate on the "task_description" field.
func TaskDescriptionLTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldTaskDescription, v))
}

// TaskDescriptionContains applies the Contains predicate on the "task_description" field.
func TaskDescriptionContains(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContains(FieldTaskDescription, v))
}

// TaskDescriptionHasPrefix applies the HasPrefix predicate on the "task_description" field.
func TaskDescriptionHasPrefix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasPrefix(FieldTaskDescription, v))
}

// TaskDescriptionHasSuffix applies the HasSuffix predicate on the "task_description" field.
func TaskDescriptionHasSuffix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasSuffix(FieldTaskDescription, v))
}

// TaskDescriptionEqualFold applies the EqualFold predicate on the "task_description" field.
func TaskDescriptionEqualFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEqualFold(FieldTaskDescription, v))
}

// TaskDescriptionContainsFold applies the ContainsFold predicate on the "task_description" field.
func TaskDescriptionContainsFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContainsFold(FieldTaskDescription, v))
}

// InvocationModeEQ applies the EQ predicate on the "invocation_mode" field.
func InvocationModeEQ(v models.InvocationMode) predicate.AgentInvocation {
	vc := v
	return predicate.AgentInvocation(sql.FieldEQ(FieldInvocationMode, vc))
}

// InvocationModeNEQ applies the NEQ predicate on the "invocation_mode" field.
func InvocationModeNEQ(v models.InvocationMode) predicate.AgentInvocation {
	vc := v
	return predicate.AgentInvocation(sql.FieldNEQ(FieldInvocationMode, vc))
}

// InvocationModeIn applies the In predicate on the "invocation_mode" field.
func InvocationModeIn(vs ...models.InvocationMode) predicate.AgentInvocation {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.AgentInvocation(sql.FieldIn(FieldInvocationMode, v...))
}

// InvocationModeNotIn applies the NotIn predicate on the "invocation_mode" field.
func InvocationModeNotIn(vs ...models.InvocationMode) predicate.AgentInvocation {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.AgentInvocation(sql.FieldNotIn(FieldInvocationMode, v...))
}

// ContextNotesEQ applies the EQ predicate on the "context_notes" field.
func ContextNotesEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldContextNotes, v))
}

// ContextNotesNEQ applies the NEQ predicate on the "context_notes" field.
func ContextNotesNEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldContextNotes, v))
}

// ContextNotesIn applies the In predicate on the "context_notes" field.
func ContextNotesIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldContextNotes, vs...))
}

// ContextNotesNotIn applies the NotIn predicate on the "context_notes" field.
func ContextNotesNotIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldContextNotes, vs...))
}

// ContextNotesGT applies the GT predicate on the "context_notes" field.
func ContextNotesGT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldContextNotes, v))
}

// ContextNotesGTE applies the GTE predicate on the "context_notes" field.
func ContextNotesGTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldContextNotes, v))
}

// ContextNotesLT applies the LT predicate on the "context_notes" field.
func ContextNotesLT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldContextNotes, v))
}

// ContextNotesLTE applies the LTE predicate on the "context_notes" field.
func ContextNotesLTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldContextNotes, v))
}

// ContextNotesContains applies the Contains predicate on the "context_notes" field.
func ContextNotesContains(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContains(FieldContextNotes, v))
}

// ContextNotesHasPrefix applies the HasPrefix predicate on the "context_notes" field.
func ContextNotesHasPrefix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasPrefix(FieldContextNotes, v))
}

// ContextNotesHasSuffix applies the HasSuffix predicate on the "context_notes" field.
func ContextNotesHasSuffix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasSuffix(FieldContextNotes, v))
}

// ContextNotesIsNil applies the IsNil predicate on the "context_notes" field.
func ContextNotesIsNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIsNull(FieldContextNotes))
}

// ContextNotesNotNil applies the NotNil predicate on the "context_notes" field.
func ContextNotesNotNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotNull(FieldContextNotes))
}

// ContextNotesEqualFold applies the EqualFold predicate on the "context_notes" field.
func ContextNotesEqualFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEqualFold(FieldContextNotes, v))
}

// ContextNotesContainsFold applies the ContainsFold predicate on the "context_notes" field.
func ContextNotesContainsFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContainsFold(FieldContextNotes, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldDurationMinutes, v))
}

// DurationMinutesIsNil applies the IsNil predicate on the "duration_minutes" field.
func DurationMinutesIsNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIsNull(FieldDurationMinutes))
}

// DurationMinutesNotNil applies the NotNil predicate on the "duration_minutes" field.
func DurationMinutesNotNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotNull(FieldDurationMinutes))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldSuccess, v))
}

// SuccessIsNil applies the IsNil predicate on the "success" field.
func SuccessIsNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIsNull(FieldSuccess))
}

// SuccessNotNil applies the NotNil predicate on the "success" field.
func SuccessNotNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotNull(FieldSuccess))
}

// SatisfactionRatingEQ applies the EQ predicate on the "satisfaction_rating" field.
func SatisfactionRatingEQ(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldSatisfactionRating, v))
}

// SatisfactionRatingNEQ applies the NEQ predicate on the "satisfaction_rating" field.
func SatisfactionRatingNEQ(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldSatisfactionRating, v))
}

// SatisfactionRatingIn applies the In predicate on the "satisfaction_rating" field.
func SatisfactionRatingIn(vs ...int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldSatisfactionRating, vs...))
}

// SatisfactionRatingNotIn applies the NotIn predicate on the "satisfaction_rating" field.
func SatisfactionRatingNotIn(vs ...int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldSatisfactionRating, vs...))
}

// SatisfactionRatingGT applies the GT predicate on the "satisfaction_rating" field.
func SatisfactionRatingGT(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldSatisfactionRating, v))
}

// SatisfactionRatingGTE applies the GTE predicate on the "satisfaction_rating" field.
func SatisfactionRatingGTE(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldSatisfactionRating, v))
}

// SatisfactionRatingLT applies the LT predicate on the "satisfaction_rating" field.
func SatisfactionRatingLT(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldSatisfactionRating, v))
}

// SatisfactionRatingLTE applies the LTE predicate on the "satisfaction_rating" field.
func SatisfactionRatingLTE(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldSatisfactionRating, v))
}

// SatisfactionRatingIsNil applies the IsNil predicate on the "satisfaction_rating" field.
func SatisfactionRatingIsNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIsNull(FieldSatisfactionRating))
}

// SatisfactionRatingNotNil applies the NotNil predicate on the "satisfaction_rating" field.
func SatisfactionRatingNotNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotNull(FieldSatisfactionRating))
}

// OutcomeNotesEQ applies the EQ predicate on the "outcome_notes" field.
func OutcomeNotesEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldOutcomeNotes, v))
}

// OutcomeNotesNEQ applies the NEQ predicate on the "outcome_notes" field.
func OutcomeNotesNEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldOutcomeNotes, v))
}

// OutcomeNotesIn applies the In predicate on the "outcome_notes" field.
func OutcomeNotesIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldOutcomeNotes, vs...))
}

// OutcomeNotesNotIn applies the NotIn predicate on the "outcome_notes" field.
func OutcomeNotesNotIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldOutcomeNotes, vs...))
}

// OutcomeNotesGT applies the GT predicate on the "outcome_notes" field.
func OutcomeNotesGT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldOutcomeNotes, v))
}

// OutcomeNotesGTE applies the GTE predicate on the "outcome_notes" field.
func OutcomeNotesGTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldOutcomeNotes, v))
}

// OutcomeNotesLT applies the LT predicate on the "outcome_notes" field.
func OutcomeNotesLT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldOutcomeNotes, v))
}

// OutcomeNotesLTE applies the LTE predicate on the "outcome_notes" field.
func OutcomeNotesLTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldOutcomeNotes, v))
}

// OutcomeNotesContains applies the Contains predicate on the "outcome_notes" field.
func OutcomeNotesContains(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContains(FieldOutcomeNotes, v))
}

// OutcomeNotesHasPrefix applies the HasPrefix predicate on the "outcome_notes" field.
func OutcomeNotesHasPrefix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasPrefix(FieldOutcomeNotes, v))
}

// OutcomeNotesHasSuffix applies the HasSuffix predicate on the "outcome_notes" field.
func OutcomeNotesHasSuffix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasSuffix(FieldOutcomeNotes, v))
}

// OutcomeNotesIsNil applies the IsNil predicate on the "outcome_notes" field.
func OutcomeNotesIsNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIsNull(FieldOutcomeNotes))
}

// OutcomeNotesNotNil applies the NotNil predicate on the "outcome_notes" field.
func OutcomeNotesNotNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotNull(FieldOutcomeNotes))
}

// OutcomeNotesEqualFold applies the EqualFold predicate on the "outcome_notes" field.
func OutcomeNotesEqualFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEqualFold(FieldOutcomeNotes, v))
}

// OutcomeNotesContainsFold applies the ContainsFold predicate on the "outcome_notes" field.
func OutcomeNotesContainsFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContainsFold(FieldOutcomeNotes, v))
}

// TokensInputEQ applies the EQ predicate on the "tokens_input" field.
func TokensInputEQ(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldTokensInput, v))
}

// TokensInputNEQ applies the NEQ predicate on the "tokens_input" field.
func TokensInputNEQ(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldTokensInput, v))
}

// TokensInputIn applies the In predicate on the "tokens_input" field.
func TokensInputIn(vs ...int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldTokensInput, vs...))
}

// TokensInputNotIn applies the NotIn predicate on the "tokens_input" field.
func TokensInputNotIn(vs ...int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldTokensInput, vs...))
}

// TokensInputGT applies the GT predicate on the "tokens_input" field.
func TokensInputGT(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldTokensInput, v))
}

// TokensInputGTE applies the GTE predicate on the "tokens_input" field.
func TokensInputGTE(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldTokensInput, v))
}

// TokensInputLT applies the LT predicate on the "tokens_input" field.
func TokensInputLT(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldTokensInput, v))
}

// TokensInputLTE applies the LTE predicate on the "tokens_input" field.
func TokensInputLTE(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldTokensInput, v))
}

// TokensInputIsNil applies the IsNil predicate on the "tokens_input" field.
func TokensInputIsNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIsNull(FieldTokensInput))
}

// TokensInputNotNil applies the NotNil predicate on the "tokens_input" field.
func TokensInputNotNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotNull(FieldTokensInput))
}

// TokensOutputEQ applies the EQ predicate on the "tokens_output" field.
func TokensOutputEQ(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldTokensOutput, v))
}

// TokensOutputNEQ applies the NEQ predicate on the "tokens_output" field.
func TokensOutputNEQ(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldTokensOutput, v))
}

// TokensOutputIn applies the In predicate on the "tokens_output" field.
func TokensOutputIn(vs ...int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldTokensOutput, vs...))
}

// TokensOutputNotIn applies the NotIn predicate on the "tokens_output" field.
func TokensOutputNotIn(vs ...int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldTokensOutput, vs...))
}

// TokensOutputGT applies the GT predicate on the "tokens_output" field.
func TokensOutputGT(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldTokensOutput, v))
}

// TokensOutputGTE applies the GTE predicate on the "tokens_output" field.
func TokensOutputGTE(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldTokensOutput, v))
}

// TokensOutputLT applies the LT predicate on the "tokens_output" field.
func TokensOutputLT(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldTokensOutput, v))
}

// TokensOutputLTE applies the LTE predicate on the "tokens_output" field.
func TokensOutputLTE(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldTokensOutput, v))
}

// TokensOutputIsNil applies the IsNil predicate on the "tokens_output" field.
func TokensOutputIsNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIsNull(FieldTokensOutput))
}

// TokensOutputNotNil applies the NotNil predicate on the "tokens_output" field.
func TokensOutputNotNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotNull(FieldTokensOutput))
}

// TokensTotalEQ applies the EQ predicate on the "tokens_total" field.
func TokensTotalEQ(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldTokensTotal, v))
}

// TokensTotalNEQ applies the NEQ predicate on the "tokens_total" field.
func TokensTotalNEQ(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldTokensTotal, v))
}

// TokensTotalIn applies the In predicate on the "tokens_total" field.
func TokensTotalIn(vs ...int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldTokensTotal, vs...))
}

// TokensTotalNotIn applies the NotIn predicate on the "tokens_total" field.
func TokensTotalNotIn(vs ...int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldTokensTotal, vs...))
}

// TokensTotalGT applies the GT predicate on the "tokens_total" field.
func TokensTotalGT(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldTokensTotal, v))
}

// TokensTotalGTE applies the GTE predicate on the "tokens_total" field.
func TokensTotalGTE(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldTokensTotal, v))
}

// TokensTotalLT applies the LT predicate on the "tokens_total" field.
func TokensTotalLT(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldTokensTotal, v))
}

// TokensTotalLTE applies the LTE predicate on the "tokens_total" field.
func TokensTotalLTE(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldTokensTotal, v))
}

// TokensTotalIsNil applies the IsNil predicate on the "tokens_total" field.
func TokensTotalIsNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIsNull(FieldTokensTotal))
}

// TokensTotalNotNil applies the NotNil predicate on the "tokens_total" field.
func TokensTotalNotNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotNull(FieldTokensTotal))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.AgentInvocation {
	return predicate.AgentInvocation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.AgentInvocation {
	return predicate.AgentInvocation(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasIssues applies the HasEdge predicate on the "issues" edge.
func HasIssues() predicate.AgentInvocation {
	return predicate.AgentInvocation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, IssuesTable, IssuesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIssuesWith applies the HasEdge predicate on the "issues" edge with a given conditions (other predicates).
func HasIssuesWith(preds ...predicate.AgentIssue) predicate.AgentInvocation {
	return predicate.AgentInvocation(func(s *sql.Selector) {
		step := newIssuesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChanges applies the HasEdge predicate on the "changes" edge.
func HasChanges() predicate.AgentInvocation {
	return predicate.AgentInvocation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChangesTable, ChangesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChangesWith applies the HasEdge predicate on the "changes" edge with a given conditions (other predicates).
func HasChangesWith(preds ...predicate.AgentChange) predicate.AgentInvocation {
	return predicate.AgentInvocation(func(s *sql.Selector) {
		step := newChangesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentInvocation) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentInvocation) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentInvocation) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.NotPredicates(p))
}
