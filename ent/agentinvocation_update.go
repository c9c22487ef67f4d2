// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentchange"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/ent/predicate"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// AgentInvocationUpdate is the builder for updating AgentInvocation entities.
type AgentInvocationUpdate struct {
	config
	hooks    []Hook
	mutation *AgentInvocationMutation
}

// Where appends a list predicates to the AgentInvocationUpdate builder.
func (_u *AgentInvocationUpdate) Where(ps ...predicate.AgentInvocation) *AgentInvocationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentInvocationUpdate) SetAgentID(v int) *AgentInvocationUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableAgentID(v *int) *AgentInvocationUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetTaskDescription sets the "task_description" field.
func (_u *AgentInvocationUpdate) SetTaskDescription(v string) *AgentInvocationUpdate {
	_u.mutation.SetTaskDescription(v)
	return _u
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableTaskDescription(v *string) *AgentInvocationUpdate {
	if v != nil {
		_u.SetTaskDescription(*v)
	}
	return _u
}

// SetInvocationMode sets the "invocation_mode" field.
func (_u *AgentInvocationUpdate) SetInvocationMode(v models.InvocationMode) *AgentInvocationUpdate {
	_u.mutation.SetInvocationMode(v)
	return _u
}

// SetNillableInvocationMode sets the "invocation_mode" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableInvocationMode(v *models.InvocationMode) *AgentInvocationUpdate {
	if v != nil {
		_u.SetInvocationMode(*v)
	}
	return _u
}

// SetContextNotes sets the "context_notes" field.
func (_u *AgentInvocationUpdate) SetContextNotes(v string) *AgentInvocationUpdate {
	_u.mutation.SetContextNotes(v)
	return _u
}

// SetNillableContextNotes sets the "context_notes" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableContextNotes(v *string) *AgentInvocationUpdate {
	if v != nil {
		_u.SetContextNotes(*v)
	}
	return _u
}

// ClearContextNotes clears the value of the "context_notes" field.
func (_u *AgentInvocationUpdate) ClearContextNotes() *AgentInvocationUpdate {
	_u.mutation.ClearContextNotes()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentInvocationUpdate) SetStartedAt(v time.Time) *AgentInvocationUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableStartedAt(v *time.Time) *AgentInvocationUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentInvocationUpdate) SetCompletedAt(v time.Time) *AgentInvocationUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableCompletedAt(v *time.Time) *AgentInvocationUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentInvocationUpdate) ClearCompletedAt() *AgentInvocationUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *AgentInvocationUpdate) SetDurationMinutes(v int) *AgentInvocationUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableDurationMinutes(v *int) *AgentInvocationUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *AgentInvocationUpdate) AddDurationMinutes(v int) *AgentInvocationUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (_u *AgentInvocationUpdate) ClearDurationMinutes() *AgentInvocationUpdate {
	_u.mutation.ClearDurationMinutes()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AgentInvocationUpdate) SetSuccess(v bool) *AgentInvocationUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableSuccess(v *bool) *AgentInvocationUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// ClearSuccess clears the value of the "success" field.
func (_u *AgentInvocationUpdate) ClearSuccess() *AgentInvocationUpdate {
	_u.mutation.ClearSuccess()
	return _u
}

// SetSatisfactionRating sets the "satisfaction_rating" field.
func (_u *AgentInvocationUpdate) SetSatisfactionRating(v int) *AgentInvocationUpdate {
	_u.mutation.ResetSatisfactionRating()
	_u.mutation.SetSatisfactionRating(v)
	return _u
}

// SetNillableSatisfactionRating sets the "satisfaction_rating" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableSatisfactionRating(v *int) *AgentInvocationUpdate {
	if v != nil {
		_u.SetSatisfactionRating(*v)
	}
	return _u
}

// AddSatisfactionRating adds value to the "satisfaction_rating" field.
func (_u *AgentInvocationUpdate) AddSatisfactionRating(v int) *AgentInvocationUpdate {
	_u.mutation.AddSatisfactionRating(v)
	return _u
}

// ClearSatisfactionRating clears the value of the "satisfaction_rating" field.
func (_u *AgentInvocationUpdate) ClearSatisfactionRating() *AgentInvocationUpdate {
	_u.mutation.ClearSatisfactionRating()
	return _u
}

// SetOutcomeNotes sets the "outcome_notes" field.
func (_u *AgentInvocationUpdate) SetOutcomeNotes(v string) *AgentInvocationUpdate {
	_u.mutation.SetOutcomeNotes(v)
	return _u
}

// SetNillableOutcomeNotes sets the "outcome_notes" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableOutcomeNotes(v *string) *AgentInvocationUpdate {
	if v != nil {
		_u.SetOutcomeNotes(*v)
	}
	return _u
}

// ClearOutcomeNotes clears the value of the "outcome_notes" field.
func (_u *AgentInvocationUpdate) ClearOutcomeNotes() *AgentInvocationUpdate {
	_u.mutation.ClearOutcomeNotes()
	return _u
}

// SetTokensInput sets the "tokens_input" field.
func (_u *AgentInvocationUpdate) SetTokensInput(v int) *AgentInvocationUpdate {
	_u.mutation.ResetTokensInput()
	_u.mutation.SetTokensInput(v)
	return _u
}

// SetNillableTokensInput sets the "tokens_input" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableTokensInput(v *int) *AgentInvocationUpdate {
	if v != nil {
		_u.SetTokensInput(*v)
	}
	return _u
}

// AddTokensInput adds value to the "tokens_input" field.
func (_u *AgentInvocationUpdate) AddTokensInput(v int) *AgentInvocationUpdate {
	_u.mutation.AddTokensInput(v)
	return _u
}

// ClearTokensInput clears the value of the "tokens_input" field.
func (_u *AgentInvocationUpdate) ClearTokensInput() *AgentInvocationUpdate {
	_u.mutation.ClearTokensInput()
	return _u
}

// SetTokensOutput sets the "tokens_output" field.
func (_u *AgentInvocationUpdate) SetTokensOutput(v int) *AgentInvocationUpdate {
	_u.mutation.ResetTokensOutput()
	_u.mutation.SetTokensOutput(v)
	return _u
}

// SetNillableTokensOutput sets the "tokens_output" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableTokensOutput(v *int) *AgentInvocationUpdate {
	if v != nil {
		_u.SetTokensOutput(*v)
	}
	return _u
}

// AddTokensOutput adds value to the "tokens_output" field.
func (_u *AgentInvocationUpdate) AddTokensOutput(v int) *AgentInvocationUpdate {
	_u.mutation.AddTokensOutput(v)
	return _u
}

// ClearTokensOutput clears the value of the "tokens_output" field.
func (_u *AgentInvocationUpdate) ClearTokensOutput() *AgentInvocationUpdate {
	_u.mutation.ClearTokensOutput()
	return _u
}

// SetTokensTotal sets the "tokens_total" field.
func (_u *AgentInvocationUpdate) SetTokensTotal(v int) *AgentInvocationUpdate {
	_u.mutation.ResetTokensTotal()
	_u.mutation.SetTokensTotal(v)
	return _u
}

// SetNillableTokensTotal sets the "tokens_total" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableTokensTotal(v *int) *AgentInvocationUpdate {
	if v != nil {
		_u.SetTokensTotal(*v)
	}
	return _u
}

// AddTokensTotal adds value to the "tokens_total" field.
func (_u *AgentInvocationUpdate) AddTokensTotal(v int) *AgentInvocationUpdate {
	_u.mutation.AddTokensTotal(v)
	return _u
}

// ClearTokensTotal clears the value of the "tokens_total" field.
func (_u *AgentInvocationUpdate) ClearTokensTotal() *AgentInvocationUpdate {
	_u.mutation.ClearTokensTotal()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentInvocationUpdate) SetUpdatedAt(v time.Time) *AgentInvocationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *AgentInvocationUpdate) SetAgent(v *Agent) *AgentInvocationUpdate {
	return _u.SetAgentID(v.ID)
}

// AddIssueIDs adds the "issues" edge to the AgentIssue entity by IDs.
func (_u *AgentInvocationUpdate) AddIssueIDs(ids ...int) *AgentInvocationUpdate {
	_u.mutation.AddIssueIDs(ids...)
	return _u
}

// AddIssues adds the "issues" edges to the AgentIssue entity.
func (_u *AgentInvocationUpdate) AddIssues(v ...*AgentIssue) *AgentInvocationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIssueIDs(ids...)
}

// AddChangeIDs adds the "changes" edge to the AgentChange entity by IDs.
func (_u *AgentInvocationUpdate) AddChangeIDs(ids ...int) *AgentInvocationUpdate {
	_u.mutation.AddChangeIDs(ids...)
	return _u
}

// AddChanges adds the "changes" edges to the AgentChange entity.
func (_u *AgentInvocationUpdate) AddChanges(v ...*AgentChange) *AgentInvocationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChangeIDs(ids...)
}

// Mutation returns the AgentInvocationMutation object of the builder.
func (_u *AgentInvocationUpdate) Mutation() *AgentInvocationMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *AgentInvocationUpdate) ClearAgent() *AgentInvocationUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// ClearIssues clears all "issues" edges to the AgentIssue entity.
func (_u *AgentInvocationUpdate) ClearIssues() *AgentInvocationUpdate {
	_u.mutation.ClearIssues()
	return _u
}

// RemoveIssueIDs removes the "issues" edge to AgentIssue entities by IDs.
func (_u *AgentInvocationUpdate) RemoveIssueIDs(ids ...int) *AgentInvocationUpdate {
	_u.mutation.RemoveIssueIDs(ids...)
	return _u
}

// RemoveIssues removes "issues" edges to AgentIssue entities.
func (_u *AgentInvocationUpdate) RemoveIssues(v ...*AgentIssue) *AgentInvocationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIssueIDs(ids...)
}

// ClearChanges clears all "changes" edges to the AgentChange entity.
func (_u *AgentInvocationUpdate) ClearChanges() *AgentInvocationUpdate {
	_u.mutation.ClearChanges()
	return _u
}

// RemoveChangeIDs removes the "changes" edge to AgentChange entities by IDs.
func (_u *AgentInvocationUpdate) RemoveChangeIDs(ids ...int) *AgentInvocationUpdate {
	_u.mutation.RemoveChangeIDs(ids...)
	return _u
}

// RemoveChanges removes "changes" edges to AgentChange entities.
func (_u *AgentInvocationUpdate) RemoveChanges(v ...*AgentChange) *AgentInvocationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChangeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentInvocationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentInvocationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentInvocationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentInvocationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentInvocationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentinvocation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentInvocationUpdate) check() error {
	if v, ok := _u.mutation.TaskDescription(); ok {
		if err := agentinvocation.TaskDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "task_description", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.task_description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvocationMode(); ok {
		if err := agentinvocation.InvocationModeValidator(v); err != nil {
			return &ValidationError{Name: "invocation_mode", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.invocation_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SatisfactionRating(); ok {
		if err := agentinvocation.SatisfactionRatingValidator(v); err != nil {
			return &ValidationError{Name: "satisfaction_rating", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.satisfaction_rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokensInput(); ok {
		if err := agentinvocation.TokensInputValidator(v); err != nil {
			return &ValidationError{Name: "tokens_input", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.tokens_input": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokensOutput(); ok {
		if err := agentinvocation.TokensOutputValidator(v); err != nil {
			return &ValidationError{Name: "tokens_output", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.tokens_output": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokensTotal(); ok {
		if err := agentinvocation.TokensTotalValidator(v); err != nil {
			return &ValidationError{Name: "tokens_total", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.tokens_total": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentInvocation.agent"`)
	}
	return nil
}

func (_u *AgentInvocationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentinvocation.Table, agentinvocation.Columns, sqlgraph.NewFieldSpec(agentinvocation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskDescription(); ok {
		_spec.SetField(agentinvocation.FieldTaskDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvocationMode(); ok {
		_spec.SetField(agentinvocation.FieldInvocationMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContextNotes(); ok {
		_spec.SetField(agentinvocation.FieldContextNotes, field.TypeString, value)
	}
	if _u.mutation.ContextNotesCleared() {
		_spec.ClearField(agentinvocation.FieldContextNotes, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentinvocation.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentinvocation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentinvocation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(agentinvocation.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(agentinvocation.FieldDurationMinutes, field.TypeInt, value)
	}
	if _u.mutation.DurationMinutesCleared() {
		_spec.ClearField(agentinvocation.FieldDurationMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(agentinvocation.FieldSuccess, field.TypeBool, value)
	}
	if _u.mutation.SuccessCleared() {
		_spec.ClearField(agentinvocation.FieldSuccess, field.TypeBool)
	}
	if value, ok := _u.mutation.SatisfactionRating(); ok {
		_spec.SetField(agentinvocation.FieldSatisfactionRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSatisfactionRating(); ok {
		_spec.AddField(agentinvocation.FieldSatisfactionRating, field.TypeInt, value)
	}
	if _u.mutation.SatisfactionRatingCleared() {
		_spec.ClearField(agentinvocation.FieldSatisfactionRating, field.TypeInt)
	}
	if value, ok := _u.mutation.OutcomeNotes(); ok {
		_spec.SetField(agentinvocation.FieldOutcomeNotes, field.TypeString, value)
	}
	if _u.mutation.OutcomeNotesCleared() {
		_spec.ClearField(agentinvocation.FieldOutcomeNotes, field.TypeString)
	}
	if value, ok := _u.mutation.TokensInput(); ok {
		_spec.SetField(agentinvocation.FieldTokensInput, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensInput(); ok {
		_spec.AddField(agentinvocation.FieldTokensInput, field.TypeInt, value)
	}
	if _u.mutation.TokensInputCleared() {
		_spec.ClearField(agentinvocation.FieldTokensInput, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensOutput(); ok {
		_spec.SetField(agentinvocation.FieldTokensOutput, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOutput(); ok {
		_spec.AddField(agentinvocation.FieldTokensOutput, field.TypeInt, value)
	}
	if _u.mutation.TokensOutputCleared() {
		_spec.ClearField(agentinvocation.FieldTokensOutput, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensTotal(); ok {
		_spec.SetField(agentinvocation.FieldTokensTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensTotal(); ok {
		_spec.AddField(agentinvocation.FieldTokensTotal, field.TypeInt, value)
	}
	if _u.mutation.TokensTotalCleared() {
		_spec.ClearField(agentinvocation.FieldTokensTotal, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentinvocation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentinvocation.AgentTable,
			Columns: []string{agentinvocation.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentinvocation.AgentTable,
			Columns: []string{agentinvocation.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IssuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentinvocation.IssuesTable,
			Columns: []string{agentinvocation.IssuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentissue.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIssuesIDs(); len(nodes) > 0 && !_u.mutation.IssuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentinvocation.IssuesTable,
			Columns: []string{agentinvocation.IssuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentissue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IssuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentinvocation.IssuesTable,
			Columns: []string{agentinvocation.IssuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentissue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentinvocation.ChangesTable,
			Columns: []string{agentinvocation.ChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentchange.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChangesIDs(); len(nodes) > 0 && !_u.mutation.ChangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentinvocation.ChangesTable,
			Columns: []string{agentinvocation.ChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentchange.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentinvocation.ChangesTable,
			Columns: []string{agentinvocation.ChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentchange.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentinvocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentInvocationUpdateOne is the builder for updating a single AgentInvocation entity.
type AgentInvocationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentInvocationMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentInvocationUpdateOne) SetAgentID(v int) *AgentInvocationUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableAgentID(v *int) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetTaskDescription sets the "task_description" field.
func (_u *AgentInvocationUpdateOne) SetTaskDescription(v string) *AgentInvocationUpdateOne {
	_u.mutation.SetTaskDescription(v)
	return _u
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableTaskDescription(v *string) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetTaskDescription(*v)
	}
	return _u
}

// SetInvocationMode sets the "invocation_mode" field.
func (_u *AgentInvocationUpdateOne) SetInvocationMode(v models.InvocationMode) *AgentInvocationUpdateOne {
	_u.mutation.SetInvocationMode(v)
	return _u
}

// SetNillableInvocationMode sets the "invocation_mode" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableInvocationMode(v *models.InvocationMode) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetInvocationMode(*v)
	}
	return _u
}

// SetContextNotes sets the "context_notes" field.
func (_u *AgentInvocationUpdateOne) SetContextNotes(v string) *AgentInvocationUpdateOne {
	_u.mutation.SetContextNotes(v)
	return _u
}

// SetNillableContextNotes sets the "context_notes" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableContextNotes(v *string) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetContextNotes(*v)
	}
	return _u
}

// ClearContextNotes clears the value of the "context_notes" field.
func (_u *AgentInvocationUpdateOne) ClearContextNotes() *AgentInvocationUpdateOne {
	_u.mutation.ClearContextNotes()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentInvocationUpdateOne) SetStartedAt(v time.Time) *AgentInvocationUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableStartedAt(v *time.Time) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentInvocationUpdateOne) SetCompletedAt(v time.Time) *AgentInvocationUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentInvocationUpdateOne) ClearCompletedAt() *AgentInvocationUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *AgentInvocationUpdateOne) SetDurationMinutes(v int) *AgentInvocationUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableDurationMinutes(v *int) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *AgentInvocationUpdateOne) AddDurationMinutes(v int) *AgentInvocationUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (_u *AgentInvocationUpdateOne) ClearDurationMinutes() *AgentInvocationUpdateOne {
	_u.mutation.ClearDurationMinutes()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AgentInvocationUpdateOne) SetSuccess(v bool) *AgentInvocationUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableSuccess(v *bool) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// ClearSuccess clears the value of the "success" field.
func (_u *AgentInvocationUpdateOne) ClearSuccess() *AgentInvocationUpdateOne {
	_u.mutation.ClearSuccess()
	return _u
}

// SetSatisfactionRating sets the "satisfaction_rating" field.
func (_u *AgentInvocationUpdateOne) SetSatisfactionRating(v int) *AgentInvocationUpdateOne {
	_u.mutation.ResetSatisfactionRating()
	_u.mutation.SetSatisfactionRating(v)
	return _u
}

// SetNillableSatisfactionRating sets the "satisfaction_rating" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableSatisfactionRating(v *int) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetSatisfactionRating(*v)
	}
	return _u
}

// AddSatisfactionRating adds value to the "satisfaction_rating" field.
func (_u *AgentInvocationUpdateOne) AddSatisfactionRating(v int) *AgentInvocationUpdateOne {
	_u.mutation.AddSatisfactionRating(v)
	return _u
}

// ClearSatisfactionRating clears the value of the "satisfaction_rating" field.
func (_u *AgentInvocationUpdateOne) ClearSatisfactionRating() *AgentInvocationUpdateOne {
	_u.mutation.ClearSatisfactionRating()
	return _u
}

// SetOutcomeNotes sets the "outcome_notes" field.
func (_u *AgentInvocationUpdateOne) SetOutcomeNotes(v string) *AgentInvocationUpdateOne {
	_u.mutation.SetOutcomeNotes(v)
	return _u
}

// SetNillableOutcomeNotes sets the "outcome_notes" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableOutcomeNotes(v *string) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetOutcomeNotes(*v)
	}
	return _u
}

// ClearOutcomeNotes clears the value of the "outcome_notes" field.
func (_u *AgentInvocationUpdateOne) ClearOutcomeNotes() *AgentInvocationUpdateOne {
	_u.mutation.ClearOutcomeNotes()
	return _u
}

// SetTokensInput sets the "tokens_input" field.
func (_u *AgentInvocationUpdateOne) SetTokensInput(v int) *AgentInvocationUpdateOne {
	_u.mutation.ResetTokensInput()
	_u.mutation.SetTokensInput(v)
	return _u
}

// SetNillableTokensInput sets the "tokens_input" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableTokensInput(v *int) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetTokensInput(*v)
	}
	return _u
}

// AddTokensInput adds value to the "tokens_input" field.
func (_u *AgentInvocationUpdateOne) AddTokensInput(v int) *AgentInvocationUpdateOne {
	_u.mutation.AddTokensInput(v)
	return _u
}

// ClearTokensInput clears the value of the "tokens_input" field.
func (_u *AgentInvocationUpdateOne) ClearTokensInput() *AgentInvocationUpdateOne {
	_u.mutation.ClearTokensInput()
	return _u
}

// SetTokensOutput sets the "tokens_output" field.
func (_u *AgentInvocationUpdateOne) SetTokensOutput(v int) *AgentInvocationUpdateOne {
	_u.mutation.ResetTokensOutput()
	_u.mutation.SetTokensOutput(v)
	return _u
}

// SetNillableTokensOutput sets the "tokens_output" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableTokensOutput(v *int) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetTokensOutput(*v)
	}
	return _u
}

// AddTokensOutput adds value to the "tokens_output" field.
func (_u *AgentInvocationUpdateOne) AddTokensOutput(v int) *AgentInvocationUpdateOne {
	_u.mutation.AddTokensOutput(v)
	return _u
}

// ClearTokensOutput clears the value of the "tokens_output" field.
func (_u *AgentInvocationUpdateOne) ClearTokensOutput() *AgentInvocationUpdateOne {
	_u.mutation.ClearTokensOutput()
	return _u
}

// SetTokensTotal sets the "tokens_total" field.
func (_u *AgentInvocationUpdateOne) SetTokensTotal(v int) *AgentInvocationUpdateOne {
	_u.mutation.ResetTokensTotal()
	_u.mutation.SetTokensTotal(v)
	return _u
}

// SetNillableTokensTotal sets the "tokens_total" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableTokensTotal(v *int) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetTokensTotal(*v)
	}
	return _u
}

// AddTokensTotal adds value to the "tokens_total" field.
func (_u *AgentInvocationUpdateOne) AddTokensTotal(v int) *AgentInvocationUpdateOne {
	_u.mutation.AddTokensTotal(v)
	return _u
}

// ClearTokensTotal clears the value of the "tokens_total" field.
func (_u *AgentInvocationUpdateOne) ClearTokensTotal() *AgentInvocationUpdateOne {
	_u.mutation.ClearTokensTotal()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentInvocationUpdateOne) SetUpdatedAt(v time.Time) *AgentInvocationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *AgentInvocationUpdateOne) SetAgent(v *Agent) *AgentInvocationUpdateOne {
	return _u.SetAgentID(v.ID)
}

// AddIssueIDs adds the "issues" edge to the AgentIssue entity by IDs.
func (_u *AgentInvocationUpdateOne) AddIssueIDs(ids ...int) *AgentInvocationUpdateOne {
	_u.mutation.AddIssueIDs(ids...)
	return _u
}

// AddIssues adds the "issues" edges to the AgentIssue entity.
func (_u *AgentInvocationUpdateOne) AddIssues(v ...*AgentIssue) *AgentInvocationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIssueIDs(ids...)
}

// AddChangeIDs adds the "changes" edge to the AgentChange entity by IDs.
func (_u *AgentInvocationUpdateOne) AddChangeIDs(ids ...int) *AgentInvocationUpdateOne {
	_u.mutation.AddChangeIDs(ids...)
	return _u
}

// AddChanges adds the "changes" edges to the AgentChange entity.
func (_u *AgentInvocationUpdateOne) AddChanges(v ...*AgentChange) *AgentInvocationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChangeIDs(ids...)
}

// Mutation returns the AgentInvocationMutation object of the builder.
func (_u *AgentInvocationUpdateOne) Mutation() *AgentInvocationMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *AgentInvocationUpdateOne) ClearAgent() *AgentInvocationUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// ClearIssues clears all "issues" edges to the AgentIssue entity.
func (_u *AgentInvocationUpdateOne) ClearIssues() *AgentInvocationUpdateOne {
	_u.mutation.ClearIssues()
	return _u
}

// RemoveIssueIDs removes the "issues" edge to AgentIssue entities by IDs.
func (_u *AgentInvocationUpdateOne) RemoveIssueIDs(ids ...int) *AgentInvocationUpdateOne {
	_u.mutation.RemoveIssueIDs(ids...)
	return _u
}

// RemoveIssues removes "issues" edges to AgentIssue entities.
func (_u *AgentInvocationUpdateOne) RemoveIssues(v ...*AgentIssue) *AgentInvocationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIssueIDs(ids...)
}

// ClearChanges clears all "changes" edges to the AgentChange entity.
func (_u *AgentInvocationUpdateOne) ClearChanges() *AgentInvocationUpdateOne {
	_u.mutation.ClearChanges()
	return _u
}

// RemoveChangeIDs removes the "changes" edge to AgentChange entities by IDs.
func (_u *AgentInvocationUpdateOne) RemoveChangeIDs(ids ...int) *AgentInvocationUpdateOne {
	_u.mutation.RemoveChangeIDs(ids...)
	return _u
}

// RemoveChanges removes "changes" edges to AgentChange entities.
func (_u *AgentInvocationUpdateOne) RemoveChanges(v ...*AgentChange) *AgentInvocationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChangeIDs(ids...)
}

// Where appends a list predicates to the AgentInvocationUpdate builder.
func (_u *AgentInvocationUpdateOne) Where(ps ...predicate.AgentInvocation) *AgentInvocationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentInvocationUpdateOne) Select(field string, fields ...string) *AgentInvocationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentInvocation entity.
func (_u *AgentInvocationUpdateOne) Save(ctx context.Context) (*AgentInvocation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentInvocationUpdateOne) SaveX(ctx context.Context) *AgentInvocation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentInvocationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentInvocationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentInvocationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentinvocation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentInvocationUpdateOne) check() error {
	if v, ok := _u.mutation.TaskDescription(); ok {
		if err := agentinvocation.TaskDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "task_description", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.task_description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvocationMode(); ok {
		if err := agentinvocation.InvocationModeValidator(v); err != nil {
			return &ValidationError{Name: "invocation_mode", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.invocation_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SatisfactionRating(); ok {
		if err := agentinvocation.SatisfactionRatingValidator(v); err != nil {
			return &ValidationError{Name: "satisfaction_rating", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.satisfaction_rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokensInput(); ok {
		if err := agentinvocation.TokensInputValidator(v); err != nil {
			return &ValidationError{Name: "tokens_input", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.tokens_input": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokensOutput(); ok {
		if err := agentinvocation.TokensOutputValidator(v); err != nil {
			return &ValidationError{Name: "tokens_output", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.tokens_output": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokensTotal(); ok {
		if err := agentinvocation.TokensTotalValidator(v); err != nil {
			return &ValidationError{Name: "tokens_total", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.tokens_total": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentInvocation.agent"`)
	}
	return nil
}

func (_u *AgentInvocationUpdateOne) sqlSave(ctx context.Context) (_node *AgentInvocation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentinvocation.Table, agentinvocation.Columns, sqlgraph.NewFieldSpec(agentinvocation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentInvocation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentinvocation.FieldID)
		for _, f := range fields {
			if !agentinvocation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentinvocation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskDescription(); ok {
		_spec.SetField(agentinvocation.FieldTaskDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvocationMode(); ok {
		_spec.SetField(agentinvocation.FieldInvocationMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContextNotes(); ok {
		_spec.SetField(agentinvocation.FieldContextNotes, field.TypeString, value)
	}
	if _u.mutation.ContextNotesCleared() {
		_spec.ClearField(agentinvocation.FieldContextNotes, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentinvocation.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentinvocation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentinvocation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(agentinvocation.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(agentinvocation.FieldDurationMinutes, field.TypeInt, value)
	}
	if _u.mutation.DurationMinutesCleared() {
		_spec.ClearField(agentinvocation.FieldDurationMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(agentinvocation.FieldSuccess, field.TypeBool, value)
	}
	if _u.mutation.SuccessCleared() {
		_spec.ClearField(agentinvocation.FieldSuccess, field.TypeBool)
	}
	if value, ok := _u.mutation.SatisfactionRating(); ok {
		_spec.SetField(agentinvocation.FieldSatisfactionRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSatisfactionRating(); ok {
		_spec.AddField(agentinvocation.FieldSatisfactionRating, field.TypeInt, value)
	}
	if _u.mutation.SatisfactionRatingCleared() {
		_spec.ClearField(agentinvocation.FieldSatisfactionRating, field.TypeInt)
	}
	if value, ok := _u.mutation.OutcomeNotes(); ok {
		_spec.SetField(agentinvocation.FieldOutcomeNotes, field.TypeString, value)
	}
	if _u.mutation.OutcomeNotesCleared() {
		_spec.ClearField(agentinvocation.FieldOutcomeNotes, field.TypeString)
	}
	if value, ok := _u.mutation.TokensInput(); ok {
		_spec.SetField(agentinvocation.FieldTokensInput, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensInput(); ok {
		_spec.AddField(agentinvocation.FieldTokensInput, field.TypeInt, value)
	}
	if _u.mutation.TokensInputCleared() {
		_spec.ClearField(agentinvocation.FieldTokensInput, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensOutput(); ok {
		_spec.SetField(agentinvocation.FieldTokensOutput, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOutput(); ok {
		_spec.AddField(agentinvocation.FieldTokensOutput, field.TypeInt, value)
	}
	if _u.mutation.TokensOutputCleared() {
		_spec.ClearField(agentinvocation.FieldTokensOutput, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensTotal(); ok {
		_spec.SetField(agentinvocation.FieldTokensTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensTotal(); ok {
		_spec.AddField(agentinvocation.FieldTokensTotal, field.TypeInt, value)
	}
	if _u.mutation.TokensTotalCleared() {
		_spec.ClearField(agentinvocation.FieldTokensTotal, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentinvocation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentinvocation.AgentTable,
			Columns: []string{agentinvocation.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentinvocation.AgentTable,
			Columns: []string{agentinvocation.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IssuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentinvocation.IssuesTable,
			Columns: []string{agentinvocation.IssuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentissue.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIssuesIDs(); len(nodes) > 0 && !_u.mutation.IssuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentinvocation.IssuesTable,
			Columns: []string{agentinvocation.IssuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentissue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IssuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentinvocation.IssuesTable,
			Columns: []string{agentinvocation.IssuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentissue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentinvocation.ChangesTable,
			Columns: []string{agentinvocation.ChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentchange.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChangesIDs(); len(nodes) > 0 && !_u.mutation.ChangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentinvocation.ChangesTable,
			Columns: []string{agentinvocation.ChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentchange.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentinvocation.ChangesTable,
			Columns: []string{agentinvocation.ChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentchange.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentInvocation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentinvocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
