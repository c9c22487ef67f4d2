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
	"github.com/codeready-toolchain/agent-tracker/ent/agentimprovement"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/ent/predicate"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentNumber sets the "agent_number" field.
func (_u *AgentUpdate) SetAgentNumber(v int) *AgentUpdate {
	_u.mutation.ResetAgentNumber()
	_u.mutation.SetAgentNumber(v)
	return _u
}

// SetNillableAgentNumber sets the "agent_number" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAgentNumber(v *int) *AgentUpdate {
	if v != nil {
		_u.SetAgentNumber(*v)
	}
	return _u
}

// AddAgentNumber adds value to the "agent_number" field.
func (_u *AgentUpdate) AddAgentNumber(v int) *AgentUpdate {
	_u.mutation.AddAgentNumber(v)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentUpdate) SetName(v string) *AgentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AgentUpdate) SetCategory(v models.Category) *AgentUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCategory(v *models.Category) *AgentUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *AgentUpdate) SetTier(v int) *AgentUpdate {
	_u.mutation.ResetTier()
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTier(v *int) *AgentUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// AddTier adds value to the "tier" field.
func (_u *AgentUpdate) AddTier(v int) *AgentUpdate {
	_u.mutation.AddTier(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdate) SetStatus(v models.AgentStatus) *AgentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableStatus(v *models.AgentStatus) *AgentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdate) SetUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInvocationIDs adds the "invocations" edge to the AgentInvocation entity by IDs.
func (_u *AgentUpdate) AddInvocationIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddInvocationIDs(ids...)
	return _u
}

// AddInvocations adds the "invocations" edges to the AgentInvocation entity.
func (_u *AgentUpdate) AddInvocations(v ...*AgentInvocation) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvocationIDs(ids...)
}

// AddIssueIDs adds the "issues" edge to the AgentIssue entity by IDs.
func (_u *AgentUpdate) AddIssueIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddIssueIDs(ids...)
	return _u
}

// AddIssues adds the "issues" edges to the AgentIssue entity.
func (_u *AgentUpdate) AddIssues(v ...*AgentIssue) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIssueIDs(ids...)
}

// AddImprovementIDs adds the "improvements" edge to the AgentImprovement entity by IDs.
func (_u *AgentUpdate) AddImprovementIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddImprovementIDs(ids...)
	return _u
}

// AddImprovements adds the "improvements" edges to the AgentImprovement entity.
func (_u *AgentUpdate) AddImprovements(v ...*AgentImprovement) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImprovementIDs(ids...)
}

// AddChangeIDs adds the "changes" edge to the AgentChange entity by IDs.
func (_u *AgentUpdate) AddChangeIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddChangeIDs(ids...)
	return _u
}

// AddChanges adds the "changes" edges to the AgentChange entity.
func (_u *AgentUpdate) AddChanges(v ...*AgentChange) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChangeIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearInvocations clears all "invocations" edges to the AgentInvocation entity.
func (_u *AgentUpdate) ClearInvocations() *AgentUpdate {
	_u.mutation.ClearInvocations()
	return _u
}

// RemoveInvocationIDs removes the "invocations" edge to AgentInvocation entities by IDs.
func (_u *AgentUpdate) RemoveInvocationIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveInvocationIDs(ids...)
	return _u
}

// RemoveInvocations removes "invocations" edges to AgentInvocation entities.
func (_u *AgentUpdate) RemoveInvocations(v ...*AgentInvocation) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvocationIDs(ids...)
}

// ClearIssues clears all "issues" edges to the AgentIssue entity.
func (_u *AgentUpdate) ClearIssues() *AgentUpdate {
	_u.mutation.ClearIssues()
	return _u
}

// RemoveIssueIDs removes the "issues" edge to AgentIssue entities by IDs.
func (_u *AgentUpdate) RemoveIssueIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveIssueIDs(ids...)
	return _u
}

// RemoveIssues removes "issues" edges to AgentIssue entities.
func (_u *AgentUpdate) RemoveIssues(v ...*AgentIssue) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIssueIDs(ids...)
}

// ClearImprovements clears all "improvements" edges to the AgentImprovement entity.
func (_u *AgentUpdate) ClearImprovements() *AgentUpdate {
	_u.mutation.ClearImprovements()
	return _u
}

// RemoveImprovementIDs removes the "improvements" edge to AgentImprovement entities by IDs.
func (_u *AgentUpdate) RemoveImprovementIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveImprovementIDs(ids...)
	return _u
}

// RemoveImprovements removes "improvements" edges to AgentImprovement entities.
func (_u *AgentUpdate) RemoveImprovements(v ...*AgentImprovement) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImprovementIDs(ids...)
}

// ClearChanges clears all "changes" edges to the AgentChange entity.
func (_u *AgentUpdate) ClearChanges() *AgentUpdate {
	_u.mutation.ClearChanges()
	return _u
}

// RemoveChangeIDs removes the "changes" edge to AgentChange entities by IDs.
func (_u *AgentUpdate) RemoveChangeIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveChangeIDs(ids...)
	return _u
}

// RemoveChanges removes "changes" edges to AgentChange entities.
func (_u *AgentUpdate) RemoveChanges(v ...*AgentChange) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChangeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.AgentNumber(); ok {
		if err := agent.AgentNumberValidator(v); err != nil {
			return &ValidationError{Name: "agent_number", err: fmt.Errorf(`ent: validator failed for field "Agent.agent_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := agent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Agent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := agent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Agent.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentNumber(); ok {
		_spec.SetField(agent.FieldAgentNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgentNumber(); ok {
		_spec.AddField(agent.FieldAgentNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(agent.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(agent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier(); ok {
		_spec.AddField(agent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvocationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.InvocationsTable,
			Columns: []string{agent.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentinvocation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvocationsIDs(); len(nodes) > 0 && !_u.mutation.InvocationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.InvocationsTable,
			Columns: []string{agent.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentinvocation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvocationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.InvocationsTable,
			Columns: []string{agent.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentinvocation.FieldID, field.TypeInt),
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
			Table:   agent.IssuesTable,
			Columns: []string{agent.IssuesColumn},
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
			Table:   agent.IssuesTable,
			Columns: []string{agent.IssuesColumn},
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
			Table:   agent.IssuesTable,
			Columns: []string{agent.IssuesColumn},
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
	if _u.mutation.ImprovementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ImprovementsTable,
			Columns: []string{agent.ImprovementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentimprovement.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImprovementsIDs(); len(nodes) > 0 && !_u.mutation.ImprovementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ImprovementsTable,
			Columns: []string{agent.ImprovementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentimprovement.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImprovementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ImprovementsTable,
			Columns: []string{agent.ImprovementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentimprovement.FieldID, field.TypeInt),
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
			Table:   agent.ChangesTable,
			Columns: []string{agent.ChangesColumn},
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
			Table:   agent.ChangesTable,
			Columns: []string{agent.ChangesColumn},
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
			Table:   agent.ChangesTable,
			Columns: []string{agent.ChangesColumn},
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
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetAgentNumber sets the "agent_number" field.
func (_u *AgentUpdateOne) SetAgentNumber(v int) *AgentUpdateOne {
	_u.mutation.ResetAgentNumber()
	_u.mutation.SetAgentNumber(v)
	return _u
}

// SetNillableAgentNumber sets the "agent_number" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAgentNumber(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetAgentNumber(*v)
	}
	return _u
}

// AddAgentNumber adds value to the "agent_number" field.
func (_u *AgentUpdateOne) AddAgentNumber(v int) *AgentUpdateOne {
	_u.mutation.AddAgentNumber(v)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentUpdateOne) SetName(v string) *AgentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AgentUpdateOne) SetCategory(v models.Category) *AgentUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCategory(v *models.Category) *AgentUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *AgentUpdateOne) SetTier(v int) *AgentUpdateOne {
	_u.mutation.ResetTier()
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTier(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// AddTier adds value to the "tier" field.
func (_u *AgentUpdateOne) AddTier(v int) *AgentUpdateOne {
	_u.mutation.AddTier(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdateOne) SetStatus(v models.AgentStatus) *AgentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableStatus(v *models.AgentStatus) *AgentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdateOne) SetUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInvocationIDs adds the "invocations" edge to the AgentInvocation entity by IDs.
func (_u *AgentUpdateOne) AddInvocationIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddInvocationIDs(ids...)
	return _u
}

// AddInvocations adds the "invocations" edges to the AgentInvocation entity.
func (_u *AgentUpdateOne) AddInvocations(v ...*AgentInvocation) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvocationIDs(ids...)
}

// AddIssueIDs adds the "issues" edge to the AgentIssue entity by IDs.
func (_u *AgentUpdateOne) AddIssueIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddIssueIDs(ids...)
	return _u
}

// AddIssues adds the "issues" edges to the AgentIssue entity.
func (_u *AgentUpdateOne) AddIssues(v ...*AgentIssue) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIssueIDs(ids...)
}

// AddImprovementIDs adds the "improvements" edge to the AgentImprovement entity by IDs.
func (_u *AgentUpdateOne) AddImprovementIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddImprovementIDs(ids...)
	return _u
}

// AddImprovements adds the "improvements" edges to the AgentImprovement entity.
func (_u *AgentUpdateOne) AddImprovements(v ...*AgentImprovement) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImprovementIDs(ids...)
}

// AddChangeIDs adds the "changes" edge to the AgentChange entity by IDs.
func (_u *AgentUpdateOne) AddChangeIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddChangeIDs(ids...)
	return _u
}

// AddChanges adds the "changes" edges to the AgentChange entity.
func (_u *AgentUpdateOne) AddChanges(v ...*AgentChange) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChangeIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearInvocations clears all "invocations" edges to the AgentInvocation entity.
func (_u *AgentUpdateOne) ClearInvocations() *AgentUpdateOne {
	_u.mutation.ClearInvocations()
	return _u
}

// RemoveInvocationIDs removes the "invocations" edge to AgentInvocation entities by IDs.
func (_u *AgentUpdateOne) RemoveInvocationIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveInvocationIDs(ids...)
	return _u
}

// RemoveInvocations removes "invocations" edges to AgentInvocation entities.
func (_u *AgentUpdateOne) RemoveInvocations(v ...*AgentInvocation) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvocationIDs(ids...)
}

// ClearIssues clears all "issues" edges to the AgentIssue entity.
func (_u *AgentUpdateOne) ClearIssues() *AgentUpdateOne {
	_u.mutation.ClearIssues()
	return _u
}

// RemoveIssueIDs removes the "issues" edge to AgentIssue entities by IDs.
func (_u *AgentUpdateOne) RemoveIssueIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveIssueIDs(ids...)
	return _u
}

// RemoveIssues removes "issues" edges to AgentIssue entities.
func (_u *AgentUpdateOne) RemoveIssues(v ...*AgentIssue) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIssueIDs(ids...)
}

// ClearImprovements clears all "improvements" edges to the AgentImprovement entity.
func (_u *AgentUpdateOne) ClearImprovements() *AgentUpdateOne {
	_u.mutation.ClearImprovements()
	return _u
}

// RemoveImprovementIDs removes the "improvements" edge to AgentImprovement entities by IDs.
func (_u *AgentUpdateOne) RemoveImprovementIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveImprovementIDs(ids...)
	return _u
}

// RemoveImprovements removes "improvements" edges to AgentImprovement entities.
func (_u *AgentUpdateOne) RemoveImprovements(v ...*AgentImprovement) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImprovementIDs(ids...)
}

// ClearChanges clears all "changes" edges to the AgentChange entity.
func (_u *AgentUpdateOne) ClearChanges() *AgentUpdateOne {
	_u.mutation.ClearChanges()
	return _u
}

// RemoveChangeIDs removes the "changes" edge to AgentChange entities by IDs.
func (_u *AgentUpdateOne) RemoveChangeIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveChangeIDs(ids...)
	return _u
}

// RemoveChanges removes "changes" edges to AgentChange entities.
func (_u *AgentUpdateOne) RemoveChanges(v ...*AgentChange) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChangeIDs(ids...)
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.AgentNumber(); ok {
		if err := agent.AgentNumberValidator(v); err != nil {
			return &ValidationError{Name: "agent_number", err: fmt.Errorf(`ent: validator failed for field "Agent.agent_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := agent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Agent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := agent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Agent.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
	if value, ok := _u.mutation.AgentNumber(); ok {
		_spec.SetField(agent.FieldAgentNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgentNumber(); ok {
		_spec.AddField(agent.FieldAgentNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(agent.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(agent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier(); ok {
		_spec.AddField(agent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvocationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.InvocationsTable,
			Columns: []string{agent.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentinvocation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvocationsIDs(); len(nodes) > 0 && !_u.mutation.InvocationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.InvocationsTable,
			Columns: []string{agent.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentinvocation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvocationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.InvocationsTable,
			Columns: []string{agent.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentinvocation.FieldID, field.TypeInt),
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
			Table:   agent.IssuesTable,
			Columns: []string{agent.IssuesColumn},
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
			Table:   agent.IssuesTable,
			Columns: []string{agent.IssuesColumn},
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
			Table:   agent.IssuesTable,
			Columns: []string{agent.IssuesColumn},
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
	if _u.mutation.ImprovementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ImprovementsTable,
			Columns: []string{agent.ImprovementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentimprovement.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImprovementsIDs(); len(nodes) > 0 && !_u.mutation.ImprovementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ImprovementsTable,
			Columns: []string{agent.ImprovementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentimprovement.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImprovementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ImprovementsTable,
			Columns: []string{agent.ImprovementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentimprovement.FieldID, field.TypeInt),
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
			Table:   agent.ChangesTable,
			Columns: []string{agent.ChangesColumn},
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
			Table:   agent.ChangesTable,
			Columns: []string{agent.ChangesColumn},
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
			Table:   agent.ChangesTable,
			Columns: []string{agent.ChangesColumn},
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
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
