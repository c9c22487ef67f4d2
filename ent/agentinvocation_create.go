// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentchange"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// AgentInvocationCreate is the builder for creating a AgentInvocation entity.
type AgentInvocationCreate struct {
	config
	mutation *AgentInvocationMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentInvocationCreate) SetAgentID(v int) *AgentInvocationCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetTaskDescription sets the "task_description" field.
func (_c *AgentInvocationCreate) SetTaskDescription(v string) *AgentInvocationCreate {
	_c.mutation.SetTaskDescription(v)
	return _c
}

// SetInvocationMode sets the "invocation_mode" field.
func (_c *AgentInvocationCreate) SetInvocationMode(v models.InvocationMode) *AgentInvocationCreate {
	_c.mutation.SetInvocationMode(v)
	return _c
}

// SetNillableInvocationMode sets the "invocation_mode" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableInvocationMode(v *models.InvocationMode) *AgentInvocationCreate {
	if v != nil {
		_c.SetInvocationMode(*v)
	}
	return _c
}

// SetContextNotes sets the "context_notes" field.
func (_c *AgentInvocationCreate) SetContextNotes(v string) *AgentInvocationCreate {
	_c.mutation.SetContextNotes(v)
	return _c
}

// SetNillableContextNotes sets the "context_notes" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableContextNotes(v *string) *AgentInvocationCreate {
	if v != nil {
		_c.SetContextNotes(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentInvocationCreate) SetStartedAt(v time.Time) *AgentInvocationCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AgentInvocationCreate) SetCompletedAt(v time.Time) *AgentInvocationCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableCompletedAt(v *time.Time) *AgentInvocationCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *AgentInvocationCreate) SetDurationMinutes(v int) *AgentInvocationCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableDurationMinutes(v *int) *AgentInvocationCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *AgentInvocationCreate) SetSuccess(v bool) *AgentInvocationCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableSuccess(v *bool) *AgentInvocationCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetSatisfactionRating sets the "satisfaction_rating" field.
func (_c *AgentInvocationCreate) SetSatisfactionRating(v int) *AgentInvocationCreate {
	_c.mutation.SetSatisfactionRating(v)
	return _c
}

// SetNillableSatisfactionRating sets the "satisfaction_rating" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableSatisfactionRating(v *int) *AgentInvocationCreate {
	if v != nil {
		_c.SetSatisfactionRating(*v)
	}
	return _c
}

// SetOutcomeNotes sets the "outcome_notes" field.
func (_c *AgentInvocationCreate) SetOutcomeNotes(v string) *AgentInvocationCreate {
	_c.mutation.SetOutcomeNotes(v)
	return _c
}

// SetNillableOutcomeNotes sets the "outcome_notes" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableOutcomeNotes(v *string) *AgentInvocationCreate {
	if v != nil {
		_c.SetOutcomeNotes(*v)
	}
	return _c
}

// SetTokensInput sets the "tokens_input" field.
func (_c *AgentInvocationCreate) SetTokensInput(v int) *AgentInvocationCreate {
	_c.mutation.SetTokensInput(v)
	return _c
}

// SetNillableTokensInput sets the "tokens_input" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableTokensInput(v *int) *AgentInvocationCreate {
	if v != nil {
		_c.SetTokensInput(*v)
	}
	return _c
}

// SetTokensOutput sets the "tokens_output" field.
func (_c *AgentInvocationCreate) SetTokensOutput(v int) *AgentInvocationCreate {
	_c.mutation.SetTokensOutput(v)
	return _c
}

// SetNillableTokensOutput sets the "tokens_output" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableTokensOutput(v *int) *AgentInvocationCreate {
	if v != nil {
		_c.SetTokensOutput(*v)
	}
	return _c
}

// SetTokensTotal sets the "tokens_total" field.
func (_c *AgentInvocationCreate) SetTokensTotal(v int) *AgentInvocationCreate {
	_c.mutation.SetTokensTotal(v)
	return _c
}

// SetNillableTokensTotal sets the "tokens_total" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableTokensTotal(v *int) *AgentInvocationCreate {
	if v != nil {
		_c.SetTokensTotal(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentInvocationCreate) SetCreatedAt(v time.Time) *AgentInvocationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableCreatedAt(v *time.Time) *AgentInvocationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentInvocationCreate) SetUpdatedAt(v time.Time) *AgentInvocationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableUpdatedAt(v *time.Time) *AgentInvocationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *AgentInvocationCreate) SetAgent(v *Agent) *AgentInvocationCreate {
	return _c.SetAgentID(v.ID)
}

// AddIssueIDs adds the "issues" edge to the AgentIssue entity by IDs.
func (_c *AgentInvocationCreate) AddIssueIDs(ids ...int) *AgentInvocationCreate {
	_c.mutation.AddIssueIDs(ids...)
	return _c
}

// AddIssues adds the "issues" edges to the AgentIssue entity.
func (_c *AgentInvocationCreate) AddIssues(v ...*AgentIssue) *AgentInvocationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIssueIDs(ids...)
}

// AddChangeIDs adds the "changes" edge to the AgentChange entity by IDs.
func (_c *AgentInvocationCreate) AddChangeIDs(ids ...int) *AgentInvocationCreate {
	_c.mutation.AddChangeIDs(ids...)
	return _c
}

// AddChanges adds the "changes" edges to the AgentChange entity.
func (_c *AgentInvocationCreate) AddChanges(v ...*AgentChange) *AgentInvocationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChangeIDs(ids...)
}

// Mutation returns the AgentInvocationMutation object of the builder.
func (_c *AgentInvocationCreate) Mutation() *AgentInvocationMutation {
	return _c.mutation
}

// Save creates the AgentInvocation in the database.
func (_c *AgentInvocationCreate) Save(ctx context.Context) (*AgentInvocation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentInvocationCreate) SaveX(ctx context.Context) *AgentInvocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentInvocationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentInvocationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentInvocationCreate) defaults() {
	if _, ok := _c.mutation.InvocationMode(); !ok {
		v := agentinvocation.DefaultInvocationMode
		_c.mutation.SetInvocationMode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentinvocation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentinvocation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentInvocationCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentInvocation.agent_id"`)}
	}
	if _, ok := _c.mutation.TaskDescription(); !ok {
		return &ValidationError{Name: "task_description", err: errors.New(`ent: missing required field "AgentInvocation.task_description"`)}
	}
	if v, ok := _c.mutation.TaskDescription(); ok {
		if err := agentinvocation.TaskDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "task_description", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.task_description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InvocationMode(); !ok {
		return &ValidationError{Name: "invocation_mode", err: errors.New(`ent: missing required field "AgentInvocation.invocation_mode"`)}
	}
	if v, ok := _c.mutation.InvocationMode(); ok {
		if err := agentinvocation.InvocationModeValidator(v); err != nil {
			return &ValidationError{Name: "invocation_mode", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.invocation_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AgentInvocation.started_at"`)}
	}
	if v, ok := _c.mutation.SatisfactionRating(); ok {
		if err := agentinvocation.SatisfactionRatingValidator(v); err != nil {
			return &ValidationError{Name: "satisfaction_rating", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.satisfaction_rating": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TokensInput(); ok {
		if err := agentinvocation.TokensInputValidator(v); err != nil {
			return &ValidationError{Name: "tokens_input", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.tokens_input": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TokensOutput(); ok {
		if err := agentinvocation.TokensOutputValidator(v); err != nil {
			return &ValidationError{Name: "tokens_output", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.tokens_output": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TokensTotal(); ok {
		if err := agentinvocation.TokensTotalValidator(v); err != nil {
			return &ValidationError{Name: "tokens_total", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.tokens_total": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentInvocation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentInvocation.updated_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "AgentInvocation.agent"`)}
	}
	return nil
}

func (_c *AgentInvocationCreate) sqlSave(ctx context.Context) (*AgentInvocation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentInvocationCreate) createSpec() (*AgentInvocation, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentInvocation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentinvocation.Table, sqlgraph.NewFieldSpec(agentinvocation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TaskDescription(); ok {
		_spec.SetField(agentinvocation.FieldTaskDescription, field.TypeString, value)
		_node.TaskDescription = value
	}
	if value, ok := _c.mutation.InvocationMode(); ok {
		_spec.SetField(agentinvocation.FieldInvocationMode, field.TypeEnum, value)
		_node.InvocationMode = value
	}
	if value, ok := _c.mutation.ContextNotes(); ok {
		_spec.SetField(agentinvocation.FieldContextNotes, field.TypeString, value)
		_node.ContextNotes = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agentinvocation.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(agentinvocation.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(agentinvocation.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = &value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(agentinvocation.FieldSuccess, field.TypeBool, value)
		_node.Success = &value
	}
	if value, ok := _c.mutation.SatisfactionRating(); ok {
		_spec.SetField(agentinvocation.FieldSatisfactionRating, field.TypeInt, value)
		_node.SatisfactionRating = &value
	}
	if value, ok := _c.mutation.OutcomeNotes(); ok {
		_spec.SetField(agentinvocation.FieldOutcomeNotes, field.TypeString, value)
		_node.OutcomeNotes = &value
	}
	if value, ok := _c.mutation.TokensInput(); ok {
		_spec.SetField(agentinvocation.FieldTokensInput, field.TypeInt, value)
		_node.TokensInput = &value
	}
	if value, ok := _c.mutation.TokensOutput(); ok {
		_spec.SetField(agentinvocation.FieldTokensOutput, field.TypeInt, value)
		_node.TokensOutput = &value
	}
	if value, ok := _c.mutation.TokensTotal(); ok {
		_spec.SetField(agentinvocation.FieldTokensTotal, field.TypeInt, value)
		_node.TokensTotal = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentinvocation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentinvocation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
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
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IssuesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChangesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentInvocationCreateBulk is the builder for creating many AgentInvocation entities in bulk.
type AgentInvocationCreateBulk struct {
	config
	err      error
	builders []*AgentInvocationCreate
}

// Save creates the AgentInvocation entities in the database.
func (_c *AgentInvocationCreateBulk) Save(ctx context.Context) ([]*AgentInvocation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentInvocation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentInvocationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentInvocationCreateBulk) SaveX(ctx context.Context) []*AgentInvocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentInvocationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentInvocationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
