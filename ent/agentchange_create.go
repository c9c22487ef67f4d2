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
	"github.com/codeready-toolchain/agent-tracker/ent/agentimprovement"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// AgentChangeCreate is the builder for creating a AgentChange entity.
type AgentChangeCreate struct {
	config
	mutation *AgentChangeMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentChangeCreate) SetAgentID(v int) *AgentChangeCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetChangeType sets the "change_type" field.
func (_c *AgentChangeCreate) SetChangeType(v models.ChangeType) *AgentChangeCreate {
	_c.mutation.SetChangeType(v)
	return _c
}

// SetChangeDescription sets the "change_description" field.
func (_c *AgentChangeCreate) SetChangeDescription(v string) *AgentChangeCreate {
	_c.mutation.SetChangeDescription(v)
	return _c
}

// SetBeforeValue sets the "before_value" field.
func (_c *AgentChangeCreate) SetBeforeValue(v string) *AgentChangeCreate {
	_c.mutation.SetBeforeValue(v)
	return _c
}

// SetNillableBeforeValue sets the "before_value" field if the given value is not nil.
func (_c *AgentChangeCreate) SetNillableBeforeValue(v *string) *AgentChangeCreate {
	if v != nil {
		_c.SetBeforeValue(*v)
	}
	return _c
}

// SetAfterValue sets the "after_value" field.
func (_c *AgentChangeCreate) SetAfterValue(v string) *AgentChangeCreate {
	_c.mutation.SetAfterValue(v)
	return _c
}

// SetNillableAfterValue sets the "after_value" field if the given value is not nil.
func (_c *AgentChangeCreate) SetNillableAfterValue(v *string) *AgentChangeCreate {
	if v != nil {
		_c.SetAfterValue(*v)
	}
	return _c
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *AgentChangeCreate) SetTriggeredBy(v models.TriggeredBy) *AgentChangeCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetAgentInvocationID sets the "agent_invocation_id" field.
func (_c *AgentChangeCreate) SetAgentInvocationID(v int) *AgentChangeCreate {
	_c.mutation.SetAgentInvocationID(v)
	return _c
}

// SetNillableAgentInvocationID sets the "agent_invocation_id" field if the given value is not nil.
func (_c *AgentChangeCreate) SetNillableAgentInvocationID(v *int) *AgentChangeCreate {
	if v != nil {
		_c.SetAgentInvocationID(*v)
	}
	return _c
}

// SetAgentIssueID sets the "agent_issue_id" field.
func (_c *AgentChangeCreate) SetAgentIssueID(v int) *AgentChangeCreate {
	_c.mutation.SetAgentIssueID(v)
	return _c
}

// SetNillableAgentIssueID sets the "agent_issue_id" field if the given value is not nil.
func (_c *AgentChangeCreate) SetNillableAgentIssueID(v *int) *AgentChangeCreate {
	if v != nil {
		_c.SetAgentIssueID(*v)
	}
	return _c
}

// SetAgentImprovementID sets the "agent_improvement_id" field.
func (_c *AgentChangeCreate) SetAgentImprovementID(v int) *AgentChangeCreate {
	_c.mutation.SetAgentImprovementID(v)
	return _c
}

// SetNillableAgentImprovementID sets the "agent_improvement_id" field if the given value is not nil.
func (_c *AgentChangeCreate) SetNillableAgentImprovementID(v *int) *AgentChangeCreate {
	if v != nil {
		_c.SetAgentImprovementID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentChangeCreate) SetCreatedAt(v time.Time) *AgentChangeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentChangeCreate) SetNillableCreatedAt(v *time.Time) *AgentChangeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentChangeCreate) SetUpdatedAt(v time.Time) *AgentChangeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentChangeCreate) SetNillableUpdatedAt(v *time.Time) *AgentChangeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *AgentChangeCreate) SetAgent(v *Agent) *AgentChangeCreate {
	return _c.SetAgentID(v.ID)
}

// SetInvocationID sets the "invocation" edge to the AgentInvocation entity by ID.
func (_c *AgentChangeCreate) SetInvocationID(id int) *AgentChangeCreate {
	_c.mutation.SetInvocationID(id)
	return _c
}

// SetNillableInvocationID sets the "invocation" edge to the AgentInvocation entity by ID if the given value is not nil.
func (_c *AgentChangeCreate) SetNillableInvocationID(id *int) *AgentChangeCreate {
	if id != nil {
		_c = _c.SetInvocationID(*id)
	}
	return _c
}

// SetInvocation sets the "invocation" edge to the AgentInvocation entity.
func (_c *AgentChangeCreate) SetInvocation(v *AgentInvocation) *AgentChangeCreate {
	return _c.SetInvocationID(v.ID)
}

// SetIssueID sets the "issue" edge to the AgentIssue entity by ID.
func (_c *AgentChangeCreate) SetIssueID(id int) *AgentChangeCreate {
	_c.mutation.SetIssueID(id)
	return _c
}

// SetNillableIssueID sets the "issue" edge to the AgentIssue entity by ID if the given value is not nil.
func (_c *AgentChangeCreate) SetNillableIssueID(id *int) *AgentChangeCreate {
	if id != nil {
		_c = _c.SetIssueID(*id)
	}
	return _c
}

// SetIssue sets the "issue" edge to the AgentIssue entity.
func (_c *AgentChangeCreate) SetIssue(v *AgentIssue) *AgentChangeCreate {
	return _c.SetIssueID(v.ID)
}

// SetImprovementID sets the "improvement" edge to the AgentImprovement entity by ID.
func (_c *AgentChangeCreate) SetImprovementID(id int) *AgentChangeCreate {
	_c.mutation.SetImprovementID(id)
	return _c
}

// SetNillableImprovementID sets the "improvement" edge to the AgentImprovement entity by ID if the given value is not nil.
func (_c *AgentChangeCreate) SetNillableImprovementID(id *int) *AgentChangeCreate {
	if id != nil {
		_c = _c.SetImprovementID(*id)
	}
	return _c
}

// SetImprovement sets the "improvement" edge to the AgentImprovement entity.
func (_c *AgentChangeCreate) SetImprovement(v *AgentImprovement) *AgentChangeCreate {
	return _c.SetImprovementID(v.ID)
}

// Mutation returns the AgentChangeMutation object of the builder.
func (_c *AgentChangeCreate) Mutation() *AgentChangeMutation {
	return _c.mutation
}

// Save creates the AgentChange in the database.
func (_c *AgentChangeCreate) Save(ctx context.Context) (*AgentChange, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentChangeCreate) SaveX(ctx context.Context) *AgentChange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentChangeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentChangeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentChangeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentchange.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentchange.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentChangeCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentChange.agent_id"`)}
	}
	if _, ok := _c.mutation.ChangeType(); !ok {
		return &ValidationError{Name: "change_type", err: errors.New(`ent: missing required field "AgentChange.change_type"`)}
	}
	if v, ok := _c.mutation.ChangeType(); ok {
		if err := agentchange.ChangeTypeValidator(v); err != nil {
			return &ValidationError{Name: "change_type", err: fmt.Errorf(`ent: validator failed for field "AgentChange.change_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChangeDescription(); !ok {
		return &ValidationError{Name: "change_description", err: errors.New(`ent: missing required field "AgentChange.change_description"`)}
	}
	if v, ok := _c.mutation.ChangeDescription(); ok {
		if err := agentchange.ChangeDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "change_description", err: fmt.Errorf(`ent: validator failed for field "AgentChange.change_description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggeredBy(); !ok {
		return &ValidationError{Name: "triggered_by", err: errors.New(`ent: missing required field "AgentChange.triggered_by"`)}
	}
	if v, ok := _c.mutation.TriggeredBy(); ok {
		if err := agentchange.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "AgentChange.triggered_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentChange.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentChange.updated_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "AgentChange.agent"`)}
	}
	return nil
}

func (_c *AgentChangeCreate) sqlSave(ctx context.Context) (*AgentChange, error) {
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

func (_c *AgentChangeCreate) createSpec() (*AgentChange, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentChange{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentchange.Table, sqlgraph.NewFieldSpec(agentchange.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ChangeType(); ok {
		_spec.SetField(agentchange.FieldChangeType, field.TypeEnum, value)
		_node.ChangeType = value
	}
	if value, ok := _c.mutation.ChangeDescription(); ok {
		_spec.SetField(agentchange.FieldChangeDescription, field.TypeString, value)
		_node.ChangeDescription = value
	}
	if value, ok := _c.mutation.BeforeValue(); ok {
		_spec.SetField(agentchange.FieldBeforeValue, field.TypeString, value)
		_node.BeforeValue = &value
	}
	if value, ok := _c.mutation.AfterValue(); ok {
		_spec.SetField(agentchange.FieldAfterValue, field.TypeString, value)
		_node.AfterValue = &value
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(agentchange.FieldTriggeredBy, field.TypeEnum, value)
		_node.TriggeredBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentchange.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentchange.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentchange.AgentTable,
			Columns: []string{agentchange.AgentColumn},
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
	if nodes := _c.mutation.InvocationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentchange.InvocationTable,
			Columns: []string{agentchange.InvocationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentinvocation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentInvocationID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IssueIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentchange.IssueTable,
			Columns: []string{agentchange.IssueColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentissue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentIssueID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ImprovementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentchange.ImprovementTable,
			Columns: []string{agentchange.ImprovementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentimprovement.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentImprovementID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentChangeCreateBulk is the builder for creating many AgentChange entities in bulk.
type AgentChangeCreateBulk struct {
	config
	err      error
	builders []*AgentChangeCreate
}

// Save creates the AgentChange entities in the database.
func (_c *AgentChangeCreateBulk) Save(ctx context.Context) ([]*AgentChange, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentChange, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentChangeMutation)
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
func (_c *AgentChangeCreateBulk) SaveX(ctx context.Context) []*AgentChange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentChangeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentChangeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
