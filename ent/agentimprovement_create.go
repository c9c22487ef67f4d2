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
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// AgentImprovementCreate is the builder for creating a AgentImprovement entity.
type AgentImprovementCreate struct {
	config
	mutation *AgentImprovementMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentImprovementCreate) SetAgentID(v int) *AgentImprovementCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetImprovementDescription sets the "improvement_description" field.
func (_c *AgentImprovementCreate) SetImprovementDescription(v string) *AgentImprovementCreate {
	_c.mutation.SetImprovementDescription(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *AgentImprovementCreate) SetPriority(v int) *AgentImprovementCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentImprovementCreate) SetStatus(v models.ImprovementStatus) *AgentImprovementCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentImprovementCreate) SetNillableStatus(v *models.ImprovementStatus) *AgentImprovementCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetImplementedAt sets the "implemented_at" field.
func (_c *AgentImprovementCreate) SetImplementedAt(v time.Time) *AgentImprovementCreate {
	_c.mutation.SetImplementedAt(v)
	return _c
}

// SetNillableImplementedAt sets the "implemented_at" field if the given value is not nil.
func (_c *AgentImprovementCreate) SetNillableImplementedAt(v *time.Time) *AgentImprovementCreate {
	if v != nil {
		_c.SetImplementedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentImprovementCreate) SetCreatedAt(v time.Time) *AgentImprovementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentImprovementCreate) SetNillableCreatedAt(v *time.Time) *AgentImprovementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentImprovementCreate) SetUpdatedAt(v time.Time) *AgentImprovementCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentImprovementCreate) SetNillableUpdatedAt(v *time.Time) *AgentImprovementCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *AgentImprovementCreate) SetAgent(v *Agent) *AgentImprovementCreate {
	return _c.SetAgentID(v.ID)
}

// AddChangeIDs adds the "changes" edge to the AgentChange entity by IDs.
func (_c *AgentImprovementCreate) AddChangeIDs(ids ...int) *AgentImprovementCreate {
	_c.mutation.AddChangeIDs(ids...)
	return _c
}

// AddChanges adds the "changes" edges to the AgentChange entity.
func (_c *AgentImprovementCreate) AddChanges(v ...*AgentChange) *AgentImprovementCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChangeIDs(ids...)
}

// Mutation returns the AgentImprovementMutation object of the builder.
func (_c *AgentImprovementCreate) Mutation() *AgentImprovementMutation {
	return _c.mutation
}

// Save creates the AgentImprovement in the database.
func (_c *AgentImprovementCreate) Save(ctx context.Context) (*AgentImprovement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentImprovementCreate) SaveX(ctx context.Context) *AgentImprovement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentImprovementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentImprovementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentImprovementCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentimprovement.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentimprovement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentimprovement.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentImprovementCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentImprovement.agent_id"`)}
	}
	if _, ok := _c.mutation.ImprovementDescription(); !ok {
		return &ValidationError{Name: "improvement_description", err: errors.New(`ent: missing required field "AgentImprovement.improvement_description"`)}
	}
	if v, ok := _c.mutation.ImprovementDescription(); ok {
		if err := agentimprovement.ImprovementDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "improvement_description", err: fmt.Errorf(`ent: validator failed for field "AgentImprovement.improvement_description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "AgentImprovement.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := agentimprovement.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "AgentImprovement.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentImprovement.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentimprovement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentImprovement.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentImprovement.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentImprovement.updated_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "AgentImprovement.agent"`)}
	}
	return nil
}

func (_c *AgentImprovementCreate) sqlSave(ctx context.Context) (*AgentImprovement, error) {
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

func (_c *AgentImprovementCreate) createSpec() (*AgentImprovement, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentImprovement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentimprovement.Table, sqlgraph.NewFieldSpec(agentimprovement.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ImprovementDescription(); ok {
		_spec.SetField(agentimprovement.FieldImprovementDescription, field.TypeString, value)
		_node.ImprovementDescription = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(agentimprovement.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentimprovement.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ImplementedAt(); ok {
		_spec.SetField(agentimprovement.FieldImplementedAt, field.TypeTime, value)
		_node.ImplementedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentimprovement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentimprovement.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentimprovement.AgentTable,
			Columns: []string{agentimprovement.AgentColumn},
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
	if nodes := _c.mutation.ChangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentimprovement.ChangesTable,
			Columns: []string{agentimprovement.ChangesColumn},
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

// AgentImprovementCreateBulk is the builder for creating many AgentImprovement entities in bulk.
type AgentImprovementCreateBulk struct {
	config
	err      error
	builders []*AgentImprovementCreate
}

// Save creates the AgentImprovement entities in the database.
func (_c *AgentImprovementCreateBulk) Save(ctx context.Context) ([]*AgentImprovement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentImprovement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentImprovementMutation)
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
func (_c *AgentImprovementCreateBulk) SaveX(ctx context.Context) []*AgentImprovement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentImprovementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentImprovementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
