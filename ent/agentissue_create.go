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

// AgentIssueCreate is the builder for creating a AgentIssue entity.
type AgentIssueCreate struct {
	config
	mutation *AgentIssueMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentIssueCreate) SetAgentID(v int) *AgentIssueCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetAgentInvocationID sets the "agent_invocation_id" field.
func (_c *AgentIssueCreate) SetAgentInvocationID(v int) *AgentIssueCreate {
	_c.mutation.SetAgentInvocationID(v)
	return _c
}

// SetNillableAgentInvocationID sets the "agent_invocation_id" field if the given value is not nil.
func (_c *AgentIssueCreate) SetNillableAgentInvocationID(v *int) *AgentIssueCreate {
	if v != nil {
		_c.SetAgentInvocationID(*v)
	}
	return _c
}

// SetIssueDescription sets the "issue_description" field.
func (_c *AgentIssueCreate) SetIssueDescription(v string) *AgentIssueCreate {
	_c.mutation.SetIssueDescription(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *AgentIssueCreate) SetSeverity(v int) *AgentIssueCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentIssueCreate) SetStatus(v models.IssueStatus) *AgentIssueCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentIssueCreate) SetNillableStatus(v *models.IssueStatus) *AgentIssueCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_c *AgentIssueCreate) SetResolutionNotes(v string) *AgentIssueCreate {
	_c.mutation.SetResolutionNotes(v)
	return _c
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_c *AgentIssueCreate) SetNillableResolutionNotes(v *string) *AgentIssueCreate {
	if v != nil {
		_c.SetResolutionNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentIssueCreate) SetCreatedAt(v time.Time) *AgentIssueCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentIssueCreate) SetNillableCreatedAt(v *time.Time) *AgentIssueCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentIssueCreate) SetUpdatedAt(v time.Time) *AgentIssueCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentIssueCreate) SetNillableUpdatedAt(v *time.Time) *AgentIssueCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *AgentIssueCreate) SetAgent(v *Agent) *AgentIssueCreate {
	return _c.SetAgentID(v.ID)
}

// SetInvocationID sets the "invocation" edge to the AgentInvocation entity by ID.
func (_c *AgentIssueCreate) SetInvocationID(id int) *AgentIssueCreate {
	_c.mutation.SetInvocationID(id)
	return _c
}

// SetNillableInvocationID sets the "invocation" edge to the AgentInvocation entity by ID if the given value is not nil.
func (_c *AgentIssueCreate) SetNillableInvocationID(id *int) *AgentIssueCreate {
	if id != nil {
		_c = _c.SetInvocationID(*id)
	}
	return _c
}

// SetInvocation sets the "invocation" edge to the AgentInvocation entity.
func (_c *AgentIssueCreate) SetInvocation(v *AgentInvocation) *AgentIssueCreate {
	return _c.SetInvocationID(v.ID)
}

// AddChangeIDs adds the "changes" edge to the AgentChange entity by IDs.
func (_c *AgentIssueCreate) AddChangeIDs(ids ...int) *AgentIssueCreate {
	_c.mutation.AddChangeIDs(ids...)
	return _c
}

// AddChanges adds the "changes" edges to the AgentChange entity.
func (_c *AgentIssueCreate) AddChanges(v ...*AgentChange) *AgentIssueCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChangeIDs(ids...)
}

// Mutation returns the AgentIssueMutation object of the builder.
func (_c *AgentIssueCreate) Mutation() *AgentIssueMutation {
	return _c.mutation
}

// Save creates the AgentIssue in the database.
func (_c *AgentIssueCreate) Save(ctx context.Context) (*AgentIssue, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentIssueCreate) SaveX(ctx context.Context) *AgentIssue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentIssueCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentIssueCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentIssueCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentissue.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentissue.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentissue.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentIssueCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentIssue.agent_id"`)}
	}
	if _, ok := _c.mutation.IssueDescription(); !ok {
		return &ValidationError{Name: "issue_description", err: errors.New(`ent: missing required field "AgentIssue.issue_description"`)}
	}
	if v, ok := _c.mutation.IssueDescription(); ok {
		if err := agentissue.IssueDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "issue_description", err: fmt.Errorf(`ent: validator failed for field "AgentIssue.issue_description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "AgentIssue.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := agentissue.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "AgentIssue.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentIssue.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentissue.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentIssue.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentIssue.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentIssue.updated_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "AgentIssue.agent"`)}
	}
	return nil
}

func (_c *AgentIssueCreate) sqlSave(ctx context.Context) (*AgentIssue, error) {
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

func (_c *AgentIssueCreate) createSpec() (*AgentIssue, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentIssue{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentissue.Table, sqlgraph.NewFieldSpec(agentissue.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.IssueDescription(); ok {
		_spec.SetField(agentissue.FieldIssueDescription, field.TypeString, value)
		_node.IssueDescription = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(agentissue.FieldSeverity, field.TypeInt, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentissue.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ResolutionNotes(); ok {
		_spec.SetField(agentissue.FieldResolutionNotes, field.TypeString, value)
		_node.ResolutionNotes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentissue.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentissue.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentissue.AgentTable,
			Columns: []string{agentissue.AgentColumn},
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
			Table:   agentissue.InvocationTable,
			Columns: []string{agentissue.InvocationColumn},
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
	if nodes := _c.mutation.ChangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentissue.ChangesTable,
			Columns: []string{agentissue.ChangesColumn},
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

// AgentIssueCreateBulk is the builder for creating many AgentIssue entities in bulk.
type AgentIssueCreateBulk struct {
	config
	err      error
	builders []*AgentIssueCreate
}

// Save creates the AgentIssue entities in the database.
func (_c *AgentIssueCreateBulk) Save(ctx context.Context) ([]*AgentIssue, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentIssue, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentIssueMutation)
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
func (_c *AgentIssueCreateBulk) SaveX(ctx context.Context) []*AgentIssue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentIssueCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentIssueCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
