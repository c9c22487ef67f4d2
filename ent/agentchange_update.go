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
	"github.com/codeready-toolchain/agent-tracker/ent/agentchange"
	"github.com/codeready-toolchain/agent-tracker/ent/agentimprovement"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/ent/predicate"
)

// AgentChangeUpdate is the builder for updating AgentChange entities.
type AgentChangeUpdate struct {
	config
	hooks    []Hook
	mutation *AgentChangeMutation
}

// Where appends a list predicates to the AgentChangeUpdate builder.
func (_u *AgentChangeUpdate) Where(ps ...predicate.AgentChange) *AgentChangeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentInvocationID sets the "agent_invocation_id" field.
func (_u *AgentChangeUpdate) SetAgentInvocationID(v int) *AgentChangeUpdate {
	_u.mutation.SetAgentInvocationID(v)
	return _u
}

// SetNillableAgentInvocationID sets the "agent_invocation_id" field if the given value is not nil.
func (_u *AgentChangeUpdate) SetNillableAgentInvocationID(v *int) *AgentChangeUpdate {
	if v != nil {
		_u.SetAgentInvocationID(*v)
	}
	return _u
}

// ClearAgentInvocationID clears the value of the "agent_invocation_id" field.
func (_u *AgentChangeUpdate) ClearAgentInvocationID() *AgentChangeUpdate {
	_u.mutation.ClearAgentInvocationID()
	return _u
}

// SetAgentIssueID sets the "agent_issue_id" field.
func (_u *AgentChangeUpdate) SetAgentIssueID(v int) *AgentChangeUpdate {
	_u.mutation.SetAgentIssueID(v)
	return _u
}

// SetNillableAgentIssueID sets the "agent_issue_id" field if the given value is not nil.
func (_u *AgentChangeUpdate) SetNillableAgentIssueID(v *int) *AgentChangeUpdate {
	if v != nil {
		_u.SetAgentIssueID(*v)
	}
	return _u
}

// ClearAgentIssueID clears the value of the "agent_issue_id" field.
func (_u *AgentChangeUpdate) ClearAgentIssueID() *AgentChangeUpdate {
	_u.mutation.ClearAgentIssueID()
	return _u
}

// SetAgentImprovementID sets the "agent_improvement_id" field.
func (_u *AgentChangeUpdate) SetAgentImprovementID(v int) *AgentChangeUpdate {
	_u.mutation.SetAgentImprovementID(v)
	return _u
}

// SetNillableAgentImprovementID sets the "agent_improvement_id" field if the given value is not nil.
func (_u *AgentChangeUpdate) SetNillableAgentImprovementID(v *int) *AgentChangeUpdate {
	if v != nil {
		_u.SetAgentImprovementID(*v)
	}
	return _u
}

// ClearAgentImprovementID clears the value of the "agent_improvement_id" field.
func (_u *AgentChangeUpdate) ClearAgentImprovementID() *AgentChangeUpdate {
	_u.mutation.ClearAgentImprovementID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentChangeUpdate) SetUpdatedAt(v time.Time) *AgentChangeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetInvocationID sets the "invocation" edge to the AgentInvocation entity by ID.
func (_u *AgentChangeUpdate) SetInvocationID(id int) *AgentChangeUpdate {
	_u.mutation.SetInvocationID(id)
	return _u
}

// SetNillableInvocationID sets the "invocation" edge to the AgentInvocation entity by ID if the given value is not nil.
func (_u *AgentChangeUpdate) SetNillableInvocationID(id *int) *AgentChangeUpdate {
	if id != nil {
		_u = _u.SetInvocationID(*id)
	}
	return _u
}

// SetInvocation sets the "invocation" edge to the AgentInvocation entity.
func (_u *AgentChangeUpdate) SetInvocation(v *AgentInvocation) *AgentChangeUpdate {
	return _u.SetInvocationID(v.ID)
}

// SetIssueID sets the "issue" edge to the AgentIssue entity by ID.
func (_u *AgentChangeUpdate) SetIssueID(id int) *AgentChangeUpdate {
	_u.mutation.SetIssueID(id)
	return _u
}

// SetNillableIssueID sets the "issue" edge to the AgentIssue entity by ID if the given value is not nil.
func (_u *AgentChangeUpdate) SetNillableIssueID(id *int) *AgentChangeUpdate {
	if id != nil {
		_u = _u.SetIssueID(*id)
	}
	return _u
}

// SetIssue sets the "issue" edge to the AgentIssue entity.
func (_u *AgentChangeUpdate) SetIssue(v *AgentIssue) *AgentChangeUpdate {
	return _u.SetIssueID(v.ID)
}

// SetImprovementID sets the "improvement" edge to the AgentImprovement entity by ID.
func (_u *AgentChangeUpdate) SetImprovementID(id int) *AgentChangeUpdate {
	_u.mutation.SetImprovementID(id)
	return _u
}

// SetNillableImprovementID sets the "improvement" edge to the AgentImprovement entity by ID if the given value is not nil.
func (_u *AgentChangeUpdate) SetNillableImprovementID(id *int) *AgentChangeUpdate {
	if id != nil {
		_u = _u.SetImprovementID(*id)
	}
	return _u
}

// SetImprovement sets the "improvement" edge to the AgentImprovement entity.
func (_u *AgentChangeUpdate) SetImprovement(v *AgentImprovement) *AgentChangeUpdate {
	return _u.SetImprovementID(v.ID)
}

// Mutation returns the AgentChangeMutation object of the builder.
func (_u *AgentChangeUpdate) Mutation() *AgentChangeMutation {
	return _u.mutation
}

// ClearInvocation clears the "invocation" edge to the AgentInvocation entity.
func (_u *AgentChangeUpdate) ClearInvocation() *AgentChangeUpdate {
	_u.mutation.ClearInvocation()
	return _u
}

// ClearIssue clears the "issue" edge to the AgentIssue entity.
func (_u *AgentChangeUpdate) ClearIssue() *AgentChangeUpdate {
	_u.mutation.ClearIssue()
	return _u
}

// ClearImprovement clears the "improvement" edge to the AgentImprovement entity.
func (_u *AgentChangeUpdate) ClearImprovement() *AgentChangeUpdate {
	_u.mutation.ClearImprovement()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentChangeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentChangeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentChangeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentChangeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentChangeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentchange.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentChangeUpdate) check() error {
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentChange.agent"`)
	}
	return nil
}

func (_u *AgentChangeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentchange.Table, agentchange.Columns, sqlgraph.NewFieldSpec(agentchange.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.BeforeValueCleared() {
		_spec.ClearField(agentchange.FieldBeforeValue, field.TypeString)
	}
	if _u.mutation.AfterValueCleared() {
		_spec.ClearField(agentchange.FieldAfterValue, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentchange.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvocationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvocationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IssueCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IssueIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImprovementCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImprovementIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentchange.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentChangeUpdateOne is the builder for updating a single AgentChange entity.
type AgentChangeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentChangeMutation
}

// SetAgentInvocationID sets the "agent_invocation_id" field.
func (_u *AgentChangeUpdateOne) SetAgentInvocationID(v int) *AgentChangeUpdateOne {
	_u.mutation.SetAgentInvocationID(v)
	return _u
}

// SetNillableAgentInvocationID sets the "agent_invocation_id" field if the given value is not nil.
func (_u *AgentChangeUpdateOne) SetNillableAgentInvocationID(v *int) *AgentChangeUpdateOne {
	if v != nil {
		_u.SetAgentInvocationID(*v)
	}
	return _u
}

// ClearAgentInvocationID clears the value of the "agent_invocation_id" field.
func (_u *AgentChangeUpdateOne) ClearAgentInvocationID() *AgentChangeUpdateOne {
	_u.mutation.ClearAgentInvocationID()
	return _u
}

// SetAgentIssueID sets the "agent_issue_id" field.
func (_u *AgentChangeUpdateOne) SetAgentIssueID(v int) *AgentChangeUpdateOne {
	_u.mutation.SetAgentIssueID(v)
	return _u
}

// SetNillableAgentIssueID sets the "agent_issue_id" field if the given value is not nil.
func (_u *AgentChangeUpdateOne) SetNillableAgentIssueID(v *int) *AgentChangeUpdateOne {
	if v != nil {
		_u.SetAgentIssueID(*v)
	}
	return _u
}

// ClearAgentIssueID clears the value of the "agent_issue_id" field.
func (_u *AgentChangeUpdateOne) ClearAgentIssueID() *AgentChangeUpdateOne {
	_u.mutation.ClearAgentIssueID()
	return _u
}

// SetAgentImprovementID sets the "agent_improvement_id" field.
func (_u *AgentChangeUpdateOne) SetAgentImprovementID(v int) *AgentChangeUpdateOne {
	_u.mutation.SetAgentImprovementID(v)
	return _u
}

// SetNillableAgentImprovementID sets the "agent_improvement_id" field if the given value is not nil.
func (_u *AgentChangeUpdateOne) SetNillableAgentImprovementID(v *int) *AgentChangeUpdateOne {
	if v != nil {
		_u.SetAgentImprovementID(*v)
	}
	return _u
}

// ClearAgentImprovementID clears the value of the "agent_improvement_id" field.
func (_u *AgentChangeUpdateOne) ClearAgentImprovementID() *AgentChangeUpdateOne {
	_u.mutation.ClearAgentImprovementID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentChangeUpdateOne) SetUpdatedAt(v time.Time) *AgentChangeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetInvocationID sets the "invocation" edge to the AgentInvocation entity by ID.
func (_u *AgentChangeUpdateOne) SetInvocationID(id int) *AgentChangeUpdateOne {
	_u.mutation.SetInvocationID(id)
	return _u
}

// SetNillableInvocationID sets the "invocation" edge to the AgentInvocation entity by ID if the given value is not nil.
func (_u *AgentChangeUpdateOne) SetNillableInvocationID(id *int) *AgentChangeUpdateOne {
	if id != nil {
		_u = _u.SetInvocationID(*id)
	}
	return _u
}

// SetInvocation sets the "invocation" edge to the AgentInvocation entity.
func (_u *AgentChangeUpdateOne) SetInvocation(v *AgentInvocation) *AgentChangeUpdateOne {
	return _u.SetInvocationID(v.ID)
}

// SetIssueID sets the "issue" edge to the AgentIssue entity by ID.
func (_u *AgentChangeUpdateOne) SetIssueID(id int) *AgentChangeUpdateOne {
	_u.mutation.SetIssueID(id)
	return _u
}

// SetNillableIssueID sets the "issue" edge to the AgentIssue entity by ID if the given value is not nil.
func (_u *AgentChangeUpdateOne) SetNillableIssueID(id *int) *AgentChangeUpdateOne {
	if id != nil {
		_u = _u.SetIssueID(*id)
	}
	return _u
}

// SetIssue sets the "issue" edge to the AgentIssue entity.
func (_u *AgentChangeUpdateOne) SetIssue(v *AgentIssue) *AgentChangeUpdateOne {
	return _u.SetIssueID(v.ID)
}

// SetImprovementID sets the "improvement" edge to the AgentImprovement entity by ID.
func (_u *AgentChangeUpdateOne) SetImprovementID(id int) *AgentChangeUpdateOne {
	_u.mutation.SetImprovementID(id)
	return _u
}

// SetNillableImprovementID sets the "improvement" edge to the AgentImprovement entity by ID if the given value is not nil.
func (_u *AgentChangeUpdateOne) SetNillableImprovementID(id *int) *AgentChangeUpdateOne {
	if id != nil {
		_u = _u.SetImprovementID(*id)
	}
	return _u
}

// SetImprovement sets the "improvement" edge to the AgentImprovement entity.
func (_u *AgentChangeUpdateOne) SetImprovement(v *AgentImprovement) *AgentChangeUpdateOne {
	return _u.SetImprovementID(v.ID)
}

// Mutation returns the AgentChangeMutation object of the builder.
func (_u *AgentChangeUpdateOne) Mutation() *AgentChangeMutation {
	return _u.mutation
}

// ClearInvocation clears the "invocation" edge to the AgentInvocation entity.
func (_u *AgentChangeUpdateOne) ClearInvocation() *AgentChangeUpdateOne {
	_u.mutation.ClearInvocation()
	return _u
}

// ClearIssue clears the "issue" edge to the AgentIssue entity.
func (_u *AgentChangeUpdateOne) ClearIssue() *AgentChangeUpdateOne {
	_u.mutation.ClearIssue()
	return _u
}

// ClearImprovement clears the "improvement" edge to the AgentImprovement entity.
func (_u *AgentChangeUpdateOne) ClearImprovement() *AgentChangeUpdateOne {
	_u.mutation.ClearImprovement()
	return _u
}

// Where appends a list predicates to the AgentChangeUpdate builder.
func (_u *AgentChangeUpdateOne) Where(ps ...predicate.AgentChange) *AgentChangeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentChangeUpdateOne) Select(field string, fields ...string) *AgentChangeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentChange entity.
func (_u *AgentChangeUpdateOne) Save(ctx context.Context) (*AgentChange, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentChangeUpdateOne) SaveX(ctx context.Context) *AgentChange {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentChangeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentChangeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentChangeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentchange.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentChangeUpdateOne) check() error {
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentChange.agent"`)
	}
	return nil
}

func (_u *AgentChangeUpdateOne) sqlSave(ctx context.Context) (_node *AgentChange, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentchange.Table, agentchange.Columns, sqlgraph.NewFieldSpec(agentchange.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentChange.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentchange.FieldID)
		for _, f := range fields {
			if !agentchange.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentchange.FieldID {
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
	if _u.mutation.BeforeValueCleared() {
		_spec.ClearField(agentchange.FieldBeforeValue, field.TypeString)
	}
	if _u.mutation.AfterValueCleared() {
		_spec.ClearField(agentchange.FieldAfterValue, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentchange.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvocationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvocationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IssueCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IssueIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImprovementCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImprovementIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentChange{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentchange.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
