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
	"github.com/codeready-toolchain/agent-tracker/ent/predicate"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// AgentImprovementUpdate is the builder for updating AgentImprovement entities.
type AgentImprovementUpdate struct {
	config
	hooks    []Hook
	mutation *AgentImprovementMutation
}

// Where appends a list predicates to the AgentImprovementUpdate builder.
func (_u *AgentImprovementUpdate) Where(ps ...predicate.AgentImprovement) *AgentImprovementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentImprovementUpdate) SetAgentID(v int) *AgentImprovementUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentImprovementUpdate) SetNillableAgentID(v *int) *AgentImprovementUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetImprovementDescription sets the "improvement_description" field.
func (_u *AgentImprovementUpdate) SetImprovementDescription(v string) *AgentImprovementUpdate {
	_u.mutation.SetImprovementDescription(v)
	return _u
}

// SetNillableImprovementDescription sets the "improvement_description" field if the given value is not nil.
func (_u *AgentImprovementUpdate) SetNillableImprovementDescription(v *string) *AgentImprovementUpdate {
	if v != nil {
		_u.SetImprovementDescription(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AgentImprovementUpdate) SetPriority(v int) *AgentImprovementUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AgentImprovementUpdate) SetNillablePriority(v *int) *AgentImprovementUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *AgentImprovementUpdate) AddPriority(v int) *AgentImprovementUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentImprovementUpdate) SetStatus(v models.ImprovementStatus) *AgentImprovementUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentImprovementUpdate) SetNillableStatus(v *models.ImprovementStatus) *AgentImprovementUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetImplementedAt sets the "implemented_at" field.
func (_u *AgentImprovementUpdate) SetImplementedAt(v time.Time) *AgentImprovementUpdate {
	_u.mutation.SetImplementedAt(v)
	return _u
}

// SetNillableImplementedAt sets the "implemented_at" field if the given value is not nil.
func (_u *AgentImprovementUpdate) SetNillableImplementedAt(v *time.Time) *AgentImprovementUpdate {
	if v != nil {
		_u.SetImplementedAt(*v)
	}
	return _u
}

// ClearImplementedAt clears the value of the "implemented_at" field.
func (_u *AgentImprovementUpdate) ClearImplementedAt() *AgentImprovementUpdate {
	_u.mutation.ClearImplementedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentImprovementUpdate) SetUpdatedAt(v time.Time) *AgentImprovementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *AgentImprovementUpdate) SetAgent(v *Agent) *AgentImprovementUpdate {
	return _u.SetAgentID(v.ID)
}

// AddChangeIDs adds the "changes" edge to the AgentChange entity by IDs.
func (_u *AgentImprovementUpdate) AddChangeIDs(ids ...int) *AgentImprovementUpdate {
	_u.mutation.AddChangeIDs(ids...)
	return _u
}

// AddChanges adds the "changes" edges to the AgentChange entity.
func (_u *AgentImprovementUpdate) AddChanges(v ...*AgentChange) *AgentImprovementUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChangeIDs(ids...)
}

// Mutation returns the AgentImprovementMutation object of the builder.
func (_u *AgentImprovementUpdate) Mutation() *AgentImprovementMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *AgentImprovementUpdate) ClearAgent() *AgentImprovementUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// ClearChanges clears all "changes" edges to the AgentChange entity.
func (_u *AgentImprovementUpdate) ClearChanges() *AgentImprovementUpdate {
	_u.mutation.ClearChanges()
	return _u
}

// RemoveChangeIDs removes the "changes" edge to AgentChange entities by IDs.
func (_u *AgentImprovementUpdate) RemoveChangeIDs(ids ...int) *AgentImprovementUpdate {
	_u.mutation.RemoveChangeIDs(ids...)
	return _u
}

// RemoveChanges removes "changes" edges to AgentChange entities.
func (_u *AgentImprovementUpdate) RemoveChanges(v ...*AgentChange) *AgentImprovementUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChangeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentImprovementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentImprovementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentImprovementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentImprovementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentImprovementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentimprovement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentImprovementUpdate) check() error {
	if v, ok := _u.mutation.ImprovementDescription(); ok {
		if err := agentimprovement.ImprovementDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "improvement_description", err: fmt.Errorf(`ent: validator failed for field "AgentImprovement.improvement_description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := agentimprovement.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "AgentImprovement.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agentimprovement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentImprovement.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentImprovement.agent"`)
	}
	return nil
}

func (_u *AgentImprovementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentimprovement.Table, agentimprovement.Columns, sqlgraph.NewFieldSpec(agentimprovement.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ImprovementDescription(); ok {
		_spec.SetField(agentimprovement.FieldImprovementDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(agentimprovement.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(agentimprovement.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentimprovement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ImplementedAt(); ok {
		_spec.SetField(agentimprovement.FieldImplementedAt, field.TypeTime, value)
	}
	if _u.mutation.ImplementedAtCleared() {
		_spec.ClearField(agentimprovement.FieldImplementedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentimprovement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChangesIDs(); len(nodes) > 0 && !_u.mutation.ChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChangesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentimprovement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentImprovementUpdateOne is the builder for updating a single AgentImprovement entity.
type AgentImprovementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentImprovementMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentImprovementUpdateOne) SetAgentID(v int) *AgentImprovementUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentImprovementUpdateOne) SetNillableAgentID(v *int) *AgentImprovementUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetImprovementDescription sets the "improvement_description" field.
func (_u *AgentImprovementUpdateOne) SetImprovementDescription(v string) *AgentImprovementUpdateOne {
	_u.mutation.SetImprovementDescription(v)
	return _u
}

// SetNillableImprovementDescription sets the "improvement_description" field if the given value is not nil.
func (_u *AgentImprovementUpdateOne) SetNillableImprovementDescription(v *string) *AgentImprovementUpdateOne {
	if v != nil {
		_u.SetImprovementDescription(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AgentImprovementUpdateOne) SetPriority(v int) *AgentImprovementUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AgentImprovementUpdateOne) SetNillablePriority(v *int) *AgentImprovementUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *AgentImprovementUpdateOne) AddPriority(v int) *AgentImprovementUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentImprovementUpdateOne) SetStatus(v models.ImprovementStatus) *AgentImprovementUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentImprovementUpdateOne) SetNillableStatus(v *models.ImprovementStatus) *AgentImprovementUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetImplementedAt sets the "implemented_at" field.
func (_u *AgentImprovementUpdateOne) SetImplementedAt(v time.Time) *AgentImprovementUpdateOne {
	_u.mutation.SetImplementedAt(v)
	return _u
}

// SetNillableImplementedAt sets the "implemented_at" field if the given value is not nil.
func (_u *AgentImprovementUpdateOne) SetNillableImplementedAt(v *time.Time) *AgentImprovementUpdateOne {
	if v != nil {
		_u.SetImplementedAt(*v)
	}
	return _u
}

// ClearImplementedAt clears the value of the "implemented_at" field.
func (_u *AgentImprovementUpdateOne) ClearImplementedAt() *AgentImprovementUpdateOne {
	_u.mutation.ClearImplementedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentImprovementUpdateOne) SetUpdatedAt(v time.Time) *AgentImprovementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *AgentImprovementUpdateOne) SetAgent(v *Agent) *AgentImprovementUpdateOne {
	return _u.SetAgentID(v.ID)
}

// AddChangeIDs adds the "changes" edge to the AgentChange entity by IDs.
func (_u *AgentImprovementUpdateOne) AddChangeIDs(ids ...int) *AgentImprovementUpdateOne {
	_u.mutation.AddChangeIDs(ids...)
	return _u
}

// AddChanges adds the "changes" edges to the AgentChange entity.
func (_u *AgentImprovementUpdateOne) AddChanges(v ...*AgentChange) *AgentImprovementUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChangeIDs(ids...)
}

// Mutation returns the AgentImprovementMutation object of the builder.
func (_u *AgentImprovementUpdateOne) Mutation() *AgentImprovementMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *AgentImprovementUpdateOne) ClearAgent() *AgentImprovementUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// ClearChanges clears all "changes" edges to the AgentChange entity.
func (_u *AgentImprovementUpdateOne) ClearChanges() *AgentImprovementUpdateOne {
	_u.mutation.ClearChanges()
	return _u
}

// RemoveChangeIDs removes the "changes" edge to AgentChange entities by IDs.
func (_u *AgentImprovementUpdateOne) RemoveChangeIDs(ids ...int) *AgentImprovementUpdateOne {
	_u.mutation.RemoveChangeIDs(ids...)
	return _u
}

// RemoveChanges removes "changes" edges to AgentChange entities.
func (_u *AgentImprovementUpdateOne) RemoveChanges(v ...*AgentChange) *AgentImprovementUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChangeIDs(ids...)
}

// Where appends a list predicates to the AgentImprovementUpdate builder.
func (_u *AgentImprovementUpdateOne) Where(ps ...predicate.AgentImprovement) *AgentImprovementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentImprovementUpdateOne) Select(field string, fields ...string) *AgentImprovementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentImprovement entity.
func (_u *AgentImprovementUpdateOne) Save(ctx context.Context) (*AgentImprovement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentImprovementUpdateOne) SaveX(ctx context.Context) *AgentImprovement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentImprovementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentImprovementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentImprovementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentimprovement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentImprovementUpdateOne) check() error {
	if v, ok := _u.mutation.ImprovementDescription(); ok {
		if err := agentimprovement.ImprovementDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "improvement_description", err: fmt.Errorf(`ent: validator failed for field "AgentImprovement.improvement_description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := agentimprovement.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "AgentImprovement.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agentimprovement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentImprovement.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentImprovement.agent"`)
	}
	return nil
}

func (_u *AgentImprovementUpdateOne) sqlSave(ctx context.Context) (_node *AgentImprovement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentimprovement.Table, agentimprovement.Columns, sqlgraph.NewFieldSpec(agentimprovement.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentImprovement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentimprovement.FieldID)
		for _, f := range fields {
			if !agentimprovement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentimprovement.FieldID {
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
	if value, ok := _u.mutation.ImprovementDescription(); ok {
		_spec.SetField(agentimprovement.FieldImprovementDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(agentimprovement.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(agentimprovement.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentimprovement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ImplementedAt(); ok {
		_spec.SetField(agentimprovement.FieldImplementedAt, field.TypeTime, value)
	}
	if _u.mutation.ImplementedAtCleared() {
		_spec.ClearField(agentimprovement.FieldImplementedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentimprovement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChangesIDs(); len(nodes) > 0 && !_u.mutation.ChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChangesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentImprovement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentimprovement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
