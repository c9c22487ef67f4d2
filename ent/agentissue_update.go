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

// AgentIssueUpdate is the builder for updating AgentIssue entities.
type AgentIssueUpdate struct {
	config
	hooks    []Hook
	mutation *AgentIssueMutation
}

// Where appends a list predicates to the AgentIssueUpdate builder.
func (_u *AgentIssueUpdate) Where(ps ...predicate.AgentIssue) *AgentIssueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentIssueUpdate) SetAgentID(v int) *AgentIssueUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentIssueUpdate) SetNillableAgentID(v *int) *AgentIssueUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetAgentInvocationID sets the "agent_invocation_id" field.
func (_u *AgentIssueUpdate) SetAgentInvocationID(v int) *AgentIssueUpdate {
	_u.mutation.SetAgentInvocationID(v)
	return _u
}

// SetNillableAgentInvocationID sets the "agent_invocation_id" field if the given value is not nil.
func (_u *AgentIssueUpdate) SetNillableAgentInvocationID(v *int) *AgentIssueUpdate {
	if v != nil {
		_u.SetAgentInvocationID(*v)
	}
	return _u
}

// ClearAgentInvocationID clears the value of the "agent_invocation_id" field.
func (_u *AgentIssueUpdate) ClearAgentInvocationID() *AgentIssueUpdate {
	_u.mutation.ClearAgentInvocationID()
	return _u
}

// SetIssueDescription sets the "issue_description" field.
func (_u *AgentIssueUpdate) SetIssueDescription(v string) *AgentIssueUpdate {
	_u.mutation.SetIssueDescription(v)
	return _u
}

// SetNillableIssueDescription sets the "issue_description" field if the given value is not nil.
func (_u *AgentIssueUpdate) SetNillableIssueDescription(v *string) *AgentIssueUpdate {
	if v != nil {
		_u.SetIssueDescription(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AgentIssueUpdate) SetSeverity(v int) *AgentIssueUpdate {
	_u.mutation.ResetSeverity()
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AgentIssueUpdate) SetNillableSeverity(v *int) *AgentIssueUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// AddSeverity adds value to the "severity" field.
func (_u *AgentIssueUpdate) AddSeverity(v int) *AgentIssueUpdate {
	_u.mutation.AddSeverity(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentIssueUpdate) SetStatus(v models.IssueStatus) *AgentIssueUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentIssueUpdate) SetNillableStatus(v *models.IssueStatus) *AgentIssueUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_u *AgentIssueUpdate) SetResolutionNotes(v string) *AgentIssueUpdate {
	_u.mutation.SetResolutionNotes(v)
	return _u
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_u *AgentIssueUpdate) SetNillableResolutionNotes(v *string) *AgentIssueUpdate {
	if v != nil {
		_u.SetResolutionNotes(*v)
	}
	return _u
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (_u *AgentIssueUpdate) ClearResolutionNotes() *AgentIssueUpdate {
	_u.mutation.ClearResolutionNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentIssueUpdate) SetUpdatedAt(v time.Time) *AgentIssueUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *AgentIssueUpdate) SetAgent(v *Agent) *AgentIssueUpdate {
	return _u.SetAgentID(v.ID)
}

// SetInvocationID sets the "invocation" edge to the AgentInvocation entity by ID.
func (_u *AgentIssueUpdate) SetInvocationID(id int) *AgentIssueUpdate {
	_u.mutation.SetInvocationID(id)
	return _u
}

// SetNillableInvocationID sets the "invocation" edge to the AgentInvocation entity by ID if the given value is not nil.
func (_u *AgentIssueUpdate) SetNillableInvocationID(id *int) *AgentIssueUpdate {
	if id != nil {
		_u = _u.SetInvocationID(*id)
	}
	return _u
}

// SetInvocation sets the "invocation" edge to the AgentInvocation entity.
func (_u *AgentIssueUpdate) SetInvocation(v *AgentInvocation) *AgentIssueUpdate {
	return _u.SetInvocationID(v.ID)
}

// AddChangeIDs adds the "changes" edge to the AgentChange entity by IDs.
func (_u *AgentIssueUpdate) AddChangeIDs(ids ...int) *AgentIssueUpdate {
	_u.mutation.AddChangeIDs(ids...)
	return _u
}

// AddChanges adds the "changes" edges to the AgentChange entity.
func (_u *AgentIssueUpdate) AddChanges(v ...*AgentChange) *AgentIssueUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChangeIDs(ids...)
}

// Mutation returns the AgentIssueMutation object of the builder.
func (_u *AgentIssueUpdate) Mutation() *AgentIssueMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *AgentIssueUpdate) ClearAgent() *AgentIssueUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// ClearInvocation clears the "invocation" edge to the AgentInvocation entity.
func (_u *AgentIssueUpdate) ClearInvocation() *AgentIssueUpdate {
	_u.mutation.ClearInvocation()
	return _u
}

// ClearChanges clears all "changes" edges to the AgentChange entity.
func (_u *AgentIssueUpdate) ClearChanges() *AgentIssueUpdate {
	_u.mutation.ClearChanges()
	return _u
}

// RemoveChangeIDs removes the "changes" edge to AgentChange entities by IDs.
func (_u *AgentIssueUpdate) RemoveChangeIDs(ids ...int) *AgentIssueUpdate {
	_u.mutation.RemoveChangeIDs(ids...)
	return _u
}

// RemoveChanges removes "changes" edges to AgentChange entities.
func (_u *AgentIssueUpdate) RemoveChanges(v ...*AgentChange) *AgentIssueUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChangeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentIssueUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentIssueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentIssueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentIssueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentIssueUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentissue.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentIssueUpdate) check() error {
	if v, ok := _u.mutation.IssueDescription(); ok {
		if err := agentissue.IssueDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "issue_description", err: fmt.Errorf(`ent: validator failed for field "AgentIssue.issue_description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := agentissue.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "AgentIssue.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agentissue.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentIssue.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentIssue.agent"`)
	}
	return nil
}

func (_u *AgentIssueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentissue.Table, agentissue.Columns, sqlgraph.NewFieldSpec(agentissue.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IssueDescription(); ok {
		_spec.SetField(agentissue.FieldIssueDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(agentissue.FieldSeverity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeverity(); ok {
		_spec.AddField(agentissue.FieldSeverity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentissue.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolutionNotes(); ok {
		_spec.SetField(agentissue.FieldResolutionNotes, field.TypeString, value)
	}
	if _u.mutation.ResolutionNotesCleared() {
		_spec.ClearField(agentissue.FieldResolutionNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentissue.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InvocationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvocationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChangesIDs(); len(nodes) > 0 && !_u.mutation.ChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChangesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentissue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentIssueUpdateOne is the builder for updating a single AgentIssue entity.
type AgentIssueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentIssueMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentIssueUpdateOne) SetAgentID(v int) *AgentIssueUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentIssueUpdateOne) SetNillableAgentID(v *int) *AgentIssueUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetAgentInvocationID sets the "agent_invocation_id" field.
func (_u *AgentIssueUpdateOne) SetAgentInvocationID(v int) *AgentIssueUpdateOne {
	_u.mutation.SetAgentInvocationID(v)
	return _u
}

// SetNillableAgentInvocationID sets the "agent_invocation_id" field if the given value is not nil.
func (_u *AgentIssueUpdateOne) SetNillableAgentInvocationID(v *int) *AgentIssueUpdateOne {
	if v != nil {
		_u.SetAgentInvocationID(*v)
	}
	return _u
}

// ClearAgentInvocationID clears the value of the "agent_invocation_id" field.
func (_u *AgentIssueUpdateOne) ClearAgentInvocationID() *AgentIssueUpdateOne {
	_u.mutation.ClearAgentInvocationID()
	return _u
}

// SetIssueDescription sets the "issue_description" field.
func (_u *AgentIssueUpdateOne) SetIssueDescription(v string) *AgentIssueUpdateOne {
	_u.mutation.SetIssueDescription(v)
	return _u
}

// SetNillableIssueDescription sets the "issue_description" field if the given value is not nil.
func (_u *AgentIssueUpdateOne) SetNillableIssueDescription(v *string) *AgentIssueUpdateOne {
	if v != nil {
		_u.SetIssueDescription(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AgentIssueUpdateOne) SetSeverity(v int) *AgentIssueUpdateOne {
	_u.mutation.ResetSeverity()
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AgentIssueUpdateOne) SetNillableSeverity(v *int) *AgentIssueUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// AddSeverity adds value to the "severity" field.
func (_u *AgentIssueUpdateOne) AddSeverity(v int) *AgentIssueUpdateOne {
	_u.mutation.AddSeverity(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentIssueUpdateOne) SetStatus(v models.IssueStatus) *AgentIssueUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentIssueUpdateOne) SetNillableStatus(v *models.IssueStatus) *AgentIssueUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_u *AgentIssueUpdateOne) SetResolutionNotes(v string) *AgentIssueUpdateOne {
	_u.mutation.SetResolutionNotes(v)
	return _u
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_u *AgentIssueUpdateOne) SetNillableResolutionNotes(v *string) *AgentIssueUpdateOne {
	if v != nil {
		_u.SetResolutionNotes(*v)
	}
	return _u
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (_u *AgentIssueUpdateOne) ClearResolutionNotes() *AgentIssueUpdateOne {
	_u.mutation.ClearResolutionNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentIssueUpdateOne) SetUpdatedAt(v time.Time) *AgentIssueUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *AgentIssueUpdateOne) SetAgent(v *Agent) *AgentIssueUpdateOne {
	return _u.SetAgentID(v.ID)
}

// SetInvocationID sets the "invocation" edge to the AgentInvocation entity by ID.
func (_u *AgentIssueUpdateOne) SetInvocationID(id int) *AgentIssueUpdateOne {
	_u.mutation.SetInvocationID(id)
	return _u
}

// SetNillableInvocationID sets the "invocation" edge to the AgentInvocation entity by ID if the given value is not nil.
func (_u *AgentIssueUpdateOne) SetNillableInvocationID(id *int) *AgentIssueUpdateOne {
	if id != nil {
		_u = _u.SetInvocationID(*id)
	}
	return _u
}

// SetInvocation sets the "invocation" edge to the AgentInvocation entity.
func (_u *AgentIssueUpdateOne) SetInvocation(v *AgentInvocation) *AgentIssueUpdateOne {
	return _u.SetInvocationID(v.ID)
}

// AddChangeIDs adds the "changes" edge to the AgentChange entity by IDs.
func (_u *AgentIssueUpdateOne) AddChangeIDs(ids ...int) *AgentIssueUpdateOne {
	_u.mutation.AddChangeIDs(ids...)
	return _u
}

// AddChanges adds the "changes" edges to the AgentChange entity.
func (_u *AgentIssueUpdateOne) AddChanges(v ...*AgentChange) *AgentIssueUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChangeIDs(ids...)
}

// Mutation returns the AgentIssueMutation object of the builder.
func (_u *AgentIssueUpdateOne) Mutation() *AgentIssueMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *AgentIssueUpdateOne) ClearAgent() *AgentIssueUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// ClearInvocation clears the "invocation" edge to the AgentInvocation entity.
func (_u *AgentIssueUpdateOne) ClearInvocation() *AgentIssueUpdateOne {
	_u.mutation.ClearInvocation()
	return _u
}

// ClearChanges clears all "changes" edges to the AgentChange entity.
func (_u *AgentIssueUpdateOne) ClearChanges() *AgentIssueUpdateOne {
	_u.mutation.ClearChanges()
	return _u
}

// RemoveChangeIDs removes the "changes" edge to AgentChange entities by IDs.
func (_u *AgentIssueUpdateOne) RemoveChangeIDs(ids ...int) *AgentIssueUpdateOne {
	_u.mutation.RemoveChangeIDs(ids...)
	return _u
}

// RemoveChanges removes "changes" edges to AgentChange entities.
func (_u *AgentIssueUpdateOne) RemoveChanges(v ...*AgentChange) *AgentIssueUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChangeIDs(ids...)
}

// Where appends a list predicates to the AgentIssueUpdate builder.
func (_u *AgentIssueUpdateOne) Where(ps ...predicate.AgentIssue) *AgentIssueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentIssueUpdateOne) Select(field string, fields ...string) *AgentIssueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentIssue entity.
func (_u *AgentIssueUpdateOne) Save(ctx context.Context) (*AgentIssue, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentIssueUpdateOne) SaveX(ctx context.Context) *AgentIssue {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentIssueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentIssueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentIssueUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentissue.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentIssueUpdateOne) check() error {
	if v, ok := _u.mutation.IssueDescription(); ok {
		if err := agentissue.IssueDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "issue_description", err: fmt.Errorf(`ent: validator failed for field "AgentIssue.issue_description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := agentissue.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "AgentIssue.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agentissue.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentIssue.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentIssue.agent"`)
	}
	return nil
}

func (_u *AgentIssueUpdateOne) sqlSave(ctx context.Context) (_node *AgentIssue, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentissue.Table, agentissue.Columns, sqlgraph.NewFieldSpec(agentissue.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentIssue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentissue.FieldID)
		for _, f := range fields {
			if !agentissue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentissue.FieldID {
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
	if value, ok := _u.mutation.IssueDescription(); ok {
		_spec.SetField(agentissue.FieldIssueDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(agentissue.FieldSeverity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeverity(); ok {
		_spec.AddField(agentissue.FieldSeverity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentissue.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolutionNotes(); ok {
		_spec.SetField(agentissue.FieldResolutionNotes, field.TypeString, value)
	}
	if _u.mutation.ResolutionNotesCleared() {
		_spec.ClearField(agentissue.FieldResolutionNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentissue.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InvocationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvocationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChangesIDs(); len(nodes) > 0 && !_u.mutation.ChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChangesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentIssue{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentissue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
