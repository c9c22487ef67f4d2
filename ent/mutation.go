// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentchange"
	"github.com/codeready-toolchain/agent-tracker/ent/agentimprovement"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/ent/predicate"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent            = "Agent"
	TypeAgentChange      = "AgentChange"
	TypeAgentImprovement = "AgentImprovement"
	TypeAgentInvocation  = "AgentInvocation"
	TypeAgentIssue       = "AgentIssue"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	agent_number        *int
	addagent_number     *int
	name                *string
	category            *models.Category
	tier                *int
	addtier             *int
	status              *models.AgentStatus
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	invocations         map[int]struct{}
	removedinvocations  map[int]struct{}
	clearedinvocations  bool
	issues              map[int]struct{}
	removedissues       map[int]struct{}
	clearedissues       bool
	improvements        map[int]struct{}
	removedimprovements map[int]struct{}
	clearedimprovements bool
	changes             map[int]struct{}
	removedchanges      map[int]struct{}
	clearedchanges      bool
	done                bool
	oldValue            func(context.Context) (*Agent, error)
	predicates          []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id int) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentNumber sets the "agent_number" field.
func (m *AgentMutation) SetAgentNumber(i int) {
	m.agent_number = &i
	m.addagent_number = nil
}

// AgentNumber returns the value of the "agent_number" field in the mutation.
func (m *AgentMutation) AgentNumber() (r int, exists bool) {
	v := m.agent_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentNumber returns the old "agent_number" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAgentNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentNumber: %w", err)
	}
	return oldValue.AgentNumber, nil
}

// AddAgentNumber adds i to the "agent_number" field.
func (m *AgentMutation) AddAgentNumber(i int) {
	if m.addagent_number != nil {
		*m.addagent_number += i
	} else {
		m.addagent_number = &i
	}
}

// AddedAgentNumber returns the value that was added to the "agent_number" field in this mutation.
func (m *AgentMutation) AddedAgentNumber() (r int, exists bool) {
	v := m.addagent_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAgentNumber resets all changes to the "agent_number" field.
func (m *AgentMutation) ResetAgentNumber() {
	m.agent_number = nil
	m.addagent_number = nil
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetCategory sets the "category" field.
func (m *AgentMutation) SetCategory(value models.Category) {
	m.category = &value
}

// Category returns the value of the "category" field in the mutation.
func (m *AgentMutation) Category() (r models.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCategory(ctx context.Context) (v models.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *AgentMutation) ResetCategory() {
	m.category = nil
}

// SetTier sets the "tier" field.
func (m *AgentMutation) SetTier(i int) {
	m.tier = &i
	m.addtier = nil
}

// Tier returns the value of the "tier" field in the mutation.
func (m *AgentMutation) Tier() (r int, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTier(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// AddTier adds i to the "tier" field.
func (m *AgentMutation) AddTier(i int) {
	if m.addtier != nil {
		*m.addtier += i
	} else {
		m.addtier = &i
	}
}

// AddedTier returns the value that was added to the "tier" field in this mutation.
func (m *AgentMutation) AddedTier() (r int, exists bool) {
	v := m.addtier
	if v == nil {
		return
	}
	return *v, true
}

// ResetTier resets all changes to the "tier" field.
func (m *AgentMutation) ResetTier() {
	m.tier = nil
	m.addtier = nil
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(ms models.AgentStatus) {
	m.status = &ms
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r models.AgentStatus, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v models.AgentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddInvocationIDs adds the "invocations" edge to the AgentInvocation entity by ids.
func (m *AgentMutation) AddInvocationIDs(ids ...int) {
	if m.invocations == nil {
		m.invocations = make(map[int]struct{})
	}
	for i := range ids {
		m.invocations[ids[i]] = struct{}{}
	}
}

// ClearInvocations clears the "invocations" edge to the AgentInvocation entity.
func (m *AgentMutation) ClearInvocations() {
	m.clearedinvocations = true
}

// InvocationsCleared reports if the "invocations" edge to the AgentInvocation entity was cleared.
func (m *AgentMutation) InvocationsCleared() bool {
	return m.clearedinvocations
}

// RemoveInvocationIDs removes the "invocations" edge to the AgentInvocation entity by IDs.
func (m *AgentMutation) RemoveInvocationIDs(ids ...int) {
	if m.removedinvocations == nil {
		m.removedinvocations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.invocations, ids[i])
		m.removedinvocations[ids[i]] = struct{}{}
	}
}

// RemovedInvocations returns the removed IDs of the "invocations" edge to the AgentInvocation entity.
func (m *AgentMutation) RemovedInvocationsIDs() (ids []int) {
	for id := range m.removedinvocations {
		ids = append(ids, id)
	}
	return
}

// InvocationsIDs returns the "invocations" edge IDs in the mutation.
func (m *AgentMutation) InvocationsIDs() (ids []int) {
	for id := range m.invocations {
		ids = append(ids, id)
	}
	return
}

// ResetInvocations resets all changes to the "invocations" edge.
func (m *AgentMutation) ResetInvocations() {
	m.invocations = nil
	m.clearedinvocations = false
	m.removedinvocations = nil
}

// AddIssueIDs adds the "issues" edge to the AgentIssue entity by ids.
func (m *AgentMutation) AddIssueIDs(ids ...int) {
	if m.issues == nil {
		m.issues = make(map[int]struct{})
	}
	for i := range ids {
		m.issues[ids[i]] = struct{}{}
	}
}

// ClearIssues clears the "issues" edge to the AgentIssue entity.
func (m *AgentMutation) ClearIssues() {
	m.clearedissues = true
}

// IssuesCleared reports if the "issues" edge to the AgentIssue entity was cleared.
func (m *AgentMutation) IssuesCleared() bool {
	return m.clearedissues
}

// RemoveIssueIDs removes the "issues" edge to the AgentIssue entity by IDs.
func (m *AgentMutation) RemoveIssueIDs(ids ...int) {
	if m.removedissues == nil {
		m.removedissues = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.issues, ids[i])
		m.removedissues[ids[i]] = struct{}{}
	}
}

// RemovedIssues returns the removed IDs of the "issues" edge to the AgentIssue entity.
func (m *AgentMutation) RemovedIssuesIDs() (ids []int) {
	for id := range m.removedissues {
		ids = append(ids, id)
	}
	return
}

// IssuesIDs returns the "issues" edge IDs in the mutation.
func (m *AgentMutation) IssuesIDs() (ids []int) {
	for id := range m.issues {
		ids = append(ids, id)
	}
	return
}

// ResetIssues resets all changes to the "issues" edge.
func (m *AgentMutation) ResetIssues() {
	m.issues = nil
	m.clearedissues = false
	m.removedissues = nil
}

// AddImprovementIDs adds the "improvements" edge to the AgentImprovement entity by ids.
func (m *AgentMutation) AddImprovementIDs(ids ...int) {
	if m.improvements == nil {
		m.improvements = make(map[int]struct{})
	}
	for i := range ids {
		m.improvements[ids[i]] = struct{}{}
	}
}

// ClearImprovements clears the "improvements" edge to the AgentImprovement entity.
func (m *AgentMutation) ClearImprovements() {
	m.clearedimprovements = true
}

// ImprovementsCleared reports if the "improvements" edge to the AgentImprovement entity was cleared.
func (m *AgentMutation) ImprovementsCleared() bool {
	return m.clearedimprovements
}

// RemoveImprovementIDs removes the "improvements" edge to the AgentImprovement entity by IDs.
func (m *AgentMutation) RemoveImprovementIDs(ids ...int) {
	if m.removedimprovements == nil {
		m.removedimprovements = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.improvements, ids[i])
		m.removedimprovements[ids[i]] = struct{}{}
	}
}

// RemovedImprovements returns the removed IDs of the "improvements" edge to the AgentImprovement entity.
func (m *AgentMutation) RemovedImprovementsIDs() (ids []int) {
	for id := range m.removedimprovements {
		ids = append(ids, id)
	}
	return
}

// ImprovementsIDs returns the "improvements" edge IDs in the mutation.
func (m *AgentMutation) ImprovementsIDs() (ids []int) {
	for id := range m.improvements {
		ids = append(ids, id)
	}
	return
}

// ResetImprovements resets all changes to the "improvements" edge.
func (m *AgentMutation) ResetImprovements() {
	m.improvements = nil
	m.clearedimprovements = false
	m.removedimprovements = nil
}

// AddChangeIDs adds the "changes" edge to the AgentChange entity by ids.
func (m *AgentMutation) AddChangeIDs(ids ...int) {
	if m.changes == nil {
		m.changes = make(map[int]struct{})
	}
	for i := range ids {
		m.changes[ids[i]] = struct{}{}
	}
}

// ClearChanges clears the "changes" edge to the AgentChange entity.
func (m *AgentMutation) ClearChanges() {
	m.clearedchanges = true
}

// ChangesCleared reports if the "changes" edge to the AgentChange entity was cleared.
func (m *AgentMutation) ChangesCleared() bool {
	return m.clearedchanges
}

// RemoveChangeIDs removes the "changes" edge to the AgentChange entity by IDs.
func (m *AgentMutation) RemoveChangeIDs(ids ...int) {
	if m.removedchanges == nil {
		m.removedchanges = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.changes, ids[i])
		m.removedchanges[ids[i]] = struct{}{}
	}
}

// RemovedChanges returns the removed IDs of the "changes" edge to the AgentChange entity.
func (m *AgentMutation) RemovedChangesIDs() (ids []int) {
	for id := range m.removedchanges {
		ids = append(ids, id)
	}
	return
}

// ChangesIDs returns the "changes" edge IDs in the mutation.
func (m *AgentMutation) ChangesIDs() (ids []int) {
	for id := range m.changes {
		ids = append(ids, id)
	}
	return
}

// ResetChanges resets all changes to the "changes" edge.
func (m *AgentMutation) ResetChanges() {
	m.changes = nil
	m.clearedchanges = false
	m.removedchanges = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.agent_number != nil {
		fields = append(fields, agent.FieldAgentNumber)
	}
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.category != nil {
		fields = append(fields, agent.FieldCategory)
	}
	if m.tier != nil {
		fields = append(fields, agent.FieldTier)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldAgentNumber:
		return m.AgentNumber()
	case agent.FieldName:
		return m.Name()
	case agent.FieldCategory:
		return m.Category()
	case agent.FieldTier:
		return m.Tier()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldAgentNumber:
		return m.OldAgentNumber(ctx)
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldCategory:
		return m.OldCategory(ctx)
	case agent.FieldTier:
		return m.OldTier(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldAgentNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentNumber(v)
		return nil
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldCategory:
		v, ok := value.(models.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case agent.FieldTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(models.AgentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addagent_number != nil {
		fields = append(fields, agent.FieldAgentNumber)
	}
	if m.addtier != nil {
		fields = append(fields, agent.FieldTier)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldAgentNumber:
		return m.AddedAgentNumber()
	case agent.FieldTier:
		return m.AddedTier()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldAgentNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAgentNumber(v)
		return nil
	case agent.FieldTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTier(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldAgentNumber:
		m.ResetAgentNumber()
		return nil
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldCategory:
		m.ResetCategory()
		return nil
	case agent.FieldTier:
		m.ResetTier()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.invocations != nil {
		edges = append(edges, agent.EdgeInvocations)
	}
	if m.issues != nil {
		edges = append(edges, agent.EdgeIssues)
	}
	if m.improvements != nil {
		edges = append(edges, agent.EdgeImprovements)
	}
	if m.changes != nil {
		edges = append(edges, agent.EdgeChanges)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeInvocations:
		ids := make([]ent.Value, 0, len(m.invocations))
		for id := range m.invocations {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeIssues:
		ids := make([]ent.Value, 0, len(m.issues))
		for id := range m.issues {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeImprovements:
		ids := make([]ent.Value, 0, len(m.improvements))
		for id := range m.improvements {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeChanges:
		ids := make([]ent.Value, 0, len(m.changes))
		for id := range m.changes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedinvocations != nil {
		edges = append(edges, agent.EdgeInvocations)
	}
	if m.removedissues != nil {
		edges = append(edges, agent.EdgeIssues)
	}
	if m.removedimprovements != nil {
		edges = append(edges, agent.EdgeImprovements)
	}
	if m.removedchanges != nil {
		edges = append(edges, agent.EdgeChanges)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeInvocations:
		ids := make([]ent.Value, 0, len(m.removedinvocations))
		for id := range m.removedinvocations {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeIssues:
		ids := make([]ent.Value, 0, len(m.removedissues))
		for id := range m.removedissues {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeImprovements:
		ids := make([]ent.Value, 0, len(m.removedimprovements))
		for id := range m.removedimprovements {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeChanges:
		ids := make([]ent.Value, 0, len(m.removedchanges))
		for id := range m.removedchanges {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedinvocations {
		edges = append(edges, agent.EdgeInvocations)
	}
	if m.clearedissues {
		edges = append(edges, agent.EdgeIssues)
	}
	if m.clearedimprovements {
		edges = append(edges, agent.EdgeImprovements)
	}
	if m.clearedchanges {
		edges = append(edges, agent.EdgeChanges)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeInvocations:
		return m.clearedinvocations
	case agent.EdgeIssues:
		return m.clearedissues
	case agent.EdgeImprovements:
		return m.clearedimprovements
	case agent.EdgeChanges:
		return m.clearedchanges
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeInvocations:
		m.ResetInvocations()
		return nil
	case agent.EdgeIssues:
		m.ResetIssues()
		return nil
	case agent.EdgeImprovements:
		m.ResetImprovements()
		return nil
	case agent.EdgeChanges:
		m.ResetChanges()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AgentChangeMutation represents an operation that mutates the AgentChange nodes in the graph.
type AgentChangeMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	change_type        *models.ChangeType
	change_description *string
	before_value       *string
	after_value        *string
	triggered_by       *models.TriggeredBy
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	agent              *int
	clearedagent       bool
	invocation         *int
	clearedinvocation  bool
	issue              *int
	clearedissue       bool
	improvement        *int
	clearedimprovement bool
	done               bool
	oldValue           func(context.Context) (*AgentChange, error)
	predicates         []predicate.AgentChange
}

var _ ent.Mutation = (*AgentChangeMutation)(nil)

// agentchangeOption allows management of the mutation configuration using functional options.
type agentchangeOption func(*AgentChangeMutation)

// newAgentChangeMutation creates new mutation for the AgentChange entity.
func newAgentChangeMutation(c config, op Op, opts ...agentchangeOption) *AgentChangeMutation {
	m := &AgentChangeMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentChange,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentChangeID sets the ID field of the mutation.
func withAgentChangeID(id int) agentchangeOption {
	return func(m *AgentChangeMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentChange
		)
		m.oldValue = func(ctx context.Context) (*AgentChange, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentChange.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentChange sets the old AgentChange of the mutation.
func withAgentChange(node *AgentChange) agentchangeOption {
	return func(m *AgentChangeMutation) {
		m.oldValue = func(context.Context) (*AgentChange, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentChangeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentChangeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentChangeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentChangeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentChange.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AgentChangeMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentChangeMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentChange entity.
// If the AgentChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentChangeMutation) OldAgentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentChangeMutation) ResetAgentID() {
	m.agent = nil
}

// SetChangeType sets the "change_type" field.
func (m *AgentChangeMutation) SetChangeType(mt models.ChangeType) {
	m.change_type = &mt
}

// ChangeType returns the value of the "change_type" field in the mutation.
func (m *AgentChangeMutation) ChangeType() (r models.ChangeType, exists bool) {
	v := m.change_type
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeType returns the old "change_type" field's value of the AgentChange entity.
// If the AgentChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentChangeMutation) OldChangeType(ctx context.Context) (v models.ChangeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeType: %w", err)
	}
	return oldValue.ChangeType, nil
}

// ResetChangeType resets all changes to the "change_type" field.
func (m *AgentChangeMutation) ResetChangeType() {
	m.change_type = nil
}

// SetChangeDescription sets the "change_description" field.
func (m *AgentChangeMutation) SetChangeDescription(s string) {
	m.change_description = &s
}

// ChangeDescription returns the value of the "change_description" field in the mutation.
func (m *AgentChangeMutation) ChangeDescription() (r string, exists bool) {
	v := m.change_description
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeDescription returns the old "change_description" field's value of the AgentChange entity.
// If the AgentChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentChangeMutation) OldChangeDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeDescription: %w", err)
	}
	return oldValue.ChangeDescription, nil
}

// ResetChangeDescription resets all changes to the "change_description" field.
func (m *AgentChangeMutation) ResetChangeDescription() {
	m.change_description = nil
}

// SetBeforeValue sets the "before_value" field.
func (m *AgentChangeMutation) SetBeforeValue(s string) {
	m.before_value = &s
}

// BeforeValue returns the value of the "before_value" field in the mutation.
func (m *AgentChangeMutation) BeforeValue() (r string, exists bool) {
	v := m.before_value
	if v == nil {
		return
	}
	return *v, true
}

// OldBeforeValue returns the old "before_value" field's value of the AgentChange entity.
// If the AgentChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentChangeMutation) OldBeforeValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeforeValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeforeValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeforeValue: %w", err)
	}
	return oldValue.BeforeValue, nil
}

// ClearBeforeValue clears the value of the "before_value" field.
func (m *AgentChangeMutation) ClearBeforeValue() {
	m.before_value = nil
	m.clearedFields[agentchange.FieldBeforeValue] = struct{}{}
}

// BeforeValueCleared returns if the "before_value" field was cleared in this mutation.
func (m *AgentChangeMutation) BeforeValueCleared() bool {
	_, ok := m.clearedFields[agentchange.FieldBeforeValue]
	return ok
}

// ResetBeforeValue resets all changes to the "before_value" field.
func (m *AgentChangeMutation) ResetBeforeValue() {
	m.before_value = nil
	delete(m.clearedFields, agentchange.FieldBeforeValue)
}

// SetAfterValue sets the "after_value" field.
func (m *AgentChangeMutation) SetAfterValue(s string) {
	m.after_value = &s
}

// AfterValue returns the value of the "after_value" field in the mutation.
func (m *AgentChangeMutation) AfterValue() (r string, exists bool) {
	v := m.after_value
	if v == nil {
		return
	}
	return *v, true
}

// OldAfterValue returns the old "after_value" field's value of the AgentChange entity.
// If the AgentChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentChangeMutation) OldAfterValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfterValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfterValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfterValue: %w", err)
	}
	return oldValue.AfterValue, nil
}

// ClearAfterValue clears the value of the "after_value" field.
func (m *AgentChangeMutation) ClearAfterValue() {
	m.after_value = nil
	m.clearedFields[agentchange.FieldAfterValue] = struct{}{}
}

// AfterValueCleared returns if the "after_value" field was cleared in this mutation.
func (m *AgentChangeMutation) AfterValueCleared() bool {
	_, ok := m.clearedFields[agentchange.FieldAfterValue]
	return ok
}

// ResetAfterValue resets all changes to the "after_value" field.
func (m *AgentChangeMutation) ResetAfterValue() {
	m.after_value = nil
	delete(m.clearedFields, agentchange.FieldAfterValue)
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *AgentChangeMutation) SetTriggeredBy(mb models.TriggeredBy) {
	m.triggered_by = &mb
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *AgentChangeMutation) TriggeredBy() (r models.TriggeredBy, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the AgentChange entity.
// If the AgentChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentChangeMutation) OldTriggeredBy(ctx context.Context) (v models.TriggeredBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *AgentChangeMutation) ResetTriggeredBy() {
	m.triggered_by = nil
}

// SetAgentInvocationID sets the "agent_invocation_id" field.
func (m *AgentChangeMutation) SetAgentInvocationID(i int) {
	m.invocation = &i
}

// AgentInvocationID returns the value of the "agent_invocation_id" field in the mutation.
func (m *AgentChangeMutation) AgentInvocationID() (r int, exists bool) {
	v := m.invocation
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentInvocationID returns the old "agent_invocation_id" field's value of the AgentChange entity.
// If the AgentChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentChangeMutation) OldAgentInvocationID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentInvocationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentInvocationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentInvocationID: %w", err)
	}
	return oldValue.AgentInvocationID, nil
}

// ClearAgentInvocationID clears the value of the "agent_invocation_id" field.
func (m *AgentChangeMutation) ClearAgentInvocationID() {
	m.invocation = nil
	m.clearedFields[agentchange.FieldAgentInvocationID] = struct{}{}
}

// AgentInvocationIDCleared returns if the "agent_invocation_id" field was cleared in this mutation.
func (m *AgentChangeMutation) AgentInvocationIDCleared() bool {
	_, ok := m.clearedFields[agentchange.FieldAgentInvocationID]
	return ok
}

// ResetAgentInvocationID resets all changes to the "agent_invocation_id" field.
func (m *AgentChangeMutation) ResetAgentInvocationID() {
	m.invocation = nil
	delete(m.clearedFields, agentchange.FieldAgentInvocationID)
}

// SetAgentIssueID sets the "agent_issue_id" field.
func (m *AgentChangeMutation) SetAgentIssueID(i int) {
	m.issue = &i
}

// AgentIssueID returns the value of the "agent_issue_id" field in the mutation.
func (m *AgentChangeMutation) AgentIssueID() (r int, exists bool) {
	v := m.issue
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentIssueID returns the old "agent_issue_id" field's value of the AgentChange entity.
// If the AgentChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentChangeMutation) OldAgentIssueID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentIssueID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentIssueID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentIssueID: %w", err)
	}
	return oldValue.AgentIssueID, nil
}

// ClearAgentIssueID clears the value of the "agent_issue_id" field.
func (m *AgentChangeMutation) ClearAgentIssueID() {
	m.issue = nil
	m.clearedFields[agentchange.FieldAgentIssueID] = struct{}{}
}

// AgentIssueIDCleared returns if the "agent_issue_id" field was cleared in this mutation.
func (m *AgentChangeMutation) AgentIssueIDCleared() bool {
	_, ok := m.clearedFields[agentchange.FieldAgentIssueID]
	return ok
}

// ResetAgentIssueID resets all changes to the "agent_issue_id" field.
func (m *AgentChangeMutation) ResetAgentIssueID() {
	m.issue = nil
	delete(m.clearedFields, agentchange.FieldAgentIssueID)
}

// SetAgentImprovementID sets the "agent_improvement_id" field.
func (m *AgentChangeMutation) SetAgentImprovementID(i int) {
	m.improvement = &i
}

// AgentImprovementID returns the value of the "agent_improvement_id" field in the mutation.
func (m *AgentChangeMutation) AgentImprovementID() (r int, exists bool) {
	v := m.improvement
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentImprovementID returns the old "agent_improvement_id" field's value of the AgentChange entity.
// If the AgentChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentChangeMutation) OldAgentImprovementID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentImprovementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentImprovementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentImprovementID: %w", err)
	}
	return oldValue.AgentImprovementID, nil
}

// ClearAgentImprovementID clears the value of the "agent_improvement_id" field.
func (m *AgentChangeMutation) ClearAgentImprovementID() {
	m.improvement = nil
	m.clearedFields[agentchange.FieldAgentImprovementID] = struct{}{}
}

// AgentImprovementIDCleared returns if the "agent_improvement_id" field was cleared in this mutation.
func (m *AgentChangeMutation) AgentImprovementIDCleared() bool {
	_, ok := m.clearedFields[agentchange.FieldAgentImprovementID]
	return ok
}

// ResetAgentImprovementID resets all changes to the "agent_improvement_id" field.
func (m *AgentChangeMutation) ResetAgentImprovementID() {
	m.improvement = nil
	delete(m.clearedFields, agentchange.FieldAgentImprovementID)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentChangeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentChangeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentChange entity.
// If the AgentChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentChangeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentChangeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentChangeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentChangeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentChange entity.
// If the AgentChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentChangeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentChangeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *AgentChangeMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[agentchange.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *AgentChangeMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *AgentChangeMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *AgentChangeMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// SetInvocationID sets the "invocation" edge to the AgentInvocation entity by id.
func (m *AgentChangeMutation) SetInvocationID(id int) {
	m.invocation = &id
}

// ClearInvocation clears the "invocation" edge to the AgentInvocation entity.
func (m *AgentChangeMutation) ClearInvocation() {
	m.clearedinvocation = true
	m.clearedFields[agentchange.FieldAgentInvocationID] = struct{}{}
}

// InvocationCleared reports if the "invocation" edge to the AgentInvocation entity was cleared.
func (m *AgentChangeMutation) InvocationCleared() bool {
	return m.AgentInvocationIDCleared() || m.clearedinvocation
}

// InvocationID returns the "invocation" edge ID in the mutation.
func (m *AgentChangeMutation) InvocationID() (id int, exists bool) {
	if m.invocation != nil {
		return *m.invocation, true
	}
	return
}

// InvocationIDs returns the "invocation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvocationID instead. It exists only for internal usage by the builders.
func (m *AgentChangeMutation) InvocationIDs() (ids []int) {
	if id := m.invocation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvocation resets all changes to the "invocation" edge.
func (m *AgentChangeMutation) ResetInvocation() {
	m.invocation = nil
	m.clearedinvocation = false
}

// SetIssueID sets the "issue" edge to the AgentIssue entity by id.
func (m *AgentChangeMutation) SetIssueID(id int) {
	m.issue = &id
}

// ClearIssue clears the "issue" edge to the AgentIssue entity.
func (m *AgentChangeMutation) ClearIssue() {
	m.clearedissue = true
	m.clearedFields[agentchange.FieldAgentIssueID] = struct{}{}
}

// IssueCleared reports if the "issue" edge to the AgentIssue entity was cleared.
func (m *AgentChangeMutation) IssueCleared() bool {
	return m.AgentIssueIDCleared() || m.clearedissue
}

// IssueID returns the "issue" edge ID in the mutation.
func (m *AgentChangeMutation) IssueID() (id int, exists bool) {
	if m.issue != nil {
		return *m.issue, true
	}
	return
}

// IssueIDs returns the "issue" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IssueID instead. It exists only for internal usage by the builders.
func (m *AgentChangeMutation) IssueIDs() (ids []int) {
	if id := m.issue; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIssue resets all changes to the "issue" edge.
func (m *AgentChangeMutation) ResetIssue() {
	m.issue = nil
	m.clearedissue = false
}

// SetImprovementID sets the "improvement" edge to the AgentImprovement entity by id.
func (m *AgentChangeMutation) SetImprovementID(id int) {
	m.improvement = &id
}

// ClearImprovement clears the "improvement" edge to the AgentImprovement entity.
func (m *AgentChangeMutation) ClearImprovement() {
	m.clearedimprovement = true
	m.clearedFields[agentchange.FieldAgentImprovementID] = struct{}{}
}

// ImprovementCleared reports if the "improvement" edge to the AgentImprovement entity was cleared.
func (m *AgentChangeMutation) ImprovementCleared() bool {
	return m.AgentImprovementIDCleared() || m.clearedimprovement
}

// ImprovementID returns the "improvement" edge ID in the mutation.
func (m *AgentChangeMutation) ImprovementID() (id int, exists bool) {
	if m.improvement != nil {
		return *m.improvement, true
	}
	return
}

// ImprovementIDs returns the "improvement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ImprovementID instead. It exists only for internal usage by the builders.
func (m *AgentChangeMutation) ImprovementIDs() (ids []int) {
	if id := m.improvement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetImprovement resets all changes to the "improvement" edge.
func (m *AgentChangeMutation) ResetImprovement() {
	m.improvement = nil
	m.clearedimprovement = false
}

// Where appends a list predicates to the AgentChangeMutation builder.
func (m *AgentChangeMutation) Where(ps ...predicate.AgentChange) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentChangeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentChangeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentChange, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentChangeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentChangeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentChange).
func (m *AgentChangeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentChangeMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.agent != nil {
		fields = append(fields, agentchange.FieldAgentID)
	}
	if m.change_type != nil {
		fields = append(fields, agentchange.FieldChangeType)
	}
	if m.change_description != nil {
		fields = append(fields, agentchange.FieldChangeDescription)
	}
	if m.before_value != nil {
		fields = append(fields, agentchange.FieldBeforeValue)
	}
	if m.after_value != nil {
		fields = append(fields, agentchange.FieldAfterValue)
	}
	if m.triggered_by != nil {
		fields = append(fields, agentchange.FieldTriggeredBy)
	}
	if m.invocation != nil {
		fields = append(fields, agentchange.FieldAgentInvocationID)
	}
	if m.issue != nil {
		fields = append(fields, agentchange.FieldAgentIssueID)
	}
	if m.improvement != nil {
		fields = append(fields, agentchange.FieldAgentImprovementID)
	}
	if m.created_at != nil {
		fields = append(fields, agentchange.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentchange.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentChangeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentchange.FieldAgentID:
		return m.AgentID()
	case agentchange.FieldChangeType:
		return m.ChangeType()
	case agentchange.FieldChangeDescription:
		return m.ChangeDescription()
	case agentchange.FieldBeforeValue:
		return m.BeforeValue()
	case agentchange.FieldAfterValue:
		return m.AfterValue()
	case agentchange.FieldTriggeredBy:
		return m.TriggeredBy()
	case agentchange.FieldAgentInvocationID:
		return m.AgentInvocationID()
	case agentchange.FieldAgentIssueID:
		return m.AgentIssueID()
	case agentchange.FieldAgentImprovementID:
		return m.AgentImprovementID()
	case agentchange.FieldCreatedAt:
		return m.CreatedAt()
	case agentchange.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentChangeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentchange.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentchange.FieldChangeType:
		return m.OldChangeType(ctx)
	case agentchange.FieldChangeDescription:
		return m.OldChangeDescription(ctx)
	case agentchange.FieldBeforeValue:
		return m.OldBeforeValue(ctx)
	case agentchange.FieldAfterValue:
		return m.OldAfterValue(ctx)
	case agentchange.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case agentchange.FieldAgentInvocationID:
		return m.OldAgentInvocationID(ctx)
	case agentchange.FieldAgentIssueID:
		return m.OldAgentIssueID(ctx)
	case agentchange.FieldAgentImprovementID:
		return m.OldAgentImprovementID(ctx)
	case agentchange.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentchange.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentChange field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentChangeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentchange.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentchange.FieldChangeType:
		v, ok := value.(models.ChangeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeType(v)
		return nil
	case agentchange.FieldChangeDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeDescription(v)
		return nil
	case agentchange.FieldBeforeValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeforeValue(v)
		return nil
	case agentchange.FieldAfterValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfterValue(v)
		return nil
	case agentchange.FieldTriggeredBy:
		v, ok := value.(models.TriggeredBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case agentchange.FieldAgentInvocationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentInvocationID(v)
		return nil
	case agentchange.FieldAgentIssueID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentIssueID(v)
		return nil
	case agentchange.FieldAgentImprovementID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentImprovementID(v)
		return nil
	case agentchange.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentchange.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentChange field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentChangeMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentChangeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentChangeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentChange numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentChangeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentchange.FieldBeforeValue) {
		fields = append(fields, agentchange.FieldBeforeValue)
	}
	if m.FieldCleared(agentchange.FieldAfterValue) {
		fields = append(fields, agentchange.FieldAfterValue)
	}
	if m.FieldCleared(agentchange.FieldAgentInvocationID) {
		fields = append(fields, agentchange.FieldAgentInvocationID)
	}
	if m.FieldCleared(agentchange.FieldAgentIssueID) {
		fields = append(fields, agentchange.FieldAgentIssueID)
	}
	if m.FieldCleared(agentchange.FieldAgentImprovementID) {
		fields = append(fields, agentchange.FieldAgentImprovementID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentChangeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentChangeMutation) ClearField(name string) error {
	switch name {
	case agentchange.FieldBeforeValue:
		m.ClearBeforeValue()
		return nil
	case agentchange.FieldAfterValue:
		m.ClearAfterValue()
		return nil
	case agentchange.FieldAgentInvocationID:
		m.ClearAgentInvocationID()
		return nil
	case agentchange.FieldAgentIssueID:
		m.ClearAgentIssueID()
		return nil
	case agentchange.FieldAgentImprovementID:
		m.ClearAgentImprovementID()
		return nil
	}
	return fmt.Errorf("unknown AgentChange nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentChangeMutation) ResetField(name string) error {
	switch name {
	case agentchange.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentchange.FieldChangeType:
		m.ResetChangeType()
		return nil
	case agentchange.FieldChangeDescription:
		m.ResetChangeDescription()
		return nil
	case agentchange.FieldBeforeValue:
		m.ResetBeforeValue()
		return nil
	case agentchange.FieldAfterValue:
		m.ResetAfterValue()
		return nil
	case agentchange.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case agentchange.FieldAgentInvocationID:
		m.ResetAgentInvocationID()
		return nil
	case agentchange.FieldAgentIssueID:
		m.ResetAgentIssueID()
		return nil
	case agentchange.FieldAgentImprovementID:
		m.ResetAgentImprovementID()
		return nil
	case agentchange.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentchange.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentChange field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentChangeMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.agent != nil {
		edges = append(edges, agentchange.EdgeAgent)
	}
	if m.invocation != nil {
		edges = append(edges, agentchange.EdgeInvocation)
	}
	if m.issue != nil {
		edges = append(edges, agentchange.EdgeIssue)
	}
	if m.improvement != nil {
		edges = append(edges, agentchange.EdgeImprovement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentChangeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentchange.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case agentchange.EdgeInvocation:
		if id := m.invocation; id != nil {
			return []ent.Value{*id}
		}
	case agentchange.EdgeIssue:
		if id := m.issue; id != nil {
			return []ent.Value{*id}
		}
	case agentchange.EdgeImprovement:
		if id := m.improvement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentChangeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentChangeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentChangeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedagent {
		edges = append(edges, agentchange.EdgeAgent)
	}
	if m.clearedinvocation {
		edges = append(edges, agentchange.EdgeInvocation)
	}
	if m.clearedissue {
		edges = append(edges, agentchange.EdgeIssue)
	}
	if m.clearedimprovement {
		edges = append(edges, agentchange.EdgeImprovement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentChangeMutation) EdgeCleared(name string) bool {
	switch name {
	case agentchange.EdgeAgent:
		return m.clearedagent
	case agentchange.EdgeInvocation:
		return m.clearedinvocation
	case agentchange.EdgeIssue:
		return m.clearedissue
	case agentchange.EdgeImprovement:
		return m.clearedimprovement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentChangeMutation) ClearEdge(name string) error {
	switch name {
	case agentchange.EdgeAgent:
		m.ClearAgent()
		return nil
	case agentchange.EdgeInvocation:
		m.ClearInvocation()
		return nil
	case agentchange.EdgeIssue:
		m.ClearIssue()
		return nil
	case agentchange.EdgeImprovement:
		m.ClearImprovement()
		return nil
	}
	return fmt.Errorf("unknown AgentChange unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentChangeMutation) ResetEdge(name string) error {
	switch name {
	case agentchange.EdgeAgent:
		m.ResetAgent()
		return nil
	case agentchange.EdgeInvocation:
		m.ResetInvocation()
		return nil
	case agentchange.EdgeIssue:
		m.ResetIssue()
		return nil
	case agentchange.EdgeImprovement:
		m.ResetImprovement()
		return nil
	}
	return fmt.Errorf("unknown AgentChange edge %s", name)
}

// AgentImprovementMutation represents an operation that mutates the AgentImprovement nodes in the graph.
type AgentImprovementMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	improvement_description *string
	priority                *int
	addpriority             *int
	status                  *models.ImprovementStatus
	implemented_at          *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	agent                   *int
	clearedagent            bool
	changes                 map[int]struct{}
	removedchanges          map[int]struct{}
	clearedchanges          bool
	done                    bool
	oldValue                func(context.Context) (*AgentImprovement, error)
	predicates              []predicate.AgentImprovement
}

var _ ent.Mutation = (*AgentImprovementMutation)(nil)

// agentimprovementOption allows management of the mutation configuration using functional options.
type agentimprovementOption func(*AgentImprovementMutation)

// newAgentImprovementMutation creates new mutation for the AgentImprovement entity.
func newAgentImprovementMutation(c config, op Op, opts ...agentimprovementOption) *AgentImprovementMutation {
	m := &AgentImprovementMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentImprovement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentImprovementID sets the ID field of the mutation.
func withAgentImprovementID(id int) agentimprovementOption {
	return func(m *AgentImprovementMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentImprovement
		)
		m.oldValue = func(ctx context.Context) (*AgentImprovement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentImprovement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentImprovement sets the old AgentImprovement of the mutation.
func withAgentImprovement(node *AgentImprovement) agentimprovementOption {
	return func(m *AgentImprovementMutation) {
		m.oldValue = func(context.Context) (*AgentImprovement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentImprovementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentImprovementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentImprovementMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentImprovementMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentImprovement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AgentImprovementMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentImprovementMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentImprovement entity.
// If the AgentImprovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentImprovementMutation) OldAgentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentImprovementMutation) ResetAgentID() {
	m.agent = nil
}

// SetImprovementDescription sets the "improvement_description" field.
func (m *AgentImprovementMutation) SetImprovementDescription(s string) {
	m.improvement_description = &s
}

// ImprovementDescription returns the value of the "improvement_description" field in the mutation.
func (m *AgentImprovementMutation) ImprovementDescription() (r string, exists bool) {
	v := m.improvement_description
	if v == nil {
		return
	}
	return *v, true
}

// OldImprovementDescription returns the old "improvement_description" field's value of the AgentImprovement entity.
// If the AgentImprovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentImprovementMutation) OldImprovementDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImprovementDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImprovementDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImprovementDescription: %w", err)
	}
	return oldValue.ImprovementDescription, nil
}

// ResetImprovementDescription resets all changes to the "improvement_description" field.
func (m *AgentImprovementMutation) ResetImprovementDescription() {
	m.improvement_description = nil
}

// SetPriority sets the "priority" field.
func (m *AgentImprovementMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *AgentImprovementMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the AgentImprovement entity.
// If the AgentImprovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentImprovementMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *AgentImprovementMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *AgentImprovementMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *AgentImprovementMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *AgentImprovementMutation) SetStatus(ms models.ImprovementStatus) {
	m.status = &ms
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentImprovementMutation) Status() (r models.ImprovementStatus, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentImprovement entity.
// If the AgentImprovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentImprovementMutation) OldStatus(ctx context.Context) (v models.ImprovementStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentImprovementMutation) ResetStatus() {
	m.status = nil
}

// SetImplementedAt sets the "implemented_at" field.
func (m *AgentImprovementMutation) SetImplementedAt(t time.Time) {
	m.implemented_at = &t
}

// ImplementedAt returns the value of the "implemented_at" field in the mutation.
func (m *AgentImprovementMutation) ImplementedAt() (r time.Time, exists bool) {
	v := m.implemented_at
	if v == nil {
		return
	}
	return *v, true
}

// OldImplementedAt returns the old "implemented_at" field's value of the AgentImprovement entity.
// If the AgentImprovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentImprovementMutation) OldImplementedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImplementedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImplementedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImplementedAt: %w", err)
	}
	return oldValue.ImplementedAt, nil
}

// ClearImplementedAt clears the value of the "implemented_at" field.
func (m *AgentImprovementMutation) ClearImplementedAt() {
	m.implemented_at = nil
	m.clearedFields[agentimprovement.FieldImplementedAt] = struct{}{}
}

// ImplementedAtCleared returns if the "implemented_at" field was cleared in this mutation.
func (m *AgentImprovementMutation) ImplementedAtCleared() bool {
	_, ok := m.clearedFields[agentimprovement.FieldImplementedAt]
	return ok
}

// ResetImplementedAt resets all changes to the "implemented_at" field.
func (m *AgentImprovementMutation) ResetImplementedAt() {
	m.implemented_at = nil
	delete(m.clearedFields, agentimprovement.FieldImplementedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentImprovementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentImprovementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentImprovement entity.
// If the AgentImprovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentImprovementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentImprovementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentImprovementMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentImprovementMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentImprovement entity.
// If the AgentImprovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentImprovementMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentImprovementMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *AgentImprovementMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[agentimprovement.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *AgentImprovementMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *AgentImprovementMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *AgentImprovementMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// AddChangeIDs adds the "changes" edge to the AgentChange entity by ids.
func (m *AgentImprovementMutation) AddChangeIDs(ids ...int) {
	if m.changes == nil {
		m.changes = make(map[int]struct{})
	}
	for i := range ids {
		m.changes[ids[i]] = struct{}{}
	}
}

// ClearChanges clears the "changes" edge to the AgentChange entity.
func (m *AgentImprovementMutation) ClearChanges() {
	m.clearedchanges = true
}

// ChangesCleared reports if the "changes" edge to the AgentChange entity was cleared.
func (m *AgentImprovementMutation) ChangesCleared() bool {
	return m.clearedchanges
}

// RemoveChangeIDs removes the "changes" edge to the AgentChange entity by IDs.
func (m *AgentImprovementMutation) RemoveChangeIDs(ids ...int) {
	if m.removedchanges == nil {
		m.removedchanges = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.changes, ids[i])
		m.removedchanges[ids[i]] = struct{}{}
	}
}

// RemovedChanges returns the removed IDs of the "changes" edge to the AgentChange entity.
func (m *AgentImprovementMutation) RemovedChangesIDs() (ids []int) {
	for id := range m.removedchanges {
		ids = append(ids, id)
	}
	return
}

// ChangesIDs returns the "changes" edge IDs in the mutation.
func (m *AgentImprovementMutation) ChangesIDs() (ids []int) {
	for id := range m.changes {
		ids = append(ids, id)
	}
	return
}

// ResetChanges resets all changes to the "changes" edge.
func (m *AgentImprovementMutation) ResetChanges() {
	m.changes = nil
	m.clearedchanges = false
	m.removedchanges = nil
}

// Where appends a list predicates to the AgentImprovementMutation builder.
func (m *AgentImprovementMutation) Where(ps ...predicate.AgentImprovement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentImprovementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentImprovementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentImprovement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentImprovementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentImprovementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentImprovement).
func (m *AgentImprovementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentImprovementMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.agent != nil {
		fields = append(fields, agentimprovement.FieldAgentID)
	}
	if m.improvement_description != nil {
		fields = append(fields, agentimprovement.FieldImprovementDescription)
	}
	if m.priority != nil {
		fields = append(fields, agentimprovement.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, agentimprovement.FieldStatus)
	}
	if m.implemented_at != nil {
		fields = append(fields, agentimprovement.FieldImplementedAt)
	}
	if m.created_at != nil {
		fields = append(fields, agentimprovement.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentimprovement.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentImprovementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentimprovement.FieldAgentID:
		return m.AgentID()
	case agentimprovement.FieldImprovementDescription:
		return m.ImprovementDescription()
	case agentimprovement.FieldPriority:
		return m.Priority()
	case agentimprovement.FieldStatus:
		return m.Status()
	case agentimprovement.FieldImplementedAt:
		return m.ImplementedAt()
	case agentimprovement.FieldCreatedAt:
		return m.CreatedAt()
	case agentimprovement.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentImprovementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentimprovement.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentimprovement.FieldImprovementDescription:
		return m.OldImprovementDescription(ctx)
	case agentimprovement.FieldPriority:
		return m.OldPriority(ctx)
	case agentimprovement.FieldStatus:
		return m.OldStatus(ctx)
	case agentimprovement.FieldImplementedAt:
		return m.OldImplementedAt(ctx)
	case agentimprovement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentimprovement.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentImprovement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentImprovementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentimprovement.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentimprovement.FieldImprovementDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImprovementDescription(v)
		return nil
	case agentimprovement.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case agentimprovement.FieldStatus:
		v, ok := value.(models.ImprovementStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentimprovement.FieldImplementedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImplementedAt(v)
		return nil
	case agentimprovement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentimprovement.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentImprovement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentImprovementMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, agentimprovement.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentImprovementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentimprovement.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentImprovementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentimprovement.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown AgentImprovement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentImprovementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentimprovement.FieldImplementedAt) {
		fields = append(fields, agentimprovement.FieldImplementedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentImprovementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentImprovementMutation) ClearField(name string) error {
	switch name {
	case agentimprovement.FieldImplementedAt:
		m.ClearImplementedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentImprovement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentImprovementMutation) ResetField(name string) error {
	switch name {
	case agentimprovement.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentimprovement.FieldImprovementDescription:
		m.ResetImprovementDescription()
		return nil
	case agentimprovement.FieldPriority:
		m.ResetPriority()
		return nil
	case agentimprovement.FieldStatus:
		m.ResetStatus()
		return nil
	case agentimprovement.FieldImplementedAt:
		m.ResetImplementedAt()
		return nil
	case agentimprovement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentimprovement.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentImprovement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentImprovementMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.agent != nil {
		edges = append(edges, agentimprovement.EdgeAgent)
	}
	if m.changes != nil {
		edges = append(edges, agentimprovement.EdgeChanges)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentImprovementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentimprovement.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case agentimprovement.EdgeChanges:
		ids := make([]ent.Value, 0, len(m.changes))
		for id := range m.changes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentImprovementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedchanges != nil {
		edges = append(edges, agentimprovement.EdgeChanges)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentImprovementMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentimprovement.EdgeChanges:
		ids := make([]ent.Value, 0, len(m.removedchanges))
		for id := range m.removedchanges {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentImprovementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedagent {
		edges = append(edges, agentimprovement.EdgeAgent)
	}
	if m.clearedchanges {
		edges = append(edges, agentimprovement.EdgeChanges)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentImprovementMutation) EdgeCleared(name string) bool {
	switch name {
	case agentimprovement.EdgeAgent:
		return m.clearedagent
	case agentimprovement.EdgeChanges:
		return m.clearedchanges
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentImprovementMutation) ClearEdge(name string) error {
	switch name {
	case agentimprovement.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown AgentImprovement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentImprovementMutation) ResetEdge(name string) error {
	switch name {
	case agentimprovement.EdgeAgent:
		m.ResetAgent()
		return nil
	case agentimprovement.EdgeChanges:
		m.ResetChanges()
		return nil
	}
	return fmt.Errorf("unknown AgentImprovement edge %s", name)
}

// AgentInvocationMutation represents an operation that mutates the AgentInvocation nodes in the graph.
type AgentInvocationMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	task_description       *string
	invocation_mode        *models.InvocationMode
	context_notes          *string
	started_at             *time.Time
	completed_at           *time.Time
	duration_minutes       *int
	addduration_minutes    *int
	success                *bool
	satisfaction_rating    *int
	addsatisfaction_rating *int
	outcome_notes          *string
	tokens_input           *int
	addtokens_input        *int
	tokens_output          *int
	addtokens_output       *int
	tokens_total           *int
	addtokens_total        *int
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	agent                  *int
	clearedagent           bool
	issues                 map[int]struct{}
	removedissues          map[int]struct{}
	clearedissues          bool
	changes                map[int]struct{}
	removedchanges         map[int]struct{}
	clearedchanges         bool
	done                   bool
	oldValue               func(context.Context) (*AgentInvocation, error)
	predicates             []predicate.AgentInvocation
}

var _ ent.Mutation = (*AgentInvocationMutation)(nil)

// agentinvocationOption allows management of the mutation configuration using functional options.
type agentinvocationOption func(*AgentInvocationMutation)

// newAgentInvocationMutation creates new mutation for the AgentInvocation entity.
func newAgentInvocationMutation(c config, op Op, opts ...agentinvocationOption) *AgentInvocationMutation {
	m := &AgentInvocationMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentInvocation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentInvocationID sets the ID field of the mutation.
func withAgentInvocationID(id int) agentinvocationOption {
	return func(m *AgentInvocationMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentInvocation
		)
		m.oldValue = func(ctx context.Context) (*AgentInvocation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentInvocation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentInvocation sets the old AgentInvocation of the mutation.
func withAgentInvocation(node *AgentInvocation) agentinvocationOption {
	return func(m *AgentInvocationMutation) {
		m.oldValue = func(context.Context) (*AgentInvocation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentInvocationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentInvocationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentInvocationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentInvocationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentInvocation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AgentInvocationMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentInvocationMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldAgentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentInvocationMutation) ResetAgentID() {
	m.agent = nil
}

// SetTaskDescription sets the "task_description" field.
func (m *AgentInvocationMutation) SetTaskDescription(s string) {
	m.task_description = &s
}

// TaskDescription returns the value of the "task_description" field in the mutation.
func (m *AgentInvocationMutation) TaskDescription() (r string, exists bool) {
	v := m.task_description
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskDescription returns the old "task_description" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldTaskDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskDescription: %w", err)
	}
	return oldValue.TaskDescription, nil
}

// ResetTaskDescription resets all changes to the "task_description" field.
func (m *AgentInvocationMutation) ResetTaskDescription() {
	m.task_description = nil
}

// SetInvocationMode sets the "invocation_mode" field.
func (m *AgentInvocationMutation) SetInvocationMode(mm models.InvocationMode) {
	m.invocation_mode = &mm
}

// InvocationMode returns the value of the "invocation_mode" field in the mutation.
func (m *AgentInvocationMutation) InvocationMode() (r models.InvocationMode, exists bool) {
	v := m.invocation_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldInvocationMode returns the old "invocation_mode" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldInvocationMode(ctx context.Context) (v models.InvocationMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvocationMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvocationMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvocationMode: %w", err)
	}
	return oldValue.InvocationMode, nil
}

// ResetInvocationMode resets all changes to the "invocation_mode" field.
func (m *AgentInvocationMutation) ResetInvocationMode() {
	m.invocation_mode = nil
}

// SetContextNotes sets the "context_notes" field.
func (m *AgentInvocationMutation) SetContextNotes(s string) {
	m.context_notes = &s
}

// ContextNotes returns the value of the "context_notes" field in the mutation.
func (m *AgentInvocationMutation) ContextNotes() (r string, exists bool) {
	v := m.context_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldContextNotes returns the old "context_notes" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldContextNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextNotes: %w", err)
	}
	return oldValue.ContextNotes, nil
}

// ClearContextNotes clears the value of the "context_notes" field.
func (m *AgentInvocationMutation) ClearContextNotes() {
	m.context_notes = nil
	m.clearedFields[agentinvocation.FieldContextNotes] = struct{}{}
}

// ContextNotesCleared returns if the "context_notes" field was cleared in this mutation.
func (m *AgentInvocationMutation) ContextNotesCleared() bool {
	_, ok := m.clearedFields[agentinvocation.FieldContextNotes]
	return ok
}

// ResetContextNotes resets all changes to the "context_notes" field.
func (m *AgentInvocationMutation) ResetContextNotes() {
	m.context_notes = nil
	delete(m.clearedFields, agentinvocation.FieldContextNotes)
}

// SetStartedAt sets the "started_at" field.
func (m *AgentInvocationMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentInvocationMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentInvocationMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentInvocationMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentInvocationMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentInvocationMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agentinvocation.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentInvocationMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agentinvocation.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentInvocationMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agentinvocation.FieldCompletedAt)
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *AgentInvocationMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *AgentInvocationMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldDurationMinutes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *AgentInvocationMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *AgentInvocationMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (m *AgentInvocationMutation) ClearDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
	m.clearedFields[agentinvocation.FieldDurationMinutes] = struct{}{}
}

// DurationMinutesCleared returns if the "duration_minutes" field was cleared in this mutation.
func (m *AgentInvocationMutation) DurationMinutesCleared() bool {
	_, ok := m.clearedFields[agentinvocation.FieldDurationMinutes]
	return ok
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *AgentInvocationMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
	delete(m.clearedFields, agentinvocation.FieldDurationMinutes)
}

// SetSuccess sets the "success" field.
func (m *AgentInvocationMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *AgentInvocationMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldSuccess(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ClearSuccess clears the value of the "success" field.
func (m *AgentInvocationMutation) ClearSuccess() {
	m.success = nil
	m.clearedFields[agentinvocation.FieldSuccess] = struct{}{}
}

// SuccessCleared returns if the "success" field was cleared in this mutation.
func (m *AgentInvocationMutation) SuccessCleared() bool {
	_, ok := m.clearedFields[agentinvocation.FieldSuccess]
	return ok
}

// ResetSuccess resets all changes to the "success" field.
func (m *AgentInvocationMutation) ResetSuccess() {
	m.success = nil
	delete(m.clearedFields, agentinvocation.FieldSuccess)
}

// SetSatisfactionRating sets the "satisfaction_rating" field.
func (m *AgentInvocationMutation) SetSatisfactionRating(i int) {
	m.satisfaction_rating = &i
	m.addsatisfaction_rating = nil
}

// SatisfactionRating returns the value of the "satisfaction_rating" field in the mutation.
func (m *AgentInvocationMutation) SatisfactionRating() (r int, exists bool) {
	v := m.satisfaction_rating
	if v == nil {
		return
	}
	return *v, true
}

// OldSatisfactionRating returns the old "satisfaction_rating" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldSatisfactionRating(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSatisfactionRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSatisfactionRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSatisfactionRating: %w", err)
	}
	return oldValue.SatisfactionRating, nil
}

// AddSatisfactionRating adds i to the "satisfaction_rating" field.
func (m *AgentInvocationMutation) AddSatisfactionRating(i int) {
	if m.addsatisfaction_rating != nil {
		*m.addsatisfaction_rating += i
	} else {
		m.addsatisfaction_rating = &i
	}
}

// AddedSatisfactionRating returns the value that was added to the "satisfaction_rating" field in this mutation.
func (m *AgentInvocationMutation) AddedSatisfactionRating() (r int, exists bool) {
	v := m.addsatisfaction_rating
	if v == nil {
		return
	}
	return *v, true
}

// ClearSatisfactionRating clears the value of the "satisfaction_rating" field.
func (m *AgentInvocationMutation) ClearSatisfactionRating() {
	m.satisfaction_rating = nil
	m.addsatisfaction_rating = nil
	m.clearedFields[agentinvocation.FieldSatisfactionRating] = struct{}{}
}

// SatisfactionRatingCleared returns if the "satisfaction_rating" field was cleared in this mutation.
func (m *AgentInvocationMutation) SatisfactionRatingCleared() bool {
	_, ok := m.clearedFields[agentinvocation.FieldSatisfactionRating]
	return ok
}

// ResetSatisfactionRating resets all changes to the "satisfaction_rating" field.
func (m *AgentInvocationMutation) ResetSatisfactionRating() {
	m.satisfaction_rating = nil
	m.addsatisfaction_rating = nil
	delete(m.clearedFields, agentinvocation.FieldSatisfactionRating)
}

// SetOutcomeNotes sets the "outcome_notes" field.
func (m *AgentInvocationMutation) SetOutcomeNotes(s string) {
	m.outcome_notes = &s
}

// OutcomeNotes returns the value of the "outcome_notes" field in the mutation.
func (m *AgentInvocationMutation) OutcomeNotes() (r string, exists bool) {
	v := m.outcome_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeNotes returns the old "outcome_notes" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldOutcomeNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeNotes: %w", err)
	}
	return oldValue.OutcomeNotes, nil
}

// ClearOutcomeNotes clears the value of the "outcome_notes" field.
func (m *AgentInvocationMutation) ClearOutcomeNotes() {
	m.outcome_notes = nil
	m.clearedFields[agentinvocation.FieldOutcomeNotes] = struct{}{}
}

// OutcomeNotesCleared returns if the "outcome_notes" field was cleared in this mutation.
func (m *AgentInvocationMutation) OutcomeNotesCleared() bool {
	_, ok := m.clearedFields[agentinvocation.FieldOutcomeNotes]
	return ok
}

// ResetOutcomeNotes resets all changes to the "outcome_notes" field.
func (m *AgentInvocationMutation) ResetOutcomeNotes() {
	m.outcome_notes = nil
	delete(m.clearedFields, agentinvocation.FieldOutcomeNotes)
}

// SetTokensInput sets the "tokens_input" field.
func (m *AgentInvocationMutation) SetTokensInput(i int) {
	m.tokens_input = &i
	m.addtokens_input = nil
}

// TokensInput returns the value of the "tokens_input" field in the mutation.
func (m *AgentInvocationMutation) TokensInput() (r int, exists bool) {
	v := m.tokens_input
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensInput returns the old "tokens_input" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldTokensInput(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensInput: %w", err)
	}
	return oldValue.TokensInput, nil
}

// AddTokensInput adds i to the "tokens_input" field.
func (m *AgentInvocationMutation) AddTokensInput(i int) {
	if m.addtokens_input != nil {
		*m.addtokens_input += i
	} else {
		m.addtokens_input = &i
	}
}

// AddedTokensInput returns the value that was added to the "tokens_input" field in this mutation.
func (m *AgentInvocationMutation) AddedTokensInput() (r int, exists bool) {
	v := m.addtokens_input
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensInput clears the value of the "tokens_input" field.
func (m *AgentInvocationMutation) ClearTokensInput() {
	m.tokens_input = nil
	m.addtokens_input = nil
	m.clearedFields[agentinvocation.FieldTokensInput] = struct{}{}
}

// TokensInputCleared returns if the "tokens_input" field was cleared in this mutation.
func (m *AgentInvocationMutation) TokensInputCleared() bool {
	_, ok := m.clearedFields[agentinvocation.FieldTokensInput]
	return ok
}

// ResetTokensInput resets all changes to the "tokens_input" field.
func (m *AgentInvocationMutation) ResetTokensInput() {
	m.tokens_input = nil
	m.addtokens_input = nil
	delete(m.clearedFields, agentinvocation.FieldTokensInput)
}

// SetTokensOutput sets the "tokens_output" field.
func (m *AgentInvocationMutation) SetTokensOutput(i int) {
	m.tokens_output = &i
	m.addtokens_output = nil
}

// TokensOutput returns the value of the "tokens_output" field in the mutation.
func (m *AgentInvocationMutation) TokensOutput() (r int, exists bool) {
	v := m.tokens_output
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensOutput returns the old "tokens_output" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldTokensOutput(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensOutput: %w", err)
	}
	return oldValue.TokensOutput, nil
}

// AddTokensOutput adds i to the "tokens_output" field.
func (m *AgentInvocationMutation) AddTokensOutput(i int) {
	if m.addtokens_output != nil {
		*m.addtokens_output += i
	} else {
		m.addtokens_output = &i
	}
}

// AddedTokensOutput returns the value that was added to the "tokens_output" field in this mutation.
func (m *AgentInvocationMutation) AddedTokensOutput() (r int, exists bool) {
	v := m.addtokens_output
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensOutput clears the value of the "tokens_output" field.
func (m *AgentInvocationMutation) ClearTokensOutput() {
	m.tokens_output = nil
	m.addtokens_output = nil
	m.clearedFields[agentinvocation.FieldTokensOutput] = struct{}{}
}

// TokensOutputCleared returns if the "tokens_output" field was cleared in this mutation.
func (m *AgentInvocationMutation) TokensOutputCleared() bool {
	_, ok := m.clearedFields[agentinvocation.FieldTokensOutput]
	return ok
}

// ResetTokensOutput resets all changes to the "tokens_output" field.
func (m *AgentInvocationMutation) ResetTokensOutput() {
	m.tokens_output = nil
	m.addtokens_output = nil
	delete(m.clearedFields, agentinvocation.FieldTokensOutput)
}

// SetTokensTotal sets the "tokens_total" field.
func (m *AgentInvocationMutation) SetTokensTotal(i int) {
	m.tokens_total = &i
	m.addtokens_total = nil
}

// TokensTotal returns the value of the "tokens_total" field in the mutation.
func (m *AgentInvocationMutation) TokensTotal() (r int, exists bool) {
	v := m.tokens_total
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensTotal returns the old "tokens_total" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldTokensTotal(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensTotal: %w", err)
	}
	return oldValue.TokensTotal, nil
}

// AddTokensTotal adds i to the "tokens_total" field.
func (m *AgentInvocationMutation) AddTokensTotal(i int) {
	if m.addtokens_total != nil {
		*m.addtokens_total += i
	} else {
		m.addtokens_total = &i
	}
}

// AddedTokensTotal returns the value that was added to the "tokens_total" field in this mutation.
func (m *AgentInvocationMutation) AddedTokensTotal() (r int, exists bool) {
	v := m.addtokens_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensTotal clears the value of the "tokens_total" field.
func (m *AgentInvocationMutation) ClearTokensTotal() {
	m.tokens_total = nil
	m.addtokens_total = nil
	m.clearedFields[agentinvocation.FieldTokensTotal] = struct{}{}
}

// TokensTotalCleared returns if the "tokens_total" field was cleared in this mutation.
func (m *AgentInvocationMutation) TokensTotalCleared() bool {
	_, ok := m.clearedFields[agentinvocation.FieldTokensTotal]
	return ok
}

// ResetTokensTotal resets all changes to the "tokens_total" field.
func (m *AgentInvocationMutation) ResetTokensTotal() {
	m.tokens_total = nil
	m.addtokens_total = nil
	delete(m.clearedFields, agentinvocation.FieldTokensTotal)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentInvocationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentInvocationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentInvocationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentInvocationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentInvocationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentInvocationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *AgentInvocationMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[agentinvocation.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *AgentInvocationMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *AgentInvocationMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *AgentInvocationMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// AddIssueIDs adds the "issues" edge to the AgentIssue entity by ids.
func (m *AgentInvocationMutation) AddIssueIDs(ids ...int) {
	if m.issues == nil {
		m.issues = make(map[int]struct{})
	}
	for i := range ids {
		m.issues[ids[i]] = struct{}{}
	}
}

// ClearIssues clears the "issues" edge to the AgentIssue entity.
func (m *AgentInvocationMutation) ClearIssues() {
	m.clearedissues = true
}

// IssuesCleared reports if the "issues" edge to the AgentIssue entity was cleared.
func (m *AgentInvocationMutation) IssuesCleared() bool {
	return m.clearedissues
}

// RemoveIssueIDs removes the "issues" edge to the AgentIssue entity by IDs.
func (m *AgentInvocationMutation) RemoveIssueIDs(ids ...int) {
	if m.removedissues == nil {
		m.removedissues = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.issues, ids[i])
		m.removedissues[ids[i]] = struct{}{}
	}
}

// RemovedIssues returns the removed IDs of the "issues" edge to the AgentIssue entity.
func (m *AgentInvocationMutation) RemovedIssuesIDs() (ids []int) {
	for id := range m.removedissues {
		ids = append(ids, id)
	}
	return
}

// IssuesIDs returns the "issues" edge IDs in the mutation.
func (m *AgentInvocationMutation) IssuesIDs() (ids []int) {
	for id := range m.issues {
		ids = append(ids, id)
	}
	return
}

// ResetIssues resets all changes to the "issues" edge.
func (m *AgentInvocationMutation) ResetIssues() {
	m.issues = nil
	m.clearedissues = false
	m.removedissues = nil
}

// AddChangeIDs adds the "changes" edge to the AgentChange entity by ids.
func (m *AgentInvocationMutation) AddChangeIDs(ids ...int) {
	if m.changes == nil {
		m.changes = make(map[int]struct{})
	}
	for i := range ids {
		m.changes[ids[i]] = struct{}{}
	}
}

// ClearChanges clears the "changes" edge to the AgentChange entity.
func (m *AgentInvocationMutation) ClearChanges() {
	m.clearedchanges = true
}

// ChangesCleared reports if the "changes" edge to the AgentChange entity was cleared.
func (m *AgentInvocationMutation) ChangesCleared() bool {
	return m.clearedchanges
}

// RemoveChangeIDs removes the "changes" edge to the AgentChange entity by IDs.
func (m *AgentInvocationMutation) RemoveChangeIDs(ids ...int) {
	if m.removedchanges == nil {
		m.removedchanges = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.changes, ids[i])
		m.removedchanges[ids[i]] = struct{}{}
	}
}

// RemovedChanges returns the removed IDs of the "changes" edge to the AgentChange entity.
func (m *AgentInvocationMutation) RemovedChangesIDs() (ids []int) {
	for id := range m.removedchanges {
		ids = append(ids, id)
	}
	return
}

// ChangesIDs returns the "changes" edge IDs in the mutation.
func (m *AgentInvocationMutation) ChangesIDs() (ids []int) {
	for id := range m.changes {
		ids = append(ids, id)
	}
	return
}

// ResetChanges resets all changes to the "changes" edge.
func (m *AgentInvocationMutation) ResetChanges() {
	m.changes = nil
	m.clearedchanges = false
	m.removedchanges = nil
}

// Where appends a list predicates to the AgentInvocationMutation builder.
func (m *AgentInvocationMutation) Where(ps ...predicate.AgentInvocation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentInvocationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentInvocationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentInvocation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentInvocationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentInvocationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentInvocation).
func (m *AgentInvocationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentInvocationMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.agent != nil {
		fields = append(fields, agentinvocation.FieldAgentID)
	}
	if m.task_description != nil {
		fields = append(fields, agentinvocation.FieldTaskDescription)
	}
	if m.invocation_mode != nil {
		fields = append(fields, agentinvocation.FieldInvocationMode)
	}
	if m.context_notes != nil {
		fields = append(fields, agentinvocation.FieldContextNotes)
	}
	if m.started_at != nil {
		fields = append(fields, agentinvocation.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agentinvocation.FieldCompletedAt)
	}
	if m.duration_minutes != nil {
		fields = append(fields, agentinvocation.FieldDurationMinutes)
	}
	if m.success != nil {
		fields = append(fields, agentinvocation.FieldSuccess)
	}
	if m.satisfaction_rating != nil {
		fields = append(fields, agentinvocation.FieldSatisfactionRating)
	}
	if m.outcome_notes != nil {
		fields = append(fields, agentinvocation.FieldOutcomeNotes)
	}
	if m.tokens_input != nil {
		fields = append(fields, agentinvocation.FieldTokensInput)
	}
	if m.tokens_output != nil {
		fields = append(fields, agentinvocation.FieldTokensOutput)
	}
	if m.tokens_total != nil {
		fields = append(fields, agentinvocation.FieldTokensTotal)
	}
	if m.created_at != nil {
		fields = append(fields, agentinvocation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentinvocation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentInvocationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentinvocation.FieldAgentID:
		return m.AgentID()
	case agentinvocation.FieldTaskDescription:
		return m.TaskDescription()
	case agentinvocation.FieldInvocationMode:
		return m.InvocationMode()
	case agentinvocation.FieldContextNotes:
		return m.ContextNotes()
	case agentinvocation.FieldStartedAt:
		return m.StartedAt()
	case agentinvocation.FieldCompletedAt:
		return m.CompletedAt()
	case agentinvocation.FieldDurationMinutes:
		return m.DurationMinutes()
	case agentinvocation.FieldSuccess:
		return m.Success()
	case agentinvocation.FieldSatisfactionRating:
		return m.SatisfactionRating()
	case agentinvocation.FieldOutcomeNotes:
		return m.OutcomeNotes()
	case agentinvocation.FieldTokensInput:
		return m.TokensInput()
	case agentinvocation.FieldTokensOutput:
		return m.TokensOutput()
	case agentinvocation.FieldTokensTotal:
		return m.TokensTotal()
	case agentinvocation.FieldCreatedAt:
		return m.CreatedAt()
	case agentinvocation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentInvocationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentinvocation.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentinvocation.FieldTaskDescription:
		return m.OldTaskDescription(ctx)
	case agentinvocation.FieldInvocationMode:
		return m.OldInvocationMode(ctx)
	case agentinvocation.FieldContextNotes:
		return m.OldContextNotes(ctx)
	case agentinvocation.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentinvocation.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case agentinvocation.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case agentinvocation.FieldSuccess:
		return m.OldSuccess(ctx)
	case agentinvocation.FieldSatisfactionRating:
		return m.OldSatisfactionRating(ctx)
	case agentinvocation.FieldOutcomeNotes:
		return m.OldOutcomeNotes(ctx)
	case agentinvocation.FieldTokensInput:
		return m.OldTokensInput(ctx)
	case agentinvocation.FieldTokensOutput:
		return m.OldTokensOutput(ctx)
	case agentinvocation.FieldTokensTotal:
		return m.OldTokensTotal(ctx)
	case agentinvocation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentinvocation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentInvocation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentInvocationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentinvocation.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentinvocation.FieldTaskDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskDescription(v)
		return nil
	case agentinvocation.FieldInvocationMode:
		v, ok := value.(models.InvocationMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvocationMode(v)
		return nil
	case agentinvocation.FieldContextNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextNotes(v)
		return nil
	case agentinvocation.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentinvocation.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case agentinvocation.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case agentinvocation.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case agentinvocation.FieldSatisfactionRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSatisfactionRating(v)
		return nil
	case agentinvocation.FieldOutcomeNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeNotes(v)
		return nil
	case agentinvocation.FieldTokensInput:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensInput(v)
		return nil
	case agentinvocation.FieldTokensOutput:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensOutput(v)
		return nil
	case agentinvocation.FieldTokensTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensTotal(v)
		return nil
	case agentinvocation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentinvocation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentInvocation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentInvocationMutation) AddedFields() []string {
	var fields []string
	if m.addduration_minutes != nil {
		fields = append(fields, agentinvocation.FieldDurationMinutes)
	}
	if m.addsatisfaction_rating != nil {
		fields = append(fields, agentinvocation.FieldSatisfactionRating)
	}
	if m.addtokens_input != nil {
		fields = append(fields, agentinvocation.FieldTokensInput)
	}
	if m.addtokens_output != nil {
		fields = append(fields, agentinvocation.FieldTokensOutput)
	}
	if m.addtokens_total != nil {
		fields = append(fields, agentinvocation.FieldTokensTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentInvocationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentinvocation.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case agentinvocation.FieldSatisfactionRating:
		return m.AddedSatisfactionRating()
	case agentinvocation.FieldTokensInput:
		return m.AddedTokensInput()
	case agentinvocation.FieldTokensOutput:
		return m.AddedTokensOutput()
	case agentinvocation.FieldTokensTotal:
		return m.AddedTokensTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentInvocationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentinvocation.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case agentinvocation.FieldSatisfactionRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSatisfactionRating(v)
		return nil
	case agentinvocation.FieldTokensInput:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensInput(v)
		return nil
	case agentinvocation.FieldTokensOutput:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensOutput(v)
		return nil
	case agentinvocation.FieldTokensTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensTotal(v)
		return nil
	}
	return fmt.Errorf("unknown AgentInvocation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentInvocationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentinvocation.FieldContextNotes) {
		fields = append(fields, agentinvocation.FieldContextNotes)
	}
	if m.FieldCleared(agentinvocation.FieldCompletedAt) {
		fields = append(fields, agentinvocation.FieldCompletedAt)
	}
	if m.FieldCleared(agentinvocation.FieldDurationMinutes) {
		fields = append(fields, agentinvocation.FieldDurationMinutes)
	}
	if m.FieldCleared(agentinvocation.FieldSuccess) {
		fields = append(fields, agentinvocation.FieldSuccess)
	}
	if m.FieldCleared(agentinvocation.FieldSatisfactionRating) {
		fields = append(fields, agentinvocation.FieldSatisfactionRating)
	}
	if m.FieldCleared(agentinvocation.FieldOutcomeNotes) {
		fields = append(fields, agentinvocation.FieldOutcomeNotes)
	}
	if m.FieldCleared(agentinvocation.FieldTokensInput) {
		fields = append(fields, agentinvocation.FieldTokensInput)
	}
	if m.FieldCleared(agentinvocation.FieldTokensOutput) {
		fields = append(fields, agentinvocation.FieldTokensOutput)
	}
	if m.FieldCleared(agentinvocation.FieldTokensTotal) {
		fields = append(fields, agentinvocation.FieldTokensTotal)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentInvocationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentInvocationMutation) ClearField(name string) error {
	switch name {
	case agentinvocation.FieldContextNotes:
		m.ClearContextNotes()
		return nil
	case agentinvocation.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case agentinvocation.FieldDurationMinutes:
		m.ClearDurationMinutes()
		return nil
	case agentinvocation.FieldSuccess:
		m.ClearSuccess()
		return nil
	case agentinvocation.FieldSatisfactionRating:
		m.ClearSatisfactionRating()
		return nil
	case agentinvocation.FieldOutcomeNotes:
		m.ClearOutcomeNotes()
		return nil
	case agentinvocation.FieldTokensInput:
		m.ClearTokensInput()
		return nil
	case agentinvocation.FieldTokensOutput:
		m.ClearTokensOutput()
		return nil
	case agentinvocation.FieldTokensTotal:
		m.ClearTokensTotal()
		return nil
	}
	return fmt.Errorf("unknown AgentInvocation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentInvocationMutation) ResetField(name string) error {
	switch name {
	case agentinvocation.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentinvocation.FieldTaskDescription:
		m.ResetTaskDescription()
		return nil
	case agentinvocation.FieldInvocationMode:
		m.ResetInvocationMode()
		return nil
	case agentinvocation.FieldContextNotes:
		m.ResetContextNotes()
		return nil
	case agentinvocation.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentinvocation.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case agentinvocation.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case agentinvocation.FieldSuccess:
		m.ResetSuccess()
		return nil
	case agentinvocation.FieldSatisfactionRating:
		m.ResetSatisfactionRating()
		return nil
	case agentinvocation.FieldOutcomeNotes:
		m.ResetOutcomeNotes()
		return nil
	case agentinvocation.FieldTokensInput:
		m.ResetTokensInput()
		return nil
	case agentinvocation.FieldTokensOutput:
		m.ResetTokensOutput()
		return nil
	case agentinvocation.FieldTokensTotal:
		m.ResetTokensTotal()
		return nil
	case agentinvocation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentinvocation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentInvocation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentInvocationMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.agent != nil {
		edges = append(edges, agentinvocation.EdgeAgent)
	}
	if m.issues != nil {
		edges = append(edges, agentinvocation.EdgeIssues)
	}
	if m.changes != nil {
		edges = append(edges, agentinvocation.EdgeChanges)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentInvocationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentinvocation.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case agentinvocation.EdgeIssues:
		ids := make([]ent.Value, 0, len(m.issues))
		for id := range m.issues {
			ids = append(ids, id)
		}
		return ids
	case agentinvocation.EdgeChanges:
		ids := make([]ent.Value, 0, len(m.changes))
		for id := range m.changes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentInvocationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedissues != nil {
		edges = append(edges, agentinvocation.EdgeIssues)
	}
	if m.removedchanges != nil {
		edges = append(edges, agentinvocation.EdgeChanges)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentInvocationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentinvocation.EdgeIssues:
		ids := make([]ent.Value, 0, len(m.removedissues))
		for id := range m.removedissues {
			ids = append(ids, id)
		}
		return ids
	case agentinvocation.EdgeChanges:
		ids := make([]ent.Value, 0, len(m.removedchanges))
		for id := range m.removedchanges {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentInvocationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedagent {
		edges = append(edges, agentinvocation.EdgeAgent)
	}
	if m.clearedissues {
		edges = append(edges, agentinvocation.EdgeIssues)
	}
	if m.clearedchanges {
		edges = append(edges, agentinvocation.EdgeChanges)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentInvocationMutation) EdgeCleared(name string) bool {
	switch name {
	case agentinvocation.EdgeAgent:
		return m.clearedagent
	case agentinvocation.EdgeIssues:
		return m.clearedissues
	case agentinvocation.EdgeChanges:
		return m.clearedchanges
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentInvocationMutation) ClearEdge(name string) error {
	switch name {
	case agentinvocation.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown AgentInvocation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentInvocationMutation) ResetEdge(name string) error {
	switch name {
	case agentinvocation.EdgeAgent:
		m.ResetAgent()
		return nil
	case agentinvocation.EdgeIssues:
		m.ResetIssues()
		return nil
	case agentinvocation.EdgeChanges:
		m.ResetChanges()
		return nil
	}
	return fmt.Errorf("unknown AgentInvocation edge %s", name)
}

// AgentIssueMutation represents an operation that mutates the AgentIssue nodes in the graph.
type AgentIssueMutation struct {
	config
	op                Op
	typ               string
	id                *int
	issue_description *string
	severity          *int
	addseverity       *int
	status            *models.IssueStatus
	resolution_notes  *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	agent             *int
	clearedagent      bool
	invocation        *int
	clearedinvocation bool
	changes           map[int]struct{}
	removedchanges    map[int]struct{}
	clearedchanges    bool
	done              bool
	oldValue          func(context.Context) (*AgentIssue, error)
	predicates        []predicate.AgentIssue
}

var _ ent.Mutation = (*AgentIssueMutation)(nil)

// agentissueOption allows management of the mutation configuration using functional options.
type agentissueOption func(*AgentIssueMutation)

// newAgentIssueMutation creates new mutation for the AgentIssue entity.
func newAgentIssueMutation(c config, op Op, opts ...agentissueOption) *AgentIssueMutation {
	m := &AgentIssueMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentIssue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentIssueID sets the ID field of the mutation.
func withAgentIssueID(id int) agentissueOption {
	return func(m *AgentIssueMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentIssue
		)
		m.oldValue = func(ctx context.Context) (*AgentIssue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentIssue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentIssue sets the old AgentIssue of the mutation.
func withAgentIssue(node *AgentIssue) agentissueOption {
	return func(m *AgentIssueMutation) {
		m.oldValue = func(context.Context) (*AgentIssue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentIssueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentIssueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentIssueMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentIssueMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentIssue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AgentIssueMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentIssueMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentIssue entity.
// If the AgentIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentIssueMutation) OldAgentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentIssueMutation) ResetAgentID() {
	m.agent = nil
}

// SetAgentInvocationID sets the "agent_invocation_id" field.
func (m *AgentIssueMutation) SetAgentInvocationID(i int) {
	m.invocation = &i
}

// AgentInvocationID returns the value of the "agent_invocation_id" field in the mutation.
func (m *AgentIssueMutation) AgentInvocationID() (r int, exists bool) {
	v := m.invocation
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentInvocationID returns the old "agent_invocation_id" field's value of the AgentIssue entity.
// If the AgentIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentIssueMutation) OldAgentInvocationID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentInvocationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentInvocationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentInvocationID: %w", err)
	}
	return oldValue.AgentInvocationID, nil
}

// ClearAgentInvocationID clears the value of the "agent_invocation_id" field.
func (m *AgentIssueMutation) ClearAgentInvocationID() {
	m.invocation = nil
	m.clearedFields[agentissue.FieldAgentInvocationID] = struct{}{}
}

// AgentInvocationIDCleared returns if the "agent_invocation_id" field was cleared in this mutation.
func (m *AgentIssueMutation) AgentInvocationIDCleared() bool {
	_, ok := m.clearedFields[agentissue.FieldAgentInvocationID]
	return ok
}

// ResetAgentInvocationID resets all changes to the "agent_invocation_id" field.
func (m *AgentIssueMutation) ResetAgentInvocationID() {
	m.invocation = nil
	delete(m.clearedFields, agentissue.FieldAgentInvocationID)
}

// SetIssueDescription sets the "issue_description" field.
func (m *AgentIssueMutation) SetIssueDescription(s string) {
	m.issue_description = &s
}

// IssueDescription returns the value of the "issue_description" field in the mutation.
func (m *AgentIssueMutation) IssueDescription() (r string, exists bool) {
	v := m.issue_description
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueDescription returns the old "issue_description" field's value of the AgentIssue entity.
// If the AgentIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentIssueMutation) OldIssueDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueDescription: %w", err)
	}
	return oldValue.IssueDescription, nil
}

// ResetIssueDescription resets all changes to the "issue_description" field.
func (m *AgentIssueMutation) ResetIssueDescription() {
	m.issue_description = nil
}

// SetSeverity sets the "severity" field.
func (m *AgentIssueMutation) SetSeverity(i int) {
	m.severity = &i
	m.addseverity = nil
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AgentIssueMutation) Severity() (r int, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the AgentIssue entity.
// If the AgentIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentIssueMutation) OldSeverity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// AddSeverity adds i to the "severity" field.
func (m *AgentIssueMutation) AddSeverity(i int) {
	if m.addseverity != nil {
		*m.addseverity += i
	} else {
		m.addseverity = &i
	}
}

// AddedSeverity returns the value that was added to the "severity" field in this mutation.
func (m *AgentIssueMutation) AddedSeverity() (r int, exists bool) {
	v := m.addseverity
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AgentIssueMutation) ResetSeverity() {
	m.severity = nil
	m.addseverity = nil
}

// SetStatus sets the "status" field.
func (m *AgentIssueMutation) SetStatus(ms models.IssueStatus) {
	m.status = &ms
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentIssueMutation) Status() (r models.IssueStatus, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentIssue entity.
// If the AgentIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentIssueMutation) OldStatus(ctx context.Context) (v models.IssueStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentIssueMutation) ResetStatus() {
	m.status = nil
}

// SetResolutionNotes sets the "resolution_notes" field.
func (m *AgentIssueMutation) SetResolutionNotes(s string) {
	m.resolution_notes = &s
}

// ResolutionNotes returns the value of the "resolution_notes" field in the mutation.
func (m *AgentIssueMutation) ResolutionNotes() (r string, exists bool) {
	v := m.resolution_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionNotes returns the old "resolution_notes" field's value of the AgentIssue entity.
// If the AgentIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentIssueMutation) OldResolutionNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionNotes: %w", err)
	}
	return oldValue.ResolutionNotes, nil
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (m *AgentIssueMutation) ClearResolutionNotes() {
	m.resolution_notes = nil
	m.clearedFields[agentissue.FieldResolutionNotes] = struct{}{}
}

// ResolutionNotesCleared returns if the "resolution_notes" field was cleared in this mutation.
func (m *AgentIssueMutation) ResolutionNotesCleared() bool {
	_, ok := m.clearedFields[agentissue.FieldResolutionNotes]
	return ok
}

// ResetResolutionNotes resets all changes to the "resolution_notes" field.
func (m *AgentIssueMutation) ResetResolutionNotes() {
	m.resolution_notes = nil
	delete(m.clearedFields, agentissue.FieldResolutionNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentIssueMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentIssueMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentIssue entity.
// If the AgentIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentIssueMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentIssueMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentIssueMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentIssueMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentIssue entity.
// If the AgentIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentIssueMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentIssueMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *AgentIssueMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[agentissue.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *AgentIssueMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *AgentIssueMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *AgentIssueMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// SetInvocationID sets the "invocation" edge to the AgentInvocation entity by id.
func (m *AgentIssueMutation) SetInvocationID(id int) {
	m.invocation = &id
}

// ClearInvocation clears the "invocation" edge to the AgentInvocation entity.
func (m *AgentIssueMutation) ClearInvocation() {
	m.clearedinvocation = true
	m.clearedFields[agentissue.FieldAgentInvocationID] = struct{}{}
}

// InvocationCleared reports if the "invocation" edge to the AgentInvocation entity was cleared.
func (m *AgentIssueMutation) InvocationCleared() bool {
	return m.AgentInvocationIDCleared() || m.clearedinvocation
}

// InvocationID returns the "invocation" edge ID in the mutation.
func (m *AgentIssueMutation) InvocationID() (id int, exists bool) {
	if m.invocation != nil {
		return *m.invocation, true
	}
	return
}

// InvocationIDs returns the "invocation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvocationID instead. It exists only for internal usage by the builders.
func (m *AgentIssueMutation) InvocationIDs() (ids []int) {
	if id := m.invocation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvocation resets all changes to the "invocation" edge.
func (m *AgentIssueMutation) ResetInvocation() {
	m.invocation = nil
	m.clearedinvocation = false
}

// AddChangeIDs adds the "changes" edge to the AgentChange entity by ids.
func (m *AgentIssueMutation) AddChangeIDs(ids ...int) {
	if m.changes == nil {
		m.changes = make(map[int]struct{})
	}
	for i := range ids {
		m.changes[ids[i]] = struct{}{}
	}
}

// ClearChanges clears the "changes" edge to the AgentChange entity.
func (m *AgentIssueMutation) ClearChanges() {
	m.clearedchanges = true
}

// ChangesCleared reports if the "changes" edge to the AgentChange entity was cleared.
func (m *AgentIssueMutation) ChangesCleared() bool {
	return m.clearedchanges
}

// RemoveChangeIDs removes the "changes" edge to the AgentChange entity by IDs.
func (m *AgentIssueMutation) RemoveChangeIDs(ids ...int) {
	if m.removedchanges == nil {
		m.removedchanges = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.changes, ids[i])
		m.removedchanges[ids[i]] = struct{}{}
	}
}

// RemovedChanges returns the removed IDs of the "changes" edge to the AgentChange entity.
func (m *AgentIssueMutation) RemovedChangesIDs() (ids []int) {
	for id := range m.removedchanges {
		ids = append(ids, id)
	}
	return
}

// ChangesIDs returns the "changes" edge IDs in the mutation.
func (m *AgentIssueMutation) ChangesIDs() (ids []int) {
	for id := range m.changes {
		ids = append(ids, id)
	}
	return
}

// ResetChanges resets all changes to the "changes" edge.
func (m *AgentIssueMutation) ResetChanges() {
	m.changes = nil
	m.clearedchanges = false
	m.removedchanges = nil
}

// Where appends a list predicates to the AgentIssueMutation builder.
func (m *AgentIssueMutation) Where(ps ...predicate.AgentIssue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentIssueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentIssueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentIssue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentIssueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentIssueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentIssue).
func (m *AgentIssueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentIssueMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.agent != nil {
		fields = append(fields, agentissue.FieldAgentID)
	}
	if m.invocation != nil {
		fields = append(fields, agentissue.FieldAgentInvocationID)
	}
	if m.issue_description != nil {
		fields = append(fields, agentissue.FieldIssueDescription)
	}
	if m.severity != nil {
		fields = append(fields, agentissue.FieldSeverity)
	}
	if m.status != nil {
		fields = append(fields, agentissue.FieldStatus)
	}
	if m.resolution_notes != nil {
		fields = append(fields, agentissue.FieldResolutionNotes)
	}
	if m.created_at != nil {
		fields = append(fields, agentissue.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentissue.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentIssueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentissue.FieldAgentID:
		return m.AgentID()
	case agentissue.FieldAgentInvocationID:
		return m.AgentInvocationID()
	case agentissue.FieldIssueDescription:
		return m.IssueDescription()
	case agentissue.FieldSeverity:
		return m.Severity()
	case agentissue.FieldStatus:
		return m.Status()
	case agentissue.FieldResolutionNotes:
		return m.ResolutionNotes()
	case agentissue.FieldCreatedAt:
		return m.CreatedAt()
	case agentissue.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentIssueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentissue.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentissue.FieldAgentInvocationID:
		return m.OldAgentInvocationID(ctx)
	case agentissue.FieldIssueDescription:
		return m.OldIssueDescription(ctx)
	case agentissue.FieldSeverity:
		return m.OldSeverity(ctx)
	case agentissue.FieldStatus:
		return m.OldStatus(ctx)
	case agentissue.FieldResolutionNotes:
		return m.OldResolutionNotes(ctx)
	case agentissue.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentissue.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentIssue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentIssueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentissue.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentissue.FieldAgentInvocationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentInvocationID(v)
		return nil
	case agentissue.FieldIssueDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueDescription(v)
		return nil
	case agentissue.FieldSeverity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case agentissue.FieldStatus:
		v, ok := value.(models.IssueStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentissue.FieldResolutionNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionNotes(v)
		return nil
	case agentissue.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentissue.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentIssue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentIssueMutation) AddedFields() []string {
	var fields []string
	if m.addseverity != nil {
		fields = append(fields, agentissue.FieldSeverity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentIssueMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentissue.FieldSeverity:
		return m.AddedSeverity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentIssueMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentissue.FieldSeverity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeverity(v)
		return nil
	}
	return fmt.Errorf("unknown AgentIssue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentIssueMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentissue.FieldAgentInvocationID) {
		fields = append(fields, agentissue.FieldAgentInvocationID)
	}
	if m.FieldCleared(agentissue.FieldResolutionNotes) {
		fields = append(fields, agentissue.FieldResolutionNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentIssueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentIssueMutation) ClearField(name string) error {
	switch name {
	case agentissue.FieldAgentInvocationID:
		m.ClearAgentInvocationID()
		return nil
	case agentissue.FieldResolutionNotes:
		m.ClearResolutionNotes()
		return nil
	}
	return fmt.Errorf("unknown AgentIssue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentIssueMutation) ResetField(name string) error {
	switch name {
	case agentissue.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentissue.FieldAgentInvocationID:
		m.ResetAgentInvocationID()
		return nil
	case agentissue.FieldIssueDescription:
		m.ResetIssueDescription()
		return nil
	case agentissue.FieldSeverity:
		m.ResetSeverity()
		return nil
	case agentissue.FieldStatus:
		m.ResetStatus()
		return nil
	case agentissue.FieldResolutionNotes:
		m.ResetResolutionNotes()
		return nil
	case agentissue.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentissue.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentIssue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentIssueMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.agent != nil {
		edges = append(edges, agentissue.EdgeAgent)
	}
	if m.invocation != nil {
		edges = append(edges, agentissue.EdgeInvocation)
	}
	if m.changes != nil {
		edges = append(edges, agentissue.EdgeChanges)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentIssueMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentissue.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case agentissue.EdgeInvocation:
		if id := m.invocation; id != nil {
			return []ent.Value{*id}
		}
	case agentissue.EdgeChanges:
		ids := make([]ent.Value, 0, len(m.changes))
		for id := range m.changes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentIssueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedchanges != nil {
		edges = append(edges, agentissue.EdgeChanges)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentIssueMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentissue.EdgeChanges:
		ids := make([]ent.Value, 0, len(m.removedchanges))
		for id := range m.removedchanges {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentIssueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedagent {
		edges = append(edges, agentissue.EdgeAgent)
	}
	if m.clearedinvocation {
		edges = append(edges, agentissue.EdgeInvocation)
	}
	if m.clearedchanges {
		edges = append(edges, agentissue.EdgeChanges)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentIssueMutation) EdgeCleared(name string) bool {
	switch name {
	case agentissue.EdgeAgent:
		return m.clearedagent
	case agentissue.EdgeInvocation:
		return m.clearedinvocation
	case agentissue.EdgeChanges:
		return m.clearedchanges
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentIssueMutation) ClearEdge(name string) error {
	switch name {
	case agentissue.EdgeAgent:
		m.ClearAgent()
		return nil
	case agentissue.EdgeInvocation:
		m.ClearInvocation()
		return nil
	}
	return fmt.Errorf("unknown AgentIssue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentIssueMutation) ResetEdge(name string) error {
	switch name {
	case agentissue.EdgeAgent:
		m.ResetAgent()
		return nil
	case agentissue.EdgeInvocation:
		m.ResetInvocation()
		return nil
	case agentissue.EdgeChanges:
		m.ResetChanges()
		return nil
	}
	return fmt.Errorf("unknown AgentIssue edge %s", name)
}
