// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentchange"
	"github.com/codeready-toolchain/agent-tracker/ent/agentimprovement"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/ent/predicate"
)

// AgentChangeQuery is the builder for querying AgentChange entities.
type AgentChangeQuery struct {
	config
	ctx             *QueryContext
	order           []agentchange.OrderOption
	inters          []Interceptor
	predicates      []predicate.AgentChange
	withAgent       *AgentQuery
	withInvocation  *AgentInvocationQuery
	withIssue       *AgentIssueQuery
	withImprovement *AgentImprovementQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AgentChangeQuery builder.
func (_q *AgentChangeQuery) Where(ps ...predicate.AgentChange) *AgentChangeQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AgentChangeQuery) Limit(limit int) *AgentChangeQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AgentChangeQuery) Offset(offset int) *AgentChangeQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AgentChangeQuery) Unique(unique bool) *AgentChangeQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AgentChangeQuery) Order(o ...agentchange.OrderOption) *AgentChangeQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAgent chains the current query on the "agent" edge.
func (_q *AgentChangeQuery) QueryAgent() *AgentQuery {
	query := (&AgentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentchange.Table, agentchange.FieldID, selector),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentchange.AgentTable, agentchange.AgentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryInvocation chains the current query on the "invocation" edge.
func (_q *AgentChangeQuery) QueryInvocation() *AgentInvocationQuery {
	query := (&AgentInvocationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentchange.Table, agentchange.FieldID, selector),
			sqlgraph.To(agentinvocation.Table, agentinvocation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentchange.InvocationTable, agentchange.InvocationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryIssue chains the current query on the "issue" edge.
func (_q *AgentChangeQuery) QueryIssue() *AgentIssueQuery {
	query := (&AgentIssueClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentchange.Table, agentchange.FieldID, selector),
			sqlgraph.To(agentissue.Table, agentissue.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentchange.IssueTable, agentchange.IssueColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryImprovement chains the current query on the "improvement" edge.
func (_q *AgentChangeQuery) QueryImprovement() *AgentImprovementQuery {
	query := (&AgentImprovementClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentchange.Table, agentchange.FieldID, selector),
			sqlgraph.To(agentimprovement.Table, agentimprovement.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentchange.ImprovementTable, agentchange.ImprovementColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AgentChange entity from the query.
// Returns a *NotFoundError when no AgentChange was found.
func (_q *AgentChangeQuery) First(ctx context.Context) (*AgentChange, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{agentchange.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AgentChangeQuery) FirstX(ctx context.Context) *AgentChange {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AgentChange ID from the query.
// Returns a *NotFoundError when no AgentChange ID was found.
func (_q *AgentChangeQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{agentchange.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AgentChangeQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AgentChange entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AgentChange entity is found.
// Returns a *NotFoundError when no AgentChange entities are found.
func (_q *AgentChangeQuery) Only(ctx context.Context) (*AgentChange, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{agentchange.Label}
	default:
		return nil, &NotSingularError{agentchange.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AgentChangeQuery) OnlyX(ctx context.Context) *AgentChange {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AgentChange ID in the query.
// Returns a *NotSingularError when more than one AgentChange ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AgentChangeQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{agentchange.Label}
	default:
		err = &NotSingularError{agentchange.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AgentChangeQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AgentChanges.
func (_q *AgentChangeQuery) All(ctx context.Context) ([]*AgentChange, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AgentChange, *AgentChangeQuery]()
	return withInterceptors[[]*AgentChange](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AgentChangeQuery) AllX(ctx context.Context) []*AgentChange {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AgentChange IDs.
func (_q *AgentChangeQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(agentchange.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AgentChangeQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AgentChangeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AgentChangeQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AgentChangeQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AgentChangeQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AgentChangeQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AgentChangeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AgentChangeQuery) Clone() *AgentChangeQuery {
	if _q == nil {
		return nil
	}
	return &AgentChangeQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]agentchange.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.AgentChange{}, _q.predicates...),
		withAgent:       _q.withAgent.Clone(),
		withInvocation:  _q.withInvocation.Clone(),
		withIssue:       _q.withIssue.Clone(),
		withImprovement: _q.withImprovement.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAgent tells the query-builder to eager-load the nodes that are connected to
// the "agent" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentChangeQuery) WithAgent(opts ...func(*AgentQuery)) *AgentChangeQuery {
	query := (&AgentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAgent = query
	return _q
}

// WithInvocation tells the query-builder to eager-load the nodes that are connected to
// the "invocation" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentChangeQuery) WithInvocation(opts ...func(*AgentInvocationQuery)) *AgentChangeQuery {
	query := (&AgentInvocationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withInvocation = query
	return _q
}

// WithIssue tells the query-builder to eager-load the nodes that are connected to
// the "issue" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentChangeQuery) WithIssue(opts ...func(*AgentIssueQuery)) *AgentChangeQuery {
	query := (&AgentIssueClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withIssue = query
	return _q
}

// WithImprovement tells the query-builder to eager-load the nodes that are connected to
// the "improvement" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentChangeQuery) WithImprovement(opts ...func(*AgentImprovementQuery)) *AgentChangeQuery {
	query := (&AgentImprovementClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withImprovement = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AgentID int `json:"agent_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AgentChange.Query().
//		GroupBy(agentchange.FieldAgentID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AgentChangeQuery) GroupBy(field string, fields ...string) *AgentChangeGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AgentChangeGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = agentchange.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AgentID int `json:"agent_id,omitempty"`
//	}
//
//	client.AgentChange.Query().
//		Select(agentchange.FieldAgentID).
//		Scan(ctx, &v)
func (_q *AgentChangeQuery) Select(fields ...string) *AgentChangeSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AgentChangeSelect{AgentChangeQuery: _q}
	sbuild.label = agentchange.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AgentChangeSelect configured with the given aggregations.
func (_q *AgentChangeQuery) Aggregate(fns ...AggregateFunc) *AgentChangeSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AgentChangeQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !agentchange.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AgentChangeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AgentChange, error) {
	var (
		nodes       = []*AgentChange{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withAgent != nil,
			_q.withInvocation != nil,
			_q.withIssue != nil,
			_q.withImprovement != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AgentChange).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AgentChange{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withAgent; query != nil {
		if err := _q.loadAgent(ctx, query, nodes, nil,
			func(n *AgentChange, e *Agent) { n.Edges.Agent = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withInvocation; query != nil {
		if err := _q.loadInvocation(ctx, query, nodes, nil,
			func(n *AgentChange, e *AgentInvocation) { n.Edges.Invocation = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withIssue; query != nil {
		if err := _q.loadIssue(ctx, query, nodes, nil,
			func(n *AgentChange, e *AgentIssue) { n.Edges.Issue = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withImprovement; query != nil {
		if err := _q.loadImprovement(ctx, query, nodes, nil,
			func(n *AgentChange, e *AgentImprovement) { n.Edges.Improvement = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AgentChangeQuery) loadAgent(ctx context.Context, query *AgentQuery, nodes []*AgentChange, init func(*AgentChange), assign func(*AgentChange, *Agent)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*AgentChange)
	for i := range nodes {
		fk := nodes[i].AgentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(agent.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "agent_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AgentChangeQuery) loadInvocation(ctx context.Context, query *AgentInvocationQuery, nodes []*AgentChange, init func(*AgentChange), assign func(*AgentChange, *AgentInvocation)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*AgentChange)
	for i := range nodes {
		if nodes[i].AgentInvocationID == nil {
			continue
		}
		fk := *nodes[i].AgentInvocationID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(agentinvocation.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "agent_invocation_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AgentChangeQuery) loadIssue(ctx context.Context, query *AgentIssueQuery, nodes []*AgentChange, init func(*AgentChange), assign func(*AgentChange, *AgentIssue)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*AgentChange)
	for i := range nodes {
		if nodes[i].AgentIssueID == nil {
			continue
		}
		fk := *nodes[i].AgentIssueID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(agentissue.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "agent_issue_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AgentChangeQuery) loadImprovement(ctx context.Context, query *AgentImprovementQuery, nodes []*AgentChange, init func(*AgentChange), assign func(*AgentChange, *AgentImprovement)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*AgentChange)
	for i := range nodes {
		if nodes[i].AgentImprovementID == nil {
			continue
		}
		fk := *nodes[i].AgentImprovementID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(agentimprovement.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "agent_improvement_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *AgentChangeQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AgentChangeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(agentchange.Table, agentchange.Columns, sqlgraph.NewFieldSpec(agentchange.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentchange.FieldID)
		for i := range fields {
			if fields[i] != agentchange.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAgent != nil {
			_spec.Node.AddColumnOnce(agentchange.FieldAgentID)
		}
		if _q.withInvocation != nil {
			_spec.Node.AddColumnOnce(agentchange.FieldAgentInvocationID)
		}
		if _q.withIssue != nil {
			_spec.Node.AddColumnOnce(agentchange.FieldAgentIssueID)
		}
		if _q.withImprovement != nil {
			_spec.Node.AddColumnOnce(agentchange.FieldAgentImprovementID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AgentChangeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(agentchange.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = agentchange.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AgentChangeGroupBy is the group-by builder for AgentChange entities.
type AgentChangeGroupBy struct {
	selector
	build *AgentChangeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AgentChangeGroupBy) Aggregate(fns ...AggregateFunc) *AgentChangeGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AgentChangeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentChangeQuery, *AgentChangeGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AgentChangeGroupBy) sqlScan(ctx context.Context, root *AgentChangeQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AgentChangeSelect is the builder for selecting fields of AgentChange entities.
type AgentChangeSelect struct {
	*AgentChangeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AgentChangeSelect) Aggregate(fns ...AggregateFunc) *AgentChangeSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AgentChangeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentChangeQuery, *AgentChangeSelect](ctx, _s.AgentChangeQuery, _s, _s.inters, v)
}

func (_s *AgentChangeSelect) sqlScan(ctx context.Context, root *AgentChangeQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
