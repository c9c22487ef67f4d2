// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentchange"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/ent/predicate"
)

// AgentInvocationQuery is the builder for querying AgentInvocation entities.
type AgentInvocationQuery struct {
	config
	ctx         *QueryContext
	order       []agentinvocation.OrderOption
	inters      []Interceptor
	predicates  []predicate.AgentInvocation
	withAgent   *AgentQuery
	withIssues  *AgentIssueQuery
	withChanges *AgentChangeQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AgentInvocationQuery builder.
func (_q *AgentInvocationQuery) Where(ps ...predicate.AgentInvocation) *AgentInvocationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AgentInvocationQuery) Limit(limit int) *AgentInvocationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AgentInvocationQuery) Offset(offset int) *AgentInvocationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AgentInvocationQuery) Unique(unique bool) *AgentInvocationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AgentInvocationQuery) Order(o ...agentinvocation.OrderOption) *AgentInvocationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAgent chains the current query on the "agent" edge.
func (_q *AgentInvocationQuery) QueryAgent() *AgentQuery {
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
			sqlgraph.From(agentinvocation.Table, agentinvocation.FieldID, selector),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentinvocation.AgentTable, agentinvocation.AgentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryIssues chains the current query on the "issues" edge.
func (_q *AgentInvocationQuery) QueryIssues() *AgentIssueQuery {
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
			sqlgraph.From(agentinvocation.Table, agentinvocation.FieldID, selector),
			sqlgraph.To(agentissue.Table, agentissue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentinvocation.IssuesTable, agentinvocation.IssuesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryChanges chains the current query on the "changes" edge.
func (_q *AgentInvocationQuery) QueryChanges() *AgentChangeQuery {
	query := (&AgentChangeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentinvocation.Table, agentinvocation.FieldID, selector),
			sqlgraph.To(agentchange.Table, agentchange.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentinvocation.ChangesTable, agentinvocation.ChangesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AgentInvocation entity from the query.
// Returns a *NotFoundError when no AgentInvocation was found.
func (_q *AgentInvocationQuery) First(ctx context.Context) (*AgentInvocation, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{agentinvocation.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AgentInvocationQuery) FirstX(ctx context.Context) *AgentInvocation {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AgentInvocation ID from the query.
// Returns a *NotFoundError when no AgentInvocation ID was found.
func (_q *AgentInvocationQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{agentinvocation.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AgentInvocationQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AgentInvocation entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AgentInvocation entity is found.
// Returns a *NotFoundError when no AgentInvocation entities are found.
func (_q *AgentInvocationQuery) Only(ctx context.Context) (*AgentInvocation, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{agentinvocation.Label}
	default:
		return nil, &NotSingularError{agentinvocation.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AgentInvocationQuery) OnlyX(ctx context.Context) *AgentInvocation {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AgentInvocation ID in the query.
// Returns a *NotSingularError when more than one AgentInvocation ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AgentInvocationQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{agentinvocation.Label}
	default:
		err = &NotSingularError{agentinvocation.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AgentInvocationQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AgentInvocations.
func (_q *AgentInvocationQuery) All(ctx context.Context) ([]*AgentInvocation, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AgentInvocation, *AgentInvocationQuery]()
	return withInterceptors[[]*AgentInvocation](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AgentInvocationQuery) AllX(ctx context.Context) []*AgentInvocation {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AgentInvocation IDs.
func (_q *AgentInvocationQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(agentinvocation.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AgentInvocationQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AgentInvocationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AgentInvocationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AgentInvocationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AgentInvocationQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *AgentInvocationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AgentInvocationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AgentInvocationQuery) Clone() *AgentInvocationQuery {
	if _q == nil {
		return nil
	}
	return &AgentInvocationQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]agentinvocation.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.AgentInvocation{}, _q.predicates...),
		withAgent:   _q.withAgent.Clone(),
		withIssues:  _q.withIssues.Clone(),
		withChanges: _q.withChanges.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAgent tells the query-builder to eager-load the nodes that are connected to
// the "agent" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentInvocationQuery) WithAgent(opts ...func(*AgentQuery)) *AgentInvocationQuery {
	query := (&AgentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAgent = query
	return _q
}

// WithIssues tells the query-builder to eager-load the nodes that are connected to
// the "issues" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentInvocationQuery) WithIssues(opts ...func(*AgentIssueQuery)) *AgentInvocationQuery {
	query := (&AgentIssueClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withIssues = query
	return _q
}

// WithChanges tells the query-builder to eager-load the nodes that are connected to
// the "changes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentInvocationQuery) WithChanges(opts ...func(*AgentChangeQuery)) *AgentInvocationQuery {
	query := (&AgentChangeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChanges = query
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
//	client.AgentInvocation.Query().
//		GroupBy(agentinvocation.FieldAgentID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AgentInvocationQuery) GroupBy(field string, fields ...string) *AgentInvocationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AgentInvocationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = agentinvocation.Label
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
//	client.AgentInvocation.Query().
//		Select(agentinvocation.FieldAgentID).
//		Scan(ctx, &v)
func (_q *AgentInvocationQuery) Select(fields ...string) *AgentInvocationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AgentInvocationSelect{AgentInvocationQuery: _q}
	sbuild.label = agentinvocation.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AgentInvocationSelect configured with the given aggregations.
func (_q *AgentInvocationQuery) Aggregate(fns ...AggregateFunc) *AgentInvocationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AgentInvocationQuery) prepareQuery(ctx context.Context) error {
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
		if !agentinvocation.ValidColumn(f) {
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

func (_q *AgentInvocationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AgentInvocation, error) {
	var (
		nodes       = []*AgentInvocation{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withAgent != nil,
			_q.withIssues != nil,
			_q.withChanges != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AgentInvocation).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AgentInvocation{config: _q.config}
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
			func(n *AgentInvocation, e *Agent) { n.Edges.Agent = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withIssues; query != nil {
		if err := _q.loadIssues(ctx, query, nodes,
			func(n *AgentInvocation) { n.Edges.Issues = []*AgentIssue{} },
			func(n *AgentInvocation, e *AgentIssue) { n.Edges.Issues = append(n.Edges.Issues, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withChanges; query != nil {
		if err := _q.loadChanges(ctx, query, nodes,
			func(n *AgentInvocation) { n.Edges.Changes = []*AgentChange{} },
			func(n *AgentInvocation, e *AgentChange) { n.Edges.Changes = append(n.Edges.Changes, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AgentInvocationQuery) loadAgent(ctx context.Context, query *AgentQuery, nodes []*AgentInvocation, init func(*AgentInvocation), assign func(*AgentInvocation, *Agent)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*AgentInvocation)
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
func (_q *AgentInvocationQuery) loadIssues(ctx context.Context, query *AgentIssueQuery, nodes []*AgentInvocation, init func(*AgentInvocation), assign func(*AgentInvocation, *AgentIssue)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*AgentInvocation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agentissue.FieldAgentInvocationID)
	}
	query.Where(predicate.AgentIssue(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentinvocation.IssuesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AgentInvocationID
		if fk == nil {
			return fmt.Errorf(`foreign-key "agent_invocation_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "agent_invocation_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AgentInvocationQuery) loadChanges(ctx context.Context, query *AgentChangeQuery, nodes []*AgentInvocation, init func(*AgentInvocation), assign func(*AgentInvocation, *AgentChange)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*AgentInvocation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agentchange.FieldAgentInvocationID)
	}
	query.Where(predicate.AgentChange(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentinvocation.ChangesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AgentInvocationID
		if fk == nil {
			return fmt.Errorf(`foreign-key "agent_invocation_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "agent_invocation_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AgentInvocationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AgentInvocationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(agentinvocation.Table, agentinvocation.Columns, sqlgraph.NewFieldSpec(agentinvocation.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentinvocation.FieldID)
		for i := range fields {
			if fields[i] != agentinvocation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAgent != nil {
			_spec.Node.AddColumnOnce(agentinvocation.FieldAgentID)
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

func (_q *AgentInvocationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(agentinvocation.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = agentinvocation.Columns
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

// AgentInvocationGroupBy is the group-by builder for AgentInvocation entities.
type AgentInvocationGroupBy struct {
	selector
	build *AgentInvocationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AgentInvocationGroupBy) Aggregate(fns ...AggregateFunc) *AgentInvocationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AgentInvocationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentInvocationQuery, *AgentInvocationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AgentInvocationGroupBy) sqlScan(ctx context.Context, root *AgentInvocationQuery, v any) error {
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

// AgentInvocationSelect is the builder for selecting fields of AgentInvocation entities.
type AgentInvocationSelect struct {
	*AgentInvocationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AgentInvocationSelect) Aggregate(fns ...AggregateFunc) *AgentInvocationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AgentInvocationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentInvocationQuery, *AgentInvocationSelect](ctx, _s.AgentInvocationQuery, _s, _s.inters, v)
}

func (_s *AgentInvocationSelect) sqlScan(ctx context.Context, root *AgentInvocationQuery, v any) error {
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
