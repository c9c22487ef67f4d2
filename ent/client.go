// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/codeready-toolchain/agent-tracker/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentchange"
	"github.com/codeready-toolchain/agent-tracker/ent/agentimprovement"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// AgentChange is the client for interacting with the AgentChange builders.
	AgentChange *AgentChangeClient
	// AgentImprovement is the client for interacting with the AgentImprovement builders.
	AgentImprovement *AgentImprovementClient
	// AgentInvocation is the client for interacting with the AgentInvocation builders.
	AgentInvocation *AgentInvocationClient
	// AgentIssue is the client for interacting with the AgentIssue builders.
	AgentIssue *AgentIssueClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.AgentChange = NewAgentChangeClient(c.config)
	c.AgentImprovement = NewAgentImprovementClient(c.config)
	c.AgentInvocation = NewAgentInvocationClient(c.config)
	c.AgentIssue = NewAgentIssueClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Agent:            NewAgentClient(cfg),
		AgentChange:      NewAgentChangeClient(cfg),
		AgentImprovement: NewAgentImprovementClient(cfg),
		AgentInvocation:  NewAgentInvocationClient(cfg),
		AgentIssue:       NewAgentIssueClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Agent:            NewAgentClient(cfg),
		AgentChange:      NewAgentChangeClient(cfg),
		AgentImprovement: NewAgentImprovementClient(cfg),
		AgentInvocation:  NewAgentInvocationClient(cfg),
		AgentIssue:       NewAgentIssueClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Agent.Use(hooks...)
	c.AgentChange.Use(hooks...)
	c.AgentImprovement.Use(hooks...)
	c.AgentInvocation.Use(hooks...)
	c.AgentIssue.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Agent.Intercept(interceptors...)
	c.AgentChange.Intercept(interceptors...)
	c.AgentImprovement.Intercept(interceptors...)
	c.AgentInvocation.Intercept(interceptors...)
	c.AgentIssue.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *AgentChangeMutation:
		return c.AgentChange.mutate(ctx, m)
	case *AgentImprovementMutation:
		return c.AgentImprovement.mutate(ctx, m)
	case *AgentInvocationMutation:
		return c.AgentInvocation.mutate(ctx, m)
	case *AgentIssueMutation:
		return c.AgentIssue.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id int) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id int) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id int) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id int) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInvocations queries the invocations edge of a Agent.
func (c *AgentClient) QueryInvocations(_m *Agent) *AgentInvocationQuery {
	query := (&AgentInvocationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(agentinvocation.Table, agentinvocation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.InvocationsTable, agent.InvocationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIssues queries the issues edge of a Agent.
func (c *AgentClient) QueryIssues(_m *Agent) *AgentIssueQuery {
	query := (&AgentIssueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(agentissue.Table, agentissue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.IssuesTable, agent.IssuesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryImprovements queries the improvements edge of a Agent.
func (c *AgentClient) QueryImprovements(_m *Agent) *AgentImprovementQuery {
	query := (&AgentImprovementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(agentimprovement.Table, agentimprovement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.ImprovementsTable, agent.ImprovementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChanges queries the changes edge of a Agent.
func (c *AgentClient) QueryChanges(_m *Agent) *AgentChangeQuery {
	query := (&AgentChangeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(agentchange.Table, agentchange.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.ChangesTable, agent.ChangesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// AgentChangeClient is a client for the AgentChange schema.
type AgentChangeClient struct {
	config
}

// NewAgentChangeClient returns a client for the AgentChange from the given config.
func NewAgentChangeClient(c config) *AgentChangeClient {
	return &AgentChangeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentchange.Hooks(f(g(h())))`.
func (c *AgentChangeClient) Use(hooks ...Hook) {
	c.hooks.AgentChange = append(c.hooks.AgentChange, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentchange.Intercept(f(g(h())))`.
func (c *AgentChangeClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentChange = append(c.inters.AgentChange, interceptors...)
}

// Create returns a builder for creating a AgentChange entity.
func (c *AgentChangeClient) Create() *AgentChangeCreate {
	mutation := newAgentChangeMutation(c.config, OpCreate)
	return &AgentChangeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentChange entities.
func (c *AgentChangeClient) CreateBulk(builders ...*AgentChangeCreate) *AgentChangeCreateBulk {
	return &AgentChangeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentChangeClient) MapCreateBulk(slice any, setFunc func(*AgentChangeCreate, int)) *AgentChangeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentChangeCreateBulk{err: fmt.Errorf("calling to AgentChangeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentChangeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentChangeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentChange.
func (c *AgentChangeClient) Update() *AgentChangeUpdate {
	mutation := newAgentChangeMutation(c.config, OpUpdate)
	return &AgentChangeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentChangeClient) UpdateOne(_m *AgentChange) *AgentChangeUpdateOne {
	mutation := newAgentChangeMutation(c.config, OpUpdateOne, withAgentChange(_m))
	return &AgentChangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentChangeClient) UpdateOneID(id int) *AgentChangeUpdateOne {
	mutation := newAgentChangeMutation(c.config, OpUpdateOne, withAgentChangeID(id))
	return &AgentChangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentChange.
func (c *AgentChangeClient) Delete() *AgentChangeDelete {
	mutation := newAgentChangeMutation(c.config, OpDelete)
	return &AgentChangeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentChangeClient) DeleteOne(_m *AgentChange) *AgentChangeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentChangeClient) DeleteOneID(id int) *AgentChangeDeleteOne {
	builder := c.Delete().Where(agentchange.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentChangeDeleteOne{builder}
}

// Query returns a query builder for AgentChange.
func (c *AgentChangeClient) Query() *AgentChangeQuery {
	return &AgentChangeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentChange},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentChange entity by its id.
func (c *AgentChangeClient) Get(ctx context.Context, id int) (*AgentChange, error) {
	return c.Query().Where(agentchange.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentChangeClient) GetX(ctx context.Context, id int) *AgentChange {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a AgentChange.
func (c *AgentChangeClient) QueryAgent(_m *AgentChange) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentchange.Table, agentchange.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentchange.AgentTable, agentchange.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInvocation queries the invocation edge of a AgentChange.
func (c *AgentChangeClient) QueryInvocation(_m *AgentChange) *AgentInvocationQuery {
	query := (&AgentInvocationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentchange.Table, agentchange.FieldID, id),
			sqlgraph.To(agentinvocation.Table, agentinvocation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentchange.InvocationTable, agentchange.InvocationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIssue queries the issue edge of a AgentChange.
func (c *AgentChangeClient) QueryIssue(_m *AgentChange) *AgentIssueQuery {
	query := (&AgentIssueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentchange.Table, agentchange.FieldID, id),
			sqlgraph.To(agentissue.Table, agentissue.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentchange.IssueTable, agentchange.IssueColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryImprovement queries the improvement edge of a AgentChange.
func (c *AgentChangeClient) QueryImprovement(_m *AgentChange) *AgentImprovementQuery {
	query := (&AgentImprovementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentchange.Table, agentchange.FieldID, id),
			sqlgraph.To(agentimprovement.Table, agentimprovement.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentchange.ImprovementTable, agentchange.ImprovementColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentChangeClient) Hooks() []Hook {
	return c.hooks.AgentChange
}

// Interceptors returns the client interceptors.
func (c *AgentChangeClient) Interceptors() []Interceptor {
	return c.inters.AgentChange
}

func (c *AgentChangeClient) mutate(ctx context.Context, m *AgentChangeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentChangeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentChangeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentChangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentChangeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentChange mutation op: %q", m.Op())
	}
}

// AgentImprovementClient is a client for the AgentImprovement schema.
type AgentImprovementClient struct {
	config
}

// NewAgentImprovementClient returns a client for the AgentImprovement from the given config.
func NewAgentImprovementClient(c config) *AgentImprovementClient {
	return &AgentImprovementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentimprovement.Hooks(f(g(h())))`.
func (c *AgentImprovementClient) Use(hooks ...Hook) {
	c.hooks.AgentImprovement = append(c.hooks.AgentImprovement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentimprovement.Intercept(f(g(h())))`.
func (c *AgentImprovementClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentImprovement = append(c.inters.AgentImprovement, interceptors...)
}

// Create returns a builder for creating a AgentImprovement entity.
func (c *AgentImprovementClient) Create() *AgentImprovementCreate {
	mutation := newAgentImprovementMutation(c.config, OpCreate)
	return &AgentImprovementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentImprovement entities.
func (c *AgentImprovementClient) CreateBulk(builders ...*AgentImprovementCreate) *AgentImprovementCreateBulk {
	return &AgentImprovementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentImprovementClient) MapCreateBulk(slice any, setFunc func(*AgentImprovementCreate, int)) *AgentImprovementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentImprovementCreateBulk{err: fmt.Errorf("calling to AgentImprovementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentImprovementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentImprovementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentImprovement.
func (c *AgentImprovementClient) Update() *AgentImprovementUpdate {
	mutation := newAgentImprovementMutation(c.config, OpUpdate)
	return &AgentImprovementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentImprovementClient) UpdateOne(_m *AgentImprovement) *AgentImprovementUpdateOne {
	mutation := newAgentImprovementMutation(c.config, OpUpdateOne, withAgentImprovement(_m))
	return &AgentImprovementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentImprovementClient) UpdateOneID(id int) *AgentImprovementUpdateOne {
	mutation := newAgentImprovementMutation(c.config, OpUpdateOne, withAgentImprovementID(id))
	return &AgentImprovementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentImprovement.
func (c *AgentImprovementClient) Delete() *AgentImprovementDelete {
	mutation := newAgentImprovementMutation(c.config, OpDelete)
	return &AgentImprovementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentImprovementClient) DeleteOne(_m *AgentImprovement) *AgentImprovementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentImprovementClient) DeleteOneID(id int) *AgentImprovementDeleteOne {
	builder := c.Delete().Where(agentimprovement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentImprovementDeleteOne{builder}
}

// Query returns a query builder for AgentImprovement.
func (c *AgentImprovementClient) Query() *AgentImprovementQuery {
	return &AgentImprovementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentImprovement},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentImprovement entity by its id.
func (c *AgentImprovementClient) Get(ctx context.Context, id int) (*AgentImprovement, error) {
	return c.Query().Where(agentimprovement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentImprovementClient) GetX(ctx context.Context, id int) *AgentImprovement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a AgentImprovement.
func (c *AgentImprovementClient) QueryAgent(_m *AgentImprovement) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentimprovement.Table, agentimprovement.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentimprovement.AgentTable, agentimprovement.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChanges queries the changes edge of a AgentImprovement.
func (c *AgentImprovementClient) QueryChanges(_m *AgentImprovement) *AgentChangeQuery {
	query := (&AgentChangeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentimprovement.Table, agentimprovement.FieldID, id),
			sqlgraph.To(agentchange.Table, agentchange.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentimprovement.ChangesTable, agentimprovement.ChangesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentImprovementClient) Hooks() []Hook {
	return c.hooks.AgentImprovement
}

// Interceptors returns the client interceptors.
func (c *AgentImprovementClient) Interceptors() []Interceptor {
	return c.inters.AgentImprovement
}

func (c *AgentImprovementClient) mutate(ctx context.Context, m *AgentImprovementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentImprovementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentImprovementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentImprovementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentImprovementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentImprovement mutation op: %q", m.Op())
	}
}

// AgentInvocationClient is a client for the AgentInvocation schema.
type AgentInvocationClient struct {
	config
}

// NewAgentInvocationClient returns a client for the AgentInvocation from the given config.
func NewAgentInvocationClient(c config) *AgentInvocationClient {
	return &AgentInvocationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentinvocation.Hooks(f(g(h())))`.
func (c *AgentInvocationClient) Use(hooks ...Hook) {
	c.hooks.AgentInvocation = append(c.hooks.AgentInvocation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentinvocation.Intercept(f(g(h())))`.
func (c *AgentInvocationClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentInvocation = append(c.inters.AgentInvocation, interceptors...)
}

// Create returns a builder for creating a AgentInvocation entity.
func (c *AgentInvocationClient) Create() *AgentInvocationCreate {
	mutation := newAgentInvocationMutation(c.config, OpCreate)
	return &AgentInvocationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentInvocation entities.
func (c *AgentInvocationClient) CreateBulk(builders ...*AgentInvocationCreate) *AgentInvocationCreateBulk {
	return &AgentInvocationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentInvocationClient) MapCreateBulk(slice any, setFunc func(*AgentInvocationCreate, int)) *AgentInvocationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentInvocationCreateBulk{err: fmt.Errorf("calling to AgentInvocationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentInvocationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentInvocationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentInvocation.
func (c *AgentInvocationClient) Update() *AgentInvocationUpdate {
	mutation := newAgentInvocationMutation(c.config, OpUpdate)
	return &AgentInvocationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentInvocationClient) UpdateOne(_m *AgentInvocation) *AgentInvocationUpdateOne {
	mutation := newAgentInvocationMutation(c.config, OpUpdateOne, withAgentInvocation(_m))
	return &AgentInvocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentInvocationClient) UpdateOneID(id int) *AgentInvocationUpdateOne {
	mutation := newAgentInvocationMutation(c.config, OpUpdateOne, withAgentInvocationID(id))
	return &AgentInvocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentInvocation.
func (c *AgentInvocationClient) Delete() *AgentInvocationDelete {
	mutation := newAgentInvocationMutation(c.config, OpDelete)
	return &AgentInvocationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentInvocationClient) DeleteOne(_m *AgentInvocation) *AgentInvocationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentInvocationClient) DeleteOneID(id int) *AgentInvocationDeleteOne {
	builder := c.Delete().Where(agentinvocation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentInvocationDeleteOne{builder}
}

// Query returns a query builder for AgentInvocation.
func (c *AgentInvocationClient) Query() *AgentInvocationQuery {
	return &AgentInvocationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentInvocation},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentInvocation entity by its id.
func (c *AgentInvocationClient) Get(ctx context.Context, id int) (*AgentInvocation, error) {
	return c.Query().Where(agentinvocation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentInvocationClient) GetX(ctx context.Context, id int) *AgentInvocation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a AgentInvocation.
func (c *AgentInvocationClient) QueryAgent(_m *AgentInvocation) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentinvocation.Table, agentinvocation.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentinvocation.AgentTable, agentinvocation.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIssues queries the issues edge of a AgentInvocation.
func (c *AgentInvocationClient) QueryIssues(_m *AgentInvocation) *AgentIssueQuery {
	query := (&AgentIssueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentinvocation.Table, agentinvocation.FieldID, id),
			sqlgraph.To(agentissue.Table, agentissue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentinvocation.IssuesTable, agentinvocation.IssuesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChanges queries the changes edge of a AgentInvocation.
func (c *AgentInvocationClient) QueryChanges(_m *AgentInvocation) *AgentChangeQuery {
	query := (&AgentChangeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentinvocation.Table, agentinvocation.FieldID, id),
			sqlgraph.To(agentchange.Table, agentchange.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentinvocation.ChangesTable, agentinvocation.ChangesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentInvocationClient) Hooks() []Hook {
	return c.hooks.AgentInvocation
}

// Interceptors returns the client interceptors.
func (c *AgentInvocationClient) Interceptors() []Interceptor {
	return c.inters.AgentInvocation
}

func (c *AgentInvocationClient) mutate(ctx context.Context, m *AgentInvocationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentInvocationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentInvocationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentInvocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentInvocationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentInvocation mutation op: %q", m.Op())
	}
}

// AgentIssueClient is a client for the AgentIssue schema.
type AgentIssueClient struct {
	config
}

// NewAgentIssueClient returns a client for the AgentIssue from the given config.
func NewAgentIssueClient(c config) *AgentIssueClient {
	return &AgentIssueClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentissue.Hooks(f(g(h())))`.
func (c *AgentIssueClient) Use(hooks ...Hook) {
	c.hooks.AgentIssue = append(c.hooks.AgentIssue, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentissue.Intercept(f(g(h())))`.
func (c *AgentIssueClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentIssue = append(c.inters.AgentIssue, interceptors...)
}

// Create returns a builder for creating a AgentIssue entity.
func (c *AgentIssueClient) Create() *AgentIssueCreate {
	mutation := newAgentIssueMutation(c.config, OpCreate)
	return &AgentIssueCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentIssue entities.
func (c *AgentIssueClient) CreateBulk(builders ...*AgentIssueCreate) *AgentIssueCreateBulk {
	return &AgentIssueCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentIssueClient) MapCreateBulk(slice any, setFunc func(*AgentIssueCreate, int)) *AgentIssueCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentIssueCreateBulk{err: fmt.Errorf("calling to AgentIssueClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentIssueCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentIssueCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentIssue.
func (c *AgentIssueClient) Update() *AgentIssueUpdate {
	mutation := newAgentIssueMutation(c.config, OpUpdate)
	return &AgentIssueUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentIssueClient) UpdateOne(_m *AgentIssue) *AgentIssueUpdateOne {
	mutation := newAgentIssueMutation(c.config, OpUpdateOne, withAgentIssue(_m))
	return &AgentIssueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentIssueClient) UpdateOneID(id int) *AgentIssueUpdateOne {
	mutation := newAgentIssueMutation(c.config, OpUpdateOne, withAgentIssueID(id))
	return &AgentIssueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentIssue.
func (c *AgentIssueClient) Delete() *AgentIssueDelete {
	mutation := newAgentIssueMutation(c.config, OpDelete)
	return &AgentIssueDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentIssueClient) DeleteOne(_m *AgentIssue) *AgentIssueDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentIssueClient) DeleteOneID(id int) *AgentIssueDeleteOne {
	builder := c.Delete().Where(agentissue.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentIssueDeleteOne{builder}
}

// Query returns a query builder for AgentIssue.
func (c *AgentIssueClient) Query() *AgentIssueQuery {
	return &AgentIssueQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentIssue},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentIssue entity by its id.
func (c *AgentIssueClient) Get(ctx context.Context, id int) (*AgentIssue, error) {
	return c.Query().Where(agentissue.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentIssueClient) GetX(ctx context.Context, id int) *AgentIssue {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a AgentIssue.
func (c *AgentIssueClient) QueryAgent(_m *AgentIssue) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentissue.Table, agentissue.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentissue.AgentTable, agentissue.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInvocation queries the invocation edge of a AgentIssue.
func (c *AgentIssueClient) QueryInvocation(_m *AgentIssue) *AgentInvocationQuery {
	query := (&AgentInvocationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentissue.Table, agentissue.FieldID, id),
			sqlgraph.To(agentinvocation.Table, agentinvocation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentissue.InvocationTable, agentissue.InvocationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChanges queries the changes edge of a AgentIssue.
func (c *AgentIssueClient) QueryChanges(_m *AgentIssue) *AgentChangeQuery {
	query := (&AgentChangeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentissue.Table, agentissue.FieldID, id),
			sqlgraph.To(agentchange.Table, agentchange.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentissue.ChangesTable, agentissue.ChangesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentIssueClient) Hooks() []Hook {
	return c.hooks.AgentIssue
}

// Interceptors returns the client interceptors.
func (c *AgentIssueClient) Interceptors() []Interceptor {
	return c.inters.AgentIssue
}

func (c *AgentIssueClient) mutate(ctx context.Context, m *AgentIssueMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentIssueCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentIssueUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentIssueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentIssueDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentIssue mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, AgentChange, AgentImprovement, AgentInvocation, AgentIssue []ent.Hook
	}
	inters struct {
		Agent, AgentChange, AgentImprovement, AgentInvocation,
		AgentIssue []ent.Interceptor
	}
)
