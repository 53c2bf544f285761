// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/codeready-toolchain/maestro/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/maestro/ent/agentspec"
	"github.com/codeready-toolchain/maestro/ent/approvalrequest"
	"github.com/codeready-toolchain/maestro/ent/checkpoint"
	"github.com/codeready-toolchain/maestro/ent/executionevent"
	"github.com/codeready-toolchain/maestro/ent/learningpattern"
	"github.com/codeready-toolchain/maestro/ent/modelendpoint"
	"github.com/codeready-toolchain/maestro/ent/plan"
	"github.com/codeready-toolchain/maestro/ent/prompt"
	"github.com/codeready-toolchain/maestro/ent/promptassignment"
	"github.com/codeready-toolchain/maestro/ent/queuetask"
	"github.com/codeready-toolchain/maestro/ent/step"
	"github.com/codeready-toolchain/maestro/ent/toolspec"
	"github.com/codeready-toolchain/maestro/ent/workflow"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentSpec is the client for interacting with the AgentSpec builders.
	AgentSpec *AgentSpecClient
	// ApprovalRequest is the client for interacting with the ApprovalRequest builders.
	ApprovalRequest *ApprovalRequestClient
	// Checkpoint is the client for interacting with the Checkpoint builders.
	Checkpoint *CheckpointClient
	// ExecutionEvent is the client for interacting with the ExecutionEvent builders.
	ExecutionEvent *ExecutionEventClient
	// LearningPattern is the client for interacting with the LearningPattern builders.
	LearningPattern *LearningPatternClient
	// ModelEndpoint is the client for interacting with the ModelEndpoint builders.
	ModelEndpoint *ModelEndpointClient
	// Plan is the client for interacting with the Plan builders.
	Plan *PlanClient
	// Prompt is the client for interacting with the Prompt builders.
	Prompt *PromptClient
	// PromptAssignment is the client for interacting with the PromptAssignment builders.
	PromptAssignment *PromptAssignmentClient
	// QueueTask is the client for interacting with the QueueTask builders.
	QueueTask *QueueTaskClient
	// Step is the client for interacting with the Step builders.
	Step *StepClient
	// ToolSpec is the client for interacting with the ToolSpec builders.
	ToolSpec *ToolSpecClient
	// Workflow is the client for interacting with the Workflow builders.
	Workflow *WorkflowClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentSpec = NewAgentSpecClient(c.config)
	c.ApprovalRequest = NewApprovalRequestClient(c.config)
	c.Checkpoint = NewCheckpointClient(c.config)
	c.ExecutionEvent = NewExecutionEventClient(c.config)
	c.LearningPattern = NewLearningPatternClient(c.config)
	c.ModelEndpoint = NewModelEndpointClient(c.config)
	c.Plan = NewPlanClient(c.config)
	c.Prompt = NewPromptClient(c.config)
	c.PromptAssignment = NewPromptAssignmentClient(c.config)
	c.QueueTask = NewQueueTaskClient(c.config)
	c.Step = NewStepClient(c.config)
	c.ToolSpec = NewToolSpecClient(c.config)
	c.Workflow = NewWorkflowClient(c.config)
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
		AgentSpec:        NewAgentSpecClient(cfg),
		ApprovalRequest:  NewApprovalRequestClient(cfg),
		Checkpoint:       NewCheckpointClient(cfg),
		ExecutionEvent:   NewExecutionEventClient(cfg),
		LearningPattern:  NewLearningPatternClient(cfg),
		ModelEndpoint:    NewModelEndpointClient(cfg),
		Plan:             NewPlanClient(cfg),
		Prompt:           NewPromptClient(cfg),
		PromptAssignment: NewPromptAssignmentClient(cfg),
		QueueTask:        NewQueueTaskClient(cfg),
		Step:             NewStepClient(cfg),
		ToolSpec:         NewToolSpecClient(cfg),
		Workflow:         NewWorkflowClient(cfg),
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
		AgentSpec:        NewAgentSpecClient(cfg),
		ApprovalRequest:  NewApprovalRequestClient(cfg),
		Checkpoint:       NewCheckpointClient(cfg),
		ExecutionEvent:   NewExecutionEventClient(cfg),
		LearningPattern:  NewLearningPatternClient(cfg),
		ModelEndpoint:    NewModelEndpointClient(cfg),
		Plan:             NewPlanClient(cfg),
		Prompt:           NewPromptClient(cfg),
		PromptAssignment: NewPromptAssignmentClient(cfg),
		QueueTask:        NewQueueTaskClient(cfg),
		Step:             NewStepClient(cfg),
		ToolSpec:         NewToolSpecClient(cfg),
		Workflow:         NewWorkflowClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentSpec.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentSpec, c.ApprovalRequest, c.Checkpoint, c.ExecutionEvent,
		c.LearningPattern, c.ModelEndpoint, c.Plan, c.Prompt, c.PromptAssignment,
		c.QueueTask, c.Step, c.ToolSpec, c.Workflow,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentSpec, c.ApprovalRequest, c.Checkpoint, c.ExecutionEvent,
		c.LearningPattern, c.ModelEndpoint, c.Plan, c.Prompt, c.PromptAssignment,
		c.QueueTask, c.Step, c.ToolSpec, c.Workflow,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentSpecMutation:
		return c.AgentSpec.mutate(ctx, m)
	case *ApprovalRequestMutation:
		return c.ApprovalRequest.mutate(ctx, m)
	case *CheckpointMutation:
		return c.Checkpoint.mutate(ctx, m)
	case *ExecutionEventMutation:
		return c.ExecutionEvent.mutate(ctx, m)
	case *LearningPatternMutation:
		return c.LearningPattern.mutate(ctx, m)
	case *ModelEndpointMutation:
		return c.ModelEndpoint.mutate(ctx, m)
	case *PlanMutation:
		return c.Plan.mutate(ctx, m)
	case *PromptMutation:
		return c.Prompt.mutate(ctx, m)
	case *PromptAssignmentMutation:
		return c.PromptAssignment.mutate(ctx, m)
	case *QueueTaskMutation:
		return c.QueueTask.mutate(ctx, m)
	case *StepMutation:
		return c.Step.mutate(ctx, m)
	case *ToolSpecMutation:
		return c.ToolSpec.mutate(ctx, m)
	case *WorkflowMutation:
		return c.Workflow.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentSpecClient is a client for the AgentSpec schema.
type AgentSpecClient struct {
	config
}

// NewAgentSpecClient returns a client for the AgentSpec from the given config.
func NewAgentSpecClient(c config) *AgentSpecClient {
	return &AgentSpecClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentspec.Hooks(f(g(h())))`.
func (c *AgentSpecClient) Use(hooks ...Hook) {
	c.hooks.AgentSpec = append(c.hooks.AgentSpec, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentspec.Intercept(f(g(h())))`.
func (c *AgentSpecClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentSpec = append(c.inters.AgentSpec, interceptors...)
}

// Create returns a builder for creating a AgentSpec entity.
func (c *AgentSpecClient) Create() *AgentSpecCreate {
	mutation := newAgentSpecMutation(c.config, OpCreate)
	return &AgentSpecCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentSpec entities.
func (c *AgentSpecClient) CreateBulk(builders ...*AgentSpecCreate) *AgentSpecCreateBulk {
	return &AgentSpecCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentSpecClient) MapCreateBulk(slice any, setFunc func(*AgentSpecCreate, int)) *AgentSpecCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentSpecCreateBulk{err: fmt.Errorf("calling to AgentSpecClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentSpecCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentSpecCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentSpec.
func (c *AgentSpecClient) Update() *AgentSpecUpdate {
	mutation := newAgentSpecMutation(c.config, OpUpdate)
	return &AgentSpecUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentSpecClient) UpdateOne(_m *AgentSpec) *AgentSpecUpdateOne {
	mutation := newAgentSpecMutation(c.config, OpUpdateOne, withAgentSpec(_m))
	return &AgentSpecUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentSpecClient) UpdateOneID(id string) *AgentSpecUpdateOne {
	mutation := newAgentSpecMutation(c.config, OpUpdateOne, withAgentSpecID(id))
	return &AgentSpecUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentSpec.
func (c *AgentSpecClient) Delete() *AgentSpecDelete {
	mutation := newAgentSpecMutation(c.config, OpDelete)
	return &AgentSpecDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentSpecClient) DeleteOne(_m *AgentSpec) *AgentSpecDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentSpecClient) DeleteOneID(id string) *AgentSpecDeleteOne {
	builder := c.Delete().Where(agentspec.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentSpecDeleteOne{builder}
}

// Query returns a query builder for AgentSpec.
func (c *AgentSpecClient) Query() *AgentSpecQuery {
	return &AgentSpecQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentSpec},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentSpec entity by its id.
func (c *AgentSpecClient) Get(ctx context.Context, id string) (*AgentSpec, error) {
	return c.Query().Where(agentspec.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentSpecClient) GetX(ctx context.Context, id string) *AgentSpec {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentSpecClient) Hooks() []Hook {
	return c.hooks.AgentSpec
}

// Interceptors returns the client interceptors.
func (c *AgentSpecClient) Interceptors() []Interceptor {
	return c.inters.AgentSpec
}

func (c *AgentSpecClient) mutate(ctx context.Context, m *AgentSpecMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentSpecCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentSpecUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentSpecUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentSpecDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentSpec mutation op: %q", m.Op())
	}
}

// ApprovalRequestClient is a client for the ApprovalRequest schema.
type ApprovalRequestClient struct {
	config
}

// NewApprovalRequestClient returns a client for the ApprovalRequest from the given config.
func NewApprovalRequestClient(c config) *ApprovalRequestClient {
	return &ApprovalRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approvalrequest.Hooks(f(g(h())))`.
func (c *ApprovalRequestClient) Use(hooks ...Hook) {
	c.hooks.ApprovalRequest = append(c.hooks.ApprovalRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approvalrequest.Intercept(f(g(h())))`.
func (c *ApprovalRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApprovalRequest = append(c.inters.ApprovalRequest, interceptors...)
}

// Create returns a builder for creating a ApprovalRequest entity.
func (c *ApprovalRequestClient) Create() *ApprovalRequestCreate {
	mutation := newApprovalRequestMutation(c.config, OpCreate)
	return &ApprovalRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApprovalRequest entities.
func (c *ApprovalRequestClient) CreateBulk(builders ...*ApprovalRequestCreate) *ApprovalRequestCreateBulk {
	return &ApprovalRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalRequestClient) MapCreateBulk(slice any, setFunc func(*ApprovalRequestCreate, int)) *ApprovalRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalRequestCreateBulk{err: fmt.Errorf("calling to ApprovalRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApprovalRequest.
func (c *ApprovalRequestClient) Update() *ApprovalRequestUpdate {
	mutation := newApprovalRequestMutation(c.config, OpUpdate)
	return &ApprovalRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalRequestClient) UpdateOne(_m *ApprovalRequest) *ApprovalRequestUpdateOne {
	mutation := newApprovalRequestMutation(c.config, OpUpdateOne, withApprovalRequest(_m))
	return &ApprovalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalRequestClient) UpdateOneID(id string) *ApprovalRequestUpdateOne {
	mutation := newApprovalRequestMutation(c.config, OpUpdateOne, withApprovalRequestID(id))
	return &ApprovalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApprovalRequest.
func (c *ApprovalRequestClient) Delete() *ApprovalRequestDelete {
	mutation := newApprovalRequestMutation(c.config, OpDelete)
	return &ApprovalRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalRequestClient) DeleteOne(_m *ApprovalRequest) *ApprovalRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalRequestClient) DeleteOneID(id string) *ApprovalRequestDeleteOne {
	builder := c.Delete().Where(approvalrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalRequestDeleteOne{builder}
}

// Query returns a query builder for ApprovalRequest.
func (c *ApprovalRequestClient) Query() *ApprovalRequestQuery {
	return &ApprovalRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApprovalRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a ApprovalRequest entity by its id.
func (c *ApprovalRequestClient) Get(ctx context.Context, id string) (*ApprovalRequest, error) {
	return c.Query().Where(approvalrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalRequestClient) GetX(ctx context.Context, id string) *ApprovalRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a ApprovalRequest.
func (c *ApprovalRequestClient) QueryWorkflow(_m *ApprovalRequest) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(approvalrequest.Table, approvalrequest.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, approvalrequest.WorkflowTable, approvalrequest.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApprovalRequestClient) Hooks() []Hook {
	return c.hooks.ApprovalRequest
}

// Interceptors returns the client interceptors.
func (c *ApprovalRequestClient) Interceptors() []Interceptor {
	return c.inters.ApprovalRequest
}

func (c *ApprovalRequestClient) mutate(ctx context.Context, m *ApprovalRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApprovalRequest mutation op: %q", m.Op())
	}
}

// CheckpointClient is a client for the Checkpoint schema.
type CheckpointClient struct {
	config
}

// NewCheckpointClient returns a client for the Checkpoint from the given config.
func NewCheckpointClient(c config) *CheckpointClient {
	return &CheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkpoint.Hooks(f(g(h())))`.
func (c *CheckpointClient) Use(hooks ...Hook) {
	c.hooks.Checkpoint = append(c.hooks.Checkpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkpoint.Intercept(f(g(h())))`.
func (c *CheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.Checkpoint = append(c.inters.Checkpoint, interceptors...)
}

// Create returns a builder for creating a Checkpoint entity.
func (c *CheckpointClient) Create() *CheckpointCreate {
	mutation := newCheckpointMutation(c.config, OpCreate)
	return &CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Checkpoint entities.
func (c *CheckpointClient) CreateBulk(builders ...*CheckpointCreate) *CheckpointCreateBulk {
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckpointClient) MapCreateBulk(slice any, setFunc func(*CheckpointCreate, int)) *CheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckpointCreateBulk{err: fmt.Errorf("calling to CheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Checkpoint.
func (c *CheckpointClient) Update() *CheckpointUpdate {
	mutation := newCheckpointMutation(c.config, OpUpdate)
	return &CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckpointClient) UpdateOne(_m *Checkpoint) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpoint(_m))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckpointClient) UpdateOneID(id string) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpointID(id))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Checkpoint.
func (c *CheckpointClient) Delete() *CheckpointDelete {
	mutation := newCheckpointMutation(c.config, OpDelete)
	return &CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckpointClient) DeleteOne(_m *Checkpoint) *CheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckpointClient) DeleteOneID(id string) *CheckpointDeleteOne {
	builder := c.Delete().Where(checkpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckpointDeleteOne{builder}
}

// Query returns a query builder for Checkpoint.
func (c *CheckpointClient) Query() *CheckpointQuery {
	return &CheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a Checkpoint entity by its id.
func (c *CheckpointClient) Get(ctx context.Context, id string) (*Checkpoint, error) {
	return c.Query().Where(checkpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckpointClient) GetX(ctx context.Context, id string) *Checkpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CheckpointClient) Hooks() []Hook {
	return c.hooks.Checkpoint
}

// Interceptors returns the client interceptors.
func (c *CheckpointClient) Interceptors() []Interceptor {
	return c.inters.Checkpoint
}

func (c *CheckpointClient) mutate(ctx context.Context, m *CheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Checkpoint mutation op: %q", m.Op())
	}
}

// ExecutionEventClient is a client for the ExecutionEvent schema.
type ExecutionEventClient struct {
	config
}

// NewExecutionEventClient returns a client for the ExecutionEvent from the given config.
func NewExecutionEventClient(c config) *ExecutionEventClient {
	return &ExecutionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executionevent.Hooks(f(g(h())))`.
func (c *ExecutionEventClient) Use(hooks ...Hook) {
	c.hooks.ExecutionEvent = append(c.hooks.ExecutionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executionevent.Intercept(f(g(h())))`.
func (c *ExecutionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutionEvent = append(c.inters.ExecutionEvent, interceptors...)
}

// Create returns a builder for creating a ExecutionEvent entity.
func (c *ExecutionEventClient) Create() *ExecutionEventCreate {
	mutation := newExecutionEventMutation(c.config, OpCreate)
	return &ExecutionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutionEvent entities.
func (c *ExecutionEventClient) CreateBulk(builders ...*ExecutionEventCreate) *ExecutionEventCreateBulk {
	return &ExecutionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionEventClient) MapCreateBulk(slice any, setFunc func(*ExecutionEventCreate, int)) *ExecutionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionEventCreateBulk{err: fmt.Errorf("calling to ExecutionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutionEvent.
func (c *ExecutionEventClient) Update() *ExecutionEventUpdate {
	mutation := newExecutionEventMutation(c.config, OpUpdate)
	return &ExecutionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionEventClient) UpdateOne(_m *ExecutionEvent) *ExecutionEventUpdateOne {
	mutation := newExecutionEventMutation(c.config, OpUpdateOne, withExecutionEvent(_m))
	return &ExecutionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionEventClient) UpdateOneID(id string) *ExecutionEventUpdateOne {
	mutation := newExecutionEventMutation(c.config, OpUpdateOne, withExecutionEventID(id))
	return &ExecutionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutionEvent.
func (c *ExecutionEventClient) Delete() *ExecutionEventDelete {
	mutation := newExecutionEventMutation(c.config, OpDelete)
	return &ExecutionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionEventClient) DeleteOne(_m *ExecutionEvent) *ExecutionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionEventClient) DeleteOneID(id string) *ExecutionEventDeleteOne {
	builder := c.Delete().Where(executionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionEventDeleteOne{builder}
}

// Query returns a query builder for ExecutionEvent.
func (c *ExecutionEventClient) Query() *ExecutionEventQuery {
	return &ExecutionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutionEvent entity by its id.
func (c *ExecutionEventClient) Get(ctx context.Context, id string) (*ExecutionEvent, error) {
	return c.Query().Where(executionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionEventClient) GetX(ctx context.Context, id string) *ExecutionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a ExecutionEvent.
func (c *ExecutionEventClient) QueryWorkflow(_m *ExecutionEvent) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executionevent.Table, executionevent.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executionevent.WorkflowTable, executionevent.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionEventClient) Hooks() []Hook {
	return c.hooks.ExecutionEvent
}

// Interceptors returns the client interceptors.
func (c *ExecutionEventClient) Interceptors() []Interceptor {
	return c.inters.ExecutionEvent
}

func (c *ExecutionEventClient) mutate(ctx context.Context, m *ExecutionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutionEvent mutation op: %q", m.Op())
	}
}

// LearningPatternClient is a client for the LearningPattern schema.
type LearningPatternClient struct {
	config
}

// NewLearningPatternClient returns a client for the LearningPattern from the given config.
func NewLearningPatternClient(c config) *LearningPatternClient {
	return &LearningPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningpattern.Hooks(f(g(h())))`.
func (c *LearningPatternClient) Use(hooks ...Hook) {
	c.hooks.LearningPattern = append(c.hooks.LearningPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningpattern.Intercept(f(g(h())))`.
func (c *LearningPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningPattern = append(c.inters.LearningPattern, interceptors...)
}

// Create returns a builder for creating a LearningPattern entity.
func (c *LearningPatternClient) Create() *LearningPatternCreate {
	mutation := newLearningPatternMutation(c.config, OpCreate)
	return &LearningPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningPattern entities.
func (c *LearningPatternClient) CreateBulk(builders ...*LearningPatternCreate) *LearningPatternCreateBulk {
	return &LearningPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningPatternClient) MapCreateBulk(slice any, setFunc func(*LearningPatternCreate, int)) *LearningPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningPatternCreateBulk{err: fmt.Errorf("calling to LearningPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningPattern.
func (c *LearningPatternClient) Update() *LearningPatternUpdate {
	mutation := newLearningPatternMutation(c.config, OpUpdate)
	return &LearningPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningPatternClient) UpdateOne(_m *LearningPattern) *LearningPatternUpdateOne {
	mutation := newLearningPatternMutation(c.config, OpUpdateOne, withLearningPattern(_m))
	return &LearningPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningPatternClient) UpdateOneID(id string) *LearningPatternUpdateOne {
	mutation := newLearningPatternMutation(c.config, OpUpdateOne, withLearningPatternID(id))
	return &LearningPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningPattern.
func (c *LearningPatternClient) Delete() *LearningPatternDelete {
	mutation := newLearningPatternMutation(c.config, OpDelete)
	return &LearningPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningPatternClient) DeleteOne(_m *LearningPattern) *LearningPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningPatternClient) DeleteOneID(id string) *LearningPatternDeleteOne {
	builder := c.Delete().Where(learningpattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningPatternDeleteOne{builder}
}

// Query returns a query builder for LearningPattern.
func (c *LearningPatternClient) Query() *LearningPatternQuery {
	return &LearningPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningPattern entity by its id.
func (c *LearningPatternClient) Get(ctx context.Context, id string) (*LearningPattern, error) {
	return c.Query().Where(learningpattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningPatternClient) GetX(ctx context.Context, id string) *LearningPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearningPatternClient) Hooks() []Hook {
	return c.hooks.LearningPattern
}

// Interceptors returns the client interceptors.
func (c *LearningPatternClient) Interceptors() []Interceptor {
	return c.inters.LearningPattern
}

func (c *LearningPatternClient) mutate(ctx context.Context, m *LearningPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningPattern mutation op: %q", m.Op())
	}
}

// ModelEndpointClient is a client for the ModelEndpoint schema.
type ModelEndpointClient struct {
	config
}

// NewModelEndpointClient returns a client for the ModelEndpoint from the given config.
func NewModelEndpointClient(c config) *ModelEndpointClient {
	return &ModelEndpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modelendpoint.Hooks(f(g(h())))`.
func (c *ModelEndpointClient) Use(hooks ...Hook) {
	c.hooks.ModelEndpoint = append(c.hooks.ModelEndpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modelendpoint.Intercept(f(g(h())))`.
func (c *ModelEndpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelEndpoint = append(c.inters.ModelEndpoint, interceptors...)
}

// Create returns a builder for creating a ModelEndpoint entity.
func (c *ModelEndpointClient) Create() *ModelEndpointCreate {
	mutation := newModelEndpointMutation(c.config, OpCreate)
	return &ModelEndpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelEndpoint entities.
func (c *ModelEndpointClient) CreateBulk(builders ...*ModelEndpointCreate) *ModelEndpointCreateBulk {
	return &ModelEndpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelEndpointClient) MapCreateBulk(slice any, setFunc func(*ModelEndpointCreate, int)) *ModelEndpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelEndpointCreateBulk{err: fmt.Errorf("calling to ModelEndpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelEndpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelEndpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelEndpoint.
func (c *ModelEndpointClient) Update() *ModelEndpointUpdate {
	mutation := newModelEndpointMutation(c.config, OpUpdate)
	return &ModelEndpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelEndpointClient) UpdateOne(_m *ModelEndpoint) *ModelEndpointUpdateOne {
	mutation := newModelEndpointMutation(c.config, OpUpdateOne, withModelEndpoint(_m))
	return &ModelEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelEndpointClient) UpdateOneID(id string) *ModelEndpointUpdateOne {
	mutation := newModelEndpointMutation(c.config, OpUpdateOne, withModelEndpointID(id))
	return &ModelEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelEndpoint.
func (c *ModelEndpointClient) Delete() *ModelEndpointDelete {
	mutation := newModelEndpointMutation(c.config, OpDelete)
	return &ModelEndpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelEndpointClient) DeleteOne(_m *ModelEndpoint) *ModelEndpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelEndpointClient) DeleteOneID(id string) *ModelEndpointDeleteOne {
	builder := c.Delete().Where(modelendpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelEndpointDeleteOne{builder}
}

// Query returns a query builder for ModelEndpoint.
func (c *ModelEndpointClient) Query() *ModelEndpointQuery {
	return &ModelEndpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelEndpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelEndpoint entity by its id.
func (c *ModelEndpointClient) Get(ctx context.Context, id string) (*ModelEndpoint, error) {
	return c.Query().Where(modelendpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelEndpointClient) GetX(ctx context.Context, id string) *ModelEndpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModelEndpointClient) Hooks() []Hook {
	return c.hooks.ModelEndpoint
}

// Interceptors returns the client interceptors.
func (c *ModelEndpointClient) Interceptors() []Interceptor {
	return c.inters.ModelEndpoint
}

func (c *ModelEndpointClient) mutate(ctx context.Context, m *ModelEndpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelEndpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelEndpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelEndpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelEndpoint mutation op: %q", m.Op())
	}
}

// PlanClient is a client for the Plan schema.
type PlanClient struct {
	config
}

// NewPlanClient returns a client for the Plan from the given config.
func NewPlanClient(c config) *PlanClient {
	return &PlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `plan.Hooks(f(g(h())))`.
func (c *PlanClient) Use(hooks ...Hook) {
	c.hooks.Plan = append(c.hooks.Plan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `plan.Intercept(f(g(h())))`.
func (c *PlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.Plan = append(c.inters.Plan, interceptors...)
}

// Create returns a builder for creating a Plan entity.
func (c *PlanClient) Create() *PlanCreate {
	mutation := newPlanMutation(c.config, OpCreate)
	return &PlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Plan entities.
func (c *PlanClient) CreateBulk(builders ...*PlanCreate) *PlanCreateBulk {
	return &PlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlanClient) MapCreateBulk(slice any, setFunc func(*PlanCreate, int)) *PlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlanCreateBulk{err: fmt.Errorf("calling to PlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Plan.
func (c *PlanClient) Update() *PlanUpdate {
	mutation := newPlanMutation(c.config, OpUpdate)
	return &PlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlanClient) UpdateOne(_m *Plan) *PlanUpdateOne {
	mutation := newPlanMutation(c.config, OpUpdateOne, withPlan(_m))
	return &PlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlanClient) UpdateOneID(id string) *PlanUpdateOne {
	mutation := newPlanMutation(c.config, OpUpdateOne, withPlanID(id))
	return &PlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Plan.
func (c *PlanClient) Delete() *PlanDelete {
	mutation := newPlanMutation(c.config, OpDelete)
	return &PlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlanClient) DeleteOne(_m *Plan) *PlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlanClient) DeleteOneID(id string) *PlanDeleteOne {
	builder := c.Delete().Where(plan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlanDeleteOne{builder}
}

// Query returns a query builder for Plan.
func (c *PlanClient) Query() *PlanQuery {
	return &PlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlan},
		inters: c.Interceptors(),
	}
}

// Get returns a Plan entity by its id.
func (c *PlanClient) Get(ctx context.Context, id string) (*Plan, error) {
	return c.Query().Where(plan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlanClient) GetX(ctx context.Context, id string) *Plan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a Plan.
func (c *PlanClient) QueryWorkflow(_m *Plan) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(plan.Table, plan.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, plan.WorkflowTable, plan.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPlanSteps queries the plan_steps edge of a Plan.
func (c *PlanClient) QueryPlanSteps(_m *Plan) *StepQuery {
	query := (&StepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(plan.Table, plan.FieldID, id),
			sqlgraph.To(step.Table, step.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, plan.PlanStepsTable, plan.PlanStepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PlanClient) Hooks() []Hook {
	return c.hooks.Plan
}

// Interceptors returns the client interceptors.
func (c *PlanClient) Interceptors() []Interceptor {
	return c.inters.Plan
}

func (c *PlanClient) mutate(ctx context.Context, m *PlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Plan mutation op: %q", m.Op())
	}
}

// PromptClient is a client for the Prompt schema.
type PromptClient struct {
	config
}

// NewPromptClient returns a client for the Prompt from the given config.
func NewPromptClient(c config) *PromptClient {
	return &PromptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prompt.Hooks(f(g(h())))`.
func (c *PromptClient) Use(hooks ...Hook) {
	c.hooks.Prompt = append(c.hooks.Prompt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prompt.Intercept(f(g(h())))`.
func (c *PromptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Prompt = append(c.inters.Prompt, interceptors...)
}

// Create returns a builder for creating a Prompt entity.
func (c *PromptClient) Create() *PromptCreate {
	mutation := newPromptMutation(c.config, OpCreate)
	return &PromptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Prompt entities.
func (c *PromptClient) CreateBulk(builders ...*PromptCreate) *PromptCreateBulk {
	return &PromptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptClient) MapCreateBulk(slice any, setFunc func(*PromptCreate, int)) *PromptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptCreateBulk{err: fmt.Errorf("calling to PromptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Prompt.
func (c *PromptClient) Update() *PromptUpdate {
	mutation := newPromptMutation(c.config, OpUpdate)
	return &PromptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptClient) UpdateOne(_m *Prompt) *PromptUpdateOne {
	mutation := newPromptMutation(c.config, OpUpdateOne, withPrompt(_m))
	return &PromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptClient) UpdateOneID(id string) *PromptUpdateOne {
	mutation := newPromptMutation(c.config, OpUpdateOne, withPromptID(id))
	return &PromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Prompt.
func (c *PromptClient) Delete() *PromptDelete {
	mutation := newPromptMutation(c.config, OpDelete)
	return &PromptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptClient) DeleteOne(_m *Prompt) *PromptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptClient) DeleteOneID(id string) *PromptDeleteOne {
	builder := c.Delete().Where(prompt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptDeleteOne{builder}
}

// Query returns a query builder for Prompt.
func (c *PromptClient) Query() *PromptQuery {
	return &PromptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePrompt},
		inters: c.Interceptors(),
	}
}

// Get returns a Prompt entity by its id.
func (c *PromptClient) Get(ctx context.Context, id string) (*Prompt, error) {
	return c.Query().Where(prompt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptClient) GetX(ctx context.Context, id string) *Prompt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PromptClient) Hooks() []Hook {
	return c.hooks.Prompt
}

// Interceptors returns the client interceptors.
func (c *PromptClient) Interceptors() []Interceptor {
	return c.inters.Prompt
}

func (c *PromptClient) mutate(ctx context.Context, m *PromptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Prompt mutation op: %q", m.Op())
	}
}

// PromptAssignmentClient is a client for the PromptAssignment schema.
type PromptAssignmentClient struct {
	config
}

// NewPromptAssignmentClient returns a client for the PromptAssignment from the given config.
func NewPromptAssignmentClient(c config) *PromptAssignmentClient {
	return &PromptAssignmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `promptassignment.Hooks(f(g(h())))`.
func (c *PromptAssignmentClient) Use(hooks ...Hook) {
	c.hooks.PromptAssignment = append(c.hooks.PromptAssignment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `promptassignment.Intercept(f(g(h())))`.
func (c *PromptAssignmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptAssignment = append(c.inters.PromptAssignment, interceptors...)
}

// Create returns a builder for creating a PromptAssignment entity.
func (c *PromptAssignmentClient) Create() *PromptAssignmentCreate {
	mutation := newPromptAssignmentMutation(c.config, OpCreate)
	return &PromptAssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptAssignment entities.
func (c *PromptAssignmentClient) CreateBulk(builders ...*PromptAssignmentCreate) *PromptAssignmentCreateBulk {
	return &PromptAssignmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptAssignmentClient) MapCreateBulk(slice any, setFunc func(*PromptAssignmentCreate, int)) *PromptAssignmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptAssignmentCreateBulk{err: fmt.Errorf("calling to PromptAssignmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptAssignmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptAssignmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptAssignment.
func (c *PromptAssignmentClient) Update() *PromptAssignmentUpdate {
	mutation := newPromptAssignmentMutation(c.config, OpUpdate)
	return &PromptAssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptAssignmentClient) UpdateOne(_m *PromptAssignment) *PromptAssignmentUpdateOne {
	mutation := newPromptAssignmentMutation(c.config, OpUpdateOne, withPromptAssignment(_m))
	return &PromptAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptAssignmentClient) UpdateOneID(id string) *PromptAssignmentUpdateOne {
	mutation := newPromptAssignmentMutation(c.config, OpUpdateOne, withPromptAssignmentID(id))
	return &PromptAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptAssignment.
func (c *PromptAssignmentClient) Delete() *PromptAssignmentDelete {
	mutation := newPromptAssignmentMutation(c.config, OpDelete)
	return &PromptAssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptAssignmentClient) DeleteOne(_m *PromptAssignment) *PromptAssignmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptAssignmentClient) DeleteOneID(id string) *PromptAssignmentDeleteOne {
	builder := c.Delete().Where(promptassignment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptAssignmentDeleteOne{builder}
}

// Query returns a query builder for PromptAssignment.
func (c *PromptAssignmentClient) Query() *PromptAssignmentQuery {
	return &PromptAssignmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptAssignment},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptAssignment entity by its id.
func (c *PromptAssignmentClient) Get(ctx context.Context, id string) (*PromptAssignment, error) {
	return c.Query().Where(promptassignment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptAssignmentClient) GetX(ctx context.Context, id string) *PromptAssignment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PromptAssignmentClient) Hooks() []Hook {
	return c.hooks.PromptAssignment
}

// Interceptors returns the client interceptors.
func (c *PromptAssignmentClient) Interceptors() []Interceptor {
	return c.inters.PromptAssignment
}

func (c *PromptAssignmentClient) mutate(ctx context.Context, m *PromptAssignmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptAssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptAssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptAssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptAssignment mutation op: %q", m.Op())
	}
}

// QueueTaskClient is a client for the QueueTask schema.
type QueueTaskClient struct {
	config
}

// NewQueueTaskClient returns a client for the QueueTask from the given config.
func NewQueueTaskClient(c config) *QueueTaskClient {
	return &QueueTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `queuetask.Hooks(f(g(h())))`.
func (c *QueueTaskClient) Use(hooks ...Hook) {
	c.hooks.QueueTask = append(c.hooks.QueueTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `queuetask.Intercept(f(g(h())))`.
func (c *QueueTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueueTask = append(c.inters.QueueTask, interceptors...)
}

// Create returns a builder for creating a QueueTask entity.
func (c *QueueTaskClient) Create() *QueueTaskCreate {
	mutation := newQueueTaskMutation(c.config, OpCreate)
	return &QueueTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueueTask entities.
func (c *QueueTaskClient) CreateBulk(builders ...*QueueTaskCreate) *QueueTaskCreateBulk {
	return &QueueTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueueTaskClient) MapCreateBulk(slice any, setFunc func(*QueueTaskCreate, int)) *QueueTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueueTaskCreateBulk{err: fmt.Errorf("calling to QueueTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueueTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueueTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueueTask.
func (c *QueueTaskClient) Update() *QueueTaskUpdate {
	mutation := newQueueTaskMutation(c.config, OpUpdate)
	return &QueueTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueueTaskClient) UpdateOne(_m *QueueTask) *QueueTaskUpdateOne {
	mutation := newQueueTaskMutation(c.config, OpUpdateOne, withQueueTask(_m))
	return &QueueTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueueTaskClient) UpdateOneID(id string) *QueueTaskUpdateOne {
	mutation := newQueueTaskMutation(c.config, OpUpdateOne, withQueueTaskID(id))
	return &QueueTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueueTask.
func (c *QueueTaskClient) Delete() *QueueTaskDelete {
	mutation := newQueueTaskMutation(c.config, OpDelete)
	return &QueueTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueueTaskClient) DeleteOne(_m *QueueTask) *QueueTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueueTaskClient) DeleteOneID(id string) *QueueTaskDeleteOne {
	builder := c.Delete().Where(queuetask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueueTaskDeleteOne{builder}
}

// Query returns a query builder for QueueTask.
func (c *QueueTaskClient) Query() *QueueTaskQuery {
	return &QueueTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueueTask},
		inters: c.Interceptors(),
	}
}

// Get returns a QueueTask entity by its id.
func (c *QueueTaskClient) Get(ctx context.Context, id string) (*QueueTask, error) {
	return c.Query().Where(queuetask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueueTaskClient) GetX(ctx context.Context, id string) *QueueTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueueTaskClient) Hooks() []Hook {
	return c.hooks.QueueTask
}

// Interceptors returns the client interceptors.
func (c *QueueTaskClient) Interceptors() []Interceptor {
	return c.inters.QueueTask
}

func (c *QueueTaskClient) mutate(ctx context.Context, m *QueueTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueueTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueueTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueueTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueueTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueueTask mutation op: %q", m.Op())
	}
}

// StepClient is a client for the Step schema.
type StepClient struct {
	config
}

// NewStepClient returns a client for the Step from the given config.
func NewStepClient(c config) *StepClient {
	return &StepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `step.Hooks(f(g(h())))`.
func (c *StepClient) Use(hooks ...Hook) {
	c.hooks.Step = append(c.hooks.Step, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `step.Intercept(f(g(h())))`.
func (c *StepClient) Intercept(interceptors ...Interceptor) {
	c.inters.Step = append(c.inters.Step, interceptors...)
}

// Create returns a builder for creating a Step entity.
func (c *StepClient) Create() *StepCreate {
	mutation := newStepMutation(c.config, OpCreate)
	return &StepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Step entities.
func (c *StepClient) CreateBulk(builders ...*StepCreate) *StepCreateBulk {
	return &StepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepClient) MapCreateBulk(slice any, setFunc func(*StepCreate, int)) *StepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepCreateBulk{err: fmt.Errorf("calling to StepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Step.
func (c *StepClient) Update() *StepUpdate {
	mutation := newStepMutation(c.config, OpUpdate)
	return &StepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepClient) UpdateOne(_m *Step) *StepUpdateOne {
	mutation := newStepMutation(c.config, OpUpdateOne, withStep(_m))
	return &StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepClient) UpdateOneID(id string) *StepUpdateOne {
	mutation := newStepMutation(c.config, OpUpdateOne, withStepID(id))
	return &StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Step.
func (c *StepClient) Delete() *StepDelete {
	mutation := newStepMutation(c.config, OpDelete)
	return &StepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepClient) DeleteOne(_m *Step) *StepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepClient) DeleteOneID(id string) *StepDeleteOne {
	builder := c.Delete().Where(step.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepDeleteOne{builder}
}

// Query returns a query builder for Step.
func (c *StepClient) Query() *StepQuery {
	return &StepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStep},
		inters: c.Interceptors(),
	}
}

// Get returns a Step entity by its id.
func (c *StepClient) Get(ctx context.Context, id string) (*Step, error) {
	return c.Query().Where(step.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepClient) GetX(ctx context.Context, id string) *Step {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPlan queries the plan edge of a Step.
func (c *StepClient) QueryPlan(_m *Step) *PlanQuery {
	query := (&PlanClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(step.Table, step.FieldID, id),
			sqlgraph.To(plan.Table, plan.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, step.PlanTable, step.PlanColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorkflow queries the workflow edge of a Step.
func (c *StepClient) QueryWorkflow(_m *Step) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(step.Table, step.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, step.WorkflowTable, step.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepClient) Hooks() []Hook {
	return c.hooks.Step
}

// Interceptors returns the client interceptors.
func (c *StepClient) Interceptors() []Interceptor {
	return c.inters.Step
}

func (c *StepClient) mutate(ctx context.Context, m *StepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Step mutation op: %q", m.Op())
	}
}

// ToolSpecClient is a client for the ToolSpec schema.
type ToolSpecClient struct {
	config
}

// NewToolSpecClient returns a client for the ToolSpec from the given config.
func NewToolSpecClient(c config) *ToolSpecClient {
	return &ToolSpecClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolspec.Hooks(f(g(h())))`.
func (c *ToolSpecClient) Use(hooks ...Hook) {
	c.hooks.ToolSpec = append(c.hooks.ToolSpec, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolspec.Intercept(f(g(h())))`.
func (c *ToolSpecClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolSpec = append(c.inters.ToolSpec, interceptors...)
}

// Create returns a builder for creating a ToolSpec entity.
func (c *ToolSpecClient) Create() *ToolSpecCreate {
	mutation := newToolSpecMutation(c.config, OpCreate)
	return &ToolSpecCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolSpec entities.
func (c *ToolSpecClient) CreateBulk(builders ...*ToolSpecCreate) *ToolSpecCreateBulk {
	return &ToolSpecCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolSpecClient) MapCreateBulk(slice any, setFunc func(*ToolSpecCreate, int)) *ToolSpecCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolSpecCreateBulk{err: fmt.Errorf("calling to ToolSpecClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolSpecCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolSpecCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolSpec.
func (c *ToolSpecClient) Update() *ToolSpecUpdate {
	mutation := newToolSpecMutation(c.config, OpUpdate)
	return &ToolSpecUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolSpecClient) UpdateOne(_m *ToolSpec) *ToolSpecUpdateOne {
	mutation := newToolSpecMutation(c.config, OpUpdateOne, withToolSpec(_m))
	return &ToolSpecUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolSpecClient) UpdateOneID(id string) *ToolSpecUpdateOne {
	mutation := newToolSpecMutation(c.config, OpUpdateOne, withToolSpecID(id))
	return &ToolSpecUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolSpec.
func (c *ToolSpecClient) Delete() *ToolSpecDelete {
	mutation := newToolSpecMutation(c.config, OpDelete)
	return &ToolSpecDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolSpecClient) DeleteOne(_m *ToolSpec) *ToolSpecDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolSpecClient) DeleteOneID(id string) *ToolSpecDeleteOne {
	builder := c.Delete().Where(toolspec.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolSpecDeleteOne{builder}
}

// Query returns a query builder for ToolSpec.
func (c *ToolSpecClient) Query() *ToolSpecQuery {
	return &ToolSpecQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolSpec},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolSpec entity by its id.
func (c *ToolSpecClient) Get(ctx context.Context, id string) (*ToolSpec, error) {
	return c.Query().Where(toolspec.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolSpecClient) GetX(ctx context.Context, id string) *ToolSpec {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ToolSpecClient) Hooks() []Hook {
	return c.hooks.ToolSpec
}

// Interceptors returns the client interceptors.
func (c *ToolSpecClient) Interceptors() []Interceptor {
	return c.inters.ToolSpec
}

func (c *ToolSpecClient) mutate(ctx context.Context, m *ToolSpecMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolSpecCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolSpecUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolSpecUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolSpecDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolSpec mutation op: %q", m.Op())
	}
}

// WorkflowClient is a client for the Workflow schema.
type WorkflowClient struct {
	config
}

// NewWorkflowClient returns a client for the Workflow from the given config.
func NewWorkflowClient(c config) *WorkflowClient {
	return &WorkflowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflow.Hooks(f(g(h())))`.
func (c *WorkflowClient) Use(hooks ...Hook) {
	c.hooks.Workflow = append(c.hooks.Workflow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflow.Intercept(f(g(h())))`.
func (c *WorkflowClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workflow = append(c.inters.Workflow, interceptors...)
}

// Create returns a builder for creating a Workflow entity.
func (c *WorkflowClient) Create() *WorkflowCreate {
	mutation := newWorkflowMutation(c.config, OpCreate)
	return &WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workflow entities.
func (c *WorkflowClient) CreateBulk(builders ...*WorkflowCreate) *WorkflowCreateBulk {
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowClient) MapCreateBulk(slice any, setFunc func(*WorkflowCreate, int)) *WorkflowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowCreateBulk{err: fmt.Errorf("calling to WorkflowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workflow.
func (c *WorkflowClient) Update() *WorkflowUpdate {
	mutation := newWorkflowMutation(c.config, OpUpdate)
	return &WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowClient) UpdateOne(_m *Workflow) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflow(_m))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowClient) UpdateOneID(id string) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflowID(id))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workflow.
func (c *WorkflowClient) Delete() *WorkflowDelete {
	mutation := newWorkflowMutation(c.config, OpDelete)
	return &WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowClient) DeleteOne(_m *Workflow) *WorkflowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowClient) DeleteOneID(id string) *WorkflowDeleteOne {
	builder := c.Delete().Where(workflow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowDeleteOne{builder}
}

// Query returns a query builder for Workflow.
func (c *WorkflowClient) Query() *WorkflowQuery {
	return &WorkflowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflow},
		inters: c.Interceptors(),
	}
}

// Get returns a Workflow entity by its id.
func (c *WorkflowClient) Get(ctx context.Context, id string) (*Workflow, error) {
	return c.Query().Where(workflow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowClient) GetX(ctx context.Context, id string) *Workflow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPlans queries the plans edge of a Workflow.
func (c *WorkflowClient) QueryPlans(_m *Workflow) *PlanQuery {
	query := (&PlanClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(plan.Table, plan.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.PlansTable, workflow.PlansColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySteps queries the steps edge of a Workflow.
func (c *WorkflowClient) QuerySteps(_m *Workflow) *StepQuery {
	query := (&StepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(step.Table, step.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.StepsTable, workflow.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutionEvents queries the execution_events edge of a Workflow.
func (c *WorkflowClient) QueryExecutionEvents(_m *Workflow) *ExecutionEventQuery {
	query := (&ExecutionEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(executionevent.Table, executionevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.ExecutionEventsTable, workflow.ExecutionEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryApprovalRequests queries the approval_requests edge of a Workflow.
func (c *WorkflowClient) QueryApprovalRequests(_m *Workflow) *ApprovalRequestQuery {
	query := (&ApprovalRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(approvalrequest.Table, approvalrequest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.ApprovalRequestsTable, workflow.ApprovalRequestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowClient) Hooks() []Hook {
	return c.hooks.Workflow
}

// Interceptors returns the client interceptors.
func (c *WorkflowClient) Interceptors() []Interceptor {
	return c.inters.Workflow
}

func (c *WorkflowClient) mutate(ctx context.Context, m *WorkflowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workflow mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentSpec, ApprovalRequest, Checkpoint, ExecutionEvent, LearningPattern,
		ModelEndpoint, Plan, Prompt, PromptAssignment, QueueTask, Step, ToolSpec,
		Workflow []ent.Hook
	}
	inters struct {
		AgentSpec, ApprovalRequest, Checkpoint, ExecutionEvent, LearningPattern,
		ModelEndpoint, Plan, Prompt, PromptAssignment, QueueTask, Step, ToolSpec,
		Workflow []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
