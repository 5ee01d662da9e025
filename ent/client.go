// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/reporadar/reporadar/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reporadar/reporadar/ent/alert"
	"github.com/reporadar/reporadar/ent/analysis"
	"github.com/reporadar/reporadar/ent/batchrun"
	"github.com/reporadar/reporadar/ent/contributor"
	"github.com/reporadar/reporadar/ent/metricsnapshot"
	"github.com/reporadar/reporadar/ent/repository"
	"github.com/reporadar/reporadar/ent/schedulerstate"
	"github.com/reporadar/reporadar/ent/tierassignment"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Alert is the client for interacting with the Alert builders.
	Alert *AlertClient
	// Analysis is the client for interacting with the Analysis builders.
	Analysis *AnalysisClient
	// BatchRun is the client for interacting with the BatchRun builders.
	BatchRun *BatchRunClient
	// Contributor is the client for interacting with the Contributor builders.
	Contributor *ContributorClient
	// MetricSnapshot is the client for interacting with the MetricSnapshot builders.
	MetricSnapshot *MetricSnapshotClient
	// Repository is the client for interacting with the Repository builders.
	Repository *RepositoryClient
	// SchedulerState is the client for interacting with the SchedulerState builders.
	SchedulerState *SchedulerStateClient
	// TierAssignment is the client for interacting with the TierAssignment builders.
	TierAssignment *TierAssignmentClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Alert = NewAlertClient(c.config)
	c.Analysis = NewAnalysisClient(c.config)
	c.BatchRun = NewBatchRunClient(c.config)
	c.Contributor = NewContributorClient(c.config)
	c.MetricSnapshot = NewMetricSnapshotClient(c.config)
	c.Repository = NewRepositoryClient(c.config)
	c.SchedulerState = NewSchedulerStateClient(c.config)
	c.TierAssignment = NewTierAssignmentClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		Alert:          NewAlertClient(cfg),
		Analysis:       NewAnalysisClient(cfg),
		BatchRun:       NewBatchRunClient(cfg),
		Contributor:    NewContributorClient(cfg),
		MetricSnapshot: NewMetricSnapshotClient(cfg),
		Repository:     NewRepositoryClient(cfg),
		SchedulerState: NewSchedulerStateClient(cfg),
		TierAssignment: NewTierAssignmentClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		Alert:          NewAlertClient(cfg),
		Analysis:       NewAnalysisClient(cfg),
		BatchRun:       NewBatchRunClient(cfg),
		Contributor:    NewContributorClient(cfg),
		MetricSnapshot: NewMetricSnapshotClient(cfg),
		Repository:     NewRepositoryClient(cfg),
		SchedulerState: NewSchedulerStateClient(cfg),
		TierAssignment: NewTierAssignmentClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Alert.
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
		c.Alert, c.Analysis, c.BatchRun, c.Contributor, c.MetricSnapshot, c.Repository,
		c.SchedulerState, c.TierAssignment,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Alert, c.Analysis, c.BatchRun, c.Contributor, c.MetricSnapshot, c.Repository,
		c.SchedulerState, c.TierAssignment,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AlertMutation:
		return c.Alert.mutate(ctx, m)
	case *AnalysisMutation:
		return c.Analysis.mutate(ctx, m)
	case *BatchRunMutation:
		return c.BatchRun.mutate(ctx, m)
	case *ContributorMutation:
		return c.Contributor.mutate(ctx, m)
	case *MetricSnapshotMutation:
		return c.MetricSnapshot.mutate(ctx, m)
	case *RepositoryMutation:
		return c.Repository.mutate(ctx, m)
	case *SchedulerStateMutation:
		return c.SchedulerState.mutate(ctx, m)
	case *TierAssignmentMutation:
		return c.TierAssignment.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AlertClient is a client for the Alert schema.
type AlertClient struct {
	config
}

// NewAlertClient returns a client for the Alert from the given config.
func NewAlertClient(c config) *AlertClient {
	return &AlertClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `alert.Hooks(f(g(h())))`.
func (c *AlertClient) Use(hooks ...Hook) {
	c.hooks.Alert = append(c.hooks.Alert, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `alert.Intercept(f(g(h())))`.
func (c *AlertClient) Intercept(interceptors ...Interceptor) {
	c.inters.Alert = append(c.inters.Alert, interceptors...)
}

// Create returns a builder for creating a Alert entity.
func (c *AlertClient) Create() *AlertCreate {
	mutation := newAlertMutation(c.config, OpCreate)
	return &AlertCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Alert entities.
func (c *AlertClient) CreateBulk(builders ...*AlertCreate) *AlertCreateBulk {
	return &AlertCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlertClient) MapCreateBulk(slice any, setFunc func(*AlertCreate, int)) *AlertCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlertCreateBulk{err: fmt.Errorf("calling to AlertClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlertCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlertCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Alert.
func (c *AlertClient) Update() *AlertUpdate {
	mutation := newAlertMutation(c.config, OpUpdate)
	return &AlertUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlertClient) UpdateOne(_m *Alert) *AlertUpdateOne {
	mutation := newAlertMutation(c.config, OpUpdateOne, withAlert(_m))
	return &AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlertClient) UpdateOneID(id string) *AlertUpdateOne {
	mutation := newAlertMutation(c.config, OpUpdateOne, withAlertID(id))
	return &AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Alert.
func (c *AlertClient) Delete() *AlertDelete {
	mutation := newAlertMutation(c.config, OpDelete)
	return &AlertDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlertClient) DeleteOne(_m *Alert) *AlertDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlertClient) DeleteOneID(id string) *AlertDeleteOne {
	builder := c.Delete().Where(alert.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlertDeleteOne{builder}
}

// Query returns a query builder for Alert.
func (c *AlertClient) Query() *AlertQuery {
	return &AlertQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlert},
		inters: c.Interceptors(),
	}
}

// Get returns a Alert entity by its id.
func (c *AlertClient) Get(ctx context.Context, id string) (*Alert, error) {
	return c.Query().Where(alert.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlertClient) GetX(ctx context.Context, id string) *Alert {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRepository queries the repository edge of a Alert.
func (c *AlertClient) QueryRepository(_m *Alert) *RepositoryQuery {
	query := (&RepositoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alert.Table, alert.FieldID, id),
			sqlgraph.To(repository.Table, repository.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, alert.RepositoryTable, alert.RepositoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AlertClient) Hooks() []Hook {
	return c.hooks.Alert
}

// Interceptors returns the client interceptors.
func (c *AlertClient) Interceptors() []Interceptor {
	return c.inters.Alert
}

func (c *AlertClient) mutate(ctx context.Context, m *AlertMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlertCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlertUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlertDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Alert mutation op: %q", m.Op())
	}
}

// AnalysisClient is a client for the Analysis schema.
type AnalysisClient struct {
	config
}

// NewAnalysisClient returns a client for the Analysis from the given config.
func NewAnalysisClient(c config) *AnalysisClient {
	return &AnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysis.Hooks(f(g(h())))`.
func (c *AnalysisClient) Use(hooks ...Hook) {
	c.hooks.Analysis = append(c.hooks.Analysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysis.Intercept(f(g(h())))`.
func (c *AnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.Analysis = append(c.inters.Analysis, interceptors...)
}

// Create returns a builder for creating a Analysis entity.
func (c *AnalysisClient) Create() *AnalysisCreate {
	mutation := newAnalysisMutation(c.config, OpCreate)
	return &AnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Analysis entities.
func (c *AnalysisClient) CreateBulk(builders ...*AnalysisCreate) *AnalysisCreateBulk {
	return &AnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisClient) MapCreateBulk(slice any, setFunc func(*AnalysisCreate, int)) *AnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisCreateBulk{err: fmt.Errorf("calling to AnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Analysis.
func (c *AnalysisClient) Update() *AnalysisUpdate {
	mutation := newAnalysisMutation(c.config, OpUpdate)
	return &AnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisClient) UpdateOne(_m *Analysis) *AnalysisUpdateOne {
	mutation := newAnalysisMutation(c.config, OpUpdateOne, withAnalysis(_m))
	return &AnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisClient) UpdateOneID(id string) *AnalysisUpdateOne {
	mutation := newAnalysisMutation(c.config, OpUpdateOne, withAnalysisID(id))
	return &AnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Analysis.
func (c *AnalysisClient) Delete() *AnalysisDelete {
	mutation := newAnalysisMutation(c.config, OpDelete)
	return &AnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisClient) DeleteOne(_m *Analysis) *AnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisClient) DeleteOneID(id string) *AnalysisDeleteOne {
	builder := c.Delete().Where(analysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisDeleteOne{builder}
}

// Query returns a query builder for Analysis.
func (c *AnalysisClient) Query() *AnalysisQuery {
	return &AnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a Analysis entity by its id.
func (c *AnalysisClient) Get(ctx context.Context, id string) (*Analysis, error) {
	return c.Query().Where(analysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisClient) GetX(ctx context.Context, id string) *Analysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRepository queries the repository edge of a Analysis.
func (c *AnalysisClient) QueryRepository(_m *Analysis) *RepositoryQuery {
	query := (&RepositoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysis.Table, analysis.FieldID, id),
			sqlgraph.To(repository.Table, repository.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analysis.RepositoryTable, analysis.RepositoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisClient) Hooks() []Hook {
	return c.hooks.Analysis
}

// Interceptors returns the client interceptors.
func (c *AnalysisClient) Interceptors() []Interceptor {
	return c.inters.Analysis
}

func (c *AnalysisClient) mutate(ctx context.Context, m *AnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Analysis mutation op: %q", m.Op())
	}
}

// BatchRunClient is a client for the BatchRun schema.
type BatchRunClient struct {
	config
}

// NewBatchRunClient returns a client for the BatchRun from the given config.
func NewBatchRunClient(c config) *BatchRunClient {
	return &BatchRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `batchrun.Hooks(f(g(h())))`.
func (c *BatchRunClient) Use(hooks ...Hook) {
	c.hooks.BatchRun = append(c.hooks.BatchRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `batchrun.Intercept(f(g(h())))`.
func (c *BatchRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.BatchRun = append(c.inters.BatchRun, interceptors...)
}

// Create returns a builder for creating a BatchRun entity.
func (c *BatchRunClient) Create() *BatchRunCreate {
	mutation := newBatchRunMutation(c.config, OpCreate)
	return &BatchRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BatchRun entities.
func (c *BatchRunClient) CreateBulk(builders ...*BatchRunCreate) *BatchRunCreateBulk {
	return &BatchRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BatchRunClient) MapCreateBulk(slice any, setFunc func(*BatchRunCreate, int)) *BatchRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BatchRunCreateBulk{err: fmt.Errorf("calling to BatchRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BatchRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BatchRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BatchRun.
func (c *BatchRunClient) Update() *BatchRunUpdate {
	mutation := newBatchRunMutation(c.config, OpUpdate)
	return &BatchRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BatchRunClient) UpdateOne(_m *BatchRun) *BatchRunUpdateOne {
	mutation := newBatchRunMutation(c.config, OpUpdateOne, withBatchRun(_m))
	return &BatchRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BatchRunClient) UpdateOneID(id string) *BatchRunUpdateOne {
	mutation := newBatchRunMutation(c.config, OpUpdateOne, withBatchRunID(id))
	return &BatchRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BatchRun.
func (c *BatchRunClient) Delete() *BatchRunDelete {
	mutation := newBatchRunMutation(c.config, OpDelete)
	return &BatchRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BatchRunClient) DeleteOne(_m *BatchRun) *BatchRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BatchRunClient) DeleteOneID(id string) *BatchRunDeleteOne {
	builder := c.Delete().Where(batchrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BatchRunDeleteOne{builder}
}

// Query returns a query builder for BatchRun.
func (c *BatchRunClient) Query() *BatchRunQuery {
	return &BatchRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBatchRun},
		inters: c.Interceptors(),
	}
}

// Get returns a BatchRun entity by its id.
func (c *BatchRunClient) Get(ctx context.Context, id string) (*BatchRun, error) {
	return c.Query().Where(batchrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BatchRunClient) GetX(ctx context.Context, id string) *BatchRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BatchRunClient) Hooks() []Hook {
	return c.hooks.BatchRun
}

// Interceptors returns the client interceptors.
func (c *BatchRunClient) Interceptors() []Interceptor {
	return c.inters.BatchRun
}

func (c *BatchRunClient) mutate(ctx context.Context, m *BatchRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BatchRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BatchRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BatchRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BatchRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BatchRun mutation op: %q", m.Op())
	}
}

// ContributorClient is a client for the Contributor schema.
type ContributorClient struct {
	config
}

// NewContributorClient returns a client for the Contributor from the given config.
func NewContributorClient(c config) *ContributorClient {
	return &ContributorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contributor.Hooks(f(g(h())))`.
func (c *ContributorClient) Use(hooks ...Hook) {
	c.hooks.Contributor = append(c.hooks.Contributor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contributor.Intercept(f(g(h())))`.
func (c *ContributorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Contributor = append(c.inters.Contributor, interceptors...)
}

// Create returns a builder for creating a Contributor entity.
func (c *ContributorClient) Create() *ContributorCreate {
	mutation := newContributorMutation(c.config, OpCreate)
	return &ContributorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Contributor entities.
func (c *ContributorClient) CreateBulk(builders ...*ContributorCreate) *ContributorCreateBulk {
	return &ContributorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContributorClient) MapCreateBulk(slice any, setFunc func(*ContributorCreate, int)) *ContributorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContributorCreateBulk{err: fmt.Errorf("calling to ContributorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContributorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContributorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Contributor.
func (c *ContributorClient) Update() *ContributorUpdate {
	mutation := newContributorMutation(c.config, OpUpdate)
	return &ContributorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContributorClient) UpdateOne(_m *Contributor) *ContributorUpdateOne {
	mutation := newContributorMutation(c.config, OpUpdateOne, withContributor(_m))
	return &ContributorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContributorClient) UpdateOneID(id string) *ContributorUpdateOne {
	mutation := newContributorMutation(c.config, OpUpdateOne, withContributorID(id))
	return &ContributorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Contributor.
func (c *ContributorClient) Delete() *ContributorDelete {
	mutation := newContributorMutation(c.config, OpDelete)
	return &ContributorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContributorClient) DeleteOne(_m *Contributor) *ContributorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContributorClient) DeleteOneID(id string) *ContributorDeleteOne {
	builder := c.Delete().Where(contributor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContributorDeleteOne{builder}
}

// Query returns a query builder for Contributor.
func (c *ContributorClient) Query() *ContributorQuery {
	return &ContributorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContributor},
		inters: c.Interceptors(),
	}
}

// Get returns a Contributor entity by its id.
func (c *ContributorClient) Get(ctx context.Context, id string) (*Contributor, error) {
	return c.Query().Where(contributor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContributorClient) GetX(ctx context.Context, id string) *Contributor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRepository queries the repository edge of a Contributor.
func (c *ContributorClient) QueryRepository(_m *Contributor) *RepositoryQuery {
	query := (&RepositoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contributor.Table, contributor.FieldID, id),
			sqlgraph.To(repository.Table, repository.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contributor.RepositoryTable, contributor.RepositoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContributorClient) Hooks() []Hook {
	return c.hooks.Contributor
}

// Interceptors returns the client interceptors.
func (c *ContributorClient) Interceptors() []Interceptor {
	return c.inters.Contributor
}

func (c *ContributorClient) mutate(ctx context.Context, m *ContributorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContributorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContributorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContributorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContributorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Contributor mutation op: %q", m.Op())
	}
}

// MetricSnapshotClient is a client for the MetricSnapshot schema.
type MetricSnapshotClient struct {
	config
}

// NewMetricSnapshotClient returns a client for the MetricSnapshot from the given config.
func NewMetricSnapshotClient(c config) *MetricSnapshotClient {
	return &MetricSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `metricsnapshot.Hooks(f(g(h())))`.
func (c *MetricSnapshotClient) Use(hooks ...Hook) {
	c.hooks.MetricSnapshot = append(c.hooks.MetricSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `metricsnapshot.Intercept(f(g(h())))`.
func (c *MetricSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.MetricSnapshot = append(c.inters.MetricSnapshot, interceptors...)
}

// Create returns a builder for creating a MetricSnapshot entity.
func (c *MetricSnapshotClient) Create() *MetricSnapshotCreate {
	mutation := newMetricSnapshotMutation(c.config, OpCreate)
	return &MetricSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MetricSnapshot entities.
func (c *MetricSnapshotClient) CreateBulk(builders ...*MetricSnapshotCreate) *MetricSnapshotCreateBulk {
	return &MetricSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MetricSnapshotClient) MapCreateBulk(slice any, setFunc func(*MetricSnapshotCreate, int)) *MetricSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MetricSnapshotCreateBulk{err: fmt.Errorf("calling to MetricSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MetricSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MetricSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MetricSnapshot.
func (c *MetricSnapshotClient) Update() *MetricSnapshotUpdate {
	mutation := newMetricSnapshotMutation(c.config, OpUpdate)
	return &MetricSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MetricSnapshotClient) UpdateOne(_m *MetricSnapshot) *MetricSnapshotUpdateOne {
	mutation := newMetricSnapshotMutation(c.config, OpUpdateOne, withMetricSnapshot(_m))
	return &MetricSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MetricSnapshotClient) UpdateOneID(id string) *MetricSnapshotUpdateOne {
	mutation := newMetricSnapshotMutation(c.config, OpUpdateOne, withMetricSnapshotID(id))
	return &MetricSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MetricSnapshot.
func (c *MetricSnapshotClient) Delete() *MetricSnapshotDelete {
	mutation := newMetricSnapshotMutation(c.config, OpDelete)
	return &MetricSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MetricSnapshotClient) DeleteOne(_m *MetricSnapshot) *MetricSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MetricSnapshotClient) DeleteOneID(id string) *MetricSnapshotDeleteOne {
	builder := c.Delete().Where(metricsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MetricSnapshotDeleteOne{builder}
}

// Query returns a query builder for MetricSnapshot.
func (c *MetricSnapshotClient) Query() *MetricSnapshotQuery {
	return &MetricSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMetricSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a MetricSnapshot entity by its id.
func (c *MetricSnapshotClient) Get(ctx context.Context, id string) (*MetricSnapshot, error) {
	return c.Query().Where(metricsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MetricSnapshotClient) GetX(ctx context.Context, id string) *MetricSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRepository queries the repository edge of a MetricSnapshot.
func (c *MetricSnapshotClient) QueryRepository(_m *MetricSnapshot) *RepositoryQuery {
	query := (&RepositoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(metricsnapshot.Table, metricsnapshot.FieldID, id),
			sqlgraph.To(repository.Table, repository.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, metricsnapshot.RepositoryTable, metricsnapshot.RepositoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MetricSnapshotClient) Hooks() []Hook {
	return c.hooks.MetricSnapshot
}

// Interceptors returns the client interceptors.
func (c *MetricSnapshotClient) Interceptors() []Interceptor {
	return c.inters.MetricSnapshot
}

func (c *MetricSnapshotClient) mutate(ctx context.Context, m *MetricSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MetricSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MetricSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MetricSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MetricSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MetricSnapshot mutation op: %q", m.Op())
	}
}

// RepositoryClient is a client for the Repository schema.
type RepositoryClient struct {
	config
}

// NewRepositoryClient returns a client for the Repository from the given config.
func NewRepositoryClient(c config) *RepositoryClient {
	return &RepositoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `repository.Hooks(f(g(h())))`.
func (c *RepositoryClient) Use(hooks ...Hook) {
	c.hooks.Repository = append(c.hooks.Repository, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `repository.Intercept(f(g(h())))`.
func (c *RepositoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Repository = append(c.inters.Repository, interceptors...)
}

// Create returns a builder for creating a Repository entity.
func (c *RepositoryClient) Create() *RepositoryCreate {
	mutation := newRepositoryMutation(c.config, OpCreate)
	return &RepositoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Repository entities.
func (c *RepositoryClient) CreateBulk(builders ...*RepositoryCreate) *RepositoryCreateBulk {
	return &RepositoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RepositoryClient) MapCreateBulk(slice any, setFunc func(*RepositoryCreate, int)) *RepositoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RepositoryCreateBulk{err: fmt.Errorf("calling to RepositoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RepositoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RepositoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Repository.
func (c *RepositoryClient) Update() *RepositoryUpdate {
	mutation := newRepositoryMutation(c.config, OpUpdate)
	return &RepositoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RepositoryClient) UpdateOne(_m *Repository) *RepositoryUpdateOne {
	mutation := newRepositoryMutation(c.config, OpUpdateOne, withRepository(_m))
	return &RepositoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RepositoryClient) UpdateOneID(id string) *RepositoryUpdateOne {
	mutation := newRepositoryMutation(c.config, OpUpdateOne, withRepositoryID(id))
	return &RepositoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Repository.
func (c *RepositoryClient) Delete() *RepositoryDelete {
	mutation := newRepositoryMutation(c.config, OpDelete)
	return &RepositoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RepositoryClient) DeleteOne(_m *Repository) *RepositoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RepositoryClient) DeleteOneID(id string) *RepositoryDeleteOne {
	builder := c.Delete().Where(repository.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RepositoryDeleteOne{builder}
}

// Query returns a query builder for Repository.
func (c *RepositoryClient) Query() *RepositoryQuery {
	return &RepositoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRepository},
		inters: c.Interceptors(),
	}
}

// Get returns a Repository entity by its id.
func (c *RepositoryClient) Get(ctx context.Context, id string) (*Repository, error) {
	return c.Query().Where(repository.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RepositoryClient) GetX(ctx context.Context, id string) *Repository {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySnapshots queries the snapshots edge of a Repository.
func (c *RepositoryClient) QuerySnapshots(_m *Repository) *MetricSnapshotQuery {
	query := (&MetricSnapshotClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(repository.Table, repository.FieldID, id),
			sqlgraph.To(metricsnapshot.Table, metricsnapshot.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, repository.SnapshotsTable, repository.SnapshotsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTierAssignment queries the tier_assignment edge of a Repository.
func (c *RepositoryClient) QueryTierAssignment(_m *Repository) *TierAssignmentQuery {
	query := (&TierAssignmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(repository.Table, repository.FieldID, id),
			sqlgraph.To(tierassignment.Table, tierassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, repository.TierAssignmentTable, repository.TierAssignmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnalyses queries the analyses edge of a Repository.
func (c *RepositoryClient) QueryAnalyses(_m *Repository) *AnalysisQuery {
	query := (&AnalysisClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(repository.Table, repository.FieldID, id),
			sqlgraph.To(analysis.Table, analysis.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, repository.AnalysesTable, repository.AnalysesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAlerts queries the alerts edge of a Repository.
func (c *RepositoryClient) QueryAlerts(_m *Repository) *AlertQuery {
	query := (&AlertClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(repository.Table, repository.FieldID, id),
			sqlgraph.To(alert.Table, alert.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, repository.AlertsTable, repository.AlertsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContributors queries the contributors edge of a Repository.
func (c *RepositoryClient) QueryContributors(_m *Repository) *ContributorQuery {
	query := (&ContributorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(repository.Table, repository.FieldID, id),
			sqlgraph.To(contributor.Table, contributor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, repository.ContributorsTable, repository.ContributorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RepositoryClient) Hooks() []Hook {
	return c.hooks.Repository
}

// Interceptors returns the client interceptors.
func (c *RepositoryClient) Interceptors() []Interceptor {
	return c.inters.Repository
}

func (c *RepositoryClient) mutate(ctx context.Context, m *RepositoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RepositoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RepositoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RepositoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RepositoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Repository mutation op: %q", m.Op())
	}
}

// SchedulerStateClient is a client for the SchedulerState schema.
type SchedulerStateClient struct {
	config
}

// NewSchedulerStateClient returns a client for the SchedulerState from the given config.
func NewSchedulerStateClient(c config) *SchedulerStateClient {
	return &SchedulerStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `schedulerstate.Hooks(f(g(h())))`.
func (c *SchedulerStateClient) Use(hooks ...Hook) {
	c.hooks.SchedulerState = append(c.hooks.SchedulerState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `schedulerstate.Intercept(f(g(h())))`.
func (c *SchedulerStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.SchedulerState = append(c.inters.SchedulerState, interceptors...)
}

// Create returns a builder for creating a SchedulerState entity.
func (c *SchedulerStateClient) Create() *SchedulerStateCreate {
	mutation := newSchedulerStateMutation(c.config, OpCreate)
	return &SchedulerStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SchedulerState entities.
func (c *SchedulerStateClient) CreateBulk(builders ...*SchedulerStateCreate) *SchedulerStateCreateBulk {
	return &SchedulerStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SchedulerStateClient) MapCreateBulk(slice any, setFunc func(*SchedulerStateCreate, int)) *SchedulerStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SchedulerStateCreateBulk{err: fmt.Errorf("calling to SchedulerStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SchedulerStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SchedulerStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SchedulerState.
func (c *SchedulerStateClient) Update() *SchedulerStateUpdate {
	mutation := newSchedulerStateMutation(c.config, OpUpdate)
	return &SchedulerStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SchedulerStateClient) UpdateOne(_m *SchedulerState) *SchedulerStateUpdateOne {
	mutation := newSchedulerStateMutation(c.config, OpUpdateOne, withSchedulerState(_m))
	return &SchedulerStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SchedulerStateClient) UpdateOneID(id string) *SchedulerStateUpdateOne {
	mutation := newSchedulerStateMutation(c.config, OpUpdateOne, withSchedulerStateID(id))
	return &SchedulerStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SchedulerState.
func (c *SchedulerStateClient) Delete() *SchedulerStateDelete {
	mutation := newSchedulerStateMutation(c.config, OpDelete)
	return &SchedulerStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SchedulerStateClient) DeleteOne(_m *SchedulerState) *SchedulerStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SchedulerStateClient) DeleteOneID(id string) *SchedulerStateDeleteOne {
	builder := c.Delete().Where(schedulerstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SchedulerStateDeleteOne{builder}
}

// Query returns a query builder for SchedulerState.
func (c *SchedulerStateClient) Query() *SchedulerStateQuery {
	return &SchedulerStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSchedulerState},
		inters: c.Interceptors(),
	}
}

// Get returns a SchedulerState entity by its id.
func (c *SchedulerStateClient) Get(ctx context.Context, id string) (*SchedulerState, error) {
	return c.Query().Where(schedulerstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SchedulerStateClient) GetX(ctx context.Context, id string) *SchedulerState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SchedulerStateClient) Hooks() []Hook {
	return c.hooks.SchedulerState
}

// Interceptors returns the client interceptors.
func (c *SchedulerStateClient) Interceptors() []Interceptor {
	return c.inters.SchedulerState
}

func (c *SchedulerStateClient) mutate(ctx context.Context, m *SchedulerStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SchedulerStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SchedulerStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SchedulerStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SchedulerStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SchedulerState mutation op: %q", m.Op())
	}
}

// TierAssignmentClient is a client for the TierAssignment schema.
type TierAssignmentClient struct {
	config
}

// NewTierAssignmentClient returns a client for the TierAssignment from the given config.
func NewTierAssignmentClient(c config) *TierAssignmentClient {
	return &TierAssignmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tierassignment.Hooks(f(g(h())))`.
func (c *TierAssignmentClient) Use(hooks ...Hook) {
	c.hooks.TierAssignment = append(c.hooks.TierAssignment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tierassignment.Intercept(f(g(h())))`.
func (c *TierAssignmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.TierAssignment = append(c.inters.TierAssignment, interceptors...)
}

// Create returns a builder for creating a TierAssignment entity.
func (c *TierAssignmentClient) Create() *TierAssignmentCreate {
	mutation := newTierAssignmentMutation(c.config, OpCreate)
	return &TierAssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TierAssignment entities.
func (c *TierAssignmentClient) CreateBulk(builders ...*TierAssignmentCreate) *TierAssignmentCreateBulk {
	return &TierAssignmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TierAssignmentClient) MapCreateBulk(slice any, setFunc func(*TierAssignmentCreate, int)) *TierAssignmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TierAssignmentCreateBulk{err: fmt.Errorf("calling to TierAssignmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TierAssignmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TierAssignmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TierAssignment.
func (c *TierAssignmentClient) Update() *TierAssignmentUpdate {
	mutation := newTierAssignmentMutation(c.config, OpUpdate)
	return &TierAssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TierAssignmentClient) UpdateOne(_m *TierAssignment) *TierAssignmentUpdateOne {
	mutation := newTierAssignmentMutation(c.config, OpUpdateOne, withTierAssignment(_m))
	return &TierAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TierAssignmentClient) UpdateOneID(id string) *TierAssignmentUpdateOne {
	mutation := newTierAssignmentMutation(c.config, OpUpdateOne, withTierAssignmentID(id))
	return &TierAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TierAssignment.
func (c *TierAssignmentClient) Delete() *TierAssignmentDelete {
	mutation := newTierAssignmentMutation(c.config, OpDelete)
	return &TierAssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TierAssignmentClient) DeleteOne(_m *TierAssignment) *TierAssignmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TierAssignmentClient) DeleteOneID(id string) *TierAssignmentDeleteOne {
	builder := c.Delete().Where(tierassignment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TierAssignmentDeleteOne{builder}
}

// Query returns a query builder for TierAssignment.
func (c *TierAssignmentClient) Query() *TierAssignmentQuery {
	return &TierAssignmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTierAssignment},
		inters: c.Interceptors(),
	}
}

// Get returns a TierAssignment entity by its id.
func (c *TierAssignmentClient) Get(ctx context.Context, id string) (*TierAssignment, error) {
	return c.Query().Where(tierassignment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TierAssignmentClient) GetX(ctx context.Context, id string) *TierAssignment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRepository queries the repository edge of a TierAssignment.
func (c *TierAssignmentClient) QueryRepository(_m *TierAssignment) *RepositoryQuery {
	query := (&RepositoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tierassignment.Table, tierassignment.FieldID, id),
			sqlgraph.To(repository.Table, repository.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, tierassignment.RepositoryTable, tierassignment.RepositoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TierAssignmentClient) Hooks() []Hook {
	return c.hooks.TierAssignment
}

// Interceptors returns the client interceptors.
func (c *TierAssignmentClient) Interceptors() []Interceptor {
	return c.inters.TierAssignment
}

func (c *TierAssignmentClient) mutate(ctx context.Context, m *TierAssignmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TierAssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TierAssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TierAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TierAssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TierAssignment mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Alert, Analysis, BatchRun, Contributor, MetricSnapshot, Repository,
		SchedulerState, TierAssignment []ent.Hook
	}
	inters struct {
		Alert, Analysis, BatchRun, Contributor, MetricSnapshot, Repository,
		SchedulerState, TierAssignment []ent.Interceptor
	}
)
