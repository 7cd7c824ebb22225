// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ksuri/mindtriage/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/ksuri/mindtriage/ent/administrationevent"
	"github.com/ksuri/mindtriage/ent/llmrequestevent"
	"github.com/ksuri/mindtriage/ent/patientsnapshot"
	"github.com/ksuri/mindtriage/ent/riskevent"
	"github.com/ksuri/mindtriage/ent/selectionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AdministrationEvent is the client for interacting with the AdministrationEvent builders.
	AdministrationEvent *AdministrationEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// PatientSnapshot is the client for interacting with the PatientSnapshot builders.
	PatientSnapshot *PatientSnapshotClient
	// RiskEvent is the client for interacting with the RiskEvent builders.
	RiskEvent *RiskEventClient
	// SelectionEvent is the client for interacting with the SelectionEvent builders.
	SelectionEvent *SelectionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AdministrationEvent = NewAdministrationEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.PatientSnapshot = NewPatientSnapshotClient(c.config)
	c.RiskEvent = NewRiskEventClient(c.config)
	c.SelectionEvent = NewSelectionEventClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		AdministrationEvent: NewAdministrationEventClient(cfg),
		LLMRequestEvent:     NewLLMRequestEventClient(cfg),
		PatientSnapshot:     NewPatientSnapshotClient(cfg),
		RiskEvent:           NewRiskEventClient(cfg),
		SelectionEvent:      NewSelectionEventClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		AdministrationEvent: NewAdministrationEventClient(cfg),
		LLMRequestEvent:     NewLLMRequestEventClient(cfg),
		PatientSnapshot:     NewPatientSnapshotClient(cfg),
		RiskEvent:           NewRiskEventClient(cfg),
		SelectionEvent:      NewSelectionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AdministrationEvent.
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
	c.AdministrationEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.PatientSnapshot.Use(hooks...)
	c.RiskEvent.Use(hooks...)
	c.SelectionEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AdministrationEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.PatientSnapshot.Intercept(interceptors...)
	c.RiskEvent.Intercept(interceptors...)
	c.SelectionEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdministrationEventMutation:
		return c.AdministrationEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *PatientSnapshotMutation:
		return c.PatientSnapshot.mutate(ctx, m)
	case *RiskEventMutation:
		return c.RiskEvent.mutate(ctx, m)
	case *SelectionEventMutation:
		return c.SelectionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AdministrationEventClient is a client for the AdministrationEvent schema.
type AdministrationEventClient struct {
	config
}

// NewAdministrationEventClient returns a client for the AdministrationEvent from the given config.
func NewAdministrationEventClient(c config) *AdministrationEventClient {
	return &AdministrationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `administrationevent.Hooks(f(g(h())))`.
func (c *AdministrationEventClient) Use(hooks ...Hook) {
	c.hooks.AdministrationEvent = append(c.hooks.AdministrationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `administrationevent.Intercept(f(g(h())))`.
func (c *AdministrationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdministrationEvent = append(c.inters.AdministrationEvent, interceptors...)
}

// Create returns a builder for creating a AdministrationEvent entity.
func (c *AdministrationEventClient) Create() *AdministrationEventCreate {
	mutation := newAdministrationEventMutation(c.config, OpCreate)
	return &AdministrationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdministrationEvent entities.
func (c *AdministrationEventClient) CreateBulk(builders ...*AdministrationEventCreate) *AdministrationEventCreateBulk {
	return &AdministrationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdministrationEventClient) MapCreateBulk(slice any, setFunc func(*AdministrationEventCreate, int)) *AdministrationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdministrationEventCreateBulk{err: fmt.Errorf("calling to AdministrationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdministrationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdministrationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdministrationEvent.
func (c *AdministrationEventClient) Update() *AdministrationEventUpdate {
	mutation := newAdministrationEventMutation(c.config, OpUpdate)
	return &AdministrationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdministrationEventClient) UpdateOne(_m *AdministrationEvent) *AdministrationEventUpdateOne {
	mutation := newAdministrationEventMutation(c.config, OpUpdateOne, withAdministrationEvent(_m))
	return &AdministrationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdministrationEventClient) UpdateOneID(id int) *AdministrationEventUpdateOne {
	mutation := newAdministrationEventMutation(c.config, OpUpdateOne, withAdministrationEventID(id))
	return &AdministrationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdministrationEvent.
func (c *AdministrationEventClient) Delete() *AdministrationEventDelete {
	mutation := newAdministrationEventMutation(c.config, OpDelete)
	return &AdministrationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdministrationEventClient) DeleteOne(_m *AdministrationEvent) *AdministrationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdministrationEventClient) DeleteOneID(id int) *AdministrationEventDeleteOne {
	builder := c.Delete().Where(administrationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdministrationEventDeleteOne{builder}
}

// Query returns a query builder for AdministrationEvent.
func (c *AdministrationEventClient) Query() *AdministrationEventQuery {
	return &AdministrationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdministrationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AdministrationEvent entity by its id.
func (c *AdministrationEventClient) Get(ctx context.Context, id int) (*AdministrationEvent, error) {
	return c.Query().Where(administrationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdministrationEventClient) GetX(ctx context.Context, id int) *AdministrationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AdministrationEventClient) Hooks() []Hook {
	return c.hooks.AdministrationEvent
}

// Interceptors returns the client interceptors.
func (c *AdministrationEventClient) Interceptors() []Interceptor {
	return c.inters.AdministrationEvent
}

func (c *AdministrationEventClient) mutate(ctx context.Context, m *AdministrationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdministrationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdministrationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdministrationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdministrationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AdministrationEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// PatientSnapshotClient is a client for the PatientSnapshot schema.
type PatientSnapshotClient struct {
	config
}

// NewPatientSnapshotClient returns a client for the PatientSnapshot from the given config.
func NewPatientSnapshotClient(c config) *PatientSnapshotClient {
	return &PatientSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patientsnapshot.Hooks(f(g(h())))`.
func (c *PatientSnapshotClient) Use(hooks ...Hook) {
	c.hooks.PatientSnapshot = append(c.hooks.PatientSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patientsnapshot.Intercept(f(g(h())))`.
func (c *PatientSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatientSnapshot = append(c.inters.PatientSnapshot, interceptors...)
}

// Create returns a builder for creating a PatientSnapshot entity.
func (c *PatientSnapshotClient) Create() *PatientSnapshotCreate {
	mutation := newPatientSnapshotMutation(c.config, OpCreate)
	return &PatientSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatientSnapshot entities.
func (c *PatientSnapshotClient) CreateBulk(builders ...*PatientSnapshotCreate) *PatientSnapshotCreateBulk {
	return &PatientSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientSnapshotClient) MapCreateBulk(slice any, setFunc func(*PatientSnapshotCreate, int)) *PatientSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientSnapshotCreateBulk{err: fmt.Errorf("calling to PatientSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatientSnapshot.
func (c *PatientSnapshotClient) Update() *PatientSnapshotUpdate {
	mutation := newPatientSnapshotMutation(c.config, OpUpdate)
	return &PatientSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientSnapshotClient) UpdateOne(_m *PatientSnapshot) *PatientSnapshotUpdateOne {
	mutation := newPatientSnapshotMutation(c.config, OpUpdateOne, withPatientSnapshot(_m))
	return &PatientSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientSnapshotClient) UpdateOneID(id int) *PatientSnapshotUpdateOne {
	mutation := newPatientSnapshotMutation(c.config, OpUpdateOne, withPatientSnapshotID(id))
	return &PatientSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatientSnapshot.
func (c *PatientSnapshotClient) Delete() *PatientSnapshotDelete {
	mutation := newPatientSnapshotMutation(c.config, OpDelete)
	return &PatientSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientSnapshotClient) DeleteOne(_m *PatientSnapshot) *PatientSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientSnapshotClient) DeleteOneID(id int) *PatientSnapshotDeleteOne {
	builder := c.Delete().Where(patientsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientSnapshotDeleteOne{builder}
}

// Query returns a query builder for PatientSnapshot.
func (c *PatientSnapshotClient) Query() *PatientSnapshotQuery {
	return &PatientSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatientSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a PatientSnapshot entity by its id.
func (c *PatientSnapshotClient) Get(ctx context.Context, id int) (*PatientSnapshot, error) {
	return c.Query().Where(patientsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientSnapshotClient) GetX(ctx context.Context, id int) *PatientSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PatientSnapshotClient) Hooks() []Hook {
	return c.hooks.PatientSnapshot
}

// Interceptors returns the client interceptors.
func (c *PatientSnapshotClient) Interceptors() []Interceptor {
	return c.inters.PatientSnapshot
}

func (c *PatientSnapshotClient) mutate(ctx context.Context, m *PatientSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PatientSnapshot mutation op: %q", m.Op())
	}
}

// RiskEventClient is a client for the RiskEvent schema.
type RiskEventClient struct {
	config
}

// NewRiskEventClient returns a client for the RiskEvent from the given config.
func NewRiskEventClient(c config) *RiskEventClient {
	return &RiskEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `riskevent.Hooks(f(g(h())))`.
func (c *RiskEventClient) Use(hooks ...Hook) {
	c.hooks.RiskEvent = append(c.hooks.RiskEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `riskevent.Intercept(f(g(h())))`.
func (c *RiskEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RiskEvent = append(c.inters.RiskEvent, interceptors...)
}

// Create returns a builder for creating a RiskEvent entity.
func (c *RiskEventClient) Create() *RiskEventCreate {
	mutation := newRiskEventMutation(c.config, OpCreate)
	return &RiskEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RiskEvent entities.
func (c *RiskEventClient) CreateBulk(builders ...*RiskEventCreate) *RiskEventCreateBulk {
	return &RiskEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RiskEventClient) MapCreateBulk(slice any, setFunc func(*RiskEventCreate, int)) *RiskEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RiskEventCreateBulk{err: fmt.Errorf("calling to RiskEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RiskEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RiskEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RiskEvent.
func (c *RiskEventClient) Update() *RiskEventUpdate {
	mutation := newRiskEventMutation(c.config, OpUpdate)
	return &RiskEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RiskEventClient) UpdateOne(_m *RiskEvent) *RiskEventUpdateOne {
	mutation := newRiskEventMutation(c.config, OpUpdateOne, withRiskEvent(_m))
	return &RiskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RiskEventClient) UpdateOneID(id int) *RiskEventUpdateOne {
	mutation := newRiskEventMutation(c.config, OpUpdateOne, withRiskEventID(id))
	return &RiskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RiskEvent.
func (c *RiskEventClient) Delete() *RiskEventDelete {
	mutation := newRiskEventMutation(c.config, OpDelete)
	return &RiskEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RiskEventClient) DeleteOne(_m *RiskEvent) *RiskEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RiskEventClient) DeleteOneID(id int) *RiskEventDeleteOne {
	builder := c.Delete().Where(riskevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RiskEventDeleteOne{builder}
}

// Query returns a query builder for RiskEvent.
func (c *RiskEventClient) Query() *RiskEventQuery {
	return &RiskEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRiskEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RiskEvent entity by its id.
func (c *RiskEventClient) Get(ctx context.Context, id int) (*RiskEvent, error) {
	return c.Query().Where(riskevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RiskEventClient) GetX(ctx context.Context, id int) *RiskEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RiskEventClient) Hooks() []Hook {
	return c.hooks.RiskEvent
}

// Interceptors returns the client interceptors.
func (c *RiskEventClient) Interceptors() []Interceptor {
	return c.inters.RiskEvent
}

func (c *RiskEventClient) mutate(ctx context.Context, m *RiskEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RiskEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RiskEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RiskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RiskEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RiskEvent mutation op: %q", m.Op())
	}
}

// SelectionEventClient is a client for the SelectionEvent schema.
type SelectionEventClient struct {
	config
}

// NewSelectionEventClient returns a client for the SelectionEvent from the given config.
func NewSelectionEventClient(c config) *SelectionEventClient {
	return &SelectionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `selectionevent.Hooks(f(g(h())))`.
func (c *SelectionEventClient) Use(hooks ...Hook) {
	c.hooks.SelectionEvent = append(c.hooks.SelectionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `selectionevent.Intercept(f(g(h())))`.
func (c *SelectionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SelectionEvent = append(c.inters.SelectionEvent, interceptors...)
}

// Create returns a builder for creating a SelectionEvent entity.
func (c *SelectionEventClient) Create() *SelectionEventCreate {
	mutation := newSelectionEventMutation(c.config, OpCreate)
	return &SelectionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SelectionEvent entities.
func (c *SelectionEventClient) CreateBulk(builders ...*SelectionEventCreate) *SelectionEventCreateBulk {
	return &SelectionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SelectionEventClient) MapCreateBulk(slice any, setFunc func(*SelectionEventCreate, int)) *SelectionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SelectionEventCreateBulk{err: fmt.Errorf("calling to SelectionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SelectionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SelectionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SelectionEvent.
func (c *SelectionEventClient) Update() *SelectionEventUpdate {
	mutation := newSelectionEventMutation(c.config, OpUpdate)
	return &SelectionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SelectionEventClient) UpdateOne(_m *SelectionEvent) *SelectionEventUpdateOne {
	mutation := newSelectionEventMutation(c.config, OpUpdateOne, withSelectionEvent(_m))
	return &SelectionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SelectionEventClient) UpdateOneID(id int) *SelectionEventUpdateOne {
	mutation := newSelectionEventMutation(c.config, OpUpdateOne, withSelectionEventID(id))
	return &SelectionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SelectionEvent.
func (c *SelectionEventClient) Delete() *SelectionEventDelete {
	mutation := newSelectionEventMutation(c.config, OpDelete)
	return &SelectionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SelectionEventClient) DeleteOne(_m *SelectionEvent) *SelectionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SelectionEventClient) DeleteOneID(id int) *SelectionEventDeleteOne {
	builder := c.Delete().Where(selectionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SelectionEventDeleteOne{builder}
}

// Query returns a query builder for SelectionEvent.
func (c *SelectionEventClient) Query() *SelectionEventQuery {
	return &SelectionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSelectionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SelectionEvent entity by its id.
func (c *SelectionEventClient) Get(ctx context.Context, id int) (*SelectionEvent, error) {
	return c.Query().Where(selectionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SelectionEventClient) GetX(ctx context.Context, id int) *SelectionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SelectionEventClient) Hooks() []Hook {
	return c.hooks.SelectionEvent
}

// Interceptors returns the client interceptors.
func (c *SelectionEventClient) Interceptors() []Interceptor {
	return c.inters.SelectionEvent
}

func (c *SelectionEventClient) mutate(ctx context.Context, m *SelectionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SelectionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SelectionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SelectionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SelectionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SelectionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AdministrationEvent, LLMRequestEvent, PatientSnapshot, RiskEvent,
		SelectionEvent []ent.Hook
	}
	inters struct {
		AdministrationEvent, LLMRequestEvent, PatientSnapshot, RiskEvent,
		SelectionEvent []ent.Interceptor
	}
)
