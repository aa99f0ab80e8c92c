// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"digitflow/ent/migrate"

	"digitflow/ent/accesskey"
	"digitflow/ent/bounddevice"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AccessKey is the client for interacting with the AccessKey builders.
	AccessKey *AccessKeyClient
	// BoundDevice is the client for interacting with the BoundDevice builders.
	BoundDevice *BoundDeviceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AccessKey = NewAccessKeyClient(c.config)
	c.BoundDevice = NewBoundDeviceClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		AccessKey:   NewAccessKeyClient(cfg),
		BoundDevice: NewBoundDeviceClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		AccessKey:   NewAccessKeyClient(cfg),
		BoundDevice: NewBoundDeviceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AccessKey.
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
	c.AccessKey.Use(hooks...)
	c.BoundDevice.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AccessKey.Intercept(interceptors...)
	c.BoundDevice.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AccessKeyMutation:
		return c.AccessKey.mutate(ctx, m)
	case *BoundDeviceMutation:
		return c.BoundDevice.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AccessKeyClient is a client for the AccessKey schema.
type AccessKeyClient struct {
	config
}

// NewAccessKeyClient returns a client for the AccessKey from the given config.
func NewAccessKeyClient(c config) *AccessKeyClient {
	return &AccessKeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `accesskey.Hooks(f(g(h())))`.
func (c *AccessKeyClient) Use(hooks ...Hook) {
	c.hooks.AccessKey = append(c.hooks.AccessKey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `accesskey.Intercept(f(g(h())))`.
func (c *AccessKeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.AccessKey = append(c.inters.AccessKey, interceptors...)
}

// Create returns a builder for creating a AccessKey entity.
func (c *AccessKeyClient) Create() *AccessKeyCreate {
	mutation := newAccessKeyMutation(c.config, OpCreate)
	return &AccessKeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AccessKey entities.
func (c *AccessKeyClient) CreateBulk(builders ...*AccessKeyCreate) *AccessKeyCreateBulk {
	return &AccessKeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AccessKeyClient) MapCreateBulk(slice any, setFunc func(*AccessKeyCreate, int)) *AccessKeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AccessKeyCreateBulk{err: fmt.Errorf("calling to AccessKeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AccessKeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AccessKeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AccessKey.
func (c *AccessKeyClient) Update() *AccessKeyUpdate {
	mutation := newAccessKeyMutation(c.config, OpUpdate)
	return &AccessKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AccessKeyClient) UpdateOne(_m *AccessKey) *AccessKeyUpdateOne {
	mutation := newAccessKeyMutation(c.config, OpUpdateOne, withAccessKey(_m))
	return &AccessKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AccessKeyClient) UpdateOneID(id uuid.UUID) *AccessKeyUpdateOne {
	mutation := newAccessKeyMutation(c.config, OpUpdateOne, withAccessKeyID(id))
	return &AccessKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AccessKey.
func (c *AccessKeyClient) Delete() *AccessKeyDelete {
	mutation := newAccessKeyMutation(c.config, OpDelete)
	return &AccessKeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AccessKeyClient) DeleteOne(_m *AccessKey) *AccessKeyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AccessKeyClient) DeleteOneID(id uuid.UUID) *AccessKeyDeleteOne {
	builder := c.Delete().Where(accesskey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AccessKeyDeleteOne{builder}
}

// Query returns a query builder for AccessKey.
func (c *AccessKeyClient) Query() *AccessKeyQuery {
	return &AccessKeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAccessKey},
		inters: c.Interceptors(),
	}
}

// Get returns a AccessKey entity by its id.
func (c *AccessKeyClient) Get(ctx context.Context, id uuid.UUID) (*AccessKey, error) {
	return c.Query().Where(accesskey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AccessKeyClient) GetX(ctx context.Context, id uuid.UUID) *AccessKey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDevices queries the devices edge of a AccessKey.
func (c *AccessKeyClient) QueryDevices(_m *AccessKey) *BoundDeviceQuery {
	query := (&BoundDeviceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(accesskey.Table, accesskey.FieldID, id),
			sqlgraph.To(bounddevice.Table, bounddevice.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, accesskey.DevicesTable, accesskey.DevicesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AccessKeyClient) Hooks() []Hook {
	return c.hooks.AccessKey
}

// Interceptors returns the client interceptors.
func (c *AccessKeyClient) Interceptors() []Interceptor {
	return c.inters.AccessKey
}

func (c *AccessKeyClient) mutate(ctx context.Context, m *AccessKeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AccessKeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AccessKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AccessKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AccessKeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AccessKey mutation op: %q", m.Op())
	}
}

// BoundDeviceClient is a client for the BoundDevice schema.
type BoundDeviceClient struct {
	config
}

// NewBoundDeviceClient returns a client for the BoundDevice from the given config.
func NewBoundDeviceClient(c config) *BoundDeviceClient {
	return &BoundDeviceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bounddevice.Hooks(f(g(h())))`.
func (c *BoundDeviceClient) Use(hooks ...Hook) {
	c.hooks.BoundDevice = append(c.hooks.BoundDevice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bounddevice.Intercept(f(g(h())))`.
func (c *BoundDeviceClient) Intercept(interceptors ...Interceptor) {
	c.inters.BoundDevice = append(c.inters.BoundDevice, interceptors...)
}

// Create returns a builder for creating a BoundDevice entity.
func (c *BoundDeviceClient) Create() *BoundDeviceCreate {
	mutation := newBoundDeviceMutation(c.config, OpCreate)
	return &BoundDeviceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BoundDevice entities.
func (c *BoundDeviceClient) CreateBulk(builders ...*BoundDeviceCreate) *BoundDeviceCreateBulk {
	return &BoundDeviceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BoundDeviceClient) MapCreateBulk(slice any, setFunc func(*BoundDeviceCreate, int)) *BoundDeviceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BoundDeviceCreateBulk{err: fmt.Errorf("calling to BoundDeviceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BoundDeviceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BoundDeviceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BoundDevice.
func (c *BoundDeviceClient) Update() *BoundDeviceUpdate {
	mutation := newBoundDeviceMutation(c.config, OpUpdate)
	return &BoundDeviceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BoundDeviceClient) UpdateOne(_m *BoundDevice) *BoundDeviceUpdateOne {
	mutation := newBoundDeviceMutation(c.config, OpUpdateOne, withBoundDevice(_m))
	return &BoundDeviceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BoundDeviceClient) UpdateOneID(id uuid.UUID) *BoundDeviceUpdateOne {
	mutation := newBoundDeviceMutation(c.config, OpUpdateOne, withBoundDeviceID(id))
	return &BoundDeviceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BoundDevice.
func (c *BoundDeviceClient) Delete() *BoundDeviceDelete {
	mutation := newBoundDeviceMutation(c.config, OpDelete)
	return &BoundDeviceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BoundDeviceClient) DeleteOne(_m *BoundDevice) *BoundDeviceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BoundDeviceClient) DeleteOneID(id uuid.UUID) *BoundDeviceDeleteOne {
	builder := c.Delete().Where(bounddevice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BoundDeviceDeleteOne{builder}
}

// Query returns a query builder for BoundDevice.
func (c *BoundDeviceClient) Query() *BoundDeviceQuery {
	return &BoundDeviceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBoundDevice},
		inters: c.Interceptors(),
	}
}

// Get returns a BoundDevice entity by its id.
func (c *BoundDeviceClient) Get(ctx context.Context, id uuid.UUID) (*BoundDevice, error) {
	return c.Query().Where(bounddevice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BoundDeviceClient) GetX(ctx context.Context, id uuid.UUID) *BoundDevice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryKey queries the key edge of a BoundDevice.
func (c *BoundDeviceClient) QueryKey(_m *BoundDevice) *AccessKeyQuery {
	query := (&AccessKeyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bounddevice.Table, bounddevice.FieldID, id),
			sqlgraph.To(accesskey.Table, accesskey.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, bounddevice.KeyTable, bounddevice.KeyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BoundDeviceClient) Hooks() []Hook {
	return c.hooks.BoundDevice
}

// Interceptors returns the client interceptors.
func (c *BoundDeviceClient) Interceptors() []Interceptor {
	return c.inters.BoundDevice
}

func (c *BoundDeviceClient) mutate(ctx context.Context, m *BoundDeviceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BoundDeviceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BoundDeviceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BoundDeviceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BoundDeviceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BoundDevice mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AccessKey, BoundDevice []ent.Hook
	}
	inters struct {
		AccessKey, BoundDevice []ent.Interceptor
	}
)
