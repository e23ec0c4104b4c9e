// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/reconkit/phone-recon/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reconkit/phone-recon/gen/ent/comparisonsnapshot"
	"github.com/reconkit/phone-recon/gen/ent/existingcontact"
	"github.com/reconkit/phone-recon/gen/ent/extractednumber"
	"github.com/reconkit/phone-recon/gen/ent/group"
	"github.com/reconkit/phone-recon/gen/ent/screenshot"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ComparisonSnapshot is the client for interacting with the ComparisonSnapshot builders.
	ComparisonSnapshot *ComparisonSnapshotClient
	// ExistingContact is the client for interacting with the ExistingContact builders.
	ExistingContact *ExistingContactClient
	// ExtractedNumber is the client for interacting with the ExtractedNumber builders.
	ExtractedNumber *ExtractedNumberClient
	// Group is the client for interacting with the Group builders.
	Group *GroupClient
	// Screenshot is the client for interacting with the Screenshot builders.
	Screenshot *ScreenshotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ComparisonSnapshot = NewComparisonSnapshotClient(c.config)
	c.ExistingContact = NewExistingContactClient(c.config)
	c.ExtractedNumber = NewExtractedNumberClient(c.config)
	c.Group = NewGroupClient(c.config)
	c.Screenshot = NewScreenshotClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		ComparisonSnapshot: NewComparisonSnapshotClient(cfg),
		ExistingContact:    NewExistingContactClient(cfg),
		ExtractedNumber:    NewExtractedNumberClient(cfg),
		Group:              NewGroupClient(cfg),
		Screenshot:         NewScreenshotClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		ComparisonSnapshot: NewComparisonSnapshotClient(cfg),
		ExistingContact:    NewExistingContactClient(cfg),
		ExtractedNumber:    NewExtractedNumberClient(cfg),
		Group:              NewGroupClient(cfg),
		Screenshot:         NewScreenshotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ComparisonSnapshot.
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
	c.ComparisonSnapshot.Use(hooks...)
	c.ExistingContact.Use(hooks...)
	c.ExtractedNumber.Use(hooks...)
	c.Group.Use(hooks...)
	c.Screenshot.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ComparisonSnapshot.Intercept(interceptors...)
	c.ExistingContact.Intercept(interceptors...)
	c.ExtractedNumber.Intercept(interceptors...)
	c.Group.Intercept(interceptors...)
	c.Screenshot.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ComparisonSnapshotMutation:
		return c.ComparisonSnapshot.mutate(ctx, m)
	case *ExistingContactMutation:
		return c.ExistingContact.mutate(ctx, m)
	case *ExtractedNumberMutation:
		return c.ExtractedNumber.mutate(ctx, m)
	case *GroupMutation:
		return c.Group.mutate(ctx, m)
	case *ScreenshotMutation:
		return c.Screenshot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ComparisonSnapshotClient is a client for the ComparisonSnapshot schema.
type ComparisonSnapshotClient struct {
	config
}

// NewComparisonSnapshotClient returns a client for the ComparisonSnapshot from the given config.
func NewComparisonSnapshotClient(c config) *ComparisonSnapshotClient {
	return &ComparisonSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `comparisonsnapshot.Hooks(f(g(h())))`.
func (c *ComparisonSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ComparisonSnapshot = append(c.hooks.ComparisonSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `comparisonsnapshot.Intercept(f(g(h())))`.
func (c *ComparisonSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ComparisonSnapshot = append(c.inters.ComparisonSnapshot, interceptors...)
}

// Create returns a builder for creating a ComparisonSnapshot entity.
func (c *ComparisonSnapshotClient) Create() *ComparisonSnapshotCreate {
	mutation := newComparisonSnapshotMutation(c.config, OpCreate)
	return &ComparisonSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ComparisonSnapshot entities.
func (c *ComparisonSnapshotClient) CreateBulk(builders ...*ComparisonSnapshotCreate) *ComparisonSnapshotCreateBulk {
	return &ComparisonSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ComparisonSnapshotClient) MapCreateBulk(slice any, setFunc func(*ComparisonSnapshotCreate, int)) *ComparisonSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ComparisonSnapshotCreateBulk{err: fmt.Errorf("calling to ComparisonSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ComparisonSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ComparisonSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ComparisonSnapshot.
func (c *ComparisonSnapshotClient) Update() *ComparisonSnapshotUpdate {
	mutation := newComparisonSnapshotMutation(c.config, OpUpdate)
	return &ComparisonSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ComparisonSnapshotClient) UpdateOne(_m *ComparisonSnapshot) *ComparisonSnapshotUpdateOne {
	mutation := newComparisonSnapshotMutation(c.config, OpUpdateOne, withComparisonSnapshot(_m))
	return &ComparisonSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ComparisonSnapshotClient) UpdateOneID(id uuid.UUID) *ComparisonSnapshotUpdateOne {
	mutation := newComparisonSnapshotMutation(c.config, OpUpdateOne, withComparisonSnapshotID(id))
	return &ComparisonSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ComparisonSnapshot.
func (c *ComparisonSnapshotClient) Delete() *ComparisonSnapshotDelete {
	mutation := newComparisonSnapshotMutation(c.config, OpDelete)
	return &ComparisonSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ComparisonSnapshotClient) DeleteOne(_m *ComparisonSnapshot) *ComparisonSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ComparisonSnapshotClient) DeleteOneID(id uuid.UUID) *ComparisonSnapshotDeleteOne {
	builder := c.Delete().Where(comparisonsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ComparisonSnapshotDeleteOne{builder}
}

// Query returns a query builder for ComparisonSnapshot.
func (c *ComparisonSnapshotClient) Query() *ComparisonSnapshotQuery {
	return &ComparisonSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeComparisonSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ComparisonSnapshot entity by its id.
func (c *ComparisonSnapshotClient) Get(ctx context.Context, id uuid.UUID) (*ComparisonSnapshot, error) {
	return c.Query().Where(comparisonsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ComparisonSnapshotClient) GetX(ctx context.Context, id uuid.UUID) *ComparisonSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ComparisonSnapshotClient) Hooks() []Hook {
	return c.hooks.ComparisonSnapshot
}

// Interceptors returns the client interceptors.
func (c *ComparisonSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ComparisonSnapshot
}

func (c *ComparisonSnapshotClient) mutate(ctx context.Context, m *ComparisonSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ComparisonSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ComparisonSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ComparisonSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ComparisonSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ComparisonSnapshot mutation op: %q", m.Op())
	}
}

// ExistingContactClient is a client for the ExistingContact schema.
type ExistingContactClient struct {
	config
}

// NewExistingContactClient returns a client for the ExistingContact from the given config.
func NewExistingContactClient(c config) *ExistingContactClient {
	return &ExistingContactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `existingcontact.Hooks(f(g(h())))`.
func (c *ExistingContactClient) Use(hooks ...Hook) {
	c.hooks.ExistingContact = append(c.hooks.ExistingContact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `existingcontact.Intercept(f(g(h())))`.
func (c *ExistingContactClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExistingContact = append(c.inters.ExistingContact, interceptors...)
}

// Create returns a builder for creating a ExistingContact entity.
func (c *ExistingContactClient) Create() *ExistingContactCreate {
	mutation := newExistingContactMutation(c.config, OpCreate)
	return &ExistingContactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExistingContact entities.
func (c *ExistingContactClient) CreateBulk(builders ...*ExistingContactCreate) *ExistingContactCreateBulk {
	return &ExistingContactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExistingContactClient) MapCreateBulk(slice any, setFunc func(*ExistingContactCreate, int)) *ExistingContactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExistingContactCreateBulk{err: fmt.Errorf("calling to ExistingContactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExistingContactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExistingContactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExistingContact.
func (c *ExistingContactClient) Update() *ExistingContactUpdate {
	mutation := newExistingContactMutation(c.config, OpUpdate)
	return &ExistingContactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExistingContactClient) UpdateOne(_m *ExistingContact) *ExistingContactUpdateOne {
	mutation := newExistingContactMutation(c.config, OpUpdateOne, withExistingContact(_m))
	return &ExistingContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExistingContactClient) UpdateOneID(id uuid.UUID) *ExistingContactUpdateOne {
	mutation := newExistingContactMutation(c.config, OpUpdateOne, withExistingContactID(id))
	return &ExistingContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExistingContact.
func (c *ExistingContactClient) Delete() *ExistingContactDelete {
	mutation := newExistingContactMutation(c.config, OpDelete)
	return &ExistingContactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExistingContactClient) DeleteOne(_m *ExistingContact) *ExistingContactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExistingContactClient) DeleteOneID(id uuid.UUID) *ExistingContactDeleteOne {
	builder := c.Delete().Where(existingcontact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExistingContactDeleteOne{builder}
}

// Query returns a query builder for ExistingContact.
func (c *ExistingContactClient) Query() *ExistingContactQuery {
	return &ExistingContactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExistingContact},
		inters: c.Interceptors(),
	}
}

// Get returns a ExistingContact entity by its id.
func (c *ExistingContactClient) Get(ctx context.Context, id uuid.UUID) (*ExistingContact, error) {
	return c.Query().Where(existingcontact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExistingContactClient) GetX(ctx context.Context, id uuid.UUID) *ExistingContact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExistingContactClient) Hooks() []Hook {
	return c.hooks.ExistingContact
}

// Interceptors returns the client interceptors.
func (c *ExistingContactClient) Interceptors() []Interceptor {
	return c.inters.ExistingContact
}

func (c *ExistingContactClient) mutate(ctx context.Context, m *ExistingContactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExistingContactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExistingContactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExistingContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExistingContactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExistingContact mutation op: %q", m.Op())
	}
}

// ExtractedNumberClient is a client for the ExtractedNumber schema.
type ExtractedNumberClient struct {
	config
}

// NewExtractedNumberClient returns a client for the ExtractedNumber from the given config.
func NewExtractedNumberClient(c config) *ExtractedNumberClient {
	return &ExtractedNumberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractednumber.Hooks(f(g(h())))`.
func (c *ExtractedNumberClient) Use(hooks ...Hook) {
	c.hooks.ExtractedNumber = append(c.hooks.ExtractedNumber, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractednumber.Intercept(f(g(h())))`.
func (c *ExtractedNumberClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedNumber = append(c.inters.ExtractedNumber, interceptors...)
}

// Create returns a builder for creating a ExtractedNumber entity.
func (c *ExtractedNumberClient) Create() *ExtractedNumberCreate {
	mutation := newExtractedNumberMutation(c.config, OpCreate)
	return &ExtractedNumberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedNumber entities.
func (c *ExtractedNumberClient) CreateBulk(builders ...*ExtractedNumberCreate) *ExtractedNumberCreateBulk {
	return &ExtractedNumberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedNumberClient) MapCreateBulk(slice any, setFunc func(*ExtractedNumberCreate, int)) *ExtractedNumberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedNumberCreateBulk{err: fmt.Errorf("calling to ExtractedNumberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedNumberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedNumberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedNumber.
func (c *ExtractedNumberClient) Update() *ExtractedNumberUpdate {
	mutation := newExtractedNumberMutation(c.config, OpUpdate)
	return &ExtractedNumberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedNumberClient) UpdateOne(_m *ExtractedNumber) *ExtractedNumberUpdateOne {
	mutation := newExtractedNumberMutation(c.config, OpUpdateOne, withExtractedNumber(_m))
	return &ExtractedNumberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedNumberClient) UpdateOneID(id uuid.UUID) *ExtractedNumberUpdateOne {
	mutation := newExtractedNumberMutation(c.config, OpUpdateOne, withExtractedNumberID(id))
	return &ExtractedNumberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedNumber.
func (c *ExtractedNumberClient) Delete() *ExtractedNumberDelete {
	mutation := newExtractedNumberMutation(c.config, OpDelete)
	return &ExtractedNumberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedNumberClient) DeleteOne(_m *ExtractedNumber) *ExtractedNumberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedNumberClient) DeleteOneID(id uuid.UUID) *ExtractedNumberDeleteOne {
	builder := c.Delete().Where(extractednumber.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedNumberDeleteOne{builder}
}

// Query returns a query builder for ExtractedNumber.
func (c *ExtractedNumberClient) Query() *ExtractedNumberQuery {
	return &ExtractedNumberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedNumber},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedNumber entity by its id.
func (c *ExtractedNumberClient) Get(ctx context.Context, id uuid.UUID) (*ExtractedNumber, error) {
	return c.Query().Where(extractednumber.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedNumberClient) GetX(ctx context.Context, id uuid.UUID) *ExtractedNumber {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryScreenshot queries the screenshot edge of a ExtractedNumber.
func (c *ExtractedNumberClient) QueryScreenshot(_m *ExtractedNumber) *ScreenshotQuery {
	query := (&ScreenshotClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractednumber.Table, extractednumber.FieldID, id),
			sqlgraph.To(screenshot.Table, screenshot.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractednumber.ScreenshotTable, extractednumber.ScreenshotColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGroups queries the groups edge of a ExtractedNumber.
func (c *ExtractedNumberClient) QueryGroups(_m *ExtractedNumber) *GroupQuery {
	query := (&GroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractednumber.Table, extractednumber.FieldID, id),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, extractednumber.GroupsTable, extractednumber.GroupsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedNumberClient) Hooks() []Hook {
	return c.hooks.ExtractedNumber
}

// Interceptors returns the client interceptors.
func (c *ExtractedNumberClient) Interceptors() []Interceptor {
	return c.inters.ExtractedNumber
}

func (c *ExtractedNumberClient) mutate(ctx context.Context, m *ExtractedNumberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedNumberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedNumberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedNumberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedNumberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedNumber mutation op: %q", m.Op())
	}
}

// GroupClient is a client for the Group schema.
type GroupClient struct {
	config
}

// NewGroupClient returns a client for the Group from the given config.
func NewGroupClient(c config) *GroupClient {
	return &GroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `group.Hooks(f(g(h())))`.
func (c *GroupClient) Use(hooks ...Hook) {
	c.hooks.Group = append(c.hooks.Group, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `group.Intercept(f(g(h())))`.
func (c *GroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.Group = append(c.inters.Group, interceptors...)
}

// Create returns a builder for creating a Group entity.
func (c *GroupClient) Create() *GroupCreate {
	mutation := newGroupMutation(c.config, OpCreate)
	return &GroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Group entities.
func (c *GroupClient) CreateBulk(builders ...*GroupCreate) *GroupCreateBulk {
	return &GroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GroupClient) MapCreateBulk(slice any, setFunc func(*GroupCreate, int)) *GroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GroupCreateBulk{err: fmt.Errorf("calling to GroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Group.
func (c *GroupClient) Update() *GroupUpdate {
	mutation := newGroupMutation(c.config, OpUpdate)
	return &GroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GroupClient) UpdateOne(_m *Group) *GroupUpdateOne {
	mutation := newGroupMutation(c.config, OpUpdateOne, withGroup(_m))
	return &GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GroupClient) UpdateOneID(id uuid.UUID) *GroupUpdateOne {
	mutation := newGroupMutation(c.config, OpUpdateOne, withGroupID(id))
	return &GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Group.
func (c *GroupClient) Delete() *GroupDelete {
	mutation := newGroupMutation(c.config, OpDelete)
	return &GroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GroupClient) DeleteOne(_m *Group) *GroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GroupClient) DeleteOneID(id uuid.UUID) *GroupDeleteOne {
	builder := c.Delete().Where(group.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GroupDeleteOne{builder}
}

// Query returns a query builder for Group.
func (c *GroupClient) Query() *GroupQuery {
	return &GroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a Group entity by its id.
func (c *GroupClient) Get(ctx context.Context, id uuid.UUID) (*Group, error) {
	return c.Query().Where(group.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GroupClient) GetX(ctx context.Context, id uuid.UUID) *Group {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNumbers queries the numbers edge of a Group.
func (c *GroupClient) QueryNumbers(_m *Group) *ExtractedNumberQuery {
	query := (&ExtractedNumberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(group.Table, group.FieldID, id),
			sqlgraph.To(extractednumber.Table, extractednumber.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, group.NumbersTable, group.NumbersPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GroupClient) Hooks() []Hook {
	return c.hooks.Group
}

// Interceptors returns the client interceptors.
func (c *GroupClient) Interceptors() []Interceptor {
	return c.inters.Group
}

func (c *GroupClient) mutate(ctx context.Context, m *GroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Group mutation op: %q", m.Op())
	}
}

// ScreenshotClient is a client for the Screenshot schema.
type ScreenshotClient struct {
	config
}

// NewScreenshotClient returns a client for the Screenshot from the given config.
func NewScreenshotClient(c config) *ScreenshotClient {
	return &ScreenshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `screenshot.Hooks(f(g(h())))`.
func (c *ScreenshotClient) Use(hooks ...Hook) {
	c.hooks.Screenshot = append(c.hooks.Screenshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `screenshot.Intercept(f(g(h())))`.
func (c *ScreenshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Screenshot = append(c.inters.Screenshot, interceptors...)
}

// Create returns a builder for creating a Screenshot entity.
func (c *ScreenshotClient) Create() *ScreenshotCreate {
	mutation := newScreenshotMutation(c.config, OpCreate)
	return &ScreenshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Screenshot entities.
func (c *ScreenshotClient) CreateBulk(builders ...*ScreenshotCreate) *ScreenshotCreateBulk {
	return &ScreenshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScreenshotClient) MapCreateBulk(slice any, setFunc func(*ScreenshotCreate, int)) *ScreenshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScreenshotCreateBulk{err: fmt.Errorf("calling to ScreenshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScreenshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScreenshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Screenshot.
func (c *ScreenshotClient) Update() *ScreenshotUpdate {
	mutation := newScreenshotMutation(c.config, OpUpdate)
	return &ScreenshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScreenshotClient) UpdateOne(_m *Screenshot) *ScreenshotUpdateOne {
	mutation := newScreenshotMutation(c.config, OpUpdateOne, withScreenshot(_m))
	return &ScreenshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScreenshotClient) UpdateOneID(id uuid.UUID) *ScreenshotUpdateOne {
	mutation := newScreenshotMutation(c.config, OpUpdateOne, withScreenshotID(id))
	return &ScreenshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Screenshot.
func (c *ScreenshotClient) Delete() *ScreenshotDelete {
	mutation := newScreenshotMutation(c.config, OpDelete)
	return &ScreenshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScreenshotClient) DeleteOne(_m *Screenshot) *ScreenshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScreenshotClient) DeleteOneID(id uuid.UUID) *ScreenshotDeleteOne {
	builder := c.Delete().Where(screenshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScreenshotDeleteOne{builder}
}

// Query returns a query builder for Screenshot.
func (c *ScreenshotClient) Query() *ScreenshotQuery {
	return &ScreenshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScreenshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Screenshot entity by its id.
func (c *ScreenshotClient) Get(ctx context.Context, id uuid.UUID) (*Screenshot, error) {
	return c.Query().Where(screenshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScreenshotClient) GetX(ctx context.Context, id uuid.UUID) *Screenshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNumbers queries the numbers edge of a Screenshot.
func (c *ScreenshotClient) QueryNumbers(_m *Screenshot) *ExtractedNumberQuery {
	query := (&ExtractedNumberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(screenshot.Table, screenshot.FieldID, id),
			sqlgraph.To(extractednumber.Table, extractednumber.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, screenshot.NumbersTable, screenshot.NumbersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScreenshotClient) Hooks() []Hook {
	return c.hooks.Screenshot
}

// Interceptors returns the client interceptors.
func (c *ScreenshotClient) Interceptors() []Interceptor {
	return c.inters.Screenshot
}

func (c *ScreenshotClient) mutate(ctx context.Context, m *ScreenshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScreenshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScreenshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScreenshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScreenshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Screenshot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ComparisonSnapshot, ExistingContact, ExtractedNumber, Group,
		Screenshot []ent.Hook
	}
	inters struct {
		ComparisonSnapshot, ExistingContact, ExtractedNumber, Group,
		Screenshot []ent.Interceptor
	}
)
