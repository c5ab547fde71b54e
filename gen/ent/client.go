// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/enrichedrecord"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/processingjob"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/upload"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// EnrichedRecord is the client for interacting with the EnrichedRecord builders.
	EnrichedRecord *EnrichedRecordClient
	// ProcessingJob is the client for interacting with the ProcessingJob builders.
	ProcessingJob *ProcessingJobClient
	// Upload is the client for interacting with the Upload builders.
	Upload *UploadClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.EnrichedRecord = NewEnrichedRecordClient(c.config)
	c.ProcessingJob = NewProcessingJobClient(c.config)
	c.Upload = NewUploadClient(c.config)
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
		EnrichedRecord: NewEnrichedRecordClient(cfg),
		ProcessingJob:  NewProcessingJobClient(cfg),
		Upload:         NewUploadClient(cfg),
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
		EnrichedRecord: NewEnrichedRecordClient(cfg),
		ProcessingJob:  NewProcessingJobClient(cfg),
		Upload:         NewUploadClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		EnrichedRecord.
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
	c.EnrichedRecord.Use(hooks...)
	c.ProcessingJob.Use(hooks...)
	c.Upload.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.EnrichedRecord.Intercept(interceptors...)
	c.ProcessingJob.Intercept(interceptors...)
	c.Upload.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EnrichedRecordMutation:
		return c.EnrichedRecord.mutate(ctx, m)
	case *ProcessingJobMutation:
		return c.ProcessingJob.mutate(ctx, m)
	case *UploadMutation:
		return c.Upload.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EnrichedRecordClient is a client for the EnrichedRecord schema.
type EnrichedRecordClient struct {
	config
}

// NewEnrichedRecordClient returns a client for the EnrichedRecord from the given config.
func NewEnrichedRecordClient(c config) *EnrichedRecordClient {
	return &EnrichedRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `enrichedrecord.Hooks(f(g(h())))`.
func (c *EnrichedRecordClient) Use(hooks ...Hook) {
	c.hooks.EnrichedRecord = append(c.hooks.EnrichedRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `enrichedrecord.Intercept(f(g(h())))`.
func (c *EnrichedRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.EnrichedRecord = append(c.inters.EnrichedRecord, interceptors...)
}

// Create returns a builder for creating a EnrichedRecord entity.
func (c *EnrichedRecordClient) Create() *EnrichedRecordCreate {
	mutation := newEnrichedRecordMutation(c.config, OpCreate)
	return &EnrichedRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EnrichedRecord entities.
func (c *EnrichedRecordClient) CreateBulk(builders ...*EnrichedRecordCreate) *EnrichedRecordCreateBulk {
	return &EnrichedRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EnrichedRecordClient) MapCreateBulk(slice any, setFunc func(*EnrichedRecordCreate, int)) *EnrichedRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EnrichedRecordCreateBulk{err: fmt.Errorf("calling to EnrichedRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EnrichedRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EnrichedRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EnrichedRecord.
func (c *EnrichedRecordClient) Update() *EnrichedRecordUpdate {
	mutation := newEnrichedRecordMutation(c.config, OpUpdate)
	return &EnrichedRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EnrichedRecordClient) UpdateOne(_m *EnrichedRecord) *EnrichedRecordUpdateOne {
	mutation := newEnrichedRecordMutation(c.config, OpUpdateOne, withEnrichedRecord(_m))
	return &EnrichedRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EnrichedRecordClient) UpdateOneID(id uuid.UUID) *EnrichedRecordUpdateOne {
	mutation := newEnrichedRecordMutation(c.config, OpUpdateOne, withEnrichedRecordID(id))
	return &EnrichedRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EnrichedRecord.
func (c *EnrichedRecordClient) Delete() *EnrichedRecordDelete {
	mutation := newEnrichedRecordMutation(c.config, OpDelete)
	return &EnrichedRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EnrichedRecordClient) DeleteOne(_m *EnrichedRecord) *EnrichedRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EnrichedRecordClient) DeleteOneID(id uuid.UUID) *EnrichedRecordDeleteOne {
	builder := c.Delete().Where(enrichedrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EnrichedRecordDeleteOne{builder}
}

// Query returns a query builder for EnrichedRecord.
func (c *EnrichedRecordClient) Query() *EnrichedRecordQuery {
	return &EnrichedRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEnrichedRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a EnrichedRecord entity by its id.
func (c *EnrichedRecordClient) Get(ctx context.Context, id uuid.UUID) (*EnrichedRecord, error) {
	return c.Query().Where(enrichedrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EnrichedRecordClient) GetX(ctx context.Context, id uuid.UUID) *EnrichedRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUpload queries the upload edge of a EnrichedRecord.
func (c *EnrichedRecordClient) QueryUpload(_m *EnrichedRecord) *UploadQuery {
	query := (&UploadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(enrichedrecord.Table, enrichedrecord.FieldID, id),
			sqlgraph.To(upload.Table, upload.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, enrichedrecord.UploadTable, enrichedrecord.UploadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EnrichedRecordClient) Hooks() []Hook {
	return c.hooks.EnrichedRecord
}

// Interceptors returns the client interceptors.
func (c *EnrichedRecordClient) Interceptors() []Interceptor {
	return c.inters.EnrichedRecord
}

func (c *EnrichedRecordClient) mutate(ctx context.Context, m *EnrichedRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EnrichedRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EnrichedRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EnrichedRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EnrichedRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EnrichedRecord mutation op: %q", m.Op())
	}
}

// ProcessingJobClient is a client for the ProcessingJob schema.
type ProcessingJobClient struct {
	config
}

// NewProcessingJobClient returns a client for the ProcessingJob from the given config.
func NewProcessingJobClient(c config) *ProcessingJobClient {
	return &ProcessingJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processingjob.Hooks(f(g(h())))`.
func (c *ProcessingJobClient) Use(hooks ...Hook) {
	c.hooks.ProcessingJob = append(c.hooks.ProcessingJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processingjob.Intercept(f(g(h())))`.
func (c *ProcessingJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingJob = append(c.inters.ProcessingJob, interceptors...)
}

// Create returns a builder for creating a ProcessingJob entity.
func (c *ProcessingJobClient) Create() *ProcessingJobCreate {
	mutation := newProcessingJobMutation(c.config, OpCreate)
	return &ProcessingJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingJob entities.
func (c *ProcessingJobClient) CreateBulk(builders ...*ProcessingJobCreate) *ProcessingJobCreateBulk {
	return &ProcessingJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingJobClient) MapCreateBulk(slice any, setFunc func(*ProcessingJobCreate, int)) *ProcessingJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingJobCreateBulk{err: fmt.Errorf("calling to ProcessingJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingJob.
func (c *ProcessingJobClient) Update() *ProcessingJobUpdate {
	mutation := newProcessingJobMutation(c.config, OpUpdate)
	return &ProcessingJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingJobClient) UpdateOne(_m *ProcessingJob) *ProcessingJobUpdateOne {
	mutation := newProcessingJobMutation(c.config, OpUpdateOne, withProcessingJob(_m))
	return &ProcessingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingJobClient) UpdateOneID(id uuid.UUID) *ProcessingJobUpdateOne {
	mutation := newProcessingJobMutation(c.config, OpUpdateOne, withProcessingJobID(id))
	return &ProcessingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingJob.
func (c *ProcessingJobClient) Delete() *ProcessingJobDelete {
	mutation := newProcessingJobMutation(c.config, OpDelete)
	return &ProcessingJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingJobClient) DeleteOne(_m *ProcessingJob) *ProcessingJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingJobClient) DeleteOneID(id uuid.UUID) *ProcessingJobDeleteOne {
	builder := c.Delete().Where(processingjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingJobDeleteOne{builder}
}

// Query returns a query builder for ProcessingJob.
func (c *ProcessingJobClient) Query() *ProcessingJobQuery {
	return &ProcessingJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingJob entity by its id.
func (c *ProcessingJobClient) Get(ctx context.Context, id uuid.UUID) (*ProcessingJob, error) {
	return c.Query().Where(processingjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingJobClient) GetX(ctx context.Context, id uuid.UUID) *ProcessingJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUpload queries the upload edge of a ProcessingJob.
func (c *ProcessingJobClient) QueryUpload(_m *ProcessingJob) *UploadQuery {
	query := (&UploadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processingjob.Table, processingjob.FieldID, id),
			sqlgraph.To(upload.Table, upload.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processingjob.UploadTable, processingjob.UploadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessingJobClient) Hooks() []Hook {
	return c.hooks.ProcessingJob
}

// Interceptors returns the client interceptors.
func (c *ProcessingJobClient) Interceptors() []Interceptor {
	return c.inters.ProcessingJob
}

func (c *ProcessingJobClient) mutate(ctx context.Context, m *ProcessingJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingJob mutation op: %q", m.Op())
	}
}

// UploadClient is a client for the Upload schema.
type UploadClient struct {
	config
}

// NewUploadClient returns a client for the Upload from the given config.
func NewUploadClient(c config) *UploadClient {
	return &UploadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `upload.Hooks(f(g(h())))`.
func (c *UploadClient) Use(hooks ...Hook) {
	c.hooks.Upload = append(c.hooks.Upload, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `upload.Intercept(f(g(h())))`.
func (c *UploadClient) Intercept(interceptors ...Interceptor) {
	c.inters.Upload = append(c.inters.Upload, interceptors...)
}

// Create returns a builder for creating a Upload entity.
func (c *UploadClient) Create() *UploadCreate {
	mutation := newUploadMutation(c.config, OpCreate)
	return &UploadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Upload entities.
func (c *UploadClient) CreateBulk(builders ...*UploadCreate) *UploadCreateBulk {
	return &UploadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UploadClient) MapCreateBulk(slice any, setFunc func(*UploadCreate, int)) *UploadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UploadCreateBulk{err: fmt.Errorf("calling to UploadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UploadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UploadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Upload.
func (c *UploadClient) Update() *UploadUpdate {
	mutation := newUploadMutation(c.config, OpUpdate)
	return &UploadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UploadClient) UpdateOne(_m *Upload) *UploadUpdateOne {
	mutation := newUploadMutation(c.config, OpUpdateOne, withUpload(_m))
	return &UploadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UploadClient) UpdateOneID(id uuid.UUID) *UploadUpdateOne {
	mutation := newUploadMutation(c.config, OpUpdateOne, withUploadID(id))
	return &UploadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Upload.
func (c *UploadClient) Delete() *UploadDelete {
	mutation := newUploadMutation(c.config, OpDelete)
	return &UploadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UploadClient) DeleteOne(_m *Upload) *UploadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UploadClient) DeleteOneID(id uuid.UUID) *UploadDeleteOne {
	builder := c.Delete().Where(upload.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UploadDeleteOne{builder}
}

// Query returns a query builder for Upload.
func (c *UploadClient) Query() *UploadQuery {
	return &UploadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUpload},
		inters: c.Interceptors(),
	}
}

// Get returns a Upload entity by its id.
func (c *UploadClient) Get(ctx context.Context, id uuid.UUID) (*Upload, error) {
	return c.Query().Where(upload.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UploadClient) GetX(ctx context.Context, id uuid.UUID) *Upload {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a Upload.
func (c *UploadClient) QueryJobs(_m *Upload) *ProcessingJobQuery {
	query := (&ProcessingJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(upload.Table, upload.FieldID, id),
			sqlgraph.To(processingjob.Table, processingjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, upload.JobsTable, upload.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRecords queries the records edge of a Upload.
func (c *UploadClient) QueryRecords(_m *Upload) *EnrichedRecordQuery {
	query := (&EnrichedRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(upload.Table, upload.FieldID, id),
			sqlgraph.To(enrichedrecord.Table, enrichedrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, upload.RecordsTable, upload.RecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UploadClient) Hooks() []Hook {
	return c.hooks.Upload
}

// Interceptors returns the client interceptors.
func (c *UploadClient) Interceptors() []Interceptor {
	return c.inters.Upload
}

func (c *UploadClient) mutate(ctx context.Context, m *UploadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UploadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UploadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UploadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UploadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Upload mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		EnrichedRecord, ProcessingJob, Upload []ent.Hook
	}
	inters struct {
		EnrichedRecord, ProcessingJob, Upload []ent.Interceptor
	}
)
