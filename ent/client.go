// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/desteklab/concierge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/desteklab/concierge/ent/callbackrequest"
	"github.com/desteklab/concierge/ent/chatmessage"
	"github.com/desteklab/concierge/ent/conversationstate"
	"github.com/desteklab/concierge/ent/customer"
	"github.com/desteklab/concierge/ent/order"
	"github.com/desteklab/concierge/ent/securityevent"
	"github.com/desteklab/concierge/ent/sessionlock"
	"github.com/desteklab/concierge/ent/sessionmapping"
	"github.com/desteklab/concierge/ent/toolinvocation"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CallbackRequest is the client for interacting with the CallbackRequest builders.
	CallbackRequest *CallbackRequestClient
	// ChatMessage is the client for interacting with the ChatMessage builders.
	ChatMessage *ChatMessageClient
	// ConversationState is the client for interacting with the ConversationState builders.
	ConversationState *ConversationStateClient
	// Customer is the client for interacting with the Customer builders.
	Customer *CustomerClient
	// Order is the client for interacting with the Order builders.
	Order *OrderClient
	// SecurityEvent is the client for interacting with the SecurityEvent builders.
	SecurityEvent *SecurityEventClient
	// SessionLock is the client for interacting with the SessionLock builders.
	SessionLock *SessionLockClient
	// SessionMapping is the client for interacting with the SessionMapping builders.
	SessionMapping *SessionMappingClient
	// ToolInvocation is the client for interacting with the ToolInvocation builders.
	ToolInvocation *ToolInvocationClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CallbackRequest = NewCallbackRequestClient(c.config)
	c.ChatMessage = NewChatMessageClient(c.config)
	c.ConversationState = NewConversationStateClient(c.config)
	c.Customer = NewCustomerClient(c.config)
	c.Order = NewOrderClient(c.config)
	c.SecurityEvent = NewSecurityEventClient(c.config)
	c.SessionLock = NewSessionLockClient(c.config)
	c.SessionMapping = NewSessionMappingClient(c.config)
	c.ToolInvocation = NewToolInvocationClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		CallbackRequest:   NewCallbackRequestClient(cfg),
		ChatMessage:       NewChatMessageClient(cfg),
		ConversationState: NewConversationStateClient(cfg),
		Customer:          NewCustomerClient(cfg),
		Order:             NewOrderClient(cfg),
		SecurityEvent:     NewSecurityEventClient(cfg),
		SessionLock:       NewSessionLockClient(cfg),
		SessionMapping:    NewSessionMappingClient(cfg),
		ToolInvocation:    NewToolInvocationClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		CallbackRequest:   NewCallbackRequestClient(cfg),
		ChatMessage:       NewChatMessageClient(cfg),
		ConversationState: NewConversationStateClient(cfg),
		Customer:          NewCustomerClient(cfg),
		Order:             NewOrderClient(cfg),
		SecurityEvent:     NewSecurityEventClient(cfg),
		SessionLock:       NewSessionLockClient(cfg),
		SessionMapping:    NewSessionMappingClient(cfg),
		ToolInvocation:    NewToolInvocationClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CallbackRequest.
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
		c.CallbackRequest, c.ChatMessage, c.ConversationState, c.Customer, c.Order,
		c.SecurityEvent, c.SessionLock, c.SessionMapping, c.ToolInvocation,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CallbackRequest, c.ChatMessage, c.ConversationState, c.Customer, c.Order,
		c.SecurityEvent, c.SessionLock, c.SessionMapping, c.ToolInvocation,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CallbackRequestMutation:
		return c.CallbackRequest.mutate(ctx, m)
	case *ChatMessageMutation:
		return c.ChatMessage.mutate(ctx, m)
	case *ConversationStateMutation:
		return c.ConversationState.mutate(ctx, m)
	case *CustomerMutation:
		return c.Customer.mutate(ctx, m)
	case *OrderMutation:
		return c.Order.mutate(ctx, m)
	case *SecurityEventMutation:
		return c.SecurityEvent.mutate(ctx, m)
	case *SessionLockMutation:
		return c.SessionLock.mutate(ctx, m)
	case *SessionMappingMutation:
		return c.SessionMapping.mutate(ctx, m)
	case *ToolInvocationMutation:
		return c.ToolInvocation.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CallbackRequestClient is a client for the CallbackRequest schema.
type CallbackRequestClient struct {
	config
}

// NewCallbackRequestClient returns a client for the CallbackRequest from the given config.
func NewCallbackRequestClient(c config) *CallbackRequestClient {
	return &CallbackRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `callbackrequest.Hooks(f(g(h())))`.
func (c *CallbackRequestClient) Use(hooks ...Hook) {
	c.hooks.CallbackRequest = append(c.hooks.CallbackRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `callbackrequest.Intercept(f(g(h())))`.
func (c *CallbackRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.CallbackRequest = append(c.inters.CallbackRequest, interceptors...)
}

// Create returns a builder for creating a CallbackRequest entity.
func (c *CallbackRequestClient) Create() *CallbackRequestCreate {
	mutation := newCallbackRequestMutation(c.config, OpCreate)
	return &CallbackRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CallbackRequest entities.
func (c *CallbackRequestClient) CreateBulk(builders ...*CallbackRequestCreate) *CallbackRequestCreateBulk {
	return &CallbackRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CallbackRequestClient) MapCreateBulk(slice any, setFunc func(*CallbackRequestCreate, int)) *CallbackRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CallbackRequestCreateBulk{err: fmt.Errorf("calling to CallbackRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CallbackRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CallbackRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CallbackRequest.
func (c *CallbackRequestClient) Update() *CallbackRequestUpdate {
	mutation := newCallbackRequestMutation(c.config, OpUpdate)
	return &CallbackRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CallbackRequestClient) UpdateOne(_m *CallbackRequest) *CallbackRequestUpdateOne {
	mutation := newCallbackRequestMutation(c.config, OpUpdateOne, withCallbackRequest(_m))
	return &CallbackRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CallbackRequestClient) UpdateOneID(id string) *CallbackRequestUpdateOne {
	mutation := newCallbackRequestMutation(c.config, OpUpdateOne, withCallbackRequestID(id))
	return &CallbackRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CallbackRequest.
func (c *CallbackRequestClient) Delete() *CallbackRequestDelete {
	mutation := newCallbackRequestMutation(c.config, OpDelete)
	return &CallbackRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CallbackRequestClient) DeleteOne(_m *CallbackRequest) *CallbackRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CallbackRequestClient) DeleteOneID(id string) *CallbackRequestDeleteOne {
	builder := c.Delete().Where(callbackrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CallbackRequestDeleteOne{builder}
}

// Query returns a query builder for CallbackRequest.
func (c *CallbackRequestClient) Query() *CallbackRequestQuery {
	return &CallbackRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCallbackRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a CallbackRequest entity by its id.
func (c *CallbackRequestClient) Get(ctx context.Context, id string) (*CallbackRequest, error) {
	return c.Query().Where(callbackrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CallbackRequestClient) GetX(ctx context.Context, id string) *CallbackRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CallbackRequestClient) Hooks() []Hook {
	return c.hooks.CallbackRequest
}

// Interceptors returns the client interceptors.
func (c *CallbackRequestClient) Interceptors() []Interceptor {
	return c.inters.CallbackRequest
}

func (c *CallbackRequestClient) mutate(ctx context.Context, m *CallbackRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CallbackRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CallbackRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CallbackRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CallbackRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CallbackRequest mutation op: %q", m.Op())
	}
}

// ChatMessageClient is a client for the ChatMessage schema.
type ChatMessageClient struct {
	config
}

// NewChatMessageClient returns a client for the ChatMessage from the given config.
func NewChatMessageClient(c config) *ChatMessageClient {
	return &ChatMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatmessage.Hooks(f(g(h())))`.
func (c *ChatMessageClient) Use(hooks ...Hook) {
	c.hooks.ChatMessage = append(c.hooks.ChatMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatmessage.Intercept(f(g(h())))`.
func (c *ChatMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatMessage = append(c.inters.ChatMessage, interceptors...)
}

// Create returns a builder for creating a ChatMessage entity.
func (c *ChatMessageClient) Create() *ChatMessageCreate {
	mutation := newChatMessageMutation(c.config, OpCreate)
	return &ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatMessage entities.
func (c *ChatMessageClient) CreateBulk(builders ...*ChatMessageCreate) *ChatMessageCreateBulk {
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatMessageClient) MapCreateBulk(slice any, setFunc func(*ChatMessageCreate, int)) *ChatMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatMessageCreateBulk{err: fmt.Errorf("calling to ChatMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatMessage.
func (c *ChatMessageClient) Update() *ChatMessageUpdate {
	mutation := newChatMessageMutation(c.config, OpUpdate)
	return &ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatMessageClient) UpdateOne(_m *ChatMessage) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessage(_m))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatMessageClient) UpdateOneID(id string) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessageID(id))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatMessage.
func (c *ChatMessageClient) Delete() *ChatMessageDelete {
	mutation := newChatMessageMutation(c.config, OpDelete)
	return &ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatMessageClient) DeleteOne(_m *ChatMessage) *ChatMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatMessageClient) DeleteOneID(id string) *ChatMessageDeleteOne {
	builder := c.Delete().Where(chatmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatMessageDeleteOne{builder}
}

// Query returns a query builder for ChatMessage.
func (c *ChatMessageClient) Query() *ChatMessageQuery {
	return &ChatMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatMessage entity by its id.
func (c *ChatMessageClient) Get(ctx context.Context, id string) (*ChatMessage, error) {
	return c.Query().Where(chatmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatMessageClient) GetX(ctx context.Context, id string) *ChatMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChatMessageClient) Hooks() []Hook {
	return c.hooks.ChatMessage
}

// Interceptors returns the client interceptors.
func (c *ChatMessageClient) Interceptors() []Interceptor {
	return c.inters.ChatMessage
}

func (c *ChatMessageClient) mutate(ctx context.Context, m *ChatMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatMessage mutation op: %q", m.Op())
	}
}

// ConversationStateClient is a client for the ConversationState schema.
type ConversationStateClient struct {
	config
}

// NewConversationStateClient returns a client for the ConversationState from the given config.
func NewConversationStateClient(c config) *ConversationStateClient {
	return &ConversationStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversationstate.Hooks(f(g(h())))`.
func (c *ConversationStateClient) Use(hooks ...Hook) {
	c.hooks.ConversationState = append(c.hooks.ConversationState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversationstate.Intercept(f(g(h())))`.
func (c *ConversationStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConversationState = append(c.inters.ConversationState, interceptors...)
}

// Create returns a builder for creating a ConversationState entity.
func (c *ConversationStateClient) Create() *ConversationStateCreate {
	mutation := newConversationStateMutation(c.config, OpCreate)
	return &ConversationStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConversationState entities.
func (c *ConversationStateClient) CreateBulk(builders ...*ConversationStateCreate) *ConversationStateCreateBulk {
	return &ConversationStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationStateClient) MapCreateBulk(slice any, setFunc func(*ConversationStateCreate, int)) *ConversationStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationStateCreateBulk{err: fmt.Errorf("calling to ConversationStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConversationState.
func (c *ConversationStateClient) Update() *ConversationStateUpdate {
	mutation := newConversationStateMutation(c.config, OpUpdate)
	return &ConversationStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationStateClient) UpdateOne(_m *ConversationState) *ConversationStateUpdateOne {
	mutation := newConversationStateMutation(c.config, OpUpdateOne, withConversationState(_m))
	return &ConversationStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationStateClient) UpdateOneID(id string) *ConversationStateUpdateOne {
	mutation := newConversationStateMutation(c.config, OpUpdateOne, withConversationStateID(id))
	return &ConversationStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConversationState.
func (c *ConversationStateClient) Delete() *ConversationStateDelete {
	mutation := newConversationStateMutation(c.config, OpDelete)
	return &ConversationStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationStateClient) DeleteOne(_m *ConversationState) *ConversationStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationStateClient) DeleteOneID(id string) *ConversationStateDeleteOne {
	builder := c.Delete().Where(conversationstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationStateDeleteOne{builder}
}

// Query returns a query builder for ConversationState.
func (c *ConversationStateClient) Query() *ConversationStateQuery {
	return &ConversationStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversationState},
		inters: c.Interceptors(),
	}
}

// Get returns a ConversationState entity by its id.
func (c *ConversationStateClient) Get(ctx context.Context, id string) (*ConversationState, error) {
	return c.Query().Where(conversationstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationStateClient) GetX(ctx context.Context, id string) *ConversationState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConversationStateClient) Hooks() []Hook {
	return c.hooks.ConversationState
}

// Interceptors returns the client interceptors.
func (c *ConversationStateClient) Interceptors() []Interceptor {
	return c.inters.ConversationState
}

func (c *ConversationStateClient) mutate(ctx context.Context, m *ConversationStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConversationState mutation op: %q", m.Op())
	}
}

// CustomerClient is a client for the Customer schema.
type CustomerClient struct {
	config
}

// NewCustomerClient returns a client for the Customer from the given config.
func NewCustomerClient(c config) *CustomerClient {
	return &CustomerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `customer.Hooks(f(g(h())))`.
func (c *CustomerClient) Use(hooks ...Hook) {
	c.hooks.Customer = append(c.hooks.Customer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `customer.Intercept(f(g(h())))`.
func (c *CustomerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Customer = append(c.inters.Customer, interceptors...)
}

// Create returns a builder for creating a Customer entity.
func (c *CustomerClient) Create() *CustomerCreate {
	mutation := newCustomerMutation(c.config, OpCreate)
	return &CustomerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Customer entities.
func (c *CustomerClient) CreateBulk(builders ...*CustomerCreate) *CustomerCreateBulk {
	return &CustomerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CustomerClient) MapCreateBulk(slice any, setFunc func(*CustomerCreate, int)) *CustomerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CustomerCreateBulk{err: fmt.Errorf("calling to CustomerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CustomerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CustomerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Customer.
func (c *CustomerClient) Update() *CustomerUpdate {
	mutation := newCustomerMutation(c.config, OpUpdate)
	return &CustomerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CustomerClient) UpdateOne(_m *Customer) *CustomerUpdateOne {
	mutation := newCustomerMutation(c.config, OpUpdateOne, withCustomer(_m))
	return &CustomerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CustomerClient) UpdateOneID(id string) *CustomerUpdateOne {
	mutation := newCustomerMutation(c.config, OpUpdateOne, withCustomerID(id))
	return &CustomerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Customer.
func (c *CustomerClient) Delete() *CustomerDelete {
	mutation := newCustomerMutation(c.config, OpDelete)
	return &CustomerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CustomerClient) DeleteOne(_m *Customer) *CustomerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CustomerClient) DeleteOneID(id string) *CustomerDeleteOne {
	builder := c.Delete().Where(customer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CustomerDeleteOne{builder}
}

// Query returns a query builder for Customer.
func (c *CustomerClient) Query() *CustomerQuery {
	return &CustomerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCustomer},
		inters: c.Interceptors(),
	}
}

// Get returns a Customer entity by its id.
func (c *CustomerClient) Get(ctx context.Context, id string) (*Customer, error) {
	return c.Query().Where(customer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CustomerClient) GetX(ctx context.Context, id string) *Customer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrders queries the orders edge of a Customer.
func (c *CustomerClient) QueryOrders(_m *Customer) *OrderQuery {
	query := (&OrderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(customer.Table, customer.FieldID, id),
			sqlgraph.To(order.Table, order.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, customer.OrdersTable, customer.OrdersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CustomerClient) Hooks() []Hook {
	return c.hooks.Customer
}

// Interceptors returns the client interceptors.
func (c *CustomerClient) Interceptors() []Interceptor {
	return c.inters.Customer
}

func (c *CustomerClient) mutate(ctx context.Context, m *CustomerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CustomerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CustomerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CustomerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CustomerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Customer mutation op: %q", m.Op())
	}
}

// OrderClient is a client for the Order schema.
type OrderClient struct {
	config
}

// NewOrderClient returns a client for the Order from the given config.
func NewOrderClient(c config) *OrderClient {
	return &OrderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `order.Hooks(f(g(h())))`.
func (c *OrderClient) Use(hooks ...Hook) {
	c.hooks.Order = append(c.hooks.Order, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `order.Intercept(f(g(h())))`.
func (c *OrderClient) Intercept(interceptors ...Interceptor) {
	c.inters.Order = append(c.inters.Order, interceptors...)
}

// Create returns a builder for creating a Order entity.
func (c *OrderClient) Create() *OrderCreate {
	mutation := newOrderMutation(c.config, OpCreate)
	return &OrderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Order entities.
func (c *OrderClient) CreateBulk(builders ...*OrderCreate) *OrderCreateBulk {
	return &OrderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderClient) MapCreateBulk(slice any, setFunc func(*OrderCreate, int)) *OrderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderCreateBulk{err: fmt.Errorf("calling to OrderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Order.
func (c *OrderClient) Update() *OrderUpdate {
	mutation := newOrderMutation(c.config, OpUpdate)
	return &OrderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderClient) UpdateOne(_m *Order) *OrderUpdateOne {
	mutation := newOrderMutation(c.config, OpUpdateOne, withOrder(_m))
	return &OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderClient) UpdateOneID(id string) *OrderUpdateOne {
	mutation := newOrderMutation(c.config, OpUpdateOne, withOrderID(id))
	return &OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Order.
func (c *OrderClient) Delete() *OrderDelete {
	mutation := newOrderMutation(c.config, OpDelete)
	return &OrderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderClient) DeleteOne(_m *Order) *OrderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderClient) DeleteOneID(id string) *OrderDeleteOne {
	builder := c.Delete().Where(order.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderDeleteOne{builder}
}

// Query returns a query builder for Order.
func (c *OrderClient) Query() *OrderQuery {
	return &OrderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrder},
		inters: c.Interceptors(),
	}
}

// Get returns a Order entity by its id.
func (c *OrderClient) Get(ctx context.Context, id string) (*Order, error) {
	return c.Query().Where(order.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderClient) GetX(ctx context.Context, id string) *Order {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCustomer queries the customer edge of a Order.
func (c *OrderClient) QueryCustomer(_m *Order) *CustomerQuery {
	query := (&CustomerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(order.Table, order.FieldID, id),
			sqlgraph.To(customer.Table, customer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, order.CustomerTable, order.CustomerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderClient) Hooks() []Hook {
	return c.hooks.Order
}

// Interceptors returns the client interceptors.
func (c *OrderClient) Interceptors() []Interceptor {
	return c.inters.Order
}

func (c *OrderClient) mutate(ctx context.Context, m *OrderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Order mutation op: %q", m.Op())
	}
}

// SecurityEventClient is a client for the SecurityEvent schema.
type SecurityEventClient struct {
	config
}

// NewSecurityEventClient returns a client for the SecurityEvent from the given config.
func NewSecurityEventClient(c config) *SecurityEventClient {
	return &SecurityEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `securityevent.Hooks(f(g(h())))`.
func (c *SecurityEventClient) Use(hooks ...Hook) {
	c.hooks.SecurityEvent = append(c.hooks.SecurityEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `securityevent.Intercept(f(g(h())))`.
func (c *SecurityEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SecurityEvent = append(c.inters.SecurityEvent, interceptors...)
}

// Create returns a builder for creating a SecurityEvent entity.
func (c *SecurityEventClient) Create() *SecurityEventCreate {
	mutation := newSecurityEventMutation(c.config, OpCreate)
	return &SecurityEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SecurityEvent entities.
func (c *SecurityEventClient) CreateBulk(builders ...*SecurityEventCreate) *SecurityEventCreateBulk {
	return &SecurityEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SecurityEventClient) MapCreateBulk(slice any, setFunc func(*SecurityEventCreate, int)) *SecurityEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SecurityEventCreateBulk{err: fmt.Errorf("calling to SecurityEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SecurityEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SecurityEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SecurityEvent.
func (c *SecurityEventClient) Update() *SecurityEventUpdate {
	mutation := newSecurityEventMutation(c.config, OpUpdate)
	return &SecurityEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SecurityEventClient) UpdateOne(_m *SecurityEvent) *SecurityEventUpdateOne {
	mutation := newSecurityEventMutation(c.config, OpUpdateOne, withSecurityEvent(_m))
	return &SecurityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SecurityEventClient) UpdateOneID(id string) *SecurityEventUpdateOne {
	mutation := newSecurityEventMutation(c.config, OpUpdateOne, withSecurityEventID(id))
	return &SecurityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SecurityEvent.
func (c *SecurityEventClient) Delete() *SecurityEventDelete {
	mutation := newSecurityEventMutation(c.config, OpDelete)
	return &SecurityEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SecurityEventClient) DeleteOne(_m *SecurityEvent) *SecurityEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SecurityEventClient) DeleteOneID(id string) *SecurityEventDeleteOne {
	builder := c.Delete().Where(securityevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SecurityEventDeleteOne{builder}
}

// Query returns a query builder for SecurityEvent.
func (c *SecurityEventClient) Query() *SecurityEventQuery {
	return &SecurityEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSecurityEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SecurityEvent entity by its id.
func (c *SecurityEventClient) Get(ctx context.Context, id string) (*SecurityEvent, error) {
	return c.Query().Where(securityevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SecurityEventClient) GetX(ctx context.Context, id string) *SecurityEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SecurityEventClient) Hooks() []Hook {
	return c.hooks.SecurityEvent
}

// Interceptors returns the client interceptors.
func (c *SecurityEventClient) Interceptors() []Interceptor {
	return c.inters.SecurityEvent
}

func (c *SecurityEventClient) mutate(ctx context.Context, m *SecurityEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SecurityEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SecurityEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SecurityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SecurityEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SecurityEvent mutation op: %q", m.Op())
	}
}

// SessionLockClient is a client for the SessionLock schema.
type SessionLockClient struct {
	config
}

// NewSessionLockClient returns a client for the SessionLock from the given config.
func NewSessionLockClient(c config) *SessionLockClient {
	return &SessionLockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionlock.Hooks(f(g(h())))`.
func (c *SessionLockClient) Use(hooks ...Hook) {
	c.hooks.SessionLock = append(c.hooks.SessionLock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionlock.Intercept(f(g(h())))`.
func (c *SessionLockClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionLock = append(c.inters.SessionLock, interceptors...)
}

// Create returns a builder for creating a SessionLock entity.
func (c *SessionLockClient) Create() *SessionLockCreate {
	mutation := newSessionLockMutation(c.config, OpCreate)
	return &SessionLockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionLock entities.
func (c *SessionLockClient) CreateBulk(builders ...*SessionLockCreate) *SessionLockCreateBulk {
	return &SessionLockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionLockClient) MapCreateBulk(slice any, setFunc func(*SessionLockCreate, int)) *SessionLockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionLockCreateBulk{err: fmt.Errorf("calling to SessionLockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionLockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionLockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionLock.
func (c *SessionLockClient) Update() *SessionLockUpdate {
	mutation := newSessionLockMutation(c.config, OpUpdate)
	return &SessionLockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionLockClient) UpdateOne(_m *SessionLock) *SessionLockUpdateOne {
	mutation := newSessionLockMutation(c.config, OpUpdateOne, withSessionLock(_m))
	return &SessionLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionLockClient) UpdateOneID(id string) *SessionLockUpdateOne {
	mutation := newSessionLockMutation(c.config, OpUpdateOne, withSessionLockID(id))
	return &SessionLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionLock.
func (c *SessionLockClient) Delete() *SessionLockDelete {
	mutation := newSessionLockMutation(c.config, OpDelete)
	return &SessionLockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionLockClient) DeleteOne(_m *SessionLock) *SessionLockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionLockClient) DeleteOneID(id string) *SessionLockDeleteOne {
	builder := c.Delete().Where(sessionlock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionLockDeleteOne{builder}
}

// Query returns a query builder for SessionLock.
func (c *SessionLockClient) Query() *SessionLockQuery {
	return &SessionLockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionLock},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionLock entity by its id.
func (c *SessionLockClient) Get(ctx context.Context, id string) (*SessionLock, error) {
	return c.Query().Where(sessionlock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionLockClient) GetX(ctx context.Context, id string) *SessionLock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionLockClient) Hooks() []Hook {
	return c.hooks.SessionLock
}

// Interceptors returns the client interceptors.
func (c *SessionLockClient) Interceptors() []Interceptor {
	return c.inters.SessionLock
}

func (c *SessionLockClient) mutate(ctx context.Context, m *SessionLockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionLockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionLockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionLockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionLock mutation op: %q", m.Op())
	}
}

// SessionMappingClient is a client for the SessionMapping schema.
type SessionMappingClient struct {
	config
}

// NewSessionMappingClient returns a client for the SessionMapping from the given config.
func NewSessionMappingClient(c config) *SessionMappingClient {
	return &SessionMappingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionmapping.Hooks(f(g(h())))`.
func (c *SessionMappingClient) Use(hooks ...Hook) {
	c.hooks.SessionMapping = append(c.hooks.SessionMapping, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionmapping.Intercept(f(g(h())))`.
func (c *SessionMappingClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionMapping = append(c.inters.SessionMapping, interceptors...)
}

// Create returns a builder for creating a SessionMapping entity.
func (c *SessionMappingClient) Create() *SessionMappingCreate {
	mutation := newSessionMappingMutation(c.config, OpCreate)
	return &SessionMappingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionMapping entities.
func (c *SessionMappingClient) CreateBulk(builders ...*SessionMappingCreate) *SessionMappingCreateBulk {
	return &SessionMappingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionMappingClient) MapCreateBulk(slice any, setFunc func(*SessionMappingCreate, int)) *SessionMappingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionMappingCreateBulk{err: fmt.Errorf("calling to SessionMappingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionMappingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionMappingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionMapping.
func (c *SessionMappingClient) Update() *SessionMappingUpdate {
	mutation := newSessionMappingMutation(c.config, OpUpdate)
	return &SessionMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionMappingClient) UpdateOne(_m *SessionMapping) *SessionMappingUpdateOne {
	mutation := newSessionMappingMutation(c.config, OpUpdateOne, withSessionMapping(_m))
	return &SessionMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionMappingClient) UpdateOneID(id string) *SessionMappingUpdateOne {
	mutation := newSessionMappingMutation(c.config, OpUpdateOne, withSessionMappingID(id))
	return &SessionMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionMapping.
func (c *SessionMappingClient) Delete() *SessionMappingDelete {
	mutation := newSessionMappingMutation(c.config, OpDelete)
	return &SessionMappingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionMappingClient) DeleteOne(_m *SessionMapping) *SessionMappingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionMappingClient) DeleteOneID(id string) *SessionMappingDeleteOne {
	builder := c.Delete().Where(sessionmapping.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionMappingDeleteOne{builder}
}

// Query returns a query builder for SessionMapping.
func (c *SessionMappingClient) Query() *SessionMappingQuery {
	return &SessionMappingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionMapping},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionMapping entity by its id.
func (c *SessionMappingClient) Get(ctx context.Context, id string) (*SessionMapping, error) {
	return c.Query().Where(sessionmapping.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionMappingClient) GetX(ctx context.Context, id string) *SessionMapping {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionMappingClient) Hooks() []Hook {
	return c.hooks.SessionMapping
}

// Interceptors returns the client interceptors.
func (c *SessionMappingClient) Interceptors() []Interceptor {
	return c.inters.SessionMapping
}

func (c *SessionMappingClient) mutate(ctx context.Context, m *SessionMappingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionMappingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionMappingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionMapping mutation op: %q", m.Op())
	}
}

// ToolInvocationClient is a client for the ToolInvocation schema.
type ToolInvocationClient struct {
	config
}

// NewToolInvocationClient returns a client for the ToolInvocation from the given config.
func NewToolInvocationClient(c config) *ToolInvocationClient {
	return &ToolInvocationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolinvocation.Hooks(f(g(h())))`.
func (c *ToolInvocationClient) Use(hooks ...Hook) {
	c.hooks.ToolInvocation = append(c.hooks.ToolInvocation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolinvocation.Intercept(f(g(h())))`.
func (c *ToolInvocationClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolInvocation = append(c.inters.ToolInvocation, interceptors...)
}

// Create returns a builder for creating a ToolInvocation entity.
func (c *ToolInvocationClient) Create() *ToolInvocationCreate {
	mutation := newToolInvocationMutation(c.config, OpCreate)
	return &ToolInvocationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolInvocation entities.
func (c *ToolInvocationClient) CreateBulk(builders ...*ToolInvocationCreate) *ToolInvocationCreateBulk {
	return &ToolInvocationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolInvocationClient) MapCreateBulk(slice any, setFunc func(*ToolInvocationCreate, int)) *ToolInvocationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolInvocationCreateBulk{err: fmt.Errorf("calling to ToolInvocationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolInvocationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolInvocationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolInvocation.
func (c *ToolInvocationClient) Update() *ToolInvocationUpdate {
	mutation := newToolInvocationMutation(c.config, OpUpdate)
	return &ToolInvocationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolInvocationClient) UpdateOne(_m *ToolInvocation) *ToolInvocationUpdateOne {
	mutation := newToolInvocationMutation(c.config, OpUpdateOne, withToolInvocation(_m))
	return &ToolInvocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolInvocationClient) UpdateOneID(id string) *ToolInvocationUpdateOne {
	mutation := newToolInvocationMutation(c.config, OpUpdateOne, withToolInvocationID(id))
	return &ToolInvocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolInvocation.
func (c *ToolInvocationClient) Delete() *ToolInvocationDelete {
	mutation := newToolInvocationMutation(c.config, OpDelete)
	return &ToolInvocationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolInvocationClient) DeleteOne(_m *ToolInvocation) *ToolInvocationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolInvocationClient) DeleteOneID(id string) *ToolInvocationDeleteOne {
	builder := c.Delete().Where(toolinvocation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolInvocationDeleteOne{builder}
}

// Query returns a query builder for ToolInvocation.
func (c *ToolInvocationClient) Query() *ToolInvocationQuery {
	return &ToolInvocationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolInvocation},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolInvocation entity by its id.
func (c *ToolInvocationClient) Get(ctx context.Context, id string) (*ToolInvocation, error) {
	return c.Query().Where(toolinvocation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolInvocationClient) GetX(ctx context.Context, id string) *ToolInvocation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ToolInvocationClient) Hooks() []Hook {
	return c.hooks.ToolInvocation
}

// Interceptors returns the client interceptors.
func (c *ToolInvocationClient) Interceptors() []Interceptor {
	return c.inters.ToolInvocation
}

func (c *ToolInvocationClient) mutate(ctx context.Context, m *ToolInvocationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolInvocationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolInvocationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolInvocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolInvocationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolInvocation mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CallbackRequest, ChatMessage, ConversationState, Customer, Order, SecurityEvent,
		SessionLock, SessionMapping, ToolInvocation []ent.Hook
	}
	inters struct {
		CallbackRequest, ChatMessage, ConversationState, Customer, Order, SecurityEvent,
		SessionLock, SessionMapping, ToolInvocation []ent.Interceptor
	}
)
