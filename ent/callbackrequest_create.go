// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/desteklab/concierge/ent/callbackrequest"
)

// CallbackRequestCreate is the builder for creating a CallbackRequest entity.
type CallbackRequestCreate struct {
	config
	mutation *CallbackRequestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBusinessID sets the "business_id" field.
func (_c *CallbackRequestCreate) SetBusinessID(v string) *CallbackRequestCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *CallbackRequestCreate) SetSessionID(v string) *CallbackRequestCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCustomerID sets the "customer_id" field.
func (_c *CallbackRequestCreate) SetCustomerID(v string) *CallbackRequestCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_c *CallbackRequestCreate) SetNillableCustomerID(v *string) *CallbackRequestCreate {
	if v != nil {
		_c.SetCustomerID(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *CallbackRequestCreate) SetPhone(v string) *CallbackRequestCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *CallbackRequestCreate) SetTopic(v string) *CallbackRequestCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *CallbackRequestCreate) SetNillableTopic(v *string) *CallbackRequestCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CallbackRequestCreate) SetStatus(v callbackrequest.Status) *CallbackRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CallbackRequestCreate) SetNillableStatus(v *callbackrequest.Status) *CallbackRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CallbackRequestCreate) SetCreatedAt(v time.Time) *CallbackRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CallbackRequestCreate) SetNillableCreatedAt(v *time.Time) *CallbackRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CallbackRequestCreate) SetID(v string) *CallbackRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CallbackRequestMutation object of the builder.
func (_c *CallbackRequestCreate) Mutation() *CallbackRequestMutation {
	return _c.mutation
}

// Save creates the CallbackRequest in the database.
func (_c *CallbackRequestCreate) Save(ctx context.Context) (*CallbackRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CallbackRequestCreate) SaveX(ctx context.Context) *CallbackRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallbackRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallbackRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CallbackRequestCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := callbackrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := callbackrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CallbackRequestCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "CallbackRequest.business_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CallbackRequest.session_id"`)}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "CallbackRequest.phone"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CallbackRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := callbackrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CallbackRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CallbackRequest.created_at"`)}
	}
	return nil
}

func (_c *CallbackRequestCreate) sqlSave(ctx context.Context) (*CallbackRequest, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CallbackRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CallbackRequestCreate) createSpec() (*CallbackRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &CallbackRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(callbackrequest.Table, sqlgraph.NewFieldSpec(callbackrequest.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(callbackrequest.FieldBusinessID, field.TypeString, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(callbackrequest.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.CustomerID(); ok {
		_spec.SetField(callbackrequest.FieldCustomerID, field.TypeString, value)
		_node.CustomerID = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(callbackrequest.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(callbackrequest.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(callbackrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(callbackrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CallbackRequest.Create().
//		SetBusinessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CallbackRequestUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *CallbackRequestCreate) OnConflict(opts ...sql.ConflictOption) *CallbackRequestUpsertOne {
	_c.conflict = opts
	return &CallbackRequestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CallbackRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CallbackRequestCreate) OnConflictColumns(columns ...string) *CallbackRequestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CallbackRequestUpsertOne{
		create: _c,
	}
}

type (
	// CallbackRequestUpsertOne is the builder for "upsert"-ing
	//  one CallbackRequest node.
	CallbackRequestUpsertOne struct {
		create *CallbackRequestCreate
	}

	// CallbackRequestUpsert is the "OnConflict" setter.
	CallbackRequestUpsert struct {
		*sql.UpdateSet
	}
)

// SetCustomerID sets the "customer_id" field.
func (u *CallbackRequestUpsert) SetCustomerID(v string) *CallbackRequestUpsert {
	u.Set(callbackrequest.FieldCustomerID, v)
	return u
}

// UpdateCustomerID sets the "customer_id" field to the value that was provided on create.
func (u *CallbackRequestUpsert) UpdateCustomerID() *CallbackRequestUpsert {
	u.SetExcluded(callbackrequest.FieldCustomerID)
	return u
}

// ClearCustomerID clears the value of the "customer_id" field.
func (u *CallbackRequestUpsert) ClearCustomerID() *CallbackRequestUpsert {
	u.SetNull(callbackrequest.FieldCustomerID)
	return u
}

// SetPhone sets the "phone" field.
func (u *CallbackRequestUpsert) SetPhone(v string) *CallbackRequestUpsert {
	u.Set(callbackrequest.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CallbackRequestUpsert) UpdatePhone() *CallbackRequestUpsert {
	u.SetExcluded(callbackrequest.FieldPhone)
	return u
}

// SetTopic sets the "topic" field.
func (u *CallbackRequestUpsert) SetTopic(v string) *CallbackRequestUpsert {
	u.Set(callbackrequest.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *CallbackRequestUpsert) UpdateTopic() *CallbackRequestUpsert {
	u.SetExcluded(callbackrequest.FieldTopic)
	return u
}

// ClearTopic clears the value of the "topic" field.
func (u *CallbackRequestUpsert) ClearTopic() *CallbackRequestUpsert {
	u.SetNull(callbackrequest.FieldTopic)
	return u
}

// SetStatus sets the "status" field.
func (u *CallbackRequestUpsert) SetStatus(v callbackrequest.Status) *CallbackRequestUpsert {
	u.Set(callbackrequest.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CallbackRequestUpsert) UpdateStatus() *CallbackRequestUpsert {
	u.SetExcluded(callbackrequest.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CallbackRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(callbackrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CallbackRequestUpsertOne) UpdateNewValues() *CallbackRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(callbackrequest.FieldID)
		}
		if _, exists := u.create.mutation.BusinessID(); exists {
			s.SetIgnore(callbackrequest.FieldBusinessID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(callbackrequest.FieldSessionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(callbackrequest.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CallbackRequest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CallbackRequestUpsertOne) Ignore() *CallbackRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CallbackRequestUpsertOne) DoNothing() *CallbackRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CallbackRequestCreate.OnConflict
// documentation for more info.
func (u *CallbackRequestUpsertOne) Update(set func(*CallbackRequestUpsert)) *CallbackRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CallbackRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetCustomerID sets the "customer_id" field.
func (u *CallbackRequestUpsertOne) SetCustomerID(v string) *CallbackRequestUpsertOne {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.SetCustomerID(v)
	})
}

// UpdateCustomerID sets the "customer_id" field to the value that was provided on create.
func (u *CallbackRequestUpsertOne) UpdateCustomerID() *CallbackRequestUpsertOne {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.UpdateCustomerID()
	})
}

// ClearCustomerID clears the value of the "customer_id" field.
func (u *CallbackRequestUpsertOne) ClearCustomerID() *CallbackRequestUpsertOne {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.ClearCustomerID()
	})
}

// SetPhone sets the "phone" field.
func (u *CallbackRequestUpsertOne) SetPhone(v string) *CallbackRequestUpsertOne {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CallbackRequestUpsertOne) UpdatePhone() *CallbackRequestUpsertOne {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.UpdatePhone()
	})
}

// SetTopic sets the "topic" field.
func (u *CallbackRequestUpsertOne) SetTopic(v string) *CallbackRequestUpsertOne {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *CallbackRequestUpsertOne) UpdateTopic() *CallbackRequestUpsertOne {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.UpdateTopic()
	})
}

// ClearTopic clears the value of the "topic" field.
func (u *CallbackRequestUpsertOne) ClearTopic() *CallbackRequestUpsertOne {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.ClearTopic()
	})
}

// SetStatus sets the "status" field.
func (u *CallbackRequestUpsertOne) SetStatus(v callbackrequest.Status) *CallbackRequestUpsertOne {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CallbackRequestUpsertOne) UpdateStatus() *CallbackRequestUpsertOne {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *CallbackRequestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CallbackRequestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CallbackRequestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CallbackRequestUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CallbackRequestUpsertOne.ID is not supported by MySQL driver. Use CallbackRequestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CallbackRequestUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CallbackRequestCreateBulk is the builder for creating many CallbackRequest entities in bulk.
type CallbackRequestCreateBulk struct {
	config
	err      error
	builders []*CallbackRequestCreate
	conflict []sql.ConflictOption
}

// Save creates the CallbackRequest entities in the database.
func (_c *CallbackRequestCreateBulk) Save(ctx context.Context) ([]*CallbackRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CallbackRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CallbackRequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CallbackRequestCreateBulk) SaveX(ctx context.Context) []*CallbackRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallbackRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallbackRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CallbackRequest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CallbackRequestUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *CallbackRequestCreateBulk) OnConflict(opts ...sql.ConflictOption) *CallbackRequestUpsertBulk {
	_c.conflict = opts
	return &CallbackRequestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CallbackRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CallbackRequestCreateBulk) OnConflictColumns(columns ...string) *CallbackRequestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CallbackRequestUpsertBulk{
		create: _c,
	}
}

// CallbackRequestUpsertBulk is the builder for "upsert"-ing
// a bulk of CallbackRequest nodes.
type CallbackRequestUpsertBulk struct {
	create *CallbackRequestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CallbackRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(callbackrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CallbackRequestUpsertBulk) UpdateNewValues() *CallbackRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(callbackrequest.FieldID)
			}
			if _, exists := b.mutation.BusinessID(); exists {
				s.SetIgnore(callbackrequest.FieldBusinessID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(callbackrequest.FieldSessionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(callbackrequest.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CallbackRequest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CallbackRequestUpsertBulk) Ignore() *CallbackRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CallbackRequestUpsertBulk) DoNothing() *CallbackRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CallbackRequestCreateBulk.OnConflict
// documentation for more info.
func (u *CallbackRequestUpsertBulk) Update(set func(*CallbackRequestUpsert)) *CallbackRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CallbackRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetCustomerID sets the "customer_id" field.
func (u *CallbackRequestUpsertBulk) SetCustomerID(v string) *CallbackRequestUpsertBulk {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.SetCustomerID(v)
	})
}

// UpdateCustomerID sets the "customer_id" field to the value that was provided on create.
func (u *CallbackRequestUpsertBulk) UpdateCustomerID() *CallbackRequestUpsertBulk {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.UpdateCustomerID()
	})
}

// ClearCustomerID clears the value of the "customer_id" field.
func (u *CallbackRequestUpsertBulk) ClearCustomerID() *CallbackRequestUpsertBulk {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.ClearCustomerID()
	})
}

// SetPhone sets the "phone" field.
func (u *CallbackRequestUpsertBulk) SetPhone(v string) *CallbackRequestUpsertBulk {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CallbackRequestUpsertBulk) UpdatePhone() *CallbackRequestUpsertBulk {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.UpdatePhone()
	})
}

// SetTopic sets the "topic" field.
func (u *CallbackRequestUpsertBulk) SetTopic(v string) *CallbackRequestUpsertBulk {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *CallbackRequestUpsertBulk) UpdateTopic() *CallbackRequestUpsertBulk {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.UpdateTopic()
	})
}

// ClearTopic clears the value of the "topic" field.
func (u *CallbackRequestUpsertBulk) ClearTopic() *CallbackRequestUpsertBulk {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.ClearTopic()
	})
}

// SetStatus sets the "status" field.
func (u *CallbackRequestUpsertBulk) SetStatus(v callbackrequest.Status) *CallbackRequestUpsertBulk {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CallbackRequestUpsertBulk) UpdateStatus() *CallbackRequestUpsertBulk {
	return u.Update(func(s *CallbackRequestUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *CallbackRequestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CallbackRequestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CallbackRequestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CallbackRequestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
