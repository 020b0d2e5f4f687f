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
	"github.com/desteklab/concierge/ent/sessionlock"
)

// SessionLockCreate is the builder for creating a SessionLock entity.
type SessionLockCreate struct {
	config
	mutation *SessionLockMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *SessionLockCreate) SetSessionID(v string) *SessionLockCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *SessionLockCreate) SetReason(v sessionlock.Reason) *SessionLockCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetUntil sets the "until" field.
func (_c *SessionLockCreate) SetUntil(v time.Time) *SessionLockCreate {
	_c.mutation.SetUntil(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionLockCreate) SetCreatedAt(v time.Time) *SessionLockCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionLockCreate) SetNillableCreatedAt(v *time.Time) *SessionLockCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionLockCreate) SetID(v string) *SessionLockCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SessionLockMutation object of the builder.
func (_c *SessionLockCreate) Mutation() *SessionLockMutation {
	return _c.mutation
}

// Save creates the SessionLock in the database.
func (_c *SessionLockCreate) Save(ctx context.Context) (*SessionLock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionLockCreate) SaveX(ctx context.Context) *SessionLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionLockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionLockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionLockCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionlock.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionLockCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionLock.session_id"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "SessionLock.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := sessionlock.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "SessionLock.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Until(); !ok {
		return &ValidationError{Name: "until", err: errors.New(`ent: missing required field "SessionLock.until"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionLock.created_at"`)}
	}
	return nil
}

func (_c *SessionLockCreate) sqlSave(ctx context.Context) (*SessionLock, error) {
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
			return nil, fmt.Errorf("unexpected SessionLock.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionLockCreate) createSpec() (*SessionLock, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionLock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionlock.Table, sqlgraph.NewFieldSpec(sessionlock.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionlock.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(sessionlock.FieldReason, field.TypeEnum, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Until(); ok {
		_spec.SetField(sessionlock.FieldUntil, field.TypeTime, value)
		_node.Until = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionlock.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionLock.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionLockUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionLockCreate) OnConflict(opts ...sql.ConflictOption) *SessionLockUpsertOne {
	_c.conflict = opts
	return &SessionLockUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionLock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionLockCreate) OnConflictColumns(columns ...string) *SessionLockUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionLockUpsertOne{
		create: _c,
	}
}

type (
	// SessionLockUpsertOne is the builder for "upsert"-ing
	//  one SessionLock node.
	SessionLockUpsertOne struct {
		create *SessionLockCreate
	}

	// SessionLockUpsert is the "OnConflict" setter.
	SessionLockUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *SessionLockUpsert) SetSessionID(v string) *SessionLockUpsert {
	u.Set(sessionlock.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionLockUpsert) UpdateSessionID() *SessionLockUpsert {
	u.SetExcluded(sessionlock.FieldSessionID)
	return u
}

// SetReason sets the "reason" field.
func (u *SessionLockUpsert) SetReason(v sessionlock.Reason) *SessionLockUpsert {
	u.Set(sessionlock.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *SessionLockUpsert) UpdateReason() *SessionLockUpsert {
	u.SetExcluded(sessionlock.FieldReason)
	return u
}

// SetUntil sets the "until" field.
func (u *SessionLockUpsert) SetUntil(v time.Time) *SessionLockUpsert {
	u.Set(sessionlock.FieldUntil, v)
	return u
}

// UpdateUntil sets the "until" field to the value that was provided on create.
func (u *SessionLockUpsert) UpdateUntil() *SessionLockUpsert {
	u.SetExcluded(sessionlock.FieldUntil)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SessionLock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionlock.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionLockUpsertOne) UpdateNewValues() *SessionLockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sessionlock.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sessionlock.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionLock.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionLockUpsertOne) Ignore() *SessionLockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionLockUpsertOne) DoNothing() *SessionLockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionLockCreate.OnConflict
// documentation for more info.
func (u *SessionLockUpsertOne) Update(set func(*SessionLockUpsert)) *SessionLockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionLockUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *SessionLockUpsertOne) SetSessionID(v string) *SessionLockUpsertOne {
	return u.Update(func(s *SessionLockUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionLockUpsertOne) UpdateSessionID() *SessionLockUpsertOne {
	return u.Update(func(s *SessionLockUpsert) {
		s.UpdateSessionID()
	})
}

// SetReason sets the "reason" field.
func (u *SessionLockUpsertOne) SetReason(v sessionlock.Reason) *SessionLockUpsertOne {
	return u.Update(func(s *SessionLockUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *SessionLockUpsertOne) UpdateReason() *SessionLockUpsertOne {
	return u.Update(func(s *SessionLockUpsert) {
		s.UpdateReason()
	})
}

// SetUntil sets the "until" field.
func (u *SessionLockUpsertOne) SetUntil(v time.Time) *SessionLockUpsertOne {
	return u.Update(func(s *SessionLockUpsert) {
		s.SetUntil(v)
	})
}

// UpdateUntil sets the "until" field to the value that was provided on create.
func (u *SessionLockUpsertOne) UpdateUntil() *SessionLockUpsertOne {
	return u.Update(func(s *SessionLockUpsert) {
		s.UpdateUntil()
	})
}

// Exec executes the query.
func (u *SessionLockUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionLockCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionLockUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionLockUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SessionLockUpsertOne.ID is not supported by MySQL driver. Use SessionLockUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionLockUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionLockCreateBulk is the builder for creating many SessionLock entities in bulk.
type SessionLockCreateBulk struct {
	config
	err      error
	builders []*SessionLockCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionLock entities in the database.
func (_c *SessionLockCreateBulk) Save(ctx context.Context) ([]*SessionLock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionLock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionLockMutation)
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
func (_c *SessionLockCreateBulk) SaveX(ctx context.Context) []*SessionLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionLockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionLockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionLock.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionLockUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionLockCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionLockUpsertBulk {
	_c.conflict = opts
	return &SessionLockUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionLock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionLockCreateBulk) OnConflictColumns(columns ...string) *SessionLockUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionLockUpsertBulk{
		create: _c,
	}
}

// SessionLockUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionLock nodes.
type SessionLockUpsertBulk struct {
	create *SessionLockCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionLock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionlock.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionLockUpsertBulk) UpdateNewValues() *SessionLockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sessionlock.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sessionlock.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionLock.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionLockUpsertBulk) Ignore() *SessionLockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionLockUpsertBulk) DoNothing() *SessionLockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionLockCreateBulk.OnConflict
// documentation for more info.
func (u *SessionLockUpsertBulk) Update(set func(*SessionLockUpsert)) *SessionLockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionLockUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *SessionLockUpsertBulk) SetSessionID(v string) *SessionLockUpsertBulk {
	return u.Update(func(s *SessionLockUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionLockUpsertBulk) UpdateSessionID() *SessionLockUpsertBulk {
	return u.Update(func(s *SessionLockUpsert) {
		s.UpdateSessionID()
	})
}

// SetReason sets the "reason" field.
func (u *SessionLockUpsertBulk) SetReason(v sessionlock.Reason) *SessionLockUpsertBulk {
	return u.Update(func(s *SessionLockUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *SessionLockUpsertBulk) UpdateReason() *SessionLockUpsertBulk {
	return u.Update(func(s *SessionLockUpsert) {
		s.UpdateReason()
	})
}

// SetUntil sets the "until" field.
func (u *SessionLockUpsertBulk) SetUntil(v time.Time) *SessionLockUpsertBulk {
	return u.Update(func(s *SessionLockUpsert) {
		s.SetUntil(v)
	})
}

// UpdateUntil sets the "until" field to the value that was provided on create.
func (u *SessionLockUpsertBulk) UpdateUntil() *SessionLockUpsertBulk {
	return u.Update(func(s *SessionLockUpsert) {
		s.UpdateUntil()
	})
}

// Exec executes the query.
func (u *SessionLockUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionLockCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionLockCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionLockUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
