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
	"github.com/desteklab/concierge/ent/sessionmapping"
)

// SessionMappingCreate is the builder for creating a SessionMapping entity.
type SessionMappingCreate struct {
	config
	mutation *SessionMappingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBusinessID sets the "business_id" field.
func (_c *SessionMappingCreate) SetBusinessID(v string) *SessionMappingCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *SessionMappingCreate) SetChannel(v string) *SessionMappingCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetChannelUserID sets the "channel_user_id" field.
func (_c *SessionMappingCreate) SetChannelUserID(v string) *SessionMappingCreate {
	_c.mutation.SetChannelUserID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionMappingCreate) SetCreatedAt(v time.Time) *SessionMappingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionMappingCreate) SetNillableCreatedAt(v *time.Time) *SessionMappingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionMappingCreate) SetID(v string) *SessionMappingCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SessionMappingMutation object of the builder.
func (_c *SessionMappingCreate) Mutation() *SessionMappingMutation {
	return _c.mutation
}

// Save creates the SessionMapping in the database.
func (_c *SessionMappingCreate) Save(ctx context.Context) (*SessionMapping, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionMappingCreate) SaveX(ctx context.Context) *SessionMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionMappingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionmapping.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionMappingCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "SessionMapping.business_id"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "SessionMapping.channel"`)}
	}
	if _, ok := _c.mutation.ChannelUserID(); !ok {
		return &ValidationError{Name: "channel_user_id", err: errors.New(`ent: missing required field "SessionMapping.channel_user_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionMapping.created_at"`)}
	}
	return nil
}

func (_c *SessionMappingCreate) sqlSave(ctx context.Context) (*SessionMapping, error) {
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
			return nil, fmt.Errorf("unexpected SessionMapping.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionMappingCreate) createSpec() (*SessionMapping, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionMapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionmapping.Table, sqlgraph.NewFieldSpec(sessionmapping.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(sessionmapping.FieldBusinessID, field.TypeString, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(sessionmapping.FieldChannel, field.TypeString, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.ChannelUserID(); ok {
		_spec.SetField(sessionmapping.FieldChannelUserID, field.TypeString, value)
		_node.ChannelUserID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionmapping.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionMapping.Create().
//		SetBusinessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionMappingUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionMappingCreate) OnConflict(opts ...sql.ConflictOption) *SessionMappingUpsertOne {
	_c.conflict = opts
	return &SessionMappingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionMapping.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionMappingCreate) OnConflictColumns(columns ...string) *SessionMappingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionMappingUpsertOne{
		create: _c,
	}
}

type (
	// SessionMappingUpsertOne is the builder for "upsert"-ing
	//  one SessionMapping node.
	SessionMappingUpsertOne struct {
		create *SessionMappingCreate
	}

	// SessionMappingUpsert is the "OnConflict" setter.
	SessionMappingUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SessionMapping.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionmapping.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionMappingUpsertOne) UpdateNewValues() *SessionMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sessionmapping.FieldID)
		}
		if _, exists := u.create.mutation.BusinessID(); exists {
			s.SetIgnore(sessionmapping.FieldBusinessID)
		}
		if _, exists := u.create.mutation.Channel(); exists {
			s.SetIgnore(sessionmapping.FieldChannel)
		}
		if _, exists := u.create.mutation.ChannelUserID(); exists {
			s.SetIgnore(sessionmapping.FieldChannelUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sessionmapping.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionMapping.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionMappingUpsertOne) Ignore() *SessionMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionMappingUpsertOne) DoNothing() *SessionMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionMappingCreate.OnConflict
// documentation for more info.
func (u *SessionMappingUpsertOne) Update(set func(*SessionMappingUpsert)) *SessionMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionMappingUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *SessionMappingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionMappingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionMappingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionMappingUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SessionMappingUpsertOne.ID is not supported by MySQL driver. Use SessionMappingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionMappingUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionMappingCreateBulk is the builder for creating many SessionMapping entities in bulk.
type SessionMappingCreateBulk struct {
	config
	err      error
	builders []*SessionMappingCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionMapping entities in the database.
func (_c *SessionMappingCreateBulk) Save(ctx context.Context) ([]*SessionMapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionMapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMappingMutation)
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
func (_c *SessionMappingCreateBulk) SaveX(ctx context.Context) []*SessionMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionMapping.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionMappingUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionMappingCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionMappingUpsertBulk {
	_c.conflict = opts
	return &SessionMappingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionMapping.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionMappingCreateBulk) OnConflictColumns(columns ...string) *SessionMappingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionMappingUpsertBulk{
		create: _c,
	}
}

// SessionMappingUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionMapping nodes.
type SessionMappingUpsertBulk struct {
	create *SessionMappingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionMapping.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionmapping.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionMappingUpsertBulk) UpdateNewValues() *SessionMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sessionmapping.FieldID)
			}
			if _, exists := b.mutation.BusinessID(); exists {
				s.SetIgnore(sessionmapping.FieldBusinessID)
			}
			if _, exists := b.mutation.Channel(); exists {
				s.SetIgnore(sessionmapping.FieldChannel)
			}
			if _, exists := b.mutation.ChannelUserID(); exists {
				s.SetIgnore(sessionmapping.FieldChannelUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sessionmapping.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionMapping.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionMappingUpsertBulk) Ignore() *SessionMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionMappingUpsertBulk) DoNothing() *SessionMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionMappingCreateBulk.OnConflict
// documentation for more info.
func (u *SessionMappingUpsertBulk) Update(set func(*SessionMappingUpsert)) *SessionMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionMappingUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *SessionMappingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionMappingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionMappingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionMappingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
