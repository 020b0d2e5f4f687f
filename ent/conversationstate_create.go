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
	"github.com/desteklab/concierge/ent/conversationstate"
)

// ConversationStateCreate is the builder for creating a ConversationState entity.
type ConversationStateCreate struct {
	config
	mutation *ConversationStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetState sets the "state" field.
func (_c *ConversationStateCreate) SetState(v map[string]interface{}) *ConversationStateCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ConversationStateCreate) SetVersion(v int) *ConversationStateCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ConversationStateCreate) SetNillableVersion(v *int) *ConversationStateCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ConversationStateCreate) SetExpiresAt(v time.Time) *ConversationStateCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConversationStateCreate) SetUpdatedAt(v time.Time) *ConversationStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConversationStateCreate) SetNillableUpdatedAt(v *time.Time) *ConversationStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationStateCreate) SetID(v string) *ConversationStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConversationStateMutation object of the builder.
func (_c *ConversationStateCreate) Mutation() *ConversationStateMutation {
	return _c.mutation
}

// Save creates the ConversationState in the database.
func (_c *ConversationStateCreate) Save(ctx context.Context) (*ConversationState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationStateCreate) SaveX(ctx context.Context) *ConversationState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationStateCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := conversationstate.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conversationstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationStateCreate) check() error {
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "ConversationState.state"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ConversationState.version"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ConversationState.expires_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConversationState.updated_at"`)}
	}
	return nil
}

func (_c *ConversationStateCreate) sqlSave(ctx context.Context) (*ConversationState, error) {
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
			return nil, fmt.Errorf("unexpected ConversationState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationStateCreate) createSpec() (*ConversationState, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversationState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversationstate.Table, sqlgraph.NewFieldSpec(conversationstate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(conversationstate.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(conversationstate.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(conversationstate.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conversationstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ConversationState.Create().
//		SetState(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationStateUpsert) {
//			SetState(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationStateCreate) OnConflict(opts ...sql.ConflictOption) *ConversationStateUpsertOne {
	_c.conflict = opts
	return &ConversationStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ConversationState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationStateCreate) OnConflictColumns(columns ...string) *ConversationStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationStateUpsertOne{
		create: _c,
	}
}

type (
	// ConversationStateUpsertOne is the builder for "upsert"-ing
	//  one ConversationState node.
	ConversationStateUpsertOne struct {
		create *ConversationStateCreate
	}

	// ConversationStateUpsert is the "OnConflict" setter.
	ConversationStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetState sets the "state" field.
func (u *ConversationStateUpsert) SetState(v map[string]interface{}) *ConversationStateUpsert {
	u.Set(conversationstate.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ConversationStateUpsert) UpdateState() *ConversationStateUpsert {
	u.SetExcluded(conversationstate.FieldState)
	return u
}

// SetVersion sets the "version" field.
func (u *ConversationStateUpsert) SetVersion(v int) *ConversationStateUpsert {
	u.Set(conversationstate.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ConversationStateUpsert) UpdateVersion() *ConversationStateUpsert {
	u.SetExcluded(conversationstate.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *ConversationStateUpsert) AddVersion(v int) *ConversationStateUpsert {
	u.Add(conversationstate.FieldVersion, v)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *ConversationStateUpsert) SetExpiresAt(v time.Time) *ConversationStateUpsert {
	u.Set(conversationstate.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ConversationStateUpsert) UpdateExpiresAt() *ConversationStateUpsert {
	u.SetExcluded(conversationstate.FieldExpiresAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConversationStateUpsert) SetUpdatedAt(v time.Time) *ConversationStateUpsert {
	u.Set(conversationstate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConversationStateUpsert) UpdateUpdatedAt() *ConversationStateUpsert {
	u.SetExcluded(conversationstate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ConversationState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conversationstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConversationStateUpsertOne) UpdateNewValues() *ConversationStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(conversationstate.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ConversationState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConversationStateUpsertOne) Ignore() *ConversationStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationStateUpsertOne) DoNothing() *ConversationStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationStateCreate.OnConflict
// documentation for more info.
func (u *ConversationStateUpsertOne) Update(set func(*ConversationStateUpsert)) *ConversationStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *ConversationStateUpsertOne) SetState(v map[string]interface{}) *ConversationStateUpsertOne {
	return u.Update(func(s *ConversationStateUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ConversationStateUpsertOne) UpdateState() *ConversationStateUpsertOne {
	return u.Update(func(s *ConversationStateUpsert) {
		s.UpdateState()
	})
}

// SetVersion sets the "version" field.
func (u *ConversationStateUpsertOne) SetVersion(v int) *ConversationStateUpsertOne {
	return u.Update(func(s *ConversationStateUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *ConversationStateUpsertOne) AddVersion(v int) *ConversationStateUpsertOne {
	return u.Update(func(s *ConversationStateUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ConversationStateUpsertOne) UpdateVersion() *ConversationStateUpsertOne {
	return u.Update(func(s *ConversationStateUpsert) {
		s.UpdateVersion()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ConversationStateUpsertOne) SetExpiresAt(v time.Time) *ConversationStateUpsertOne {
	return u.Update(func(s *ConversationStateUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ConversationStateUpsertOne) UpdateExpiresAt() *ConversationStateUpsertOne {
	return u.Update(func(s *ConversationStateUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConversationStateUpsertOne) SetUpdatedAt(v time.Time) *ConversationStateUpsertOne {
	return u.Update(func(s *ConversationStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConversationStateUpsertOne) UpdateUpdatedAt() *ConversationStateUpsertOne {
	return u.Update(func(s *ConversationStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ConversationStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConversationStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConversationStateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ConversationStateUpsertOne.ID is not supported by MySQL driver. Use ConversationStateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConversationStateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConversationStateCreateBulk is the builder for creating many ConversationState entities in bulk.
type ConversationStateCreateBulk struct {
	config
	err      error
	builders []*ConversationStateCreate
	conflict []sql.ConflictOption
}

// Save creates the ConversationState entities in the database.
func (_c *ConversationStateCreateBulk) Save(ctx context.Context) ([]*ConversationState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConversationState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationStateMutation)
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
func (_c *ConversationStateCreateBulk) SaveX(ctx context.Context) []*ConversationState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ConversationState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationStateUpsert) {
//			SetState(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConversationStateUpsertBulk {
	_c.conflict = opts
	return &ConversationStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ConversationState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationStateCreateBulk) OnConflictColumns(columns ...string) *ConversationStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationStateUpsertBulk{
		create: _c,
	}
}

// ConversationStateUpsertBulk is the builder for "upsert"-ing
// a bulk of ConversationState nodes.
type ConversationStateUpsertBulk struct {
	create *ConversationStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ConversationState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conversationstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConversationStateUpsertBulk) UpdateNewValues() *ConversationStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(conversationstate.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ConversationState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConversationStateUpsertBulk) Ignore() *ConversationStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationStateUpsertBulk) DoNothing() *ConversationStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationStateCreateBulk.OnConflict
// documentation for more info.
func (u *ConversationStateUpsertBulk) Update(set func(*ConversationStateUpsert)) *ConversationStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *ConversationStateUpsertBulk) SetState(v map[string]interface{}) *ConversationStateUpsertBulk {
	return u.Update(func(s *ConversationStateUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ConversationStateUpsertBulk) UpdateState() *ConversationStateUpsertBulk {
	return u.Update(func(s *ConversationStateUpsert) {
		s.UpdateState()
	})
}

// SetVersion sets the "version" field.
func (u *ConversationStateUpsertBulk) SetVersion(v int) *ConversationStateUpsertBulk {
	return u.Update(func(s *ConversationStateUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *ConversationStateUpsertBulk) AddVersion(v int) *ConversationStateUpsertBulk {
	return u.Update(func(s *ConversationStateUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ConversationStateUpsertBulk) UpdateVersion() *ConversationStateUpsertBulk {
	return u.Update(func(s *ConversationStateUpsert) {
		s.UpdateVersion()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ConversationStateUpsertBulk) SetExpiresAt(v time.Time) *ConversationStateUpsertBulk {
	return u.Update(func(s *ConversationStateUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ConversationStateUpsertBulk) UpdateExpiresAt() *ConversationStateUpsertBulk {
	return u.Update(func(s *ConversationStateUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConversationStateUpsertBulk) SetUpdatedAt(v time.Time) *ConversationStateUpsertBulk {
	return u.Update(func(s *ConversationStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConversationStateUpsertBulk) UpdateUpdatedAt() *ConversationStateUpsertBulk {
	return u.Update(func(s *ConversationStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ConversationStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ConversationStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConversationStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
