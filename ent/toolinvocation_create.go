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
	"github.com/desteklab/concierge/ent/toolinvocation"
)

// ToolInvocationCreate is the builder for creating a ToolInvocation entity.
type ToolInvocationCreate struct {
	config
	mutation *ToolInvocationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *ToolInvocationCreate) SetSessionID(v string) *ToolInvocationCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTurnID sets the "turn_id" field.
func (_c *ToolInvocationCreate) SetTurnID(v string) *ToolInvocationCreate {
	_c.mutation.SetTurnID(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ToolInvocationCreate) SetToolName(v string) *ToolInvocationCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetArgsHash sets the "args_hash" field.
func (_c *ToolInvocationCreate) SetArgsHash(v string) *ToolInvocationCreate {
	_c.mutation.SetArgsHash(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *ToolInvocationCreate) SetResult(v map[string]interface{}) *ToolInvocationCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *ToolInvocationCreate) SetOutcome(v string) *ToolInvocationCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolInvocationCreate) SetCreatedAt(v time.Time) *ToolInvocationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableCreatedAt(v *time.Time) *ToolInvocationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolInvocationCreate) SetID(v string) *ToolInvocationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ToolInvocationMutation object of the builder.
func (_c *ToolInvocationCreate) Mutation() *ToolInvocationMutation {
	return _c.mutation
}

// Save creates the ToolInvocation in the database.
func (_c *ToolInvocationCreate) Save(ctx context.Context) (*ToolInvocation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolInvocationCreate) SaveX(ctx context.Context) *ToolInvocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolInvocationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolInvocationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolInvocationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := toolinvocation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolInvocationCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ToolInvocation.session_id"`)}
	}
	if _, ok := _c.mutation.TurnID(); !ok {
		return &ValidationError{Name: "turn_id", err: errors.New(`ent: missing required field "ToolInvocation.turn_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "ToolInvocation.tool_name"`)}
	}
	if _, ok := _c.mutation.ArgsHash(); !ok {
		return &ValidationError{Name: "args_hash", err: errors.New(`ent: missing required field "ToolInvocation.args_hash"`)}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required field "ToolInvocation.result"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "ToolInvocation.outcome"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolInvocation.created_at"`)}
	}
	return nil
}

func (_c *ToolInvocationCreate) sqlSave(ctx context.Context) (*ToolInvocation, error) {
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
			return nil, fmt.Errorf("unexpected ToolInvocation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolInvocationCreate) createSpec() (*ToolInvocation, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolInvocation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolinvocation.Table, sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(toolinvocation.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TurnID(); ok {
		_spec.SetField(toolinvocation.FieldTurnID, field.TypeString, value)
		_node.TurnID = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(toolinvocation.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.ArgsHash(); ok {
		_spec.SetField(toolinvocation.FieldArgsHash, field.TypeString, value)
		_node.ArgsHash = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(toolinvocation.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(toolinvocation.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(toolinvocation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToolInvocation.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolInvocationUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolInvocationCreate) OnConflict(opts ...sql.ConflictOption) *ToolInvocationUpsertOne {
	_c.conflict = opts
	return &ToolInvocationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolInvocation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolInvocationCreate) OnConflictColumns(columns ...string) *ToolInvocationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolInvocationUpsertOne{
		create: _c,
	}
}

type (
	// ToolInvocationUpsertOne is the builder for "upsert"-ing
	//  one ToolInvocation node.
	ToolInvocationUpsertOne struct {
		create *ToolInvocationCreate
	}

	// ToolInvocationUpsert is the "OnConflict" setter.
	ToolInvocationUpsert struct {
		*sql.UpdateSet
	}
)

// SetResult sets the "result" field.
func (u *ToolInvocationUpsert) SetResult(v map[string]interface{}) *ToolInvocationUpsert {
	u.Set(toolinvocation.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ToolInvocationUpsert) UpdateResult() *ToolInvocationUpsert {
	u.SetExcluded(toolinvocation.FieldResult)
	return u
}

// SetOutcome sets the "outcome" field.
func (u *ToolInvocationUpsert) SetOutcome(v string) *ToolInvocationUpsert {
	u.Set(toolinvocation.FieldOutcome, v)
	return u
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *ToolInvocationUpsert) UpdateOutcome() *ToolInvocationUpsert {
	u.SetExcluded(toolinvocation.FieldOutcome)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ToolInvocation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(toolinvocation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ToolInvocationUpsertOne) UpdateNewValues() *ToolInvocationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(toolinvocation.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(toolinvocation.FieldSessionID)
		}
		if _, exists := u.create.mutation.TurnID(); exists {
			s.SetIgnore(toolinvocation.FieldTurnID)
		}
		if _, exists := u.create.mutation.ToolName(); exists {
			s.SetIgnore(toolinvocation.FieldToolName)
		}
		if _, exists := u.create.mutation.ArgsHash(); exists {
			s.SetIgnore(toolinvocation.FieldArgsHash)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(toolinvocation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolInvocation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ToolInvocationUpsertOne) Ignore() *ToolInvocationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolInvocationUpsertOne) DoNothing() *ToolInvocationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolInvocationCreate.OnConflict
// documentation for more info.
func (u *ToolInvocationUpsertOne) Update(set func(*ToolInvocationUpsert)) *ToolInvocationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolInvocationUpsert{UpdateSet: update})
	}))
	return u
}

// SetResult sets the "result" field.
func (u *ToolInvocationUpsertOne) SetResult(v map[string]interface{}) *ToolInvocationUpsertOne {
	return u.Update(func(s *ToolInvocationUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ToolInvocationUpsertOne) UpdateResult() *ToolInvocationUpsertOne {
	return u.Update(func(s *ToolInvocationUpsert) {
		s.UpdateResult()
	})
}

// SetOutcome sets the "outcome" field.
func (u *ToolInvocationUpsertOne) SetOutcome(v string) *ToolInvocationUpsertOne {
	return u.Update(func(s *ToolInvocationUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *ToolInvocationUpsertOne) UpdateOutcome() *ToolInvocationUpsertOne {
	return u.Update(func(s *ToolInvocationUpsert) {
		s.UpdateOutcome()
	})
}

// Exec executes the query.
func (u *ToolInvocationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolInvocationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolInvocationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ToolInvocationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ToolInvocationUpsertOne.ID is not supported by MySQL driver. Use ToolInvocationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ToolInvocationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ToolInvocationCreateBulk is the builder for creating many ToolInvocation entities in bulk.
type ToolInvocationCreateBulk struct {
	config
	err      error
	builders []*ToolInvocationCreate
	conflict []sql.ConflictOption
}

// Save creates the ToolInvocation entities in the database.
func (_c *ToolInvocationCreateBulk) Save(ctx context.Context) ([]*ToolInvocation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolInvocation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolInvocationMutation)
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
func (_c *ToolInvocationCreateBulk) SaveX(ctx context.Context) []*ToolInvocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolInvocationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolInvocationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToolInvocation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolInvocationUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolInvocationCreateBulk) OnConflict(opts ...sql.ConflictOption) *ToolInvocationUpsertBulk {
	_c.conflict = opts
	return &ToolInvocationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolInvocation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolInvocationCreateBulk) OnConflictColumns(columns ...string) *ToolInvocationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolInvocationUpsertBulk{
		create: _c,
	}
}

// ToolInvocationUpsertBulk is the builder for "upsert"-ing
// a bulk of ToolInvocation nodes.
type ToolInvocationUpsertBulk struct {
	create *ToolInvocationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ToolInvocation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(toolinvocation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ToolInvocationUpsertBulk) UpdateNewValues() *ToolInvocationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(toolinvocation.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(toolinvocation.FieldSessionID)
			}
			if _, exists := b.mutation.TurnID(); exists {
				s.SetIgnore(toolinvocation.FieldTurnID)
			}
			if _, exists := b.mutation.ToolName(); exists {
				s.SetIgnore(toolinvocation.FieldToolName)
			}
			if _, exists := b.mutation.ArgsHash(); exists {
				s.SetIgnore(toolinvocation.FieldArgsHash)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(toolinvocation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolInvocation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ToolInvocationUpsertBulk) Ignore() *ToolInvocationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolInvocationUpsertBulk) DoNothing() *ToolInvocationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolInvocationCreateBulk.OnConflict
// documentation for more info.
func (u *ToolInvocationUpsertBulk) Update(set func(*ToolInvocationUpsert)) *ToolInvocationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolInvocationUpsert{UpdateSet: update})
	}))
	return u
}

// SetResult sets the "result" field.
func (u *ToolInvocationUpsertBulk) SetResult(v map[string]interface{}) *ToolInvocationUpsertBulk {
	return u.Update(func(s *ToolInvocationUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ToolInvocationUpsertBulk) UpdateResult() *ToolInvocationUpsertBulk {
	return u.Update(func(s *ToolInvocationUpsert) {
		s.UpdateResult()
	})
}

// SetOutcome sets the "outcome" field.
func (u *ToolInvocationUpsertBulk) SetOutcome(v string) *ToolInvocationUpsertBulk {
	return u.Update(func(s *ToolInvocationUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *ToolInvocationUpsertBulk) UpdateOutcome() *ToolInvocationUpsertBulk {
	return u.Update(func(s *ToolInvocationUpsert) {
		s.UpdateOutcome()
	})
}

// Exec executes the query.
func (u *ToolInvocationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ToolInvocationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolInvocationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolInvocationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
