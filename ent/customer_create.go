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
	"github.com/desteklab/concierge/ent/customer"
	"github.com/desteklab/concierge/ent/order"
)

// CustomerCreate is the builder for creating a Customer entity.
type CustomerCreate struct {
	config
	mutation *CustomerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBusinessID sets the "business_id" field.
func (_c *CustomerCreate) SetBusinessID(v string) *CustomerCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CustomerCreate) SetName(v string) *CustomerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *CustomerCreate) SetPhone(v string) *CustomerCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *CustomerCreate) SetNillablePhone(v *string) *CustomerCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *CustomerCreate) SetEmail(v string) *CustomerCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *CustomerCreate) SetNillableEmail(v *string) *CustomerCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetTc sets the "tc" field.
func (_c *CustomerCreate) SetTc(v string) *CustomerCreate {
	_c.mutation.SetTc(v)
	return _c
}

// SetNillableTc sets the "tc" field if the given value is not nil.
func (_c *CustomerCreate) SetNillableTc(v *string) *CustomerCreate {
	if v != nil {
		_c.SetTc(*v)
	}
	return _c
}

// SetVkn sets the "vkn" field.
func (_c *CustomerCreate) SetVkn(v string) *CustomerCreate {
	_c.mutation.SetVkn(v)
	return _c
}

// SetNillableVkn sets the "vkn" field if the given value is not nil.
func (_c *CustomerCreate) SetNillableVkn(v *string) *CustomerCreate {
	if v != nil {
		_c.SetVkn(*v)
	}
	return _c
}

// SetBalance sets the "balance" field.
func (_c *CustomerCreate) SetBalance(v float64) *CustomerCreate {
	_c.mutation.SetBalance(v)
	return _c
}

// SetNillableBalance sets the "balance" field if the given value is not nil.
func (_c *CustomerCreate) SetNillableBalance(v *float64) *CustomerCreate {
	if v != nil {
		_c.SetBalance(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CustomerCreate) SetCreatedAt(v time.Time) *CustomerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CustomerCreate) SetNillableCreatedAt(v *time.Time) *CustomerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CustomerCreate) SetID(v string) *CustomerCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddOrderIDs adds the "orders" edge to the Order entity by IDs.
func (_c *CustomerCreate) AddOrderIDs(ids ...string) *CustomerCreate {
	_c.mutation.AddOrderIDs(ids...)
	return _c
}

// AddOrders adds the "orders" edges to the Order entity.
func (_c *CustomerCreate) AddOrders(v ...*Order) *CustomerCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOrderIDs(ids...)
}

// Mutation returns the CustomerMutation object of the builder.
func (_c *CustomerCreate) Mutation() *CustomerMutation {
	return _c.mutation
}

// Save creates the Customer in the database.
func (_c *CustomerCreate) Save(ctx context.Context) (*Customer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CustomerCreate) SaveX(ctx context.Context) *Customer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CustomerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CustomerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CustomerCreate) defaults() {
	if _, ok := _c.mutation.Balance(); !ok {
		v := customer.DefaultBalance
		_c.mutation.SetBalance(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := customer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CustomerCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "Customer.business_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Customer.name"`)}
	}
	if _, ok := _c.mutation.Balance(); !ok {
		return &ValidationError{Name: "balance", err: errors.New(`ent: missing required field "Customer.balance"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Customer.created_at"`)}
	}
	return nil
}

func (_c *CustomerCreate) sqlSave(ctx context.Context) (*Customer, error) {
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
			return nil, fmt.Errorf("unexpected Customer.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CustomerCreate) createSpec() (*Customer, *sqlgraph.CreateSpec) {
	var (
		_node = &Customer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(customer.Table, sqlgraph.NewFieldSpec(customer.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(customer.FieldBusinessID, field.TypeString, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(customer.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(customer.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(customer.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Tc(); ok {
		_spec.SetField(customer.FieldTc, field.TypeString, value)
		_node.Tc = value
	}
	if value, ok := _c.mutation.Vkn(); ok {
		_spec.SetField(customer.FieldVkn, field.TypeString, value)
		_node.Vkn = value
	}
	if value, ok := _c.mutation.Balance(); ok {
		_spec.SetField(customer.FieldBalance, field.TypeFloat64, value)
		_node.Balance = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(customer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.OrdersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   customer.OrdersTable,
			Columns: []string{customer.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Customer.Create().
//		SetBusinessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CustomerUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *CustomerCreate) OnConflict(opts ...sql.ConflictOption) *CustomerUpsertOne {
	_c.conflict = opts
	return &CustomerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Customer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CustomerCreate) OnConflictColumns(columns ...string) *CustomerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CustomerUpsertOne{
		create: _c,
	}
}

type (
	// CustomerUpsertOne is the builder for "upsert"-ing
	//  one Customer node.
	CustomerUpsertOne struct {
		create *CustomerCreate
	}

	// CustomerUpsert is the "OnConflict" setter.
	CustomerUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *CustomerUpsert) SetName(v string) *CustomerUpsert {
	u.Set(customer.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CustomerUpsert) UpdateName() *CustomerUpsert {
	u.SetExcluded(customer.FieldName)
	return u
}

// SetPhone sets the "phone" field.
func (u *CustomerUpsert) SetPhone(v string) *CustomerUpsert {
	u.Set(customer.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CustomerUpsert) UpdatePhone() *CustomerUpsert {
	u.SetExcluded(customer.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *CustomerUpsert) ClearPhone() *CustomerUpsert {
	u.SetNull(customer.FieldPhone)
	return u
}

// SetEmail sets the "email" field.
func (u *CustomerUpsert) SetEmail(v string) *CustomerUpsert {
	u.Set(customer.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *CustomerUpsert) UpdateEmail() *CustomerUpsert {
	u.SetExcluded(customer.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *CustomerUpsert) ClearEmail() *CustomerUpsert {
	u.SetNull(customer.FieldEmail)
	return u
}

// SetTc sets the "tc" field.
func (u *CustomerUpsert) SetTc(v string) *CustomerUpsert {
	u.Set(customer.FieldTc, v)
	return u
}

// UpdateTc sets the "tc" field to the value that was provided on create.
func (u *CustomerUpsert) UpdateTc() *CustomerUpsert {
	u.SetExcluded(customer.FieldTc)
	return u
}

// ClearTc clears the value of the "tc" field.
func (u *CustomerUpsert) ClearTc() *CustomerUpsert {
	u.SetNull(customer.FieldTc)
	return u
}

// SetVkn sets the "vkn" field.
func (u *CustomerUpsert) SetVkn(v string) *CustomerUpsert {
	u.Set(customer.FieldVkn, v)
	return u
}

// UpdateVkn sets the "vkn" field to the value that was provided on create.
func (u *CustomerUpsert) UpdateVkn() *CustomerUpsert {
	u.SetExcluded(customer.FieldVkn)
	return u
}

// ClearVkn clears the value of the "vkn" field.
func (u *CustomerUpsert) ClearVkn() *CustomerUpsert {
	u.SetNull(customer.FieldVkn)
	return u
}

// SetBalance sets the "balance" field.
func (u *CustomerUpsert) SetBalance(v float64) *CustomerUpsert {
	u.Set(customer.FieldBalance, v)
	return u
}

// UpdateBalance sets the "balance" field to the value that was provided on create.
func (u *CustomerUpsert) UpdateBalance() *CustomerUpsert {
	u.SetExcluded(customer.FieldBalance)
	return u
}

// AddBalance adds v to the "balance" field.
func (u *CustomerUpsert) AddBalance(v float64) *CustomerUpsert {
	u.Add(customer.FieldBalance, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Customer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(customer.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CustomerUpsertOne) UpdateNewValues() *CustomerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(customer.FieldID)
		}
		if _, exists := u.create.mutation.BusinessID(); exists {
			s.SetIgnore(customer.FieldBusinessID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(customer.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Customer.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CustomerUpsertOne) Ignore() *CustomerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CustomerUpsertOne) DoNothing() *CustomerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CustomerCreate.OnConflict
// documentation for more info.
func (u *CustomerUpsertOne) Update(set func(*CustomerUpsert)) *CustomerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CustomerUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CustomerUpsertOne) SetName(v string) *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CustomerUpsertOne) UpdateName() *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.UpdateName()
	})
}

// SetPhone sets the "phone" field.
func (u *CustomerUpsertOne) SetPhone(v string) *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CustomerUpsertOne) UpdatePhone() *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *CustomerUpsertOne) ClearPhone() *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.ClearPhone()
	})
}

// SetEmail sets the "email" field.
func (u *CustomerUpsertOne) SetEmail(v string) *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *CustomerUpsertOne) UpdateEmail() *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *CustomerUpsertOne) ClearEmail() *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.ClearEmail()
	})
}

// SetTc sets the "tc" field.
func (u *CustomerUpsertOne) SetTc(v string) *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.SetTc(v)
	})
}

// UpdateTc sets the "tc" field to the value that was provided on create.
func (u *CustomerUpsertOne) UpdateTc() *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.UpdateTc()
	})
}

// ClearTc clears the value of the "tc" field.
func (u *CustomerUpsertOne) ClearTc() *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.ClearTc()
	})
}

// SetVkn sets the "vkn" field.
func (u *CustomerUpsertOne) SetVkn(v string) *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.SetVkn(v)
	})
}

// UpdateVkn sets the "vkn" field to the value that was provided on create.
func (u *CustomerUpsertOne) UpdateVkn() *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.UpdateVkn()
	})
}

// ClearVkn clears the value of the "vkn" field.
func (u *CustomerUpsertOne) ClearVkn() *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.ClearVkn()
	})
}

// SetBalance sets the "balance" field.
func (u *CustomerUpsertOne) SetBalance(v float64) *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.SetBalance(v)
	})
}

// AddBalance adds v to the "balance" field.
func (u *CustomerUpsertOne) AddBalance(v float64) *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.AddBalance(v)
	})
}

// UpdateBalance sets the "balance" field to the value that was provided on create.
func (u *CustomerUpsertOne) UpdateBalance() *CustomerUpsertOne {
	return u.Update(func(s *CustomerUpsert) {
		s.UpdateBalance()
	})
}

// Exec executes the query.
func (u *CustomerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CustomerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CustomerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CustomerUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CustomerUpsertOne.ID is not supported by MySQL driver. Use CustomerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CustomerUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CustomerCreateBulk is the builder for creating many Customer entities in bulk.
type CustomerCreateBulk struct {
	config
	err      error
	builders []*CustomerCreate
	conflict []sql.ConflictOption
}

// Save creates the Customer entities in the database.
func (_c *CustomerCreateBulk) Save(ctx context.Context) ([]*Customer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Customer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CustomerMutation)
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
func (_c *CustomerCreateBulk) SaveX(ctx context.Context) []*Customer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CustomerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CustomerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Customer.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CustomerUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *CustomerCreateBulk) OnConflict(opts ...sql.ConflictOption) *CustomerUpsertBulk {
	_c.conflict = opts
	return &CustomerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Customer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CustomerCreateBulk) OnConflictColumns(columns ...string) *CustomerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CustomerUpsertBulk{
		create: _c,
	}
}

// CustomerUpsertBulk is the builder for "upsert"-ing
// a bulk of Customer nodes.
type CustomerUpsertBulk struct {
	create *CustomerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Customer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(customer.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CustomerUpsertBulk) UpdateNewValues() *CustomerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(customer.FieldID)
			}
			if _, exists := b.mutation.BusinessID(); exists {
				s.SetIgnore(customer.FieldBusinessID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(customer.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Customer.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CustomerUpsertBulk) Ignore() *CustomerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CustomerUpsertBulk) DoNothing() *CustomerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CustomerCreateBulk.OnConflict
// documentation for more info.
func (u *CustomerUpsertBulk) Update(set func(*CustomerUpsert)) *CustomerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CustomerUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CustomerUpsertBulk) SetName(v string) *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CustomerUpsertBulk) UpdateName() *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.UpdateName()
	})
}

// SetPhone sets the "phone" field.
func (u *CustomerUpsertBulk) SetPhone(v string) *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CustomerUpsertBulk) UpdatePhone() *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *CustomerUpsertBulk) ClearPhone() *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.ClearPhone()
	})
}

// SetEmail sets the "email" field.
func (u *CustomerUpsertBulk) SetEmail(v string) *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *CustomerUpsertBulk) UpdateEmail() *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *CustomerUpsertBulk) ClearEmail() *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.ClearEmail()
	})
}

// SetTc sets the "tc" field.
func (u *CustomerUpsertBulk) SetTc(v string) *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.SetTc(v)
	})
}

// UpdateTc sets the "tc" field to the value that was provided on create.
func (u *CustomerUpsertBulk) UpdateTc() *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.UpdateTc()
	})
}

// ClearTc clears the value of the "tc" field.
func (u *CustomerUpsertBulk) ClearTc() *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.ClearTc()
	})
}

// SetVkn sets the "vkn" field.
func (u *CustomerUpsertBulk) SetVkn(v string) *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.SetVkn(v)
	})
}

// UpdateVkn sets the "vkn" field to the value that was provided on create.
func (u *CustomerUpsertBulk) UpdateVkn() *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.UpdateVkn()
	})
}

// ClearVkn clears the value of the "vkn" field.
func (u *CustomerUpsertBulk) ClearVkn() *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.ClearVkn()
	})
}

// SetBalance sets the "balance" field.
func (u *CustomerUpsertBulk) SetBalance(v float64) *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.SetBalance(v)
	})
}

// AddBalance adds v to the "balance" field.
func (u *CustomerUpsertBulk) AddBalance(v float64) *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.AddBalance(v)
	})
}

// UpdateBalance sets the "balance" field to the value that was provided on create.
func (u *CustomerUpsertBulk) UpdateBalance() *CustomerUpsertBulk {
	return u.Update(func(s *CustomerUpsert) {
		s.UpdateBalance()
	})
}

// Exec executes the query.
func (u *CustomerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CustomerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CustomerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CustomerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
