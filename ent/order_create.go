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

// OrderCreate is the builder for creating a Order entity.
type OrderCreate struct {
	config
	mutation *OrderMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBusinessID sets the "business_id" field.
func (_c *OrderCreate) SetBusinessID(v string) *OrderCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetOrderNumber sets the "order_number" field.
func (_c *OrderCreate) SetOrderNumber(v string) *OrderCreate {
	_c.mutation.SetOrderNumber(v)
	return _c
}

// SetCustomerID sets the "customer_id" field.
func (_c *OrderCreate) SetCustomerID(v string) *OrderCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCustomerID(v *string) *OrderCreate {
	if v != nil {
		_c.SetCustomerID(*v)
	}
	return _c
}

// SetCustomerName sets the "customer_name" field.
func (_c *OrderCreate) SetCustomerName(v string) *OrderCreate {
	_c.mutation.SetCustomerName(v)
	return _c
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCustomerName(v *string) *OrderCreate {
	if v != nil {
		_c.SetCustomerName(*v)
	}
	return _c
}

// SetCustomerPhone sets the "customer_phone" field.
func (_c *OrderCreate) SetCustomerPhone(v string) *OrderCreate {
	_c.mutation.SetCustomerPhone(v)
	return _c
}

// SetNillableCustomerPhone sets the "customer_phone" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCustomerPhone(v *string) *OrderCreate {
	if v != nil {
		_c.SetCustomerPhone(*v)
	}
	return _c
}

// SetCustomerEmail sets the "customer_email" field.
func (_c *OrderCreate) SetCustomerEmail(v string) *OrderCreate {
	_c.mutation.SetCustomerEmail(v)
	return _c
}

// SetNillableCustomerEmail sets the "customer_email" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCustomerEmail(v *string) *OrderCreate {
	if v != nil {
		_c.SetCustomerEmail(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *OrderCreate) SetStatus(v string) *OrderCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OrderCreate) SetNillableStatus(v *string) *OrderCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTrackingNumber sets the "tracking_number" field.
func (_c *OrderCreate) SetTrackingNumber(v string) *OrderCreate {
	_c.mutation.SetTrackingNumber(v)
	return _c
}

// SetNillableTrackingNumber sets the "tracking_number" field if the given value is not nil.
func (_c *OrderCreate) SetNillableTrackingNumber(v *string) *OrderCreate {
	if v != nil {
		_c.SetTrackingNumber(*v)
	}
	return _c
}

// SetCarrier sets the "carrier" field.
func (_c *OrderCreate) SetCarrier(v string) *OrderCreate {
	_c.mutation.SetCarrier(v)
	return _c
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCarrier(v *string) *OrderCreate {
	if v != nil {
		_c.SetCarrier(*v)
	}
	return _c
}

// SetItems sets the "items" field.
func (_c *OrderCreate) SetItems(v []map[string]interface{}) *OrderCreate {
	_c.mutation.SetItems(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *OrderCreate) SetTotal(v float64) *OrderCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *OrderCreate) SetNillableTotal(v *float64) *OrderCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrderCreate) SetCreatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCreatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrderCreate) SetID(v string) *OrderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_c *OrderCreate) SetCustomer(v *Customer) *OrderCreate {
	return _c.SetCustomerID(v.ID)
}

// Mutation returns the OrderMutation object of the builder.
func (_c *OrderCreate) Mutation() *OrderMutation {
	return _c.mutation
}

// Save creates the Order in the database.
func (_c *OrderCreate) Save(ctx context.Context) (*Order, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderCreate) SaveX(ctx context.Context) *Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := order.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Total(); !ok {
		v := order.DefaultTotal
		_c.mutation.SetTotal(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := order.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "Order.business_id"`)}
	}
	if _, ok := _c.mutation.OrderNumber(); !ok {
		return &ValidationError{Name: "order_number", err: errors.New(`ent: missing required field "Order.order_number"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Order.status"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "Order.total"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Order.created_at"`)}
	}
	return nil
}

func (_c *OrderCreate) sqlSave(ctx context.Context) (*Order, error) {
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
			return nil, fmt.Errorf("unexpected Order.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrderCreate) createSpec() (*Order, *sqlgraph.CreateSpec) {
	var (
		_node = &Order{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(order.Table, sqlgraph.NewFieldSpec(order.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(order.FieldBusinessID, field.TypeString, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.OrderNumber(); ok {
		_spec.SetField(order.FieldOrderNumber, field.TypeString, value)
		_node.OrderNumber = value
	}
	if value, ok := _c.mutation.CustomerName(); ok {
		_spec.SetField(order.FieldCustomerName, field.TypeString, value)
		_node.CustomerName = value
	}
	if value, ok := _c.mutation.CustomerPhone(); ok {
		_spec.SetField(order.FieldCustomerPhone, field.TypeString, value)
		_node.CustomerPhone = value
	}
	if value, ok := _c.mutation.CustomerEmail(); ok {
		_spec.SetField(order.FieldCustomerEmail, field.TypeString, value)
		_node.CustomerEmail = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TrackingNumber(); ok {
		_spec.SetField(order.FieldTrackingNumber, field.TypeString, value)
		_node.TrackingNumber = value
	}
	if value, ok := _c.mutation.Carrier(); ok {
		_spec.SetField(order.FieldCarrier, field.TypeString, value)
		_node.Carrier = value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(order.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(order.FieldTotal, field.TypeFloat64, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   order.CustomerTable,
			Columns: []string{order.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CustomerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Order.Create().
//		SetBusinessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderCreate) OnConflict(opts ...sql.ConflictOption) *OrderUpsertOne {
	_c.conflict = opts
	return &OrderUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderCreate) OnConflictColumns(columns ...string) *OrderUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderUpsertOne{
		create: _c,
	}
}

type (
	// OrderUpsertOne is the builder for "upsert"-ing
	//  one Order node.
	OrderUpsertOne struct {
		create *OrderCreate
	}

	// OrderUpsert is the "OnConflict" setter.
	OrderUpsert struct {
		*sql.UpdateSet
	}
)

// SetCustomerID sets the "customer_id" field.
func (u *OrderUpsert) SetCustomerID(v string) *OrderUpsert {
	u.Set(order.FieldCustomerID, v)
	return u
}

// UpdateCustomerID sets the "customer_id" field to the value that was provided on create.
func (u *OrderUpsert) UpdateCustomerID() *OrderUpsert {
	u.SetExcluded(order.FieldCustomerID)
	return u
}

// ClearCustomerID clears the value of the "customer_id" field.
func (u *OrderUpsert) ClearCustomerID() *OrderUpsert {
	u.SetNull(order.FieldCustomerID)
	return u
}

// SetCustomerName sets the "customer_name" field.
func (u *OrderUpsert) SetCustomerName(v string) *OrderUpsert {
	u.Set(order.FieldCustomerName, v)
	return u
}

// UpdateCustomerName sets the "customer_name" field to the value that was provided on create.
func (u *OrderUpsert) UpdateCustomerName() *OrderUpsert {
	u.SetExcluded(order.FieldCustomerName)
	return u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (u *OrderUpsert) ClearCustomerName() *OrderUpsert {
	u.SetNull(order.FieldCustomerName)
	return u
}

// SetCustomerPhone sets the "customer_phone" field.
func (u *OrderUpsert) SetCustomerPhone(v string) *OrderUpsert {
	u.Set(order.FieldCustomerPhone, v)
	return u
}

// UpdateCustomerPhone sets the "customer_phone" field to the value that was provided on create.
func (u *OrderUpsert) UpdateCustomerPhone() *OrderUpsert {
	u.SetExcluded(order.FieldCustomerPhone)
	return u
}

// ClearCustomerPhone clears the value of the "customer_phone" field.
func (u *OrderUpsert) ClearCustomerPhone() *OrderUpsert {
	u.SetNull(order.FieldCustomerPhone)
	return u
}

// SetCustomerEmail sets the "customer_email" field.
func (u *OrderUpsert) SetCustomerEmail(v string) *OrderUpsert {
	u.Set(order.FieldCustomerEmail, v)
	return u
}

// UpdateCustomerEmail sets the "customer_email" field to the value that was provided on create.
func (u *OrderUpsert) UpdateCustomerEmail() *OrderUpsert {
	u.SetExcluded(order.FieldCustomerEmail)
	return u
}

// ClearCustomerEmail clears the value of the "customer_email" field.
func (u *OrderUpsert) ClearCustomerEmail() *OrderUpsert {
	u.SetNull(order.FieldCustomerEmail)
	return u
}

// SetStatus sets the "status" field.
func (u *OrderUpsert) SetStatus(v string) *OrderUpsert {
	u.Set(order.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OrderUpsert) UpdateStatus() *OrderUpsert {
	u.SetExcluded(order.FieldStatus)
	return u
}

// SetTrackingNumber sets the "tracking_number" field.
func (u *OrderUpsert) SetTrackingNumber(v string) *OrderUpsert {
	u.Set(order.FieldTrackingNumber, v)
	return u
}

// UpdateTrackingNumber sets the "tracking_number" field to the value that was provided on create.
func (u *OrderUpsert) UpdateTrackingNumber() *OrderUpsert {
	u.SetExcluded(order.FieldTrackingNumber)
	return u
}

// ClearTrackingNumber clears the value of the "tracking_number" field.
func (u *OrderUpsert) ClearTrackingNumber() *OrderUpsert {
	u.SetNull(order.FieldTrackingNumber)
	return u
}

// SetCarrier sets the "carrier" field.
func (u *OrderUpsert) SetCarrier(v string) *OrderUpsert {
	u.Set(order.FieldCarrier, v)
	return u
}

// UpdateCarrier sets the "carrier" field to the value that was provided on create.
func (u *OrderUpsert) UpdateCarrier() *OrderUpsert {
	u.SetExcluded(order.FieldCarrier)
	return u
}

// ClearCarrier clears the value of the "carrier" field.
func (u *OrderUpsert) ClearCarrier() *OrderUpsert {
	u.SetNull(order.FieldCarrier)
	return u
}

// SetItems sets the "items" field.
func (u *OrderUpsert) SetItems(v []map[string]interface{}) *OrderUpsert {
	u.Set(order.FieldItems, v)
	return u
}

// UpdateItems sets the "items" field to the value that was provided on create.
func (u *OrderUpsert) UpdateItems() *OrderUpsert {
	u.SetExcluded(order.FieldItems)
	return u
}

// ClearItems clears the value of the "items" field.
func (u *OrderUpsert) ClearItems() *OrderUpsert {
	u.SetNull(order.FieldItems)
	return u
}

// SetTotal sets the "total" field.
func (u *OrderUpsert) SetTotal(v float64) *OrderUpsert {
	u.Set(order.FieldTotal, v)
	return u
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *OrderUpsert) UpdateTotal() *OrderUpsert {
	u.SetExcluded(order.FieldTotal)
	return u
}

// AddTotal adds v to the "total" field.
func (u *OrderUpsert) AddTotal(v float64) *OrderUpsert {
	u.Add(order.FieldTotal, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(order.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OrderUpsertOne) UpdateNewValues() *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(order.FieldID)
		}
		if _, exists := u.create.mutation.BusinessID(); exists {
			s.SetIgnore(order.FieldBusinessID)
		}
		if _, exists := u.create.mutation.OrderNumber(); exists {
			s.SetIgnore(order.FieldOrderNumber)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(order.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Order.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OrderUpsertOne) Ignore() *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderUpsertOne) DoNothing() *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderCreate.OnConflict
// documentation for more info.
func (u *OrderUpsertOne) Update(set func(*OrderUpsert)) *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetCustomerID sets the "customer_id" field.
func (u *OrderUpsertOne) SetCustomerID(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetCustomerID(v)
	})
}

// UpdateCustomerID sets the "customer_id" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateCustomerID() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCustomerID()
	})
}

// ClearCustomerID clears the value of the "customer_id" field.
func (u *OrderUpsertOne) ClearCustomerID() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearCustomerID()
	})
}

// SetCustomerName sets the "customer_name" field.
func (u *OrderUpsertOne) SetCustomerName(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetCustomerName(v)
	})
}

// UpdateCustomerName sets the "customer_name" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateCustomerName() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCustomerName()
	})
}

// ClearCustomerName clears the value of the "customer_name" field.
func (u *OrderUpsertOne) ClearCustomerName() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearCustomerName()
	})
}

// SetCustomerPhone sets the "customer_phone" field.
func (u *OrderUpsertOne) SetCustomerPhone(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetCustomerPhone(v)
	})
}

// UpdateCustomerPhone sets the "customer_phone" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateCustomerPhone() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCustomerPhone()
	})
}

// ClearCustomerPhone clears the value of the "customer_phone" field.
func (u *OrderUpsertOne) ClearCustomerPhone() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearCustomerPhone()
	})
}

// SetCustomerEmail sets the "customer_email" field.
func (u *OrderUpsertOne) SetCustomerEmail(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetCustomerEmail(v)
	})
}

// UpdateCustomerEmail sets the "customer_email" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateCustomerEmail() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCustomerEmail()
	})
}

// ClearCustomerEmail clears the value of the "customer_email" field.
func (u *OrderUpsertOne) ClearCustomerEmail() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearCustomerEmail()
	})
}

// SetStatus sets the "status" field.
func (u *OrderUpsertOne) SetStatus(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateStatus() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateStatus()
	})
}

// SetTrackingNumber sets the "tracking_number" field.
func (u *OrderUpsertOne) SetTrackingNumber(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetTrackingNumber(v)
	})
}

// UpdateTrackingNumber sets the "tracking_number" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateTrackingNumber() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTrackingNumber()
	})
}

// ClearTrackingNumber clears the value of the "tracking_number" field.
func (u *OrderUpsertOne) ClearTrackingNumber() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearTrackingNumber()
	})
}

// SetCarrier sets the "carrier" field.
func (u *OrderUpsertOne) SetCarrier(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetCarrier(v)
	})
}

// UpdateCarrier sets the "carrier" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateCarrier() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCarrier()
	})
}

// ClearCarrier clears the value of the "carrier" field.
func (u *OrderUpsertOne) ClearCarrier() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearCarrier()
	})
}

// SetItems sets the "items" field.
func (u *OrderUpsertOne) SetItems(v []map[string]interface{}) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetItems(v)
	})
}

// UpdateItems sets the "items" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateItems() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateItems()
	})
}

// ClearItems clears the value of the "items" field.
func (u *OrderUpsertOne) ClearItems() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearItems()
	})
}

// SetTotal sets the "total" field.
func (u *OrderUpsertOne) SetTotal(v float64) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *OrderUpsertOne) AddTotal(v float64) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateTotal() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTotal()
	})
}

// Exec executes the query.
func (u *OrderUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrderCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OrderUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OrderUpsertOne.ID is not supported by MySQL driver. Use OrderUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OrderUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OrderCreateBulk is the builder for creating many Order entities in bulk.
type OrderCreateBulk struct {
	config
	err      error
	builders []*OrderCreate
	conflict []sql.ConflictOption
}

// Save creates the Order entities in the database.
func (_c *OrderCreateBulk) Save(ctx context.Context) ([]*Order, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Order, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderMutation)
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
func (_c *OrderCreateBulk) SaveX(ctx context.Context) []*Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Order.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderCreateBulk) OnConflict(opts ...sql.ConflictOption) *OrderUpsertBulk {
	_c.conflict = opts
	return &OrderUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderCreateBulk) OnConflictColumns(columns ...string) *OrderUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderUpsertBulk{
		create: _c,
	}
}

// OrderUpsertBulk is the builder for "upsert"-ing
// a bulk of Order nodes.
type OrderUpsertBulk struct {
	create *OrderCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(order.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OrderUpsertBulk) UpdateNewValues() *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(order.FieldID)
			}
			if _, exists := b.mutation.BusinessID(); exists {
				s.SetIgnore(order.FieldBusinessID)
			}
			if _, exists := b.mutation.OrderNumber(); exists {
				s.SetIgnore(order.FieldOrderNumber)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(order.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OrderUpsertBulk) Ignore() *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderUpsertBulk) DoNothing() *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderCreateBulk.OnConflict
// documentation for more info.
func (u *OrderUpsertBulk) Update(set func(*OrderUpsert)) *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetCustomerID sets the "customer_id" field.
func (u *OrderUpsertBulk) SetCustomerID(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetCustomerID(v)
	})
}

// UpdateCustomerID sets the "customer_id" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateCustomerID() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCustomerID()
	})
}

// ClearCustomerID clears the value of the "customer_id" field.
func (u *OrderUpsertBulk) ClearCustomerID() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearCustomerID()
	})
}

// SetCustomerName sets the "customer_name" field.
func (u *OrderUpsertBulk) SetCustomerName(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetCustomerName(v)
	})
}

// UpdateCustomerName sets the "customer_name" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateCustomerName() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCustomerName()
	})
}

// ClearCustomerName clears the value of the "customer_name" field.
func (u *OrderUpsertBulk) ClearCustomerName() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearCustomerName()
	})
}

// SetCustomerPhone sets the "customer_phone" field.
func (u *OrderUpsertBulk) SetCustomerPhone(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetCustomerPhone(v)
	})
}

// UpdateCustomerPhone sets the "customer_phone" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateCustomerPhone() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCustomerPhone()
	})
}

// ClearCustomerPhone clears the value of the "customer_phone" field.
func (u *OrderUpsertBulk) ClearCustomerPhone() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearCustomerPhone()
	})
}

// SetCustomerEmail sets the "customer_email" field.
func (u *OrderUpsertBulk) SetCustomerEmail(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetCustomerEmail(v)
	})
}

// UpdateCustomerEmail sets the "customer_email" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateCustomerEmail() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCustomerEmail()
	})
}

// ClearCustomerEmail clears the value of the "customer_email" field.
func (u *OrderUpsertBulk) ClearCustomerEmail() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearCustomerEmail()
	})
}

// SetStatus sets the "status" field.
func (u *OrderUpsertBulk) SetStatus(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateStatus() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateStatus()
	})
}

// SetTrackingNumber sets the "tracking_number" field.
func (u *OrderUpsertBulk) SetTrackingNumber(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetTrackingNumber(v)
	})
}

// UpdateTrackingNumber sets the "tracking_number" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateTrackingNumber() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTrackingNumber()
	})
}

// ClearTrackingNumber clears the value of the "tracking_number" field.
func (u *OrderUpsertBulk) ClearTrackingNumber() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearTrackingNumber()
	})
}

// SetCarrier sets the "carrier" field.
func (u *OrderUpsertBulk) SetCarrier(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetCarrier(v)
	})
}

// UpdateCarrier sets the "carrier" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateCarrier() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCarrier()
	})
}

// ClearCarrier clears the value of the "carrier" field.
func (u *OrderUpsertBulk) ClearCarrier() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearCarrier()
	})
}

// SetItems sets the "items" field.
func (u *OrderUpsertBulk) SetItems(v []map[string]interface{}) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetItems(v)
	})
}

// UpdateItems sets the "items" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateItems() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateItems()
	})
}

// ClearItems clears the value of the "items" field.
func (u *OrderUpsertBulk) ClearItems() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearItems()
	})
}

// SetTotal sets the "total" field.
func (u *OrderUpsertBulk) SetTotal(v float64) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *OrderUpsertBulk) AddTotal(v float64) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateTotal() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTotal()
	})
}

// Exec executes the query.
func (u *OrderUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OrderCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrderCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
