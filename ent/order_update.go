// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/desteklab/concierge/ent/customer"
	"github.com/desteklab/concierge/ent/order"
	"github.com/desteklab/concierge/ent/predicate"
)

// OrderUpdate is the builder for updating Order entities.
type OrderUpdate struct {
	config
	hooks    []Hook
	mutation *OrderMutation
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdate) Where(ps ...predicate.Order) *OrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *OrderUpdate) SetCustomerID(v string) *OrderUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCustomerID(v *string) *OrderUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// ClearCustomerID clears the value of the "customer_id" field.
func (_u *OrderUpdate) ClearCustomerID() *OrderUpdate {
	_u.mutation.ClearCustomerID()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *OrderUpdate) SetCustomerName(v string) *OrderUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCustomerName(v *string) *OrderUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *OrderUpdate) ClearCustomerName() *OrderUpdate {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetCustomerPhone sets the "customer_phone" field.
func (_u *OrderUpdate) SetCustomerPhone(v string) *OrderUpdate {
	_u.mutation.SetCustomerPhone(v)
	return _u
}

// SetNillableCustomerPhone sets the "customer_phone" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCustomerPhone(v *string) *OrderUpdate {
	if v != nil {
		_u.SetCustomerPhone(*v)
	}
	return _u
}

// ClearCustomerPhone clears the value of the "customer_phone" field.
func (_u *OrderUpdate) ClearCustomerPhone() *OrderUpdate {
	_u.mutation.ClearCustomerPhone()
	return _u
}

// SetCustomerEmail sets the "customer_email" field.
func (_u *OrderUpdate) SetCustomerEmail(v string) *OrderUpdate {
	_u.mutation.SetCustomerEmail(v)
	return _u
}

// SetNillableCustomerEmail sets the "customer_email" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCustomerEmail(v *string) *OrderUpdate {
	if v != nil {
		_u.SetCustomerEmail(*v)
	}
	return _u
}

// ClearCustomerEmail clears the value of the "customer_email" field.
func (_u *OrderUpdate) ClearCustomerEmail() *OrderUpdate {
	_u.mutation.ClearCustomerEmail()
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderUpdate) SetStatus(v string) *OrderUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableStatus(v *string) *OrderUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTrackingNumber sets the "tracking_number" field.
func (_u *OrderUpdate) SetTrackingNumber(v string) *OrderUpdate {
	_u.mutation.SetTrackingNumber(v)
	return _u
}

// SetNillableTrackingNumber sets the "tracking_number" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableTrackingNumber(v *string) *OrderUpdate {
	if v != nil {
		_u.SetTrackingNumber(*v)
	}
	return _u
}

// ClearTrackingNumber clears the value of the "tracking_number" field.
func (_u *OrderUpdate) ClearTrackingNumber() *OrderUpdate {
	_u.mutation.ClearTrackingNumber()
	return _u
}

// SetCarrier sets the "carrier" field.
func (_u *OrderUpdate) SetCarrier(v string) *OrderUpdate {
	_u.mutation.SetCarrier(v)
	return _u
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCarrier(v *string) *OrderUpdate {
	if v != nil {
		_u.SetCarrier(*v)
	}
	return _u
}

// ClearCarrier clears the value of the "carrier" field.
func (_u *OrderUpdate) ClearCarrier() *OrderUpdate {
	_u.mutation.ClearCarrier()
	return _u
}

// SetItems sets the "items" field.
func (_u *OrderUpdate) SetItems(v []map[string]interface{}) *OrderUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *OrderUpdate) AppendItems(v []map[string]interface{}) *OrderUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// ClearItems clears the value of the "items" field.
func (_u *OrderUpdate) ClearItems() *OrderUpdate {
	_u.mutation.ClearItems()
	return _u
}

// SetTotal sets the "total" field.
func (_u *OrderUpdate) SetTotal(v float64) *OrderUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableTotal(v *float64) *OrderUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *OrderUpdate) AddTotal(v float64) *OrderUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *OrderUpdate) SetCustomer(v *Customer) *OrderUpdate {
	return _u.SetCustomerID(v.ID)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdate) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *OrderUpdate) ClearCustomer() *OrderUpdate {
	_u.mutation.ClearCustomer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(order.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(order.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerPhone(); ok {
		_spec.SetField(order.FieldCustomerPhone, field.TypeString, value)
	}
	if _u.mutation.CustomerPhoneCleared() {
		_spec.ClearField(order.FieldCustomerPhone, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerEmail(); ok {
		_spec.SetField(order.FieldCustomerEmail, field.TypeString, value)
	}
	if _u.mutation.CustomerEmailCleared() {
		_spec.ClearField(order.FieldCustomerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrackingNumber(); ok {
		_spec.SetField(order.FieldTrackingNumber, field.TypeString, value)
	}
	if _u.mutation.TrackingNumberCleared() {
		_spec.ClearField(order.FieldTrackingNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Carrier(); ok {
		_spec.SetField(order.FieldCarrier, field.TypeString, value)
	}
	if _u.mutation.CarrierCleared() {
		_spec.ClearField(order.FieldCarrier, field.TypeString)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(order.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, order.FieldItems, value)
		})
	}
	if _u.mutation.ItemsCleared() {
		_spec.ClearField(order.FieldItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(order.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(order.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.CustomerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderUpdateOne is the builder for updating a single Order entity.
type OrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderMutation
}

// SetCustomerID sets the "customer_id" field.
func (_u *OrderUpdateOne) SetCustomerID(v string) *OrderUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCustomerID(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// ClearCustomerID clears the value of the "customer_id" field.
func (_u *OrderUpdateOne) ClearCustomerID() *OrderUpdateOne {
	_u.mutation.ClearCustomerID()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *OrderUpdateOne) SetCustomerName(v string) *OrderUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCustomerName(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *OrderUpdateOne) ClearCustomerName() *OrderUpdateOne {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetCustomerPhone sets the "customer_phone" field.
func (_u *OrderUpdateOne) SetCustomerPhone(v string) *OrderUpdateOne {
	_u.mutation.SetCustomerPhone(v)
	return _u
}

// SetNillableCustomerPhone sets the "customer_phone" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCustomerPhone(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetCustomerPhone(*v)
	}
	return _u
}

// ClearCustomerPhone clears the value of the "customer_phone" field.
func (_u *OrderUpdateOne) ClearCustomerPhone() *OrderUpdateOne {
	_u.mutation.ClearCustomerPhone()
	return _u
}

// SetCustomerEmail sets the "customer_email" field.
func (_u *OrderUpdateOne) SetCustomerEmail(v string) *OrderUpdateOne {
	_u.mutation.SetCustomerEmail(v)
	return _u
}

// SetNillableCustomerEmail sets the "customer_email" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCustomerEmail(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetCustomerEmail(*v)
	}
	return _u
}

// ClearCustomerEmail clears the value of the "customer_email" field.
func (_u *OrderUpdateOne) ClearCustomerEmail() *OrderUpdateOne {
	_u.mutation.ClearCustomerEmail()
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderUpdateOne) SetStatus(v string) *OrderUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableStatus(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTrackingNumber sets the "tracking_number" field.
func (_u *OrderUpdateOne) SetTrackingNumber(v string) *OrderUpdateOne {
	_u.mutation.SetTrackingNumber(v)
	return _u
}

// SetNillableTrackingNumber sets the "tracking_number" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableTrackingNumber(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetTrackingNumber(*v)
	}
	return _u
}

// ClearTrackingNumber clears the value of the "tracking_number" field.
func (_u *OrderUpdateOne) ClearTrackingNumber() *OrderUpdateOne {
	_u.mutation.ClearTrackingNumber()
	return _u
}

// SetCarrier sets the "carrier" field.
func (_u *OrderUpdateOne) SetCarrier(v string) *OrderUpdateOne {
	_u.mutation.SetCarrier(v)
	return _u
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCarrier(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetCarrier(*v)
	}
	return _u
}

// ClearCarrier clears the value of the "carrier" field.
func (_u *OrderUpdateOne) ClearCarrier() *OrderUpdateOne {
	_u.mutation.ClearCarrier()
	return _u
}

// SetItems sets the "items" field.
func (_u *OrderUpdateOne) SetItems(v []map[string]interface{}) *OrderUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *OrderUpdateOne) AppendItems(v []map[string]interface{}) *OrderUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// ClearItems clears the value of the "items" field.
func (_u *OrderUpdateOne) ClearItems() *OrderUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// SetTotal sets the "total" field.
func (_u *OrderUpdateOne) SetTotal(v float64) *OrderUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableTotal(v *float64) *OrderUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *OrderUpdateOne) AddTotal(v float64) *OrderUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *OrderUpdateOne) SetCustomer(v *Customer) *OrderUpdateOne {
	return _u.SetCustomerID(v.ID)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdateOne) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *OrderUpdateOne) ClearCustomer() *OrderUpdateOne {
	_u.mutation.ClearCustomer()
	return _u
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdateOne) Where(ps ...predicate.Order) *OrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderUpdateOne) Select(field string, fields ...string) *OrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Order entity.
func (_u *OrderUpdateOne) Save(ctx context.Context) (*Order, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdateOne) SaveX(ctx context.Context) *Order {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OrderUpdateOne) sqlSave(ctx context.Context) (_node *Order, err error) {
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Order.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, order.FieldID)
		for _, f := range fields {
			if !order.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != order.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(order.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(order.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerPhone(); ok {
		_spec.SetField(order.FieldCustomerPhone, field.TypeString, value)
	}
	if _u.mutation.CustomerPhoneCleared() {
		_spec.ClearField(order.FieldCustomerPhone, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerEmail(); ok {
		_spec.SetField(order.FieldCustomerEmail, field.TypeString, value)
	}
	if _u.mutation.CustomerEmailCleared() {
		_spec.ClearField(order.FieldCustomerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrackingNumber(); ok {
		_spec.SetField(order.FieldTrackingNumber, field.TypeString, value)
	}
	if _u.mutation.TrackingNumberCleared() {
		_spec.ClearField(order.FieldTrackingNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Carrier(); ok {
		_spec.SetField(order.FieldCarrier, field.TypeString, value)
	}
	if _u.mutation.CarrierCleared() {
		_spec.ClearField(order.FieldCarrier, field.TypeString)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(order.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, order.FieldItems, value)
		})
	}
	if _u.mutation.ItemsCleared() {
		_spec.ClearField(order.FieldItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(order.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(order.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.CustomerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Order{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
