// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/desteklab/concierge/ent/callbackrequest"
	"github.com/desteklab/concierge/ent/predicate"
)

// CallbackRequestUpdate is the builder for updating CallbackRequest entities.
type CallbackRequestUpdate struct {
	config
	hooks    []Hook
	mutation *CallbackRequestMutation
}

// Where appends a list predicates to the CallbackRequestUpdate builder.
func (_u *CallbackRequestUpdate) Where(ps ...predicate.CallbackRequest) *CallbackRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *CallbackRequestUpdate) SetCustomerID(v string) *CallbackRequestUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *CallbackRequestUpdate) SetNillableCustomerID(v *string) *CallbackRequestUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// ClearCustomerID clears the value of the "customer_id" field.
func (_u *CallbackRequestUpdate) ClearCustomerID() *CallbackRequestUpdate {
	_u.mutation.ClearCustomerID()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CallbackRequestUpdate) SetPhone(v string) *CallbackRequestUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CallbackRequestUpdate) SetNillablePhone(v *string) *CallbackRequestUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *CallbackRequestUpdate) SetTopic(v string) *CallbackRequestUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *CallbackRequestUpdate) SetNillableTopic(v *string) *CallbackRequestUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *CallbackRequestUpdate) ClearTopic() *CallbackRequestUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CallbackRequestUpdate) SetStatus(v callbackrequest.Status) *CallbackRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CallbackRequestUpdate) SetNillableStatus(v *callbackrequest.Status) *CallbackRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the CallbackRequestMutation object of the builder.
func (_u *CallbackRequestUpdate) Mutation() *CallbackRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CallbackRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallbackRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CallbackRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallbackRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallbackRequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := callbackrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CallbackRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CallbackRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(callbackrequest.Table, callbackrequest.Columns, sqlgraph.NewFieldSpec(callbackrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(callbackrequest.FieldCustomerID, field.TypeString, value)
	}
	if _u.mutation.CustomerIDCleared() {
		_spec.ClearField(callbackrequest.FieldCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(callbackrequest.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(callbackrequest.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(callbackrequest.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(callbackrequest.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{callbackrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CallbackRequestUpdateOne is the builder for updating a single CallbackRequest entity.
type CallbackRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CallbackRequestMutation
}

// SetCustomerID sets the "customer_id" field.
func (_u *CallbackRequestUpdateOne) SetCustomerID(v string) *CallbackRequestUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *CallbackRequestUpdateOne) SetNillableCustomerID(v *string) *CallbackRequestUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// ClearCustomerID clears the value of the "customer_id" field.
func (_u *CallbackRequestUpdateOne) ClearCustomerID() *CallbackRequestUpdateOne {
	_u.mutation.ClearCustomerID()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CallbackRequestUpdateOne) SetPhone(v string) *CallbackRequestUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CallbackRequestUpdateOne) SetNillablePhone(v *string) *CallbackRequestUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *CallbackRequestUpdateOne) SetTopic(v string) *CallbackRequestUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *CallbackRequestUpdateOne) SetNillableTopic(v *string) *CallbackRequestUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *CallbackRequestUpdateOne) ClearTopic() *CallbackRequestUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CallbackRequestUpdateOne) SetStatus(v callbackrequest.Status) *CallbackRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CallbackRequestUpdateOne) SetNillableStatus(v *callbackrequest.Status) *CallbackRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the CallbackRequestMutation object of the builder.
func (_u *CallbackRequestUpdateOne) Mutation() *CallbackRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the CallbackRequestUpdate builder.
func (_u *CallbackRequestUpdateOne) Where(ps ...predicate.CallbackRequest) *CallbackRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CallbackRequestUpdateOne) Select(field string, fields ...string) *CallbackRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CallbackRequest entity.
func (_u *CallbackRequestUpdateOne) Save(ctx context.Context) (*CallbackRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallbackRequestUpdateOne) SaveX(ctx context.Context) *CallbackRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CallbackRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallbackRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallbackRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := callbackrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CallbackRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CallbackRequestUpdateOne) sqlSave(ctx context.Context) (_node *CallbackRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(callbackrequest.Table, callbackrequest.Columns, sqlgraph.NewFieldSpec(callbackrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CallbackRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, callbackrequest.FieldID)
		for _, f := range fields {
			if !callbackrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != callbackrequest.FieldID {
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
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(callbackrequest.FieldCustomerID, field.TypeString, value)
	}
	if _u.mutation.CustomerIDCleared() {
		_spec.ClearField(callbackrequest.FieldCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(callbackrequest.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(callbackrequest.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(callbackrequest.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(callbackrequest.FieldStatus, field.TypeEnum, value)
	}
	_node = &CallbackRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{callbackrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
