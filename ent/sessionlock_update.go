// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/desteklab/concierge/ent/predicate"
	"github.com/desteklab/concierge/ent/sessionlock"
)

// SessionLockUpdate is the builder for updating SessionLock entities.
type SessionLockUpdate struct {
	config
	hooks    []Hook
	mutation *SessionLockMutation
}

// Where appends a list predicates to the SessionLockUpdate builder.
func (_u *SessionLockUpdate) Where(ps ...predicate.SessionLock) *SessionLockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionLockUpdate) SetSessionID(v string) *SessionLockUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionLockUpdate) SetNillableSessionID(v *string) *SessionLockUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *SessionLockUpdate) SetReason(v sessionlock.Reason) *SessionLockUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *SessionLockUpdate) SetNillableReason(v *sessionlock.Reason) *SessionLockUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetUntil sets the "until" field.
func (_u *SessionLockUpdate) SetUntil(v time.Time) *SessionLockUpdate {
	_u.mutation.SetUntil(v)
	return _u
}

// SetNillableUntil sets the "until" field if the given value is not nil.
func (_u *SessionLockUpdate) SetNillableUntil(v *time.Time) *SessionLockUpdate {
	if v != nil {
		_u.SetUntil(*v)
	}
	return _u
}

// Mutation returns the SessionLockMutation object of the builder.
func (_u *SessionLockUpdate) Mutation() *SessionLockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionLockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionLockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionLockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionLockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionLockUpdate) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := sessionlock.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "SessionLock.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionLockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionlock.Table, sessionlock.Columns, sqlgraph.NewFieldSpec(sessionlock.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionlock.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(sessionlock.FieldReason, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Until(); ok {
		_spec.SetField(sessionlock.FieldUntil, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionLockUpdateOne is the builder for updating a single SessionLock entity.
type SessionLockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionLockMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionLockUpdateOne) SetSessionID(v string) *SessionLockUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionLockUpdateOne) SetNillableSessionID(v *string) *SessionLockUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *SessionLockUpdateOne) SetReason(v sessionlock.Reason) *SessionLockUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *SessionLockUpdateOne) SetNillableReason(v *sessionlock.Reason) *SessionLockUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetUntil sets the "until" field.
func (_u *SessionLockUpdateOne) SetUntil(v time.Time) *SessionLockUpdateOne {
	_u.mutation.SetUntil(v)
	return _u
}

// SetNillableUntil sets the "until" field if the given value is not nil.
func (_u *SessionLockUpdateOne) SetNillableUntil(v *time.Time) *SessionLockUpdateOne {
	if v != nil {
		_u.SetUntil(*v)
	}
	return _u
}

// Mutation returns the SessionLockMutation object of the builder.
func (_u *SessionLockUpdateOne) Mutation() *SessionLockMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionLockUpdate builder.
func (_u *SessionLockUpdateOne) Where(ps ...predicate.SessionLock) *SessionLockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionLockUpdateOne) Select(field string, fields ...string) *SessionLockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionLock entity.
func (_u *SessionLockUpdateOne) Save(ctx context.Context) (*SessionLock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionLockUpdateOne) SaveX(ctx context.Context) *SessionLock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionLockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionLockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionLockUpdateOne) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := sessionlock.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "SessionLock.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionLockUpdateOne) sqlSave(ctx context.Context) (_node *SessionLock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionlock.Table, sessionlock.Columns, sqlgraph.NewFieldSpec(sessionlock.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionLock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionlock.FieldID)
		for _, f := range fields {
			if !sessionlock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionlock.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionlock.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(sessionlock.FieldReason, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Until(); ok {
		_spec.SetField(sessionlock.FieldUntil, field.TypeTime, value)
	}
	_node = &SessionLock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
