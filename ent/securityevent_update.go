// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/desteklab/concierge/ent/predicate"
	"github.com/desteklab/concierge/ent/securityevent"
)

// SecurityEventUpdate is the builder for updating SecurityEvent entities.
type SecurityEventUpdate struct {
	config
	hooks    []Hook
	mutation *SecurityEventMutation
}

// Where appends a list predicates to the SecurityEventUpdate builder.
func (_u *SecurityEventUpdate) Where(ps ...predicate.SecurityEvent) *SecurityEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDetail sets the "detail" field.
func (_u *SecurityEventUpdate) SetDetail(v map[string]interface{}) *SecurityEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *SecurityEventUpdate) ClearDetail() *SecurityEventUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the SecurityEventMutation object of the builder.
func (_u *SecurityEventUpdate) Mutation() *SecurityEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SecurityEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SecurityEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SecurityEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SecurityEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SecurityEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(securityevent.Table, securityevent.Columns, sqlgraph.NewFieldSpec(securityevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(securityevent.FieldSessionID, field.TypeString)
	}
	if _u.mutation.BusinessIDCleared() {
		_spec.ClearField(securityevent.FieldBusinessID, field.TypeString)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(securityevent.FieldDetail, field.TypeJSON, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(securityevent.FieldDetail, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{securityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SecurityEventUpdateOne is the builder for updating a single SecurityEvent entity.
type SecurityEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SecurityEventMutation
}

// SetDetail sets the "detail" field.
func (_u *SecurityEventUpdateOne) SetDetail(v map[string]interface{}) *SecurityEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *SecurityEventUpdateOne) ClearDetail() *SecurityEventUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the SecurityEventMutation object of the builder.
func (_u *SecurityEventUpdateOne) Mutation() *SecurityEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SecurityEventUpdate builder.
func (_u *SecurityEventUpdateOne) Where(ps ...predicate.SecurityEvent) *SecurityEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SecurityEventUpdateOne) Select(field string, fields ...string) *SecurityEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SecurityEvent entity.
func (_u *SecurityEventUpdateOne) Save(ctx context.Context) (*SecurityEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SecurityEventUpdateOne) SaveX(ctx context.Context) *SecurityEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SecurityEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SecurityEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SecurityEventUpdateOne) sqlSave(ctx context.Context) (_node *SecurityEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(securityevent.Table, securityevent.Columns, sqlgraph.NewFieldSpec(securityevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SecurityEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, securityevent.FieldID)
		for _, f := range fields {
			if !securityevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != securityevent.FieldID {
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
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(securityevent.FieldSessionID, field.TypeString)
	}
	if _u.mutation.BusinessIDCleared() {
		_spec.ClearField(securityevent.FieldBusinessID, field.TypeString)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(securityevent.FieldDetail, field.TypeJSON, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(securityevent.FieldDetail, field.TypeJSON)
	}
	_node = &SecurityEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{securityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
