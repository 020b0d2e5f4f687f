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
	"github.com/desteklab/concierge/ent/toolinvocation"
)

// ToolInvocationUpdate is the builder for updating ToolInvocation entities.
type ToolInvocationUpdate struct {
	config
	hooks    []Hook
	mutation *ToolInvocationMutation
}

// Where appends a list predicates to the ToolInvocationUpdate builder.
func (_u *ToolInvocationUpdate) Where(ps ...predicate.ToolInvocation) *ToolInvocationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResult sets the "result" field.
func (_u *ToolInvocationUpdate) SetResult(v map[string]interface{}) *ToolInvocationUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ToolInvocationUpdate) SetOutcome(v string) *ToolInvocationUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableOutcome(v *string) *ToolInvocationUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the ToolInvocationMutation object of the builder.
func (_u *ToolInvocationUpdate) Mutation() *ToolInvocationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolInvocationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolInvocationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolInvocationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolInvocationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ToolInvocationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(toolinvocation.Table, toolinvocation.Columns, sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(toolinvocation.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(toolinvocation.FieldOutcome, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolinvocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolInvocationUpdateOne is the builder for updating a single ToolInvocation entity.
type ToolInvocationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolInvocationMutation
}

// SetResult sets the "result" field.
func (_u *ToolInvocationUpdateOne) SetResult(v map[string]interface{}) *ToolInvocationUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ToolInvocationUpdateOne) SetOutcome(v string) *ToolInvocationUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableOutcome(v *string) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the ToolInvocationMutation object of the builder.
func (_u *ToolInvocationUpdateOne) Mutation() *ToolInvocationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolInvocationUpdate builder.
func (_u *ToolInvocationUpdateOne) Where(ps ...predicate.ToolInvocation) *ToolInvocationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolInvocationUpdateOne) Select(field string, fields ...string) *ToolInvocationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolInvocation entity.
func (_u *ToolInvocationUpdateOne) Save(ctx context.Context) (*ToolInvocation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolInvocationUpdateOne) SaveX(ctx context.Context) *ToolInvocation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolInvocationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolInvocationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ToolInvocationUpdateOne) sqlSave(ctx context.Context) (_node *ToolInvocation, err error) {
	_spec := sqlgraph.NewUpdateSpec(toolinvocation.Table, toolinvocation.Columns, sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolInvocation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolinvocation.FieldID)
		for _, f := range fields {
			if !toolinvocation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolinvocation.FieldID {
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
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(toolinvocation.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(toolinvocation.FieldOutcome, field.TypeString, value)
	}
	_node = &ToolInvocation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolinvocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
