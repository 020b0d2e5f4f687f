// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/desteklab/concierge/ent/callbackrequest"
	"github.com/desteklab/concierge/ent/predicate"
)

// CallbackRequestDelete is the builder for deleting a CallbackRequest entity.
type CallbackRequestDelete struct {
	config
	hooks    []Hook
	mutation *CallbackRequestMutation
}

// Where appends a list predicates to the CallbackRequestDelete builder.
func (_d *CallbackRequestDelete) Where(ps ...predicate.CallbackRequest) *CallbackRequestDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CallbackRequestDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CallbackRequestDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CallbackRequestDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(callbackrequest.Table, sqlgraph.NewFieldSpec(callbackrequest.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CallbackRequestDeleteOne is the builder for deleting a single CallbackRequest entity.
type CallbackRequestDeleteOne struct {
	_d *CallbackRequestDelete
}

// Where appends a list predicates to the CallbackRequestDelete builder.
func (_d *CallbackRequestDeleteOne) Where(ps ...predicate.CallbackRequest) *CallbackRequestDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CallbackRequestDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{callbackrequest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CallbackRequestDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
