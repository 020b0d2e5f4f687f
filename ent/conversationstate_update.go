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
	"github.com/desteklab/concierge/ent/conversationstate"
	"github.com/desteklab/concierge/ent/predicate"
)

// ConversationStateUpdate is the builder for updating ConversationState entities.
type ConversationStateUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationStateMutation
}

// Where appends a list predicates to the ConversationStateUpdate builder.
func (_u *ConversationStateUpdate) Where(ps ...predicate.ConversationState) *ConversationStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *ConversationStateUpdate) SetState(v map[string]interface{}) *ConversationStateUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ConversationStateUpdate) SetVersion(v int) *ConversationStateUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ConversationStateUpdate) SetNillableVersion(v *int) *ConversationStateUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ConversationStateUpdate) AddVersion(v int) *ConversationStateUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ConversationStateUpdate) SetExpiresAt(v time.Time) *ConversationStateUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ConversationStateUpdate) SetNillableExpiresAt(v *time.Time) *ConversationStateUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationStateUpdate) SetUpdatedAt(v time.Time) *ConversationStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConversationStateMutation object of the builder.
func (_u *ConversationStateUpdate) Mutation() *ConversationStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversationstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ConversationStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(conversationstate.Table, conversationstate.Columns, sqlgraph.NewFieldSpec(conversationstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(conversationstate.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(conversationstate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(conversationstate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(conversationstate.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversationstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationStateUpdateOne is the builder for updating a single ConversationState entity.
type ConversationStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationStateMutation
}

// SetState sets the "state" field.
func (_u *ConversationStateUpdateOne) SetState(v map[string]interface{}) *ConversationStateUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ConversationStateUpdateOne) SetVersion(v int) *ConversationStateUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ConversationStateUpdateOne) SetNillableVersion(v *int) *ConversationStateUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ConversationStateUpdateOne) AddVersion(v int) *ConversationStateUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ConversationStateUpdateOne) SetExpiresAt(v time.Time) *ConversationStateUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ConversationStateUpdateOne) SetNillableExpiresAt(v *time.Time) *ConversationStateUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationStateUpdateOne) SetUpdatedAt(v time.Time) *ConversationStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConversationStateMutation object of the builder.
func (_u *ConversationStateUpdateOne) Mutation() *ConversationStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversationStateUpdate builder.
func (_u *ConversationStateUpdateOne) Where(ps ...predicate.ConversationState) *ConversationStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationStateUpdateOne) Select(field string, fields ...string) *ConversationStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConversationState entity.
func (_u *ConversationStateUpdateOne) Save(ctx context.Context) (*ConversationState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationStateUpdateOne) SaveX(ctx context.Context) *ConversationState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversationstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ConversationStateUpdateOne) sqlSave(ctx context.Context) (_node *ConversationState, err error) {
	_spec := sqlgraph.NewUpdateSpec(conversationstate.Table, conversationstate.Columns, sqlgraph.NewFieldSpec(conversationstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConversationState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversationstate.FieldID)
		for _, f := range fields {
			if !conversationstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversationstate.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(conversationstate.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(conversationstate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(conversationstate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(conversationstate.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversationstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ConversationState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
