// Code generated by ent, DO NOT EDIT.

package toolinvocation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/desteklab/concierge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldSessionID, v))
}

// TurnID applies equality check predicate on the "turn_id" field. It's identical to TurnIDEQ.
func TurnID(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldTurnID, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldToolName, v))
}

// ArgsHash applies equality check predicate on the "args_hash" field. It's identical to ArgsHashEQ.
func ArgsHash(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldArgsHash, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldOutcome, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldSessionID, v))
}

// TurnIDEQ applies the EQ predicate on the "turn_id" field.
func TurnIDEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldTurnID, v))
}

// TurnIDNEQ applies the NEQ predicate on the "turn_id" field.
func TurnIDNEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldTurnID, v))
}

// TurnIDIn applies the In predicate on the "turn_id" field.
func TurnIDIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldTurnID, vs...))
}

// TurnIDNotIn applies the NotIn predicate on the "turn_id" field.
func TurnIDNotIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldTurnID, vs...))
}

// TurnIDGT applies the GT predicate on the "turn_id" field.
func TurnIDGT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldTurnID, v))
}

// TurnIDGTE applies the GTE predicate on the "turn_id" field.
func TurnIDGTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldTurnID, v))
}

// TurnIDLT applies the LT predicate on the "turn_id" field.
func TurnIDLT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldTurnID, v))
}

// TurnIDLTE applies the LTE predicate on the "turn_id" field.
func TurnIDLTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldTurnID, v))
}

// TurnIDContains applies the Contains predicate on the "turn_id" field.
func TurnIDContains(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContains(FieldTurnID, v))
}

// TurnIDHasPrefix applies the HasPrefix predicate on the "turn_id" field.
func TurnIDHasPrefix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasPrefix(FieldTurnID, v))
}

// TurnIDHasSuffix applies the HasSuffix predicate on the "turn_id" field.
func TurnIDHasSuffix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasSuffix(FieldTurnID, v))
}

// TurnIDEqualFold applies the EqualFold predicate on the "turn_id" field.
func TurnIDEqualFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldTurnID, v))
}

// TurnIDContainsFold applies the ContainsFold predicate on the "turn_id" field.
func TurnIDContainsFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldTurnID, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldToolName, v))
}

// ArgsHashEQ applies the EQ predicate on the "args_hash" field.
func ArgsHashEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldArgsHash, v))
}

// ArgsHashNEQ applies the NEQ predicate on the "args_hash" field.
func ArgsHashNEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldArgsHash, v))
}

// ArgsHashIn applies the In predicate on the "args_hash" field.
func ArgsHashIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldArgsHash, vs...))
}

// ArgsHashNotIn applies the NotIn predicate on the "args_hash" field.
func ArgsHashNotIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldArgsHash, vs...))
}

// ArgsHashGT applies the GT predicate on the "args_hash" field.
func ArgsHashGT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldArgsHash, v))
}

// ArgsHashGTE applies the GTE predicate on the "args_hash" field.
func ArgsHashGTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldArgsHash, v))
}

// ArgsHashLT applies the LT predicate on the "args_hash" field.
func ArgsHashLT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldArgsHash, v))
}

// ArgsHashLTE applies the LTE predicate on the "args_hash" field.
func ArgsHashLTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldArgsHash, v))
}

// ArgsHashContains applies the Contains predicate on the "args_hash" field.
func ArgsHashContains(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContains(FieldArgsHash, v))
}

// ArgsHashHasPrefix applies the HasPrefix predicate on the "args_hash" field.
func ArgsHashHasPrefix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasPrefix(FieldArgsHash, v))
}

// ArgsHashHasSuffix applies the HasSuffix predicate on the "args_hash" field.
func ArgsHashHasSuffix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasSuffix(FieldArgsHash, v))
}

// ArgsHashEqualFold applies the EqualFold predicate on the "args_hash" field.
func ArgsHashEqualFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldArgsHash, v))
}

// ArgsHashContainsFold applies the ContainsFold predicate on the "args_hash" field.
func ArgsHashContainsFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldArgsHash, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldOutcome, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ToolInvocation) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ToolInvocation) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ToolInvocation) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.NotPredicates(p))
}
