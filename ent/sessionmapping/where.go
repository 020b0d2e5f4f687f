// Code generated by ent, DO NOT EDIT.

package sessionmapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/desteklab/concierge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldContainsFold(FieldID, id))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldEQ(FieldBusinessID, v))
}

// Channel applies equality check predicate on the "channel" field. It's identical to ChannelEQ.
func Channel(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldEQ(FieldChannel, v))
}

// ChannelUserID applies equality check predicate on the "channel_user_id" field. It's identical to ChannelUserIDEQ.
func ChannelUserID(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldEQ(FieldChannelUserID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BusinessIDGT applies the GT predicate on the "business_id" field.
func BusinessIDGT(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldGT(FieldBusinessID, v))
}

// BusinessIDGTE applies the GTE predicate on the "business_id" field.
func BusinessIDGTE(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldGTE(FieldBusinessID, v))
}

// BusinessIDLT applies the LT predicate on the "business_id" field.
func BusinessIDLT(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldLT(FieldBusinessID, v))
}

// BusinessIDLTE applies the LTE predicate on the "business_id" field.
func BusinessIDLTE(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldLTE(FieldBusinessID, v))
}

// BusinessIDContains applies the Contains predicate on the "business_id" field.
func BusinessIDContains(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldContains(FieldBusinessID, v))
}

// BusinessIDHasPrefix applies the HasPrefix predicate on the "business_id" field.
func BusinessIDHasPrefix(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldHasPrefix(FieldBusinessID, v))
}

// BusinessIDHasSuffix applies the HasSuffix predicate on the "business_id" field.
func BusinessIDHasSuffix(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldHasSuffix(FieldBusinessID, v))
}

// BusinessIDEqualFold applies the EqualFold predicate on the "business_id" field.
func BusinessIDEqualFold(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldEqualFold(FieldBusinessID, v))
}

// BusinessIDContainsFold applies the ContainsFold predicate on the "business_id" field.
func BusinessIDContainsFold(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldContainsFold(FieldBusinessID, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldNotIn(FieldChannel, vs...))
}

// ChannelGT applies the GT predicate on the "channel" field.
func ChannelGT(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldGT(FieldChannel, v))
}

// ChannelGTE applies the GTE predicate on the "channel" field.
func ChannelGTE(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldGTE(FieldChannel, v))
}

// ChannelLT applies the LT predicate on the "channel" field.
func ChannelLT(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldLT(FieldChannel, v))
}

// ChannelLTE applies the LTE predicate on the "channel" field.
func ChannelLTE(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldLTE(FieldChannel, v))
}

// ChannelContains applies the Contains predicate on the "channel" field.
func ChannelContains(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldContains(FieldChannel, v))
}

// ChannelHasPrefix applies the HasPrefix predicate on the "channel" field.
func ChannelHasPrefix(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldHasPrefix(FieldChannel, v))
}

// ChannelHasSuffix applies the HasSuffix predicate on the "channel" field.
func ChannelHasSuffix(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldHasSuffix(FieldChannel, v))
}

// ChannelEqualFold applies the EqualFold predicate on the "channel" field.
func ChannelEqualFold(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldEqualFold(FieldChannel, v))
}

// ChannelContainsFold applies the ContainsFold predicate on the "channel" field.
func ChannelContainsFold(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldContainsFold(FieldChannel, v))
}

// ChannelUserIDEQ applies the EQ predicate on the "channel_user_id" field.
func ChannelUserIDEQ(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldEQ(FieldChannelUserID, v))
}

// ChannelUserIDNEQ applies the NEQ predicate on the "channel_user_id" field.
func ChannelUserIDNEQ(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldNEQ(FieldChannelUserID, v))
}

// ChannelUserIDIn applies the In predicate on the "channel_user_id" field.
func ChannelUserIDIn(vs ...string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldIn(FieldChannelUserID, vs...))
}

// ChannelUserIDNotIn applies the NotIn predicate on the "channel_user_id" field.
func ChannelUserIDNotIn(vs ...string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldNotIn(FieldChannelUserID, vs...))
}

// ChannelUserIDGT applies the GT predicate on the "channel_user_id" field.
func ChannelUserIDGT(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldGT(FieldChannelUserID, v))
}

// ChannelUserIDGTE applies the GTE predicate on the "channel_user_id" field.
func ChannelUserIDGTE(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldGTE(FieldChannelUserID, v))
}

// ChannelUserIDLT applies the LT predicate on the "channel_user_id" field.
func ChannelUserIDLT(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldLT(FieldChannelUserID, v))
}

// ChannelUserIDLTE applies the LTE predicate on the "channel_user_id" field.
func ChannelUserIDLTE(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldLTE(FieldChannelUserID, v))
}

// ChannelUserIDContains applies the Contains predicate on the "channel_user_id" field.
func ChannelUserIDContains(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldContains(FieldChannelUserID, v))
}

// ChannelUserIDHasPrefix applies the HasPrefix predicate on the "channel_user_id" field.
func ChannelUserIDHasPrefix(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldHasPrefix(FieldChannelUserID, v))
}

// ChannelUserIDHasSuffix applies the HasSuffix predicate on the "channel_user_id" field.
func ChannelUserIDHasSuffix(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldHasSuffix(FieldChannelUserID, v))
}

// ChannelUserIDEqualFold applies the EqualFold predicate on the "channel_user_id" field.
func ChannelUserIDEqualFold(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldEqualFold(FieldChannelUserID, v))
}

// ChannelUserIDContainsFold applies the ContainsFold predicate on the "channel_user_id" field.
func ChannelUserIDContainsFold(v string) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldContainsFold(FieldChannelUserID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionMapping {
	return predicate.SessionMapping(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionMapping) predicate.SessionMapping {
	return predicate.SessionMapping(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionMapping) predicate.SessionMapping {
	return predicate.SessionMapping(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionMapping) predicate.SessionMapping {
	return predicate.SessionMapping(sql.NotPredicates(p))
}
