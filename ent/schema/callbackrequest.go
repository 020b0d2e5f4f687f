package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CallbackRequest is a side-effectful record created by the callback
// tool; the idempotency layer guarantees a replayed turn creates it
// exactly once.
type CallbackRequest struct {
	ent.Schema
}

// Fields of the CallbackRequest.
func (CallbackRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("callback_id").
			Unique().
			Immutable(),
		field.String("business_id").
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("customer_id").
			Optional(),
		field.String("phone"),
		field.String("topic").
			Optional(),
		field.Enum("status").
			Values("open", "scheduled", "done", "cancelled").
			Default("open"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the CallbackRequest.
func (CallbackRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "status"),
		index.Fields("session_id"),
	}
}
