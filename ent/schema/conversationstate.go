package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConversationState persists the typed per-session turn state as JSON,
// keyed by session ID, with a TTL enforced by the cleanup sweeper.
type ConversationState struct {
	ent.Schema
}

// Fields of the ConversationState.
func (ConversationState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.JSON("state", map[string]interface{}{}).
			Comment("Serialized models.TurnState"),
		field.Int("version").
			Default(1),
		field.Time("expires_at").
			Comment("TTL boundary; expired rows are swept"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ConversationState.
func (ConversationState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expires_at"),
	}
}
