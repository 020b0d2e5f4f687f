package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage is one append-only conversation log record. Rows are never
// updated or deleted inside a session's lifetime.
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant").
			Immutable(),
		field.Text("text").
			Immutable(),
		field.String("message_type").
			Optional().
			Immutable(),
		field.String("guardrail_action").
			Optional().
			Immutable(),
		field.String("response_grounding").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
	}
}
