package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionMapping maps a channel-specific identity onto one universal
// session. The (business_id, channel, channel_user_id) triple is unique;
// racing creators re-read the winner.
type SessionMapping struct {
	ent.Schema
}

// Fields of the SessionMapping.
func (SessionMapping) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable().
			Comment("Server-generated opaque ID (conv_<uuid>)"),
		field.String("business_id").
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("CHAT, WHATSAPP, EMAIL, PHONE"),
		field.String("channel_user_id").
			Immutable().
			Comment("Opaque channel identity; never raw PII beyond the channel address"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SessionMapping.
func (SessionMapping) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "channel", "channel_user_id").
			Unique(),
	}
}
