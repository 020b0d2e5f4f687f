package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SecurityEvent records security-relevant incidents: PII blocks, SSRF
// blocks, enumeration locks, injection detections.
type SecurityEvent struct {
	ent.Schema
}

// Fields of the SecurityEvent.
func (SecurityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Optional().
			Immutable(),
		field.String("business_id").
			Optional().
			Immutable(),
		field.String("event_type").
			Immutable().
			Comment("PII_BLOCK, SSRF_PROTECTION, ENUMERATION_LOCK, INJECTION, CONTENT_SAFETY"),
		field.JSON("detail", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SecurityEvent.
func (SecurityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_type", "created_at"),
		index.Fields("session_id"),
	}
}
