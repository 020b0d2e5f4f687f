package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionLock forbids further turns on a session until a deadline.
// Written by guardrails (PII_RISK), the enumeration counter, and abuse /
// content-safety handling. The orchestrator consults it before any other
// step.
type SessionLock struct {
	ent.Schema
}

// Fields of the SessionLock.
func (SessionLock) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lock_id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.Enum("reason").
			Values("PII_RISK", "ENUMERATION", "ABUSE", "CONTENT_SAFETY"),
		field.Time("until"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SessionLock.
func (SessionLock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "until"),
	}
}
