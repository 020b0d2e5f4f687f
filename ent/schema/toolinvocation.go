package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolInvocation is the idempotency record for a tool execution. The
// (session_id, turn_id, tool_name, args_hash) key ensures a replayed
// turn does not double-execute side-effectful tools.
type ToolInvocation struct {
	ent.Schema
}

// Fields of the ToolInvocation.
func (ToolInvocation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("invocation_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("turn_id").
			Immutable(),
		field.String("tool_name").
			Immutable(),
		field.String("args_hash").
			Immutable().
			Comment("SHA-256 of canonical-JSON args"),
		field.JSON("result", map[string]interface{}{}).
			Comment("Serialized models.ToolResult"),
		field.String("outcome"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ToolInvocation.
func (ToolInvocation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "turn_id", "tool_name", "args_hash").
			Unique(),
		index.Fields("created_at"),
	}
}
