// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CallbackRequestsColumns holds the columns for the "callback_requests" table.
	CallbackRequestsColumns = []*schema.Column{
		{Name: "callback_id", Type: field.TypeString, Unique: true},
		{Name: "business_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "customer_id", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "scheduled", "done", "cancelled"}, Default: "open"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CallbackRequestsTable holds the schema information for the "callback_requests" table.
	CallbackRequestsTable = &schema.Table{
		Name:       "callback_requests",
		Columns:    CallbackRequestsColumns,
		PrimaryKey: []*schema.Column{CallbackRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "callbackrequest_business_id_status",
				Unique:  false,
				Columns: []*schema.Column{CallbackRequestsColumns[1], CallbackRequestsColumns[6]},
			},
			{
				Name:    "callbackrequest_session_id",
				Unique:  false,
				Columns: []*schema.Column{CallbackRequestsColumns[2]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "message_type", Type: field.TypeString, Nullable: true},
		{Name: "guardrail_action", Type: field.TypeString, Nullable: true},
		{Name: "response_grounding", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[1], ChatMessagesColumns[7]},
			},
		},
	}
	// ConversationStatesColumns holds the columns for the "conversation_states" table.
	ConversationStatesColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeJSON},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversationStatesTable holds the schema information for the "conversation_states" table.
	ConversationStatesTable = &schema.Table{
		Name:       "conversation_states",
		Columns:    ConversationStatesColumns,
		PrimaryKey: []*schema.Column{ConversationStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversationstate_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationStatesColumns[3]},
			},
		},
	}
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "customer_id", Type: field.TypeString, Unique: true},
		{Name: "business_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "tc", Type: field.TypeString, Nullable: true},
		{Name: "vkn", Type: field.TypeString, Nullable: true},
		{Name: "balance", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "customer_business_id_phone",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[1], CustomersColumns[3]},
			},
			{
				Name:    "customer_business_id_email",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[1], CustomersColumns[4]},
			},
		},
	}
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "order_id", Type: field.TypeString, Unique: true},
		{Name: "business_id", Type: field.TypeString},
		{Name: "order_number", Type: field.TypeString},
		{Name: "customer_name", Type: field.TypeString, Nullable: true},
		{Name: "customer_phone", Type: field.TypeString, Nullable: true},
		{Name: "customer_email", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "processing"},
		{Name: "tracking_number", Type: field.TypeString, Nullable: true},
		{Name: "carrier", Type: field.TypeString, Nullable: true},
		{Name: "items", Type: field.TypeJSON, Nullable: true},
		{Name: "total", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "customer_id", Type: field.TypeString, Nullable: true},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "orders_customers_orders",
				Columns:    []*schema.Column{OrdersColumns[12]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "order_business_id_order_number",
				Unique:  true,
				Columns: []*schema.Column{OrdersColumns[1], OrdersColumns[2]},
			},
			{
				Name:    "order_business_id_customer_phone",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[1], OrdersColumns[4]},
			},
		},
	}
	// SecurityEventsColumns holds the columns for the "security_events" table.
	SecurityEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "business_id", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SecurityEventsTable holds the schema information for the "security_events" table.
	SecurityEventsTable = &schema.Table{
		Name:       "security_events",
		Columns:    SecurityEventsColumns,
		PrimaryKey: []*schema.Column{SecurityEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "securityevent_event_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{SecurityEventsColumns[3], SecurityEventsColumns[5]},
			},
			{
				Name:    "securityevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SecurityEventsColumns[1]},
			},
		},
	}
	// SessionLocksColumns holds the columns for the "session_locks" table.
	SessionLocksColumns = []*schema.Column{
		{Name: "lock_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "reason", Type: field.TypeEnum, Enums: []string{"PII_RISK", "ENUMERATION", "ABUSE", "CONTENT_SAFETY"}},
		{Name: "until", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SessionLocksTable holds the schema information for the "session_locks" table.
	SessionLocksTable = &schema.Table{
		Name:       "session_locks",
		Columns:    SessionLocksColumns,
		PrimaryKey: []*schema.Column{SessionLocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionlock_session_id_until",
				Unique:  false,
				Columns: []*schema.Column{SessionLocksColumns[1], SessionLocksColumns[3]},
			},
		},
	}
	// SessionMappingsColumns holds the columns for the "session_mappings" table.
	SessionMappingsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "business_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "channel_user_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SessionMappingsTable holds the schema information for the "session_mappings" table.
	SessionMappingsTable = &schema.Table{
		Name:       "session_mappings",
		Columns:    SessionMappingsColumns,
		PrimaryKey: []*schema.Column{SessionMappingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionmapping_business_id_channel_channel_user_id",
				Unique:  true,
				Columns: []*schema.Column{SessionMappingsColumns[1], SessionMappingsColumns[2], SessionMappingsColumns[3]},
			},
		},
	}
	// ToolInvocationsColumns holds the columns for the "tool_invocations" table.
	ToolInvocationsColumns = []*schema.Column{
		{Name: "invocation_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "turn_id", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "args_hash", Type: field.TypeString},
		{Name: "result", Type: field.TypeJSON},
		{Name: "outcome", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ToolInvocationsTable holds the schema information for the "tool_invocations" table.
	ToolInvocationsTable = &schema.Table{
		Name:       "tool_invocations",
		Columns:    ToolInvocationsColumns,
		PrimaryKey: []*schema.Column{ToolInvocationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "toolinvocation_session_id_turn_id_tool_name_args_hash",
				Unique:  true,
				Columns: []*schema.Column{ToolInvocationsColumns[1], ToolInvocationsColumns[2], ToolInvocationsColumns[3], ToolInvocationsColumns[4]},
			},
			{
				Name:    "toolinvocation_created_at",
				Unique:  false,
				Columns: []*schema.Column{ToolInvocationsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CallbackRequestsTable,
		ChatMessagesTable,
		ConversationStatesTable,
		CustomersTable,
		OrdersTable,
		SecurityEventsTable,
		SessionLocksTable,
		SessionMappingsTable,
		ToolInvocationsTable,
	}
)

func init() {
	OrdersTable.ForeignKeys[0].RefTable = CustomersTable
}
