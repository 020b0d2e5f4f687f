// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CallbackRequest is the predicate function for callbackrequest builders.
type CallbackRequest func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// ConversationState is the predicate function for conversationstate builders.
type ConversationState func(*sql.Selector)

// Customer is the predicate function for customer builders.
type Customer func(*sql.Selector)

// Order is the predicate function for order builders.
type Order func(*sql.Selector)

// SecurityEvent is the predicate function for securityevent builders.
type SecurityEvent func(*sql.Selector)

// SessionLock is the predicate function for sessionlock builders.
type SessionLock func(*sql.Selector)

// SessionMapping is the predicate function for sessionmapping builders.
type SessionMapping func(*sql.Selector)

// ToolInvocation is the predicate function for toolinvocation builders.
type ToolInvocation func(*sql.Selector)
