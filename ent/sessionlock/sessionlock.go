// Code generated by ent, DO NOT EDIT.

package sessionlock

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionlock type in the database.
	Label = "session_lock"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "lock_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldUntil holds the string denoting the until field in the database.
	FieldUntil = "until"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the sessionlock in the database.
	Table = "session_locks"
)

// Columns holds all SQL columns for sessionlock fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldReason,
	FieldUntil,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Reason defines the type for the "reason" enum field.
type Reason string

// Reason values.
const (
	ReasonPII_RISK       Reason = "PII_RISK"
	ReasonENUMERATION    Reason = "ENUMERATION"
	ReasonABUSE          Reason = "ABUSE"
	ReasonCONTENT_SAFETY Reason = "CONTENT_SAFETY"
)

func (r Reason) String() string {
	return string(r)
}

// ReasonValidator is a validator for the "reason" field enum values. It is called by the builders before save.
func ReasonValidator(r Reason) error {
	switch r {
	case ReasonPII_RISK, ReasonENUMERATION, ReasonABUSE, ReasonCONTENT_SAFETY:
		return nil
	default:
		return fmt.Errorf("sessionlock: invalid enum value for reason field: %q", r)
	}
}

// OrderOption defines the ordering options for the SessionLock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByUntil orders the results by the until field.
func ByUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUntil, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
