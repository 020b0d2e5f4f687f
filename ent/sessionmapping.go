// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/desteklab/concierge/ent/sessionmapping"
)

// SessionMapping is the model entity for the SessionMapping schema.
type SessionMapping struct {
	config `json:"-"`
	// ID of the ent.
	// Server-generated opaque ID (conv_<uuid>)
	ID string `json:"id,omitempty"`
	// BusinessID holds the value of the "business_id" field.
	BusinessID string `json:"business_id,omitempty"`
	// CHAT, WHATSAPP, EMAIL, PHONE
	Channel string `json:"channel,omitempty"`
	// Opaque channel identity; never raw PII beyond the channel address
	ChannelUserID string `json:"channel_user_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionMapping) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionmapping.FieldID, sessionmapping.FieldBusinessID, sessionmapping.FieldChannel, sessionmapping.FieldChannelUserID:
			values[i] = new(sql.NullString)
		case sessionmapping.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionMapping fields.
func (_m *SessionMapping) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionmapping.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sessionmapping.FieldBusinessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value.Valid {
				_m.BusinessID = value.String
			}
		case sessionmapping.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = value.String
			}
		case sessionmapping.FieldChannelUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel_user_id", values[i])
			} else if value.Valid {
				_m.ChannelUserID = value.String
			}
		case sessionmapping.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionMapping.
// This includes values selected through modifiers, order, etc.
func (_m *SessionMapping) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionMapping.
// Note that you need to call SessionMapping.Unwrap() before calling this method if this SessionMapping
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionMapping) Update() *SessionMappingUpdateOne {
	return NewSessionMappingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionMapping entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionMapping) Unwrap() *SessionMapping {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionMapping is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionMapping) String() string {
	var builder strings.Builder
	builder.WriteString("SessionMapping(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("business_id=")
	builder.WriteString(_m.BusinessID)
	builder.WriteString(", ")
	builder.WriteString("channel=")
	builder.WriteString(_m.Channel)
	builder.WriteString(", ")
	builder.WriteString("channel_user_id=")
	builder.WriteString(_m.ChannelUserID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionMappings is a parsable slice of SessionMapping.
type SessionMappings []*SessionMapping
