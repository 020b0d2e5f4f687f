// Package events records security-relevant incidents to the
// security_events table: PII blocks, SSRF blocks, enumeration locks,
// injection and content-safety detections.
package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/desteklab/concierge/ent"
	"github.com/desteklab/concierge/ent/securityevent"
)

// Event types. Telemetry dashboards key on these values.
const (
	TypePIIBlock        = "PII_BLOCK"
	TypeSSRFProtection  = "SSRF_PROTECTION"
	TypeEnumerationLock = "ENUMERATION_LOCK"
	TypeInjection       = "INJECTION"
	TypeContentSafety   = "CONTENT_SAFETY"
	TypeIdentityBlock   = "IDENTITY_MISMATCH"
)

// Recorder persists security events.
type Recorder interface {
	Record(ctx context.Context, event Event)
}

// Event is one incident to persist.
type Event struct {
	SessionID  string
	BusinessID string
	Type       string
	Detail     map[string]any
}

// EntRecorder writes security events through an ent client. Writes are
// best-effort: a failed audit insert must never fail the turn, so errors
// are logged and swallowed.
type EntRecorder struct {
	client *ent.Client
}

var _ Recorder = (*EntRecorder)(nil)

// NewEntRecorder creates a recorder over the given ent client.
func NewEntRecorder(client *ent.Client) *EntRecorder {
	return &EntRecorder{client: client}
}

// Record persists one security event.
func (r *EntRecorder) Record(ctx context.Context, event Event) {
	builder := r.client.SecurityEvent.Create().
		SetID(uuid.New().String()).
		SetEventType(event.Type)
	if event.SessionID != "" {
		builder.SetSessionID(event.SessionID)
	}
	if event.BusinessID != "" {
		builder.SetBusinessID(event.BusinessID)
	}
	if len(event.Detail) > 0 {
		builder.SetDetail(event.Detail)
	}
	if err := builder.Exec(ctx); err != nil {
		slog.Error("Failed to record security event",
			"event_type", event.Type,
			"session_id", event.SessionID,
			"error", err)
	}
}

// RecentByType returns the newest events of one type, for the admin
// surface.
func (r *EntRecorder) RecentByType(ctx context.Context, eventType string, limit int) ([]*ent.SecurityEvent, error) {
	rows, err := r.client.SecurityEvent.Query().
		Where(securityevent.EventTypeEQ(eventType)).
		Order(ent.Desc(securityevent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query security events: %w", err)
	}
	return rows, nil
}
