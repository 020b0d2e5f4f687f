package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/desteklab/concierge/ent"
	"github.com/desteklab/concierge/ent/sessionlock"
)

// LockReason classifies why a session was locked.
type LockReason string

// Lock reasons.
const (
	LockPIIRisk       LockReason = "PII_RISK"
	LockEnumeration   LockReason = "ENUMERATION"
	LockAbuse         LockReason = "ABUSE"
	LockContentSafety LockReason = "CONTENT_SAFETY"
)

// Lock is an active session lock.
type Lock struct {
	Reason LockReason
	Until  time.Time
}

// LockService reads and writes session locks. The orchestrator consults
// it before any other turn step; a locked session gets the catalog
// refusal and nothing else runs.
type LockService struct {
	client *ent.Client
}

// NewLockService creates a LockService over the given ent client.
func NewLockService(client *ent.Client) *LockService {
	return &LockService{client: client}
}

// Active returns the latest-expiring active lock on a session, or nil.
// Storage errors report the session as locked: a lock that cannot be
// read must not be treated as absent.
func (l *LockService) Active(ctx context.Context, sessionID string) (*Lock, error) {
	row, err := l.client.SessionLock.Query().
		Where(
			sessionlock.SessionIDEQ(sessionID),
			sessionlock.UntilGT(time.Now()),
		).
		Order(ent.Desc(sessionlock.FieldUntil)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query session lock: %w", err)
	}
	return &Lock{Reason: LockReason(row.Reason), Until: row.Until}, nil
}

// LockSession locks a session until now+ttl.
func (l *LockService) LockSession(ctx context.Context, sessionID string, reason LockReason, ttl time.Duration) error {
	until := time.Now().Add(ttl)
	err := l.client.SessionLock.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetReason(sessionlock.Reason(reason)).
		SetUntil(until).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock session: %w", err)
	}
	slog.Warn("Session locked",
		"session_id", sessionID, "reason", string(reason), "until", until)
	return nil
}

// DeleteExpired removes locks whose deadline passed. Called by the
// cleanup sweeper; Active ignores expired rows regardless.
func (l *LockService) DeleteExpired(ctx context.Context) (int, error) {
	count, err := l.client.SessionLock.Delete().
		Where(sessionlock.UntilLT(time.Now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired locks: %w", err)
	}
	return count, nil
}
