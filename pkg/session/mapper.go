// Package session implements session identity, persisted turn state,
// session locks, and per-session turn serialization.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/desteklab/concierge/ent"
	"github.com/desteklab/concierge/ent/sessionmapping"
	"github.com/desteklab/concierge/pkg/models"
)

// Mapper resolves channel identities onto universal session IDs. The
// (business, channel, channel user) triple is unique in storage; a
// racing duplicate insert re-reads the winner so both callers converge
// on one session.
type Mapper struct {
	client *ent.Client

	mu    sync.RWMutex
	cache map[string]string // mapping key → session ID
}

// NewMapper creates a Mapper over the given ent client.
func NewMapper(client *ent.Client) *Mapper {
	return &Mapper{client: client, cache: make(map[string]string)}
}

func mappingKey(businessID string, channel models.Channel, channelUserID string) string {
	return businessID + "|" + string(channel) + "|" + channelUserID
}

// Resolve returns the session ID for a turn. An explicit session ID is
// validated and returned as-is; it never creates a mapping, so a locked
// session cannot be escaped by forcing a fresh one. Without an explicit
// ID the channel identity is mapped, creating the session on first
// contact.
func (m *Mapper) Resolve(ctx context.Context, req *models.TurnRequest) (string, error) {
	if req.SessionID != "" {
		exists, err := m.client.SessionMapping.Query().
			Where(sessionmapping.IDEQ(req.SessionID)).
			Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to validate session id: %w", err)
		}
		if !exists {
			return "", fmt.Errorf("unknown session id %q", req.SessionID)
		}
		return req.SessionID, nil
	}
	if req.ChannelUserID == "" {
		return "", fmt.Errorf("channel_user_id is required when session_id is absent")
	}
	return m.getOrCreate(ctx, req.BusinessID, req.Channel, req.ChannelUserID)
}

func (m *Mapper) getOrCreate(ctx context.Context, businessID string, channel models.Channel, channelUserID string) (string, error) {
	key := mappingKey(businessID, channel, channelUserID)

	m.mu.RLock()
	cached, ok := m.cache[key]
	m.mu.RUnlock()
	if ok {
		return cached, nil
	}

	row, err := m.client.SessionMapping.Query().
		Where(
			sessionmapping.BusinessIDEQ(businessID),
			sessionmapping.ChannelEQ(string(channel)),
			sessionmapping.ChannelUserIDEQ(channelUserID),
		).
		Only(ctx)
	if err == nil {
		m.remember(key, row.ID)
		return row.ID, nil
	}
	if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to query session mapping: %w", err)
	}

	sessionID := "conv_" + uuid.New().String()
	err = m.client.SessionMapping.Create().
		SetID(sessionID).
		SetBusinessID(businessID).
		SetChannel(string(channel)).
		SetChannelUserID(channelUserID).
		Exec(ctx)
	if err == nil {
		m.remember(key, sessionID)
		return sessionID, nil
	}
	if !ent.IsConstraintError(err) {
		return "", fmt.Errorf("failed to create session mapping: %w", err)
	}

	// A concurrent turn won the unique index race; converge on its row.
	row, err = m.client.SessionMapping.Query().
		Where(
			sessionmapping.BusinessIDEQ(businessID),
			sessionmapping.ChannelEQ(string(channel)),
			sessionmapping.ChannelUserIDEQ(channelUserID),
		).
		Only(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to re-read session mapping after race: %w", err)
	}
	m.remember(key, row.ID)
	return row.ID, nil
}

func (m *Mapper) remember(key, sessionID string) {
	m.mu.Lock()
	m.cache[key] = sessionID
	m.mu.Unlock()
}
