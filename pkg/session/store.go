package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/desteklab/concierge/ent"
	"github.com/desteklab/concierge/ent/chatmessage"
	"github.com/desteklab/concierge/ent/conversationstate"
	"github.com/desteklab/concierge/pkg/models"
)

// StateStore loads and persists the typed per-session turn state plus
// the append-only chat log. Reads within a turn collapse through
// singleflight so concurrent webhook retries hit storage once.
type StateStore struct {
	client *ent.Client
	ttl    time.Duration
	group  singleflight.Group
}

// NewStateStore creates a store with the given state TTL.
func NewStateStore(client *ent.Client, ttl time.Duration) *StateStore {
	return &StateStore{client: client, ttl: ttl}
}

// Load returns the session's turn state, or a fresh default when none is
// persisted or the persisted one has expired. Expired state is treated
// as absent, not an error.
func (s *StateStore) Load(ctx context.Context, sessionID string) (*models.TurnState, error) {
	v, err, _ := s.group.Do("state:"+sessionID, func() (any, error) {
		return s.load(ctx, sessionID)
	})
	if err != nil {
		return nil, err
	}
	// Each caller gets its own copy; turn state is mutated in place.
	return cloneState(v.(*models.TurnState))
}

func (s *StateStore) load(ctx context.Context, sessionID string) (*models.TurnState, error) {
	row, err := s.client.ConversationState.Query().
		Where(conversationstate.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.NewTurnState(), nil
		}
		return nil, fmt.Errorf("failed to load conversation state: %w", err)
	}
	if time.Now().After(row.ExpiresAt) {
		return models.NewTurnState(), nil
	}

	raw, err := json.Marshal(row.State)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode persisted state: %w", err)
	}
	state := &models.TurnState{}
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, fmt.Errorf("failed to decode persisted state: %w", err)
	}
	state.FillDefaults()
	return state, nil
}

// Persist writes the turn's state and chat log entries as the single
// state-mutation step of a turn. The state upsert and the log appends
// share one transaction so a crashed turn never leaves a half-written
// session behind.
func (s *StateStore) Persist(ctx context.Context, sessionID string, state *models.TurnState, entries []models.ChatLogEntry) error {
	state.UpdatedAt = time.Now()
	stateMap, err := stateToMap(state)
	if err != nil {
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start persist transaction: %w", err)
	}
	defer tx.Rollback()

	expiresAt := time.Now().Add(s.ttl)
	err = tx.ConversationState.Create().
		SetID(sessionID).
		SetState(stateMap).
		SetVersion(state.Version).
		SetExpiresAt(expiresAt).
		OnConflictColumns(conversationstate.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert conversation state: %w", err)
	}

	for _, entry := range entries {
		builder := tx.ChatMessage.Create().
			SetID(uuid.New().String()).
			SetSessionID(sessionID).
			SetRole(chatmessage.Role(entry.Role)).
			SetText(entry.Text)
		if entry.MessageType != "" {
			builder.SetMessageType(entry.MessageType)
		}
		if entry.GuardrailAction != "" {
			builder.SetGuardrailAction(entry.GuardrailAction)
		}
		if entry.ResponseGrounding != "" {
			builder.SetResponseGrounding(entry.ResponseGrounding)
		}
		if err := builder.Exec(ctx); err != nil {
			return fmt.Errorf("failed to append chat message: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit persist transaction: %w", err)
	}
	s.group.Forget("state:" + sessionID)
	return nil
}

// History returns the most recent chat log entries in chronological
// order, capped at limit.
func (s *StateStore) History(ctx context.Context, sessionID string, limit int) ([]models.ChatLogEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.client.ChatMessage.Query().
		Where(chatmessage.SessionIDEQ(sessionID)).
		Order(ent.Desc(chatmessage.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	entries := make([]models.ChatLogEntry, len(rows))
	for i, row := range rows {
		entries[len(rows)-1-i] = models.ChatLogEntry{
			Role:              string(row.Role),
			Text:              row.Text,
			MessageType:       row.MessageType,
			GuardrailAction:   row.GuardrailAction,
			ResponseGrounding: row.ResponseGrounding,
		}
	}
	return entries, nil
}

// DeleteExpired removes conversation states past their TTL. Called by
// the cleanup sweeper.
func (s *StateStore) DeleteExpired(ctx context.Context) (int, error) {
	count, err := s.client.ConversationState.Delete().
		Where(conversationstate.ExpiresAtLT(time.Now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired states: %w", err)
	}
	return count, nil
}

func stateToMap(state *models.TurnState) (map[string]any, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to re-decode state: %w", err)
	}
	return m, nil
}

func cloneState(state *models.TurnState) (*models.TurnState, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to clone state: %w", err)
	}
	clone := &models.TurnState{}
	if err := json.Unmarshal(raw, clone); err != nil {
		return nil, fmt.Errorf("failed to clone state: %w", err)
	}
	clone.FillDefaults()
	return clone, nil
}
