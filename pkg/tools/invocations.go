package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/desteklab/concierge/ent"
	"github.com/desteklab/concierge/ent/toolinvocation"
	"github.com/desteklab/concierge/pkg/models"
)

// EntInvocationStore persists idempotency records in the
// tool_invocations table.
type EntInvocationStore struct {
	client *ent.Client
}

// NewEntInvocationStore creates the store over the given ent client.
func NewEntInvocationStore(client *ent.Client) *EntInvocationStore {
	return &EntInvocationStore{client: client}
}

var _ InvocationStore = (*EntInvocationStore)(nil)

// Lookup implements InvocationStore.
func (s *EntInvocationStore) Lookup(ctx context.Context, sessionID, turnID, toolName, argsHash string) (*models.ToolResult, error) {
	row, err := s.client.ToolInvocation.Query().
		Where(
			toolinvocation.SessionIDEQ(sessionID),
			toolinvocation.TurnIDEQ(turnID),
			toolinvocation.ToolNameEQ(toolName),
			toolinvocation.ArgsHashEQ(argsHash),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query idempotency record: %w", err)
	}
	return decodeRecordedResult(row.Result)
}

// Record implements InvocationStore. On a unique-key race the stored
// result of the winning insert is returned.
func (s *EntInvocationStore) Record(ctx context.Context, sessionID, turnID, toolName, argsHash string, result *models.ToolResult) (*models.ToolResult, error) {
	resultMap, err := resultToMap(result)
	if err != nil {
		return nil, err
	}
	err = s.client.ToolInvocation.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetTurnID(turnID).
		SetToolName(toolName).
		SetArgsHash(argsHash).
		SetResult(resultMap).
		SetOutcome(string(result.Outcome)).
		Exec(ctx)
	if err == nil {
		return nil, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to record tool invocation: %w", err)
	}
	return s.Lookup(ctx, sessionID, turnID, toolName, argsHash)
}

// DeleteOlderThan removes idempotency records past the retention window.
// Called by the cleanup sweeper; replay protection only matters within a
// turn, so old records are pure dead weight.
func (s *EntInvocationStore) DeleteOlderThan(ctx context.Context, age time.Duration) (int, error) {
	count, err := s.client.ToolInvocation.Delete().
		Where(toolinvocation.CreatedAtLT(time.Now().Add(-age))).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old tool invocations: %w", err)
	}
	return count, nil
}

func resultToMap(result *models.ToolResult) (map[string]any, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool result: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to re-decode tool result: %w", err)
	}
	return m, nil
}

func decodeRecordedResult(m map[string]any) (*models.ToolResult, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recorded result: %w", err)
	}
	result := &models.ToolResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, fmt.Errorf("failed to decode recorded result: %w", err)
	}
	return result, nil
}
