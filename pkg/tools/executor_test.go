package tools

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desteklab/concierge/pkg/catalog"
	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/outcome"
)

// memoryStore is an in-memory InvocationStore.
type memoryStore struct {
	mu      sync.Mutex
	records map[string]*models.ToolResult
	err     error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: map[string]*models.ToolResult{}}
}

func (m *memoryStore) key(sessionID, turnID, toolName, argsHash string) string {
	return sessionID + "|" + turnID + "|" + toolName + "|" + argsHash
}

func (m *memoryStore) Lookup(_ context.Context, sessionID, turnID, toolName, argsHash string) (*models.ToolResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.records[m.key(sessionID, turnID, toolName, argsHash)], nil
}

func (m *memoryStore) Record(_ context.Context, sessionID, turnID, toolName, argsHash string, result *models.ToolResult) (*models.ToolResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	key := m.key(sessionID, turnID, toolName, argsHash)
	if existing, ok := m.records[key]; ok {
		return existing, nil
	}
	m.records[key] = result
	return nil, nil
}

func orderArgsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			models.FieldOrderNumber: map[string]any{"type": "string", "minLength": 1},
		},
		"required":             []any{models.FieldOrderNumber},
		"additionalProperties": false,
	}
}

func newTestExecutor(t *testing.T, tool Tool, store InvocationStore) *Executor {
	t.Helper()
	registry := NewRegistry()
	require.NoError(t, registry.Register(tool))
	executor, err := NewExecutor(registry, store, catalog.New(nil), 2*time.Second, 2)
	require.NoError(t, err)
	return executor
}

func invocation(args map[string]any) *Invocation {
	return &Invocation{
		BusinessID: "biz-1",
		SessionID:  "conv_1",
		TurnID:     "turn_1",
		Language:   "tr",
		Args:       args,
		State:      models.NewTurnState(),
	}
}

func TestExecutor_UnknownTool(t *testing.T) {
	executor := newTestExecutor(t, newStub("known", ""), newMemoryStore())

	_, err := executor.Execute(context.Background(), "unknown", invocation(nil))
	assert.Error(t, err)
}

func TestExecutor_ValidationError(t *testing.T) {
	tool := &stubTool{def: Definition{Name: "order_status", Parameters: orderArgsSchema()}}
	executor := newTestExecutor(t, tool, newMemoryStore())

	t.Run("missing required argument", func(t *testing.T) {
		result, err := executor.Execute(context.Background(), "order_status", invocation(map[string]any{}))
		require.NoError(t, err)
		assert.Equal(t, outcome.ValidationError, result.Outcome)
		assert.NotEmpty(t, result.Message)
	})

	t.Run("wrong type", func(t *testing.T) {
		result, err := executor.Execute(context.Background(), "order_status",
			invocation(map[string]any{models.FieldOrderNumber: 42}))
		require.NoError(t, err)
		assert.Equal(t, outcome.ValidationError, result.Outcome)
	})

	t.Run("alias keys are canonicalized before validation", func(t *testing.T) {
		result, err := executor.Execute(context.Background(), "order_status",
			invocation(map[string]any{"siparis_no": "ORD-1001"}))
		require.NoError(t, err)
		assert.Equal(t, outcome.OK, result.Outcome)
	})
}

func TestExecutor_Idempotency(t *testing.T) {
	calls := 0
	tool := &stubTool{
		def: Definition{Name: "callback_request", SideEffect: true},
		execute: func(_ context.Context, _ *Invocation) (*models.ToolResult, error) {
			calls++
			return models.NewToolResult("callback_request", outcome.OK, "scheduled"), nil
		},
	}
	executor := newTestExecutor(t, tool, newMemoryStore())
	args := map[string]any{models.FieldPhone: "+905551234567"}

	first, err := executor.Execute(context.Background(), "callback_request", invocation(args))
	require.NoError(t, err)
	second, err := executor.Execute(context.Background(), "callback_request", invocation(args))
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "replayed call must not re-execute")
	assert.Equal(t, first.Outcome, second.Outcome)
	assert.Equal(t, first.Message, second.Message)
}

func TestExecutor_IdempotencyKeyedByArgs(t *testing.T) {
	calls := 0
	tool := &stubTool{
		def: Definition{Name: "order_status"},
		execute: func(_ context.Context, _ *Invocation) (*models.ToolResult, error) {
			calls++
			return models.NewToolResult("order_status", outcome.OK, "ok"), nil
		},
	}
	executor := newTestExecutor(t, tool, newMemoryStore())

	_, err := executor.Execute(context.Background(), "order_status",
		invocation(map[string]any{models.FieldOrderNumber: "ORD-1"}))
	require.NoError(t, err)
	_, err = executor.Execute(context.Background(), "order_status",
		invocation(map[string]any{models.FieldOrderNumber: "ORD-2"}))
	require.NoError(t, err)

	assert.Equal(t, 2, calls, "different args are different invocations")
}

func TestExecutor_RetriesInfraErrors(t *testing.T) {
	calls := 0
	tool := &stubTool{
		def: Definition{Name: "order_status"},
		execute: func(_ context.Context, _ *Invocation) (*models.ToolResult, error) {
			calls++
			if calls < 2 {
				return nil, errors.New("upstream timeout")
			}
			return models.NewToolResult("order_status", outcome.OK, "ok"), nil
		},
	}
	executor := newTestExecutor(t, tool, newMemoryStore())

	result, err := executor.Execute(context.Background(), "order_status",
		invocation(map[string]any{models.FieldOrderNumber: "ORD-1"}))
	require.NoError(t, err)

	assert.Equal(t, outcome.OK, result.Outcome)
	assert.Equal(t, 2, calls)
}

func TestExecutor_DomainOutcomesDoNotRetry(t *testing.T) {
	calls := 0
	tool := &stubTool{
		def: Definition{Name: "order_status"},
		execute: func(_ context.Context, _ *Invocation) (*models.ToolResult, error) {
			calls++
			return models.NewToolResult("order_status", outcome.NotFound, "no such order"), nil
		},
	}
	executor := newTestExecutor(t, tool, newMemoryStore())

	result, err := executor.Execute(context.Background(), "order_status",
		invocation(map[string]any{models.FieldOrderNumber: "ORD-1"}))
	require.NoError(t, err)

	assert.Equal(t, outcome.NotFound, result.Outcome)
	assert.Equal(t, 1, calls)
}

func TestExecutor_ExhaustedRetriesReportInfraError(t *testing.T) {
	tool := &stubTool{
		def: Definition{Name: "order_status"},
		execute: func(_ context.Context, _ *Invocation) (*models.ToolResult, error) {
			return nil, errors.New("connection refused")
		},
	}
	executor := newTestExecutor(t, tool, newMemoryStore())

	result, err := executor.Execute(context.Background(), "order_status",
		invocation(map[string]any{models.FieldOrderNumber: "ORD-1"}))
	require.NoError(t, err)

	assert.Equal(t, outcome.InfraError, result.Outcome)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message, "failure results must carry a user-safe message")
}

func TestExecutor_ForcesMessage(t *testing.T) {
	tool := &stubTool{
		def: Definition{Name: "order_status"},
		execute: func(_ context.Context, _ *Invocation) (*models.ToolResult, error) {
			return models.NewToolResult("order_status", outcome.OK, ""), nil
		},
	}
	executor := newTestExecutor(t, tool, newMemoryStore())

	result, err := executor.Execute(context.Background(), "order_status",
		invocation(map[string]any{models.FieldOrderNumber: "ORD-1"}))
	require.NoError(t, err)

	assert.NotEmpty(t, result.Message)
}

func TestExecutor_NormalizesUnknownOutcome(t *testing.T) {
	tool := &stubTool{
		def: Definition{Name: "order_status"},
		execute: func(_ context.Context, _ *Invocation) (*models.ToolResult, error) {
			return &models.ToolResult{Name: "order_status", Outcome: "weird", Message: "?"}, nil
		},
	}
	executor := newTestExecutor(t, tool, newMemoryStore())

	result, err := executor.Execute(context.Background(), "order_status",
		invocation(map[string]any{models.FieldOrderNumber: "ORD-1"}))
	require.NoError(t, err)

	assert.Equal(t, outcome.InfraError, result.Outcome)
}
