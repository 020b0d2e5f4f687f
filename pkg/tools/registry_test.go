package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desteklab/concierge/pkg/config"
	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/outcome"
)

// stubTool is a configurable tool for registry and executor tests.
type stubTool struct {
	def     Definition
	execute func(ctx context.Context, inv *Invocation) (*models.ToolResult, error)
}

func (s *stubTool) Definition() Definition { return s.def }

func (s *stubTool) Execute(ctx context.Context, inv *Invocation) (*models.ToolResult, error) {
	if s.execute == nil {
		return models.NewToolResult(s.def.Name, outcome.OK, "done"), nil
	}
	return s.execute(ctx, inv)
}

func newStub(name, flow string) *stubTool {
	return &stubTool{def: Definition{Name: name, Flow: flow}}
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(newStub("order_status", models.FlowTagOrderStatus)))
	assert.Error(t, registry.Register(newStub("order_status", models.FlowTagOrderStatus)))
	assert.Error(t, registry.Register(newStub("", "")))

	_, ok := registry.Get("order_status")
	assert.True(t, ok)
	_, ok = registry.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_Available(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(newStub("order_status", models.FlowTagOrderStatus)))
	require.NoError(t, registry.Register(newStub("debt_inquiry", models.FlowTagDebtInquiry)))
	require.NoError(t, registry.Register(newStub("callback_request", "")))

	t.Run("idle state exposes everything", func(t *testing.T) {
		names := Names(registry.Available(models.NewTurnState(), config.BusinessConfig{}))
		assert.Equal(t, []string{"callback_request", "debt_inquiry", "order_status"}, names)
	})

	t.Run("tenant allow-list filters", func(t *testing.T) {
		business := config.BusinessConfig{AllowedTools: []string{"order_status"}}
		names := Names(registry.Available(models.NewTurnState(), business))
		assert.Equal(t, []string{"order_status"}, names)
	})

	t.Run("pending verification pins the triggering tool", func(t *testing.T) {
		state := models.NewTurnState()
		state.Verification.Status = models.VerificationPending
		state.Verification.PendingTool = "order_status"

		names := Names(registry.Available(state, config.BusinessConfig{}))
		assert.Equal(t, []string{"order_status"}, names)
	})

	t.Run("active flow keeps flow tools and neutral tools", func(t *testing.T) {
		state := models.NewTurnState()
		state.FlowStatus = models.FlowInProgress
		state.ActiveFlow = models.FlowTagDebtInquiry

		names := Names(registry.Available(state, config.BusinessConfig{}))
		assert.Equal(t, []string{"callback_request", "debt_inquiry"}, names)
	})
}
