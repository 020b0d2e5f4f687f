package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/desteklab/concierge/pkg/models"
)

func TestBypass(t *testing.T) {
	trace := Bypass("conv-1", "turn-1", "biz-1", "WHATSAPP", "session_locked")

	assert.False(t, trace.LLMCalled)
	assert.True(t, trace.Bypassed)
	assert.Equal(t, "session_locked", trace.BypassReason)
	assert.Equal(t, "WHATSAPP", trace.CallReason)
}

func TestCalled(t *testing.T) {
	trace := Called("conv-1", "turn-1", "biz-1", "CHAT")

	assert.True(t, trace.LLMCalled)
	assert.False(t, trace.Bypassed)
	assert.Empty(t, trace.BypassReason)
}

func TestApplyTo(t *testing.T) {
	meta := models.TurnMetadata{}
	Bypass("conv-1", "turn-1", "biz-1", "CHAT", "throttled").ApplyTo(&meta)

	assert.False(t, meta.LLMCalled)
	assert.True(t, meta.Bypassed)
	assert.Equal(t, "throttled", meta.BypassReason)
	assert.Equal(t, "CHAT", meta.LLMCallReason)
}

func TestEmitDoesNotPanicWithoutMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		Called("conv-1", "turn-1", "biz-1", "CHAT").Emit(nil)
	})
}
