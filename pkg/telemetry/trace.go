package telemetry

import (
	"log/slog"

	"github.com/desteklab/concierge/pkg/models"
)

// Trace is the per-turn record of whether the model was called and why.
// Exactly one is emitted per turn, including deterministic bypasses.
type Trace struct {
	SessionID    string
	TurnID       string
	BusinessID   string
	Channel      string
	LLMCalled    bool
	CallReason   string
	Bypassed     bool
	BypassReason string
	Iterations   int
	InputTokens  int
	OutputTokens int
}

// Bypass builds the trace for a turn that exited before the model.
func Bypass(sessionID, turnID, businessID, channel, reason string) Trace {
	return Trace{
		SessionID:    sessionID,
		TurnID:       turnID,
		BusinessID:   businessID,
		Channel:      channel,
		LLMCalled:    false,
		CallReason:   channel,
		Bypassed:     true,
		BypassReason: reason,
	}
}

// Called builds the trace for a turn that reached the model.
func Called(sessionID, turnID, businessID, channel string) Trace {
	return Trace{
		SessionID:  sessionID,
		TurnID:     turnID,
		BusinessID: businessID,
		Channel:    channel,
		LLMCalled:  true,
		CallReason: channel,
	}
}

// Emit writes the single structured trace line for the turn and bumps the
// call counters. The "LLM_CALL_TRACE" tag is the monitoring contract.
func (t Trace) Emit(metrics *models.TurnMetrics) {
	attrs := []any{
		"session_id", t.SessionID,
		"turn_id", t.TurnID,
		"business_id", t.BusinessID,
		"channel", t.Channel,
		"LLM_CALLED", t.LLMCalled,
		"llm_call_reason", t.CallReason,
		"bypassed", t.Bypassed,
	}
	if t.Bypassed {
		attrs = append(attrs, "reason", t.BypassReason)
	} else {
		attrs = append(attrs,
			"iterations", t.Iterations,
			"input_tokens", t.InputTokens,
			"output_tokens", t.OutputTokens)
	}
	if metrics != nil {
		attrs = append(attrs,
			"outcome", string(metrics.Outcome),
			"guardrail_action", metrics.Security.Action,
			"blocked", metrics.Security.Blocked,
			"reprompt_count", metrics.Security.RepromptCount,
			"latency_ms", metrics.Security.LatencyMs,
			"injection_detected", metrics.Security.InjectionDetected,
			"throttled", metrics.Security.SessionThrottled,
			"tools_called", metrics.ToolsCalled)
	}
	slog.Info("LLM_CALL_TRACE", attrs...)
}

// ApplyTo copies the trace facts into the response metadata block.
func (t Trace) ApplyTo(meta *models.TurnMetadata) {
	meta.LLMCalled = t.LLMCalled
	meta.LLMCallReason = t.CallReason
	meta.Bypassed = t.Bypassed
	meta.BypassReason = t.BypassReason
}
