package models

import (
	"github.com/desteklab/concierge/pkg/outcome"
)

// TurnRequest is the orchestrator entrypoint input. Adapters populate it
// from channel payloads; the orchestrator never sends messages itself.
type TurnRequest struct {
	Channel       Channel `json:"channel"`
	BusinessID    string  `json:"business_id"`
	AssistantID   string  `json:"assistant_id,omitempty"`
	ChannelUserID string  `json:"channel_user_id"`
	// SessionID, when set, pins the turn to an existing session. The
	// orchestrator must not create a new session in that case —
	// otherwise a locked session could be escaped by re-mapping.
	SessionID   string            `json:"session_id,omitempty"`
	MessageID   string            `json:"message_id"`
	UserMessage string            `json:"user_message"`
	Language    string            `json:"language,omitempty"`
	Timezone    string            `json:"timezone,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// TurnMetadata is the per-turn diagnostic block returned to adapters.
type TurnMetadata struct {
	Outcome           outcome.Outcome   `json:"outcome"`
	GuardrailAction   string            `json:"guardrailAction,omitempty"`
	MessageType       string            `json:"messageType,omitempty"`
	LLMCalled         bool              `json:"LLM_CALLED"`
	LLMCallReason     string            `json:"llm_call_reason,omitempty"`
	Bypassed          bool              `json:"bypassed"`
	BypassReason      string            `json:"bypass_reason,omitempty"`
	ResponseGrounding string            `json:"responseGrounding,omitempty"`
	KBConfidence      float64           `json:"kbConfidence,omitempty"`
	ToolOutcomes      []outcome.Outcome `json:"toolOutcomes,omitempty"`
}

// SecurityTelemetry is the structured per-turn security record.
type SecurityTelemetry struct {
	Blocked           bool            `json:"blocked"`
	BlockReason       string          `json:"blockReason,omitempty"`
	Action            string          `json:"action"`
	Violations        []string        `json:"violations,omitempty"`
	RepromptCount     int             `json:"repromptCount"`
	LatencyMs         int64           `json:"latencyMs"`
	InjectionDetected bool            `json:"injectionDetected"`
	SessionThrottled  bool            `json:"sessionThrottled"`
	FeatureFlags      map[string]bool `json:"featureFlags,omitempty"`
}

// TurnMetrics groups telemetry produced by a single turn.
type TurnMetrics struct {
	Security       SecurityTelemetry `json:"securityTelemetry"`
	KBConfidence   float64           `json:"kbConfidence,omitempty"`
	EntityResolver string            `json:"entityResolver,omitempty"`
	ToolsCalled    []string          `json:"toolsCalled,omitempty"`
	Outcome        outcome.Outcome   `json:"outcome"`
}

// TurnResponse is the orchestrator entrypoint output.
type TurnResponse struct {
	Reply            string          `json:"reply"`
	Outcome          outcome.Outcome `json:"outcome"`
	Metadata         TurnMetadata    `json:"metadata"`
	ShouldEndSession bool            `json:"shouldEndSession"`
	ForceEnd         bool            `json:"forceEnd"`
	State            *TurnState      `json:"state,omitempty"`
	Metrics          *TurnMetrics    `json:"metrics,omitempty"`
	InputTokens      int             `json:"inputTokens"`
	OutputTokens     int             `json:"outputTokens"`
	ToolsCalled      []string        `json:"toolsCalled,omitempty"`
	Debug            map[string]any  `json:"debug,omitempty"`
}

// ChatLogEntry is one append-only conversation log record.
type ChatLogEntry struct {
	Role              string `json:"role"`
	Text              string `json:"text"`
	MessageType       string `json:"messageType,omitempty"`
	GuardrailAction   string `json:"guardrailAction,omitempty"`
	ResponseGrounding string `json:"responseGrounding,omitempty"`
}
