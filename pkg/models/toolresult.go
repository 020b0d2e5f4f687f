package models

import (
	"github.com/desteklab/concierge/pkg/outcome"
)

// IdentityContext rides along a VERIFICATION_REQUIRED tool result. It
// carries the anchor the tool located plus the query class so the
// autoverify gate and the verification service can act on it. Serialized
// with a leading underscore: the field is pipeline-internal and never
// reaches the LLM or the user.
type IdentityContext struct {
	Anchor     *Anchor `json:"anchor"`
	QueryType  string  `json:"query_type"`
	FullResult bool    `json:"full_result,omitempty"`
}

// ToolResult is the wire contract between any tool and the pipeline.
type ToolResult struct {
	Name    string         `json:"name"`
	Outcome outcome.Outcome `json:"outcome"`
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	// Message is required. The executor forces a fallback if a tool
	// leaves it empty.
	Message         string               `json:"message"`
	StateEvents     []outcome.StateEvent `json:"stateEvents,omitempty"`
	IdentityContext *IdentityContext     `json:"_identityContext,omitempty"`

	// RecordOwner identifies the customer owning the returned record,
	// used by the identity-match guardrail. Never serialized outward.
	RecordOwner *Anchor `json:"-"`
}

// NewToolResult builds a result with outcome normalized and the success
// flag derived.
func NewToolResult(name string, o outcome.Outcome, message string) *ToolResult {
	if !o.IsValid() {
		o = outcome.Normalize(string(o))
	}
	return &ToolResult{
		Name:    name,
		Outcome: o,
		Success: o == outcome.OK,
		Message: message,
	}
}

// WithData attaches result data.
func (r *ToolResult) WithData(data map[string]any) *ToolResult {
	r.Data = data
	return r
}

// WithEvent appends a state event.
func (r *ToolResult) WithEvent(t outcome.StateEventType, reason string) *ToolResult {
	r.StateEvents = append(r.StateEvents, outcome.StateEvent{Type: t, Reason: reason})
	return r
}
