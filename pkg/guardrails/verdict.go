// Package guardrails implements the security gateway: input pre-filters
// (content safety, prompt injection, throttling) and the ordered
// post-generation filter chain.
package guardrails

import (
	"time"

	"github.com/desteklab/concierge/pkg/session"
)

// Action is a guardrail verdict.
type Action string

// Verdict actions.
const (
	ActionPass        Action = "PASS"
	ActionSanitize    Action = "SANITIZE"
	ActionBlock       Action = "BLOCK"
	ActionNeedMinInfo Action = "NEED_MIN_INFO_FOR_TOOL"
)

// Correction types requested from the model. Attempts per type per turn
// are capped by guardrails.max_corrections.
const (
	CorrectionDisclosure       = "DISCLOSURE"
	CorrectionToolOnlyDataLeak = "TOOL_ONLY_DATA_LEAK"
	CorrectionInternalProtocol = "INTERNAL_PROTOCOL_LEAK"
	CorrectionConfabulation    = "CONFABULATION"
)

// CorrectionTypes lists every correction the chain can request.
var CorrectionTypes = []string{
	CorrectionDisclosure,
	CorrectionToolOnlyDataLeak,
	CorrectionInternalProtocol,
	CorrectionConfabulation,
}

// Correction asks the orchestrator to re-prompt the model once with a
// constraint.
type Correction struct {
	Type       string
	Constraint string
}

// LockDirective instructs the orchestrator to lock the session.
type LockDirective struct {
	Reason session.LockReason
	TTL    time.Duration
}

// Result is the outcome of one chain evaluation.
type Result struct {
	Action Action
	// Response is the user-visible text after the chain ran: the
	// original, a sanitized form, or a canned replacement.
	Response    string
	BlockReason string
	Violations  []string
	// Correction, when set, is a re-prompt request. The orchestrator
	// re-runs the chain on the corrected response.
	Correction *Correction
	// Lock, when set, must be applied before the reply is returned.
	Lock *LockDirective
	// Denied marks verdicts that force the turn outcome to DENIED.
	Denied bool
}

func (r *Result) violated(name string) {
	r.Violations = append(r.Violations, name)
}
