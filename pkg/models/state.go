package models

import (
	"time"
)

// FlowStatus is the lifecycle position of the active conversational flow.
type FlowStatus string

// Flow status constants.
const (
	FlowIdle            FlowStatus = "idle"
	FlowInProgress      FlowStatus = "in_progress"
	FlowResolved        FlowStatus = "resolved"
	FlowPostResult      FlowStatus = "post_result"
	FlowNotFound        FlowStatus = "not_found"
	FlowValidationError FlowStatus = "validation_error"
	FlowTerminated      FlowStatus = "terminated"
)

// Active flow tags. Tools may introduce further tags; these are the
// built-in flows the router understands.
const (
	FlowTagOrderStatus     = "ORDER_STATUS"
	FlowTagComplaint       = "COMPLAINT"
	FlowTagDebtInquiry     = "DEBT_INQUIRY"
	FlowTagCallbackRequest = "CALLBACK_REQUEST"
)

// VerificationStatus is the position of the verification FSM.
type VerificationStatus string

// Verification FSM states: none → pending → verified, with failures
// returning to none and bumping the attempt counter.
const (
	VerificationNone     VerificationStatus = "none"
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
)

// Verification tracks the verification FSM for the current anchor.
// PendingTool and PendingArgs remember the tool call that triggered
// VERIFICATION_REQUIRED so a successful verification can replay it.
type Verification struct {
	Status      VerificationStatus `json:"status"`
	Anchor      *Anchor            `json:"anchor,omitempty"`
	Collected   map[string]string  `json:"collected,omitempty"`
	Attempts    int                `json:"attempts"`
	PendingTool string             `json:"pending_tool,omitempty"`
	PendingArgs map[string]any     `json:"pending_args,omitempty"`
	// MatchedField records which field satisfied verification
	// (phone_last4, name, phone).
	MatchedField string `json:"matched_field,omitempty"`
}

// NotFoundContext remembers that the last query genuinely returned
// nothing, so the leak filter does not fire on the absence message.
type NotFoundContext struct {
	QueryType string    `json:"query_type"`
	Value     string    `json:"value"`
	At        time.Time `json:"at"`
}

// TurnState is the versioned per-session state persisted between turns.
// It is mutated only by the orchestrator persist step.
type TurnState struct {
	Version        int               `json:"version"`
	FlowStatus     FlowStatus        `json:"flow_status"`
	ActiveFlow     string            `json:"active_flow,omitempty"`
	Verification   Verification      `json:"verification"`
	ExtractedSlots map[string]string `json:"extracted_slots,omitempty"`
	CollectedSlots map[string]string `json:"collected_slots,omitempty"`
	LastNotFound   *NotFoundContext  `json:"last_not_found,omitempty"`
	// ResponseGrounding is the previous turn's grounding verdict.
	ResponseGrounding string `json:"response_grounding,omitempty"`
	// FirewallOffenses counts firewall hits this session (first offense
	// is sanitized softly, later ones blocked).
	FirewallOffenses int       `json:"firewall_offenses,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CurrentStateVersion is bumped when TurnState changes shape; older
// persisted states are upgraded by DefaultState-filling on read.
const CurrentStateVersion = 2

// NewTurnState returns a state with defaults filled.
func NewTurnState() *TurnState {
	return &TurnState{
		Version:        CurrentStateVersion,
		FlowStatus:     FlowIdle,
		Verification:   Verification{Status: VerificationNone},
		ExtractedSlots: map[string]string{},
		CollectedSlots: map[string]string{},
	}
}

// FillDefaults upgrades a state loaded from an older version so every
// consumer sees a fully-populated value.
func (s *TurnState) FillDefaults() {
	if s.FlowStatus == "" {
		s.FlowStatus = FlowIdle
	}
	if s.Verification.Status == "" {
		s.Verification.Status = VerificationNone
	}
	if s.ExtractedSlots == nil {
		s.ExtractedSlots = map[string]string{}
	}
	if s.CollectedSlots == nil {
		s.CollectedSlots = map[string]string{}
	}
	s.Version = CurrentStateVersion
}

// ResetVerification restarts the verification FSM, e.g. after an anchor
// change. The attempt counter is preserved across anchors within a
// session so enumeration cannot be reset by switching records.
func (s *TurnState) ResetVerification() {
	attempts := s.Verification.Attempts
	s.Verification = Verification{Status: VerificationNone, Attempts: attempts}
}
