package outcome

// StateEventType identifies a state transition signal emitted by a tool
// or by the verification pipeline. The orchestrator consumes these to
// drive the verification FSM and the enumeration counter.
type StateEventType string

// State event constants.
const (
	EventVerificationPassed StateEventType = "VERIFICATION_PASSED"
	EventVerificationFailed StateEventType = "VERIFICATION_FAILED"
	EventFlowResolved       StateEventType = "FLOW_RESOLVED"
	EventAnchorChanged      StateEventType = "ANCHOR_CHANGED"
)

// StateEvent is a typed state transition signal with an optional reason
// (e.g. "channel_proof" for autoverified turns).
type StateEvent struct {
	Type   StateEventType `json:"type"`
	Reason string         `json:"reason,omitempty"`
}
