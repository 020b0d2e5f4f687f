// Package outcome defines the closed set of tool outcomes that drive
// state transitions and message shaping across the turn pipeline.
package outcome

// Outcome is the closed enum every tool result must carry.
type Outcome string

// Tool outcome constants. The set is closed: anything a tool reports
// outside of it is normalized before entering the pipeline.
const (
	OK                   Outcome = "OK"
	NotFound             Outcome = "NOT_FOUND"
	ValidationError      Outcome = "VALIDATION_ERROR"
	VerificationRequired Outcome = "VERIFICATION_REQUIRED"
	NeedMoreInfo         Outcome = "NEED_MORE_INFO"
	Denied               Outcome = "DENIED"
	InfraError           Outcome = "INFRA_ERROR"
)

// IsValid reports whether o is a member of the closed set.
func (o Outcome) IsValid() bool {
	switch o {
	case OK, NotFound, ValidationError, VerificationRequired, NeedMoreInfo, Denied, InfraError:
		return true
	}
	return false
}

// IsTerminal reports whether the outcome ends the active flow.
func (o Outcome) IsTerminal() bool {
	switch o {
	case OK, NotFound, Denied:
		return true
	}
	return false
}

// legacyOutcomes maps outcome strings emitted by older tool handlers onto
// the closed set. Unknown strings normalize to INFRA_ERROR (fail-closed);
// OK is only produced for strings that explicitly meant success.
var legacyOutcomes = map[string]Outcome{
	"success":          OK,
	"ok":               OK,
	"done":             OK,
	"not_found":        NotFound,
	"missing":          NotFound,
	"invalid":          ValidationError,
	"validation":       ValidationError,
	"verify":           VerificationRequired,
	"needs_auth":       VerificationRequired,
	"need_info":        NeedMoreInfo,
	"incomplete":       NeedMoreInfo,
	"denied":           Denied,
	"forbidden":        Denied,
	"error":            InfraError,
	"failed":           InfraError,
	"upstream_failure": InfraError,
}

// Normalize maps a raw outcome string onto the closed set. Members of the
// set pass through unchanged; legacy strings are translated; everything
// else becomes INFRA_ERROR so an unknown outcome can never look like a
// success.
func Normalize(raw string) Outcome {
	if o := Outcome(raw); o.IsValid() {
		return o
	}
	if o, ok := legacyOutcomes[raw]; ok {
		return o
	}
	return InfraError
}

// priority orders outcomes for deriving a turn's final outcome when
// several tools ran. Higher wins. OK is lowest on purpose: a single
// denial or failure outweighs any number of successes.
var priority = map[Outcome]int{
	Denied:               70,
	InfraError:           60,
	VerificationRequired: 50,
	ValidationError:      40,
	NeedMoreInfo:         30,
	NotFound:             20,
	OK:                   10,
}

// Priority returns the derivation priority of o. Unknown outcomes rank as
// INFRA_ERROR.
func (o Outcome) Priority() int {
	if p, ok := priority[o]; ok {
		return p
	}
	return priority[InfraError]
}

// Highest returns the highest-priority outcome in outcomes, or OK when the
// slice is empty.
func Highest(outcomes []Outcome) Outcome {
	best := OK
	for _, o := range outcomes {
		if o.Priority() > best.Priority() {
			best = o
		}
	}
	return best
}
