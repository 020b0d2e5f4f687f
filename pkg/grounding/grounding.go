// Package grounding tags each outgoing response with how well it is
// anchored in retrieved data, for telemetry and message shaping.
package grounding

import (
	"strings"
)

// Verdict is the grounding classification of a final response.
type Verdict string

// Grounding verdicts.
const (
	// Grounded responses are backed by a successful tool call, a
	// confident knowledge-base hit, or are plain chatter.
	Grounded Verdict = "GROUNDED"
	// Clarification responses ask the user for more information.
	Clarification Verdict = "CLARIFICATION"
	// OutOfScope responses redirect a request the assistant cannot
	// serve.
	OutOfScope Verdict = "OUT_OF_SCOPE"
)

// Signals are the per-turn inputs to the classifier.
type Signals struct {
	ToolSucceeded bool
	// ToolCalled is true when any tool ran this turn, regardless of its
	// outcome. An honest NOT_FOUND answer is grounded in the lookup.
	ToolCalled bool
	// KBConfidence is the knowledge-base retrieval confidence in [0,1],
	// zero when no retrieval happened.
	KBConfidence float64
	Chatter      bool
	// EntityResolved is true when the turn bound a concrete entity
	// (order, customer) from user input.
	EntityResolved bool
	// Deterministic marks canned pipeline replies (locks, refusals,
	// verification prompts). They are grounded by construction.
	Deterministic bool
}

// kbConfidenceFloor is the retrieval confidence below which a KB-backed
// answer is not considered grounded.
const kbConfidenceFloor = 0.55

var clarificationMarkers = []string{
	"paylaşır mısınız",
	"paylaşmanız",
	"hangi",
	"kontrol edip",
	"ihtiyacım var",
	"could you share",
	"which",
	"i need the",
	"can you confirm",
}

var outOfScopeMarkers = []string{
	"yardımcı olamıyorum",
	"bu konuda destek veremiyorum",
	"yetkim dışında",
	"can't help with that",
	"outside of what i can",
	"not something i can help",
}

// Classify assigns the grounding verdict for a final response.
func Classify(response string, s Signals) Verdict {
	folded := strings.ToLower(response)

	for _, marker := range outOfScopeMarkers {
		if strings.Contains(folded, marker) {
			return OutOfScope
		}
	}

	if s.Deterministic || s.Chatter {
		if asksForInformation(folded) {
			return Clarification
		}
		return Grounded
	}

	if s.ToolSucceeded || s.ToolCalled {
		if asksForInformation(folded) && !s.ToolSucceeded {
			return Clarification
		}
		return Grounded
	}

	if s.KBConfidence >= kbConfidenceFloor {
		return Grounded
	}

	if asksForInformation(folded) {
		return Clarification
	}

	if s.EntityResolved {
		return Grounded
	}
	return OutOfScope
}

func asksForInformation(folded string) bool {
	for _, marker := range clarificationMarkers {
		if strings.Contains(folded, marker) {
			return true
		}
	}
	return false
}
