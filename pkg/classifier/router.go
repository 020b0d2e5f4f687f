package classifier

import (
	"github.com/desteklab/concierge/pkg/config"
	"github.com/desteklab/concierge/pkg/models"
)

// Route is the turn handling path the router picked.
type Route string

// Routes.
const (
	// RouteVerification handles the turn deterministically as an answer
	// to a pending verification question.
	RouteVerification Route = "VERIFICATION"
	// RouteChatter answers a pleasantry deterministically, without the
	// model.
	RouteChatter Route = "CHATTER"
	// RouteLLM hands the turn to the model-tool loop.
	RouteLLM Route = "LLM"
)

// Decision is the router output for one turn.
type Decision struct {
	Route          Route
	Classification Classification
	// MergeSlots is false while verification is pending: input during
	// verification is an answer to the challenge, not new query slots.
	MergeSlots bool
}

// Decide routes a turn. Verification answers always win; the classifier
// runs only when the session has an active flow or the tenant enabled
// it globally, so idle small talk does not pay the classification cost.
func Decide(state *models.TurnState, business config.BusinessConfig, message string) Decision {
	if state.Verification.Status == models.VerificationPending {
		return Decision{
			Route:          RouteVerification,
			Classification: Classification{Intent: IntentUnknown, Slots: map[string]string{}},
			MergeSlots:     false,
		}
	}

	classifierActive := business.FlagEnabled(config.FlagClassifierEnabled) ||
		state.FlowStatus != models.FlowIdle

	if !classifierActive {
		return Decision{
			Route:          RouteLLM,
			Classification: Classification{Intent: IntentUnknown, Slots: map[string]string{}},
			MergeSlots:     false,
		}
	}

	c := Classify(message)
	if c.Chatter && business.FlagEnabled(config.FlagStrictChatter) {
		return Decision{Route: RouteChatter, Classification: c, MergeSlots: false}
	}
	return Decision{Route: RouteLLM, Classification: c, MergeSlots: true}
}
