package identity

import (
	"context"
	"log/slog"

	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/outcome"
)

// AutoverifyGate upgrades VERIFICATION_REQUIRED tool results to OK when
// channel possession proof already identifies the caller as the record
// owner, skipping the knowledge-factor question.
type AutoverifyGate struct {
	directory Directory
}

// NewAutoverifyGate creates the gate over the given directory.
func NewAutoverifyGate(directory Directory) *AutoverifyGate {
	return &AutoverifyGate{directory: directory}
}

// Apply evaluates the gate against a tool result. All three conditions
// must hold:
//
//  1. The tenant enabled channel-proof autoverify.
//  2. The turn's identity proof is STRONG.
//  3. The proof's matched customer is the anchor's owning customer.
//
// When they do, the full record is re-fetched from its source table by
// primary key, redacted, and the result is rewritten to OK with the
// verification FSM advanced to verified. Any fetch failure leaves the
// original VERIFICATION_REQUIRED result untouched: the gate only ever
// fails closed.
func (g *AutoverifyGate) Apply(ctx context.Context, enabled bool, proof *models.IdentityProof, result *models.ToolResult, state *models.TurnState) bool {
	if result == nil || result.Outcome != outcome.VerificationRequired || result.IdentityContext == nil {
		return false
	}
	anchor := result.IdentityContext.Anchor
	if !enabled || proof == nil || proof.Strength != models.ProofStrong || anchor == nil {
		return false
	}
	if anchor.CustomerID == "" || proof.MatchedCustomerID != anchor.CustomerID {
		return false
	}

	record, err := g.directory.Record(ctx, anchor.SourceTable, anchor.ID)
	if err != nil {
		slog.Warn("Autoverify record refetch failed, keeping verification required",
			"source_table", anchor.SourceTable, "error", err)
		return false
	}
	if record == nil {
		return false
	}

	result.Outcome = outcome.OK
	result.Success = true
	result.Data = FullResult(record)
	result.StateEvents = append(result.StateEvents, outcome.StateEvent{
		Type:   outcome.EventVerificationPassed,
		Reason: "channel_proof",
	})

	state.Verification.Status = models.VerificationVerified
	state.Verification.Anchor = anchor
	state.Verification.MatchedField = "channel_proof"
	state.Verification.PendingTool = ""
	state.Verification.PendingArgs = nil

	slog.Info("Autoverify passed on channel proof",
		"customer_id", anchor.CustomerID, "source_table", anchor.SourceTable)
	return true
}
