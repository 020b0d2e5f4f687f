// Package tools defines the tool contract, the gated registry, and the
// executor with validation, idempotency, and retry handling.
package tools

import (
	"context"

	"github.com/desteklab/concierge/pkg/models"
)

// Definition describes a tool to the registry and, through the gating
// layer, to the LLM as a function schema.
type Definition struct {
	Name        string
	Description string
	// Parameters is a JSON Schema object for the tool arguments. The
	// executor compiles and enforces it before the tool runs.
	Parameters map[string]any
	// Flow tags this tool starts or serves. Used for availability gating.
	Flow string
	// SideEffect marks tools that mutate external state. Side-effectful
	// tools rely on the idempotency record to survive replays.
	SideEffect bool
}

// Invocation is the per-call context handed to a tool.
type Invocation struct {
	BusinessID string
	SessionID  string
	TurnID     string
	Language   string
	Args       map[string]any
	// State is the current turn state, read-only for tools. State
	// mutation happens through StateEvents on the result.
	State *models.TurnState
	// Proof is the channel possession proof of the turn.
	Proof *models.IdentityProof
}

// Verified reports whether the session's verification FSM is satisfied
// for the anchor the state currently holds.
func (inv *Invocation) Verified() bool {
	return inv.State != nil && inv.State.Verification.Status == models.VerificationVerified
}

// Tool is a callable capability.
type Tool interface {
	Definition() Definition
	Execute(ctx context.Context, inv *Invocation) (*models.ToolResult, error)
}

// Directory is the slice of the tenant directory builtin tools need.
type Directory interface {
	OrderByNumber(ctx context.Context, businessID, orderNumber string) (*models.OrderRecord, error)
	CustomerByID(ctx context.Context, businessID, id string) (*models.CustomerRecord, error)
	CustomersByPhoneVariants(ctx context.Context, businessID string, variants []string) ([]models.CustomerRecord, error)
	CreateCallback(ctx context.Context, req models.CallbackRecord) (string, error)
}
