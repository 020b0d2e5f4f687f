package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/outcome"
)

func verificationRequiredResult() *models.ToolResult {
	result := models.NewToolResult("order_status", outcome.VerificationRequired, "Dogrulama gerekli.")
	result.IdentityContext = &models.IdentityContext{
		Anchor: &models.Anchor{
			ID:          "ord-1",
			CustomerID:  "cust-1",
			Phone:       "+905551234567",
			Value:       "ORD-1001",
			AnchorType:  "order_number",
			SourceTable: models.TableOrders,
		},
		QueryType: "order_status",
	}
	return result
}

func strongProof(customerID string) *models.IdentityProof {
	return &models.IdentityProof{Strength: models.ProofStrong, MatchedCustomerID: customerID}
}

func TestAutoverifyGate_Upgrades(t *testing.T) {
	directory := &fakeDirectory{records: map[string]map[string]any{
		"orders/ord-1": {
			"status":         "shipped",
			"customer_phone": "+905551234567",
		},
	}}
	gate := NewAutoverifyGate(directory)
	result := verificationRequiredResult()
	state := models.NewTurnState()

	applied := gate.Apply(context.Background(), true, strongProof("cust-1"), result, state)

	require.True(t, applied)
	assert.Equal(t, outcome.OK, result.Outcome)
	assert.True(t, result.Success)
	assert.Equal(t, "shipped", result.Data["status"])
	// The refetched record is redacted before it leaves the gate.
	assert.Equal(t, "+90******4567", result.Data["customer_phone"])
	require.Len(t, result.StateEvents, 1)
	assert.Equal(t, outcome.EventVerificationPassed, result.StateEvents[0].Type)
	assert.Equal(t, "channel_proof", result.StateEvents[0].Reason)
	assert.Equal(t, models.VerificationVerified, state.Verification.Status)
	assert.Equal(t, "channel_proof", state.Verification.MatchedField)
}

func TestAutoverifyGate_DoesNotApply(t *testing.T) {
	directory := &fakeDirectory{records: map[string]map[string]any{
		"orders/ord-1": {"status": "shipped"},
	}}
	gate := NewAutoverifyGate(directory)

	tests := []struct {
		name    string
		enabled bool
		proof   *models.IdentityProof
		mutate  func(*models.ToolResult)
	}{
		{
			name:    "flag disabled",
			enabled: false,
			proof:   strongProof("cust-1"),
		},
		{
			name:    "weak proof",
			enabled: true,
			proof:   &models.IdentityProof{Strength: models.ProofWeak, MatchedCustomerID: "cust-1"},
		},
		{
			name:    "nil proof",
			enabled: true,
			proof:   nil,
		},
		{
			name:    "customer mismatch",
			enabled: true,
			proof:   strongProof("cust-other"),
		},
		{
			name:    "result not verification required",
			enabled: true,
			proof:   strongProof("cust-1"),
			mutate: func(r *models.ToolResult) {
				r.Outcome = outcome.NotFound
			},
		},
		{
			name:    "missing identity context",
			enabled: true,
			proof:   strongProof("cust-1"),
			mutate: func(r *models.ToolResult) {
				r.IdentityContext = nil
			},
		},
		{
			name:    "anchor without customer id",
			enabled: true,
			proof:   strongProof(""),
			mutate: func(r *models.ToolResult) {
				r.IdentityContext.Anchor.CustomerID = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := verificationRequiredResult()
			if tt.mutate != nil {
				tt.mutate(result)
			}
			state := models.NewTurnState()

			applied := gate.Apply(context.Background(), tt.enabled, tt.proof, result, state)

			assert.False(t, applied)
			assert.NotEqual(t, outcome.OK, result.Outcome)
			assert.NotEqual(t, models.VerificationVerified, state.Verification.Status)
		})
	}
}

func TestAutoverifyGate_RefetchFailureFailsClosed(t *testing.T) {
	gate := NewAutoverifyGate(&fakeDirectory{err: errors.New("db down")})
	result := verificationRequiredResult()
	state := models.NewTurnState()

	applied := gate.Apply(context.Background(), true, strongProof("cust-1"), result, state)

	assert.False(t, applied)
	assert.Equal(t, outcome.VerificationRequired, result.Outcome)
	assert.Equal(t, models.VerificationNone, state.Verification.Status)
}
