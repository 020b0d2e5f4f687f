package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/desteklab/concierge/pkg/config"
	"github.com/desteklab/concierge/pkg/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		intent  string
		chatter bool
	}{
		{"order inquiry turkish", "Siparişim nerede?", IntentOrderStatus, false},
		{"order number alone", "ORD-1001", IntentOrderStatus, false},
		{"debt inquiry", "Borcum ne kadar?", IntentDebtInquiry, false},
		{"debt inquiry english", "What is my balance?", IntentDebtInquiry, false},
		{"callback", "Beni geri arayın lütfen", IntentCallbackRequest, false},
		{"complaint", "Şikayetim var, ürün bozuk geldi", IntentComplaint, false},
		{"greeting", "Merhaba!", IntentChatter, true},
		{"thanks", "teşekkürler", IntentChatter, true},
		{"unknown", "xyzzy plugh", IntentUnknown, false},
		{"long message with greeting is not chatter", "Merhaba, geçen hafta verdiğim siparişle ilgili bir sorum olacaktı acaba yardımcı olur musunuz", IntentOrderStatus, false},
		{"empty", "", IntentUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.message)
			assert.Equal(t, tt.intent, c.Intent)
			assert.Equal(t, tt.chatter, c.Chatter)
		})
	}
}

func TestClassify_Slots(t *testing.T) {
	t.Run("order number", func(t *testing.T) {
		c := Classify("ORD-1001 numaralı siparişim nerede?")
		assert.Equal(t, "ORD-1001", c.Slots[models.FieldOrderNumber])
	})

	t.Run("order number lowercase with underscore", func(t *testing.T) {
		c := Classify("ord_42 nerede")
		assert.Equal(t, "ORD-42", c.Slots[models.FieldOrderNumber])
	})

	t.Run("phone number", func(t *testing.T) {
		c := Classify("Numaram 0555 123 45 67, borcuma bakar mısınız")
		assert.Equal(t, "0555 123 45 67", c.Slots[models.FieldPhone])
	})

	t.Run("no slots", func(t *testing.T) {
		c := Classify("merhaba")
		assert.Empty(t, c.Slots)
	})
}

func TestDecide(t *testing.T) {
	strict := config.BusinessConfig{FeatureFlags: map[string]bool{
		config.FlagClassifierEnabled: true,
		config.FlagStrictChatter:     true,
	}}

	t.Run("pending verification always routes to verification", func(t *testing.T) {
		state := models.NewTurnState()
		state.Verification.Status = models.VerificationPending

		d := Decide(state, strict, "5089")
		assert.Equal(t, RouteVerification, d.Route)
		assert.False(t, d.MergeSlots, "no slot merge while verification is pending")
	})

	t.Run("idle session without classifier flag goes to the model", func(t *testing.T) {
		d := Decide(models.NewTurnState(), config.BusinessConfig{}, "Siparişim nerede?")
		assert.Equal(t, RouteLLM, d.Route)
		assert.Equal(t, IntentUnknown, d.Classification.Intent)
	})

	t.Run("active flow classifies even without the flag", func(t *testing.T) {
		state := models.NewTurnState()
		state.FlowStatus = models.FlowInProgress
		state.ActiveFlow = models.FlowTagOrderStatus

		d := Decide(state, config.BusinessConfig{}, "ORD-1001")
		assert.Equal(t, RouteLLM, d.Route)
		assert.Equal(t, IntentOrderStatus, d.Classification.Intent)
		assert.True(t, d.MergeSlots)
	})

	t.Run("strict chatter short-circuits greetings", func(t *testing.T) {
		d := Decide(models.NewTurnState(), strict, "Merhaba!")
		assert.Equal(t, RouteChatter, d.Route)
	})

	t.Run("chatter without strict flag still goes to the model", func(t *testing.T) {
		lenient := config.BusinessConfig{FeatureFlags: map[string]bool{config.FlagClassifierEnabled: true}}
		d := Decide(models.NewTurnState(), lenient, "Merhaba!")
		assert.Equal(t, RouteLLM, d.Route)
	})
}
