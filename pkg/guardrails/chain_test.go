package guardrails

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desteklab/concierge/pkg/catalog"
	"github.com/desteklab/concierge/pkg/config"
	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/outcome"
	"github.com/desteklab/concierge/pkg/session"
)

func testChain(t *testing.T) *Chain {
	t.Helper()
	cfg := config.GuardrailsConfig{
		ToolRequiredIntents: []string{"order_status", "debt_inquiry"},
		NeverExpose:         []string{`\bSECRET-\d+\b`},
		PIILockTTL:          time.Hour,
		EnumThreshold:       3,
		MaxCorrections:      1,
	}
	chain, err := NewChain(cfg, catalog.New(nil))
	require.NoError(t, err)
	return chain
}

func verifiedState(customerID string) *models.TurnState {
	state := models.NewTurnState()
	state.Verification.Status = models.VerificationVerified
	state.Verification.Anchor = &models.Anchor{ID: "ord-1", CustomerID: customerID}
	return state
}

func TestChain_CleanResponsePasses(t *testing.T) {
	chain := testChain(t)

	result := chain.Evaluate(&Input{
		BusinessID: "biz-1",
		Language:   "tr",
		Response:   "Siparişiniz hazırlanıyor, en kısa sürede kargoya verilecek.",
		State:      models.NewTurnState(),
	})
	assert.Equal(t, ActionPass, result.Action)
	assert.Empty(t, result.Violations)
}

func TestChain_PhoneChannelNameWithoutDigitsPasses(t *testing.T) {
	chain := testChain(t)

	result := chain.Evaluate(&Input{
		BusinessID: "biz-1",
		Language:   "tr",
		Response:   "Telyx telefon kanalı ile iletişim sağlar.",
		State:      models.NewTurnState(),
	})
	assert.Equal(t, ActionPass, result.Action)
	assert.Equal(t, "Telyx telefon kanalı ile iletişim sağlar.", result.Response)
}

func TestChain_Firewall(t *testing.T) {
	chain := testChain(t)

	t.Run("first offense is sanitized softly", func(t *testing.T) {
		state := models.NewTurnState()
		result := chain.Evaluate(&Input{
			BusinessID: "biz-1",
			Language:   "tr",
			Response:   "order_status aracını çağırdım ama sonuç dönmedi.",
			State:      state,
		})
		assert.Equal(t, ActionSanitize, result.Action)
		assert.NotContains(t, result.Response, "order_status")
		assert.Contains(t, result.Violations, "firewall")
	})

	t.Run("repeat offense requests a disclosure correction", func(t *testing.T) {
		state := models.NewTurnState()
		state.FirewallOffenses = 1
		result := chain.Evaluate(&Input{
			BusinessID: "biz-1",
			Language:   "tr",
			Response:   "Şunu çalıştırdım: debt_inquiry",
			State:      state,
		})
		require.NotNil(t, result.Correction)
		assert.Equal(t, CorrectionDisclosure, result.Correction.Type)
	})

	t.Run("used correction falls through to block", func(t *testing.T) {
		state := models.NewTurnState()
		state.FirewallOffenses = 1
		result := chain.Evaluate(&Input{
			BusinessID:      "biz-1",
			Language:        "tr",
			Response:        `{"tool": "order_status"}`,
			State:           state,
			CorrectionsUsed: map[string]bool{CorrectionDisclosure: true},
		})
		assert.Equal(t, ActionBlock, result.Action)
		assert.Equal(t, "firewall", result.BlockReason)
		assert.Nil(t, result.Correction)
	})

	t.Run("json dump is caught", func(t *testing.T) {
		state := models.NewTurnState()
		result := chain.Evaluate(&Input{
			BusinessID: "biz-1",
			Language:   "tr",
			Response:   `Kayıt şu: {"customer_name": "Ahmet"}`,
			State:      state,
		})
		assert.NotEqual(t, ActionPass, result.Action)
	})
}

func TestChain_PIICriticalLocksSession(t *testing.T) {
	chain := testChain(t)

	tests := []struct {
		name     string
		response string
	}{
		{"national id", "Kayıtlı TC kimlik numaranız 12345678901 olarak görünüyor."},
		{"iban", "IBAN bilgisi TR120006200000001234567890 şeklinde."},
		{"card number", "Kartınız 4111 1111 1111 1111 ile ödeme alındı."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := chain.Evaluate(&Input{
				BusinessID: "biz-1",
				Language:   "tr",
				Response:   tt.response,
				State:      verifiedState("cust-1"),
			})
			assert.Equal(t, ActionBlock, result.Action)
			assert.True(t, result.Denied)
			require.NotNil(t, result.Lock)
			assert.Equal(t, session.LockPIIRisk, result.Lock.Reason)
			assert.Equal(t, time.Hour, result.Lock.TTL)
			assert.NotContains(t, result.Response, "12345678901")
		})
	}
}

func TestChain_NotFoundOverride(t *testing.T) {
	chain := testChain(t)
	notFound := models.NewToolResult("order_status", outcome.NotFound, "bulunamadı")

	t.Run("fabricated answer is replaced", func(t *testing.T) {
		result := chain.Evaluate(&Input{
			BusinessID:  "biz-1",
			Language:    "tr",
			Intent:      "ORDER_STATUS",
			Response:    "Siparişiniz yarın teslim edilecek.",
			State:       models.NewTurnState(),
			ToolResults: []*models.ToolResult{notFound},
			ToolsCalled: []string{"order_status"},
		})
		assert.Equal(t, ActionSanitize, result.Action)
		assert.Contains(t, result.Response, "bulunamadı")
		assert.Contains(t, result.Violations, "not_found_override")
	})

	t.Run("honest absence message passes the leak filter", func(t *testing.T) {
		result := chain.Evaluate(&Input{
			BusinessID:  "biz-1",
			Language:    "tr",
			Intent:      "ORDER_STATUS",
			Response:    "0555 123 45 67 numarasına kayıtlı sipariş bulunamadı.",
			State:       models.NewTurnState(),
			ToolResults: []*models.ToolResult{notFound},
			ToolsCalled: []string{"order_status"},
		})
		assert.Equal(t, ActionPass, result.Action)
	})
}

func TestChain_LeakFilter(t *testing.T) {
	chain := testChain(t)

	t.Run("never-expose identifier blocks", func(t *testing.T) {
		result := chain.Evaluate(&Input{
			BusinessID: "biz-1",
			Language:   "tr",
			Response:   "Dahili referans: SECRET-42",
			State:      verifiedState("cust-1"),
		})
		assert.Equal(t, ActionBlock, result.Action)
		assert.Equal(t, "internal_leak", result.BlockReason)
		assert.NotContains(t, result.Response, "SECRET-42")
	})

	t.Run("unverified phone digits are masked in place", func(t *testing.T) {
		result := chain.Evaluate(&Input{
			BusinessID: "biz-1",
			Language:   "tr",
			Response:   "Kayıtlı numaranız +90 555 123 45 67 üzerinden arayacağız.",
			State:      models.NewTurnState(),
		})
		assert.Equal(t, ActionSanitize, result.Action)
		assert.NotContains(t, result.Response, "555 123 45 67")
		assert.Contains(t, result.Response, "üzerinden arayacağız")
	})

	t.Run("verified session keeps the phone", func(t *testing.T) {
		result := chain.Evaluate(&Input{
			BusinessID: "biz-1",
			Language:   "tr",
			Response:   "Kayıtlı numaranız +90 555 123 45 67.",
			State:      verifiedState("cust-1"),
		})
		assert.Equal(t, ActionPass, result.Action)
		assert.Contains(t, result.Response, "+90 555 123 45 67")
	})
}

func TestChain_ToolRequiredIntent(t *testing.T) {
	chain := testChain(t)

	result := chain.Evaluate(&Input{
		BusinessID: "biz-1",
		Language:   "tr",
		Intent:     "ORDER_STATUS",
		Response:   "Siparişiniz büyük ihtimalle yoldadır.",
		State:      models.NewTurnState(),
	})
	assert.Equal(t, ActionNeedMinInfo, result.Action)
	assert.Contains(t, result.Response, "sipariş numarası")
}

func TestChain_IdentityMismatchBlocks(t *testing.T) {
	chain := testChain(t)

	other := models.NewToolResult("order_status", outcome.OK, "Siparişiniz kargoda.")
	other.RecordOwner = &models.Anchor{ID: "ord-9", CustomerID: "cust-2"}

	result := chain.Evaluate(&Input{
		BusinessID:  "biz-1",
		Language:    "tr",
		Intent:      "ORDER_STATUS",
		Response:    "Siparişiniz kargoda.",
		State:       verifiedState("cust-1"),
		ToolResults: []*models.ToolResult{other},
		ToolsCalled: []string{"order_status"},
	})
	assert.Equal(t, ActionBlock, result.Action)
	assert.True(t, result.Denied)
	assert.Equal(t, "identity_mismatch", result.BlockReason)
}

func TestChain_ToolOnlyDataCorrection(t *testing.T) {
	chain := testChain(t)

	in := &Input{
		BusinessID: "biz-1",
		Language:   "tr",
		Response:   "Takip numaranız: YT-1234567 ile kargonuzu izleyebilirsiniz.",
		State:      models.NewTurnState(),
	}
	result := chain.Evaluate(in)
	require.NotNil(t, result.Correction)
	assert.Equal(t, CorrectionToolOnlyDataLeak, result.Correction.Type)

	in.CorrectionsUsed = map[string]bool{CorrectionToolOnlyDataLeak: true}
	result = chain.Evaluate(in)
	assert.Equal(t, ActionBlock, result.Action)
}

func TestChain_InternalProtocolCorrection(t *testing.T) {
	chain := testChain(t)

	result := chain.Evaluate(&Input{
		BusinessID: "biz-1",
		Language:   "en",
		Response:   "As an AI, I don't have access to your order records.",
		State:      models.NewTurnState(),
	})
	require.NotNil(t, result.Correction)
	assert.Equal(t, CorrectionInternalProtocol, result.Correction.Type)
}

func TestChain_Confabulation(t *testing.T) {
	chain := testChain(t)

	t.Run("unbacked delivery claim is corrected", func(t *testing.T) {
		result := chain.Evaluate(&Input{
			BusinessID: "biz-1",
			Language:   "tr",
			Response:   "Paketiniz komşunuza bırakıldı.",
			State:      models.NewTurnState(),
		})
		require.NotNil(t, result.Correction)
		assert.Equal(t, CorrectionConfabulation, result.Correction.Type)
	})

	t.Run("tool-backed claim passes", func(t *testing.T) {
		delivered := models.NewToolResult("order_status", outcome.OK, "teslim edildi")
		result := chain.Evaluate(&Input{
			BusinessID:  "biz-1",
			Language:    "tr",
			Intent:      "ORDER_STATUS",
			Response:    "Siparişiniz dün teslim edildi.",
			State:       verifiedState("cust-1"),
			ToolResults: []*models.ToolResult{delivered},
			ToolsCalled: []string{"order_status"},
		})
		assert.Equal(t, ActionPass, result.Action)
	})
}

func TestChain_ActionClaimRewrite(t *testing.T) {
	chain := testChain(t)

	result := chain.Evaluate(&Input{
		BusinessID: "biz-1",
		Language:   "tr",
		Response:   "Geri arama talebinizi ilettim.",
		State:      models.NewTurnState(),
	})
	assert.Equal(t, ActionSanitize, result.Action)
	assert.NotContains(t, result.Response, "ilettim")
	assert.Contains(t, result.Response, "başlatabilirim")
}

func TestChain_PolicyGuidance(t *testing.T) {
	chain := testChain(t)
	flagged := config.BusinessConfig{FeatureFlags: map[string]bool{config.FlagPolicyGuidance: true}}

	t.Run("refund question gets guidance appended", func(t *testing.T) {
		result := chain.Evaluate(&Input{
			BusinessID:  "biz-1",
			Language:    "tr",
			UserMessage: "Para iadesi ne zaman yatar?",
			Response:    "Hemen kontrol edebilirim.",
			State:       models.NewTurnState(),
			Business:    flagged,
		})
		assert.Equal(t, ActionPass, result.Action)
		assert.Contains(t, result.Response, "Hemen kontrol edebilirim.")
		assert.Contains(t, result.Response, "iş günü")
	})

	t.Run("flag off leaves the response alone", func(t *testing.T) {
		result := chain.Evaluate(&Input{
			BusinessID:  "biz-1",
			Language:    "tr",
			UserMessage: "Para iadesi ne zaman yatar?",
			Response:    "Hemen kontrol edebilirim.",
			State:       models.NewTurnState(),
		})
		assert.Equal(t, "Hemen kontrol edebilirim.", result.Response)
	})
}

func TestNewChain_InvalidNeverExposePattern(t *testing.T) {
	_, err := NewChain(config.GuardrailsConfig{NeverExpose: []string{"("}}, catalog.New(nil))
	assert.Error(t, err)
}
