package e2e

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/outcome"
)

func seedAhmet(app *TestApp, businessID string) {
	app.SeedCustomer(businessID, "cust-1", "Ahmet Yılmaz", "+905551234567", "ahmet@example.com")
	app.SeedOrder(businessID, "order-1", "SIP-12345", "cust-1", "Ahmet Yılmaz", "+905551234567", "kargoda")
}

func TestUnverifiedOrderQueryDemandsVerification(t *testing.T) {
	app := NewTestApp(t)
	seedAhmet(app, "biz-1")
	app.LLM.AddToolCall("order_status", map[string]any{"order_number": "SIP-12345"})

	resp := app.Turn(models.ChannelChat, "biz-1", "visitor-1", "m-1", "SIP-12345 siparişimi sorgulamak istiyorum")

	assert.Equal(t, outcome.VerificationRequired, resp.Outcome)
	assert.Contains(t, resp.Reply, "son 4")
	assert.NotContains(t, resp.Reply, "kargoda")
	assert.NotContains(t, resp.Reply, "Ahmet")
}

func TestCorrectNameUnlocksOrderDetails(t *testing.T) {
	app := NewTestApp(t)
	seedAhmet(app, "biz-1")
	app.LLM.AddToolCall("order_status", map[string]any{"order_number": "SIP-12345"})

	first := app.Turn(models.ChannelChat, "biz-1", "visitor-1", "m-1", "SIP-12345 siparişimi sorgulamak istiyorum")
	require.Equal(t, outcome.VerificationRequired, first.Outcome)

	// The challenge answer is handled deterministically; no model call.
	second := app.Turn(models.ChannelChat, "biz-1", "visitor-1", "m-2", "Ahmet Yılmaz")

	assert.Equal(t, outcome.OK, second.Outcome)
	assert.Contains(t, second.Reply, "kargoda")
	assert.Equal(t, 1, app.LLM.Calls())
}

func TestWrongNameKeepsRecordHidden(t *testing.T) {
	app := NewTestApp(t)
	seedAhmet(app, "biz-1")
	app.LLM.AddToolCall("order_status", map[string]any{"order_number": "SIP-12345"})

	first := app.Turn(models.ChannelChat, "biz-1", "visitor-2", "m-1", "SIP-12345 siparişimi sorgulamak istiyorum")
	require.Equal(t, outcome.VerificationRequired, first.Outcome)

	second := app.Turn(models.ChannelChat, "biz-1", "visitor-2", "m-2", "Mehmet Demir")

	assert.Equal(t, outcome.VerificationRequired, second.Outcome)
	assert.Contains(t, second.Reply, "eşleşmedi")
	assert.NotContains(t, second.Reply, "kargoda")
	assert.NotContains(t, second.Reply, "Ahmet")
}

func TestUnknownOrderNumberAcknowledgedAsMissing(t *testing.T) {
	app := NewTestApp(t)
	seedAhmet(app, "biz-1")
	app.LLM.AddToolCall("order_status", map[string]any{"order_number": "SIP-99999"})
	app.LLM.AddText("Sipariş kaydını kontrol ettim.")

	resp := app.Turn(models.ChannelChat, "biz-1", "visitor-3", "m-1", "SIP-99999 siparişim nerede")

	assert.Equal(t, outcome.NotFound, resp.Outcome)
	assert.Contains(t, resp.Reply, "bulunamadı")
	assert.NotContains(t, resp.Reply, "kargoda")
}

func TestWhatsAppChannelProofSkipsVerification(t *testing.T) {
	app := NewTestApp(t)
	seedAhmet(app, "biz-auto")
	app.LLM.AddToolCall("order_status", map[string]any{"order_number": "SIP-12345"})

	resp := app.Turn(models.ChannelWhatsApp, "biz-auto", "+905551234567", "m-1", "SIP-12345 siparişim nerede")

	assert.Equal(t, outcome.OK, resp.Outcome)
	assert.Contains(t, resp.Reply, "kargoda")
	assert.NotContains(t, resp.Reply, "son 4")
	require.NotNil(t, resp.State)
	assert.Equal(t, models.VerificationVerified, resp.State.Verification.Status)
	assert.Equal(t, "channel_proof", resp.State.Verification.MatchedField)
}

func TestDigitFreeProductAnswerPassesGuardrails(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddText("Telyx telefon kanalı ile iletişim sağlar.")

	resp := app.Turn(models.ChannelChat, "biz-1", "visitor-4", "m-1", "Telyx hangi kanallarla çalışıyor?")

	assert.Equal(t, outcome.OK, resp.Outcome)
	assert.Equal(t, "Telyx telefon kanalı ile iletişim sağlar.", resp.Reply)
}

// failingDirectory simulates an upstream outage for every lookup.
type failingDirectory struct{}

func (failingDirectory) OrderByNumber(context.Context, string, string) (*models.OrderRecord, error) {
	return nil, fmt.Errorf("upstream returned 500")
}

func (failingDirectory) CustomerByID(context.Context, string, string) (*models.CustomerRecord, error) {
	return nil, fmt.Errorf("upstream returned 500")
}

func (failingDirectory) CustomersByPhoneVariants(context.Context, string, []string) ([]models.CustomerRecord, error) {
	return nil, fmt.Errorf("upstream returned 500")
}

func (failingDirectory) CreateCallback(context.Context, models.CallbackRecord) (string, error) {
	return "", fmt.Errorf("upstream returned 500")
}

func TestUpstreamFailureYieldsSafeTemplate(t *testing.T) {
	app := NewTestApp(t, WithToolDirectory(failingDirectory{}))
	app.LLM.AddToolCall("order_status", map[string]any{"order_number": "SIP-12345"})

	resp := app.Turn(models.ChannelChat, "biz-1", "visitor-5", "m-1", "SIP-12345 siparişim nerede")

	assert.Equal(t, outcome.InfraError, resp.Outcome)
	assert.Contains(t, resp.Reply, "geçici bir sorun")
	assert.Contains(t, resp.ToolsCalled, "order_status")
	assert.False(t, strings.Contains(resp.Reply, "kargoda"))
}
