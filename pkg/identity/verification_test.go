package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/desteklab/concierge/pkg/catalog"
	"github.com/desteklab/concierge/pkg/models"
)

func TestVerifyAgainstAnchor(t *testing.T) {
	verifier := NewVerifier(catalog.New(nil))
	anchor := &models.Anchor{
		ID:          "ord-1",
		CustomerID:  "cust-1",
		Name:        "Ahmet Yılmaz",
		Phone:       "+14245275089",
		Value:       "ORD-1001",
		AnchorType:  "order_number",
		SourceTable: models.TableOrders,
	}

	tests := []struct {
		name     string
		input    string
		expected MatchField
	}{
		{"matching last four digits", "5089", MatchPhoneLast4},
		{"wrong last four digits", "1234", MatchNone},
		{"last four with spaces", " 5089 ", MatchPhoneLast4},
		{"full name match", "Ahmet Yılmaz", MatchName},
		{"folded name match", "AHMET YILMAZ", MatchName},
		{"first name only", "Ahmet", MatchNone},
		{"full phone match", "+1 424 527 5089", MatchFullPhone},
		{"full phone mismatch", "+1 424 527 0000", MatchNone},
		{"empty input", "", MatchNone},
		{"gibberish", "hello there", MatchNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, verifier.VerifyAgainstAnchor(anchor, tt.input))
		})
	}
}

func TestVerifyAgainstAnchor_NilAnchor(t *testing.T) {
	verifier := NewVerifier(catalog.New(nil))
	assert.Equal(t, MatchNone, verifier.VerifyAgainstAnchor(nil, "5089"))
}

func TestVerifyAgainstAnchor_NoPhoneOnAnchor(t *testing.T) {
	verifier := NewVerifier(catalog.New(nil))
	anchor := &models.Anchor{Name: "Ahmet Yılmaz"}

	// Four digits cannot match when the anchor has no phone.
	assert.Equal(t, MatchNone, verifier.VerifyAgainstAnchor(anchor, "5089"))
	assert.Equal(t, MatchName, verifier.VerifyAgainstAnchor(anchor, "Ahmet Yılmaz"))
}

func TestAskPrompt(t *testing.T) {
	verifier := NewVerifier(catalog.New(nil))

	withPhone := &models.Anchor{Phone: "+905551234567"}
	withoutPhone := &models.Anchor{Name: "Ahmet Yılmaz"}

	phonePrompt := verifier.AskPrompt("biz-1", withPhone, "tr")
	namePrompt := verifier.AskPrompt("biz-1", withoutPhone, "tr")
	assert.NotEmpty(t, phonePrompt)
	assert.NotEmpty(t, namePrompt)
	assert.NotEqual(t, phonePrompt, namePrompt)
}

func TestCreateAnchor(t *testing.T) {
	record := map[string]any{
		"id":             "ord-9",
		"customer_id":    "cust-9",
		"customer_name":  "Zeynep Kaya",
		"customer_phone": "+905551234567",
	}

	anchor := CreateAnchor(record, "order_number", "ORD-9", models.TableOrders)

	assert.Equal(t, "ord-9", anchor.ID)
	assert.Equal(t, "cust-9", anchor.CustomerID)
	assert.Equal(t, "Zeynep Kaya", anchor.Name)
	assert.Equal(t, "+905551234567", anchor.Phone)
	assert.Equal(t, "ORD-9", anchor.Value)
	assert.Equal(t, models.TableOrders, anchor.SourceTable)
}

func TestMinimalResult(t *testing.T) {
	record := map[string]any{
		"status":         "shipped",
		"customer_name":  "Zeynep Kaya",
		"customer_phone": "+905551234567",
	}

	minimal := MinimalResult(record)
	assert.Equal(t, map[string]any{"status": "shipped"}, minimal)
}

func TestFullResult_Redacts(t *testing.T) {
	record := map[string]any{
		"status":         "shipped",
		"customer_phone": "+905551234567",
	}

	full := FullResult(record)
	assert.Equal(t, "shipped", full["status"])
	assert.Equal(t, "+90******4567", full["customer_phone"])
}
