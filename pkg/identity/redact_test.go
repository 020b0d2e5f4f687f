package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "+90******4567", MaskPhone("05551234567"))
	assert.Equal(t, "+1******5089", MaskPhone("+14245275089"))
	assert.Equal(t, "****", MaskPhone("12"))
	assert.Equal(t, "", MaskPhone(""))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***@example.com", MaskEmail("ahmet@example.com"))
	assert.Equal(t, "***", MaskEmail("not-an-email"))
	assert.Equal(t, "***", MaskEmail("@domain.com"))
}

func TestRedactRecord(t *testing.T) {
	record := map[string]any{
		"customer_name":  "Ahmet Yılmaz",
		"customer_phone": "+905551234567",
		"email":          "ahmet@example.com",
		"tckn":           "12345678901",
		"status":         "shipped",
		"items": []map[string]any{
			{"sku": "A1", "phone": "05551234567"},
		},
		"meta": map[string]any{"vkn": "1234567890"},
	}

	redacted := RedactRecord(record)

	assert.Equal(t, "+90******4567", redacted["customer_phone"])
	assert.Equal(t, "a***@example.com", redacted["email"])
	assert.Equal(t, "***", redacted["tckn"])
	assert.Equal(t, "shipped", redacted["status"])
	assert.Equal(t, "Ahmet Yılmaz", redacted["customer_name"])

	items := redacted["items"].([]map[string]any)
	assert.Equal(t, "+90******4567", items[0]["phone"])

	meta := redacted["meta"].(map[string]any)
	assert.Equal(t, "***", meta["vkn"])

	// Input must not be mutated.
	assert.Equal(t, "+905551234567", record["customer_phone"])
	assert.Equal(t, "12345678901", record["tckn"])
}

func TestRedactRecord_Nil(t *testing.T) {
	assert.Nil(t, RedactRecord(nil))
}
