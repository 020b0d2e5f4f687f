package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already E.164 Turkish", "+905551234567", "+905551234567"},
		{"Turkish with leading zero", "05551234567", "+905551234567"},
		{"bare Turkish mobile", "5551234567", "+905551234567"},
		{"Turkish with country code no plus", "905551234567", "+905551234567"},
		{"formatted Turkish", "0 (555) 123 45 67", "+905551234567"},
		{"already E.164 NANP", "+14245275089", "+14245275089"},
		{"NANP with country code no plus", "14245275089", "+14245275089"},
		{"bare NANP", "4245275089", "+14245275089"},
		{"empty", "", ""},
		{"letters only", "call me", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeE164(tt.input))
		})
	}
}

func TestNormalizeE164_Idempotent(t *testing.T) {
	inputs := []string{"05551234567", "+905551234567", "4245275089", "+14245275089", "5551234567"}
	for _, input := range inputs {
		once := NormalizeE164(input)
		assert.Equal(t, once, NormalizeE164(once), "normalizing %q twice must be stable", input)
	}
}

func TestComparePhones(t *testing.T) {
	tests := []struct {
		name  string
		a     string
		b     string
		match bool
	}{
		{"E.164 vs leading zero", "+905551234567", "05551234567", true},
		{"E.164 vs bare national", "+905551234567", "5551234567", true},
		{"NANP formats", "+14245275089", "4245275089", true},
		{"different numbers", "+905551234567", "+905557654321", false},
		{"empty side", "", "+905551234567", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, ComparePhones(tt.a, tt.b))
		})
	}
}

func TestPhoneLast4(t *testing.T) {
	assert.Equal(t, "5089", PhoneLast4("+14245275089"))
	assert.Equal(t, "4567", PhoneLast4("0 (555) 123 45 67"))
	assert.Equal(t, "", PhoneLast4("123"))
	assert.Equal(t, "", PhoneLast4(""))
}

func TestPhoneVariants(t *testing.T) {
	variants := PhoneVariants("+905551234567")
	assert.Contains(t, variants, "+905551234567")
	assert.Contains(t, variants, "905551234567")
	assert.Contains(t, variants, "5551234567")
	assert.Contains(t, variants, "05551234567")

	assert.Nil(t, PhoneVariants("no digits"))
}
