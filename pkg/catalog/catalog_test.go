package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBuiltinResolution(t *testing.T) {
	cat := New(nil)

	// Turkish is the default register.
	assert.Contains(t, cat.Get("biz-1", KeyVerificationAsk, "tr"), "son 4 hanesini")
	assert.Contains(t, cat.Get("biz-1", KeyVerificationAsk, ""), "son 4 hanesini")

	// English is served when requested.
	assert.Contains(t, cat.Get("biz-1", KeyVerificationAsk, "en"), "last 4 digits")

	// An unsupported language falls back to Turkish.
	assert.Contains(t, cat.Get("biz-1", KeyVerificationAsk, "de"), "son 4 hanesini")
}

func TestGetUnknownKeyFallsBackToSafeText(t *testing.T) {
	cat := New(nil)

	reply := cat.Get("biz-1", "no_such_key", "tr")
	assert.Equal(t, cat.Get("biz-1", KeySafeFallback, "tr"), reply)
	assert.NotEmpty(t, reply)
}

func TestGetTenantOverride(t *testing.T) {
	cat := New(map[string]map[string]map[string]string{
		"biz-1": {
			KeySafeFallback: {
				"tr": "Demo Market'e hoş geldiniz, size nasıl yardımcı olabilirim?",
			},
		},
	})

	assert.Equal(t, "Demo Market'e hoş geldiniz, size nasıl yardımcı olabilirim?",
		cat.Get("biz-1", KeySafeFallback, "tr"))

	// A tenant with an override in the default language only still gets
	// it for other languages; the tenant's voice beats the built-in text.
	assert.Equal(t, "Demo Market'e hoş geldiniz, size nasıl yardımcı olabilirim?",
		cat.Get("biz-1", KeySafeFallback, "en"))

	// Other tenants and other keys stay on the built-in set.
	assert.Contains(t, cat.Get("biz-2", KeySafeFallback, "tr"), "nasıl yardımcı olabilirim")
	assert.Contains(t, cat.Get("biz-1", KeyToolFailure, "tr"), "geçici bir sorun")
}

func TestRenderSubstitutesPlaceholders(t *testing.T) {
	cat := New(nil)

	rendered := cat.Render("biz-1", KeyRecordNotFound, "tr",
		map[string]string{"field": "sipariş numarası"})
	assert.Contains(t, rendered, "sipariş numarası")
	assert.NotContains(t, rendered, "{field}")

	rendered = cat.Render("biz-1", KeyNeedIdentifier, "en",
		map[string]string{"field": "order number"})
	assert.Contains(t, rendered, "order number")

	// Arguments the text does not reference are ignored; placeholders
	// without arguments pass through visibly rather than vanishing.
	rendered = cat.Render("biz-1", KeyRecordNotFound, "tr", nil)
	assert.Contains(t, rendered, "{field}")
}
