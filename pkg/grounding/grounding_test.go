package grounding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		response string
		signals  Signals
		want     Verdict
	}{
		{
			"tool-backed answer",
			"Siparişiniz kargoya verildi, yarın teslim edilmesi bekleniyor.",
			Signals{ToolSucceeded: true, ToolCalled: true},
			Grounded,
		},
		{
			"honest not-found is grounded in the lookup",
			"Bu numaraya kayıtlı sipariş bulunamadı.",
			Signals{ToolCalled: true},
			Grounded,
		},
		{
			"tool miss that asks for a corrected identifier",
			"Kayıt bulunamadı, sipariş numaranızı kontrol edip tekrar paylaşır mısınız?",
			Signals{ToolCalled: true},
			Clarification,
		},
		{
			"confident kb answer",
			"Ürünlerimiz 2 yıl garanti kapsamındadır.",
			Signals{KBConfidence: 0.8},
			Grounded,
		},
		{
			"low-confidence kb with a question",
			"Hangi ürün için soruyorsunuz, paylaşır mısınız?",
			Signals{KBConfidence: 0.2},
			Clarification,
		},
		{
			"chatter",
			"Merhaba! Size nasıl yardımcı olabilirim?",
			Signals{Chatter: true},
			Grounded,
		},
		{
			"deterministic verification prompt",
			"Kayıtlı telefon numaranızın son 4 hanesini paylaşır mısınız?",
			Signals{Deterministic: true},
			Clarification,
		},
		{
			"deterministic lock message",
			"Güvenlik nedeniyle bu oturum geçici olarak kapatıldı.",
			Signals{Deterministic: true},
			Grounded,
		},
		{
			"explicit redirect",
			"Üzgünüm, bu konuda yardımcı olamıyorum.",
			Signals{},
			OutOfScope,
		},
		{
			"unbacked claim with nothing resolved",
			"Bu ürün stoklarımızda mevcut.",
			Signals{},
			OutOfScope,
		},
		{
			"entity resolved without a tool",
			"ORD-1001 için işleminizi başlatabilirim.",
			Signals{EntityResolved: true},
			Grounded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.response, tt.signals))
		})
	}
}
