// Package classifier implements the deterministic intent classifier,
// slot extractor, and the turn router that decides whether a turn is
// handled deterministically or by the model.
package classifier

import (
	"regexp"
	"strings"

	"github.com/desteklab/concierge/pkg/models"
)

// Intents the router understands. Tools may serve further intents; the
// model handles anything the classifier cannot name.
const (
	IntentOrderStatus     = "ORDER_STATUS"
	IntentDebtInquiry     = "DEBT_INQUIRY"
	IntentCallbackRequest = "CALLBACK_REQUEST"
	IntentComplaint       = "COMPLAINT"
	IntentChatter         = "CHATTER"
	IntentUnknown         = "UNKNOWN"
)

// Classification is the deterministic reading of one user message.
type Classification struct {
	Intent string
	// Slots are extracted identifiers under canonical field names.
	Slots map[string]string
	// Chatter marks greetings and pleasantries with no service request.
	Chatter bool
}

var (
	orderNumberPattern = regexp.MustCompile(`(?i)\b(?:ORD|SIP|ORDER)[-_ ]?(\d{2,})\b`)
	phonePattern       = regexp.MustCompile(`(?:\+?\d[\d\s\-().]{8,}\d)`)

	intentKeywords = []struct {
		intent string
		words  []string
	}{
		{IntentOrderStatus, []string{"sipariş", "siparis", "kargo", "order", "shipment", "tracking", "nerede"}},
		{IntentDebtInquiry, []string{"borç", "borc", "bakiye", "debt", "balance", "ödeme", "odeme"}},
		{IntentCallbackRequest, []string{"geri ara", "beni ara", "arayın", "arayin", "callback", "call me"}},
		{IntentComplaint, []string{"şikayet", "sikayet", "complaint", "memnun değil", "sorun var", "damaged", "bozuk"}},
	}

	chatterWords = []string{
		"merhaba", "selam", "günaydın", "gunaydin", "iyi günler", "iyi gunler",
		"teşekkür", "tesekkur", "sağol", "sagol", "hello", "hi ", "hey",
		"thanks", "thank you", "görüşürüz", "gorusuruz", "bye",
	}
)

// Classify reads one message deterministically. It never consults the
// model; ambiguity resolves to IntentUnknown and the model takes over.
func Classify(message string) Classification {
	folded := strings.ToLower(strings.TrimSpace(message))
	c := Classification{Intent: IntentUnknown, Slots: map[string]string{}}
	if folded == "" {
		return c
	}

	if m := orderNumberPattern.FindStringSubmatch(message); m != nil {
		c.Slots[models.FieldOrderNumber] = strings.ToUpper(strings.ReplaceAll(strings.ReplaceAll(m[0], " ", "-"), "_", "-"))
	}
	if m := phonePattern.FindString(message); m != "" {
		c.Slots[models.FieldPhone] = strings.TrimSpace(m)
	}

	for _, entry := range intentKeywords {
		for _, word := range entry.words {
			if strings.Contains(folded, word) {
				c.Intent = entry.intent
				return c
			}
		}
	}

	// An order number with no other signal is an order inquiry.
	if _, ok := c.Slots[models.FieldOrderNumber]; ok {
		c.Intent = IntentOrderStatus
		return c
	}

	if isChatter(folded) {
		c.Intent = IntentChatter
		c.Chatter = true
	}
	return c
}

// isChatter reports whether the message is a short pleasantry. Longer
// messages mentioning a greeting still route onward.
func isChatter(folded string) bool {
	if len([]rune(folded)) > 60 {
		return false
	}
	for _, word := range chatterWords {
		if strings.Contains(folded, word) {
			return true
		}
	}
	return false
}
