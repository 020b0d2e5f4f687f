package identity

import (
	"strings"
)

// MaskPhone masks a phone number down to country code plus last four
// digits: "+14245275089" → "+1******5089". Unparseable inputs keep only
// their last four digits.
func MaskPhone(raw string) string {
	if raw == "" {
		return ""
	}
	e164 := NormalizeE164(raw)
	digits := digitsOf(e164)
	if len(digits) < 4 {
		return "****"
	}
	last4 := digits[len(digits)-4:]
	national := nationalNumber(e164)
	cc := strings.TrimSuffix(e164, national)
	if cc == "" || cc == "+" {
		return "******" + last4
	}
	return cc + "******" + last4
}

// MaskEmail masks the local part down to its first rune: "ahmet@x.com"
// → "a***@x.com".
func MaskEmail(raw string) string {
	at := strings.Index(raw, "@")
	if at <= 0 {
		return "***"
	}
	local := []rune(raw[:at])
	return string(local[0]) + "***" + raw[at:]
}

// redacted fields are matched on canonical names after folding.
var (
	phoneFields  = map[string]bool{"phone": true, "customer_phone": true, "phone_number": true, "msisdn": true}
	emailFields  = map[string]bool{"email": true, "customer_email": true, "e_mail": true}
	hiddenFields = map[string]bool{"tc": true, "tckn": true, "tc_no": true, "vkn": true, "tax_number": true}
)

// RedactRecord returns a copy of a structured record with PII masked:
// phones masked to country code + last four, emails to first rune +
// domain, national/tax IDs fully hidden. The input is never mutated.
// Redaction happens BEFORE data reaches any user-facing layer, the LLM
// included, even after verification.
func RedactRecord(record map[string]any) map[string]any {
	if record == nil {
		return nil
	}
	out := make(map[string]any, len(record))
	for key, value := range record {
		out[key] = redactValue(strings.ToLower(key), value)
	}
	return out
}

func redactValue(key string, value any) any {
	switch v := value.(type) {
	case string:
		switch {
		case phoneFields[key]:
			return MaskPhone(v)
		case emailFields[key]:
			return MaskEmail(v)
		case hiddenFields[key]:
			return "***"
		default:
			return v
		}
	case map[string]any:
		return RedactRecord(v)
	case []map[string]any:
		items := make([]map[string]any, len(v))
		for i, item := range v {
			items[i] = RedactRecord(item)
		}
		return items
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			if m, ok := item.(map[string]any); ok {
				items[i] = RedactRecord(m)
			} else {
				items[i] = item
			}
		}
		return items
	default:
		return value
	}
}
