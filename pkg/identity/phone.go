// Package identity implements the identity pipeline: channel possession
// proof, the verification service with anchor matching, the autoverify
// gate, and PII redaction.
package identity

import (
	"strings"
)

// digitsOf strips everything but ASCII digits.
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeE164 folds any accepted phone format onto E.164. Recognized
// country codes are +90 and +1; leading zeros are stripped; bare
// ten-digit numbers starting with 5 are treated as Turkish mobiles,
// other ten-digit numbers as NANP. The function is idempotent.
func NormalizeE164(raw string) string {
	digits := strings.TrimLeft(digitsOf(raw), "0")
	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "90"):
		return "+" + digits
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return "+" + digits
	case len(digits) == 10 && strings.HasPrefix(digits, "5"):
		return "+90" + digits
	case len(digits) == 10:
		return "+1" + digits
	case digits == "":
		return ""
	default:
		return "+" + digits
	}
}

// nationalNumber strips a recognized country code, leaving the national
// significant number used for cross-format comparison.
func nationalNumber(raw string) string {
	digits := strings.TrimLeft(digitsOf(raw), "0")
	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "90"):
		return digits[2:]
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return digits[1:]
	default:
		return digits
	}
}

// ComparePhones reports whether two phone strings denote the same number
// under flexible country-code folding.
func ComparePhones(a, b string) bool {
	na, nb := nationalNumber(a), nationalNumber(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb
}

// PhoneLast4 returns the last four digits of a phone string, or empty
// when fewer than four digits are present.
func PhoneLast4(raw string) string {
	digits := digitsOf(raw)
	if len(digits) < 4 {
		return ""
	}
	return digits[len(digits)-4:]
}

// PhoneVariants generates the cross-format lookup set for a channel
// phone identity: E.164, bare digits, national number, and the Turkish
// leading-zero convention. Directory rows may store any of them.
func PhoneVariants(raw string) []string {
	digits := digitsOf(raw)
	if digits == "" {
		return nil
	}
	national := nationalNumber(raw)

	seen := map[string]bool{}
	var variants []string
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			variants = append(variants, v)
		}
	}

	add(NormalizeE164(raw))
	add(digits)
	add(national)
	add("0" + national)
	add(strings.TrimLeft(digits, "0"))
	return variants
}
