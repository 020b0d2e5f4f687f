package identity

import (
	"strings"

	"github.com/desteklab/concierge/pkg/catalog"
	"github.com/desteklab/concierge/pkg/models"
)

// MatchField names which anchor field satisfied a verification attempt.
type MatchField string

// Match fields, in attempt order.
const (
	MatchPhoneLast4 MatchField = "phone_last4"
	MatchName       MatchField = "name"
	MatchFullPhone  MatchField = "phone"
	MatchNone       MatchField = ""
)

// Verifier implements anchor construction and verification matching.
type Verifier struct {
	catalog *catalog.Catalog
}

// NewVerifier creates a Verifier using the given message catalog.
func NewVerifier(cat *catalog.Catalog) *Verifier {
	return &Verifier{catalog: cat}
}

// RequiresVerification reports whether a query type needs identity
// verification. Always true: no query type is PII-free.
func (v *Verifier) RequiresVerification(queryType string) bool {
	return true
}

// CreateAnchor builds a verification anchor from a persisted record,
// copying only identity-relevant fields. Anchors are never built from
// untrusted input.
func CreateAnchor(record map[string]any, anchorType, value, sourceTable string) *models.Anchor {
	anchor := &models.Anchor{
		Value:       value,
		AnchorType:  anchorType,
		SourceTable: sourceTable,
	}
	anchor.ID, _ = record["id"].(string)
	anchor.CustomerID, _ = record["customer_id"].(string)
	anchor.Name, _ = record["customer_name"].(string)
	if anchor.Name == "" {
		anchor.Name, _ = record["name"].(string)
	}
	anchor.Phone, _ = record["customer_phone"].(string)
	if anchor.Phone == "" {
		anchor.Phone, _ = record["phone"].(string)
	}
	anchor.Email, _ = record["customer_email"].(string)
	if anchor.Email == "" {
		anchor.Email, _ = record["email"].(string)
	}
	return anchor
}

// AskPrompt picks the verification question for an anchor: phone last
// four when the anchor has a phone on file, full name otherwise.
func (v *Verifier) AskPrompt(businessID string, anchor *models.Anchor, language string) string {
	if anchor != nil && PhoneLast4(anchor.Phone) != "" {
		return v.catalog.Get(businessID, catalog.KeyVerificationAsk, language)
	}
	return v.catalog.Get(businessID, catalog.KeyVerificationAskName, language)
}

// VerifyAgainstAnchor runs the ordered verification attempts against an
// anchor:
//
//  1. Exactly four digits → compare against the anchor phone's last four.
//  2. Turkish-aware name comparison against the anchor name.
//  3. Ten or more digits → full E.164 phone comparison.
//
// Returns the matched field, or MatchNone.
func (v *Verifier) VerifyAgainstAnchor(anchor *models.Anchor, input string) MatchField {
	if anchor == nil {
		return MatchNone
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return MatchNone
	}

	digits := digitsOf(input)
	if len(digits) == 4 && len(strings.TrimSpace(strings.Trim(input, "0123456789 "))) == 0 {
		if last4 := PhoneLast4(anchor.Phone); last4 != "" && last4 == digits {
			return MatchPhoneLast4
		}
		return MatchNone
	}

	if anchor.Name != "" && CompareTurkishNames(input, anchor.Name) {
		return MatchName
	}

	if len(digits) >= 10 && anchor.Phone != "" && ComparePhones(input, anchor.Phone) {
		return MatchFullPhone
	}

	return MatchNone
}

// MinimalResult shapes the pre-verification view of a record: only a
// coarse status field, nothing identifying.
func MinimalResult(record map[string]any) map[string]any {
	minimal := map[string]any{}
	if status, ok := record["status"]; ok {
		minimal["status"] = status
	}
	return minimal
}

// FullResult shapes the post-verification view: the record with the PII
// redactor applied. Redaction runs even after verification; the LLM
// never sees a raw phone, email, or national ID.
func FullResult(record map[string]any) map[string]any {
	return RedactRecord(record)
}
