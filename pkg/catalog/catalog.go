// Package catalog selects user-visible messages by key, language, and
// tenant. User-visible strings are never composed from raw errors; every
// deterministic reply the pipeline produces comes from here.
package catalog

import (
	"strings"
)

// Message keys. Keys are contractual: telemetry and tests reference them.
const (
	KeySessionLocked       = "session_locked"
	KeySessionLockedPII    = "session_locked_pii"
	KeySessionLockedEnum   = "session_locked_enumeration"
	KeySessionTerminated   = "session_terminated"
	KeyThrottled           = "session_throttled"
	KeyContentSafety       = "content_safety_refusal"
	KeyInjectionRefusal    = "injection_refusal"
	KeyVerificationAsk     = "verification_ask_phone_last4"
	KeyVerificationAskName = "verification_ask_name"
	KeyVerificationFailed  = "verification_mismatch"
	KeyIdentityMismatch    = "identity_mismatch"
	KeyRecordNotFound      = "record_not_found"
	KeyToolFailure         = "tool_failure"
	KeyTurnTimeout         = "turn_timeout"
	KeyFatalError          = "fatal_error"
	KeySafeFallback        = "safe_fallback"
	KeyFirewallSoft        = "firewall_soft_refusal"
	KeyNeedIdentifier      = "need_identifier"
	KeyPolicyRefund        = "policy_refund_guidance"
	KeyPolicyReturn        = "policy_return_guidance"
	KeyPolicyCancel        = "policy_cancel_guidance"
)

// Severity selects a variant when a key carries more than one register.
type Severity string

// Severity levels.
const (
	SeverityInfo     Severity = "info"
	SeverityCritical Severity = "critical"
)

// DefaultLanguage is used when the request carries no language or the
// catalog has no entry for the requested one.
const DefaultLanguage = "tr"

// Catalog resolves messages with per-tenant overrides layered over the
// built-in set. Safe for concurrent use after construction.
type Catalog struct {
	builtin map[string]map[string]string            // key → lang → text
	tenant  map[string]map[string]map[string]string // businessID → key → lang → text
}

// New builds a catalog from the built-in messages plus tenant overrides
// (businessID → key → lang → text). overrides may be nil.
func New(overrides map[string]map[string]map[string]string) *Catalog {
	return &Catalog{builtin: builtinMessages, tenant: overrides}
}

// Get resolves a message. Resolution order: tenant override in the
// requested language, tenant override in the default language, built-in
// in the requested language, built-in in the default language. Unknown
// keys resolve to the safe fallback so a missing catalog entry can never
// surface an empty reply.
func (c *Catalog) Get(businessID, key, lang string) string {
	if lang == "" {
		lang = DefaultLanguage
	}
	if byKey, ok := c.tenant[businessID]; ok {
		if byLang, ok := byKey[key]; ok {
			if text, ok := byLang[lang]; ok {
				return text
			}
			if text, ok := byLang[DefaultLanguage]; ok {
				return text
			}
		}
	}
	if byLang, ok := c.builtin[key]; ok {
		if text, ok := byLang[lang]; ok {
			return text
		}
		if text, ok := byLang[DefaultLanguage]; ok {
			return text
		}
	}
	return c.builtin[KeySafeFallback][lang2(lang)]
}

// Render resolves a message and substitutes {placeholder} arguments.
func (c *Catalog) Render(businessID, key, lang string, args map[string]string) string {
	text := c.Get(businessID, key, lang)
	for name, value := range args {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

func lang2(lang string) string {
	if lang == "en" {
		return "en"
	}
	return DefaultLanguage
}
