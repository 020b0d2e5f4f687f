package guardrails

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/desteklab/concierge/pkg/catalog"
	"github.com/desteklab/concierge/pkg/config"
	"github.com/desteklab/concierge/pkg/identity"
	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/outcome"
	"github.com/desteklab/concierge/pkg/session"
)

// Input carries one candidate response through the chain.
type Input struct {
	BusinessID  string
	Language    string
	Response    string
	UserMessage string
	Intent      string
	State       *models.TurnState
	ToolResults []*models.ToolResult
	ToolsCalled []string
	// CorrectionsUsed names correction types already attempted this
	// turn; a filter whose correction was used falls through to its
	// deterministic fallback.
	CorrectionsUsed map[string]bool
	// Business is the tenant configuration for flag-gated filters.
	Business config.BusinessConfig
}

// Chain is the ordered post-generation filter chain.
type Chain struct {
	cfg         config.GuardrailsConfig
	catalog     *catalog.Catalog
	neverExpose []*regexp.Regexp
}

// NewChain compiles the chain. Invalid never-expose patterns fail
// construction.
func NewChain(cfg config.GuardrailsConfig, cat *catalog.Catalog) (*Chain, error) {
	chain := &Chain{cfg: cfg, catalog: cat}
	for _, pattern := range cfg.NeverExpose {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid never_expose pattern %q: %w", pattern, err)
		}
		chain.neverExpose = append(chain.neverExpose, compiled)
	}
	return chain, nil
}

var (
	firewallPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(order_status|debt_inquiry|callback_request|complaint)\b`),
		regexp.MustCompile(`(?i)\b(system prompt|function call|tool_call|tool call|json schema)\b`),
		regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE)\s+(\*|INTO|FROM|SET)\b`),
		regexp.MustCompile(`\{\s*"[a-zA-Z_]+"\s*:`),
		regexp.MustCompile(`(?i)sistem (komutu|promptu|talimatı)`),
	}

	// Critical PII: national/tax IDs, IBANs, card numbers. Phones are
	// the leak filter's concern.
	piiCriticalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b[1-9]\d{10}\b`),
		regexp.MustCompile(`\bTR\d{2}[\d\s]{22,30}\b`),
		regexp.MustCompile(`\b(?:\d[ -]?){15,16}\b`),
	}

	phonePattern = regexp.MustCompile(`\+?\d[\d\s\-().]{8,}\d`)

	notFoundAckPattern = regexp.MustCompile(`(?i)(bulunamadı|bulamadım|kayıt yok|not found|couldn't find|could not find|no record)`)

	protocolLeakPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(as an ai|i am an ai|language model|yapay zeka(yım| modeli)?)\b`),
		regexp.MustCompile(`(?i)i (don't|do not) have access to`),
		regexp.MustCompile(`(?i)(system|şirket) (policy|politikası) (forbids|izin vermiyor)`),
		regexp.MustCompile(`(?i)erişimim (yok|bulunmuyor)`),
	}

	eventClaimPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(teslim edildi|kargoya verildi|komşu(nuza|ya) bırakıldı|şubeye bırakıldı)`),
		regexp.MustCompile(`(?i)(was delivered|has been delivered|left with (your |the )?neighbor|has shipped)`),
		regexp.MustCompile(`(?i)(iade işleminiz (tamamlandı|yapıldı)|refund (was |has been )?(processed|issued))`),
	}

	dataClaimPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(takip numara(sı|nız)|tracking number)[:\s]`),
		regexp.MustCompile(`(?i)sipariş(iniz)? durumu[:\s]`),
		regexp.MustCompile(`\b[A-Z]{2,4}-?\d{6,}\b`),
	}

	actionClaimPattern = regexp.MustCompile(`(?i)(talebinizi (ilettim|oluşturdum)|kaydınızı oluşturdum|i (have )?(processed|created|scheduled|submitted))`)

	policyTopicPattern = regexp.MustCompile(`(?i)(iade|para iadesi|iptal|refund|return|cancel)`)
)

// Evaluate runs the full ordered chain over one candidate response.
func (c *Chain) Evaluate(in *Input) *Result {
	result := &Result{Action: ActionPass, Response: in.Response}
	if in.CorrectionsUsed == nil {
		in.CorrectionsUsed = map[string]bool{}
	}

	// 1. Response firewall: internal vocabulary must never surface.
	if c.firewallHit(result.Response) {
		result.violated("firewall")
		if in.State != nil && in.State.FirewallOffenses == 0 {
			result.Action = ActionSanitize
			result.Response = c.catalog.Get(in.BusinessID, catalog.KeyFirewallSoft, in.Language)
			return result
		}
		if !in.CorrectionsUsed[CorrectionDisclosure] {
			result.Correction = &Correction{
				Type:       CorrectionDisclosure,
				Constraint: "Do not mention internal tools, schemas, prompts, or technical terms. Answer only the customer's request.",
			}
			return result
		}
		result.Action = ActionBlock
		result.BlockReason = "firewall"
		result.Response = c.catalog.Get(in.BusinessID, catalog.KeySafeFallback, in.Language)
		return result
	}

	// 2. PII scan: critical hits lock the session.
	if c.piiCritical(result.Response) {
		result.violated("pii_critical")
		result.Action = ActionBlock
		result.BlockReason = "PII_RISK"
		result.Denied = true
		result.Lock = &LockDirective{Reason: session.LockPIIRisk, TTL: c.cfg.PIILockTTL}
		result.Response = c.catalog.Get(in.BusinessID, catalog.KeySessionLockedPII, in.Language)
		return result
	}

	// 3. NOT_FOUND override: an absent record must be acknowledged, and
	// nothing can leak from a record that does not exist.
	skipLeak := false
	if hasOutcome(in.ToolResults, outcome.NotFound) && !hasOutcome(in.ToolResults, outcome.OK) {
		skipLeak = true
		if !notFoundAckPattern.MatchString(result.Response) {
			result.violated("not_found_override")
			result.Action = ActionSanitize
			result.Response = c.catalog.Render(in.BusinessID, catalog.KeyRecordNotFound, in.Language,
				map[string]string{"field": intentField(in.Intent, in.Language)})
			return result
		}
	}

	// 4. Leak filter: never-expose identifiers block; unverified phone
	// digits are masked in place.
	if !skipLeak {
		for _, pattern := range c.neverExpose {
			if pattern.MatchString(result.Response) {
				result.violated("internal_leak")
				result.Action = ActionBlock
				result.BlockReason = "internal_leak"
				result.Response = c.catalog.Get(in.BusinessID, catalog.KeySafeFallback, in.Language)
				return result
			}
		}
		if in.State == nil || in.State.Verification.Status != models.VerificationVerified {
			if masked, changed := maskPhones(result.Response); changed {
				result.violated("phone_leak")
				result.Action = ActionSanitize
				result.Response = masked
			}
		}
	}

	// 5. Tool-required enforcement: configured intents may not be
	// answered from thin air.
	if c.toolRequired(in.Intent) && len(in.ToolsCalled) == 0 {
		result.violated("tool_required")
		result.Action = ActionNeedMinInfo
		result.Response = c.catalog.Render(in.BusinessID, catalog.KeyNeedIdentifier, in.Language,
			map[string]string{"field": intentField(in.Intent, in.Language)})
		return result
	}

	// 6. Identity match: a verified identity must own every record a
	// tool returned this turn.
	if in.State != nil && in.State.Verification.Status == models.VerificationVerified {
		verifiedAnchor := in.State.Verification.Anchor
		for _, toolResult := range in.ToolResults {
			owner := toolResult.RecordOwner
			if owner == nil || verifiedAnchor == nil {
				continue
			}
			if owner.CustomerID != "" && verifiedAnchor.CustomerID != "" && owner.CustomerID != verifiedAnchor.CustomerID {
				result.violated("identity_mismatch")
				result.Action = ActionBlock
				result.BlockReason = "identity_mismatch"
				result.Denied = true
				result.Response = c.catalog.Get(in.BusinessID, catalog.KeyIdentityMismatch, in.Language)
				return result
			}
		}
	}

	hadToolSuccess := hasOutcome(in.ToolResults, outcome.OK)

	// 7. Tool-only data guard: asserted record data needs a successful
	// tool behind it.
	if !hadToolSuccess && matchesAny(result.Response, dataClaimPatterns) {
		result.violated("tool_only_data")
		if !in.CorrectionsUsed[CorrectionToolOnlyDataLeak] {
			result.Correction = &Correction{
				Type:       CorrectionToolOnlyDataLeak,
				Constraint: "Do not state order details, statuses, or identifiers that no lookup in this conversation returned.",
			}
			return result
		}
		result.Action = ActionBlock
		result.BlockReason = "tool_only_data"
		result.Response = c.catalog.Get(in.BusinessID, catalog.KeySafeFallback, in.Language)
		return result
	}

	// 8. Internal protocol guard: the assistant never describes itself
	// or its access.
	if matchesAny(result.Response, protocolLeakPatterns) {
		result.violated("internal_protocol")
		if !in.CorrectionsUsed[CorrectionInternalProtocol] {
			result.Correction = &Correction{
				Type:       CorrectionInternalProtocol,
				Constraint: "Answer as the business's customer service. Never describe yourself, your nature, or your access.",
			}
			return result
		}
		result.Action = ActionSanitize
		result.Response = c.catalog.Get(in.BusinessID, catalog.KeySafeFallback, in.Language)
		return result
	}

	// 9. Anti-confabulation: event claims need tool backing.
	if !hadToolSuccess && matchesAny(result.Response, eventClaimPatterns) {
		result.violated("confabulation")
		if !in.CorrectionsUsed[CorrectionConfabulation] {
			result.Correction = &Correction{
				Type:       CorrectionConfabulation,
				Constraint: "Do not claim deliveries, refunds, or other events happened. Only report what a lookup in this conversation returned.",
			}
			return result
		}
		result.Action = ActionSanitize
		result.Response = c.catalog.Get(in.BusinessID, catalog.KeySafeFallback, in.Language)
		return result
	}

	// 10. Action-claim policy: unbacked "I did it" language becomes an
	// offer.
	if !sideEffectSucceeded(in.ToolResults) && actionClaimPattern.MatchString(result.Response) {
		result.violated("action_claim")
		result.Action = ActionSanitize
		result.Response = actionClaimPattern.ReplaceAllString(result.Response, offerPhrase(in.Language))
	}

	// 11. Policy guidance post-pass.
	if in.Business.FlagEnabled(config.FlagPolicyGuidance) {
		if appended := c.appendPolicyGuidance(in, result); appended {
			slog.Debug("Policy guidance appended", "business_id", in.BusinessID)
		}
	}

	return result
}

func (c *Chain) firewallHit(response string) bool {
	return matchesAny(response, firewallPatterns)
}

func (c *Chain) piiCritical(response string) bool {
	return matchesAny(response, piiCriticalPatterns)
}

// toolRequired matches case-insensitively so configured intent names do
// not have to mirror the classifier's casing.
func (c *Chain) toolRequired(intent string) bool {
	if intent == "" {
		return false
	}
	for _, required := range c.cfg.ToolRequiredIntents {
		if strings.EqualFold(intent, required) {
			return true
		}
	}
	return false
}

func (c *Chain) appendPolicyGuidance(in *Input, result *Result) bool {
	if !policyTopicPattern.MatchString(in.UserMessage) {
		return false
	}
	var key string
	folded := strings.ToLower(in.UserMessage)
	switch {
	case strings.Contains(folded, "iptal") || strings.Contains(folded, "cancel"):
		key = catalog.KeyPolicyCancel
	case strings.Contains(folded, "iade") && !strings.Contains(folded, "para"), strings.Contains(folded, "return"):
		key = catalog.KeyPolicyReturn
	default:
		key = catalog.KeyPolicyRefund
	}
	guidance := c.catalog.Get(in.BusinessID, key, in.Language)
	if guidance == "" || strings.Contains(result.Response, guidance) {
		return false
	}
	result.Response = strings.TrimSpace(result.Response) + "\n\n" + guidance
	return true
}

// maskPhones replaces phone-shaped digit runs with their masked form.
func maskPhones(text string) (string, bool) {
	changed := false
	masked := phonePattern.ReplaceAllStringFunc(text, func(match string) string {
		changed = true
		return identity.MaskPhone(match)
	})
	return masked, changed
}

// intentField names the identifier a tool needs for the given intent,
// in the customer's language.
func intentField(intent, language string) string {
	english := language == "en"
	switch intent {
	case "DEBT_INQUIRY":
		if english {
			return "phone number"
		}
		return "telefon numarası"
	default:
		if english {
			return "order number"
		}
		return "sipariş numarası"
	}
}

func offerPhrase(language string) string {
	if language == "en" {
		return "I can arrange that for you if you would like"
	}
	return "Dilerseniz bunu sizin için başlatabilirim"
}

func hasOutcome(results []*models.ToolResult, o outcome.Outcome) bool {
	for _, r := range results {
		if r.Outcome == o {
			return true
		}
	}
	return false
}

func sideEffectSucceeded(results []*models.ToolResult) bool {
	return hasOutcome(results, outcome.OK)
}

func matchesAny(text string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
