package guardrails

import (
	"regexp"
	"strings"
)

// InputFinding is the pre-model reading of a user message.
type InputFinding struct {
	// ContentSafety marks threats, self-harm, and abuse. Terminal: the
	// turn is refused without a model call.
	ContentSafety bool
	// InjectionCritical marks blatant instruction-override attempts.
	// Terminal refusal, no model call.
	InjectionCritical bool
	// InjectionSuspected marks weaker injection signals. The turn
	// proceeds with the hardening context switched on.
	InjectionSuspected bool
	Reasons            []string
}

var (
	injectionCriticalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)ignore (all |your |the )?(previous|prior|above) (instructions|rules|prompts?)`),
		regexp.MustCompile(`(?i)(reveal|show|print|repeat) (your |the )?(system )?(prompt|instructions)`),
		regexp.MustCompile(`(?i)you are (now|no longer) (a|an|bound)`),
		regexp.MustCompile(`(?i)(önceki|yukarıdaki) (talimatları|kuralları) (yok say|unut|görmezden gel)`),
		regexp.MustCompile(`(?i)sistem (komutunu|promptunu|talimatını) (göster|yaz|söyle)`),
		regexp.MustCompile(`(?i)\bDAN mode\b`),
	}

	injectionSuspectPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)pretend (to be|you are)`),
		regexp.MustCompile(`(?i)act as (if|a|an)`),
		regexp.MustCompile(`(?i)new instructions?:`),
		regexp.MustCompile(`(?i)\[system\]`),
		regexp.MustCompile(`(?i)rol yap`),
		regexp.MustCompile("```"),
	}

	contentSafetyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(kill|hurt|bomb|attack) (you|him|her|them|people)\b`),
		regexp.MustCompile(`(?i)(seni|sizi) (öldür|gebertir)`),
		regexp.MustCompile(`(?i)kendimi öldür`),
		regexp.MustCompile(`(?i)\bkill myself\b`),
	}
)

// InspectInput runs the deterministic pre-model safety checks.
func InspectInput(message string) InputFinding {
	finding := InputFinding{}
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return finding
	}

	for _, p := range contentSafetyPatterns {
		if p.MatchString(trimmed) {
			finding.ContentSafety = true
			finding.Reasons = append(finding.Reasons, "content_safety")
			break
		}
	}
	for _, p := range injectionCriticalPatterns {
		if p.MatchString(trimmed) {
			finding.InjectionCritical = true
			finding.Reasons = append(finding.Reasons, "injection_critical")
			break
		}
	}
	if !finding.InjectionCritical {
		for _, p := range injectionSuspectPatterns {
			if p.MatchString(trimmed) {
				finding.InjectionSuspected = true
				finding.Reasons = append(finding.Reasons, "injection_suspected")
				break
			}
		}
	}
	return finding
}
