// Package config loads and validates the concierge.yaml configuration:
// runtime limits, LLM providers, guardrail policy, and the per-tenant
// business registry with feature flags.
package config

import (
	"fmt"
	"time"
)

// Feature flag names. Flags are per-business; unknown flags are rejected
// at validation time so typos cannot silently disable a gate.
const (
	FlagChannelProofAutoverify = "channel_proof_autoverify"
	FlagClassifierEnabled      = "classifier_enabled"
	FlagPolicyGuidance         = "policy_guidance"
	FlagStrictChatter          = "strict_chatter"
)

var knownFlags = map[string]bool{
	FlagChannelProofAutoverify: true,
	FlagClassifierEnabled:      true,
	FlagPolicyGuidance:         true,
	FlagStrictChatter:          true,
}

// Config is the fully-loaded, validated runtime configuration.
type Config struct {
	Runtime    RuntimeConfig             `yaml:"runtime"`
	LLM        LLMConfig                 `yaml:"llm"`
	Guardrails GuardrailsConfig          `yaml:"guardrails"`
	Businesses map[string]BusinessConfig `yaml:"businesses"`
	// Messages holds per-tenant catalog overrides:
	// businessID → message key → language → text.
	Messages map[string]map[string]map[string]string `yaml:"messages,omitempty"`
}

// RuntimeConfig bounds a single turn.
type RuntimeConfig struct {
	TurnDeadline     time.Duration `yaml:"turn_deadline"`
	StateTTL         time.Duration `yaml:"state_ttl"`
	ToolTimeout      time.Duration `yaml:"tool_timeout"`
	ToolMaxRetries   int           `yaml:"tool_max_retries"`
	MaxIterations    int           `yaml:"max_iterations"`
	EmailIterations  int           `yaml:"email_iterations"`
	ThrottlePerMin   int           `yaml:"throttle_per_min"`
	ThrottleBurst    int           `yaml:"throttle_burst"`
	SerializerShards int           `yaml:"serializer_shards"`
}

// MaxIterationsFor returns the tool-loop bound for a channel. Email turns
// get a deeper loop because each exchange is expensive for the user.
func (r RuntimeConfig) MaxIterationsFor(channel string) int {
	if channel == "EMAIL" {
		return r.EmailIterations
	}
	return r.MaxIterations
}

// LLMConfig selects the chat-completions provider.
type LLMConfig struct {
	BaseURL     string  `yaml:"base_url,omitempty"`
	Model       string  `yaml:"model"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	Temperature float32 `yaml:"temperature,omitempty"`
	MaxTokens   int     `yaml:"max_tokens,omitempty"`
}

// GuardrailsConfig tunes the security gateway.
type GuardrailsConfig struct {
	// ToolRequiredIntents lists intents that must go through a tool
	// before any factual claim is made.
	ToolRequiredIntents []string `yaml:"tool_required_intents"`
	// NeverExpose are regex patterns for internal identifiers that must
	// never reach a user.
	NeverExpose []string      `yaml:"never_expose,omitempty"`
	PIILockTTL  time.Duration `yaml:"pii_lock_ttl"`
	EnumLockTTL time.Duration `yaml:"enumeration_lock_ttl"`
	// EnumThreshold is the number of failed verifications that locks the
	// session.
	EnumThreshold int `yaml:"enumeration_threshold"`
	// MaxCorrections caps re-prompt attempts per filter type per turn.
	MaxCorrections int `yaml:"max_corrections"`
	// EgressDenyHosts are hostnames outbound HTTP must never reach, on
	// top of the built-in private-address rules.
	EgressDenyHosts []string `yaml:"egress_deny_hosts,omitempty"`
}

// BusinessConfig is a tenant entry.
type BusinessConfig struct {
	Name         string          `yaml:"name"`
	Language     string          `yaml:"language,omitempty"`
	FeatureFlags map[string]bool `yaml:"feature_flags,omitempty"`
	// AllowedTools restricts the registry for this tenant; empty means
	// every registered tool.
	AllowedTools []string `yaml:"allowed_tools,omitempty"`
}

// FlagEnabled reports whether a feature flag is on for this business.
func (b BusinessConfig) FlagEnabled(flag string) bool {
	return b.FeatureFlags[flag]
}

// Business returns the tenant entry, or a zero value when unknown.
func (c *Config) Business(businessID string) BusinessConfig {
	return c.Businesses[businessID]
}

// FlagSnapshot returns a copy of the tenant's feature flags for
// telemetry.
func (c *Config) FlagSnapshot(businessID string) map[string]bool {
	flags := c.Businesses[businessID].FeatureFlags
	snapshot := make(map[string]bool, len(flags))
	for name, on := range flags {
		snapshot[name] = on
	}
	return snapshot
}

// validate checks invariants the rest of the system relies on.
func (c *Config) validate() error {
	if c.Runtime.TurnDeadline <= 0 {
		return fmt.Errorf("runtime.turn_deadline must be positive")
	}
	if c.Runtime.MaxIterations < 1 || c.Runtime.EmailIterations < 1 {
		return fmt.Errorf("iteration bounds must be at least 1")
	}
	if c.Runtime.ToolTimeout <= 0 || c.Runtime.ToolTimeout > c.Runtime.TurnDeadline {
		return fmt.Errorf("runtime.tool_timeout must be positive and within the turn deadline")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if c.Guardrails.EnumThreshold < 1 {
		return fmt.Errorf("guardrails.enumeration_threshold must be at least 1")
	}
	if c.Guardrails.MaxCorrections < 0 {
		return fmt.Errorf("guardrails.max_corrections must not be negative")
	}
	for businessID, business := range c.Businesses {
		for flag := range business.FeatureFlags {
			if !knownFlags[flag] {
				return fmt.Errorf("business %q: unknown feature flag %q", businessID, flag)
			}
		}
	}
	return nil
}
