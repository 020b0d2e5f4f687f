package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the primary configuration file inside the config dir.
const ConfigFileName = "concierge.yaml"

// Initialize loads, merges, and validates configuration.
//
// Steps performed:
//  1. Read concierge.yaml from configDir (optional — defaults apply)
//  2. Expand environment variables ({{.VAR}} template syntax)
//  3. Parse YAML
//  4. Merge user config over built-in defaults
//  5. Validate
func Initialize(configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := defaultConfig()

	path := filepath.Join(configDir, ConfigFileName)
	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		log.Warn("No configuration file found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	default:
		expanded := ExpandEnv(raw)
		var user Config
		if err := yaml.Unmarshal(expanded, &user); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
		}
		if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge configuration: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log.Info("Configuration initialized",
		"businesses", len(cfg.Businesses),
		"tool_required_intents", len(cfg.Guardrails.ToolRequiredIntents))
	return cfg, nil
}

// defaultConfig is the built-in baseline user config merges over.
func defaultConfig() *Config {
	return &Config{
		Runtime: RuntimeConfig{
			TurnDeadline:     45 * time.Second,
			StateTTL:         24 * time.Hour,
			ToolTimeout:      8 * time.Second,
			ToolMaxRetries:   2,
			MaxIterations:    2,
			EmailIterations:  3,
			ThrottlePerMin:   20,
			ThrottleBurst:    5,
			SerializerShards: 64,
		},
		LLM: LLMConfig{
			Model:       "gpt-4o-mini",
			APIKeyEnv:   "OPENAI_API_KEY",
			Temperature: 0.2,
			MaxTokens:   1024,
		},
		Guardrails: GuardrailsConfig{
			ToolRequiredIntents: []string{"product_spec", "stock_check", "order_status", "debt_inquiry"},
			PIILockTTL:          time.Hour,
			EnumLockTTL:         time.Hour,
			EnumThreshold:       3,
			MaxCorrections:      1,
		},
		Businesses: map[string]BusinessConfig{},
	}
}
