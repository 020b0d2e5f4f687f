package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults pass",
			mutate: func(*Config) {},
		},
		{
			name:    "zero turn deadline",
			mutate:  func(c *Config) { c.Runtime.TurnDeadline = 0 },
			wantErr: "turn_deadline",
		},
		{
			name:    "zero iteration bound",
			mutate:  func(c *Config) { c.Runtime.MaxIterations = 0 },
			wantErr: "iteration bounds",
		},
		{
			name:    "zero email iteration bound",
			mutate:  func(c *Config) { c.Runtime.EmailIterations = 0 },
			wantErr: "iteration bounds",
		},
		{
			name:    "tool timeout beyond turn deadline",
			mutate:  func(c *Config) { c.Runtime.ToolTimeout = c.Runtime.TurnDeadline + time.Second },
			wantErr: "tool_timeout",
		},
		{
			name:    "missing model",
			mutate:  func(c *Config) { c.LLM.Model = "" },
			wantErr: "llm.model",
		},
		{
			name:    "zero enumeration threshold",
			mutate:  func(c *Config) { c.Guardrails.EnumThreshold = 0 },
			wantErr: "enumeration_threshold",
		},
		{
			name:    "negative max corrections",
			mutate:  func(c *Config) { c.Guardrails.MaxCorrections = -1 },
			wantErr: "max_corrections",
		},
		{
			name: "unknown feature flag",
			mutate: func(c *Config) {
				c.Businesses["biz"] = BusinessConfig{
					Name:         "Biz",
					FeatureFlags: map[string]bool{"typo_flag": true},
				}
			},
			wantErr: "typo_flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMaxIterationsFor(t *testing.T) {
	r := RuntimeConfig{MaxIterations: 2, EmailIterations: 3}
	assert.Equal(t, 3, r.MaxIterationsFor("EMAIL"))
	assert.Equal(t, 2, r.MaxIterationsFor("CHAT"))
	assert.Equal(t, 2, r.MaxIterationsFor("WHATSAPP"))
	assert.Equal(t, 2, r.MaxIterationsFor("PHONE"))
}

func TestBusinessUnknownTenantIsZero(t *testing.T) {
	cfg := defaultConfig()
	business := cfg.Business("nope")
	assert.Empty(t, business.Name)
	assert.False(t, business.FlagEnabled(FlagClassifierEnabled))
}

func TestFlagSnapshotCopies(t *testing.T) {
	cfg := defaultConfig()
	cfg.Businesses["biz"] = BusinessConfig{
		FeatureFlags: map[string]bool{FlagClassifierEnabled: true},
	}

	snapshot := cfg.FlagSnapshot("biz")
	assert.True(t, snapshot[FlagClassifierEnabled])

	// Mutating the snapshot must not touch the configuration.
	snapshot[FlagClassifierEnabled] = false
	assert.True(t, cfg.Businesses["biz"].FeatureFlags[FlagClassifierEnabled])
}
