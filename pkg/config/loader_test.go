package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	return dir
}

func TestInitializeDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 45*time.Second, cfg.Runtime.TurnDeadline)
	assert.Equal(t, 24*time.Hour, cfg.Runtime.StateTTL)
	assert.Equal(t, 2, cfg.Runtime.MaxIterations)
	assert.Equal(t, 3, cfg.Runtime.EmailIterations)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 3, cfg.Guardrails.EnumThreshold)
	assert.Equal(t, 1, cfg.Guardrails.MaxCorrections)
	assert.Contains(t, cfg.Guardrails.ToolRequiredIntents, "order_status")
}

func TestInitializeMergesOverDefaults(t *testing.T) {
	dir := writeConfigFile(t, `
runtime:
  max_iterations: 4
guardrails:
  never_expose:
    - "^cust-[0-9a-f]+$"
businesses:
  demo-market:
    name: Demo Market
    language: tr
    feature_flags:
      classifier_enabled: true
`)
	cfg, err := Initialize(dir)
	require.NoError(t, err)

	// Overridden values win, untouched defaults survive the merge.
	assert.Equal(t, 4, cfg.Runtime.MaxIterations)
	assert.Equal(t, 45*time.Second, cfg.Runtime.TurnDeadline)
	assert.Equal(t, 3, cfg.Runtime.EmailIterations)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Contains(t, cfg.Guardrails.ToolRequiredIntents, "debt_inquiry")

	// The regex keeps its trailing anchor through env expansion.
	require.Len(t, cfg.Guardrails.NeverExpose, 1)
	assert.Equal(t, "^cust-[0-9a-f]+$", cfg.Guardrails.NeverExpose[0])

	business := cfg.Business("demo-market")
	assert.Equal(t, "Demo Market", business.Name)
	assert.True(t, business.FlagEnabled(FlagClassifierEnabled))
	assert.False(t, business.FlagEnabled(FlagChannelProofAutoverify))
}

func TestInitializeExpandsEnvironment(t *testing.T) {
	t.Setenv("BRAND_NAME", "Telyx Market")
	dir := writeConfigFile(t, `
businesses:
  telyx:
    name: "{{.BRAND_NAME}}"
`)
	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, "Telyx Market", cfg.Business("telyx").Name)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := writeConfigFile(t, "runtime: [broken")

	_, err := Initialize(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestInitializeRejectsUnknownFeatureFlag(t *testing.T) {
	dir := writeConfigFile(t, `
businesses:
  demo:
    name: Demo
    feature_flags:
      clasifier_enabled: true
`)
	_, err := Initialize(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown feature flag")
	assert.Contains(t, err.Error(), "clasifier_enabled")
}

func TestInitializeRejectsToolTimeoutBeyondDeadline(t *testing.T) {
	dir := writeConfigFile(t, `
runtime:
  turn_deadline: 5s
  tool_timeout: 8s
`)
	_, err := Initialize(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool_timeout")
}

func TestInitializeLoadsMessageOverrides(t *testing.T) {
	dir := writeConfigFile(t, `
messages:
  demo-market:
    safe_fallback:
      tr: "Size nasıl yardımcı olabilirim?"
`)
	cfg, err := Initialize(dir)
	require.NoError(t, err)
	require.Contains(t, cfg.Messages, "demo-market")
	assert.Equal(t, "Size nasıl yardımcı olabilirim?", cfg.Messages["demo-market"]["safe_fallback"]["tr"])
}
