package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: "api_key_env: {{.KEY_NAME}}",
			env:   map[string]string{"KEY_NAME": "OPENAI_API_KEY"},
			want:  "api_key_env: OPENAI_API_KEY",
		},
		{
			name:  "literal ${VAR} is NOT expanded (no collision)",
			input: "pattern: ${USER_ID}",
			env:   map[string]string{"USER_ID": "123"},
			want:  "pattern: ${USER_ID}",
		},
		{
			name:  "regex anchor $ preserved in never_expose pattern",
			input: `never_expose:` + "\n" + `  - "^cust-[0-9a-f]+$"`,
			env:   map[string]string{},
			want:  `never_expose:` + "\n" + `  - "^cust-[0-9a-f]+$"`,
		},
		{
			name:  "literal dollar in password preserved",
			input: "password: p@ss$word",
			env:   map[string]string{},
			want:  "password: p@ss$word",
		},
		{
			name:  "multiple substitutions in one line",
			input: "base_url: {{.PROTOCOL}}://{{.HOST}}/v1",
			env: map[string]string{
				"PROTOCOL": "https",
				"HOST":     "llm.internal.example.com",
			},
			want: "base_url: https://llm.internal.example.com/v1",
		},
		{
			name:  "missing variable expands to empty",
			input: "base_url: {{.MISSING_VAR}}",
			env:   map[string]string{},
			want:  "base_url: ",
		},
		{
			name:  "variables in nested YAML structure",
			input: "businesses:\n  demo:\n    name: {{.BRAND}}",
			env:   map[string]string{"BRAND": "Demo Market"},
			want:  "businesses:\n  demo:\n    name: Demo Market",
		},
		{
			name:  "no substitution when no variables",
			input: "static: value",
			env:   map[string]string{"UNUSED": "value"},
			want:  "static: value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(result))
		})
	}
}

// Malformed template syntax must pass through unchanged so the YAML
// parser can report it, and must never leak environment values.
func TestExpandEnvMalformedTemplatePassesThrough(t *testing.T) {
	t.Setenv("API_KEY", "should-not-appear")

	inputs := []string{
		"api_key: {{.API_KEY",
		"api_key: {{",
		"api_key: {{.API KEY}}",
		"api_key: {{API_KEY}}",
	}
	for _, input := range inputs {
		result := ExpandEnv([]byte(input))
		assert.Equal(t, input, string(result))
		assert.NotContains(t, string(result), "should-not-appear")
	}
}

func TestExpandEnvWithEmptyInput(t *testing.T) {
	assert.Empty(t, string(ExpandEnv([]byte(""))))
}
