package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desteklab/concierge/pkg/config"
	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/tools"
)

type defTool struct{ def tools.Definition }

func (d *defTool) Definition() tools.Definition { return d.def }
func (d *defTool) Execute(_ context.Context, _ *tools.Invocation) (*models.ToolResult, error) {
	return nil, nil
}

func TestBuild(t *testing.T) {
	bc := BuildContext{
		Business: config.BusinessConfig{Name: "Kardelen Market"},
		Language: "tr",
		State:    models.NewTurnState(),
		History: []models.ChatLogEntry{
			{Role: "user", Text: "merhaba"},
			{Role: "assistant", Text: "Merhaba, nasıl yardımcı olabilirim?"},
		},
		UserMessage: "ORD-1001 nerede?",
		Tools: []tools.Tool{
			&defTool{def: tools.Definition{
				Name:        "order_status",
				Description: "Look up an order.",
				Parameters:  map[string]any{"type": "object"},
			}},
		},
	}

	req := Build(bc)

	assert.Contains(t, req.System, "Kardelen Market")
	assert.Contains(t, req.System, "Turkish")

	require.Len(t, req.Messages, 3)
	assert.Equal(t, RoleUser, req.Messages[0].Role)
	assert.Equal(t, RoleAssistant, req.Messages[1].Role)
	assert.Equal(t, "ORD-1001 nerede?", req.Messages[2].Content)

	require.Len(t, req.Tools, 1)
	assert.Equal(t, "order_status", req.Tools[0].Name)
}

func TestBuild_HistoryLimit(t *testing.T) {
	history := make([]models.ChatLogEntry, 30)
	for i := range history {
		history[i] = models.ChatLogEntry{Role: "user", Text: "msg"}
	}

	req := Build(BuildContext{History: history, UserMessage: "x", HistoryLimit: 10})
	assert.Len(t, req.Messages, 11)
}

func TestSystemPrompt_Flags(t *testing.T) {
	t.Run("injection hardening block", func(t *testing.T) {
		prompt := systemPrompt(BuildContext{InjectionSuspected: true})
		assert.True(t, strings.Contains(prompt, "untrusted customer data"))
	})

	t.Run("pending verification block", func(t *testing.T) {
		state := models.NewTurnState()
		state.Verification.Status = models.VerificationPending
		prompt := systemPrompt(BuildContext{State: state})
		assert.Contains(t, prompt, "verification is in progress")
	})

	t.Run("strict chatter flag", func(t *testing.T) {
		business := config.BusinessConfig{FeatureFlags: map[string]bool{config.FlagStrictChatter: true}}
		prompt := systemPrompt(BuildContext{Business: business})
		assert.Contains(t, prompt, "Stay on customer service topics")
	})

	t.Run("english language", func(t *testing.T) {
		prompt := systemPrompt(BuildContext{Language: "en"})
		assert.Contains(t, prompt, "English")
	})
}
