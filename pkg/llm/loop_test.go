package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/outcome"
	"github.com/desteklab/concierge/pkg/tools"
)

// scriptedClient replays canned responses in order.
type scriptedClient struct {
	responses []*Response
	calls     int
	requests  []*Request
	err       error
}

func (s *scriptedClient) Chat(_ context.Context, req *Request) (*Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	// Snapshot the request state at call time.
	snapshot := *req
	snapshot.Messages = append([]Message(nil), req.Messages...)
	s.requests = append(s.requests, &snapshot)

	resp := s.responses[s.calls]
	s.calls++
	return resp, nil
}

// mapRunner executes tools from a result table.
type mapRunner struct {
	results map[string]*models.ToolResult
	calls   []string
}

func (m *mapRunner) Execute(_ context.Context, name string, _ *tools.Invocation) (*models.ToolResult, error) {
	m.calls = append(m.calls, name)
	if result, ok := m.results[name]; ok {
		return result, nil
	}
	return nil, errors.New("unknown tool")
}

func baseInvocation() *tools.Invocation {
	return &tools.Invocation{
		BusinessID: "biz-1",
		SessionID:  "conv_1",
		TurnID:     "turn_1",
		Language:   "tr",
		State:      models.NewTurnState(),
	}
}

func TestLoop_DirectAnswer(t *testing.T) {
	client := &scriptedClient{responses: []*Response{
		{Content: "Merhaba! Size nasıl yardımcı olabilirim?", InputTokens: 100, OutputTokens: 20},
	}}
	loop := NewLoop(client, &mapRunner{})

	result, err := loop.Run(context.Background(), &Request{}, baseInvocation(), 2)
	require.NoError(t, err)

	assert.Equal(t, "Merhaba! Size nasıl yardımcı olabilirim?", result.Reply)
	assert.Equal(t, 1, result.Iterations)
	assert.Empty(t, result.ToolsCalled)
	assert.Equal(t, 100, result.InputTokens)
	assert.Equal(t, 20, result.OutputTokens)
}

func TestLoop_ToolCallThenAnswer(t *testing.T) {
	client := &scriptedClient{responses: []*Response{
		{ToolCalls: []ToolCall{{ID: "c1", Name: "order_status", Args: map[string]any{"order_number": "ORD-1"}}}, InputTokens: 100, OutputTokens: 10},
		{Content: "Siparişiniz kargoda.", InputTokens: 150, OutputTokens: 15},
	}}
	runner := &mapRunner{results: map[string]*models.ToolResult{
		"order_status": models.NewToolResult("order_status", outcome.OK, "ORD-1: shipped"),
	}}
	loop := NewLoop(client, runner)

	result, err := loop.Run(context.Background(), &Request{}, baseInvocation(), 2)
	require.NoError(t, err)

	assert.Equal(t, "Siparişiniz kargoda.", result.Reply)
	assert.Equal(t, []string{"order_status"}, result.ToolsCalled)
	assert.True(t, result.HadToolSuccess())
	assert.False(t, result.HadToolFailure())
	assert.Equal(t, 250, result.InputTokens)
	assert.Equal(t, 25, result.OutputTokens)

	// The second call must carry the assistant tool-call turn and the
	// tool result message.
	second := client.requests[1]
	require.Len(t, second.Messages, 2)
	assert.Equal(t, RoleAssistant, second.Messages[0].Role)
	assert.Equal(t, RoleTool, second.Messages[1].Role)
	assert.Contains(t, second.Messages[1].Content, "OK")
	assert.NotContains(t, second.Messages[1].Content, "_identityContext")
}

func TestLoop_VerificationRequiredStopsImmediately(t *testing.T) {
	verificationResult := models.NewToolResult("order_status", outcome.VerificationRequired,
		"Telefonunuzun son 4 hanesini yazar mısınız?")
	verificationResult.IdentityContext = &models.IdentityContext{
		Anchor: &models.Anchor{ID: "ord-1", CustomerID: "cust-1"},
	}

	client := &scriptedClient{responses: []*Response{
		{ToolCalls: []ToolCall{{ID: "c1", Name: "order_status", Args: map[string]any{"order_number": "ORD-1"}}}},
		{Content: "never reached"},
	}}
	runner := &mapRunner{results: map[string]*models.ToolResult{"order_status": verificationResult}}
	loop := NewLoop(client, runner)

	result, err := loop.Run(context.Background(), &Request{}, baseInvocation(), 3)
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls, "no further model call after verification demand")
	require.NotNil(t, result.Terminal)
	assert.Equal(t, outcome.VerificationRequired, result.Terminal.Outcome)
	assert.Equal(t, verificationResult.Message, result.Reply)
}

func TestLoop_IterationBudget(t *testing.T) {
	toolCall := []ToolCall{{ID: "c1", Name: "order_status", Args: map[string]any{"order_number": "ORD-1"}}}
	client := &scriptedClient{responses: []*Response{
		{ToolCalls: toolCall},
		{ToolCalls: toolCall},
	}}
	runner := &mapRunner{results: map[string]*models.ToolResult{
		"order_status": models.NewToolResult("order_status", outcome.OK, "ORD-1: shipped"),
	}}
	loop := NewLoop(client, runner)

	result, err := loop.Run(context.Background(), &Request{}, baseInvocation(), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Iterations)
	assert.Equal(t, "ORD-1: shipped", result.Reply, "budget exhaustion falls back to the last tool message")
}

func TestLoop_RunnerFailureBecomesInfraError(t *testing.T) {
	client := &scriptedClient{responses: []*Response{
		{ToolCalls: []ToolCall{{ID: "c1", Name: "broken", Args: map[string]any{}}}},
		{Content: "done"},
	}}
	loop := NewLoop(client, &mapRunner{})

	result, err := loop.Run(context.Background(), &Request{}, baseInvocation(), 2)
	require.NoError(t, err)

	require.Len(t, result.ToolResults, 1)
	assert.Equal(t, outcome.InfraError, result.ToolResults[0].Outcome)
	assert.True(t, result.HadToolFailure())
}

func TestLoop_ClientError(t *testing.T) {
	client := &scriptedClient{err: errors.New("provider unavailable")}
	loop := NewLoop(client, &mapRunner{})

	result, err := loop.Run(context.Background(), &Request{}, baseInvocation(), 2)
	require.Error(t, err)

	// The failed call still counts as an attempted iteration, so traces
	// never report a model call with zero iterations behind it.
	assert.Equal(t, 1, result.Iterations)
	assert.Zero(t, result.InputTokens)
}
