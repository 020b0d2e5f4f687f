package llm

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/outcome"
	"github.com/desteklab/concierge/pkg/tools"
)

// ToolRunner executes gated tool calls. Implemented by tools.Executor.
type ToolRunner interface {
	Execute(ctx context.Context, name string, inv *tools.Invocation) (*models.ToolResult, error)
}

// LoopResult is the outcome of one bounded tool-calling loop.
type LoopResult struct {
	Reply        string
	ToolsCalled  []string
	ToolResults  []*models.ToolResult
	InputTokens  int
	OutputTokens int
	// Terminal is set when a tool outcome ended the loop early; its
	// message becomes the reply without another model call.
	Terminal *models.ToolResult
	// TerminalArgs are the canonicalized arguments of the terminal call,
	// kept so a later turn can replay it.
	TerminalArgs map[string]any
	// Iterations is the number of model calls attempted, failed calls
	// included, so a reported call always has an iteration behind it.
	Iterations int
}

// HadToolSuccess reports whether any tool returned OK.
func (r *LoopResult) HadToolSuccess() bool {
	for _, res := range r.ToolResults {
		if res.Outcome == outcome.OK {
			return true
		}
	}
	return false
}

// HadToolFailure reports whether any tool returned a non-OK outcome.
func (r *LoopResult) HadToolFailure() bool {
	for _, res := range r.ToolResults {
		if res.Outcome != outcome.OK {
			return true
		}
	}
	return false
}

// Outcomes returns every tool outcome in call order.
func (r *LoopResult) Outcomes() []outcome.Outcome {
	outcomes := make([]outcome.Outcome, len(r.ToolResults))
	for i, res := range r.ToolResults {
		outcomes[i] = res.Outcome
	}
	return outcomes
}

// Loop drives the model-tool exchange for one turn.
type Loop struct {
	client Client
	runner ToolRunner
}

// NewLoop creates a loop over a client and a tool runner.
func NewLoop(client Client, runner ToolRunner) *Loop {
	return &Loop{client: client, runner: runner}
}

// Run executes at most maxIterations model calls. Tool calls emitted by
// the model run through the executor; their results feed the next
// iteration. The loop stops early when the model answers without tools
// or when a tool demands verification, which must reach the user before
// anything else happens.
func (l *Loop) Run(ctx context.Context, req *Request, inv *tools.Invocation, maxIterations int) (*LoopResult, error) {
	if maxIterations < 1 {
		maxIterations = 1
	}
	result := &LoopResult{}

	for i := 0; i < maxIterations; i++ {
		result.Iterations++
		resp, err := l.client.Chat(ctx, req)
		if err != nil {
			return result, err
		}
		result.InputTokens += resp.InputTokens
		result.OutputTokens += resp.OutputTokens

		if len(resp.ToolCalls) == 0 {
			result.Reply = resp.Content
			return result, nil
		}

		req.Messages = append(req.Messages, Message{
			Role:      RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		for _, call := range resp.ToolCalls {
			callInv := &tools.Invocation{
				BusinessID: inv.BusinessID,
				SessionID:  inv.SessionID,
				TurnID:     inv.TurnID,
				Language:   inv.Language,
				Args:       call.Args,
				State:      inv.State,
				Proof:      inv.Proof,
			}
			toolResult, err := l.runner.Execute(ctx, call.Name, callInv)
			if err != nil {
				slog.Error("Tool execution failed inside loop", "tool", call.Name, "error", err)
				toolResult = models.NewToolResult(call.Name, outcome.InfraError, "")
			}
			result.ToolsCalled = append(result.ToolsCalled, call.Name)
			result.ToolResults = append(result.ToolResults, toolResult)

			req.Messages = append(req.Messages, Message{
				Role:       RoleTool,
				ToolCallID: call.ID,
				Content:    toolMessage(toolResult),
			})

			if toolResult.Outcome == outcome.VerificationRequired {
				result.Terminal = toolResult
				result.TerminalArgs = callInv.Args
				result.Reply = toolResult.Message
				return result, nil
			}
		}
	}

	// Iteration budget exhausted with tool calls still pending. The last
	// tool message is the safest reply material we have.
	if len(result.ToolResults) > 0 {
		last := result.ToolResults[len(result.ToolResults)-1]
		result.Reply = last.Message
	}
	return result, nil
}

// toolMessage serializes a result for the model. Only outcome, message,
// and data are exposed; pipeline-internal context never reaches the
// transcript.
func toolMessage(result *models.ToolResult) string {
	payload := map[string]any{
		"outcome": result.Outcome,
		"message": result.Message,
	}
	if result.Data != nil {
		payload["data"] = result.Data
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return string(result.Outcome)
	}
	return string(raw)
}
