package e2e

import (
	"context"
	"fmt"
	"sync"

	"github.com/desteklab/concierge/pkg/llm"
)

// LLMScriptEntry defines a single scripted chat-completions response.
type LLMScriptEntry struct {
	Text      string
	ToolCalls []llm.ToolCall
	Err       error
}

// ScriptedLLMClient implements llm.Client with a fixed response script
// consumed in call order. Calls past the end of the script fail, so a
// test that under-scripts surfaces as a loop error instead of a hang.
type ScriptedLLMClient struct {
	mu       sync.Mutex
	script   []LLMScriptEntry
	index    int
	captured []*llm.Request
}

var _ llm.Client = (*ScriptedLLMClient)(nil)

// NewScriptedLLMClient creates an empty script.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{}
}

// Add appends one scripted response.
func (c *ScriptedLLMClient) Add(entry LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.script = append(c.script, entry)
}

// AddText appends a plain text response with no tool calls.
func (c *ScriptedLLMClient) AddText(text string) {
	c.Add(LLMScriptEntry{Text: text})
}

// AddToolCall appends a response that invokes one tool.
func (c *ScriptedLLMClient) AddToolCall(name string, args map[string]any) {
	c.Add(LLMScriptEntry{ToolCalls: []llm.ToolCall{{ID: "call-1", Name: name, Args: args}}})
}

// Calls returns the number of Chat invocations made so far.
func (c *ScriptedLLMClient) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Captured returns the requests seen so far.
func (c *ScriptedLLMClient) Captured() []*llm.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*llm.Request(nil), c.captured...)
}

// Chat implements llm.Client.
func (c *ScriptedLLMClient) Chat(_ context.Context, req *llm.Request) (*llm.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.captured = append(c.captured, req)
	if c.index >= len(c.script) {
		c.index++
		return nil, fmt.Errorf("scripted client exhausted after %d responses", len(c.script))
	}
	entry := c.script[c.index]
	c.index++
	if entry.Err != nil {
		return nil, entry.Err
	}
	return &llm.Response{
		Content:      entry.Text,
		ToolCalls:    entry.ToolCalls,
		InputTokens:  40,
		OutputTokens: 15,
	}, nil
}
