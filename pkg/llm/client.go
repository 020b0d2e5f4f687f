// Package llm provides the chat-completions client, the turn request
// builder, and the bounded tool-calling loop.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/desteklab/concierge/pkg/config"
)

// Message roles on the conversation transcript.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one transcript entry.
type Message struct {
	Role       string
	Content    string
	ToolCallID string
	ToolCalls  []ToolCall
}

// ToolCall is a function call requested by the model.
type ToolCall struct {
	ID   string
	Name string
	Args map[string]any
}

// ToolSchema describes a callable function to the model.
type ToolSchema struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Request is one chat-completions call.
type Request struct {
	System   string
	Messages []Message
	Tools    []ToolSchema
}

// Response is the model's reply to one call.
type Response struct {
	Content      string
	ToolCalls    []ToolCall
	InputTokens  int
	OutputTokens int
}

// Client is the chat-completions provider interface.
type Client interface {
	Chat(ctx context.Context, req *Request) (*Response, error)
}

// OpenAIClient talks to any OpenAI-compatible chat-completions endpoint.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

var _ Client = (*OpenAIClient)(nil)

// NewOpenAIClient builds a client from configuration. The API key is
// read from the configured environment variable, never from the config
// file itself. httpClient may be nil; callers pass the egress-guarded
// client so LLM traffic cannot be redirected into internal networks.
func NewOpenAIClient(cfg config.LLMConfig, httpClient *http.Client) (*OpenAIClient, error) {
	keyEnv := cfg.APIKeyEnv
	if keyEnv == "" {
		keyEnv = "LLM_API_KEY"
	}
	apiKey := os.Getenv(keyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable not set", keyEnv)
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if httpClient != nil {
		clientCfg.HTTPClient = httpClient
	}

	slog.Info("Initializing LLM client", "model", cfg.Model, "base_url", cfg.BaseURL)
	return &OpenAIClient{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// Chat implements Client.
func (c *OpenAIClient) Chat(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		messages = append(messages, toOpenAIMessage(m))
	}

	apiReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
	}
	if c.maxTokens > 0 {
		apiReq.MaxCompletionTokens = c.maxTokens
	}
	for _, schema := range req.Tools {
		params, err := json.Marshal(schema.Parameters)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tool schema %q: %w", schema.Name, err)
		}
		apiReq.Tools = append(apiReq.Tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        schema.Name,
				Description: schema.Description,
				Parameters:  json.RawMessage(params),
			},
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	choice := resp.Choices[0]
	out := &Response{
		Content:      choice.Message.Content,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}
	for _, call := range choice.Message.ToolCalls {
		args := map[string]any{}
		if call.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
				slog.Warn("Model emitted unparseable tool arguments",
					"tool", call.Function.Name, "error", err)
				continue
			}
		}
		out.ToolCalls = append(out.ToolCalls, ToolCall{
			ID:   call.ID,
			Name: call.Function.Name,
			Args: args,
		})
	}
	return out, nil
}

func toOpenAIMessage(m Message) openai.ChatCompletionMessage {
	msg := openai.ChatCompletionMessage{
		Role:       m.Role,
		Content:    m.Content,
		ToolCallID: m.ToolCallID,
	}
	for _, call := range m.ToolCalls {
		args, _ := json.Marshal(call.Args)
		msg.ToolCalls = append(msg.ToolCalls, openai.ToolCall{
			ID:   call.ID,
			Type: openai.ToolTypeFunction,
			Function: openai.FunctionCall{
				Name:      call.Name,
				Arguments: string(args),
			},
		})
	}
	return msg
}
