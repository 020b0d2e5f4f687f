package tools

import (
	"context"
	"fmt"

	"github.com/desteklab/concierge/pkg/catalog"
	"github.com/desteklab/concierge/pkg/identity"
	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/outcome"
)

// CallbackRequestTool schedules a human callback. It is side-effectful:
// the executor's idempotency record guarantees a replayed turn creates
// the callback exactly once.
type CallbackRequestTool struct {
	directory Directory
	catalog   *catalog.Catalog
}

// NewCallbackRequestTool creates the callback tool.
func NewCallbackRequestTool(dir Directory, cat *catalog.Catalog) *CallbackRequestTool {
	return &CallbackRequestTool{directory: dir, catalog: cat}
}

var _ Tool = (*CallbackRequestTool)(nil)

// Definition implements Tool.
func (t *CallbackRequestTool) Definition() Definition {
	return Definition{
		Name:        "callback_request",
		Description: "Schedule a callback from a human agent to the given phone number.",
		Flow:        models.FlowTagCallbackRequest,
		SideEffect:  true,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				models.FieldPhone: map[string]any{
					"type":        "string",
					"minLength":   7,
					"description": "The phone number to call back.",
				},
				"topic": map[string]any{
					"type":        "string",
					"description": "What the callback is about.",
				},
			},
			"required":             []any{models.FieldPhone},
			"additionalProperties": false,
		},
	}
}

// Execute implements Tool.
func (t *CallbackRequestTool) Execute(ctx context.Context, inv *Invocation) (*models.ToolResult, error) {
	phone, _ := inv.Args[models.FieldPhone].(string)
	normalized := identity.NormalizeE164(phone)
	if normalized == "" {
		result := models.NewToolResult("callback_request", outcome.ValidationError,
			t.catalog.Get(inv.BusinessID, catalog.KeyNeedIdentifier, inv.Language))
		result.Data = map[string]any{"field": models.FieldPhone}
		return result, nil
	}
	topic, _ := inv.Args["topic"].(string)

	req := models.CallbackRecord{
		BusinessID: inv.BusinessID,
		SessionID:  inv.SessionID,
		Phone:      normalized,
		Topic:      topic,
	}
	if inv.Verified() && inv.State.Verification.Anchor != nil {
		req.CustomerID = inv.State.Verification.Anchor.CustomerID
	}

	id, err := t.directory.CreateCallback(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("callback creation failed: %w", err)
	}

	result := models.NewToolResult("callback_request", outcome.OK,
		fmt.Sprintf("Callback scheduled for %s.", identity.MaskPhone(normalized)))
	result.Data = map[string]any{
		"callback_id": id,
		"phone":       identity.MaskPhone(normalized),
	}
	result.StateEvents = append(result.StateEvents, outcome.StateEvent{Type: outcome.EventFlowResolved})
	return result, nil
}
