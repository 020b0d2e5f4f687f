package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/desteklab/concierge/pkg/catalog"
	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/outcome"
)

// ComplaintTool registers a complaint and hands back a ticket reference.
// Complaints carry no sensitive reads, so no verification gate applies.
type ComplaintTool struct {
	catalog *catalog.Catalog
}

// NewComplaintTool creates the complaint tool.
func NewComplaintTool(cat *catalog.Catalog) *ComplaintTool {
	return &ComplaintTool{catalog: cat}
}

var _ Tool = (*ComplaintTool)(nil)

// Definition implements Tool.
func (t *ComplaintTool) Definition() Definition {
	return Definition{
		Name:        "complaint",
		Description: "Register a customer complaint and return a ticket number.",
		Flow:        models.FlowTagComplaint,
		SideEffect:  true,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"description": map[string]any{
					"type":        "string",
					"minLength":   5,
					"description": "What the complaint is about, in the customer's words.",
				},
				models.FieldOrderNumber: map[string]any{
					"type":        "string",
					"description": "Related order number, if any.",
				},
			},
			"required":             []any{"description"},
			"additionalProperties": false,
		},
	}
}

// Execute implements Tool.
func (t *ComplaintTool) Execute(_ context.Context, inv *Invocation) (*models.ToolResult, error) {
	description, _ := inv.Args["description"].(string)
	if strings.TrimSpace(description) == "" {
		result := models.NewToolResult("complaint", outcome.ValidationError,
			t.catalog.Get(inv.BusinessID, catalog.KeyNeedIdentifier, inv.Language))
		result.Data = map[string]any{"field": "description"}
		return result, nil
	}

	ticket := "TKT-" + strings.ToUpper(uuid.New().String()[:8])
	result := models.NewToolResult("complaint", outcome.OK,
		fmt.Sprintf("Complaint registered, ticket %s.", ticket))
	result.Data = map[string]any{"ticket_number": ticket}
	result.StateEvents = append(result.StateEvents, outcome.StateEvent{Type: outcome.EventFlowResolved})
	return result, nil
}
