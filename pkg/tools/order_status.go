package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/desteklab/concierge/pkg/catalog"
	"github.com/desteklab/concierge/pkg/directory"
	"github.com/desteklab/concierge/pkg/identity"
	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/outcome"
)

// OrderStatusTool looks up an order by its tenant-unique number. The
// located record becomes the verification anchor; full details are
// released only after verification passes for that anchor.
type OrderStatusTool struct {
	directory Directory
	catalog   *catalog.Catalog
}

// NewOrderStatusTool creates the order-status tool.
func NewOrderStatusTool(dir Directory, cat *catalog.Catalog) *OrderStatusTool {
	return &OrderStatusTool{directory: dir, catalog: cat}
}

var _ Tool = (*OrderStatusTool)(nil)

// Definition implements Tool.
func (t *OrderStatusTool) Definition() Definition {
	return Definition{
		Name:        "order_status",
		Description: "Look up the status of an order by its order number.",
		Flow:        models.FlowTagOrderStatus,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				models.FieldOrderNumber: map[string]any{
					"type":        "string",
					"minLength":   1,
					"description": "The order number, e.g. ORD-1001.",
				},
			},
			"required":             []any{models.FieldOrderNumber},
			"additionalProperties": false,
		},
	}
}

// Execute implements Tool.
func (t *OrderStatusTool) Execute(ctx context.Context, inv *Invocation) (*models.ToolResult, error) {
	orderNumber, _ := inv.Args[models.FieldOrderNumber].(string)
	if orderNumber == "" {
		result := models.NewToolResult("order_status", outcome.ValidationError,
			t.catalog.Get(inv.BusinessID, catalog.KeyNeedIdentifier, inv.Language))
		result.Data = map[string]any{"field": models.FieldOrderNumber}
		return result, nil
	}

	order, err := t.directory.OrderByNumber(ctx, inv.BusinessID, orderNumber)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			result := models.NewToolResult("order_status", outcome.NotFound,
				t.catalog.Render(inv.BusinessID, catalog.KeyRecordNotFound, inv.Language,
					map[string]string{"field": orderNumber}))
			result.Data = map[string]any{"query_type": "order_status", "value": orderNumber}
			return result, nil
		}
		return nil, fmt.Errorf("order lookup failed: %w", err)
	}

	record := orderToMap(order)
	anchor := identity.CreateAnchor(record, "order_number", order.OrderNumber, models.TableOrders)

	verified := inv.Verified() &&
		inv.State.Verification.Anchor != nil &&
		inv.State.Verification.Anchor.ID == anchor.ID

	if !verified {
		askKey := catalog.KeyVerificationAskName
		if identity.PhoneLast4(anchor.Phone) != "" {
			askKey = catalog.KeyVerificationAsk
		}
		result := models.NewToolResult("order_status", outcome.VerificationRequired,
			t.catalog.Get(inv.BusinessID, askKey, inv.Language))
		result.Data = identity.MinimalResult(record)
		result.IdentityContext = &models.IdentityContext{Anchor: anchor, QueryType: "order_status"}
		return result, nil
	}

	result := models.NewToolResult("order_status", outcome.OK, "")
	result.Data = identity.FullResult(record)
	result.RecordOwner = anchor
	result.Message = orderStatusMessage(order)
	return result, nil
}

func orderStatusMessage(order *models.OrderRecord) string {
	msg := fmt.Sprintf("%s: %s", order.OrderNumber, order.Status)
	if order.TrackingNumber != "" {
		msg += fmt.Sprintf(" (%s %s)", order.Carrier, order.TrackingNumber)
	}
	return msg
}

func orderToMap(order *models.OrderRecord) map[string]any {
	return map[string]any{
		"id":              order.ID,
		"order_number":    order.OrderNumber,
		"customer_id":     order.CustomerID,
		"customer_name":   order.CustomerName,
		"customer_phone":  order.CustomerPhone,
		"customer_email":  order.CustomerEmail,
		"status":          order.Status,
		"tracking_number": order.TrackingNumber,
		"carrier":         order.Carrier,
		"items":           order.Items,
		"total":           order.Total,
	}
}
