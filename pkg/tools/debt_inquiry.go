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

// DebtInquiryTool reports a customer's outstanding balance. Balance is
// always sensitive, so the record must be anchored and verified before
// any amount is released.
type DebtInquiryTool struct {
	directory Directory
	catalog   *catalog.Catalog
}

// NewDebtInquiryTool creates the debt-inquiry tool.
func NewDebtInquiryTool(dir Directory, cat *catalog.Catalog) *DebtInquiryTool {
	return &DebtInquiryTool{directory: dir, catalog: cat}
}

var _ Tool = (*DebtInquiryTool)(nil)

// Definition implements Tool.
func (t *DebtInquiryTool) Definition() Definition {
	return Definition{
		Name:        "debt_inquiry",
		Description: "Look up a customer's outstanding balance by phone number.",
		Flow:        models.FlowTagDebtInquiry,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				models.FieldPhone: map[string]any{
					"type":        "string",
					"minLength":   4,
					"description": "The customer's phone number on file.",
				},
			},
			"required":             []any{models.FieldPhone},
			"additionalProperties": false,
		},
	}
}

// Execute implements Tool.
func (t *DebtInquiryTool) Execute(ctx context.Context, inv *Invocation) (*models.ToolResult, error) {
	phone, _ := inv.Args[models.FieldPhone].(string)
	variants := identity.PhoneVariants(phone)
	if len(variants) == 0 {
		result := models.NewToolResult("debt_inquiry", outcome.ValidationError,
			t.catalog.Get(inv.BusinessID, catalog.KeyNeedIdentifier, inv.Language))
		result.Data = map[string]any{"field": models.FieldPhone}
		return result, nil
	}

	customers, err := t.directory.CustomersByPhoneVariants(ctx, inv.BusinessID, variants)
	if err != nil {
		return nil, fmt.Errorf("customer lookup failed: %w", err)
	}
	if len(customers) == 0 {
		masked := identity.MaskPhone(phone)
		result := models.NewToolResult("debt_inquiry", outcome.NotFound,
			t.catalog.Render(inv.BusinessID, catalog.KeyRecordNotFound, inv.Language,
				map[string]string{"field": masked}))
		result.Data = map[string]any{"query_type": "debt_inquiry", "value": masked}
		return result, nil
	}
	if len(customers) > 1 {
		// One phone mapping to several customers cannot be disambiguated
		// safely from chat input.
		return models.NewToolResult("debt_inquiry", outcome.NeedMoreInfo,
			t.catalog.Get(inv.BusinessID, catalog.KeyNeedIdentifier, inv.Language)), nil
	}

	cust := customers[0]
	record, err := t.directory.CustomerByID(ctx, inv.BusinessID, cust.ID)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return models.NewToolResult("debt_inquiry", outcome.NotFound,
				t.catalog.Get(inv.BusinessID, catalog.KeyRecordNotFound, inv.Language)), nil
		}
		return nil, fmt.Errorf("customer fetch failed: %w", err)
	}

	recordMap := customerToMap(record)
	anchor := identity.CreateAnchor(recordMap, "phone", identity.MaskPhone(phone), models.TableCustomers)

	verified := inv.Verified() &&
		inv.State.Verification.Anchor != nil &&
		inv.State.Verification.Anchor.ID == anchor.ID

	if !verified {
		askKey := catalog.KeyVerificationAskName
		if identity.PhoneLast4(anchor.Phone) != "" {
			askKey = catalog.KeyVerificationAsk
		}
		result := models.NewToolResult("debt_inquiry", outcome.VerificationRequired,
			t.catalog.Get(inv.BusinessID, askKey, inv.Language))
		result.IdentityContext = &models.IdentityContext{Anchor: anchor, QueryType: "debt_inquiry"}
		return result, nil
	}

	result := models.NewToolResult("debt_inquiry", outcome.OK,
		fmt.Sprintf("%s: %.2f TL", record.Name, record.Balance))
	result.Data = identity.FullResult(recordMap)
	result.RecordOwner = anchor
	return result, nil
}

func customerToMap(record *models.CustomerRecord) map[string]any {
	return map[string]any{
		"id":          record.ID,
		"customer_id": record.ID,
		"name":        record.Name,
		"phone":       record.Phone,
		"email":       record.Email,
		"tc":          record.TC,
		"vkn":         record.VKN,
		"balance":     record.Balance,
	}
}
