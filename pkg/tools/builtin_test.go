package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desteklab/concierge/pkg/catalog"
	"github.com/desteklab/concierge/pkg/directory"
	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/outcome"
)

// fakeDirectory is an in-memory tools.Directory.
type fakeDirectory struct {
	orders    map[string]*models.OrderRecord
	customers map[string]*models.CustomerRecord
	byPhone   []models.CustomerRecord
	callbacks []models.CallbackRecord
	err       error
}

func (f *fakeDirectory) OrderByNumber(_ context.Context, _, orderNumber string) (*models.OrderRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if order, ok := f.orders[orderNumber]; ok {
		return order, nil
	}
	return nil, directory.ErrNotFound
}

func (f *fakeDirectory) CustomerByID(_ context.Context, _, id string) (*models.CustomerRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if cust, ok := f.customers[id]; ok {
		return cust, nil
	}
	return nil, directory.ErrNotFound
}

func (f *fakeDirectory) CustomersByPhoneVariants(_ context.Context, _ string, _ []string) ([]models.CustomerRecord, error) {
	return f.byPhone, f.err
}

func (f *fakeDirectory) CreateCallback(_ context.Context, req models.CallbackRecord) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.callbacks = append(f.callbacks, req)
	return "cb-1", nil
}

func testOrder() *models.OrderRecord {
	return &models.OrderRecord{
		ID:            "ord-1",
		BusinessID:    "biz-1",
		OrderNumber:   "ORD-1001",
		CustomerID:    "cust-1",
		CustomerName:  "Ahmet Yılmaz",
		CustomerPhone: "+905551234567",
		Status:        "shipped",
	}
}

func TestOrderStatusTool_Unverified(t *testing.T) {
	tool := NewOrderStatusTool(&fakeDirectory{orders: map[string]*models.OrderRecord{"ORD-1001": testOrder()}}, catalog.New(nil))

	result, err := tool.Execute(context.Background(), invocation(map[string]any{models.FieldOrderNumber: "ORD-1001"}))
	require.NoError(t, err)

	assert.Equal(t, outcome.VerificationRequired, result.Outcome)
	require.NotNil(t, result.IdentityContext)
	assert.Equal(t, "ord-1", result.IdentityContext.Anchor.ID)
	assert.Equal(t, "cust-1", result.IdentityContext.Anchor.CustomerID)
	// Pre-verification data is minimal: status only.
	assert.Equal(t, map[string]any{"status": "shipped"}, result.Data)
	assert.NotEmpty(t, result.Message)
}

func TestOrderStatusTool_Verified(t *testing.T) {
	tool := NewOrderStatusTool(&fakeDirectory{orders: map[string]*models.OrderRecord{"ORD-1001": testOrder()}}, catalog.New(nil))

	inv := invocation(map[string]any{models.FieldOrderNumber: "ORD-1001"})
	inv.State.Verification.Status = models.VerificationVerified
	inv.State.Verification.Anchor = &models.Anchor{ID: "ord-1", CustomerID: "cust-1"}

	result, err := tool.Execute(context.Background(), inv)
	require.NoError(t, err)

	assert.Equal(t, outcome.OK, result.Outcome)
	assert.Equal(t, "shipped", result.Data["status"])
	// PII stays masked even after verification.
	assert.Equal(t, "+90******4567", result.Data["customer_phone"])
	require.NotNil(t, result.RecordOwner)
	assert.Equal(t, "cust-1", result.RecordOwner.CustomerID)
}

func TestOrderStatusTool_VerifiedForDifferentAnchor(t *testing.T) {
	tool := NewOrderStatusTool(&fakeDirectory{orders: map[string]*models.OrderRecord{"ORD-1001": testOrder()}}, catalog.New(nil))

	inv := invocation(map[string]any{models.FieldOrderNumber: "ORD-1001"})
	inv.State.Verification.Status = models.VerificationVerified
	inv.State.Verification.Anchor = &models.Anchor{ID: "ord-other"}

	result, err := tool.Execute(context.Background(), inv)
	require.NoError(t, err)

	// Verification for one record does not unlock another.
	assert.Equal(t, outcome.VerificationRequired, result.Outcome)
}

func TestOrderStatusTool_NotFound(t *testing.T) {
	tool := NewOrderStatusTool(&fakeDirectory{}, catalog.New(nil))

	result, err := tool.Execute(context.Background(), invocation(map[string]any{models.FieldOrderNumber: "ORD-404"}))
	require.NoError(t, err)

	assert.Equal(t, outcome.NotFound, result.Outcome)
	assert.Equal(t, "order_status", result.Data["query_type"])
	assert.Equal(t, "ORD-404", result.Data["value"])
}

func TestOrderStatusTool_InfraError(t *testing.T) {
	tool := NewOrderStatusTool(&fakeDirectory{err: errors.New("db down")}, catalog.New(nil))

	_, err := tool.Execute(context.Background(), invocation(map[string]any{models.FieldOrderNumber: "ORD-1001"}))
	assert.Error(t, err)
}

func TestDebtInquiryTool(t *testing.T) {
	cust := &models.CustomerRecord{ID: "cust-1", Name: "Ahmet Yılmaz", Phone: "+905551234567", Balance: 150.5}
	dir := &fakeDirectory{
		byPhone:   []models.CustomerRecord{*cust},
		customers: map[string]*models.CustomerRecord{"cust-1": cust},
	}
	tool := NewDebtInquiryTool(dir, catalog.New(nil))

	t.Run("unverified gets anchor and verification required", func(t *testing.T) {
		result, err := tool.Execute(context.Background(), invocation(map[string]any{models.FieldPhone: "05551234567"}))
		require.NoError(t, err)

		assert.Equal(t, outcome.VerificationRequired, result.Outcome)
		require.NotNil(t, result.IdentityContext)
		assert.Equal(t, "cust-1", result.IdentityContext.Anchor.CustomerID)
		assert.Nil(t, result.Data, "no balance before verification")
	})

	t.Run("verified releases redacted record", func(t *testing.T) {
		inv := invocation(map[string]any{models.FieldPhone: "05551234567"})
		inv.State.Verification.Status = models.VerificationVerified
		inv.State.Verification.Anchor = &models.Anchor{ID: "cust-1", CustomerID: "cust-1"}

		result, err := tool.Execute(context.Background(), inv)
		require.NoError(t, err)

		assert.Equal(t, outcome.OK, result.Outcome)
		assert.Equal(t, 150.5, result.Data["balance"])
		assert.Equal(t, "+90******4567", result.Data["phone"])
	})

	t.Run("unknown phone is not found with masked value", func(t *testing.T) {
		empty := NewDebtInquiryTool(&fakeDirectory{}, catalog.New(nil))

		result, err := empty.Execute(context.Background(), invocation(map[string]any{models.FieldPhone: "05559999999"}))
		require.NoError(t, err)

		assert.Equal(t, outcome.NotFound, result.Outcome)
		assert.Equal(t, "+90******9999", result.Data["value"])
	})

	t.Run("ambiguous phone needs more info", func(t *testing.T) {
		ambiguous := NewDebtInquiryTool(&fakeDirectory{
			byPhone: []models.CustomerRecord{{ID: "cust-1"}, {ID: "cust-2"}},
		}, catalog.New(nil))

		result, err := ambiguous.Execute(context.Background(), invocation(map[string]any{models.FieldPhone: "05551234567"}))
		require.NoError(t, err)

		assert.Equal(t, outcome.NeedMoreInfo, result.Outcome)
	})
}

func TestCallbackRequestTool(t *testing.T) {
	t.Run("creates callback with normalized phone", func(t *testing.T) {
		dir := &fakeDirectory{}
		tool := NewCallbackRequestTool(dir, catalog.New(nil))

		result, err := tool.Execute(context.Background(),
			invocation(map[string]any{models.FieldPhone: "0555 123 45 67", "topic": "billing"}))
		require.NoError(t, err)

		assert.Equal(t, outcome.OK, result.Outcome)
		require.Len(t, dir.callbacks, 1)
		assert.Equal(t, "+905551234567", dir.callbacks[0].Phone)
		assert.Equal(t, "billing", dir.callbacks[0].Topic)
		// The reply carries only the masked phone.
		assert.Equal(t, "+90******4567", result.Data["phone"])
	})

	t.Run("verified session attributes the customer", func(t *testing.T) {
		dir := &fakeDirectory{}
		tool := NewCallbackRequestTool(dir, catalog.New(nil))

		inv := invocation(map[string]any{models.FieldPhone: "05551234567"})
		inv.State.Verification.Status = models.VerificationVerified
		inv.State.Verification.Anchor = &models.Anchor{ID: "cust-1", CustomerID: "cust-1"}

		_, err := tool.Execute(context.Background(), inv)
		require.NoError(t, err)

		require.Len(t, dir.callbacks, 1)
		assert.Equal(t, "cust-1", dir.callbacks[0].CustomerID)
	})

	t.Run("unparseable phone is a validation error", func(t *testing.T) {
		tool := NewCallbackRequestTool(&fakeDirectory{}, catalog.New(nil))

		result, err := tool.Execute(context.Background(), invocation(map[string]any{models.FieldPhone: "call me"}))
		require.NoError(t, err)

		assert.Equal(t, outcome.ValidationError, result.Outcome)
	})
}

func TestComplaintTool(t *testing.T) {
	tool := NewComplaintTool(catalog.New(nil))

	result, err := tool.Execute(context.Background(),
		invocation(map[string]any{"description": "My order arrived damaged."}))
	require.NoError(t, err)

	assert.Equal(t, outcome.OK, result.Outcome)
	assert.NotEmpty(t, result.Data["ticket_number"])
	require.Len(t, result.StateEvents, 1)
	assert.Equal(t, outcome.EventFlowResolved, result.StateEvents[0].Type)
}
