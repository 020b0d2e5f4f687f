// Package directory implements the tenant directory over ent: customer
// and order lookups for identity proof and tools, plus callback
// persistence.
package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/desteklab/concierge/ent"
	"github.com/desteklab/concierge/ent/callbackrequest"
	"github.com/desteklab/concierge/ent/customer"
	"github.com/desteklab/concierge/ent/order"
	"github.com/desteklab/concierge/pkg/identity"
	"github.com/desteklab/concierge/pkg/models"
)

// ErrNotFound indicates the requested directory row does not exist.
var ErrNotFound = errors.New("directory record not found")

var _ identity.Directory = (*Service)(nil)

// Service is the ent-backed tenant directory.
type Service struct {
	client *ent.Client
}

// NewService creates a directory service over the given ent client.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// CustomersByPhoneVariants finds customers whose stored phone matches any
// of the cross-format variants of a channel phone identity.
func (s *Service) CustomersByPhoneVariants(ctx context.Context, businessID string, variants []string) ([]models.CustomerRecord, error) {
	if len(variants) == 0 {
		return nil, nil
	}
	rows, err := s.client.Customer.Query().
		Where(
			customer.BusinessIDEQ(businessID),
			customer.PhoneIn(variants...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers by phone: %w", err)
	}
	return customerRecords(rows), nil
}

// CustomersByEmail finds customers by email, case-insensitively.
func (s *Service) CustomersByEmail(ctx context.Context, businessID, email string) ([]models.CustomerRecord, error) {
	rows, err := s.client.Customer.Query().
		Where(
			customer.BusinessIDEQ(businessID),
			customer.EmailEqualFold(strings.TrimSpace(email)),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers by email: %w", err)
	}
	return customerRecords(rows), nil
}

// OrdersByPhoneVariants finds orders whose stored contact phone matches
// any variant. Used as the identity-proof fallback when the phone is not
// in the customer table.
func (s *Service) OrdersByPhoneVariants(ctx context.Context, businessID string, variants []string) ([]models.OrderRecord, error) {
	if len(variants) == 0 {
		return nil, nil
	}
	rows, err := s.client.Order.Query().
		Where(
			order.BusinessIDEQ(businessID),
			order.CustomerPhoneIn(variants...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders by phone: %w", err)
	}
	return orderRecords(rows), nil
}

// OrderByNumber finds an order by its tenant-unique order number.
// Returns ErrNotFound when no such order exists.
func (s *Service) OrderByNumber(ctx context.Context, businessID, orderNumber string) (*models.OrderRecord, error) {
	row, err := s.client.Order.Query().
		Where(
			order.BusinessIDEQ(businessID),
			order.OrderNumberEQ(orderNumber),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query order by number: %w", err)
	}
	record := orderRecord(row)
	return &record, nil
}

// CustomerByID fetches a customer by primary key within a tenant.
func (s *Service) CustomerByID(ctx context.Context, businessID, id string) (*models.CustomerRecord, error) {
	row, err := s.client.Customer.Query().
		Where(
			customer.BusinessIDEQ(businessID),
			customer.IDEQ(id),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}
	record := customerRecord(row)
	return &record, nil
}

// Record re-fetches a full row from a declared source table by primary
// key. Anchors store the source table so the refetch reads the same row
// the tool originally located.
func (s *Service) Record(ctx context.Context, sourceTable, id string) (map[string]any, error) {
	switch sourceTable {
	case models.TableCustomers:
		row, err := s.client.Customer.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to fetch customer record: %w", err)
		}
		return customerMap(row), nil
	case models.TableOrders:
		row, err := s.client.Order.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to fetch order record: %w", err)
		}
		return orderMap(row), nil
	default:
		return nil, fmt.Errorf("unknown source table %q", sourceTable)
	}
}

// CreateCallback persists a callback request and returns its ID.
func (s *Service) CreateCallback(ctx context.Context, req models.CallbackRecord) (string, error) {
	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}
	builder := s.client.CallbackRequest.Create().
		SetID(id).
		SetBusinessID(req.BusinessID).
		SetSessionID(req.SessionID).
		SetPhone(req.Phone).
		SetStatus(callbackrequest.StatusOpen)
	if req.CustomerID != "" {
		builder.SetCustomerID(req.CustomerID)
	}
	if req.Topic != "" {
		builder.SetTopic(req.Topic)
	}
	if err := builder.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to create callback request: %w", err)
	}
	return id, nil
}

func customerRecord(row *ent.Customer) models.CustomerRecord {
	return models.CustomerRecord{
		ID:         row.ID,
		BusinessID: row.BusinessID,
		Name:       row.Name,
		Phone:      row.Phone,
		Email:      row.Email,
		TC:         row.Tc,
		VKN:        row.Vkn,
		Balance:    row.Balance,
	}
}

func customerRecords(rows []*ent.Customer) []models.CustomerRecord {
	records := make([]models.CustomerRecord, len(rows))
	for i, row := range rows {
		records[i] = customerRecord(row)
	}
	return records
}

func orderRecord(row *ent.Order) models.OrderRecord {
	return models.OrderRecord{
		ID:             row.ID,
		BusinessID:     row.BusinessID,
		OrderNumber:    row.OrderNumber,
		CustomerID:     row.CustomerID,
		CustomerName:   row.CustomerName,
		CustomerPhone:  row.CustomerPhone,
		CustomerEmail:  row.CustomerEmail,
		Status:         row.Status,
		TrackingNumber: row.TrackingNumber,
		Carrier:        row.Carrier,
		Items:          row.Items,
		Total:          row.Total,
	}
}

func orderRecords(rows []*ent.Order) []models.OrderRecord {
	records := make([]models.OrderRecord, len(rows))
	for i, row := range rows {
		records[i] = orderRecord(row)
	}
	return records
}

func customerMap(row *ent.Customer) map[string]any {
	return map[string]any{
		"id":          row.ID,
		"customer_id": row.ID,
		"name":        row.Name,
		"phone":       row.Phone,
		"email":       row.Email,
		"tc":          row.Tc,
		"vkn":         row.Vkn,
		"balance":     row.Balance,
	}
}

func orderMap(row *ent.Order) map[string]any {
	return map[string]any{
		"id":              row.ID,
		"order_number":    row.OrderNumber,
		"customer_id":     row.CustomerID,
		"customer_name":   row.CustomerName,
		"customer_phone":  row.CustomerPhone,
		"customer_email":  row.CustomerEmail,
		"status":          row.Status,
		"tracking_number": row.TrackingNumber,
		"carrier":         row.Carrier,
		"items":           row.Items,
		"total":           row.Total,
	}
}
