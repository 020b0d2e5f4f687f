package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desteklab/concierge/pkg/models"
)

// fakeDirectory is an in-memory Directory for tests.
type fakeDirectory struct {
	customersByPhone []models.CustomerRecord
	customersByEmail []models.CustomerRecord
	ordersByPhone    []models.OrderRecord
	records          map[string]map[string]any
	err              error
}

func (f *fakeDirectory) CustomersByPhoneVariants(_ context.Context, _ string, _ []string) ([]models.CustomerRecord, error) {
	return f.customersByPhone, f.err
}

func (f *fakeDirectory) CustomersByEmail(_ context.Context, _, _ string) ([]models.CustomerRecord, error) {
	return f.customersByEmail, f.err
}

func (f *fakeDirectory) OrdersByPhoneVariants(_ context.Context, _ string, _ []string) ([]models.OrderRecord, error) {
	return f.ordersByPhone, f.err
}

func (f *fakeDirectory) Record(_ context.Context, sourceTable, id string) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records[sourceTable+"/"+id], nil
}

func TestProofDeriver_ChatIsAlwaysNone(t *testing.T) {
	deriver := NewProofDeriver(&fakeDirectory{
		customersByPhone: []models.CustomerRecord{{ID: "cust-1"}},
	})

	proof := deriver.Derive(context.Background(), ChannelContext{
		Channel:       models.ChannelChat,
		BusinessID:    "biz-1",
		ChannelUserID: "+905551234567",
	})

	assert.Equal(t, models.ProofNone, proof.Strength)
	assert.Empty(t, proof.MatchedCustomerID)
}

func TestProofDeriver_WhatsAppUniqueCustomer(t *testing.T) {
	deriver := NewProofDeriver(&fakeDirectory{
		customersByPhone: []models.CustomerRecord{{ID: "cust-1", Phone: "+905551234567"}},
	})

	proof := deriver.Derive(context.Background(), ChannelContext{
		Channel:       models.ChannelWhatsApp,
		BusinessID:    "biz-1",
		ChannelUserID: "+905551234567",
	})

	assert.Equal(t, models.ProofStrong, proof.Strength)
	assert.Equal(t, "cust-1", proof.MatchedCustomerID)
	assert.Contains(t, proof.Reasons, "unique_customer_phone_match")
	// Evidence carries only the masked phone.
	assert.Equal(t, "+90******4567", proof.Evidence["phone"])
}

func TestProofDeriver_WhatsAppAmbiguousCustomers(t *testing.T) {
	deriver := NewProofDeriver(&fakeDirectory{
		customersByPhone: []models.CustomerRecord{{ID: "cust-1"}, {ID: "cust-2"}},
	})

	proof := deriver.Derive(context.Background(), ChannelContext{
		Channel:       models.ChannelWhatsApp,
		BusinessID:    "biz-1",
		ChannelUserID: "+905551234567",
	})

	assert.Equal(t, models.ProofWeak, proof.Strength)
	assert.Empty(t, proof.MatchedCustomerID)
}

func TestProofDeriver_OrderOwnerFallback(t *testing.T) {
	tests := []struct {
		name     string
		orders   []models.OrderRecord
		expected models.ProofStrength
		customer string
	}{
		{
			name:     "single order owner",
			orders:   []models.OrderRecord{{ID: "ord-1", CustomerID: "cust-1"}, {ID: "ord-2", CustomerID: "cust-1"}},
			expected: models.ProofStrong,
			customer: "cust-1",
		},
		{
			name:     "conflicting order owners",
			orders:   []models.OrderRecord{{ID: "ord-1", CustomerID: "cust-1"}, {ID: "ord-2", CustomerID: "cust-2"}},
			expected: models.ProofWeak,
		},
		{
			name:     "no orders",
			orders:   nil,
			expected: models.ProofWeak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deriver := NewProofDeriver(&fakeDirectory{ordersByPhone: tt.orders})

			proof := deriver.Derive(context.Background(), ChannelContext{
				Channel:       models.ChannelWhatsApp,
				BusinessID:    "biz-1",
				ChannelUserID: "+905551234567",
			})

			assert.Equal(t, tt.expected, proof.Strength)
			assert.Equal(t, tt.customer, proof.MatchedCustomerID)
		})
	}
}

func TestProofDeriver_LookupErrorFailsClosed(t *testing.T) {
	deriver := NewProofDeriver(&fakeDirectory{err: errors.New("connection refused")})

	proof := deriver.Derive(context.Background(), ChannelContext{
		Channel:       models.ChannelWhatsApp,
		BusinessID:    "biz-1",
		ChannelUserID: "+905551234567",
	})

	assert.Equal(t, models.ProofNone, proof.Strength)
	assert.Contains(t, proof.Reasons, "customer_lookup_failed")
}

func TestProofDeriver_EmailChannel(t *testing.T) {
	t.Run("unique customer is strong", func(t *testing.T) {
		deriver := NewProofDeriver(&fakeDirectory{
			customersByEmail: []models.CustomerRecord{{ID: "cust-1", Email: "ahmet@example.com"}},
		})

		proof := deriver.Derive(context.Background(), ChannelContext{
			Channel:       models.ChannelEmail,
			BusinessID:    "biz-1",
			ChannelUserID: "Ahmet@Example.com",
		})

		require.Equal(t, models.ProofStrong, proof.Strength)
		assert.Equal(t, "cust-1", proof.MatchedCustomerID)
		assert.Equal(t, "a***@example.com", proof.Evidence["email"])
	})

	t.Run("no match is weak", func(t *testing.T) {
		deriver := NewProofDeriver(&fakeDirectory{})

		proof := deriver.Derive(context.Background(), ChannelContext{
			Channel:       models.ChannelEmail,
			BusinessID:    "biz-1",
			ChannelUserID: "nobody@example.com",
		})

		assert.Equal(t, models.ProofWeak, proof.Strength)
	})
}

func TestProofDeriver_EmptyChannelUserID(t *testing.T) {
	deriver := NewProofDeriver(&fakeDirectory{})

	proof := deriver.Derive(context.Background(), ChannelContext{
		Channel:    models.ChannelWhatsApp,
		BusinessID: "biz-1",
	})

	assert.Equal(t, models.ProofNone, proof.Strength)
}
