package identity

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/desteklab/concierge/pkg/models"
)

// Directory is the slice of the tenant directory the identity pipeline
// needs. Implemented over ent by pkg/directory; tests use fakes.
type Directory interface {
	CustomersByPhoneVariants(ctx context.Context, businessID string, variants []string) ([]models.CustomerRecord, error)
	CustomersByEmail(ctx context.Context, businessID, email string) ([]models.CustomerRecord, error)
	OrdersByPhoneVariants(ctx context.Context, businessID string, variants []string) ([]models.OrderRecord, error)
	// Record re-fetches a full row from a declared source table by
	// primary key, returned as a structured record.
	Record(ctx context.Context, sourceTable, id string) (map[string]any, error)
}

// ChannelContext carries the channel possession signal of a turn.
type ChannelContext struct {
	Channel       models.Channel
	BusinessID    string
	ChannelUserID string
}

// ProofDeriver derives identity proofs from channel signals.
type ProofDeriver struct {
	directory Directory
}

// NewProofDeriver creates a ProofDeriver over the given directory.
func NewProofDeriver(directory Directory) *ProofDeriver {
	return &ProofDeriver{directory: directory}
}

// Derive grades the channel possession evidence for a turn.
//
//   - CHAT / anonymous: NONE.
//   - WHATSAPP / PHONE: cross-format phone variants searched against
//     customers; STRONG iff exactly one unique customer matches, or the
//     customer search is empty and exactly one order customer matches.
//   - EMAIL: case-insensitive lookup; STRONG iff exactly one customer.
//
// Any error fails closed to NONE: a lookup failure must never upgrade
// trust. STRONG skips the second factor; WEAK and NONE require
// phone_last4.
func (d *ProofDeriver) Derive(ctx context.Context, cc ChannelContext) *models.IdentityProof {
	start := time.Now()
	proof := &models.IdentityProof{Strength: models.ProofNone, Evidence: map[string]string{}}
	defer func() {
		proof.DurationMs = time.Since(start).Milliseconds()
	}()

	if !cc.Channel.CarriesPossessionSignal() || cc.ChannelUserID == "" {
		proof.Reasons = append(proof.Reasons, "channel_without_possession_signal")
		return proof
	}

	switch cc.Channel {
	case models.ChannelWhatsApp, models.ChannelPhone:
		d.deriveFromPhone(ctx, cc, proof)
	case models.ChannelEmail:
		d.deriveFromEmail(ctx, cc, proof)
	}
	return proof
}

func (d *ProofDeriver) deriveFromPhone(ctx context.Context, cc ChannelContext, proof *models.IdentityProof) {
	variants := PhoneVariants(cc.ChannelUserID)
	if len(variants) == 0 {
		proof.Reasons = append(proof.Reasons, "unparseable_phone")
		return
	}
	proof.Evidence["phone"] = MaskPhone(cc.ChannelUserID)

	customers, err := d.directory.CustomersByPhoneVariants(ctx, cc.BusinessID, variants)
	if err != nil {
		slog.Warn("Identity proof customer lookup failed, failing closed",
			"business_id", cc.BusinessID, "error", err)
		proof.Reasons = append(proof.Reasons, "customer_lookup_failed")
		return
	}

	switch uniqueCustomerIDs(customers) {
	case 1:
		proof.Strength = models.ProofStrong
		proof.MatchedCustomerID = customers[0].ID
		proof.Reasons = append(proof.Reasons, "unique_customer_phone_match")
		return
	default:
		if len(customers) > 1 {
			proof.Strength = models.ProofWeak
			proof.Reasons = append(proof.Reasons, "ambiguous_customer_phone_match")
			return
		}
	}

	// Customer table empty for this phone — fall back to order owners.
	orders, err := d.directory.OrdersByPhoneVariants(ctx, cc.BusinessID, variants)
	if err != nil {
		slog.Warn("Identity proof order lookup failed, failing closed",
			"business_id", cc.BusinessID, "error", err)
		proof.Reasons = append(proof.Reasons, "order_lookup_failed")
		return
	}
	if len(orders) == 0 {
		proof.Strength = models.ProofWeak
		proof.Reasons = append(proof.Reasons, "no_directory_match")
		return
	}

	owner := orders[0].CustomerID
	for _, o := range orders[1:] {
		if o.CustomerID != owner {
			proof.Strength = models.ProofWeak
			proof.Reasons = append(proof.Reasons, "ambiguous_order_owner")
			return
		}
	}
	proof.Strength = models.ProofStrong
	proof.MatchedCustomerID = owner
	proof.MatchedOrderID = orders[0].ID
	proof.Reasons = append(proof.Reasons, "unique_order_owner_match")
}

func (d *ProofDeriver) deriveFromEmail(ctx context.Context, cc ChannelContext, proof *models.IdentityProof) {
	email := strings.ToLower(strings.TrimSpace(cc.ChannelUserID))
	proof.Evidence["email"] = MaskEmail(email)

	customers, err := d.directory.CustomersByEmail(ctx, cc.BusinessID, email)
	if err != nil {
		slog.Warn("Identity proof email lookup failed, failing closed",
			"business_id", cc.BusinessID, "error", err)
		proof.Reasons = append(proof.Reasons, "email_lookup_failed")
		return
	}
	if uniqueCustomerIDs(customers) == 1 {
		proof.Strength = models.ProofStrong
		proof.MatchedCustomerID = customers[0].ID
		proof.Reasons = append(proof.Reasons, "unique_customer_email_match")
		return
	}
	proof.Strength = models.ProofWeak
	if len(customers) == 0 {
		proof.Reasons = append(proof.Reasons, "no_directory_match")
	} else {
		proof.Reasons = append(proof.Reasons, "ambiguous_customer_email_match")
	}
}

func uniqueCustomerIDs(customers []models.CustomerRecord) int {
	seen := map[string]bool{}
	for _, c := range customers {
		seen[c.ID] = true
	}
	return len(seen)
}
