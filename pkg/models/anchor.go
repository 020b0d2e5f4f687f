package models

// Anchor is the persisted record a tool selected as the subject of the
// current sensitive query. It is never built from untrusted input: only
// from a record the tool located in a directory table. The owning
// customer is referenced by ID only.
type Anchor struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Value       string `json:"value"`
	AnchorType  string `json:"anchor_type"`
	SourceTable string `json:"source_table"`
}

// ProofStrength grades the channel possession evidence for a turn.
type ProofStrength string

// Proof strength levels.
const (
	ProofStrong ProofStrength = "STRONG"
	ProofWeak   ProofStrength = "WEAK"
	ProofNone   ProofStrength = "NONE"
)

// IdentityProof is the result of deriving identity evidence from channel
// signals against the directory tables.
type IdentityProof struct {
	Strength          ProofStrength     `json:"strength"`
	MatchedCustomerID string            `json:"matched_customer_id,omitempty"`
	MatchedOrderID    string            `json:"matched_order_id,omitempty"`
	Reasons           []string          `json:"reasons,omitempty"`
	Evidence          map[string]string `json:"evidence,omitempty"`
	DurationMs        int64             `json:"duration_ms"`
}
