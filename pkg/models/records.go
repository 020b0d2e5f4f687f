package models

// Directory source table names, used by anchors to declare where their
// record lives so a re-fetch reads the same table.
const (
	TableCustomers = "customers"
	TableOrders    = "orders"
)

// CustomerRecord is a directory customer row as seen by the pipeline.
type CustomerRecord struct {
	ID         string  `json:"id"`
	BusinessID string  `json:"business_id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone,omitempty"`
	Email      string  `json:"email,omitempty"`
	TC         string  `json:"tc,omitempty"`
	VKN        string  `json:"vkn,omitempty"`
	Balance    float64 `json:"balance"`
}

// OrderRecord is a directory order row as seen by the pipeline.
type OrderRecord struct {
	ID             string           `json:"id"`
	BusinessID     string           `json:"business_id"`
	OrderNumber    string           `json:"order_number"`
	CustomerID     string           `json:"customer_id,omitempty"`
	CustomerName   string           `json:"customer_name,omitempty"`
	CustomerPhone  string           `json:"customer_phone,omitempty"`
	CustomerEmail  string           `json:"customer_email,omitempty"`
	Status         string           `json:"status"`
	TrackingNumber string           `json:"tracking_number,omitempty"`
	Carrier        string           `json:"carrier,omitempty"`
	Items          []map[string]any `json:"items,omitempty"`
	Total          float64          `json:"total"`
}

// CallbackRecord is a callback request to be persisted by the directory.
type CallbackRecord struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
	SessionID  string `json:"session_id"`
	CustomerID string `json:"customer_id,omitempty"`
	Phone      string `json:"phone"`
	Topic      string `json:"topic,omitempty"`
}
