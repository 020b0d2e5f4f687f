package models

// Canonical field names. Interfaces are stable on these; aliases are
// accepted on input and folded by CanonicalizeFields.
const (
	FieldOrderNumber       = "order_number"
	FieldPhone             = "phone"
	FieldCustomerName      = "customer_name"
	FieldVKN               = "vkn"
	FieldTC                = "tc"
	FieldTicketNumber      = "ticket_number"
	FieldInvoiceNumber     = "invoice_number"
	FieldTrackingNumber    = "tracking_number"
	FieldProductID         = "product_id"
	FieldProductName       = "product_name"
	FieldSKU               = "sku"
	FieldReturnNumber      = "return_number"
	FieldEmail             = "email"
	FieldQueryType         = "query_type"
	FieldVerificationInput = "verification_input"
)

// fieldAliases folds accepted input aliases onto canonical names.
var fieldAliases = map[string]string{
	"order_id":     FieldOrderNumber,
	"orderId":      FieldOrderNumber,
	"orderNumber":  FieldOrderNumber,
	"siparis_no":   FieldOrderNumber,
	"phone_number": FieldPhone,
	"telefon":      FieldPhone,
	"name":         FieldCustomerName,
	"full_name":    FieldCustomerName,
	"musteri_adi":  FieldCustomerName,
	"tax_number":   FieldVKN,
	"tc_no":        FieldTC,
	"tckn":         FieldTC,
	"ticket_id":    FieldTicketNumber,
	"invoice_no":   FieldInvoiceNumber,
	"tracking_no":  FieldTrackingNumber,
	"kargo_takip":  FieldTrackingNumber,
	"productId":    FieldProductID,
	"urun_adi":     FieldProductName,
	"return_no":    FieldReturnNumber,
	"iade_no":      FieldReturnNumber,
	"e_mail":       FieldEmail,
	"eposta":       FieldEmail,
}

// CanonicalField maps a single field name onto its canonical form.
// Unknown names pass through unchanged.
func CanonicalField(name string) string {
	if canonical, ok := fieldAliases[name]; ok {
		return canonical
	}
	return name
}

// CanonicalizeArgs folds tool argument keys onto canonical names with
// the same alias rules as CanonicalizeFields.
func CanonicalizeArgs(args map[string]any) map[string]any {
	if args == nil {
		return nil
	}
	out := make(map[string]any, len(args))
	for k, v := range args {
		canonical := CanonicalField(k)
		if canonical != k {
			if _, exists := args[canonical]; exists {
				continue
			}
		}
		out[canonical] = v
	}
	return out
}

// CanonicalizeFields folds every key of m onto its canonical name. When
// both an alias and its canonical key are present, the canonical key
// wins. The operation is idempotent: canonicalizing twice equals
// canonicalizing once.
func CanonicalizeFields(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		canonical := CanonicalField(k)
		if canonical != k {
			if _, exists := m[canonical]; exists {
				continue // canonical key present, alias loses
			}
		}
		out[canonical] = v
	}
	return out
}
