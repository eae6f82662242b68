package model

// Finance document kinds. Each kind carries its own status enum; documents
// relate to projects by foreign key only.
const (
	DocSalesOrder    = "sales_order"
	DocPurchaseOrder = "purchase_order"
	DocInvoice       = "invoice"
	DocBill          = "bill"
	DocExpense       = "expense"
)

// Document is the common shape for sales orders, purchase orders, invoices,
// bills and expenses. The dashboard treats them uniformly apart from the
// per-kind status vocabulary.
type Document struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Number    string  `json:"number"`
	ProjectID string  `json:"project_id,omitempty"`
	VendorID  string  `json:"vendor_id,omitempty"`
	Total     float64 `json:"total"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
	IssueDate string  `json:"issue_date"`
	DueDate   string  `json:"due_date,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// documentStatuses lists the allowed status values per document kind.
var documentStatuses = map[string][]string{
	DocSalesOrder:    {"draft", "confirmed", "fulfilled", "cancelled"},
	DocPurchaseOrder: {"draft", "ordered", "received", "cancelled"},
	DocInvoice:       {"draft", "sent", "paid", "overdue", "cancelled"},
	DocBill:          {"draft", "received", "paid", "overdue", "cancelled"},
	DocExpense:       {"submitted", "approved", "rejected", "reimbursed"},
}

// ValidDocumentKind reports whether kind names a known document type.
func ValidDocumentKind(kind string) bool {
	_, ok := documentStatuses[kind]
	return ok
}

// ValidDocumentStatus reports whether status belongs to the given kind's
// status enum.
func ValidDocumentStatus(kind, status string) bool {
	for _, s := range documentStatuses[kind] {
		if s == status {
			return true
		}
	}
	return false
}
