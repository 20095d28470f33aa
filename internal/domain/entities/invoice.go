package entities

import "time"

// InvoiceStatus is the billing lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// ValidInvoiceStatus reports whether s is one of the known statuses.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// InvoiceItem is a single billed line. Total is always quantity * unit price,
// recomputed whenever the item list is written.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Invoice is a billing document, optionally derived from a Quote by an admin.
//
// Storage model (DynamoDB):
//   - PK: id
//
// InvoiceNumber is globally unique with format <year>-<4-digit sequence>,
// the sequence restarting per calendar year. Total mirrors the sum of item
// totals whenever Items is non-empty.
type Invoice struct {
	ID            string        `json:"id"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	CompanyName   string        `json:"companyName,omitempty"`
	Country       string        `json:"country"`
	StreetAddress string        `json:"streetAddress"`
	City          string        `json:"city"`
	Region        string        `json:"region"`
	PostalCode    string        `json:"postalCode,omitempty"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	OrderNotes    string        `json:"orderNotes,omitempty"`
	InvoiceNumber string        `json:"invoiceNumber"`
	Status        InvoiceStatus `json:"status"`
	Items         []InvoiceItem `json:"items"`
	Total         float64       `json:"total"`
	Currency      string        `json:"currency"`
	InternalNotes string        `json:"internalNotes,omitempty"`
	CreatedBy     string        `json:"createdBy"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	DueDate       time.Time     `json:"dueDate"`
}

// FullName returns the customer name as shown on the printed document.
func (i Invoice) FullName() string {
	return i.FirstName + " " + i.LastName
}
