package response

import (
	"time"

	"cercovibrados/internal/domain/entities"
	"cercovibrados/internal/usecase"
)

type InvoiceItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

type InvoiceResponse struct {
	ID            string                `json:"id"`
	FirstName     string                `json:"firstName"`
	LastName      string                `json:"lastName"`
	FullName      string                `json:"fullName"`
	CompanyName   string                `json:"companyName,omitempty"`
	Country       string                `json:"country"`
	StreetAddress string                `json:"streetAddress"`
	City          string                `json:"city"`
	Region        string                `json:"region"`
	PostalCode    string                `json:"postalCode,omitempty"`
	Phone         string                `json:"phone"`
	Email         string                `json:"email"`
	OrderNotes    string                `json:"orderNotes,omitempty"`
	InvoiceNumber string                `json:"invoiceNumber"`
	Status        string                `json:"status"`
	Items         []InvoiceItemResponse `json:"items"`
	Total         float64               `json:"total"`
	Currency      string                `json:"currency"`
	InternalNotes string                `json:"internalNotes,omitempty"`
	CreatedBy     string                `json:"createdBy"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
	DueDate       time.Time             `json:"dueDate"`
}

type CreateInvoiceResponse struct {
	Message string          `json:"message"`
	Invoice InvoiceResponse `json:"invoice"`
}

type UpdateInvoiceResponse struct {
	Message string          `json:"message"`
	Invoice InvoiceResponse `json:"invoice"`
}

type PaginationResponse struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalInvoices int  `json:"totalInvoices"`
	HasNext       bool `json:"hasNext"`
	HasPrev       bool `json:"hasPrev"`
}

type InvoiceListResponse struct {
	Invoices   []InvoiceResponse  `json:"invoices"`
	Pagination PaginationResponse `json:"pagination"`
}

type InvoicesByStatusResponse struct {
	Draft     int `json:"draft"`
	Pending   int `json:"pending"`
	Paid      int `json:"paid"`
	Cancelled int `json:"cancelled"`
}

type RevenueResponse struct {
	Total     float64 `json:"total"`
	ThisMonth float64 `json:"thisMonth"`
}

type InvoiceStatsResponse struct {
	TotalInvoices    int                      `json:"totalInvoices"`
	InvoicesByStatus InvoicesByStatusResponse `json:"invoicesByStatus"`
	Revenue          RevenueResponse          `json:"revenue"`
}

type PaymentLinkResponse struct {
	PreferenceID string `json:"preferenceId"`
	URL          string `json:"url"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = InvoiceItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		}
	}
	return InvoiceResponse{
		ID:            inv.ID,
		FirstName:     inv.FirstName,
		LastName:      inv.LastName,
		FullName:      inv.FullName(),
		CompanyName:   inv.CompanyName,
		Country:       inv.Country,
		StreetAddress: inv.StreetAddress,
		City:          inv.City,
		Region:        inv.Region,
		PostalCode:    inv.PostalCode,
		Phone:         inv.Phone,
		Email:         inv.Email,
		OrderNotes:    inv.OrderNotes,
		InvoiceNumber: inv.InvoiceNumber,
		Status:        string(inv.Status),
		Items:         items,
		Total:         inv.Total,
		Currency:      inv.Currency,
		InternalNotes: inv.InternalNotes,
		CreatedBy:     inv.CreatedBy,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
		DueDate:       inv.DueDate,
	}
}

func FromInvoiceListing(listing usecase.InvoiceListing) InvoiceListResponse {
	invoices := make([]InvoiceResponse, len(listing.Invoices))
	for i, inv := range listing.Invoices {
		invoices[i] = FromInvoice(inv)
	}
	return InvoiceListResponse{
		Invoices: invoices,
		Pagination: PaginationResponse{
			CurrentPage:   listing.Pagination.CurrentPage,
			TotalPages:    listing.Pagination.TotalPages,
			TotalInvoices: listing.Pagination.TotalInvoices,
			HasNext:       listing.Pagination.HasNext,
			HasPrev:       listing.Pagination.HasPrev,
		},
	}
}

func FromInvoiceStats(stats usecase.InvoiceStats) InvoiceStatsResponse {
	return InvoiceStatsResponse{
		TotalInvoices: stats.TotalInvoices,
		InvoicesByStatus: InvoicesByStatusResponse{
			Draft:     stats.Draft,
			Pending:   stats.Pending,
			Paid:      stats.Paid,
			Cancelled: stats.Cancelled,
		},
		Revenue: RevenueResponse{
			Total:     stats.TotalRevenue,
			ThisMonth: stats.ThisMonthRevenue,
		},
	}
}

func FromPaymentLink(link usecase.PaymentLink) PaymentLinkResponse {
	return PaymentLinkResponse{PreferenceID: link.PreferenceID, URL: link.URL}
}
