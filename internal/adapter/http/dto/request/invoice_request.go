package request

import (
	"cercovibrados/internal/domain/entities"
	"cercovibrados/internal/usecase"
)

type InvoiceItemRequest struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// CreateInvoiceRequest carries the admin-entered invoice data. Total is only
// honored when no items are supplied; otherwise the server recomputes it.
type CreateInvoiceRequest struct {
	FirstName     string               `json:"firstName"`
	LastName      string               `json:"lastName"`
	CompanyName   string               `json:"companyName"`
	Country       string               `json:"country"`
	StreetAddress string               `json:"streetAddress"`
	City          string               `json:"city"`
	Region        string               `json:"region"`
	PostalCode    string               `json:"postalCode"`
	Phone         string               `json:"phone"`
	Email         string               `json:"email"`
	OrderNotes    string               `json:"orderNotes"`
	InternalNotes string               `json:"internalNotes"`
	Items         []InvoiceItemRequest `json:"items"`
	Total         float64              `json:"total"`
}

func (r CreateInvoiceRequest) ToInput() usecase.CreateInvoiceInput {
	return usecase.CreateInvoiceInput{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		CompanyName:   r.CompanyName,
		Country:       r.Country,
		StreetAddress: r.StreetAddress,
		City:          r.City,
		Region:        r.Region,
		PostalCode:    r.PostalCode,
		Phone:         r.Phone,
		Email:         r.Email,
		OrderNotes:    r.OrderNotes,
		InternalNotes: r.InternalNotes,
		Items:         toItemEntities(r.Items),
		Total:         r.Total,
	}
}

// UpdateInvoiceRequest is a partial update: absent fields stay untouched,
// which is why everything is a pointer.
type UpdateInvoiceRequest struct {
	FirstName     *string               `json:"firstName"`
	LastName      *string               `json:"lastName"`
	CompanyName   *string               `json:"companyName"`
	StreetAddress *string               `json:"streetAddress"`
	City          *string               `json:"city"`
	Region        *string               `json:"region"`
	PostalCode    *string               `json:"postalCode"`
	Phone         *string               `json:"phone"`
	Email         *string               `json:"email"`
	OrderNotes    *string               `json:"orderNotes"`
	InternalNotes *string               `json:"internalNotes"`
	Status        *string               `json:"status"`
	Items         *[]InvoiceItemRequest `json:"items"`
	Total         *float64              `json:"total"`
}

func (r UpdateInvoiceRequest) ToInput() usecase.UpdateInvoiceInput {
	in := usecase.UpdateInvoiceInput{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		CompanyName:   r.CompanyName,
		StreetAddress: r.StreetAddress,
		City:          r.City,
		Region:        r.Region,
		PostalCode:    r.PostalCode,
		Phone:         r.Phone,
		Email:         r.Email,
		OrderNotes:    r.OrderNotes,
		InternalNotes: r.InternalNotes,
		Status:        r.Status,
		Total:         r.Total,
	}
	if r.Items != nil {
		items := toItemEntities(*r.Items)
		in.Items = &items
	}
	return in
}

func toItemEntities(items []InvoiceItemRequest) []entities.InvoiceItem {
	out := make([]entities.InvoiceItem, len(items))
	for i, it := range items {
		out[i] = entities.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}
	return out
}
