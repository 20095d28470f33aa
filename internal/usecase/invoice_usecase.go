package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"cercovibrados/internal/domain/entities"
	"cercovibrados/internal/domain/invoicenum"
	"cercovibrados/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound           = errors.New("invoice not found")
	ErrMissingInvoiceFields      = errors.New("missing required invoice fields")
	ErrInvalidInvoiceEmail       = errors.New("invalid invoice email")
	ErrInvalidInvoiceStatus      = errors.New("invalid invoice status")
	ErrDuplicateInvoiceNumber    = errors.New("duplicate invoice number")
	ErrInvoiceNotPayable         = errors.New("invoice not payable")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
)

const (
	defaultInvoiceCountry  = "Chile"
	defaultInvoiceCurrency = "CLP"
	defaultListLimit       = 10
	dueDateOffset          = 30 * 24 * time.Hour
)

// CreateInvoiceInput is the admin-entered invoice data, optionally pre-filled
// from a quote on the client. Total is only honored when Items is empty.
type CreateInvoiceInput struct {
	FirstName     string
	LastName      string
	CompanyName   string
	Country       string
	StreetAddress string
	City          string
	Region        string
	PostalCode    string
	Phone         string
	Email         string
	OrderNotes    string
	InternalNotes string
	Items         []entities.InvoiceItem
	Total         float64
}

// UpdateInvoiceInput carries a partial update: nil fields are left untouched.
// Supplying Items replaces the item list and recomputes every total;
// supplying only Total sets it directly.
type UpdateInvoiceInput struct {
	FirstName     *string
	LastName      *string
	CompanyName   *string
	StreetAddress *string
	City          *string
	Region        *string
	PostalCode    *string
	Phone         *string
	Email         *string
	OrderNotes    *string
	InternalNotes *string
	Status        *string
	Items         *[]entities.InvoiceItem
	Total         *float64
}

// ListInvoicesQuery selects a page of invoices. Status outside the known enum
// is ignored; Search matches case-insensitively against name, company, email
// and invoice number.
type ListInvoicesQuery struct {
	Page   int
	Limit  int
	Status string
	Search string
}

type Pagination struct {
	CurrentPage   int
	TotalPages    int
	TotalInvoices int
	HasNext       bool
	HasPrev       bool
}

type InvoiceListing struct {
	Invoices   []entities.Invoice
	Pagination Pagination
}

// InvoiceStats aggregates counts per status plus revenue over paid invoices.
type InvoiceStats struct {
	TotalInvoices    int
	Draft            int
	Pending          int
	Paid             int
	Cancelled        int
	TotalRevenue     float64
	ThisMonthRevenue float64
}

// PaymentLink is a provider checkout reference for an invoice.
type PaymentLink struct {
	PreferenceID string
	URL          string
}

// IInvoiceUseCase exposes the invoice back office: CRUD, listing with
// filters, aggregate stats and checkout-link generation.
type IInvoiceUseCase interface {
	Create(ctx context.Context, in CreateInvoiceInput, createdBy string) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, q ListInvoicesQuery) (InvoiceListing, error)
	Update(ctx context.Context, id string, in UpdateInvoiceInput) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (InvoiceStats, error)
	CreatePaymentLink(ctx context.Context, id string) (PaymentLink, error)
}

type InvoiceUseCase struct {
	repo     interfaces.IInvoiceRepository
	counters interfaces.IInvoiceCounterRepository
	gateway  interfaces.IPaymentGateway
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, counters interfaces.IInvoiceCounterRepository, gateway interfaces.IPaymentGateway) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, counters: counters, gateway: gateway}
}

func (u *InvoiceUseCase) Create(ctx context.Context, in CreateInvoiceInput, createdBy string) (entities.Invoice, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.StreetAddress = strings.TrimSpace(in.StreetAddress)
	in.City = strings.TrimSpace(in.City)
	in.Region = strings.TrimSpace(in.Region)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.FirstName == "" || in.LastName == "" || in.StreetAddress == "" || in.City == "" ||
		in.Region == "" || in.Phone == "" || in.Email == "" {
		return entities.Invoice{}, ErrMissingInvoiceFields
	}
	if !emailPattern.MatchString(in.Email) {
		return entities.Invoice{}, ErrInvalidInvoiceEmail
	}

	now := time.Now().UTC()
	number, err := u.allocateNumber(ctx, now.Year())
	if err != nil {
		return entities.Invoice{}, err
	}
	if existing, err := u.repo.GetByNumber(ctx, number); err != nil {
		return entities.Invoice{}, err
	} else if existing.ID != "" {
		return entities.Invoice{}, ErrDuplicateInvoiceNumber
	}

	items, total := computeItemTotals(in.Items)
	if len(items) == 0 {
		total = in.Total
	}

	country := strings.TrimSpace(in.Country)
	if country == "" {
		country = defaultInvoiceCountry
	}

	inv := entities.Invoice{
		ID:            uuid.NewString(),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		CompanyName:   strings.TrimSpace(in.CompanyName),
		Country:       country,
		StreetAddress: in.StreetAddress,
		City:          in.City,
		Region:        in.Region,
		PostalCode:    strings.TrimSpace(in.PostalCode),
		Phone:         in.Phone,
		Email:         in.Email,
		OrderNotes:    strings.TrimSpace(in.OrderNotes),
		InvoiceNumber: number,
		Status:        entities.InvoiceStatusDraft,
		Items:         items,
		Total:         total,
		Currency:      defaultInvoiceCurrency,
		InternalNotes: strings.TrimSpace(in.InternalNotes),
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
		DueDate:       now.Add(dueDateOffset),
	}
	return u.repo.Create(ctx, inv)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context, q ListInvoicesQuery) (InvoiceListing, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultListLimit
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return InvoiceListing{}, err
	}

	filtered := all[:0:0]
	status := entities.InvoiceStatus(q.Status)
	filterStatus := entities.ValidInvoiceStatus(status)
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, inv := range all {
		if filterStatus && inv.Status != status {
			continue
		}
		if search != "" && !matchesSearch(inv, search) {
			continue
		}
		filtered = append(filtered, inv)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := len(filtered)
	totalPages := (total + q.Limit - 1) / q.Limit
	start := (q.Page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}

	return InvoiceListing{
		Invoices: filtered[start:end],
		Pagination: Pagination{
			CurrentPage:   q.Page,
			TotalPages:    totalPages,
			TotalInvoices: total,
			HasNext:       q.Page < totalPages,
			HasPrev:       q.Page > 1,
		},
	}, nil
}

func (u *InvoiceUseCase) Update(ctx context.Context, id string, in UpdateInvoiceInput) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	applyRequired(&inv.FirstName, in.FirstName)
	applyRequired(&inv.LastName, in.LastName)
	applyRequired(&inv.StreetAddress, in.StreetAddress)
	applyRequired(&inv.City, in.City)
	applyRequired(&inv.Region, in.Region)
	applyRequired(&inv.Phone, in.Phone)
	applyOptional(&inv.CompanyName, in.CompanyName)
	applyOptional(&inv.PostalCode, in.PostalCode)
	applyOptional(&inv.OrderNotes, in.OrderNotes)
	applyOptional(&inv.InternalNotes, in.InternalNotes)

	if in.Email != nil && strings.TrimSpace(*in.Email) != "" {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if !emailPattern.MatchString(email) {
			return entities.Invoice{}, ErrInvalidInvoiceEmail
		}
		inv.Email = email
	}

	if in.Status != nil {
		status := entities.InvoiceStatus(strings.TrimSpace(*in.Status))
		if !entities.ValidInvoiceStatus(status) {
			return entities.Invoice{}, ErrInvalidInvoiceStatus
		}
		inv.Status = status
	}

	// Replacing items always recomputes both line and invoice totals; a bare
	// total only applies when the item list is untouched.
	if in.Items != nil {
		inv.Items, inv.Total = computeItemTotals(*in.Items)
	} else if in.Total != nil {
		inv.Total = *in.Total
	}

	inv.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, inv)
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *InvoiceUseCase) Stats(ctx context.Context) (InvoiceStats, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return InvoiceStats{}, err
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	stats := InvoiceStats{TotalInvoices: len(all)}
	for _, inv := range all {
		switch inv.Status {
		case entities.InvoiceStatusDraft:
			stats.Draft++
		case entities.InvoiceStatusPending:
			stats.Pending++
		case entities.InvoiceStatusPaid:
			stats.Paid++
			stats.TotalRevenue += inv.Total
			if !inv.CreatedAt.Before(monthStart) {
				stats.ThisMonthRevenue += inv.Total
			}
		case entities.InvoiceStatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

func (u *InvoiceUseCase) CreatePaymentLink(ctx context.Context, id string) (PaymentLink, error) {
	if u.gateway == nil {
		return PaymentLink{}, ErrPaymentGatewayUnavailable
	}

	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return PaymentLink{}, err
	}
	if inv.Status == entities.InvoiceStatusDraft || inv.Status == entities.InvoiceStatusCancelled {
		return PaymentLink{}, ErrInvoiceNotPayable
	}

	preferenceID, url, err := u.gateway.CreatePaymentLink(ctx, inv)
	if err != nil {
		return PaymentLink{}, err
	}
	return PaymentLink{PreferenceID: preferenceID, URL: url}, nil
}

// allocateNumber reserves the next sequence for year through the atomic
// counter. A year without a counter document is seeded from the largest
// existing invoice number of that year; losing the seeding race falls back
// to the freshly created counter.
func (u *InvoiceUseCase) allocateNumber(ctx context.Context, year int) (string, error) {
	seq, ok, err := u.counters.Increment(ctx, year)
	if err != nil {
		return "", err
	}
	if !ok {
		numbers, err := u.repo.ListNumbersByYear(ctx, year)
		if err != nil {
			return "", err
		}
		seq = invoicenum.MaxSequence(numbers, year) + 1

		created, err := u.counters.Initialize(ctx, year, seq)
		if err != nil {
			return "", err
		}
		if !created {
			seq, _, err = u.counters.Increment(ctx, year)
			if err != nil {
				return "", err
			}
		}
	}
	return invoicenum.Format(year, seq), nil
}

// computeItemTotals recomputes each line total as quantity * unit price
// (quantity defaulting to 1) and returns the new lines plus their sum.
func computeItemTotals(items []entities.InvoiceItem) ([]entities.InvoiceItem, float64) {
	if len(items) == 0 {
		return []entities.InvoiceItem{}, 0
	}
	out := make([]entities.InvoiceItem, len(items))
	sum := 0.0
	for i, it := range items {
		if it.Quantity == 0 {
			it.Quantity = 1
		}
		it.Total = float64(it.Quantity) * it.UnitPrice
		out[i] = it
		sum += it.Total
	}
	return out, sum
}

func matchesSearch(inv entities.Invoice, search string) bool {
	for _, field := range []string{inv.FirstName, inv.LastName, inv.CompanyName, inv.Email, inv.InvoiceNumber} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func applyRequired(dst *string, src *string) {
	if src != nil && strings.TrimSpace(*src) != "" {
		*dst = strings.TrimSpace(*src)
	}
}

func applyOptional(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
