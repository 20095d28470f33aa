package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"cercovibrados/internal/domain/entities"
	mock_interfaces "cercovibrados/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validInvoiceInput() CreateInvoiceInput {
	return CreateInvoiceInput{
		FirstName:     "María",
		LastName:      "González",
		CompanyName:   "Cercos del Sur",
		StreetAddress: "Calle Larga 100",
		City:          "Temuco",
		Region:        "Araucanía",
		Phone:         "+56 9 8765 4321",
		Email:         "maria@example.com",
		Items: []entities.InvoiceItem{
			{Description: "Poste vibrado", Quantity: 2, UnitPrice: 1000},
			{Description: "Instalación", UnitPrice: 500},
		},
	}
}

type invoiceMocks struct {
	repo     *mock_interfaces.MockIInvoiceRepository
	counters *mock_interfaces.MockIInvoiceCounterRepository
	gateway  *mock_interfaces.MockIPaymentGateway
}

func newInvoiceUseCase(t *testing.T) (*InvoiceUseCase, invoiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := invoiceMocks{
		repo:     mock_interfaces.NewMockIInvoiceRepository(ctrl),
		counters: mock_interfaces.NewMockIInvoiceCounterRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	return NewInvoiceUseCase(m.repo, m.counters, m.gateway), m
}

func TestInvoiceUseCase_Create(t *testing.T) {
	year := time.Now().UTC().Year()

	t.Run("missing fields", func(t *testing.T) {
		uc, _ := newInvoiceUseCase(t)
		in := validInvoiceInput()
		in.City = "  "
		_, err := uc.Create(context.Background(), in, "admin")
		if !errors.Is(err, ErrMissingInvoiceFields) {
			t.Fatalf("expected ErrMissingInvoiceFields, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc, _ := newInvoiceUseCase(t)
		in := validInvoiceInput()
		in.Email = "maria@nodomain"
		_, err := uc.Create(context.Background(), in, "admin")
		if !errors.Is(err, ErrInvalidInvoiceEmail) {
			t.Fatalf("expected ErrInvalidInvoiceEmail, got %v", err)
		}
	})

	t.Run("success with existing counter", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)

		wantNumber := fmt.Sprintf("%04d-0001", year)
		m.counters.EXPECT().Increment(gomock.Any(), year).Return(1, true, nil)
		m.repo.EXPECT().GetByNumber(gomock.Any(), wantNumber).Return(entities.Invoice{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.InvoiceNumber != wantNumber {
					t.Fatalf("expected number %q, got %q", wantNumber, inv.InvoiceNumber)
				}
				if inv.Status != entities.InvoiceStatusDraft {
					t.Fatalf("expected draft status, got %q", inv.Status)
				}
				if inv.Country != "Chile" || inv.Currency != "CLP" {
					t.Fatalf("expected Chile/CLP defaults, got %q/%q", inv.Country, inv.Currency)
				}
				if inv.Total != 2500 {
					t.Fatalf("expected total 2500, got %v", inv.Total)
				}
				if inv.Items[1].Quantity != 1 || inv.Items[1].Total != 500 {
					t.Fatalf("expected quantity default applied: %+v", inv.Items[1])
				}
				wantDue := inv.CreatedAt.Add(30 * 24 * time.Hour)
				if !inv.DueDate.Equal(wantDue) {
					t.Fatalf("expected due date %v, got %v", wantDue, inv.DueDate)
				}
				if inv.CreatedBy != "admin" {
					t.Fatalf("expected createdBy admin, got %q", inv.CreatedBy)
				}
				return inv, nil
			},
		)

		if _, err := uc.Create(context.Background(), validInvoiceInput(), "admin"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("seeds counter from existing numbers", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)

		existing := []string{
			fmt.Sprintf("%04d-0001", year),
			fmt.Sprintf("%04d-0037", year),
			fmt.Sprintf("%04d-0099", year-1),
		}
		wantNumber := fmt.Sprintf("%04d-0038", year)

		m.counters.EXPECT().Increment(gomock.Any(), year).Return(0, false, nil)
		m.repo.EXPECT().ListNumbersByYear(gomock.Any(), year).Return(existing, nil)
		m.counters.EXPECT().Initialize(gomock.Any(), year, 38).Return(true, nil)
		m.repo.EXPECT().GetByNumber(gomock.Any(), wantNumber).Return(entities.Invoice{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.InvoiceNumber != wantNumber {
					t.Fatalf("expected number %q, got %q", wantNumber, inv.InvoiceNumber)
				}
				return inv, nil
			},
		)

		if _, err := uc.Create(context.Background(), validInvoiceInput(), "admin"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost seeding race falls back to increment", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)

		wantNumber := fmt.Sprintf("%04d-0002", year)
		m.counters.EXPECT().Increment(gomock.Any(), year).Return(0, false, nil)
		m.repo.EXPECT().ListNumbersByYear(gomock.Any(), year).Return(nil, nil)
		m.counters.EXPECT().Initialize(gomock.Any(), year, 1).Return(false, nil)
		m.counters.EXPECT().Increment(gomock.Any(), year).Return(2, true, nil)
		m.repo.EXPECT().GetByNumber(gomock.Any(), wantNumber).Return(entities.Invoice{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) { return inv, nil },
		)

		if _, err := uc.Create(context.Background(), validInvoiceInput(), "admin"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate number", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)

		m.counters.EXPECT().Increment(gomock.Any(), year).Return(7, true, nil)
		m.repo.EXPECT().GetByNumber(gomock.Any(), fmt.Sprintf("%04d-0007", year)).Return(entities.Invoice{ID: "other"}, nil)

		_, err := uc.Create(context.Background(), validInvoiceInput(), "admin")
		if !errors.Is(err, ErrDuplicateInvoiceNumber) {
			t.Fatalf("expected ErrDuplicateInvoiceNumber, got %v", err)
		}
	})

	t.Run("no items honors provided total", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)

		m.counters.EXPECT().Increment(gomock.Any(), year).Return(3, true, nil)
		m.repo.EXPECT().GetByNumber(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.Total != 99000 {
					t.Fatalf("expected total 99000, got %v", inv.Total)
				}
				if len(inv.Items) != 0 {
					t.Fatalf("expected no items, got %+v", inv.Items)
				}
				return inv, nil
			},
		)

		in := validInvoiceInput()
		in.Items = nil
		in.Total = 99000
		if _, err := uc.Create(context.Background(), in, "admin"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc, _ := newInvoiceUseCase(t)
		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Invoice{}, nil)
		if _, err := uc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestInvoiceUseCase_List(t *testing.T) {
	now := time.Now().UTC()
	stored := []entities.Invoice{
		{ID: "a", FirstName: "Ana", InvoiceNumber: "2026-0001", Status: entities.InvoiceStatusPaid, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "b", FirstName: "Benito", CompanyName: "Cercos Ltda", InvoiceNumber: "2026-0002", Status: entities.InvoiceStatusDraft, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "c", FirstName: "Carla", InvoiceNumber: "2026-0003", Status: entities.InvoiceStatusPaid, CreatedAt: now.Add(-time.Hour)},
	}

	t.Run("newest first with defaults", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.repo.EXPECT().List(gomock.Any()).Return(stored, nil)

		listing, err := uc.List(context.Background(), ListInvoicesQuery{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(listing.Invoices) != 3 || listing.Invoices[0].ID != "c" || listing.Invoices[2].ID != "a" {
			t.Fatalf("unexpected order: %+v", listing.Invoices)
		}
		p := listing.Pagination
		if p.CurrentPage != 1 || p.TotalPages != 1 || p.TotalInvoices != 3 || p.HasNext || p.HasPrev {
			t.Fatalf("unexpected pagination: %+v", p)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.repo.EXPECT().List(gomock.Any()).Return(stored, nil)

		listing, err := uc.List(context.Background(), ListInvoicesQuery{Status: "paid"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(listing.Invoices) != 2 {
			t.Fatalf("expected 2 paid invoices, got %d", len(listing.Invoices))
		}
	})

	t.Run("unknown status is ignored", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.repo.EXPECT().List(gomock.Any()).Return(stored, nil)

		listing, err := uc.List(context.Background(), ListInvoicesQuery{Status: "archived"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(listing.Invoices) != 3 {
			t.Fatalf("expected unfiltered listing, got %d", len(listing.Invoices))
		}
	})

	t.Run("search matches company case-insensitively", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.repo.EXPECT().List(gomock.Any()).Return(stored, nil)

		listing, err := uc.List(context.Background(), ListInvoicesQuery{Search: "CERCOS"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(listing.Invoices) != 1 || listing.Invoices[0].ID != "b" {
			t.Fatalf("unexpected search result: %+v", listing.Invoices)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.repo.EXPECT().List(gomock.Any()).Return(stored, nil)

		listing, err := uc.List(context.Background(), ListInvoicesQuery{Page: 2, Limit: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(listing.Invoices) != 1 || listing.Invoices[0].ID != "a" {
			t.Fatalf("unexpected page: %+v", listing.Invoices)
		}
		p := listing.Pagination
		if p.CurrentPage != 2 || p.TotalPages != 2 || !p.HasPrev || p.HasNext {
			t.Fatalf("unexpected pagination: %+v", p)
		}
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.repo.EXPECT().List(gomock.Any()).Return(stored, nil)

		listing, err := uc.List(context.Background(), ListInvoicesQuery{Page: 9, Limit: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(listing.Invoices) != 0 {
			t.Fatalf("expected empty page, got %+v", listing.Invoices)
		}
	})
}

func TestInvoiceUseCase_Update(t *testing.T) {
	stored := entities.Invoice{
		ID:            "inv-1",
		FirstName:     "María",
		LastName:      "González",
		StreetAddress: "Calle Larga 100",
		City:          "Temuco",
		Region:        "Araucanía",
		Phone:         "+56 9 8765 4321",
		Email:         "maria@example.com",
		InvoiceNumber: "2026-0001",
		Status:        entities.InvoiceStatusDraft,
		Total:         2500,
	}

	strptr := func(s string) *string { return &s }

	t.Run("not found", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Invoice{}, nil)

		_, err := uc.Update(context.Background(), "missing", UpdateInvoiceInput{})
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(stored, nil)

		_, err := uc.Update(context.Background(), "inv-1", UpdateInvoiceInput{Status: strptr("archived")})
		if !errors.Is(err, ErrInvalidInvoiceStatus) {
			t.Fatalf("expected ErrInvalidInvoiceStatus, got %v", err)
		}
	})

	t.Run("partial update leaves other fields", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(stored, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.City != "Valdivia" {
					t.Fatalf("expected updated city, got %q", inv.City)
				}
				if inv.FirstName != "María" || inv.Total != 2500 {
					t.Fatalf("expected untouched fields: %+v", inv)
				}
				if inv.UpdatedAt.IsZero() {
					t.Fatalf("expected UpdatedAt to be set")
				}
				return inv, nil
			},
		)

		if _, err := uc.Update(context.Background(), "inv-1", UpdateInvoiceInput{City: strptr("Valdivia")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("items replacement recomputes totals", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(stored, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.Total != 4500 {
					t.Fatalf("expected total 4500, got %v", inv.Total)
				}
				if inv.Items[0].Total != 4500 {
					t.Fatalf("expected line total 4500, got %v", inv.Items[0].Total)
				}
				return inv, nil
			},
		)

		items := []entities.InvoiceItem{{Description: "Panel", Quantity: 3, UnitPrice: 1500}}
		total := 1.0 // ignored because items are supplied
		_, err := uc.Update(context.Background(), "inv-1", UpdateInvoiceInput{Items: &items, Total: &total})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("bare total applies without items", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(stored, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.Total != 7777 {
					t.Fatalf("expected total 7777, got %v", inv.Total)
				}
				return inv, nil
			},
		)

		total := 7777.0
		if _, err := uc.Update(context.Background(), "inv-1", UpdateInvoiceInput{Total: &total}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_Stats(t *testing.T) {
	uc, m := newInvoiceUseCase(t)

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	m.repo.EXPECT().List(gomock.Any()).Return([]entities.Invoice{
		{Status: entities.InvoiceStatusDraft},
		{Status: entities.InvoiceStatusPending},
		{Status: entities.InvoiceStatusPaid, Total: 1000, CreatedAt: monthStart.Add(time.Hour)},
		{Status: entities.InvoiceStatusPaid, Total: 2000, CreatedAt: monthStart.Add(-time.Hour)},
		{Status: entities.InvoiceStatusCancelled},
	}, nil)

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalInvoices != 5 || stats.Draft != 1 || stats.Pending != 1 || stats.Paid != 2 || stats.Cancelled != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.TotalRevenue != 3000 {
		t.Fatalf("expected total revenue 3000, got %v", stats.TotalRevenue)
	}
	if stats.ThisMonthRevenue != 1000 {
		t.Fatalf("expected month revenue 1000, got %v", stats.ThisMonthRevenue)
	}
}

func TestInvoiceUseCase_CreatePaymentLink(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil)
		_, err := uc.CreatePaymentLink(context.Background(), "inv-1")
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	t.Run("draft not payable", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusDraft}, nil)

		_, err := uc.CreatePaymentLink(context.Background(), "inv-1")
		if !errors.Is(err, ErrInvoiceNotPayable) {
			t.Fatalf("expected ErrInvoiceNotPayable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newInvoiceUseCase(t)
		inv := entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPending, Total: 2500}
		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(inv, nil)
		m.gateway.EXPECT().CreatePaymentLink(gomock.Any(), inv).Return("pref-1", "https://mp.example/checkout/pref-1", nil)

		link, err := uc.CreatePaymentLink(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link.PreferenceID != "pref-1" || link.URL != "https://mp.example/checkout/pref-1" {
			t.Fatalf("unexpected link: %+v", link)
		}
	})
}
