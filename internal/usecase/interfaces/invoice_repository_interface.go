package interfaces

import (
	"context"

	"cercovibrados/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// GetByID/GetByNumber return a zero-value Invoice (empty ID) when nothing
// matches. List returns every invoice; filtering, search and pagination are
// use-case concerns because the store is a plain document table.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByNumber(ctx context.Context, number string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	ListNumbersByYear(ctx context.Context, year int) ([]string, error)
	Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
}
