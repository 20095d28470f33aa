package interfaces

import (
	"context"

	"cercovibrados/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// GetByID returns a zero-value Product (empty ID) when the document does not
// exist; callers translate that into their own not-found error.
type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}
