package interfaces

import (
	"context"

	"cercovibrados/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Quotes are append-only: the public form creates them and admins list them,
// newest first.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
}
