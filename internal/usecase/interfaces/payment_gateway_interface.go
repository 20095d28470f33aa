package interfaces

import (
	"context"

	"cercovibrados/internal/domain/entities"
)

// IPaymentGateway abstracts external checkout providers (Mercado Pago).
//
// CreatePaymentLink registers a checkout preference for the invoice total and
// returns the provider preference id plus the URL the customer opens to pay.
type IPaymentGateway interface {
	CreatePaymentLink(ctx context.Context, inv entities.Invoice) (preferenceID string, url string, err error)
}
