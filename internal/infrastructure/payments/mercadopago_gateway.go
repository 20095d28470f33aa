package payments

import (
	"context"
	"errors"
	"log"

	"cercovibrados/internal/domain/entities"
	"cercovibrados/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway creates checkout preferences so customers can pay an
// invoice online. The invoice number doubles as the external reference for
// later reconciliation.
type MercadoPagoGateway struct {
	client preference.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePaymentLink(ctx context.Context, inv entities.Invoice) (string, string, error) {
	req := preference.Request{
		ExternalReference: inv.InvoiceNumber,
		Items: []preference.ItemRequest{
			{
				Title:       "Factura " + inv.InvoiceNumber,
				Description: "Cerco vibrado - " + inv.FullName(),
				Quantity:    1,
				UnitPrice:   inv.Total,
				CurrencyID:  inv.Currency,
			},
		},
		Payer: &preference.PayerRequest{
			Name:    inv.FirstName,
			Surname: inv.LastName,
			Email:   inv.Email,
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] preference create failed invoice=%s err=%v", inv.InvoiceNumber, err)
		return "", "", err
	}
	log.Printf("[payment][gateway] preference created invoice=%s preference_id=%s", inv.InvoiceNumber, resp.ID)

	return resp.ID, resp.InitPoint, nil
}
