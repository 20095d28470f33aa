package response

import (
	"time"

	"cercovibrados/internal/domain/entities"
)

type QuoteResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RUT          string    `json:"rut"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Email        string    `json:"email"`
	FenceHeight  string    `json:"fenceHeight"`
	FenceType    string    `json:"fenceType"`
	LinearMeters string    `json:"linearMeters"`
	Message      string    `json:"message,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type SubmitQuoteResponse struct {
	Message string        `json:"message"`
	Quote   QuoteResponse `json:"quote"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:           q.ID,
		Name:         q.Name,
		RUT:          q.RUT,
		Phone:        q.Phone,
		Address:      q.Address,
		Email:        q.Email,
		FenceHeight:  q.FenceHeight,
		FenceType:    q.FenceType,
		LinearMeters: q.LinearMeters,
		Message:      q.Message,
		Timestamp:    q.CreatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = FromQuote(q)
	}
	return out
}
