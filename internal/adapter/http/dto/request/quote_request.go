package request

import "cercovibrados/internal/domain/entities"

// QuoteRequest is the public fence-estimate form payload.
type QuoteRequest struct {
	Name         string `json:"name" binding:"required"`
	RUT          string `json:"rut" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Address      string `json:"address" binding:"required"`
	Email        string `json:"email" binding:"required"`
	FenceHeight  string `json:"fenceHeight" binding:"required"`
	FenceType    string `json:"fenceType" binding:"required"`
	LinearMeters string `json:"linearMeters" binding:"required"`
	Message      string `json:"message"`
}

func (r QuoteRequest) ToEntity() entities.Quote {
	return entities.Quote{
		Name:         r.Name,
		RUT:          r.RUT,
		Phone:        r.Phone,
		Address:      r.Address,
		Email:        r.Email,
		FenceHeight:  r.FenceHeight,
		FenceType:    r.FenceType,
		LinearMeters: r.LinearMeters,
		Message:      r.Message,
	}
}
