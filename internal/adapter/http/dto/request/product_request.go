package request

import "cercovibrados/internal/domain/entities"

// ProductForm is the multipart form accepted by product create/update; the
// optional image file travels separately in the multipart body.
type ProductForm struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description"`
	Stock       int     `form:"stock"`
	Price       float64 `form:"price"`
}

func (r ProductForm) ToEntity() entities.Product {
	return entities.Product{
		Name:        r.Name,
		Description: r.Description,
		Stock:       r.Stock,
		Price:       r.Price,
	}
}
