package entities

// Product is a catalog/inventory item managed by admins.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Stock and price are plain numeric fields with no reservation semantics;
// concurrent admin edits are last-write-wins. Image holds the public path of
// the uploaded picture (e.g. /uploads/169...-fence.jpg), empty when none.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Stock       int     `json:"stock"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
}
