package entities

import "time"

// Quote is a customer-submitted fence estimate request.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Quotes are immutable once created: the public form writes them, admins read
// them and may use one as the template for an Invoice. There is no update or
// delete path.
type Quote struct {
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
	CreatedAt    time.Time `json:"timestamp"`
}
