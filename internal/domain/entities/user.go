package entities

import "time"

// User roles. Only admins may reach the back-office endpoints.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an authentication credential record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (username-index): username
//
// PasswordHash is a bcrypt hash and never leaves the persistence layer.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
