package interfaces

import (
	"context"

	"cercovibrados/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// GetByUsername resolves through the username GSI and returns a zero-value
// User (empty ID) when no credential record matches.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
}
