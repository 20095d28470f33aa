package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cercovibrados/internal/domain/entities"
	"cercovibrados/internal/usecase/interfaces"
	"cercovibrados/pkg/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const accessTokenTTL = time.Hour

// IAuthUseCase exposes credential registration and bearer-token issuance.
type IAuthUseCase interface {
	Register(ctx context.Context, username, password, role string) (entities.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type AuthUseCase struct {
	users     interfaces.IUserRepository
	jwtSecret string
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, jwtSecret string) *AuthUseCase {
	return &AuthUseCase{users: users, jwtSecret: jwtSecret}
}

func (u *AuthUseCase) Register(ctx context.Context, username, password, role string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, ErrMissingCredentials
	}
	if role != entities.RoleAdmin {
		role = entities.RoleUser
	}

	existing, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	return u.users.Create(ctx, user)
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user.ID == "" {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return token.Generate(u.jwtSecret, user.ID, user.Username, user.Role, accessTokenTTL)
}
