package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"cercovibrados/internal/domain/entities"
	"cercovibrados/internal/domain/rut"
	"cercovibrados/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingQuoteFields = errors.New("missing required quote fields")
	ErrInvalidQuoteEmail  = errors.New("invalid quote email")
	ErrInvalidQuoteRUT    = errors.New("invalid quote rut")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IQuoteUseCase exposes the public quote intake and the admin listing.
type IQuoteUseCase interface {
	Submit(ctx context.Context, q entities.Quote) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

// Submit validates a customer quote request and persists it. The RUT is
// checksum-verified and stored normalized as XX.XXX.XXX-X.
func (u *QuoteUseCase) Submit(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.Name = strings.TrimSpace(q.Name)
	q.RUT = strings.TrimSpace(q.RUT)
	q.Phone = strings.TrimSpace(q.Phone)
	q.Address = strings.TrimSpace(q.Address)
	q.Email = strings.ToLower(strings.TrimSpace(q.Email))
	q.FenceHeight = strings.TrimSpace(q.FenceHeight)
	q.FenceType = strings.TrimSpace(q.FenceType)
	q.LinearMeters = strings.TrimSpace(q.LinearMeters)
	q.Message = strings.TrimSpace(q.Message)

	if q.Name == "" || q.RUT == "" || q.Phone == "" || q.Address == "" || q.Email == "" ||
		q.FenceHeight == "" || q.FenceType == "" || q.LinearMeters == "" {
		return entities.Quote{}, ErrMissingQuoteFields
	}
	if !emailPattern.MatchString(q.Email) {
		return entities.Quote{}, ErrInvalidQuoteEmail
	}
	if !rut.Validate(q.RUT) {
		return entities.Quote{}, ErrInvalidQuoteRUT
	}

	q.ID = uuid.NewString()
	q.RUT = rut.Format(q.RUT)
	q.CreatedAt = time.Now().UTC()

	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}
