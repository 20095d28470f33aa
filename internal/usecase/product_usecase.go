package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"cercovibrados/internal/domain/entities"
	"cercovibrados/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductInput = errors.New("invalid product input")
)

// ImageUpload carries a multipart image file from the HTTP layer. Data holds
// the full content so the store can sniff the magic number before writing.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// IProductUseCase exposes catalog management for the admin area.
type IProductUseCase interface {
	List(ctx context.Context) ([]entities.Product, error)
	Create(ctx context.Context, p entities.Product, image *ImageUpload) (entities.Product, error)
	Update(ctx context.Context, id string, p entities.Product, image *ImageUpload) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductUseCase struct {
	repo   interfaces.IProductRepository
	images interfaces.IImageStore
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, images interfaces.IImageStore) *ProductUseCase {
	return &ProductUseCase{repo: repo, images: images}
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *ProductUseCase) Create(ctx context.Context, p entities.Product, image *ImageUpload) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	if p.Name == "" {
		return entities.Product{}, ErrInvalidProductInput
	}

	if image != nil {
		path, err := u.images.Save(ctx, image.Filename, image.Data)
		if err != nil {
			return entities.Product{}, err
		}
		p.Image = path
	}

	p.ID = uuid.NewString()
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		// The image landed on disk before the document write failed; drop the
		// orphan best-effort.
		u.removeImage(ctx, p.Image)
		return entities.Product{}, err
	}
	return created, nil
}

func (u *ProductUseCase) Update(ctx context.Context, id string, p entities.Product, image *ImageUpload) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrProductNotFound
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if existing.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	if p.Name == "" {
		return entities.Product{}, ErrInvalidProductInput
	}

	previousImage := existing.Image
	p.ID = existing.ID
	p.Image = existing.Image
	if image != nil {
		path, err := u.images.Save(ctx, image.Filename, image.Data)
		if err != nil {
			return entities.Product{}, err
		}
		p.Image = path
	}

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		if image != nil {
			u.removeImage(ctx, p.Image)
		}
		return entities.Product{}, err
	}
	if image != nil && previousImage != "" && previousImage != p.Image {
		u.removeImage(ctx, previousImage)
	}
	return updated, nil
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrProductNotFound
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrProductNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	// Image cleanup never rolls back the document delete.
	u.removeImage(ctx, existing.Image)
	return nil
}

func (u *ProductUseCase) removeImage(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := u.images.Remove(ctx, path); err != nil {
		log.Printf("[product][usecase] image cleanup failed path=%s err=%v", path, err)
	}
}
