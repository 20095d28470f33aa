package usecase

import (
	"context"
	"errors"
	"testing"

	"cercovibrados/internal/domain/entities"
	mock_interfaces "cercovibrados/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProductUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Product{Name: "   "}, nil)
		if !errors.Is(err, ErrInvalidProductInput) {
			t.Fatalf("expected ErrInvalidProductInput, got %v", err)
		}
	})

	t.Run("without image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" || p.Image != "" {
					t.Fatalf("unexpected product: %+v", p)
				}
				return p, nil
			},
		)

		if _, err := uc.Create(context.Background(), entities.Product{Name: "Poste 2m", Price: 12000}, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("with image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		images := mock_interfaces.NewMockIImageStore(ctrl)
		uc := NewProductUseCase(repo, images)

		images.EXPECT().Save(gomock.Any(), "poste.png", []byte("png-bytes")).Return("/uploads/123-poste.png", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.Image != "/uploads/123-poste.png" {
					t.Fatalf("expected image path, got %q", p.Image)
				}
				return p, nil
			},
		)

		_, err := uc.Create(context.Background(), entities.Product{Name: "Poste 2m"}, &ImageUpload{Filename: "poste.png", Data: []byte("png-bytes")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo failure removes stored image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		images := mock_interfaces.NewMockIImageStore(ctrl)
		uc := NewProductUseCase(repo, images)

		images.EXPECT().Save(gomock.Any(), "poste.png", gomock.Any()).Return("/uploads/123-poste.png", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Product{}, errors.New("db"))
		images.EXPECT().Remove(gomock.Any(), "/uploads/123-poste.png").Return(nil)

		_, err := uc.Create(context.Background(), entities.Product{Name: "Poste 2m"}, &ImageUpload{Filename: "poste.png", Data: []byte("x")})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestProductUseCase_Update(t *testing.T) {
	existing := entities.Product{ID: "p-1", Name: "Poste 2m", Image: "/uploads/old.png"}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Product{}, nil)

		_, err := uc.Update(context.Background(), "missing", entities.Product{Name: "x"}, nil)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("keeps image without new upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.Image != "/uploads/old.png" {
					t.Fatalf("expected image preserved, got %q", p.Image)
				}
				if p.Name != "Poste 2.5m" {
					t.Fatalf("expected updated name, got %q", p.Name)
				}
				return p, nil
			},
		)

		if _, err := uc.Update(context.Background(), "p-1", entities.Product{Name: "Poste 2.5m"}, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("new upload replaces and removes old image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		images := mock_interfaces.NewMockIImageStore(ctrl)
		uc := NewProductUseCase(repo, images)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(existing, nil)
		images.EXPECT().Save(gomock.Any(), "new.png", gomock.Any()).Return("/uploads/456-new.png", nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				return p, nil
			},
		)
		images.EXPECT().Remove(gomock.Any(), "/uploads/old.png").Return(nil)

		updated, err := uc.Update(context.Background(), "p-1", entities.Product{Name: "Poste 2m"}, &ImageUpload{Filename: "new.png", Data: []byte("x")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Image != "/uploads/456-new.png" {
			t.Fatalf("expected new image path, got %q", updated.Image)
		}
	})
}

func TestProductUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Product{}, nil)

		if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("success removes image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		images := mock_interfaces.NewMockIImageStore(ctrl)
		uc := NewProductUseCase(repo, images)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Image: "/uploads/old.png"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)
		images.EXPECT().Remove(gomock.Any(), "/uploads/old.png").Return(nil)

		if err := uc.Delete(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
