package catalog

import (
	"context"

	"github.com/nexashop/backend/internal/domain/shared"
)

// ProductRepository is the persistence port for products.
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*Product, error)
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	FindByCategory(ctx context.Context, categoryID int64) ([]Product, error)
	FindFeatured(ctx context.Context) ([]Product, error)
	FindNew(ctx context.Context) ([]Product, error)
	Insert(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository is the persistence port for categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Insert(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id int64) error
}

// BannerRepository is the persistence port for banners.
type BannerRepository interface {
	FindByID(ctx context.Context, id int64) (*Banner, error)
	FindAll(ctx context.Context) ([]Banner, error)
	FindActive(ctx context.Context) ([]Banner, error)
	Insert(ctx context.Context, banner *Banner) error
	Update(ctx context.Context, banner *Banner) error
	Delete(ctx context.Context, id int64) error
}
