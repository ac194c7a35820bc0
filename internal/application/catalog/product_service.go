// Package catalog exposes storefront catalog operations over the
// product, category and banner repositories.
package catalog

import (
	"context"
	"errors"

	"github.com/nexashop/backend/internal/domain/catalog"
	"github.com/nexashop/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService handles product browsing and admin CRUD
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	logger       *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// List returns products, optionally narrowed by category slug or the
// featured/new flags. Filters are mutually exclusive; category wins,
// then featured, then new, matching the public route semantics.
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, error) {
	switch {
	case filter.Category != "":
		category, err := s.categoryRepo.FindBySlug(ctx, filter.Category)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
			}
			return nil, err
		}
		products, err := s.productRepo.FindByCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		return ToProductResponses(products), nil

	case filter.Featured:
		products, err := s.productRepo.FindFeatured(ctx)
		if err != nil {
			return nil, err
		}
		return ToProductResponses(products), nil

	case filter.New:
		products, err := s.productRepo.FindNew(ctx)
		if err != nil {
			return nil, err
		}
		return ToProductResponses(products), nil

	default:
		products, err := s.productRepo.FindAll(ctx, shared.DefaultFilter())
		if err != nil {
			return nil, err
		}
		return ToProductResponses(products), nil
	}
}

// GetByID retrieves a single product
func (s *ProductService) GetByID(ctx context.Context, id int64) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetBySlug retrieves a single product by its URL slug
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*ProductResponse, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Create adds a product to the catalog. The slug defaults to a
// slugified name when omitted.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	slug := req.Slug
	if slug == "" {
		slug = catalog.Slugify(req.Name)
	}

	if err := s.ensureSlugFree(ctx, slug, 0); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
		}
		return nil, err
	}

	product, err := catalog.NewProduct(req.Name, slug, req.Description, req.Price, req.ComparePrice, req.CategoryID)
	if err != nil {
		return nil, err
	}
	product.SetImageURL(req.ImageURL)

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	product.SetFlags(inStock, req.IsFeatured, req.IsNew)

	if err := s.productRepo.Insert(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("slug", product.Slug))

	return ToProductResponse(product), nil
}

// Update applies a partial update. Absent fields keep their stored
// values.
func (s *ProductService) Update(ctx context.Context, id int64, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	slug := product.Slug
	if req.Slug != nil {
		slug = *req.Slug
	}
	description := product.Description
	if req.Description != nil {
		description = *req.Description
	}
	if slug != product.Slug {
		if err := s.ensureSlugFree(ctx, slug, id); err != nil {
			return nil, err
		}
	}
	if err := product.UpdateDetails(name, slug, description); err != nil {
		return nil, err
	}

	if req.Price != nil || req.ComparePrice != nil {
		price := product.Price
		if req.Price != nil {
			price = *req.Price
		}
		comparePrice := product.ComparePrice
		if req.ComparePrice != nil {
			comparePrice = req.ComparePrice
		}
		if err := product.SetPricing(price, comparePrice); err != nil {
			return nil, err
		}
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
			}
			return nil, err
		}
		if err := product.SetCategory(*req.CategoryID); err != nil {
			return nil, err
		}
	}

	if req.ImageURL != nil {
		product.SetImageURL(*req.ImageURL)
	}

	inStock := product.InStock
	if req.InStock != nil {
		inStock = *req.InStock
	}
	featured := product.IsFeatured
	if req.IsFeatured != nil {
		featured = *req.IsFeatured
	}
	isNew := product.IsNew
	if req.IsNew != nil {
		isNew = *req.IsNew
	}
	product.SetFlags(inStock, featured, isNew)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Product deleted", zap.Int64("product_id", id))
	return nil
}

func (s *ProductService) ensureSlugFree(ctx context.Context, slug string, selfID int64) error {
	existing, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return shared.NewDomainError("ALREADY_EXISTS", "A product with this slug already exists")
	}
	return nil
}
