package catalog

import (
	"context"
	"errors"

	"github.com/nexashop/backend/internal/domain/catalog"
	"github.com/nexashop/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CategoryService handles category browsing and admin CRUD
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// List returns all categories in insertion order
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponses(categories), nil
}

// GetBySlug retrieves a category by its URL slug
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// Create adds a category. The slug defaults to a slugified name.
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	slug := req.Slug
	if slug == "" {
		slug = catalog.Slugify(req.Name)
	}
	if err := s.ensureSlugFree(ctx, slug, 0); err != nil {
		return nil, err
	}

	category, err := catalog.NewCategory(req.Name, slug, req.Description, req.ImageURL)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Insert(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("Category created",
		zap.Int64("category_id", category.ID),
		zap.String("slug", category.Slug))

	return ToCategoryResponse(category), nil
}

// Update applies a partial update to a category
func (s *CategoryService) Update(ctx context.Context, id int64, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := category.Name
	if req.Name != nil {
		name = *req.Name
	}
	slug := category.Slug
	if req.Slug != nil {
		slug = *req.Slug
	}
	description := category.Description
	if req.Description != nil {
		description = *req.Description
	}
	imageURL := category.ImageURL
	if req.ImageURL != nil {
		imageURL = *req.ImageURL
	}

	if slug != category.Slug {
		if err := s.ensureSlugFree(ctx, slug, id); err != nil {
			return nil, err
		}
	}
	if err := category.Update(name, slug, description, imageURL); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// Delete removes a category. Categories that still contain products
// cannot be deleted.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	products, err := s.productRepo.FindByCategory(ctx, id)
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return shared.NewDomainError("CATEGORY_IN_USE", "Category still contains products")
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Category deleted", zap.Int64("category_id", id))
	return nil
}

func (s *CategoryService) ensureSlugFree(ctx context.Context, slug string, selfID int64) error {
	existing, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return shared.NewDomainError("ALREADY_EXISTS", "A category with this slug already exists")
	}
	return nil
}
