package memory

import (
	"context"
	"sort"

	"github.com/nexashop/backend/internal/domain/catalog"
	"github.com/nexashop/backend/internal/domain/shared"
)

// ProductRepository is the in-memory catalog.ProductRepository.
type ProductRepository struct {
	table *table[catalog.Product, *catalog.Product]
}

// NewProductRepository creates an empty in-memory product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{table: newTable[catalog.Product]()}
}

// FindByID finds a product by its ID
func (r *ProductRepository) FindByID(_ context.Context, id int64) (*catalog.Product, error) {
	return r.table.get(id)
}

// FindBySlug finds a product by its unique slug
func (r *ProductRepository) FindBySlug(_ context.Context, slug string) (*catalog.Product, error) {
	return r.table.first(func(p *catalog.Product) bool { return p.Slug == slug })
}

// FindAll returns all products in insertion order
func (r *ProductRepository) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	return r.table.list(), nil
}

// FindByCategory returns the products of one category
func (r *ProductRepository) FindByCategory(_ context.Context, categoryID int64) ([]catalog.Product, error) {
	return r.table.filter(func(p *catalog.Product) bool { return p.CategoryID == categoryID }), nil
}

// FindFeatured returns products flagged as featured
func (r *ProductRepository) FindFeatured(_ context.Context) ([]catalog.Product, error) {
	return r.table.filter(func(p *catalog.Product) bool { return p.IsFeatured }), nil
}

// FindNew returns products flagged as new arrivals
func (r *ProductRepository) FindNew(_ context.Context) ([]catalog.Product, error) {
	return r.table.filter(func(p *catalog.Product) bool { return p.IsNew }), nil
}

// Insert stores a product and assigns its ID
func (r *ProductRepository) Insert(_ context.Context, product *catalog.Product) error {
	r.table.insert(product)
	return nil
}

// Update replaces a stored product
func (r *ProductRepository) Update(_ context.Context, product *catalog.Product) error {
	return r.table.update(product)
}

// Delete removes a product
func (r *ProductRepository) Delete(_ context.Context, id int64) error {
	return r.table.delete(id)
}

var _ catalog.ProductRepository = (*ProductRepository)(nil)

// CategoryRepository is the in-memory catalog.CategoryRepository.
type CategoryRepository struct {
	table *table[catalog.Category, *catalog.Category]
}

// NewCategoryRepository creates an empty in-memory category repository
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{table: newTable[catalog.Category]()}
}

// FindByID finds a category by its ID
func (r *CategoryRepository) FindByID(_ context.Context, id int64) (*catalog.Category, error) {
	return r.table.get(id)
}

// FindBySlug finds a category by its unique slug
func (r *CategoryRepository) FindBySlug(_ context.Context, slug string) (*catalog.Category, error) {
	return r.table.first(func(c *catalog.Category) bool { return c.Slug == slug })
}

// FindAll returns all categories in insertion order
func (r *CategoryRepository) FindAll(_ context.Context) ([]catalog.Category, error) {
	return r.table.list(), nil
}

// Insert stores a category and assigns its ID
func (r *CategoryRepository) Insert(_ context.Context, category *catalog.Category) error {
	r.table.insert(category)
	return nil
}

// Update replaces a stored category
func (r *CategoryRepository) Update(_ context.Context, category *catalog.Category) error {
	return r.table.update(category)
}

// Delete removes a category
func (r *CategoryRepository) Delete(_ context.Context, id int64) error {
	return r.table.delete(id)
}

var _ catalog.CategoryRepository = (*CategoryRepository)(nil)

// BannerRepository is the in-memory catalog.BannerRepository.
type BannerRepository struct {
	table *table[catalog.Banner, *catalog.Banner]
}

// NewBannerRepository creates an empty in-memory banner repository
func NewBannerRepository() *BannerRepository {
	return &BannerRepository{table: newTable[catalog.Banner]()}
}

// FindByID finds a banner by its ID
func (r *BannerRepository) FindByID(_ context.Context, id int64) (*catalog.Banner, error) {
	return r.table.get(id)
}

// FindAll returns all banners in insertion order
func (r *BannerRepository) FindAll(_ context.Context) ([]catalog.Banner, error) {
	return r.table.list(), nil
}

// FindActive returns active banners sorted by their display order
func (r *BannerRepository) FindActive(_ context.Context) ([]catalog.Banner, error) {
	banners := r.table.filter(func(b *catalog.Banner) bool { return b.IsActive })
	sort.SliceStable(banners, func(i, j int) bool { return banners[i].SortOrder < banners[j].SortOrder })
	return banners, nil
}

// Insert stores a banner and assigns its ID
func (r *BannerRepository) Insert(_ context.Context, banner *catalog.Banner) error {
	r.table.insert(banner)
	return nil
}

// Update replaces a stored banner
func (r *BannerRepository) Update(_ context.Context, banner *catalog.Banner) error {
	return r.table.update(banner)
}

// Delete removes a banner
func (r *BannerRepository) Delete(_ context.Context, id int64) error {
	return r.table.delete(id)
}

var _ catalog.BannerRepository = (*BannerRepository)(nil)
