package catalog

import (
	"time"

	"github.com/nexashop/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name         string           `json:"name" binding:"required,min=1,max=200"`
	Slug         string           `json:"slug" binding:"omitempty,max=200"`
	Description  string           `json:"description" binding:"max=2000"`
	Price        decimal.Decimal  `json:"price" binding:"required"`
	ComparePrice *decimal.Decimal `json:"comparePrice"`
	CategoryID   int64            `json:"categoryId" binding:"required,min=1"`
	ImageURL     string           `json:"imageUrl" binding:"omitempty,max=500"`
	InStock      *bool            `json:"inStock"`
	IsFeatured   bool             `json:"isFeatured"`
	IsNew        bool             `json:"isNew"`
}

// UpdateProductRequest represents a request to update a product.
// Absent fields leave the stored value untouched.
type UpdateProductRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Slug         *string          `json:"slug" binding:"omitempty,max=200"`
	Description  *string          `json:"description" binding:"omitempty,max=2000"`
	Price        *decimal.Decimal `json:"price"`
	ComparePrice *decimal.Decimal `json:"comparePrice"`
	CategoryID   *int64           `json:"categoryId" binding:"omitempty,min=1"`
	ImageURL     *string          `json:"imageUrl" binding:"omitempty,max=500"`
	InStock      *bool            `json:"inStock"`
	IsFeatured   *bool            `json:"isFeatured"`
	IsNew        *bool            `json:"isNew"`
}

// ProductListFilter represents query filters for the product list
type ProductListFilter struct {
	Category string `form:"category"`
	Featured bool   `form:"featured"`
	New      bool   `form:"new"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	Description     string           `json:"description"`
	Price           decimal.Decimal  `json:"price"`
	ComparePrice    *decimal.Decimal `json:"comparePrice,omitempty"`
	CategoryID      int64            `json:"categoryId"`
	ImageURL        string           `json:"imageUrl"`
	Rating          float64          `json:"rating"`
	ReviewCount     int              `json:"reviewCount"`
	InStock         bool             `json:"inStock"`
	IsFeatured      bool             `json:"isFeatured"`
	IsNew           bool             `json:"isNew"`
	HasDiscount     bool             `json:"hasDiscount"`
	DiscountPercent int              `json:"discountPercent,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Slug        string `json:"slug" binding:"omitempty,max=100"`
	Description string `json:"description" binding:"max=2000"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,max=500"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	ImageURL    *string `json:"imageUrl" binding:"omitempty,max=500"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// CreateBannerRequest represents a request to create a banner
type CreateBannerRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=200"`
	Subtitle   string `json:"subtitle" binding:"max=300"`
	ImageURL   string `json:"imageUrl" binding:"omitempty,max=500"`
	ButtonText string `json:"buttonText" binding:"max=50"`
	ButtonLink string `json:"buttonLink" binding:"max=500"`
	SortOrder  int    `json:"order"`
	IsActive   *bool  `json:"isActive"`
}

// UpdateBannerRequest represents a request to update a banner
type UpdateBannerRequest struct {
	Title      *string `json:"title" binding:"omitempty,min=1,max=200"`
	Subtitle   *string `json:"subtitle" binding:"omitempty,max=300"`
	ImageURL   *string `json:"imageUrl" binding:"omitempty,max=500"`
	ButtonText *string `json:"buttonText" binding:"omitempty,max=50"`
	ButtonLink *string `json:"buttonLink" binding:"omitempty,max=500"`
	SortOrder  *int    `json:"order"`
	IsActive   *bool   `json:"isActive"`
}

// BannerResponse represents a banner in API responses
type BannerResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ImageURL   string `json:"imageUrl"`
	ButtonText string `json:"buttonText"`
	ButtonLink string `json:"buttonLink"`
	SortOrder  int    `json:"order"`
	IsActive   bool   `json:"isActive"`
}

// UploadImageResponse carries the public URL of an uploaded image
type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Slug:            p.Slug,
		Description:     p.Description,
		Price:           p.Price,
		ComparePrice:    p.ComparePrice,
		CategoryID:      p.CategoryID,
		ImageURL:        p.ImageURL,
		Rating:          p.Rating,
		ReviewCount:     p.ReviewCount,
		InStock:         p.InStock,
		IsFeatured:      p.IsFeatured,
		IsNew:           p.IsNew,
		HasDiscount:     p.HasDiscount(),
		DiscountPercent: p.DiscountPercent(),
		CreatedAt:       p.CreatedAt,
	}
}

// ToProductResponses converts a slice of domain Products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = *ToProductResponse(&products[i])
	}
	return out
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		ImageURL:    c.ImageURL,
	}
}

// ToCategoryResponses converts a slice of domain Categories
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = *ToCategoryResponse(&categories[i])
	}
	return out
}

// ToBannerResponse converts a domain Banner to BannerResponse
func ToBannerResponse(b *catalog.Banner) *BannerResponse {
	return &BannerResponse{
		ID:         b.ID,
		Title:      b.Title,
		Subtitle:   b.Subtitle,
		ImageURL:   b.ImageURL,
		ButtonText: b.ButtonText,
		ButtonLink: b.ButtonLink,
		SortOrder:  b.SortOrder,
		IsActive:   b.IsActive,
	}
}

// ToBannerResponses converts a slice of domain Banners
func ToBannerResponses(banners []catalog.Banner) []BannerResponse {
	out := make([]BannerResponse, len(banners))
	for i := range banners {
		out[i] = *ToBannerResponse(&banners[i])
	}
	return out
}
