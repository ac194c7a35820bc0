package catalog

import (
	"github.com/nexashop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 5000
)

// Product is a sellable catalog item.
// ComparePrice is the optional pre-discount price; a discount exists only
// when it is strictly greater than Price.
type Product struct {
	shared.BaseEntity
	Name         string           `json:"name" gorm:"not null"`
	Slug         string           `json:"slug" gorm:"uniqueIndex;not null"`
	Description  string           `json:"description"`
	Price        decimal.Decimal  `json:"price" gorm:"type:decimal(10,2);not null"`
	ComparePrice *decimal.Decimal `json:"comparePrice" gorm:"type:decimal(10,2)"`
	CategoryID   int64            `json:"categoryId" gorm:"index;not null"`
	ImageURL     string           `json:"imageUrl"`
	Rating       float64          `json:"rating"`
	ReviewCount  int              `json:"reviewCount"`
	InStock      bool             `json:"inStock"`
	IsFeatured   bool             `json:"isFeatured"`
	IsNew        bool             `json:"isNew"`
}

// NewProduct creates a product with validated name, slug and pricing.
func NewProduct(name, slug, description string, price decimal.Decimal, comparePrice *decimal.Decimal, categoryID int64) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if err := validateProductPricing(price, comparePrice); err != nil {
		return nil, err
	}
	if categoryID <= 0 {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Product requires a category")
	}
	if len(description) > maxDescriptionLength {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Product description is too long")
	}

	return &Product{
		Name:        name,
		Slug:        slug,
		Description: description,
		Price:       price,
		ComparePrice: func() *decimal.Decimal {
			if comparePrice == nil {
				return nil
			}
			cp := *comparePrice
			return &cp
		}(),
		CategoryID: categoryID,
		InStock:    true,
	}, nil
}

// UpdateDetails changes the descriptive fields of the product.
func (p *Product) UpdateDetails(name, slug, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if err := validateSlug(slug); err != nil {
		return err
	}
	if len(description) > maxDescriptionLength {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Product description is too long")
	}
	p.Name = name
	p.Slug = slug
	p.Description = description
	return nil
}

// SetPricing changes the price and optional compare-at price.
func (p *Product) SetPricing(price decimal.Decimal, comparePrice *decimal.Decimal) error {
	if err := validateProductPricing(price, comparePrice); err != nil {
		return err
	}
	p.Price = price
	if comparePrice == nil {
		p.ComparePrice = nil
	} else {
		cp := *comparePrice
		p.ComparePrice = &cp
	}
	return nil
}

// SetCategory moves the product to another category.
func (p *Product) SetCategory(categoryID int64) error {
	if categoryID <= 0 {
		return shared.NewDomainError("INVALID_CATEGORY", "Product requires a category")
	}
	p.CategoryID = categoryID
	return nil
}

// SetImageURL records the location of the product image.
func (p *Product) SetImageURL(url string) {
	p.ImageURL = url
}

// SetFlags updates the merchandising flags.
func (p *Product) SetFlags(inStock, featured, isNew bool) {
	p.InStock = inStock
	p.IsFeatured = featured
	p.IsNew = isNew
}

// SetRating records the aggregate review score.
func (p *Product) SetRating(rating float64, reviewCount int) error {
	if rating < 0 || rating > 5 {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 0 and 5")
	}
	if reviewCount < 0 {
		return shared.NewDomainError("INVALID_RATING", "Review count cannot be negative")
	}
	p.Rating = rating
	p.ReviewCount = reviewCount
	return nil
}

// HasDiscount reports whether the product is discounted. The compare-at
// price must be strictly above the selling price to count.
func (p *Product) HasDiscount() bool {
	return p.ComparePrice != nil && p.ComparePrice.GreaterThan(p.Price)
}

// DiscountPercent returns the rounded discount percentage, 0 when there
// is no discount.
func (p *Product) DiscountPercent() int {
	if !p.HasDiscount() {
		return 0
	}
	diff := p.ComparePrice.Sub(p.Price)
	pct := diff.Div(*p.ComparePrice).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}

// PriceCents returns the selling price in integer cents, as charged
// through the payment provider.
func (p *Product) PriceCents() int64 {
	return p.Price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > maxNameLength {
		return shared.NewDomainError("INVALID_NAME", "Product name is too long")
	}
	return nil
}

func validateProductPricing(price decimal.Decimal, comparePrice *decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if comparePrice != nil && comparePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Compare-at price cannot be negative")
	}
	return nil
}
