package catalog

import (
	"github.com/nexashop/backend/internal/domain/shared"
)

// Category groups products for storefront navigation.
type Category struct {
	shared.BaseEntity
	Name        string `json:"name" gorm:"not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// NewCategory creates a category with a validated name and slug.
func NewCategory(name, slug, description, imageURL string) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > maxNameLength {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name is too long")
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	return &Category{
		Name:        name,
		Slug:        slug,
		Description: description,
		ImageURL:    imageURL,
	}, nil
}

// Update changes the category fields.
func (c *Category) Update(name, slug, description, imageURL string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if err := validateSlug(slug); err != nil {
		return err
	}
	c.Name = name
	c.Slug = slug
	c.Description = description
	c.ImageURL = imageURL
	return nil
}
