package catalog

import (
	"github.com/nexashop/backend/internal/domain/shared"
)

// Banner is a promotional slide shown on the storefront. Active banners
// are listed in ascending SortOrder.
type Banner struct {
	shared.BaseEntity
	Title      string `json:"title" gorm:"not null"`
	Subtitle   string `json:"subtitle"`
	ImageURL   string `json:"imageUrl"`
	ButtonText string `json:"buttonText"`
	ButtonLink string `json:"buttonLink"`
	SortOrder  int    `json:"order" gorm:"column:sort_order"`
	IsActive   bool   `json:"isActive"`
}

// NewBanner creates an active banner.
func NewBanner(title, subtitle, imageURL, buttonText, buttonLink string, sortOrder int) (*Banner, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Banner title cannot be empty")
	}
	return &Banner{
		Title:      title,
		Subtitle:   subtitle,
		ImageURL:   imageURL,
		ButtonText: buttonText,
		ButtonLink: buttonLink,
		SortOrder:  sortOrder,
		IsActive:   true,
	}, nil
}

// Update changes the banner fields.
func (b *Banner) Update(title, subtitle, imageURL, buttonText, buttonLink string, sortOrder int, isActive bool) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Banner title cannot be empty")
	}
	b.Title = title
	b.Subtitle = subtitle
	b.ImageURL = imageURL
	b.ButtonText = buttonText
	b.ButtonLink = buttonLink
	b.SortOrder = sortOrder
	b.IsActive = isActive
	return nil
}

// Activate makes the banner visible on the storefront.
func (b *Banner) Activate() {
	b.IsActive = true
}

// Deactivate hides the banner without deleting it.
func (b *Banner) Deactivate() {
	b.IsActive = false
}
