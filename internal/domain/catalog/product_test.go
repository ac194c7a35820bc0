package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("Bluetooth Premium Headphones", "bluetooth-premium-headphones", "Noise cancelling", dec("299.90"), decPtr("349.90"), 1)
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "Bluetooth Premium Headphones", product.Name)
		assert.Equal(t, "bluetooth-premium-headphones", product.Slug)
		assert.True(t, product.Price.Equal(dec("299.90")))
		assert.True(t, product.InStock)
		assert.False(t, product.IsFeatured)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct("", "slug", "", dec("10"), nil, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with invalid slug", func(t *testing.T) {
		_, err := NewProduct("Widget", "Not A Slug", "", dec("10"), nil, 1)
		require.Error(t, err)
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewProduct("Widget", "widget", "", dec("-1"), nil, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})

	t.Run("fails without category", func(t *testing.T) {
		_, err := NewProduct("Widget", "widget", "", dec("10"), nil, 0)
		require.Error(t, err)
	})
}

func TestProductDiscount(t *testing.T) {
	t.Run("discount only when compare price exceeds price", func(t *testing.T) {
		product, err := NewProduct("Headphones", "headphones", "", dec("299.90"), decPtr("349.90"), 1)
		require.NoError(t, err)
		assert.True(t, product.HasDiscount())
	})

	t.Run("no discount without compare price", func(t *testing.T) {
		product, err := NewProduct("Headphones", "headphones", "", dec("299.90"), nil, 1)
		require.NoError(t, err)
		assert.False(t, product.HasDiscount())
		assert.Equal(t, 0, product.DiscountPercent())
	})

	t.Run("no discount when compare price equals price", func(t *testing.T) {
		product, err := NewProduct("Headphones", "headphones", "", dec("299.90"), decPtr("299.90"), 1)
		require.NoError(t, err)
		assert.False(t, product.HasDiscount())
	})

	t.Run("no discount when compare price is lower", func(t *testing.T) {
		product, err := NewProduct("Headphones", "headphones", "", dec("299.90"), decPtr("199.90"), 1)
		require.NoError(t, err)
		assert.False(t, product.HasDiscount())
	})

	t.Run("computes rounded discount percent", func(t *testing.T) {
		product, err := NewProduct("Headphones", "headphones", "", dec("75.00"), decPtr("100.00"), 1)
		require.NoError(t, err)
		assert.Equal(t, 25, product.DiscountPercent())
	})
}

func TestProductPriceCents(t *testing.T) {
	product, err := NewProduct("Headphones", "headphones", "", dec("299.90"), nil, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(29990), product.PriceCents())
}

func TestProductSetPricing(t *testing.T) {
	product, err := NewProduct("Widget", "widget", "", dec("10.00"), nil, 1)
	require.NoError(t, err)

	t.Run("updates price and compare price", func(t *testing.T) {
		err := product.SetPricing(dec("8.00"), decPtr("10.00"))
		require.NoError(t, err)
		assert.True(t, product.HasDiscount())
	})

	t.Run("clears compare price", func(t *testing.T) {
		err := product.SetPricing(dec("8.00"), nil)
		require.NoError(t, err)
		assert.Nil(t, product.ComparePrice)
	})

	t.Run("rejects negative compare price", func(t *testing.T) {
		err := product.SetPricing(dec("8.00"), decPtr("-1"))
		require.Error(t, err)
	})
}

func TestProductSetRating(t *testing.T) {
	product, err := NewProduct("Widget", "widget", "", dec("10.00"), nil, 1)
	require.NoError(t, err)

	require.NoError(t, product.SetRating(4.5, 128))
	assert.Equal(t, 4.5, product.Rating)
	assert.Equal(t, 128, product.ReviewCount)

	assert.Error(t, product.SetRating(5.5, 10))
	assert.Error(t, product.SetRating(4.0, -1))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Bluetooth Premium Headphones", "bluetooth-premium-headphones"},
		{"diacritics folded", "Café Crème", "cafe-creme"},
		{"punctuation collapsed", "4K  Smart TV, 55\"", "4k-smart-tv-55"},
		{"already slug", "smartphones", "smartphones"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
