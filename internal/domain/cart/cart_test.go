package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAdd(t *testing.T) {
	price := decimal.RequireFromString("299.90")

	t.Run("appends new line", func(t *testing.T) {
		c := New("tok")
		require.NoError(t, c.Add(1, 2, price))
		require.Len(t, c.Lines, 1)
		assert.Equal(t, 2, c.Lines[0].Quantity)
	})

	t.Run("merges quantity into existing line", func(t *testing.T) {
		c := New("tok")
		require.NoError(t, c.Add(1, 1, price))
		require.NoError(t, c.Add(1, 2, price))
		require.Len(t, c.Lines, 1)
		assert.Equal(t, 3, c.Lines[0].Quantity)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		c := New("tok")
		require.Error(t, c.Add(1, 0, price))
		require.Error(t, c.Add(1, -1, price))
	})
}

func TestCartSetQuantity(t *testing.T) {
	price := decimal.NewFromInt(10)

	t.Run("replaces quantity", func(t *testing.T) {
		c := New("tok")
		require.NoError(t, c.Add(1, 5, price))
		require.NoError(t, c.SetQuantity(1, 2))
		assert.Equal(t, 2, c.Lines[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		c := New("tok")
		require.NoError(t, c.Add(1, 5, price))
		require.NoError(t, c.SetQuantity(1, 0))
		assert.True(t, c.IsEmpty())
	})

	t.Run("missing line is not found", func(t *testing.T) {
		c := New("tok")
		require.Error(t, c.SetQuantity(99, 1))
	})
}

func TestCartSubtotal(t *testing.T) {
	t.Run("empty cart is zero", func(t *testing.T) {
		c := New("tok")
		assert.True(t, c.Subtotal().IsZero())
	})

	t.Run("299.90 twice is 599.80 exactly", func(t *testing.T) {
		c := New("tok")
		require.NoError(t, c.Add(1, 2, decimal.RequireFromString("299.90")))
		assert.Equal(t, "599.80", c.Subtotal().StringFixed(2))
	})

	t.Run("sums across lines", func(t *testing.T) {
		c := New("tok")
		require.NoError(t, c.Add(1, 2, decimal.RequireFromString("299.90")))
		require.NoError(t, c.Add(2, 1, decimal.RequireFromString("0.10")))
		assert.Equal(t, "599.90", c.Subtotal().StringFixed(2))
	})
}

func TestCartClear(t *testing.T) {
	c := New("tok")
	require.NoError(t, c.Add(1, 2, decimal.NewFromInt(5)))
	require.NoError(t, c.Add(2, 1, decimal.NewFromInt(7)))
	assert.Equal(t, 3, c.ItemCount())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.ItemCount())
}
