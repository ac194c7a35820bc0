package ordering

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order", func(t *testing.T) {
		order, err := NewOrder(7, decimal.RequireFromString("599.80"))
		require.NoError(t, err)
		assert.Equal(t, int64(7), order.UserID)
		assert.Equal(t, OrderStatusPending, order.Status)
		assert.Nil(t, order.PaymentID)
	})

	t.Run("fails without user", func(t *testing.T) {
		_, err := NewOrder(0, decimal.NewFromInt(10))
		require.Error(t, err)
	})

	t.Run("fails with negative total", func(t *testing.T) {
		_, err := NewOrder(1, decimal.NewFromInt(-1))
		require.Error(t, err)
	})
}

func TestOrderSetStatus(t *testing.T) {
	order, err := NewOrder(1, decimal.NewFromInt(10))
	require.NoError(t, err)

	t.Run("accepts any known status", func(t *testing.T) {
		for _, s := range []OrderStatus{OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusPending} {
			require.NoError(t, order.SetStatus(s))
			assert.Equal(t, s, order.Status)
		}
	})

	t.Run("allows moving backwards", func(t *testing.T) {
		require.NoError(t, order.SetStatus(OrderStatusDelivered))
		require.NoError(t, order.SetStatus(OrderStatusPending))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		err := order.SetStatus("refunded")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown order status")
	})
}

func TestOrderAttachPayment(t *testing.T) {
	order, err := NewOrder(1, decimal.NewFromInt(10))
	require.NoError(t, err)

	order.AttachPayment("pi_123")
	require.NotNil(t, order.PaymentID)
	assert.Equal(t, "pi_123", *order.PaymentID)

	order.AttachPayment("")
	assert.Nil(t, order.PaymentID)
}

func TestNewOrderItem(t *testing.T) {
	t.Run("captures unit price", func(t *testing.T) {
		item, err := NewOrderItem(2, 3, decimal.RequireFromString("299.90"))
		require.NoError(t, err)
		assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("899.70")))
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewOrderItem(2, 0, decimal.NewFromInt(10))
		require.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewOrderItem(2, 1, decimal.NewFromInt(-5))
		require.Error(t, err)
	})
}
