package cart

import (
	"context"
	"testing"
	"time"

	"github.com/nexashop/backend/internal/domain/catalog"
	"github.com/nexashop/backend/internal/domain/shared"
	"github.com/nexashop/backend/internal/infrastructure/cache"
	"github.com/nexashop/backend/internal/infrastructure/persistence/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCartFixture(t *testing.T) (*CartService, *catalog.Product, func()) {
	t.Helper()

	productRepo := memory.NewProductRepository()
	product, err := catalog.NewProduct(
		"Bluetooth Premium Headphones", "bluetooth-premium-headphones", "",
		decimal.RequireFromString("299.90"), nil, 1)
	require.NoError(t, err)
	require.NoError(t, productRepo.Insert(context.Background(), product))

	store := cache.NewInMemoryCartStore(time.Hour)
	service := NewCartService(store, productRepo, zap.NewNop())
	return service, product, func() { _ = store.Close() }
}

func TestCartAddIssuesToken(t *testing.T) {
	service, product, cleanup := newCartFixture(t)
	defer cleanup()
	ctx := context.Background()

	resp, err := service.AddItem(ctx, "", AddItemRequest{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "599.80", resp.Subtotal.StringFixed(2))

	// Same token accumulates quantity on the existing line.
	resp, err = service.AddItem(ctx, resp.Token, AddItemRequest{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.Equal(t, "899.70", resp.Subtotal.StringFixed(2))
}

func TestCartAddUnknownProduct(t *testing.T) {
	service, _, cleanup := newCartFixture(t)
	defer cleanup()

	_, err := service.AddItem(context.Background(), "", AddItemRequest{ProductID: 999, Quantity: 1})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCartAddOutOfStockProduct(t *testing.T) {
	service, product, cleanup := newCartFixture(t)
	defer cleanup()
	ctx := context.Background()

	product.SetFlags(false, false, false)
	require.NoError(t, service.productRepo.Update(ctx, product))

	_, err := service.AddItem(ctx, "", AddItemRequest{ProductID: product.ID, Quantity: 1})
	assert.ErrorIs(t, err, shared.ErrOutOfStock)
}

func TestCartSetQuantityRemovesAtZero(t *testing.T) {
	service, product, cleanup := newCartFixture(t)
	defer cleanup()
	ctx := context.Background()

	resp, err := service.AddItem(ctx, "", AddItemRequest{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	resp, err = service.SetQuantity(ctx, resp.Token, product.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, "0.00", resp.Subtotal.StringFixed(2))
}

func TestCartMutateUnknownToken(t *testing.T) {
	service, product, cleanup := newCartFixture(t)
	defer cleanup()
	ctx := context.Background()

	_, err := service.SetQuantity(ctx, "missing-token", product.ID, 1)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = service.RemoveItem(ctx, "missing-token", product.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCartGetUnknownTokenReturnsEmptyCart(t *testing.T) {
	service, _, cleanup := newCartFixture(t)
	defer cleanup()

	resp, err := service.Get(context.Background(), "expired-token")
	require.NoError(t, err)
	assert.Equal(t, "expired-token", resp.Token)
	assert.Empty(t, resp.Items)
}

func TestCartClear(t *testing.T) {
	service, product, cleanup := newCartFixture(t)
	defer cleanup()
	ctx := context.Background()

	resp, err := service.AddItem(ctx, "", AddItemRequest{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, service.Clear(ctx, resp.Token))

	got, err := service.Get(ctx, resp.Token)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}
