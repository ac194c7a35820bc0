package ordering

import (
	"context"
	"testing"

	"github.com/nexashop/backend/internal/domain/catalog"
	"github.com/nexashop/backend/internal/domain/identity"
	"github.com/nexashop/backend/internal/domain/shared"
	"github.com/nexashop/backend/internal/infrastructure/persistence/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type orderFixture struct {
	service     *OrderService
	productRepo *memory.ProductRepository
	userRepo    *memory.UserRepository
	headphones  *catalog.Product
	watch       *catalog.Product
	customer    *identity.User
	admin       *identity.User
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	ctx := context.Background()

	productRepo := memory.NewProductRepository()
	userRepo := memory.NewUserRepository()

	headphones, err := catalog.NewProduct(
		"Bluetooth Premium Headphones", "bluetooth-premium-headphones", "",
		decimal.RequireFromString("299.90"), nil, 1)
	require.NoError(t, err)
	require.NoError(t, productRepo.Insert(ctx, headphones))

	watch, err := catalog.NewProduct(
		"Vintage Gold Watch", "vintage-gold-watch", "",
		decimal.RequireFromString("799.90"), nil, 3)
	require.NoError(t, err)
	require.NoError(t, productRepo.Insert(ctx, watch))

	customer, err := identity.NewUser("jane", "jane@example.com", "secret123", "Jane Doe")
	require.NoError(t, err)
	require.NoError(t, userRepo.Insert(ctx, customer))

	admin, err := identity.NewAdmin("admin", "admin@nexashop.com", "admin123", "Admin User")
	require.NoError(t, err)
	require.NoError(t, userRepo.Insert(ctx, admin))

	itemRepo := memory.NewOrderItemRepository()
	service := NewOrderService(
		memory.NewOrderRepository(itemRepo),
		itemRepo,
		productRepo,
		userRepo,
		zap.NewNop(),
	)
	return &orderFixture{
		service:     service,
		productRepo: productRepo,
		userRepo:    userRepo,
		headphones:  headphones,
		watch:       watch,
		customer:    customer,
		admin:       admin,
	}
}

func TestCreateOrderCapturesPrices(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.service.Create(ctx, f.customer.ID, CreateOrderRequest{
		Items: []OrderLineRequest{
			{ProductID: f.headphones.ID, Quantity: 2},
			{ProductID: f.watch.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "1399.70", order.Total.StringFixed(2))
	require.Len(t, order.Items, 2)
	assert.Equal(t, "299.90", order.Items[0].Price.StringFixed(2))

	// A later price change must not affect the stored order.
	require.NoError(t, f.headphones.SetPricing(decimal.RequireFromString("199.90"), nil))
	require.NoError(t, f.productRepo.Update(ctx, f.headphones))

	got, err := f.service.Get(ctx, order.ID, f.customer.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "1399.70", got.Total.StringFixed(2))
	assert.Equal(t, "299.90", got.Items[0].Price.StringFixed(2))
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.service.Create(context.Background(), f.customer.ID, CreateOrderRequest{
		Items: []OrderLineRequest{{ProductID: 999, Quantity: 1}},
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// Nothing was created.
	orders, err := f.service.List(context.Background(), f.admin.ID, true)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestListOwnershipScoping(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	other, err := identity.NewUser("bob", "bob@example.com", "secret123", "Bob")
	require.NoError(t, err)
	require.NoError(t, f.userRepo.Insert(ctx, other))

	_, err = f.service.Create(ctx, f.customer.ID, CreateOrderRequest{
		Items: []OrderLineRequest{{ProductID: f.headphones.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = f.service.Create(ctx, other.ID, CreateOrderRequest{
		Items: []OrderLineRequest{{ProductID: f.watch.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	mine, err := f.service.List(ctx, f.customer.ID, false)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := f.service.List(ctx, f.admin.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetForbiddenForOtherCustomer(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.service.Create(ctx, f.customer.ID, CreateOrderRequest{
		Items: []OrderLineRequest{{ProductID: f.headphones.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.service.Get(ctx, order.ID, f.customer.ID+100, false)
	assert.ErrorIs(t, err, shared.ErrForbidden)

	// Admin reads any order.
	got, err := f.service.Get(ctx, order.ID, f.admin.ID, true)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestUpdateStatus(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.service.Create(ctx, f.customer.ID, CreateOrderRequest{
		Items: []OrderLineRequest{{ProductID: f.headphones.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	got, err := f.service.UpdateStatus(ctx, order.ID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, "shipped", got.Status)

	// Backwards moves are allowed; only unknown values are rejected.
	got, err = f.service.UpdateStatus(ctx, order.ID, "pending")
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)

	_, err = f.service.UpdateStatus(ctx, order.ID, "teleported")
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATUS", domainErr.Code)

	_, err = f.service.UpdateStatus(ctx, 999, "shipped")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestReceiptData(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.service.Create(ctx, f.customer.ID, CreateOrderRequest{
		Items: []OrderLineRequest{{ProductID: f.headphones.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	data, err := f.service.Receipt(ctx, order.ID, f.customer.ID, false)
	require.NoError(t, err)
	assert.Equal(t, order.ID, data.OrderID)
	assert.Equal(t, "jane@example.com", data.Email)
	require.Len(t, data.Lines, 1)
	assert.Equal(t, "Bluetooth Premium Headphones", data.Lines[0].ProductName)
	assert.Equal(t, "599.80", data.Lines[0].LineTotal.StringFixed(2))

	_, err = f.service.Receipt(ctx, order.ID, f.customer.ID+100, false)
	assert.ErrorIs(t, err, shared.ErrForbidden)
}
