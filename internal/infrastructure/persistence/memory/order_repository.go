package memory

import (
	"context"

	"github.com/nexashop/backend/internal/domain/ordering"
)

// OrderRepository is the in-memory ordering.OrderRepository. It keeps
// a reference to the item repository so order-with-lines inserts land
// in the same tables the item queries read from.
type OrderRepository struct {
	table *table[ordering.Order, *ordering.Order]
	items *OrderItemRepository
}

// NewOrderRepository creates an empty in-memory order repository
func NewOrderRepository(items *OrderItemRepository) *OrderRepository {
	return &OrderRepository{table: newTable[ordering.Order](), items: items}
}

// FindByID finds an order by ID
func (r *OrderRepository) FindByID(_ context.Context, id int64) (*ordering.Order, error) {
	return r.table.get(id)
}

// FindAll returns every order in insertion order
func (r *OrderRepository) FindAll(_ context.Context) ([]ordering.Order, error) {
	return r.table.list(), nil
}

// FindByUser returns the orders owned by one user
func (r *OrderRepository) FindByUser(_ context.Context, userID int64) ([]ordering.Order, error) {
	return r.table.filter(func(o *ordering.Order) bool { return o.UserID == userID }), nil
}

// FindByPaymentID returns the orders linked to a payment reference
func (r *OrderRepository) FindByPaymentID(_ context.Context, paymentID string) ([]ordering.Order, error) {
	return r.table.filter(func(o *ordering.Order) bool {
		return o.PaymentID != nil && *o.PaymentID == paymentID
	}), nil
}

// Insert stores an order and assigns its ID
func (r *OrderRepository) Insert(_ context.Context, order *ordering.Order) error {
	r.table.insert(order)
	return nil
}

// InsertWithItems stores an order and its lines as sequential map
// writes. The map store has no transactions, so the write is not
// atomic here; map inserts cannot fail partway in practice.
func (r *OrderRepository) InsertWithItems(ctx context.Context, order *ordering.Order, items []*ordering.OrderItem) error {
	if err := r.Insert(ctx, order); err != nil {
		return err
	}
	for _, item := range items {
		item.OrderID = order.ID
		if err := r.items.Insert(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// Update replaces a stored order
func (r *OrderRepository) Update(_ context.Context, order *ordering.Order) error {
	return r.table.update(order)
}

// Delete removes an order
func (r *OrderRepository) Delete(_ context.Context, id int64) error {
	return r.table.delete(id)
}

var _ ordering.OrderRepository = (*OrderRepository)(nil)

// OrderItemRepository is the in-memory ordering.OrderItemRepository.
type OrderItemRepository struct {
	table *table[ordering.OrderItem, *ordering.OrderItem]
}

// NewOrderItemRepository creates an empty in-memory order item repository
func NewOrderItemRepository() *OrderItemRepository {
	return &OrderItemRepository{table: newTable[ordering.OrderItem]()}
}

// FindByID finds an order item by ID
func (r *OrderItemRepository) FindByID(_ context.Context, id int64) (*ordering.OrderItem, error) {
	return r.table.get(id)
}

// FindByOrder returns the lines of one order in insertion order
func (r *OrderItemRepository) FindByOrder(_ context.Context, orderID int64) ([]ordering.OrderItem, error) {
	return r.table.filter(func(i *ordering.OrderItem) bool { return i.OrderID == orderID }), nil
}

// Insert stores an order item and assigns its ID
func (r *OrderItemRepository) Insert(_ context.Context, item *ordering.OrderItem) error {
	r.table.insert(item)
	return nil
}

// Delete removes an order item
func (r *OrderItemRepository) Delete(_ context.Context, id int64) error {
	return r.table.delete(id)
}

var _ ordering.OrderItemRepository = (*OrderItemRepository)(nil)
