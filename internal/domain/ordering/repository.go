package ordering

import "context"

// OrderRepository is the persistence port for orders.
type OrderRepository interface {
	FindByID(ctx context.Context, id int64) (*Order, error)
	FindAll(ctx context.Context) ([]Order, error)
	FindByUser(ctx context.Context, userID int64) ([]Order, error)
	FindByPaymentID(ctx context.Context, paymentID string) ([]Order, error)
	Insert(ctx context.Context, order *Order) error
	// InsertWithItems stores an order together with its lines, stamping
	// each line's OrderID. Implementations over a transactional store
	// make the whole write atomic.
	InsertWithItems(ctx context.Context, order *Order, items []*OrderItem) error
	Update(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id int64) error
}

// OrderItemRepository is the persistence port for order lines.
type OrderItemRepository interface {
	FindByID(ctx context.Context, id int64) (*OrderItem, error)
	FindByOrder(ctx context.Context, orderID int64) ([]OrderItem, error)
	Insert(ctx context.Context, item *OrderItem) error
	Delete(ctx context.Context, id int64) error
}
