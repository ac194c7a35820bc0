package persistence

import (
	"context"
	"errors"

	"github.com/nexashop/backend/internal/domain/ordering"
	"github.com/nexashop/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOrderRepository implements ordering.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id int64) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds every order in insertion order
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]ordering.Order, error) {
	var orders []ordering.Order
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByUser finds the orders owned by one user
func (r *GormOrderRepository) FindByUser(ctx context.Context, userID int64) ([]ordering.Order, error) {
	var orders []ordering.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByPaymentID finds the orders linked to a payment reference
func (r *GormOrderRepository) FindByPaymentID(ctx context.Context, paymentID string) ([]ordering.Order, error) {
	var orders []ordering.Order
	if err := r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Order("id ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Insert stores a new order
func (r *GormOrderRepository) Insert(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// InsertWithItems stores an order and its lines in one transaction.
// If any line fails, the order insert is rolled back with it.
func (r *GormOrderRepository) InsertWithItems(ctx context.Context, order *ordering.Order, items []*ordering.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.OrderID = order.ID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update saves changes to an existing order
func (r *GormOrderRepository) Update(ctx context.Context, order *ordering.Order) error {
	result := r.db.WithContext(ctx).Model(order).Select("*").Omit("id", "created_at").Updates(order)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes an order
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ordering.Order{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ ordering.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderItemRepository implements ordering.OrderItemRepository using GORM
type GormOrderItemRepository struct {
	db *gorm.DB
}

// NewGormOrderItemRepository creates a new GormOrderItemRepository
func NewGormOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

// FindByID finds an order item by ID
func (r *GormOrderItemRepository) FindByID(ctx context.Context, id int64) (*ordering.OrderItem, error) {
	var item ordering.OrderItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByOrder finds the lines of one order
func (r *GormOrderItemRepository) FindByOrder(ctx context.Context, orderID int64) ([]ordering.OrderItem, error) {
	var items []ordering.OrderItem
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Insert stores a new order item
func (r *GormOrderItemRepository) Insert(ctx context.Context, item *ordering.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Delete removes an order item
func (r *GormOrderItemRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ordering.OrderItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ ordering.OrderItemRepository = (*GormOrderItemRepository)(nil)
