// Package ordering implements order creation with price capture, order
// listing with ownership rules, and the admin status workflow.
package ordering

import (
	"context"
	"fmt"

	"github.com/nexashop/backend/internal/domain/catalog"
	"github.com/nexashop/backend/internal/domain/identity"
	"github.com/nexashop/backend/internal/domain/ordering"
	"github.com/nexashop/backend/internal/domain/shared"
	"github.com/nexashop/backend/internal/infrastructure/receipt"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderService handles the order lifecycle
type OrderService struct {
	orderRepo   ordering.OrderRepository
	itemRepo    ordering.OrderItemRepository
	productRepo catalog.ProductRepository
	userRepo    identity.UserRepository
	logger      *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo ordering.OrderRepository,
	itemRepo ordering.OrderItemRepository,
	productRepo catalog.ProductRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		itemRepo:    itemRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Create places an order. The total is recomputed from current product
// prices and each line captures the unit price at call time, so later
// price changes never affect existing orders.
func (s *OrderService) Create(ctx context.Context, userID int64, req CreateOrderRequest) (*OrderResponse, error) {
	items := make([]*ordering.OrderItem, 0, len(req.Items))
	total := decimal.Zero
	for _, line := range req.Items {
		product, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		item, err := ordering.NewOrderItem(product.ID, line.Quantity, product.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		total = total.Add(item.LineTotal())
	}

	order, err := ordering.NewOrder(userID, total)
	if err != nil {
		return nil, err
	}
	order.AttachPayment(req.PaymentID)

	if err := s.orderRepo.InsertWithItems(ctx, order, items); err != nil {
		return nil, fmt.Errorf("storing order for user %d: %w", userID, err)
	}

	s.logger.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.String("total", total.StringFixed(2)))

	stored := make([]ordering.OrderItem, len(items))
	for i, item := range items {
		stored[i] = *item
	}

	resp := ToOrderResponse(order)
	resp.Items = ToItemResponses(stored)
	return resp, nil
}

// List returns all orders for admins, own orders for customers.
func (s *OrderService) List(ctx context.Context, userID int64, isAdmin bool) ([]OrderResponse, error) {
	var (
		orders []ordering.Order
		err    error
	)
	if isAdmin {
		orders, err = s.orderRepo.FindAll(ctx)
	} else {
		orders, err = s.orderRepo.FindByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// Get returns one order with its items. Customers may only read their
// own orders.
func (s *OrderService) Get(ctx context.Context, orderID, userID int64, isAdmin bool) (*OrderResponse, error) {
	order, err := s.authorize(ctx, orderID, userID, isAdmin)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	resp.Items = ToItemResponses(items)
	return resp, nil
}

// UpdateStatus assigns a new status (admin only, enforced by the
// route). Any known status value is accepted from any current status.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, status string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.SetStatus(ordering.OrderStatus(status)); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Order status updated",
		zap.Int64("order_id", orderID),
		zap.String("status", status))

	return ToOrderResponse(order), nil
}

// Receipt assembles the data the receipt renderer needs, under the
// same ownership rules as Get.
func (s *OrderService) Receipt(ctx context.Context, orderID, userID int64, isAdmin bool) (*receipt.Data, error) {
	order, err := s.authorize(ctx, orderID, userID, isAdmin)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	owner, err := s.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}

	lines := make([]receipt.LineData, len(items))
	for i, item := range items {
		name := fmt.Sprintf("Product #%d", item.ProductID)
		if product, err := s.productRepo.FindByID(ctx, item.ProductID); err == nil {
			name = product.Name
		}
		lines[i] = receipt.LineData{
			ProductName: name,
			Quantity:    item.Quantity,
			UnitPrice:   item.Price,
			LineTotal:   item.LineTotal(),
		}
	}

	return &receipt.Data{
		OrderID:      order.ID,
		OrderDate:    order.CreatedAt,
		Status:       string(order.Status),
		CustomerName: owner.Name,
		Email:        owner.Email,
		Lines:        lines,
		Total:        order.Total,
	}, nil
}

func (s *OrderService) authorize(ctx context.Context, orderID, userID int64, isAdmin bool) (*ordering.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && !order.BelongsTo(userID) {
		return nil, shared.ErrForbidden
	}
	return order, nil
}
