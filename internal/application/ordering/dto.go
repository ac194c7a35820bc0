package ordering

import (
	"time"

	"github.com/nexashop/backend/internal/domain/ordering"
	"github.com/shopspring/decimal"
)

// OrderLineRequest is one (product, quantity) pair in a checkout body
type OrderLineRequest struct {
	ProductID int64 `json:"productId" binding:"required,min=1"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest lists the purchased products
type CreateOrderRequest struct {
	Items     []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
	PaymentID string             `json:"paymentId" binding:"omitempty,max=100"`
}

// UpdateStatusRequest carries the new order status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ItemResponse represents an order line with the captured unit price
type ItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// OrderResponse represents an order; Items is populated on detail
// fetches only.
type OrderResponse struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	PaymentID *string         `json:"paymentId,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	Items     []ItemResponse  `json:"items,omitempty"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *ordering.Order) *OrderResponse {
	return &OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Total:     o.Total,
		Status:    string(o.Status),
		PaymentID: o.PaymentID,
		CreatedAt: o.CreatedAt,
	}
}

// ToOrderResponses converts a slice of domain Orders
func ToOrderResponses(orders []ordering.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = *ToOrderResponse(&orders[i])
	}
	return out
}

// ToItemResponses converts domain OrderItems
func ToItemResponses(items []ordering.OrderItem) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = ItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			LineTotal: item.LineTotal(),
		}
	}
	return out
}
