package ordering

import (
	"github.com/nexashop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfillment status of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the status is a known OrderStatus. Any valid status
// may be assigned from any other; there is no transition gating.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// Order is a customer purchase. Total is recomputed server-side from the
// product prices current at creation; PaymentID links the order to its
// Stripe PaymentIntent once known.
type Order struct {
	shared.BaseEntity
	UserID    int64           `json:"userId" gorm:"index;not null"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	Status    OrderStatus     `json:"status" gorm:"not null;default:pending"`
	PaymentID *string         `json:"paymentId"`
}

// NewOrder creates a pending order for a user.
func NewOrder(userID int64, total decimal.Decimal) (*Order, error) {
	if userID <= 0 {
		return nil, shared.NewDomainError("INVALID_USER", "Order requires a user")
	}
	if total.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TOTAL", "Order total cannot be negative")
	}
	return &Order{
		UserID: userID,
		Total:  total,
		Status: OrderStatusPending,
	}, nil
}

// SetStatus assigns a new status. Unknown values are rejected; known
// values are always accepted regardless of the current status.
func (o *Order) SetStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	o.Status = status
	return nil
}

// AttachPayment links the order to a payment provider reference.
func (o *Order) AttachPayment(paymentID string) {
	if paymentID == "" {
		o.PaymentID = nil
		return
	}
	o.PaymentID = &paymentID
}

// BelongsTo reports whether the order is owned by the given user.
func (o *Order) BelongsTo(userID int64) bool {
	return o.UserID == userID
}
