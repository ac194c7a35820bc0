package ordering

import (
	"github.com/nexashop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderItem is one line of an order. Price is the unit price captured at
// order-creation time; later catalog price changes do not affect it.
type OrderItem struct {
	shared.BaseEntity
	OrderID   int64           `json:"orderId" gorm:"index;not null"`
	ProductID int64           `json:"productId" gorm:"not null"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
}

// NewOrderItem captures a product line at the given unit price. The
// repository stamps OrderID when the line is stored with its order.
func NewOrderItem(productID int64, quantity int, price decimal.Decimal) (*OrderItem, error) {
	if productID <= 0 {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Order item requires a product")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	return &OrderItem{
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}, nil
}

// LineTotal returns Price multiplied by Quantity.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
