package cart

import (
	"github.com/nexashop/backend/internal/domain/cart"
	"github.com/shopspring/decimal"
)

// AddItemRequest adds quantity of a product to the cart
type AddItemRequest struct {
	ProductID int64 `json:"productId" binding:"required,min=1"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// SetQuantityRequest replaces a line's quantity; zero or below removes
// the line.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ItemResponse represents a cart line in API responses
type ItemResponse struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// CartResponse represents the full cart state
type CartResponse struct {
	Token     string          `json:"token"`
	Items     []ItemResponse  `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	ItemCount int             `json:"itemCount"`
}

// ToCartResponse converts a domain Cart to CartResponse
func ToCartResponse(c *cart.Cart) *CartResponse {
	items := make([]ItemResponse, len(c.Lines))
	for i, line := range c.Lines {
		items[i] = ItemResponse{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
		}
	}
	return &CartResponse{
		Token:     c.Token,
		Items:     items,
		Subtotal:  c.Subtotal(),
		ItemCount: c.ItemCount(),
	}
}
