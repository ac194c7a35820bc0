package cart

import (
	"time"

	"github.com/nexashop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Line is one product entry in a cart. UnitPrice is a snapshot of the
// catalog price at the time the line was last written; checkout always
// re-reads live prices.
type Line struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Cart is a transient shopping cart addressed by an opaque token. It is
// never persisted across restarts unless an external store backs it.
type Cart struct {
	Token     string    `json:"token"`
	Lines     []Line    `json:"lines"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// New creates an empty cart for the given token.
func New(token string) *Cart {
	return &Cart{
		Token:     token,
		Lines:     make([]Line, 0),
		UpdatedAt: time.Now().UTC(),
	}
}

// Add merges quantity into an existing line or appends a new one. The
// unit price snapshot is refreshed on every add.
func (c *Cart) Add(productID int64, quantity int, unitPrice decimal.Decimal) error {
	if productID <= 0 {
		return shared.NewDomainError("INVALID_PRODUCT", "Cart line requires a product")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity += quantity
			c.Lines[i].UnitPrice = unitPrice
			c.touch()
			return nil
		}
	}
	c.Lines = append(c.Lines, Line{ProductID: productID, Quantity: quantity, UnitPrice: unitPrice})
	c.touch()
	return nil
}

// SetQuantity replaces the quantity of a line. A quantity of zero or
// less removes the line. Missing lines are not-found.
func (c *Cart) SetQuantity(productID int64, quantity int) error {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			if quantity <= 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			} else {
				c.Lines[i].Quantity = quantity
			}
			c.touch()
			return nil
		}
	}
	return shared.ErrNotFound
}

// Remove deletes a line.
func (c *Cart) Remove(productID int64) error {
	return c.SetQuantity(productID, 0)
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.Lines = c.Lines[:0]
	c.touch()
}

// Subtotal is the sum of unit price times quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// ItemCount is the total quantity across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, line := range c.Lines {
		n += line.Quantity
	}
	return n
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
