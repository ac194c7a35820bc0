package cache

import (
	"context"

	"github.com/nexashop/backend/internal/domain/cart"
)

// CartStore holds transient carts keyed by token. Implementations expire
// carts after the configured idle TTL; a missing or expired token simply
// yields no cart.
type CartStore interface {
	// Get returns the cart for a token, or (nil, nil) when absent.
	Get(ctx context.Context, token string) (*cart.Cart, error)

	// Put stores the cart and resets its idle TTL.
	Put(ctx context.Context, c *cart.Cart) error

	// Delete drops a cart.
	Delete(ctx context.Context, token string) error

	// Close releases store resources.
	Close() error
}
