// Package cart manages the transient shopping cart addressed by a
// cart token.
package cart

import (
	"context"

	"github.com/google/uuid"
	"github.com/nexashop/backend/internal/domain/cart"
	"github.com/nexashop/backend/internal/domain/catalog"
	"github.com/nexashop/backend/internal/domain/shared"
	"github.com/nexashop/backend/internal/infrastructure/cache"
	"go.uber.org/zap"
)

// CartService validates products against the catalog and persists cart
// state in the configured cart store.
type CartService struct {
	store       cache.CartStore
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(store cache.CartStore, productRepo catalog.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{
		store:       store,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Get returns the cart for a token. An unknown or expired token yields
// an empty cart under the same token.
func (s *CartService) Get(ctx context.Context, token string) (*CartResponse, error) {
	if token == "" {
		return ToCartResponse(cart.New(uuid.NewString())), nil
	}
	c, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = cart.New(token)
	}
	return ToCartResponse(c), nil
}

// AddItem merges quantity of a product into the cart, snapshotting the
// current unit price. A missing token starts a new cart.
func (s *CartService) AddItem(ctx context.Context, token string, req AddItemRequest) (*CartResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.InStock {
		return nil, shared.ErrOutOfStock
	}

	c, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := c.Add(product.ID, req.Quantity, product.Price); err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Debug("Cart item added",
		zap.String("cart_token", c.Token),
		zap.Int64("product_id", product.ID),
		zap.Int("quantity", req.Quantity))

	return ToCartResponse(c), nil
}

// SetQuantity replaces a line's quantity; qty <= 0 removes the line.
func (s *CartService) SetQuantity(ctx context.Context, token string, productID int64, quantity int) (*CartResponse, error) {
	c, err := s.require(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := c.SetQuantity(productID, quantity); err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, c); err != nil {
		return nil, err
	}
	return ToCartResponse(c), nil
}

// RemoveItem drops a line from the cart
func (s *CartService) RemoveItem(ctx context.Context, token string, productID int64) (*CartResponse, error) {
	c, err := s.require(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := c.Remove(productID); err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, c); err != nil {
		return nil, err
	}
	return ToCartResponse(c), nil
}

// Clear empties the cart and removes it from the store
func (s *CartService) Clear(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.store.Delete(ctx, token)
}

// load fetches an existing cart or starts a fresh one, issuing a token
// when none was supplied.
func (s *CartService) load(ctx context.Context, token string) (*cart.Cart, error) {
	if token == "" {
		return cart.New(uuid.NewString()), nil
	}
	c, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return cart.New(token), nil
	}
	return c, nil
}

// require fetches an existing cart and fails on unknown tokens, so
// mutations of expired carts surface as not-found.
func (s *CartService) require(ctx context.Context, token string) (*cart.Cart, error) {
	if token == "" {
		return nil, shared.ErrNotFound
	}
	c, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, shared.ErrNotFound
	}
	return c, nil
}
