package cache

import (
	"context"
	"sync"
	"time"

	"github.com/nexashop/backend/internal/domain/cart"
)

// cartEntry holds a stored cart with its expiration
type cartEntry struct {
	cart      cart.Cart
	expiresAt time.Time
}

// InMemoryCartStore implements CartStore using an in-memory map.
// This is the default for single-instance deployments; carts are lost
// on restart.
type InMemoryCartStore struct {
	mu        sync.RWMutex
	entries   map[string]cartEntry
	ttl       time.Duration
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryCartStore creates an in-memory cart store with the given
// idle TTL. It starts a background goroutine to clean up expired carts.
func NewInMemoryCartStore(ttl time.Duration) *InMemoryCartStore {
	store := &InMemoryCartStore{
		entries:  make(map[string]cartEntry),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop()

	return store
}

// Get returns a copy of the cart for a token, or nil when absent or expired
func (s *InMemoryCartStore) Get(_ context.Context, token string) (*cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[token]
	if !exists || time.Now().After(e.expiresAt) {
		return nil, nil
	}

	c := e.cart
	c.Lines = append([]cart.Line(nil), e.cart.Lines...)
	return &c, nil
}

// Put stores a copy of the cart and resets its TTL
func (s *InMemoryCartStore) Put(_ context.Context, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *c
	stored.Lines = append([]cart.Line(nil), c.Lines...)
	s.entries[c.Token] = cartEntry{
		cart:      stored,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Delete drops a cart
func (s *InMemoryCartStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *InMemoryCartStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired carts
func (s *InMemoryCartStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *InMemoryCartStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, token)
		}
	}
}

var _ CartStore = (*InMemoryCartStore)(nil)
