// Package memory provides the in-process entity store. Each repository
// is a map guarded by a RWMutex with a monotonic integer ID counter;
// listings preserve insertion order. Contents do not survive a restart.
package memory

import (
	"sync"
	"time"

	"github.com/nexashop/backend/internal/domain/shared"
)

// entity constrains a pointer type to the store's identity contract.
type entity[T any] interface {
	*T
	shared.Entity
}

// table is the map-backed storage under every in-memory repository.
// Rows are stored and returned by value so callers never share memory
// with the store.
type table[T any, PT entity[T]] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	order  []int64
	nextID int64
}

func newTable[T any, PT entity[T]]() *table[T, PT] {
	return &table[T, PT]{rows: make(map[int64]T)}
}

// insert assigns the next sequential ID, stamps the creation time and
// stores a copy of the entity.
func (t *table[T, PT]) insert(v PT) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	v.SetID(t.nextID)
	if ts, ok := any(v).(interface{ Touch(time.Time) }); ok {
		ts.Touch(time.Now())
	}
	t.rows[t.nextID] = *v
	t.order = append(t.order, t.nextID)
}

// get returns a copy of the row or shared.ErrNotFound.
func (t *table[T, PT]) get(id int64) (PT, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &row, nil
}

// update replaces an existing row. Missing IDs are shared.ErrNotFound.
func (t *table[T, PT]) update(v PT) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := v.GetID()
	if _, ok := t.rows[id]; !ok {
		return shared.ErrNotFound
	}
	t.rows[id] = *v
	return nil
}

// delete removes a row. Missing IDs are shared.ErrNotFound.
func (t *table[T, PT]) delete(id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return shared.ErrNotFound
	}
	delete(t.rows, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

// list returns copies of all rows in insertion order.
func (t *table[T, PT]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

// filter returns copies of the rows for which keep returns true,
// preserving insertion order.
func (t *table[T, PT]) filter(keep func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range t.order {
		row := t.rows[id]
		if keep(&row) {
			out = append(out, row)
		}
	}
	return out
}

// first returns a copy of the first row matching the predicate.
func (t *table[T, PT]) first(match func(*T) bool) (PT, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, id := range t.order {
		row := t.rows[id]
		if match(&row) {
			return &row, nil
		}
	}
	return nil, shared.ErrNotFound
}
