package store

import (
	"sync"

	"github.com/mamadbah2/bizdash/internal/domain/models"
)

// Collection is an insertion-ordered set of records of one kind. The mutex is
// held only for the duration of a single copy or mutation; callers that
// read, wait and then write are not serialised against each other.
type Collection[T models.Entity] struct {
	mu    sync.RWMutex
	items []T
}

// NewCollection returns a collection holding copies of seed.
func NewCollection[T models.Entity](seed ...T) *Collection[T] {
	c := &Collection[T]{items: make([]T, 0, len(seed))}
	for _, item := range seed {
		c.items = append(c.items, clone(item))
	}
	return c
}

// All returns a copy of every record in insertion order.
func (c *Collection[T]) All() []T {
	return c.Filter(nil)
}

// Filter returns copies of the records accepted by keep, preserving order.
// A nil keep accepts everything.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if keep != nil && !keep(item) {
			continue
		}
		out = append(out, clone(item))
	}
	return out
}

// Get returns a copy of the record with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return clone(c.items[i]), true
	}
	var zero T
	return zero, false
}

// Append adds item at the end of the collection.
func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, clone(item))
}

// Update applies mutate to the record with the given id in place and returns
// a copy of the result. It reports false when no such record exists.
func (c *Collection[T]) Update(id string, mutate func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	mutate(&c.items[i])
	return clone(c.items[i]), true
}

// Remove deletes the record with the given id and reports whether it existed.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// Has reports whether a record with the given id exists.
func (c *Collection[T]) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.indexOf(id) >= 0
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) indexOf(id string) int {
	for i, item := range c.items {
		if item.Identity() == id {
			return i
		}
	}
	return -1
}

// clone copies records whose kind holds pointer fields so that callers never
// alias store memory.
func clone[T models.Entity](item T) T {
	if c, ok := any(item).(interface{ Clone() T }); ok {
		return c.Clone()
	}
	return item
}
