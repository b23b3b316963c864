package memstore

import (
	"sync"

	"ordering/internal/core/domain/model/kernel"
)

// collection is an ordered, mutex-guarded sequence of records addressed by
// identifier. It provides the coarse per-store mutual exclusion the handlers
// rely on: the surrounding pipeline runs each mutation to completion, and the
// collection serializes access from concurrent transports.
type collection[T comparable] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(T) kernel.ID
}

func newCollection[T comparable](idOf func(T) kernel.ID) *collection[T] {
	return &collection[T]{idOf: idOf}
}

// find returns the record whose identifier equals id.
func (c *collection[T]) find(id kernel.ID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.idOf(item).IsEqual(id) {
			return item, true
		}
	}

	var zero T
	return zero, false
}

// append adds a record to the end of the sequence.
func (c *collection[T]) append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
}

// remove deletes a record by identity, preserving the order of the rest.
func (c *collection[T]) remove(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if existing == item {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// contains reports whether the exact record is owned by the collection.
func (c *collection[T]) contains(item T) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, existing := range c.items {
		if existing == item {
			return true
		}
	}
	return false
}

// all returns a copy of the sequence in insertion order.
func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}
