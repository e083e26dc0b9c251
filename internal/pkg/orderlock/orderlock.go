// Package orderlock provides an in-process keyed mutex used to serialize
// mutating operations on a single order. Entries are reference counted and
// removed once the last holder releases, so the map does not grow with the
// number of orders ever seen.
package orderlock

import (
	"sync"

	"restaurant/internal/core/domain/model/kernel"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyedMutex hands out one mutex per order ID.
// The zero value is not usable; call NewKeyedMutex.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[kernel.UUID]*entry
}

// NewKeyedMutex creates an empty keyed mutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{entries: make(map[kernel.UUID]*entry)}
}

// Lock acquires the mutex for the given order, blocking until held.
// The returned function releases it and must be called exactly once.
func (k *KeyedMutex) Lock(orderID kernel.UUID) func() {
	k.mu.Lock()
	e, ok := k.entries[orderID]
	if !ok {
		e = &entry{}
		k.entries[orderID] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.entries, orderID)
		}
		k.mu.Unlock()
	}
}
