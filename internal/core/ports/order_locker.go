package ports

import (
	"restaurant/internal/core/domain/model/kernel"
)

// OrderLocker serializes mutating operations on a single order within this
// process. Concurrent readiness updates from different preparation areas
// take the lock for the order before loading it, so the last item to finish
// observes every earlier completion.
type OrderLocker interface {
	// Lock acquires the mutex for the given order, blocking until held.
	// The returned function releases it.
	Lock(orderID kernel.UUID) (unlock func())
}
