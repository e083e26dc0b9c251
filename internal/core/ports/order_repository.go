// Package ports defines repository and infrastructure interfaces for the
// restaurant domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// with their items and current lifecycle state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The stored
	// version must match the aggregate's version; a mismatch means another
	// writer got there first and the caller must retry on fresh state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all items and their prep state.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByItemID retrieves the order that contains the given item.
	// Returns the complete order with all items and their prep state.
	GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status,
	// oldest first.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllOpenForTable retrieves all non-terminal orders seated at the
	// given table. Used to decide whether completing or cancelling an order
	// frees the table.
	GetAllOpenForTable(ctx context.Context, tableID kernel.UUID) ([]*order.Order, error)

	// AddStatusLog appends one entry to the order's status history.
	AddStatusLog(ctx context.Context, log order.StatusLog) error

	// GetStatusLogs retrieves an order's status history, oldest first.
	GetStatusLogs(ctx context.Context, orderID kernel.UUID) ([]order.StatusLog, error)
}
