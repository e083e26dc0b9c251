package ports

import (
	"context"

	"restaurant/internal/core/domain/model/inventory"
	"restaurant/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for the stock
// movement ledger. The ledger is append-only; movements are never updated
// or deleted.
type InventoryRepository interface {
	// Add persists a new stock movement to the ledger.
	Add(ctx context.Context, transaction *inventory.Transaction) error

	// GetAllForMenuItem retrieves all stock movements for a menu item,
	// oldest first.
	GetAllForMenuItem(ctx context.Context, menuItemID kernel.UUID) ([]*inventory.Transaction, error)
}
