package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu item
// aggregates, including their stock levels.
type MenuItemRepository interface {
	// Add persists a new menu item aggregate to storage.
	Add(ctx context.Context, aggregate *menu.MenuItem) error

	// Update persists changes to an existing menu item aggregate.
	Update(ctx context.Context, aggregate *menu.MenuItem) error

	// Get retrieves a menu item aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetBatch retrieves the menu items for the given identifiers, locked
	// for update so stock checks and deductions see a stable quantity for
	// the rest of the transaction. Returns an error if any item is missing.
	GetBatch(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error)

	// GetAllLowStock retrieves all menu items at or below their low stock
	// threshold.
	GetAllLowStock(ctx context.Context) ([]*menu.MenuItem, error)
}
