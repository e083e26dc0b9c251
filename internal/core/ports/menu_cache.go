package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuCache is a read-through cache in front of the menu item repository.
// Cached entries serve read paths that tolerate slightly stale prices and
// names; stock checks always go to the repository. Mutating commands
// invalidate affected entries after commit.
type MenuCache interface {
	// Get returns the cached menu item, or a nil item with no error on a
	// cache miss.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// Set stores a menu item in the cache.
	Set(ctx context.Context, item *menu.MenuItem) error

	// Invalidate removes the given menu items from the cache.
	Invalidate(ctx context.Context, ids ...kernel.UUID) error
}
