// Package redis provides the Redis-backed menu item cache. Entries are
// serialized menu snapshots with a TTL; stock decisions never read from here,
// only display paths do.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	menuKeyPrefix = "menu:item:"
	defaultTTL    = 10 * time.Minute
)

// menuItemEntry is the wire form of a cached menu item.
type menuItemEntry struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	PrepArea          string          `json:"prep_area"`
	StockQuantity     int             `json:"stock_quantity"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	Unit              string          `json:"unit"`
}

// MenuCache implements ports.MenuCache on top of a Redis client.
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMenuCache creates a menu cache with the default entry TTL.
func NewMenuCache(client *redis.Client) *MenuCache {
	return &MenuCache{client: client, ttl: defaultTTL}
}

// Get returns the cached menu item, or nil with no error on a miss.
func (c *MenuCache) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	raw, err := c.client.Get(ctx, menuKeyPrefix+id.String()).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entry menuItemEntry
	if err = json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, err
	}

	return entryToDomain(entry)
}

// Set stores a menu item snapshot under its identifier.
func (c *MenuCache) Set(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(menuItemEntry{
		ID:                item.ID().String(),
		Name:              item.Name(),
		Price:             item.Price().Decimal(),
		PrepArea:          item.PrepArea().String(),
		StockQuantity:     item.StockQuantity(),
		LowStockThreshold: item.LowStockThreshold(),
		Unit:              item.Unit(),
	})
	if err != nil {
		return err
	}

	return c.client.Set(ctx, menuKeyPrefix+item.ID().String(), raw, c.ttl).Err()
}

// Invalidate removes the given menu items from the cache.
func (c *MenuCache) Invalidate(ctx context.Context, ids ...kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, menuKeyPrefix+id.String())
	}

	return c.client.Del(ctx, keys...).Err()
}

func entryToDomain(entry menuItemEntry) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromString(entry.ID)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoneyFromDecimal(entry.Price)
	if err != nil {
		return nil, err
	}
	prepArea, err := menu.PrepAreaFromString(entry.PrepArea)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(
		id,
		entry.Name,
		price,
		prepArea,
		entry.StockQuantity,
		entry.LowStockThreshold,
		entry.Unit,
	)
}
