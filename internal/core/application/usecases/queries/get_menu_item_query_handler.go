package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// GetMenuItemQueryHandler serves menu item reads through the cache, falling
// back to the database on a miss and repopulating the cache afterwards.
// Cache failures degrade to database reads rather than failing the request.
type GetMenuItemQueryHandler struct {
	db    *gorm.DB
	cache ports.MenuCache
}

// NewGetMenuItemQueryHandler creates a handler for cached menu item reads.
func NewGetMenuItemQueryHandler(db *gorm.DB, cache ports.MenuCache) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db, cache: cache}
}

// Handle executes the query.
func (h GetMenuItemQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemQuery,
) (GetMenuItemQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuItemQueryResponse{}, err
	}

	if cached, err := h.cache.Get(ctx, query.MenuItemID()); err == nil && cached != nil {
		return toResponse(cached), nil
	}

	var row struct {
		Name              string
		Price             decimal.Decimal
		PrepArea          string
		StockQuantity     int
		LowStockThreshold int
		Unit              string
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT name, price, prep_area, stock_quantity, low_stock_threshold, unit
		FROM menu_items
		WHERE id = ?
	`, query.MenuItemID().String()).Scan(&row)
	if result.Error != nil {
		return GetMenuItemQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetMenuItemQueryResponse{}, errs.NewObjectNotFoundError(
			"menu item", query.MenuItemID())
	}

	price, err := kernel.NewMoneyFromDecimal(row.Price)
	if err != nil {
		return GetMenuItemQueryResponse{}, err
	}
	prepArea, err := menu.PrepAreaFromString(row.PrepArea)
	if err != nil {
		return GetMenuItemQueryResponse{}, err
	}

	item, err := menu.RestoreMenuItem(
		query.MenuItemID(),
		row.Name,
		price,
		prepArea,
		row.StockQuantity,
		row.LowStockThreshold,
		row.Unit,
	)
	if err != nil {
		return GetMenuItemQueryResponse{}, err
	}

	// Best effort repopulation; the next read simply misses again.
	_ = h.cache.Set(ctx, item)

	return toResponse(item), nil
}

func toResponse(item *menu.MenuItem) GetMenuItemQueryResponse {
	return GetMenuItemQueryResponse{
		MenuItemID:        item.ID(),
		Name:              item.Name(),
		Price:             item.Price(),
		PrepArea:          item.PrepArea().String(),
		StockQuantity:     item.StockQuantity(),
		LowStockThreshold: item.LowStockThreshold(),
		Unit:              item.Unit(),
	}
}
