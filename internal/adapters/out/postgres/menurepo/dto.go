// Package menurepo provides data transfer objects and mapping functions for
// menu item persistence, including the stock level columns the ordering path
// checks and deducts.
package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the database row for a menu item.
type MenuItemDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string
	Price             decimal.Decimal `gorm:"type:numeric(12,2)"`
	PrepArea          string
	StockQuantity     int
	LowStockThreshold int
	Unit              string
}

// TableName specifies the database table name for menu item rows.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item aggregate to its database representation.
func fromDomain(aggregate *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		Price:             aggregate.Price().Decimal(),
		PrepArea:          aggregate.PrepArea().String(),
		StockQuantity:     aggregate.StockQuantity(),
		LowStockThreshold: aggregate.LowStockThreshold(),
		Unit:              aggregate.Unit(),
	}
}

// toDomain converts a database row to a menu item aggregate.
func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoneyFromDecimal(dto.Price)
	if err != nil {
		return nil, err
	}
	prepArea, err := menu.PrepAreaFromString(dto.PrepArea)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(
		id,
		dto.Name,
		price,
		prepArea,
		dto.StockQuantity,
		dto.LowStockThreshold,
		dto.Unit,
	)
}
