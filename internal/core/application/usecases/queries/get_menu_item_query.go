package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetMenuItemQueryIsNotConstructed = errors.New(
	"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
)

// GetMenuItemQuery retrieves one menu item for display. This read is served
// through the cache; stock figures may lag the repository by up to the cache
// TTL and must not be used for availability decisions.
type GetMenuItemQuery struct {
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuItemQuery creates a query for one menu item.
func NewGetMenuItemQuery(menuItemID kernel.UUID) (GetMenuItemQuery, error) {
	if err := menuItemID.Validate(); err != nil {
		return GetMenuItemQuery{}, err
	}

	return GetMenuItemQuery{
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

// MenuItemID returns the requested menu item.
func (q GetMenuItemQuery) MenuItemID() kernel.UUID { return q.menuItemID }

// GetMenuItemQueryResponse is the display projection of one menu item.
type GetMenuItemQueryResponse struct {
	MenuItemID        kernel.UUID
	Name              string
	Price             kernel.Money
	PrepArea          string
	StockQuantity     int
	LowStockThreshold int
	Unit              string
}
