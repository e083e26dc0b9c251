package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrRestockItemCommandIsNotConstructed = errors.New(
	"RestockItemCommand must be created via NewRestockItemCommand constructor",
)

// RestockItemCommand represents a delivery of stock for one menu item.
type RestockItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	staffID    kernel.UUID
	quantity   int
	notes      string

	guard guard.ConstructorGuard
}

// NewRestockItemCommand creates a command to restock a menu item.
func NewRestockItemCommand(
	menuItemID kernel.UUID,
	staffID kernel.UUID,
	quantity int,
	notes string,
) (RestockItemCommand, error) {
	if err := errors.Join(
		menuItemID.Validate(),
		staffID.Validate(),
	); err != nil {
		return RestockItemCommand{}, err
	}
	if quantity <= 0 {
		return RestockItemCommand{}, ErrQuantityIsInvalid
	}

	return RestockItemCommand{
		menuItemID: menuItemID,
		staffID:    staffID,
		quantity:   quantity,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RestockItemCommand) Validate() error {
	return c.guard.Validate(ErrRestockItemCommandIsNotConstructed)
}

// MenuItemID returns the menu item being restocked.
func (c RestockItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }

// StaffID returns the staff member recording the delivery.
func (c RestockItemCommand) StaffID() kernel.UUID { return c.staffID }

// Quantity returns how many units arrived.
func (c RestockItemCommand) Quantity() int { return c.quantity }

// Notes returns the free-form note for the ledger row.
func (c RestockItemCommand) Notes() string { return c.notes }
