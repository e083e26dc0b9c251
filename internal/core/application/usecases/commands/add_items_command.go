package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrAddItemsCommandIsNotConstructed = errors.New(
	"AddItemsCommand must be created via NewAddItemsCommand constructor",
)

// AddItemsCommand represents a request to add menu items to an order that is
// still open for amendment. The acting staff member is recorded on the stock
// movements.
type AddItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	staffID kernel.UUID
	lines   []OrderLine

	guard guard.ConstructorGuard
}

// NewAddItemsCommand creates a command to add items to an existing order.
func NewAddItemsCommand(orderID kernel.UUID, staffID kernel.UUID, lines []OrderLine) (AddItemsCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		staffID.Validate(),
		validateLines(lines),
	); err != nil {
		return AddItemsCommand{}, err
	}

	return AddItemsCommand{
		orderID: orderID,
		staffID: staffID,
		lines:   lines,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemsCommand) Validate() error {
	return c.guard.Validate(ErrAddItemsCommandIsNotConstructed)
}

// OrderID returns the order being amended.
func (c AddItemsCommand) OrderID() kernel.UUID { return c.orderID }

// StaffID returns the staff member adding the items.
func (c AddItemsCommand) StaffID() kernel.UUID { return c.staffID }

// Lines returns the requested menu items.
func (c AddItemsCommand) Lines() []OrderLine { return c.lines }
