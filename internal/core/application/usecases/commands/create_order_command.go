package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// OrderLine is one requested menu item with its quantity, carried by the
// order intake commands.
type OrderLine struct {
	MenuItemID          kernel.UUID
	Quantity            int
	SpecialInstructions string
}

func validateLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}
	for _, line := range lines {
		if err := line.MenuItemID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}
	return nil
}

// CreateOrderCommand represents a request to open a new order for a seated
// guest. Encapsulates the table, the guest, the waiter taking the order, the
// originating channel and the requested menu items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), tableID, guestID, waiterID, order.SourcePOS,
//	    "no onions on anything",
//	    []OrderLine{{MenuItemID: burgerID, Quantity: 2}},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, router, publisher, rates)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tableID  kernel.UUID
	guestID  kernel.UUID
	waiterID kernel.UUID
	source   order.Source
	notes    string
	lines    []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Validates identifiers, the source channel and every order line.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	tableID kernel.UUID,
	guestID kernel.UUID,
	waiterID kernel.UUID,
	source order.Source,
	notes string,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		tableID.Validate(),
		guestID.Validate(),
		waiterID.Validate(),
		source.Validate(),
		validateLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:  orderID,
		tableID:  tableID,
		guestID:  guestID,
		waiterID: waiterID,
		source:   source,
		notes:    notes,
		lines:    lines,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// TableID returns the table the guest is seated at.
func (c CreateOrderCommand) TableID() kernel.UUID { return c.tableID }

// GuestID returns the guest the order belongs to.
func (c CreateOrderCommand) GuestID() kernel.UUID { return c.guestID }

// WaiterID returns the staff member taking the order.
func (c CreateOrderCommand) WaiterID() kernel.UUID { return c.waiterID }

// Source returns the originating channel.
func (c CreateOrderCommand) Source() order.Source { return c.source }

// Notes returns the optional free-form order notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

// Lines returns the requested menu items.
func (c CreateOrderCommand) Lines() []OrderLine { return c.lines }
