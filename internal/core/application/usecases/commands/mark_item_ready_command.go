package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrMarkItemReadyCommandIsNotConstructed = errors.New(
	"MarkItemReadyCommand must be created via NewMarkItemReadyCommand constructor",
)

// MarkItemReadyCommand represents a station finishing an item. When the last
// active item of an order becomes ready, the order itself transitions to
// ready exactly once.
type MarkItemReadyCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkItemReadyCommand creates a command to finish an item.
func NewMarkItemReadyCommand(itemID kernel.UUID) (MarkItemReadyCommand, error) {
	if err := itemID.Validate(); err != nil {
		return MarkItemReadyCommand{}, err
	}

	return MarkItemReadyCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkItemReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemReadyCommandIsNotConstructed)
}

// ItemID returns the item being finished.
func (c MarkItemReadyCommand) ItemID() kernel.UUID { return c.itemID }
