package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrMarkItemReceivedCommandIsNotConstructed = errors.New(
	"MarkItemReceivedCommand must be created via NewMarkItemReceivedCommand constructor",
)

// MarkItemReceivedCommand represents a station staff member taking a
// confirmed item into preparation. The staff member's role must cover the
// item's preparation area.
type MarkItemReceivedCommand struct { //nolint:recvcheck //using for validation
	itemID  kernel.UUID
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkItemReceivedCommand creates a command to start preparing an item.
func NewMarkItemReceivedCommand(itemID kernel.UUID, staffID kernel.UUID) (MarkItemReceivedCommand, error) {
	if err := errors.Join(
		itemID.Validate(),
		staffID.Validate(),
	); err != nil {
		return MarkItemReceivedCommand{}, err
	}

	return MarkItemReceivedCommand{
		itemID:  itemID,
		staffID: staffID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkItemReceivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemReceivedCommandIsNotConstructed)
}

// ItemID returns the item being taken into preparation.
func (c MarkItemReceivedCommand) ItemID() kernel.UUID { return c.itemID }

// StaffID returns the staff member starting the work.
func (c MarkItemReceivedCommand) StaffID() kernel.UUID { return c.staffID }
