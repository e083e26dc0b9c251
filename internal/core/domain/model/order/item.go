package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an order line. It belongs exclusively to one Order and snapshots the
// menu item's name, unit price, and preparation area at add-time, so later
// catalog edits never change a placed order.
//
// Item follows these invariants:
//   - Quantity is a positive integer
//   - Unit price is immutable after construction
//   - Subtotal is always quantity times unit price
//   - Prep status transitions follow the PrepStatus state machine
type Item struct {
	id                  kernel.UUID
	menuItemID          kernel.UUID
	name                string
	quantity            int
	unitPrice           kernel.Money
	prepArea            menu.PrepArea
	prepStatus          PrepStatus
	preparedBy          *kernel.UUID
	preparedAt          *time.Time
	specialInstructions string
	createdAt           time.Time

	isConstructed bool
}

// NewItem creates an order line from a menu item snapshot.
//
// Parameters:
//   - id: unique identifier for the line
//   - menuItem: catalog entry whose name, price, and prep area are snapshotted
//   - quantity: number of units (must be positive)
//   - specialInstructions: optional free text for the station
//   - now: creation timestamp, used for station queue ordering
func NewItem(
	id kernel.UUID,
	menuItem *menu.MenuItem,
	quantity int,
	specialInstructions string,
	now time.Time,
) (*Item, error) {
	if err := errors.Join(id.Validate(), menuItem.Validate()); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &Item{
		id:                  id,
		menuItemID:          menuItem.ID(),
		name:                menuItem.Name(),
		quantity:            quantity,
		unitPrice:           menuItem.Price(),
		prepArea:            menuItem.PrepArea(),
		prepStatus:          PrepPending,
		specialInstructions: specialInstructions,
		createdAt:           now,
		isConstructed:       true,
	}, nil
}

// RestoreItem reconstructs an order line from persistence.
func RestoreItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	name string,
	quantity int,
	unitPrice kernel.Money,
	prepArea menu.PrepArea,
	prepStatus PrepStatus,
	preparedBy *kernel.UUID,
	preparedAt *time.Time,
	specialInstructions string,
	createdAt time.Time,
) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		menuItemID.Validate(),
		unitPrice.Validate(),
		prepArea.Validate(),
		prepStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &Item{
		id:                  id,
		menuItemID:          menuItemID,
		name:                name,
		quantity:            quantity,
		unitPrice:           unitPrice,
		prepArea:            prepArea,
		prepStatus:          prepStatus,
		preparedBy:          preparedBy,
		preparedAt:          preparedAt,
		specialInstructions: specialInstructions,
		createdAt:           createdAt,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Item instance was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// MenuItemID returns the catalog entry the line was created from.
func (i *Item) MenuItemID() kernel.UUID { return i.menuItemID }

// Name returns the item name snapshotted at add-time.
func (i *Item) Name() string { return i.name }

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int { return i.quantity }

// UnitPrice returns the price snapshotted at add-time.
func (i *Item) UnitPrice() kernel.Money { return i.unitPrice }

// Subtotal returns quantity times unit price.
func (i *Item) Subtotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

// PrepArea returns the station responsible for the item.
func (i *Item) PrepArea() menu.PrepArea { return i.prepArea }

// PrepStatus returns the item's preparation state.
func (i *Item) PrepStatus() PrepStatus { return i.prepStatus }

// PreparedBy returns the staff member preparing the item, nil before
// preparation starts.
func (i *Item) PreparedBy() *kernel.UUID { return i.preparedBy }

// PreparedAt returns when preparation started, nil before that.
func (i *Item) PreparedAt() *time.Time { return i.preparedAt }

// SpecialInstructions returns the optional free-text note for the station.
func (i *Item) SpecialInstructions() string { return i.specialInstructions }

// CreatedAt returns the line's creation time. Station queues are ordered by
// this timestamp, oldest first.
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// IsCancelled reports whether the item was cancelled.
func (i *Item) IsCancelled() bool { return i.prepStatus == PrepCancelled }

// IsReady reports whether the item has finished preparation.
func (i *Item) IsReady() bool { return i.prepStatus == PrepReady }

// PrepStarted reports whether preparation has begun. Items whose preparation
// has started can no longer be removed from the order.
func (i *Item) PrepStarted() bool {
	return i.prepStatus == PrepPreparing || i.prepStatus == PrepReady
}

// Confirm routes the item to its station. Only pending items transition;
// the caller skips already-confirmed items to keep distribution idempotent.
func (i *Item) Confirm() error {
	newStatus, err := i.prepStatus.Confirm()
	if err != nil {
		return err
	}
	i.prepStatus = newStatus
	return nil
}

// StartPrep records that the given staff member began preparing the item.
func (i *Item) StartPrep(preparedBy kernel.UUID, now time.Time) error {
	if err := preparedBy.Validate(); err != nil {
		return err
	}
	newStatus, err := i.prepStatus.StartPrep()
	if err != nil {
		return err
	}
	i.prepStatus = newStatus
	i.preparedBy = &preparedBy
	i.preparedAt = &now
	return nil
}

// FinishPrep marks the item ready for service.
func (i *Item) FinishPrep() error {
	newStatus, err := i.prepStatus.FinishPrep()
	if err != nil {
		return err
	}
	i.prepStatus = newStatus
	return nil
}

// CancelPrep cancels the item. Ready items are left untouched.
func (i *Item) CancelPrep() error {
	newStatus, err := i.prepStatus.CancelPrep()
	if err != nil {
		return err
	}
	i.prepStatus = newStatus
	return nil
}
