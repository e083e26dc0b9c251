package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsNotReady is the unwrap target for ItemsNotReadyError.
	ErrItemsNotReady = errors.New("not all order items are ready")

	// ErrInsufficientPayment is the unwrap target for InsufficientPaymentError.
	ErrInsufficientPayment = errors.New("completed payments do not cover the order total")

	// ErrItemsLocked is returned when removing an item whose preparation has started.
	ErrItemsLocked = errors.New("cannot remove an item that is already being prepared or ready")
)

// ItemsNotReadyError reports a Ready transition attempted while at least one
// non-cancelled item has not finished preparation.
type ItemsNotReadyError struct {
	OrderID kernel.UUID
}

func (e *ItemsNotReadyError) Error() string {
	return fmt.Sprintf("order %s has items that are not ready", e.OrderID)
}

func (e *ItemsNotReadyError) Unwrap() error { return ErrItemsNotReady }

// Code returns the stable error code for API consumers.
func (e *ItemsNotReadyError) Code() string { return "ITEMS_NOT_READY" }

// InsufficientPaymentError reports a Completed transition attempted while the
// sum of completed payments is below the order total.
type InsufficientPaymentError struct {
	OrderID kernel.UUID
	Paid    kernel.Money
	Total   kernel.Money
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("order %s is not fully paid: %s of %s", e.OrderID, e.Paid, e.Total)
}

func (e *InsufficientPaymentError) Unwrap() error { return ErrInsufficientPayment }

// Code returns the stable error code for API consumers.
func (e *InsufficientPaymentError) Code() string { return "INSUFFICIENT_PAYMENT" }

// Source identifies the channel an order originated from.
type Source int

const (
	// SourceUnknown represents an invalid or undefined source.
	SourceUnknown Source = iota

	// SourcePOS marks orders entered at the point-of-sale terminal.
	SourcePOS

	// SourceWeb marks orders placed through the web frontend.
	SourceWeb

	// SourceChat marks orders placed through the chat integration.
	SourceChat
)

func getSourceStrings() map[Source]string {
	return map[Source]string{
		SourceUnknown: "Unknown",
		SourcePOS:     "pos",
		SourceWeb:     "web",
		SourceChat:    "chat",
	}
}

// SourceFromString parses an order source name ("pos", "web", or "chat").
func SourceFromString(s string) (Source, error) {
	for source, name := range getSourceStrings() {
		if source != SourceUnknown && name == s {
			return source, nil
		}
	}
	return SourceUnknown, errs.NewValueIsInvalidErrorWithCause(
		"source", fmt.Errorf("%q is not a valid order source", s))
}

// Validate checks if the Source value is valid.
func (s Source) Validate() error {
	if s != SourcePOS && s != SourceWeb && s != SourceChat {
		return errs.NewValueIsInvalidErrorWithCause(
			"source", fmt.Errorf("%d is not a valid order source", s))
	}
	return nil
}

// String returns the lowercase source name used in persistence and APIs.
func (s Source) String() string {
	if str, ok := getSourceStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusLog is the audit record emitted by every successful status change.
// It is persisted in the same transaction as the status write.
type StatusLog struct {
	OrderID kernel.UUID
	From    Status
	To      Status
	Actor   kernel.UUID
	At      time.Time
}

// Order is the aggregate root for a restaurant order. It owns its items, its
// derived totals, and its lifecycle status.
//
// Order follows these invariants:
//   - total == subtotal + tax + service charge, recomputed whenever items change
//   - subtotal is the sum of item subtotals (cancelled items excluded)
//   - status changes only through TransitionTo and Cancel
//   - items are added only while the order is pending or confirmed
//   - items whose preparation has started cannot be removed
//
// Tax and service-charge rates are snapshotted at creation so a later rate
// change never silently reprices an open order.
type Order struct {
	id          kernel.UUID
	orderNumber string
	tableID     kernel.UUID
	guestID     kernel.UUID
	waiterID    kernel.UUID
	source      Source
	status      Status
	items       []*Item

	taxRate       decimal.Decimal
	serviceRate   decimal.Decimal
	subtotal      kernel.Money
	tax           kernel.Money
	serviceCharge kernel.Money
	total         kernel.Money
	notes         string
	createdAt     time.Time
	updatedAt     time.Time
	version       int
	isConstructed bool
}

// NewOrder creates an empty pending order.
//
// Parameters:
//   - id: unique identifier for the order
//   - tableID, guestID, waiterID: references to the seated table, the guest,
//     and the staff member who took the order
//   - source: originating channel
//   - notes: optional free text
//   - taxRate, serviceRate: percentages applied to the subtotal, snapshotted
//   - now: creation timestamp
//
// The order starts with zero items and zero totals; items are added with
// AddItems, which recomputes all derived amounts.
func NewOrder(
	id kernel.UUID,
	tableID kernel.UUID,
	guestID kernel.UUID,
	waiterID kernel.UUID,
	source Source,
	notes string,
	taxRate decimal.Decimal,
	serviceRate decimal.Decimal,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		tableID.Validate(),
		guestID.Validate(),
		waiterID.Validate(),
		source.Validate(),
	); err != nil {
		return nil, err
	}
	if taxRate.IsNegative() || serviceRate.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"rates", errors.New("tax and service rates must not be negative"))
	}

	return &Order{
		id:            id,
		orderNumber:   buildOrderNumber(id, now),
		tableID:       tableID,
		guestID:       guestID,
		waiterID:      waiterID,
		source:        source,
		status:        StatusPending,
		items:         make([]*Item, 0),
		taxRate:       taxRate,
		serviceRate:   serviceRate,
		subtotal:      kernel.ZeroMoney(),
		tax:           kernel.ZeroMoney(),
		serviceCharge: kernel.ZeroMoney(),
		total:         kernel.ZeroMoney(),
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// Totals are restored as stored rather than recomputed, so the read path
// cannot mask a historical write bug; the totals invariant is re-established
// on the next item mutation.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	tableID kernel.UUID,
	guestID kernel.UUID,
	waiterID kernel.UUID,
	source Source,
	status Status,
	items []*Item,
	taxRate decimal.Decimal,
	serviceRate decimal.Decimal,
	subtotal kernel.Money,
	tax kernel.Money,
	serviceCharge kernel.Money,
	total kernel.Money,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		tableID.Validate(),
		guestID.Validate(),
		waiterID.Validate(),
		source.Validate(),
		status.Validate(),
		subtotal.Validate(),
		tax.Validate(),
		serviceCharge.Validate(),
		total.Validate(),
	); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError(
			"order version", fmt.Errorf("%d is not a valid version", version))
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		orderNumber:   orderNumber,
		tableID:       tableID,
		guestID:       guestID,
		waiterID:      waiterID,
		source:        source,
		status:        status,
		items:         items,
		taxRate:       taxRate,
		serviceRate:   serviceRate,
		subtotal:      subtotal,
		tax:           tax,
		serviceCharge: serviceCharge,
		total:         total,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}, nil
}

// buildOrderNumber derives the human-facing order number, e.g. ORD-20260830-4F2A9C31.
func buildOrderNumber(id kernel.UUID, now time.Time) string {
	short := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), short)
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OrderNumber returns the human-facing order number.
func (o *Order) OrderNumber() string { return o.orderNumber }

// TableID returns the seated table's identifier.
func (o *Order) TableID() kernel.UUID { return o.tableID }

// GuestID returns the guest's identifier.
func (o *Order) GuestID() kernel.UUID { return o.guestID }

// WaiterID returns the identifier of the staff member who took the order.
func (o *Order) WaiterID() kernel.UUID { return o.waiterID }

// Source returns the originating channel.
func (o *Order) Source() Source { return o.source }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Items returns the order's lines. The slice must not be mutated by callers.
func (o *Order) Items() []*Item { return o.items }

// TaxRate returns the tax percentage snapshotted at creation.
func (o *Order) TaxRate() decimal.Decimal { return o.taxRate }

// ServiceRate returns the service-charge percentage snapshotted at creation.
func (o *Order) ServiceRate() decimal.Decimal { return o.serviceRate }

// Subtotal returns the sum of non-cancelled item subtotals.
func (o *Order) Subtotal() kernel.Money { return o.subtotal }

// Tax returns the tax amount derived from the subtotal.
func (o *Order) Tax() kernel.Money { return o.tax }

// ServiceCharge returns the service-charge amount derived from the subtotal.
func (o *Order) ServiceCharge() kernel.Money { return o.serviceCharge }

// Total returns subtotal + tax + service charge.
func (o *Order) Total() kernel.Money { return o.total }

// Notes returns the order's free-text notes, including appended cancellation reasons.
func (o *Order) Notes() string { return o.notes }

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Version returns the optimistic-concurrency version. The repository refuses
// an update whose version does not match the stored row and bumps it on success.
func (o *Order) Version() int { return o.version }

// Item returns the order line with the given identifier.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order item", itemID.String())
}

// AddItems appends lines to the order and recomputes totals.
// Items can only be added while the order is pending or confirmed; once
// preparation has started the kitchen's view of the order is frozen.
func (o *Order) AddItems(items ...*Item) error {
	if o.status != StatusPending && o.status != StatusConfirmed {
		return &InvalidTransitionError{From: o.status, To: o.status}
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append(o.items, items...)
	o.recalculateTotals()
	return nil
}

// RemoveItem deletes a line whose preparation has not started and recomputes totals.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	for idx, item := range o.items {
		if !item.ID().IsEqual(itemID) {
			continue
		}
		if item.PrepStarted() {
			return ErrItemsLocked
		}
		o.items = append(o.items[:idx], o.items[idx+1:]...)
		o.recalculateTotals()
		return nil
	}
	return errs.NewObjectNotFoundError("order item", itemID.String())
}

// recalculateTotals re-derives subtotal, tax, service charge, and total from
// the current non-cancelled items. This is the only writer of those fields.
func (o *Order) recalculateTotals() {
	subtotal := kernel.ZeroMoney()
	for _, item := range o.items {
		if item.IsCancelled() {
			continue
		}
		subtotal = subtotal.Add(item.Subtotal())
	}
	o.subtotal = subtotal
	o.tax = subtotal.ApplyRate(o.taxRate)
	o.serviceCharge = subtotal.ApplyRate(o.serviceRate)
	o.total = subtotal.Add(o.tax).Add(o.serviceCharge)
}

// AllItemsReady reports whether every non-cancelled item has finished
// preparation. An order with no non-cancelled items is never ready; it should
// be cancelled instead.
func (o *Order) AllItemsReady() bool {
	active := 0
	for _, item := range o.items {
		if item.IsCancelled() {
			continue
		}
		active++
		if !item.IsReady() {
			return false
		}
	}
	return active > 0
}

// TransitionTo applies an order-level status change and returns the audit
// record to persist atomically with the status write.
//
// Side conditions:
//   - StatusReady requires AllItemsReady, else *ItemsNotReadyError
//   - StatusCompleted requires completedPayments >= total, else
//     *InsufficientPaymentError
//
// Any target that is not a neighbor of the current status in the transition
// graph fails with *InvalidTransitionError and leaves the order unchanged.
func (o *Order) TransitionTo(
	target Status,
	actor kernel.UUID,
	completedPayments kernel.Money,
	now time.Time,
) (StatusLog, error) {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return StatusLog{}, err
	}

	switch target {
	case StatusReady:
		if !o.AllItemsReady() {
			return StatusLog{}, &ItemsNotReadyError{OrderID: o.id}
		}
	case StatusCompleted:
		if err := completedPayments.Validate(); err != nil {
			return StatusLog{}, err
		}
		if !completedPayments.IsGreaterOrEqual(o.total) {
			return StatusLog{}, &InsufficientPaymentError{
				OrderID: o.id,
				Paid:    completedPayments,
				Total:   o.total,
			}
		}
	default:
	}

	entry := StatusLog{
		OrderID: o.id,
		From:    o.status,
		To:      newStatus,
		Actor:   actor,
		At:      now,
	}
	o.status = newStatus
	o.updatedAt = now
	return entry, nil
}

// Cancel cancels the order from any non-terminal status, appends the reason
// to the order notes, and cascades cancellation to all items that are not yet
// ready. Ready items keep their state for wastage accounting.
//
// Returns *AlreadyTerminalError if the order is already completed or cancelled.
func (o *Order) Cancel(reason string, actor kernel.UUID, now time.Time) (StatusLog, error) {
	if o.status.IsTerminal() {
		return StatusLog{}, &AlreadyTerminalError{Status: o.status}
	}

	entry := StatusLog{
		OrderID: o.id,
		From:    o.status,
		To:      StatusCancelled,
		Actor:   actor,
		At:      now,
	}
	o.status = StatusCancelled
	if reason != "" {
		o.notes = strings.TrimSpace(o.notes + "\nCancellation reason: " + reason)
	}
	for _, item := range o.items {
		if item.IsReady() || item.IsCancelled() {
			continue
		}
		// CancelPrep only refuses ready/cancelled items, both excluded above.
		_ = item.CancelPrep()
	}
	o.updatedAt = now
	return entry, nil
}

// ConfirmItemsForArea confirms all pending items belonging to the given
// preparation area and returns how many were confirmed. Already-confirmed
// items are left untouched, which keeps distribution idempotent.
func (o *Order) ConfirmItemsForArea(area menu.PrepArea) int {
	confirmed := 0
	for _, item := range o.items {
		if item.PrepStatus() != PrepPending {
			continue
		}
		if item.PrepArea() != area {
			continue
		}
		if err := item.Confirm(); err == nil {
			confirmed++
		}
	}
	return confirmed
}

// StartItemPrep records that a staff member began preparing the given item.
// The caller is responsible for the role and area authorization check; the
// aggregate only enforces the item's own state machine.
func (o *Order) StartItemPrep(itemID kernel.UUID, preparedBy kernel.UUID, now time.Time) (*Item, error) {
	item, err := o.Item(itemID)
	if err != nil {
		return nil, err
	}
	if err = item.StartPrep(preparedBy, now); err != nil {
		return nil, err
	}
	o.updatedAt = now
	return item, nil
}

// FinishItemPrep marks the given item ready for service.
func (o *Order) FinishItemPrep(itemID kernel.UUID, now time.Time) (*Item, error) {
	item, err := o.Item(itemID)
	if err != nil {
		return nil, err
	}
	if err = item.FinishPrep(); err != nil {
		return nil, err
	}
	o.updatedAt = now
	return item, nil
}
