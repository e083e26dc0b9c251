package menu

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
	// created through NewMenuItem or RestoreMenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

	// ErrInsufficientStock is the unwrap target for InsufficientStockError.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrNegativeStock is the unwrap target for NegativeStockError.
	ErrNegativeStock = errors.New("stock cannot go negative")
)

// InsufficientStockError reports that an order requested more units of a menu
// item than are currently in stock. It names the offending item so callers can
// surface which line blocked the whole order.
type InsufficientStockError struct {
	ItemName  string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d",
		e.ItemName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// Code returns the stable error code for API consumers.
func (e *InsufficientStockError) Code() string { return "INSUFFICIENT_STOCK" }

// NegativeStockError reports an attempted stock mutation that would drive the
// quantity below zero outside the validated deduction path.
type NegativeStockError struct {
	ItemName string
	Quantity int
}

func (e *NegativeStockError) Error() string {
	return fmt.Sprintf("stock for %q cannot go negative (delta %d)", e.ItemName, e.Quantity)
}

func (e *NegativeStockError) Unwrap() error { return ErrNegativeStock }

// Code returns the stable error code for API consumers.
func (e *NegativeStockError) Code() string { return "NEGATIVE_STOCK" }

// MenuItem is the aggregate for a sellable item. The order core reads its
// price and preparation area, and mutates only its stock level through the
// inventory deduction and restock operations.
//
// MenuItem follows these invariants:
//   - Must have a valid unique identifier and non-empty name
//   - Price must be a valid Money value
//   - Stock quantity never goes negative
//   - Preparation area is a member of the PrepArea set
type MenuItem struct {
	id                kernel.UUID
	name              string
	price             kernel.Money
	prepArea          PrepArea
	stockQuantity     int
	lowStockThreshold int
	unit              string

	isConstructed bool
}

// NewMenuItem creates a MenuItem with validation.
// Stock quantity and low-stock threshold must not be negative.
func NewMenuItem(
	id kernel.UUID,
	name string,
	price kernel.Money,
	prepArea PrepArea,
	stockQuantity int,
	lowStockThreshold int,
	unit string,
) (*MenuItem, error) {
	if err := errors.Join(
		id.Validate(),
		price.Validate(),
		prepArea.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if stockQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"stock quantity", fmt.Errorf("%d is negative", stockQuantity))
	}
	if lowStockThreshold < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"low stock threshold", fmt.Errorf("%d is negative", lowStockThreshold))
	}

	return &MenuItem{
		id:                id,
		name:              name,
		price:             price,
		prepArea:          prepArea,
		stockQuantity:     stockQuantity,
		lowStockThreshold: lowStockThreshold,
		unit:              unit,
		isConstructed:     true,
	}, nil
}

// RestoreMenuItem reconstructs a MenuItem from persistence.
func RestoreMenuItem(
	id kernel.UUID,
	name string,
	price kernel.Money,
	prepArea PrepArea,
	stockQuantity int,
	lowStockThreshold int,
	unit string,
) (*MenuItem, error) {
	return NewMenuItem(id, name, price, prepArea, stockQuantity, lowStockThreshold, unit)
}

// Validate ensures the MenuItem was created through a constructor.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID { return m.id }

// Name returns the menu item's display name.
func (m *MenuItem) Name() string { return m.name }

// Price returns the current unit price. Orders snapshot this at add-time.
func (m *MenuItem) Price() kernel.Money { return m.price }

// PrepArea returns the station responsible for producing the item.
func (m *MenuItem) PrepArea() PrepArea { return m.prepArea }

// StockQuantity returns the current stock level.
func (m *MenuItem) StockQuantity() int { return m.stockQuantity }

// LowStockThreshold returns the level below which a low-stock signal fires.
func (m *MenuItem) LowStockThreshold() int { return m.lowStockThreshold }

// Unit returns the stock-keeping unit label, e.g. "portion" or "bottle".
func (m *MenuItem) Unit() string { return m.unit }

// CanDeduct reports whether the requested quantity is coverable by current
// stock. The inventory deduction checks all of an order's items with CanDeduct
// before any Deduct is applied, so a single shortage fails the whole order.
func (m *MenuItem) CanDeduct(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > m.stockQuantity {
		return &InsufficientStockError{
			ItemName:  m.name,
			Requested: quantity,
			Available: m.stockQuantity,
		}
	}
	return nil
}

// Deduct decrements stock by quantity. Callers must have validated the
// deduction with CanDeduct; Deduct still refuses to drive stock negative.
func (m *MenuItem) Deduct(quantity int) error {
	if err := m.CanDeduct(quantity); err != nil {
		return err
	}
	if m.stockQuantity-quantity < 0 {
		return &NegativeStockError{ItemName: m.name, Quantity: -quantity}
	}
	m.stockQuantity -= quantity
	return nil
}

// Restock increments stock by quantity.
func (m *MenuItem) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	m.stockQuantity += quantity
	return nil
}

// IsLowStock reports whether the current stock level is below the configured
// threshold. Evaluated after every deduction to emit the low-stock signal.
func (m *MenuItem) IsLowStock() bool {
	return m.stockQuantity < m.lowStockThreshold
}
