package inventory

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// TransactionType classifies a stock movement.
type TransactionType int

const (
	TypeUnknown TransactionType = iota
	TypeSale
	TypeRestock
	TypeAdjustment
	TypeWaste
)

func getTypeStrings() map[TransactionType]string {
	return map[TransactionType]string{
		TypeUnknown:    "",
		TypeSale:       "sale",
		TypeRestock:    "restock",
		TypeAdjustment: "adjustment",
		TypeWaste:      "waste",
	}
}

func getValidTypeStrings() map[string]TransactionType {
	return map[string]TransactionType{
		"sale":       TypeSale,
		"restock":    TypeRestock,
		"adjustment": TypeAdjustment,
		"waste":      TypeWaste,
	}
}

// TypeFromString parses a transaction type from its string representation.
func TypeFromString(s string) (TransactionType, error) {
	if t, ok := getValidTypeStrings()[s]; ok {
		return t, nil
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"transaction type", fmt.Errorf("unknown transaction type: %s", s))
}

// Validate checks that the transaction type is a known value.
func (t TransactionType) Validate() error {
	if t == TypeUnknown {
		return errs.NewValueIsRequiredError("transaction type")
	}
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidError("transaction type")
	}
	return nil
}

func (t TransactionType) String() string {
	return getTypeStrings()[t]
}

// ErrTransactionIsNotConstructed is returned when a Transaction instance was
// not created through the NewTransaction factory method.
var ErrTransactionIsNotConstructed = errors.New(
	"Transaction must be created via NewTransaction constructor")

// Transaction is an append-only record of a single stock movement for one
// menu item. Positive quantities add stock, negative quantities remove it.
// Sales and waste must be negative, restocks must be positive.
type Transaction struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	txType     TransactionType
	orderID    *kernel.UUID
	createdBy  kernel.UUID
	notes      string
	createdAt  time.Time

	isConstructed bool
}

// NewTransaction creates a stock movement record with validation.
func NewTransaction(
	id kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	txType TransactionType,
	orderID *kernel.UUID,
	createdBy kernel.UUID,
	notes string,
	now time.Time,
) (*Transaction, error) {
	if err := errors.Join(
		id.Validate(),
		menuItemID.Validate(),
		txType.Validate(),
		createdBy.Validate(),
	); err != nil {
		return nil, err
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}
	if quantity == 0 {
		return nil, errs.NewValueIsRequiredError("quantity")
	}

	switch txType { //nolint:exhaustive
	case TypeSale, TypeWaste:
		if quantity > 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("%s quantity must be negative", txType))
		}
	case TypeRestock:
		if quantity < 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"quantity", errors.New("restock quantity must be positive"))
		}
	}

	return &Transaction{
		id:            id,
		menuItemID:    menuItemID,
		quantity:      quantity,
		txType:        txType,
		orderID:       orderID,
		createdBy:     createdBy,
		notes:         notes,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreTransaction reconstructs a stock movement from persistence.
func RestoreTransaction(
	id kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	txType TransactionType,
	orderID *kernel.UUID,
	createdBy kernel.UUID,
	notes string,
	createdAt time.Time,
) (*Transaction, error) {
	return NewTransaction(id, menuItemID, quantity, txType, orderID, createdBy, notes, createdAt)
}

// Validate ensures the Transaction instance was created through a constructor.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() kernel.UUID { return t.id }

// MenuItemID returns the menu item whose stock moved.
func (t *Transaction) MenuItemID() kernel.UUID { return t.menuItemID }

// Quantity returns the signed stock delta.
func (t *Transaction) Quantity() int { return t.quantity }

// Type returns the movement classification.
func (t *Transaction) Type() TransactionType { return t.txType }

// OrderID returns the order that caused the movement, nil for manual moves.
func (t *Transaction) OrderID() *kernel.UUID { return t.orderID }

// CreatedBy returns the staff member who recorded the movement.
func (t *Transaction) CreatedBy() kernel.UUID { return t.createdBy }

// Notes returns the free-form note attached to the movement.
func (t *Transaction) Notes() string { return t.notes }

// CreatedAt returns the movement's creation time.
func (t *Transaction) CreatedAt() time.Time { return t.createdAt }
