package payment

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrTipIsNotConstructed is returned when a Tip instance was not created
// through the NewTip factory method.
var ErrTipIsNotConstructed = errors.New("Tip must be created via NewTip constructor")

// Tip records a gratuity for the waiter of an order. A tip may reference the
// payment it rode in on, and is created once, never mutated.
type Tip struct {
	id        kernel.UUID
	orderID   kernel.UUID
	paymentID *kernel.UUID
	waiterID  kernel.UUID
	amount    kernel.Money
	method    Method
	createdAt time.Time

	isConstructed bool
}

// NewTip creates a tip with validation. The amount must be positive.
// Role enforcement (tips only go to waiters) lives in the command handler,
// which has the staff aggregate at hand.
func NewTip(
	id kernel.UUID,
	orderID kernel.UUID,
	paymentID *kernel.UUID,
	waiterID kernel.UUID,
	amount kernel.Money,
	method Method,
	now time.Time,
) (*Tip, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		waiterID.Validate(),
		amount.Validate(),
		method.Validate(),
	); err != nil {
		return nil, err
	}
	if paymentID != nil {
		if err := paymentID.Validate(); err != nil {
			return nil, err
		}
	}
	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is not greater than 0", amount))
	}

	return &Tip{
		id:            id,
		orderID:       orderID,
		paymentID:     paymentID,
		waiterID:      waiterID,
		amount:        amount,
		method:        method,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreTip reconstructs a tip from persistence.
func RestoreTip(
	id kernel.UUID,
	orderID kernel.UUID,
	paymentID *kernel.UUID,
	waiterID kernel.UUID,
	amount kernel.Money,
	method Method,
	createdAt time.Time,
) (*Tip, error) {
	return NewTip(id, orderID, paymentID, waiterID, amount, method, createdAt)
}

// Validate ensures the Tip instance was created through a constructor.
func (t *Tip) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTipIsNotConstructed
	}
	return nil
}

// ID returns the tip's unique identifier.
func (t *Tip) ID() kernel.UUID { return t.id }

// OrderID returns the order the tip belongs to.
func (t *Tip) OrderID() kernel.UUID { return t.orderID }

// PaymentID returns the payment the tip was attached to, nil for standalone tips.
func (t *Tip) PaymentID() *kernel.UUID { return t.paymentID }

// WaiterID returns the staff member receiving the tip.
func (t *Tip) WaiterID() kernel.UUID { return t.waiterID }

// Amount returns the tip amount.
func (t *Tip) Amount() kernel.Money { return t.amount }

// Method returns how the tip was given.
func (t *Tip) Method() Method { return t.method }

// CreatedAt returns the tip's creation time.
func (t *Tip) CreatedAt() time.Time { return t.createdAt }
