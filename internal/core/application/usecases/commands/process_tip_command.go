package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrProcessTipCommandIsNotConstructed = errors.New(
	"ProcessTipCommand must be created via NewProcessTipCommand constructor",
)

// ProcessTipCommand represents a gratuity for the waiter of an order,
// optionally attached to a payment.
type ProcessTipCommand struct { //nolint:recvcheck //using for validation
	tipID     kernel.UUID
	orderID   kernel.UUID
	paymentID *kernel.UUID
	amount    kernel.Money
	method    payment.Method

	guard guard.ConstructorGuard
}

// NewProcessTipCommand creates a command to record a tip.
func NewProcessTipCommand(
	tipID kernel.UUID,
	orderID kernel.UUID,
	paymentID *kernel.UUID,
	amount kernel.Money,
	method payment.Method,
) (ProcessTipCommand, error) {
	if err := errors.Join(
		tipID.Validate(),
		orderID.Validate(),
		amount.Validate(),
		method.Validate(),
	); err != nil {
		return ProcessTipCommand{}, err
	}
	if paymentID != nil {
		if err := paymentID.Validate(); err != nil {
			return ProcessTipCommand{}, err
		}
	}
	if !amount.IsPositive() {
		return ProcessTipCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", errors.New("tip amount must be greater than 0"))
	}

	return ProcessTipCommand{
		tipID:     tipID,
		orderID:   orderID,
		paymentID: paymentID,
		amount:    amount,
		method:    method,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessTipCommand) Validate() error {
	return c.guard.Validate(ErrProcessTipCommandIsNotConstructed)
}

// TipID returns the identifier for the new tip.
func (c ProcessTipCommand) TipID() kernel.UUID { return c.tipID }

// OrderID returns the order the tip belongs to.
func (c ProcessTipCommand) OrderID() kernel.UUID { return c.orderID }

// PaymentID returns the payment the tip rides on, nil for standalone tips.
func (c ProcessTipCommand) PaymentID() *kernel.UUID { return c.paymentID }

// Amount returns the tip amount.
func (c ProcessTipCommand) Amount() kernel.Money { return c.amount }

// Method returns how the tip was given.
func (c ProcessTipCommand) Method() payment.Method { return c.method }
