package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrProcessPaymentCommandIsNotConstructed = errors.New(
	"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
)

// ProcessPaymentCommand represents a request to record a payment against an
// order. Cash settles in the same call; card and mobile money are handed to
// the gateway and settle through a later confirmation.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	orderID   kernel.UUID
	actorID   kernel.UUID
	amount    kernel.Money
	method    payment.Method
	tendered  *kernel.Money

	guard guard.ConstructorGuard
}

// NewProcessPaymentCommand creates a command to record a payment.
// For cash, tendered is the amount handed over and must cover the payment.
func NewProcessPaymentCommand(
	paymentID kernel.UUID,
	orderID kernel.UUID,
	actorID kernel.UUID,
	amount kernel.Money,
	method payment.Method,
	tendered *kernel.Money,
) (ProcessPaymentCommand, error) {
	if err := errors.Join(
		paymentID.Validate(),
		orderID.Validate(),
		actorID.Validate(),
		amount.Validate(),
		method.Validate(),
	); err != nil {
		return ProcessPaymentCommand{}, err
	}
	if !amount.IsPositive() {
		return ProcessPaymentCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", errors.New("amount must be greater than 0"))
	}
	if method.SettlesImmediately() && tendered != nil {
		if err := tendered.Validate(); err != nil {
			return ProcessPaymentCommand{}, err
		}
		if !tendered.IsGreaterOrEqual(amount) {
			return ProcessPaymentCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"tendered", errors.New("tendered amount does not cover the payment"))
		}
	}

	return ProcessPaymentCommand{
		paymentID: paymentID,
		orderID:   orderID,
		actorID:   actorID,
		amount:    amount,
		method:    method,
		tendered:  tendered,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier for the new payment.
func (c ProcessPaymentCommand) PaymentID() kernel.UUID { return c.paymentID }

// OrderID returns the order being paid.
func (c ProcessPaymentCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the staff member recording the payment.
func (c ProcessPaymentCommand) ActorID() kernel.UUID { return c.actorID }

// Amount returns the payment amount.
func (c ProcessPaymentCommand) Amount() kernel.Money { return c.amount }

// Method returns the payment method.
func (c ProcessPaymentCommand) Method() payment.Method { return c.method }

// Tendered returns the cash handed over, nil for gateway methods.
func (c ProcessPaymentCommand) Tendered() *kernel.Money { return c.tendered }
