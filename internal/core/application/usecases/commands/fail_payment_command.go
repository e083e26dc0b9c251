package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrFailPaymentCommandIsNotConstructed = errors.New(
		"FailPaymentCommand must be created via NewFailPaymentCommand constructor",
	)
	ErrReasonIsRequired = errors.New("reason is required")
)

// FailPaymentCommand represents a gateway decline for a payment in flight.
type FailPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewFailPaymentCommand creates a command to mark a payment failed.
func NewFailPaymentCommand(paymentID kernel.UUID, reason string) (FailPaymentCommand, error) {
	if err := paymentID.Validate(); err != nil {
		return FailPaymentCommand{}, err
	}
	if reason == "" {
		return FailPaymentCommand{}, ErrReasonIsRequired
	}

	return FailPaymentCommand{
		paymentID: paymentID,
		reason:    reason,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FailPaymentCommand) Validate() error {
	return c.guard.Validate(ErrFailPaymentCommandIsNotConstructed)
}

// PaymentID returns the payment being failed.
func (c FailPaymentCommand) PaymentID() kernel.UUID { return c.paymentID }

// Reason returns why the payment failed.
func (c FailPaymentCommand) Reason() string { return c.reason }
