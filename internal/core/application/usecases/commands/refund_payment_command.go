package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrRefundPaymentCommandIsNotConstructed = errors.New(
	"RefundPaymentCommand must be created via NewRefundPaymentCommand constructor",
)

// RefundPaymentCommand represents a request to refund a completed payment.
type RefundPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewRefundPaymentCommand creates a command to refund a payment.
func NewRefundPaymentCommand(paymentID kernel.UUID, reason string) (RefundPaymentCommand, error) {
	if err := paymentID.Validate(); err != nil {
		return RefundPaymentCommand{}, err
	}
	if reason == "" {
		return RefundPaymentCommand{}, ErrReasonIsRequired
	}

	return RefundPaymentCommand{
		paymentID: paymentID,
		reason:    reason,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
}

// PaymentID returns the payment being refunded.
func (c RefundPaymentCommand) PaymentID() kernel.UUID { return c.paymentID }

// Reason returns why the payment is refunded.
func (c RefundPaymentCommand) Reason() string { return c.reason }
