package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand represents a gateway confirmation for a processing
// payment. Retried callbacks are harmless: completion is idempotent.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	actorID   kernel.UUID
	details   map[string]any

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to confirm a payment.
// Details carry opaque gateway fields merged onto the payment record.
func NewConfirmPaymentCommand(
	paymentID kernel.UUID,
	actorID kernel.UUID,
	details map[string]any,
) (ConfirmPaymentCommand, error) {
	if err := errors.Join(
		paymentID.Validate(),
		actorID.Validate(),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return ConfirmPaymentCommand{
		paymentID: paymentID,
		actorID:   actorID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// PaymentID returns the payment being confirmed.
func (c ConfirmPaymentCommand) PaymentID() kernel.UUID { return c.paymentID }

// ActorID returns who triggered the confirmation.
func (c ConfirmPaymentCommand) ActorID() kernel.UUID { return c.actorID }

// Details returns opaque gateway fields to merge onto the payment.
func (c ConfirmPaymentCommand) Details() map[string]any { return c.details }
