package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrSplitPaymentCommandIsNotConstructed = errors.New(
		"SplitPaymentCommand must be created via NewSplitPaymentCommand constructor",
	)
	ErrSplitPartsAreRequired = errors.New("at least two split parts are required")
)

// SplitPart is one share of a split payment.
type SplitPart struct {
	Amount kernel.Money
	Method payment.Method
}

// SplitPaymentCommand represents a request to settle an order with several
// payments at once, for example a table splitting the bill between cards and
// cash. The parts must sum to the order total exactly; otherwise none of
// them is processed.
type SplitPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	parts   []SplitPart

	guard guard.ConstructorGuard
}

// NewSplitPaymentCommand creates a command to split-settle an order.
func NewSplitPaymentCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	parts []SplitPart,
) (SplitPaymentCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
	); err != nil {
		return SplitPaymentCommand{}, err
	}
	if len(parts) < 2 {
		return SplitPaymentCommand{}, ErrSplitPartsAreRequired
	}
	for _, part := range parts {
		if err := errors.Join(part.Amount.Validate(), part.Method.Validate()); err != nil {
			return SplitPaymentCommand{}, err
		}
		if !part.Amount.IsPositive() {
			return SplitPaymentCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"amount", errors.New("every split amount must be greater than 0"))
		}
	}

	return SplitPaymentCommand{
		orderID: orderID,
		actorID: actorID,
		parts:   parts,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SplitPaymentCommand) Validate() error {
	return c.guard.Validate(ErrSplitPaymentCommandIsNotConstructed)
}

// OrderID returns the order being settled.
func (c SplitPaymentCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the staff member recording the split.
func (c SplitPaymentCommand) ActorID() kernel.UUID { return c.actorID }

// Parts returns the shares of the split.
func (c SplitPaymentCommand) Parts() []SplitPart { return c.parts }
