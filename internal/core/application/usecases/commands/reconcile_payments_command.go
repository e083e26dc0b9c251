package commands

import (
	"errors"
	"time"

	"restaurant/internal/pkg/guard"
)

var (
	ErrReconcilePaymentsCommandIsNotConstructed = errors.New(
		"ReconcilePaymentsCommand must be created via NewReconcilePaymentsCommand constructor",
	)
	ErrGracePeriodIsInvalid = errors.New("grace period must be positive")
)

// ReconcilePaymentsCommand sweeps gateway payments that have been sitting in
// processing longer than the grace period and marks them failed. A payment
// whose confirmation callback never arrived would otherwise block the order
// forever.
type ReconcilePaymentsCommand struct { //nolint:recvcheck //using for validation
	gracePeriod time.Duration

	guard guard.ConstructorGuard
}

// NewReconcilePaymentsCommand creates a sweep command with the given grace
// period.
func NewReconcilePaymentsCommand(gracePeriod time.Duration) (ReconcilePaymentsCommand, error) {
	if gracePeriod <= 0 {
		return ReconcilePaymentsCommand{}, ErrGracePeriodIsInvalid
	}

	return ReconcilePaymentsCommand{
		gracePeriod: gracePeriod,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcilePaymentsCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePaymentsCommandIsNotConstructed)
}

// GracePeriod returns how long a payment may stay in processing before the
// sweep fails it.
func (c ReconcilePaymentsCommand) GracePeriod() time.Duration { return c.gracePeriod }
