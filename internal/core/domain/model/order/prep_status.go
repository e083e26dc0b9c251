package order

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
)

// PrepStatus represents the preparation state of a single order item,
// distinct from the order-level Status.
//
// State transitions:
//
//	PrepPending ──> PrepConfirmed ──> PrepPreparing ──> PrepReady
//	     │               │                 │
//	     └───────────────┴─────────────────┴──> PrepCancelled
//
// PrepReady items are never cancelled; an order cancellation leaves them in
// their final state for wastage accounting.
type PrepStatus int

const (
	// PrepUnknown represents an invalid or undefined prep status.
	PrepUnknown PrepStatus = iota

	// PrepPending is the initial state of an item before distribution.
	PrepPending

	// PrepConfirmed indicates the item has been routed to its station.
	PrepConfirmed

	// PrepPreparing indicates a staff member has started preparing the item.
	PrepPreparing

	// PrepReady indicates the item is finished and awaiting service.
	PrepReady

	// PrepCancelled indicates the item was cancelled before it was ready.
	PrepCancelled
)

// ErrInvalidItemTransition is the unwrap target for InvalidItemTransitionError.
var ErrInvalidItemTransition = errors.New("invalid item prep status transition")

// InvalidItemTransitionError reports an attempted item prep-state change that
// is not allowed from the item's current state.
type InvalidItemTransitionError struct {
	From PrepStatus
	To   PrepStatus
}

func (e *InvalidItemTransitionError) Error() string {
	return fmt.Sprintf("cannot transition item from %s to %s", e.From, e.To)
}

func (e *InvalidItemTransitionError) Unwrap() error { return ErrInvalidItemTransition }

// Code returns the stable error code for API consumers.
func (e *InvalidItemTransitionError) Code() string { return "INVALID_ITEM_TRANSITION" }

func getPrepStatusStrings() map[PrepStatus]string {
	return map[PrepStatus]string{
		PrepUnknown:   "Unknown",
		PrepPending:   "pending",
		PrepConfirmed: "confirmed",
		PrepPreparing: "preparing",
		PrepReady:     "ready",
		PrepCancelled: "cancelled",
	}
}

func getValidPrepStatusStrings() map[PrepStatus]string {
	//nolint:exhaustive // PrepUnknown is intentionally excluded as it's invalid
	return map[PrepStatus]string{
		PrepPending:   "pending",
		PrepConfirmed: "confirmed",
		PrepPreparing: "preparing",
		PrepReady:     "ready",
		PrepCancelled: "cancelled",
	}
}

// PrepStatusFromString parses a prep status name such as "confirmed".
func PrepStatusFromString(s string) (PrepStatus, error) {
	for status, name := range getValidPrepStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return PrepUnknown, errs.NewValueIsInvalidErrorWithCause(
		"prep status", fmt.Errorf("%q is not a valid prep status", s))
}

// Validate checks if the PrepStatus value is valid.
func (s PrepStatus) Validate() error {
	if _, ok := getValidPrepStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"prep status", fmt.Errorf("%d is not a valid prep status", s))
	}
	return nil
}

// String returns the lowercase prep status name used in persistence and APIs.
func (s PrepStatus) String() string {
	if str, ok := getPrepStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Confirm transitions the prep status to PrepConfirmed.
// Only PrepPending items can be confirmed.
func (s PrepStatus) Confirm() (PrepStatus, error) {
	if s != PrepPending {
		return 0, &InvalidItemTransitionError{From: s, To: PrepConfirmed}
	}
	return PrepConfirmed, nil
}

// StartPrep transitions the prep status to PrepPreparing.
// Only PrepConfirmed items can begin preparation.
func (s PrepStatus) StartPrep() (PrepStatus, error) {
	if s != PrepConfirmed {
		return 0, &InvalidItemTransitionError{From: s, To: PrepPreparing}
	}
	return PrepPreparing, nil
}

// FinishPrep transitions the prep status to PrepReady.
// Only PrepPreparing items can be finished.
func (s PrepStatus) FinishPrep() (PrepStatus, error) {
	if s != PrepPreparing {
		return 0, &InvalidItemTransitionError{From: s, To: PrepReady}
	}
	return PrepReady, nil
}

// CancelPrep transitions the prep status to PrepCancelled.
// Ready items stay ready; cancelling one is an invalid transition.
func (s PrepStatus) CancelPrep() (PrepStatus, error) {
	if s == PrepReady || s == PrepCancelled {
		return 0, &InvalidItemTransitionError{From: s, To: PrepCancelled}
	}
	return PrepCancelled, nil
}
