package order

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the restaurant workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> Served ──> Completed
//	   │            │             │
//	   └────────────┴─────────────┴──> Cancelled
//
// Completed and Cancelled are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly created order.
	// Items may still be added or removed.
	StatusPending

	// StatusConfirmed indicates the order has been accepted and its items
	// have been distributed to their preparation stations.
	StatusConfirmed

	// StatusPreparing indicates at least one station has started preparation.
	StatusPreparing

	// StatusReady indicates every non-cancelled item is ready for service.
	StatusReady

	// StatusServed indicates the order has been delivered to the table.
	StatusServed

	// StatusCompleted indicates the order is fully paid and closed.
	// This is a terminal state.
	StatusCompleted

	// StatusCancelled indicates the order was cancelled before completion.
	// This is a terminal state.
	StatusCancelled
)

var (
	// ErrInvalidTransition is the unwrap target for InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrAlreadyTerminal is the unwrap target for AlreadyTerminalError.
	ErrAlreadyTerminal = errors.New("order is already in a terminal status")
)

// InvalidTransitionError reports an attempted status change that is not an
// edge of the transition graph. The order's status is left unchanged.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// Code returns the stable error code for API consumers.
func (e *InvalidTransitionError) Code() string { return "INVALID_TRANSITION" }

// AlreadyTerminalError reports a cancel attempt on an order that is already
// completed or cancelled.
type AlreadyTerminalError struct {
	Status Status
}

func (e *AlreadyTerminalError) Error() string {
	return fmt.Sprintf("order is already %s", e.Status)
}

func (e *AlreadyTerminalError) Unwrap() error { return ErrAlreadyTerminal }

// Code returns the stable error code for API consumers.
func (e *AlreadyTerminalError) Code() string { return "ALREADY_TERMINAL" }

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "pending",
		StatusConfirmed: "confirmed",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusServed:    "served",
		StatusCompleted: "completed",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusConfirmed: "confirmed",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusServed:    "served",
		StatusCompleted: "completed",
		StatusCancelled: "cancelled",
	}
}

// getTransitions returns the directed acyclic transition graph.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusPreparing, StatusCancelled},
		StatusPreparing: {StatusReady, StatusCancelled},
		StatusReady:     {StatusServed},
		StatusServed:    {StatusCompleted},
		StatusCompleted: {},
		StatusCancelled: {},
	}
}

// StatusFromString parses a status name such as "preparing".
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the lowercase status name used in persistence and APIs.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ValidTransitions returns the statuses reachable in one step from s.
func (s Status) ValidTransitions() []Status {
	return getTransitions()[s]
}

// CanTransitionTo reports whether target is a neighbor of s in the graph.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo transitions the status to target.
//
// Returns:
//   - (target, nil) when target is a neighbor of s in the transition graph
//   - (0, *InvalidTransitionError) otherwise
//
// Side conditions on Ready (all items ready) and Completed (payment
// sufficiency) are enforced by Order.TransitionTo, which owns the data those
// checks need.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, &InvalidTransitionError{From: s, To: target}
	}
	return target, nil
}
