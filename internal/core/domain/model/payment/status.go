package payment

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment.
// Payments are never deleted; they only move through this state machine.
//
// State transitions:
//
//	Pending ──> Processing ──> Completed ──> Refunded
//	   │             │             │
//	   └─────────────┴──> Failed   └──(only from Completed)
//
// Completing an already-completed payment is a no-op so gateway callbacks can
// be delivered at-least-once.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every payment.
	StatusPending

	// StatusProcessing marks a gateway payment awaiting confirmation.
	StatusProcessing

	// StatusCompleted marks a settled payment counted toward the order total.
	StatusCompleted

	// StatusFailed marks a payment that did not settle.
	StatusFailed

	// StatusRefunded marks a completed payment that was returned.
	StatusRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "pending",
		StatusProcessing: "processing",
		StatusCompleted:  "completed",
		StatusFailed:     "failed",
		StatusRefunded:   "refunded",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "pending",
		StatusProcessing: "processing",
		StatusCompleted:  "completed",
		StatusFailed:     "failed",
		StatusRefunded:   "refunded",
	}
}

// StatusFromString parses a payment status name such as "completed".
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the lowercase status name used in persistence and APIs.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
