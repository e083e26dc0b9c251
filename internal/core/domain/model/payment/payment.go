package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not
	// created through the NewPayment factory method.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

	// ErrPaymentProcessing is the unwrap target for PaymentProcessingError.
	ErrPaymentProcessing = errors.New("payment processing failed")

	// ErrSplitMismatch is the unwrap target for SplitMismatchError.
	ErrSplitMismatch = errors.New("split payment amounts do not equal the order total")

	// ErrDuplicatePayment is the unwrap target for DuplicatePaymentError.
	ErrDuplicatePayment = errors.New("duplicate payment transaction")
)

// PaymentProcessingError reports a workflow violation inside the payment
// ledger, such as refunding a payment that never completed.
type PaymentProcessingError struct {
	PaymentID kernel.UUID
	Reason    string
}

func (e *PaymentProcessingError) Error() string {
	return fmt.Sprintf("payment %s: %s", e.PaymentID, e.Reason)
}

func (e *PaymentProcessingError) Unwrap() error { return ErrPaymentProcessing }

// Code returns the stable error code for API consumers.
func (e *PaymentProcessingError) Code() string { return "PAYMENT_PROCESSING_FAILED" }

// SplitMismatchError reports a split-payment request whose amounts do not sum
// exactly to the order total. None of the requested payments are applied.
type SplitMismatchError struct {
	Requested kernel.Money
	Total     kernel.Money
}

func (e *SplitMismatchError) Error() string {
	return fmt.Sprintf("split payment amounts sum to %s but the order total is %s",
		e.Requested, e.Total)
}

func (e *SplitMismatchError) Unwrap() error { return ErrSplitMismatch }

// Code returns the stable error code for API consumers.
func (e *SplitMismatchError) Code() string { return "SPLIT_MISMATCH" }

// DuplicatePaymentError reports a second payment carrying an external
// transaction id that already produced a completed payment.
type DuplicatePaymentError struct {
	TransactionID string
}

func (e *DuplicatePaymentError) Error() string {
	return fmt.Sprintf("transaction %s was already recorded", e.TransactionID)
}

func (e *DuplicatePaymentError) Unwrap() error { return ErrDuplicatePayment }

// Code returns the stable error code for API consumers.
func (e *DuplicatePaymentError) Code() string { return "DUPLICATE_PAYMENT" }

// Payment is the aggregate for one settlement attempt against an order.
// Payments are append-only: they are created once and only their status and
// gateway details change afterwards.
//
// The gateway details map is an opaque audit payload. The core stores and
// returns it but never interprets its contents.
type Payment struct {
	id            kernel.UUID
	orderID       kernel.UUID
	amount        kernel.Money
	method        Method
	status        Status
	transactionID string
	details       map[string]any
	createdAt     time.Time
	completedAt   *time.Time

	isConstructed bool
}

// NewPayment creates a pending payment against an order.
//
// The transaction id identifies the settlement with the external gateway. For
// cash and card payments the ledger generates one; for gateway payments the
// caller passes the gateway's reference so duplicate callbacks can be detected
// by the unique index on the column.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	method Method,
	transactionID string,
	details map[string]any,
	now time.Time,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		amount.Validate(),
		method.Validate(),
	); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is not greater than 0", amount))
	}
	if transactionID == "" {
		return nil, errs.NewValueIsRequiredError("transaction id")
	}
	if details == nil {
		details = make(map[string]any)
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		amount:        amount,
		method:        method,
		status:        StatusPending,
		transactionID: transactionID,
		details:       details,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	method Method,
	status Status,
	transactionID string,
	details map[string]any,
	createdAt time.Time,
	completedAt *time.Time,
) (*Payment, error) {
	p, err := NewPayment(id, orderID, amount, method, transactionID, details, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	p.status = status
	p.completedAt = completedAt
	return p, nil
}

// GenerateTransactionID produces a ledger-local transaction reference,
// e.g. TXN-4F2A9C31B07D.
func GenerateTransactionID(id kernel.UUID) string {
	return "TXN-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:12])
}

// Validate ensures the Payment instance was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// OrderID returns the order the payment settles against.
func (p *Payment) OrderID() kernel.UUID { return p.orderID }

// Amount returns the payment amount.
func (p *Payment) Amount() kernel.Money { return p.amount }

// Method returns the settlement method.
func (p *Payment) Method() Method { return p.method }

// Status returns the payment's lifecycle status.
func (p *Payment) Status() Status { return p.status }

// TransactionID returns the external or generated settlement reference.
func (p *Payment) TransactionID() string { return p.transactionID }

// Details returns the opaque gateway payload stored for audit.
func (p *Payment) Details() map[string]any { return p.details }

// CreatedAt returns the payment's creation time.
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

// CompletedAt returns when the payment settled, nil before that.
func (p *Payment) CompletedAt() *time.Time { return p.completedAt }

// IsCompleted reports whether the payment counts toward the order total.
func (p *Payment) IsCompleted() bool { return p.status == StatusCompleted }

// MergeDetails adds entries to the gateway payload without removing existing ones.
func (p *Payment) MergeDetails(extra map[string]any) {
	for k, v := range extra {
		p.details[k] = v
	}
}

// MarkProcessing moves a pending payment to processing while a gateway call
// is in flight.
func (p *Payment) MarkProcessing() error {
	if p.status != StatusPending {
		return &PaymentProcessingError{
			PaymentID: p.id,
			Reason:    fmt.Sprintf("cannot mark a %s payment as processing", p.status),
		}
	}
	p.status = StatusProcessing
	return nil
}

// Complete settles the payment. Completing an already-completed payment is a
// no-op, which makes gateway confirmations safe under at-least-once delivery.
//
// Returns:
//   - (true, nil) when the call transitioned the payment to completed
//   - (false, nil) when the payment was already completed
//   - (false, error) when the payment is failed or refunded
func (p *Payment) Complete(now time.Time) (bool, error) {
	switch p.status {
	case StatusCompleted:
		return false, nil
	case StatusPending, StatusProcessing:
		p.status = StatusCompleted
		p.completedAt = &now
		return true, nil
	default:
		return false, &PaymentProcessingError{
			PaymentID: p.id,
			Reason:    fmt.Sprintf("cannot complete a %s payment", p.status),
		}
	}
}

// Fail marks the payment failed and records the reason in the gateway payload.
// Failing a settled payment is refused; refund it instead.
func (p *Payment) Fail(reason string) error {
	if p.status == StatusCompleted || p.status == StatusRefunded {
		return &PaymentProcessingError{
			PaymentID: p.id,
			Reason:    fmt.Sprintf("cannot fail a %s payment", p.status),
		}
	}
	p.status = StatusFailed
	p.details["failure_reason"] = reason
	return nil
}

// Refund returns a completed payment and records the reason in the gateway
// payload. Only completed payments can be refunded.
func (p *Payment) Refund(reason string, now time.Time) error {
	if p.status != StatusCompleted {
		return &PaymentProcessingError{
			PaymentID: p.id,
			Reason:    "can only refund completed payments",
		}
	}
	p.status = StatusRefunded
	p.details["refund_reason"] = reason
	p.details["refunded_at"] = now.UTC().Format(time.RFC3339)
	return nil
}
