package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
// The storage layer enforces transaction identifier uniqueness and reports a
// violation as payment.DuplicatePaymentError.
type PaymentRepository interface {
	// Add persists a new payment aggregate to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment aggregate.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetAllForOrder retrieves all payments recorded against an order,
	// oldest first.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error)

	// GetAllInStatus retrieves all payments currently in the given status,
	// oldest first. Used by reconciliation to find stuck processing payments.
	GetAllInStatus(ctx context.Context, status payment.Status) ([]*payment.Payment, error)

	// CompletedTotalForOrder returns the sum of completed payment amounts
	// for an order.
	CompletedTotalForOrder(ctx context.Context, orderID kernel.UUID) (kernel.Money, error)
}

// TipRepository defines the persistence contract for tips.
type TipRepository interface {
	// Add persists a new tip to storage.
	Add(ctx context.Context, tip *payment.Tip) error

	// GetAllForOrder retrieves all tips recorded against an order,
	// oldest first.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Tip, error)
}
