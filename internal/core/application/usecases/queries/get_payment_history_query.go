package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetPaymentHistoryQueryIsNotConstructed = errors.New(
	"GetPaymentHistoryQuery must be created via NewGetPaymentHistoryQuery constructor",
)

// GetPaymentHistoryQuery retrieves every payment recorded against an order,
// oldest first, regardless of outcome. Refunded and failed attempts stay in
// the history.
type GetPaymentHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentHistoryQuery creates a query for one order's payments.
func NewGetPaymentHistoryQuery(orderID kernel.UUID) (GetPaymentHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPaymentHistoryQuery{}, err
	}

	return GetPaymentHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose payments are requested.
func (q GetPaymentHistoryQuery) OrderID() kernel.UUID { return q.orderID }

// GetPaymentHistoryQueryResponse is one payment attempt against the order.
type GetPaymentHistoryQueryResponse struct {
	PaymentID     kernel.UUID
	Amount        kernel.Money
	Method        string
	Status        string
	TransactionID string
	CreatedAt     time.Time
	CompletedAt   *time.Time
}
