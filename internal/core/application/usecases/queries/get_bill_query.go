package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetBillQueryIsNotConstructed = errors.New(
	"GetBillQuery must be created via NewGetBillQuery constructor",
)

// GetBillQuery retrieves the bill for an order: its active items, the stored
// totals, how much has been paid and what remains due.
//
// Example:
//
//	query, _ := NewGetBillQuery(orderID)
//	handler := NewGetBillQueryHandler(db)
//
//	bill, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build bill: %w", err)
//	}
//	fmt.Printf("balance due: %s\n", bill.BalanceDue)
type GetBillQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBillQuery creates a query for an order's bill.
func NewGetBillQuery(orderID kernel.UUID) (GetBillQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetBillQuery{}, err
	}

	return GetBillQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBillQuery) Validate() error {
	return q.guard.Validate(ErrGetBillQueryIsNotConstructed)
}

// OrderID returns the order whose bill is requested.
func (q GetBillQuery) OrderID() kernel.UUID { return q.orderID }

// BillLine is one charged item on the bill. Cancelled items are excluded.
type BillLine struct {
	Name      string
	Quantity  int
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}

// GetBillQueryResponse is the complete bill for an order.
type GetBillQueryResponse struct {
	OrderID       kernel.UUID
	OrderNumber   string
	Status        string
	Lines         []BillLine
	Subtotal      kernel.Money
	Tax           kernel.Money
	ServiceCharge kernel.Money
	Total         kernel.Money
	AmountPaid    kernel.Money
	BalanceDue    kernel.Money
}
