// Package queries contains read-only operations against the database.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the domain model and read projections with raw SQL.
package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/guard"
)

var ErrGetPendingItemsQueryIsNotConstructed = errors.New(
	"GetPendingItemsQuery must be created via NewGetPendingItemsQuery constructor",
)

// GetPendingItemsQuery retrieves the work queue for one preparation area:
// items that are confirmed or already being prepared, oldest first. The
// ordering is the station's fairness guarantee; there is no priority lane.
//
// Example:
//
//	query, _ := NewGetPendingItemsQuery(menu.PrepAreaKitchen)
//	handler := NewGetPendingItemsQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get kitchen queue: %w", err)
//	}
//	fmt.Printf("%d items waiting\n", len(items))
type GetPendingItemsQuery struct {
	prepArea menu.PrepArea

	guard guard.ConstructorGuard
}

// NewGetPendingItemsQuery creates a query for one preparation area's queue.
func NewGetPendingItemsQuery(prepArea menu.PrepArea) (GetPendingItemsQuery, error) {
	if err := prepArea.Validate(); err != nil {
		return GetPendingItemsQuery{}, err
	}

	return GetPendingItemsQuery{
		prepArea: prepArea,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingItemsQueryIsNotConstructed)
}

// PrepArea returns the preparation area whose queue is requested.
func (q GetPendingItemsQuery) PrepArea() menu.PrepArea { return q.prepArea }

// GetPendingItemsQueryResponse is one queued item on a station display.
type GetPendingItemsQueryResponse struct {
	ItemID              kernel.UUID
	OrderID             kernel.UUID
	OrderNumber         string
	Name                string
	Quantity            int
	PrepStatus          string
	SpecialInstructions string
	CreatedAt           time.Time
}
