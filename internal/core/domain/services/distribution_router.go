package services

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
)

// ErrNoItemsForArea is returned when a distribution targets a preparation
// area that has no pending items on the order.
var ErrNoItemsForArea = errors.New("no items for preparation area")

// DistributionRouter is a domain service responsible for routing order items
// to the preparation areas that make them and for aggregating per-item
// readiness back into the order lifecycle.
//
// Key responsibilities:
//   - Partitioning an order's items by preparation area
//   - Confirming the slice of an order that one area is responsible for
//   - Deciding when item readiness must promote the whole order
//
// Business rules:
//   - Cancelled items never reach a preparation area
//   - Staff may only prepare items for areas their role covers
//   - An order becomes ready exactly once, when its last active item does
//
// Example usage:
//
//	router := NewDistributionRouter()
//	tickets := router.Partition(o)
//	for area, items := range tickets {
//	    // hand the ticket slice to the area's display
//	    _ = area
//	    _ = items
//	}
type DistributionRouter struct{}

// NewDistributionRouter creates a new DistributionRouter instance.
func NewDistributionRouter() DistributionRouter {
	return DistributionRouter{}
}

// Partition groups the order's active items by the preparation area that
// makes them. Cancelled items are skipped. Areas with no items are absent
// from the result.
//
// Parameters:
//   - o: The order whose items are routed (must be valid)
//
// Returns:
//   - map[menu.PrepArea][]*order.Item: Items grouped by area, in order of appearance
//   - error: Validation errors from the order
func (d DistributionRouter) Partition(o *order.Order) (map[menu.PrepArea][]*order.Item, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	tickets := make(map[menu.PrepArea][]*order.Item)
	for _, item := range o.Items() {
		if item.IsCancelled() {
			continue
		}
		tickets[item.PrepArea()] = append(tickets[item.PrepArea()], item)
	}

	return tickets, nil
}

// Distribute routes the order's pending items to their preparation areas and
// confirms them, meaning each area's display now shows its slice of the
// order. Items already past pending are left untouched, which keeps a
// re-distribution after adding items idempotent for the earlier ones.
//
// Parameters:
//   - o: The order being distributed (must be valid, with at least one active item)
//
// Returns:
//   - map[menu.PrepArea]int: Number of items confirmed per area
//   - error: ErrNoItemsForArea if no active items exist, or validation errors
func (d DistributionRouter) Distribute(o *order.Order) (map[menu.PrepArea]int, error) {
	tickets, err := d.Partition(o)
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return nil, ErrNoItemsForArea
	}

	counts := make(map[menu.PrepArea]int, len(tickets))
	for area := range tickets {
		counts[area] = o.ConfirmItemsForArea(area)
	}
	return counts, nil
}

// Receive checks that a staff member may take an item into preparation and
// starts it. The staff member's role must cover the item's preparation area.
//
// Parameters:
//   - o: The order the item belongs to (must be valid)
//   - itemID: The item being taken into preparation
//   - preparer: The staff member starting the work
//   - now: Start timestamp recorded on the item
//
// Returns:
//   - *order.Item: The item, now preparing
//   - error: Authorization, lookup or transition errors
func (d DistributionRouter) Receive(
	o *order.Order,
	itemID kernel.UUID,
	preparer *staff.Staff,
	now time.Time,
) (*order.Item, error) {
	if err := errors.Join(o.Validate(), preparer.Validate()); err != nil {
		return nil, err
	}

	item, err := o.Item(itemID)
	if err != nil {
		return nil, err
	}

	if err := preparer.AuthorizePrep(item.PrepArea()); err != nil {
		return nil, err
	}

	return o.StartItemPrep(itemID, preparer.ID(), now)
}

// FinishItem marks a single item as ready and reports whether the order as a
// whole is now ready to leave the kitchen. Area authorization happened when
// the item was taken into preparation, so none is repeated here. The caller
// promotes the order when the second return value is true; the promotion
// itself goes through the order's own transition so the status log stays
// consistent.
//
// Parameters:
//   - o: The order the item belongs to (must be valid)
//   - itemID: The item being finished
//   - now: Completion timestamp recorded on the item
//
// Returns:
//   - bool: True when every active item on the order is now ready
//   - error: Lookup or transition errors
func (d DistributionRouter) FinishItem(
	o *order.Order,
	itemID kernel.UUID,
	now time.Time,
) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	if _, err := o.FinishItemPrep(itemID, now); err != nil {
		return false, err
	}

	return o.AllItemsReady(), nil
}
