package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// GetPendingItemsQueryHandler reads one preparation area's work queue from
// the database. Cancelled orders never reach the queue because cancellation
// cascades to their items.
type GetPendingItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingItemsQueryHandler creates a handler for station queue reads.
func NewGetPendingItemsQueryHandler(db *gorm.DB) GetPendingItemsQueryHandler {
	return GetPendingItemsQueryHandler{db: db}
}

// Handle executes the query. Items come back oldest first.
func (h GetPendingItemsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingItemsQuery,
) ([]GetPendingItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetPendingItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.order_id,
			o.order_number,
			i.name,
			i.quantity,
			i.prep_status,
			i.special_instructions,
			i.created_at
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE i.prep_area = ?
		  AND i.prep_status IN (?, ?)
		ORDER BY i.created_at
	`, query.PrepArea().String(), order.PrepConfirmed.String(), order.PrepPreparing.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingItemsQueryResponse
		var itemID, orderID uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&itemID,
			&orderID,
			&resp.OrderNumber,
			&resp.Name,
			&resp.Quantity,
			&resp.PrepStatus,
			&resp.SpecialInstructions,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		resp.CreatedAt = createdAt
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
