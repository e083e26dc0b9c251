package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// GetOrdersByStatusQueryHandler reads orders in one lifecycle stage.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for stage reads.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query. Orders come back oldest first; the item count
// excludes cancelled items.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.table_id,
			o.total,
			COUNT(i.id) FILTER (WHERE i.prep_status != ?) AS item_count,
			o.created_at
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status = ?
		GROUP BY o.id, o.order_number, o.table_id, o.total, o.created_at
		ORDER BY o.created_at
	`, order.PrepCancelled.String(), query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersByStatusQueryResponse
		var orderID, tableID uuid.UUID
		var total decimal.Decimal
		var createdAt time.Time

		err = rows.Scan(
			&orderID,
			&resp.OrderNumber,
			&tableID,
			&total,
			&resp.ItemCount,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.TableID, err = kernel.UUIDFromBytes(tableID[:]); err != nil {
			return nil, err
		}
		if resp.Total, err = kernel.NewMoneyFromDecimal(total); err != nil {
			return nil, err
		}
		resp.CreatedAt = createdAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
