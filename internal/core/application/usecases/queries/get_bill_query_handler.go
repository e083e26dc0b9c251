package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/pkg/errs"
)

// GetBillQueryHandler assembles an order's bill from the orders, items and
// payments tables. The totals come from the order row as stored; the paid
// amount sums completed payments only, so a processing card payment does not
// yet reduce the balance.
type GetBillQueryHandler struct {
	db *gorm.DB
}

// NewGetBillQueryHandler creates a handler for bill reads.
func NewGetBillQueryHandler(db *gorm.DB) GetBillQueryHandler {
	return GetBillQueryHandler{db: db}
}

// Handle executes the query.
func (h GetBillQueryHandler) Handle(ctx context.Context, query GetBillQuery) (GetBillQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBillQueryResponse{}, err
	}

	var resp GetBillQueryResponse
	var err error

	var head struct {
		ID            uuid.UUID
		OrderNumber   string
		Status        string
		Subtotal      decimal.Decimal
		Tax           decimal.Decimal
		ServiceCharge decimal.Decimal
		Total         decimal.Decimal
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT id, order_number, status, subtotal, tax, service_charge, total
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Scan(&head)
	if result.Error != nil {
		return GetBillQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetBillQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	resp.OrderID = query.OrderID()
	resp.OrderNumber = head.OrderNumber
	resp.Status = head.Status
	if resp.Subtotal, err = kernel.NewMoneyFromDecimal(head.Subtotal); err != nil {
		return GetBillQueryResponse{}, err
	}
	if resp.Tax, err = kernel.NewMoneyFromDecimal(head.Tax); err != nil {
		return GetBillQueryResponse{}, err
	}
	if resp.ServiceCharge, err = kernel.NewMoneyFromDecimal(head.ServiceCharge); err != nil {
		return GetBillQueryResponse{}, err
	}
	if resp.Total, err = kernel.NewMoneyFromDecimal(head.Total); err != nil {
		return GetBillQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, quantity, unit_price
		FROM order_items
		WHERE order_id = ?
		  AND prep_status != ?
		ORDER BY created_at
	`, query.OrderID().String(), order.PrepCancelled.String()).Rows()
	if err != nil {
		return GetBillQueryResponse{}, err
	}
	defer rows.Close()

	resp.Lines = make([]BillLine, 0)
	for rows.Next() {
		var line BillLine
		var unitPrice decimal.Decimal
		if err = rows.Scan(&line.Name, &line.Quantity, &unitPrice); err != nil {
			return GetBillQueryResponse{}, err
		}
		if line.UnitPrice, err = kernel.NewMoneyFromDecimal(unitPrice); err != nil {
			return GetBillQueryResponse{}, err
		}
		line.Subtotal = line.UnitPrice.MulInt(line.Quantity)
		resp.Lines = append(resp.Lines, line)
	}
	if err = rows.Err(); err != nil {
		return GetBillQueryResponse{}, err
	}

	var paid decimal.Decimal
	result = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE order_id = ?
		  AND status = ?
	`, query.OrderID().String(), payment.StatusCompleted.String()).Scan(&paid)
	if result.Error != nil {
		return GetBillQueryResponse{}, result.Error
	}

	if resp.AmountPaid, err = kernel.NewMoneyFromDecimal(paid); err != nil {
		return GetBillQueryResponse{}, err
	}
	resp.BalanceDue = resp.Total.SubFloorZero(resp.AmountPaid)

	return resp, nil
}
