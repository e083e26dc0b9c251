package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/kernel"
)

// GetPaymentHistoryQueryHandler reads an order's payment attempts.
type GetPaymentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentHistoryQueryHandler creates a handler for payment history reads.
func NewGetPaymentHistoryQueryHandler(db *gorm.DB) GetPaymentHistoryQueryHandler {
	return GetPaymentHistoryQueryHandler{db: db}
}

// Handle executes the query. Payments come back oldest first.
func (h GetPaymentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentHistoryQuery,
) ([]GetPaymentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payments := make([]GetPaymentHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.amount,
			p.method,
			p.status,
			p.transaction_id,
			p.created_at,
			p.completed_at
		FROM payments p
		WHERE p.order_id = ?
		ORDER BY p.created_at
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPaymentHistoryQueryResponse
		var paymentID uuid.UUID
		var amount decimal.Decimal
		var createdAt time.Time
		var completedAt sql.NullTime

		err = rows.Scan(
			&paymentID,
			&amount,
			&resp.Method,
			&resp.Status,
			&resp.TransactionID,
			&createdAt,
			&completedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.PaymentID, err = kernel.UUIDFromBytes(paymentID[:]); err != nil {
			return nil, err
		}
		if resp.Amount, err = kernel.NewMoneyFromDecimal(amount); err != nil {
			return nil, err
		}
		resp.CreatedAt = createdAt
		if completedAt.Valid {
			completed := completedAt.Time
			resp.CompletedAt = &completed
		}
		payments = append(payments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
