// Package paymentrepo provides data transfer objects and mapping functions
// for payment and tip persistence. The payments table carries a unique index
// on the external transaction id; a violation surfaces to callers as
// payment.DuplicatePaymentError so gateway retries stay idempotent.
package paymentrepo

import (
	"encoding/json"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database row for one settlement attempt.
type PaymentDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID       `gorm:"type:uuid;index"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Method        string
	Status        string `gorm:"index"`
	TransactionID string `gorm:"uniqueIndex"`
	Details       []byte `gorm:"type:jsonb"`
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

// TableName specifies the database table name for payment rows.
func (PaymentDTO) TableName() string {
	return "payments"
}

// TipDTO represents the database row for one gratuity.
type TipDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	PaymentID *uuid.UUID      `gorm:"type:uuid"`
	WaiterID  uuid.UUID       `gorm:"type:uuid"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Method    string
	CreatedAt time.Time
}

// TableName specifies the database table name for tip rows.
func (TipDTO) TableName() string {
	return "tips"
}

// fromDomain converts a payment aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) (PaymentDTO, error) {
	var details []byte
	if len(aggregate.Details()) > 0 {
		raw, err := json.Marshal(aggregate.Details())
		if err != nil {
			return PaymentDTO{}, err
		}
		details = raw
	}

	return PaymentDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		Amount:        aggregate.Amount().Decimal(),
		Method:        aggregate.Method().String(),
		Status:        aggregate.Status().String(),
		TransactionID: aggregate.TransactionID(),
		Details:       details,
		CreatedAt:     aggregate.CreatedAt(),
		CompletedAt:   aggregate.CompletedAt(),
	}, nil
}

// toDomain converts a database row to a payment aggregate.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoneyFromDecimal(dto.Amount)
	if err != nil {
		return nil, err
	}
	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}
	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var details map[string]any
	if len(dto.Details) > 0 {
		if err = json.Unmarshal(dto.Details, &details); err != nil {
			return nil, err
		}
	}

	return payment.RestorePayment(
		id,
		orderID,
		amount,
		method,
		status,
		dto.TransactionID,
		details,
		dto.CreatedAt,
		dto.CompletedAt,
	)
}

// tipFromDomain converts a tip to its database representation.
func tipFromDomain(tip *payment.Tip) TipDTO {
	var paymentID *uuid.UUID
	if id := tip.PaymentID(); id != nil {
		raw := id.Bytes()
		paymentID = &raw
	}

	return TipDTO{
		ID:        tip.ID().Bytes(),
		OrderID:   tip.OrderID().Bytes(),
		PaymentID: paymentID,
		WaiterID:  tip.WaiterID().Bytes(),
		Amount:    tip.Amount().Decimal(),
		Method:    tip.Method().String(),
		CreatedAt: tip.CreatedAt(),
	}
}

// tipToDomain converts a database row to a tip.
func tipToDomain(dto TipDTO) (*payment.Tip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	waiterID, err := kernel.UUIDFromBytes(dto.WaiterID[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoneyFromDecimal(dto.Amount)
	if err != nil {
		return nil, err
	}
	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	var paymentID *kernel.UUID
	if dto.PaymentID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.PaymentID)[:])
		if pErr != nil {
			return nil, pErr
		}
		paymentID = &pID
	}

	return payment.RestoreTip(
		id,
		orderID,
		paymentID,
		waiterID,
		amount,
		method,
		dto.CreatedAt,
	)
}
