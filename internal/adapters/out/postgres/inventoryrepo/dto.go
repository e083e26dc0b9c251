// Package inventoryrepo provides data transfer objects and mapping functions
// for the stock movement ledger. Ledger rows are append-only.
package inventoryrepo

import (
	"time"

	"restaurant/internal/core/domain/model/inventory"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TransactionDTO represents the database row for one stock movement.
type TransactionDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid;index"`
	Quantity   int
	Type       string
	OrderID    *uuid.UUID `gorm:"type:uuid"`
	CreatedBy  uuid.UUID  `gorm:"type:uuid"`
	Notes      string
	CreatedAt  time.Time
}

// TableName specifies the database table name for stock movement rows.
func (TransactionDTO) TableName() string {
	return "inventory_transactions"
}

// fromDomain converts a stock movement to its database representation.
func fromDomain(transaction *inventory.Transaction) TransactionDTO {
	var orderID *uuid.UUID
	if id := transaction.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return TransactionDTO{
		ID:         transaction.ID().Bytes(),
		MenuItemID: transaction.MenuItemID().Bytes(),
		Quantity:   transaction.Quantity(),
		Type:       transaction.Type().String(),
		OrderID:    orderID,
		CreatedBy:  transaction.CreatedBy().Bytes(),
		Notes:      transaction.Notes(),
		CreatedAt:  transaction.CreatedAt(),
	}
}

// toDomain converts a database row to a stock movement.
func toDomain(dto TransactionDTO) (*inventory.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}
	txType, err := inventory.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, oErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if oErr != nil {
			return nil, oErr
		}
		orderID = &oID
	}

	return inventory.RestoreTransaction(
		id,
		menuItemID,
		dto.Quantity,
		txType,
		orderID,
		createdBy,
		dto.Notes,
		dto.CreatedAt,
	)
}
