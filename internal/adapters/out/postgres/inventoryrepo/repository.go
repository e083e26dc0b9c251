package inventoryrepo

import (
	"context"

	"restaurant/internal/core/domain/model/inventory"
	"restaurant/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// Add appends a new stock movement to the ledger.
func (r *GormInventoryRepository) Add(ctx context.Context, transaction *inventory.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	dto := fromDomain(transaction)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllForMenuItem retrieves all stock movements for a menu item, oldest first.
func (r *GormInventoryRepository) GetAllForMenuItem(ctx context.Context, menuItemID kernel.UUID) ([]*inventory.Transaction, error) {
	if err := menuItemID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransactionDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "menu_item_id = ?", menuItemID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]*inventory.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		t, txErr := toDomain(dto)
		if txErr != nil {
			return nil, txErr
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}
