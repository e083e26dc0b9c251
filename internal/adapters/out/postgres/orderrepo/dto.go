// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database row for an order aggregate. Statuses are
// stored by name so the read-side SQL stays legible, and the version column
// backs optimistic concurrency on updates.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber   string    `gorm:"uniqueIndex"`
	TableID       uuid.UUID `gorm:"type:uuid;index"`
	GuestID       uuid.UUID `gorm:"type:uuid"`
	WaiterID      uuid.UUID `gorm:"type:uuid"`
	Source        string
	Status        string          `gorm:"index"`
	TaxRate       decimal.Decimal `gorm:"type:numeric(5,2)"`
	ServiceRate   decimal.Decimal `gorm:"type:numeric(5,2)"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Tax           decimal.Decimal `gorm:"type:numeric(12,2)"`
	ServiceCharge decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int

	Items []ItemDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database row for one order line.
type ItemDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID          uuid.UUID `gorm:"type:uuid"`
	Name                string
	Quantity            int
	UnitPrice           decimal.Decimal `gorm:"type:numeric(12,2)"`
	PrepArea            string          `gorm:"index"`
	PrepStatus          string          `gorm:"index"`
	PreparedBy          *uuid.UUID      `gorm:"type:uuid"`
	PreparedAt          *time.Time
	SpecialInstructions string
	CreatedAt           time.Time
}

// TableName specifies the database table name for order line rows.
func (ItemDTO) TableName() string {
	return "order_items"
}

// StatusLogDTO represents one entry of an order's status history.
type StatusLogDTO struct {
	ID      int64     `gorm:"primaryKey;autoIncrement"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`
	From    string    `gorm:"column:from_status"`
	To      string    `gorm:"column:to_status"`
	Actor   uuid.UUID `gorm:"type:uuid"`
	At      time.Time
}

// TableName specifies the database table name for status history rows.
func (StatusLogDTO) TableName() string {
	return "order_status_logs"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID(), item))
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OrderNumber:   aggregate.OrderNumber(),
		TableID:       aggregate.TableID().Bytes(),
		GuestID:       aggregate.GuestID().Bytes(),
		WaiterID:      aggregate.WaiterID().Bytes(),
		Source:        aggregate.Source().String(),
		Status:        aggregate.Status().String(),
		TaxRate:       aggregate.TaxRate(),
		ServiceRate:   aggregate.ServiceRate(),
		Subtotal:      aggregate.Subtotal().Decimal(),
		Tax:           aggregate.Tax().Decimal(),
		ServiceCharge: aggregate.ServiceCharge().Decimal(),
		Total:         aggregate.Total().Decimal(),
		Notes:         aggregate.Notes(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		Version:       aggregate.Version(),
		Items:         items,
	}
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) ItemDTO {
	var preparedBy *uuid.UUID
	if id := item.PreparedBy(); id != nil {
		raw := id.Bytes()
		preparedBy = &raw
	}

	return ItemDTO{
		ID:                  item.ID().Bytes(),
		OrderID:             orderID.Bytes(),
		MenuItemID:          item.MenuItemID().Bytes(),
		Name:                item.Name(),
		Quantity:            item.Quantity(),
		UnitPrice:           item.UnitPrice().Decimal(),
		PrepArea:            item.PrepArea().String(),
		PrepStatus:          item.PrepStatus().String(),
		PreparedBy:          preparedBy,
		PreparedAt:          item.PreparedAt(),
		SpecialInstructions: item.SpecialInstructions(),
		CreatedAt:           item.CreatedAt(),
	}
}

// toDomain converts a database row to an order aggregate, including its items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tableID, err := kernel.UUIDFromBytes(dto.TableID[:])
	if err != nil {
		return nil, err
	}
	guestID, err := kernel.UUIDFromBytes(dto.GuestID[:])
	if err != nil {
		return nil, err
	}
	waiterID, err := kernel.UUIDFromBytes(dto.WaiterID[:])
	if err != nil {
		return nil, err
	}
	source, err := order.SourceFromString(dto.Source)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	subtotal, err := kernel.NewMoneyFromDecimal(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	tax, err := kernel.NewMoneyFromDecimal(dto.Tax)
	if err != nil {
		return nil, err
	}
	serviceCharge, err := kernel.NewMoneyFromDecimal(dto.ServiceCharge)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoneyFromDecimal(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		tableID,
		guestID,
		waiterID,
		source,
		status,
		items,
		dto.TaxRate,
		dto.ServiceRate,
		subtotal,
		tax,
		serviceCharge,
		total,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoneyFromDecimal(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	prepArea, err := menu.PrepAreaFromString(dto.PrepArea)
	if err != nil {
		return nil, err
	}
	prepStatus, err := order.PrepStatusFromString(dto.PrepStatus)
	if err != nil {
		return nil, err
	}

	var preparedBy *kernel.UUID
	if dto.PreparedBy != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.PreparedBy)[:])
		if pErr != nil {
			return nil, pErr
		}
		preparedBy = &pID
	}

	return order.RestoreItem(
		id,
		menuItemID,
		dto.Name,
		dto.Quantity,
		unitPrice,
		prepArea,
		prepStatus,
		preparedBy,
		dto.PreparedAt,
		dto.SpecialInstructions,
		dto.CreatedAt,
	)
}

// logFromDomain converts a status history entry to its database representation.
func logFromDomain(entry order.StatusLog) StatusLogDTO {
	return StatusLogDTO{
		OrderID: entry.OrderID.Bytes(),
		From:    entry.From.String(),
		To:      entry.To.String(),
		Actor:   entry.Actor.Bytes(),
		At:      entry.At,
	}
}

// logToDomain converts a database row to a status history entry.
func logToDomain(dto StatusLogDTO) (order.StatusLog, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.StatusLog{}, err
	}
	actor, err := kernel.UUIDFromBytes(dto.Actor[:])
	if err != nil {
		return order.StatusLog{}, err
	}
	from, err := order.StatusFromString(dto.From)
	if err != nil {
		return order.StatusLog{}, err
	}
	to, err := order.StatusFromString(dto.To)
	if err != nil {
		return order.StatusLog{}, err
	}

	return order.StatusLog{
		OrderID: orderID,
		From:    from,
		To:      to,
		Actor:   actor,
		At:      dto.At,
	}, nil
}
