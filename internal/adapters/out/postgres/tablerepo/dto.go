// Package tablerepo provides data transfer objects and mapping functions for
// dining table persistence.
package tablerepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// TableDTO represents the database row for a dining table.
type TableDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"uniqueIndex"`
	Status string
}

// TableName specifies the database table name for dining table rows.
func (TableDTO) TableName() string {
	return "tables"
}

// fromDomain converts a dining table to its database representation.
func fromDomain(aggregate *table.Table) TableDTO {
	return TableDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Status: aggregate.Status().String(),
	}
}

// toDomain converts a database row to a dining table.
func toDomain(dto TableDTO) (*table.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := table.TableStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return table.RestoreTable(id, dto.Name, status)
}
