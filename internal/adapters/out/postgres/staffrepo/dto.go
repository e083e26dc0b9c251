// Package staffrepo provides data transfer objects and mapping functions for
// staff persistence.
package staffrepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// StaffDTO represents the database row for a staff member.
type StaffDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Role string
}

// TableName specifies the database table name for staff rows.
func (StaffDTO) TableName() string {
	return "staff"
}

// fromDomain converts a staff member to its database representation.
func fromDomain(aggregate *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Role: aggregate.Role().String(),
	}
}

// toDomain converts a database row to a staff member.
func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := staff.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return staff.RestoreStaff(id, dto.Name, role)
}
