package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/domain/model/table"
)

// StaffRepository defines the persistence contract for staff members.
type StaffRepository interface {
	// Add persists a new staff member to storage.
	Add(ctx context.Context, aggregate *staff.Staff) error

	// Get retrieves a staff member by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)
}

// TableRepository defines the persistence contract for tables.
type TableRepository interface {
	// Add persists a new table to storage.
	Add(ctx context.Context, aggregate *table.Table) error

	// Update persists changes to an existing table.
	Update(ctx context.Context, aggregate *table.Table) error

	// Get retrieves a table by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*table.Table, error)
}
