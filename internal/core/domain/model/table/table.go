// Package table provides the dining Table entity with its occupancy state.
// Tables are occupied when an order is created against them and released when
// the last non-terminal order for the table completes.
package table

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrTableIsNotConstructed is returned when a Table instance was not created
// through the NewTable factory method.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")

// TableStatus represents the occupancy state of a dining table.
type TableStatus int

const (
	// TableStatusUnknown represents an invalid or undefined status.
	TableStatusUnknown TableStatus = iota

	// TableStatusAvailable marks a table free for seating.
	TableStatusAvailable

	// TableStatusOccupied marks a table with at least one active order.
	TableStatusOccupied
)

// TableStatusFromString parses a table status name ("available" or "occupied").
func TableStatusFromString(s string) (TableStatus, error) {
	switch s {
	case "available":
		return TableStatusAvailable, nil
	case "occupied":
		return TableStatusOccupied, nil
	default:
		return TableStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"table status", fmt.Errorf("%q is not a valid table status", s))
	}
}

// String returns the human-readable name of the status.
func (s TableStatus) String() string {
	switch s {
	case TableStatusAvailable:
		return "available"
	case TableStatusOccupied:
		return "occupied"
	default:
		return "Unknown"
	}
}

// Validate checks if the TableStatus value is valid.
func (s TableStatus) Validate() error {
	if s != TableStatusAvailable && s != TableStatusOccupied {
		return errs.NewValueIsInvalidErrorWithCause(
			"table status", fmt.Errorf("%d is not a valid table status", s))
	}
	return nil
}

// Table represents a dining table.
type Table struct {
	id     kernel.UUID
	name   string
	status TableStatus

	isConstructed bool
}

// NewTable creates an available Table with validation.
func NewTable(id kernel.UUID, name string) (*Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Table{
		id:            id,
		name:          name,
		status:        TableStatusAvailable,
		isConstructed: true,
	}, nil
}

// RestoreTable reconstructs a Table from persistence.
func RestoreTable(id kernel.UUID, name string, status TableStatus) (*Table, error) {
	t, err := NewTable(id, name)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	t.status = status
	return t, nil
}

// Validate ensures the Table instance was created through a constructor.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

// ID returns the table's unique identifier.
func (t *Table) ID() kernel.UUID { return t.id }

// Name returns the table's display name.
func (t *Table) Name() string { return t.name }

// Status returns the table's occupancy status.
func (t *Table) Status() TableStatus { return t.status }

// MarkOccupied sets the table to occupied. Idempotent.
func (t *Table) MarkOccupied() {
	t.status = TableStatusOccupied
}

// MarkAvailable releases the table. Idempotent.
func (t *Table) MarkAvailable() {
	t.status = TableStatusAvailable
}
