package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for a zero-value UUID,
// meaning the value skipped every constructor function.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object shared by every aggregate in the
// domain: orders, menu items, staff, tables, payments and tips all carry one.
// It wraps github.com/google/uuid behind a private field so a UUID can only
// come out of a constructor, never out of struct literal syntax.
//
// The zero value is deliberately invalid; aggregate constructors call
// Validate on every id they receive and refuse the nil UUID. The type is
// immutable and safe to copy and compare.
//
// Example usage:
//
//	orderID := kernel.NewUUID()
//
//	tableID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return fmt.Errorf("invalid table id: %w", err)
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version 4 UUID. All new aggregate identifiers
// are minted through this function.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical textual forms accepted by
// github.com/google/uuid, including the braced and urn:uuid: variants.
// It is the entry point for identifiers arriving from persistence rows,
// request paths and external systems.
//
// Example:
//
//	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from a 16-byte slice, as stored by binary
// database columns. Unlike UUIDFromString it also rejects the all-zero
// UUID, since a zeroed column means the row never held a real identifier.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String renders the UUID in the standard dashed hexadecimal form. The zero
// value renders as "00000000-0000-0000-0000-000000000000". Used for logging,
// JSON payloads and text database columns.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID for integration with libraries
// that want the google type directly, such as GORM column bindings. For a
// raw byte slice, slice the result: u.Bytes()[:].
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both values identify the same entity.
//
// Example:
//
//	if payment.OrderID().IsEqual(order.ID()) {
//	    // payment belongs to this order
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID and nil for
// anything produced by a constructor. Aggregate and command constructors
// call this on every identifier argument.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
