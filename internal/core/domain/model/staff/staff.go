package staff

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrStaffIsNotConstructed is returned when a Staff instance was not created
	// through the NewStaff factory method.
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff constructor")

	// ErrAuthorization is the unwrap target for AuthorizationError.
	ErrAuthorization = errors.New("not authorized")
)

// AuthorizationError reports that a staff member's role does not permit an
// operation, typically preparing an item outside their station.
type AuthorizationError struct {
	Role Role
	Area menu.PrepArea
}

func (e *AuthorizationError) Error() string {
	if e.Area == menu.PrepAreaUnknown {
		return fmt.Sprintf("role %s is not authorized for this operation", e.Role)
	}
	return fmt.Sprintf("role %s is not authorized for the %s station", e.Role, e.Area)
}

func (e *AuthorizationError) Unwrap() error { return ErrAuthorization }

// Code returns the stable error code for API consumers.
func (e *AuthorizationError) Code() string { return "AUTHORIZATION_DENIED" }

// Staff represents a restaurant employee. The order core only needs identity
// and role; scheduling, contact details, and credentials live elsewhere.
type Staff struct {
	id   kernel.UUID
	name string
	role Role

	isConstructed bool
}

// NewStaff creates a Staff member with validation.
func NewStaff(id kernel.UUID, name string, role Role) (*Staff, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Staff{
		id:            id,
		name:          name,
		role:          role,
		isConstructed: true,
	}, nil
}

// RestoreStaff reconstructs a Staff member from persistence.
func RestoreStaff(id kernel.UUID, name string, role Role) (*Staff, error) {
	return NewStaff(id, name, role)
}

// Validate ensures the Staff instance was created through a constructor.
func (s *Staff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStaffIsNotConstructed
	}
	return nil
}

// ID returns the staff member's unique identifier.
func (s *Staff) ID() kernel.UUID { return s.id }

// Name returns the staff member's display name.
func (s *Staff) Name() string { return s.name }

// Role returns the staff member's role.
func (s *Staff) Role() Role { return s.role }

// AuthorizePrep checks that the staff member may prepare items for the given
// area. Returns an AuthorizationError on a role and station mismatch.
func (s *Staff) AuthorizePrep(area menu.PrepArea) error {
	if !s.role.CanPrepare(area) {
		return &AuthorizationError{Role: s.role, Area: area}
	}
	return nil
}
