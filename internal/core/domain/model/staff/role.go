package staff

import (
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
)

// Role represents the job function of a staff member.
// It is a closed set of variants; preparation-area permissions are derived
// from the role through CanPrepare rather than ad hoc string comparison.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleWaiter serves tables and receives tips. Waiters do not prepare items.
	RoleWaiter

	// RoleChef prepares kitchen items.
	RoleChef

	// RoleBartender prepares bar items.
	RoleBartender

	// RoleManager supervises operations and may prepare items in any area.
	RoleManager

	// RoleAdmin has full access, including item preparation in any area.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "Unknown",
		RoleWaiter:    "Waiter",
		RoleChef:      "Chef",
		RoleBartender: "Bartender",
		RoleManager:   "Manager",
		RoleAdmin:     "Admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleWaiter:    "Waiter",
		RoleChef:      "Chef",
		RoleBartender: "Bartender",
		RoleManager:   "Manager",
		RoleAdmin:     "Admin",
	}
}

// RoleFromString parses a role name such as "Chef" or "chef".
// Returns an error for names outside the closed set.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if strings.EqualFold(name, s) {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is a member of the closed set.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// It implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// CanPrepare reports whether the role is allowed to prepare items for the
// given preparation area.
//
// Capability matrix:
//   - Chef: kitchen only
//   - Bartender: bar only
//   - Manager, Admin: any area
//   - Waiter and unknown roles: none
func (r Role) CanPrepare(area menu.PrepArea) bool {
	switch r {
	case RoleChef:
		return area == menu.PrepAreaKitchen
	case RoleBartender:
		return area == menu.PrepAreaBar
	case RoleManager, RoleAdmin:
		return area.Validate() == nil
	default:
		return false
	}
}

// IsWaiter reports whether the role is Waiter. Tips may only be assigned to waiters.
func (r Role) IsWaiter() bool {
	return r == RoleWaiter
}

// CanManageStock reports whether the role may record manual stock movements
// such as restocks and adjustments.
func (r Role) CanManageStock() bool {
	return r == RoleManager || r == RoleAdmin
}
