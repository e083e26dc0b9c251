package staff_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaff(t *testing.T) {
	t.Run("should create valid staff member", func(t *testing.T) {
		id := kernel.NewUUID()

		s, err := staff.NewStaff(id, "Amara", staff.RoleChef)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, "Amara", s.Name())
		assert.Equal(t, staff.RoleChef, s.Role())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := staff.NewStaff(kernel.NewUUID(), "", staff.RoleChef)
		require.Error(t, err)
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		_, err := staff.NewStaff(kernel.NewUUID(), "Amara", staff.RoleUnknown)
		require.Error(t, err)
	})
}

func TestRole_CanPrepare(t *testing.T) {
	tests := []struct {
		role    staff.Role
		area    menu.PrepArea
		allowed bool
	}{
		{staff.RoleChef, menu.PrepAreaKitchen, true},
		{staff.RoleChef, menu.PrepAreaBar, false},
		{staff.RoleBartender, menu.PrepAreaBar, true},
		{staff.RoleBartender, menu.PrepAreaKitchen, false},
		{staff.RoleManager, menu.PrepAreaKitchen, true},
		{staff.RoleManager, menu.PrepAreaBar, true},
		{staff.RoleAdmin, menu.PrepAreaKitchen, true},
		{staff.RoleAdmin, menu.PrepAreaBar, true},
		{staff.RoleWaiter, menu.PrepAreaKitchen, false},
		{staff.RoleWaiter, menu.PrepAreaBar, false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String()+" in "+tt.area.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.role.CanPrepare(tt.area))
		})
	}
}

func TestStaff_AuthorizePrep(t *testing.T) {
	t.Run("should allow a chef in the kitchen", func(t *testing.T) {
		chef, err := staff.NewStaff(kernel.NewUUID(), "Amara", staff.RoleChef)
		require.NoError(t, err)

		require.NoError(t, chef.AuthorizePrep(menu.PrepAreaKitchen))
	})

	t.Run("should refuse a waiter at any station", func(t *testing.T) {
		waiter, err := staff.NewStaff(kernel.NewUUID(), "Jonas", staff.RoleWaiter)
		require.NoError(t, err)

		err = waiter.AuthorizePrep(menu.PrepAreaBar)

		var denied *staff.AuthorizationError
		require.ErrorAs(t, err, &denied)
		assert.Equal(t, staff.RoleWaiter, denied.Role)
		assert.Equal(t, menu.PrepAreaBar, denied.Area)
	})
}

func TestRole_Capabilities(t *testing.T) {
	assert.True(t, staff.RoleWaiter.IsWaiter())
	assert.False(t, staff.RoleChef.IsWaiter())

	assert.True(t, staff.RoleManager.CanManageStock())
	assert.True(t, staff.RoleAdmin.CanManageStock())
	assert.False(t, staff.RoleWaiter.CanManageStock())
	assert.False(t, staff.RoleChef.CanManageStock())
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse names case-insensitively", func(t *testing.T) {
		role, err := staff.RoleFromString("chef")
		require.NoError(t, err)
		assert.Equal(t, staff.RoleChef, role)

		role, err = staff.RoleFromString("Bartender")
		require.NoError(t, err)
		assert.Equal(t, staff.RoleBartender, role)

		role, err = staff.RoleFromString("MANAGER")
		require.NoError(t, err)
		assert.Equal(t, staff.RoleManager, role)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := staff.RoleFromString("sommelier")
		require.Error(t, err)
	})
}
