package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/domain/services"
)

func newMenuItem(t *testing.T, name string, price string, area menu.PrepArea) *menu.MenuItem {
	t.Helper()
	money, err := kernel.NewMoney(price)
	require.NoError(t, err)
	mi, err := menu.NewMenuItem(kernel.NewUUID(), name, money, area, 100, 10, "portion")
	require.NoError(t, err)
	return mi
}

func newOrderWithItems(t *testing.T, items ...*order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.SourcePOS,
		"",
		decimal.NewFromInt(18),
		decimal.NewFromInt(5),
		time.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, o.AddItems(items...))
	return o
}

func newItem(t *testing.T, mi *menu.MenuItem, quantity int) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), mi, quantity, "", time.Now())
	require.NoError(t, err)
	return item
}

func newStaff(t *testing.T, role staff.Role) *staff.Staff {
	t.Helper()
	s, err := staff.NewStaff(kernel.NewUUID(), "Test Staff", role)
	require.NoError(t, err)
	return s
}

func Test_DistributionRouter_Partition(t *testing.T) {
	router := services.NewDistributionRouter()

	t.Run("should group items by preparation area", func(t *testing.T) {
		burger := newItem(t, newMenuItem(t, "Burger", "12.50", menu.PrepAreaKitchen), 1)
		fries := newItem(t, newMenuItem(t, "Fries", "4.00", menu.PrepAreaKitchen), 2)
		beer := newItem(t, newMenuItem(t, "Beer", "6.00", menu.PrepAreaBar), 1)
		o := newOrderWithItems(t, burger, fries, beer)

		tickets, err := router.Partition(o)

		require.NoError(t, err)
		assert.Len(t, tickets, 2)
		assert.Equal(t, []*order.Item{burger, fries}, tickets[menu.PrepAreaKitchen])
		assert.Equal(t, []*order.Item{beer}, tickets[menu.PrepAreaBar])
	})

	t.Run("should skip cancelled items", func(t *testing.T) {
		burger := newItem(t, newMenuItem(t, "Burger", "12.50", menu.PrepAreaKitchen), 1)
		beer := newItem(t, newMenuItem(t, "Beer", "6.00", menu.PrepAreaBar), 1)
		o := newOrderWithItems(t, burger, beer)
		require.NoError(t, beer.CancelPrep())

		tickets, err := router.Partition(o)

		require.NoError(t, err)
		assert.Len(t, tickets, 1)
		assert.NotContains(t, tickets, menu.PrepAreaBar)
	})
}

func Test_DistributionRouter_Distribute(t *testing.T) {
	router := services.NewDistributionRouter()

	t.Run("should confirm pending items per area", func(t *testing.T) {
		burger := newItem(t, newMenuItem(t, "Burger", "12.50", menu.PrepAreaKitchen), 1)
		fries := newItem(t, newMenuItem(t, "Fries", "4.00", menu.PrepAreaKitchen), 1)
		beer := newItem(t, newMenuItem(t, "Beer", "6.00", menu.PrepAreaBar), 1)
		o := newOrderWithItems(t, burger, fries, beer)

		counts, err := router.Distribute(o)

		require.NoError(t, err)
		assert.Equal(t, map[menu.PrepArea]int{
			menu.PrepAreaKitchen: 2,
			menu.PrepAreaBar:     1,
		}, counts)
		assert.Equal(t, order.PrepConfirmed, burger.PrepStatus())
		assert.Equal(t, order.PrepConfirmed, beer.PrepStatus())
	})

	t.Run("should be idempotent on re-distribution", func(t *testing.T) {
		burger := newItem(t, newMenuItem(t, "Burger", "12.50", menu.PrepAreaKitchen), 1)
		o := newOrderWithItems(t, burger)

		_, err := router.Distribute(o)
		require.NoError(t, err)
		counts, err := router.Distribute(o)

		require.NoError(t, err)
		assert.Equal(t, 0, counts[menu.PrepAreaKitchen])
	})

	t.Run("should error when order has no active items", func(t *testing.T) {
		beer := newItem(t, newMenuItem(t, "Beer", "6.00", menu.PrepAreaBar), 1)
		o := newOrderWithItems(t, beer)
		require.NoError(t, beer.CancelPrep())

		_, err := router.Distribute(o)

		assert.ErrorIs(t, err, services.ErrNoItemsForArea)
	})
}

func Test_DistributionRouter_Receive(t *testing.T) {
	router := services.NewDistributionRouter()
	now := time.Now()

	t.Run("should start preparation for authorized staff", func(t *testing.T) {
		burger := newItem(t, newMenuItem(t, "Burger", "12.50", menu.PrepAreaKitchen), 1)
		o := newOrderWithItems(t, burger)
		chef := newStaff(t, staff.RoleChef)
		_, err := router.Distribute(o)
		require.NoError(t, err)

		item, err := router.Receive(o, burger.ID(), chef, now)

		require.NoError(t, err)
		assert.Equal(t, order.PrepPreparing, item.PrepStatus())
		require.NotNil(t, item.PreparedBy())
		assert.Equal(t, chef.ID(), *item.PreparedBy())
	})

	t.Run("should allow manager for any area", func(t *testing.T) {
		beer := newItem(t, newMenuItem(t, "Beer", "6.00", menu.PrepAreaBar), 1)
		o := newOrderWithItems(t, beer)
		manager := newStaff(t, staff.RoleManager)
		_, err := router.Distribute(o)
		require.NoError(t, err)

		_, err = router.Receive(o, beer.ID(), manager, now)

		assert.NoError(t, err)
	})

	t.Run("should reject staff from wrong area", func(t *testing.T) {
		beer := newItem(t, newMenuItem(t, "Beer", "6.00", menu.PrepAreaBar), 1)
		o := newOrderWithItems(t, beer)
		chef := newStaff(t, staff.RoleChef)
		_, err := router.Distribute(o)
		require.NoError(t, err)

		_, err = router.Receive(o, beer.ID(), chef, now)

		var authErr *staff.AuthorizationError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "AUTHORIZATION_DENIED", authErr.Code())
	})

	t.Run("should reject item that was not confirmed", func(t *testing.T) {
		burger := newItem(t, newMenuItem(t, "Burger", "12.50", menu.PrepAreaKitchen), 1)
		o := newOrderWithItems(t, burger)
		chef := newStaff(t, staff.RoleChef)

		_, err := router.Receive(o, burger.ID(), chef, now)

		var itemErr *order.InvalidItemTransitionError
		assert.ErrorAs(t, err, &itemErr)
	})
}

func Test_DistributionRouter_FinishItem(t *testing.T) {
	router := services.NewDistributionRouter()
	now := time.Now()

	prepare := func(t *testing.T, o *order.Order, item *order.Item, preparer *staff.Staff) {
		t.Helper()
		require.NoError(t, item.Confirm())
		_, err := o.StartItemPrep(item.ID(), preparer.ID(), now)
		require.NoError(t, err)
	}

	t.Run("should report order not ready while items remain", func(t *testing.T) {
		burger := newItem(t, newMenuItem(t, "Burger", "12.50", menu.PrepAreaKitchen), 1)
		fries := newItem(t, newMenuItem(t, "Fries", "4.00", menu.PrepAreaKitchen), 1)
		o := newOrderWithItems(t, burger, fries)
		chef := newStaff(t, staff.RoleChef)
		prepare(t, o, burger, chef)
		prepare(t, o, fries, chef)

		allReady, err := router.FinishItem(o, burger.ID(), now)

		require.NoError(t, err)
		assert.False(t, allReady)
	})

	t.Run("should report order ready when last item finishes", func(t *testing.T) {
		burger := newItem(t, newMenuItem(t, "Burger", "12.50", menu.PrepAreaKitchen), 1)
		beer := newItem(t, newMenuItem(t, "Beer", "6.00", menu.PrepAreaBar), 1)
		o := newOrderWithItems(t, burger, beer)
		chef := newStaff(t, staff.RoleChef)
		bartender := newStaff(t, staff.RoleBartender)
		prepare(t, o, burger, chef)
		prepare(t, o, beer, bartender)

		allReady, err := router.FinishItem(o, burger.ID(), now)
		require.NoError(t, err)
		require.False(t, allReady)

		allReady, err = router.FinishItem(o, beer.ID(), now)
		require.NoError(t, err)
		assert.True(t, allReady)
	})

	t.Run("should treat cancelled items as not blocking readiness", func(t *testing.T) {
		burger := newItem(t, newMenuItem(t, "Burger", "12.50", menu.PrepAreaKitchen), 1)
		beer := newItem(t, newMenuItem(t, "Beer", "6.00", menu.PrepAreaBar), 1)
		o := newOrderWithItems(t, burger, beer)
		chef := newStaff(t, staff.RoleChef)
		prepare(t, o, burger, chef)
		require.NoError(t, beer.CancelPrep())

		allReady, err := router.FinishItem(o, burger.ID(), now)

		require.NoError(t, err)
		assert.True(t, allReady)
	})

	t.Run("should reject item that is not preparing", func(t *testing.T) {
		beer := newItem(t, newMenuItem(t, "Beer", "6.00", menu.PrepAreaBar), 1)
		o := newOrderWithItems(t, beer)

		_, err := router.FinishItem(o, beer.ID(), now)

		var itemErr *order.InvalidItemTransitionError
		assert.ErrorAs(t, err, &itemErr)
	})
}
