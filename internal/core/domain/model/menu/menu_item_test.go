package menu_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMenuItem(t *testing.T, stock, threshold int) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(
		kernel.NewUUID(), "Grilled Salmon", kernel.MustMoney("15.00"),
		menu.PrepAreaKitchen, stock, threshold, "portion")
	require.NoError(t, err)
	return item
}

func TestNewMenuItem(t *testing.T) {
	t.Run("should create valid menu item", func(t *testing.T) {
		item := newTestMenuItem(t, 100, 10)

		require.NoError(t, item.Validate())
		assert.Equal(t, "Grilled Salmon", item.Name())
		assert.True(t, item.Price().IsEqual(kernel.MustMoney("15.00")))
		assert.Equal(t, menu.PrepAreaKitchen, item.PrepArea())
		assert.Equal(t, 100, item.StockQuantity())
		assert.Equal(t, "portion", item.Unit())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := menu.NewMenuItem(
			kernel.NewUUID(), "", kernel.MustMoney("15.00"),
			menu.PrepAreaKitchen, 100, 10, "portion")

		require.Error(t, err)
	})

	t.Run("should fail with negative stock", func(t *testing.T) {
		_, err := menu.NewMenuItem(
			kernel.NewUUID(), "Grilled Salmon", kernel.MustMoney("15.00"),
			menu.PrepAreaKitchen, -1, 10, "portion")

		require.Error(t, err)
	})

	t.Run("should fail with invalid prep area", func(t *testing.T) {
		_, err := menu.NewMenuItem(
			kernel.NewUUID(), "Grilled Salmon", kernel.MustMoney("15.00"),
			menu.PrepAreaUnknown, 100, 10, "portion")

		require.Error(t, err)
	})
}

func TestMenuItem_Deduct(t *testing.T) {
	t.Run("should deduct available stock", func(t *testing.T) {
		item := newTestMenuItem(t, 10, 3)

		require.NoError(t, item.Deduct(4))

		assert.Equal(t, 6, item.StockQuantity())
	})

	t.Run("should allow deducting to exactly zero", func(t *testing.T) {
		item := newTestMenuItem(t, 4, 3)

		require.NoError(t, item.Deduct(4))

		assert.Equal(t, 0, item.StockQuantity())
	})

	t.Run("should refuse deducting more than available", func(t *testing.T) {
		item := newTestMenuItem(t, 3, 1)

		err := item.Deduct(4)

		var insufficient *menu.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, "Grilled Salmon", insufficient.ItemName)
		assert.Equal(t, 4, insufficient.Requested)
		assert.Equal(t, 3, insufficient.Available)
		assert.Equal(t, 3, item.StockQuantity())
	})

	t.Run("should refuse non-positive quantity", func(t *testing.T) {
		item := newTestMenuItem(t, 3, 1)

		require.Error(t, item.Deduct(0))
		require.Error(t, item.Deduct(-2))
	})
}

func TestMenuItem_Restock(t *testing.T) {
	item := newTestMenuItem(t, 2, 5)

	require.NoError(t, item.Restock(10))
	assert.Equal(t, 12, item.StockQuantity())

	require.Error(t, item.Restock(0))
	require.Error(t, item.Restock(-1))
}

func TestMenuItem_IsLowStock(t *testing.T) {
	t.Run("should trip strictly below the threshold", func(t *testing.T) {
		item := newTestMenuItem(t, 5, 5)
		assert.False(t, item.IsLowStock())

		require.NoError(t, item.Deduct(1))
		assert.True(t, item.IsLowStock())
	})
}

func TestPrepAreaFromString(t *testing.T) {
	kitchen, err := menu.PrepAreaFromString("kitchen")
	require.NoError(t, err)
	assert.Equal(t, menu.PrepAreaKitchen, kitchen)

	bar, err := menu.PrepAreaFromString("bar")
	require.NoError(t, err)
	assert.Equal(t, menu.PrepAreaBar, bar)

	_, err = menu.PrepAreaFromString("patio")
	require.Error(t, err)
}
