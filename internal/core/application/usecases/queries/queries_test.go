package queries_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetBillQuery(t *testing.T) {
	query, err := queries.NewGetBillQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetBillQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetBillQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetBillQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetBillQueryIsNotConstructed)
}

func TestNewGetPendingItemsQuery(t *testing.T) {
	query, err := queries.NewGetPendingItemsQuery(menu.PrepAreaKitchen)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, menu.PrepAreaKitchen, query.PrepArea())

	_, err = queries.NewGetPendingItemsQuery(menu.PrepAreaUnknown)
	require.Error(t, err)
}

func TestGetPendingItemsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPendingItemsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPendingItemsQueryIsNotConstructed)
}

func TestNewGetOrdersByStatusQuery(t *testing.T) {
	query, err := queries.NewGetOrdersByStatusQuery(order.StatusPreparing)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, order.StatusPreparing, query.Status())

	_, err = queries.NewGetOrdersByStatusQuery(order.StatusUnknown)
	require.Error(t, err)
}

func TestGetOrdersByStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersByStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByStatusQueryIsNotConstructed)
}

func TestNewGetPaymentHistoryQuery(t *testing.T) {
	query, err := queries.NewGetPaymentHistoryQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetPaymentHistoryQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetPaymentHistoryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPaymentHistoryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPaymentHistoryQueryIsNotConstructed)
}

func TestNewGetMenuItemQuery(t *testing.T) {
	query, err := queries.NewGetMenuItemQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetMenuItemQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetMenuItemQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetMenuItemQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetMenuItemQueryIsNotConstructed)
}
