package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

func TestAddItemsCommandHandler_Handle_DeductsStockAndInvalidatesCache(t *testing.T) {
	ctx := t.Context()

	lemonade := testMenuItem(t, "Lemonade", "5.00", menu.PrepAreaBar, 20)
	staffID := kernel.NewUUID()

	amended, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), staffID,
		order.SourcePOS, "", decimal.NewFromInt(18), decimal.NewFromInt(5), time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewAddItemsCommand(
		amended.ID(), staffID,
		[]commands.OrderLine{{MenuItemID: lemonade.ID(), Quantity: 3}},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	invRepo := new(MockInventoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, amended.ID()).Return(amended, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("GetBatch", ctx, []kernel.UUID{lemonade.ID()}).
			Return([]*menu.MenuItem{lemonade}, nil).Once(),
		uow.On("InventoryRepository").Return(invRepo).Once(),
		menuRepo.On("Update", ctx, lemonade).Return(nil).Once(),
		invRepo.On("Add", ctx, mock.AnythingOfType("*inventory.Transaction")).Return(nil).Once(),
		orderRepo.On("Update", ctx, amended).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderItemsUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.Notification")).Return(nil)

	cache := new(MockMenuCache)
	cache.On("Invalidate", ctx, []kernel.UUID{lemonade.ID()}).Return(nil).Once()

	handler := commands.NewAddItemsCommandHandler(
		factory, services.NewDistributionRouter(), publisher, cache)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, 17, lemonade.StockQuantity())
	assert.Len(t, amended.Items(), 1)
	orderRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	invRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestAddItemsCommandHandler_Handle_LockedOrderKeepsStockAndCache(t *testing.T) {
	ctx := t.Context()

	lemonade := testMenuItem(t, "Lemonade", "5.00", menu.PrepAreaBar, 20)
	staffID := kernel.NewUUID()

	espresso := testMenuItem(t, "Espresso", "3.00", menu.PrepAreaBar, 20)
	item, err := order.NewItem(kernel.NewUUID(), espresso, 1, "", time.Now())
	require.NoError(t, err)
	locked := preparingOrder(t, item)

	cmd, err := commands.NewAddItemsCommand(
		locked.ID(), staffID,
		[]commands.OrderLine{{MenuItemID: lemonade.ID(), Quantity: 3}},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, locked.ID()).Return(locked, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("GetBatch", ctx, []kernel.UUID{lemonade.ID()}).
			Return([]*menu.MenuItem{lemonade}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderItemsUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)
	cache := new(MockMenuCache)

	handler := commands.NewAddItemsCommandHandler(
		factory, services.NewDistributionRouter(), publisher, cache)

	err = handler.Handle(ctx, cmd)

	var transitionErr *order.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, 20, lemonade.StockQuantity())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
