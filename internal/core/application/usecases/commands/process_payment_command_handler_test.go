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
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/orderlock"
)

// servedOrder builds an order in served status with one 15.00 item,
// totalling 18.45 with the default rates.
func servedOrder(t *testing.T) *order.Order {
	t.Helper()

	burger := testMenuItem(t, "Burger", "15.00", menu.PrepAreaKitchen, 50)
	item, err := order.NewItem(kernel.NewUUID(), burger, 1, "", time.Now())
	require.NoError(t, err)

	o := preparingOrder(t, item)
	actor := kernel.NewUUID()
	now := time.Now()

	_, err = o.FinishItemPrep(item.ID(), now)
	require.NoError(t, err)
	_, err = o.TransitionTo(order.StatusReady, actor, kernel.ZeroMoney(), now)
	require.NoError(t, err)
	_, err = o.TransitionTo(order.StatusServed, actor, kernel.ZeroMoney(), now)
	require.NoError(t, err)
	return o
}

func TestProcessPaymentCommandHandler_Handle_CashSettlesAndCompletesOrder(t *testing.T) {
	ctx := t.Context()

	paid := servedOrder(t)
	actorID := kernel.NewUUID()
	tendered := testMoney(t, "20.00")

	cmd, err := commands.NewProcessPaymentCommand(
		kernel.NewUUID(), paid.ID(), actorID, paid.Total(), payment.MethodCash, &tendered,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	tableRepo := new(MockTableRepository)
	uow := new(MockUoW)

	var recorded *payment.Payment
	paymentRepo.On("Add", ctx, mock.AnythingOfType("*payment.Payment")).
		Run(func(args mock.Arguments) { recorded = args.Get(1).(*payment.Payment) }).
		Return(nil).Once()
	paymentRepo.On("CompletedTotalForOrder", ctx, paid.ID()).Return(paid.Total(), nil).Once()

	orderRepo.On("Get", ctx, paid.ID()).Return(paid, nil).Once()
	orderRepo.On("Update", ctx, paid).Return(nil).Once()
	orderRepo.On("AddStatusLog", ctx, mock.AnythingOfType("order.StatusLog")).Return(nil).Once()
	orderRepo.On("GetAllOpenForTable", ctx, paid.TableID()).Return([]*order.Order{}, nil).Once()

	seated, err := table.NewTable(paid.TableID(), "T1")
	require.NoError(t, err)
	tableRepo.On("Get", ctx, paid.TableID()).Return(seated, nil).Once()
	tableRepo.On("Update", ctx, seated).Return(nil).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PaymentRepository").Return(paymentRepo)
	uow.On("TableRepository").Return(tableRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.Notification")).Return(nil).Once()

	handler := commands.NewProcessPaymentCommandHandler(factory, orderlock.NewKeyedMutex(), publisher)

	require.NoError(t, handler.Handle(ctx, cmd))

	require.NotNil(t, recorded)
	assert.Equal(t, payment.StatusCompleted, recorded.Status())
	assert.Equal(t, "20.00", recorded.Details()["tendered"])
	assert.Equal(t, order.StatusCompleted, paid.Status())
	paymentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	tableRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestProcessPaymentCommandHandler_Handle_CardStaysProcessing(t *testing.T) {
	ctx := t.Context()

	paid := servedOrder(t)
	actorID := kernel.NewUUID()

	cmd, err := commands.NewProcessPaymentCommand(
		kernel.NewUUID(), paid.ID(), actorID, paid.Total(), payment.MethodCard, nil,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)

	var recorded *payment.Payment
	orderRepo.On("Get", ctx, paid.ID()).Return(paid, nil).Once()
	paymentRepo.On("Add", ctx, mock.AnythingOfType("*payment.Payment")).
		Run(func(args mock.Arguments) { recorded = args.Get(1).(*payment.Payment) }).
		Return(nil).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PaymentRepository").Return(paymentRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)

	handler := commands.NewProcessPaymentCommandHandler(factory, orderlock.NewKeyedMutex(), publisher)

	require.NoError(t, handler.Handle(ctx, cmd))

	require.NotNil(t, recorded)
	assert.Equal(t, payment.StatusProcessing, recorded.Status())
	assert.Equal(t, order.StatusServed, paid.Status())
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
