package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/pkg/orderlock"
)

func TestSplitPaymentCommandHandler_Handle_Mismatch(t *testing.T) {
	ctx := t.Context()

	paid := servedOrder(t)

	cmd, err := commands.NewSplitPaymentCommand(
		paid.ID(), kernel.NewUUID(),
		[]commands.SplitPart{
			{Amount: testMoney(t, "10.00"), Method: payment.MethodCash},
			{Amount: testMoney(t, "5.00"), Method: payment.MethodCard},
		},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, paid.ID()).Return(paid, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)

	handler := commands.NewSplitPaymentCommandHandler(factory, orderlock.NewKeyedMutex(), publisher)

	err = handler.Handle(ctx, cmd)

	var splitErr *payment.SplitMismatchError
	require.ErrorAs(t, err, &splitErr)
	assert.Equal(t, "SPLIT_MISMATCH", splitErr.Code())
	// No part of the split was recorded.
	uow.AssertNotCalled(t, "PaymentRepository")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestSplitPaymentCommandHandler_Handle_ExactSumSettles(t *testing.T) {
	ctx := t.Context()

	paid := servedOrder(t)
	total := paid.Total()
	cashPart := testMoney(t, "10.00")
	cardPart, err := total.Sub(cashPart)
	require.NoError(t, err)

	cmd, err := commands.NewSplitPaymentCommand(
		paid.ID(), kernel.NewUUID(),
		[]commands.SplitPart{
			{Amount: cashPart, Method: payment.MethodCash},
			{Amount: cardPart, Method: payment.MethodCard},
		},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, paid.ID()).Return(paid, nil).Once()

	paymentRepo := new(MockPaymentRepository)
	var recorded []*payment.Payment
	paymentRepo.On("Add", ctx, mock.AnythingOfType("*payment.Payment")).
		Run(func(args mock.Arguments) {
			recorded = append(recorded, args.Get(1).(*payment.Payment))
		}).
		Return(nil).Twice()
	// The card share has not confirmed yet, so the order stays served.
	paymentRepo.On("CompletedTotalForOrder", ctx, paid.ID()).Return(cashPart, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PaymentRepository").Return(paymentRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)

	handler := commands.NewSplitPaymentCommandHandler(factory, orderlock.NewKeyedMutex(), publisher)

	require.NoError(t, handler.Handle(ctx, cmd))

	require.Len(t, recorded, 2)
	assert.Equal(t, payment.StatusCompleted, recorded[0].Status())
	assert.Equal(t, payment.StatusProcessing, recorded[1].Status())
	assert.Equal(t, order.StatusServed, paid.Status())
	paymentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
