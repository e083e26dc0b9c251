package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/core/ports"
)

// SplitPaymentCommandHandler handles split settlement. The parts are checked
// against the order total before any payment is recorded: a mismatch rejects
// the whole split. Cash parts complete immediately; gateway parts go to
// processing and the order completes once all of them confirm.
type SplitPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	locker     ports.OrderLocker
	publisher  ports.NotificationPublisher
}

// NewSplitPaymentCommandHandler creates a handler for split settlement.
func NewSplitPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	locker ports.OrderLocker,
	publisher ports.NotificationPublisher,
) SplitPaymentCommandHandler {
	return SplitPaymentCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		publisher:  publisher,
	}
}

// Handle processes the split settlement command.
func (h *SplitPaymentCommandHandler) Handle(ctx context.Context, cmd SplitPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locker.Lock(cmd.OrderID())
	defer unlock()

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paid, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	requested := kernel.ZeroMoney()
	for _, part := range cmd.Parts() {
		requested = requested.Add(part.Amount)
	}
	if !requested.IsEqual(paid.Total()) {
		return &payment.SplitMismatchError{Requested: requested, Total: paid.Total()}
	}

	paymentRepo := uow.PaymentRepository()
	anySettled := false
	for _, part := range cmd.Parts() {
		paymentID := kernel.NewUUID()
		pay, err := payment.NewPayment(
			paymentID,
			cmd.OrderID(),
			part.Amount,
			part.Method,
			payment.GenerateTransactionID(paymentID),
			map[string]any{"split": true},
			now,
		)
		if err != nil {
			return err
		}

		if part.Method.SettlesImmediately() {
			if _, err = pay.Complete(now); err != nil {
				return err
			}
			anySettled = true
		} else if err = pay.MarkProcessing(); err != nil {
			return err
		}

		if err = paymentRepo.Add(ctx, pay); err != nil {
			return err
		}
	}

	completedOrder := false
	if anySettled {
		completedOrder, err = completeOrderIfPaid(ctx, uow, paid, cmd.ActorID(), now)
		if err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if completedOrder {
		_ = h.publisher.Publish(ctx, ports.Notification{
			Kind:    ports.NotificationPaymentCompleted,
			OrderID: paid.ID(),
			Payload: map[string]any{
				"order_number":    paid.OrderNumber(),
				"order_completed": true,
			},
		})
	}

	return nil
}
