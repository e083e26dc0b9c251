package commands

import (
	"context"
	"time"

	"restaurant/internal/core/ports"
)

// ConfirmPaymentCommandHandler handles gateway confirmations. Completing an
// already-completed payment changes nothing and triggers no side effects, so
// a retried callback cannot double-complete the order.
type ConfirmPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	locker     ports.OrderLocker
	publisher  ports.NotificationPublisher
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	locker ports.OrderLocker,
	publisher ports.NotificationPublisher,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		publisher:  publisher,
	}
}

// Handle processes the confirmation command.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	pay, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	unlock := h.locker.Lock(pay.OrderID())
	defer unlock()

	// Reload under the lock so a callback that lost the race to a concurrent
	// confirmation sees the already-completed payment, not its pre-lock copy.
	pay, err = paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	paid, err := uow.OrderRepository().Get(ctx, pay.OrderID())
	if err != nil {
		return err
	}

	pay.MergeDetails(cmd.Details())
	changed, err := pay.Complete(now)
	if err != nil {
		return err
	}
	if !changed {
		// Retried callback; nothing to persist or announce.
		return uow.Rollback(ctx)
	}

	if err = paymentRepo.Update(ctx, pay); err != nil {
		return err
	}

	completedOrder, err := completeOrderIfPaid(ctx, uow, paid, cmd.ActorID(), now)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.Notification{
		Kind:    ports.NotificationPaymentCompleted,
		OrderID: paid.ID(),
		Payload: map[string]any{
			"payment_id":      pay.ID().String(),
			"transaction_id":  pay.TransactionID(),
			"amount":          pay.Amount().String(),
			"method":          pay.Method().String(),
			"order_completed": completedOrder,
		},
	})

	return nil
}
