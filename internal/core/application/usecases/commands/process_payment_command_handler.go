package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/core/ports"
)

// ProcessPaymentCommandHandler handles recording a payment against an order.
// Cash completes in the same transaction and may settle the whole order;
// gateway methods are left processing until their confirmation callback.
type ProcessPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	locker     ports.OrderLocker
	publisher  ports.NotificationPublisher
}

// NewProcessPaymentCommandHandler creates a handler for payment intake.
func NewProcessPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	locker ports.OrderLocker,
	publisher ports.NotificationPublisher,
) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		publisher:  publisher,
	}
}

// Handle processes the payment intake command.
func (h *ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) error {
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

	pay, err := payment.NewPayment(
		cmd.PaymentID(),
		cmd.OrderID(),
		cmd.Amount(),
		cmd.Method(),
		payment.GenerateTransactionID(cmd.PaymentID()),
		nil,
		now,
	)
	if err != nil {
		return err
	}

	settled := false
	if cmd.Method().SettlesImmediately() {
		if cmd.Tendered() != nil {
			change, err := cmd.Tendered().Sub(cmd.Amount())
			if err != nil {
				return err
			}
			pay.MergeDetails(map[string]any{
				"tendered": cmd.Tendered().String(),
				"change":   change.String(),
			})
		}
		if _, err = pay.Complete(now); err != nil {
			return err
		}
		settled = true
	} else {
		if err = pay.MarkProcessing(); err != nil {
			return err
		}
	}

	paymentRepo := uow.PaymentRepository()
	if err = paymentRepo.Add(ctx, pay); err != nil {
		return err
	}

	completedOrder := false
	if settled {
		completedOrder, err = completeOrderIfPaid(ctx, uow, paid, cmd.ActorID(), now)
		if err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if settled {
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
	}

	return nil
}

// completeOrderIfPaid transitions a served order to completed once its
// completed payments cover the total, writing the audit record and releasing
// the table. Orders not yet served simply stay put; the transition fires
// later, when the serve happens with full payment already in.
func completeOrderIfPaid(
	ctx context.Context,
	uow PaymentUoW,
	paid *order.Order,
	actor kernel.UUID,
	now time.Time,
) (bool, error) {
	if paid.Status() != order.StatusServed {
		return false, nil
	}

	completedTotal, err := uow.PaymentRepository().CompletedTotalForOrder(ctx, paid.ID())
	if err != nil {
		return false, err
	}
	if !completedTotal.IsGreaterOrEqual(paid.Total()) {
		return false, nil
	}

	entry, err := paid.TransitionTo(order.StatusCompleted, actor, completedTotal, now)
	if err != nil {
		return false, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Update(ctx, paid); err != nil {
		return false, err
	}
	if err = orderRepo.AddStatusLog(ctx, entry); err != nil {
		return false, err
	}

	if err = releaseTable(ctx, uow, paid); err != nil {
		return false, err
	}

	return true, nil
}
