package commands

import (
	"context"
	"time"

	"restaurant/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation. The cascade to
// unfinished items happens inside the aggregate; the handler persists the
// result, writes the audit record, releases the table when no other open
// order holds it, and tells the preparation areas to drop the tickets.
type CancelOrderCommandHandler struct {
	uowFactory OrderLifecycleUoWFactory
	locker     ports.OrderLocker
	publisher  ports.NotificationPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderLifecycleUoWFactory,
	locker ports.OrderLocker,
	publisher ports.NotificationPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	cancelled, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	entry, err := cancelled.Cancel(cmd.Reason(), cmd.ActorID(), now)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, cancelled); err != nil {
		return err
	}
	if err = orderRepo.AddStatusLog(ctx, entry); err != nil {
		return err
	}

	if err = releaseTable(ctx, uow, cancelled); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.Notification{
		Kind:    ports.NotificationOrderCancelled,
		OrderID: cancelled.ID(),
		Payload: map[string]any{
			"order_number": cancelled.OrderNumber(),
			"reason":       cmd.Reason(),
		},
	})

	return nil
}
