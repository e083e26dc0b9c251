package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// MarkItemReadyCommandHandler handles a station finishing an item. The
// per-order lock serializes concurrent completions from different stations,
// so exactly one of them observes the last active item turning ready and
// promotes the order. The ready notification only goes out when this call
// performed the promotion.
type MarkItemReadyCommandHandler struct {
	uowFactory PrepUoWFactory
	router     services.DistributionRouter
	locker     ports.OrderLocker
	publisher  ports.NotificationPublisher
}

// NewMarkItemReadyCommandHandler creates a handler for item completion.
func NewMarkItemReadyCommandHandler(
	uowFactory PrepUoWFactory,
	router services.DistributionRouter,
	locker ports.OrderLocker,
	publisher ports.NotificationPublisher,
) MarkItemReadyCommandHandler {
	return MarkItemReadyCommandHandler{
		uowFactory: uowFactory,
		router:     router,
		locker:     locker,
		publisher:  publisher,
	}
}

// Handle processes the item completion command.
func (h *MarkItemReadyCommandHandler) Handle(ctx context.Context, cmd MarkItemReadyCommand) error {
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

	orderRepo := uow.OrderRepository()
	prepared, err := orderRepo.GetByItemID(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	unlock := h.locker.Lock(prepared.ID())
	defer unlock()

	// Reload under the lock so readiness aggregation sees every completion
	// that won the lock before this one.
	prepared, err = orderRepo.Get(ctx, prepared.ID())
	if err != nil {
		return err
	}

	allReady, err := h.router.FinishItem(prepared, cmd.ItemID(), now)
	if err != nil {
		return err
	}

	promoted := false
	if allReady && prepared.Status() == order.StatusPreparing {
		item, err := prepared.Item(cmd.ItemID())
		if err != nil {
			return err
		}
		// StartPrep recorded the preparer before the item could turn ready.
		actor := *item.PreparedBy()

		entry, err := prepared.TransitionTo(order.StatusReady, actor, kernel.ZeroMoney(), now)
		if err != nil {
			return err
		}
		if err = orderRepo.AddStatusLog(ctx, entry); err != nil {
			return err
		}
		promoted = true
	}

	if err = orderRepo.Update(ctx, prepared); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if promoted {
		_ = h.publisher.Publish(ctx, ports.Notification{
			Kind:    ports.NotificationOrderReady,
			OrderID: prepared.ID(),
			Payload: map[string]any{
				"order_number": prepared.OrderNumber(),
			},
		})
	}

	return nil
}
