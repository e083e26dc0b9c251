package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// MarkItemReceivedCommandHandler handles a station taking an item into
// preparation. Authorization against the item's preparation area happens in
// the distribution router; a first received item also moves the order from
// confirmed to preparing.
type MarkItemReceivedCommandHandler struct {
	uowFactory PrepUoWFactory
	router     services.DistributionRouter
	locker     ports.OrderLocker
}

// NewMarkItemReceivedCommandHandler creates a handler for item receipt.
func NewMarkItemReceivedCommandHandler(
	uowFactory PrepUoWFactory,
	router services.DistributionRouter,
	locker ports.OrderLocker,
) MarkItemReceivedCommandHandler {
	return MarkItemReceivedCommandHandler{
		uowFactory: uowFactory,
		router:     router,
		locker:     locker,
	}
}

// Handle processes the item receipt command.
func (h *MarkItemReceivedCommandHandler) Handle(ctx context.Context, cmd MarkItemReceivedCommand) error {
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

	preparer, err := uow.StaffRepository().Get(ctx, cmd.StaffID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	prepared, err := orderRepo.GetByItemID(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	unlock := h.locker.Lock(prepared.ID())
	defer unlock()

	// Reload under the lock so the prep status check sees the latest state.
	prepared, err = orderRepo.Get(ctx, prepared.ID())
	if err != nil {
		return err
	}

	if _, err = h.router.Receive(prepared, cmd.ItemID(), preparer, now); err != nil {
		return err
	}

	// The first item entering preparation pulls the order along with it.
	if prepared.Status() == order.StatusConfirmed {
		entry, err := prepared.TransitionTo(order.StatusPreparing, cmd.StaffID(), kernel.ZeroMoney(), now)
		if err != nil {
			return err
		}
		if err = orderRepo.AddStatusLog(ctx, entry); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, prepared); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
