package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// TransitionOrderStatusCommandHandler handles explicit order lifecycle
// transitions. The target completed reads the payment ledger for the
// sufficiency check and releases the table; the status write and its audit
// record always land in the same transaction. The per-order lock keeps the
// read-check-write sequence from interleaving with item readiness updates.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderLifecycleUoWFactory
	locker     ports.OrderLocker
}

// NewTransitionOrderStatusCommandHandler creates a handler for order transitions.
func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderLifecycleUoWFactory,
	locker ports.OrderLocker,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle processes the transition command.
func (h *TransitionOrderStatusCommandHandler) Handle(ctx context.Context, cmd TransitionOrderStatusCommand) error {
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
	transitioned, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	completedPayments := kernel.ZeroMoney()
	if cmd.Target() == order.StatusCompleted {
		completedPayments, err = uow.PaymentRepository().CompletedTotalForOrder(ctx, cmd.OrderID())
		if err != nil {
			return err
		}
	}

	entry, err := transitioned.TransitionTo(cmd.Target(), cmd.ActorID(), completedPayments, now)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, transitioned); err != nil {
		return err
	}
	if err = orderRepo.AddStatusLog(ctx, entry); err != nil {
		return err
	}

	if cmd.Target() == order.StatusCompleted {
		if err = releaseTable(ctx, uow, transitioned); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// releaseTable frees the order's table unless another non-terminal order
// still holds it.
func releaseTable(
	ctx context.Context,
	uow interface {
		OrderRepoFactory
		TableRepoFactory
	},
	closed *order.Order,
) error {
	open, err := uow.OrderRepository().GetAllOpenForTable(ctx, closed.TableID())
	if err != nil {
		return err
	}
	for _, o := range open {
		if o.ID() != closed.ID() {
			return nil
		}
	}

	tableRepo := uow.TableRepository()
	seatedTable, err := tableRepo.Get(ctx, closed.TableID())
	if err != nil {
		return err
	}
	seatedTable.MarkAvailable()
	return tableRepo.Update(ctx, seatedTable)
}
