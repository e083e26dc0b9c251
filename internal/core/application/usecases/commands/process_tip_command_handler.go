package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/core/domain/model/staff"
)

// ProcessTipCommandHandler handles tip recording. The tip always goes to the
// waiter who owns the order, and only staff in the waiter role can receive
// one; managers running food do not collect tips on someone else's table.
type ProcessTipCommandHandler struct {
	uowFactory TipUoWFactory
}

// NewProcessTipCommandHandler creates a handler for tip recording.
func NewProcessTipCommandHandler(uowFactory TipUoWFactory) ProcessTipCommandHandler {
	return ProcessTipCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tip command.
func (h *ProcessTipCommandHandler) Handle(ctx context.Context, cmd ProcessTipCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tipped, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	waiter, err := uow.StaffRepository().Get(ctx, tipped.WaiterID())
	if err != nil {
		return err
	}
	if !waiter.Role().IsWaiter() {
		return &staff.AuthorizationError{Role: waiter.Role()}
	}

	tip, err := payment.NewTip(
		cmd.TipID(),
		cmd.OrderID(),
		cmd.PaymentID(),
		waiter.ID(),
		cmd.Amount(),
		cmd.Method(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.TipRepository().Add(ctx, tip); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
