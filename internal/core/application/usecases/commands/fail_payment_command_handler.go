package commands

import (
	"context"
)

// FailPaymentCommandHandler handles gateway declines. The order is left
// untouched; the guest simply pays again with another method.
type FailPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewFailPaymentCommandHandler creates a handler for payment failure.
func NewFailPaymentCommandHandler(uowFactory PaymentUoWFactory) FailPaymentCommandHandler {
	return FailPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the failure command.
func (h *FailPaymentCommandHandler) Handle(ctx context.Context, cmd FailPaymentCommand) error {
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

	paymentRepo := uow.PaymentRepository()
	pay, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = pay.Fail(cmd.Reason()); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, pay); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
