package commands

import (
	"context"
	"time"
)

// RefundPaymentCommandHandler handles refunds of completed payments. The
// refund only moves the payment; whether the order needs cancelling is a
// separate decision made by the staff.
type RefundPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewRefundPaymentCommandHandler creates a handler for payment refunds.
func NewRefundPaymentCommandHandler(uowFactory PaymentUoWFactory) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refund command.
func (h *RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) error {
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

	if err = pay.Refund(cmd.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, pay); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
