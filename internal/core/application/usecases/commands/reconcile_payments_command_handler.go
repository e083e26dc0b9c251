package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/payment"
)

// ReconcilePaymentsCommandHandler fails gateway payments stuck in processing
// past the grace period. It returns the number of payments swept so the
// calling job can log activity.
type ReconcilePaymentsCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewReconcilePaymentsCommandHandler creates a handler for the payment sweep.
func NewReconcilePaymentsCommandHandler(uowFactory PaymentUoWFactory) ReconcilePaymentsCommandHandler {
	return ReconcilePaymentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command.
func (h *ReconcilePaymentsCommandHandler) Handle(ctx context.Context, cmd ReconcilePaymentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	processing, err := paymentRepo.GetAllInStatus(ctx, payment.StatusProcessing)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-cmd.GracePeriod())
	swept := 0
	for _, pay := range processing {
		if pay.CreatedAt().After(cutoff) {
			continue
		}

		if err = pay.Fail("gateway confirmation timed out"); err != nil {
			return 0, err
		}
		if err = paymentRepo.Update(ctx, pay); err != nil {
			return 0, err
		}
		swept++
	}

	if swept == 0 {
		return 0, uow.Rollback(ctx)
	}

	return swept, uow.Commit(ctx)
}
