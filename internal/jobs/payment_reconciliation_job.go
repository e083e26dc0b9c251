package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// reconciliationGracePeriod is how long a gateway payment may sit in
// processing before the sweep fails it.
const reconciliationGracePeriod = 5 * time.Minute

// PaymentReconciliationJob periodically sweeps gateway payments whose
// confirmation callback never arrived. Runs every 30 seconds.
type PaymentReconciliationJob struct {
	handler commands.ReconcilePaymentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentReconciliationJob creates the payment sweep job.
func NewPaymentReconciliationJob(
	handler commands.ReconcilePaymentsCommandHandler,
	logger *slog.Logger,
) *PaymentReconciliationJob {
	return &PaymentReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_reconciliation_job"),
	}
}

// Start schedules the sweep to run every 30 seconds.
func (j *PaymentReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewReconcilePaymentsCommand(reconciliationGracePeriod)
		if err != nil {
			j.logger.ErrorContext(ctx, "Payment reconciliation command invalid", "error", err)
			return
		}

		swept, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Payment reconciliation failed", "error", err)
			return
		}
		if swept > 0 {
			j.logger.InfoContext(ctx, "Swept stuck payments", "count", swept)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job started (running every 30 seconds)")
	return nil
}

// Stop stops the payment reconciliation job.
func (j *PaymentReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job stopped")
}
