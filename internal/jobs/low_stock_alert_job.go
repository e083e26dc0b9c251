package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LowStockAlertJob periodically publishes alerts for menu items at or below
// their low stock threshold. Runs every five minutes.
type LowStockAlertJob struct {
	handler commands.ReportLowStockCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockAlertJob creates the low stock sweep job.
func NewLowStockAlertJob(
	handler commands.ReportLowStockCommandHandler,
	logger *slog.Logger,
) *LowStockAlertJob {
	return &LowStockAlertJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "low_stock_alert_job"),
	}
}

// Start schedules the sweep to run every five minutes.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		alerted, err := j.handler.Handle(ctx, commands.NewReportLowStockCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock sweep failed", "error", err)
			return
		}
		if alerted > 0 {
			j.logger.InfoContext(ctx, "Low stock alerts raised", "count", alerted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started (running every five minutes)")
	return nil
}

// Stop stops the low stock alert job.
func (j *LowStockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}
