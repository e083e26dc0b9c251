// Package jobs provides scheduled background tasks for the restaurant system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order and payment hygiene.
//
// # Available Jobs
//
// 1. PaymentReconciliationJob - Runs every 30 seconds to fail gateway payments
// stuck in processing past the grace period
// 2. LowStockAlertJob - Runs every five minutes to publish alerts for menu
// items at or below their low stock threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileHandler, lowStockHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Sweeps that find nothing to do are silent; activity and failures are logged
// - Failed job starts will stop any already running jobs
package jobs
