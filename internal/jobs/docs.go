// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. StaleOrderJob - Runs every minute to cancel Pending orders older than the
// configured TTL, returning their reserved stock to the catalog
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, 30*time.Minute, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "* * * * *", running once a minute.
// Stock reserved by an abandoned cart is therefore held at most TTL plus one
// minute past the order's creation.
//
// # Error Handling
//
// - Sweep errors are logged and retried on the next tick; a failed batch
// rolls back as one transaction, so no order is left half-cancelled
// - Failed job starts will stop any already running jobs
package jobs
