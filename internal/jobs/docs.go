// Package jobs provides scheduled background tasks for the warehouse service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment monitoring.
//
// # Available Jobs
//
// 1. StaleOrderWatchJob - Runs every minute to report in-progress orders that
// have sat in their current status longer than the configured threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(staleOrdersHandler, staleThreshold, logger)
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
// The watch job only reads; failures are logged and the next run retries.
package jobs
