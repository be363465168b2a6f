// Package jobs provides scheduled background tasks for the deliveries service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. DeliveryStatsJob - Runs every minute and logs the number of deliveries
// per derived lifecycle state (Created, Approved, Completed, Cancelled,
// Expired).
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getAllDeliveriesHandler, logger)
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
// The stats job is read-only and logs query failures without retrying; the
// next scheduled run reads fresh data anyway.
package jobs
