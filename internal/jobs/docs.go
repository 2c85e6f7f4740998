// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order dispatch.
//
// # Available Jobs
//
// 1. DispatchSweepJob - Runs every five seconds to retry courier assignment
// for orders left Pending, so a failed or skipped dispatch attempt after
// placement is eventually picked up.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(pendingOrdersHandler, assignHandler, logger)
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
// The sweep treats "no eligible courier" and lost binding races as normal
// outcomes: the order stays Pending for the next run. Only storage and
// unexpected failures are logged as errors.
package jobs
