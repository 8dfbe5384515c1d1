// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to keep the working set visible between ingestion and invoicing.
//
// # Available Jobs
//
// 1. IssueScanJob - Runs every minute to scan the working set for billing anomalies
// 2. IncompleteOrderReminderJob - Runs every five minutes to report orders missing critical fields
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(issuesHandler, incompleteOrdersHandler, settings, logger)
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
// - Both jobs log failures and keep their schedule; a failed run never stops the job
// - A clean run (no issues, no incomplete orders) logs nothing
// - Failed job starts will stop any already running jobs
package jobs
