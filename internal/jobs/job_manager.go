package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/billing"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	issueScanJob               *IssueScanJob
	incompleteOrderReminderJob *IncompleteOrderReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	issuesHandler queries.GetIssuesQueryHandler,
	incompleteOrdersHandler queries.GetIncompleteOrdersQueryHandler,
	settings billing.Settings,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		issueScanJob:               NewIssueScanJob(issuesHandler, settings, logger),
		incompleteOrderReminderJob: NewIncompleteOrderReminderJob(incompleteOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.issueScanJob.Start(); err != nil {
		return fmt.Errorf("failed to start issue scan job: %w", err)
	}

	if err := jm.incompleteOrderReminderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.issueScanJob.Stop()
		return fmt.Errorf("failed to start incomplete order reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.incompleteOrderReminderJob.Stop()
	jm.issueScanJob.Stop()
}
