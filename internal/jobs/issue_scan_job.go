package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/billing"
	"dispatch/internal/core/domain/model/issue"

	"github.com/robfig/cron/v3"
)

// IssueScanJob periodically scans the working set for billing anomalies and
// logs what it finds, so operators notice overload, outlier and missing-field
// problems before an invoice is generated.
type IssueScanJob struct {
	handler  queries.GetIssuesQueryHandler
	settings billing.Settings
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewIssueScanJob creates a job that runs the anomaly scan every minute using
// the given flagging thresholds.
func NewIssueScanJob(handler queries.GetIssuesQueryHandler, settings billing.Settings, logger *slog.Logger) *IssueScanJob {
	return &IssueScanJob{
		handler:  handler,
		settings: settings,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "issue_scan_job"),
	}
}

// Start begins the issue scan job to run every minute.
func (j *IssueScanJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetIssuesQuery(j.settings)
		if err != nil {
			j.logger.ErrorContext(ctx, "Issue scan job failed to build query", "error", err)
			return
		}

		found, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Issue scan job failed", "error", err)
			return
		}
		if len(found) == 0 {
			return
		}

		var errorCount, warningCount int
		for _, iss := range found {
			if iss.Severity == issue.Error.String() {
				errorCount++
			} else {
				warningCount++
			}
		}
		j.logger.WarnContext(ctx, "Issue scan found anomalies in the working set",
			"total", len(found), "errors", errorCount, "warnings", warningCount)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Issue scan job started (running every minute)")
	return nil
}

// Stop stops the issue scan job.
func (j *IssueScanJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Issue scan job stopped")
}
