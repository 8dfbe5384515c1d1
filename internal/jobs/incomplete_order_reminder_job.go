package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// IncompleteOrderReminderJob periodically lists orders still missing critical
// fields. Orders with gaps stay out of a clean invoice, so the reminder keeps
// the backlog visible until every order is corrected.
type IncompleteOrderReminderJob struct {
	handler queries.GetIncompleteOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewIncompleteOrderReminderJob creates a job that reports incomplete orders
// every five minutes.
func NewIncompleteOrderReminderJob(handler queries.GetIncompleteOrdersQueryHandler, logger *slog.Logger) *IncompleteOrderReminderJob {
	return &IncompleteOrderReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "incomplete_order_reminder_job"),
	}
}

// Start begins the reminder job to run every five minutes.
func (j *IncompleteOrderReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		incomplete, err := j.handler.Handle(ctx, queries.NewGetIncompleteOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Incomplete order reminder job failed", "error", err)
			return
		}
		if len(incomplete) == 0 {
			return
		}

		j.logger.WarnContext(ctx, "Orders are still missing critical fields",
			"count", len(incomplete))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Incomplete order reminder job started (running every five minutes)")
	return nil
}

// Stop stops the reminder job.
func (j *IncompleteOrderReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Incomplete order reminder job stopped")
}
