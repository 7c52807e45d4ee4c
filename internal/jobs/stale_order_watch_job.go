package jobs

import (
	"context"
	"log/slog"
	"time"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleOrderWatchJob periodically reports in-progress orders that have not
// moved for longer than the configured threshold. The job never mutates
// orders; it exists to surface stuck work to operators through the logs.
type StaleOrderWatchJob struct {
	handler   queries.GetStaleOrdersQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleOrderWatchJob creates a job that checks for stale orders every
// minute. Orders whose current status was entered more than threshold ago
// are reported.
func NewStaleOrderWatchJob(
	handler queries.GetStaleOrdersQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *StaleOrderWatchJob {
	return &StaleOrderWatchJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_order_watch_job"),
	}
}

// Start begins the stale order watch job to run every minute.
func (j *StaleOrderWatchJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, qErr := queries.NewGetStaleOrdersQuery(time.Now().UTC().Add(-j.threshold))
		if qErr != nil {
			j.logger.ErrorContext(ctx, "Stale order watch job failed to build query", "error", qErr)
			return
		}

		staleOrders, hErr := j.handler.Handle(ctx, query)
		if hErr != nil {
			j.logger.ErrorContext(ctx, "Stale order watch job failed", "error", hErr)
			return
		}

		for _, staleOrder := range staleOrders {
			j.logger.WarnContext(ctx, "Order has not moved past its status threshold",
				"orderId", staleOrder.ID.String(),
				"originalOrderId", staleOrder.OriginalOrderID,
				"status", staleOrder.Status.String(),
				"since", staleOrder.CurrentStateTime,
				"assignedTo", staleOrder.AssignedTo,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order watch job started (running every minute)",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the stale order watch job.
func (j *StaleOrderWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order watch job stopped")
}
