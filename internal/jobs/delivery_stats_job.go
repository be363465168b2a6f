package jobs

import (
	"context"
	"log/slog"

	"deliveries/internal/core/application/usecases/queries"
	"deliveries/internal/core/domain/model/delivery"

	"github.com/robfig/cron/v3"
)

// DeliveryStatsJob periodically logs the number of deliveries per derived
// lifecycle state. The job is read-only: Expired in particular is a read-time
// classification and is never written back.
type DeliveryStatsJob struct {
	handler queries.GetAllDeliveriesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryStatsJob creates a job reporting delivery lifecycle statistics
// once a minute.
func NewDeliveryStatsJob(handler queries.GetAllDeliveriesQueryHandler, logger *slog.Logger) *DeliveryStatsJob {
	return &DeliveryStatsJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "delivery_stats_job"),
	}
}

// Start begins the stats job to run every minute.
func (j *DeliveryStatsJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		deliveries, err := j.handler.Handle(ctx, queries.NewGetAllDeliveriesQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery stats job failed", "error", err)
			return
		}

		counts := countStates(deliveries)
		j.logger.InfoContext(ctx, "Delivery lifecycle stats",
			"total", len(deliveries),
			"created", counts[delivery.Created],
			"approved", counts[delivery.Approved],
			"completed", counts[delivery.Completed],
			"cancelled", counts[delivery.Cancelled],
			"expired", counts[delivery.Expired],
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery stats job started (running every minute)")
	return nil
}

// Stop stops the stats job.
func (j *DeliveryStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery stats job stopped")
}

// countStates tallies deliveries by derived state.
func countStates(deliveries []queries.GetAllDeliveriesQueryResponse) map[delivery.State]int {
	counts := make(map[delivery.State]int, len(deliveries))
	for _, item := range deliveries {
		counts[item.State]++
	}
	return counts
}
