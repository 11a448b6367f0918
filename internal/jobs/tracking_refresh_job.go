package jobs

import (
	"context"
	"log/slog"

	"printshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TrackingRefreshJob polls the carrier for shipped orders and records
// confirmed deliveries. Runs every five minutes; carrier tracking data does
// not move faster than that.
type TrackingRefreshJob struct {
	handler commands.RefreshTrackingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTrackingRefreshJob creates a job that refreshes shipment tracking
// through RefreshTrackingCommandHandler.
func NewTrackingRefreshJob(handler commands.RefreshTrackingCommandHandler, logger *slog.Logger) *TrackingRefreshJob {
	return &TrackingRefreshJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "tracking_refresh_job"),
	}
}

// Start begins the tracking refresh job on a five minute schedule.
func (j *TrackingRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRefreshTrackingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Tracking refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking refresh job started (running every five minutes)")
	return nil
}

// Stop stops the tracking refresh job.
func (j *TrackingRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking refresh job stopped")
}
