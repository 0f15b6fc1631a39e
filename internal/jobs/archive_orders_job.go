package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"geoshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ArchiveHandler archives the orders processed before a cutoff.
type ArchiveHandler interface {
	Handle(ctx context.Context, cmd commands.ArchiveProcessedOrdersCommand) (int, error)
}

// ArchiveOrdersJob archives PROCESSED orders once their download retention
// has passed.
type ArchiveOrdersJob struct {
	handler   ArchiveHandler
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
	now       func() time.Time
}

// NewArchiveOrdersJob creates the job. schedule is a six-field cron
// expression (seconds first).
func NewArchiveOrdersJob(
	handler ArchiveHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *ArchiveOrdersJob {
	return &ArchiveOrdersJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "archive_orders_job"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Start schedules the job. A malformed schedule is reported here rather
// than at the first tick.
func (j *ArchiveOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("invalid archive schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Archive orders job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Run archives once. Failures are logged; the next tick retries.
func (j *ArchiveOrdersJob) Run(ctx context.Context) {
	cmd, err := commands.NewArchiveProcessedOrdersCommand(j.now().Add(-j.retention))
	if err != nil {
		j.logger.ErrorContext(ctx, "Archive orders job failed", "error", err)
		return
	}

	archived, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Archive orders job failed", "error", err)
		return
	}
	if archived > 0 {
		j.logger.InfoContext(ctx, "Orders archived", "count", archived, "before", cmd.Before())
	}
}

// Stop waits for a running archive to finish.
func (j *ArchiveOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Archive orders job stopped")
}
