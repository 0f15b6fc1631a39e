package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	archiveOrdersJob *ArchiveOrdersJob
}

// ArchiveSettings configures the archive job.
type ArchiveSettings struct {
	Schedule  string
	Retention time.Duration
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(archiveHandler ArchiveHandler, archive ArchiveSettings, logger *slog.Logger) *JobManager {
	return &JobManager{
		archiveOrdersJob: NewArchiveOrdersJob(archiveHandler, archive.Schedule, archive.Retention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.archiveOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start archive orders job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.archiveOrdersJob.Stop()
}
