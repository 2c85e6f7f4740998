package jobs

import (
	"fmt"
	"log/slog"

	"feedo/internal/core/application/usecases/commands"
	"feedo/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchSweepJob *DispatchSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution.
func NewJobManager(
	pendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	assignHandler commands.AssignCourierCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchSweepJob: NewDispatchSweepJob(pendingOrdersHandler, assignHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dispatchSweepJob.Stop()
}
