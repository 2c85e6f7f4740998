package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"feedo/internal/core/application/usecases/commands"
	"feedo/internal/core/application/usecases/queries"
)

// DispatchSweepJob periodically retries courier assignment for orders that
// stayed Pending after placement, either because no courier was available or
// because the post-placement dispatch attempt failed.
type DispatchSweepJob struct {
	pendingOrdersHandler queries.GetPendingOrdersQueryHandler
	assignHandler        commands.AssignCourierCommandHandler
	cron                 *cron.Cron
	logger               *slog.Logger
}

// NewDispatchSweepJob creates a job that sweeps the dispatch backlog.
// Uses the pending orders read model to find unassigned orders and the
// assignment use case to bind couriers to them.
func NewDispatchSweepJob(
	pendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	assignHandler commands.AssignCourierCommandHandler,
	logger *slog.Logger,
) *DispatchSweepJob {
	return &DispatchSweepJob{
		pendingOrdersHandler: pendingOrdersHandler,
		assignHandler:        assignHandler,
		cron:                 cron.New(cron.WithSeconds()),
		logger:               logger.With("component", "dispatch_sweep_job"),
	}
}

// Start begins the sweep to run every five seconds.
func (j *DispatchSweepJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch sweep job started (running every five seconds)")
	return nil
}

// Stop stops the sweep job.
func (j *DispatchSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch sweep job stopped")
}

// sweep attempts assignment for every order in the dispatch backlog.
// An order that finds no courier stays Pending for the next run; a failed
// attempt is logged and does not stop the sweep.
func (j *DispatchSweepJob) sweep(ctx context.Context) {
	backlog, err := j.pendingOrdersHandler.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch sweep failed to load backlog", "error", err)
		return
	}

	for _, row := range backlog {
		assigned, err := j.assignHandler.TryAssign(ctx, row.ID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Dispatch sweep assignment failed",
				"order_id", row.ID.String(), "error", err)
			continue
		}
		if assigned {
			j.logger.InfoContext(ctx, "Dispatch sweep bound a courier",
				"order_id", row.ID.String())
		}
	}
}
