package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dronedelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DispatchHandler runs one allocation pass.
type DispatchHandler interface {
	Handle(ctx context.Context, cmd commands.DispatchCommand) (commands.DispatchResult, error)
}

// DispatchJob periodically allocates the pending queue to idle drones and
// launches the planned flights.
type DispatchJob struct {
	handler  DispatchHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDispatchJob creates a dispatch job firing on schedule, a cron spec with
// optional seconds field or a descriptor such as "@every 5s".
func NewDispatchJob(handler DispatchHandler, schedule string, logger *slog.Logger) *DispatchJob {
	return &DispatchJob{
		handler:  handler,
		schedule: schedule,
		cron:     newCron(),
		logger:   logger.With("component", "dispatch_job"),
	}
}

// Run performs a single dispatch.
func (j *DispatchJob) Run(ctx context.Context) {
	result, err := j.handler.Handle(ctx, commands.NewDispatchCommand())
	if err != nil {
		// An empty queue is the normal idle state.
		if !errors.Is(err, commands.ErrNoPendingOrders) {
			j.logger.ErrorContext(ctx, "Dispatch job failed", "error", err)
		}
		return
	}

	if result.FlightsStarted > 0 {
		j.logger.InfoContext(ctx, "Flights dispatched",
			"flights", result.FlightsStarted,
			"allocated", result.OrdersAllocated,
			"pending", result.OrdersPending,
		)
	}
}

// Start schedules the job and starts its cron runner.
func (j *DispatchJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running dispatch to finish.
func (j *DispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}

// newCron builds a runner that accepts an optional seconds field and never
// overlaps two runs of the same job.
func newCron() *cron.Cron {
	return cron.New(
		cron.WithParser(cron.NewParser(
			cron.SecondOptional|cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow|cron.Descriptor,
		)),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
}
