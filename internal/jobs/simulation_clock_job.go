package jobs

import (
	"context"
	"log/slog"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// TickHandler advances the simulation by one tick.
type TickHandler interface {
	Handle(ctx context.Context, cmd commands.AdvanceSimulationCommand) (services.TickReport, error)
}

// SimulationClockJob drives the flight simulator: every firing advances the
// simulation by a fixed number of minutes.
type SimulationClockJob struct {
	handler  TickHandler
	command  commands.AdvanceSimulationCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSimulationClockJob creates a clock that advances deltaMinutes per firing.
// It fails when deltaMinutes is not a valid tick length.
func NewSimulationClockJob(
	handler TickHandler,
	schedule string,
	deltaMinutes float64,
	logger *slog.Logger,
) (*SimulationClockJob, error) {
	cmd, err := commands.NewAdvanceSimulationCommand(deltaMinutes)
	if err != nil {
		return nil, err
	}

	return &SimulationClockJob{
		handler:  handler,
		command:  cmd,
		schedule: schedule,
		cron:     newCron(),
		logger:   logger.With("component", "simulation_clock_job"),
	}, nil
}

// Run performs a single tick.
func (j *SimulationClockJob) Run(ctx context.Context) {
	report, err := j.handler.Handle(ctx, j.command)
	if err != nil {
		j.logger.ErrorContext(ctx, "Simulation tick failed", "error", err)
		return
	}

	if len(report.Completed) > 0 || len(report.Recharged) > 0 {
		j.logger.InfoContext(ctx, "Simulation advanced",
			"minutes", report.DeltaMinutes,
			"completed", len(report.Completed),
			"recharged", len(report.Recharged),
			"lowBattery", len(report.LowBattery),
		)
	}
}

// Start schedules the clock and starts its cron runner.
func (j *SimulationClockJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Simulation clock started",
		"schedule", j.schedule,
		"minutesPerTick", j.command.DeltaMinutes(),
	)
	return nil
}

// Stop stops the clock and waits for a running tick to finish.
func (j *SimulationClockJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Simulation clock stopped")
}
