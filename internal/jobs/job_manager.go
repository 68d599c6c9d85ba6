package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchJob *DispatchJob
	clockJob    *SimulationClockJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	dispatchHandler DispatchHandler,
	tickHandler TickHandler,
	schedules Schedules,
	logger *slog.Logger,
) (*JobManager, error) {
	clockJob, err := NewSimulationClockJob(tickHandler, schedules.Tick, schedules.TickDeltaMinutes, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation clock: %w", err)
	}

	return &JobManager{
		dispatchJob: NewDispatchJob(dispatchHandler, schedules.Dispatch, logger),
		clockJob:    clockJob,
	}, nil
}

// Schedules configures when the jobs fire.
type Schedules struct {
	Dispatch         string
	Tick             string
	TickDeltaMinutes float64
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch job: %w", err)
	}

	if err := jm.clockJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchJob.Stop()
		return fmt.Errorf("failed to start simulation clock: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.clockJob.Stop()
	jm.dispatchJob.Stop()
}
