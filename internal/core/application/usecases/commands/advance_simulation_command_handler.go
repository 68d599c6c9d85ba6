package commands

import (
	"context"

	"dronedelivery/internal/core/domain/services"
	"dronedelivery/internal/core/ports"
)

// AdvanceSimulationCommandHandler runs one simulator tick.
//
// Example:
//
//	handler := NewAdvanceSimulationCommandHandler(uowFactory, simulator, recorder)
//	cmd, _ := NewAdvanceSimulationCommand(5)
//
//	// Typically called periodically by a scheduler
//	report, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("simulation tick failed: %w", err)
//	}
//	fmt.Printf("%d flights completed\n", len(report.Completed))
type AdvanceSimulationCommandHandler struct {
	uowFactory UoWFactory
	simulator  ports.Simulator
	metrics    ports.MetricsRecorder
}

// NewAdvanceSimulationCommandHandler creates a handler for simulation ticks.
func NewAdvanceSimulationCommandHandler(
	uowFactory UoWFactory,
	simulator ports.Simulator,
	metrics ports.MetricsRecorder,
) AdvanceSimulationCommandHandler {
	return AdvanceSimulationCommandHandler{
		uowFactory: uowFactory,
		simulator:  simulator,
		metrics:    metrics,
	}
}

// Handle advances the simulation and returns what changed.
func (h *AdvanceSimulationCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceSimulationCommand,
) (services.TickReport, error) {
	if err := cmd.Validate(); err != nil {
		return services.TickReport{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.TickReport{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	report, err := h.simulator.Advance(cmd.DeltaMinutes())
	if err != nil {
		return services.TickReport{}, err
	}

	drones, err := uow.DroneRepository().GetAll(ctx)
	if err != nil {
		return services.TickReport{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.TickReport{}, err
	}

	h.metrics.FlightsCompleted(len(report.Completed))
	h.metrics.DronesByStatus(countByStatus(drones))

	return report, nil
}
