package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/ports"
)

// DispatchResult summarises one dispatch.
type DispatchResult struct {
	FlightsStarted  int
	OrdersAllocated int
	OrdersPending   int
}

// DispatchCommandHandler allocates the pending queue to idle drones, keeps
// the leftovers queued and launches the planned flights.
type DispatchCommandHandler struct {
	uowFactory UoWFactory
	dispatcher ports.Dispatcher
	simulator  ports.Simulator
	metrics    ports.MetricsRecorder
}

// NewDispatchCommandHandler creates a handler for dispatch operations.
func NewDispatchCommandHandler(
	uowFactory UoWFactory,
	dispatcher ports.Dispatcher,
	simulator ports.Simulator,
	metrics ports.MetricsRecorder,
) DispatchCommandHandler {
	return DispatchCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		simulator:  simulator,
		metrics:    metrics,
	}
}

// Handle runs one allocation pass and starts the resulting flights.
// Returns ErrNoPendingOrders when the queue is empty.
func (h *DispatchCommandHandler) Handle(ctx context.Context, cmd DispatchCommand) (DispatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DispatchResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	pending, err := orderRepo.GetAllPending(ctx)
	if err != nil {
		return DispatchResult{}, err
	}

	if len(pending) == 0 {
		return DispatchResult{}, ErrNoPendingOrders
	}

	// Allocate moves the chosen drones to Loading and Loading has no way back
	// to Idle, so nothing fallible may run between it and StartFlights except
	// ReplacePending. Leftovers are a subset of pending, which the repository
	// already accepted.
	flights := h.dispatcher.Allocate(pending)
	leftovers := h.dispatcher.PendingOrders()

	if err = orderRepo.ReplacePending(ctx, leftovers); err != nil {
		return DispatchResult{}, err
	}

	started := h.simulator.StartFlights(flights)

	drones, err := uow.DroneRepository().GetAll(ctx)
	if err != nil {
		return DispatchResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DispatchResult{}, err
	}

	result := DispatchResult{
		FlightsStarted:  started,
		OrdersAllocated: len(pending) - len(leftovers),
		OrdersPending:   len(leftovers),
	}

	h.metrics.OrdersAllocated(result.OrdersAllocated)
	h.metrics.FlightsStarted(result.FlightsStarted)
	h.metrics.PendingOrders(result.OrdersPending)
	h.metrics.DronesByStatus(countByStatus(drones))

	return result, nil
}

func countByStatus(drones []*drone.Drone) map[drone.Status]int {
	counts := make(map[drone.Status]int, len(drones))
	for _, d := range drones {
		counts[d.Status()]++
	}
	return counts
}
