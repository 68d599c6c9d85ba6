package queries

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/ports"
)

// GetFlightsInProgressQueryHandler reads the simulator's in-progress set.
type GetFlightsInProgressQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	simulator  ports.Simulator
}

// NewGetFlightsInProgressQueryHandler creates a handler for flight queries.
func NewGetFlightsInProgressQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	simulator ports.Simulator,
) GetFlightsInProgressQueryHandler {
	return GetFlightsInProgressQueryHandler{
		uowFactory: uowFactory,
		simulator:  simulator,
	}
}

// Handle returns the in-progress flights in start order.
func (h GetFlightsInProgressQueryHandler) Handle(
	ctx context.Context,
	query GetFlightsInProgressQuery,
) ([]GetFlightsInProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	flights := h.simulator.FlightsInProgress()
	response := make([]GetFlightsInProgressQueryResponse, 0, len(flights))
	for _, f := range flights {
		orders := f.Orders()
		orderIDs := make([]kernel.UUID, 0, len(orders))
		for _, o := range orders {
			orderIDs = append(orderIDs, o.ID())
		}

		response = append(response, GetFlightsInProgressQueryResponse{
			ID:                    f.ID(),
			DroneID:               f.Drone().ID(),
			DroneName:             f.Drone().Name(),
			OrderIDs:              orderIDs,
			Route:                 f.Route(),
			TotalWeightKg:         f.TotalWeight(),
			TotalDistanceKm:       f.TotalDistanceKm(),
			EstimatedTotalMinutes: f.EstimatedTotalMinutes(),
			ElapsedMinutes:        f.ElapsedMinutes(),
			Position:              f.Position(),
		})
	}

	return response, nil
}
