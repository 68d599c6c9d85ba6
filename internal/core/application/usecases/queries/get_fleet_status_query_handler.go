package queries

import (
	"context"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/ports"
)

// GetFleetStatusQueryHandler reads the fleet in fleet order.
type GetFleetStatusQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetFleetStatusQueryHandler creates a handler for fleet status queries.
func NewGetFleetStatusQueryHandler(uowFactory ports.UnitOfWorkFactory) GetFleetStatusQueryHandler {
	return GetFleetStatusQueryHandler{uowFactory: uowFactory}
}

// Handle returns one read model per drone.
func (h GetFleetStatusQueryHandler) Handle(
	ctx context.Context,
	query GetFleetStatusQuery,
) ([]GetFleetStatusQueryResponse, error) {
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

	drones, err := uow.DroneRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]GetFleetStatusQueryResponse, 0, len(drones))
	for _, d := range drones {
		response = append(response, toFleetStatusResponse(d))
	}

	return response, nil
}

func toFleetStatusResponse(d *drone.Drone) GetFleetStatusQueryResponse {
	return GetFleetStatusQueryResponse{
		ID:                      d.ID(),
		Name:                    d.Name(),
		Status:                  d.Status(),
		Position:                d.Position(),
		BatteryPercent:          d.BatteryPercent(),
		RechargeCyclesRemaining: d.RechargeCyclesRemaining(),
		CapacityKg:              d.CapacityKg(),
		CruiseSpeedKmh:          d.CruiseSpeedKmh(),
		MaxRouteRangeKm:         d.MaxRouteRangeKm(),
	}
}
