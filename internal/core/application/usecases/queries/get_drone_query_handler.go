package queries

import (
	"context"

	"dronedelivery/internal/core/ports"
)

// GetDroneQueryHandler reads a single drone of the fleet.
type GetDroneQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetDroneQueryHandler creates a handler for single drone queries.
func NewGetDroneQueryHandler(uowFactory ports.UnitOfWorkFactory) GetDroneQueryHandler {
	return GetDroneQueryHandler{uowFactory: uowFactory}
}

// Handle returns the drone or an ObjectNotFoundError.
func (h GetDroneQueryHandler) Handle(ctx context.Context, query GetDroneQuery) (GetFleetStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFleetStatusQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetFleetStatusQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DroneRepository().Get(ctx, query.ID())
	if err != nil {
		return GetFleetStatusQueryResponse{}, err
	}

	return toFleetStatusResponse(d), nil
}
