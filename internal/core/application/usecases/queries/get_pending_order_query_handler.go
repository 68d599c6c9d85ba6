package queries

import (
	"context"

	"dronedelivery/internal/core/ports"
)

// GetPendingOrderQueryHandler reads one order from the pending queue.
type GetPendingOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	dispatcher ports.Dispatcher
}

// NewGetPendingOrderQueryHandler creates a handler for single pending order queries.
func NewGetPendingOrderQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher ports.Dispatcher,
) GetPendingOrderQueryHandler {
	return GetPendingOrderQueryHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle returns the queued order or an ObjectNotFoundError.
func (h GetPendingOrderQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrderQuery,
) (GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, query.ID())
	if err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	return toPendingOrderResponse(o, h.dispatcher), nil
}
