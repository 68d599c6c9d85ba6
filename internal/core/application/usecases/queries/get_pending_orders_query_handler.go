package queries

import (
	"context"

	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/ports"
)

// GetPendingOrdersQueryHandler reads the pending queue and asks the
// dispatcher to explain each leftover.
//
// Example:
//
//	handler := NewGetPendingOrdersQueryHandler(uowFactory, manager)
//	orders, err := handler.Handle(ctx, NewGetPendingOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	for _, o := range orders {
//	    fmt.Println(o.ID, o.Explanation)
//	}
type GetPendingOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	dispatcher ports.Dispatcher
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order queries.
func NewGetPendingOrdersQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher ports.Dispatcher,
) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle returns the pending orders in arrival order.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
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

	pending, err := uow.OrderRepository().GetAllPending(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]GetPendingOrdersQueryResponse, 0, len(pending))
	for _, o := range pending {
		response = append(response, toPendingOrderResponse(o, h.dispatcher))
	}

	return response, nil
}

func toPendingOrderResponse(o *order.Order, dispatcher ports.Dispatcher) GetPendingOrdersQueryResponse {
	return GetPendingOrdersQueryResponse{
		ID:          o.ID(),
		Destination: o.Destination(),
		WeightKg:    o.Weight(),
		Priority:    o.Priority(),
		CreatedAt:   o.CreatedAt(),
		Explanation: dispatcher.ExplainFailure(o),
	}
}
