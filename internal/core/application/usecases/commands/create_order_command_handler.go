package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/ports"
)

// CreateOrderCommandHandler builds the domain order and appends it to the
// pending queue, where it waits for the next dispatch.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, recorder)
//	cmd, _ := NewCreateOrderCommand(3, 4, 2, order.High)
//
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	metrics    ports.MetricsRecorder
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, metrics ports.MetricsRecorder) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		metrics:    metrics,
	}
}

// Handle queues the order and returns its identifier.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	o, err := order.NewOrder(cmd.Destination(), cmd.Weight(), cmd.Priority())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	pending, err := orderRepo.GetAllPending(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.metrics.OrdersCreated(1)
	h.metrics.PendingOrders(len(pending))

	return o.ID(), nil
}
