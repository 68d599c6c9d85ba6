// Package http exposes the drone delivery use cases over a JSON API served by echo.
package http

import (
	"errors"
	"io"
	"net/http"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server adapts HTTP requests to the application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	dispatchHandler    commands.DispatchCommandHandler
	advanceHandler     commands.AdvanceSimulationCommandHandler

	// Query handlers
	getPendingOrdersHandler     queries.GetPendingOrdersQueryHandler
	getPendingOrderHandler      queries.GetPendingOrderQueryHandler
	getFleetStatusHandler       queries.GetFleetStatusQueryHandler
	getDroneHandler             queries.GetDroneQueryHandler
	getFlightsInProgressHandler queries.GetFlightsInProgressQueryHandler

	defaultDeltaMinutes float64
	metricsHandler      http.Handler
}

// NewServer creates a new HTTP server with the required command and query handlers.
// defaultDeltaMinutes is used when an advance request carries no delta.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	dispatchHandler commands.DispatchCommandHandler,
	advanceHandler commands.AdvanceSimulationCommandHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getPendingOrderHandler queries.GetPendingOrderQueryHandler,
	getFleetStatusHandler queries.GetFleetStatusQueryHandler,
	getDroneHandler queries.GetDroneQueryHandler,
	getFlightsInProgressHandler queries.GetFlightsInProgressQueryHandler,
	defaultDeltaMinutes float64,
	metricsHandler http.Handler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		dispatchHandler:             dispatchHandler,
		advanceHandler:              advanceHandler,
		getPendingOrdersHandler:     getPendingOrdersHandler,
		getPendingOrderHandler:      getPendingOrderHandler,
		getFleetStatusHandler:       getFleetStatusHandler,
		getDroneHandler:             getDroneHandler,
		getFlightsInProgressHandler: getFlightsInProgressHandler,
		defaultDeltaMinutes:         defaultDeltaMinutes,
		metricsHandler:              metricsHandler,
	}
}

// RegisterRoutes mounts every endpoint on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	if s.metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(s.metricsHandler))
	}

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.GET("/orders/:id", s.GetPendingOrder)
	api.POST("/dispatch", s.Dispatch)
	api.POST("/simulation/advance", s.AdvanceSimulation)
	api.GET("/drones", s.GetDrones)
	api.GET("/drones/:id", s.GetDrone)
	api.GET("/flights", s.GetFlights)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - queues a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request NewOrder
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	priority, err := order.ParsePriority(request.Priority)
	if err != nil {
		return writeError(ctx, err, "Invalid priority")
	}

	cmd, err := commands.NewCreateOrderCommand(request.X, request.Y, request.WeightKg, priority)
	if err != nil {
		return writeError(ctx, err, "Invalid order")
	}

	id, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: id.Bytes()})
}

// GetPendingOrders handles GET /api/v1/orders/pending - lists the queue with
// the reason each order is still waiting.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	pending, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve pending orders")
	}

	response := make([]PendingOrder, 0, len(pending))
	for _, o := range pending {
		response = append(response, toPendingOrder(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingOrder handles GET /api/v1/orders/:id - reads one queued order.
// Orders already placed on a flight answer 404.
func (s *Server) GetPendingOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return invalidID(ctx)
	}

	query, err := queries.NewGetPendingOrderQuery(id)
	if err != nil {
		return writeError(ctx, err, "Invalid order id")
	}

	o, err := s.getPendingOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toPendingOrder(o))
}

// Dispatch handles POST /api/v1/dispatch - allocates the queue and launches flights.
func (s *Server) Dispatch(ctx echo.Context) error {
	result, err := s.dispatchHandler.Handle(ctx.Request().Context(), commands.NewDispatchCommand())
	if err != nil {
		return writeError(ctx, err, "Failed to dispatch")
	}

	return ctx.JSON(http.StatusOK, DispatchSummary{
		FlightsStarted:  result.FlightsStarted,
		OrdersAllocated: result.OrdersAllocated,
		OrdersPending:   result.OrdersPending,
	})
}

// AdvanceSimulation handles POST /api/v1/simulation/advance - runs one tick.
func (s *Server) AdvanceSimulation(ctx echo.Context) error {
	var request AdvanceSimulation
	if err := ctx.Bind(&request); err != nil && !errors.Is(err, io.EOF) {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	delta := s.defaultDeltaMinutes
	if request.DeltaMinutes != nil {
		delta = *request.DeltaMinutes
	}

	cmd, err := commands.NewAdvanceSimulationCommand(delta)
	if err != nil {
		return writeError(ctx, err, "Invalid delta")
	}

	report, err := s.advanceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to advance simulation")
	}

	return ctx.JSON(http.StatusOK, toTickSummary(report))
}

// GetDrones handles GET /api/v1/drones - reports the state of every drone.
func (s *Server) GetDrones(ctx echo.Context) error {
	drones, err := s.getFleetStatusHandler.Handle(ctx.Request().Context(), queries.NewGetFleetStatusQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve drones")
	}

	response := make([]Drone, 0, len(drones))
	for _, d := range drones {
		response = append(response, toDrone(d))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDrone handles GET /api/v1/drones/:id - reports the state of one drone.
func (s *Server) GetDrone(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return invalidID(ctx)
	}

	query, err := queries.NewGetDroneQuery(id)
	if err != nil {
		return writeError(ctx, err, "Invalid drone id")
	}

	d, err := s.getDroneHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve drone")
	}

	return ctx.JSON(http.StatusOK, toDrone(d))
}

// GetFlights handles GET /api/v1/flights - lists the flights in progress.
func (s *Server) GetFlights(ctx echo.Context) error {
	flights, err := s.getFlightsInProgressHandler.Handle(ctx.Request().Context(), queries.NewGetFlightsInProgressQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve flights")
	}

	response := make([]Flight, 0, len(flights))
	for _, f := range flights {
		response = append(response, toFlight(f))
	}

	return ctx.JSON(http.StatusOK, response)
}
