package cmd

import (
	"fmt"
	"log/slog"

	httpin "dronedelivery/internal/adapters/in/http"
	"dronedelivery/internal/adapters/out/memory"
	"dronedelivery/internal/adapters/out/memory/dronerepo"
	"dronedelivery/internal/adapters/out/memory/orderrepo"
	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/services"
	"dronedelivery/internal/jobs"
	"dronedelivery/internal/metrics"
)

type CompositionRoot struct {
	configs    Config
	logger     *slog.Logger
	fleet      []*drone.Drone
	uowFactory *memory.UnitOfWorkFactory
	manager    *services.GreedyFleetManager
	simulator  *services.FlightSimulator
	metrics    *metrics.Registry
}

// NewCompositionRoot builds the fleet and the engine from configs.
func NewCompositionRoot(configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	fleet, err := buildFleet(configs.Fleet)
	if err != nil {
		return nil, err
	}

	manager, err := services.NewGreedyFleetManager(
		fleet,
		kernel.EuclideanDistance{},
		services.WithManagerLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	simulator, err := services.NewFlightSimulator(
		fleet,
		services.WithLowBatteryThreshold(configs.LowBatteryThreshold),
		services.WithRechargeCycles(configs.RechargeCycles),
		services.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		configs: configs,
		logger:  logger,
		fleet:   fleet,
		uowFactory: memory.NewUnitOfWorkFactory(
			orderrepo.NewInMemoryOrderRepository(),
			dronerepo.NewInMemoryDroneRepository(fleet),
		),
		manager:   manager,
		simulator: simulator,
		metrics:   metrics.NewRegistry(),
	}, nil
}

func buildFleet(configs []DroneConfig) ([]*drone.Drone, error) {
	fleet := make([]*drone.Drone, 0, len(configs))
	for _, dc := range configs {
		d, err := drone.NewDrone(dc.Name, dc.CapacityKg, dc.CruiseSpeedKmh, drone.WithMaxRouteRange(dc.MaxRouteRangeKm))
		if err != nil {
			return nil, fmt.Errorf("drone %q: %w", dc.Name, err)
		}
		fleet = append(fleet, d)
	}
	return fleet, nil
}

func (c *CompositionRoot) Metrics() *metrics.Registry {
	return c.metrics
}

func (c *CompositionRoot) Fleet() []*drone.Drone {
	return c.fleet
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.metrics)
}

func (c *CompositionRoot) CreateDispatchCommandHandler() commands.DispatchCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchCommandHandler(f, c.manager, c.simulator, c.metrics)
}

func (c *CompositionRoot) CreateAdvanceSimulationCommandHandler() commands.AdvanceSimulationCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceSimulationCommandHandler(f, c.simulator, c.metrics)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.uowFactory, c.manager)
}

func (c *CompositionRoot) CreateGetPendingOrderQueryHandler() queries.GetPendingOrderQueryHandler {
	return queries.NewGetPendingOrderQueryHandler(c.uowFactory, c.manager)
}

func (c *CompositionRoot) CreateGetDroneQueryHandler() queries.GetDroneQueryHandler {
	return queries.NewGetDroneQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetFleetStatusQueryHandler() queries.GetFleetStatusQueryHandler {
	return queries.NewGetFleetStatusQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetFlightsInProgressQueryHandler() queries.GetFlightsInProgressQueryHandler {
	return queries.NewGetFlightsInProgressQueryHandler(c.uowFactory, c.simulator)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateDispatchCommandHandler(),
		c.CreateAdvanceSimulationCommandHandler(),
		c.CreateGetPendingOrdersQueryHandler(),
		c.CreateGetPendingOrderQueryHandler(),
		c.CreateGetFleetStatusQueryHandler(),
		c.CreateGetDroneQueryHandler(),
		c.CreateGetFlightsInProgressQueryHandler(),
		c.configs.TickDeltaMinutes,
		c.metrics.Handler(),
	)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	dispatchHandler := c.CreateDispatchCommandHandler()
	advanceHandler := c.CreateAdvanceSimulationCommandHandler()

	return jobs.NewJobManager(&dispatchHandler, &advanceHandler, jobs.Schedules{
		Dispatch:         c.configs.DispatchSchedule,
		Tick:             c.configs.TickSchedule,
		TickDeltaMinutes: c.configs.TickDeltaMinutes,
	}, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
