package http

import (
	"time"

	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/services"

	"github.com/google/uuid"
)

// Error is the JSON body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Location is a point on the delivery plane, in kilometres from the base.
type Location struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	WeightKg float64 `json:"weightKg"`
	Priority string  `json:"priority"`
}

// OrderCreated is returned by POST /api/v1/orders.
type OrderCreated struct {
	ID uuid.UUID `json:"id"`
}

// PendingOrder is one element of GET /api/v1/orders/pending.
type PendingOrder struct {
	ID          uuid.UUID `json:"id"`
	Destination Location  `json:"destination"`
	WeightKg    float64   `json:"weightKg"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
	Explanation string    `json:"explanation"`
}

// Drone is one element of GET /api/v1/drones.
type Drone struct {
	ID                      uuid.UUID `json:"id"`
	Name                    string    `json:"name"`
	Status                  string    `json:"status"`
	Position                Location  `json:"position"`
	BatteryPercent          float64   `json:"batteryPercent"`
	RechargeCyclesRemaining int       `json:"rechargeCyclesRemaining"`
	CapacityKg              float64   `json:"capacityKg"`
	CruiseSpeedKmh          float64   `json:"cruiseSpeedKmh"`
	MaxRouteRangeKm         float64   `json:"maxRouteRangeKm"`
}

// Flight is one element of GET /api/v1/flights.
type Flight struct {
	ID                    uuid.UUID   `json:"id"`
	DroneID               uuid.UUID   `json:"droneId"`
	DroneName             string      `json:"droneName"`
	OrderIDs              []uuid.UUID `json:"orderIds"`
	Route                 []Location  `json:"route"`
	TotalWeightKg         float64     `json:"totalWeightKg"`
	TotalDistanceKm       float64     `json:"totalDistanceKm"`
	EstimatedTotalMinutes float64     `json:"estimatedTotalMinutes"`
	ElapsedMinutes        float64     `json:"elapsedMinutes"`
	Position              Location    `json:"position"`
}

// DispatchSummary is returned by POST /api/v1/dispatch.
type DispatchSummary struct {
	FlightsStarted  int `json:"flightsStarted"`
	OrdersAllocated int `json:"ordersAllocated"`
	OrdersPending   int `json:"ordersPending"`
}

// AdvanceSimulation is the optional body of POST /api/v1/simulation/advance.
// A missing delta falls back to the configured tick.
type AdvanceSimulation struct {
	DeltaMinutes *float64 `json:"deltaMinutes"`
}

// TickSummary is returned by POST /api/v1/simulation/advance.
type TickSummary struct {
	DeltaMinutes     float64     `json:"deltaMinutes"`
	CompletedFlights []uuid.UUID `json:"completedFlights"`
	RechargedDrones  []string    `json:"rechargedDrones"`
	LowBatteryDrones []string    `json:"lowBatteryDrones"`
}

func toLocation(p kernel.Point) Location {
	return Location{X: p.X(), Y: p.Y()}
}

func toPendingOrder(o queries.GetPendingOrdersQueryResponse) PendingOrder {
	return PendingOrder{
		ID:          o.ID.Bytes(),
		Destination: toLocation(o.Destination),
		WeightKg:    o.WeightKg,
		Priority:    o.Priority.String(),
		CreatedAt:   o.CreatedAt,
		Explanation: o.Explanation,
	}
}

func toDrone(d queries.GetFleetStatusQueryResponse) Drone {
	return Drone{
		ID:                      d.ID.Bytes(),
		Name:                    d.Name,
		Status:                  d.Status.String(),
		Position:                toLocation(d.Position),
		BatteryPercent:          d.BatteryPercent,
		RechargeCyclesRemaining: d.RechargeCyclesRemaining,
		CapacityKg:              d.CapacityKg,
		CruiseSpeedKmh:          d.CruiseSpeedKmh,
		MaxRouteRangeKm:         d.MaxRouteRangeKm,
	}
}

func toFlight(f queries.GetFlightsInProgressQueryResponse) Flight {
	orderIDs := make([]uuid.UUID, 0, len(f.OrderIDs))
	for _, id := range f.OrderIDs {
		orderIDs = append(orderIDs, id.Bytes())
	}

	route := make([]Location, 0, len(f.Route))
	for _, p := range f.Route {
		route = append(route, toLocation(p))
	}

	return Flight{
		ID:                    f.ID.Bytes(),
		DroneID:               f.DroneID.Bytes(),
		DroneName:             f.DroneName,
		OrderIDs:              orderIDs,
		Route:                 route,
		TotalWeightKg:         f.TotalWeightKg,
		TotalDistanceKm:       f.TotalDistanceKm,
		EstimatedTotalMinutes: f.EstimatedTotalMinutes,
		ElapsedMinutes:        f.ElapsedMinutes,
		Position:              toLocation(f.Position),
	}
}

func toTickSummary(r services.TickReport) TickSummary {
	summary := TickSummary{
		DeltaMinutes:     r.DeltaMinutes,
		CompletedFlights: make([]uuid.UUID, 0, len(r.Completed)),
		RechargedDrones:  make([]string, 0, len(r.Recharged)),
		LowBatteryDrones: make([]string, 0, len(r.LowBattery)),
	}
	for _, f := range r.Completed {
		summary.CompletedFlights = append(summary.CompletedFlights, f.ID().Bytes())
	}
	for _, d := range r.Recharged {
		summary.RechargedDrones = append(summary.RechargedDrones, d.Name())
	}
	for _, d := range r.LowBattery {
		summary.LowBatteryDrones = append(summary.LowBatteryDrones, d.Name())
	}
	return summary
}
