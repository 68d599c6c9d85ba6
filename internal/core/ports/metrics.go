package ports

import "dronedelivery/internal/core/domain/model/drone"

// MetricsRecorder receives counters and gauges from the use cases.
// Implementations must be safe for concurrent use.
type MetricsRecorder interface {
	OrdersCreated(n int)
	OrdersAllocated(n int)
	FlightsStarted(n int)
	FlightsCompleted(n int)
	PendingOrders(n int)
	DronesByStatus(counts map[drone.Status]int)
}
