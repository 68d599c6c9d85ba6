// Package flight provides the Flight aggregate: a planned out-and-back route
// for one drone carrying one or more orders.
//
// A Flight starts empty at the base. Orders are appended in insertion order;
// the route is never reordered. Each accepted order extends the route by its
// destination and the distance is recomputed with a closing leg back to base.
//
// Key business rules:
//   - Total weight always equals the sum of the carried order weights
//   - Total weight never exceeds the drone capacity
//   - Route distance never exceeds the drone's effective range at the total weight
//   - A rejected order leaves the flight unchanged
//
// Time model:
//
//	estimatedTotalMinutes = totalDistanceKm / cruiseSpeedKmh × TimeScale
//
// TimeScale is a simulation speed-up factor; the resulting unit is simulation
// minutes, not wall-clock minutes.
package flight
