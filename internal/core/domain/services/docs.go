// Package services provides the domain services that coordinate drones, orders
// and flights: the allocation engine and the tick-based flight simulator.
//
// The package includes:
//   - FleetManager: the allocation strategy interface
//   - GreedyFleetManager: single-pass greedy packing of orders into flights
//   - Diagnosis: why a leftover order could not be allocated
//   - FlightSimulator: starts flights and advances them tick by tick
//
// Both services work on the same fleet slice. The fleet owns every drone; the
// manager moves idle drones to Loading and the simulator drives the rest of
// the lifecycle. Neither service is safe for concurrent use; callers serialise
// access.
package services
