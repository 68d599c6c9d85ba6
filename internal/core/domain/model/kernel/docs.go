// Package kernel provides core domain primitives shared by the drone delivery model.
//
// The package includes:
//   - Point: an immutable 2-D coordinate on the delivery plane, with Base at (0,0)
//   - DistanceCalculator: a pluggable metric between points (EuclideanDistance by default)
//   - UUID: a value object for unique identifiers of orders, drones and flights
//
// Values in this package are immutable and safe to copy.
package kernel
