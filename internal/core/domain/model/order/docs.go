// Package order provides the immutable delivery request of the drone delivery system.
//
// The package includes:
//   - Order: a delivery request with destination, weight, priority and creation time
//   - Priority: the closed Low/Medium/High scale used to rank pending orders
//
// Key business rules:
//   - Orders must have a strictly positive weight and a valid priority
//   - Orders are never mutated after construction
//   - Higher priorities compare greater, so allocation can sort descending
package order
