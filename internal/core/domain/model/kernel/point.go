package kernel

import (
	"fmt"
	"math"
)

// Point is a coordinate on the delivery plane, in kilometres from the base.
// The zero value is Base.
type Point struct {
	x float64
	y float64
}

// Base is the fixed origin and terminus of every route.
var Base = Point{}

// NewPoint creates a Point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the horizontal coordinate.
func (p Point) X() float64 {
	return p.x
}

// Y returns the vertical coordinate.
func (p Point) Y() float64 {
	return p.y
}

// IsBase reports whether p is the base location.
func (p Point) IsBase() bool {
	return p == Base
}

// Interpolate returns the point at fraction of the straight segment from p to target.
// The fraction is clamped to [0,1], so the result never leaves the segment.
//
// Example:
//
//	mid := kernel.Base.Interpolate(kernel.NewPoint(4, 2), 0.5)
//	// mid is (2, 1)
func (p Point) Interpolate(target Point, fraction float64) Point {
	fraction = math.Max(0, math.Min(1, fraction))
	return Point{
		x: p.x + fraction*(target.x-p.x),
		y: p.y + fraction*(target.y-p.y),
	}
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}
