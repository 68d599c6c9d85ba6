package kernel

import "math"

// DistanceCalculator measures the distance in kilometres between two points.
// Implementations must be symmetric and return 0 for identical points.
type DistanceCalculator interface {
	Distance(a, b Point) float64
}

// EuclideanDistance is the straight-line metric used by the reference model.
type EuclideanDistance struct{}

// Distance returns sqrt(dx² + dy²).
func (EuclideanDistance) Distance(a, b Point) float64 {
	return math.Hypot(b.x-a.x, b.y-a.y)
}

// RouteDistance sums the segment lengths over route and adds a closing
// segment back to Base when the route does not already end there.
func RouteDistance(calc DistanceCalculator, route []Point) float64 {
	if len(route) == 0 {
		return 0
	}

	total := 0.0
	for i := 1; i < len(route); i++ {
		total += calc.Distance(route[i-1], route[i])
	}

	if last := route[len(route)-1]; !last.IsBase() {
		total += calc.Distance(last, Base)
	}

	return total
}
