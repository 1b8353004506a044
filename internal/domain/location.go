package domain

import "math"

// Immutable point on the 2D delivery plane.
type Location struct {
	X float64
	Y float64
}

// DistanceTo returns the Euclidean distance between two locations.
func (l Location) DistanceTo(other Location) float64 {
	dx := l.X - other.X
	dy := l.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// IsFinite reports whether both coordinates are finite numbers.
func (l Location) IsFinite() bool {
	return !math.IsNaN(l.X) && !math.IsInf(l.X, 0) && !math.IsNaN(l.Y) && !math.IsInf(l.Y, 0)
}
