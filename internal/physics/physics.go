// Package physics provides vector math, collision detection and sampling utilities.
package physics

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Length()
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vec2) float64 {
	return b.Sub(a).LengthSquared()
}

// CirclesOverlap checks if two circles overlap.
// Touching circles (distance == r1+r2) do not overlap.
func CirclesOverlap(a Vec2, r1 float64, b Vec2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(a, b) < minDist*minDist
}
