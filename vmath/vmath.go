// Package vmath provides the small amount of float geometry the duel needs
package vmath

import "math"

// Point is a position in field units
type Point struct {
	X, Y float64
}

// Distance returns the euclidean distance between two points
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

// DistanceSq returns squared distance without sqrt
func DistanceSq(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

// CirclesOverlap reports whether two circles intersect (strict: touching is not overlap)
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	sum := ar + br
	return DistanceSq(ax, ay, bx, by) < sum*sum
}

// PointInCircle reports whether the point lies strictly inside the circle
func PointInCircle(px, py, cx, cy, r float64) bool {
	return DistanceSq(px, py, cx, cy) < r*r
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
