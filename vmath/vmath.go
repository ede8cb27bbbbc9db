// Package vmath provides the float vector helpers and random source used by the simulation
package vmath

import "github.com/go-gl/mathgl/mgl64"

// --- Scalars ---

// Clamp limits v to [lo, hi]; NaN collapses to lo
func Clamp(v, lo, hi float64) float64 {
	if v != v || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Vectors ---

// Vec2 builds a 2D point
func Vec2(x, y float64) mgl64.Vec2 {
	return mgl64.Vec2{x, y}
}

// DistSq returns the squared distance between a and b
func DistSq(a, b mgl64.Vec2) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// CirclesOverlap reports whether two circles overlap strictly, with slack subtracted from the combined radius
// Touching circles do not overlap
func CirclesOverlap(a mgl64.Vec2, ra float64, b mgl64.Vec2, rb float64, slack float64) bool {
	r := ra + rb - slack
	return DistSq(a, b) < r*r
}
