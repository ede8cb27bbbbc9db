package component

import "github.com/go-gl/mathgl/mgl64"

// Hazard is a drifting obstacle, contact ends the episode
type Hazard struct {
	Pos    mgl64.Vec2
	Radius float64
	// Phase drives the vertical sway in radians
	Phase float64
}

// Pickup is a drifting collectible, contact scores one point
type Pickup struct {
	Pos    mgl64.Vec2
	Radius float64
}

// trailing reports whether the circle's right edge is at or left of limit
func trailing(pos mgl64.Vec2, radius, limit float64) bool {
	return pos[0]+radius <= limit
}

// PastEdge reports whether the hazard drifted beyond the cull line at x = limit
func (h *Hazard) PastEdge(limit float64) bool {
	return trailing(h.Pos, h.Radius, limit)
}

// PastEdge reports whether the pickup drifted beyond the cull line at x = limit
func (p *Pickup) PastEdge(limit float64) bool {
	return trailing(p.Pos, p.Radius, limit)
}
