// Package physics integrates the player's vertical motion between the surface and the seabed
package physics

import (
	"github.com/lixenwraith/turtle-dive/component"
	"github.com/lixenwraith/turtle-dive/parameter"
	"github.com/lixenwraith/turtle-dive/vmath"
)

// Limits describes the vertical band the body moves in
type Limits struct {
	SurfaceY float64
	SeabedY  float64
	MaxSpeed float64
}

// DefaultLimits returns the field's stock band
func DefaultLimits() Limits {
	return Limits{
		SurfaceY: parameter.SurfaceY,
		SeabedY:  parameter.SeabedY,
		MaxSpeed: parameter.MaxSpeed,
	}
}

// Acceleration selects dive or buoyancy
func Acceleration(diving bool) float64 {
	if diving {
		return parameter.DiveAccel
	}
	return parameter.Buoyancy
}

// Integrate applies semi-implicit Euler: velocity first, clamp, then position
func Integrate(p *component.PlayerBody, accel, dt, maxSpeed float64) {
	p.VY = vmath.Clamp(p.VY+accel*dt, -maxSpeed, maxSpeed)
	p.Pos[1] += p.VY * dt
}

// ClampSurface pins the body under the surface and drops residual upward velocity
// The surface stops upward motion, it does not bounce
func ClampSurface(p *component.PlayerBody, surfaceY float64) bool {
	if p.Top() >= surfaceY {
		return false
	}
	p.Pos[1] = surfaceY + p.Radius
	if p.VY < 0 {
		p.VY = 0
	}
	return true
}

// TouchesSeabed reports whether the body's lower edge crossed the seabed line
func TouchesSeabed(p *component.PlayerBody, seabedY float64) bool {
	return p.Bottom() > seabedY
}

// Step runs one physics tick and returns true when the body reached the seabed
func Step(p *component.PlayerBody, diving bool, dt float64, lim Limits) bool {
	Integrate(p, Acceleration(diving), dt, lim.MaxSpeed)
	ClampSurface(p, lim.SurfaceY)
	return TouchesSeabed(p, lim.SeabedY)
}
