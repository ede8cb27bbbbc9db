package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/turtle-dive/component"
	"github.com/lixenwraith/turtle-dive/parameter"
)

// scriptedRand replays a fixed sequence of draws, repeating the last one when exhausted
type scriptedRand struct {
	draws []float64
	pos   int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.draws) == 0 {
		return 0
	}
	if r.pos >= len(r.draws) {
		return r.draws[len(r.draws)-1]
	}
	v := r.draws[r.pos]
	r.pos++
	return v
}

func newTestStore(draws ...float64) *EntityStore {
	return NewEntityStore(&scriptedRand{draws: draws}, parameter.DefaultTuning())
}

func hazardAt(x, y float64) component.Hazard {
	return component.Hazard{Pos: mgl64.Vec2{x, y}, Radius: parameter.HazardRadius}
}

func pickupAt(x, y float64) component.Pickup {
	return component.Pickup{Pos: mgl64.Vec2{x, y}, Radius: parameter.PickupRadius}
}
