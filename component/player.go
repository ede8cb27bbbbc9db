package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/turtle-dive/parameter"
)

// PlayerBody is the single controlled entity of a session
// Only the vertical axis moves; X stays at the spawn column
type PlayerBody struct {
	Pos    mgl64.Vec2
	Radius float64
	// VY is vertical velocity in px/s, positive is downward
	VY float64
}

// NewPlayerBody returns a body at the spawn pose
func NewPlayerBody() PlayerBody {
	return PlayerBody{
		Pos:    mgl64.Vec2{parameter.PlayerSpawnX, parameter.PlayerSpawnY},
		Radius: parameter.PlayerRadius,
	}
}

// Top returns the y of the body's upper edge
func (p *PlayerBody) Top() float64 {
	return p.Pos[1] - p.Radius
}

// Bottom returns the y of the body's lower edge
func (p *PlayerBody) Bottom() float64 {
	return p.Pos[1] + p.Radius
}
