package component

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/turtle-dive/parameter"
)

func TestNewPlayerBodySpawnPose(t *testing.T) {
	p := NewPlayerBody()
	if p.Pos[0] != parameter.PlayerSpawnX || p.Pos[1] != parameter.PlayerSpawnY {
		t.Errorf("Expected spawn pose (%f,%f), got (%f,%f)",
			parameter.PlayerSpawnX, parameter.PlayerSpawnY, p.Pos[0], p.Pos[1])
	}
	if p.VY != 0 {
		t.Errorf("Expected zero velocity, got %f", p.VY)
	}
	if p.Top() != parameter.PlayerSpawnY-parameter.PlayerRadius {
		t.Errorf("Unexpected top edge %f", p.Top())
	}
	if p.Bottom() != parameter.PlayerSpawnY+parameter.PlayerRadius {
		t.Errorf("Unexpected bottom edge %f", p.Bottom())
	}
}

func TestPastEdge(t *testing.T) {
	h := Hazard{Pos: mgl64.Vec2{-45, 100}, Radius: 24}
	if !h.PastEdge(-20) {
		t.Error("Hazard with right edge at -21 should be past -20")
	}

	// Exactly on the line counts as past
	p := Pickup{Pos: mgl64.Vec2{-30, 100}, Radius: 10}
	if !p.PastEdge(-20) {
		t.Error("Pickup with right edge at -20 should be past -20")
	}

	p.Pos[0] = -29
	if p.PastEdge(-20) {
		t.Error("Pickup with right edge at -19 should still be live")
	}
}
