package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/turtle-dive/component"
	"github.com/lixenwraith/turtle-dive/parameter"
)

// TestVelocityClamp verifies |VY| never exceeds MaxSpeed under sustained acceleration
func TestVelocityClamp(t *testing.T) {
	lim := DefaultLimits()
	lim.SeabedY = math.Inf(1) // keep falling without dying
	lim.SurfaceY = math.Inf(-1)

	p := component.NewPlayerBody()
	for i := 0; i < 200; i++ {
		Step(&p, true, parameter.MaxDeltaTime, lim)
		if math.Abs(p.VY) > parameter.MaxSpeed {
			t.Fatalf("Tick %d: |VY| %f exceeds %f", i, p.VY, parameter.MaxSpeed)
		}
	}
	if p.VY != parameter.MaxSpeed {
		t.Errorf("Expected terminal dive velocity %f, got %f", parameter.MaxSpeed, p.VY)
	}

	for i := 0; i < 200; i++ {
		Step(&p, false, parameter.MaxDeltaTime, lim)
		if math.Abs(p.VY) > parameter.MaxSpeed {
			t.Fatalf("Tick %d: |VY| %f exceeds %f", i, p.VY, parameter.MaxSpeed)
		}
	}
	if p.VY != -parameter.MaxSpeed {
		t.Errorf("Expected terminal rise velocity %f, got %f", -parameter.MaxSpeed, p.VY)
	}
}

// TestSurfaceFloor verifies the body is pinned to the surface with no upward velocity
func TestSurfaceFloor(t *testing.T) {
	p := component.NewPlayerBody()
	p.Pos[1] = parameter.SurfaceY + p.Radius + 1
	p.VY = -parameter.MaxSpeed

	died := Step(&p, false, parameter.MaxDeltaTime, DefaultLimits())
	if died {
		t.Fatal("Surface contact must not be fatal")
	}
	if p.Top() != parameter.SurfaceY {
		t.Errorf("Expected top edge %f, got %f", parameter.SurfaceY, p.Top())
	}
	if p.VY < 0 {
		t.Errorf("Expected VY >= 0 after surface clamp, got %f", p.VY)
	}
}

// TestSurfaceKeepsDownwardVelocity verifies only upward velocity is dropped
func TestSurfaceKeepsDownwardVelocity(t *testing.T) {
	p := component.NewPlayerBody()
	p.Pos[1] = parameter.SurfaceY // top edge above the surface
	p.VY = 100

	if !ClampSurface(&p, parameter.SurfaceY) {
		t.Fatal("Expected clamp to apply")
	}
	if p.VY != 100 {
		t.Errorf("Expected downward velocity preserved, got %f", p.VY)
	}
}

// TestSeabedContact verifies the seabed check after integration
func TestSeabedContact(t *testing.T) {
	p := component.NewPlayerBody()
	p.Pos[1] = parameter.SeabedY - p.Radius + 1
	p.VY = 50

	if !Step(&p, true, 0.016, DefaultLimits()) {
		t.Error("Expected seabed contact")
	}

	safe := component.NewPlayerBody()
	if Step(&safe, false, 0.016, DefaultLimits()) {
		t.Error("Spawn pose must not touch the seabed")
	}
}

// TestIntegrateOrder verifies velocity is updated before position
func TestIntegrateOrder(t *testing.T) {
	p := component.NewPlayerBody()
	Integrate(&p, 1000, 0.01, parameter.MaxSpeed)

	if p.VY != 10 {
		t.Errorf("Expected VY 10, got %f", p.VY)
	}
	if want := parameter.PlayerSpawnY + 0.1; math.Abs(p.Pos[1]-want) > 1e-9 {
		t.Errorf("Expected Y %f, got %f", want, p.Pos[1])
	}
}

func TestAcceleration(t *testing.T) {
	if Acceleration(true) != parameter.DiveAccel {
		t.Errorf("Expected dive accel %f", parameter.DiveAccel)
	}
	if Acceleration(false) != parameter.Buoyancy {
		t.Errorf("Expected buoyancy %f", parameter.Buoyancy)
	}
}
