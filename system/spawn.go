package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/turtle-dive/component"
	"github.com/lixenwraith/turtle-dive/parameter"
)

// RandomSource supplies uniform draws in [0, 1)
// Tests inject a scripted sequence; the game uses vmath.FastRand
type RandomSource interface {
	Float64() float64
}

// EntityStore owns the drifting entities of a session in spawn order
// Order is stable so culling is deterministic; entities carry no identity beyond index
type EntityStore struct {
	Hazards []component.Hazard
	Pickups []component.Pickup

	accumulator float64 // ms since last spawn
	rng         RandomSource
	tuning      parameter.Tuning
}

// NewEntityStore creates an empty store drawing from rng
func NewEntityStore(rng RandomSource, tuning parameter.Tuning) *EntityStore {
	return &EntityStore{
		Hazards: make([]component.Hazard, 0, 16),
		Pickups: make([]component.Pickup, 0, 16),
		rng:     rng,
		tuning:  tuning,
	}
}

// Reset clears both sequences and the spawn accumulator
func (s *EntityStore) Reset() {
	clear(s.Hazards)
	clear(s.Pickups)
	s.Hazards = s.Hazards[:0]
	s.Pickups = s.Pickups[:0]
	s.accumulator = 0
}

// Accumulator returns ms accumulated toward the next spawn
func (s *EntityStore) Accumulator() float64 {
	return s.accumulator
}

// Len returns the total count of live entities
func (s *EntityStore) Len() int {
	return len(s.Hazards) + len(s.Pickups)
}

// Update runs the store's part of a tick: spawn, then advance and cull
func (s *EntityStore) Update(dt float64) {
	if s.Accumulate(dt) {
		s.Spawn()
	}
	s.Advance(dt)
	s.Cull()
}

// Accumulate adds dt seconds to the accumulator and reports whether a spawn is due
// At most one spawn per tick; the remainder is discarded on spawn
func (s *EntityStore) Accumulate(dt float64) bool {
	s.accumulator += dt * 1000
	if s.accumulator >= s.tuning.SpawnIntervalMs {
		s.accumulator = 0
		return true
	}
	return false
}

// Spawn adds one entity at the trailing edge in the navigable band
// Draw order: vertical position, kind, then hazard phase
func (s *EntityStore) Spawn() {
	band := parameter.SeabedY - parameter.SurfaceY - 2*parameter.SpawnMargin
	y := math.Floor(parameter.SurfaceY + parameter.SpawnMargin + s.rng.Float64()*band)
	pos := mgl64.Vec2{parameter.FieldWidth + parameter.SpawnOffsetX, y}

	if s.rng.Float64() < s.tuning.HazardProbability {
		s.Hazards = append(s.Hazards, component.Hazard{
			Pos:    pos,
			Radius: parameter.HazardRadius,
			Phase:  s.rng.Float64() * parameter.TwoPi,
		})
		return
	}

	s.Pickups = append(s.Pickups, component.Pickup{
		Pos:    pos,
		Radius: parameter.PickupRadius,
	})
}

// Advance drifts every entity left; hazards also bob vertically
func (s *EntityStore) Advance(dt float64) {
	for i := range s.Hazards {
		h := &s.Hazards[i]
		h.Pos[0] -= parameter.HazardSpeed * dt
		h.Phase += parameter.HazardBobRate * dt
		h.Pos[1] += math.Sin(h.Phase) * parameter.HazardBobAmplitude * dt
	}
	for i := range s.Pickups {
		s.Pickups[i].Pos[0] -= parameter.PickupSpeed * dt
	}
}
