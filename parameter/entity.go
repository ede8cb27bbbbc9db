package parameter

import "math"

// Hazard (jellyfish)
const (
	HazardRadius = 24.0

	// HazardSpeed is the leftward drift in px/s
	HazardSpeed = 180.0

	// HazardBobRate is the angular rate of the bob phase in rad/s
	HazardBobRate = 2.5

	// HazardBobAmplitude scales the sinusoidal vertical sway in px/s
	HazardBobAmplitude = 18.0

	// HazardForgiveness is subtracted from the combined radii in hazard hit tests
	HazardForgiveness = 2.0
)

// Pickup (pearl)
const (
	PickupRadius = 10.0

	// PickupSpeed is the leftward drift in px/s
	PickupSpeed = 220.0
)

// Spawning
const (
	// SpawnIntervalMs is the accumulated time between spawns
	SpawnIntervalMs = 1100.0

	// SpawnOffsetX places new entities past the trailing (right) edge
	SpawnOffsetX = 40.0

	// SpawnMargin keeps spawns away from the surface and seabed lines
	SpawnMargin = 40.0

	// HazardProbability is the share of spawns that are hazards, the rest are pickups
	HazardProbability = 0.55

	// CullMargin is how far past the left edge an entity must drift before removal
	CullMargin = 20.0
)

// TwoPi is the range of the initial hazard bob phase
const TwoPi = 2 * math.Pi
