package parameter

// Player Body
const (
	// PlayerSpawnX is the fixed horizontal position of the player
	PlayerSpawnX = 140.0

	// PlayerSpawnY is the vertical position the player starts each episode at
	PlayerSpawnY = 280.0

	// PlayerRadius is the collision radius of the player
	PlayerRadius = 20.0
)

// Player Physics (px/s, px/s^2)
const (
	// Buoyancy is the upward acceleration applied while not diving
	Buoyancy = -500.0

	// DiveAccel is the downward acceleration applied while dive is held
	DiveAccel = 900.0

	// MaxSpeed clamps vertical velocity in both directions
	MaxSpeed = 520.0
)
