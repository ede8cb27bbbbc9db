package parameter

// Tuning groups the balancing constants that may be overridden at startup
// Values outside the ranges accepted by config validation never reach the simulation
type Tuning struct {
	// HazardForgiveness shrinks the hazard hitbox in px
	HazardForgiveness float64

	// HazardProbability is the share of spawns that are hazards in [0,1]
	HazardProbability float64

	// SpawnIntervalMs is the time between spawns in ms
	SpawnIntervalMs float64
}

// DefaultTuning returns the stock balancing values
func DefaultTuning() Tuning {
	return Tuning{
		HazardForgiveness: HazardForgiveness,
		HazardProbability: HazardProbability,
		SpawnIntervalMs:   SpawnIntervalMs,
	}
}
