package event

import (
	"time"

	"github.com/google/uuid"
)

// DeathCause identifies what ended an episode
type DeathCause uint8

const (
	CauseNone DeathCause = iota
	CauseSeabed
	CauseHazard
)

func (c DeathCause) String() string {
	switch c {
	case CauseSeabed:
		return "seabed"
	case CauseHazard:
		return "hazard"
	default:
		return "none"
	}
}

// EpisodeStartPayload identifies a fresh episode
type EpisodeStartPayload struct {
	EpisodeID uuid.UUID
}

// PickupPayload reports collection in one tick
type PickupPayload struct {
	Count int
	Score int
}

// DeathPayload reports the cause of death
type DeathPayload struct {
	Cause DeathCause
}

// GameOverPayload is the result handed to the persistence collaborator
type GameOverPayload struct {
	DisplayName string
	Score       int
	EpisodeID   uuid.UUID
	Cause       DeathCause
	// Duration is simulated time spent playing
	Duration time.Duration
}
