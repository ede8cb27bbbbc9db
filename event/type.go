package event

// EventType represents the type of game event
type EventType int

const (
	// EventEpisodeStart marks entry into playing
	// Trigger: activate from menu or gameover
	// Consumer: AudioSystem | Payload: *EpisodeStartPayload
	EventEpisodeStart EventType = iota + 1

	// EventPickupCollected reports pickups removed by the collision resolver in one tick
	// Trigger: CollisionResolver | Consumer: AudioSystem | Payload: *PickupPayload
	EventPickupCollected

	// EventPlayerDeath reports the terminal tick of an episode
	// Trigger: seabed contact or hazard hit | Consumer: AudioSystem | Payload: *DeathPayload
	EventPlayerDeath

	// EventGameOver carries the final result, emitted once per episode
	// Trigger: gameover entry action | Consumer: leaderboard Recorder | Payload: *GameOverPayload
	EventGameOver

	// EventResetToMenu marks an explicit reset from any state
	// Trigger: reset signal | Consumer: frame loop | Payload: nil
	EventResetToMenu
)

// String returns the event name for logging
func (t EventType) String() string {
	switch t {
	case EventEpisodeStart:
		return "EpisodeStart"
	case EventPickupCollected:
		return "PickupCollected"
	case EventPlayerDeath:
		return "PlayerDeath"
	case EventGameOver:
		return "GameOver"
	case EventResetToMenu:
		return "ResetToMenu"
	default:
		return "Unknown"
	}
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	// Frame is the session frame the event was emitted on
	Frame int64
}
