package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame loop interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxDeltaTime caps the simulated step in seconds so a stalled clock cannot explode physics
	MaxDeltaTime = 0.033
)

// Event Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)

// Session
const (
	// DefaultDisplayName is used when the player leaves the name empty
	DefaultDisplayName = "Anonymous"

	// MaxDisplayNameLength is the rune limit of stored display names
	MaxDisplayNameLength = 16

	// LeaderboardSize is the number of results kept in the ranking
	LeaderboardSize = 10
)

// Input
const (
	// DiveHoldWindow keeps the dive signal active after the most recent key press or auto-repeat
	// Terminals report no key release, so hold is inferred from repeats
	DiveHoldWindow = 180 * time.Millisecond

	// RestartGuard ignores activation right after game over so a held dive key does not restart
	RestartGuard = 400 * time.Millisecond
)
