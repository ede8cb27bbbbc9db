package engine

import (
	"slices"

	"github.com/google/uuid"

	"github.com/lixenwraith/turtle-dive/component"
)

// Snapshot is a read-only copy of the session for rendering
// Slices are copies; mutating them does not affect the session
type Snapshot struct {
	State     State
	Player    component.PlayerBody
	Hazards   []component.Hazard
	Pickups   []component.Pickup
	Score     int
	Frame     int64
	EpisodeID uuid.UUID
	// Result is the last finished episode, valid when HasResult
	Result    ResultView
	HasResult bool
}

// ResultView is the subset of the final result shown by overlays
type ResultView struct {
	DisplayName string
	Score       int
}

// Snapshot copies the current state
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:     s.machine.Current(),
		Player:    s.player,
		Hazards:   slices.Clone(s.store.Hazards),
		Pickups:   slices.Clone(s.store.Pickups),
		Score:     s.score.Value(),
		Frame:     s.frame,
		EpisodeID: s.episodeID,
		HasResult: s.hasLastResult,
	}
	if s.hasLastResult {
		snap.Result = ResultView{DisplayName: s.lastResult.DisplayName, Score: s.lastResult.Score}
	}
	return snap
}
