package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/turtle-dive/component"
	"github.com/lixenwraith/turtle-dive/event"
	"github.com/lixenwraith/turtle-dive/parameter"
	"github.com/lixenwraith/turtle-dive/physics"
	"github.com/lixenwraith/turtle-dive/system"
	"github.com/lixenwraith/turtle-dive/vmath"
)

// Input is the reduced input for one tick
type Input struct {
	// Activate is edge-triggered: true only on the tick the start input arrived
	Activate bool
	// HoldDive is level-triggered: true while dive is held
	HoldDive bool
}

// Options configures a new session
type Options struct {
	// Rand supplies spawn draws; nil uses a time-seeded FastRand
	Rand system.RandomSource
	// Tuning holds the balancing values; zero value uses parameter.DefaultTuning
	Tuning parameter.Tuning
	// DisplayName is reported with the final result
	DisplayName string
	// Queue receives lifecycle events; nil creates a private queue
	Queue *event.EventQueue
}

// Session is the single owner of all simulation state
// Not safe for concurrent use: one goroutine ticks and reads it
type Session struct {
	machine  *Machine
	player   component.PlayerBody
	store    *system.EntityStore
	resolver *system.CollisionResolver
	limits   physics.Limits
	score    Score
	queue    *event.EventQueue

	displayName string
	episodeID   uuid.UUID
	frame       int64
	playTime    time.Duration
	cause       event.DeathCause

	lastResult    event.GameOverPayload
	hasLastResult bool
}

// NewSession creates a session in the menu state with a canonical empty world
func NewSession(opts Options) *Session {
	tuning := opts.Tuning
	if tuning == (parameter.Tuning{}) {
		tuning = parameter.DefaultTuning()
	}
	rng := opts.Rand
	if rng == nil {
		rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	queue := opts.Queue
	if queue == nil {
		queue = event.NewEventQueue()
	}

	s := &Session{
		machine:     NewMachine(),
		player:      component.NewPlayerBody(),
		store:       system.NewEntityStore(rng, tuning),
		resolver:    system.NewCollisionResolver(tuning.HazardForgiveness),
		limits:      physics.DefaultLimits(),
		queue:       queue,
		displayName: opts.DisplayName,
	}

	s.machine.OnEnter(StatePlaying, s.enterPlaying)
	s.machine.OnEnter(StateGameOver, s.enterGameOver)
	s.machine.OnEnter(StateMenu, s.enterMenu)

	return s
}

// ===== LIFECYCLE =====

// Activate starts a new episode from menu or gameover; ignored while playing
func (s *Session) Activate() bool {
	return s.machine.Fire(TriggerActivate)
}

// ResetToMenu discards the current episode from any state
func (s *Session) ResetToMenu() {
	s.machine.Fire(TriggerReset)
}

// resetWorld restores the canonical world: spawn pose, no entities, zero score and accumulator
func (s *Session) resetWorld() {
	s.player = component.NewPlayerBody()
	s.store.Reset()
	s.score.Reset()
	s.playTime = 0
	s.cause = event.CauseNone
}

func (s *Session) enterPlaying(State) {
	s.resetWorld()
	s.episodeID = uuid.New()
	s.emit(event.EventEpisodeStart, &event.EpisodeStartPayload{EpisodeID: s.episodeID})
}

func (s *Session) enterGameOver(State) {
	s.lastResult = event.GameOverPayload{
		DisplayName: s.displayName,
		Score:       s.score.Value(),
		EpisodeID:   s.episodeID,
		Cause:       s.cause,
		Duration:    s.playTime,
	}
	s.hasLastResult = true
	result := s.lastResult
	s.emit(event.EventGameOver, &result)
}

func (s *Session) enterMenu(State) {
	s.resetWorld()
	s.episodeID = uuid.Nil
	s.emit(event.EventResetToMenu, nil)
}

func (s *Session) die(cause event.DeathCause) {
	s.cause = cause
	s.emit(event.EventPlayerDeath, &event.DeathPayload{Cause: cause})
	s.machine.Fire(TriggerDeath)
}

func (s *Session) emit(t event.EventType, payload any) {
	s.queue.Push(event.GameEvent{Type: t, Payload: payload, Frame: s.frame})
}

// ===== TICK =====

// Tick advances the session by dt seconds
// Order: activation, spawn, advance/cull, physics, seabed check, collisions, score
// Outside playing the world is frozen and only activation is processed
func (s *Session) Tick(in Input, dt float64) {
	s.frame++
	dt = ClampDelta(dt)

	if in.Activate {
		s.Activate()
	}
	if s.machine.Current() != StatePlaying {
		return
	}

	s.playTime += time.Duration(dt * float64(time.Second))

	s.store.Update(dt)

	if physics.Step(&s.player, in.HoldDive, dt, s.limits) {
		s.die(event.CauseSeabed)
		return
	}

	res := s.resolver.Resolve(&s.player, s.store)
	if res.Hit {
		s.die(event.CauseHazard)
		return
	}
	if res.Collected > 0 {
		s.score.Add(res.Collected)
		s.emit(event.EventPickupCollected, &event.PickupPayload{
			Count: res.Collected,
			Score: s.score.Value(),
		})
	}
}

// ===== ACCESSORS =====

// State returns the lifecycle state
func (s *Session) State() State {
	return s.machine.Current()
}

// Score returns the running pickup count
func (s *Session) Score() int {
	return s.score.Value()
}

// SpawnAccumulator returns ms accumulated toward the next spawn
func (s *Session) SpawnAccumulator() float64 {
	return s.store.Accumulator()
}

// Player returns a copy of the player body
func (s *Session) Player() component.PlayerBody {
	return s.player
}

// Store exposes the entity store for collaborators that seed scenarios
func (s *Session) Store() *system.EntityStore {
	return s.store
}

// PlacePlayer overrides the player's vertical position and velocity
func (s *Session) PlacePlayer(y, vy float64) {
	s.player.Pos[1] = y
	s.player.VY = vy
}

// Events returns the queue lifecycle events are pushed to
func (s *Session) Events() *event.EventQueue {
	return s.queue
}

// EpisodeID returns the active episode ID, uuid.Nil in menu
func (s *Session) EpisodeID() uuid.UUID {
	return s.episodeID
}

// Frame returns the number of ticks processed
func (s *Session) Frame() int64 {
	return s.frame
}

// DisplayName returns the name reported with results
func (s *Session) DisplayName() string {
	return s.displayName
}

// SetDisplayName changes the name used for the next result
func (s *Session) SetDisplayName(name string) {
	s.displayName = name
}

// LastResult returns the result of the most recent finished episode
func (s *Session) LastResult() (event.GameOverPayload, bool) {
	return s.lastResult, s.hasLastResult
}
