// Package audio synthesizes the game's sound cues on a beep mixer
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/turtle-dive/event"
)

const (
	sampleRate = beep.SampleRate(48000)
)

const (
	startDuration  = 220 * time.Millisecond
	pickupDuration = 90 * time.Millisecond
	deathDuration  = 400 * time.Millisecond
)

// SoundManager plays lifecycle cues; every Play is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	played      int
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Played returns the number of cues handed to the mixer
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// PlayStart plays a rising chime when an episode begins
func (sm *SoundManager) PlayStart() {
	sm.play(startDuration, NewChimeGenerator(sampleRate, 440, 880))
}

// PlayPickup plays a short high blip
func (sm *SoundManager) PlayPickup() {
	sm.play(pickupDuration, NewChimeGenerator(sampleRate, 1320, 1320))
}

// PlayDeath plays a low buzz fading into noise
func (sm *SoundManager) PlayDeath() {
	sm.play(deathDuration, beep.Mix(
		NewBuzzGenerator(sampleRate, 110),
		NewDecayGenerator(sampleRate, 1),
	))
}

func (sm *SoundManager) play(d time.Duration, s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(d), s))
	speaker.Unlock()
	sm.played++
}

// EventTypes implements event.Handler
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEpisodeStart,
		event.EventPickupCollected,
		event.EventPlayerDeath,
	}
}

// HandleEvent maps lifecycle events to cues
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventEpisodeStart:
		sm.PlayStart()
	case event.EventPickupCollected:
		sm.PlayPickup()
	case event.EventPlayerDeath:
		sm.PlayDeath()
	}
}
