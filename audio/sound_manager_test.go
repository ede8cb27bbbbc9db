package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/turtle-dive/event"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayStart()
	sm.PlayPickup()
	sm.PlayDeath()
	sm.Cleanup()

	if sm.Played() != 0 {
		t.Errorf("Expected no cues without initialization, got %d", sm.Played())
	}
}

// TestSoundManagerHandlesEventsWithoutDevice verifies the handler path is safe when muted
func TestSoundManagerHandlesEventsWithoutDevice(t *testing.T) {
	sm := NewSoundManager()
	for _, et := range sm.EventTypes() {
		sm.HandleEvent(event.GameEvent{Type: et})
	}
	sm.HandleEvent(event.GameEvent{Type: event.EventGameOver})

	if sm.Played() != 0 {
		t.Errorf("Expected no cues without initialization, got %d", sm.Played())
	}
}

func TestSoundManagerEventTypes(t *testing.T) {
	types := NewSoundManager().EventTypes()
	want := map[event.EventType]bool{
		event.EventEpisodeStart:    true,
		event.EventPickupCollected: true,
		event.EventPlayerDeath:     true,
	}
	if len(types) != len(want) {
		t.Fatalf("Expected %d event types, got %d", len(want), len(types))
	}
	for _, et := range types {
		if !want[et] {
			t.Errorf("Unexpected event type %v", et)
		}
	}
}

// TestSoundManagerCleanupWithoutInit verifies cleanup without initialization is safe
func TestSoundManagerCleanupWithoutInit(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Cleanup panicked without initialization: %v", r)
		}
	}()

	sm.Cleanup()
	sm.Cleanup()
}

func streamAll(t *testing.T, s beep.Streamer, d time.Duration) [][2]float64 {
	t.Helper()
	buf := make([][2]float64, sampleRate.N(d))
	n, ok := beep.Take(len(buf), s).Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Expected %d samples, got %d (ok=%v)", len(buf), n, ok)
	}
	return buf
}

// TestGeneratorsBounded verifies every cue stays within [-1, 1] and is not silent
func TestGeneratorsBounded(t *testing.T) {
	tests := []struct {
		name string
		gen  beep.Streamer
	}{
		{"chime", NewChimeGenerator(sampleRate, 440, 880)},
		{"buzz", NewBuzzGenerator(sampleRate, 110)},
		{"decay", NewDecayGenerator(sampleRate, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := streamAll(t, tt.gen, 200*time.Millisecond)
			peak := 0.0
			for i, s := range buf {
				if s[0] != s[1] {
					t.Fatalf("Sample %d: expected mono, got %v", i, s)
				}
				if math.IsNaN(s[0]) || math.Abs(s[0]) > 1 {
					t.Fatalf("Sample %d out of range: %v", i, s[0])
				}
				peak = math.Max(peak, math.Abs(s[0]))
			}
			if peak == 0 {
				t.Error("Expected audible output")
			}
		})
	}
}

func TestDecayGeneratorDeterministic(t *testing.T) {
	a := streamAll(t, NewDecayGenerator(sampleRate, 42), 10*time.Millisecond)
	b := streamAll(t, NewDecayGenerator(sampleRate, 42), 10*time.Millisecond)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestChimeFades(t *testing.T) {
	buf := streamAll(t, NewChimeGenerator(sampleRate, 1320, 1320), 300*time.Millisecond)
	head, tail := 0.0, 0.0
	quarter := len(buf) / 4
	for i := 0; i < quarter; i++ {
		head = math.Max(head, math.Abs(buf[i][0]))
		tail = math.Max(tail, math.Abs(buf[len(buf)-1-i][0]))
	}
	if tail >= head {
		t.Errorf("Expected fade out, head peak %v, tail peak %v", head, tail)
	}
}
