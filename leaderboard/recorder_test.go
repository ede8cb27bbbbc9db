package leaderboard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/lixenwraith/turtle-dive/event"
)

// memRanker is an in-memory Ranker with an optional injected failure
type memRanker struct {
	mu      sync.Mutex
	entries []Entry
	failOn  string
}

func (m *memRanker) Add(_ context.Context, e Entry) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.Name == m.failOn {
		return nil, errors.New("disk full")
	}
	m.entries = append(m.entries, e)
	return append([]Entry(nil), m.entries...), nil
}

func (m *memRanker) Top(context.Context, int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...), nil
}

func (m *memRanker) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

func gameOver(name string, score int) event.GameEvent {
	return event.GameEvent{
		Type: event.EventGameOver,
		Payload: &event.GameOverPayload{
			DisplayName: name,
			Score:       score,
			EpisodeID:   uuid.New(),
			Cause:       event.CauseHazard,
		},
	}
}

func TestRecorderPersistsGameOver(t *testing.T) {
	ranker := &memRanker{}
	r := NewRecorder(ranker)

	r.HandleEvent(gameOver("shelly", 4))
	r.HandleEvent(event.GameEvent{Type: event.EventGameOver}) // nil payload ignored
	r.Close()

	latest := r.Latest()
	if len(latest) != 1 || latest[0].Name != "shelly" || latest[0].Score != 4 {
		t.Errorf("Unexpected latest ranking %+v", latest)
	}
	if r.Err() != nil {
		t.Errorf("Unexpected error %v", r.Err())
	}
}

func TestRecorderKeepsLatestOnFailure(t *testing.T) {
	ranker := &memRanker{failOn: "lost"}
	r := NewRecorder(ranker)
	r.HandleEvent(gameOver("ok", 1))
	r.HandleEvent(gameOver("lost", 9))
	r.Close()

	if r.Err() == nil {
		t.Error("Expected storage error to be recorded")
	}
	if latest := r.Latest(); len(latest) != 1 || latest[0].Name != "ok" {
		t.Errorf("Failed write must keep previous ranking, got %+v", latest)
	}
}

func TestRecorderWithSQLite(t *testing.T) {
	store := openTestStore(t)
	r := NewRecorder(store)
	if err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	r.HandleEvent(gameOver("low", 1))
	r.HandleEvent(gameOver("high", 8))
	r.Clear()
	r.HandleEvent(gameOver("after", 3))
	r.Close()

	latest := r.Latest()
	if len(latest) != 1 || latest[0].Name != "after" {
		t.Errorf("Expected only the post-clear entry, got %+v", latest)
	}
}

func TestRecorderEventTypes(t *testing.T) {
	r := NewRecorder(&memRanker{})
	defer r.Close()
	types := r.EventTypes()
	if len(types) != 1 || types[0] != event.EventGameOver {
		t.Errorf("Unexpected event types %v", types)
	}
}
