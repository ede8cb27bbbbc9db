package event

import (
	"testing"

	"github.com/lixenwraith/turtle-dive/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventEpisodeStart, Frame: 1})
	q.Push(GameEvent{Type: EventPickupCollected, Frame: 2})
	q.Push(GameEvent{Type: EventPlayerDeath, Frame: 3})

	if q.Len() != 3 {
		t.Fatalf("Expected 3 pending, got %d", q.Len())
	}

	events := q.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	for i, want := range []EventType{EventEpisodeStart, EventPickupCollected, EventPlayerDeath} {
		if events[i].Type != want {
			t.Errorf("Event %d: expected %s, got %s", i, want, events[i].Type)
		}
	}

	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventPickupCollected, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", events[0].Frame)
	}
	if events[len(events)-1].Frame != int64(total-1) {
		t.Errorf("Expected newest frame %d, got %d", total-1, events[len(events)-1].Frame)
	}
}

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	var order []string
	r.Register(HandlerFunc{
		Types: []EventType{EventGameOver},
		Fn:    func(GameEvent) { order = append(order, "first") },
	})
	r.Register(HandlerFunc{
		Types: []EventType{EventGameOver, EventResetToMenu},
		Fn:    func(ev GameEvent) { order = append(order, "second:"+ev.Type.String()) },
	})

	if r.HandlerCount(EventGameOver) != 2 {
		t.Errorf("Expected 2 handlers for GameOver, got %d", r.HandlerCount(EventGameOver))
	}
	if r.HasHandlers(EventPickupCollected) {
		t.Error("Expected no handlers for PickupCollected")
	}

	q.Push(GameEvent{Type: EventGameOver})
	q.Push(GameEvent{Type: EventPickupCollected})
	q.Push(GameEvent{Type: EventResetToMenu})

	if n := r.DispatchAll(); n != 3 {
		t.Errorf("Expected 3 dispatched, got %d", n)
	}

	want := []string{"first", "second:GameOver", "second:ResetToMenu"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Call %d: expected %s, got %s", i, want[i], order[i])
		}
	}
}

func TestDeathCauseString(t *testing.T) {
	if CauseSeabed.String() != "seabed" || CauseHazard.String() != "hazard" || CauseNone.String() != "none" {
		t.Error("Unexpected death cause names")
	}
}
