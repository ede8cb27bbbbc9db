package engine

import "testing"

func TestMachineTransitions(t *testing.T) {
	m := NewMachine()
	var entered []State
	for _, s := range []State{StateMenu, StatePlaying, StateGameOver} {
		m.OnEnter(s, func(State) { entered = append(entered, m.Current()) })
	}

	if m.Current() != StateMenu {
		t.Fatalf("Expected initial menu, got %s", m.Current())
	}

	// Death is meaningless in menu
	if m.Fire(TriggerDeath) {
		t.Error("Death must be ignored in menu")
	}

	if !m.Fire(TriggerActivate) || m.Current() != StatePlaying {
		t.Fatalf("Expected menu -> playing, got %s", m.Current())
	}

	// Activate while playing is ignored
	if m.Fire(TriggerActivate) {
		t.Error("Activate must be ignored while playing")
	}

	if !m.Fire(TriggerDeath) || m.Current() != StateGameOver {
		t.Fatalf("Expected playing -> gameover, got %s", m.Current())
	}
	if m.Fire(TriggerDeath) {
		t.Error("Death must be ignored in gameover")
	}

	if !m.Fire(TriggerActivate) || m.Current() != StatePlaying {
		t.Fatalf("Expected gameover -> playing, got %s", m.Current())
	}

	if !m.Fire(TriggerReset) || m.Current() != StateMenu {
		t.Fatalf("Expected playing -> menu, got %s", m.Current())
	}

	want := []State{StatePlaying, StateGameOver, StatePlaying, StateMenu}
	if len(entered) != len(want) {
		t.Fatalf("Expected entries %v, got %v", want, entered)
	}
	for i := range want {
		if entered[i] != want[i] {
			t.Errorf("Entry %d: expected %s, got %s", i, want[i], entered[i])
		}
	}
}

func TestMachineResetReentersMenu(t *testing.T) {
	m := NewMachine()
	count := 0
	m.OnEnter(StateMenu, func(from State) {
		if from != StateMenu {
			t.Errorf("Expected re-entry from menu, got %s", from)
		}
		count++
	})

	m.Fire(TriggerReset)
	m.Fire(TriggerReset)
	if count != 2 {
		t.Errorf("Expected 2 menu entries, got %d", count)
	}
	if m.Current() != StateMenu {
		t.Errorf("Expected menu, got %s", m.Current())
	}
}

func TestStateString(t *testing.T) {
	if StateMenu.String() != "menu" || StatePlaying.String() != "playing" || StateGameOver.String() != "gameover" {
		t.Error("Unexpected state names")
	}
}
