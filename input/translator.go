// Package input turns terminal key events into per-frame game input
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/turtle-dive/engine"
	"github.com/lixenwraith/turtle-dive/parameter"
)

// Action is a discrete command outside the simulation input
type Action uint8

const (
	ActionNone Action = iota
	ActionReset
	ActionClearLeaderboard
	ActionQuit
	ActionResize
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionReset:
		return "Reset"
	case ActionClearLeaderboard:
		return "ClearLeaderboard"
	case ActionQuit:
		return "Quit"
	case ActionResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// Translator maps key events to engine.Input
// Terminals report presses and auto-repeats only, so dive is held for a
// window after the most recent press
type Translator struct {
	clock      engine.TimeProvider
	holdWindow time.Duration

	lastDive time.Time
	hasDive  bool
	activate bool
}

// NewTranslator creates a translator; holdWindow <= 0 uses DiveHoldWindow
func NewTranslator(clock engine.TimeProvider, holdWindow time.Duration) *Translator {
	if holdWindow <= 0 {
		holdWindow = parameter.DiveHoldWindow
	}
	return &Translator{
		clock:      clock,
		holdWindow: holdWindow,
	}
}

// Handle consumes one terminal event; state decides context-dependent keys
func (t *Translator) Handle(ev tcell.Event, state engine.State) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev, state)
	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}

func (t *Translator) handleKey(ev *tcell.EventKey, state engine.State) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		t.press()
		return ActionNone
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case ' ':
		t.press()
	case 'r', 'R':
		return ActionReset
	case 'q', 'Q':
		return ActionQuit
	case 'c', 'C':
		if state == engine.StateMenu {
			return ActionClearLeaderboard
		}
	}
	return ActionNone
}

func (t *Translator) press() {
	t.activate = true
	t.hasDive = true
	t.lastDive = t.clock.Now()
}

// Frame returns the input for the next tick and clears the activate edge
func (t *Translator) Frame() engine.Input {
	in := engine.Input{
		Activate: t.activate,
		HoldDive: t.Diving(),
	}
	t.activate = false
	return in
}

// Diving reports whether a dive press is still inside the hold window
func (t *Translator) Diving() bool {
	return t.hasDive && t.clock.Now().Sub(t.lastDive) < t.holdWindow
}

// Release drops any held dive, used when the session leaves play
func (t *Translator) Release() {
	t.hasDive = false
	t.activate = false
}
