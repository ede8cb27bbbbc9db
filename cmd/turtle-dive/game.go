package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/turtle-dive/audio"
	"github.com/lixenwraith/turtle-dive/engine"
	"github.com/lixenwraith/turtle-dive/event"
	"github.com/lixenwraith/turtle-dive/input"
	"github.com/lixenwraith/turtle-dive/leaderboard"
	"github.com/lixenwraith/turtle-dive/parameter"
	"github.com/lixenwraith/turtle-dive/render"
)

// gameDeps are the collaborators wired around one session
type gameDeps struct {
	screen  tcell.Screen
	time    engine.TimeProvider
	session engine.Options
	palette render.Palette
	// sound is nil when muted or no audio device is available
	sound *audio.SoundManager
	// recorder is nil when persistence is disabled
	recorder *leaderboard.Recorder
}

// game owns the frame loop state: input in, tick, dispatch, draw
type game struct {
	screen     tcell.Screen
	time       engine.TimeProvider
	clock      *engine.Clock
	session    *engine.Session
	router     *event.Router
	translator *input.Translator
	renderer   *render.Renderer
	sound      *audio.SoundManager
	recorder   *leaderboard.Recorder

	gameOverAt time.Time
}

func newGame(deps gameDeps) *game {
	queue := deps.session.Queue
	if queue == nil {
		queue = event.NewEventQueue()
		deps.session.Queue = queue
	}

	g := &game{
		screen:     deps.screen,
		time:       deps.time,
		clock:      engine.NewClock(deps.time),
		session:    engine.NewSession(deps.session),
		router:     event.NewRouter(queue),
		translator: input.NewTranslator(deps.time, parameter.DiveHoldWindow),
		renderer:   render.NewRenderer(deps.screen, deps.palette),
		sound:      deps.sound,
		recorder:   deps.recorder,
	}

	g.router.Register(event.HandlerFunc{
		Types: []event.EventType{
			event.EventEpisodeStart,
			event.EventPlayerDeath,
			event.EventGameOver,
			event.EventResetToMenu,
		},
		Fn: g.logEvent,
	})
	g.router.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventGameOver},
		Fn: func(event.GameEvent) {
			g.gameOverAt = g.time.Now()
			g.translator.Release()
		},
	})
	if g.sound != nil {
		g.router.Register(g.sound)
	}
	if g.recorder != nil {
		g.router.Register(g.recorder)
	}
	return g
}

func (g *game) logEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.EpisodeStartPayload:
		log.Printf("frame %d: episode %s started", ev.Frame, p.EpisodeID)
	case *event.DeathPayload:
		log.Printf("frame %d: player died (%s)", ev.Frame, p.Cause)
	case *event.GameOverPayload:
		log.Printf("frame %d: game over, %s scored %d in %s", ev.Frame, p.DisplayName, p.Score, p.Duration)
	default:
		log.Printf("frame %d: %s", ev.Frame, ev.Type)
	}
}

// handle applies one terminal event, returning false to quit
func (g *game) handle(ev tcell.Event) bool {
	switch g.translator.Handle(ev, g.session.State()) {
	case input.ActionQuit:
		return false
	case input.ActionReset:
		g.session.ResetToMenu()
		g.translator.Release()
		g.router.DispatchAll()
	case input.ActionClearLeaderboard:
		if g.recorder != nil {
			g.recorder.Clear()
		}
	case input.ActionResize:
		g.screen.Sync()
		g.renderer.Resize()
	}
	return true
}

// step advances one frame and redraws
func (g *game) step() {
	dt := g.clock.Tick()

	in := g.translator.Frame()
	if g.session.State() == engine.StateGameOver && g.time.Now().Sub(g.gameOverAt) < parameter.RestartGuard {
		in.Activate = false
	}

	g.session.Tick(in, dt)
	g.router.DispatchAll()
	g.draw()
}

func (g *game) draw() {
	frame := render.Frame{
		Snapshot:   g.session.Snapshot(),
		PlayerName: g.session.DisplayName(),
	}
	if g.sound == nil {
		frame.Status = "muted"
	}
	if g.recorder != nil {
		for _, e := range g.recorder.Latest() {
			frame.Leaderboard = append(frame.Leaderboard, render.Row{Name: e.Name, Score: e.Score})
		}
		if g.recorder.Err() != nil {
			frame.Status = "scores offline"
		}
	}
	g.renderer.Draw(frame)
}

// run drives the frame loop until quit or the event channel closes
func (g *game) run(events <-chan tcell.Event) {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	g.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.handle(ev) {
				return
			}
		case <-ticker.C:
			g.step()
		}
	}
}
