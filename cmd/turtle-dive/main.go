package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/turtle-dive/audio"
	"github.com/lixenwraith/turtle-dive/config"
	"github.com/lixenwraith/turtle-dive/engine"
	"github.com/lixenwraith/turtle-dive/leaderboard"
	"github.com/lixenwraith/turtle-dive/render"
	"github.com/lixenwraith/turtle-dive/vmath"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid environment: %v\n", err)
		os.Exit(2)
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration:\n%v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting: player=%q seed=%d db=%q", cfg.DisplayName(), seed, cfg.DBPath)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTURTLE-DIVE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	var sound *audio.SoundManager
	if !cfg.Mute {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("audio unavailable, continuing without sound: %v", err)
		} else {
			sound = sm
			defer sm.Cleanup()
		}
	}

	var recorder *leaderboard.Recorder
	if cfg.DBPath != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		store, err := leaderboard.Open(ctx, cfg.DBPath)
		cancel()
		if err != nil {
			log.Printf("leaderboard unavailable: %v", err)
		} else {
			defer store.Close()
			recorder = leaderboard.NewRecorder(store)
			// Runs before store.Close so pending results are flushed
			defer recorder.Close()
			if err := recorder.Refresh(context.Background()); err != nil {
				log.Printf("leaderboard load failed: %v", err)
			}
		}
	}

	g := newGame(gameDeps{
		screen: screen,
		time:   engine.NewMonotonicTimeProvider(),
		session: engine.Options{
			Rand:        vmath.NewFastRand(seed),
			Tuning:      cfg.Tuning(),
			DisplayName: cfg.DisplayName(),
		},
		palette:  render.PaletteFor(cfg.ColorMode, screen),
		sound:    sound,
		recorder: recorder,
	})

	events := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	g.run(events)
	log.Printf("exiting")
}
