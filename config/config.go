// Package config loads runtime settings from the environment and command-line flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/turtle-dive/parameter"
)

// EnvPrefix namespaces all environment variables
const EnvPrefix = "TURTLE_"

// Config holds startup settings
// Environment provides defaults; flags bound with BindFlags override them
type Config struct {
	PlayerName string `env:"PLAYER"`
	DBPath     string `env:"DB" envDefault:"turtle-dive.db"`
	Seed       uint64 `env:"SEED"`
	Debug      bool   `env:"DEBUG"`
	Mute       bool   `env:"MUTE"`
	ColorMode  string `env:"COLOR" envDefault:"auto"`

	HazardForgiveness float64 `env:"HAZARD_FORGIVENESS" envDefault:"2"`
	HazardProbability float64 `env:"HAZARD_PROBABILITY" envDefault:"0.55"`
	SpawnIntervalMs   float64 `env:"SPAWN_INTERVAL_MS" envDefault:"1100"`
}

// Load parses the process environment
func Load() (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// LoadFrom parses the given variables instead of the process environment
// Keys include the prefix, e.g. TURTLE_SEED
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// BindFlags registers flags that override the loaded values
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.PlayerName, "name", c.PlayerName, "display name saved with results")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "leaderboard database path, empty disables persistence")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "spawn random seed, 0 picks one from the clock")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write logs to the logs directory")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable audio")
	fs.StringVar(&c.ColorMode, "color", c.ColorMode, "color mode: auto, truecolor, 256")
}

// Validate rejects tuning values the simulation cannot run with
func (c Config) Validate() error {
	var errs []error
	if !finite(c.HazardForgiveness) || c.HazardForgiveness < 0 ||
		c.HazardForgiveness >= parameter.PlayerRadius+parameter.HazardRadius {
		errs = append(errs, fmt.Errorf("hazard forgiveness %v must be in [0, %v)",
			c.HazardForgiveness, parameter.PlayerRadius+parameter.HazardRadius))
	}
	if !finite(c.HazardProbability) || c.HazardProbability < 0 || c.HazardProbability > 1 {
		errs = append(errs, fmt.Errorf("hazard probability %v must be in [0, 1]", c.HazardProbability))
	}
	if !finite(c.SpawnIntervalMs) || c.SpawnIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("spawn interval %vms must be positive", c.SpawnIntervalMs))
	}
	switch c.ColorMode {
	case "auto", "truecolor", "256":
	default:
		errs = append(errs, fmt.Errorf("unknown color mode %q", c.ColorMode))
	}
	return errors.Join(errs...)
}

// Tuning returns the balancing values for the simulation
func (c Config) Tuning() parameter.Tuning {
	return parameter.Tuning{
		HazardForgiveness: c.HazardForgiveness,
		HazardProbability: c.HazardProbability,
		SpawnIntervalMs:   c.SpawnIntervalMs,
	}
}

// DisplayName returns the normalized player name
func (c Config) DisplayName() string {
	return NormalizeName(c.PlayerName)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
