// Package config loads the server's YAML configuration file and applies
// defaults and validation. A missing path yields the defaults, so the
// binary runs with no configuration at all.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Sentinel validation errors.
var (
	// ErrBadTick indicates a non-positive tick or poll interval.
	ErrBadTick = errors.New("config: playback intervals must be positive")

	// ErrBadBounds indicates an empty or inverted tick clamping range.
	ErrBadBounds = errors.New("config: min_tick_ms must be positive and not exceed max_tick_ms")
)

// Config is the root of the configuration file.
type Config struct {
	// Listen is the HTTP bind address.
	Listen string `yaml:"listen"`

	Graph    GraphConfig    `yaml:"graph"`
	Playback PlaybackConfig `yaml:"playback"`
	Log      LogConfig      `yaml:"log"`
}

// GraphConfig selects the direction mode, fixed for the process lifetime.
type GraphConfig struct {
	Directed bool `yaml:"directed"`
}

// PlaybackConfig tunes the animation cadence, in milliseconds.
type PlaybackConfig struct {
	TickMS    int `yaml:"tick_ms"`
	MinTickMS int `yaml:"min_tick_ms"`
	MaxTickMS int `yaml:"max_tick_ms"`
	PollMS    int `yaml:"poll_ms"`
}

// Tick returns the initial tick interval.
func (p PlaybackConfig) Tick() time.Duration { return time.Duration(p.TickMS) * time.Millisecond }

// MinTick returns the lower clamping bound.
func (p PlaybackConfig) MinTick() time.Duration {
	return time.Duration(p.MinTickMS) * time.Millisecond
}

// MaxTick returns the upper clamping bound.
func (p PlaybackConfig) MaxTick() time.Duration {
	return time.Duration(p.MaxTickMS) * time.Millisecond
}

// Poll returns the paused-state polling interval.
func (p PlaybackConfig) Poll() time.Duration { return time.Duration(p.PollMS) * time.Millisecond }

// LogConfig selects log verbosity and format.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level"`

	// JSON emits machine-parseable records instead of text.
	JSON bool `yaml:"json"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Listen: ":8080",
		Playback: PlaybackConfig{
			TickMS:    500,
			MinTickMS: 50,
			MaxTickMS: 2000,
			PollMS:    25,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// validate checks the playback cadence fields. The initial tick is not an
// error when outside the bounds; it is clamped, matching the runtime
// speed-setter behavior.
func (c *Config) validate() error {
	p := &c.Playback
	if p.TickMS <= 0 || p.PollMS <= 0 {
		return ErrBadTick
	}
	if p.MinTickMS <= 0 || p.MinTickMS > p.MaxTickMS {
		return ErrBadBounds
	}
	if p.TickMS < p.MinTickMS {
		p.TickMS = p.MinTickMS
	}
	if p.TickMS > p.MaxTickMS {
		p.TickMS = p.MaxTickMS
	}

	return nil
}
