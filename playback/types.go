// Package playback types: the controller state machine values, sentinel
// errors, functional options and the Status report.
package playback

import (
	"errors"
	"log/slog"
	"time"

	"github.com/stepvis/stepvis/traverse"
)

// ErrNoStartNode rejects starting or stepping a run before a start node is
// designated. Nothing is mutated when it is returned.
var ErrNoStartNode = errors.New("playback: no start node designated")

// State is the playback state machine value.
type State uint8

const (
	// Idle means no run is loaded.
	Idle State = iota

	// Running means the tick goroutine applies one event per tick.
	Running

	// Paused holds the cursor in place; the tick goroutine keeps polling.
	Paused

	// Finished is terminal for the run: every event was applied.
	Finished
)

// String returns the lowercase wire name of the state.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return "idle"
	}
}

// Default cadence values, overridable per Controller.
const (
	DefaultTickInterval = 500 * time.Millisecond
	DefaultMinTick      = 50 * time.Millisecond
	DefaultMaxTick      = 2 * time.Second
	DefaultPollInterval = 25 * time.Millisecond
)

// Options bundles the tunables of a Controller.
type Options struct {
	// TickInterval is the delay between applied events while Running.
	// Clamped to [MinTick, MaxTick].
	TickInterval time.Duration

	// MinTick and MaxTick bound every tick interval, including later
	// SetTickInterval calls.
	MinTick time.Duration
	MaxTick time.Duration

	// PollInterval is the tick goroutine's sleep quantum and therefore the
	// upper bound on pause/resume/reset observation latency.
	PollInterval time.Duration

	// Logger receives run lifecycle records. Defaults to a discarding
	// logger.
	Logger *slog.Logger
}

// Option mutates Options during NewController.
type Option func(*Options)

// WithTickInterval sets the initial delay between applied events.
func WithTickInterval(d time.Duration) Option {
	return func(o *Options) { o.TickInterval = d }
}

// WithTickBounds sets the clamping range for the tick interval.
// Non-positive or inverted bounds are ignored.
func WithTickBounds(min, max time.Duration) Option {
	return func(o *Options) {
		if min <= 0 || max < min {
			return
		}
		o.MinTick, o.MaxTick = min, max
	}
}

// WithPollInterval sets the paused-state polling sleep.
func WithPollInterval(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.PollInterval = d
		}
	}
}

// WithLogger sets the lifecycle logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the options applied before any Option runs.
func DefaultOptions() Options {
	return Options{
		TickInterval: DefaultTickInterval,
		MinTick:      DefaultMinTick,
		MaxTick:      DefaultMaxTick,
		PollInterval: DefaultPollInterval,
		Logger:       slog.New(slog.DiscardHandler),
	}
}

// Status is a point-in-time report of the controller, safe to serialize.
type Status struct {
	State        State
	Algorithm    traverse.Algorithm
	RunID        string
	Cursor       int
	Total        int
	TickInterval time.Duration
}
