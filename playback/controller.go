package playback

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stepvis/stepvis/graphstore"
	"github.com/stepvis/stepvis/traverse"
)

// Controller replays a materialized event sequence against the live store.
//
// All exported methods are safe for concurrent use. The tick goroutine and
// the editing surface contend only on the controller mutex and the store's
// own locking, so mid-run edits remain memory-safe even when they make
// individual events stale.
type Controller struct {
	mu    sync.Mutex
	store *graphstore.Store
	opts  Options

	state  State
	algo   traverse.Algorithm
	runID  string
	events []traverse.Event
	cursor int
	tick   time.Duration

	// gen invalidates a live tick goroutine: Reset and restart bump it,
	// and the goroutine exits at its next wake-up when its generation no
	// longer matches.
	gen uint64

	visitLog []string
}

// NewController wires a controller to the store it animates.
func NewController(store *graphstore.Store, opts ...Option) *Controller {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Controller{
		store: store,
		opts:  o,
		tick:  clamp(o.TickInterval, o.MinTick, o.MaxTick),
	}
}

// Start materializes a fresh run and begins continuous playback.
//
// Calling Start while Running is a silent no-op. From Paused or Finished it
// abandons the current run and starts over. ErrNoStartNode is returned,
// with nothing mutated, when no start node is designated.
func (c *Controller) Start(algo traverse.Algorithm) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Running {
		return nil
	}
	if err := c.materializeLocked(algo); err != nil {
		return err
	}
	c.state = Running
	go c.run(c.gen)

	c.opts.Logger.Info("playback: run started",
		"algorithm", algo.String(),
		"run_id", c.runID,
		"events", len(c.events),
	)

	return nil
}

// Pause suspends ticking without moving the cursor. No-op unless Running.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Running {
		c.state = Paused
		c.opts.Logger.Debug("playback: paused", "run_id", c.runID, "cursor", c.cursor)
	}
}

// Resume continues ticking from the current cursor. No-op unless Paused.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Paused {
		c.state = Running
		c.opts.Logger.Debug("playback: resumed", "run_id", c.runID, "cursor", c.cursor)
	}
}

// Step applies exactly one event without entering continuous playback.
//
// From Paused it advances the cursor by one. From Idle it materializes a
// run (same ErrNoStartNode precondition as Start), enters Paused and
// applies the first event. From Running or Finished it is a no-op.
func (c *Controller) Step(algo traverse.Algorithm) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case Idle:
		if err := c.materializeLocked(algo); err != nil {
			return err
		}
		c.state = Paused
		go c.run(c.gen)
	case Paused:
		// advance below
	default:
		return nil
	}

	c.advanceLocked()

	return nil
}

// Reset abandons any run from any state: back to Idle, sequence and visit
// log cleared, every node and edge restored to its resting visual state.
// A live tick goroutine observes the generation bump at its next wake-up.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.state = Idle
	c.events = nil
	c.cursor = 0
	c.runID = ""
	c.visitLog = nil
	c.store.ResetRunState()
}

// SetTickInterval updates the Running cadence, clamped to the configured
// bounds, and returns the effective value. Takes effect from the next tick.
func (c *Controller) SetTickInterval(d time.Duration) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick = clamp(d, c.opts.MinTick, c.opts.MaxTick)

	return c.tick
}

// Status reports the controller's current position.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Status{
		State:        c.state,
		Algorithm:    c.algo,
		RunID:        c.runID,
		Cursor:       c.cursor,
		Total:        len(c.events),
		TickInterval: c.tick,
	}
}

// VisitLog returns the accumulated visit-order labels of the current run.
func (c *Controller) VisitLog() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, len(c.visitLog))
	copy(out, c.visitLog)

	return out
}

// materializeLocked snapshots the store and produces the event sequence.
// The precondition check comes first so a rejected start mutates nothing.
func (c *Controller) materializeLocked(algo traverse.Algorithm) error {
	start, ok := c.store.StartID()
	if !ok {
		return ErrNoStartNode
	}
	events, err := traverse.Run(c.store.Snapshot(), start, algo)
	if err != nil {
		return err
	}

	c.store.ResetRunState()
	c.gen++
	c.algo = algo
	c.runID = uuid.NewString()
	c.events = events
	c.cursor = 0
	c.visitLog = nil

	return nil
}

// advanceLocked applies the event at the cursor and moves to Finished when
// the sequence is exhausted. Callers hold c.mu and guarantee cursor < len.
func (c *Controller) advanceLocked() {
	c.apply(c.events[c.cursor])
	c.cursor++
	if c.cursor == len(c.events) {
		c.state = Finished
		c.opts.Logger.Info("playback: run finished",
			"run_id", c.runID,
			"events", c.cursor,
		)
	}
}

// run is the tick loop for one generation. It exits when the generation
// moves on or the run leaves the Running/Paused pair; while Paused it keeps
// polling so a later Resume needs no new goroutine.
//
// Sleeps never exceed the poll interval, so pause, resume, reset and speed
// changes are observed within one poll even in the middle of a long tick.
func (c *Controller) run(gen uint64) {
	poll := c.opts.PollInterval
	next := time.Now() // the first event applies immediately

	for {
		c.mu.Lock()
		if c.gen != gen || (c.state != Running && c.state != Paused) {
			c.mu.Unlock()
			return
		}
		if c.state == Paused {
			// Hold the cursor; the pending tick re-arms on resume.
			next = time.Now()
		} else if !time.Now().Before(next) {
			c.advanceLocked()
			next = time.Now().Add(c.tick)
		}
		c.mu.Unlock()

		d := poll
		if until := time.Until(next); until > 0 && until < d {
			d = until
		}
		time.Sleep(d)
	}
}

func clamp(d, min, max time.Duration) time.Duration {
	if d < min {
		return min
	}
	if d > max {
		return max
	}

	return d
}
