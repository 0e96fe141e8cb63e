// Package playback drives timed replay of a materialized traversal event
// sequence against the live graph store's visual state.
//
// A Controller is a small state machine over {Idle, Running, Paused,
// Finished}. Starting a run snapshots the graph, materializes the full
// event sequence up front via traverse.Run, and launches a single tick
// goroutine that applies one event per tick. Pausing is a polled flag
// rather than timer cancellation, so pause latency is bounded by the poll
// interval. Reset bumps a generation counter that the goroutine observes
// at its next wake-up.
//
// Events are applied tolerantly: an event referencing a node or edge that
// was deleted mid-run is a no-op for that event and playback continues.
package playback
