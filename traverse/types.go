// Package traverse types: algorithm selector, event records, sentinel
// errors and functional options.
package traverse

import (
	"errors"
	"fmt"

	"github.com/stepvis/stepvis/graphstore"
)

// Sentinel errors for traversal runs.
var (
	// ErrNilSnapshot is returned when a nil snapshot is passed.
	ErrNilSnapshot = errors.New("traverse: snapshot is nil")

	// ErrStartNotFound is returned when the start id is absent from the snapshot.
	ErrStartNotFound = errors.New("traverse: start node not found")

	// ErrUnknownAlgorithm is returned for an unrecognized Algorithm value.
	ErrUnknownAlgorithm = errors.New("traverse: unknown algorithm")
)

// Algorithm selects the frontier ordering policy of a run.
type Algorithm uint8

const (
	// BFS explores in first-in-first-out order: hop-count layers.
	BFS Algorithm = iota

	// DFS explores in last-in-first-out order: one branch at a time.
	DFS

	// ShortestPath settles nodes in order of increasing tentative distance
	// (Dijkstra). Edge weights must be non-negative; behavior is undefined
	// for negative weights, which the store rejects at creation time.
	ShortestPath
)

// String returns the configuration-surface name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case ShortestPath:
		return "shortest-path"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm maps a configuration string to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "shortest-path":
		return ShortestPath, nil
	default:
		return BFS, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// EventKind discriminates the three atomic steps of a run.
type EventKind uint8

const (
	// Visit settles a node: it becomes the current node of the animation.
	Visit EventKind = iota

	// Enqueue offers a node to the frontier along an edge.
	Enqueue

	// SetDistance updates a node's distance field only; no visual change.
	SetDistance
)

// String returns the lowercase name of the kind.
func (k EventKind) String() string {
	switch k {
	case Enqueue:
		return "enqueue"
	case SetDistance:
		return "set-distance"
	default:
		return "visit"
	}
}

// Event is one atomic step of a materialized run.
//
// Edge is meaningful only when HasEdge is set (Visit of the start node has
// no incoming edge; SetDistance never carries one). Distance is meaningful
// only when HasDistance is set (shortest-path runs only).
type Event struct {
	Kind        EventKind
	Node        int64
	Edge        graphstore.EdgeKey
	HasEdge     bool
	Distance    float64
	HasDistance bool
}

// Options holds run parameters beyond the algorithm choice.
type Options struct {
	// OnEvent, if non-nil, observes every event in emission order.
	OnEvent func(Event)
}

// Option configures a traversal run via functional arguments.
type Option func(*Options)

// WithOnEvent registers an observation hook called for each emitted event.
func WithOnEvent(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEvent = fn
		}
	}
}

// DefaultOptions returns Options with no hook installed.
func DefaultOptions() Options { return Options{} }
