// Package graphstore types: Node, Edge, visual-state enums, the adjacency
// projection records, sentinel errors and the functional Store options.
package graphstore

import "errors"

// Sentinel errors for store operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graphstore: node not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("graphstore: edge weight must be non-negative")

	// ErrSelfEdge indicates an edge from a node to itself.
	ErrSelfEdge = errors.New("graphstore: self-edges not allowed")
)

// noStart is the start-designation sentinel meaning "no start chosen".
const noStart int64 = -1

// NodeState is the per-node visual state driven by playback.
type NodeState uint8

const (
	// NodeUnvisited is the default state of every node.
	NodeUnvisited NodeState = iota

	// NodeInQueue marks a node discovered but not yet settled (frontier).
	NodeInQueue

	// NodeCurrent marks the node whose visit event was applied last.
	// At most one node holds this state at a time.
	NodeCurrent

	// NodeVisited marks a settled node.
	NodeVisited
)

// String returns the lowercase wire name of the state.
func (s NodeState) String() string {
	switch s {
	case NodeInQueue:
		return "in-queue"
	case NodeCurrent:
		return "current"
	case NodeVisited:
		return "visited"
	default:
		return "unvisited"
	}
}

// EdgeState is the per-edge visual state driven by playback.
type EdgeState uint8

const (
	// EdgeDefault is the resting state of every edge.
	EdgeDefault EdgeState = iota

	// EdgeActive marks the edge along which a node was last enqueued.
	EdgeActive

	// EdgeVisited marks the edge along which a node was settled.
	EdgeVisited
)

// String returns the lowercase wire name of the state.
func (s EdgeState) String() string {
	switch s {
	case EdgeActive:
		return "active"
	case EdgeVisited:
		return "visited"
	default:
		return "default"
	}
}

// Node is a vertex of the editable graph.
//
// ID is unique within a session and never reused. X/Y are used only by the
// presentation layer. State and Distance belong to the current run and are
// reset by ResetRunState, independent of structural edits.
type Node struct {
	ID       int64
	Label    string
	X, Y     float64
	State    NodeState
	Distance float64
}

// EdgeKey names a stored edge by its (From, To) pair as created.
// In undirected mode the key keeps the creation orientation; matching is
// direction-insensitive where the mode requires it.
type EdgeKey struct {
	From int64
	To   int64
}

// Edge is a stored connection between two nodes.
type Edge struct {
	From   int64
	To     int64
	Weight int64
	State  EdgeState
}

// Key returns the EdgeKey naming this edge.
func (e Edge) Key() EdgeKey { return EdgeKey{From: e.From, To: e.To} }

// Arc is one adjacency-projection entry: a traversable step from the owning
// node to Arc.To at cost Weight, backed by the stored edge Arc.Edge.
// For undirected edges both endpoints own structurally independent arcs
// naming the same stored edge.
type Arc struct {
	To     int64
	Weight int64
	Edge   EdgeKey
}

// Snapshot is an immutable copy of the adjacency projection taken at
// run start. Later edits to the live store do not affect it.
type Snapshot struct {
	adj map[int64][]Arc
}

// Has reports whether the node existed when the snapshot was taken.
func (s *Snapshot) Has(id int64) bool {
	_, ok := s.adj[id]
	return ok
}

// Arcs returns the node's outgoing adjacency entries in creation order.
// The returned slice must be treated as read-only.
func (s *Snapshot) Arcs(id int64) []Arc { return s.adj[id] }

// Len returns the number of nodes captured by the snapshot.
func (s *Snapshot) Len() int { return len(s.adj) }

// Option configures a Store before first use.
type Option func(*Store)

// WithDirected makes edges one-way: adjacency is updated only for the
// stored (from → to) direction and duplicate detection is order-sensitive.
func WithDirected() Option {
	return func(s *Store) { s.directed = true }
}
