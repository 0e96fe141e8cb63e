// Package graphstore holds the editable graph that the traversal and
// playback layers operate on: nodes with positions, labels and per-run
// visual state, weighted edges, and an adjacency projection kept in
// lockstep with the edge set by every mutating operation.
//
// The store is the single mutable surface shared between the editing API
// and the animation controller. All methods are safe for concurrent use
// under an internal sync.RWMutex. Semantic races (deleting a node while a
// run replays events that reference it) are tolerated: every run-state
// mutator reports presence via an ok-bool so a stale id degrades to a
// no-op instead of a failure.
//
// Construction:
//
//	s := graphstore.New()                          // undirected (default)
//	s := graphstore.New(graphstore.WithDirected()) // directed adjacency
//
// Direction mode is fixed at construction; Clear() keeps it.
//
// Node ids are int64, allocated monotonically from zero and never reused
// within a session. Labels derive from the id in bijective base-26
// ("A".."Z", "AA", ...). Distances are float64 and start at +Inf.
package graphstore
