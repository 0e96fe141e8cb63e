// Package traverse turns a graph snapshot and a start node into the
// materialized, ordered sequence of events that playback later replays:
// Visit, Enqueue and SetDistance records.
//
// All three algorithm variants (breadth-first, depth-first and weighted
// shortest path) run through one generic driver that differs only in its
// frontier ordering policy:
//
//	BFS          FIFO queue; first-visit order equals hop-count order.
//	DFS          LIFO stack; neighbors offered in reverse adjacency order
//	             so popping restores adjacency-order priority.
//	ShortestPath min-heap keyed by tentative distance with lazy
//	             decrease-key: improved candidates are pushed as duplicates
//	             and stale entries discarded on pop.
//
// The shared skeleton guarantees the invariants that must not drift between
// variants: a visited set gates settlement, a candidate popped after its
// node was already settled is discarded without emitting an event, and a
// node may legitimately appear in several Enqueue events before its single
// Visit.
//
// The sequence is computed eagerly and synchronously (graphs here are
// interactively small), so stepping, pausing and resuming can reference a
// stable slice by index, immune to later graph edits.
package traverse
