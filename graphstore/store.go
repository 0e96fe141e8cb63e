package graphstore

import (
	"math"
	"sort"
	"sync"
)

// Store is the in-memory editable graph.
//
// mu guards nodes, edges, adjacency and the start designation together;
// mutations are rare and interactive, so a single lock keeps the edge set
// and the adjacency projection trivially in lockstep.
type Store struct {
	mu sync.RWMutex

	directed bool

	nextID int64
	start  int64

	nodes map[int64]*Node
	edges []*Edge
	adj   map[int64][]Arc
}

// New creates an empty Store. By default the graph is undirected.
// Complexity: O(1)
func New(opts ...Option) *Store {
	s := &Store{
		start: noStart,
		nodes: make(map[int64]*Node),
		adj:   make(map[int64][]Arc),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Directed reports the direction mode fixed at construction.
func (s *Store) Directed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.directed
}

// AddNode allocates the next id and registers a node at (x, y) with the
// default visual state, distance +Inf and an empty adjacency entry.
// It always succeeds and returns a copy of the stored node.
// Complexity: O(1)
func (s *Store) AddNode(x, y float64) Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	n := &Node{
		ID:       id,
		Label:    labelFor(id),
		X:        x,
		Y:        y,
		State:    NodeUnvisited,
		Distance: math.Inf(1),
	}
	s.nodes[id] = n
	s.adj[id] = []Arc{}

	return *n
}

// CreateEdge stores an edge from → to with the given non-negative weight
// and updates the adjacency projection for one direction (directed mode)
// or both directions (undirected mode).
//
// An edge that already exists between the pair (order-insensitive when
// undirected) makes the call a silent no-op: the first writer wins.
// Complexity: O(E) for the duplicate scan.
func (s *Store) CreateEdge(from, to, weight int64) error {
	if from == to {
		return ErrSelfEdge
	}
	if weight < 0 {
		return ErrNegativeWeight
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[from]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := s.nodes[to]; !ok {
		return ErrNodeNotFound
	}

	// Duplicate under the active direction-mode's equivalence rule.
	for _, e := range s.edges {
		if e.From == from && e.To == to {
			return nil
		}
		if !s.directed && e.From == to && e.To == from {
			return nil
		}
	}

	e := &Edge{From: from, To: to, Weight: weight, State: EdgeDefault}
	s.edges = append(s.edges, e)

	key := e.Key()
	s.adj[from] = append(s.adj[from], Arc{To: to, Weight: weight, Edge: key})
	if !s.directed {
		// The mirror arc is a structurally independent entry; it is removed
		// explicitly on node deletion, never recomputed.
		s.adj[to] = append(s.adj[to], Arc{To: from, Weight: weight, Edge: key})
	}

	return nil
}

// DeleteNode removes the node, every edge touching it, its adjacency entry,
// and scrubs its id from every other node's adjacency list. If the node was
// the designated start, the designation is cleared. No dangling references
// survive. Complexity: O(V + E)
func (s *Store) DeleteNode(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[id]; !ok {
		return ErrNodeNotFound
	}

	delete(s.nodes, id)
	delete(s.adj, id)

	kept := s.edges[:0]
	for _, e := range s.edges {
		if e.From != id && e.To != id {
			kept = append(kept, e)
		}
	}
	s.edges = kept

	for owner, arcs := range s.adj {
		pruned := arcs[:0]
		for _, a := range arcs {
			if a.To != id && a.Edge.From != id && a.Edge.To != id {
				pruned = append(pruned, a)
			}
		}
		s.adj[owner] = pruned
	}

	if s.start == id {
		s.start = noStart
	}

	return nil
}

// SetStart designates the start node for the next run. A start with no
// outgoing edges is valid; the traversal simply visits it alone.
func (s *Store) SetStart(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[id]; !ok {
		return ErrNodeNotFound
	}
	s.start = id

	return nil
}

// StartID returns the designated start node, if any.
func (s *Store) StartID() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.start, s.start != noStart
}

// Clear resets to the empty graph, clears the start designation and resets
// the id allocator to its initial value. The direction mode is kept.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID = 0
	s.start = noStart
	s.nodes = make(map[int64]*Node)
	s.edges = nil
	s.adj = make(map[int64][]Arc)
}

// Nodes returns copies of all nodes in ascending id order, which equals
// creation order because ids are monotonic.
// Complexity: O(V log V)
func (s *Store) Nodes() []Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Edges returns copies of all edges in creation order.
func (s *Store) Edges() []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Edge, 0, len(s.edges))
	for _, e := range s.edges {
		out = append(out, *e)
	}

	return out
}

// NodeCount returns the number of nodes.
func (s *Store) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.nodes)
}

// EdgeCount returns the number of stored edges (mirror arcs do not count).
func (s *Store) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.edges)
}

// HasNode reports whether a node with the given id exists.
func (s *Store) HasNode(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.nodes[id]

	return ok
}

// Snapshot deep-copies the adjacency projection. The traversal engine works
// exclusively against the snapshot, so graph edits made during playback can
// never retroactively alter an in-progress event sequence.
// Complexity: O(V + E)
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	adj := make(map[int64][]Arc, len(s.adj))
	for id, arcs := range s.adj {
		cp := make([]Arc, len(arcs))
		copy(cp, arcs)
		adj[id] = cp
	}

	return &Snapshot{adj: adj}
}
