package graphstore

import "math"

// Run-state surface: every mutator used during playback tolerates stale ids
// by reporting presence via an ok-bool instead of an error, so an event that
// references a node or edge deleted mid-run degrades to a no-op.

// ResetRunState returns every node to NodeUnvisited with distance +Inf and
// every edge to EdgeDefault. Structure is untouched.
// Complexity: O(V + E)
func (s *Store) ResetRunState() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.nodes {
		n.State = NodeUnvisited
		n.Distance = math.Inf(1)
	}
	for _, e := range s.edges {
		e.State = EdgeDefault
	}
}

// DemoteCurrent moves any node in NodeCurrent to NodeVisited, preserving
// the invariant that at most one node is current at a time.
func (s *Store) DemoteCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.nodes {
		if n.State == NodeCurrent {
			n.State = NodeVisited
		}
	}
}

// SetNodeState sets the node's visual state. Returns false for a stale id.
func (s *Store) SetNodeState(id int64, state NodeState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nodes[id]
	if !ok {
		return false
	}
	n.State = state

	return true
}

// NodeState returns the node's visual state, if the node exists.
func (s *Store) NodeState(id int64) (NodeState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[id]
	if !ok {
		return NodeUnvisited, false
	}

	return n.State, true
}

// SetDistance sets the node's distance field. Returns false for a stale id.
func (s *Store) SetDistance(id int64, distance float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nodes[id]
	if !ok {
		return false
	}
	n.Distance = distance

	return true
}

// Label returns the node's display label, if the node exists.
func (s *Store) Label(id int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[id]
	if !ok {
		return "", false
	}

	return n.Label, true
}

// SetEdgeState sets the visual state of the edge named by key. In
// undirected mode the reversed orientation matches as well, so a traversal
// step into either endpoint finds the stored edge. Returns false when no
// such edge survives.
func (s *Store) SetEdgeState(key EdgeKey, state EdgeState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.edges {
		if e.From == key.From && e.To == key.To {
			e.State = state
			return true
		}
		if !s.directed && e.From == key.To && e.To == key.From {
			e.State = state
			return true
		}
	}

	return false
}
