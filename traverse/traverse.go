package traverse

import (
	"math"

	"github.com/stepvis/stepvis/graphstore"
)

// policy captures how one algorithm variant deviates from the shared
// frontier/visited-set skeleton.
type policy struct {
	frontier frontier

	// reverseOffer offers neighbors in reverse adjacency order before
	// pushing, so a LIFO pop restores adjacency-order priority (DFS).
	reverseOffer bool

	// weighted enables tentative distances, the strict-improvement
	// relaxation gate and distance-carrying events (shortest path).
	weighted bool

	// visitAfterOffer delays the settled node's Visit event until after
	// its neighbors were offered, matching the weighted variant's
	// observable sequence.
	visitAfterOffer bool
}

func policyFor(algo Algorithm) (policy, error) {
	switch algo {
	case BFS:
		return policy{frontier: &fifoFrontier{}}, nil
	case DFS:
		return policy{frontier: &lifoFrontier{}, reverseOffer: true}, nil
	case ShortestPath:
		return policy{frontier: &minFrontier{}, weighted: true, visitAfterOffer: true}, nil
	default:
		return policy{}, ErrUnknownAlgorithm
	}
}

// runner holds the mutable state of one traversal run.
type runner struct {
	snap    *graphstore.Snapshot
	pol     policy
	opts    Options
	visited map[int64]bool
	dist    map[int64]float64 // tentative distances, weighted runs only
	events  []Event
	seq     int // monotonic push counter for heap tie-breaking
}

// Run materializes the complete event sequence for one traversal of snap
// starting at start. The snapshot is never mutated; the sequence is pure
// with respect to the adjacency projection at the moment the run began.
//
// The sequence for a start node with no outgoing arcs is exactly one Visit
// (preceded, for ShortestPath, by the SetDistance(start, 0) prelude).
// Nodes unreachable from start never appear.
//
// Complexity: O((V + E) log V) for ShortestPath, O(V + E) otherwise.
func Run(snap *graphstore.Snapshot, start int64, algo Algorithm, opts ...Option) ([]Event, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}
	pol, err := policyFor(algo)
	if err != nil {
		return nil, err
	}
	if !snap.Has(start) {
		return nil, ErrStartNotFound
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &runner{
		snap:    snap,
		pol:     pol,
		opts:    o,
		visited: make(map[int64]bool, snap.Len()),
		events:  make([]Event, 0, snap.Len()*2),
	}
	if pol.weighted {
		r.dist = make(map[int64]float64, snap.Len())
		r.dist[start] = 0
		r.emit(Event{Kind: SetDistance, Node: start, Distance: 0, HasDistance: true})
	}

	r.push(candidate{node: start})
	r.loop()

	return r.events, nil
}

// loop settles candidates until the frontier drains.
func (r *runner) loop() {
	for r.pol.frontier.len() > 0 {
		c, ok := r.pol.frontier.pop()
		if !ok {
			return
		}
		// Lazy de-duplication: a stale frontier entry for an already
		// settled node is discarded without emitting anything.
		if r.visited[c.node] {
			continue
		}
		r.visited[c.node] = true

		visit := Event{Kind: Visit, Node: c.node, Edge: c.via, HasEdge: c.hasVia}
		if r.pol.weighted {
			visit.Distance = c.dist
			visit.HasDistance = true
		}

		if !r.pol.visitAfterOffer {
			r.emit(visit)
		}
		r.offerNeighbors(c.node)
		if r.pol.visitAfterOffer {
			r.emit(visit)
		}
	}
}

// offerNeighbors walks the settled node's adjacency entries, emitting an
// Enqueue and pushing a candidate for each admissible neighbor. BFS and
// DFS gate offers on the visited set only, so a node already sitting in
// the frontier can be enqueued again; the weighted variant additionally
// requires a strict tentative-distance improvement (relaxation).
func (r *runner) offerNeighbors(node int64) {
	arcs := r.snap.Arcs(node)
	for i := range arcs {
		arc := arcs[i]
		if r.pol.reverseOffer {
			arc = arcs[len(arcs)-1-i]
		}
		if r.visited[arc.To] {
			continue
		}

		ev := Event{Kind: Enqueue, Node: arc.To, Edge: arc.Edge, HasEdge: true}
		next := candidate{node: arc.To, via: arc.Edge, hasVia: true}

		if r.pol.weighted {
			nd := r.dist[node] + float64(arc.Weight)
			if !r.improves(arc.To, nd) {
				continue
			}
			r.dist[arc.To] = nd
			ev.Distance = nd
			ev.HasDistance = true
			next.dist = nd
		}

		r.emit(ev)
		r.push(next)
	}
}

// improves reports whether nd is strictly better than the best tentative
// distance recorded for id (missing entries count as +Inf).
func (r *runner) improves(id int64, nd float64) bool {
	best, ok := r.dist[id]
	if !ok {
		best = math.Inf(1)
	}

	return nd < best
}

func (r *runner) push(c candidate) {
	c.seq = r.seq
	r.seq++
	r.pol.frontier.push(c)
}

func (r *runner) emit(ev Event) {
	r.events = append(r.events, ev)
	if r.opts.OnEvent != nil {
		r.opts.OnEvent(ev)
	}
}
