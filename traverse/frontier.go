package traverse

import (
	"container/heap"

	"github.com/stepvis/stepvis/graphstore"
)

// candidate is one frontier entry: a node offered for settlement, the edge
// it was discovered through, and (for weighted runs) the tentative
// distance recorded at push time.
type candidate struct {
	node   int64
	via    graphstore.EdgeKey
	hasVia bool
	dist   float64
	seq    int // push order, min-heap tie-breaker
}

// frontier is the working set of discovered-but-not-settled candidates.
// The ordering policy of pop defines the algorithm.
type frontier interface {
	push(candidate)
	pop() (candidate, bool)
	len() int
}

// fifoFrontier pops candidates in push order (BFS).
type fifoFrontier struct {
	items []candidate
}

func (f *fifoFrontier) push(c candidate) { f.items = append(f.items, c) }

func (f *fifoFrontier) pop() (candidate, bool) {
	if len(f.items) == 0 {
		return candidate{}, false
	}
	c := f.items[0]
	f.items = f.items[1:]

	return c, true
}

func (f *fifoFrontier) len() int { return len(f.items) }

// lifoFrontier pops the most recently pushed candidate (DFS).
type lifoFrontier struct {
	items []candidate
}

func (f *lifoFrontier) push(c candidate) { f.items = append(f.items, c) }

func (f *lifoFrontier) pop() (candidate, bool) {
	if len(f.items) == 0 {
		return candidate{}, false
	}
	n := len(f.items) - 1
	c := f.items[n]
	f.items = f.items[:n]

	return c, true
}

func (f *lifoFrontier) len() int { return len(f.items) }

// minFrontier pops the candidate with the lowest tentative distance
// (shortest path). Equal distances fall back to push order, which keeps
// runs deterministic without promising any particular tie policy.
// Duplicates from lazy decrease-key stay in the heap and are discarded by
// the driver's visited check on pop.
type minFrontier struct {
	pq candidateHeap
}

func (f *minFrontier) push(c candidate) { heap.Push(&f.pq, c) }

func (f *minFrontier) pop() (candidate, bool) {
	if f.pq.Len() == 0 {
		return candidate{}, false
	}

	return heap.Pop(&f.pq).(candidate), true
}

func (f *minFrontier) len() int { return f.pq.Len() }

// candidateHeap is a min-heap of candidates ordered by (dist, seq).
type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].seq < h[j].seq
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]

	return c
}
