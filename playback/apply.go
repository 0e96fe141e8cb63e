package playback

import (
	"github.com/stepvis/stepvis/graphstore"
	"github.com/stepvis/stepvis/traverse"
)

// apply mutates the store's visual state for one event. Every store call
// tolerates missing ids, so an event referencing a node or edge deleted
// mid-run degrades to a per-event no-op.
func (c *Controller) apply(ev traverse.Event) {
	// Only one node may render as current at a time.
	c.store.DemoteCurrent()

	switch ev.Kind {
	case traverse.Visit:
		if c.store.SetNodeState(ev.Node, graphstore.NodeCurrent) {
			if label, ok := c.store.Label(ev.Node); ok {
				c.visitLog = append(c.visitLog, label)
			}
		}
		if ev.HasDistance {
			c.store.SetDistance(ev.Node, ev.Distance)
		}
		if ev.HasEdge {
			c.store.SetEdgeState(ev.Edge, graphstore.EdgeVisited)
		}
	case traverse.Enqueue:
		// An already in-queue or visited node is never downgraded, but a
		// relaxation still overwrites its tentative distance.
		if st, ok := c.store.NodeState(ev.Node); ok && st == graphstore.NodeUnvisited {
			c.store.SetNodeState(ev.Node, graphstore.NodeInQueue)
		}
		if ev.HasDistance {
			c.store.SetDistance(ev.Node, ev.Distance)
		}
		if ev.HasEdge {
			c.store.SetEdgeState(ev.Edge, graphstore.EdgeActive)
		}
	case traverse.SetDistance:
		if ev.HasDistance {
			c.store.SetDistance(ev.Node, ev.Distance)
		}
	}
}
