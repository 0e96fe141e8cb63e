package playback_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stepvis/stepvis/graphstore"
	"github.com/stepvis/stepvis/playback"
	"github.com/stepvis/stepvis/traverse"
)

// triangle builds the directed A→B(1), A→C(4), B→C(1) graph with A as the
// designated start and returns the store plus the three node ids.
func triangle(t *testing.T) (*graphstore.Store, [3]int64) {
	t.Helper()
	s := graphstore.New(graphstore.WithDirected())
	a := s.AddNode(100, 100)
	b := s.AddNode(200, 100)
	c := s.AddNode(300, 100)
	require.NoError(t, s.CreateEdge(a.ID, b.ID, 1))
	require.NoError(t, s.CreateEdge(a.ID, c.ID, 4))
	require.NoError(t, s.CreateEdge(b.ID, c.ID, 1))
	require.NoError(t, s.SetStart(a.ID))

	return s, [3]int64{a.ID, b.ID, c.ID}
}

// stepToFinish drives the controller one event at a time until Finished.
func stepToFinish(t *testing.T, c *playback.Controller, algo traverse.Algorithm) {
	t.Helper()
	for i := 0; i < 256; i++ {
		require.NoError(t, c.Step(algo))
		if c.Status().State == playback.Finished {
			return
		}
	}
	t.Fatal("run did not finish within 256 steps")
}

type visual struct {
	state    graphstore.NodeState
	distance float64
}

// visuals captures the per-node (state, distance) assignment for
// end-of-run comparisons.
func visuals(s *graphstore.Store) map[int64]visual {
	out := make(map[int64]visual)
	for _, n := range s.Nodes() {
		out[n.ID] = visual{state: n.State, distance: n.Distance}
	}

	return out
}

func TestStart_RequiresStartNode(t *testing.T) {
	s := graphstore.New()
	s.AddNode(0, 0)
	c := playback.NewController(s)

	require.ErrorIs(t, c.Start(traverse.BFS), playback.ErrNoStartNode)
	require.ErrorIs(t, c.Step(traverse.BFS), playback.ErrNoStartNode)
	require.Equal(t, playback.Idle, c.Status().State)
	require.Empty(t, c.VisitLog())
}

func TestStep_FromIdleEntersPaused(t *testing.T) {
	s, ids := triangle(t)
	c := playback.NewController(s)

	require.NoError(t, c.Step(traverse.BFS))

	st := c.Status()
	require.Equal(t, playback.Paused, st.State)
	require.Equal(t, 1, st.Cursor)
	require.NotEmpty(t, st.RunID)

	// BFS's first event visits the start node.
	state, ok := s.NodeState(ids[0])
	require.True(t, ok)
	require.Equal(t, graphstore.NodeCurrent, state)
	require.Equal(t, []string{"A"}, c.VisitLog())
}

func TestStep_NoOpWhileFinished(t *testing.T) {
	s, _ := triangle(t)
	c := playback.NewController(s)

	stepToFinish(t, c, traverse.BFS)
	before := c.Status()
	require.NoError(t, c.Step(traverse.BFS))
	require.Equal(t, before, c.Status())
}

func TestStepThrough_ShortestPathVisuals(t *testing.T) {
	s, ids := triangle(t)
	c := playback.NewController(s)

	stepToFinish(t, c, traverse.ShortestPath)

	require.Equal(t, []string{"A", "B", "C"}, c.VisitLog())

	nodes := map[int64]graphstore.Node{}
	for _, n := range s.Nodes() {
		nodes[n.ID] = n
	}
	require.Equal(t, float64(0), nodes[ids[0]].Distance)
	require.Equal(t, float64(1), nodes[ids[1]].Distance)
	require.Equal(t, float64(2), nodes[ids[2]].Distance) // via A→B→C, not the direct A→C
	require.Equal(t, graphstore.NodeVisited, nodes[ids[0]].State)
	require.Equal(t, graphstore.NodeVisited, nodes[ids[1]].State)
	// The final visit leaves its target highlighted.
	require.Equal(t, graphstore.NodeCurrent, nodes[ids[2]].State)
}

func TestReplayAfterReset_IsIdempotent(t *testing.T) {
	s, _ := triangle(t)
	c := playback.NewController(s)

	stepToFinish(t, c, traverse.ShortestPath)
	first := visuals(s)
	firstLog := c.VisitLog()

	c.Reset()
	require.Equal(t, playback.Idle, c.Status().State)
	require.Empty(t, c.VisitLog())
	for _, n := range s.Nodes() {
		require.Equal(t, graphstore.NodeUnvisited, n.State)
		require.True(t, math.IsInf(n.Distance, 1))
	}

	stepToFinish(t, c, traverse.ShortestPath)
	require.Equal(t, first, visuals(s))
	require.Equal(t, firstLog, c.VisitLog())
}

func TestStart_NoOpWhileRunning(t *testing.T) {
	s, _ := triangle(t)
	// A two-second tick keeps the run parked after its first event.
	c := playback.NewController(s, playback.WithTickInterval(2*time.Second))

	require.NoError(t, c.Start(traverse.BFS))
	runID := c.Status().RunID
	require.NoError(t, c.Start(traverse.DFS))

	st := c.Status()
	require.Equal(t, playback.Running, st.State)
	require.Equal(t, runID, st.RunID)
	require.Equal(t, traverse.BFS, st.Algorithm)

	c.Reset()
}

func TestRunningPlayback_MatchesStepping(t *testing.T) {
	timed, _ := triangle(t)
	c := playback.NewController(timed,
		playback.WithTickBounds(time.Millisecond, time.Second),
		playback.WithTickInterval(time.Millisecond),
		playback.WithPollInterval(time.Millisecond),
	)
	require.NoError(t, c.Start(traverse.ShortestPath))
	require.Eventually(t, func() bool {
		return c.Status().State == playback.Finished
	}, 5*time.Second, time.Millisecond)

	stepped, _ := triangle(t)
	ref := playback.NewController(stepped)
	stepToFinish(t, ref, traverse.ShortestPath)

	require.Equal(t, visuals(stepped), visuals(timed))
	require.Equal(t, ref.VisitLog(), c.VisitLog())
}

func TestPauseResume(t *testing.T) {
	s, _ := triangle(t)
	// A wide initial tick guarantees the run is still going when Pause
	// lands; the interval is dropped before resuming.
	c := playback.NewController(s,
		playback.WithTickBounds(time.Millisecond, time.Minute),
		playback.WithTickInterval(time.Minute),
		playback.WithPollInterval(time.Millisecond),
	)

	// Pause and Resume outside their source states are silent no-ops.
	c.Pause()
	c.Resume()
	require.Equal(t, playback.Idle, c.Status().State)

	require.NoError(t, c.Start(traverse.BFS))
	c.Pause()
	require.Equal(t, playback.Paused, c.Status().State)

	cursor := c.Status().Cursor
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, cursor, c.Status().Cursor, "cursor must hold while paused")

	c.SetTickInterval(time.Millisecond)
	c.Resume()
	require.Eventually(t, func() bool {
		return c.Status().State == playback.Finished
	}, 5*time.Second, time.Millisecond)
}

func TestDeleteNodeMidRun_SkipsStaleEvents(t *testing.T) {
	s, ids := triangle(t)
	c := playback.NewController(s)

	// Materialize and apply the first event, then delete a node whose
	// enqueue and visit are still ahead in the sequence.
	require.NoError(t, c.Step(traverse.BFS))
	require.NoError(t, s.DeleteNode(ids[1]))

	stepToFinish(t, c, traverse.BFS)

	require.Equal(t, []string{"A", "C"}, c.VisitLog())
	require.False(t, s.HasNode(ids[1]))
}

func TestSetTickInterval_Clamps(t *testing.T) {
	s, _ := triangle(t)
	c := playback.NewController(s) // default bounds 50ms..2s

	require.Equal(t, playback.DefaultMinTick, c.SetTickInterval(time.Millisecond))
	require.Equal(t, playback.DefaultMaxTick, c.SetTickInterval(time.Minute))
	require.Equal(t, 300*time.Millisecond, c.SetTickInterval(300*time.Millisecond))
	require.Equal(t, 300*time.Millisecond, c.Status().TickInterval)
}

func TestStart_RestartsAfterFinish(t *testing.T) {
	s, _ := triangle(t)
	c := playback.NewController(s, playback.WithTickInterval(2*time.Second))

	stepToFinish(t, c, traverse.BFS)
	firstRun := c.Status().RunID

	require.NoError(t, c.Start(traverse.ShortestPath))
	st := c.Status()
	require.Equal(t, playback.Running, st.State)
	require.Equal(t, traverse.ShortestPath, st.Algorithm)
	require.NotEqual(t, firstRun, st.RunID)

	c.Reset()
}
