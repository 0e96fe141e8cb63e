package server

import "math"

// nodeView is the render projection of one node. Distance is null until
// the node has a finite tentative distance, so clients never see +Inf.
type nodeView struct {
	ID       int64    `json:"id"`
	Label    string   `json:"label"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	State    string   `json:"state"`
	Distance *float64 `json:"distance"`
}

type edgeView struct {
	From   int64  `json:"from"`
	To     int64  `json:"to"`
	Weight int64  `json:"weight"`
	State  string `json:"state"`
}

type playbackView struct {
	State     string `json:"state"`
	Algorithm string `json:"algorithm"`
	RunID     string `json:"run_id,omitempty"`
	Cursor    int    `json:"cursor"`
	Total     int    `json:"total"`
	TickMS    int64  `json:"tick_ms"`
}

// stateView is the full render state pushed to clients, by polling GET
// /api/state or over the websocket stream.
type stateView struct {
	Mode     string       `json:"mode"`
	StartID  *int64       `json:"start_id"`
	Nodes    []nodeView   `json:"nodes"`
	Edges    []edgeView   `json:"edges"`
	Playback playbackView `json:"playback"`
	VisitLog []string     `json:"visit_log"`
}

func (s *Server) renderState() stateView {
	mode := "undirected"
	if s.store.Directed() {
		mode = "directed"
	}

	nodes := s.store.Nodes()
	nviews := make([]nodeView, 0, len(nodes))
	for _, n := range nodes {
		nv := nodeView{
			ID:    n.ID,
			Label: n.Label,
			X:     n.X,
			Y:     n.Y,
			State: n.State.String(),
		}
		if !math.IsInf(n.Distance, 1) {
			d := n.Distance
			nv.Distance = &d
		}
		nviews = append(nviews, nv)
	}

	edges := s.store.Edges()
	eviews := make([]edgeView, 0, len(edges))
	for _, e := range edges {
		eviews = append(eviews, edgeView{
			From:   e.From,
			To:     e.To,
			Weight: e.Weight,
			State:  e.State.String(),
		})
	}

	st := s.ctrl.Status()
	view := stateView{
		Mode:  mode,
		Nodes: nviews,
		Edges: eviews,
		Playback: playbackView{
			State:     st.State.String(),
			Algorithm: st.Algorithm.String(),
			RunID:     st.RunID,
			Cursor:    st.Cursor,
			Total:     st.Total,
			TickMS:    st.TickInterval.Milliseconds(),
		},
		VisitLog: s.ctrl.VisitLog(),
	}
	if id, ok := s.store.StartID(); ok {
		view.StartID = &id
	}

	return view
}