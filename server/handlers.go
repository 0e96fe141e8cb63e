package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stepvis/stepvis/graphstore"
	"github.com/stepvis/stepvis/playback"
	"github.com/stepvis/stepvis/traverse"
)

func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, s.renderState())
}

type addNodeRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (s *Server) handleAddNode(c *gin.Context) {
	var req addNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid node payload"})
		return
	}

	n := s.store.AddNode(req.X, req.Y)
	s.log.Debug("server: node added", "id", n.ID, "label", n.Label)
	c.JSON(http.StatusCreated, gin.H{"id": n.ID, "label": n.Label})
}

func (s *Server) handleDeleteNode(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.store.DeleteNode(id); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "id": id})
}

type createEdgeRequest struct {
	From   int64  `json:"from"`
	To     int64  `json:"to"`
	Weight *int64 `json:"weight"`
}

func (s *Server) handleCreateEdge(c *gin.Context) {
	var req createEdgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid edge payload"})
		return
	}
	weight := int64(1)
	if req.Weight != nil {
		weight = *req.Weight
	}

	// Duplicate edges come back as nil errors and read as silent no-ops.
	if err := s.store.CreateEdge(req.From, req.To, weight); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSetStart(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.store.SetStart(id); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "start_id": id})
}

func (s *Server) handleClear(c *gin.Context) {
	// Playback first, so no tick touches nodes mid-teardown.
	s.ctrl.Reset()
	s.store.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

type runRequest struct {
	Algorithm string `json:"algorithm"`
}

func (s *Server) handleRun(c *gin.Context) {
	algo, ok := s.bindAlgorithm(c)
	if !ok {
		return
	}
	before := s.ctrl.Status().RunID
	if err := s.ctrl.Start(algo); err != nil {
		s.renderError(c, err)
		return
	}

	// Starting while already running is a no-op and does not count.
	status := s.ctrl.Status()
	if status.RunID != before {
		s.metrics.runsStarted.WithLabelValues(status.Algorithm.String()).Inc()
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "run_id": status.RunID})
}

func (s *Server) handlePause(c *gin.Context) {
	s.ctrl.Pause()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleResume(c *gin.Context) {
	s.ctrl.Resume()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleStep(c *gin.Context) {
	algo, ok := s.bindAlgorithm(c)
	if !ok {
		return
	}
	if err := s.ctrl.Step(algo); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "cursor": s.ctrl.Status().Cursor})
}

func (s *Server) handleReset(c *gin.Context) {
	s.ctrl.Reset()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type speedRequest struct {
	SpeedMS int64 `json:"speed_ms"`
}

func (s *Server) handleSpeed(c *gin.Context) {
	var req speedRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SpeedMS <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "speed_ms must be a positive integer"})
		return
	}

	applied := s.ctrl.SetTickInterval(time.Duration(req.SpeedMS) * time.Millisecond)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "speed_ms": applied.Milliseconds()})
}

// bindAlgorithm reads the optional {"algorithm": ...} body; a missing body
// or empty value defaults to BFS.
func (s *Server) bindAlgorithm(c *gin.Context) (traverse.Algorithm, bool) {
	var req runRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run payload"})
			return 0, false
		}
	}
	if req.Algorithm == "" {
		return traverse.BFS, true
	}

	algo, err := traverse.ParseAlgorithm(req.Algorithm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown algorithm: " + req.Algorithm})
		return 0, false
	}

	return algo, true
}

// renderError maps domain sentinels to HTTP statuses: precondition
// violations → 409, missing ids → 404, invalid input → 400.
func (s *Server) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, playback.ErrNoStartNode):
		status = http.StatusConflict
	case errors.Is(err, graphstore.ErrNodeNotFound), errors.Is(err, traverse.ErrStartNotFound):
		status = http.StatusNotFound
	case errors.Is(err, graphstore.ErrSelfEdge), errors.Is(err, graphstore.ErrNegativeWeight):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid node id"})
		return 0, false
	}

	return id, true
}
