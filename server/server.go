// Package server exposes the graph editor and playback controls over HTTP:
// a JSON API for edits and run control, a websocket stream of the render
// state, and Prometheus metrics.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stepvis/stepvis/graphstore"
	"github.com/stepvis/stepvis/playback"
)

const defaultPushInterval = 100 * time.Millisecond

// Server wires the store and controller to the HTTP surface.
type Server struct {
	store   *graphstore.Store
	ctrl    *playback.Controller
	log     *slog.Logger
	push    time.Duration
	metrics *metrics
	router  *gin.Engine
}

// Option configures a Server during New.
type Option func(*Server)

// WithLogger sets the request/lifecycle logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithPushInterval sets the websocket state-stream cadence.
func WithPushInterval(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.push = d
		}
	}
}

// New builds the server and registers all routes.
func New(store *graphstore.Store, ctrl *playback.Controller, opts ...Option) *Server {
	s := &Server{
		store:   store,
		ctrl:    ctrl,
		log:     slog.New(slog.DiscardHandler),
		push:    defaultPushInterval,
		metrics: newMetrics(store),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/state", s.handleState)
		api.POST("/nodes", s.handleAddNode)
		api.DELETE("/nodes/:id", s.handleDeleteNode)
		api.POST("/edges", s.handleCreateEdge)
		api.PUT("/start/:id", s.handleSetStart)
		api.POST("/graph/clear", s.handleClear)

		api.POST("/run", s.handleRun)
		api.POST("/pause", s.handlePause)
		api.POST("/resume", s.handleResume)
		api.POST("/step", s.handleStep)
		api.POST("/reset", s.handleReset)
		api.PUT("/speed", s.handleSpeed)
	}

	r.GET("/ws", s.handleWebsocket)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
		s.metrics.registry, promhttp.HandlerOpts{},
	)))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router = r

	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Run blocks serving on addr.
func (s *Server) Run(addr string) error {
	s.log.Info("server: listening", "addr", addr)

	return s.router.Run(addr)
}
