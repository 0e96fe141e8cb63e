package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/stepvis/stepvis/graphstore"
)

// metrics carries the server's Prometheus instruments on a private
// registry, so parallel test servers never collide on registration.
type metrics struct {
	registry *prometheus.Registry

	// runsStarted counts accepted run starts. Labels: algorithm.
	runsStarted *prometheus.CounterVec

	// wsClients tracks currently connected websocket sessions.
	wsClients prometheus.Gauge
}

func newMetrics(store *graphstore.Store) *metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	factory := promauto.With(reg)
	m := &metrics{
		registry: reg,
		runsStarted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stepvis",
			Name:      "runs_started_total",
			Help:      "Traversal runs started, by algorithm",
		}, []string{"algorithm"}),
		wsClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "stepvis",
			Name:      "websocket_clients",
			Help:      "Currently connected websocket state-stream clients",
		}),
	}

	// Graph size is read straight off the store at scrape time.
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "stepvis",
		Name:      "graph_nodes",
		Help:      "Nodes currently in the graph",
	}, func() float64 { return float64(store.NodeCount()) })
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "stepvis",
		Name:      "graph_edges",
		Help:      "Edges currently in the graph",
	}, func() float64 { return float64(store.EdgeCount()) })

	return m
}
