// Command stepvis serves the interactive graph-traversal visualizer: a
// JSON editing API, run controls, a websocket state stream and metrics.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stepvis/stepvis/config"
	"github.com/stepvis/stepvis/graphstore"
	"github.com/stepvis/stepvis/logging"
	"github.com/stepvis/stepvis/playback"
	"github.com/stepvis/stepvis/server"
)

var (
	configPath string
	listenAddr string
	demo       bool

	rootCmd = &cobra.Command{
		Use:           "stepvis",
		Short:         "Step-by-step graph traversal visualizer",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the editing API, playback controls and state stream",
		RunE:  runServe,
	}
)

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "path to the YAML configuration file")
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "listen address, overrides the configuration")
	serveCmd.Flags().BoolVar(&demo, "demo", false, "seed a small weighted demo graph on startup")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if listenAddr != "" {
		cfg.Listen = listenAddr
	}

	logger := logging.New(logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})

	var storeOpts []graphstore.Option
	if cfg.Graph.Directed {
		storeOpts = append(storeOpts, graphstore.WithDirected())
	}
	store := graphstore.New(storeOpts...)

	ctrl := playback.NewController(store,
		playback.WithTickInterval(cfg.Playback.Tick()),
		playback.WithTickBounds(cfg.Playback.MinTick(), cfg.Playback.MaxTick()),
		playback.WithPollInterval(cfg.Playback.Poll()),
		playback.WithLogger(logger),
	)

	if demo {
		seedDemo(store)
		logger.Info("demo graph seeded",
			"nodes", store.NodeCount(),
			"edges", store.EdgeCount(),
		)
	}

	srv := server.New(store, ctrl,
		server.WithLogger(logger),
		server.WithPushInterval(cfg.Playback.Poll()),
	)

	return srv.Run(cfg.Listen)
}

// seedDemo builds a five-node weighted graph where the cheapest route to
// the far corner is the long way around, which reads well on screen with
// the shortest-path algorithm.
func seedDemo(store *graphstore.Store) {
	a := store.AddNode(120, 240)
	b := store.AddNode(320, 120)
	c := store.AddNode(320, 360)
	d := store.AddNode(520, 240)
	e := store.AddNode(720, 240)

	_ = store.CreateEdge(a.ID, b.ID, 2)
	_ = store.CreateEdge(a.ID, c.ID, 5)
	_ = store.CreateEdge(b.ID, c.ID, 1)
	_ = store.CreateEdge(b.ID, d.ID, 4)
	_ = store.CreateEdge(c.ID, d.ID, 1)
	_ = store.CreateEdge(d.ID, e.ID, 3)
	_ = store.SetStart(a.ID)
}
