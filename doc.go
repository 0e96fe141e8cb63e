// Package stepvis is an interactive, step-by-step graph traversal
// visualizer: build a small graph, pick a start node, and watch BFS, DFS
// or shortest-path search unfold one event at a time.
//
// 🚀 What is stepvis?
//
//	A self-contained server that brings together:
//		• Graph editing: add/remove nodes, weighted edges, directed or
//		  undirected mode, auto-assigned A…Z, AA… labels
//		• Traversals: BFS, DFS and Dijkstra-style shortest path, all
//		  materialized as one ordered sequence of visit/enqueue/setDistance
//		  events before playback begins
//		• Playback: run, pause, resume, single-step and reset, with a
//		  clamped, adjustable tick cadence
//		• Streaming: a websocket feed of the full render state, plus a
//		  plain JSON state endpoint and Prometheus metrics
//
// Everything is organized under six subpackages:
//
//	graphstore/ — the editable graph: nodes, edges, visual run state,
//	              adjacency snapshots
//	traverse/   — one traversal driver, three frontier policies, eager
//	              event materialization
//	playback/   — the Idle/Running/Paused/Finished controller that applies
//	              events to the store on timed ticks
//	server/     — gin HTTP API, websocket state stream, metrics
//	config/     — YAML configuration with defaults and validation
//	logging/    — slog construction shared by server and controller
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     1
//	    │     │
//	    └─────C
//
//	shortest path from A settles C at distance 2 via B, not 4 via the
//	direct edge, and the playback shows exactly why, tick by tick.
//
//	go run github.com/stepvis/stepvis/cmd/stepvis serve --demo
package stepvis
