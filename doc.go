// Package plexus is an in-memory graph analytics toolkit: typed nodes and
// edges with mixed directedness, numeric projections, and the classic
// structural algorithms built on top of them.
//
// What plexus brings together:
//
//   - Core primitives: insertion-ordered graphs with per-edge direction
//     and weight flags, degree accounting, and a typed overlay
//   - Projections: adjacency dictionaries, binary and weighted adjacency
//     matrices, successor seeds for path reconstruction
//   - Priority-first search: the generalized best-first traversal with
//     six visitor joinpoints, of which Dijkstra is the thin default
//   - PageRank: array-based power iteration with configurable damping
//   - Centrality: closeness via Floyd–Warshall or per-source search
//   - Structural analytics: triads, triangles, transitivity, clustering
//     through an injected matrix-multiplier capability
//
// Everything is organized under focused subpackages:
//
//	core/       — Graph, Node, Edge types and structural operations
//	matrix/     — dense matrix, projections, Floyd–Warshall
//	pfs/        — priority-first search and Dijkstra
//	pagerank/   — PageRank power iteration
//	centrality/ — closeness centrality engines
//	analytics/  — triangle and clustering metrics
//	structutil/ — merge and deep-clone helpers
//	builder/    — deterministic graph generators
//	graphio/    — JSON and CSV loaders
//	cmd/plexus  — command-line reports over loaded graphs
//
// Quick ASCII example:
//
//	A ──→ B
//	│     │
//	└─ C ─┘   (undirected A—C and B—C next to a directed A→B)
//
//	g := core.NewGraph()
//	g.AddNode("A"); g.AddNode("B"); g.AddNode("C")
//	g.AddEdge("A_B_d", "A", "B", core.WithEdgeDirected(true))
//	g.AddEdge("A_C_u", "A", "C")
//	g.AddEdge("B_C_u", "B", "C")
//	dist, _ := pfs.Dijkstra(g, "A")
package plexus
