// Package centrality computes closeness centrality over a core.Graph.
//
// Two interchangeable engines implement the same definition
// closeness(u) = (n−1) / Σ d(u,v) over finite distances to other nodes:
//
//   - ClosenessFW runs Floyd–Warshall on the symmetric weighted adjacency
//     matrix: one O(n³) pass serving every node at once.
//   - ClosenessPFS runs one priority-first search per source over the
//     reach set, preferable on sparse graphs.
//
// On connected graphs both engines agree; nodes that reach nothing score 0.
//
// Errors
//
//   - ErrGraphNil if the graph pointer is nil.
//   - context errors on cancellation.
package centrality
