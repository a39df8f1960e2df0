// Package pagerank implements array-based PageRank power iteration over a
// core.Graph with mixed directedness.
//
// What
//
//   - Preprocess the graph into flat arrays: an id↔index side table in
//     node insertion order, per-node out-degree (directed-out plus
//     undirected), and per-node pull lists (the indices of nodes whose
//     rank flows in, derived from incoming ∪ undirected edges).
//   - Iterate curr[i] = (1−α)·Σ old[j]/outDeg[j] + α/αDamp until the L1
//     delta drops to the convergence threshold or the iteration cap hits.
//   - Return a map from node ID to rank by inverting the side table.
//
// Mixed-graph semantics
//
//	An undirected edge contributes to both endpoints' pull sets and counts
//	once in each endpoint's out-degree: it behaves as two directed edges
//	sharing a weight.
//
// Dangling nodes
//
//	Rank flowing into a node with no outgoing or undirected edges is not
//	redistributed; on graphs with sinks the stationary mass is biased
//	accordingly. Callers who need the classic redistribution must add
//	escape edges themselves.
//
// Weighted flag
//
//	WithWeighted is recorded but the kernel intentionally ignores edge
//	weights; the option exists so configurations can be carried around
//	unchanged until a weighted kernel lands.
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrEmptyGraph      if the graph holds no nodes.
//   - ErrZeroOutDegree   if a pull source has out-degree zero (internal
//     invariant; unreachable by construction).
//   - ErrOptionViolation if an invalid Option is supplied.
//   - context errors from WithContext on cancellation.
package pagerank
