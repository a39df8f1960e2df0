// Package pfs implements priority-first search over a core.Graph: the
// generalized best-first traversal of which Dijkstra is an instance.
//
// What
//
//   - Explore nodes in order of increasing priority (by default, the best
//     known distance from the source) using a lazy-decrease-key min-heap.
//   - Per-node state in the Result map: best Distance, Parent link, and a
//     discovery Counter (-1 until first encountered).
//   - Six lifecycle joinpoints dispatched through the Visitor interface:
//     InitPFS, NotEncountered, NodeOpen, NodeClosed, BetterPath,
//     GoalReached. Embed BaseVisitor to implement only the ones you need;
//     multiple visitors run in registration order.
//   - Direction modes select the neighborhood to follow: DirOut, DirIn,
//     DirUnd, or DirMixed (the reach set: outgoing ∪ undirected).
//   - Optional goal node for early termination.
//
// Relaxation contract
//
//	For each neighbor entry the proposed distance is the current node's
//	distance plus the edge weight (1 for unweighted edges). A fresh
//	candidate fires NotEncountered then NodeOpen; a strict improvement
//	fires BetterPath then NodeOpen; an exact tie fires NodeClosed and
//	keeps the earlier parent; a worse proposal does nothing.
//
// Numeric semantics
//
//	Negative weights are rejected upfront with ErrNegativeWeight (the
//	heap's monotonicity assumption would otherwise be silently violated).
//	An infinite edge weight proposes an infinite distance, so a node that
//	is only reachable across one keeps Distance +Inf. Such a proposal is
//	still handled as a first encounter: the node gets a parent and a
//	counter, NotEncountered and NodeOpen fire, and a later finite offer
//	is again handled as a first encounter.
//
// Mutation guard
//
//	The graph must not change during a run. PFS snapshots the graph's
//	structural version at start and fails with ErrGraphMutated when a
//	callback (or another goroutine) mutates it mid-run.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O((V + E) log V) under lazy decrease-key
//   - Memory: O(V + E)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrSourceNotFound   if the source node does not exist.
//   - ErrGoalNotFound     if a goal was configured but does not exist.
//   - ErrNegativeWeight   if any weighted edge is negative.
//   - ErrGraphMutated     if the graph changes mid-run.
//   - ErrOptionViolation  if an invalid Option was supplied.
//   - context errors from WithContext on cancellation.
package pfs
