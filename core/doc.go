// Package core defines the central Graph, Node, and Edge types of plexus,
// and provides primitives for building, querying, and mutating in-memory
// graphs with mixed directedness.
//
// What
//
//   - Node: identity, label, feature bag, and four edge buckets
//     (incoming, outgoing, undirected, self-loop accounting) with cached
//     degree counters.
//   - Edge: identity, label, endpoints (A,B), per-edge Directed and
//     Weighted flags, float64 weight.
//   - Graph: insertion-ordered node and edge catalogs, directed/undirected
//     sub-catalogs, derived Mode (Init/Directed/Undirected/Mixed),
//     cascading deletion, Stats snapshot, and a structural version counter
//     consumed by algorithms as a mutation guard.
//   - TypedGraph: an overlay bucketing nodes and edges by canonicalized
//     (uppercased) label, with GENERIC holding entities whose label equals
//     their id.
//
// Ordering
//
//	Nodes() and Edges() return entities in insertion order. Every
//	projection and algorithm in this module relies on that order for
//	index alignment, so it is a hard contract, not a convenience.
//
// Concurrency
//
//	Graph mutators and queries are guarded by an internal RWMutex, so a
//	graph may be shared read-only across goroutines. Node accessors do not
//	lock on their own: they are owned by the graph and algorithms treat
//	the structure as frozen for the duration of a run (see Version).
//
// Errors
//
//	ErrEmptyNodeID     - node ID is the empty string.
//	ErrEmptyEdgeID     - edge ID is the empty string.
//	ErrNilNode         - node pointer is nil.
//	ErrNilEdge         - edge pointer is nil.
//	ErrNodeNotFound    - requested node does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrDuplicateNode   - node ID already present.
//	ErrDuplicateEdge   - edge ID already present (or undirected re-attach).
//	ErrMissingEndpoint - edge references a node outside the graph.
//	ErrEdgeNotIncident - edge does not touch the node it was offered to.
//	ErrBadWeight       - NaN weight on a weighted edge.
package core
