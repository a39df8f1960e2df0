// Package core: Node type, edge buckets, degree accounting, and
// neighborhood queries.
//
// A node owns three insertion-ordered edge buckets (incoming, outgoing,
// undirected) plus a self-loop counter. The cached degree counters always
// equal the corresponding bucket sizes; attach/detach keeps them in step.
package core

// edgeSet is an insertion-ordered set of edges keyed by edge ID.
// Removal is O(k) over the order slice; buckets are small in practice.
type edgeSet struct {
	order []string
	items map[string]*Edge
}

func newEdgeSet() *edgeSet {
	return &edgeSet{items: make(map[string]*Edge)}
}

func (s *edgeSet) has(id string) bool {
	_, ok := s.items[id]

	return ok
}

func (s *edgeSet) add(e *Edge) {
	if s.has(e.id) {
		return
	}
	s.items[e.id] = e
	s.order = append(s.order, e.id)
}

func (s *edgeSet) remove(id string) bool {
	if !s.has(id) {
		return false
	}
	delete(s.items, id)
	for i, eid := range s.order {
		if eid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return true
}

func (s *edgeSet) size() int { return len(s.items) }

// list returns the bucket contents in insertion order.
func (s *edgeSet) list() []*Edge {
	out := make([]*Edge, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}

	return out
}

// Node represents a graph vertex with a label, an opaque feature bag, and
// bucketed incident edges.
//
// Nodes are created through Graph.AddNode and mutated only through the
// graph's public interface; the feature bag is the one exception, reserved
// for callers (algorithms in this module keep their transient state in
// side tables instead).
type Node struct {
	id       string
	label    string
	features map[string]interface{}

	in  *edgeSet // directed edges pointing into this node
	out *edgeSet // directed edges leaving this node
	und *edgeSet // undirected edges with this node as an endpoint

	inDeg, outDeg, undDeg, selfDeg int
}

// NodeOption configures a node at construction time.
type NodeOption func(*Node)

// WithNodeLabel overrides the default label (which equals the node ID).
func WithNodeLabel(label string) NodeOption {
	return func(n *Node) { n.label = label }
}

// WithFeatures seeds the feature bag. The map is copied.
func WithFeatures(features map[string]interface{}) NodeOption {
	return func(n *Node) {
		for k, v := range features {
			n.features[k] = v
		}
	}
}

// newNode constructs a detached node; Graph.AddNode is the public factory.
func newNode(id string, opts ...NodeOption) *Node {
	n := &Node{
		id:       id,
		label:    id,
		features: make(map[string]interface{}),
		in:       newEdgeSet(),
		out:      newEdgeSet(),
		und:      newEdgeSet(),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// ID returns the unique node identifier.
func (n *Node) ID() string { return n.id }

// Label returns the node label.
func (n *Node) Label() string { return n.label }

// SetLabel replaces the node label.
func (n *Node) SetLabel(label string) { n.label = label }

// Feature returns the feature stored under key, with presence flag.
func (n *Node) Feature(key string) (interface{}, bool) {
	v, ok := n.features[key]

	return v, ok
}

// SetFeature stores an arbitrary value under key.
func (n *Node) SetFeature(key string, value interface{}) {
	n.features[key] = value
}

// DeleteFeature removes key from the feature bag; absent keys are a no-op.
func (n *Node) DeleteFeature(key string) {
	delete(n.features, key)
}

// ClearFeatures resets the feature bag to empty.
func (n *Node) ClearFeatures() {
	n.features = make(map[string]interface{})
}

// Features returns a shallow copy of the feature bag.
func (n *Node) Features() map[string]interface{} {
	out := make(map[string]interface{}, len(n.features))
	for k, v := range n.features {
		out[k] = v
	}

	return out
}

// InDegree returns the number of directed edges pointing into the node.
func (n *Node) InDegree() int { return n.inDeg }

// OutDegree returns the number of directed edges leaving the node.
func (n *Node) OutDegree() int { return n.outDeg }

// UndDegree returns the number of undirected incident edges.
func (n *Node) UndDegree() int { return n.undDeg }

// SelfDegree returns the number of self-loops (directed or undirected).
func (n *Node) SelfDegree() int { return n.selfDeg }

// HasEdge reports whether the edge ID sits in any of the node's buckets.
func (n *Node) HasEdge(id string) bool {
	return n.in.has(id) || n.out.has(id) || n.und.has(id)
}

// attachEdge files e into the appropriate bucket(s) and bumps counters.
//
// Rules:
//   - the edge must touch this node (ErrEdgeNotIncident);
//   - directed, A == self and not yet filed: goes to out; if B == self as
//     well (self-loop) it additionally goes to in;
//   - directed, only B == self: goes to in;
//   - undirected: rejected with ErrDuplicateEdge when already present, or
//     when a self-loop arrives on a node that already carries one (a fresh
//     edge ID does not make a second undirected loop legal).
func (n *Node) attachEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	if e.a != n && e.b != n {
		return ErrEdgeNotIncident
	}
	if !e.directed {
		if n.und.has(e.id) {
			return ErrDuplicateEdge
		}
		// A node carries at most one undirected self-loop, regardless of
		// the edge ID it arrives under.
		if e.IsLoop() && n.hasUndLoop() {
			return ErrDuplicateEdge
		}
		n.und.add(e)
		n.undDeg++
		if e.IsLoop() {
			n.selfDeg++
		}

		return nil
	}

	attached := false
	if e.a == n && !n.out.has(e.id) {
		n.out.add(e)
		n.outDeg++
		attached = true
	}
	if e.b == n && !n.in.has(e.id) {
		n.in.add(e)
		n.inDeg++
		attached = true
	}
	if !attached {
		return ErrDuplicateEdge
	}
	if e.IsLoop() {
		n.selfDeg++
	}

	return nil
}

// hasUndLoop reports whether an undirected self-loop already sits in the
// und bucket. SelfDegree cannot stand in here: it also counts directed
// loops, which do not block an undirected one.
func (n *Node) hasUndLoop() bool {
	for _, e := range n.und.items {
		if e.IsLoop() {
			return true
		}
	}

	return false
}

// detachEdge removes e from every bucket it occupies and restores counters.
// Unknown edges are a no-op.
func (n *Node) detachEdge(e *Edge) {
	if e == nil {
		return
	}
	removed := false
	if n.in.remove(e.id) {
		n.inDeg--
		removed = true
	}
	if n.out.remove(e.id) {
		n.outDeg--
		removed = true
	}
	if n.und.remove(e.id) {
		n.undDeg--
		removed = true
	}
	if removed && e.IsLoop() {
		n.selfDeg--
	}
}

// InEdges returns directed edges into the node, in attachment order.
func (n *Node) InEdges() []*Edge { return n.in.list() }

// OutEdges returns directed edges out of the node, in attachment order.
func (n *Node) OutEdges() []*Edge { return n.out.list() }

// UndEdges returns undirected incident edges, in attachment order.
func (n *Node) UndEdges() []*Edge { return n.und.list() }

// DirEdges returns all directed incident edges (in ∪ out); a directed
// self-loop appears once.
func (n *Node) DirEdges() []*Edge {
	out := n.out.list()
	for _, e := range n.in.list() {
		if !e.IsLoop() { // loops are already in the out bucket
			out = append(out, e)
		}
	}

	return out
}

// AllEdges returns every incident edge (directed and undirected).
func (n *Node) AllEdges() []*Edge {
	return append(n.DirEdges(), n.und.list()...)
}

// PrevNodes returns predecessors: one entry per incoming directed edge.
func (n *Node) PrevNodes(identity ...IdentityFunc) []Neighbor {
	entries := make([]Neighbor, 0, n.inDeg)
	for _, e := range n.in.list() {
		entries = append(entries, Neighbor{Node: e.a, Edge: e})
	}

	return dedupe(entries, identity)
}

// NextNodes returns successors: one entry per outgoing directed edge.
func (n *Node) NextNodes(identity ...IdentityFunc) []Neighbor {
	entries := make([]Neighbor, 0, n.outDeg)
	for _, e := range n.out.list() {
		entries = append(entries, Neighbor{Node: e.b, Edge: e})
	}

	return dedupe(entries, identity)
}

// ConnNodes returns undirected neighbors: one entry per undirected edge.
func (n *Node) ConnNodes(identity ...IdentityFunc) []Neighbor {
	entries := make([]Neighbor, 0, n.undDeg)
	for _, e := range n.und.list() {
		entries = append(entries, Neighbor{Node: e.Other(n), Edge: e})
	}

	return dedupe(entries, identity)
}

// ReachNodes returns the reach set: NextNodes ∪ ConnNodes.
func (n *Node) ReachNodes(identity ...IdentityFunc) []Neighbor {
	entries := append(n.NextNodes(), n.ConnNodes()...)

	return dedupe(entries, identity)
}

// AllNeighbors returns PrevNodes ∪ NextNodes ∪ ConnNodes.
func (n *Node) AllNeighbors(identity ...IdentityFunc) []Neighbor {
	entries := append(n.PrevNodes(), append(n.NextNodes(), n.ConnNodes()...)...)

	return dedupe(entries, identity)
}
