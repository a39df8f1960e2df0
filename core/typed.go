// Package core: TypedGraph overlay.
//
// TypedGraph buckets nodes and edges by a canonical type derived from the
// label at insertion time: the uppercased label, or GENERIC when the label
// equals the id. Every mutator delegates to the base Graph first, then
// maintains the overlay; a bucket entry disappears as soon as it empties,
// so an entity lives in exactly one bucket.
package core

import (
	"fmt"
	"strings"
)

// TypedGraph extends Graph with per-type node and edge buckets.
type TypedGraph struct {
	*Graph

	typedNodes map[string]map[string]*Node
	typedEdges map[string]map[string]*Edge

	nodeType map[string]string // node id → bucket name
	edgeType map[string]string // edge id → bucket name
}

// NewTypedGraph creates an empty TypedGraph.
func NewTypedGraph(opts ...GraphOption) *TypedGraph {
	return &TypedGraph{
		Graph:      NewGraph(opts...),
		typedNodes: make(map[string]map[string]*Node),
		typedEdges: make(map[string]map[string]*Edge),
		nodeType:   make(map[string]string),
		edgeType:   make(map[string]string),
	}
}

// typeName canonicalizes a label into a bucket name: GENERIC when the
// label equals the id, the uppercased label otherwise.
func typeName(id, label string) string {
	if label == id {
		return GenericType
	}

	return strings.ToUpper(label)
}

// AddNode inserts a node and files it under its type bucket.
func (t *TypedGraph) AddNode(id string, opts ...NodeOption) (*Node, error) {
	n, err := t.Graph.AddNode(id, opts...)
	if err != nil {
		return nil, err
	}
	bucket := typeName(n.id, n.label)
	if t.typedNodes[bucket] == nil {
		t.typedNodes[bucket] = make(map[string]*Node)
	}
	t.typedNodes[bucket][id] = n
	t.nodeType[id] = bucket

	return n, nil
}

// AddEdge inserts an edge and files it under its type bucket.
func (t *TypedGraph) AddEdge(id, a, b string, opts ...EdgeOption) (*Edge, error) {
	e, err := t.Graph.AddEdge(id, a, b, opts...)
	if err != nil {
		return nil, err
	}
	t.fileEdge(e)

	return e, nil
}

// InsertEdge wires a pre-constructed edge and files it under its type bucket.
func (t *TypedGraph) InsertEdge(e *Edge) error {
	if err := t.Graph.InsertEdge(e); err != nil {
		return err
	}
	t.fileEdge(e)

	return nil
}

func (t *TypedGraph) fileEdge(e *Edge) {
	bucket := typeName(e.id, e.label)
	if t.typedEdges[bucket] == nil {
		t.typedEdges[bucket] = make(map[string]*Edge)
	}
	t.typedEdges[bucket][e.id] = e
	t.edgeType[e.id] = bucket
}

// DeleteEdge removes the edge from the base graph and its type bucket.
func (t *TypedGraph) DeleteEdge(id string) error {
	if err := t.Graph.DeleteEdge(id); err != nil {
		return err
	}
	t.unfileEdge(id)

	return nil
}

func (t *TypedGraph) unfileEdge(id string) {
	bucket, ok := t.edgeType[id]
	if !ok {
		return
	}
	delete(t.typedEdges[bucket], id)
	if len(t.typedEdges[bucket]) == 0 {
		delete(t.typedEdges, bucket)
	}
	delete(t.edgeType, id)
}

// DeleteNode cascades incident edge removal through the typed remover,
// then removes the node from the base graph and its type bucket.
func (t *TypedGraph) DeleteNode(id string) error {
	n, err := t.Graph.Node(id)
	if err != nil {
		return err
	}
	// Incident edges go through DeleteEdge so their buckets stay in sync.
	for _, e := range n.AllEdges() {
		if err = t.DeleteEdge(e.id); err != nil {
			return err
		}
	}
	if err = t.Graph.DeleteNode(id); err != nil {
		return err
	}
	bucket := t.nodeType[id]
	delete(t.typedNodes[bucket], id)
	if len(t.typedNodes[bucket]) == 0 {
		delete(t.typedNodes, bucket)
	}
	delete(t.nodeType, id)

	return nil
}

// NodeTypes returns the bucket names currently holding nodes.
func (t *TypedGraph) NodeTypes() []string {
	out := make([]string, 0, len(t.typedNodes))
	for name := range t.typedNodes {
		out = append(out, name)
	}

	return out
}

// EdgeTypes returns the bucket names currently holding edges.
func (t *TypedGraph) EdgeTypes() []string {
	out := make([]string, 0, len(t.typedEdges))
	for name := range t.typedEdges {
		out = append(out, name)
	}

	return out
}

// NodesOfType returns the node bucket for the (canonicalized) type name.
// Returns ErrNodeNotFound when the bucket does not exist.
func (t *TypedGraph) NodesOfType(name string) (map[string]*Node, error) {
	bucket, ok := t.typedNodes[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: type %q", ErrNodeNotFound, name)
	}

	return bucket, nil
}

// EdgesOfType returns the edge bucket for the (canonicalized) type name.
// Returns ErrEdgeNotFound when the bucket does not exist.
func (t *TypedGraph) EdgesOfType(name string) (map[string]*Edge, error) {
	bucket, ok := t.typedEdges[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: type %q", ErrEdgeNotFound, name)
	}

	return bucket, nil
}

// TypedStats extends Stats with per-type entity counts.
type TypedStats struct {
	Stats
	TypedNodes map[string]int
	TypedEdges map[string]int
}

// GetTypedStats snapshots base stats plus per-bucket sizes.
func (t *TypedGraph) GetTypedStats() *TypedStats {
	st := &TypedStats{
		Stats:      *t.Graph.GetStats(),
		TypedNodes: make(map[string]int, len(t.typedNodes)),
		TypedEdges: make(map[string]int, len(t.typedEdges)),
	}
	for name, bucket := range t.typedNodes {
		st.TypedNodes[name] = len(bucket)
	}
	for name, bucket := range t.typedEdges {
		st.TypedEdges[name] = len(bucket)
	}

	return st
}
