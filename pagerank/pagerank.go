// Package pagerank: preprocessing into flat arrays and the power-iteration
// kernel.
package pagerank

import (
	"fmt"
	"math"

	"github.com/velkarn/plexus/core"
)

// state is the array form of the graph used by the iteration kernel.
// Index assignment follows node insertion order; the ids slice doubles as
// the inverse of the side table when ranks are mapped back.
type state struct {
	ids    []string
	curr   []float64
	old    []float64
	outDeg []float64 // directed-out + undirected degree per node
	pull   [][]int   // source indices pulling rank into each node
}

// Compute runs PageRank on g and returns the rank per node ID.
//
// Returns ErrGraphNil, ErrEmptyGraph, ErrOptionViolation, ErrZeroOutDegree,
// or a context error on cancellation.
// Complexity: O(iterations · (V + E)) time, O(V + E) space.
func Compute(g *core.Graph, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g.NrNodes() == 0 {
		return nil, ErrEmptyGraph
	}

	st := preprocess(g, o.Init(g))
	if err := iterate(st, &o, g); err != nil {
		return nil, err
	}

	// Invert the side table: ranks land in old after the final swap.
	ranks := make(map[string]float64, len(st.ids))
	for i, id := range st.ids {
		ranks[id] = st.old[i]
	}

	return ranks, nil
}

// preprocess builds the array form: index side table, rank arrays, degree
// array, and pull lists resolved from incoming ∪ undirected edges.
func preprocess(g *core.Graph, init float64) *state {
	nodes := g.Nodes()
	n := len(nodes)

	st := &state{
		ids:    make([]string, n),
		curr:   make([]float64, n),
		old:    make([]float64, n),
		outDeg: make([]float64, n),
		pull:   make([][]int, n),
	}
	idx := make(map[string]int, n)
	for i, node := range nodes {
		st.ids[i] = node.ID()
		idx[node.ID()] = i
		st.curr[i] = init
		st.old[i] = init
		st.outDeg[i] = float64(node.OutDegree() + node.UndDegree())
	}
	// Pull lists: resolve the "other endpoint" of every inbound edge.
	for i, node := range nodes {
		var sources []int
		for _, e := range node.InEdges() {
			sources = append(sources, idx[e.A().ID()])
		}
		for _, e := range node.UndEdges() {
			sources = append(sources, idx[e.Other(node).ID()])
		}
		st.pull[i] = sources
	}

	return st
}

// iterate runs the power iteration until convergence or the cap.
// On return the freshest ranks sit in st.old.
func iterate(st *state, o *Options, g *core.Graph) error {
	n := len(st.ids)
	teleport := o.Alpha / o.AlphaDamp(g)
	retain := 1 - o.Alpha

	var (
		t, i  int
		j     int
		sum   float64
		delta float64
	)
	for t = 0; t < o.Iterations; t++ {
		// Cancellation check, once per outer iteration.
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}

		delta = 0
		for i = 0; i < n; i++ {
			sum = 0
			for _, j = range st.pull[i] {
				if st.outDeg[j] == 0 {
					return fmt.Errorf("%w: node %q", ErrZeroOutDegree, st.ids[j])
				}
				sum += st.old[j] / st.outDeg[j]
			}
			st.curr[i] = retain*sum + teleport
			delta += math.Abs(st.curr[i] - st.old[i])
		}
		// Swap instead of copying; the freshest ranks are now in old.
		st.old, st.curr = st.curr, st.old
		if delta <= o.Convergence {
			break
		}
	}

	return nil
}
