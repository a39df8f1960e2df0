// Package matrix: graph → numeric projections.
//
// All projections share the canonical node ordering (insertion order) so
// downstream numeric code can unambiguously map indices back to ids.
package matrix

import (
	"math"

	"github.com/velkarn/plexus/core"
)

// Index returns the canonical node ordering and its inverse: ids in
// insertion order and the id→index side table.
// Complexity: O(V).
func Index(g *core.Graph) ([]string, map[string]int, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	ids := g.NodeIDs()
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	return ids, idx, nil
}

// AdjacencyList builds the per-node neighbor→weight mapping {u: {v: w}}.
//
// Semantics:
//   - the iteration domain per node u is ReachNodes(u), extended with
//     PrevNodes(u) under WithIncoming;
//   - an unweighted edge (NaN weight) contributes core.DefaultWeight;
//   - parallel edges keep the minimum weight;
//   - WithSelfEntries seeds result[u][u] with the self distance;
//   - under WithIncoming every improved entry is mirrored to result[v][u],
//     which preserves mutual reachability in the symmetric view.
//
// Complexity: O(V + E).
func AdjacencyList(g *core.Graph, opts ...Option) (map[string]map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := gatherOptions(opts...)

	nodes := g.Nodes()
	result := make(map[string]map[string]float64, len(nodes))
	for _, u := range nodes {
		result[u.ID()] = make(map[string]float64)
		if o.includeSelf {
			result[u.ID()][u.ID()] = o.selfDist
		}
	}

	var w, have float64
	var ok bool
	for _, u := range nodes {
		uid := u.ID()
		domain := u.ReachNodes()
		if o.incoming {
			domain = append(domain, u.PrevNodes()...)
		}
		for _, ne := range domain {
			vid := ne.Node.ID()
			w = ne.Edge.WeightOrDefault()
			have, ok = result[uid][vid]
			if ok && have <= w {
				continue // existing parallel edge is at least as cheap
			}
			result[uid][vid] = w
			if o.incoming {
				result[vid][uid] = w
			}
		}
	}

	return result, nil
}

// AdjacencyMatrix builds the binary n×n adjacency matrix: cell (i,j) is 1
// iff a finite weight exists between the i-th and j-th node in insertion
// order; the diagonal is always 0.
// Complexity: O(V² + E).
func AdjacencyMatrix(g *core.Graph) (*Dense, error) {
	adj, err := AdjacencyList(g)
	if err != nil {
		return nil, err
	}
	ids, idx, err := Index(g)
	if err != nil {
		return nil, err
	}
	m, err := NewDense(len(ids), len(ids))
	if err != nil {
		return nil, err
	}
	for uid, row := range adj {
		i := idx[uid]
		for vid, w := range row {
			j := idx[vid]
			if i == j || math.IsInf(w, 0) {
				continue
			}
			if err = m.Set(i, j, 1); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// WeightedAdjacencyMatrix builds the n×n weight matrix: the self distance
// on the diagonal, the (minimum) edge weight where one exists, +Inf as the
// "no edge" sentinel everywhere else.
// Complexity: O(V² + E).
func WeightedAdjacencyMatrix(g *core.Graph, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	adj, err := AdjacencyList(g, opts...)
	if err != nil {
		return nil, err
	}
	ids, idx, err := Index(g)
	if err != nil {
		return nil, err
	}
	n := len(ids)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	// Seed every cell with the sentinel, the diagonal with the self distance.
	inf := math.Inf(1)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := inf
			if i == j {
				v = o.selfDist
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	for uid, row := range adj {
		i = idx[uid]
		for vid, w := range row {
			j = idx[vid]
			if i == j {
				continue // diagonal is owned by the self distance
			}
			if err = m.Set(i, j, w); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// NextMatrix builds the successor seed for Floyd–Warshall path
// reconstruction: cell (i,j) is the single-element list [j] when i == j or
// j is directly reachable from i, nil otherwise.
// Complexity: O(V² + E).
func NextMatrix(g *core.Graph, opts ...Option) ([][][]int, error) {
	adj, err := AdjacencyList(g, opts...)
	if err != nil {
		return nil, err
	}
	ids, _, err := Index(g)
	if err != nil {
		return nil, err
	}
	n := len(ids)
	next := make([][][]int, n)
	for i := range next {
		next[i] = make([][]int, n)
	}
	for i, uid := range ids {
		for j, vid := range ids {
			if i == j {
				next[i][j] = []int{j}
				continue
			}
			if w, ok := adj[uid][vid]; ok && !math.IsInf(w, 0) {
				next[i][j] = []int{j}
			}
		}
	}

	return next, nil
}
