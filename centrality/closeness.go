// Package centrality: closeness implementations.
package centrality

import (
	"context"
	"errors"
	"math"

	"github.com/velkarn/plexus/core"
	"github.com/velkarn/plexus/matrix"
	"github.com/velkarn/plexus/pfs"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("centrality: graph is nil")

// ClosenessFW computes closeness for every node through one Floyd–Warshall
// pass over the symmetric weighted adjacency view.
// Complexity: O(V³).
func ClosenessFW(ctx context.Context, g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d, err := matrix.WeightedAdjacencyMatrix(g, matrix.WithIncoming())
	if err != nil {
		return nil, err
	}
	if err = matrix.FloydWarshall(d); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	ids, _, err := matrix.Index(g)
	if err != nil {
		return nil, err
	}
	n := len(ids)
	out := make(map[string]float64, n)
	var sum, v float64
	for i, id := range ids {
		sum = 0
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if v, err = d.At(i, j); err != nil {
				return nil, err
			}
			if !math.IsInf(v, 1) {
				sum += v
			}
		}
		out[id] = closeness(n, sum)
	}

	return out, nil
}

// ClosenessPFS computes closeness through one priority-first search per
// source, following the reach set (outgoing ∪ undirected).
// Complexity: O(V·(V+E)·log V).
func ClosenessPFS(ctx context.Context, g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.NodeIDs()
	n := len(ids)
	out := make(map[string]float64, n)
	var sum float64
	for _, src := range ids {
		res, err := pfs.PFS(g, src,
			pfs.WithDirMode(pfs.DirMixed),
			pfs.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		sum = 0
		for id, entry := range res {
			if id == src || math.IsInf(entry.Distance, 1) {
				continue
			}
			sum += entry.Distance
		}
		out[src] = closeness(n, sum)
	}

	return out, nil
}

// closeness folds a distance sum into the centrality score; an isolated
// node (zero sum) scores 0 rather than dividing by zero.
func closeness(n int, sum float64) float64 {
	if sum == 0 || n < 2 {
		return 0
	}

	return float64(n-1) / sum
}
