// Package analytics: triads, triangles, transitivity, and clustering.
package analytics

import (
	"context"
	"fmt"

	"github.com/velkarn/plexus/core"
	"github.com/velkarn/plexus/matrix"
)

// TriadCount counts potential triangles: pairs of incident edges sharing a
// vertex. Undirected graphs sum deg·(deg−1)/2 per node; directed graphs
// sum inDeg·outDeg.
// Complexity: O(V).
func TriadCount(g *core.Graph, directed bool) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	total := 0
	for _, n := range g.Nodes() {
		if directed {
			total += n.InDegree() * n.OutDegree()
			continue
		}
		deg := n.UndDegree()
		total += deg * (deg - 1) / 2
	}

	return total, nil
}

// cubeAdjacency computes A³ of the binary adjacency matrix through the
// injected multiplier. This is the module's only suspension point.
func cubeAdjacency(ctx context.Context, g *core.Graph, m Multiplier) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if m == nil {
		return nil, fmt.Errorf("%w: no capability injected", ErrMultiplier)
	}
	a, err := matrix.AdjacencyMatrix(g)
	if err != nil {
		return nil, err
	}
	a2, err := m.MatMul(ctx, a, a)
	if err != nil {
		return nil, fmt.Errorf("%w: A²: %v", ErrMultiplier, err)
	}
	a3, err := m.MatMul(ctx, a2, a)
	if err != nil {
		return nil, fmt.Errorf("%w: A³: %v", ErrMultiplier, err)
	}

	return a3, nil
}

// TriangleCount counts triangles as trace(A³)/6 for undirected graphs and
// trace(A³)/3 for directed ones.
// Complexity: O(V² + matmul).
func TriangleCount(ctx context.Context, g *core.Graph, directed bool, m Multiplier) (float64, error) {
	a3, err := cubeAdjacency(ctx, g, m)
	if err != nil {
		return 0, err
	}
	trace := 0.0
	var v float64
	for i := 0; i < a3.Rows(); i++ {
		if v, err = a3.At(i, i); err != nil {
			return 0, err
		}
		trace += v
	}
	if directed {
		return trace / 3, nil
	}

	return trace / 6, nil
}

// Transitivity is the global clustering measure 3·triangles/triads.
// A graph without triads has transitivity 0.
func Transitivity(ctx context.Context, g *core.Graph, directed bool, m Multiplier) (float64, error) {
	triads, err := TriadCount(g, directed)
	if err != nil {
		return 0, err
	}
	if triads == 0 {
		return 0, nil
	}
	triangles, err := TriangleCount(ctx, g, directed, m)
	if err != nil {
		return 0, err
	}

	return 3 * triangles / float64(triads), nil
}

// ClusteringCoefficients computes the per-node local clustering
// coefficient A³[i][i]/(deg·(deg−1)), doubled for directed graphs
// (where deg is the total in+out degree). Nodes of degree < 2 score 0.
// Complexity: O(V² + matmul).
func ClusteringCoefficients(ctx context.Context, g *core.Graph, directed bool, m Multiplier) (map[string]float64, error) {
	a3, err := cubeAdjacency(ctx, g, m)
	if err != nil {
		return nil, err
	}
	nodes := g.Nodes()
	out := make(map[string]float64, len(nodes))
	var closed float64
	for i, n := range nodes {
		deg := n.UndDegree()
		if directed {
			deg = n.InDegree() + n.OutDegree()
		}
		if deg < 2 {
			out[n.ID()] = 0
			continue
		}
		if closed, err = a3.At(i, i); err != nil {
			return nil, err
		}
		cc := closed / float64(deg*(deg-1))
		if directed {
			cc *= 2
		}
		out[n.ID()] = cc
	}

	return out, nil
}
