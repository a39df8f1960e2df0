package analytics_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkarn/plexus/analytics"
	"github.com/velkarn/plexus/core"
	"github.com/velkarn/plexus/matrix"
)

// buildK4 wires the complete undirected graph on four nodes.
func buildK4(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	ids := []string{"A", "B", "C", "D"}
	for _, id := range ids {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			_, err := g.AddEdge(ids[i]+"_"+ids[j]+"_u", ids[i], ids[j])
			require.NoError(t, err)
		}
	}

	return g
}

// TestK4Metrics is the literal triangle scenario: K4 has 4 triangles,
// 12 triads, transitivity 1.
func TestK4Metrics(t *testing.T) {
	g := buildK4(t)
	ctx := context.Background()
	mul := analytics.GonumMultiplier{}

	triads, err := analytics.TriadCount(g, false)
	require.NoError(t, err)
	assert.Equal(t, 12, triads)

	triangles, err := analytics.TriangleCount(ctx, g, false, mul)
	require.NoError(t, err)
	assert.Equal(t, 4.0, triangles)

	trans, err := analytics.Transitivity(ctx, g, false, mul)
	require.NoError(t, err)
	assert.Equal(t, 1.0, trans)

	cc, err := analytics.ClusteringCoefficients(ctx, g, false, mul)
	require.NoError(t, err)
	for id, v := range cc {
		assert.Equal(t, 1.0, v, "clustering of %s in a clique", id)
	}
}

func TestDirectedTriangle(t *testing.T) {
	// A→B→C→A is one directed triangle.
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		g.AddNode(id)
	}
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}} {
		g.AddEdge(pair[0]+"_"+pair[1]+"_d", pair[0], pair[1], core.WithEdgeDirected(true))
	}
	ctx := context.Background()
	mul := analytics.GonumMultiplier{}

	triads, err := analytics.TriadCount(g, true)
	require.NoError(t, err)
	assert.Equal(t, 3, triads, "each node contributes in·out = 1")

	triangles, err := analytics.TriangleCount(ctx, g, true, mul)
	require.NoError(t, err)
	assert.Equal(t, 1.0, triangles)

	trans, err := analytics.Transitivity(ctx, g, true, mul)
	require.NoError(t, err)
	assert.Equal(t, 1.0, trans)
}

func TestTriangleFree(t *testing.T) {
	// A path graph has triads but no triangles.
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		g.AddNode(id)
	}
	g.AddEdge("ab", "A", "B")
	g.AddEdge("bc", "B", "C")
	ctx := context.Background()
	mul := analytics.GonumMultiplier{}

	triads, err := analytics.TriadCount(g, false)
	require.NoError(t, err)
	assert.Equal(t, 1, triads)

	triangles, err := analytics.TriangleCount(ctx, g, false, mul)
	require.NoError(t, err)
	assert.Zero(t, triangles)

	trans, err := analytics.Transitivity(ctx, g, false, mul)
	require.NoError(t, err)
	assert.Zero(t, trans)

	cc, err := analytics.ClusteringCoefficients(ctx, g, false, mul)
	require.NoError(t, err)
	assert.Zero(t, cc["B"], "degree-2 node without a closing edge")
	assert.Zero(t, cc["A"], "degree-1 nodes score zero by convention")
}

// failingMultiplier simulates an unavailable external capability.
type failingMultiplier struct{}

func (failingMultiplier) MatMul(context.Context, *matrix.Dense, *matrix.Dense) (*matrix.Dense, error) {
	return nil, fmt.Errorf("backend offline")
}

func TestMultiplierFailures(t *testing.T) {
	g := buildK4(t)
	ctx := context.Background()

	_, err := analytics.TriangleCount(ctx, g, false, nil)
	assert.ErrorIs(t, err, analytics.ErrMultiplier)

	_, err = analytics.TriangleCount(ctx, g, false, failingMultiplier{})
	assert.ErrorIs(t, err, analytics.ErrMultiplier)

	_, err = analytics.TriangleCount(ctx, nil, false, analytics.GonumMultiplier{})
	assert.ErrorIs(t, err, analytics.ErrGraphNil)
}

func TestGonumMultiplier_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a, _ := matrix.NewDense(2, 2)
	_, err := analytics.GonumMultiplier{}.MatMul(ctx, a, a)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGonumMultiplier_DimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 3)
	_, err := analytics.GonumMultiplier{}.MatMul(context.Background(), a, b)
	assert.ErrorIs(t, err, analytics.ErrMultiplier)
}

func TestGonumMultiplier_Product(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	require.NoError(t, a.Set(0, 1, 1)) // [[0,1],[1,0]] swap matrix
	require.NoError(t, a.Set(1, 0, 1))
	b, _ := matrix.NewDense(2, 2)
	require.NoError(t, b.Set(0, 0, 3))
	require.NoError(t, b.Set(1, 1, 7))

	p, err := analytics.GonumMultiplier{}.MatMul(context.Background(), a, b)
	require.NoError(t, err)
	v, _ := p.At(0, 1)
	assert.Equal(t, 7.0, v)
	v, _ = p.At(1, 0)
	assert.Equal(t, 3.0, v)
}
