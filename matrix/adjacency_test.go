package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkarn/plexus/core"
	"github.com/velkarn/plexus/matrix"
)

// buildWeighted wires the classic 4-node directed weighted graph:
// A→B(1), A→C(4), B→C(2), B→D(6), C→D(3).
func buildWeighted(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
	edges := []struct {
		a, b string
		w    float64
	}{
		{"A", "B", 1}, {"A", "C", 4}, {"B", "C", 2}, {"B", "D", 6}, {"C", "D", 3},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.a+"_"+e.b+"_d", e.a, e.b,
			core.WithEdgeDirected(true), core.WithEdgeWeight(e.w))
		require.NoError(t, err)
	}

	return g
}

func TestIndex_InsertionOrder(t *testing.T) {
	g := buildWeighted(t)
	ids, idx, err := matrix.Index(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids)
	assert.Equal(t, 2, idx["C"])

	_, _, err = matrix.Index(nil)
	assert.ErrorIs(t, err, matrix.ErrNilGraph)
}

func TestAdjacencyList_Basic(t *testing.T) {
	g := buildWeighted(t)
	adj, err := matrix.AdjacencyList(g)
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"B": 1, "C": 4}, adj["A"])
	assert.Equal(t, map[string]float64{"C": 2, "D": 6}, adj["B"])
	assert.Empty(t, adj["D"], "sink has no outgoing entries")
}

func TestAdjacencyList_MinParallelEdge(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("A")
	g.AddNode("B")
	g.AddEdge("e1", "A", "B", core.WithEdgeDirected(true), core.WithEdgeWeight(5))
	g.AddEdge("e2", "A", "B", core.WithEdgeDirected(true), core.WithEdgeWeight(2))
	g.AddEdge("e3", "A", "B", core.WithEdgeDirected(true), core.WithEdgeWeight(9))

	adj, err := matrix.AdjacencyList(g)
	require.NoError(t, err)
	assert.Equal(t, 2.0, adj["A"]["B"], "parallel edges keep the minimum weight")
}

func TestAdjacencyList_UnweightedDefaultsToOne(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("A")
	g.AddNode("B")
	g.AddEdge("e", "A", "B")

	adj, err := matrix.AdjacencyList(g)
	require.NoError(t, err)
	assert.Equal(t, core.DefaultWeight, adj["A"]["B"])
	assert.Equal(t, core.DefaultWeight, adj["B"]["A"], "undirected edges reach both ways")
}

func TestAdjacencyList_SelfEntriesAndIncoming(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("A")
	g.AddNode("B")
	g.AddEdge("a_b", "A", "B", core.WithEdgeDirected(true), core.WithEdgeWeight(7))

	adj, err := matrix.AdjacencyList(g, matrix.WithIncoming(), matrix.WithSelfEntries(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, adj["A"]["A"])
	assert.Equal(t, 7.0, adj["A"]["B"])
	assert.Equal(t, 7.0, adj["B"]["A"], "incoming mode mirrors the entry")
}

func TestAdjacencyMatrix_BinaryZeroDiagonal(t *testing.T) {
	g := buildWeighted(t)
	// A directed self-loop must not leak onto the diagonal.
	_, err := g.AddEdge("A_A_d", "A", "A", core.WithEdgeDirected(true), core.WithEdgeWeight(2))
	require.NoError(t, err)

	m, err := matrix.AdjacencyMatrix(g)
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())

	var i int
	for i = 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		require.NoError(t, err)
		assert.Zero(t, v, "diagonal is always 0")
	}
	v, _ := m.At(0, 1) // A→B
	assert.Equal(t, 1.0, v)
	v, _ = m.At(1, 0) // B→A absent
	assert.Equal(t, 0.0, v)
}

func TestWeightedAdjacencyMatrix_Sentinels(t *testing.T) {
	g := buildWeighted(t)
	m, err := matrix.WeightedAdjacencyMatrix(g)
	require.NoError(t, err)

	v, _ := m.At(0, 1)
	assert.Equal(t, 1.0, v)
	v, _ = m.At(0, 3) // A→D has no direct edge
	assert.True(t, math.IsInf(v, 1))
	v, _ = m.At(2, 2)
	assert.Equal(t, matrix.DefaultSelfDist, v)

	// Invariant: finite (i,j) iff the adjacency list holds a finite entry.
	adj, err := matrix.AdjacencyList(g)
	require.NoError(t, err)
	ids, _, _ := matrix.Index(g)
	for i, uid := range ids {
		for j, vid := range ids {
			if i == j {
				continue
			}
			cell, err := m.At(i, j)
			require.NoError(t, err)
			_, listed := adj[uid][vid]
			assert.Equal(t, listed, !math.IsInf(cell, 1),
				"cell (%s,%s) finite iff listed", uid, vid)
		}
	}
}

func TestWeightedAdjacencyMatrix_UndirectedSymmetry(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		g.AddNode(id)
	}
	g.AddEdge("a_b", "A", "B", core.WithEdgeWeight(2))
	g.AddEdge("b_c", "B", "C", core.WithEdgeWeight(3))

	m, err := matrix.WeightedAdjacencyMatrix(g, matrix.WithIncoming())
	require.NoError(t, err)
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			vij, _ := m.At(i, j)
			vji, _ := m.At(j, i)
			assert.Equal(t, vij, vji, "symmetric at (%d,%d)", i, j)
		}
	}
}

func TestNextMatrix_Seed(t *testing.T) {
	g := buildWeighted(t)
	next, err := matrix.NextMatrix(g)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, next[0][0], "diagonal points at itself")
	assert.Equal(t, []int{1}, next[0][1], "direct edge A→B")
	assert.Nil(t, next[0][3], "A→D not directly reachable")
	assert.Nil(t, next[1][0], "directed edges do not reverse")
}
