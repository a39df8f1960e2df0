package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkarn/plexus/matrix"
)

func TestFloydWarshall_ShortestDistances(t *testing.T) {
	g := buildWeighted(t)
	d, err := matrix.WeightedAdjacencyMatrix(g)
	require.NoError(t, err)

	require.NoError(t, matrix.FloydWarshall(d))

	// A=0, B=1, C=2, D=3 in insertion order.
	want := map[[2]int]float64{
		{0, 1}: 1, // A→B direct
		{0, 2}: 3, // A→B→C beats A→C(4)
		{0, 3}: 6, // A→B→C→D
		{1, 3}: 5, // B→C→D beats B→D(6)
	}
	for pos, dist := range want {
		v, err := d.At(pos[0], pos[1])
		require.NoError(t, err)
		assert.Equal(t, dist, v, "distance (%d,%d)", pos[0], pos[1])
	}
	v, _ := d.At(3, 0)
	assert.True(t, math.IsInf(v, 1), "D cannot reach A")
}

func TestFloydWarshall_NonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.FloydWarshall(m), matrix.ErrNonSquare)
}

func TestFloydWarshallWithNext_PathReconstruction(t *testing.T) {
	g := buildWeighted(t)
	d, err := matrix.WeightedAdjacencyMatrix(g)
	require.NoError(t, err)
	next, err := matrix.NextMatrix(g)
	require.NoError(t, err)

	require.NoError(t, matrix.FloydWarshallWithNext(d, next))

	// Follow successor hops A → … → D and collect the index path.
	path := []int{0}
	for at := 0; at != 3; {
		hops := next[at][3]
		require.NotNil(t, hops, "successor missing at %d", at)
		at = hops[0]
		path = append(path, at)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, path, "A→B→C→D is the cheapest chain")
}

func TestFloydWarshallWithNext_ShapeChecks(t *testing.T) {
	d, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.FloydWarshallWithNext(d, make([][][]int, 2)),
		matrix.ErrDimensionMismatch)
}

func TestDense_Bounds(t *testing.T) {
	_, err := matrix.NewDense(0, 4)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrIndexOutOfBounds)

	require.NoError(t, m.Set(1, 1, 42))
	clone := m.Clone()
	require.NoError(t, m.Set(1, 1, 0))
	v, _ := clone.At(1, 1)
	assert.Equal(t, 42.0, v, "clone is independent")
}
