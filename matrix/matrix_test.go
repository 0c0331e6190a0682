package matrix_test

import (
	"math"
	"testing"

	"github.com/lamellae/tda/core"
	"github.com/lamellae/tda/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathGraph is the weighted path 0 -2- 1 -6- 2 plus an isolated vertex 3.
func pathGraph(t *testing.T) *core.Complex {
	t.Helper()
	K, err := core.NewComplex(
		core.NewSimplex(0, 0),
		core.NewSimplex(0, 1),
		core.NewSimplex(0, 2),
		core.NewSimplex(0, 3),
		core.NewSimplex(2, 0, 1),
		core.NewSimplex(6, 1, 2),
	)
	require.NoError(t, err)

	return K
}

func TestAdjacency_WeightsAndHoles(t *testing.T) {
	K := pathGraph(t)

	d, err := matrix.Adjacency(K, false)
	require.NoError(t, err)

	r, c := d.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)

	assert.Equal(t, 0.0, d.At(0, 0))
	assert.Equal(t, 2.0, d.At(0, 1))
	assert.Equal(t, 2.0, d.At(1, 0), "undirected edges are mirrored")
	assert.Equal(t, 6.0, d.At(1, 2))
	assert.True(t, math.IsInf(d.At(0, 2), 1), "no direct edge 0-2")
	assert.True(t, math.IsInf(d.At(0, 3), 1), "vertex 3 is isolated")
}

func TestAdjacency_Unit(t *testing.T) {
	K := pathGraph(t)

	d, err := matrix.Adjacency(K, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.At(0, 1))
	assert.Equal(t, 1.0, d.At(1, 2))
}

func TestAdjacency_Errors(t *testing.T) {
	_, err := matrix.Adjacency(nil, false)
	assert.ErrorIs(t, err, matrix.ErrNilComplex)

	empty, err := core.NewComplex()
	require.NoError(t, err)
	_, err = matrix.Adjacency(empty, false)
	assert.ErrorIs(t, err, matrix.ErrNoVertices)

	// Edge endpoint 7 has no matching vertex in 0..1.
	sparse, err := core.NewComplex(
		core.NewSimplex(0, 0),
		core.NewSimplex(0, 7),
		core.NewSimplex(1, 0, 7),
	)
	require.NoError(t, err)
	_, err = matrix.Adjacency(sparse, false)
	assert.ErrorIs(t, err, matrix.ErrVertexRange)
}

func TestDistances_ShortestPaths(t *testing.T) {
	K := pathGraph(t)

	d, err := matrix.Distances(K, false)
	require.NoError(t, err)

	assert.Equal(t, 8.0, d.At(0, 2), "path 0-1-2 composes the two edges")
	assert.Equal(t, 8.0, d.At(2, 0))
	assert.True(t, math.IsInf(d.At(0, 3), 1), "isolated vertex stays unreachable")
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0.0, d.At(i, i))
	}
}

func TestDistances_Hops(t *testing.T) {
	K := pathGraph(t)

	d, err := matrix.Distances(K, true)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d.At(0, 2), "two hops along the path")
}

func TestClosenessCentrality(t *testing.T) {
	// Path on three vertices: the middle vertex is closest to the rest.
	K, err := core.NewComplex(
		core.NewSimplex(0, 0),
		core.NewSimplex(0, 1),
		core.NewSimplex(0, 2),
		core.NewSimplex(1, 0, 1),
		core.NewSimplex(1, 1, 2),
	)
	require.NoError(t, err)

	cc, err := matrix.ClosenessCentrality(K)
	require.NoError(t, err)
	require.Len(t, cc, 3)

	// Hop sums: ends 1+2=3, middle 1+1=2.
	assert.InDelta(t, 1.0, cc[0], 1e-12)
	assert.InDelta(t, 1.5, cc[1], 1e-12)
	assert.InDelta(t, 1.0, cc[2], 1e-12)
	assert.Greater(t, cc[1], cc[0], "the middle vertex dominates")
}

func TestClosenessCentrality_IsolatedVertex(t *testing.T) {
	K, err := core.NewComplex(core.NewSimplex(0, 0))
	require.NoError(t, err)

	cc, err := matrix.ClosenessCentrality(K)
	require.NoError(t, err)
	require.Len(t, cc, 1)
	assert.True(t, math.IsInf(cc[0], 1), "no finite distances to sum")
}
