package diagram_test

import (
	"math"
	"testing"

	"github.com/lamellae/tda/diagram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDiagram_AddValidation verifies the birth <= death invariant.
func TestDiagram_AddValidation(t *testing.T) {
	d := diagram.New(0)
	assert.NoError(t, d.Add(0, 1))
	assert.NoError(t, d.Add(2, 2), "diagonal points are legal until removed")
	assert.ErrorIs(t, d.Add(3, 1), diagram.ErrInvalidPoint)
}

// TestDiagram_RemoveDiagonal verifies exact diagonal removal, idempotence,
// and that unpaired points survive.
func TestDiagram_RemoveDiagonal(t *testing.T) {
	d := diagram.New(1)
	require.NoError(t, d.Add(0, 1))
	require.NoError(t, d.Add(3, 3))
	require.NoError(t, d.Add(2, 2))
	d.AddUnpaired(5)

	d.RemoveDiagonal()
	assert.Equal(t, 2, d.Size(), "exactly the two diagonal points disappear")

	d.RemoveDiagonal()
	assert.Equal(t, 2, d.Size(), "second call is a no-op")

	pts := d.Points()
	assert.Equal(t, diagram.Point{Birth: 0, Death: 1}, pts[0])
	assert.True(t, pts[1].Unpaired(), "unpaired points must never be removed")
}

// TestDiagram_Betti counts unpaired points only.
func TestDiagram_Betti(t *testing.T) {
	d := diagram.New(1)
	require.NoError(t, d.Add(0, 4))
	d.AddUnpaired(1)
	d.AddUnpaired(2)

	assert.Equal(t, 2, d.Betti())
}

// TestDiagram_CapUnpaired verifies sentinel substitution.
func TestDiagram_CapUnpaired(t *testing.T) {
	d := diagram.New(0)
	require.NoError(t, d.Add(0, 1))
	d.AddUnpaired(0)

	d.CapUnpaired(6)

	for _, p := range d.Points() {
		assert.False(t, p.Unpaired(), "no unpaired points may remain after capping")
	}
	assert.Equal(t, 6.0, d.Points()[1].Death)
}

// TestDiagram_Norms verifies the p-power sums against hand computation.
func TestDiagram_Norms(t *testing.T) {
	d := diagram.New(0)
	require.NoError(t, d.Add(0, 3)) // persistence 3
	require.NoError(t, d.Add(1, 5)) // persistence 4
	d.AddUnpaired(0)                // skipped by norms

	total, err := d.TotalPersistence(2)
	require.NoError(t, err)
	assert.Equal(t, 25.0, total, "3^2 + 4^2")

	norm, err := d.Norm(2)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, norm, 1e-12)

	assert.Equal(t, 4.0, d.InfinityNorm())

	_, err = d.TotalPersistence(0)
	assert.ErrorIs(t, err, diagram.ErrBadPower)
}

// TestPoint_Accessors verifies persistence and the unpaired sentinel.
func TestPoint_Accessors(t *testing.T) {
	p := diagram.Point{Birth: 1, Death: 4}
	assert.Equal(t, 3.0, p.Persistence())
	assert.False(t, p.Unpaired())

	u := diagram.Point{Birth: 1, Death: math.Inf(1)}
	assert.True(t, u.Unpaired())
	assert.True(t, math.IsInf(u.Persistence(), 1))
}
