// Package diagram: persistence norms, the summaries used to compare
// diagrams or measure total topological mass.
package diagram

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// TotalPersistence accumulates the p-power sum of (death - birth) over all
// points with finite death. Unpaired points are skipped; cap them first
// (CapUnpaired) if they should contribute.
//
// Returns ErrBadPower for p <= 0.
func (d *Diagram) TotalPersistence(p float64) (float64, error) {
	if p <= 0 {
		return 0, ErrBadPower
	}
	powers := make([]float64, 0, len(d.points))
	for _, pt := range d.points {
		if pt.Unpaired() {
			continue
		}
		powers = append(powers, math.Pow(pt.Persistence(), p))
	}

	return floats.Sum(powers), nil
}

// Norm returns the p-th root of the p-power persistence sum, the p-norm of
// the diagram. Returns ErrBadPower for p <= 0.
func (d *Diagram) Norm(p float64) (float64, error) {
	total, err := d.TotalPersistence(p)
	if err != nil {
		return 0, err
	}

	return math.Pow(total, 1/p), nil
}

// InfinityNorm returns the largest finite persistence over all points, or 0
// for a diagram without finite points.
func (d *Diagram) InfinityNorm() float64 {
	max := 0.0
	for _, pt := range d.points {
		if pt.Unpaired() {
			continue
		}
		if pers := pt.Persistence(); pers > max {
			max = pers
		}
	}

	return max
}
