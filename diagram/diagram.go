package diagram

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for diagram operations.
var (
	// ErrInvalidPoint indicates a point with death < birth.
	ErrInvalidPoint = errors.New("diagram: death precedes birth")

	// ErrBadPower indicates a non-positive exponent for a norm computation.
	ErrBadPower = errors.New("diagram: power must be positive")
)

// Point is one feature of a persistence diagram: born when the filtration
// threshold reaches Birth, destroyed at Death. Death = +Inf marks an
// unpaired feature.
type Point struct {
	Birth float64
	Death float64
}

// Unpaired reports whether the feature never dies within the filtration.
func (p Point) Unpaired() bool { return math.IsInf(p.Death, 1) }

// Persistence returns Death - Birth (+Inf for unpaired points).
func (p Point) Persistence() float64 { return p.Death - p.Birth }

// Diagram owns the points of one homological dimension. The engine returns
// freshly owned diagrams; afterwards they are mutated only by RemoveDiagonal
// and CapUnpaired.
type Diagram struct {
	dimension int
	points    []Point
}

// New returns an empty diagram for the given homological dimension.
func New(dimension int) *Diagram {
	return &Diagram{dimension: dimension}
}

// Dimension returns the homological dimension the diagram describes.
func (d *Diagram) Dimension() int { return d.dimension }

// Size returns the number of points, unpaired ones included.
func (d *Diagram) Size() int { return len(d.points) }

// Points returns a copy of the point multiset.
func (d *Diagram) Points() []Point {
	out := make([]Point, len(d.points))
	copy(out, d.points)

	return out
}

// Add appends a finite point. Returns ErrInvalidPoint if death < birth.
func (d *Diagram) Add(birth, death float64) error {
	if death < birth {
		return fmt.Errorf("%w: (%g, %g)", ErrInvalidPoint, birth, death)
	}
	d.points = append(d.points, Point{Birth: birth, Death: death})

	return nil
}

// AddUnpaired appends a point that never dies (death = +Inf).
func (d *Diagram) AddUnpaired(birth float64) {
	d.points = append(d.points, Point{Birth: birth, Death: math.Inf(1)})
}

// RemoveDiagonal drops every point with birth == death. Unpaired points are
// never diagonal and always survive. Idempotent: a second call is a no-op.
func (d *Diagram) RemoveDiagonal() {
	kept := d.points[:0]
	for _, p := range d.points {
		if p.Birth != p.Death {
			kept = append(kept, p)
		}
	}
	d.points = kept
}

// Betti returns the number of unpaired points: the rank of the homology
// group that survives the whole filtration.
func (d *Diagram) Betti() int {
	n := 0
	for _, p := range d.points {
		if p.Unpaired() {
			n++
		}
	}

	return n
}

// CapUnpaired substitutes the given finite death for every unpaired point.
// Typical use caps at a constant factor times the maximum observed weight
// before writing a diagram out or computing norms over all points.
func (d *Diagram) CapUnpaired(death float64) {
	for i := range d.points {
		if d.points[i].Unpaired() {
			d.points[i].Death = death
		}
	}
}
