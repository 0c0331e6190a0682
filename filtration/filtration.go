package filtration

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/lamellae/tda/core"
)

// Sentinel errors for filtration transforms.
var (
	// ErrNilComplex indicates that a nil *core.Complex was passed in.
	ErrNilComplex = errors.New("filtration: complex is nil")

	// ErrNoWeights indicates that a transform needs at least one simplex of
	// dimension >= 1 to operate on.
	ErrNoWeights = errors.New("filtration: complex has no weighted simplices")

	// ErrVertexRange indicates that an edge references a vertex identifier
	// outside the dense 0..n-1 range implied by the vertex count.
	ErrVertexRange = errors.New("filtration: vertex identifier out of range")
)

// ByData orders simplices by filtration value ascending, then by dimension
// ascending. Combined with the stable Complex.Sort, the original sequence
// position is the final tiebreak. This is the canonical filtration order.
func ByData(a, b core.Simplex) bool {
	if a.Data() != b.Data() {
		return a.Data() < b.Data()
	}

	return a.Dimension() < b.Dimension()
}

// ByDimension orders simplices by dimension ascending, then by filtration
// value ascending. Useful for deterministic enumeration, not for feeding the
// persistence engine (use ByData for that).
func ByDimension(a, b core.Simplex) bool {
	if a.Dimension() != b.Dimension() {
		return a.Dimension() < b.Dimension()
	}

	return a.Data() < b.Data()
}

// weights collects the filtration values of all simplices with dimension >= 1
// in stored order.
func weights(K *core.Complex) []float64 {
	ws := make([]float64, 0, K.Size())
	for i := 0; i < K.Size(); i++ {
		if K.At(i).Dimension() >= 1 {
			ws = append(ws, K.At(i).Data())
		}
	}

	return ws
}

// MinMax returns the smallest and largest filtration value over all simplices
// of dimension >= 1. Returns ErrNoWeights when the complex carries none.
func MinMax(K *core.Complex) (min, max float64, err error) {
	if K == nil {
		return 0, 0, ErrNilComplex
	}
	ws := weights(K)
	if len(ws) == 0 {
		return 0, 0, ErrNoWeights
	}

	return floats.Min(ws), floats.Max(ws), nil
}

// Normalize rescales the weights of all simplices with dimension >= 1 to the
// interval [0,1] in place. Vertices keep their values.
//
// When every weight is identical the rescale would divide by zero; the
// transform is skipped and Normalize reports changed=false so callers can
// surface the degenerate input as a warning rather than a failure.
func Normalize(K *core.Complex) (changed bool, err error) {
	if K == nil {
		return false, ErrNilComplex
	}
	min, max, err := MinMax(K)
	if err != nil {
		return false, err
	}
	if min == max {
		// Degenerate: all weights equal. Deliberate no-op.
		return false, nil
	}

	span := max - min
	for i := 0; i < K.Size(); i++ {
		s := K.At(i)
		if s.Dimension() < 1 {
			continue
		}
		K.ReplaceAt(i, (s.Data()-min)/span)
	}

	return true, nil
}

// Invert replaces every weight w of a simplex with dimension >= 1 by
// maxWeight - w, turning small distances into large similarities and vice
// versa. Vertices keep their values. Inversion flips the filtration
// direction, so re-sort afterwards.
func Invert(K *core.Complex) error {
	if K == nil {
		return ErrNilComplex
	}
	_, max, err := MinMax(K)
	if err != nil {
		return err
	}
	for i := 0; i < K.Size(); i++ {
		s := K.At(i)
		if s.Dimension() < 1 {
			continue
		}
		K.ReplaceAt(i, max-s.Data())
	}

	return nil
}

// Degrees returns the degree of every vertex in the 1-skeleton of K, indexed
// by VertexID. The complex must use dense vertex identifiers 0..n-1 where n
// is the number of 0-simplices; an edge endpoint outside that range yields
// ErrVertexRange.
//
// Complexity: O(m) over all simplices.
func Degrees(K *core.Complex) ([]float64, error) {
	if K == nil {
		return nil, ErrNilComplex
	}

	n := 0
	for i := 0; i < K.Size(); i++ {
		if K.At(i).Dimension() == 0 {
			n++
		}
	}

	degrees := make([]float64, n)
	for i := 0; i < K.Size(); i++ {
		s := K.At(i)
		if s.Dimension() != 1 {
			continue
		}
		u, v := s.Vertex(0), s.Vertex(1)
		if int(u) >= n || int(v) >= n {
			return nil, fmt.Errorf("%w: edge %s with %d vertices", ErrVertexRange, s, n)
		}
		degrees[u]++
		degrees[v]++
	}

	return degrees, nil
}
