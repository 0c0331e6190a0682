// Package rips: filtration-value assignment over an expanded complex.
package rips

import (
	"fmt"
	"sort"

	"github.com/lamellae/tda/core"
)

// AssignMaximumWeight sets, for every simplex of dimension >= 1 in ascending
// dimension order, the filtration value to the maximum of its own value and
// the values of its codimension-1 faces. Edges therefore keep their weights
// (vertices usually carry 0), and every higher simplex ends up at the
// maximum over its faces, which guarantees a valid monotone filtration.
//
// The complex is modified in place and NOT re-sorted; call SortByData
// afterwards. Returns ErrNilComplex, or a wrapped core.ErrSimplexNotFound if
// a face required by the closure invariant is absent.
func AssignMaximumWeight(K *core.Complex) error {
	if K == nil {
		return ErrNilComplex
	}
	for _, i := range byDimension(K) {
		s := K.At(i)
		if s.Dimension() < 1 {
			continue
		}
		value := s.Data()
		for _, face := range s.BoundaryFaces() {
			fv, err := K.Data(face.Vertices()...)
			if err != nil {
				return fmt.Errorf("rips: face %s of %s: %w", face, s, err)
			}
			if fv > value {
				value = fv
			}
		}
		K.ReplaceAt(i, value)
	}

	return nil
}

// AssignCombinedWeight sets, for every simplex of dimension >= 2 in ascending
// dimension order, the filtration value to the fold of combine over its
// codimension-1 face values, starting from base. Vertices and edges keep
// their values.
//
// combine must be associative; it must also be monotone if the result is to
// be a valid filtration (summation of non-negative weights is, for example).
// The complex is modified in place and NOT re-sorted.
func AssignCombinedWeight(K *core.Complex, base float64, combine CombineFunc) error {
	if K == nil {
		return ErrNilComplex
	}
	if combine == nil {
		return ErrNilCombine
	}
	for _, i := range byDimension(K) {
		s := K.At(i)
		if s.Dimension() < 2 {
			continue
		}
		value := base
		for _, face := range s.BoundaryFaces() {
			fv, err := K.Data(face.Vertices()...)
			if err != nil {
				return fmt.Errorf("rips: face %s of %s: %w", face, s, err)
			}
			value = combine(value, fv)
		}
		K.ReplaceAt(i, value)
	}

	return nil
}

// AssignVertexData sets the filtration value of EVERY simplex to the fold of
// combine over per-vertex data, starting from base. data is indexed by
// VertexID; it must cover every vertex the complex references
// (ErrDataLength otherwise).
//
// This powers degree filtrations: with data = vertex degrees,
// base = 0 and summation it yields the degree-sum filtration; with
// base = -Inf and math.Max the degree(-maximum) filtration.
//
// The complex is modified in place and NOT re-sorted.
func AssignVertexData(K *core.Complex, data []float64, base float64, combine CombineFunc) error {
	if K == nil {
		return ErrNilComplex
	}
	if combine == nil {
		return ErrNilCombine
	}
	for i := 0; i < K.Size(); i++ {
		s := K.At(i)
		value := base
		for _, v := range s.Vertices() {
			if int(v) >= len(data) {
				return fmt.Errorf("%w: vertex %d, %d values", ErrDataLength, v, len(data))
			}
			value = combine(value, data[v])
		}
		K.ReplaceAt(i, value)
	}

	return nil
}

// byDimension returns the positions of K's simplices ordered by ascending
// dimension, without disturbing the stored order. Assignment passes walk
// faces before cofaces this way.
func byDimension(K *core.Complex) []int {
	order := make([]int, K.Size())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return K.At(order[a]).Dimension() < K.At(order[b]).Dimension()
	})

	return order
}
