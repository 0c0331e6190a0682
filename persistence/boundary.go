// Package persistence: sparse column representation of the boundary and
// co-boundary operators.
package persistence

import (
	"fmt"
	"sort"

	"github.com/lamellae/tda/core"
)

// column is one sparse matrix column over GF(2): the ascending set of row
// indices holding a 1. The largest index (the "low") drives the reduction.
type column []int

// low returns the largest row index, or -1 for an empty column.
func (c column) low() int {
	if len(c) == 0 {
		return -1
	}

	return c[len(c)-1]
}

// symmetricDifference merges two sorted index sets, dropping indices present
// in both (mod-2 addition). Columns stay independently owned: the result is
// always fresh storage, never an alias of an input.
func symmetricDifference(a, b column) column {
	out := make(column, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			// Present in both: 1+1 = 0 over GF(2).
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// boundaryColumns builds the boundary matrix of K in its stored order:
// column j holds the positions of the codimension-1 faces of simplex j.
// A face position at or beyond j, or a missing face, violates the engine
// precondition.
func boundaryColumns(K *core.Complex) ([]column, error) {
	m := K.Size()
	cols := make([]column, m)
	for j := 0; j < m; j++ {
		s := K.At(j)
		faces := s.BoundaryFaces()
		if len(faces) == 0 {
			continue
		}
		col := make(column, 0, len(faces))
		for _, face := range faces {
			i, ok := K.IndexOf(face.Vertices()...)
			if !ok || i >= j {
				return nil, fmt.Errorf("%w: face %s of %s", ErrInvalidFiltration, face, s)
			}
			col = append(col, i)
		}
		sort.Ints(col)
		cols[j] = col
	}

	return cols, nil
}

// antiTranspose maps the boundary matrix to its anti-transpose: entry (i,j)
// moves to (m-1-j, m-1-i). Column j' of the result holds the (reversed)
// positions of the cofaces of simplex m-1-j', which is exactly the
// co-boundary operator in descending filtration order.
func antiTranspose(cols []column, m int) []column {
	out := make([]column, m)
	for j, col := range cols {
		for _, i := range col {
			out[m-1-i] = append(out[m-1-i], m-1-j)
		}
	}
	for j := range out {
		sort.Ints(out[j])
	}

	return out
}
