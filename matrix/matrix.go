// Package matrix: dense APSP and centrality over a complex's 1-skeleton.
package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/lamellae/tda/core"
)

// Sentinel errors for matrix construction.
var (
	// ErrNilComplex indicates that a nil *core.Complex was passed in.
	ErrNilComplex = errors.New("matrix: complex is nil")

	// ErrNoVertices indicates that the complex has no 0-simplices.
	ErrNoVertices = errors.New("matrix: complex has no vertices")

	// ErrVertexRange indicates an edge endpoint outside the dense 0..n-1
	// vertex range.
	ErrVertexRange = errors.New("matrix: vertex identifier out of range")

	// ErrNotSquare indicates a non-square matrix where a square one is
	// required.
	ErrNotSquare = errors.New("matrix: matrix is not square")
)

// Adjacency builds the n x n direct-distance matrix of K's 1-skeleton:
// zero diagonal, edge weight (or 1 when unit is set) where an edge exists,
// +Inf elsewhere. Vertex identifiers must be dense 0..n-1.
func Adjacency(K *core.Complex, unit bool) (*mat.Dense, error) {
	if K == nil {
		return nil, ErrNilComplex
	}

	n := 0
	for i := 0; i < K.Size(); i++ {
		if K.At(i).Dimension() == 0 {
			n++
		}
	}
	if n == 0 {
		return nil, ErrNoVertices
	}

	d := mat.NewDense(n, n, nil)
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				d.Set(i, j, inf)
			}
		}
	}

	for i := 0; i < K.Size(); i++ {
		s := K.At(i)
		if s.Dimension() != 1 {
			continue
		}
		u, v := int(s.Vertex(0)), int(s.Vertex(1))
		if u >= n || v >= n {
			return nil, fmt.Errorf("%w: edge %s with %d vertices", ErrVertexRange, s, n)
		}
		w := s.Data()
		if unit {
			w = 1
		}
		// Undirected: mirror both ways.
		d.Set(u, v, w)
		d.Set(v, u, w)
	}

	return d, nil
}

// FloydWarshall closes the distance matrix in place under path composition.
// Requires a square matrix with zero diagonal and +Inf for "no direct edge".
// The loop order is fixed (k -> i -> j) so accumulation is deterministic.
//
// Complexity: O(n^3) time, O(1) extra space.
func FloydWarshall(d *mat.Dense) error {
	r, c := d.Dims()
	if r != c {
		return fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}

	for k := 0; k < r; k++ {
		for i := 0; i < r; i++ {
			ik := d.At(i, k)
			if math.IsInf(ik, 1) {
				// i cannot reach k; no path through k can improve row i.
				continue
			}
			for j := 0; j < r; j++ {
				kj := d.At(k, j)
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < d.At(i, j) {
					d.Set(i, j, cand)
				}
			}
		}
	}

	return nil
}

// Distances returns the all-pairs shortest-path matrix of K's 1-skeleton,
// using edge weights as lengths, or hop counts when unit is set.
func Distances(K *core.Complex, unit bool) (*mat.Dense, error) {
	d, err := Adjacency(K, unit)
	if err != nil {
		return nil, err
	}
	if err := FloydWarshall(d); err != nil {
		return nil, err
	}

	return d, nil
}

// ClosenessCentrality returns, per vertex, n divided by the sum of finite
// hop distances to all other vertices. Larger values mark vertices closer to
// the rest of the graph; an isolated vertex comes out as +Inf (its distance
// sum is zero).
func ClosenessCentrality(K *core.Complex) ([]float64, error) {
	d, err := Distances(K, true)
	if err != nil {
		return nil, err
	}
	n, _ := d.Dims()

	result := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			if v := d.At(i, j); !math.IsInf(v, 1) {
				sum += v
			}
		}
		result = append(result, float64(n)/sum)
	}

	return result, nil
}
