// Package core: type and error declarations for simplicial complexes.
//
// This file declares VertexID, the Simplex value type, the Complex container,
// and the sentinel errors shared by their methods.
package core

import "errors"

// Sentinel errors for core simplicial operations.
var (
	// ErrEmptySimplex indicates that a simplex without vertices was passed to
	// a Complex constructor or method. The empty simplex has dimension -1 and
	// is never stored.
	ErrEmptySimplex = errors.New("core: simplex has no vertices")

	// ErrDuplicateSimplex indicates that two simplices with the same
	// vertex-set were handed to a Complex. Uniqueness is keyed on the
	// vertex-set alone; the filtration values play no role.
	ErrDuplicateSimplex = errors.New("core: duplicate simplex")

	// ErrSimplexNotFound indicates that a lookup or replacement referenced a
	// vertex-set that is not present in the Complex.
	ErrSimplexNotFound = errors.New("core: simplex not found")

	// ErrMissingFace indicates that a codimension-1 face required by the
	// closure invariant is absent from the Complex.
	ErrMissingFace = errors.New("core: missing face")

	// ErrFiltrationOrder indicates that the stored order is not a valid
	// filtration: a simplex precedes one of its proper faces, or carries a
	// filtration value smaller than one of its faces.
	ErrFiltrationOrder = errors.New("core: invalid filtration order")
)

// VertexID identifies a vertex within a Complex. Identifiers are dense
// non-negative integers: readers and builders assign 0..n-1 in order of
// appearance.
type VertexID uint

// Simplex is a d-dimensional combinatorial cell: d+1 distinct vertices in
// canonical sorted order, plus one scalar filtration value.
//
// The vertex-set is fixed at construction; the filtration value of a stored
// simplex is mutable only through Complex.Replace. Two simplices are equal
// iff their vertex-sets are equal.
type Simplex struct {
	// vertices is sorted ascending and duplicate-free. Never mutated after
	// NewSimplex; accessors hand out copies.
	vertices []VertexID

	// data is the filtration value (also called weight) of this simplex.
	data float64
}

// Complex owns an ordered set of simplices, unique by vertex-set.
//
// The stored order is whatever the caller established last: construction
// order after NewComplex, or the order produced by the most recent Sort.
// Replace edits a filtration value without touching the order.
type Complex struct {
	// simplices in stored order. Complex has exclusive ownership; accessors
	// return copies.
	simplices []Simplex

	// index maps the canonical vertex-set key of each simplex to its current
	// position in simplices. Rebuilt on Sort.
	index map[string]int
}
