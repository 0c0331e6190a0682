// Package core defines the central Simplex and Complex types used by every
// other package in this module.
//
// A Simplex is an immutable-shape value: a canonical (sorted, duplicate-free)
// set of vertex identifiers plus a single scalar filtration value. A Complex
// owns an ordered collection of simplices, enforces uniqueness by vertex-set,
// and exposes a stable in-place re-sort under a caller-supplied total order.
//
// Two invariants matter downstream:
//
//  1. Face closure: for every simplex in a Complex, every non-empty subset of
//     its vertex-set should also be present. Closure is established by
//     construction (see package rips) and is NOT re-validated on mutation;
//     callers that edit a Complex by hand must preserve it.
//  2. Filtration consistency: when iterated in stored order, every simplex
//     appears strictly after all of its proper faces, and carries a filtration
//     value no smaller than any face. ValidateFiltration checks this invariant
//     explicitly; the persistence engine requires it.
//
// Replacing a filtration value via Replace deliberately does NOT re-sort the
// Complex. Bulk value edits and the (expensive) global reorder are separate
// operations: edit first, then call Sort or SortByData once.
//
// Errors:
//
//	ErrEmptySimplex      - a simplex with no vertices was handed to a Complex.
//	ErrDuplicateSimplex  - two simplices share the same vertex-set.
//	ErrSimplexNotFound   - lookup or replace referenced an absent vertex-set.
//	ErrMissingFace       - a face required by the closure invariant is absent.
//	ErrFiltrationOrder   - a simplex precedes one of its faces, or carries a
//	                       smaller filtration value than a face.
package core
