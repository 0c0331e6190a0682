// Package persistence turns a filtration-ordered simplicial complex into
// persistence diagrams via boundary-matrix reduction.
//
// The engine numbers the simplices 0..m-1 in stored order, represents each
// boundary as a sparse column of codimension-1 face positions, and reduces
// columns left to right: while a column's lowest nonzero row is already owned
// by an earlier column, the two are combined by symmetric difference (mod-2
// addition). A column that empties marks its simplex as a creator; a column
// that settles with low row i pairs simplex i (birth) with simplex j (death)
// in the diagram of dimension dim(i). Creators never claimed as a low row
// remain unpaired and are reported with an infinite death, subject to the
// unpaired-creator policy.
//
// Dualized mode reduces the anti-transposed matrix instead: column j' holds
// the cofaces of simplex m-1-j', so the reduction processes the filtration
// in descending order and pairs cofaces downward. The anti-transpose yields
// provably identical pairs (mapped back through index reversal), and tends to
// be faster on coface-dense complexes such as high-dimensional Rips
// expansions.
//
// The engine's precondition is a valid filtration order (faces before
// cofaces, filtration values non-decreasing along the stored order). By
// default the precondition is verified up front - one linear scan plus a
// cumulative-maximum check - and violated input fails with
// ErrInvalidFiltration instead of producing silently wrong pairings.
// WithoutValidation opts out for callers that guarantee the order themselves.
package persistence
