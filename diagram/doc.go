// Package diagram defines the persistence diagram produced by the
// persistence engine: the multiset of (birth, death) points of one
// homological dimension.
//
// A point with death = +Inf is "unpaired": the feature it describes never
// dies within the filtration. RemoveDiagonal drops the zero-persistence
// points (birth == death) and never touches unpaired ones; Betti counts the
// unpaired points; the norm helpers summarize the finite persistence mass.
// Substituting a finite death for unpaired points (for output or norm
// computation) is the caller's step, via CapUnpaired.
package diagram
