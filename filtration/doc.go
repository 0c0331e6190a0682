// Package filtration provides the orderings and weight transforms that turn
// a raw weighted complex into a filtration the persistence engine accepts.
//
// Orders:
//
//   - ByData: filtration value ascending, dimension ascending on ties. Used
//     with Complex.Sort (which is stable, so the previous position is the
//     final tiebreak).
//   - ByDimension: dimension ascending, filtration value ascending on ties.
//
// Transforms (all operate on simplices of dimension >= 1 and leave vertices
// untouched, matching the tools that feed this module):
//
//   - Normalize: rescale weights to [0,1]. All-equal weights make the
//     transform a degenerate no-op, reported through the boolean return
//     rather than an error.
//   - Invert: w -> maxWeight - w, turning a similarity into a dissimilarity.
//
// Degrees extracts per-vertex degree counts from the 1-skeleton; together
// with rips.AssignVertexData it powers degree and degree-sum filtrations.
package filtration
