// Package geometry builds the neighbourhood graph of a point cloud, the
// 1-skeleton that rips.Expand grows into a Vietoris-Rips complex.
//
// Candidate neighbours come from an HNSW index, so construction stays fast on
// large clouds; every candidate edge is then verified against the exact
// Euclidean distance before it enters the complex. Raise the neighbour limit
// with WithNeighbourLimit when points have more than the default number of
// eps-close neighbours.
package geometry
