// Package matrix provides dense all-pairs shortest-path computation over the
// 1-skeleton of a complex, and the closeness-centrality summary built on it.
//
// Distances are held in a gonum mat.Dense with +Inf marking "no path" and a
// zero diagonal. FloydWarshall runs the classic O(n^3) closure in place with
// a fixed k -> i -> j loop order for deterministic accumulation.
package matrix
