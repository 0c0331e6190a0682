// Package graphio reads weighted graphs into complexes and writes graphs and
// persistence diagrams back out.
//
// Supported input formats:
//
//   - plain edge lists ("u v [weight]", '#' and '%' comments)
//   - a GML subset (node id/label, edge source/target/weight)
//   - Pajek (*Vertices, *Edges, *Arcs; one-based identifiers)
//   - sparse adjacency matrix batches, one file set per collection of graphs
//
// Every reader produces vertices before edges and remaps foreign identifiers
// onto the dense 0..n-1 range the rest of the pipeline expects. Parse errors
// carry the offending line number and wrap ErrMalformedInput.
package graphio
