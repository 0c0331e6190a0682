// Package tda is an in-memory toolkit for persistent homology of weighted
// networks and point clouds — from simplicial primitives to persistence
// diagrams.
//
// 🚀 What is tda?
//
//	A library that brings together the full pipeline:
//		• Core primitives: simplices, filtration-ordered complexes, validation
//		• Filtrations: normalisation, inversion, degree-based assignments
//		• Rips expansion: clique growth of weighted 1-skeletons
//		• Persistence: boundary-matrix reduction, plain or dualized
//		• Diagrams: persistence points, Betti numbers, p-norms
//		• Geometry: neighbourhood graphs of point clouds via HNSW
//		• Graph I/O: edge lists, GML, Pajek, sparse adjacency batches
//
// ✨ Why choose tda?
//
//   - Minimal API with clear, intuitive naming
//   - Explicit validation – invalid filtrations fail loudly, never silently
//   - Deterministic – identical inputs yield identical diagrams
//
// Under the hood, everything is organized into focused subpackages:
//
//	core/        — Simplex and Complex types, filtration ordering & validation
//	diagram/     — persistence diagrams, Betti numbers, norms
//	filtration/  — weight transforms and degree filtrations
//	geometry/    — point-cloud neighbourhood graphs
//	graphio/     — readers and writers for network formats
//	matrix/      — shortest paths and closeness centrality
//	persistence/ — the reduction engine
//	rips/        — Vietoris–Rips expansion and weight assignment
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square graph: one connected component and one cycle, so its
//	persistence shows a single essential class in dimensions 0 and 1.
//
// Dive into the cmd/tda command for an end-to-end pipeline over real
// network files.
//
//	go get github.com/lamellae/tda
package tda
