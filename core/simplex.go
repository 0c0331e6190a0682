// Package core: Simplex construction and accessors.
package core

import (
	"sort"
	"strconv"
	"strings"
)

// NewSimplex builds a Simplex from the given vertices and filtration value.
// Vertices are deduplicated and sorted ascending; the dimension is derived
// from the resulting vertex count and never stored independently.
//
// NewSimplex(data) with no vertices yields the empty simplex (dimension -1),
// which Complex constructors reject with ErrEmptySimplex.
//
// Complexity: O(v log v) for v input vertices.
func NewSimplex(data float64, vertices ...VertexID) Simplex {
	// Copy before sorting; the caller keeps ownership of its slice.
	vs := make([]VertexID, len(vertices))
	copy(vs, vertices)
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })

	// Compact duplicates in place.
	unique := vs[:0]
	for i, v := range vs {
		if i == 0 || v != vs[i-1] {
			unique = append(unique, v)
		}
	}

	return Simplex{vertices: unique, data: data}
}

// Dimension returns the dimension of the simplex: vertex count minus one.
// The empty simplex has dimension -1.
func (s Simplex) Dimension() int { return len(s.vertices) - 1 }

// Data returns the filtration value carried by the simplex.
func (s Simplex) Data() float64 { return s.data }

// WithData returns a copy of the simplex carrying the given filtration value.
// The vertex-set is shared: it is immutable by contract.
func (s Simplex) WithData(data float64) Simplex {
	return Simplex{vertices: s.vertices, data: data}
}

// Vertex returns the i-th vertex in canonical (ascending) order.
// Panics if i is out of range, mirroring slice indexing.
func (s Simplex) Vertex(i int) VertexID { return s.vertices[i] }

// Vertices returns a copy of the canonical vertex-set.
func (s Simplex) Vertices() []VertexID {
	vs := make([]VertexID, len(s.vertices))
	copy(vs, s.vertices)

	return vs
}

// Contains reports whether v is a vertex of the simplex.
// Complexity: O(log v) via binary search on the sorted vertex-set.
func (s Simplex) Contains(v VertexID) bool {
	i := sort.Search(len(s.vertices), func(i int) bool { return s.vertices[i] >= v })

	return i < len(s.vertices) && s.vertices[i] == v
}

// Equals reports whether two simplices share the same vertex-set.
// Filtration values are deliberately ignored: equality is combinatorial.
func (s Simplex) Equals(t Simplex) bool {
	if len(s.vertices) != len(t.vertices) {
		return false
	}
	for i, v := range s.vertices {
		if t.vertices[i] != v {
			return false
		}
	}

	return true
}

// BoundaryFaces returns the codimension-1 faces of the simplex, each carrying
// the parent's filtration value. A vertex (dimension 0) has no boundary and
// yields nil.
//
// Face i omits the i-th vertex, so faces come out in a deterministic order.
func (s Simplex) BoundaryFaces() []Simplex {
	if len(s.vertices) < 2 {
		return nil
	}
	faces := make([]Simplex, 0, len(s.vertices))
	for i := range s.vertices {
		face := make([]VertexID, 0, len(s.vertices)-1)
		face = append(face, s.vertices[:i]...)
		face = append(face, s.vertices[i+1:]...)
		faces = append(faces, Simplex{vertices: face, data: s.data})
	}

	return faces
}

// String renders the simplex as "{v0,v1,...} @ data" for diagnostics.
func (s Simplex) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s.vertices {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	b.WriteString("} @ ")
	b.WriteString(strconv.FormatFloat(s.data, 'g', -1, 64))

	return b.String()
}

// key renders the canonical vertex-set as a map key. Used by Complex for
// uniqueness and position lookup.
func (s Simplex) key() string { return vertexKey(s.vertices) }

// vertexKey encodes a sorted vertex slice as a compact string key.
func vertexKey(vs []VertexID) string {
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	}

	return b.String()
}
