// Package core: Complex construction, lookup, mutation, and ordering.
package core

import (
	"fmt"
	"sort"
)

// NewComplex builds a Complex from the given simplices, preserving their
// order. Returns ErrEmptySimplex if any simplex has no vertices, and
// ErrDuplicateSimplex if two simplices share a vertex-set.
//
// Complexity: O(m) expected for m simplices.
func NewComplex(simplices ...Simplex) (*Complex, error) {
	c := &Complex{
		simplices: make([]Simplex, 0, len(simplices)),
		index:     make(map[string]int, len(simplices)),
	}
	for _, s := range simplices {
		if err := c.Append(s); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Append adds one simplex at the end of the stored order.
// Returns ErrEmptySimplex or ErrDuplicateSimplex on invalid input.
//
// Append does not check face closure; construction-by-expansion guarantees
// it, manual callers must preserve it themselves.
func (c *Complex) Append(s Simplex) error {
	if s.Dimension() < 0 {
		return ErrEmptySimplex
	}
	k := s.key()
	if _, exists := c.index[k]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSimplex, s)
	}
	c.index[k] = len(c.simplices)
	c.simplices = append(c.simplices, s)

	return nil
}

// Size returns the number of simplices stored.
func (c *Complex) Size() int { return len(c.simplices) }

// Dimension returns the maximum dimension over all stored simplices,
// or -1 for an empty Complex.
func (c *Complex) Dimension() int {
	dim := -1
	for _, s := range c.simplices {
		if d := s.Dimension(); d > dim {
			dim = d
		}
	}

	return dim
}

// At returns the simplex at position i in the stored order.
// Panics if i is out of range, mirroring slice indexing.
func (c *Complex) At(i int) Simplex { return c.simplices[i] }

// Simplices returns a copy of the stored order. Mutating the result does not
// affect the Complex.
func (c *Complex) Simplices() []Simplex {
	out := make([]Simplex, len(c.simplices))
	copy(out, c.simplices)

	return out
}

// Contains reports whether a simplex with exactly the given vertex-set is
// present. The query set is canonicalized first, so argument order and
// duplicates do not matter.
func (c *Complex) Contains(vertices ...VertexID) bool {
	_, ok := c.IndexOf(vertices...)

	return ok
}

// IndexOf returns the current position of the simplex with the given
// vertex-set, or false if absent.
//
// Positions are invalidated by Sort; look up again after re-ordering.
func (c *Complex) IndexOf(vertices ...VertexID) (int, bool) {
	i, ok := c.index[NewSimplex(0, vertices...).key()]

	return i, ok
}

// Data returns the filtration value of the simplex with the given vertex-set.
// Returns ErrSimplexNotFound if absent.
func (c *Complex) Data(vertices ...VertexID) (float64, error) {
	i, ok := c.IndexOf(vertices...)
	if !ok {
		return 0, ErrSimplexNotFound
	}

	return c.simplices[i].data, nil
}

// Replace sets the filtration value of the simplex with the given vertex-set,
// keeping its position in the stored order. Returns ErrSimplexNotFound if the
// vertex-set is absent.
//
// Side effect by contract: Replace does NOT re-establish sortedness. After a
// bulk edit, call Sort (or SortByData) once before handing the Complex to the
// persistence engine.
func (c *Complex) Replace(data float64, vertices ...VertexID) error {
	i, ok := c.IndexOf(vertices...)
	if !ok {
		return fmt.Errorf("%w: %s", ErrSimplexNotFound, NewSimplex(data, vertices...))
	}
	c.simplices[i].data = data

	return nil
}

// ReplaceAt sets the filtration value of the simplex at position i in the
// stored order. Same contract as Replace: no re-sort.
func (c *Complex) ReplaceAt(i int, data float64) {
	c.simplices[i].data = data
}

// Sort re-orders the Complex in place under the supplied strict-weak order.
// The sort is stable: ties keep their previous relative positions, so the
// original sequence position acts as the final tiebreak.
//
// Complexity: O(m log m) comparisons plus an O(m) index rebuild.
func (c *Complex) Sort(less func(a, b Simplex) bool) {
	sort.SliceStable(c.simplices, func(i, j int) bool {
		return less(c.simplices[i], c.simplices[j])
	})
	for i, s := range c.simplices {
		c.index[s.key()] = i
	}
}

// SortByData establishes the canonical filtration order: filtration value
// ascending, dimension ascending on ties, previous position as the final
// (stable) tiebreak. This is the order the persistence engine expects for a
// complex whose weights form a monotone filtration.
func (c *Complex) SortByData() {
	c.Sort(func(a, b Simplex) bool {
		if a.data != b.data {
			return a.data < b.data
		}

		return a.Dimension() < b.Dimension()
	})
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (c *Complex) Clone() *Complex {
	out := &Complex{
		simplices: make([]Simplex, len(c.simplices)),
		index:     make(map[string]int, len(c.index)),
	}
	copy(out.simplices, c.simplices)
	for k, v := range c.index {
		out.index[k] = v
	}

	return out
}

// ValidateFiltration checks the invariant required by the persistence engine:
// in stored order every simplex appears strictly after all of its
// codimension-1 faces, and no face carries a larger filtration value.
// Transitivity extends both properties to all proper faces.
//
// Returns nil on success; otherwise ErrMissingFace or ErrFiltrationOrder
// wrapped with the offending simplex.
//
// Complexity: O(m·d) expected, where d is the maximum dimension.
func (c *Complex) ValidateFiltration() error {
	for j, s := range c.simplices {
		if s.Dimension() < 1 {
			continue
		}
		for _, face := range s.BoundaryFaces() {
			i, ok := c.index[face.key()]
			if !ok {
				return fmt.Errorf("%w: face %s of %s", ErrMissingFace, face, s)
			}
			if i >= j {
				return fmt.Errorf("%w: face %s does not precede %s", ErrFiltrationOrder, c.simplices[i], s)
			}
			if c.simplices[i].data > s.data {
				return fmt.Errorf("%w: face %s heavier than %s", ErrFiltrationOrder, c.simplices[i], s)
			}
		}
	}

	return nil
}
