// Package rips: Vietoris-Rips clique expansion and weight assignment.
package rips

import (
	"fmt"
	"sort"

	"github.com/lamellae/tda/core"
)

// Expand returns the Vietoris-Rips expansion of K truncated at maxDimension:
// every simplex of K, plus every clique of the 1-skeleton with up to
// maxDimension+1 vertices. Simplices already present keep their filtration
// values; newly generated simplices carry value 0 until an assignment pass
// runs.
//
// Expanding to a dimension at or below the input's own dimension returns a
// complex with identical content (vertex-sets and values); the stored order
// is unspecified until sorted.
//
// Returns ErrNilComplex, ErrBadDimension, or ErrBudgetExceeded (when
// WithSimplexBudget is configured and the expansion would outgrow it).
//
// Complexity: output-sensitive; proportional to the number of cliques
// enumerated, which is exponential in maxDimension in the worst case.
func Expand(K *core.Complex, maxDimension int, opts ...Option) (*core.Complex, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if K == nil {
		return nil, ErrNilComplex
	}
	if maxDimension < 0 {
		return nil, ErrBadDimension
	}

	// 2) Seed the result with every input simplex, preserving data. The
	//    input is face-closed by contract, so the copy is too.
	result, err := core.NewComplex(K.Simplices()...)
	if err != nil {
		// Cannot happen for a well-formed input complex; surface it anyway.
		return nil, fmt.Errorf("rips: seeding expansion: %w", err)
	}
	if cfg.SimplexBudget > 0 && result.Size() > cfg.SimplexBudget {
		return nil, fmt.Errorf("%w: input already holds %d simplices (budget %d)",
			ErrBudgetExceeded, result.Size(), cfg.SimplexBudget)
	}
	if maxDimension < 2 {
		// Nothing beyond the 1-skeleton can be created.
		return result, nil
	}

	// 3) Extract the 1-skeleton as lower-neighbour lists: lower[u] holds all
	//    v < u with an edge {v,u}. Enumerating cliques through lower
	//    neighbours visits every clique exactly once.
	lower := lowerNeighbours(K)

	// 4) Incremental expansion (add-cofaces recursion). tau is maintained in
	//    descending vertex order; candidates shrink by intersection.
	e := &expander{
		result:       result,
		lower:        lower,
		maxDimension: maxDimension,
		budget:       cfg.SimplexBudget,
	}
	vertices := make([]core.VertexID, 0, len(lower))
	for u := range lower {
		vertices = append(vertices, u)
	}
	sort.Slice(vertices, func(i, j int) bool { return vertices[i] < vertices[j] })

	tau := make([]core.VertexID, 0, maxDimension+1)
	for _, u := range vertices {
		tau = append(tau[:0], u)
		if err := e.addCofaces(tau, lower[u]); err != nil {
			return nil, err
		}
	}

	return e.result, nil
}

// expander carries the mutable state of one expansion run.
type expander struct {
	result       *core.Complex
	lower        map[core.VertexID][]core.VertexID
	maxDimension int
	budget       int // 0 = unbounded
}

// addCofaces extends the clique tau with every lower neighbour in candidates,
// emitting each clique of size >= 3 (dimension >= 2) exactly once.
func (e *expander) addCofaces(tau []core.VertexID, candidates []core.VertexID) error {
	if len(tau) >= 3 {
		if err := e.emit(tau); err != nil {
			return err
		}
	}
	if len(tau) == e.maxDimension+1 {
		return nil
	}
	for _, v := range candidates {
		if err := e.addCofaces(append(tau, v), intersect(candidates, e.lower[v])); err != nil {
			return err
		}
	}

	return nil
}

// emit appends the clique as a fresh simplex with filtration value 0,
// skipping vertex-sets the input already provided.
func (e *expander) emit(tau []core.VertexID) error {
	if e.result.Contains(tau...) {
		return nil
	}
	if e.budget > 0 && e.result.Size() >= e.budget {
		return fmt.Errorf("%w: budget %d reached at dimension %d",
			ErrBudgetExceeded, e.budget, len(tau)-1)
	}

	return e.result.Append(core.NewSimplex(0, tau...))
}

// lowerNeighbours maps every vertex u of K's 1-skeleton to its sorted list of
// adjacent vertices v < u.
func lowerNeighbours(K *core.Complex) map[core.VertexID][]core.VertexID {
	lower := make(map[core.VertexID][]core.VertexID)
	for i := 0; i < K.Size(); i++ {
		s := K.At(i)
		switch s.Dimension() {
		case 0:
			v := s.Vertex(0)
			if _, ok := lower[v]; !ok {
				lower[v] = nil
			}
		case 1:
			// Vertices are canonical-sorted, so Vertex(0) < Vertex(1).
			u, v := s.Vertex(0), s.Vertex(1)
			lower[v] = append(lower[v], u)
			if _, ok := lower[u]; !ok {
				lower[u] = nil
			}
		}
	}
	for v := range lower {
		ns := lower[v]
		sort.Slice(ns, func(i, j int) bool { return ns[i] < ns[j] })
		lower[v] = ns
	}

	return lower
}

// intersect returns the elements common to two sorted vertex slices.
func intersect(a, b []core.VertexID) []core.VertexID {
	out := make([]core.VertexID, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}
