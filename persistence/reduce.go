// Package persistence: column reduction and diagram assembly.
package persistence

import (
	"fmt"

	"github.com/lamellae/tda/core"
	"github.com/lamellae/tda/diagram"
)

// pair records that the simplex at position birth is destroyed by the
// simplex at position death (positions in the stored filtration order).
type pair struct {
	birth int
	death int
}

// CalculateDiagrams computes the persistence diagrams of the
// filtration-ordered complex K, one diagram per homological dimension that
// received at least one point, ascending by dimension.
//
// Validation (unless WithoutValidation): K must be face-consistent and its
// filtration values non-decreasing along the stored order; violations fail
// with ErrInvalidFiltration. Establish the order with Complex.SortByData
// after any weight edits.
//
// The returned diagrams are freshly owned and share no state with K.
//
// Complexity: worst case cubic in the number of simplices; near-linear for
// the sparse columns typical of clique complexes.
func CalculateDiagrams(K *core.Complex, opts ...Option) ([]*diagram.Diagram, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input.
	if K == nil {
		return nil, ErrNilComplex
	}
	if cfg.ValidateFiltration {
		if err := validateFiltration(K); err != nil {
			return nil, err
		}
	}
	m := K.Size()
	if m == 0 {
		return nil, nil
	}

	// 3) Build the operator columns: boundary, or its anti-transpose for the
	//    dualized run.
	cols, err := boundaryColumns(K)
	if err != nil {
		return nil, err
	}
	if cfg.Dualize {
		cols = antiTranspose(cols, m)
	}

	// 4) Reduce and translate pairs back into filtration positions. The
	//    anti-transpose maps a reduced pair (r, c) to the original
	//    (m-1-c, m-1-r); both runs therefore yield the same pairing.
	pairs := reduce(cols)
	if cfg.Dualize {
		for i, p := range pairs {
			pairs[i] = pair{birth: m - 1 - p.death, death: m - 1 - p.birth}
		}
	}

	// 5) Assemble diagrams: one finite point per pair, then the unpaired
	//    creators according to policy.
	return assemble(K, pairs, cfg)
}

// reduce performs the standard left-to-right column reduction. The pivot map
// sends each claimed low row to the column that owns it; columns combine by
// symmetric difference until they empty or claim an unowned low.
func reduce(cols []column) []pair {
	pivot := make(map[int]int, len(cols))
	var pairs []pair

	for j := range cols {
		col := cols[j]
		for {
			low := col.low()
			if low < 0 {
				break
			}
			owner, owned := pivot[low]
			if !owned {
				break
			}
			col = symmetricDifference(col, cols[owner])
		}
		cols[j] = col

		if low := col.low(); low >= 0 {
			pivot[low] = j
			pairs = append(pairs, pair{birth: low, death: j})
		}
	}

	return pairs
}

// assemble turns the pairing into per-dimension diagrams.
func assemble(K *core.Complex, pairs []pair, cfg Options) ([]*diagram.Diagram, error) {
	maxDim := K.Dimension()
	byDim := make([]*diagram.Diagram, maxDim+1)
	at := func(dim int) *diagram.Diagram {
		if byDim[dim] == nil {
			byDim[dim] = diagram.New(dim)
		}

		return byDim[dim]
	}

	paired := make([]bool, K.Size())
	for _, p := range pairs {
		paired[p.birth] = true
		paired[p.death] = true

		creator := K.At(p.birth)
		if err := at(creator.Dimension()).Add(creator.Data(), K.At(p.death).Data()); err != nil {
			return nil, fmt.Errorf("persistence: pair (%d,%d): %w", p.birth, p.death, err)
		}
	}

	// Every simplex outside the pairing is a creator whose feature survives
	// the whole filtration.
	for j := 0; j < K.Size(); j++ {
		if paired[j] {
			continue
		}
		dim := K.At(j).Dimension()
		if cfg.IncludeAllUnpairedCreators || dim == 0 {
			at(dim).AddUnpaired(K.At(j).Data())
		}
	}

	out := make([]*diagram.Diagram, 0, len(byDim))
	for _, d := range byDim {
		if d != nil {
			out = append(out, d)
		}
	}

	return out, nil
}

// validateFiltration checks the engine precondition: face consistency via
// core.ValidateFiltration plus the cumulative-maximum scan guaranteeing that
// filtration values never decrease along the stored order.
func validateFiltration(K *core.Complex) error {
	if err := K.ValidateFiltration(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFiltration, err)
	}
	for j := 1; j < K.Size(); j++ {
		if K.At(j).Data() < K.At(j-1).Data() {
			return fmt.Errorf("%w: value drops at position %d (%s after %s)",
				ErrInvalidFiltration, j, K.At(j), K.At(j-1))
		}
	}

	return nil
}
