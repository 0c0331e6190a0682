// Package persistence_test provides runnable examples for the reduction
// engine, from a weighted graph to its persistence diagrams.
package persistence_test

import (
	"fmt"

	"github.com/lamellae/tda/core"
	"github.com/lamellae/tda/persistence"
	"github.com/lamellae/tda/rips"
)

// ExampleCalculateDiagrams demonstrates the full pipeline on a weighted
// triangle whose cycle never fills.
func ExampleCalculateDiagrams() {
	// 1) Build the weighted triangle: three vertices at 0, edges at 1, 2, 3.
	K, err := core.NewComplex(
		core.NewSimplex(0, 0),
		core.NewSimplex(0, 1),
		core.NewSimplex(0, 2),
		core.NewSimplex(1, 0, 1),
		core.NewSimplex(2, 0, 2),
		core.NewSimplex(3, 1, 2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Expand to dimension 1 (the 1-skeleton itself) and make the weights
	//    a valid filtration.
	E, err := rips.Expand(K, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := rips.AssignMaximumWeight(E); err != nil {
		fmt.Println("error:", err)
		return
	}
	E.SortByData()

	// 3) Reduce. One diagram per homological dimension comes back.
	dgms, err := persistence.CalculateDiagrams(E)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) The surviving component and the open cycle are the two essential
	//    classes.
	for _, d := range dgms {
		d.RemoveDiagonal()
		fmt.Printf("dimension %d: %d points, betti %d\n", d.Dimension(), d.Size(), d.Betti())
	}
	// Output:
	// dimension 0: 3 points, betti 1
	// dimension 1: 1 points, betti 1
}

// ExampleCalculateDiagrams_dualize demonstrates that the co-boundary run
// pairs identically.
func ExampleCalculateDiagrams_dualize() {
	K, err := core.NewComplex(
		core.NewSimplex(0, 0),
		core.NewSimplex(0, 1),
		core.NewSimplex(5, 0, 1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	K.SortByData()

	dgms, err := persistence.CalculateDiagrams(K, persistence.WithDualize())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d0 := dgms[0]
	for _, p := range d0.Points() {
		if p.Unpaired() {
			fmt.Printf("essential component born at %g\n", p.Birth)
		} else {
			fmt.Printf("component (%g, %g)\n", p.Birth, p.Death)
		}
	}
	// Output:
	// component (0, 5)
	// essential component born at 0
}
