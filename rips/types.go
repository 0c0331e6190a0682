// Package rips: options and sentinel errors for the Vietoris-Rips expander.
package rips

import "errors"

// Sentinel errors returned by the expander and the assignment passes.
var (
	// ErrNilComplex indicates that a nil *core.Complex was passed in.
	ErrNilComplex = errors.New("rips: complex is nil")

	// ErrBadDimension indicates a negative target dimension.
	ErrBadDimension = errors.New("rips: maximum dimension must be non-negative")

	// ErrBudgetExceeded indicates that the expansion would grow past the
	// configured simplex budget. The expansion aborts without returning a
	// partial complex.
	ErrBudgetExceeded = errors.New("rips: simplex budget exceeded")

	// ErrNilCombine indicates that a nil combine function was supplied to an
	// assignment pass that requires one.
	ErrNilCombine = errors.New("rips: combine function is nil")

	// ErrDataLength indicates that per-vertex data does not cover every
	// vertex identifier referenced by the complex.
	ErrDataLength = errors.New("rips: vertex data does not cover all vertices")
)

// CombineFunc merges an accumulated filtration value with the value of one
// more face or vertex. It must be associative; monotonicity is the caller's
// responsibility when a valid filtration is required.
type CombineFunc func(acc, value float64) float64

// Options configures a single expansion run.
//
// SimplexBudget bounds the total number of simplices the expanded complex may
// contain; zero means unbounded. The budget is checked as the expansion
// grows, so a run that would blow past it fails with ErrBudgetExceeded
// instead of exhausting memory.
type Options struct {
	SimplexBudget int
}

// Option is a functional option for Expand.
type Option func(*Options)

// WithSimplexBudget bounds the total simplex count of the expansion.
// Values <= 0 leave the expansion unbounded.
func WithSimplexBudget(n int) Option {
	return func(o *Options) { o.SimplexBudget = n }
}

// DefaultOptions returns the baseline configuration: no simplex budget.
func DefaultOptions() Options {
	return Options{SimplexBudget: 0}
}
