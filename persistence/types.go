// Package persistence: options and sentinel errors for the reduction engine.
package persistence

import "errors"

// Sentinel errors returned by CalculateDiagrams.
var (
	// ErrNilComplex indicates that a nil *core.Complex was passed in.
	ErrNilComplex = errors.New("persistence: complex is nil")

	// ErrInvalidFiltration indicates that the input violates the engine's
	// precondition: in stored order every simplex must follow all of its
	// faces, no face may outweigh its coface, and filtration values must be
	// non-decreasing along the order.
	ErrInvalidFiltration = errors.New("persistence: complex is not in filtration order")
)

// Options configures one run of the reduction engine.
//
// Dualize selects co-boundary reduction over the anti-transposed matrix,
// processing the filtration in descending order. Output is identical to the
// non-dualized run (up to point ordering); the mode only trades execution
// cost, favourably so when the complex has many high-dimensional simplices
// and few low-dimensional creators.
//
// IncludeAllUnpairedCreators controls the reporting of never-destroyed
// features: true reports every unpaired creator in its dimension's diagram;
// false restricts the report to the essential dimension-0 creators (the
// connected components that survive the whole filtration).
//
// ValidateFiltration toggles the precondition check at entry. On by default;
// disabling it removes one linear scan but makes a malformed input produce
// incorrect diagrams rather than an error.
type Options struct {
	Dualize                    bool
	IncludeAllUnpairedCreators bool
	ValidateFiltration         bool
}

// Option is a functional option for CalculateDiagrams.
type Option func(*Options)

// WithDualize switches the engine to co-boundary reduction in descending
// filtration order.
func WithDualize() Option {
	return func(o *Options) { o.Dualize = true }
}

// WithoutAllUnpairedCreators restricts unpaired-feature reporting to the
// essential dimension-0 creators.
func WithoutAllUnpairedCreators() Option {
	return func(o *Options) { o.IncludeAllUnpairedCreators = false }
}

// WithoutValidation skips the filtration-order precondition check. The
// caller then guarantees the order; violating it yields incorrect diagrams,
// not an error.
func WithoutValidation() Option {
	return func(o *Options) { o.ValidateFiltration = false }
}

// DefaultOptions returns the baseline configuration: plain boundary
// reduction, all unpaired creators reported, validation on.
func DefaultOptions() Options {
	return Options{
		Dualize:                    false,
		IncludeAllUnpairedCreators: true,
		ValidateFiltration:         true,
	}
}
