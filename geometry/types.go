// Package geometry: types, options and sentinel errors.
package geometry

import "errors"

// Point is one point of the cloud, a Euclidean coordinate vector.
type Point []float32

// Sentinel errors for neighbourhood-graph construction.
var (
	// ErrNoPoints indicates an empty point cloud.
	ErrNoPoints = errors.New("geometry: point cloud is empty")

	// ErrDimensionMismatch indicates points of differing coordinate counts.
	ErrDimensionMismatch = errors.New("geometry: points have mismatched dimensions")

	// ErrBadScale indicates a non-positive or non-finite distance threshold.
	ErrBadScale = errors.New("geometry: scale must be positive and finite")

	// ErrBadNeighbourLimit indicates a non-positive candidate limit.
	ErrBadNeighbourLimit = errors.New("geometry: neighbour limit must be positive")
)

// defaultNeighbourLimit bounds the candidate set fetched per point.
const defaultNeighbourLimit = 32

// Options configures BuildRipsGraph.
type Options struct {
	// NeighbourLimit caps how many nearest candidates the index returns per
	// point. Edges beyond the limit are silently missed, so it must exceed
	// the largest expected eps-neighbourhood.
	NeighbourLimit int
}

// Option mutates Options.
type Option func(*Options)

// WithNeighbourLimit overrides the per-point candidate limit.
func WithNeighbourLimit(k int) Option {
	return func(o *Options) { o.NeighbourLimit = k }
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{NeighbourLimit: defaultNeighbourLimit}
}
