// Package geometry: neighbourhood-graph construction over an HNSW index.
package geometry

import (
	"fmt"
	"math"

	"github.com/coder/hnsw"

	"github.com/lamellae/tda/core"
)

// BuildRipsGraph returns the neighbourhood graph of the cloud at scale eps:
// one vertex per point at filtration value 0, and one edge per pair of points
// at Euclidean distance <= eps, carrying that distance as its value. The
// result is a valid filtration ready for rips.Expand.
//
// Candidates come from an approximate index and are verified exactly, so no
// spurious edge can appear; an edge can only be missed when a point has more
// than Options.NeighbourLimit eps-close neighbours.
func BuildRipsGraph(points []Point, eps float64, opts ...Option) (*core.Complex, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.NeighbourLimit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadNeighbourLimit, cfg.NeighbourLimit)
	}

	// 2) Validate input.
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if eps <= 0 || math.IsInf(eps, 1) || math.IsNaN(eps) {
		return nil, fmt.Errorf("%w: %v", ErrBadScale, eps)
	}
	dims := len(points[0])
	for i, p := range points {
		if len(p) != dims {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, want %d",
				ErrDimensionMismatch, i, len(p), dims)
		}
	}

	// 3) Index the cloud.
	g := hnsw.NewGraph[int]()
	for i, p := range points {
		g.Add(hnsw.MakeNode(i, []float32(p)))
	}

	// 4) Seed the complex with its vertices.
	K, err := core.NewComplex()
	if err != nil {
		return nil, err
	}
	for i := range points {
		if err := K.Append(core.NewSimplex(0, core.VertexID(i))); err != nil {
			return nil, err
		}
	}

	// 5) Query candidates per point and keep the exactly verified edges.
	//    Each pair is emitted once, from its lower endpoint.
	k := cfg.NeighbourLimit + 1 // the query point is its own nearest hit
	for i, p := range points {
		for _, node := range g.Search([]float32(p), k) {
			j := node.Key
			if j <= i {
				continue
			}
			d := euclidean(p, points[j])
			if d > eps {
				continue
			}
			edge := core.NewSimplex(d, core.VertexID(i), core.VertexID(j))
			if K.Contains(edge.Vertices()...) {
				continue
			}
			if err := K.Append(edge); err != nil {
				return nil, err
			}
		}
	}

	K.SortByData()

	return K, nil
}

// euclidean returns the exact distance between two points, accumulated in
// float64.
func euclidean(a, b Point) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}

	return math.Sqrt(sum)
}
