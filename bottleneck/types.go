// Package bottleneck defines the types, options and errors for bottleneck
// distance computation between persistence diagrams.
package bottleneck

import (
	"errors"
	"math"
)

// DefaultDelta is the relative tolerance applied when the caller does not
// choose one. Delta == 0 selects the exact algorithm instead.
const DefaultDelta = 0.01

// Diagonal is the index used in a Matching for the partner of a point that
// is matched to the diagonal {birth == death} rather than to a point of the
// other diagram.
const Diagonal = -1

var (
	// ErrNegativeDelta indicates a negative tolerance was supplied.
	ErrNegativeDelta = errors.New("bottleneck: delta must be non-negative")

	// ErrNaNDelta indicates the tolerance is NaN and no algorithm can be selected.
	ErrNaNDelta = errors.New("bottleneck: delta must not be NaN")

	// ErrNoFiniteMatching indicates no threshold admits a perfect matching
	// between the diagrams, which can only happen when a diagram carries
	// non-finite (NaN or Inf) coordinates.
	ErrNoFiniteMatching = errors.New("bottleneck: diagrams admit no finite matching")
)

// Point is a single persistence pair: the birth and death value of one
// topological feature. Death < Birth or non-finite coordinates are accepted
// as-is and never validated; they flow through exactly as supplied.
type Point struct {
	Birth float64
	Death float64
}

// Persistence returns Death - Birth, the lifetime of the feature.
func (p Point) Persistence() float64 { return p.Death - p.Birth }

// Diagram is a finite, possibly empty, sequence of persistence points.
// Order carries no meaning for the distance. A Diagram is borrowed for the
// duration of one call and never retained or mutated.
type Diagram []Point

// Pair records one edge of an optimal matching: point I of the first diagram
// is matched with point J of the second. Either index may be Diagonal, in
// which case the point is matched to its diagonal projection.
type Pair struct {
	I int
	J int
}

// Matching is the full pairing realising the bottleneck distance: one Pair
// per point of each diagram (diagonal-matched points included).
type Matching []Pair

// Options configures a bottleneck distance computation.
//
// Fields:
//   - Delta          — relative tolerance. Exactly 0.0 selects the exact
//     algorithm; any positive value selects the (1+Delta)-approximation.
//     The branch is a hard equality on zero, not an epsilon check: 1e-300
//     still takes the approximate path.
//   - ReturnMatching — if true, Distance also returns the optimal pairing.
//
// Example:
//
//	opts := bottleneck.DefaultOptions()
//	opts.Delta = 0 // bit-exact answer, slower on large diagrams
//	d, match, err := bottleneck.Distance(a, b, &opts)
type Options struct {
	Delta          float64
	ReturnMatching bool
}

// DefaultOptions returns Options initialised with sensible defaults:
//
//   - Delta:          DefaultDelta (0.01) — approximate mode, a 1% relative
//     tolerance.
//   - ReturnMatching: false.
func DefaultOptions() Options {
	return Options{
		Delta:          DefaultDelta,
		ReturnMatching: false,
	}
}

// linfDist returns the L∞ distance between two persistence points.
func linfDist(p, q Point) float64 {
	return math.Max(math.Abs(p.Birth-q.Birth), math.Abs(p.Death-q.Death))
}

// diagDist returns the L∞ distance from p to the diagonal {birth == death},
// i.e. half the persistence of p.
func diagDist(p Point) float64 {
	return (p.Death - p.Birth) / 2
}
