package bottleneck

import "math"

// Distance — bottleneck distance between two persistence diagrams.
//
// Description:
//
//	The bottleneck distance is the minimax matching distance of topological
//	data analysis: the smallest threshold t at which every point of one
//	diagram can be paired with a point of the other diagram, or with its own
//	projection onto the diagonal, such that no pair is farther than t apart
//	in the L∞ metric.
//
// Algorithm selection (hard zero branch):
//  1. opts == nil is equivalent to DefaultOptions() (Delta = 0.01).
//  2. Delta is validated: NaN → ErrNaNDelta, negative → ErrNegativeDelta.
//  3. Delta == 0.0 selects the exact algorithm (see exact.go).
//  4. Delta  > 0.0 selects the (1+Delta)-approximation, Delta passed
//     through unchanged (see approx.go).
//
// The zero test is a literal floating-point equality, never an epsilon
// check: Delta = 1e-300 takes the approximate path. The two branches above
// are exhaustive over the validated domain, so no fallback value exists.
//
// Inputs are borrowed, never mutated, and no state survives the call, so
// Distance is safe to invoke concurrently.
//
// Returns:
//   - the distance, finite and non-negative for diagrams with finite
//     coordinates and non-negative persistence;
//   - the optimal Matching when opts.ReturnMatching is true, nil otherwise;
//   - ErrNaNDelta, ErrNegativeDelta, or ErrNoFiniteMatching (non-finite
//     coordinates made every matching infeasible).
//
// Complexity:
//
//	Exact:  O(n·m·log(n·m) + E·√V·log(n·m))
//	Approx: O(E·√V·log(1/Delta)), E = n·m + n + m, V = n + m + 3
func Distance(a, b Diagram, opts *Options) (float64, Matching, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if math.IsNaN(cfg.Delta) {
		return 0, nil, ErrNaNDelta
	}
	if cfg.Delta < 0 {
		return 0, nil, ErrNegativeDelta
	}

	if cfg.Delta == 0.0 {
		return exact(a, b, cfg.ReturnMatching)
	}

	return approx(a, b, cfg.Delta, cfg.ReturnMatching)
}

// DistanceExact is shorthand for Distance with Delta = 0 and no matching.
func DistanceExact(a, b Diagram) (float64, error) {
	d, _, err := exact(a, b, false)

	return d, err
}
