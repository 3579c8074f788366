package bottleneck

import "math"

// maxBisectIters bounds the bisection so that degenerate brackets (an exact
// distance of zero keeps the lower end pinned at 0) terminate: 100 halvings
// shrink any initial bracket below every positive float64.
const maxBisectIters = 100

// approx computes a (1+delta)-approximation of the bottleneck distance.
//
// Matching everything to the diagonal is always a valid matching, so the
// distance lies in [0, H] where H is the largest diagonal distance across
// both diagrams. The algorithm bisects that bracket, keeping the upper end
// feasible and the lower end infeasible, until hi ≤ (1+delta)·lo. The exact
// distance d satisfies lo < d ≤ hi, hence the returned hi obeys
//
//	d ≤ hi ≤ (1+delta)·d.
//
// delta is used exactly as supplied; it is validated (non-negative, not NaN)
// by Distance before reaching this point.
//
// Complexity: O(E·√V) per feasibility test, O(log(H/(delta·d))) tests.
func approx(a, b Diagram, delta float64, wantMatching bool) (float64, Matching, error) {
	if len(a) == 0 && len(b) == 0 {
		return 0, emptyMatching(wantMatching), nil
	}

	hi := 0.0
	for _, p := range a {
		hi = math.Max(hi, diagDist(p))
	}
	for _, q := range b {
		hi = math.Max(hi, diagDist(q))
	}

	ok, _ := feasibleAt(a, b, hi, false)
	if !ok {
		// Only non-finite coordinates can defeat the all-diagonal matching.
		return 0, nil, ErrNoFiniteMatching
	}
	if hi == 0 {
		return 0, matchingAt(a, b, 0, wantMatching), nil
	}

	lo := 0.0
	for iter := 0; iter < maxBisectIters && hi-lo > delta*lo; iter++ {
		mid := lo + (hi-lo)/2
		if ok, _ = feasibleAt(a, b, mid, false); ok {
			hi = mid
		} else {
			lo = mid
		}
	}

	return hi, matchingAt(a, b, hi, wantMatching), nil
}

// matchingAt extracts the pairing realised at a known-feasible threshold,
// or nil when the caller did not ask for one.
func matchingAt(a, b Diagram, t float64, want bool) Matching {
	if !want {
		return nil
	}
	_, match := feasibleAt(a, b, t, true)

	return match
}
