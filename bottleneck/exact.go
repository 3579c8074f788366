package bottleneck

import (
	"math"
	"sort"
)

// exact computes the bottleneck distance precisely.
//
// The optimal threshold is always realised by one of finitely many values:
// an L∞ distance between a point of a and a point of b, or half the
// persistence of some point (its diagonal distance). The algorithm
// therefore:
//
//  1. Collects the candidate set {0} ∪ {linf(aᵢ,bⱼ)} ∪ {diagDist(aᵢ)} ∪
//     {diagDist(bⱼ)} and sorts it ascending.
//  2. Binary-searches for the smallest feasible candidate, feasibility
//     tested by unit-capacity max-flow (matching.go). Feasibility is
//     monotone in t, so sort.Search applies.
//  3. When a matching is requested, replays the feasibility test at the
//     optimum and extracts the pairing from the saturated arcs.
//
// If even the largest candidate is infeasible the diagrams carry non-finite
// coordinates, and ErrNoFiniteMatching is returned.
//
// Complexity: O(n·m·log(n·m)) to prepare candidates, O(E·√V) per
// feasibility test, O(log(n·m)) tests.
func exact(a, b Diagram, wantMatching bool) (float64, Matching, error) {
	if len(a) == 0 && len(b) == 0 {
		return 0, emptyMatching(wantMatching), nil
	}

	cands := make([]float64, 0, len(a)*len(b)+len(a)+len(b)+1)
	cands = append(cands, 0)
	// Below-diagonal points have a negative diagonal distance; the metric
	// itself is never negative, so those candidates clamp to zero.
	for _, p := range a {
		cands = append(cands, math.Max(0, diagDist(p)))
	}
	for _, q := range b {
		cands = append(cands, math.Max(0, diagDist(q)))
	}
	for _, p := range a {
		for _, q := range b {
			cands = append(cands, linfDist(p, q))
		}
	}
	sort.Float64s(cands)

	idx := sort.Search(len(cands), func(i int) bool {
		ok, _ := feasibleAt(a, b, cands[i], false)
		return ok
	})
	if idx == len(cands) {
		return 0, nil, ErrNoFiniteMatching
	}

	t := cands[idx]
	if !wantMatching {
		return t, nil, nil
	}
	_, match := feasibleAt(a, b, t, true)

	return t, match, nil
}

// emptyMatching keeps the "nil unless requested" contract for the trivial case.
func emptyMatching(want bool) Matching {
	if !want {
		return nil
	}

	return Matching{}
}
