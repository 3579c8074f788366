// Package bottleneck computes the bottleneck distance between two
// persistence diagrams, exactly or to any requested relative precision,
// with an optional optimal matching.
//
// 🚀 What is the bottleneck distance?
//
//	Persistence diagrams summarise the topology of data as points
//	(birth, death) above the diagonal. The bottleneck distance between
//	two diagrams is the minimax matching distance: the smallest threshold t
//	such that every point of one diagram can be paired with a point of the
//	other (or with its own diagonal projection) while no pair is farther
//	than t apart in the L∞ metric. It is the standard stability metric of
//	topological data analysis.
//
// ✨ Key features:
//   - exact mode (Delta = 0): binary search over the finite candidate set of
//     pairwise L∞ distances and half-persistences
//   - approximate mode (Delta > 0): bisection to a (1+Delta) relative factor,
//     much cheaper on large diagrams
//   - matching feasibility by unit-capacity max-flow (level graph + blocking
//     flow), with an implicit diagonal node instead of quadratic projections
//   - optional optimal matching recovery (ReturnMatching=true)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tda/bottleneck"
//
//	a := bottleneck.Diagram{{Birth: 0, Death: 2}, {Birth: 1, Death: 4}}
//	b := bottleneck.Diagram{{Birth: 0, Death: 2.1}}
//
//	opts := bottleneck.DefaultOptions() // Delta = 0.01
//	d, _, err := bottleneck.Distance(a, b, &opts)
//
// Tolerance semantics (hard zero branch):
//
//	Delta == 0.0  → exact algorithm
//	Delta  > 0.0  → (1+Delta)-approximation, Delta passed through unchanged
//	Delta  < 0.0  → ErrNegativeDelta
//
// The branch is a literal equality check on zero: Delta = 1e-300 still takes
// the approximate path. Point coordinates are never validated; NaN or ±Inf
// coordinates surface as ErrNoFiniteMatching when they make every matching
// infeasible.
//
// Performance:
//
//   - Feasibility test: O(E·√V) with V = n+m+3 nodes, E ≤ n·m + n + m edges.
//   - Exact:  O(log(n·m)) feasibility tests over a sorted candidate set,
//     O(n·m·log(n·m)) candidate preparation.
//   - Approx: O(log(1/Delta)) feasibility tests.
//
// Guarantees: Distance(a, b, ·) == Distance(b, a, ·) in exact mode,
// Distance(a, a, 0) == 0, and empty-vs-empty is 0. A diagram against the
// empty diagram measures its largest half-persistence.
//
// See example_test.go for worked scenarios.
package bottleneck
