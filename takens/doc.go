// Package takens turns a scalar time series into a point cloud via
// time-delay (Takens) embedding, with optional automatic search for the
// embedding parameters.
//
// 🚀 What is a Takens embedding?
//
//	Given a series (x₀, x₁, …), a time delay τ and a dimension d, each
//	embedded point stacks d values τ apart:
//
//	    (x_t, x_{t+τ}, …, x_{t+(d-1)τ})
//
//	Takens's theorem states that, for suitable τ and d, this point cloud
//	reconstructs the phase space of the dynamical system behind the series —
//	making it the canonical bridge from time series to topological and
//	geometric analysis.
//
// ✨ Key features:
//   - fixed mode: use the supplied τ and d verbatim
//   - search mode: τ by minimising time-delayed mutual information,
//     d by the false-nearest-neighbours variation heuristic (Kennel et al.)
//   - last-aligned layout: the final coordinate of the final point always
//     equals the final sample of the series (initial samples may be dropped)
//   - strided embeddings for long series
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tda/takens"
//
//	opts := takens.DefaultOptions() // Search mode, τ ≤ 1, d ≤ 5
//	opts.TimeDelay = 10             // raise the τ search bound
//
//	points, used, err := takens.Embed(series, &opts)
//	// len(points) == (n - used.TimeDelay*(used.Dimension-1) - 1)/Stride + 1
//
// Performance:
//
//   - Embedding: O(n·d) time, O(n·d) memory for the output.
//   - Search:    O(τmax·n) for the mutual-information scan plus O(dmax·k²)
//     for the brute-force nearest-neighbour step, k = number of
//     embedded points.
//
// See example_test.go for a noisy-signal walkthrough.
package takens
