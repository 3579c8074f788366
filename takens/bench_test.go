package takens_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tda/takens"
)

// benchmarkEmbed runs Embed on a length-n sine series using opts.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkEmbed(b *testing.B, n int, opts takens.Options) {
	series := make([]float64, n)
	for i := range series {
		series[i] = math.Sin(float64(i) / 10)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, _, err := takens.Embed(series, &opts); err != nil {
			b.Fatalf("Embed failed: %v", err)
		}
	}
}

// BenchmarkEmbed_FixedMedium benchmarks fixed-parameter embedding of 10k samples.
func BenchmarkEmbed_FixedMedium(b *testing.B) {
	benchmarkEmbed(b, 10_000, takens.Options{Mode: takens.Fixed, TimeDelay: 5, Dimension: 3, Stride: 1})
}

// BenchmarkEmbed_FixedLarge benchmarks fixed-parameter embedding of 100k samples.
func BenchmarkEmbed_FixedLarge(b *testing.B) {
	benchmarkEmbed(b, 100_000, takens.Options{Mode: takens.Fixed, TimeDelay: 5, Dimension: 3, Stride: 1})
}

// BenchmarkEmbed_SearchSmall benchmarks the full parameter search on 500
// samples; the quadratic neighbour step dominates.
func BenchmarkEmbed_SearchSmall(b *testing.B) {
	opts := takens.DefaultOptions()
	opts.TimeDelay = 10
	benchmarkEmbed(b, 500, opts)
}
