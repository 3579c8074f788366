package takens

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Parameter search heuristics.
//
// The time delay is chosen first: among τ = 1..τmax, pick the τ minimising
// the mutual information between the series and its τ-shifted copy — the
// point where consecutive coordinates stop being redundant. The dimension is
// chosen next by the false-nearest-neighbours criterion of Kennel, Brown and
// Abarbanel: a neighbour in dimension d is "false" when adding the (d+1)-th
// coordinate tears the pair far apart; the selected dimension minimises the
// smoothed variation of the false-neighbour counts.

const (
	// miBins is the number of histogram bins per axis in the
	// mutual-information estimate.
	miBins = 100

	// fnnTolerance is the separation ratio above which a neighbour counts
	// as false.
	fnnTolerance = 10.0

	// fnnEpsilonFactor scales the series' standard deviation into the
	// "close enough to trust" neighbour radius.
	fnnEpsilonFactor = 2.0
)

// searchParams fits the embedding parameters within the bounds carried by cfg.
func searchParams(series []float64, cfg Options) Params {
	tau := optimalTimeDelay(series, cfg.TimeDelay)
	dim := optimalDimension(series, tau, cfg.Dimension, cfg.Stride)

	return Params{TimeDelay: tau, Dimension: dim}
}

// optimalTimeDelay returns the τ in 1..maxDelay minimising the time-delayed
// mutual information (first minimum wins on ties).
func optimalTimeDelay(series []float64, maxDelay int) int {
	best, bestMI := 1, math.Inf(1)
	for tau := 1; tau <= maxDelay && tau < len(series); tau++ {
		if mi := mutualInformation(series, tau); mi < bestMI {
			best, bestMI = tau, mi
		}
	}

	return best
}

// mutualInformation estimates I(x_t ; x_{t+tau}) from a miBins×miBins
// joint histogram, in nats.
func mutualInformation(series []float64, tau int) float64 {
	head := series[:len(series)-tau]
	tail := series[tau:]

	joint := make([][]float64, miBins)
	for i := range joint {
		joint[i] = make([]float64, miBins)
	}
	rowSum := make([]float64, miBins)
	colSum := make([]float64, miBins)

	headLo, headHi := floats.Min(head), floats.Max(head)
	tailLo, tailHi := floats.Min(tail), floats.Max(tail)

	total := float64(len(head))
	for k := range head {
		i := binIndex(head[k], headLo, headHi)
		j := binIndex(tail[k], tailLo, tailHi)
		joint[i][j]++
		rowSum[i]++
		colSum[j]++
	}

	mi := 0.0
	for i := range joint {
		for j, c := range joint[i] {
			if c == 0 {
				continue
			}
			p := c / total
			mi += p * math.Log(p*total*total/(rowSum[i]*colSum[j]))
		}
	}

	return mi
}

// binIndex maps v in [lo, hi] onto 0..miBins-1; a degenerate range collapses
// into bin 0.
func binIndex(v, lo, hi float64) int {
	if hi <= lo {
		return 0
	}
	idx := int((v - lo) / (hi - lo) * miBins)
	if idx >= miBins {
		idx = miBins - 1
	}

	return idx
}

// optimalDimension returns the d in 2..maxDim minimising the smoothed
// variation of false-nearest-neighbour counts, or maxDim when the bound
// leaves no room to search.
func optimalDimension(series []float64, tau, maxDim, stride int) int {
	if maxDim < 2 {
		return maxDim
	}

	// Counts for d = 1..maxDim+2; the variation at d needs d-1 and d+1.
	counts := make([]float64, maxDim+3)
	for d := 1; d <= maxDim+2; d++ {
		counts[d] = float64(falseNearestNeighbors(series, tau, d, stride))
	}

	best, bestVar := 2, math.Inf(1)
	for d := 2; d <= maxDim; d++ {
		variation := math.Abs(counts[d-1]-2*counts[d]+counts[d+1]) / (counts[d] + 1) / float64(d)
		if variation < bestVar {
			best, bestVar = d, variation
		}
	}

	return best
}

// falseNearestNeighbors counts, in embedding dimension dim, the neighbour
// pairs that the (dim+1)-th coordinate would tear apart: close in dimension
// dim (within fnnEpsilonFactor standard deviations) yet separated by more
// than fnnTolerance times their current distance once extended.
//
// Neighbours are found by brute force, O(k²) for k embedded points.
func falseNearestNeighbors(series []float64, tau, dim, stride int) int {
	points, err := delayEmbedding(series, tau, dim, stride)
	if err != nil {
		// Dimensions the series cannot host contribute no false neighbours.
		return 0
	}

	n := len(series)
	span := tau * (dim - 1)
	offset := (n - span - 1) % stride
	epsilon := fnnEpsilonFactor * stat.StdDev(series, nil)

	falseCount := 0
	for i := range points {
		j, dist := nearestNeighbor(points, i)
		if j < 0 || dist >= epsilon {
			continue
		}
		// Index of the would-be (dim+1)-th coordinate of each point.
		extI := offset + i*stride + dim*tau
		extJ := offset + j*stride + dim*tau
		if extI >= n || extJ >= n {
			continue
		}
		gap := math.Abs(series[extI] - series[extJ])
		if dist > 0 && gap/dist > fnnTolerance {
			falseCount++
		}
	}

	return falseCount
}

// nearestNeighbor returns the index of the point closest to points[i]
// (Euclidean) and their distance, or (-1, 0) for a single-point cloud.
func nearestNeighbor(points [][]float64, i int) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	for j := range points {
		if j == i {
			continue
		}
		if d := euclidean(points[i], points[j]); d < bestDist {
			best, bestDist = j, d
		}
	}
	if best < 0 {
		return -1, 0
	}

	return best, bestDist
}

// euclidean returns the L2 distance between two equal-length vectors.
func euclidean(p, q []float64) float64 {
	sum := 0.0
	for k := range p {
		d := p[k] - q[k]
		sum += d * d
	}

	return math.Sqrt(sum)
}
