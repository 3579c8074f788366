package takens

// Embed — time-delay (Takens) embedding of a scalar series.
//
// Algorithm Outline:
//  1. Validate the series and options (positive τ, d, stride).
//  2. In Search mode, fit the parameters (see search.go):
//     a. τ* minimises the time-delayed mutual information over 1..τmax.
//     b. d* minimises the false-nearest-neighbours variation over 2..dmax.
//  3. Lay out k = (n - τ(d-1) - 1)/stride + 1 points, last-aligned: the
//     initial offset is chosen so the last coordinate of the last point is
//     the last sample; up to stride-1 initial samples are dropped.
//  4. Point i gets coordinates series[offset + i·stride + j·τ], j = 0..d-1.
//
// Errors:
//   - ErrEmptySeries    — empty input.
//   - ErrBadParam       — non-positive τ, d or stride.
//   - ErrSeriesTooShort — the span τ(d-1)+1 exceeds the series length.
//
// The input is borrowed and never mutated; every returned point is a fresh
// slice. Complexity: O(k·d) for the layout plus the Search cost (doc.go).
func Embed(series []float64, opts *Options) ([][]float64, Params, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if len(series) == 0 {
		return nil, Params{}, ErrEmptySeries
	}
	if cfg.TimeDelay < 1 || cfg.Dimension < 1 || cfg.Stride < 1 {
		return nil, Params{}, ErrBadParam
	}

	params := Params{TimeDelay: cfg.TimeDelay, Dimension: cfg.Dimension}
	if cfg.Mode == Search {
		params = searchParams(series, cfg)
	}

	points, err := delayEmbedding(series, params.TimeDelay, params.Dimension, cfg.Stride)
	if err != nil {
		return nil, Params{}, err
	}

	return points, params, nil
}

// delayEmbedding lays out the embedded points for fixed τ, d and stride.
func delayEmbedding(series []float64, timeDelay, dimension, stride int) ([][]float64, error) {
	n := len(series)
	span := timeDelay * (dimension - 1)
	if n-span-1 < 0 {
		return nil, ErrSeriesTooShort
	}

	count := (n-span-1)/stride + 1
	offset := (n - span - 1) % stride

	points := make([][]float64, count)
	for i := range points {
		start := offset + i*stride
		p := make([]float64, dimension)
		for j := range p {
			p[j] = series[start+j*timeDelay]
		}
		points[i] = p
	}

	return points, nil
}
