// Package takens defines options, modes and errors for time-delay embedding.
package takens

import "errors"

// ParamsMode controls how the embedding parameters are obtained.
//
//   - Search — TimeDelay and Dimension act as upper bounds: the optimal time
//     delay is found by minimising the time-delayed mutual information, then
//     the dimension by the false-nearest-neighbours variation heuristic.
//   - Fixed  — TimeDelay and Dimension are used exactly as supplied.
type ParamsMode int

const (
	// Search mode: treat TimeDelay/Dimension as search upper bounds.
	Search ParamsMode = iota

	// Fixed mode: use TimeDelay/Dimension verbatim.
	Fixed
)

var (
	// ErrEmptySeries indicates the input series is empty.
	ErrEmptySeries = errors.New("takens: input series must be non-empty")

	// ErrBadParam indicates a non-positive time delay, dimension or stride.
	ErrBadParam = errors.New("takens: time delay, dimension and stride must be positive")

	// ErrSeriesTooShort indicates the series cannot host a single embedded point.
	ErrSeriesTooShort = errors.New("takens: series too short for the requested embedding")
)

// Options configures a Takens embedding.
//
// Fields:
//   - Mode      — Search (default) or Fixed, see ParamsMode.
//   - TimeDelay — τ, the step between consecutive coordinates of one
//     embedded point (upper bound in Search mode).
//   - Dimension — d, the number of coordinates per embedded point (upper
//     bound in Search mode).
//   - Stride    — step between the start samples of consecutive embedded
//     points; 1 is the usual value in Takens's theorem.
//
// Example:
//
//	opts := takens.DefaultOptions()
//	opts.Mode = takens.Fixed
//	opts.TimeDelay = 2
//	opts.Dimension = 3
//
//	points, used, err := takens.Embed(series, &opts)
type Options struct {
	Mode      ParamsMode
	TimeDelay int
	Dimension int
	Stride    int
}

// Params reports the embedding parameters actually used: in Search mode the
// fitted optima (each no larger than its bound), in Fixed mode the inputs.
type Params struct {
	TimeDelay int
	Dimension int
}

// DefaultOptions returns Options initialised with sensible defaults:
//
//   - Mode:      Search.
//   - TimeDelay: 1.
//   - Dimension: 5.
//   - Stride:    1.
func DefaultOptions() Options {
	return Options{
		Mode:      Search,
		TimeDelay: 1,
		Dimension: 5,
		Stride:    1,
	}
}
