// Package window defines options and errors for sliding-window extraction.
package window

import "errors"

var (
	// ErrEmptySeries indicates the input series is empty.
	ErrEmptySeries = errors.New("window: input series must be non-empty")

	// ErrBadParam indicates a non-positive size or stride.
	ErrBadParam = errors.New("window: size and stride must be positive")

	// ErrWindowTooLarge indicates the window does not fit into the series.
	ErrWindowTooLarge = errors.New("window: size exceeds the series length")
)

// Options configures sliding-window extraction.
//
// Fields:
//   - Size   — number of consecutive samples per window.
//   - Stride — step between the starts of consecutive windows.
//
// The layout is last-aligned: the final entry of the final window always
// equals the final entry of the series, and up to stride-1 initial samples
// may be dropped.
//
// Example:
//
//	opts := window.DefaultOptions()
//	opts.Size, opts.Stride = 3, 3
//	wins, err := window.Slide(series, &opts)
type Options struct {
	Size   int
	Stride int
}

// DefaultOptions returns Options initialised with sensible defaults:
//
//   - Size:   10.
//   - Stride: 1.
func DefaultOptions() Options {
	return Options{
		Size:   10,
		Stride: 1,
	}
}
