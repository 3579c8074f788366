package window

// Slide extracts last-aligned sliding windows from series.
//
// Layout:
//  1. k = (n - Size)/Stride + 1 windows.
//  2. offset = (n - Size) mod Stride initial samples are dropped so the
//     final window ends exactly on the final sample.
//  3. Window i copies series[offset+i·Stride : offset+i·Stride+Size].
//
// Errors:
//   - ErrEmptySeries    — empty input.
//   - ErrBadParam       — non-positive Size or Stride.
//   - ErrWindowTooLarge — Size exceeds the series length.
//
// The input is borrowed and never mutated; every window is a fresh slice.
func Slide(series []float64, opts *Options) ([][]float64, error) {
	cfg, n, err := normalize(len(series), opts)
	if err != nil {
		return nil, err
	}

	count := (n-cfg.Size)/cfg.Stride + 1
	offset := (n - cfg.Size) % cfg.Stride

	windows := make([][]float64, count)
	for i := range windows {
		start := offset + i*cfg.Stride
		w := make([]float64, cfg.Size)
		copy(w, series[start:start+cfg.Size])
		windows[i] = w
	}

	return windows, nil
}

// Resample selects the entries of y aligned with the last element of each
// window Slide would produce for the same options: Resample(y, o)[i] is the
// sample Slide(y, o)[i] ends on. Use it to carry one label per window.
//
// Shares Slide's validation and errors.
func Resample(y []float64, opts *Options) ([]float64, error) {
	cfg, n, err := normalize(len(y), opts)
	if err != nil {
		return nil, err
	}

	count := (n-cfg.Size)/cfg.Stride + 1
	offset := (n - cfg.Size) % cfg.Stride

	out := make([]float64, count)
	for i := range out {
		out[i] = y[offset+i*cfg.Stride+cfg.Size-1]
	}

	return out, nil
}

// normalize applies defaults and validates the options against the series
// length.
func normalize(n int, opts *Options) (Options, int, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if n == 0 {
		return cfg, 0, ErrEmptySeries
	}
	if cfg.Size < 1 || cfg.Stride < 1 {
		return cfg, 0, ErrBadParam
	}
	if cfg.Size > n {
		return cfg, 0, ErrWindowTooLarge
	}

	return cfg, n, nil
}
