package window_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/tda/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ramp returns the series 0, 1, …, n-1.
func ramp(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i)
	}
	return s
}

// TestSlide_Validation covers the three error conditions.
func TestSlide_Validation(t *testing.T) {
	_, err := window.Slide(nil, nil)
	assert.ErrorIs(t, err, window.ErrEmptySeries)

	bad := window.Options{Size: 0, Stride: 1}
	_, err = window.Slide(ramp(5), &bad)
	assert.ErrorIs(t, err, window.ErrBadParam)

	big := window.Options{Size: 6, Stride: 1}
	_, err = window.Slide(ramp(5), &big)
	assert.ErrorIs(t, err, window.ErrWindowTooLarge)
}

// TestSlide_LastAlignedLayout pins the layout for size 3, stride 3 on 0..9:
// the first sample is dropped, the final window ends on the final sample.
func TestSlide_LastAlignedLayout(t *testing.T) {
	opts := window.Options{Size: 3, Stride: 3}

	wins, err := window.Slide(ramp(10), &opts)
	require.NoError(t, err)

	want := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	assert.Empty(t, cmp.Diff(want, wins))
}

// TestSlide_UnitStride verifies the dense case: every start position used,
// no samples dropped.
func TestSlide_UnitStride(t *testing.T) {
	opts := window.Options{Size: 4, Stride: 1}

	wins, err := window.Slide(ramp(6), &opts)
	require.NoError(t, err)

	require.Len(t, wins, 3, "(6-4)/1 + 1 windows")
	assert.Equal(t, []float64{0, 1, 2, 3}, wins[0])
	assert.Equal(t, []float64{2, 3, 4, 5}, wins[2])
}

// TestSlide_WindowsAreCopies verifies mutating a window leaves the input
// intact.
func TestSlide_WindowsAreCopies(t *testing.T) {
	series := ramp(5)
	opts := window.Options{Size: 2, Stride: 1}

	wins, err := window.Slide(series, &opts)
	require.NoError(t, err)

	wins[0][0] = -100
	assert.Equal(t, ramp(5), series, "windows must not alias the input")
}

// TestResample_AlignsWithWindowEnds verifies Resample returns the sample
// each window ends on.
func TestResample_AlignsWithWindowEnds(t *testing.T) {
	opts := window.Options{Size: 3, Stride: 3}

	labels, err := window.Resample(ramp(10), &opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6, 9}, labels)

	wins, err := window.Slide(ramp(10), &opts)
	require.NoError(t, err)
	require.Len(t, labels, len(wins))
	for i, w := range wins {
		assert.Equal(t, w[len(w)-1], labels[i], "label %d must equal its window's last entry", i)
	}
}

// TestSlide_ExactFit verifies a single full-length window.
func TestSlide_ExactFit(t *testing.T) {
	opts := window.Options{Size: 5, Stride: 2}

	wins, err := window.Slide(ramp(5), &opts)
	require.NoError(t, err)
	require.Len(t, wins, 1)
	assert.Equal(t, ramp(5), wins[0])
}
