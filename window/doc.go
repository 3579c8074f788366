// Package window slices a scalar time series into overlapping or strided
// windows, the standard preprocessing step before per-window topological or
// statistical analysis.
//
// 🚀 What is a sliding window?
//
//	Each window stacks Size consecutive samples; consecutive windows start
//	Stride samples apart:
//
//	    series:  x₀ x₁ x₂ x₃ x₄ x₅ x₆ x₇ x₈ x₉
//	    Size=3,  Stride=3:   [x₁ x₂ x₃] [x₄ x₅ x₆] [x₇ x₈ x₉]
//
//	The layout is last-aligned: the final window always ends on the final
//	sample, so a few initial samples may be dropped instead of trailing ones.
//
// ✨ Key features:
//   - last-aligned strided windows, (n−Size)/Stride + 1 of them
//   - windows are fresh copies; the input is never retained or mutated
//   - Resample aligns a target series with the window ends, for supervised
//     pipelines where each window carries one label
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tda/window"
//
//	opts := window.Options{Size: 3, Stride: 3}
//	wins, err := window.Slide(series, &opts)
//	labels, err := window.Resample(y, &opts)
//	// labels[i] corresponds in time to the last entry of wins[i]
//
// Performance: O(k·Size) time and memory for k windows.
package window
