// Package tda is your in-memory toolkit for the topological analysis of
// data — from persistence-diagram metrics to time-series phase-space
// reconstruction.
//
// 🚀 What is tda?
//
//	A modern, pure-Go library that brings together:
//		• Bottleneck distance: exact & approximate metrics between persistence diagrams
//		• Takens embedding: phase-space reconstruction of scalar time series,
//		  with automatic time-delay and dimension search
//		• Sliding windows: last-aligned windowing of series for downstream analysis
//
// ✨ Why choose tda?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure functions, no hidden state, safe for concurrent use
//   - Pure Go – no cgo, no native bindings to care for
//   - Predictable numerics – documented tolerance semantics, no silent sentinels
//
// Everything is organized under three subpackages:
//
//	bottleneck/ — exact & (1+δ)-approximate bottleneck distance, optional matching
//	takens/     — time-delay (Takens) embedding + parameter search
//	window/     — sliding windows over scalar series + target resampling
//
// Quick ASCII example:
//
//	    death ▲        ∘(1,4)
//	          │    ∘(0,2)
//	          │   ╱ diagonal
//	          └──╱──────────▶ birth
//
//	two persistence points above the diagonal; their bottleneck distance to
//	another diagram is the smallest threshold admitting a perfect matching.
//
// Dive into each package's doc.go for full examples, complexity notes, and
// the numeric contracts the algorithms honor.
//
//	go get github.com/katalvlaran/tda
package tda
