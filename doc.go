// Package scalespace decomposes depth-indexed borehole signals into
// nested regions of uniform wavelet-transform sign, together with the
// depth interval each region spans.
//
// 🚀 What is scalespace?
//
//	A synchronous, in-memory library that brings together:
//		• depthaxis/  — depth axes: validation, gap & subdomain identification
//		• grid/       — dense (scale × depth) grids shared by every stage
//		• mask/       — gap and cone-of-influence validity masking
//		• wavelet/    — continuous wavelet transform evaluation & parameters
//		• label/      — connected regions of uniform transform sign
//		• enclosure/  — region hierarchies and bottom-up extent reduction
//		• wavedomain/ — the orchestrator tying the stages together
//
// ✨ Why choose scalespace?
//
//   - Deterministic – identical inputs give byte-identical labels and trees
//   - Explicit – every precondition fails fast with a sentinel error
//   - Pure Go – no cgo, no network, no files, no persisted state
//
// Control flow, leaf to root:
//
//	signal ──wavelet──▶ transform grid ──mask──▶ valid cells
//	       ──label──▶ label grid ──enclosure──▶ region forest + intervals
//
// Dive into each package's doc.go for algorithms, options and errors,
// and the example_test.go files for runnable walkthroughs.
//
//	go get github.com/geowav/scalespace
package scalespace
