// SPDX-License-Identifier: MIT

// Package manifold is an in-memory simulator for beams falling through a
// splitter lattice, from the grid model to the split and timeline counts.
//
// 🚀 What is in here?
//
//	• grid/        : Cell kinds, the immutable rectangular Grid, diagram loader
//	• beam/        : CountSplits (deduplicated frontier), CountTimelines
//	                  (row-wise DP with edge exits), Analyze (both, concurrently)
//	• cmd/manifold/: command-line front end
//
// Quick ASCII example:
//
//	S.
//	^.
//
// The beam splits on the left edge: one splitter hit, two timelines (the
// left branch leaves the grid, the right one falls off the bottom).
//
//	go install github.com/katalvlaran/manifold/cmd/manifold@latest
package manifold
