// SPDX-License-Identifier: MIT

// Package beam simulates beams falling through a manifold grid and counts
// what happens to them.
//
// 🚀 What is counted?
//
//	A beam enters at the Start cell of row 0 and moves down one row per
//	step. Empty cells let it pass, Splitter cells send it to the left and
//	right neighbours of the next row, anything else absorbs it.
//
//	  • CountSplits:    how many distinct splitter cells the beams hit.
//	                    Beams are a deduplicated set of columns per row.
//	  • CountTimelines: how many distinct paths a single beam can take.
//	                    Every split duplicates the timelines reaching it;
//	                    branches that would leave the grid sideways from
//	                    an edge column count as completed timelines.
//	  • Analyze:        both of the above, concurrently.
//
// ⚙️ Usage:
//
//	g, err := grid.ReadFile("manifold_diagram.txt")
//	if err != nil { ... }
//
//	rep, err := beam.Analyze(g, beam.WithMemoryMode(beam.TwoRows))
//	fmt.Println(rep)
//
// Both counters are pure functions of the grid: no shared state, no I/O,
// and at most Height row steps. A grid without a Start cell in row 0
// fails with grid.ErrMissingStart.
//
// Performance:
//
//   - CountSplits:    Time O(W·H), Memory O(W)
//   - CountTimelines: Time O(W·H), Memory O(W·H) (FullMatrix) or O(W) (TwoRows)
package beam
