// SPDX-License-Identifier: MIT

package beam

import "slices"

// frontier is the set of columns carrying a beam on the current row.
// Membership is tracked per column so inserts deduplicate in O(1).
type frontier struct {
	cols []int
	seen []bool
}

// newFrontier returns an empty frontier for a grid of the given width.
func newFrontier(width int) *frontier {
	return &frontier{
		cols: make([]int, 0, width),
		seen: make([]bool, width),
	}
}

// add inserts col unless it is out of range or already present.
// Reports whether the frontier grew.
func (f *frontier) add(col int) bool {
	if col < 0 || col >= len(f.seen) || f.seen[col] {
		return false
	}
	f.seen[col] = true
	f.cols = append(f.cols, col)
	return true
}

// size returns the number of distinct columns.
func (f *frontier) size() int { return len(f.cols) }

// reset empties the frontier, keeping its storage.
func (f *frontier) reset() {
	for _, c := range f.cols {
		f.seen[c] = false
	}
	f.cols = f.cols[:0]
}

// sorted returns a fresh ascending copy of the columns.
func (f *frontier) sorted() []int {
	out := slices.Clone(f.cols)
	slices.Sort(out)
	return out
}
