// SPDX-License-Identifier: MIT

package beam

import "github.com/katalvlaran/manifold/grid"

// CountSplits propagates beams row by row from the Start cell and returns
// how many splitter cells they hit.
//
// Algorithm:
//  1. Seed the frontier with the start column at row 0.
//  2. For the next row, partition the frontier columns by the cell below:
//     Splitter → split set, Empty/Start → straight set, anything else
//     (Blocking, or a column outside the grid) is dropped.
//  3. Add |split set| to the total. Several beams reaching the same
//     splitter count once.
//  4. The next frontier holds every straight column plus c-1 and c+1 of
//     every split column, when inside the grid, deduplicated.
//  5. Stop when the frontier is empty or no next row exists.
//
// The result answers "how many splitter cells get touched", not "how many
// paths exist"; see CountTimelines for the latter.
//
// Returns ErrGridNil, ErrOptionViolation, or grid.ErrMissingStart.
//
// Complexity: O(W·H) time, O(W) memory.
func CountSplits(g *grid.Grid, opts ...Option) (uint64, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	start, err := g.StartColumn()
	if err != nil {
		return 0, err
	}

	width, height := g.Width(), g.Height()
	beams := newFrontier(width)
	next := newFrontier(width)
	split := newFrontier(width)
	straight := newFrontier(width)
	beams.add(start)
	o.OnFrontier(0, beams.sorted())

	var total uint64
	for row := 0; beams.size() > 0 && row+1 < height; row++ {
		split.reset()
		straight.reset()
		for _, col := range beams.cols {
			switch c := g.At(row+1, col); {
			case c == grid.Splitter:
				split.add(col)
			case c.Passes():
				straight.add(col)
			}
		}
		total += uint64(split.size())

		next.reset()
		for _, col := range straight.cols {
			next.add(col)
		}
		for _, col := range split.cols {
			next.add(col - 1)
			next.add(col + 1)
		}
		beams, next = next, beams
		if beams.size() > 0 {
			o.OnFrontier(row+1, beams.sorted())
		}
	}

	return total, nil
}
