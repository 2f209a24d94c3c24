// SPDX-License-Identifier: MIT

package beam

import "github.com/katalvlaran/manifold/grid"

// CountTimelines returns the number of distinct paths a beam can take from
// the Start cell until it leaves the grid.
//
// Algorithm Outline (FullMatrix):
//  1. Allocate the height×width table T, T[0][start] = 1.
//  2. For r = 0..H-2, c = 0..W-1 with w = T[r][c] > 0, by the cell (r+1, c):
//     Empty/Start → T[r+1][c]   += w
//     Splitter    → T[r+1][c-1] += w (c > 0), T[r+1][c+1] += w (c+1 < W)
//     Blocking    → nothing
//     A split duplicates timelines: both branches carry the full w.
//  3. total = Σ T[H-1][c], the timelines falling off the bottom edge.
//  4. For every r < H-1: add T[r][0] when (r+1, 0) is a Splitter (its left
//     branch leaves the grid), and T[r][W-1] when (r+1, W-1) is a Splitter.
//     On a one-column grid both rules hit the same cell.
//
// TwoRows mode keeps only T[r] and T[r+1] and applies step 4 while row r is
// propagated. Row r never changes once row r+1 is filled, so both modes
// agree.
//
// Counts grow up to 2^(H-1). A uint64 overflow on larger inputs is not
// detected.
//
// Returns ErrGridNil, ErrOptionViolation, or grid.ErrMissingStart.
//
// Complexity:
//
//	Time   = O(W·H)
//	Memory = O(W·H) (FullMatrix) or O(W) (TwoRows)
func CountTimelines(g *grid.Grid, opts ...Option) (uint64, error) {
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

	if o.MemoryMode == TwoRows {
		return timelinesTwoRows(g, start, o), nil
	}
	return timelinesFullMatrix(g, start, o), nil
}

// timelinesFullMatrix fills the dense table and reads edge exits from it
// afterwards.
func timelinesFullMatrix(g *grid.Grid, start int, o Options) uint64 {
	width, height := g.Width(), g.Height()
	table := make([][]uint64, height)
	backing := make([]uint64, width*height)
	for r := range table {
		table[r] = backing[r*width : (r+1)*width : (r+1)*width]
	}
	table[0][start] = 1

	for r := 0; r+1 < height; r++ {
		spread(g, r, table[r], table[r+1])
		o.OnRow(r, table[r])
	}
	o.OnRow(height-1, table[height-1])

	var total uint64
	for _, ways := range table[height-1] {
		total += ways
	}
	for r := 0; r+1 < height; r++ {
		total += edgeExits(g, r, table[r])
	}

	return total
}

// timelinesTwoRows propagates with two rolling rows and accumulates edge
// exits as each row is finalized.
func timelinesTwoRows(g *grid.Grid, start int, o Options) uint64 {
	width, height := g.Width(), g.Height()
	curr := make([]uint64, width)
	next := make([]uint64, width)
	curr[start] = 1

	var total uint64
	for r := 0; r+1 < height; r++ {
		clear(next)
		spread(g, r, curr, next)
		total += edgeExits(g, r, curr)
		o.OnRow(r, curr)
		curr, next = next, curr
	}
	o.OnRow(height-1, curr)

	for _, ways := range curr {
		total += ways
	}
	return total
}

// spread adds the timelines of row r (curr) into row r+1 (next).
func spread(g *grid.Grid, r int, curr, next []uint64) {
	width := len(curr)
	for c, w := range curr {
		if w == 0 {
			continue
		}
		switch cell := g.At(r+1, c); {
		case cell.Passes():
			next[c] += w
		case cell == grid.Splitter:
			if c > 0 {
				next[c-1] += w
			}
			if c+1 < width {
				next[c+1] += w
			}
		}
	}
}

// edgeExits returns the timelines of row r whose split branch would leave
// the grid sideways: column 0 over a splitter loses its left branch,
// column W-1 over a splitter loses its right branch.
func edgeExits(g *grid.Grid, r int, ways []uint64) uint64 {
	last := len(ways) - 1
	var lost uint64
	if ways[0] > 0 && g.At(r+1, 0) == grid.Splitter {
		lost += ways[0]
	}
	if ways[last] > 0 && g.At(r+1, last) == grid.Splitter {
		lost += ways[last]
	}
	return lost
}
