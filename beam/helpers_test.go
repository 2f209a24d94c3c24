// SPDX-License-Identifier: MIT

package beam_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/manifold/grid"
)

// sampleDiagram is the classic 16-row manifold: 21 splits, 40 timelines.
const sampleDiagram = `.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............`

// mustGrid parses diagram lines joined by '\n' or fails the test.
func mustGrid(t testing.TB, lines ...string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseString(strings.Join(lines, "\n"))
	require.NoError(t, err, "parse diagram")
	return g
}

// corridor builds a grid whose first row holds the start at startCol and
// whose remaining height-1 rows are all splitters.
func corridor(t testing.TB, width, height, startCol int) *grid.Grid {
	t.Helper()
	lines := make([]string, height)
	lines[0] = strings.Repeat(".", startCol) + "S" + strings.Repeat(".", width-startCol-1)
	for r := 1; r < height; r++ {
		lines[r] = strings.Repeat("^", width)
	}
	return mustGrid(t, lines...)
}

// randomGrid returns a random diagram of at most maxW×maxH cells with a
// start in row 0. Splitters are frequent, blockers rare.
func randomGrid(t testing.TB, rng *rand.Rand, maxW, maxH int) *grid.Grid {
	t.Helper()
	w, h := 1+rng.Intn(maxW), 1+rng.Intn(maxH)
	const alphabet = "...^^^#"
	lines := make([]string, h)
	for r := range lines {
		var sb strings.Builder
		for c := 0; c < w; c++ {
			sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		lines[r] = sb.String()
	}
	row0 := []byte(lines[0])
	row0[rng.Intn(w)] = 'S'
	lines[0] = string(row0)
	return mustGrid(t, lines...)
}

// bruteTimelines enumerates every path from (row, col) one by one.
// A branch leaving the grid sideways or the bottom is one timeline,
// a blocked branch is none. Exponential; keep inputs small.
func bruteTimelines(g *grid.Grid, row, col int) uint64 {
	if row == g.Height()-1 {
		return 1
	}
	below := g.At(row+1, col)
	switch {
	case below.Passes():
		return bruteTimelines(g, row+1, col)
	case below == grid.Splitter:
		var n uint64
		for _, c := range []int{col - 1, col + 1} {
			if c < 0 || c >= g.Width() {
				n++
				continue
			}
			n += bruteTimelines(g, row+1, c)
		}
		return n
	default:
		return 0
	}
}

// bruteSplits marks every reachable (row, col) beam position by depth-first
// search and counts the splitter cells directly below a reached position.
func bruteSplits(g *grid.Grid, start int) uint64 {
	type pos struct{ row, col int }
	reached := map[pos]bool{}
	hit := map[pos]bool{}
	var visit func(p pos)
	visit = func(p pos) {
		if reached[p] || !g.InBounds(p.row, p.col) {
			return
		}
		reached[p] = true
		below := g.At(p.row+1, p.col)
		switch {
		case p.row+1 >= g.Height():
		case below.Passes():
			visit(pos{p.row + 1, p.col})
		case below == grid.Splitter:
			hit[pos{p.row + 1, p.col}] = true
			visit(pos{p.row + 1, p.col - 1})
			visit(pos{p.row + 1, p.col + 1})
		}
	}
	visit(pos{0, start})
	return uint64(len(hit))
}
