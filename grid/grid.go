// SPDX-License-Identifier: MIT

package grid

import "strings"

// New constructs a Grid from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows is empty or its first row has no columns,
// ErrNonRectangular if any row length differs.
// A grid without a Start cell is valid here; the counters reject it.
// Algorithmic complexity: O(W×H) time and memory.
func New(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]Cell, 0, w*h)
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the cell at (row, col). Positions outside the grid read as
// Blocking, so a beam leaving the grid is absorbed like any other obstacle.
// Complexity: O(1).
func (g *Grid) At(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Blocking
	}
	return g.cells[g.index(row, col)]
}

// StartColumn returns the column of the leftmost Start cell in row 0,
// or ErrMissingStart when there is none. Start cells in later rows are
// ignored.
// Complexity: O(W).
func (g *Grid) StartColumn() (int, error) {
	for col, c := range g.cells[:g.width] {
		if c == Start {
			return col, nil
		}
	}
	return 0, ErrMissingStart
}

// Splitters returns the number of Splitter cells in the grid.
// Complexity: O(W×H).
func (g *Grid) Splitters() int {
	n := 0
	for _, c := range g.cells {
		if c == Splitter {
			n++
		}
	}
	return n
}

// String renders the grid back to its diagram, one line per row,
// without a trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for row := 0; row < g.height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range g.cells[g.index(row, 0):g.index(row+1, 0)] {
			sb.WriteRune(c.Rune())
		}
	}
	return sb.String()
}

// index maps (row, col) to a row-major index: row*width + col.
func (g *Grid) index(row, col int) int {
	return row*g.width + col
}
