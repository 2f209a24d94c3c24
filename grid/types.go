// SPDX-License-Identifier: MIT

package grid

import "errors"

// Sentinel errors for grid construction and inspection.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMissingStart indicates row 0 has no Start cell.
	ErrMissingStart = errors.New("grid: no start cell in first row")
)

// Cell is the content of a single grid position.
// The zero value is Empty.
type Cell uint8

const (
	// Empty lets a beam continue straight down.
	Empty Cell = iota
	// Start marks the beam origin in row 0; elsewhere it behaves like Empty.
	Start
	// Splitter sends an arriving beam to its left and right neighbours.
	Splitter
	// Blocking absorbs a beam.
	Blocking
)

// Diagram symbols.
const (
	RuneEmpty    = '.'
	RuneStart    = 'S'
	RuneSplitter = '^'
	RuneBlocking = '#'
)

// CellFromRune maps a diagram symbol to its Cell.
// Any symbol other than '.', 'S' and '^' is Blocking.
func CellFromRune(r rune) Cell {
	switch r {
	case RuneEmpty:
		return Empty
	case RuneStart:
		return Start
	case RuneSplitter:
		return Splitter
	default:
		return Blocking
	}
}

// Rune returns the diagram symbol of c. Blocking renders as '#'.
func (c Cell) Rune() rune {
	switch c {
	case Empty:
		return RuneEmpty
	case Start:
		return RuneStart
	case Splitter:
		return RuneSplitter
	default:
		return RuneBlocking
	}
}

// Passes reports whether a beam entering c continues straight down.
func (c Cell) Passes() bool {
	return c == Empty || c == Start
}

// String returns the name of c.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Start:
		return "Start"
	case Splitter:
		return "Splitter"
	default:
		return "Blocking"
	}
}

// Grid is an immutable height×width matrix of cells stored in row-major order.
// Build it with New or Parse; the zero value is not usable.
type Grid struct {
	width, height int
	cells         []Cell
}
