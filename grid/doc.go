// SPDX-License-Identifier: MIT

// Package grid models the beam manifold as an immutable rectangular grid
// of cells and loads it from its text diagram.
//
// What:
//
//   - Cell enumerates the four cell kinds: Empty ('.'), Start ('S'),
//     Splitter ('^') and Blocking (any other symbol).
//   - Grid wraps a rectangular, row-major matrix of cells. It is deep-copied
//     on construction and never mutated afterwards, so any number of readers
//     may share it without locking.
//   - Parse, ParseString and ReadFile turn a diagram of equal-length lines
//     into a Grid.
//
// Complexity:
//
//   - New / Parse:   O(W×H) time and memory.
//   - At / InBounds: O(1).
//   - StartColumn:   O(W).
//   - Splitters:     O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMissingStart:   row 0 carries no Start cell.
package grid
