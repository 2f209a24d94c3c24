// SPDX-License-Identifier: MIT

package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a diagram of equal-length lines from r and builds a Grid.
// Symbols are mapped with CellFromRune. A trailing '\r' on each line and
// leading or trailing blank lines are ignored; blank lines between rows are
// kept and therefore rejected as ErrNonRectangular.
// Complexity: O(W×H).
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]Cell
	blank := 0 // pending blank lines, kept only if a non-blank row follows
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			if len(rows) > 0 {
				blank++
			}
			continue
		}
		for ; blank > 0; blank-- {
			rows = append(rows, []Cell{})
		}
		row := make([]Cell, 0, len(line))
		for _, ch := range line {
			row = append(row, CellFromRune(ch))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read diagram: %w", err)
	}

	return New(rows)
}

// ParseString parses a diagram held in memory.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// ReadFile opens path and parses it as a diagram.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open diagram: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
