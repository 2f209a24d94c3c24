// SPDX-License-Identifier: MIT

// Package beam defines options, memory modes and sentinel errors for the
// split and timeline counters.
package beam

import (
	"errors"
	"fmt"
)

// Sentinel errors for counter execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("beam: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("beam: invalid option supplied")
)

// MemoryMode controls how CountTimelines stores its weight table.
//
//   - FullMatrix: keep the whole height×width table; edge exits are read
//     from the finished table. Memory: O(W·H).
//
//   - TwoRows: keep only the current and next row; edge exits are added
//     while each row is propagated. Memory: O(W).
//
// Both modes return the same count.
type MemoryMode int

const (
	// FullMatrix mode: dense table, edge exits accumulated after the fill.
	FullMatrix MemoryMode = iota

	// TwoRows mode: two rolling rows, edge exits accumulated per row.
	TwoRows
)

// String returns the textual name of m ("full" or "rows").
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "full"
	case TwoRows:
		return "rows"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m MemoryMode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: unknown memory mode %d", ErrOptionViolation, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting "full" and "rows".
func (m *MemoryMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "full", "":
		*m = FullMatrix
	case "rows":
		*m = TwoRows
	default:
		return fmt.Errorf("%w: unknown memory mode %q", ErrOptionViolation, text)
	}
	return nil
}

func (m MemoryMode) valid() bool {
	return m == FullMatrix || m == TwoRows
}

// Option configures counter behavior via functional arguments.
// If an Option is invalid (e.g. unknown memory mode), it is recorded
// internally and surfaced as ErrOptionViolation when a counter is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by the counters.
// Each counter reads only the fields that concern it.
type Options struct {
	// MemoryMode selects the CountTimelines storage strategy.
	MemoryMode MemoryMode

	// OnFrontier is called by CountSplits for every row the beams reach,
	// starting with row 0, with the frontier columns in ascending order.
	// The slice is owned by the caller of the hook.
	OnFrontier func(row int, cols []int)

	// OnRow is called by CountTimelines once row has been finalized, with
	// the per-column timeline counts for that row. The slice is only valid
	// for the duration of the call and must not be modified.
	OnRow func(row int, ways []uint64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - FullMatrix memory mode
//   - no-op hooks (OnFrontier, OnRow)
func DefaultOptions() Options {
	return Options{
		MemoryMode: FullMatrix,
		OnFrontier: func(int, []int) {},
		OnRow:      func(int, []uint64) {},
	}
}

// WithMemoryMode selects the weight-table storage used by CountTimelines.
// An unknown mode is recorded as ErrOptionViolation.
func WithMemoryMode(m MemoryMode) Option {
	return func(o *Options) {
		if !m.valid() {
			o.err = fmt.Errorf("%w: unknown memory mode %d", ErrOptionViolation, int(m))
			return
		}
		o.MemoryMode = m
	}
}

// WithOnFrontier registers a callback run by CountSplits on every frontier.
func WithOnFrontier(fn func(row int, cols []int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFrontier = fn
		}
	}
}

// WithOnRow registers a callback run by CountTimelines on every finalized row.
func WithOnRow(fn func(row int, ways []uint64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRow = fn
		}
	}
}

// buildOptions applies opts over the defaults and reports the first violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
