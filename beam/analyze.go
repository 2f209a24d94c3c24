// SPDX-License-Identifier: MIT

package beam

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/manifold/grid"
)

// Report holds the results of both counters for one grid.
type Report struct {
	Splits    uint64 // distinct splitter hits (CountSplits)
	Timelines uint64 // distinct timelines (CountTimelines)
}

// String renders r as the two result lines of the manifold report.
func (r Report) String() string {
	return fmt.Sprintf("Total splits: %d\nTotal possible timelines: %d", r.Splits, r.Timelines)
}

// Analyze runs CountSplits and CountTimelines concurrently on g with the
// same options and returns both results, or the first error.
// The grid is read-only, so the two passes need no coordination; hooks
// in opts may be called from either goroutine.
func Analyze(g *grid.Grid, opts ...Option) (Report, error) {
	if g == nil {
		return Report{}, ErrGridNil
	}

	var (
		rep Report
		eg  errgroup.Group
	)
	eg.Go(func() error {
		n, err := CountSplits(g, opts...)
		if err != nil {
			return fmt.Errorf("count splits: %w", err)
		}
		rep.Splits = n
		return nil
	})
	eg.Go(func() error {
		n, err := CountTimelines(g, opts...)
		if err != nil {
			return fmt.Errorf("count timelines: %w", err)
		}
		rep.Timelines = n
		return nil
	})
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}

	return rep, nil
}
