package count

import (
	"github.com/vegasq/tallycat/frame"
	"golang.org/x/sync/errgroup"
)

// reduceRows returns, for each row, the number of selected cells for which
// match is true.
func reduceRows(f *frame.Frame, indices []int, match func(any) bool, workers int) []int {
	counts := make([]int, f.NumRows())
	cols := make([][]any, len(indices))
	for i, idx := range indices {
		cols[i] = f.ColumnAt(idx)
	}

	partition(len(counts), workers, func(lo, hi int) {
		for r := lo; r < hi; r++ {
			n := 0
			for _, col := range cols {
				if match(col[r]) {
					n++
				}
			}
			counts[r] = n
		}
	})
	return counts
}

// reduceCols returns, for each selected column, the number of cells for
// which match is true.
func reduceCols(f *frame.Frame, indices []int, match func(any) bool, workers int) []int {
	counts := make([]int, len(indices))

	partition(len(counts), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			n := 0
			for _, cell := range f.ColumnAt(indices[i]) {
				if match(cell) {
					n++
				}
			}
			counts[i] = n
		}
	})
	return counts
}

// partition splits [0, n) into at most workers contiguous ranges and runs
// fn over each. Ranges are disjoint, so fn may write to its own range of a
// shared slice without locking.
func partition(n, workers int, fn func(lo, hi int)) {
	if workers < 2 || n < 2 {
		fn(0, n)
		return
	}
	if workers > n {
		workers = n
	}

	size := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
