package count

import (
	"fmt"

	"github.com/vegasq/tallycat/frame"
)

// RowCount counts, for every row of f, the selected cells matching
// opts.Target.
//
// The counts form a single column named opts.Name with one int per row.
// With opts.Append set, that column is bound to the right of the original,
// unselected frame; a name clash fails with frame.ErrDuplicateColumn.
// Without it, the count column is returned alone.
//
// Example:
//
//	opts := count.DefaultOptions()
//	opts.Target = count.Literal(1)
//	opts.Append = false
//	counts, err := count.RowCount(f, opts)
func RowCount(f *frame.Frame, opts Options) (*frame.Frame, error) {
	if f == nil {
		return nil, fmt.Errorf("row count: %w: nil frame", frame.ErrInvalidInput)
	}

	indices, err := opts.Select.Resolve(f)
	if err != nil {
		return nil, fmt.Errorf("row count: %w", err)
	}

	counts := reduceRows(f, indices, opts.Target.Predicate(), opts.Workers)

	col := make([]any, len(counts))
	for i, n := range counts {
		col[i] = n
	}
	result, err := frame.New([]string{opts.name()}, [][]any{col})
	if err != nil {
		return nil, fmt.Errorf("row count: %w", err)
	}

	if !opts.Append {
		return result, nil
	}
	out, err := f.BindCols(result)
	if err != nil {
		return nil, fmt.Errorf("row count: append: %w", err)
	}
	return out, nil
}

// ColCount counts, for every selected column of f, the cells matching
// opts.Target.
//
// The counts form a single row with one int column per selected column,
// named and ordered like the selection. With opts.Append set, that row is
// bound below the original, unselected frame and columns outside the
// selection get a missing cell. Without it, the count row is returned
// alone.
func ColCount(f *frame.Frame, opts Options) (*frame.Frame, error) {
	if f == nil {
		return nil, fmt.Errorf("column count: %w: nil frame", frame.ErrInvalidInput)
	}

	indices, err := opts.Select.Resolve(f)
	if err != nil {
		return nil, fmt.Errorf("column count: %w", err)
	}

	counts := reduceCols(f, indices, opts.Target.Predicate(), opts.Workers)

	all := f.Names()
	names := make([]string, len(indices))
	cols := make([][]any, len(indices))
	for i, idx := range indices {
		names[i] = all[idx]
		cols[i] = []any{counts[i]}
	}
	result, err := frame.New(names, cols)
	if err != nil {
		return nil, fmt.Errorf("column count: %w", err)
	}

	if !opts.Append {
		return result, nil
	}
	out, err := f.BindRows(result)
	if err != nil {
		return nil, fmt.Errorf("column count: append: %w", err)
	}
	return out, nil
}
