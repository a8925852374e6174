package frame

import (
	"fmt"
	"sort"
)

// Frame is an ordered collection of named, equal-length columns.
type Frame struct {
	names []string
	cols  [][]any
	index map[string]int
	rows  int
}

// New creates a frame from column names and column data.
//
// The names must be unique and non-empty, and every column must have the
// same length. The column slices are copied, so later changes made by the
// caller do not leak into the frame.
func New(names []string, cols [][]any) (*Frame, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrInvalidInput, len(names), len(cols))
	}

	f := &Frame{
		names: make([]string, len(names)),
		cols:  make([][]any, len(cols)),
		index: make(map[string]int, len(names)),
	}
	copy(f.names, names)

	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: column %d has an empty name", ErrInvalidInput, i)
		}
		if _, exists := f.index[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		f.index[name] = i

		if i == 0 {
			f.rows = len(cols[i])
		} else if len(cols[i]) != f.rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d", ErrLengthMismatch, name, len(cols[i]), f.rows)
		}

		col := make([]any, len(cols[i]))
		copy(col, cols[i])
		f.cols[i] = col
	}

	return f, nil
}

// FromRecords creates a frame from row maps.
//
// The names argument fixes the column order. Keys missing from a record
// become missing cells; keys not listed in names are ignored. When names is
// empty, the union of all record keys is used in sorted order.
func FromRecords(names []string, records []map[string]any) (*Frame, error) {
	if len(names) == 0 {
		names = recordKeys(records)
	}

	cols := make([][]any, len(names))
	for i, name := range names {
		col := make([]any, len(records))
		for r, rec := range records {
			col[r] = rec[name]
		}
		cols[i] = col
	}

	return New(names, cols)
}

// From adapts a dynamically typed value into a frame.
//
// Accepted inputs are *Frame, Frame, []map[string]any (records, columns in
// sorted key order) and map[string][]any (columns, sorted by name). Any
// other value, including bare sequences such as []any or []int, fails with
// ErrInvalidInput.
func From(v any) (*Frame, error) {
	switch val := v.(type) {
	case *Frame:
		if val == nil {
			return nil, fmt.Errorf("%w: nil frame", ErrInvalidInput)
		}
		return val, nil
	case Frame:
		return &val, nil
	case []map[string]any:
		return FromRecords(nil, val)
	case map[string][]any:
		names := make([]string, 0, len(val))
		for name := range val {
			names = append(names, name)
		}
		sort.Strings(names)
		cols := make([][]any, len(names))
		for i, name := range names {
			cols[i] = val[name]
		}
		return New(names, cols)
	default:
		return nil, fmt.Errorf("%w: expected tabular data, got %T", ErrInvalidInput, v)
	}
}

// recordKeys returns the sorted union of keys across records.
func recordKeys(records []map[string]any) []string {
	seen := make(map[string]bool)
	for _, rec := range records {
		for key := range rec {
			seen[key] = true
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int { return f.rows }

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.names) }

// Names returns a copy of the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

// Index returns the position of the named column.
func (f *Frame) Index(name string) (int, bool) {
	i, ok := f.index[name]
	return i, ok
}

// Column returns the cells of the named column. The returned slice is
// shared with the frame and must not be modified.
func (f *Frame) Column(name string) ([]any, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return f.cols[i], nil
}

// ColumnAt returns the cells of the column at position i. The returned
// slice is shared with the frame and must not be modified.
func (f *Frame) ColumnAt(i int) []any {
	return f.cols[i]
}

// Value returns the cell at the given row and column position.
func (f *Frame) Value(row, col int) any {
	return f.cols[col][row]
}

// Row returns row i as a map keyed by column name.
func (f *Frame) Row(i int) map[string]any {
	row := make(map[string]any, len(f.names))
	for c, name := range f.names {
		row[name] = f.cols[c][i]
	}
	return row
}

// Kind returns the inferred kind of the column at position i.
func (f *Frame) Kind(i int) Kind {
	return ColumnKind(f.cols[i])
}

// Select returns a frame holding the columns at the given positions, in
// the given order. Positions must be valid; use Selection.Resolve to
// obtain them from names.
func (f *Frame) Select(indices []int) *Frame {
	out := &Frame{
		names: make([]string, len(indices)),
		cols:  make([][]any, len(indices)),
		index: make(map[string]int, len(indices)),
		rows:  f.rows,
	}
	for i, idx := range indices {
		out.names[i] = f.names[idx]
		out.index[f.names[idx]] = i
		col := make([]any, f.rows)
		copy(col, f.cols[idx])
		out.cols[i] = col
	}
	return out
}

// BindCols returns a new frame with the columns of other placed to the
// right of the columns of f. Both frames must have the same number of rows
// and no column name in common.
func (f *Frame) BindCols(other *Frame) (*Frame, error) {
	if other == nil {
		return nil, fmt.Errorf("%w: nil frame", ErrInvalidInput)
	}
	if f.NumCols() > 0 && other.NumCols() > 0 && f.rows != other.rows {
		return nil, fmt.Errorf("%w: %d rows and %d rows", ErrLengthMismatch, f.rows, other.rows)
	}

	names := append(f.Names(), other.names...)
	cols := make([][]any, 0, len(names))
	cols = append(cols, f.cols...)
	cols = append(cols, other.cols...)
	return New(names, cols)
}

// BindRows returns a new frame with the rows of other placed below the
// rows of f. The result holds the union of both column sets: the columns
// of f first, then columns only present in other, in their order. Cells of
// a column absent from one of the frames are missing.
func (f *Frame) BindRows(other *Frame) (*Frame, error) {
	if other == nil {
		return nil, fmt.Errorf("%w: nil frame", ErrInvalidInput)
	}

	names := f.Names()
	for _, name := range other.names {
		if _, exists := f.index[name]; !exists {
			names = append(names, name)
		}
	}

	total := f.rows + other.rows
	cols := make([][]any, len(names))
	for i, name := range names {
		col := make([]any, total)
		if c, ok := f.index[name]; ok {
			copy(col, f.cols[c])
		}
		if c, ok := other.index[name]; ok {
			copy(col[f.rows:], other.cols[c])
		}
		cols[i] = col
	}

	return New(names, cols)
}

// Head returns a frame holding at most the first n rows. A non-positive n
// returns a copy of the whole frame.
func (f *Frame) Head(n int) *Frame {
	if n <= 0 || n > f.rows {
		n = f.rows
	}
	out := &Frame{
		names: f.Names(),
		cols:  make([][]any, len(f.cols)),
		index: make(map[string]int, len(f.names)),
		rows:  n,
	}
	for i, name := range out.names {
		out.index[name] = i
		col := make([]any, n)
		copy(col, f.cols[i][:n])
		out.cols[i] = col
	}
	return out
}
