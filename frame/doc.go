// Package frame provides the in-memory tabular container used by tallycat.
//
// A Frame is an ordered sequence of named columns. Every column holds the
// same number of cells, so rows are aligned by position. Cells are plain Go
// values (integers, floats, strings, booleans); nil marks a missing cell.
//
// # Building Frames
//
// From columns:
//
//	f, err := frame.New(
//	    []string{"c1", "c2"},
//	    [][]any{{1, 2, nil}, {3, 2, 1}},
//	)
//
// From records with an explicit column order:
//
//	f, err := frame.FromRecords([]string{"id", "name"}, rows)
//
// From a dynamically typed value, rejecting anything that is not tabular:
//
//	f, err := frame.From(v)
//	if errors.Is(err, frame.ErrInvalidInput) {
//	    // v was a bare slice, a scalar, ...
//	}
//
// # Selecting Columns
//
// Column subsets are described by a Selection and resolved once against
// the frame schema:
//
//	idx, err := frame.Range("c1", "c3").Resolve(f)
//	sub := f.Select(idx)
//
// # Missing Values
//
// IsMissing reports nil cells and float NaN cells. IsInf reports float
// cells holding positive or negative infinity. Equal compares a cell with a
// literal and never matches a missing cell.
//
// Frames are never modified in place: Select, BindCols, BindRows and Head
// all return new frames with their own column slices.
package frame
