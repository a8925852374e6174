package frame

import "errors"

// Errors returned by frame operations. Callers match them with errors.Is;
// the returned errors are wrapped with the offending name or position.
var (
	// ErrInvalidInput is returned when a value is not tabular data.
	ErrInvalidInput = errors.New("invalid input type")

	// ErrUnknownColumn is returned when a selection names a column or
	// position that does not exist.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrLengthMismatch is returned when columns or frames that must be
	// row-aligned have different lengths.
	ErrLengthMismatch = errors.New("row count mismatch")
)
