package output

import (
	"fmt"
	"io"

	"github.com/vegasq/tallycat/frame"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to convert a frame to the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the frame in the formatter's specific format
	Format(f *frame.Frame) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Formats lists the names accepted by New.
var Formats = []string{"json", "jsonl", "csv", "table"}

// New returns the formatter registered under name, writing to w.
func New(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "table":
		return NewTableFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format '%s'", name)
	}
}
