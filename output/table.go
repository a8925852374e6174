package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/tallycat/frame"
)

// TableFormatter outputs frames as an aligned text table. Missing cells are
// shown as NA.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format renders the frame with a header row.
func (t *TableFormatter) Format(f *frame.Frame) error {
	table := tablewriter.NewWriter(t.writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader(f.Names())

	for r := 0; r < f.NumRows(); r++ {
		row := make([]string, f.NumCols())
		for c := range row {
			row[c] = frame.FormatValue(f.Value(r, c))
		}
		table.Append(row)
	}

	table.Render()
	return nil
}
