package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/tallycat/frame"
)

// CSVFormatter outputs frames as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes a header row followed by one record per row. Missing
// cells are written as empty fields.
func (c *CSVFormatter) Format(f *frame.Frame) error {
	csvWriter := csv.NewWriter(c.writer)

	if f.NumCols() > 0 {
		if err := csvWriter.Write(f.Names()); err != nil {
			return err
		}
	}

	record := make([]string, f.NumCols())
	for r := 0; r < f.NumRows(); r++ {
		for col := range record {
			record[col] = formatValue(f.Value(r, col))
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

// formatValue converts a cell to string for CSV output
func formatValue(v any) string {
	if frame.IsMissing(v) {
		return ""
	}

	if val, ok := v.(string); ok {
		// Sanitize against CSV injection by prefixing dangerous characters
		// that could trigger formula execution in spreadsheet applications
		if len(val) > 0 {
			firstChar := val[0]
			if firstChar == '=' || firstChar == '+' || firstChar == '-' || firstChar == '@' || firstChar == '\t' || firstChar == '\r' || firstChar == '\n' || firstChar == '|' {
				// Escape existing single quotes and prefix with quote to prevent formula injection
				return "'" + strings.ReplaceAll(val, "'", "''")
			}
		}
		return val
	}

	return frame.FormatValue(v)
}
