package output

import (
	"bufio"
	"io"

	"github.com/goccy/go-json"

	"github.com/vegasq/tallycat/frame"
)

// JSONFormatter outputs frames as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row, keys in column order. Missing
// cells are written as null and infinities as the strings "Inf" and
// "-Inf", which JSON cannot represent as numbers.
func (j *JSONFormatter) Format(f *frame.Frame) error {
	bw := bufio.NewWriter(j.writer)
	names := f.Names()

	keys := make([][]byte, len(names))
	for i, name := range names {
		key, err := json.Marshal(name)
		if err != nil {
			return err
		}
		keys[i] = key
	}

	for r := 0; r < f.NumRows(); r++ {
		_ = bw.WriteByte('{')
		for c := range names {
			if c > 0 {
				_ = bw.WriteByte(',')
			}
			_, _ = bw.Write(keys[c])
			_ = bw.WriteByte(':')

			value, err := json.Marshal(jsonValue(f.Value(r, c)))
			if err != nil {
				return err
			}
			_, _ = bw.Write(value)
		}
		if _, err := bw.WriteString("}\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// jsonValue maps cells JSON cannot encode to encodable values.
func jsonValue(v any) any {
	if frame.IsMissing(v) {
		return nil
	}
	if frame.IsInf(v) {
		return frame.FormatValue(v)
	}
	return v
}
