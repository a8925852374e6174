package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/vegasq/tallycat/frame"
)

// readJSONLines reads a file holding one JSON object per line.
//
// Columns appear in the order their keys are first seen. Keys absent from
// an object and JSON nulls become missing cells; integral numbers become
// int64 and other numbers float64. Nested objects and arrays are kept as
// single cells.
func readJSONLines(path string) (*table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	tbl, err := parseJSONLines(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read json lines %s: %w", path, err)
	}
	return tbl, nil
}

func parseJSONLines(r io.Reader) (*table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var names []string
	seen := make(map[string]bool)
	var records []map[string]any

	for n := 1; ; n++ {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("object %d: %w", n, err)
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '{' {
			return nil, fmt.Errorf("object %d: expected a JSON object, got %v", n, tok)
		}

		record := make(map[string]any)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("object %d: %w", n, err)
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object %d: expected a key, got %v", n, keyTok)
			}

			var value any
			if err := dec.Decode(&value); err != nil {
				return nil, fmt.Errorf("object %d: key %q: %w", n, key, err)
			}
			record[key] = jsonCell(value)

			if !seen[key] {
				seen[key] = true
				names = append(names, key)
			}
		}
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("object %d: %w", n, err)
		}
		records = append(records, record)
	}

	f, err := frame.FromRecords(names, records)
	if err != nil {
		return nil, err
	}
	types := make([]string, len(names))
	for i := range types {
		types[i] = "json"
	}
	return &table{frame: f, sourceTypes: types}, nil
}

func jsonCell(v any) any {
	num, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := num.Int64(); err == nil {
		return i
	}
	if f, err := num.Float64(); err == nil {
		return f
	}
	return num.String()
}
