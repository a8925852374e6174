package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/vegasq/tallycat/frame"
)

// readCSV reads a CSV file with a header row.
//
// Empty fields and "NA" are missing. Each column is typed from its
// non-missing fields: all booleans (TRUE/FALSE, true/false) give a bool
// column, all integers an int64 column, all numbers (including Inf, -Inf)
// a float64 column; anything else stays a string column.
func readCSV(path string) (*table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	tbl, err := parseCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv %s: %w", path, err)
	}
	return tbl, nil
}

func parseCSV(r io.Reader) (*table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, err
	}

	fields := make([][]string, len(header))
	for {
		record, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		for c, field := range record {
			fields[c] = append(fields[c], field)
		}
	}

	cols := make([][]any, len(header))
	types := make([]string, len(header))
	for c := range header {
		cols[c] = typeCSVColumn(fields[c])
		types[c] = "text"
	}

	f, err := frame.New(header, cols)
	if err != nil {
		return nil, err
	}
	return &table{frame: f, sourceTypes: types}, nil
}

func isCSVMissing(s string) bool {
	return s == "" || s == "NA"
}

func parseCSVBool(s string) (bool, bool) {
	switch s {
	case "TRUE", "true":
		return true, true
	case "FALSE", "false":
		return false, true
	default:
		return false, false
	}
}

func parseCSVFloat(s string) (float64, bool) {
	switch s {
	case "Inf", "+Inf":
		return math.Inf(1), true
	case "-Inf":
		return math.Inf(-1), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// typeCSVColumn converts raw fields to the narrowest kind that fits every
// non-missing field.
func typeCSVColumn(raw []string) []any {
	allBool, allInt, allFloat := true, true, true
	for _, s := range raw {
		if isCSVMissing(s) {
			continue
		}
		if _, ok := parseCSVBool(s); !ok {
			allBool = false
		}
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			allInt = false
		}
		if _, ok := parseCSVFloat(strings.TrimSpace(s)); !ok {
			allFloat = false
		}
	}

	col := make([]any, len(raw))
	for i, s := range raw {
		if isCSVMissing(s) {
			continue
		}
		switch {
		case allBool:
			col[i], _ = parseCSVBool(s)
		case allInt:
			col[i], _ = strconv.ParseInt(s, 10, 64)
		case allFloat:
			col[i], _ = parseCSVFloat(strings.TrimSpace(s))
		default:
			col[i] = s
		}
	}
	return col
}
