package reader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vegasq/tallycat/frame"
)

// FileColumn is the column added to rows read through a glob pattern. It
// holds the path of the file each row came from.
const FileColumn = "_file"

// maxFiles limits the number of files a glob pattern may expand to.
const maxFiles = 1000

// table is a loaded frame together with the per-column types declared by
// the source format.
type table struct {
	frame       *frame.Frame
	sourceTypes []string
}

// ReadFile reads a single data file into a frame. The format is chosen by
// extension:
//
//	.parquet                  Apache Parquet
//	.arrow, .feather, .ipc    Arrow IPC file format
//	.arrows                   Arrow IPC stream format
//	.csv                      CSV with a header row
//	.jsonl, .ndjson, .json    JSON Lines (one object per line)
func ReadFile(path string) (*frame.Frame, error) {
	tbl, err := readTable(path)
	if err != nil {
		return nil, err
	}
	return tbl.frame, nil
}

func readTable(path string) (*table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".parquet":
		return readParquet(path)
	case ".arrow", ".feather", ".ipc":
		return readArrowFile(path)
	case ".arrows":
		return readArrowStream(path)
	case ".csv":
		return readCSV(path)
	case ".jsonl", ".ndjson", ".json":
		return readJSONLines(path)
	default:
		return nil, fmt.Errorf("unsupported file format %q", ext)
	}
}

// ReadMultipleFiles reads all rows from the files matching a glob pattern.
//
// The pattern can include wildcards:
//   - * matches any sequence of non-separator characters
//   - ? matches any single non-separator character
//   - [range] matches any character in range
//
// Examples:
//   - "data/*.parquet" - all parquet files in data directory
//   - "data/2024-*.csv" - CSV files starting with 2024- in data directory
//   - "data/*/*.arrow" - arrow files in subdirectories of data
//
// A path without wildcards reads that single file unchanged. For a glob,
// the frames are bound row-wise (columns missing from a file become
// missing cells) and a _file column records the source path of every row.
// Returns an error if no files match the pattern or if any file fails to
// read.
func ReadMultipleFiles(pattern string) (*frame.Frame, error) {
	if !strings.ContainsAny(pattern, "*?[]") {
		return ReadFile(pattern)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}

	// Limit number of files to prevent resource exhaustion
	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	var out *frame.Frame
	for _, path := range matches {
		f, err := ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		tagged, err := tagFile(f, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		if out == nil {
			out = tagged
			continue
		}
		if out, err = out.BindRows(tagged); err != nil {
			return nil, fmt.Errorf("failed to combine %s: %w", path, err)
		}
	}

	return out, nil
}

// tagFile appends the _file column to f. An existing _file column is
// replaced.
func tagFile(f *frame.Frame, path string) (*frame.Frame, error) {
	if _, ok := f.Index(FileColumn); ok {
		indices, err := frame.Except(FileColumn).Resolve(f)
		if err != nil {
			return nil, err
		}
		f = f.Select(indices)
	}

	col := make([]any, f.NumRows())
	for i := range col {
		col[i] = path
	}
	tag, err := frame.New([]string{FileColumn}, [][]any{col})
	if err != nil {
		return nil, err
	}
	return f.BindCols(tag)
}
