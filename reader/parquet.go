package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/tallycat/frame"
)

// Reader reads parquet files into frames.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type Reader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewReader creates a new parquet reader for the specified file path.
//
// The file is opened and validated as a parquet file. Returns an error if
// the file doesn't exist or is not a valid parquet file.
//
// Example:
//
//	reader, err := NewReader("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reader.Close()
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &Reader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// ReadFrame reads all rows of the parquet file into a frame.
//
// Columns follow the order of the file schema. Fields of nested groups
// become dot-separated columns (e.g. "address.street"); optional values
// that are null become missing cells. The entire file is loaded into
// memory.
func (r *Reader) ReadFrame() (*frame.Frame, error) {
	tbl, err := r.read()
	if err != nil {
		return nil, err
	}
	return tbl.frame, nil
}

func (r *Reader) read() (*table, error) {
	leaves := parquetLeaves(r.Schema())
	names := make([]string, len(leaves))
	types := make([]string, len(leaves))
	columns := make(map[string]bool, len(leaves))
	for i, leaf := range leaves {
		names[i] = leaf.name
		types[i] = leaf.sourceType
		columns[leaf.name] = true
	}

	records := make([]map[string]any, 0, r.pqFile.NumRows())

	pr := parquet.NewReader(r.pqFile)
	defer func() { _ = pr.Close() }()

	for {
		row := make(map[string]any)
		err := pr.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		flat := make(map[string]any, len(names))
		flattenRecord(row, "", columns, flat)
		records = append(records, flat)
	}

	f, err := frame.FromRecords(names, records)
	if err != nil {
		return nil, fmt.Errorf("failed to build frame: %w", err)
	}
	return &table{frame: f, sourceTypes: types}, nil
}

// Schema returns the parquet file schema.
func (r *Reader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// Close closes the parquet reader and releases associated resources.
//
// Should be called when done reading to avoid resource leaks. It is safe
// to call Close multiple times.
func (r *Reader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// flattenRecord copies a parquet row into out, turning nested groups into
// dot-separated keys and byte slices into strings. Values of known columns
// are kept whole, so map-typed columns are not split.
func flattenRecord(row map[string]any, prefix string, columns map[string]bool, out map[string]any) {
	for key, value := range row {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		switch val := value.(type) {
		case map[string]any:
			if columns[name] {
				out[name] = val
			} else {
				flattenRecord(val, name, columns, out)
			}
		case []byte:
			out[name] = string(val)
		default:
			out[name] = val
		}
	}
}

func readParquet(path string) (*table, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return r.read()
}
