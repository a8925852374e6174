package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/parquet-go/parquet-go"
)

// sampleRow is the four-column dataset used across reader tests. A nil
// field is a missing cell.
type sampleRow struct {
	C1 *float64 `parquet:"c1,optional"`
	C2 *float64 `parquet:"c2,optional"`
	C3 *float64 `parquet:"c3,optional"`
	C4 *float64 `parquet:"c4,optional"`
}

func fp(v float64) *float64 { return &v }

func sampleRows() []sampleRow {
	return []sampleRow{
		{fp(1), fp(3), fp(1), fp(1)},
		{fp(2), fp(2), fp(1), fp(1)},
		{fp(3), fp(1), fp(2), fp(3)},
		{fp(1), fp(2), fp(1), fp(2)},
		{fp(3), nil, fp(3), fp(1)},
		{nil, fp(3), nil, fp(2)},
	}
}

const sampleCSV = `c1,c2,c3,c4
1,3,1,1
2,2,1,1
3,1,2,3
1,2,1,2
3,NA,3,1
,3,NA,2
`

const sampleJSONL = `{"c1": 1, "c2": 3, "c3": 1, "c4": 1}
{"c1": 2, "c2": 2, "c3": 1, "c4": 1}
{"c1": 3, "c2": 1, "c3": 2, "c4": 3}
{"c1": 1, "c2": 2, "c3": 1, "c4": 2}
{"c1": 3, "c2": null, "c3": 3, "c4": 1}
{"c2": 3, "c3": null, "c4": 2}
`

// writeParquetFile writes rows to dir/name and returns the path.
func writeParquetFile[T any](t *testing.T, dir, name string, rows []T) string {
	t.Helper()
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	writer := parquet.NewGenericWriter[T](f)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return path
}

// writeTextFile writes content to dir/name and returns the path.
func writeTextFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// sampleRecord builds the sample dataset as an arrow record.
func sampleRecord(t *testing.T, mem memory.Allocator) arrow.Record {
	t.Helper()
	fields := []arrow.Field{
		{Name: "c1", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "c2", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "c3", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "c4", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	}
	schema := arrow.NewSchema(fields, nil)

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	for _, row := range sampleRows() {
		for c, v := range []*float64{row.C1, row.C2, row.C3, row.C4} {
			fb := b.Field(c).(*array.Float64Builder)
			if v == nil {
				fb.AppendNull()
			} else {
				fb.Append(*v)
			}
		}
	}
	return b.NewRecord()
}

// writeArrowFile writes the sample dataset in the Arrow IPC file format,
// or the stream format when stream is set.
func writeArrowFile(t *testing.T, dir, name string, stream bool) string {
	t.Helper()
	path := filepath.Join(dir, name)
	mem := memory.NewGoAllocator()

	rec := sampleRecord(t, mem)
	defer rec.Release()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if stream {
		w := ipc.NewWriter(f, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(mem))
		if err := w.Write(rec); err != nil {
			t.Fatalf("failed to write record: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("failed to close writer: %v", err)
		}
		return path
	}

	w, err := ipc.NewFileWriter(f, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(mem))
	if err != nil {
		t.Fatalf("failed to create writer: %v", err)
	}
	if err := w.Write(rec); err != nil {
		t.Fatalf("failed to write record: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return path
}
