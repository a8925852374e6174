package reader

import (
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/vegasq/tallycat/frame"
)

// readArrowFile reads an Arrow IPC file (random-access format).
func readArrowFile(path string) (*table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	r, err := ipc.NewFileReader(file, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return nil, fmt.Errorf("failed to open arrow file: %w", err)
	}
	defer func() { _ = r.Close() }()

	b := newArrowBuilder(r.Schema())
	for i := 0; i < r.NumRecords(); i++ {
		rec, err := r.Record(i)
		if err != nil {
			return nil, fmt.Errorf("failed to read record batch %d: %w", i, err)
		}
		if err := b.append(rec); err != nil {
			return nil, err
		}
	}
	return b.table()
}

// readArrowStream reads an Arrow IPC stream.
func readArrowStream(path string) (*table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	r, err := ipc.NewReader(file, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return nil, fmt.Errorf("failed to open arrow stream: %w", err)
	}
	defer r.Release()

	b := newArrowBuilder(r.Schema())
	for r.Next() {
		if err := b.append(r.Record()); err != nil {
			return nil, err
		}
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("failed to read arrow stream: %w", err)
	}
	return b.table()
}

// arrowBuilder accumulates record batches column by column.
type arrowBuilder struct {
	schema *arrow.Schema
	cols   [][]any
}

func newArrowBuilder(schema *arrow.Schema) *arrowBuilder {
	return &arrowBuilder{
		schema: schema,
		cols:   make([][]any, schema.NumFields()),
	}
}

func (b *arrowBuilder) append(rec arrow.Record) error {
	if int(rec.NumCols()) != len(b.cols) {
		return fmt.Errorf("record batch has %d columns, schema has %d", rec.NumCols(), len(b.cols))
	}
	for c := range b.cols {
		arr := rec.Column(c)
		for i := 0; i < arr.Len(); i++ {
			b.cols[c] = append(b.cols[c], arrowValue(arr, i))
		}
	}
	return nil
}

func (b *arrowBuilder) table() (*table, error) {
	fields := b.schema.Fields()
	names := make([]string, len(fields))
	types := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.Name
		types[i] = field.Type.String()
	}

	f, err := frame.New(names, b.cols)
	if err != nil {
		return nil, fmt.Errorf("failed to build frame: %w", err)
	}
	return &table{frame: f, sourceTypes: types}, nil
}

// arrowValue converts element i of an arrow array into a frame cell. Nulls
// become missing cells; types without a direct Go scalar are rendered with
// the array's own string form.
func arrowValue(arr arrow.Array, i int) any {
	if arr.IsNull(i) {
		return nil
	}

	switch a := arr.(type) {
	case *array.Boolean:
		return a.Value(i)
	case *array.Int8:
		return a.Value(i)
	case *array.Int16:
		return a.Value(i)
	case *array.Int32:
		return a.Value(i)
	case *array.Int64:
		return a.Value(i)
	case *array.Uint8:
		return a.Value(i)
	case *array.Uint16:
		return a.Value(i)
	case *array.Uint32:
		return a.Value(i)
	case *array.Uint64:
		return a.Value(i)
	case *array.Float32:
		return a.Value(i)
	case *array.Float64:
		return a.Value(i)
	case *array.String:
		return a.Value(i)
	case *array.LargeString:
		return a.Value(i)
	case *array.Binary:
		return string(a.Value(i))
	default:
		return arr.ValueStr(i)
	}
}
