//go:build ignore

// Generates the sample dataset in every input format tallycat reads.
//
//	go run testdata/generate.go
package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/parquet-go/parquet-go"
)

type Row struct {
	C1 *float64 `parquet:"c1,optional"`
	C2 *float64 `parquet:"c2,optional"`
	C3 *float64 `parquet:"c3,optional"`
	C4 *float64 `parquet:"c4,optional"`
}

func fp(v float64) *float64 { return &v }

var rows = []Row{
	{fp(1), fp(3), fp(1), fp(1)},
	{fp(2), fp(2), fp(1), fp(1)},
	{fp(3), fp(1), fp(2), fp(3)},
	{fp(1), fp(2), fp(1), fp(2)},
	{fp(3), nil, fp(3), fp(1)},
	{nil, fp(3), nil, fp(2)},
}

func (r Row) cells() []*float64 { return []*float64{r.C1, r.C2, r.C3, r.C4} }

func writeParquet(path string) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Row](file)
	if _, err := writer.Write(rows); err != nil {
		log.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}
}

func writeCSV(path string) {
	var b strings.Builder
	b.WriteString("c1,c2,c3,c4\n")
	for _, r := range rows {
		fields := make([]string, 0, 4)
		for _, v := range r.cells() {
			if v == nil {
				fields = append(fields, "NA")
				continue
			}
			fields = append(fields, strconv.FormatFloat(*v, 'g', -1, 64))
		}
		b.WriteString(strings.Join(fields, ",") + "\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		log.Fatal(err)
	}
}

func writeArrow(path string) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "c1", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "c2", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "c3", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "c4", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	}, nil)

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()
	for _, r := range rows {
		for c, v := range r.cells() {
			fb := b.Field(c).(*array.Float64Builder)
			if v == nil {
				fb.AppendNull()
			} else {
				fb.Append(*v)
			}
		}
	}
	rec := b.NewRecord()
	defer rec.Release()

	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	w, err := ipc.NewFileWriter(file, ipc.WithSchema(schema), ipc.WithAllocator(mem))
	if err != nil {
		log.Fatal(err)
	}
	if err := w.Write(rec); err != nil {
		log.Fatal(err)
	}
	if err := w.Close(); err != nil {
		log.Fatal(err)
	}
}

func main() {
	writeParquet("testdata/sample.parquet")
	writeCSV("testdata/sample.csv")
	writeArrow("testdata/sample.arrow")

	log.Println("Generated sample.parquet, sample.csv and sample.arrow with 6 rows")
}
