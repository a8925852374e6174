package reader

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractSchemaInfo_PrimitiveTypes(t *testing.T) {
	type Row struct {
		ID       int64   `parquet:"id"`
		Name     string  `parquet:"name"`
		Age      int32   `parquet:"age"`
		Score    float64 `parquet:"score"`
		Active   bool    `parquet:"active"`
		Optional *string `parquet:"optional,optional"`
	}

	optVal := "test"
	path := writeParquetFile(t, t.TempDir(), "test.parquet", []Row{
		{ID: 1, Name: "Alice", Age: 30, Score: 95.5, Active: true, Optional: &optVal},
		{ID: 2, Name: "Bob", Age: 25, Score: 82.0, Active: false},
	})

	infos, err := ExtractSchemaInfo(path)
	if err != nil {
		t.Fatalf("ExtractSchemaInfo() error = %v", err)
	}

	if len(infos) != 6 {
		t.Fatalf("ExtractSchemaInfo() returned %d fields, want 6", len(infos))
	}

	fieldMap := make(map[string]SchemaInfo)
	for _, info := range infos {
		fieldMap[info.Name] = info
		if info.Rows != 2 {
			t.Errorf("%s rows = %d, want 2", info.Name, info.Rows)
		}
	}

	if got := fieldMap["optional"].Missing; got != 1 {
		t.Errorf("optional missing = %d, want 1", got)
	}
	if got := fieldMap["id"].Missing; got != 0 {
		t.Errorf("id missing = %d, want 0", got)
	}

	tests := []struct {
		name       string
		kind       string
		sourceType string
	}{
		{"id", "int", "INT64"},
		{"name", "string", "BYTE_ARRAY"},
		{"age", "int", "INT32"},
		{"score", "float", "DOUBLE"},
		{"active", "bool", "BOOLEAN"},
		{"optional", "string", "BYTE_ARRAY"},
	}

	for _, tt := range tests {
		info, ok := fieldMap[tt.name]
		if !ok {
			t.Errorf("%s field not found in schema", tt.name)
			continue
		}
		if info.Type != tt.kind {
			t.Errorf("%s type = %s, want %s", tt.name, info.Type, tt.kind)
		}
		if !strings.HasPrefix(info.SourceType, tt.sourceType) {
			t.Errorf("%s source type = %s, want prefix %s", tt.name, info.SourceType, tt.sourceType)
		}
	}
}

func TestExtractSchemaInfo_NestedTypes(t *testing.T) {
	type Address struct {
		Street string `parquet:"street"`
		City   string `parquet:"city"`
	}
	type Row struct {
		ID      int64   `parquet:"id"`
		Address Address `parquet:"address"`
	}

	path := writeParquetFile(t, t.TempDir(), "nested.parquet", []Row{
		{ID: 1, Address: Address{Street: "Main", City: "Springfield"}},
	})

	infos, err := ExtractSchemaInfo(path)
	if err != nil {
		t.Fatalf("ExtractSchemaInfo() error = %v", err)
	}

	names := make(map[string]bool)
	for _, info := range infos {
		names[info.Name] = true
	}
	for _, want := range []string{"id", "address.street", "address.city"} {
		if !names[want] {
			t.Errorf("field %s not found in %v", want, infos)
		}
	}

	f, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	col, err := f.Column("address.city")
	if err != nil {
		t.Fatalf("Column() error = %v", err)
	}
	if col[0] != "Springfield" {
		t.Errorf("address.city = %v, want Springfield", col[0])
	}
}

func TestExtractSchemaInfo_OtherFormats(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		path       string
		sourceType string
		kind       string
	}{
		{writeArrowFile(t, dir, "sample.arrow", false), "float64", "float"},
		{writeTextFile(t, dir, "sample.csv", sampleCSV), "text", "int"},
		{writeTextFile(t, dir, "sample.jsonl", sampleJSONL), "json", "int"},
	}

	for _, tt := range tests {
		t.Run(filepath.Ext(tt.path), func(t *testing.T) {
			infos, err := ExtractSchemaInfo(tt.path)
			if err != nil {
				t.Fatalf("ExtractSchemaInfo() error = %v", err)
			}
			if len(infos) != 4 {
				t.Fatalf("ExtractSchemaInfo() returned %d fields, want 4", len(infos))
			}
			if infos[0].SourceType != tt.sourceType {
				t.Errorf("source type = %s, want %s", infos[0].SourceType, tt.sourceType)
			}
			if infos[0].Type != tt.kind {
				t.Errorf("type = %s, want %s", infos[0].Type, tt.kind)
			}
			for i, want := range []int{1, 1, 1, 0} {
				if infos[i].Missing != want {
					t.Errorf("%s missing = %d, want %d", infos[i].Name, infos[i].Missing, want)
				}
			}
		})
	}
}

func TestExtractSchemaInfo_FileNotFound(t *testing.T) {
	_, err := ExtractSchemaInfo(filepath.Join(t.TempDir(), "nonexistent.parquet"))
	if err == nil {
		t.Error("ExtractSchemaInfo() expected error for nonexistent file")
	}
}

func TestExtractSchemaInfo_EmptyParquetFile(t *testing.T) {
	path := writeParquetFile(t, t.TempDir(), "empty.parquet", []idRow{})

	infos, err := ExtractSchemaInfo(path)
	if err != nil {
		t.Fatalf("ExtractSchemaInfo() error = %v", err)
	}
	if len(infos) != 2 {
		t.Errorf("ExtractSchemaInfo() returned %d fields, want 2", len(infos))
	}
	for _, info := range infos {
		if info.Type != "unknown" || info.Rows != 0 {
			t.Errorf("%s = %+v, want unknown type and 0 rows", info.Name, info)
		}
	}
}
