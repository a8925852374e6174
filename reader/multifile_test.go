package reader

import (
	"path/filepath"
	"strings"
	"testing"
)

type idRow struct {
	ID   int64  `parquet:"id"`
	Name string `parquet:"name"`
}

func TestReadMultipleFiles_SingleFile(t *testing.T) {
	path := writeParquetFile(t, t.TempDir(), "test.parquet", []idRow{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	})

	result, err := ReadMultipleFiles(path)
	if err != nil {
		t.Fatalf("ReadMultipleFiles() error = %v", err)
	}

	if result.NumRows() != 2 {
		t.Errorf("ReadMultipleFiles() returned %d rows, want 2", result.NumRows())
	}

	// For single file reads (no glob), _file should NOT be added
	if _, hasFile := result.Index(FileColumn); hasFile {
		t.Errorf("ReadMultipleFiles() single file should not add %s column", FileColumn)
	}
}

func TestReadMultipleFiles_GlobPattern(t *testing.T) {
	tmpDir := t.TempDir()

	files := []struct {
		name string
		rows []idRow
	}{
		{"file1.parquet", []idRow{{ID: 1, Name: "Alice"}}},
		{"file2.parquet", []idRow{{ID: 2, Name: "Bob"}}},
		{"file3.parquet", []idRow{{ID: 3, Name: "Charlie"}}},
	}
	for _, file := range files {
		writeParquetFile(t, tmpDir, file.name, file.rows)
	}

	result, err := ReadMultipleFiles(filepath.Join(tmpDir, "*.parquet"))
	if err != nil {
		t.Fatalf("ReadMultipleFiles() error = %v", err)
	}

	if result.NumRows() != 3 {
		t.Fatalf("ReadMultipleFiles() returned %d rows, want 3", result.NumRows())
	}

	fileCol, err := result.Column(FileColumn)
	if err != nil {
		t.Fatalf("missing %s column: %v", FileColumn, err)
	}
	names, _ := result.Column("name")
	for i, cell := range fileCol {
		path, ok := cell.(string)
		if !ok || !strings.HasSuffix(path, files[i].name) {
			t.Errorf("row %d %s = %v, want path ending in %s", i, FileColumn, cell, files[i].name)
		}
		if names[i] != files[i].rows[0].Name {
			t.Errorf("row %d name = %v, want %s", i, names[i], files[i].rows[0].Name)
		}
	}
}

func TestReadMultipleFiles_MixedFormats(t *testing.T) {
	tmpDir := t.TempDir()
	writeTextFile(t, tmpDir, "a.csv", "id,score\n1,10\n")
	writeTextFile(t, tmpDir, "b.csv", "id,label\n2,x\n")

	result, err := ReadMultipleFiles(filepath.Join(tmpDir, "*.csv"))
	if err != nil {
		t.Fatalf("ReadMultipleFiles() error = %v", err)
	}

	want := []string{"id", "score", FileColumn, "label"}
	got := result.Names()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	if v := result.Value(1, 1); v != nil {
		t.Errorf("score for second file = %v, want missing", v)
	}
	if v := result.Value(0, 3); v != nil {
		t.Errorf("label for first file = %v, want missing", v)
	}
}

func TestReadMultipleFiles_ReplacesFileColumn(t *testing.T) {
	tmpDir := t.TempDir()
	writeTextFile(t, tmpDir, "a.csv", "id,_file\n1,stale\n")

	result, err := ReadMultipleFiles(filepath.Join(tmpDir, "*.csv"))
	if err != nil {
		t.Fatalf("ReadMultipleFiles() error = %v", err)
	}
	col, _ := result.Column(FileColumn)
	if path, _ := col[0].(string); !strings.HasSuffix(path, "a.csv") {
		t.Errorf("%s = %v, want source path", FileColumn, col[0])
	}
}

func TestReadMultipleFiles_NoMatch(t *testing.T) {
	_, err := ReadMultipleFiles(filepath.Join(t.TempDir(), "*.parquet"))
	if err == nil {
		t.Fatal("ReadMultipleFiles() expected error for no matches")
	}
	if !strings.Contains(err.Error(), "no files match pattern") {
		t.Errorf("ReadMultipleFiles() error = %v, want 'no files match pattern'", err)
	}
}

func TestReadMultipleFiles_SpecificPattern(t *testing.T) {
	tmpDir := t.TempDir()
	writeParquetFile(t, tmpDir, "data_2024_01.parquet", []idRow{{ID: 1, Name: "Alice"}})
	writeParquetFile(t, tmpDir, "data_2024_02.parquet", []idRow{{ID: 2, Name: "Bob"}})
	writeParquetFile(t, tmpDir, "other.parquet", []idRow{{ID: 3, Name: "Charlie"}})

	result, err := ReadMultipleFiles(filepath.Join(tmpDir, "data_*.parquet"))
	if err != nil {
		t.Fatalf("ReadMultipleFiles() error = %v", err)
	}

	if result.NumRows() != 2 {
		t.Errorf("ReadMultipleFiles() returned %d rows, want 2", result.NumRows())
	}
}
