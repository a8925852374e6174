// Package reader loads tabular data files into frames.
//
// Supported formats are Apache Parquet (via parquet-go), Arrow IPC in file
// and stream form (via arrow-go), CSV and JSON Lines. The format is chosen
// from the file extension. Every reader keeps the column order of the
// source and turns nulls into missing cells.
//
// # Basic Usage
//
// Reading a single file:
//
//	f, err := reader.ReadFile("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(f.NumRows(), f.Names())
//
// Using the parquet reader directly:
//
//	r, err := reader.NewReader("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	f, err := r.ReadFrame()
//
// # Multi-file Operations
//
// Reading multiple files using glob patterns:
//
//	f, err := reader.ReadMultipleFiles("data/*.csv")
//
// Rows read through a glob are bound together and tagged with a "_file"
// column holding the source path. A plain path reads one file and adds no
// column.
//
// # Schema Information
//
// ExtractSchemaInfo describes the columns of a file: the kind inferred from
// the loaded cells and the type declared by the source format.
//
//	infos, err := reader.ExtractSchemaInfo("data.parquet")
//	for _, info := range infos {
//	    fmt.Printf("%s: %s (%s)\n", info.Name, info.Type, info.SourceType)
//	}
//
// # Error Handling
//
// Open failures wrap the underlying *fs.PathError, so a missing file can be
// detected with errors.Is(err, fs.ErrNotExist).
package reader
