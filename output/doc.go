// Package output provides formatters for writing frames in various output
// formats.
//
// This package defines the Formatter interface and provides implementations
// for JSON Lines, CSV and aligned text tables. All formatters write a
// *frame.Frame and keep its column order.
//
// # Supported Formats
//
//   - JSON Lines: One JSON object per line (suitable for streaming)
//   - CSV: Comma-separated values with header row
//   - Table: Bordered, right-aligned table for terminals
//
// # Basic Usage
//
// Selecting a formatter by name:
//
//	formatter, err := output.New("csv", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(f); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to Different Destinations
//
// Change output destination dynamically:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//
//	file, err := os.Create("counts.jsonl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	formatter.SetOutput(file)
//	if err := formatter.Format(f); err != nil {
//	    log.Fatal(err)
//	}
//
// # Missing Values
//
// Each format writes missing cells its own way:
//   - JSON Lines writes null, and "Inf"/"-Inf" for infinities
//   - CSV writes an empty field
//   - Table writes NA
package output
