package reader

import (
	"fmt"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/tallycat/count"
)

// SchemaInfo describes a single column of a data file.
type SchemaInfo struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	SourceType string `json:"source_type"`
	Rows       int    `json:"rows"`
	Missing    int    `json:"missing"`
}

// ExtractSchemaInfo loads a data file and describes its columns.
//
// Type is the kind inferred from the loaded cells (int, float, string,
// bool, mixed or unknown). SourceType is the type declared by the file
// format: the parquet physical/logical type, the arrow data type, or
// "text"/"json" for CSV and JSON Lines, which carry no declared types.
// Missing is the number of null or NaN cells in the column.
func ExtractSchemaInfo(path string) ([]SchemaInfo, error) {
	tbl, err := readTable(path)
	if err != nil {
		return nil, err
	}

	f := tbl.frame
	missing, err := count.ColCount(f, count.Options{Target: count.Missing})
	if err != nil {
		return nil, err
	}

	infos := make([]SchemaInfo, f.NumCols())
	for i, name := range f.Names() {
		n, _ := missing.Value(0, i).(int)
		infos[i] = SchemaInfo{
			Name:       name,
			Type:       f.Kind(i).String(),
			SourceType: tbl.sourceTypes[i],
			Rows:       f.NumRows(),
			Missing:    n,
		}
	}
	return infos, nil
}

// parquetLeaf is a leaf column of a parquet schema.
type parquetLeaf struct {
	name       string
	sourceType string
}

// parquetLeaves returns the leaf columns of a schema in declaration order.
// Nested field names use dot notation (e.g. "address.street").
func parquetLeaves(schema *parquet.Schema) []parquetLeaf {
	var leaves []parquetLeaf
	for _, field := range schema.Fields() {
		leaves = append(leaves, collectLeaves(field, "", false)...)
	}
	return leaves
}

// collectLeaves recursively walks a field, tracking whether any parent is
// repeated so that list columns are reported as such.
func collectLeaves(field parquet.Field, prefix string, parentRepeated bool) []parquetLeaf {
	name := field.Name()
	if prefix != "" {
		name = prefix + "." + name
	}

	repeated := parentRepeated || field.Repeated()

	if children := field.Fields(); len(children) > 0 {
		// Groups contribute only their leaves. Lists, maps and repeated
		// groups are read as one cell, so they stay a single column.
		switch lt := logicalType(field); {
		case lt == "LIST" || lt == "MAP":
			return []parquetLeaf{{name: name, sourceType: lt}}
		case repeated:
			return []parquetLeaf{{name: name, sourceType: "LIST<GROUP>"}}
		}
		var leaves []parquetLeaf
		for _, child := range children {
			leaves = append(leaves, collectLeaves(child, name, repeated)...)
		}
		return leaves
	}

	sourceType := physicalType(field)
	if logical := logicalType(field); logical != "" {
		sourceType = fmt.Sprintf("%s (%s)", sourceType, logical)
	}
	if repeated {
		sourceType = "LIST<" + sourceType + ">"
	}
	return []parquetLeaf{{name: name, sourceType: sourceType}}
}

// physicalType returns the physical type name of a parquet field.
func physicalType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}

	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// logicalType returns the logical type name of a parquet field, or "" if
// it has none.
func logicalType(field parquet.Field) string {
	if field.Type() == nil {
		return ""
	}

	lt := field.Type().LogicalType()
	if lt == nil {
		return ""
	}
	return lt.String()
}
