package frame

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Kind is the inferred scalar type of a column.
type Kind int

const (
	// KindUnknown is reported for columns with no non-missing cells.
	KindUnknown Kind = iota
	// KindBool holds booleans.
	KindBool
	// KindInt holds signed or unsigned integers.
	KindInt
	// KindFloat holds floats, or a mix of floats and integers.
	KindFloat
	// KindString holds strings.
	KindString
	// KindMixed holds cells of incompatible kinds.
	KindMixed
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindMixed:
		return "mixed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ColumnKind infers the kind of a column from its non-missing cells.
func ColumnKind(col []any) Kind {
	kind := KindUnknown
	for _, v := range col {
		if IsMissing(v) {
			continue
		}
		k := kindOf(v)
		switch {
		case kind == KindUnknown:
			kind = k
		case kind == k:
		case (kind == KindInt && k == KindFloat) || (kind == KindFloat && k == KindInt):
			kind = KindFloat
		default:
			return KindMixed
		}
	}
	return kind
}

func kindOf(v any) Kind {
	switch v.(type) {
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32, float64:
		return KindFloat
	case string:
		return KindString
	default:
		return KindMixed
	}
}

// IsMissing reports whether a cell is missing: nil or a float NaN.
func IsMissing(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(val)
	case float32:
		return math.IsNaN(float64(val))
	default:
		return false
	}
}

// IsInf reports whether a cell is a float holding positive or negative
// infinity. Cells of any other kind are never infinite.
func IsInf(v any) bool {
	switch val := v.(type) {
	case float64:
		return math.IsInf(val, 0)
	case float32:
		return math.IsInf(float64(val), 0)
	default:
		return false
	}
}

// Equal reports whether a cell equals a literal.
//
// Missing cells never match. Numbers and booleans compare exactly by
// value, with booleans as 0 and 1: integers are never rounded through
// float64, and a float equals an integer only when it holds that exact
// integral value. Any other pair is compared through its canonical string
// form, so the number 1 matches the string "1".
func Equal(cell, literal any) bool {
	if IsMissing(cell) || IsMissing(literal) {
		return false
	}

	if eq, ok := numericEqual(cell, literal); ok {
		return eq
	}

	return FormatValue(cell) == FormatValue(literal)
}

// numericEqual compares two numeric or boolean values exactly. ok is false
// when either value is not a number.
func numericEqual(a, b any) (eq, ok bool) {
	if fa, isFloat := a.(float64); isFloat {
		if fb, isFloat := b.(float64); isFloat {
			return fa == fb, true
		}
	}
	if ia, isInt := a.(int64); isInt {
		if ib, isInt := b.(int64); isInt {
			return ia == ib, true
		}
	}

	x, ok := exactNumber(a)
	if !ok {
		return false, false
	}
	y, ok := exactNumber(b)
	if !ok {
		return false, false
	}
	return x.Cmp(y) == 0, true
}

// exactNumber converts a numeric or boolean value to a big.Float without
// loss of precision.
func exactNumber(v any) (*big.Float, bool) {
	n := new(big.Float)
	switch val := v.(type) {
	case float64:
		n.SetFloat64(val)
	case float32:
		n.SetFloat64(float64(val))
	case int:
		n.SetInt64(int64(val))
	case int8:
		n.SetInt64(int64(val))
	case int16:
		n.SetInt64(int64(val))
	case int32:
		n.SetInt64(int64(val))
	case int64:
		n.SetInt64(val)
	case uint:
		n.SetUint64(uint64(val))
	case uint8:
		n.SetUint64(uint64(val))
	case uint16:
		n.SetUint64(uint64(val))
	case uint32:
		n.SetUint64(uint64(val))
	case uint64:
		n.SetUint64(val)
	case bool:
		if val {
			n.SetInt64(1)
		}
	default:
		return nil, false
	}
	return n, true
}

// ToFloat64 converts a numeric or boolean cell to float64.
func ToFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// FormatValue returns the canonical string form of a cell. Missing cells
// format as "NA", booleans as "TRUE"/"FALSE" and infinities as
// "Inf"/"-Inf".
func FormatValue(v any) string {
	if IsMissing(v) {
		return "NA"
	}

	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32:
		return formatFloat(float64(val), 32)
	case float64:
		return formatFloat(val, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}
