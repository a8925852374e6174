package count

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vegasq/tallycat/frame"
)

// TargetKind identifies which cells a Target matches.
type TargetKind int

const (
	// KindMissing matches missing cells. It is the zero value.
	KindMissing TargetKind = iota
	// KindLiteral matches cells equal to a value.
	KindLiteral
	// KindInfinite matches positive or negative infinity.
	KindInfinite
	// KindNull matches absent cells. Frames have a single absent marker,
	// so this behaves like KindMissing.
	KindNull
)

// String returns the string representation of a TargetKind.
func (k TargetKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindMissing:
		return "missing"
	case KindInfinite:
		return "infinite"
	case KindNull:
		return "null"
	default:
		return fmt.Sprintf("TargetKind(%d)", int(k))
	}
}

// Target is the per-cell matching criterion of a count. The zero value
// is Missing.
type Target struct {
	kind  TargetKind
	value any
}

var (
	// Missing matches missing cells (NA).
	Missing = Target{kind: KindMissing}
	// Infinite matches infinite cells (Inf and -Inf).
	Infinite = Target{kind: KindInfinite}
	// Null matches absent cells (NULL).
	Null = Target{kind: KindNull}
)

// Literal returns a target matching cells equal to v. A nil or NaN value
// yields Missing and an infinite value yields Infinite.
func Literal(v any) Target {
	if frame.IsMissing(v) {
		return Missing
	}
	if frame.IsInf(v) {
		return Infinite
	}
	return Target{kind: KindLiteral, value: v}
}

// Kind returns the target kind.
func (t Target) Kind() TargetKind { return t.kind }

// Value returns the literal value; it is nil for non-literal targets.
func (t Target) Value() any { return t.value }

// Predicate returns the cell test for the target.
func (t Target) Predicate() func(any) bool {
	switch t.kind {
	case KindMissing, KindNull:
		return frame.IsMissing
	case KindInfinite:
		return frame.IsInf
	default:
		value := t.value
		return func(cell any) bool {
			return frame.Equal(cell, value)
		}
	}
}

// String renders the target in the syntax accepted by ParseTarget.
func (t Target) String() string {
	switch t.kind {
	case KindMissing:
		return "NA"
	case KindInfinite:
		return "Inf"
	case KindNull:
		return "NULL"
	}
	if s, ok := t.value.(string); ok {
		// Quote strings that would not parse back to themselves.
		if parsed, err := ParseTarget(s); err != nil || parsed.kind != KindLiteral || parsed.value != any(s) {
			return strconv.Quote(s)
		}
		return s
	}
	return frame.FormatValue(t.value)
}

// ParseTarget parses the textual form of a count target.
//
//	NA            Missing
//	Inf, -Inf     Infinite
//	NULL          Null
//	TRUE, FALSE   boolean literal (also lower case)
//	1, 2.5, -3    numeric literal (float64)
//	"NA"          string literal; quotes force a string
//	anything else string literal
func ParseTarget(s string) (Target, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Target{}, fmt.Errorf("empty count target")
	}

	if len(trimmed) >= 2 && trimmed[0] == '"' && trimmed[len(trimmed)-1] == '"' {
		unquoted, err := strconv.Unquote(trimmed)
		if err != nil {
			return Target{}, fmt.Errorf("invalid quoted count target %s: %w", trimmed, err)
		}
		return Target{kind: KindLiteral, value: unquoted}, nil
	}

	switch trimmed {
	case "NA":
		return Missing, nil
	case "NULL":
		return Null, nil
	case "Inf", "+Inf", "-Inf":
		return Infinite, nil
	case "TRUE", "true":
		return Literal(true), nil
	case "FALSE", "false":
		return Literal(false), nil
	}

	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Literal(f), nil
	}

	return Literal(trimmed), nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Target) UnmarshalText(text []byte) error {
	parsed, err := ParseTarget(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
