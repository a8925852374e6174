package frame

import (
	"fmt"
	"strconv"
	"strings"
)

type selectionKind int

const (
	selectAll selectionKind = iota
	selectNames
	selectPositions
	selectRange
	selectExcept
)

// Selection describes a subset of columns. The zero value selects every
// column.
type Selection struct {
	kind      selectionKind
	names     []string
	positions []int
}

// All selects every column in frame order.
func All() Selection {
	return Selection{kind: selectAll}
}

// Names selects the named columns in the given order. An empty list
// selects every column.
func Names(names ...string) Selection {
	if len(names) == 0 {
		return All()
	}
	return Selection{kind: selectNames, names: append([]string(nil), names...)}
}

// Positions selects columns by zero-based position in the given order. An
// empty list selects every column.
func Positions(positions ...int) Selection {
	if len(positions) == 0 {
		return All()
	}
	return Selection{kind: selectPositions, positions: append([]int(nil), positions...)}
}

// Range selects the contiguous span of columns between from and to,
// inclusive, in frame order. The bounds may be given in either order.
func Range(from, to string) Selection {
	return Selection{kind: selectRange, names: []string{from, to}}
}

// Except selects every column except the named ones.
func Except(names ...string) Selection {
	return Selection{kind: selectExcept, names: append([]string(nil), names...)}
}

// IsAll reports whether the selection picks every column without
// reordering.
func (s Selection) IsAll() bool {
	return s.kind == selectAll
}

// ParseSelection parses the textual selection syntax:
//
//	""  or "*"    every column
//	"a:c"         columns a through c
//	"-a,-b"       every column except a and b
//	"#0,#2"       columns at positions 0 and 2
//	"a,b"         columns a and b
//
// Whitespace around items is ignored.
func ParseSelection(s string) (Selection, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return All(), nil
	}

	if from, to, ok := strings.Cut(s, ":"); ok && !strings.Contains(s, ",") {
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if from == "" || to == "" {
			return Selection{}, fmt.Errorf("invalid column range %q", s)
		}
		return Range(from, to), nil
	}

	items := strings.Split(s, ",")
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
		if items[i] == "" {
			return Selection{}, fmt.Errorf("empty item in selection %q", s)
		}
	}

	switch {
	case strings.HasPrefix(items[0], "#"):
		positions := make([]int, len(items))
		for i, item := range items {
			if !strings.HasPrefix(item, "#") {
				return Selection{}, fmt.Errorf("cannot mix positions and names in selection %q", s)
			}
			pos, err := strconv.Atoi(item[1:])
			if err != nil {
				return Selection{}, fmt.Errorf("invalid column position %q: %w", item, err)
			}
			positions[i] = pos
		}
		return Positions(positions...), nil
	case strings.HasPrefix(items[0], "-"):
		names := make([]string, len(items))
		for i, item := range items {
			if !strings.HasPrefix(item, "-") || len(item) == 1 {
				return Selection{}, fmt.Errorf("cannot mix exclusions and names in selection %q", s)
			}
			names[i] = item[1:]
		}
		return Except(names...), nil
	default:
		return Names(items...), nil
	}
}

// String renders the selection in the syntax accepted by ParseSelection.
func (s Selection) String() string {
	switch s.kind {
	case selectNames:
		return strings.Join(s.names, ",")
	case selectPositions:
		items := make([]string, len(s.positions))
		for i, pos := range s.positions {
			items[i] = "#" + strconv.Itoa(pos)
		}
		return strings.Join(items, ",")
	case selectRange:
		return s.names[0] + ":" + s.names[1]
	case selectExcept:
		items := make([]string, len(s.names))
		for i, name := range s.names {
			items[i] = "-" + name
		}
		return strings.Join(items, ",")
	default:
		return "*"
	}
}

// Resolve returns the positions of the selected columns in f.
//
// Unknown names and out-of-range positions fail with ErrUnknownColumn.
// A column picked more than once is kept at its first occurrence.
func (s Selection) Resolve(f *Frame) ([]int, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil frame", ErrInvalidInput)
	}

	switch s.kind {
	case selectAll:
		return allIndices(f.NumCols()), nil
	case selectNames:
		indices := make([]int, 0, len(s.names))
		for _, name := range s.names {
			i, ok := f.Index(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
			}
			indices = append(indices, i)
		}
		return dedupe(indices), nil
	case selectPositions:
		for _, pos := range s.positions {
			if pos < 0 || pos >= f.NumCols() {
				return nil, fmt.Errorf("%w: position %d out of range [0, %d)", ErrUnknownColumn, pos, f.NumCols())
			}
		}
		return dedupe(append([]int(nil), s.positions...)), nil
	case selectRange:
		from, ok := f.Index(s.names[0])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, s.names[0])
		}
		to, ok := f.Index(s.names[1])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, s.names[1])
		}
		if from > to {
			from, to = to, from
		}
		indices := make([]int, 0, to-from+1)
		for i := from; i <= to; i++ {
			indices = append(indices, i)
		}
		return indices, nil
	case selectExcept:
		excluded := make(map[int]bool, len(s.names))
		for _, name := range s.names {
			i, ok := f.Index(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
			}
			excluded[i] = true
		}
		indices := make([]int, 0, f.NumCols()-len(excluded))
		for i := 0; i < f.NumCols(); i++ {
			if !excluded[i] {
				indices = append(indices, i)
			}
		}
		return indices, nil
	default:
		return nil, fmt.Errorf("unsupported selection kind %d", s.kind)
	}
}

func allIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}

func dedupe(indices []int) []int {
	seen := make(map[int]bool, len(indices))
	out := indices[:0]
	for _, i := range indices {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	return out
}
