package count

import "github.com/vegasq/tallycat/frame"

// DefaultName is the name of the row-count column when Options.Name is
// empty.
const DefaultName = "rowcount"

// Options configures RowCount and ColCount.
type Options struct {
	// Select restricts the columns that feed the count. The zero value
	// selects every column.
	Select frame.Selection

	// Target is the matching criterion applied to every selected cell.
	Target Target

	// Name is the name of the row-count column. Ignored by ColCount.
	Name string

	// Append binds the counts to the original data instead of returning
	// them alone.
	Append bool

	// Workers is the number of partitions reduced concurrently. Values
	// below 2 reduce sequentially.
	Workers int
}

// DefaultOptions returns options counting missing cells across all
// columns and appending the result to the original data.
func DefaultOptions() Options {
	return Options{
		Select:  frame.All(),
		Target:  Missing,
		Name:    DefaultName,
		Append:  true,
		Workers: 1,
	}
}

func (o Options) name() string {
	if o.Name == "" {
		return DefaultName
	}
	return o.Name
}
