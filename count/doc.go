// Package count counts matching cells per row or per column of a frame.
//
// RowCount yields one count per row and ColCount one count per selected
// column. The cells tested are chosen by Options.Select and the match is
// decided by Options.Target:
//
//	count.Literal(1)   cells equal to 1
//	count.Missing      missing cells (NA)
//	count.Infinite     Inf and -Inf
//	count.Null         absent cells, same as Missing for frames
//
// Missing cells never match a literal. By default the counts are appended
// to the original data: a new column for RowCount, a new row for ColCount.
//
// # Example
//
//	opts := count.DefaultOptions()
//	opts.Select = frame.Names("c1", "c2")
//	opts.Target = count.Literal(1)
//	out, err := count.RowCount(f, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both operations are pure: f is never modified and each call returns a
// fresh frame. Setting Options.Workers above 1 splits the reduction into
// partitions evaluated concurrently with identical results.
package count
