// Package table implements a cursor-addressed table builder.
//
// A Builder is a value threaded through a chain of operations, the way a
// terminal cursor addresses a character grid: the caller moves the cursor
// with Home, CursorPos, NewLine and friends, and writes cells at the
// current position. The grid grows on demand as writes land beyond its
// current bounds. Header rows and columns are attached as metadata on the
// finished Table rather than as grid cells, so renderers can distinguish
// body from headers.
//
// Every operation returns a new Builder value. The first failure (a cursor
// move that would leave the 1-based coordinate space) is sticky: all later
// operations become no-ops and Err or Table surfaces the error. This keeps
// call sites chainable without error checks at every step:
//
//	b := table.New(rowNode, colNode).
//		ColHeader("A", "B").
//		AddCol(1, 2).
//		NewRow().
//		AddCol(3, 4)
//	tbl, err := b.Table()
package table
