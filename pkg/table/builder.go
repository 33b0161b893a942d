package table

// Builder is a cursor-addressed writer over a growing grid. The zero
// value is not usable; construct with New. Builder values are cheap to
// copy: the grid is shared through an internal pointer, so a Builder
// chain must have a single linear caller (no concurrent writers).
type Builder struct {
	tbl  *Table
	row  Noder
	col  Noder
	nrow int
	ncol int
	err  error
}

// New returns a Builder anchored to the given row- and column-axis
// nodes, holding a 1x1 grid with a single blank cell and the cursor at
// (1, 1). The anchors are stored on every cell written for traceability.
func New(row, col Noder) Builder {
	return Builder{
		tbl: &Table{
			Rows: [][]Cell{{{Row: row, Col: col}}},
		},
		row:  row,
		col:  col,
		nrow: 1,
		ncol: 1,
	}
}

// Err returns the first error recorded in the chain, if any.
func (b Builder) Err() error { return b.err }

// Cursor returns the current 1-based cursor position.
func (b Builder) Cursor() (row, col int) { return b.nrow, b.ncol }

// Table returns the finished table, or the first error recorded in the
// chain.
func (b Builder) Table() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tbl, nil
}

func (b Builder) fail(op string, row, col int) Builder {
	b.err = &BoundsError{Op: op, Row: row, Col: col}
	return b
}

// Home resets the cursor to (1, 1).
func (b Builder) Home() Builder {
	if b.err != nil {
		return b
	}
	b.nrow, b.ncol = 1, 1
	return b
}

// CursorUp moves the cursor up n rows.
func (b Builder) CursorUp(n int) Builder {
	if b.err != nil {
		return b
	}
	if b.nrow-n <= 0 {
		return b.fail("cursor up", b.nrow-n, b.ncol)
	}
	b.nrow -= n
	return b
}

// CursorDown moves the cursor down n rows.
func (b Builder) CursorDown(n int) Builder {
	if b.err != nil {
		return b
	}
	if b.nrow+n <= 0 {
		return b.fail("cursor down", b.nrow+n, b.ncol)
	}
	b.nrow += n
	return b
}

// CursorLeft moves the cursor left n columns.
func (b Builder) CursorLeft(n int) Builder {
	if b.err != nil {
		return b
	}
	if b.ncol-n <= 0 {
		return b.fail("cursor left", b.nrow, b.ncol-n)
	}
	b.ncol -= n
	return b
}

// CursorRight moves the cursor right n columns.
func (b Builder) CursorRight(n int) Builder {
	if b.err != nil {
		return b
	}
	if b.ncol+n <= 0 {
		return b.fail("cursor right", b.nrow, b.ncol+n)
	}
	b.ncol += n
	return b
}

// CursorPos sets the cursor to the absolute 1-based position (row, col).
func (b Builder) CursorPos(row, col int) Builder {
	if b.err != nil {
		return b
	}
	if row <= 0 || col <= 0 {
		return b.fail("cursor position", row, col)
	}
	b.nrow, b.ncol = row, col
	return b
}

// CarriageReturn moves the cursor to column 1 of the current row.
func (b Builder) CarriageReturn() Builder {
	if b.err != nil {
		return b
	}
	b.ncol = 1
	return b
}

// LineFeed moves the cursor down n rows, leaving the column unchanged.
func (b Builder) LineFeed(n int) Builder {
	return b.CursorDown(n)
}

// NewLine moves the cursor to column 1 of the next row.
func (b Builder) NewLine() Builder {
	return b.CarriageReturn().LineFeed(1)
}

// NewRow places the cursor at column 1 of the first unused row.
func (b Builder) NewRow() Builder {
	if b.err != nil {
		return b
	}
	return b.Home().CursorDown(len(b.tbl.Rows))
}

// NewCol places the cursor in row 1, one column past the width of the
// first row.
func (b Builder) NewCol() Builder {
	if b.err != nil {
		return b
	}
	return b.Home().CursorRight(len(b.tbl.Rows[0]))
}

// WriteCell writes x at the current cursor position, overwriting any
// existing cell there. The grid grows on demand: rows are appended
// until the cursor row exists, and the target row is padded with blank
// cells until the cursor column exists. If x is already a Cell its
// units and role are kept; otherwise it is wrapped with the builder's
// anchor nodes.
func (b Builder) WriteCell(x any, opts ...CellOption) Builder {
	if b.err != nil {
		return b
	}
	for len(b.tbl.Rows) < b.nrow {
		b.tbl.Rows = append(b.tbl.Rows, nil)
	}
	row := b.tbl.Rows[b.nrow-1]
	for len(row) < b.ncol {
		row = append(row, Cell{Row: b.row, Col: b.col})
	}
	row[b.ncol-1] = b.wrap(x, opts)
	b.tbl.Rows[b.nrow-1] = row
	return b
}

// wrap turns a raw value into a positioned cell. Cells pass through
// with their value, units and role intact; only missing provenance is
// filled in.
func (b Builder) wrap(x any, opts []CellOption) Cell {
	c, ok := x.(Cell)
	if !ok {
		c = Cell{Value: x}
	}
	if c.Row == nil {
		c.Row = b.row
	}
	if c.Col == nil {
		c.Col = b.col
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// AddCol flattens values and writes each entry at the cursor, moving
// one column right after every write. CellOptions passed among the
// values apply to every written cell.
func (b Builder) AddCol(values ...any) Builder {
	opts, vals := splitOptions(values)
	for _, v := range Flatten(vals...) {
		b = b.WriteCell(v, opts...).CursorRight(1)
		if b.err != nil {
			return b
		}
	}
	return b
}

// AddRow flattens values and writes each entry at the cursor, moving
// one row down after every write. CellOptions passed among the values
// apply to every written cell.
func (b Builder) AddRow(values ...any) Builder {
	opts, vals := splitOptions(values)
	for _, v := range Flatten(vals...) {
		b = b.WriteCell(v, opts...).CursorDown(1)
		if b.err != nil {
			return b
		}
	}
	return b
}

// splitOptions separates CellOptions from cell values in a mixed
// variadic argument list.
func splitOptions(args []any) (opts []CellOption, vals []any) {
	for _, a := range args {
		if opt, ok := a.(CellOption); ok {
			opts = append(opts, opt)
			continue
		}
		vals = append(vals, a)
	}
	return opts, vals
}
