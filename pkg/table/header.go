package table

// axis selects which header slot an attachment targets.
type axis int

const (
	axisRow axis = iota
	axisCol
)

// RowHeader attaches a primary header level to the row axis. If the
// axis already carries a header, the new level is appended alongside
// the existing levels as an independent top-level header.
func (b Builder) RowHeader(values ...any) Builder {
	return b.attachHeader(axisRow, false, values)
}

// RowSubheader attaches a sub-header level to the row axis. The first
// attachment on an axis is always a primary header, since there is
// nothing yet to be subordinate to.
func (b Builder) RowSubheader(values ...any) Builder {
	return b.attachHeader(axisRow, true, values)
}

// ColHeader attaches a primary header level to the column axis.
func (b Builder) ColHeader(values ...any) Builder {
	return b.attachHeader(axisCol, false, values)
}

// ColSubheader attaches a sub-header level to the column axis.
func (b Builder) ColSubheader(values ...any) Builder {
	return b.attachHeader(axisCol, true, values)
}

// attachHeader flattens values, wraps each entry as a role-tagged
// header cell anchored to the builder's nodes, and appends the result
// as a new level on the axis. The body grid and cursor are untouched.
func (b Builder) attachHeader(ax axis, sub bool, values []any) Builder {
	if b.err != nil {
		return b
	}

	hdr := b.tbl.RowHeader
	if ax == axisCol {
		hdr = b.tbl.ColHeader
	}

	role := RoleHeader
	if sub && len(hdr) > 0 {
		role = RoleSubheader
	}

	opts, vals := splitOptions(values)
	level := make(Level, 0, len(vals))
	for _, v := range Flatten(vals...) {
		c := b.wrap(v, opts)
		c.Role = role
		level = append(level, c)
	}
	hdr = append(hdr, level)

	if ax == axisCol {
		b.tbl.ColHeader = hdr
	} else {
		b.tbl.RowHeader = hdr
	}
	return b
}
