package table

import "fmt"

// Role tags a cell's function within the finished table.
type Role int

// Role values. RoleSubheader satisfies IsHeader: consumers written
// against "header" must accept sub-header cells as well.
const (
	RolePlain Role = iota
	RoleHeader
	RoleSubheader
)

// IsHeader reports whether the role is a header role of any level.
func (r Role) IsHeader() bool {
	return r == RoleHeader || r == RoleSubheader
}

func (r Role) String() string {
	switch r {
	case RolePlain:
		return "plain"
	case RoleHeader:
		return "header"
	case RoleSubheader:
		return "subheader"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// N is a sample count. Slices of N flatten element-wise and keep the
// count tag, so renderers can format counts as integers regardless of
// how the surrounding statistics are formatted.
type N int

// NodeData is the optional payload a reducer attaches to an AST node
// before label derivation. Empty strings mean "not set".
type NodeData struct {
	Label string
	Units string
}

// Noder is the read-only contract the builder requires of an AST node.
// Nodes anchor tables and cells for traceability; the builder never
// mutates them.
type Noder interface {
	Name() string
	// NodeData returns the attached data payload, or nil when the node
	// carries none.
	NodeData() *NodeData
}

// Cell is one entry in a table grid or header level: a value plus
// optional units, a role tag, and provenance back to the AST nodes the
// enclosing table was anchored to. Subrow and Subcol are optional
// fine-grained indices (0 means unset) used when one AST node produces
// several cells, e.g. one row per category of a variable.
type Cell struct {
	Value  any
	Units  string
	Role   Role
	Row    Noder
	Col    Noder
	Subrow int
	Subcol int
}

// CellOption configures a cell as it is written into the grid.
type CellOption func(*Cell)

// Subrow tags the written cell with a fine-grained row index.
func Subrow(i int) CellOption {
	return func(c *Cell) { c.Subrow = i }
}

// Subcol tags the written cell with a fine-grained column index.
func Subcol(i int) CellOption {
	return func(c *Cell) { c.Subcol = i }
}

// Header is the header metadata for one axis: an ordered sequence of
// levels, each level an ordered sequence of role-tagged cells. A nil
// Header means no header was attached.
type Header []Level

// Level is one ordered sequence of header cells.
type Level []Cell

// Table is the finished artifact: a grid of cells plus header metadata
// for each axis. Renderers consume Table; only the Builder writes it.
type Table struct {
	Rows      [][]Cell
	RowHeader Header
	ColHeader Header
}

// NRows returns the number of rows in the body grid.
func (t *Table) NRows() int { return len(t.Rows) }

// NCols returns the width of the widest body row. Rows are ragged while
// under construction; renderers pad to this width.
func (t *Table) NCols() int {
	w := 0
	for _, r := range t.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}
