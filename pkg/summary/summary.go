// Package summary compiles a parsed table formula against a dataset
// into a finished table. The column side of the formula partitions the
// rows of the dataset into groups; the row side emits one block of
// statistics per term. The compiler drives the cursor-addressed table
// builder left to right, row block by row block, the same way it walks
// the formula AST.
package summary

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tabwright/tabwright/pkg/dataset"
	"github.com/tabwright/tabwright/pkg/formula"
	"github.com/tabwright/tabwright/pkg/table"
)

// Options control statistic formatting.
type Options struct {
	// Digits is the number of decimal digits for means and standard
	// deviations.
	Digits int
	// Missing is the marker written for cells with no computable value.
	Missing string
}

// DefaultOptions are the formatting defaults.
func DefaultOptions() Options {
	return Options{Digits: 1, Missing: ""}
}

// Compiler compiles formulas against datasets.
type Compiler struct {
	opts   Options
	logger *slog.Logger
}

// NewCompiler creates a Compiler. A nil logger disables logging.
func NewCompiler(opts Options, logger *slog.Logger) *Compiler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Compiler{opts: opts, logger: logger}
}

// group is one column group: a label plus the dataset row indices that
// belong to it.
type group struct {
	label string
	rows  []int
}

// Compile builds the summary table for a formula over a dataset.
func (c *Compiler) Compile(f *formula.TableFormula, d *dataset.Dataset) (*table.Table, error) {
	if err := c.reduce(f, d); err != nil {
		return nil, err
	}

	groups, err := c.columnGroups(f.Cols, d)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("resolved column axis", "formula", f.String(), "groups", len(groups))

	b := table.New(f.Rows, f.Cols)
	b = c.attachColumnHeader(b, groups)

	for _, term := range formula.Terms(f.Rows) {
		b, err = c.emitRowTerm(b, term, d, groups)
		if err != nil {
			return nil, err
		}
	}

	return b.Table()
}

// reduce attaches display metadata from the dataset onto every
// variable of the formula, so label derivation can pick it up.
func (c *Compiler) reduce(f *formula.TableFormula, d *dataset.Dataset) error {
	for _, v := range append(formula.Variables(f.Cols), formula.Variables(f.Rows)...) {
		col, ok := d.Column(v.Ident)
		if !ok {
			return fmt.Errorf("summary: unknown column %q in formula", v.Ident)
		}
		if col.Label != "" || col.Units != "" {
			v.Data = &table.NodeData{Label: col.Label, Units: col.Units}
		}
	}
	return nil
}

// columnGroups resolves the column side of the formula into groups.
// A literal 1 is the overall group; a categorical variable contributes
// one group per level. Multiple "+" terms concatenate their groups.
func (c *Compiler) columnGroups(e formula.Expr, d *dataset.Dataset) ([]group, error) {
	var groups []group
	for _, term := range formula.Terms(e) {
		switch t := term.(type) {
		case *formula.Number:
			all := make([]int, d.Len())
			for i := range all {
				all[i] = i
			}
			groups = append(groups, group{label: "Overall", rows: all})
		case *formula.Variable:
			col, _ := d.Column(t.Ident)
			if _, numeric := col.Numeric(); numeric && t.Type != "Categorical" {
				return nil, fmt.Errorf("summary: column axis variable %q is numeric; annotate it ::Categorical to group by it", t.Ident)
			}
			for _, level := range col.Levels() {
				g := group{label: level}
				for i, v := range col.Values {
					if v == level {
						g.rows = append(g.rows, i)
					}
				}
				groups = append(groups, g)
			}
		default:
			return nil, fmt.Errorf("summary: unsupported column axis term %q", term.String())
		}
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("summary: column axis %q produced no groups", e.String())
	}
	return groups, nil
}

// attachColumnHeader attaches the group labels as the primary column
// header and the group sizes as an N sub-header. Both levels carry a
// leading blank cell over the row-label column.
func (c *Compiler) attachColumnHeader(b table.Builder, groups []group) table.Builder {
	labels := make([]string, len(groups))
	counts := make([]table.N, len(groups))
	for i, g := range groups {
		labels[i] = g.label
		counts[i] = table.N(len(g.rows))
	}
	return b.ColHeader("", labels).ColSubheader("", counts)
}

// emitRowTerm writes the row block for one term of the row axis.
func (c *Compiler) emitRowTerm(b table.Builder, term formula.Expr, d *dataset.Dataset, groups []group) (table.Builder, error) {
	switch t := term.(type) {
	case *formula.Variable:
		col, _ := d.Column(t.Ident)
		if _, numeric := col.Numeric(); numeric && t.Type != "Categorical" {
			return c.emitContinuous(b, t, col, groups), nil
		}
		return c.emitCategorical(b, t, col, groups), nil
	case *formula.Number:
		return c.emitCounts(b, groups), nil
	default:
		return b, fmt.Errorf("summary: unsupported row axis term %q", term.String())
	}
}

// emitContinuous writes one row: label, then mean (sd) per group.
func (c *Compiler) emitContinuous(b table.Builder, v *formula.Variable, col *dataset.Column, groups []group) table.Builder {
	cells := make([]any, 0, len(groups)+1)
	cells = append(cells, table.DeriveLabel(v))
	for _, g := range groups {
		cells = append(cells, c.meanSD(c.groupValues(col, g)))
	}
	c.logger.Debug("emitting continuous row", "variable", v.Ident)
	return b.AddCol(cells...).NewRow()
}

// emitCategorical writes a label row followed by one count (pct%) row
// per level, each tagged with its level index for traceability.
func (c *Compiler) emitCategorical(b table.Builder, v *formula.Variable, col *dataset.Column, groups []group) table.Builder {
	c.logger.Debug("emitting categorical rows", "variable", v.Ident, "levels", len(col.Levels()))
	b = b.AddCol(table.DeriveLabel(v)).NewRow()
	for li, level := range col.Levels() {
		cells := make([]any, 0, len(groups)+1)
		cells = append(cells, "  "+level)
		for _, g := range groups {
			count := 0
			for _, i := range g.rows {
				if col.Values[i] == level {
					count++
				}
			}
			cells = append(cells, c.countPct(count, len(g.rows)))
		}
		cells = append(cells, table.Subrow(li+1))
		b = b.AddCol(cells...).NewRow()
	}
	return b
}

// emitCounts writes a row of group sizes.
func (c *Compiler) emitCounts(b table.Builder, groups []group) table.Builder {
	counts := make([]table.N, len(groups))
	for i, g := range groups {
		counts[i] = table.N(len(g.rows))
	}
	return b.AddCol("N", counts).NewRow()
}

// groupValues collects the numeric values of a column restricted to a
// group's rows.
func (c *Compiler) groupValues(col *dataset.Column, g group) []float64 {
	var vals []float64
	for _, i := range g.rows {
		v := col.Values[i]
		if dataset.Missing(v) {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			continue
		}
		vals = append(vals, f)
	}
	return vals
}
