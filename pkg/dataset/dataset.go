// Package dataset loads tabular input frames for the table compiler.
// Frames come from CSV files or database/sql result sets; columns keep
// their raw string values plus parsed numeric values when the whole
// column is numeric.
package dataset

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Column is one named column of a dataset.
type Column struct {
	Name   string
	Values []string
	// Label and Units are display metadata, usually loaded from a
	// sidecar file. Empty means unset.
	Label string
	Units string

	floats  []float64
	numeric bool
}

// Dataset is an ordered collection of named columns of equal length.
type Dataset struct {
	names []string
	cols  map[string]*Column
}

// New creates a dataset from columns in the given order.
func New(cols ...*Column) *Dataset {
	d := &Dataset{cols: make(map[string]*Column, len(cols))}
	for _, c := range cols {
		c.reparse()
		d.names = append(d.names, c.Name)
		d.cols[c.Name] = c
	}
	return d
}

// Names returns the column names in dataset order.
func (d *Dataset) Names() []string { return d.names }

// Column returns the named column, or false when absent.
func (d *Dataset) Column(name string) (*Column, bool) {
	c, ok := d.cols[name]
	return c, ok
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if len(d.names) == 0 {
		return 0
	}
	return len(d.cols[d.names[0]].Values)
}

// Missing reports whether a raw value counts as absent.
func Missing(s string) bool {
	return s == "" || s == "NA"
}

// reparse recomputes the cached numeric view of the column.
func (c *Column) reparse() {
	c.floats = c.floats[:0]
	c.numeric = true
	seen := false
	for _, v := range c.Values {
		if Missing(v) {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			c.numeric = false
			c.floats = nil
			return
		}
		seen = true
		c.floats = append(c.floats, f)
	}
	c.numeric = seen
}

// Numeric reports whether every present value parses as a number, and
// returns the parsed values (missing entries skipped).
func (c *Column) Numeric() ([]float64, bool) {
	return c.floats, c.numeric
}

// Levels returns the distinct present values in order of first
// appearance. For categorical columns these are the categories.
func (c *Column) Levels() []string {
	var levels []string
	seen := make(map[string]bool)
	for _, v := range c.Values {
		if Missing(v) || seen[v] {
			continue
		}
		seen[v] = true
		levels = append(levels, v)
	}
	return levels
}

// Present returns the number of non-missing values.
func (c *Column) Present() int {
	n := 0
	for _, v := range c.Values {
		if !Missing(v) {
			n++
		}
	}
	return n
}

// ReadCSV reads a dataset from CSV with a header row.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset: empty CSV input")
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: reading CSV header: %w", err)
	}

	cols := make([]*Column, len(header))
	for i, name := range header {
		cols[i] = &Column{Name: strings.TrimSpace(name)}
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: reading CSV record: %w", err)
		}
		for i, v := range record {
			cols[i].Values = append(cols[i].Values, v)
		}
	}

	return New(cols...), nil
}

// ReadCSVFile reads a dataset from a CSV file. When a sidecar metadata
// file exists next to it (<name>.meta.yaml), its column labels and
// units are applied.
func ReadCSVFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	d, err := ReadCSV(f)
	if err != nil {
		return nil, err
	}

	metaPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".meta.yaml"
	if _, err := os.Stat(metaPath); err == nil {
		m, err := ReadMetaFile(metaPath)
		if err != nil {
			return nil, err
		}
		d.ApplyMeta(m)
	}

	return d, nil
}

// FromRows adapts a database/sql result set into a dataset. All values
// are scanned through sql.NullString; NULLs become missing values.
func FromRows(rows *sql.Rows) (*Dataset, error) {
	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("dataset: reading result columns: %w", err)
	}

	cols := make([]*Column, len(names))
	for i, name := range names {
		cols[i] = &Column{Name: name}
	}

	for rows.Next() {
		values := make([]sql.NullString, len(names))
		ptrs := make([]any, len(names))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("dataset: scanning result row: %w", err)
		}
		for i, v := range values {
			if v.Valid {
				cols[i].Values = append(cols[i].Values, v.String)
			} else {
				cols[i].Values = append(cols[i].Values, "")
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dataset: iterating result rows: %w", err)
	}

	return New(cols...), nil
}
