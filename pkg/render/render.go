// Package render writes a finished table to text, markdown, CSV or
// HTML. It consumes the table artifact only (grid plus header
// metadata), never the builder.
package render

import (
	"fmt"
	"io"
	"strconv"

	pretty "github.com/jedib0t/go-pretty/v6/table"

	"github.com/tabwright/tabwright/pkg/table"
)

// Format selects an output format.
type Format string

// Supported output formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatHTML     Format = "html"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatMarkdown, FormatCSV, FormatHTML:
		return Format(s), nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("render: unknown format %q (want text, markdown, csv or html)", s)
	}
}

// Options control rendering.
type Options struct {
	// Missing is written for cells without a value.
	Missing string
	// Title, when set, is rendered above the table.
	Title string
	// MaxWidth caps the rendered row length for text output; 0 means
	// unlimited.
	MaxWidth int
}

// Render writes tbl to w in the given format.
func Render(w io.Writer, tbl *table.Table, format Format, opts Options) error {
	t := pretty.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(pretty.StyleLight)
	if opts.Title != "" {
		t.SetTitle(opts.Title)
	}
	if opts.MaxWidth > 0 {
		t.SetAllowedRowLength(opts.MaxWidth)
	}

	width := bodyWidth(tbl)

	// Each column-header level becomes one header row. Sub-header
	// levels get no special treatment here: any cell whose role
	// satisfies IsHeader renders as a header.
	for _, level := range tbl.ColHeader {
		t.AppendHeader(padRow(level, width, opts))
	}

	// Row-header levels, when present, render as section rows ahead of
	// the body.
	for _, level := range tbl.RowHeader {
		t.AppendRow(padRow(level, width, opts))
	}

	for _, row := range tbl.Rows {
		t.AppendRow(padRow(row, width, opts))
	}

	switch format {
	case FormatMarkdown:
		t.RenderMarkdown()
	case FormatCSV:
		t.RenderCSV()
	case FormatHTML:
		t.RenderHTML()
	default:
		t.Render()
	}
	return nil
}

// bodyWidth is the rendered column count: the widest of the body rows
// and any header level.
func bodyWidth(tbl *table.Table) int {
	w := tbl.NCols()
	for _, level := range tbl.ColHeader {
		if len(level) > w {
			w = len(level)
		}
	}
	for _, level := range tbl.RowHeader {
		if len(level) > w {
			w = len(level)
		}
	}
	return w
}

// padRow converts a cell sequence into a pretty row of the given
// width, padding short rows with the missing marker.
func padRow(cells []table.Cell, width int, opts Options) pretty.Row {
	row := make(pretty.Row, width)
	for i := range row {
		if i < len(cells) {
			row[i] = CellText(cells[i], opts.Missing)
		} else {
			row[i] = ""
		}
	}
	return row
}

// CellText renders a single cell value for display. Units are appended
// in parentheses; counts render as plain integers; a nil value is the
// missing marker.
func CellText(c table.Cell, missing string) string {
	var text string
	switch v := c.Value.(type) {
	case nil:
		return missing
	case string:
		text = v
	case table.N:
		text = strconv.Itoa(int(v))
	case float64:
		text = strconv.FormatFloat(v, 'g', -1, 64)
	default:
		text = fmt.Sprintf("%v", v)
	}
	if c.Units != "" {
		text = fmt.Sprintf("%s (%s)", text, c.Units)
	}
	return text
}
