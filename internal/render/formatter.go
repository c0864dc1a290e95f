// internal/render/formatter.go
// Package render turns report tables into text, documents and charts.
package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mwiater/reportviz/internal/report"
)

// ErrUnknownFormat is returned by FormatterFor for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown table format")

// Formatter renders one table, header row first, as printable text.
type Formatter interface {
	Format(t report.Table) string
}

// Format names accepted by FormatterFor.
const (
	FormatSimple   = "simple"
	FormatBox      = "box"
	FormatMarkdown = "markdown"
)

// Formats lists the supported format names.
var Formats = []string{FormatSimple, FormatBox, FormatMarkdown}

// FormatterFor resolves a format name. An empty name selects Simple.
func FormatterFor(name string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatSimple:
		return Simple{}, nil
	case FormatBox:
		return Box{}, nil
	case FormatMarkdown:
		return Markdown{}, nil
	default:
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, name, strings.Join(Formats, ", "))
	}
}

// CellString renders a single cell the way every formatter prints it.
func CellString(c any) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// grid stringifies t into equal-length rows.
func grid(t report.Table) [][]string {
	cols := 0
	for _, row := range t {
		if len(row) > cols {
			cols = len(row)
		}
	}
	out := make([][]string, len(t))
	for r, row := range t {
		out[r] = make([]string, cols)
		for c, cell := range row {
			out[r][c] = CellString(cell)
		}
	}
	return out
}

// numericColumns reports, per column, whether every data cell is a number.
// Columns with no data rows are not numeric.
func numericColumns(t report.Table) []bool {
	if len(t) == 0 {
		return nil
	}
	cols := 0
	for _, row := range t {
		if len(row) > cols {
			cols = len(row)
		}
	}
	numeric := make([]bool, cols)
	for c := range numeric {
		numeric[c] = len(t) > 1
		for _, row := range t[1:] {
			if c >= len(row) {
				numeric[c] = false
				break
			}
			switch row[c].(type) {
			case int, float64:
			default:
				numeric[c] = false
			}
			if !numeric[c] {
				break
			}
		}
	}
	return numeric
}
