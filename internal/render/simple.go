// internal/render/simple.go
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/reportviz/internal/report"
)

// columnGap separates columns in the simple layout.
const columnGap = "  "

// Simple prints fixed-width columns with a dashed line under the header.
// Numeric columns are right-aligned, everything else left-aligned.
//
//	idx  layer_fqn  max
//	---  ---------  ---
//	  1  layer1       5
type Simple struct{}

// Format implements Formatter.
func (Simple) Format(t report.Table) string {
	if len(t) == 0 {
		return ""
	}
	cells := grid(t)
	numeric := numericColumns(t)

	widths := make([]int, len(cells[0]))
	for _, row := range cells {
		for c, s := range row {
			if w := lipgloss.Width(s); w > widths[c] {
				widths[c] = w
			}
		}
	}

	lines := make([]string, 0, len(cells)+1)
	lines = append(lines, joinRow(cells[0], widths, numeric))
	sep := make([]string, len(widths))
	for c, w := range widths {
		sep[c] = strings.Repeat("-", w)
	}
	lines = append(lines, strings.Join(sep, columnGap))
	for _, row := range cells[1:] {
		lines = append(lines, joinRow(row, widths, numeric))
	}
	return strings.Join(lines, "\n")
}

func joinRow(row []string, widths []int, numeric []bool) string {
	padded := make([]string, len(row))
	for c, s := range row {
		pad := strings.Repeat(" ", widths[c]-lipgloss.Width(s))
		if numeric[c] {
			padded[c] = pad + s
		} else {
			padded[c] = s + pad
		}
	}
	return strings.TrimRight(strings.Join(padded, columnGap), " ")
}
