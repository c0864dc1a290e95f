// internal/render/box.go
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mwiater/reportviz/internal/report"
)

// Box draws the table inside rounded lipgloss borders with a bold header.
type Box struct{}

// Format implements Formatter.
func (Box) Format(t report.Table) string {
	if len(t) == 0 {
		return ""
	}
	cells := grid(t)
	numeric := numericColumns(t)

	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cellStyle.Bold(true)
			}
			if col < len(numeric) && numeric[col] {
				return cellStyle.Align(lipgloss.Right)
			}
			return cellStyle
		}).
		Headers(cells[0]...).
		Rows(cells[1:]...)
	return tbl.Render()
}
