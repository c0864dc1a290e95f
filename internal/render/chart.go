// internal/render/chart.go
package render

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/reportviz/internal/util"
	"golang.org/x/term"
)

const (
	// DefaultChartWidth is used when no terminal width is known.
	DefaultChartWidth = 72
	// DefaultChartHeight is the number of plot rows in a line chart.
	DefaultChartHeight = 12
)

// Point is one (x, y) sample of a series.
type Point struct {
	X float64
	Y float64
}

// Series is one named line of a line chart.
type Series struct {
	Name   string
	Points []Point
}

// Bar is one labelled bar of a bar chart.
type Bar struct {
	Label string
	Count int
}

// Charter draws chart data as printable text.
type Charter interface {
	LineChart(title string, series []Series) string
	BarChart(title string, bars []Bar) string
}

var (
	seriesGlyphs  = []rune{'●', '◆', '▲', '■', '✚', '✖', '◉', '▼'}
	seriesPalette = []string{"86", "205", "220", "46", "75", "208", "141", "196"}
)

// Chart is the text Charter. Colour is applied only when Color is set.
type Chart struct {
	Width  int
	Height int
	Color  bool
}

// NewChart returns a Chart, falling back to the defaults for non-positive sizes.
func NewChart(width, height int, color bool) *Chart {
	if width <= 0 {
		width = DefaultChartWidth
	}
	if height <= 0 {
		height = DefaultChartHeight
	}
	return &Chart{Width: width, Height: height, Color: color}
}

func (c *Chart) paint(idx int, s string) string {
	if !c.Color {
		return s
	}
	color := seriesPalette[idx%len(seriesPalette)]
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
}

// LineChart plots every series on one grid. Each series gets its own glyph.
func (c *Chart) LineChart(title string, series []Series) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteByte('\n')

	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	points := 0
	for _, s := range series {
		for _, p := range s.Points {
			if !finite(p.X) || !finite(p.Y) {
				continue
			}
			xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
			ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
			points++
		}
	}
	if points == 0 {
		b.WriteString("(no data)")
		return b.String()
	}
	if ymin == ymax {
		ymin, ymax = ymin-0.5, ymax+0.5
	}

	labels := []string{formatAxis(ymax), formatAxis(util.Lerp(ymin, ymax, 0.5)), formatAxis(ymin)}
	labelW := 0
	for _, l := range labels {
		labelW = util.Max(labelW, len(l))
	}
	plotW := util.Max(c.Width-labelW-2, 8)
	plotH := util.Max(c.Height, 3)

	cells := make([][]int, plotH)
	for r := range cells {
		cells[r] = make([]int, plotW)
		for col := range cells[r] {
			cells[r][col] = -1
		}
	}
	for si, s := range series {
		for _, p := range s.Points {
			if !finite(p.X) || !finite(p.Y) {
				continue
			}
			col := 0
			if xmax > xmin {
				col = int(math.Round(util.Fraction(p.X, xmin, xmax) * float64(plotW-1)))
			}
			row := int(math.Round((1 - util.Fraction(p.Y, ymin, ymax)) * float64(plotH-1)))
			cells[util.Clamp(row, 0, plotH-1)][util.Clamp(col, 0, plotW-1)] = si
		}
	}

	for r, line := range cells {
		label := ""
		switch r {
		case 0:
			label = labels[0]
		case plotH / 2:
			label = labels[1]
		case plotH - 1:
			label = labels[2]
		}
		fmt.Fprintf(&b, "%*s ┤", labelW, label)
		for _, si := range line {
			if si < 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(c.paint(si, string(seriesGlyphs[si%len(seriesGlyphs)])))
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%*s └%s\n", labelW, "", strings.Repeat("─", plotW))

	left, right := formatAxis(xmin), formatAxis(xmax)
	gap := util.Max(plotW-len(left)-len(right), 1)
	fmt.Fprintf(&b, "%*s  %s%s%s\n", labelW, "", left, strings.Repeat(" ", gap), right)

	legend := make([]string, 0, len(series))
	for si, s := range series {
		legend = append(legend, c.paint(si, string(seriesGlyphs[si%len(seriesGlyphs)]))+" "+s.Name)
	}
	b.WriteString(strings.Join(legend, "  "))
	return b.String()
}

// BarChart draws one horizontal bar per entry, scaled to the largest count.
func (c *Chart) BarChart(title string, bars []Bar) string {
	var b strings.Builder
	b.WriteString(title)
	if len(bars) == 0 {
		b.WriteString("\n(no data)")
		return b.String()
	}

	labelW, maxCount, countW := 0, 0, 0
	for _, bar := range bars {
		labelW = util.Max(labelW, lipgloss.Width(bar.Label))
		maxCount = util.Max(maxCount, bar.Count)
		countW = util.Max(countW, len(strconv.Itoa(bar.Count)))
	}
	barW := util.Max(c.Width-labelW-countW-4, 4)

	for _, bar := range bars {
		n := 0
		if maxCount > 0 {
			n = int(math.Round(float64(bar.Count) / float64(maxCount) * float64(barW)))
		}
		pad := strings.Repeat(" ", labelW-lipgloss.Width(bar.Label))
		fill := c.paint(0, strings.Repeat("█", n))
		fmt.Fprintf(&b, "\n%s%s │%s%s %*d", bar.Label, pad, fill, strings.Repeat(" ", barW-n), countW, bar.Count)
	}
	return b.String()
}

func formatAxis(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// TerminalWidth returns the width of the terminal on stdout, or 0 when
// stdout is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0
	}
	return w
}

// ColorEnabled reports whether ANSI colour should be written to f.
// NO_COLOR disables it and FORCE_COLOR enables it regardless of f.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}
