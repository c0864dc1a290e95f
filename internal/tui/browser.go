// internal/tui/browser.go
// Package tui provides an interactive terminal browser for report tables.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/reportviz/internal/logging"
	"github.com/mwiater/reportviz/internal/render"
	"github.com/mwiater/reportviz/internal/report"
	"github.com/mwiater/reportviz/internal/util"
)

// viewState selects which of the two tables is on screen.
type viewState int

const (
	// viewTensor shows the tensor level table.
	viewTensor viewState = iota
	// viewChannel shows the channel level table.
	viewChannel
)

const (
	maxColumnWidth = 32
	// chromeHeight is the number of lines used by the title, tabs and help.
	chromeHeight = 7
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("205"))
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tableBoxStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

// model is the Bubble Tea model for the table browser.
type model struct {
	title         string
	state         viewState
	tables        [2]table.Model
	hasData       [2]bool
	width, height int
}

// newModel builds both tables from bundle and opens on the first one with data.
func newModel(bundle report.TableBundle, title string) *model {
	m := &model{
		title: title,
		tables: [2]table.Model{
			newTable(bundle.Tensor()),
			newTable(bundle.Channel()),
		},
		hasData: [2]bool{bundle.HasTensorFeatures(), bundle.HasChannelFeatures()},
	}
	if !m.hasData[viewTensor] && m.hasData[viewChannel] {
		m.state = viewChannel
	}
	m.tables[m.state].Focus()
	return m
}

func newTable(t report.Table) table.Model {
	headers := t.Headers()
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}

	rows := make([]table.Row, 0, len(t.Rows()))
	for _, r := range t.Rows() {
		row := make(table.Row, len(headers))
		for i := range headers {
			if i < len(r) {
				row[i] = util.TruncateRunes(render.CellString(r[i]), maxColumnWidth)
			}
			widths[i] = util.Max(widths[i], lipgloss.Width(row[i]))
		}
		rows = append(rows, row)
	}

	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Title: h, Width: util.Min(widths[i], maxColumnWidth+1)}
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(util.Min(len(rows)+1, 20)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	tbl.SetStyles(styles)
	return tbl
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "shift+tab":
			m.tables[m.state].Blur()
			m.state = (m.state + 1) % 2
			m.tables[m.state].Focus()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		for i := range m.tables {
			m.tables[i].SetHeight(util.Max(3, msg.Height-chromeHeight))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.tables[m.state], cmd = m.tables[m.state].Update(msg)
	return m, cmd
}

// View renders the title, the table tabs, the active table and the key help.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(util.TruncateRunes(m.title, util.Max(m.width-2, 1))))
	b.WriteString("\n\n")

	tabs := make([]string, 0, 2)
	for i, heading := range []string{report.TensorHeading, report.ChannelHeading} {
		if viewState(i) == m.state {
			tabs = append(tabs, activeTabStyle.Render(heading))
			continue
		}
		tabs = append(tabs, tabStyle.Render(heading))
	}
	b.WriteString(strings.Join(tabs, "   "))
	b.WriteString("\n")

	if m.hasData[m.state] {
		b.WriteString(tableBoxStyle.Render(m.tables[m.state].View()))
	} else {
		b.WriteString("\n" + report.NoDataMessage + "\n")
	}
	b.WriteString("\n")

	active := m.tables[m.state]
	status := fmt.Sprintf("row %d/%d", util.Min(active.Cursor()+1, len(active.Rows())), len(active.Rows()))
	b.WriteString(helpStyle.Render(status + " • tab: switch table • ↑/↓: scroll • q: quit"))

	return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
}

// Run opens the table browser for bundle and blocks until the user quits.
func Run(bundle report.TableBundle, title string) error {
	logging.LogEvent("[TUI] browsing %q", title)
	p := tea.NewProgram(newModel(bundle, title), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run table browser: %w", err)
	}
	return nil
}
