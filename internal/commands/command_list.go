// internal/commands/command_list.go
package reportviz

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/reportviz/internal/util"
)

// minDescriptionWidth keeps some of each description visible on narrow terminals.
const minDescriptionWidth = 16

// CommandInfo holds the path and description of a command for display.
type CommandInfo struct {
	Path        string
	Description string
}

// ListCommands prints the command tree in a two-column layout. When width is
// positive, descriptions are cut so every line fits in width columns.
func ListCommands(out io.Writer, commands []CommandInfo, width int) {
	pathW := 0
	for _, c := range commands {
		pathW = util.Max(pathW, lipgloss.Width(c.Path))
	}

	headingColor.Fprintln(out, "Commands and Subcommands:")
	for _, c := range commands {
		desc := c.Description
		if width > 0 {
			desc = util.TruncateRunes(desc, util.Max(width-pathW-5, minDescriptionWidth))
		}
		pad := strings.Repeat(" ", pathW-lipgloss.Width(c.Path)+2)
		fmt.Fprintf(out, "  %s%s%s\n", c.Path, pad, desc)
	}
}
