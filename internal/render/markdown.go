// internal/render/markdown.go
package render

import (
	"io"
	"strings"

	"github.com/mwiater/reportviz/internal/report"
	"github.com/nao1215/markdown"
)

// Markdown renders a GitHub-flavoured markdown table.
type Markdown struct{}

// Format implements Formatter.
func (Markdown) Format(t report.Table) string {
	if len(t) == 0 {
		return ""
	}
	md := markdown.NewMarkdown(io.Discard)
	md.Table(tableSet(t))
	return strings.TrimSpace(md.String())
}

func tableSet(t report.Table) markdown.TableSet {
	cells := grid(t)
	rows := cells[1:]
	if rows == nil {
		rows = [][]string{}
	}
	return markdown.TableSet{Header: cells[0], Rows: rows}
}

// WriteMarkdown writes a full markdown document for a table view: a title,
// then one section per non-empty table.
func WriteMarkdown(w io.Writer, title string, bundle report.TableBundle) error {
	md := markdown.NewMarkdown(w)
	md.H1(title)
	md.PlainText("")

	if !bundle.HasTensorFeatures() && !bundle.HasChannelFeatures() {
		md.PlainText(report.NoDataMessage)
		return md.Build()
	}
	if bundle.HasTensorFeatures() {
		md.H2(report.TensorHeading)
		md.PlainText("")
		md.Table(tableSet(bundle.Tensor()))
		md.PlainText("")
	}
	if bundle.HasChannelFeatures() {
		md.H2(report.ChannelHeading)
		md.PlainText("")
		md.Table(tableSet(bundle.Channel()))
		md.PlainText("")
	}
	return md.Build()
}
