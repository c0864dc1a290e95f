package render

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mwiater/reportviz/internal/report"
)

func scenarioTable() report.Table {
	return report.Table{
		{"idx", "layer_fqn", "max", "min"},
		{1, "layer1", 5.0, 1.0},
		{2, "layer2", 7.0, report.NotApplicable},
	}
}

func scenarioBundle() report.TableBundle {
	return report.TableBundle{
		report.TensorKey:  scenarioTable(),
		report.ChannelKey: {{"idx", "layer_fqn", "channel"}},
	}
}

func TestSimpleFormatAlignsColumns(t *testing.T) {
	got := Simple{}.Format(scenarioTable())
	want := strings.Join([]string{
		"idx  layer_fqn  max  min",
		"---  ---------  ---  --------------",
		"  1  layer1       5  1",
		"  2  layer2       7  Not Applicable",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Simple.Format mismatch (-want +got):\n%s", diff)
	}
}

func TestSimpleFormatHeaderOnly(t *testing.T) {
	got := Simple{}.Format(report.Table{{"idx", "layer_fqn", "channel"}})
	want := "idx  layer_fqn  channel\n---  ---------  -------"
	if got != want {
		t.Fatalf("unexpected header-only table:\n%s", got)
	}
	if (Simple{}).Format(nil) != "" {
		t.Fatalf("expected empty output for empty table")
	}
}

func TestCellString(t *testing.T) {
	cases := map[string]any{
		"3":              3,
		"0.25":           0.25,
		"1e+21":          1e21,
		"true":           true,
		"Not Applicable": report.NotApplicable,
		"":               nil,
	}
	for want, in := range cases {
		if got := CellString(in); got != want {
			t.Fatalf("CellString(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatterFor(t *testing.T) {
	for name, want := range map[string]Formatter{"": Simple{}, "simple": Simple{}, "BOX": Box{}, "markdown": Markdown{}} {
		got, err := FormatterFor(name)
		if err != nil {
			t.Fatalf("FormatterFor(%q) error: %v", name, err)
		}
		if got != want {
			t.Fatalf("FormatterFor(%q) = %T, want %T", name, got, want)
		}
	}
	if _, err := FormatterFor("latex"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestBoxFormat(t *testing.T) {
	out := Box{}.Format(scenarioTable())
	for _, want := range []string{"╭", "╯", "layer_fqn", "layer2", "Not Applicable"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected box output to contain %q:\n%s", want, out)
		}
	}
}

func TestMarkdownFormat(t *testing.T) {
	out := Markdown{}.Format(scenarioTable())
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines:\n%s", len(lines), out)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "|") {
			t.Fatalf("expected markdown table rows, got %q", line)
		}
	}
	if !strings.Contains(out, "layer1") || !strings.Contains(out, "Not Applicable") {
		t.Fatalf("missing cells in markdown output:\n%s", out)
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, "Model Report", scenarioBundle()); err != nil {
		t.Fatalf("WriteMarkdown error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "# Model Report") || !strings.Contains(out, "## "+report.TensorHeading) {
		t.Fatalf("missing headings:\n%s", out)
	}
	if strings.Contains(out, report.ChannelHeading) {
		t.Fatalf("did not expect a channel section:\n%s", out)
	}

	buf.Reset()
	empty := report.TableBundle{
		report.TensorKey:  {{"idx", "layer_fqn"}},
		report.ChannelKey: {{"idx", "layer_fqn", "channel"}},
	}
	if err := WriteMarkdown(&buf, "Empty", empty); err != nil {
		t.Fatalf("WriteMarkdown error: %v", err)
	}
	if !strings.Contains(buf.String(), report.NoDataMessage) {
		t.Fatalf("expected no data message:\n%s", buf.String())
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, "Model <Report>", scenarioBundle()); err != nil {
		t.Fatalf("WriteHTML error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Model &lt;Report&gt;", "<th>layer_fqn</th>", `<td class="num">5</td>`, "<td>Not Applicable</td>", report.TensorHeading} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected HTML to contain %q", want)
		}
	}
	if strings.Contains(out, report.ChannelHeading) {
		t.Fatalf("did not expect a channel section")
	}
}

func TestWritePDF(t *testing.T) {
	bundle := scenarioBundle()
	bundle[report.ChannelKey] = report.Table{
		{"idx", "layer_fqn", "channel", "per_channel_min"},
		{1, "a.very.long.module.name.that.does.not.fit.in.one.cell", 0, 1.5},
	}
	var buf bytes.Buffer
	if err := WritePDF(&buf, "Model Report", bundle); err != nil {
		t.Fatalf("WritePDF error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected PDF header, got %q", buf.Bytes()[:8])
	}
}

func TestLineChart(t *testing.T) {
	chart := NewChart(40, 6, false)
	out := chart.LineChart("per_channel_min", []Series{
		{Name: "channel 0", Points: []Point{{X: 1, Y: 1}, {X: 2, Y: 3}}},
		{Name: "channel 1", Points: []Point{{X: 1, Y: 2}, {X: 2, Y: 4}}},
	})
	lines := strings.Split(out, "\n")
	// title + plot rows + axis + x labels + legend
	if len(lines) != 1+6+1+1+1 {
		t.Fatalf("unexpected line count %d:\n%s", len(lines), out)
	}
	if lines[0] != "per_channel_min" {
		t.Fatalf("expected title first, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "4 ┤") || !strings.Contains(lines[6], "1 ┤") {
		t.Fatalf("expected y axis labels 4 and 1:\n%s", out)
	}
	if !strings.Contains(out, "● channel 0") || !strings.Contains(out, "◆ channel 1") {
		t.Fatalf("expected legend:\n%s", out)
	}
	if strings.Count(out, "●") != 3 || strings.Count(out, "◆") != 3 {
		t.Fatalf("expected two points per series plus legend glyphs:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI sequences when colour is off")
	}

	if got := chart.LineChart("empty", nil); got != "empty\n(no data)" {
		t.Fatalf("unexpected empty chart: %q", got)
	}
}

func TestLineChartExtremeRange(t *testing.T) {
	chart := NewChart(40, 5, false)
	out := chart.LineChart("max", []Series{{Name: "max", Points: []Point{
		{X: 1, Y: -1.7e308},
		{X: 2, Y: 1.7e308},
		{X: 3, Y: math.NaN()},
		{X: 4, Y: math.Inf(1)},
	}}})
	lines := strings.Split(out, "\n")
	if len(lines) != 1+5+1+1+1 {
		t.Fatalf("unexpected line count %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "●") || !strings.Contains(lines[5], "●") {
		t.Fatalf("expected the extremes on the top and bottom rows:\n%s", out)
	}
	if strings.Count(out, "●") != 3 {
		t.Fatalf("expected two plotted points plus the legend glyph:\n%s", out)
	}
	if strings.Contains(out, "NaN") || strings.Contains(out, "Inf") {
		t.Fatalf("expected finite axis labels:\n%s", out)
	}
}

func TestBarChart(t *testing.T) {
	chart := NewChart(30, 0, false)
	out := chart.BarChart("histogram", []Bar{{Label: "[0, 1)", Count: 1}, {Label: "[1, 2]", Count: 4}})
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected title and two bars:\n%s", out)
	}
	short, long := strings.Count(lines[1], "█"), strings.Count(lines[2], "█")
	if long <= short || short == 0 {
		t.Fatalf("expected bars scaled to counts (%d, %d):\n%s", short, long, out)
	}
	if !strings.HasSuffix(lines[2], " 4") {
		t.Fatalf("expected count at end of bar: %q", lines[2])
	}
	if got := chart.BarChart("none", nil); got != "none\n(no data)" {
		t.Fatalf("unexpected empty bar chart: %q", got)
	}
}
