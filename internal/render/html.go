// internal/render/html.go
package render

import (
	"html/template"
	"io"

	"github.com/mwiater/reportviz/internal/report"
)

type htmlSection struct {
	Heading string
	Headers []string
	Rows    [][]string
	Numeric []bool
}

type htmlReportData struct {
	Title    string
	Sections []htmlSection
	NoData   string
}

// WriteHTML renders a standalone HTML page with one table per non-empty section.
func WriteHTML(w io.Writer, title string, bundle report.TableBundle) error {
	data := htmlReportData{Title: title}
	if bundle.HasTensorFeatures() {
		data.Sections = append(data.Sections, newHTMLSection(report.TensorHeading, bundle.Tensor()))
	}
	if bundle.HasChannelFeatures() {
		data.Sections = append(data.Sections, newHTMLSection(report.ChannelHeading, bundle.Channel()))
	}
	if len(data.Sections) == 0 {
		data.NoData = report.NoDataMessage
	}
	return htmlReportTemplate.Execute(w, data)
}

func newHTMLSection(heading string, t report.Table) htmlSection {
	cells := grid(t)
	return htmlSection{
		Heading: heading,
		Headers: cells[0],
		Rows:    cells[1:],
		Numeric: numericColumns(t),
	}
}

var htmlReportTemplate = template.Must(template.New("table-report").Parse(htmlReportTemplateHTML))

const htmlReportTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <style>
    :root {
      --primary: #334155;
      --light: #F1F5F9;
      --text: #0F172A;
      --border: #E2E8F0;
    }
    body { background-color: var(--light); color: var(--text); }
    .navbar-dark { background-color: var(--primary) !important; }
    .card { border: 1px solid var(--border); }
    td.num { text-align: right; font-variant-numeric: tabular-nums; }
  </style>
</head>
<body>
  <nav class="navbar navbar-dark mb-4">
    <div class="container-fluid"><span class="navbar-brand">{{ .Title }}</span></div>
  </nav>
  <main class="container-fluid">
  {{- if .NoData }}
    <p class="text-secondary">{{ .NoData }}</p>
  {{- end }}
  {{- range .Sections }}
    {{- $numeric := .Numeric }}
    <div class="card mb-4">
      <div class="card-header"><h2 class="h5 mb-0">{{ .Heading }}</h2></div>
      <div class="card-body table-responsive">
        <table class="table table-sm table-striped table-bordered">
          <thead><tr>{{ range .Headers }}<th>{{ . }}</th>{{ end }}</tr></thead>
          <tbody>
          {{- range .Rows }}
            <tr>{{ range $i, $cell := . }}<td{{ if index $numeric $i }} class="num"{{ end }}>{{ $cell }}</td>{{ end }}</tr>
          {{- end }}
          </tbody>
        </table>
      </div>
    </div>
  {{- end }}
  </main>
</body>
</html>
`
