// internal/commands/visualizer.go
package reportviz

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mwiater/reportviz/internal/logging"
	"github.com/mwiater/reportviz/internal/render"
	"github.com/mwiater/reportviz/internal/report"
	"github.com/mwiater/reportviz/internal/visualizer"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
)

// loadReport reads a report file and logs what was loaded.
func loadReport(path string) (*report.Report, error) {
	r, err := report.Load(path)
	if err != nil {
		return nil, err
	}
	logging.LogEvent("[REPORT] loaded %d modules from %s", r.Len(), path)
	return r, nil
}

// newVisualizer builds a Visualizer over r using the loaded configuration.
// bins overrides the configured histogram bin count when positive.
func newVisualizer(r *report.Report, bins int) (*visualizer.Visualizer, error) {
	cfg := config()
	formatter, err := cfg.Formatter()
	if err != nil {
		return nil, err
	}
	if bins <= 0 {
		bins = cfg.Bins()
	}
	return visualizer.New(r,
		visualizer.WithFormatter(formatter),
		visualizer.WithCharter(render.NewChart(cfg.ChartWidth(), cfg.ChartHeight(), !color.NoColor)),
		visualizer.WithHistogramBins(bins),
	), nil
}

// openVisualizer loads path and wraps it in a Visualizer.
func openVisualizer(path string, bins int) (*visualizer.Visualizer, error) {
	r, err := loadReport(path)
	if err != nil {
		return nil, err
	}
	return newVisualizer(r, bins)
}

// viewTitle names a view after its report file and filters.
func viewTitle(path, featureFilter, moduleFilter string) string {
	title := filepath.Base(path)
	if featureFilter != "" {
		title += fmt.Sprintf(" feature~%q", featureFilter)
	}
	if moduleFilter != "" {
		title += fmt.Sprintf(" module~%q", moduleFilter)
	}
	return title
}
