// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mwiater/reportviz/internal/render"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultLogFile is used when the config omits logFile.
	defaultLogFile = "reportviz.log"
	// defaultHistogramBins is the bin count used when the config omits histogramBins.
	defaultHistogramBins = 10
	// chartMargin is left free on the right of terminal-sized charts.
	chartMargin = 14
)

// Config represents the top-level application configuration.
type Config struct {
	Debug         bool   `json:"debug"`
	LogFile       string `json:"logFile,omitempty"`
	Format        string `json:"format,omitempty"`
	NoColor       bool   `json:"noColor"`
	HistogramBins int    `json:"histogramBins,omitempty"`
	PlotWidth     int    `json:"plotWidth,omitempty"`
	PlotHeight    int    `json:"plotHeight,omitempty"`
	ConfigPath    string `json:"-"`
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// TableFormat returns the configured table format name, defaulting to simple.
func (c Config) TableFormat() string {
	if f := strings.ToLower(strings.TrimSpace(c.Format)); f != "" {
		return f
	}
	return render.FormatSimple
}

// Bins returns the histogram bin count.
func (c Config) Bins() int {
	if c.HistogramBins <= 0 {
		return defaultHistogramBins
	}
	return c.HistogramBins
}

// ChartWidth returns the configured plot width. Without one, charts follow
// the terminal width, and fall back to the renderer default off a terminal.
func (c Config) ChartWidth() int {
	if c.PlotWidth > 0 {
		return c.PlotWidth
	}
	if w := render.TerminalWidth() - chartMargin; w >= render.DefaultChartWidth/2 {
		return w
	}
	return render.DefaultChartWidth
}

// ChartHeight returns the configured plot height.
func (c Config) ChartHeight() int {
	if c.PlotHeight <= 0 {
		return render.DefaultChartHeight
	}
	return c.PlotHeight
}

// Validate rejects settings no command can honour.
func (c Config) Validate() error {
	var errs []error
	if _, err := render.FormatterFor(c.Format); err != nil {
		errs = append(errs, err)
	}
	if c.HistogramBins < 0 {
		errs = append(errs, fmt.Errorf("histogramBins must not be negative, got %d", c.HistogramBins))
	}
	if c.PlotWidth < 0 || c.PlotHeight < 0 {
		errs = append(errs, fmt.Errorf("plot size must not be negative, got %dx%d", c.PlotWidth, c.PlotHeight))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Formatter resolves the configured table formatter.
func (c Config) Formatter() (render.Formatter, error) {
	return render.FormatterFor(c.TableFormat())
}
