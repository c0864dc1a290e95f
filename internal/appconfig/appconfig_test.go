// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mwiater/reportviz/internal/render"
)

// TestDefaults verifies that a zero Config resolves every accessor to its
// documented default.
func TestDefaults(t *testing.T) {
	var cfg Config

	if got := cfg.LogFilePath(); got != "reportviz.log" {
		t.Fatalf("expected default log file, got %q", got)
	}
	if got := cfg.TableFormat(); got != render.FormatSimple {
		t.Fatalf("expected simple format, got %q", got)
	}
	if got := cfg.Bins(); got != 10 {
		t.Fatalf("expected 10 bins, got %d", got)
	}
	if got := cfg.ChartHeight(); got != render.DefaultChartHeight {
		t.Fatalf("expected default chart height, got %d", got)
	}
	if got := cfg.ChartWidth(); got < render.DefaultChartWidth/2 {
		t.Fatalf("expected a usable chart width, got %d", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("zero config should be valid: %v", err)
	}
}

func TestConfiguredValues(t *testing.T) {
	cfg := Config{LogFile: "out/viz.log", Format: " Box ", HistogramBins: 4, PlotWidth: 50, PlotHeight: 8}

	if got := cfg.LogFilePath(); got != "out/viz.log" {
		t.Fatalf("unexpected log file %q", got)
	}
	if got := cfg.TableFormat(); got != "box" {
		t.Fatalf("expected normalised format, got %q", got)
	}
	if cfg.Bins() != 4 || cfg.ChartWidth() != 50 || cfg.ChartHeight() != 8 {
		t.Fatalf("unexpected sizes: bins=%d width=%d height=%d", cfg.Bins(), cfg.ChartWidth(), cfg.ChartHeight())
	}
	f, err := cfg.Formatter()
	if err != nil {
		t.Fatalf("Formatter error: %v", err)
	}
	if _, ok := f.(render.Box); !ok {
		t.Fatalf("expected Box formatter, got %T", f)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "unknown format", cfg: Config{Format: "latex"}, want: "latex"},
		{name: "negative bins", cfg: Config{HistogramBins: -1}, want: "histogramBins"},
		{name: "negative size", cfg: Config{PlotHeight: -3}, want: "plot size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %v", tt.want, err)
			}
		})
	}

	if err := (Config{Format: "latex"}).Validate(); !errors.Is(err, render.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "config/config.json", &Config{Debug: true, Format: "markdown", PlotWidth: 60}, Config{})
	out := buf.String()
	for _, want := range []string{
		"Config file: config/config.json",
		"Debug:           true",
		"Table Format:    markdown",
		"Histogram Bins:  10",
		"Plot Width:      60",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}

	buf.Reset()
	ShowConfig(&buf, "", nil, Config{NoColor: true})
	out = buf.String()
	if !strings.Contains(out, "No config file loaded") || !strings.Contains(out, "No Color:        true") {
		t.Fatalf("expected fallback values, got:\n%s", out)
	}
	if !strings.Contains(out, "Plot Width:      auto") {
		t.Fatalf("expected automatic width, got:\n%s", out)
	}
}
