package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Table Format:    %s\n", cfg.TableFormat())
	fmt.Fprintf(out, "  No Color:        %v\n", cfg.NoColor)
	fmt.Fprintf(out, "  Histogram Bins:  %d\n", cfg.Bins())
	if cfg.PlotWidth > 0 {
		fmt.Fprintf(out, "  Plot Width:      %d\n", cfg.PlotWidth)
	} else {
		fmt.Fprintln(out, "  Plot Width:      auto")
	}
	fmt.Fprintf(out, "  Plot Height:     %d\n", cfg.ChartHeight())
}
