package reportviz

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/reportviz/internal/logging"
	"github.com/mwiater/reportviz/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func resetFlag(cmdFlag string) {
	flag := rootCmd.PersistentFlags().Lookup(cmdFlag)
	if flag == nil {
		return
	}
	_ = flag.Value.Set(flag.DefValue)
	flag.Changed = false
}

// resetCommandFlags puts every flag except --config back to its default so
// one ExecuteC run does not leak into the next.
func resetCommandFlags() {
	for _, name := range []string{"debug", "logFile", "format", "noColor", "histogramBins"} {
		resetFlag(name)
	}
	for _, c := range []*cobra.Command{listFeaturesCmd, tableCmd, plotCmd, histogramCmd, browseCmd} {
		c.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func useConfig(t *testing.T, configPath string) {
	t.Helper()
	prevCfgFile := cfgFile
	cfgFile = configPath
	viper.SetConfigFile(configPath)
	t.Cleanup(func() {
		cfgFile = prevCfgFile
		viper.SetConfigFile(prevCfgFile)
	})
	t.Cleanup(func() { _ = logging.Close() })
}

func TestPersistentPreRunEUsesFlagValues(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "reportviz.log")
	useConfig(t, writeTempConfig(t, `{"plotHeight": 9}`))
	resetCommandFlags()

	_ = rootCmd.PersistentFlags().Set("debug", "true")
	_ = rootCmd.PersistentFlags().Set("format", "box")
	_ = rootCmd.PersistentFlags().Set("noColor", "true")
	_ = rootCmd.PersistentFlags().Set("histogramBins", "7")
	_ = rootCmd.PersistentFlags().Set("logFile", logPath)
	t.Cleanup(resetCommandFlags)

	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err != nil {
		t.Fatalf("PersistentPreRunE error: %v", err)
	}

	cfg := GetConfig()
	if cfg == nil || cfg.ConfigPath != cfgFile {
		t.Fatalf("expected config loaded with path %s", cfgFile)
	}
	if !cfg.Debug || !cfg.NoColor {
		t.Fatalf("expected flag values to flow into config: %+v", cfg)
	}
	if cfg.TableFormat() != render.FormatBox || cfg.Bins() != 7 {
		t.Fatalf("expected box format and 7 bins, got %q and %d", cfg.TableFormat(), cfg.Bins())
	}
	if cfg.ChartHeight() != 9 {
		t.Fatalf("expected plotHeight from the config file, got %d", cfg.ChartHeight())
	}
	if cfg.LogFilePath() != logPath {
		t.Fatalf("expected log file %s, got %s", logPath, cfg.LogFilePath())
	}
	if !DebugEnabled() {
		t.Fatalf("expected DebugEnabled to follow the flag")
	}
}

func TestPersistentPreRunEInvalidFormat(t *testing.T) {
	useConfig(t, writeTempConfig(t, "{}"))
	resetCommandFlags()
	t.Cleanup(resetCommandFlags)

	_ = rootCmd.PersistentFlags().Set("format", "latex")
	_ = rootCmd.PersistentFlags().Set("logFile", filepath.Join(t.TempDir(), "reportviz.log"))

	err := rootCmd.PersistentPreRunE(rootCmd, []string{})
	if !errors.Is(err, render.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestPersistentPreRunEMissingExplicitConfig(t *testing.T) {
	resetCommandFlags()
	t.Cleanup(resetCommandFlags)

	missing := filepath.Join(t.TempDir(), "missing.json")
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--config", missing, "show", "config"})
	t.Cleanup(func() {
		rootCmd.SetArgs([]string{})
		resetFlag("config")
		cfgFile = ""
		viper.SetConfigFile("")
		_ = logging.Close()
	})
	if _, err := rootCmd.ExecuteC(); err == nil {
		t.Fatalf("expected an error for an explicit config file that does not exist")
	}
}

func TestShowConfigCommandOutput(t *testing.T) {
	configPath := writeTempConfig(t, `{"histogramBins": 12}`)
	useConfig(t, configPath)
	resetCommandFlags()
	t.Cleanup(resetCommandFlags)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--config", configPath, "--debug", "--logFile", filepath.Join(t.TempDir(), "reportviz.log"), "show", "config"})
	t.Cleanup(func() { rootCmd.SetArgs([]string{}) })
	_, err := rootCmd.ExecuteC()
	if err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Config file: "+configPath) {
		t.Fatalf("expected config file path in output, got %s", out)
	}
	if !strings.Contains(out, "Debug:           true") {
		t.Fatalf("expected debug in output, got %s", out)
	}
	if !strings.Contains(out, "Histogram Bins:  12") {
		t.Fatalf("expected bins from the config file, got %s", out)
	}
}
