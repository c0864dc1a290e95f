// internal/commands/table.go
package reportviz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mwiater/reportviz/internal/logging"
	"github.com/mwiater/reportviz/internal/render"
	"github.com/mwiater/reportviz/internal/report"
	"github.com/mwiater/reportviz/internal/util"
	"github.com/spf13/cobra"
)

// watchDebounce is how long a report file must stay quiet before it is re-rendered.
const watchDebounce = 300 * time.Millisecond

// tableOptions holds the flags of the table command.
type tableOptions struct {
	feature  string
	module   string
	json     bool
	markdown string
	html     string
	pdf      string
	watch    bool
}

var tableOpts tableOptions

// tableCmd implements 'table', which prints the tensor and channel level
// tables of a report and optionally exports them.
var tableCmd = &cobra.Command{
	Use:   "table <report>",
	Short: "Print the tensor and channel level tables of a report",
	Long: `The 'table' command prints the tensor level and channel level tables of a report.
Both filters match by substring. Exports to Markdown, HTML and PDF are written
alongside the printed output, and --watch re-renders whenever the report changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		out := cmd.OutOrStdout()
		if err := renderTable(out, path, tableOpts); err != nil {
			return err
		}
		if !tableOpts.watch {
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		warnColor.Fprintf(out, "\nWatching %s for changes (ctrl+c to stop)\n", path)
		return watchReport(ctx, out, path, watchDebounce, func() error {
			fmt.Fprintln(out)
			return renderTable(out, path, tableOpts)
		})
	},
}

// renderTable loads the report, prints the table view and writes the
// requested exports.
func renderTable(out io.Writer, path string, opts tableOptions) error {
	v, err := openVisualizer(path, 0)
	if err != nil {
		return err
	}
	bundle, text, err := v.TableView(opts.feature, opts.module)
	if err != nil {
		return err
	}

	if opts.json {
		data, err := json.MarshalIndent(bundle, "", "  ")
		if err != nil {
			return fmt.Errorf("encode tables: %w", err)
		}
		fmt.Fprintln(out, string(data))
	} else {
		fmt.Fprintln(out, text)
	}

	title := viewTitle(path, opts.feature, opts.module)
	exports := []struct {
		kind  string
		path  string
		write func(io.Writer, string, report.TableBundle) error
	}{
		{"markdown", opts.markdown, render.WriteMarkdown},
		{"html", opts.html, render.WriteHTML},
		{"pdf", opts.pdf, render.WritePDF},
	}
	for _, export := range exports {
		if export.path == "" {
			continue
		}
		var buf bytes.Buffer
		if err := export.write(&buf, title, bundle); err != nil {
			return fmt.Errorf("render %s export: %w", export.kind, err)
		}
		if err := util.WriteFile(export.path, buf.Bytes()); err != nil {
			return fmt.Errorf("write %s export: %w", export.kind, err)
		}
		logging.LogEvent("[EXPORT] %s written to %s (%d bytes)", export.kind, export.path, buf.Len())
		successColor.Fprintf(out, "Wrote %s export to %s\n", export.kind, export.path)
	}
	return nil
}

func init() {
	tableCmd.Flags().StringVarP(&tableOpts.feature, "feature", "f", "", "only show features whose name contains this text")
	tableCmd.Flags().StringVarP(&tableOpts.module, "module", "m", "", "only show modules whose fqn contains this text")
	tableCmd.Flags().BoolVar(&tableOpts.json, "json", false, "print the tables as JSON instead of text")
	tableCmd.Flags().StringVar(&tableOpts.markdown, "markdown", "", "also write the tables to this Markdown file")
	tableCmd.Flags().StringVar(&tableOpts.html, "html", "", "also write the tables to this HTML file")
	tableCmd.Flags().StringVar(&tableOpts.pdf, "pdf", "", "also write the tables to this PDF file")
	tableCmd.Flags().BoolVar(&tableOpts.watch, "watch", false, "re-render whenever the report file changes")

	rootCmd.AddCommand(tableCmd)
}
