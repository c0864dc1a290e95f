// internal/commands/plot.go
package reportviz

import (
	"fmt"
	"io"

	"github.com/mwiater/reportviz/internal/report"
	"github.com/spf13/cobra"
)

// plotCmd implements 'plot', which draws one plottable feature across modules.
var plotCmd = &cobra.Command{
	Use:   "plot <report>",
	Short: "Plot one tensor feature across modules",
	Long: `The 'plot' command draws a line chart of one plottable feature. Tensor level
features give one line over the selected modules; per channel features give one
line per channel. The feature name must match exactly.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		feature, _ := cmd.Flags().GetString("feature")
		module, _ := cmd.Flags().GetString("module")

		v, err := openVisualizer(args[0], 0)
		if err != nil {
			return err
		}
		table, chart, err := v.PlotView(feature, module)
		if err != nil {
			return err
		}
		return printChartView(cmd.OutOrStdout(), "Plot data", table, chart)
	},
}

// histogramCmd implements 'histogram', which bins every value of one plottable feature.
var histogramCmd = &cobra.Command{
	Use:   "histogram <report>",
	Short: "Show the value distribution of one tensor feature",
	Long: `The 'histogram' command buckets every value of one plottable feature, scalars
and channel entries alike, into equal-width bins and draws them as a bar chart.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		feature, _ := cmd.Flags().GetString("feature")
		module, _ := cmd.Flags().GetString("module")
		bins, _ := cmd.Flags().GetInt("bins")

		v, err := openVisualizer(args[0], bins)
		if err != nil {
			return err
		}
		table, chart, err := v.HistogramView(feature, module)
		if err != nil {
			return err
		}
		return printChartView(cmd.OutOrStdout(), "Histogram bins", table, chart)
	},
}

func printChartView(out io.Writer, heading string, table report.Table, chart string) error {
	formatter, err := config().Formatter()
	if err != nil {
		return err
	}
	headingColor.Fprintln(out, heading)
	fmt.Fprintln(out, formatter.Format(table))
	fmt.Fprintln(out)
	fmt.Fprintln(out, chart)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{plotCmd, histogramCmd} {
		c.Flags().StringP("feature", "f", "", "feature to draw (exact name)")
		c.Flags().StringP("module", "m", "", "only use modules whose fqn contains this text")
		_ = c.MarkFlagRequired("feature")
		rootCmd.AddCommand(c)
	}
	histogramCmd.Flags().Int("bins", 0, "number of bins (overrides histogramBins)")
}
