// internal/commands/list.go
package reportviz

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd represents the 'list' command group.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing report contents",
	Long:  `The 'list' command groups subcommands that list the modules and features found in a report.`,
}

// listModulesCmd implements 'list modules', which prints every module fqn in report order.
var listModulesCmd = &cobra.Command{
	Use:   "modules <report>",
	Short: "List the module identifiers in a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := openVisualizer(args[0], 0)
		if err != nil {
			return err
		}
		modules := v.OrderedModuleFQNs()
		out := cmd.OutOrStdout()
		headingColor.Fprintf(out, "Modules (%d):\n", len(modules))
		for _, fqn := range modules {
			fmt.Fprintf(out, "  %s\n", fqn)
		}
		return nil
	},
}

// listFeaturesCmd implements 'list features', which prints the sorted union of feature names.
var listFeaturesCmd = &cobra.Command{
	Use:   "features <report>",
	Short: "List the feature names in a report",
	Long:  `The 'features' subcommand lists every feature name reported by any module. With --plottable only features holding tensor data are listed.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plottable, _ := cmd.Flags().GetBool("plottable")
		v, err := openVisualizer(args[0], 0)
		if err != nil {
			return err
		}
		features := v.SortedFeatureNames(plottable)
		out := cmd.OutOrStdout()
		label := "Features"
		if plottable {
			label = "Plottable features"
		}
		headingColor.Fprintf(out, "%s (%d):\n", label, len(features))
		for _, name := range features {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	},
}

func init() {
	listFeaturesCmd.Flags().Bool("plottable", false, "only list features holding tensor data")

	listCmd.AddCommand(listModulesCmd)
	listCmd.AddCommand(listFeaturesCmd)
	rootCmd.AddCommand(listCmd)
}
