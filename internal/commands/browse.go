// internal/commands/browse.go
package reportviz

import (
	"github.com/mwiater/reportviz/internal/tui"
	"github.com/spf13/cobra"
)

var runBrowser = tui.Run

// browseCmd implements 'browse', which opens the interactive table browser.
var browseCmd = &cobra.Command{
	Use:   "browse <report>",
	Short: "Browse the report tables interactively",
	Long:  `The 'browse' command opens the tensor and channel level tables in a full-screen browser. Use tab to switch tables and q to quit.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		feature, _ := cmd.Flags().GetString("feature")
		module, _ := cmd.Flags().GetString("module")

		v, err := openVisualizer(args[0], 0)
		if err != nil {
			return err
		}
		bundle, _, err := v.TableView(feature, module)
		if err != nil {
			return err
		}
		return runBrowser(bundle, viewTitle(args[0], feature, module))
	},
}

func init() {
	browseCmd.Flags().StringP("feature", "f", "", "only show features whose name contains this text")
	browseCmd.Flags().StringP("module", "m", "", "only show modules whose fqn contains this text")
	rootCmd.AddCommand(browseCmd)
}
