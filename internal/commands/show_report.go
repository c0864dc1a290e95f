// internal/commands/show_report.go
package reportviz

import (
	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/mwiater/reportviz/internal/report"
	"github.com/spf13/cobra"
)

// moduleDump is the shape printed by 'show report'.
type moduleDump struct {
	FQN      string
	Features []featureDump
}

type featureDump struct {
	Name  string
	Kind  string
	Value string
}

// showReportCmd implements 'show report', which pretty prints a decoded report.
var showReportCmd = &cobra.Command{
	Use:   "report <report>",
	Short: "Pretty print a decoded report",
	Long:  `The 'report' subcommand decodes a report file and prints every module and feature with the value kind it was decoded to.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadReport(args[0])
		if err != nil {
			return err
		}
		pp.ColoringEnabled = !color.NoColor
		_, err = pp.Fprintln(cmd.OutOrStdout(), dumpReport(r))
		return err
	},
}

func dumpReport(r *report.Report) []moduleDump {
	dump := make([]moduleDump, 0, r.Len())
	for _, fqn := range r.Modules() {
		features, _ := r.Features(fqn)
		m := moduleDump{FQN: fqn}
		for _, name := range r.FeatureOrder(fqn) {
			value := features[name]
			kind := value.Kind().String()
			if value.IsTensor() {
				kind = "tensor " + kind
			}
			m.Features = append(m.Features, featureDump{Name: name, Kind: kind, Value: value.String()})
		}
		dump = append(dump, m)
	}
	return dump
}

func init() {
	showCmd.AddCommand(showReportCmd)
}
