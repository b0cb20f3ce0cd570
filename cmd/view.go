package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"upshift.dev/pkg/upshift/internal/adapter"
	"upshift.dev/pkg/upshift/internal/domain"
	m "upshift.dev/pkg/upshift/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report-file]",
		Short: "View a previously written migration report",
		Long: `Render a YAML or JSON migration report. Without an argument the report
upshift-report.yaml in the output directory is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(commandContext(cmd), domain.ViewArgs{Path: reportPath(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func reportPath(args []string) m.Path {
	if len(args) > 0 {
		return m.Path(args[0])
	}

	dir := viper.GetString(outputFlagName)
	if dir == "" {
		dir = "."
	}

	return m.Path(filepath.Join(dir, adapter.ReportBaseName+"."+adapter.ReportYAML.Extension()))
}
