package cmd

import (
	"github.com/spf13/cobra"

	"upshift.dev/pkg/upshift/internal/domain"
	m "upshift.dev/pkg/upshift/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available migration steps",
		Long: `List the migration steps upshift knows about. With --from and/or --to only
the steps a migration across that range would run are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.List(commandContext(cmd), domain.ListArgs{
				From: m.Version(from),
				To:   m.Version(to),
			})
		},
	}

	cmd.Flags().IntVar(&from, fromFlagName, 0, "first version of the range")
	cmd.Flags().IntVar(&to, toFlagName, 0, "last version of the range")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
