package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
	"upshift.dev/pkg/upshift/internal/domain/steps"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version and the supported framework versions.",
		Run: func(cmd *cobra.Command, _ []string) {
			all := steps.Catalogue()
			supported := all[0].From.String() + "-" + steps.Newest().String()

			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				cmd.Println("angular\t", supported)

				return
			}

			cmd.Println("upshift version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)
			cmd.Println("angular\t", supported)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
