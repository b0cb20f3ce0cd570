package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"upshift.dev/pkg/upshift/internal/adapter"
	"upshift.dev/pkg/upshift/internal/domain"
	m "upshift.dev/pkg/upshift/internal/model"
)

var migrateToFlag int
var migrateFromFlag int
var migrateDryRunFlag bool
var migrateSkipManifestFlag bool
var reportFormatFlag string

// migrateCmd represents the migrate command.
var migrateCmd = newMigrateCmd()

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate [project-dir]",
		Short: "Migrate a project to a newer framework version",
		Long:  migrateLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := adapter.ParseReportFormat(viper.GetString(reportFormatKey))
			if err != nil {
				return err
			}

			_, err = workflow.Migrate(commandContext(cmd), domain.MigrateArgs{
				Project:      projectDir(args),
				From:         m.Version(viper.GetInt(migrateFromKey)),
				To:           m.Version(viper.GetInt(migrateToKey)),
				Preview:      viper.GetBool(migrateDryRunKey),
				SkipManifest: viper.GetBool(migrateSkipManifestKey),
				Include:      viper.GetStringSlice(includeConfigKey),
				Exclude:      viper.GetStringSlice(excludeConfigKey),
				Output:       m.Path(viper.GetString(outputFlagName)),
				ReportFormat: format,
			})
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			return nil
		},
	}

	configureMigrateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func configureMigrateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&migrateToFlag, toFlagName, viper.GetInt(migrateToKey), "target major version (default: newest supported)")
	bindFlagToConfig(cmd.Flags().Lookup(toFlagName), migrateToKey)

	cmd.Flags().IntVar(&migrateFromFlag, fromFlagName, viper.GetInt(migrateFromKey), "current major version (default: detected from package.json)")
	bindFlagToConfig(cmd.Flags().Lookup(fromFlagName), migrateFromKey)

	cmd.Flags().BoolVarP(&migrateDryRunFlag, dryRunFlagName, "n", viper.GetBool(migrateDryRunKey), "preview the migration without modifying files")
	bindFlagToConfig(cmd.Flags().Lookup(dryRunFlagName), migrateDryRunKey)

	cmd.Flags().BoolVar(&migrateSkipManifestFlag, skipManifestFlagName, viper.GetBool(migrateSkipManifestKey), "leave package.json untouched")
	bindFlagToConfig(cmd.Flags().Lookup(skipManifestFlagName), migrateSkipManifestKey)

	cmd.Flags().StringVarP(&reportFormatFlag, reportFormatFlagName, "f", defaultReportFormat, "report format: markdown, yaml or json")
	bindFlagToConfig(cmd.Flags().Lookup(reportFormatFlagName), reportFormatKey)
}

func projectDir(args []string) m.Path {
	if len(args) == 0 {
		return m.Path(".")
	}

	return m.Path(args[0])
}
