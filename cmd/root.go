// Package cmd provides the root command and CLI setup for upshift.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"upshift.dev/pkg/upshift/internal/adapter"
	"upshift.dev/pkg/upshift/internal/controller"
	"upshift.dev/pkg/upshift/internal/domain"
	"upshift.dev/pkg/upshift/internal/domain/steps"
)

var sourceFSAdapter adapter.SourceFSAdapter
var tsFileAdapter adapter.TSFileAdapter
var reportStore adapter.ReportStore
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// includePatterns and excludePatterns select the sources a migration parses.
var includePatterns []string
var excludePatterns []string

var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	tsFileAdapter = adapter.NewLocalTSFileAdapter(0)
	reportStore = adapter.NewReportStore()
	orchestrator = domain.NewOrchestrator(tsFileAdapter)
	workflow = domain.NewWorkflow(
		sourceFSAdapter,
		reportStore,
		ui,
		orchestrator,
		steps.Catalogue(),
	)
}

const globPatternsHelp = `Source selection uses doublestar globs relative to the project root:
  - src/**/*.ts           every TypeScript file below src (default)
  - **/*.spec.ts          every spec file
  - **/node_modules/**    excluded by default, together with dist and *.d.ts`

const rootLongDescription = `Upshift migrates Angular workspaces across major framework versions.

It chains the migration steps between the version found in package.json
and the target version, rewriting the manifest, angular.json and the
TypeScript sources of the project, and writes a report of every change
and every spot that needs a manual look.

` + globPatternsHelp

const migrateLongDescription = `Migrate the project in project-dir (default: current directory) to the
target version (default: newest supported).

` + globPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "upshift",
		Short:        "Angular version migration tool",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"directory for migration reports (default: project root)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&includePatterns, includeFlagName, "i", viper.GetStringSlice(includeConfigKey), "include sources matching glob (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(includeFlagName), includeConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude sources matching glob (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels the running command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// commandContext returns the context of cmd, or a background context when
// the command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
