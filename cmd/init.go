package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"upshift.dev/pkg/upshift/internal/domain"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

// fileConfig is the layout of upshift.yaml written by init.
type fileConfig struct {
	Version int    `yaml:"version"`
	Output  string `yaml:"output"`
	Paths   struct {
		Include []string `yaml:"include"`
		Exclude []string `yaml:"exclude"`
	} `yaml:"paths"`
	Migrate struct {
		To           int  `yaml:"to"`
		From         int  `yaml:"from"`
		DryRun       bool `yaml:"dry_run"`
		SkipManifest bool `yaml:"skip_manifest"`
	} `yaml:"migrate"`
	Report struct {
		Format string `yaml:"format"`
	} `yaml:"report"`
	Log struct {
		Filename   string `yaml:"filename"`
		Level      string `yaml:"level"`
		Verbose    bool   `yaml:"verbose"`
		MaxSize    int    `yaml:"max_size"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAge     int    `yaml:"max_age"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"log"`
}

func defaultFileConfig() fileConfig {
	var cfg fileConfig

	cfg.Version = currentConfigVersion
	cfg.Paths.Include = domain.DefaultInclude
	cfg.Paths.Exclude = []string{}
	cfg.Report.Format = defaultReportFormat
	cfg.Log.Filename = defaultLogFilename
	cfg.Log.Level = defaultLogLevel
	cfg.Log.Verbose = defaultLogVerbose
	cfg.Log.MaxSize = defaultLogMaxSize
	cfg.Log.MaxBackups = defaultLogMaxBackups
	cfg.Log.MaxAge = defaultLogMaxAge
	cfg.Log.Compress = defaultLogCompress

	return cfg
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default upshift.yaml configuration file",
		Long: `Create an upshift.yaml in the current working directory populated with the
default settings so it can be edited manually. An existing file is never
overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			data, err := yaml.Marshal(defaultFileConfig())
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}

			if err := writeNewFile(targetPath, data); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("Wrote %s\n", targetPath)

			return nil
		},
	}
}

func writeNewFile(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	_, err = file.Write(data)

	return errors.Join(err, file.Close())
}

func init() {
	rootCmd.AddCommand(initCmd)
}
