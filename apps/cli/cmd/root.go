package cmd

import (
	"os"

	"github.com/abdul-hamid-achik/verify/packages/core/config"
	"github.com/fatih/color"
	"github.com/microbus-io/errors"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	configFlag  string
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "verify",
	Short: "Inspect and manage fluent assertion settings",
	Long: `verify is the companion tool of the verify assertion library.
It shows the conjunction vocabulary and assertion methods available to
tests, and creates and validates .verify.yaml configuration files.`,
	SilenceUsage: true,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	default:
		return ExitFailure
	}
}

// loadConfig reads --config, or the config file found in the working
// directory, and applies its color setting.
func loadConfig() (*config.Config, string, error) {
	path := configFlag
	if path == "" {
		path = config.FindConfig(".")
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, path, err
	}
	if noColorFlag || cfg.GetNoColor() {
		color.NoColor = true
	}
	return cfg, path, nil
}

func describeSource(path string) string {
	if path == "" {
		return "built-in defaults"
	}
	return path
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Config file (default: search the working directory)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(methodsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
