package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/verify/packages/core/config"
	"github.com/microbus-io/errors"
	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Create a default configuration file",
	Long: `Create a .verify.yaml holding the built-in conjunctions, ready to
be extended.

Examples:
  verify init
  verify init ./testdata --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing file")
}

func initCommand(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return errors.Trace(err)
	}

	configFile := filepath.Join(dir, config.ConfigFilenames[0])
	if !forceInit {
		if existing := config.FindConfig(dir); existing != "" {
			return errors.New("file already exists: %s (use --force to overwrite)", existing)
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.New("failed to create directory", err)
	}
	if err := config.DefaultConfig().SaveConfig(configFile); err != nil {
		return errors.New("failed to create config file", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'verify vocab' to see the conjunctions in effect.\n")
	return nil
}
