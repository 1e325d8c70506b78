package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/abdul-hamid-achik/verify/packages/core/config"
	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/microbus-io/errors"
	"github.com/spf13/cobra"
)

// WatchDebounceDelay is the delay before revalidating after a change
const WatchDebounceDelay = 100 * time.Millisecond

var watchFlag bool

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a configuration file",
	Long: `Validate a verify configuration file without using it.

Without an argument the file given by --config, or the one found in the
working directory, is validated.

Examples:
  verify validate
  verify validate .verify.yaml
  verify validate --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: validateCommand,
}

func init() {
	validateCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Revalidate whenever the file changes")
}

func validateCommand(cmd *cobra.Command, args []string) error {
	path := configFlag
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = config.FindConfig(".")
	}
	if path == "" {
		return errors.New("no config file found (looked for %v)", config.ConfigFilenames)
	}
	if noColorFlag {
		color.NoColor = true
	}

	err := validateFile(cmd.OutOrStdout(), cmd.ErrOrStderr(), path)
	if !watchFlag {
		return err
	}
	return watchFile(cmd, path)
}

// validateFile loads and validates the config at path and reports the
// outcome.
func validateFile(out, errOut io.Writer, path string) error {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	cfg, err := config.LoadConfig(path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(errOut, "%s %s: %v\n", red("✗"), path, err)
		return errors.New("validation failed", err)
	}
	fmt.Fprintf(out, "%s Valid: %s\n", green("✓"), path)
	return nil
}

// watchFile revalidates path on every change until the command's context
// is cancelled.
func watchFile(cmd *cobra.Command, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.New("failed to create file watcher", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Trace(err)
	}
	// Editors often replace files on save, so watch the directory.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.New("failed to watch %s", filepath.Dir(abs), err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s for changes... (press Ctrl+C to stop)\n", path)

	changes := make(chan struct{}, 1)
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
				select {
				case changes <- struct{}{}:
				default:
				}
			})

		case <-changes:
			fmt.Fprintf(cmd.OutOrStdout(), "\nFile changed: %s\n", path)
			if _, err := os.Stat(abs); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "cannot access %s: %v\n", path, err)
				continue
			}
			_ = validateFile(cmd.OutOrStdout(), cmd.ErrOrStderr(), path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watcher error: %v\n", err)
		}
	}
}
