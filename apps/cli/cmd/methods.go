package cmd

import (
	"fmt"
	"io"

	"github.com/abdul-hamid-achik/verify/packages/asserter"
	"github.com/abdul-hamid-achik/verify/packages/verify"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	backendFlag bool
	kindsFlag   bool
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the assertion methods",
	Long: `List the assertion methods of the value, file and directory builders.

Examples:
  verify methods
  verify methods --backend
  verify methods --kinds`,
	Args: cobra.NoArgs,
	RunE: methodsCommand,
}

func init() {
	methodsCmd.Flags().BoolVar(&backendFlag, "backend", false, "Also list the assertions of the testify backend")
	methodsCmd.Flags().BoolVar(&kindsFlag, "kinds", false, "Also list the kind groups accepted by ContainOnly")
}

func methodsCommand(cmd *cobra.Command, args []string) error {
	if _, _, err := loadConfig(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printGroup(out, "That(t, value)", verify.Methods())
	printGroup(out, "File(t, path)", verify.FileMethods())
	printGroup(out, "Directory(t, path)", verify.DirectoryMethods())
	if backendFlag {
		printGroup(out, "Backend assertions", asserter.Names())
	}
	if kindsFlag {
		printGroup(out, "Kinds", asserter.KindNames())
	}
	return nil
}

func printGroup(w io.Writer, title string, names []string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(w, "%s\n", bold(title))
	for _, name := range names {
		fmt.Fprintf(w, "  - %s\n", name)
	}
	fmt.Fprintln(w)
}
