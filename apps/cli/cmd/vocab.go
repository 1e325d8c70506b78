package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abdul-hamid-achik/verify/packages/verify"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Show the conjunction vocabulary",
	Long: `Show the conjunctions a fluent chain understands, as configured by
the config file in effect.

Positive conjunctions make the next assertion check its condition,
negative ones check the opposite and neutral ones keep the current
modifier.

Examples:
  verify vocab
  verify vocab --config ci/.verify.yaml`,
	Args: cobra.NoArgs,
	RunE: vocabCommand,
}

func vocabCommand(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	if err := verify.Configure(cfg); err != nil {
		return err
	}

	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n\n", bold("Conjunctions"), describeSource(path))
	printVocabulary(cmd.OutOrStdout(), verify.CurrentVocabulary())
	return nil
}

func printVocabulary(w io.Writer, v verify.Vocabulary) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	rows := []struct {
		label string
		names []string
		paint func(a ...any) string
	}{
		{"positive", v.Positive, green},
		{"negative", v.Negative, red},
		{"neutral", v.Neutral, cyan},
	}
	for _, row := range rows {
		names := make([]string, len(row.names))
		for i, name := range row.names {
			names[i] = row.paint(name)
		}
		if len(names) == 0 {
			names = []string{"(none)"}
		}
		fmt.Fprintf(w, "  %-9s %s\n", row.label+":", strings.Join(names, ", "))
	}
}
