package cli

import (
	"fmt"
	"os"

	"github.com/ppiankov/identigen/internal/model"
	"github.com/ppiankov/identigen/internal/pipeline"
	"github.com/spf13/cobra"
)

var parseTable bool

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <file.html>",
	Short: "Parse a saved profile page without fetching",
	Long: `Parse runs extraction and categorization on a profile page saved to disk
and prints the result in the same format generate writes. Nothing is
fetched and no files are written.

Example:
  identigen parse saved-profile.html
  identigen parse saved-profile.html --table`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseTable, "table", false, "print a table instead of the text format")
}

func runParse(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read page: %w", err)
	}

	p, err := pipeline.NewPipeline(model.DefaultConfig(), logger)
	if err != nil {
		return err
	}

	record, err := p.ParseHTML(string(data))
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	if parseTable {
		p.RenderSummary(cmd.OutOrStdout(), record)
		return nil
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), pipeline.FormatText(record))
	return err
}
