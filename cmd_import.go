package main

import (
	"fmt"
	"os"

	"github.com/example/bernoulli/internal/content"
	"github.com/example/bernoulli/internal/excel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importSheet    string
	importStartRow int
	importOut      string
	importTemplate string
)

// importCmd validates a quiz spreadsheet
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Validate a quiz bank spreadsheet (.xlsx or .csv)",
	Long: `Reads a quiz bank with the columns
  A prompt, B-E options, F correct option (1-4 or A-D), G explanation
and reports rows that cannot be used.

With --out the lesson content with the imported quiz is written as YAML.
With --template an .xlsx file holding the current quiz is written instead,
as a starting point for a new bank.`,
	Example: `  bernoulli import quiz.xlsx --out lesson.yaml
  bernoulli import --template quiz.xlsx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importSheet, "sheet", excel.DefaultImportConfig().SheetName, "Sheet to read from .xlsx files")
	importCmd.Flags().IntVar(&importStartRow, "start-row", excel.DefaultImportConfig().StartRow, "First data row (1-based)")
	importCmd.Flags().StringVarP(&importOut, "out", "o", "", "Write the merged lesson content YAML here")
	importCmd.Flags().StringVar(&importTemplate, "template", "", "Write the current quiz as an .xlsx template here")
}

func runImport(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	lesson, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}

	if importTemplate != "" {
		if err := excel.WriteTemplate(importTemplate, lesson.Quiz); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %d questions to %s\n", len(lesson.Quiz), importTemplate)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("import requires a file, or --template")
	}

	importConfig := excel.DefaultImportConfig()
	importConfig.FilePath = args[0]
	importConfig.SheetName = importSheet
	importConfig.StartRow = importStartRow

	result, err := excel.ImportQuiz(importConfig)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Processed %d rows: %d questions, %d errors, %d blank rows skipped\n",
		result.TotalProcessed, len(result.Items), len(result.Errors), result.Skipped)
	for _, msg := range result.Errors {
		fmt.Fprintf(out, "  %s\n", msg)
	}

	merged, err := content.WithQuiz(lesson, result.Items)
	if err != nil {
		return err
	}
	logger.Debug("quiz bank validated", zap.String("file", args[0]), zap.Int("questions", len(merged.Quiz)))

	if importOut == "" {
		return nil
	}
	data, err := content.Marshal(merged)
	if err != nil {
		return err
	}
	if err := os.WriteFile(importOut, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", importOut, err)
	}
	fmt.Fprintf(out, "Wrote lesson content to %s\n", importOut)
	return nil
}
