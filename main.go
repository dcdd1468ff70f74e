package main

import (
	"context"
	"fmt"
	"os"

	"github.com/example/bernoulli/internal/config"
	"github.com/example/bernoulli/internal/content"
	"github.com/example/bernoulli/internal/excel"
	"github.com/example/bernoulli/internal/logging"
	"github.com/example/bernoulli/pkg/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose     bool
	contentFile string
	quizFile    string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bernoulli",
	Short: "Interactive lesson on Bernoulli's principle",
	Long: `bernoulli teaches the relationship between fluid speed and pressure
with the simplified model P = 100 - 5v², a short quiz, a reflection prompt
and a study plan.

The lesson runs as a Telegram bot or in the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if contentFile != "" {
			cfg.ContentFile = contentFile
		}
		if quizFile != "" {
			cfg.QuizFile = quizFile
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "Lesson content YAML (or set CONTENT_FILE env)")
	rootCmd.PersistentFlags().StringVar(&quizFile, "quiz", "", "Quiz bank .xlsx or .csv replacing the lesson quiz (or set QUIZ_FILE env)")

	rootCmd.AddCommand(botCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(contentCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadLesson loads the configured lesson content and applies the quiz bank
func loadLesson(c *config.Config) (*models.Lesson, error) {
	lesson, err := content.Load(c.ContentFile)
	if err != nil {
		return nil, err
	}
	if c.QuizFile == "" {
		return lesson, nil
	}

	importConfig := excel.DefaultImportConfig()
	importConfig.FilePath = c.QuizFile
	result, err := excel.ImportQuiz(importConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to import quiz: %w", err)
	}
	for _, msg := range result.Errors {
		logger.Warn("skipped quiz row", zap.String("file", c.QuizFile), zap.String("error", msg))
	}
	logger.Info("quiz imported", zap.String("file", c.QuizFile), zap.Int("questions", len(result.Items)))

	return content.WithQuiz(lesson, result.Items)
}
