package main

import (
	"github.com/example/bernoulli/internal/content"
	"github.com/spf13/cobra"
)

// contentCmd prints the active lesson content
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Print the active lesson content as YAML",
	Long: `Loads the lesson content (embedded, --content or CONTENT_FILE), applies
the quiz bank (--quiz or QUIZ_FILE), validates it and prints the result.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lesson, err := loadLesson(cfg)
		if err != nil {
			return err
		}
		data, err := content.Marshal(lesson)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
