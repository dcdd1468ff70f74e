package main

import (
	"github.com/example/bernoulli/internal/lesson"
	"github.com/example/bernoulli/internal/tui"
	"github.com/spf13/cobra"
)

// tuiCmd runs the lesson in the terminal
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the lesson in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := loadLesson(cfg)
		if err != nil {
			return err
		}
		// Logs would draw over the alternate screen, so the UI only logs when verbose
		opts := []tui.Option{}
		if verbose {
			opts = append(opts, tui.WithLogger(logger))
		}
		return tui.Run(lesson.New(content), opts...)
	},
}
