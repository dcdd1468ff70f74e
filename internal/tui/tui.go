package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/example/bernoulli/internal/lesson"
)

// Run starts the lesson program and blocks until the user quits
func Run(ctrl *lesson.Controller, opts ...Option) error {
	p := tea.NewProgram(NewModel(ctrl, opts...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("lesson ui: %w", err)
	}
	return nil
}
