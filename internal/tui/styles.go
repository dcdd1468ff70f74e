package tui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Primary = lipgloss.Color("#1f77b4")
	Accent  = lipgloss.Color("#e53935")
	Muted   = lipgloss.Color("#8a8f98")
	Success = lipgloss.Color("#8BC34A")
	Warning = lipgloss.Color("#FFC107")
)

// Styles holds the lipgloss styles of the lesson view
type Styles struct {
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Title     lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style
	Selected  lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Chart     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the default lesson styles
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),
		Tab: lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1),
		Body: lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true),
		Selected: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true),
		Success: lipgloss.NewStyle().Foreground(Success),
		Warning: lipgloss.NewStyle().Foreground(Warning),
		Error:   lipgloss.NewStyle().Foreground(Accent),
		Chart: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 2),
	}
}
