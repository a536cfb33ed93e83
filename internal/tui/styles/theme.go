package styles

import (
	"github.com/allbin/port-runner/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Header styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve).
			Background(colors.Surface0).
			Padding(0, 1)

	// Run state styles
	StatusRunningStyle = lipgloss.NewStyle().
				Foreground(colors.Green).
				Bold(true)

	StatusStoppingStyle = lipgloss.NewStyle().
				Foreground(colors.Yellow).
				Bold(true)

	StatusDoneStyle = lipgloss.NewStyle().
			Foreground(colors.Subtext0).
			Bold(true)

	// Content area styles
	ContentBorderStyle = lipgloss.NewStyle().
				BorderTop(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colors.Surface1)

	// Counter styles
	GoodStyle = lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true)

	MiscompareStyle = lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true)

	// Error styles
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Red)
)
