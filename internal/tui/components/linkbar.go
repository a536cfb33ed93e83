package components

import (
	"fmt"
	"time"

	"github.com/allbin/port-runner/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
)

// LinkInfo describes the serial link a run is exercising
type LinkInfo struct {
	TransmitPath string
	ReceivePath  string
	BaudRate     int
	PatternLen   int
	Delay        time.Duration
}

// LinkBar renders the status bar at the bottom of the dashboard: run state,
// the two link endpoints, the link configuration and a clock.
type LinkBar struct {
	info  LinkInfo
	width int
}

func NewLinkBar(info LinkInfo) *LinkBar {
	return &LinkBar{info: info}
}

func (lb *LinkBar) SetWidth(width int) {
	lb.width = width
}

// View renders the bar. state is the run state label (RUNNING, STOPPING,
// DONE) and decides the state chip's color.
func (lb *LinkBar) View(state string, timestamp string) string {
	terminalWidth := lb.width
	if terminalWidth <= 0 {
		terminalWidth = 80
	}

	// Section 1: run state chip
	chipColor := colors.Blue
	switch state {
	case "RUNNING":
		chipColor = colors.Green
	case "STOPPING":
		chipColor = colors.Yellow
	}
	chip := lipgloss.NewStyle().
		Foreground(colors.Base).
		Background(chipColor).
		Bold(true).
		Padding(0, 1).
		Render(state)

	// Section 2: the link endpoints
	link := lipgloss.NewStyle().
		Foreground(colors.Mauve).
		Bold(true).
		Padding(0, 1).
		Render(fmt.Sprintf("%s → %s", lb.info.TransmitPath, lb.info.ReceivePath))

	// Section 3: link configuration
	config := lipgloss.NewStyle().
		Foreground(colors.Subtext0).
		Padding(0, 1).
		Render(fmt.Sprintf("⚡ %d baud · %d byte pattern · %s delay",
			lb.info.BaudRate, lb.info.PatternLen, lb.info.Delay))

	// Section 4: clock
	clock := lipgloss.NewStyle().
		Foreground(colors.Subtext1).
		Padding(0, 1).
		Render(timestamp)

	divider := lipgloss.NewStyle().
		Foreground(colors.Surface2).
		Padding(0, 1).
		Render("│")

	leftSide := lipgloss.JoinHorizontal(lipgloss.Left, chip, link, divider)
	rightSide := lipgloss.JoinHorizontal(lipgloss.Left, config, divider, clock)

	spacerWidth := terminalWidth - lipgloss.Width(leftSide) - lipgloss.Width(rightSide)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	barStyle := lipgloss.NewStyle().
		Foreground(colors.Text).
		Background(colors.Surface0).
		Width(terminalWidth)

	return barStyle.Render(lipgloss.JoinHorizontal(lipgloss.Left, leftSide, spacer, rightSide))
}
