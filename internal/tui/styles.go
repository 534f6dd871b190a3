package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/pvadjust/internal/ui"
)

// Style variables for the figure viewer.
// Initialized from the ui theme system via initViewerStyles().
var (
	panelStyle     lipgloss.Style
	titleStyle     lipgloss.Style
	axisLabelStyle lipgloss.Style
	originalStyle  lipgloss.Style
	adjustedStyle  lipgloss.Style
	thresholdStyle lipgloss.Style
	overlapStyle   lipgloss.Style
	footerStyle    lipgloss.Style
)

func init() {
	initViewerStyles()
}

// initViewerStyles rebuilds all viewer styles from the current ui theme.
// Called at package init and again from Show() after InitTheme has been invoked.
func initViewerStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	axisLabelStyle = lipgloss.NewStyle().Foreground(t.Dim)
	originalStyle = lipgloss.NewStyle().Foreground(t.Original)
	adjustedStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Adjusted)
	thresholdStyle = lipgloss.NewStyle().Foreground(t.Threshold)
	overlapStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	footerStyle = lipgloss.NewStyle().Foreground(t.Dim).Padding(0, 1)
}
