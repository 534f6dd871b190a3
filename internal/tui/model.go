package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/pvadjust/internal/plot"
)

// footerHeight is the number of lines reserved for the help footer.
const footerHeight = 1

// Model is the bubbletea model of the figure viewer. It shows one figure and
// quits when the user dismisses it.
type Model struct {
	chart     ChartModel
	keymap    KeyMap
	help      help.Model
	width     int
	height    int
	dismissed bool
	aborted   bool
}

// NewModel creates a viewer model for the figure.
func NewModel(f plot.Figure) Model {
	return Model{
		chart:  NewChartModel(f),
		keymap: DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles window resizes and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.chart.SetSize(msg.Width, msg.Height-footerHeight)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Dismiss):
			m.dismissed = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Quit):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}
	return m, nil
}

// View renders the chart panel and the help footer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.chart.View(),
		footerStyle.Render(m.help.View(m.keymap)),
	)
}

// Dismissed reports whether the user closed the figure.
func (m Model) Dismissed() bool {
	return m.dismissed
}

// Aborted reports whether the user asked to stop the whole run.
func (m Model) Aborted() bool {
	return m.aborted
}
