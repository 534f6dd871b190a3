package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for labels.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color flag is provided.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme defines lipgloss-compatible colors for the figure viewer.
// The series colors follow the exported figures: originals in blue,
// adjusted values in red and the threshold in green.
type TUITheme struct {
	Text      lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
	Accent    lipgloss.TerminalColor
	Dim       lipgloss.TerminalColor
	Original  lipgloss.TerminalColor
	Adjusted  lipgloss.TerminalColor
	Threshold lipgloss.TerminalColor
}

var (
	// DarkTUITheme is the default viewer palette.
	DarkTUITheme = TUITheme{
		Text:      lipgloss.Color("#E0E0E0"),
		Border:    lipgloss.Color("#4488FF"),
		Accent:    lipgloss.Color("#FF8C00"),
		Dim:       lipgloss.Color("#666666"),
		Original:  lipgloss.Color("#4488FF"),
		Adjusted:  lipgloss.Color("#FF4444"),
		Threshold: lipgloss.Color("#9ece6a"),
	}

	// LightTUITheme mirrors DarkTUITheme with darker tones.
	LightTUITheme = TUITheme{
		Text:      lipgloss.Color("#202020"),
		Border:    lipgloss.Color("#1F4FBF"),
		Accent:    lipgloss.Color("#B35900"),
		Dim:       lipgloss.Color("#808080"),
		Original:  lipgloss.Color("#1F4FBF"),
		Adjusted:  lipgloss.Color("#B30000"),
		Threshold: lipgloss.Color("#2E7D32"),
	}

	// NoColorTUITheme disables all viewer colors.
	NoColorTUITheme = TUITheme{
		Text:      lipgloss.NoColor{},
		Border:    lipgloss.NoColor{},
		Accent:    lipgloss.NoColor{},
		Dim:       lipgloss.NoColor{},
		Original:  lipgloss.NoColor{},
		Adjusted:  lipgloss.NoColor{},
		Threshold: lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns the viewer theme matching the active theme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	switch currentTheme.Name {
	case "none":
		return NoColorTUITheme
	case "light":
		return LightTUITheme
	default:
		return DarkTUITheme
	}
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name.
// Valid names are: "dark", "light", "none".
// Unknown names default to dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme selects the theme from the noColor flag, the NO_COLOR environment
// variable (https://no-color.org/) and the requested theme name, in that order.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
//   - name: The theme to use when colors are enabled.
func InitTheme(noColor bool, name string) {
	if noColor {
		SetCurrentTheme(NoColorTheme)
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetTheme(name)
}

// IsValidTheme reports whether name is a selectable theme.
func IsValidTheme(name string) bool {
	switch name {
	case "dark", "light", "none":
		return true
	}
	return false
}
