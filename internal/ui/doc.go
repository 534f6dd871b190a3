// Package ui holds the color themes shared by the console report and the
// terminal figure viewer: ANSI escape codes for plain output and lipgloss
// colors for the viewer. The active theme is chosen once per run by InitTheme.
package ui
